package mcpserver

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"syscall"
	"time"
)

// maxRedirects bounds how many redirects a discovery request may follow.
const maxRedirects = 5

// isBlockedAddr reports whether addr must not be dialed on behalf of an MCP
// client: private, loopback, link-local, multicast or unspecified addresses.
func isBlockedAddr(addr netip.Addr) bool {
	addr = addr.Unmap()
	return !addr.IsValid() ||
		addr.IsPrivate() ||
		addr.IsLoopback() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsMulticast() ||
		addr.IsUnspecified()
}

// checkDialAddr is a net.Dialer Control hook. It runs after name resolution,
// for the exact address about to be connected, so it also covers redirects
// and DNS answers that change between lookups.
func checkDialAddr(network, address string, _ syscall.RawConn) error {
	ap, err := netip.ParseAddrPort(address)
	if err != nil {
		return fmt.Errorf("blocked dial to %s: %w", address, err)
	}
	if isBlockedAddr(ap.Addr()) {
		return fmt.Errorf("blocked dial to non-public address %s (%s)", ap.Addr(), network)
	}
	return nil
}

// newSafeHTTPClient creates an HTTP client that refuses to connect to
// non-public addresses. API names supplied by MCP clients become part of the
// discovery document host name.
func newSafeHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout: 10 * time.Second,
		Control: checkDialAddr,
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: 10 * time.Second,
			MaxIdleConnsPerHost: 4,
		},
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
}

// newHTTPClient returns the client used for discovery requests.
func newHTTPClient(c *serverConfig) *http.Client {
	if c.AllowPrivateIPs {
		return &http.Client{Timeout: c.HTTPTimeout}
	}
	return newSafeHTTPClient(c.HTTPTimeout)
}
