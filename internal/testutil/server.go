package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
)

// DiscoveryServer fakes the per-API discovery endpoints
// (https://{name}.googleapis.com/$discovery/rest?version={version}).
//
// Requests reach it through HTTPClient, which redirects every request to the
// test server while keeping the original Host header, so the loader can use
// its real URLs.
type DiscoveryServer struct {
	*httptest.Server

	mu       sync.Mutex
	docs     map[string]string
	status   map[string]int
	requests map[string]int
}

// NewDiscoveryServer starts a DiscoveryServer that is closed when the test ends.
func NewDiscoveryServer(tb testing.TB) *DiscoveryServer {
	tb.Helper()
	s := &DiscoveryServer{
		docs:     make(map[string]string),
		status:   make(map[string]int),
		requests: make(map[string]int),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	tb.Cleanup(s.Close)
	return s
}

// Serve registers the discovery document body for an API version.
func (s *DiscoveryServer) Serve(name, version, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key(name, version)] = body
	delete(s.status, key(name, version))
}

// Fail makes requests for an API version answer with status.
func (s *DiscoveryServer) Fail(name, version string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[key(name, version)] = status
}

// Requests returns how many times an API version's document was requested.
func (s *DiscoveryServer) Requests(name, version string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[key(name, version)]
}

// HTTPClient returns a client that sends every request to this server.
func (s *DiscoveryServer) HTTPClient() *http.Client {
	target, _ := url.Parse(s.URL)
	return &http.Client{Transport: &redirectTransport{target: target}}
}

func (s *DiscoveryServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/$discovery/rest" {
		http.NotFound(w, r)
		return
	}
	name, _, _ := strings.Cut(r.Host, ".")
	k := key(name, r.URL.Query().Get("version"))

	s.mu.Lock()
	s.requests[k]++
	status, failing := s.status[k]
	body, ok := s.docs[k]
	s.mu.Unlock()

	switch {
	case failing:
		http.Error(w, http.StatusText(status), status)
	case !ok:
		http.NotFound(w, r)
	default:
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		_, _ = w.Write([]byte(body))
	}
}

func key(name, version string) string {
	return name + "_" + version
}

type redirectTransport struct {
	target *url.URL
}

func (t *redirectTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.URL.Scheme = t.target.Scheme
	out.URL.Host = t.target.Host
	if out.Host == "" {
		out.Host = req.URL.Host
	}
	return http.DefaultTransport.RoundTrip(out)
}
