package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/erraggy/discoverytools"
	"github.com/erraggy/discoverytools/discoveryerrors"
)

const (
	// DefaultTimeout bounds a single discovery document request made by the
	// default HTTP client.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxBodySize is the largest discovery document accepted, in bytes.
	// The largest public documents are a few megabytes.
	DefaultMaxBodySize = 32 * 1024 * 1024
)

// Fetcher retrieves a discovery document. A non-2xx status is returned as a
// status, not as an error; err is reserved for requests that did not complete.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (status int, body []byte, err error)
}

// FetcherFunc adapts an ordinary function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) (int, []byte, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context, url string) (int, []byte, error) {
	return f(ctx, url)
}

// HTTPFetcher fetches discovery documents over HTTP.
type HTTPFetcher struct {
	// Client is the HTTP client used for requests.
	// If nil, a client with DefaultTimeout is used.
	Client *http.Client
	// UserAgent is sent with every request.
	// If empty, discoverytools.UserAgent() is used.
	UserAgent string
	// MaxBodySize limits the response body size (0 means DefaultMaxBodySize).
	MaxBodySize int64
}

// Ensure HTTPFetcher implements Fetcher at compile time.
var _ Fetcher = (*HTTPFetcher)(nil)

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (int, []byte, error) {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	userAgent := f.UserAgent
	if userAgent == "" {
		userAgent = discoverytools.UserAgent()
	}
	limit := f.MaxBodySize
	if limit <= 0 {
		limit = DefaultMaxBodySize
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("loader: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req) //nolint:gosec // G107 - URL is built from the API identity
	if err != nil {
		return 0, nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("loader: failed to read response body: %w", err)
	}
	if int64(len(body)) > limit {
		return resp.StatusCode, nil, &discoveryerrors.FetchError{
			URL:   url,
			Cause: fmt.Errorf("response exceeds maximum size limit (%d bytes)", limit),
		}
	}
	return resp.StatusCode, body, nil
}
