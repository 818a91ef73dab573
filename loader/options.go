package loader

import "net/http"

// Option configures a Loader.
type Option func(*config)

type config struct {
	fetcher     Fetcher
	httpClient  *http.Client
	userAgent   string
	maxBodySize int64
	host        string
	logger      Logger
	metrics     *Metrics
}

// WithFetcher replaces the HTTP fetcher. WithHTTPClient, WithUserAgent and
// WithMaxBodySize have no effect when a custom fetcher is set.
func WithFetcher(f Fetcher) Option {
	return func(c *config) {
		c.fetcher = f
	}
}

// WithHTTPClient sets the HTTP client used by the default fetcher.
// If the client is nil, this option has no effect.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithUserAgent sets the User-Agent header sent by the default fetcher.
// Default: "discoverytools/vX.Y.Z"
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}

// WithMaxBodySize sets the largest discovery document accepted, in bytes.
// Non-positive values keep DefaultMaxBodySize.
func WithMaxBodySize(n int64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxBodySize = n
		}
	}
}

// WithHost sets the domain discovery documents are fetched from.
// Default: DefaultHost
func WithHost(host string) Option {
	return func(c *config) {
		if host != "" {
			c.host = host
		}
	}
}

// WithLogger sets the logger. Default: NopLogger
func WithLogger(l Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records fetches and cache lookups in m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}
