package directory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	discovery "google.golang.org/api/discovery/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/erraggy/discoverytools"
	"github.com/erraggy/discoverytools/discoveryerrors"
	"github.com/erraggy/discoverytools/loader"
)

// Entry describes one API version listed in the directory.
type Entry struct {
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version" yaml:"version"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Preferred   bool   `json:"preferred" yaml:"preferred"`
	// DiscoveryURL is the discovery document URL published by the directory
	DiscoveryURL string `json:"discoveryUrl,omitempty" yaml:"discoveryUrl,omitempty"`
}

// Identity returns the loader identity of the entry's API version.
func (e Entry) Identity() loader.Identity {
	return loader.NewIdentity(e.Name, e.Version)
}

// Client lists the discovery directory.
type Client struct {
	svc    *discovery.Service
	logger loader.Logger
}

// Option configures a Client.
type Option func(*config)

type config struct {
	endpoint   string
	httpClient *http.Client
	userAgent  string
	logger     loader.Logger
}

// WithEndpoint overrides the Discovery Service base URL,
// e.g. "https://www.googleapis.com/discovery/v1/".
func WithEndpoint(endpoint string) Option {
	return func(c *config) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient sets the HTTP client used for directory requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.httpClient = client
	}
}

// WithUserAgent sets the User-Agent header.
// Default: "discoverytools/vX.Y.Z"
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger. Default: loader.NopLogger
func WithLogger(l loader.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Client.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &config{
		userAgent: discoverytools.UserAgent(),
		logger:    loader.NopLogger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	clientOpts := []option.ClientOption{option.WithoutAuthentication()}
	if cfg.endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(cfg.endpoint))
	}
	if cfg.httpClient != nil {
		clientOpts = append(clientOpts, option.WithHTTPClient(cfg.httpClient))
	}

	svc, err := discovery.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("directory: failed to create discovery service: %w", err)
	}
	// Set on the service so it also applies to caller-supplied HTTP clients.
	svc.UserAgent = cfg.userAgent
	return &Client{svc: svc, logger: cfg.logger}, nil
}

// ListOption filters a directory listing.
type ListOption func(*listConfig)

type listConfig struct {
	name      string
	preferred bool
}

// WithName only lists versions of the named API.
func WithName(name string) ListOption {
	return func(c *listConfig) {
		c.name = name
	}
}

// PreferredOnly only lists the preferred version of each API.
func PreferredOnly() ListOption {
	return func(c *listConfig) {
		c.preferred = true
	}
}

// List returns directory entries sorted by name, then version.
func (c *Client) List(ctx context.Context, opts ...ListOption) ([]Entry, error) {
	cfg := &listConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	call := c.svc.Apis.List().Context(ctx)
	if cfg.name != "" {
		call = call.Name(cfg.name)
	}
	if cfg.preferred {
		call = call.Preferred(true)
	}

	c.logger.Debug("listing discovery directory", "name", cfg.name, "preferred", cfg.preferred)
	list, err := call.Do()
	if err != nil {
		fetchErr := &discoveryerrors.FetchError{URL: c.svc.BasePath + "apis", Cause: err}
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			fetchErr.StatusCode = apiErr.Code
		}
		c.logger.Error("failed to list discovery directory", "error", fetchErr)
		return nil, fetchErr
	}

	entries := make([]Entry, 0, len(list.Items))
	for _, item := range list.Items {
		if item == nil {
			continue
		}
		entries = append(entries, Entry{
			Name:         item.Name,
			Version:      item.Version,
			Title:        item.Title,
			Description:  item.Description,
			Preferred:    item.Preferred,
			DiscoveryURL: item.DiscoveryRestUrl,
		})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if n := strings.Compare(a.Name, b.Name); n != 0 {
			return n
		}
		return strings.Compare(a.Version, b.Version)
	})
	return entries, nil
}
