package loader

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/erraggy/discoverytools/discoveryerrors"
	"github.com/erraggy/discoverytools/normalizer"
)

// SchemaSet maps normalized schema names to normalized schema definitions.
// It is shared by every caller of Loader.Load and must not be modified.
type SchemaSet map[string]map[string]any

// Names returns the schema names in sorted order.
func (s SchemaSet) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

// Loader fetches, normalizes and caches discovery document schemas.
// The zero value is not usable; create Loaders with New.
type Loader struct {
	fetcher Fetcher
	host    string
	logger  Logger
	metrics *Metrics

	// loadMu serializes the check-fetch-store section for all identities.
	loadMu  sync.Mutex
	entries sync.Map // Identity -> SchemaSet
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	cfg := &config{
		host:   DefaultHost,
		logger: NopLogger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	fetcher := cfg.fetcher
	if fetcher == nil {
		fetcher = &HTTPFetcher{
			Client:      cfg.httpClient,
			UserAgent:   cfg.userAgent,
			MaxBodySize: cfg.maxBodySize,
		}
	}

	return &Loader{
		fetcher: fetcher,
		host:    cfg.host,
		logger:  cfg.logger,
		metrics: cfg.metrics,
	}
}

// Load returns the normalized schemas of the API identified by id, fetching
// the discovery document on first use.
func (l *Loader) Load(ctx context.Context, id Identity) (SchemaSet, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("loader: API name and version are required, got %q", id.String())
	}

	if set, ok := l.cached(id); ok {
		l.metrics.observeLookup(true)
		return set, nil
	}

	l.loadMu.Lock()
	defer l.loadMu.Unlock()

	// Another caller may have stored the entry while we waited.
	if set, ok := l.cached(id); ok {
		l.metrics.observeLookup(true)
		return set, nil
	}
	l.metrics.observeLookup(false)

	set, err := l.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	l.entries.Store(id, set)
	return set, nil
}

// SchemaNames returns the sorted normalized schema names of an API.
func (l *Loader) SchemaNames(ctx context.Context, id Identity) ([]string, error) {
	set, err := l.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return set.Names(), nil
}

// Lookup returns the normalized schema called name from an API, loading the
// API's schemas if needed. ok is false when the API has no such schema.
func (l *Loader) Lookup(ctx context.Context, id Identity, name string) (schema map[string]any, ok bool, err error) {
	set, err := l.Load(ctx, id)
	if err != nil {
		return nil, false, err
	}
	schema, ok = set[name]
	return schema, ok, nil
}

// Reset drops every cached schema set. It exists to isolate tests; normal
// operation never needs it.
func (l *Loader) Reset() {
	l.loadMu.Lock()
	defer l.loadMu.Unlock()
	l.entries.Clear()
}

func (l *Loader) cached(id Identity) (SchemaSet, bool) {
	v, ok := l.entries.Load(id)
	if !ok {
		return nil, false
	}
	return v.(SchemaSet), true
}

func (l *Loader) fetch(ctx context.Context, id Identity) (SchemaSet, error) {
	url := id.URL(l.host)
	log := l.logger.With("api", id.String(), "url", url)
	start := time.Now()

	status, body, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		l.metrics.observeFetch(id.String(), OutcomeError, time.Since(start))
		var fetchErr *discoveryerrors.FetchError
		if !errors.As(err, &fetchErr) {
			fetchErr = &discoveryerrors.FetchError{URL: url, Cause: err}
		}
		log.Error("failed to fetch discovery document", "error", fetchErr)
		return nil, fetchErr
	}
	if status < 200 || status > 299 {
		l.metrics.observeFetch(id.String(), OutcomeHTTPError, time.Since(start))
		fetchErr := &discoveryerrors.FetchError{URL: url, StatusCode: status}
		log.Error(fetchErr.Error(), "status", status)
		return nil, fetchErr
	}

	set, err := parseSchemas(url, body)
	if err != nil {
		l.metrics.observeFetch(id.String(), OutcomeParseError, time.Since(start))
		return nil, err
	}

	l.metrics.observeFetch(id.String(), OutcomeSuccess, time.Since(start))
	log.Debug("loaded discovery schemas", "count", len(set))
	return set, nil
}

// parseSchemas decodes a discovery document and returns its normalized
// "schemas" section.
func parseSchemas(source string, body []byte) (SchemaSet, error) {
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &discoveryerrors.ParseError{Source: source, Message: "invalid JSON", Cause: err}
	}

	raw, ok := doc["schemas"].(map[string]any)
	if !ok {
		return nil, &discoveryerrors.ParseError{Source: source, Message: `missing or malformed "schemas" section`}
	}

	normalized := normalizer.Normalize(raw)
	set := make(SchemaSet, len(normalized))
	for name, v := range normalized {
		schema, ok := v.(map[string]any)
		if !ok {
			return nil, &discoveryerrors.ParseError{
				Source:  source,
				Message: fmt.Sprintf("schema %q is %T, not an object", name, v),
			}
		}
		set[name] = schema
	}
	return set, nil
}
