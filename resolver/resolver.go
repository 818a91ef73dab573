package resolver

import (
	"context"
	"net/url"
	"strings"

	"github.com/erraggy/discoverytools/discoveryerrors"
	"github.com/erraggy/discoverytools/loader"
)

// Resolver resolves references against the schemas of one API.
type Resolver struct {
	loader *loader.Loader
	id     loader.Identity
	ctx    context.Context
	logger loader.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger. Default: loader.NopLogger
func WithLogger(l loader.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithContext sets the context used when a resolution triggers a fetch.
// Default: context.Background()
func WithContext(ctx context.Context) Option {
	return func(r *Resolver) {
		if ctx != nil {
			r.ctx = ctx
		}
	}
}

// New creates a Resolver for the API identified by id.
func New(l *loader.Loader, id loader.Identity, opts ...Option) *Resolver {
	r := &Resolver{
		loader: l,
		id:     id,
		ctx:    context.Background(),
		logger: loader.NopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Identity returns the API identity the resolver reads schemas from.
func (r *Resolver) Identity() loader.Identity {
	return r.id
}

// Resolve returns the schema a reference URI points to. The returned map is
// the loader's cached definition and must not be modified.
//
// Loader failures are returned as is. A name with no schema, or a URI that
// cannot be parsed, yields a *discoveryerrors.SchemaNotFoundError.
func (r *Resolver) Resolve(uri string) (map[string]any, error) {
	name, err := SchemaName(uri)
	if err != nil {
		return nil, &discoveryerrors.SchemaNotFoundError{Ref: uri, Cause: err}
	}

	r.logger.Debug("reading schema", "api", r.id.String(), "schema", name)

	schema, ok, err := r.loader.Lookup(r.ctx, r.id, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &discoveryerrors.SchemaNotFoundError{Name: name, Ref: uri}
	}
	return schema, nil
}

// Load implements the jsonschema URLLoader interface.
func (r *Resolver) Load(uri string) (any, error) {
	schema, err := r.Resolve(uri)
	if err != nil {
		return nil, err
	}
	return schema, nil
}

// SchemaName returns the schema name a reference URI names: its path
// without the leading slash. Opaque URIs such as "urn:person" name their
// opaque part.
func SchemaName(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	if u.Opaque != "" {
		return u.Opaque, nil
	}
	return strings.TrimPrefix(u.Path, "/"), nil
}
