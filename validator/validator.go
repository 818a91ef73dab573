package validator

import (
	"context"
	"net/url"
	"sync"

	"github.com/erraggy/discoverytools/discoveryerrors"
	"github.com/erraggy/discoverytools/loader"
	"github.com/erraggy/discoverytools/resolver"
)

// Validator validates objects against the schemas of one API.
type Validator struct {
	loader *loader.Loader
	id     loader.Identity
	logger loader.Logger
	engine Engine

	// compiled caches CompiledSchema values by schema name when engine is a
	// Compiler. Entries live as long as the Validator.
	compiled sync.Map
}

// New creates a Validator for the API identified by id. Schemas are read
// through l, so validators sharing a Loader share its cache.
func New(l *loader.Loader, id loader.Identity, opts ...Option) *Validator {
	v := &Validator{
		loader: l,
		id:     id,
		logger: loader.NopLogger{},
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.engine == nil {
		v.engine = NewJSONSchemaEngine()
	}
	return v
}

// Validate checks that object conforms to the schema called schemaName.
//
// object must be JSON-compatible: nil, bool, numbers, string, []any and
// map[string]any, as produced by json.Unmarshal into an any.
func (v *Validator) Validate(ctx context.Context, schemaName string, object any) error {
	if schemaName == "" {
		return &discoveryerrors.SchemaNotFoundError{Name: schemaName, Ref: `""`}
	}

	log := v.logger.With("api", v.id.String(), "schema", schemaName)
	log.Debug("validating object", "object", object)

	issues, err := v.evaluate(ctx, schemaName, object)
	if err != nil {
		return err
	}
	if len(issues) == 0 {
		log.Debug("object conforms")
		return nil
	}

	verr := &discoveryerrors.ValidationError{Schema: schemaName, Message: issues[0].String()}
	log.Error(verr.Error())
	return verr
}

// evaluate runs the engine, reusing a compiled schema when the engine
// supports compilation.
func (v *Validator) evaluate(ctx context.Context, schemaName string, object any) ([]Issue, error) {
	compiler, ok := v.engine.(Compiler)
	if ok {
		if cs, found := v.compiled.Load(schemaName); found {
			return cs.(CompiledSchema).Validate(object)
		}
	}

	res := resolver.New(v.loader, v.id, resolver.WithContext(ctx), resolver.WithLogger(v.logger))
	root := map[string]any{"$ref": (&url.URL{Path: schemaName}).String()}
	if !ok {
		return v.engine.Validate(root, res.Resolve, object)
	}

	cs, err := compiler.Compile(root, res.Resolve)
	if err != nil {
		return nil, err
	}
	actual, _ := v.compiled.LoadOrStore(schemaName, cs)
	return actual.(CompiledSchema).Validate(object)
}

// ValidateObject validates object against the schema called schemaName of the
// API identified by id.
func ValidateObject(ctx context.Context, l *loader.Loader, id loader.Identity, schemaName string, object any, opts ...Option) error {
	return New(l, id, opts...).Validate(ctx, schemaName, object)
}
