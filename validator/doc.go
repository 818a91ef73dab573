// Package validator checks JSON-compatible objects against the schemas of a
// Google discovery document.
//
// A Validator is bound to one API identity. Validating against a schema name
// compiles the root schema {"$ref": name}; every reference the engine meets is
// resolved through a resolver.Resolver, which reads normalized schemas from a
// shared loader.Loader. Schemas are strict: object properties that a schema
// does not declare are rejected.
//
//	l := loader.New()
//	v := validator.New(l, loader.NewIdentity("sheets", "v4"))
//	err := v.Validate(ctx, "grid_data", map[string]any{"start_row": 1})
//
// # Errors
//
// Validate returns nil when the object conforms. Otherwise it returns one of:
//   - *discoveryerrors.ValidationError: the object does not conform; only the
//     first issue reported by the engine is carried
//   - *discoveryerrors.SchemaNotFoundError: the schema, or a schema it
//     references, is not defined by the API
//   - *discoveryerrors.FetchError or *discoveryerrors.ParseError: the
//     discovery document could not be loaded
//
// # Engines
//
// The default engine is built on github.com/santhosh-tekuri/jsonschema/v6 and
// evaluates schemas as JSON Schema draft 2020-12. A different Engine can be
// supplied with WithEngine.
package validator
