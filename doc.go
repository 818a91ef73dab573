// Package discoverytools validates data objects against the JSON Schemas
// published in API discovery documents.
//
// A discovery document describes one API version and carries a "schemas"
// section mapping schema names to JSON Schema definitions. discoverytools
// fetches that document once per API, normalizes the schemas so every schema
// and property name is snake_case and every schema rejects undeclared
// properties, and validates objects against a named schema.
//
// # Packages
//
//   - loader: fetch, normalize and cache the schemas of an API version
//   - resolver: resolve "$ref" targets against the cached schemas
//   - validator: validate an object against a named schema
//   - walker: generic pre-order visitor over decoded JSON values
//   - normalizer: the naming and strictness rules applied to fetched schemas
//   - directory: list the APIs published in the discovery directory
//   - discoveryerrors: error types for errors.Is / errors.As
//
// # Quick Start
//
//	l := loader.New()
//	id := loader.NewIdentity("sheets", "v4")
//
//	v := validator.New(l, id)
//	err := v.Validate(ctx, "batch_update_spreadsheet_request", map[string]any{
//		"requests": []any{},
//	})
//	if errors.Is(err, discoveryerrors.ErrValidation) {
//		// object does not conform
//	}
//
// List the schema names for an API:
//
//	names, err := l.SchemaNames(ctx, loader.NewIdentity("drive", "v3"))
package discoverytools
