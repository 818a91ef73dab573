// Package resolver turns schema references into normalized schema
// definitions.
//
// A Resolver is bound to one API identity and reads schemas through a
// loader.Loader, so every reference resolved during a validation is served
// from the loader's cache after the first fetch. The schema name is the path
// of the reference URI without its leading slash:
//
//	r := resolver.New(l, loader.NewIdentity("sheets", "v4"))
//	schema, err := r.Resolve("discovery://schema/grid_data")
//
// Resolver implements the URLLoader interface of
// github.com/santhosh-tekuri/jsonschema/v6 through its Load method.
package resolver
