// Package discoveryerrors provides structured error types for discoverytools.
//
// Import path: github.com/erraggy/discoverytools/discoveryerrors
//
// Every failure surfaced by the loader, resolver and validator is one of four
// types, each matched by a sentinel through [errors.Is]:
//
//   - [FetchError] / [ErrFetch]: the discovery document could not be retrieved
//     (non-2xx status or transport failure)
//   - [ParseError] / [ErrParse]: the document body is not JSON or has no usable
//     "schemas" section
//   - [SchemaNotFoundError] / [ErrSchemaNotFound]: a schema name or "$ref"
//     target is not in the normalized schema set
//   - [ValidationError] / [ErrValidation]: the object does not conform to the
//     schema
//
// # Usage Examples
//
//	err := v.Validate(ctx, "person", obj)
//	switch {
//	case errors.Is(err, discoveryerrors.ErrValidation):
//	    // bad input
//	case errors.Is(err, discoveryerrors.ErrSchemaNotFound):
//	    // bad schema name
//	}
//
// Extract details with errors.As():
//
//	var fetchErr *discoveryerrors.FetchError
//	if errors.As(err, &fetchErr) {
//	    fmt.Printf("status %d from %s\n", fetchErr.StatusCode, fetchErr.URL)
//	}
package discoveryerrors
