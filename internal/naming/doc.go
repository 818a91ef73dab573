// Package naming provides the case conversion used to normalize schema and
// property names.
//
// [Underscore] follows the Rails ActiveSupport "underscore" inflection
// (without custom acronyms), since the schema names published in discovery
// documents are expected to normalize the same way across client libraries.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
