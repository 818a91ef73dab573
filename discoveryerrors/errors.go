package discoveryerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrFetch indicates a discovery document could not be fetched.
	ErrFetch = errors.New("fetch error")

	// ErrParse indicates a discovery document could not be parsed.
	ErrParse = errors.New("parse error")

	// ErrSchemaNotFound indicates a schema name has no entry in the schema set.
	ErrSchemaNotFound = errors.New("schema not found")

	// ErrValidation indicates an object does not conform to its schema.
	ErrValidation = errors.New("validation error")
)

// FetchError represents a failure to retrieve a discovery document.
type FetchError struct {
	// URL is the discovery document URL
	URL string
	// StatusCode is the HTTP status received (0 if the request never completed)
	StatusCode int
	// Cause is the underlying transport error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP error '%d' loading schemas from '%s'", e.StatusCode, e.URL)
	}
	msg := "fetch error"
	if e.URL != "" {
		msg += fmt.Sprintf(" loading schemas from '%s'", e.URL)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// ParseError represents a discovery document that is not valid JSON or lacks
// a well-formed "schemas" section.
type ParseError struct {
	// Source is the URL or identifier of the document
	Source string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// SchemaNotFoundError represents a lookup of a schema name that the
// normalized schema set does not contain.
type SchemaNotFoundError struct {
	// Name is the schema name that was looked up
	Name string
	// Ref is the reference URI that produced the lookup, if any
	Ref string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SchemaNotFoundError) Error() string {
	target := e.Ref
	if target == "" {
		target = e.Name
	}
	msg := fmt.Sprintf("schema for %s not found", target)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SchemaNotFoundError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SchemaNotFoundError) Is(target error) bool {
	return target == ErrSchemaNotFound
}

// ValidationError represents an object that does not conform to a schema.
// Only the first issue reported by the validation engine is carried.
type ValidationError struct {
	// Schema is the name of the schema the object was validated against
	Schema string
	// Message is the description of the first reported issue
	Message string
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("object does not conform to %s: %s", e.Schema, e.Message)
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
