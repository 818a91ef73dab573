package validator

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// ResolveFunc returns the schema a reference URI points to.
type ResolveFunc func(uri string) (map[string]any, error)

// Engine evaluates an object against a root schema. References reached from
// root are resolved with resolve. A resolve failure is returned as the error;
// a non-conforming object is reported through issues.
type Engine interface {
	Validate(root map[string]any, resolve ResolveFunc, object any) ([]Issue, error)
}

// Compiler is implemented by engines that can prepare a root schema once and
// evaluate it against many objects. Validator caches compiled schemas when
// its engine is a Compiler.
type Compiler interface {
	Compile(root map[string]any, resolve ResolveFunc) (CompiledSchema, error)
}

// CompiledSchema is a root schema with every reference already resolved.
// It must be safe for concurrent use.
type CompiledSchema interface {
	Validate(object any) ([]Issue, error)
}

// Issue describes one way an object fails a schema.
type Issue struct {
	// InstanceLocation is the JSON pointer of the offending value ("" is the root)
	InstanceLocation string
	// KeywordLocation is the absolute location of the failing schema keyword
	KeywordLocation string
	// Message is a human-readable description
	Message string
}

// String returns the human-readable description, prefixed with the location
// of the offending value.
func (i Issue) String() string {
	if i.InstanceLocation == "" {
		return fmt.Sprintf("value at root %s", i.Message)
	}
	return fmt.Sprintf("value at '%s' %s", i.InstanceLocation, i.Message)
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// jsonPointer joins reference tokens into a JSON pointer.
func jsonPointer(tokens []string) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteByte('/')
		b.WriteString(pointerEscaper.Replace(tok))
	}
	return b.String()
}

// sortIssues orders issues by instance location, then keyword location, so
// the first issue does not depend on map iteration order.
func sortIssues(issues []Issue) {
	slices.SortStableFunc(issues, func(a, b Issue) int {
		return cmp.Or(
			cmp.Compare(a.InstanceLocation, b.InstanceLocation),
			cmp.Compare(a.KeywordLocation, b.KeywordLocation),
			cmp.Compare(a.Message, b.Message),
		)
	})
}
