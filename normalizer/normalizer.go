// Package normalizer rewrites the "schemas" section of a discovery document
// into the form the validator expects.
//
// Discovery documents name schemas and properties in camelCase or PascalCase.
// After normalization every schema name, schema "id", property name and
// "$ref" target is snake_case, and every top-level schema carries
// "unevaluatedProperties": false so undeclared properties are rejected.
//
// Normalization is idempotent: normalizing an already normalized schema set
// returns an equal schema set.
package normalizer

import (
	"maps"
	"slices"

	"github.com/erraggy/discoverytools/internal/naming"
	"github.com/erraggy/discoverytools/walker"
)

// Schema keywords the normalizer reads or writes.
const (
	RefKey                   = "$ref"
	IDKey                    = "id"
	PropertiesKey            = "properties"
	UnevaluatedPropertiesKey = "unevaluatedProperties"
)

// Normalize returns a normalized copy of a discovery document's "schemas"
// mapping. The input is not modified.
func Normalize(schemas map[string]any) map[string]any {
	out, _ := walker.Transform(schemas, Visit).(map[string]any)
	return out
}

// Visit applies the normalization rules to one node of the "schemas" tree.
// The rules run in a fixed order because later rules read keys renamed by
// earlier ones.
func Visit(path walker.Path, node map[string]any) walker.Action {
	depth := path.Len()
	last, _ := path.LastKey()

	// Schema names.
	if depth == 0 {
		renameKeys(node)
	}

	// Schema ids follow their schema names.
	if depth == 1 {
		if id, ok := node[IDKey].(string); ok {
			node[IDKey] = naming.Underscore(id)
		}
		node[UnevaluatedPropertiesKey] = false
	}

	// Property names.
	if last == PropertiesKey {
		renameKeys(node)
	}

	// Inside "properties", "$ref" is a property name, not a reference.
	if last != PropertiesKey {
		if ref, ok := node[RefKey].(string); ok {
			node[RefKey] = naming.Underscore(ref)
		}
	}

	return walker.Continue
}

// renameKeys rewrites every key of m to snake_case. When two keys collide the
// one sorting last wins.
func renameKeys(m map[string]any) {
	renamed := make(map[string]any, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		renamed[naming.Underscore(key)] = m[key]
	}
	clear(m)
	maps.Copy(m, renamed)
}
