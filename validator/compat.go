package validator

import (
	"strconv"

	"github.com/erraggy/discoverytools/walker"
)

// compatible returns a copy of a discovery schema that a JSON Schema
// draft 2020-12 compiler accepts.
//
// Discovery documents use a few keyword forms that the draft 2020-12
// metaschema rejects:
//   - "required": true on a property (parameter syntax, carries no constraint here)
//   - "type": "any"
//   - "minimum" and "maximum" written as strings
//
// The boolean and "any" forms are dropped; numeric strings are converted and
// other strings dropped. The input is not modified.
func compatible(schema map[string]any) map[string]any {
	return walker.Transform(schema, func(_ walker.Path, node map[string]any) walker.Action {
		if _, ok := node["required"].(bool); ok {
			delete(node, "required")
		}
		if t, ok := node["type"].(string); ok && t == "any" {
			delete(node, "type")
		}
		for _, key := range []string{"minimum", "maximum"} {
			s, ok := node[key].(string)
			if !ok {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				node[key] = f
			} else {
				delete(node, key)
			}
		}
		return walker.Continue
	}).(map[string]any)
}
