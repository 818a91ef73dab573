// Package walker provides a pre-order traversal of decoded JSON values.
//
// A decoded JSON document is a tree of map[string]any, []any and scalar
// leaves. The walker calls a [Visitor] at every map it reaches, passing the
// [Path] of keys and indices from the root. The visitor may mutate the map it
// is given, including renaming its keys: children are read after the visitor
// returns, so the walk descends into the renamed entries.
//
// # Quick Start
//
// Collect every "$ref" value in a schema tree:
//
//	var refs []string
//	walker.Walk(schemas, func(path walker.Path, node map[string]any) walker.Action {
//	    if ref, ok := node["$ref"].(string); ok {
//	        refs = append(refs, ref)
//	    }
//	    return walker.Continue
//	})
//
// Rewrite a tree without touching the caller's copy:
//
//	out := walker.Transform(schemas, func(path walker.Path, node map[string]any) walker.Action {
//	    delete(node, "description")
//	    return walker.Continue
//	})
//
// # Flow Control
//
// Visitors return an [Action] to control traversal:
//
//   - [Continue]: continue traversing children and siblings normally
//   - [SkipChildren]: skip all children of the current node, continue with siblings
//   - [Stop]: stop the entire walk immediately
//
// # Ordering
//
// Map entries are visited in sorted key order and slice elements in index
// order, so a walk over the same value is deterministic. There is no cycle
// detection; decoded JSON is always a tree.
package walker
