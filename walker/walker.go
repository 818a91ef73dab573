package walker

import (
	"fmt"
	"maps"
	"slices"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Visitor is called for every map node reached by the walk.
// The node may be mutated in place.
type Visitor func(path Path, node map[string]any) Action

// Walk visits every map reachable from root through maps and slices,
// parents before children. Scalars are not visited.
func Walk(root any, visit Visitor) {
	if visit == nil {
		return
	}
	walk(nil, root, visit)
}

// Transform deep-copies root, walks the copy with visit and returns it.
// root itself is never modified.
func Transform(root any, visit Visitor) any {
	cp := DeepCopy(root)
	Walk(cp, visit)
	return cp
}

// walk returns false once a visitor has asked to stop.
func walk(path Path, node any, visit Visitor) bool {
	switch n := node.(type) {
	case map[string]any:
		switch visit(path, n) {
		case Stop:
			return false
		case SkipChildren:
			return true
		}
		// Keys are read after the visit so renamed entries are descended into.
		for _, key := range slices.Sorted(maps.Keys(n)) {
			if !walk(path.with(key), n[key], visit) {
				return false
			}
		}
	case []any:
		for i, elem := range n {
			if !walk(path.with(i), elem, visit) {
				return false
			}
		}
	}
	return true
}
