package walker

import (
	"strconv"
	"strings"
)

// Path is the sequence of map keys (string) and slice indices (int) leading
// from the root to a node. The root itself has an empty path.
type Path []any

// Len returns the number of segments in the path.
func (p Path) Len() int {
	return len(p)
}

// Last returns the final segment, or nil for the root.
func (p Path) Last() any {
	if len(p) == 0 {
		return nil
	}
	return p[len(p)-1]
}

// LastKey returns the final segment if it is a map key.
func (p Path) LastKey() (string, bool) {
	key, ok := p.Last().(string)
	return key, ok
}

// String renders the path as a JSON Pointer (RFC 6901).
// The root renders as the empty string.
func (p Path) String() string {
	var b strings.Builder
	for _, seg := range p {
		b.WriteByte('/')
		switch s := seg.(type) {
		case string:
			b.WriteString(escapePointer(s))
		case int:
			b.WriteString(strconv.Itoa(s))
		}
	}
	return b.String()
}

// with returns a new path with seg appended. The receiver's backing array is
// never shared, so visitors may retain the paths they are given.
func (p Path) with(seg any) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escapePointer(s string) string {
	return pointerEscaper.Replace(s)
}
