package walker

// DeepCopy recursively copies maps and slices of a decoded JSON value.
// Scalars are immutable and returned as-is.
func DeepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		cp := make(map[string]any, len(t))
		for k, val := range t {
			cp[k] = DeepCopy(val)
		}
		return cp
	case []any:
		cp := make([]any, len(t))
		for i, val := range t {
			cp[i] = DeepCopy(val)
		}
		return cp
	default:
		return v
	}
}
