package contentful

import "sort"

// Unwrap normalizes a field value that may be keyed by locale into a single
// value. Link stubs, inlined records, rich-text documents, and arrays pass
// through untouched; a plain object with no structural keys is treated as a
// locale map and its first value (by sorted key order) is returned. The
// pipeline is single-locale by convention, so first-key-wins is an accepted
// limitation rather than locale negotiation; sorting keeps the result
// deterministic across runs. Unwrap never fails, and is idempotent for
// scalar and structural values.
func Unwrap(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case map[string]any:
		if isStructural(val) {
			return val
		}
		if len(val) == 0 {
			return nil
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		// Only the wrapper itself is peeled: the value under the locale key
		// may be any shape, including a plain object with no structural keys
		// (an asset file payload), and must come back untouched.
		return val[keys[0]]
	default:
		return v
	}
}

// isStructural reports whether the map is already a known record shape
// rather than a locale wrapper: link stubs and inlined records carry "sys",
// rich-text documents carry "nodeType".
func isStructural(m map[string]any) bool {
	if _, ok := m["sys"]; ok {
		return true
	}
	if _, ok := m["nodeType"]; ok {
		return true
	}
	return false
}

// UnwrapString unwraps and asserts to a string, returning "" otherwise.
func UnwrapString(v any) string {
	s, _ := Unwrap(v).(string)
	return s
}

// UnwrapBool unwraps and asserts to a bool, returning false otherwise.
func UnwrapBool(v any) bool {
	b, _ := Unwrap(v).(bool)
	return b
}

// UnwrapMap unwraps and asserts to a map, returning nil otherwise.
func UnwrapMap(v any) map[string]any {
	m, _ := Unwrap(v).(map[string]any)
	return m
}

// UnwrapSlice unwraps and asserts to a slice, returning nil otherwise.
func UnwrapSlice(v any) []any {
	s, _ := Unwrap(v).([]any)
	return s
}
