package timeline

import "strconv"

// Takeout exports carry no fixed schema: the same field may be an object or
// an array, numbers arrive as float64, int or string depending on the export
// generation. These helpers give the extraction strategies a uniform view
// over the decoded JSON without ever mutating it.

// asMap returns v as a JSON object.
func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// asSlice returns v as a JSON array.
func asSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

// objectsIn normalizes an object-or-array field into a slice of objects.
// A single object yields a one-element slice; non-object array elements are
// skipped.
func objectsIn(v any) []map[string]any {
	if m, ok := asMap(v); ok {
		return []map[string]any{m}
	}
	s, ok := asSlice(v)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(s))
	for _, e := range s {
		if m, ok := asMap(e); ok {
			out = append(out, m)
		}
	}
	return out
}

// childMap returns the object stored under key, if any.
func childMap(m map[string]any, key string) (map[string]any, bool) {
	return asMap(m[key])
}

// number coerces a scalar into a float64. JSON numbers decode as float64;
// some export generations encode numeric fields as strings.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// firstNumber resolves the first key in m holding a usable number. Later
// keys never overwrite an earlier match.
func firstNumber(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			if f, ok := number(v); ok {
				return f, true
			}
		}
	}
	return 0, false
}

// optionalNumber resolves the first usable number among keys as a nullable
// value, for best-effort fields like accuracy and speed.
func optionalNumber(m map[string]any, keys ...string) *float64 {
	if f, ok := firstNumber(m, keys...); ok {
		return &f
	}
	return nil
}
