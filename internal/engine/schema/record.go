package schema

import (
	"encoding/json"
	"time"
)

// Record is a loosely-typed entity instance: arbitrary domain fields plus
// an optional numeric identifier under "id". Conformance to the entity's
// config is expected but not enforced; the typed accessors coerce the
// shapes JSON decoding produces (float64 numbers, RFC 3339 date strings).
type Record map[string]any

// ID returns the numeric identifier, when present.
func (r Record) ID() (int64, bool) {
	return AsID(r["id"])
}

// AsID coerces the usual id carriers (int, int64, float64, json.Number)
// to int64.
func AsID(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}

// String returns the field as a string, "" when absent or differently typed.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Bool returns the field as a bool; any non-bool is false.
func (r Record) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// Float returns the field as a float64, coercing integer kinds.
func (r Record) Float(key string) (float64, bool) {
	switch n := r[key].(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// Time returns the field as a time.Time, accepting RFC 3339 strings.
func (r Record) Time(key string) (time.Time, bool) {
	switch t := r[key].(type) {
	case time.Time:
		return t, true
	case string:
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// Slice returns the field as a []any, nil when absent.
func (r Record) Slice(key string) []any {
	s, _ := r[key].([]any)
	return s
}

// RefIDs returns the referenced ids stored in a RefList field. Both bare
// ids and id-bearing objects are accepted; only the ids survive.
func (r Record) RefIDs(key string) []int64 {
	items := r.Slice(key)
	out := make([]int64, 0, len(items))
	for _, it := range items {
		if id, ok := AsID(it); ok {
			out = append(out, id)
			continue
		}
		if m, ok := it.(map[string]any); ok {
			if id, ok := AsID(m["id"]); ok {
				out = append(out, id)
			}
		}
	}
	return out
}

// Clone returns a deep copy. Maps and slices are copied recursively;
// scalar values are shared (they are immutable).
func (r Record) Clone() Record {
	if r == nil {
		return Record{}
	}
	return Record(cloneMap(r))
}

func cloneMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case Record:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// IsEmpty reports whether a value counts as missing for validation:
// nil, blank string, or an empty slice.
func IsEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	}
	return false
}
