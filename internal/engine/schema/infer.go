package schema

import (
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Infer builds a best-guess field list from a sample record. It is a
// convenience default for prototypes and ad-hoc entities; an authored
// EntityConfig always takes precedence. Inference never fails; shapes it
// does not recognize fall back to text.
func Infer(sample Record) []FieldConfig {
	keys := lo.Keys(sample)
	sort.Strings(keys)

	fields := make([]FieldConfig, 0, len(keys))
	for i, key := range keys {
		f := FieldConfig{
			Key:   key,
			Label: labelize(key),
			Type:  inferType(sample[key]),
			Order: i,
		}
		if key == "id" {
			f.Hidden = true
			f.ReadOnly = true
		}
		if f.Type == TypeValueList {
			f.ItemType = inferItemType(sample.Slice(key))
		}
		fields = append(fields, f)
	}
	return fields
}

func inferType(v any) FieldType {
	switch t := v.(type) {
	case string:
		return TypeText
	case float64, int, int64:
		return TypeNumber
	case bool:
		return TypeBoolean
	case time.Time:
		return TypeDate
	case []any:
		if len(t) == 0 {
			return TypeValueList
		}
		if m, ok := t[0].(map[string]any); ok {
			if _, has := AsID(m["id"]); has {
				return TypeRefList
			}
			return TypeValueList
		}
		return TypeValueList
	case map[string]any:
		if _, has := t["imageData"]; has {
			if _, mime := t["mimeType"]; mime {
				return TypeImage
			}
		}
		if _, has := AsID(t["id"]); has {
			return TypeEntityRef
		}
		return TypeObject
	}
	return TypeText
}

func inferItemType(items []any) FieldType {
	if len(items) == 0 {
		return TypeText
	}
	switch items[0].(type) {
	case float64, int, int64:
		return TypeNumber
	case bool:
		return TypeBoolean
	case time.Time:
		return TypeDate
	}
	return TypeText
}

// labelize turns a snake_case key into a human label ("start_date" ->
// "Start date").
func labelize(key string) string {
	s := strings.ReplaceAll(key, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
