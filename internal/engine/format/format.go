// Package format maps typed field values to display representations.
// Every function here is pure: same config and value, same output.
package format

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"previplan/internal/engine/schema"
)

// Placeholder stands in for null and undefined values.
const Placeholder = "—"

// maxTextRunes is the truncation threshold for plain text cells.
const maxTextRunes = 80

// maxListChips caps how many value-list items render as individual chips
// before collapsing into a "+N" overflow chip.
const maxListChips = 2

// Kind tells the caller which render shape to use.
type Kind int

const (
	KindText Kind = iota
	KindChip
	KindChipList
)

// Rendered is the display model for one cell.
type Rendered struct {
	Kind  Kind     `json:"kind"`
	Text  string   `json:"text,omitempty"`
	Chips []string `json:"chips,omitempty"`
	// Overflow is the number of items hidden behind the "+N" chip.
	Overflow int `json:"overflow,omitempty"`
}

// Positive reports whether a chip renders with the affirmative style
// (boolean yes, non-empty ref lists).
func (r Rendered) Positive() bool {
	return r.Kind == KindChip && r.Text != BooleanNo
}

// Boolean chip labels. The raw bool never reaches the caller.
const (
	BooleanYes = "Oui"
	BooleanNo  = "Non"
)

// The domain locale; grouping and collation follow it.
var printer = message.NewPrinter(language.French)

// Value renders a field value. Priority: null placeholder, then a custom
// formatter declared on the field, then dispatch on the declared type.
func Value(field schema.FieldConfig, v any) Rendered {
	if v == nil {
		return Rendered{Kind: KindText, Text: Placeholder}
	}
	if field.Format != nil {
		return Rendered{Kind: KindText, Text: field.Format(v)}
	}

	switch field.Type {
	case schema.TypeBoolean:
		if b, _ := v.(bool); b {
			return Rendered{Kind: KindChip, Text: BooleanYes}
		}
		return Rendered{Kind: KindChip, Text: BooleanNo}

	case schema.TypeDate:
		if t, ok := asTime(v); ok {
			return Rendered{Kind: KindText, Text: t.Format("02/01/2006")}
		}
		return Rendered{Kind: KindText, Text: text(v)}

	case schema.TypeEnum:
		return Rendered{Kind: KindText, Text: field.OptionLabel(text(v))}

	case schema.TypeEntityRef:
		return Rendered{Kind: KindText, Text: refText(v)}

	case schema.TypeRefList:
		n := len(schema.Record{"x": v}.RefIDs("x"))
		return Rendered{Kind: KindChip, Text: printer.Sprintf("%d lié(s)", n)}

	case schema.TypeValueList:
		return chipList(field, v)

	case schema.TypeNumber:
		if f, ok := asFloat(v); ok {
			return Rendered{Kind: KindText, Text: number(f)}
		}
		return Rendered{Kind: KindText, Text: text(v)}

	case schema.TypeImage:
		if m, ok := v.(map[string]any); ok {
			if mime, _ := m["mimeType"].(string); mime != "" {
				return Rendered{Kind: KindText, Text: mime}
			}
		}
		return Rendered{Kind: KindText, Text: Placeholder}

	case schema.TypeObject:
		return Rendered{Kind: KindText, Text: truncate(fmt.Sprintf("%v", v))}

	case schema.TypeText:
		return Rendered{Kind: KindText, Text: truncate(text(v))}
	}
	return Rendered{Kind: KindText, Text: truncate(text(v))}
}

// chipList renders the first items of a value list as chips and folds the
// rest into a single overflow indicator.
func chipList(field schema.FieldConfig, v any) Rendered {
	items, _ := v.([]any)
	if len(items) == 0 {
		return Rendered{Kind: KindText, Text: Placeholder}
	}
	out := Rendered{Kind: KindChipList}
	for i, it := range items {
		if i == maxListChips {
			break
		}
		out.Chips = append(out.Chips, itemText(field.ItemType, it))
	}
	if len(items) > maxListChips {
		out.Overflow = len(items) - maxListChips
		out.Chips = append(out.Chips, "+"+strconv.Itoa(out.Overflow))
	}
	return out
}

func itemText(t schema.FieldType, v any) string {
	switch t {
	case schema.TypeNumber:
		if f, ok := asFloat(v); ok {
			return number(f)
		}
	case schema.TypeBoolean:
		if b, _ := v.(bool); b {
			return BooleanYes
		}
		return BooleanNo
	case schema.TypeDate:
		if ts, ok := asTime(v); ok {
			return ts.Format("02/01/2006")
		}
	}
	return text(v)
}

// refText resolves an entity reference to its display string: the
// referenced object's name/title when embedded, else the bare id.
func refText(v any) string {
	if id, ok := schema.AsID(v); ok {
		return "#" + strconv.FormatInt(id, 10)
	}
	if m, ok := v.(map[string]any); ok {
		for _, key := range []string{"name", "title", "reference"} {
			if s, _ := m[key].(string); s != "" {
				return s
			}
		}
		if id, ok := schema.AsID(m["id"]); ok {
			return "#" + strconv.FormatInt(id, 10)
		}
	}
	return text(v)
}

func number(f float64) string {
	if f == float64(int64(f)) {
		return printer.Sprintf("%d", int64(f))
	}
	return printer.Sprintf("%.2f", f)
}

func asTime(v any) (time.Time, bool) {
	return schema.Record{"x": v}.Time("x")
}

func asFloat(v any) (float64, bool) {
	return schema.Record{"x": v}.Float("x")
}

func text(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxTextRunes {
		return s
	}
	return string(runes[:maxTextRunes]) + "…"
}
