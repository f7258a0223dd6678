package format

import (
	"strings"
	"testing"
	"time"

	"previplan/internal/engine/schema"
)

func TestValue_NullPlaceholder(t *testing.T) {
	for _, typ := range []schema.FieldType{
		schema.TypeText, schema.TypeNumber, schema.TypeDate,
		schema.TypeEnum, schema.TypeEntityRef, schema.TypeImage,
	} {
		r := Value(schema.FieldConfig{Key: "x", Type: typ}, nil)
		if r.Text != Placeholder {
			t.Fatalf("type %s: want %q, got %q", typ, Placeholder, r.Text)
		}
	}
}

func TestValue_Boolean(t *testing.T) {
	f := schema.FieldConfig{Key: "ok", Type: schema.TypeBoolean}
	if r := Value(f, true); r.Kind != KindChip || r.Text != BooleanYes {
		t.Fatalf("true: got %+v", r)
	}
	if r := Value(f, false); r.Kind != KindChip || r.Text != BooleanNo {
		t.Fatalf("false: got %+v", r)
	}
	if Value(f, true).Positive() == false {
		t.Fatalf("yes chip should be positive")
	}
	if Value(f, false).Positive() {
		t.Fatalf("no chip should not be positive")
	}
}

func TestValue_Date(t *testing.T) {
	f := schema.FieldConfig{Key: "start_date", Type: schema.TypeDate}
	ts := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
	if r := Value(f, ts); r.Text != "07/03/2026" {
		t.Fatalf("time.Time: got %q", r.Text)
	}
	// RFC 3339 strings come from JSON payloads
	if r := Value(f, "2026-03-07T10:00:00Z"); r.Text != "07/03/2026" {
		t.Fatalf("rfc3339 string: got %q", r.Text)
	}
}

func TestValue_Enum(t *testing.T) {
	f := schema.FieldConfig{
		Key:  "status",
		Type: schema.TypeEnum,
		Options: []schema.EnumOption{
			{Value: "active", Label: "Actif"},
			{Value: "archived", Label: "Archivé"},
		},
	}
	if r := Value(f, "active"); r.Text != "Actif" {
		t.Fatalf("declared value: got %q", r.Text)
	}
	// undeclared values pass through raw
	if r := Value(f, "legacy"); r.Text != "legacy" {
		t.Fatalf("undeclared value: got %q", r.Text)
	}
}

func TestValue_TextTruncation(t *testing.T) {
	f := schema.FieldConfig{Key: "notes", Type: schema.TypeText}
	long := strings.Repeat("é", 100)
	r := Value(f, long)
	runes := []rune(r.Text)
	if len(runes) != maxTextRunes+1 {
		t.Fatalf("want %d runes, got %d", maxTextRunes+1, len(runes))
	}
	if runes[len(runes)-1] != '…' {
		t.Fatalf("want ellipsis suffix, got %q", string(runes[len(runes)-1]))
	}
	short := strings.Repeat("a", maxTextRunes)
	if r := Value(f, short); r.Text != short {
		t.Fatalf("text at the limit must not truncate")
	}
}

func TestValue_Number_FrenchDecimal(t *testing.T) {
	f := schema.FieldConfig{Key: "n", Type: schema.TypeNumber}
	if r := Value(f, 42.0); r.Text != "42" {
		t.Fatalf("integral float: got %q", r.Text)
	}
	if r := Value(f, 3.5); r.Text != "3,50" {
		t.Fatalf("fraction uses decimal comma: got %q", r.Text)
	}
	if r := Value(f, 7); r.Text != "7" {
		t.Fatalf("int: got %q", r.Text)
	}
}

func TestValue_ValueListChips(t *testing.T) {
	f := schema.FieldConfig{Key: "certs", Type: schema.TypeValueList, ItemType: schema.TypeText}

	if r := Value(f, []any{}); r.Text != Placeholder {
		t.Fatalf("empty list: got %+v", r)
	}

	r := Value(f, []any{"H0B0", "CACES"})
	if r.Kind != KindChipList || len(r.Chips) != 2 || r.Overflow != 0 {
		t.Fatalf("two items: got %+v", r)
	}

	r = Value(f, []any{"H0B0", "CACES", "SST", "GIES1"})
	if len(r.Chips) != 3 {
		t.Fatalf("want 2 chips + overflow, got %v", r.Chips)
	}
	if r.Overflow != 2 || r.Chips[2] != "+2" {
		t.Fatalf("overflow: got %+v", r)
	}
}

func TestValue_RefList(t *testing.T) {
	f := schema.FieldConfig{Key: "risks", Type: schema.TypeRefList, RefType: "risk"}
	r := Value(f, []any{int64(1), int64(2), int64(3)})
	if r.Kind != KindChip || r.Text != "3 lié(s)" {
		t.Fatalf("got %+v", r)
	}
	// id-bearing objects count the same as bare ids
	r = Value(f, []any{map[string]any{"id": float64(9), "name": "Chute"}})
	if r.Text != "1 lié(s)" {
		t.Fatalf("got %+v", r)
	}
}

func TestValue_EntityRef(t *testing.T) {
	f := schema.FieldConfig{Key: "site_id", Type: schema.TypeEntityRef, RefType: "site"}
	if r := Value(f, int64(5)); r.Text != "#5" {
		t.Fatalf("bare id: got %q", r.Text)
	}
	if r := Value(f, map[string]any{"id": float64(5), "name": "Usine Nord"}); r.Text != "Usine Nord" {
		t.Fatalf("embedded object: got %q", r.Text)
	}
	if r := Value(f, map[string]any{"id": float64(5)}); r.Text != "#5" {
		t.Fatalf("object without name: got %q", r.Text)
	}
}

func TestValue_Image(t *testing.T) {
	f := schema.FieldConfig{Key: "picto", Type: schema.TypeImage}
	v := map[string]any{"mimeType": "image/png", "imageData": "aGVsbG8="}
	if r := Value(f, v); r.Text != "image/png" {
		t.Fatalf("got %q", r.Text)
	}
	if r := Value(f, map[string]any{}); r.Text != Placeholder {
		t.Fatalf("incomplete image: got %q", r.Text)
	}
}

func TestValue_CustomFormatterWins(t *testing.T) {
	f := schema.FieldConfig{
		Key:    "status",
		Type:   schema.TypeBoolean,
		Format: func(v any) string { return "custom" },
	}
	if r := Value(f, true); r.Text != "custom" || r.Kind != KindText {
		t.Fatalf("got %+v", r)
	}
	// nil still short-circuits before the custom formatter
	if r := Value(f, nil); r.Text != Placeholder {
		t.Fatalf("nil with formatter: got %q", r.Text)
	}
}
