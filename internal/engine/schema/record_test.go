package schema

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRecordAccessors(t *testing.T) {
	r := Record{
		"id":    float64(7), // JSON numbers decode to float64
		"name":  "Usine Nord",
		"open":  true,
		"count": json.Number("42"),
		"since": "2026-01-15T08:00:00Z",
	}

	if id, ok := r.ID(); !ok || id != 7 {
		t.Fatalf("id: %d %v", id, ok)
	}
	if r.String("name") != "Usine Nord" || r.String("missing") != "" {
		t.Fatalf("string accessor")
	}
	if !r.Bool("open") || r.Bool("name") {
		t.Fatalf("bool accessor")
	}
	if f, ok := r.Float("count"); !ok || f != 42 {
		t.Fatalf("float from json.Number: %v %v", f, ok)
	}
	ts, ok := r.Time("since")
	if !ok || ts.Month() != time.January {
		t.Fatalf("time from rfc3339: %v %v", ts, ok)
	}
	if _, ok := r.Time("name"); ok {
		t.Fatalf("non-date string must not parse")
	}
}

func TestRefIDs(t *testing.T) {
	r := Record{"risks": []any{
		float64(1),
		int64(2),
		map[string]any{"id": float64(3), "name": "Chute"},
		"not-an-id",
	}}
	ids := r.RefIDs("risks")
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Fatalf("got %v", ids)
	}
	if got := r.RefIDs("missing"); len(got) != 0 {
		t.Fatalf("missing field: %v", got)
	}
}

func TestClone_Deep(t *testing.T) {
	r := Record{
		"name": "Original",
		"tags": []any{"a"},
		"meta": map[string]any{"k": "v"},
	}
	c := r.Clone()
	c["name"] = "Copy"
	c.Slice("tags")[0] = "b"
	c["meta"].(map[string]any)["k"] = "w"

	if r.String("name") != "Original" {
		t.Fatalf("scalar aliased")
	}
	if r.Slice("tags")[0] != "a" {
		t.Fatalf("slice aliased")
	}
	if r["meta"].(map[string]any)["k"] != "v" {
		t.Fatalf("map aliased")
	}

	var nilRec Record
	if got := nilRec.Clone(); got == nil {
		t.Fatalf("nil clone must return an empty record")
	}
}

func TestIsEmpty(t *testing.T) {
	for _, v := range []any{nil, "", []any{}} {
		if !IsEmpty(v) {
			t.Fatalf("%v should be empty", v)
		}
	}
	for _, v := range []any{"x", float64(0), false, []any{"a"}} {
		if IsEmpty(v) {
			t.Fatalf("%v should not be empty", v)
		}
	}
}

func TestEntityConfigHelpers(t *testing.T) {
	cfg := &EntityConfig{
		Type: "device",
		Fields: []FieldConfig{
			{Key: "id", Hidden: true},
			{Key: "name", Required: true},
			{Key: "quantity"},
		},
	}
	if cfg.Key() != "id" {
		t.Fatalf("key default")
	}
	if cfg.Field("name") == nil || cfg.Field("nope") != nil {
		t.Fatalf("field lookup")
	}
	if got := cfg.VisibleFields(); len(got) != 2 {
		t.Fatalf("visible: %v", got)
	}
	if got := cfg.RequiredFields(); len(got) != 1 || got[0] != "name" {
		t.Fatalf("required: %v", got)
	}
	// search fields default to all visible keys
	if got := cfg.EffectiveSearchFields(); len(got) != 2 || got[0] != "name" {
		t.Fatalf("search fields: %v", got)
	}
	cfg.SearchFields = []string{"name"}
	if got := cfg.EffectiveSearchFields(); len(got) != 1 {
		t.Fatalf("explicit search fields: %v", got)
	}
}

func TestOptionLabel(t *testing.T) {
	f := FieldConfig{Options: []EnumOption{{Value: "high", Label: "Élevé"}}}
	if f.OptionLabel("high") != "Élevé" {
		t.Fatalf("declared")
	}
	if f.OptionLabel("other") != "other" {
		t.Fatalf("fallback")
	}
}
