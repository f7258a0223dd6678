package schema

import (
	"testing"
	"time"
)

func TestInfer_Types(t *testing.T) {
	sample := Record{
		"id":         int64(3),
		"name":       "Harnais",
		"quantity":   float64(12),
		"mandatory":  true,
		"checked_at": time.Now(),
		"tags":       []any{"EPI", "hauteur"},
		"risks":      []any{map[string]any{"id": float64(1), "name": "Chute"}},
		"site":       map[string]any{"id": float64(2), "name": "Usine Nord"},
		"picto":      map[string]any{"mimeType": "image/png", "imageData": "aGVsbG8="},
		"meta":       map[string]any{"source": "import"},
	}
	fields := Infer(sample)

	byKey := map[string]FieldConfig{}
	for _, f := range fields {
		byKey[f.Key] = f
	}

	want := map[string]FieldType{
		"name":       TypeText,
		"quantity":   TypeNumber,
		"mandatory":  TypeBoolean,
		"checked_at": TypeDate,
		"tags":       TypeValueList,
		"risks":      TypeRefList,
		"site":       TypeEntityRef,
		"picto":      TypeImage,
		"meta":       TypeObject,
	}
	for key, typ := range want {
		if byKey[key].Type != typ {
			t.Fatalf("%s: want %s, got %s", key, typ, byKey[key].Type)
		}
	}

	if f := byKey["id"]; !f.Hidden || !f.ReadOnly {
		t.Fatalf("id must be hidden and read-only: %+v", f)
	}
	if byKey["tags"].ItemType != TypeText {
		t.Fatalf("tags item type: %s", byKey["tags"].ItemType)
	}
	if byKey["checked_at"].Label != "Checked at" {
		t.Fatalf("label: %q", byKey["checked_at"].Label)
	}
}

func TestInfer_OrderIsStable(t *testing.T) {
	sample := Record{"b": "x", "a": "y", "c": "z"}
	fields := Infer(sample)
	if fields[0].Key != "a" || fields[1].Key != "b" || fields[2].Key != "c" {
		t.Fatalf("keys must sort: %v", fields)
	}
	for i, f := range fields {
		if f.Order != i {
			t.Fatalf("order: %+v", fields)
		}
	}
}

func TestInfer_EmptyListDefaultsToText(t *testing.T) {
	fields := Infer(Record{"tags": []any{}})
	if fields[0].Type != TypeValueList || fields[0].ItemType != TypeText {
		t.Fatalf("got %+v", fields[0])
	}
}
