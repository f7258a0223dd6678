package esx

import (
	"testing"

	"previplan/internal/engine/schema"
)

func TestBuildDoc(t *testing.T) {
	cfg := &schema.EntityConfig{
		Type:         "site",
		SearchFields: []string{"name", "city"},
		Fields: []schema.FieldConfig{
			{Key: "name", Type: schema.TypeText},
			{Key: "city", Type: schema.TypeText},
			{Key: "headcount", Type: schema.TypeNumber},
		},
	}
	rec := schema.Record{
		"id":        int64(7),
		"name":      "Usine Nord",
		"city":      "Lille",
		"headcount": float64(120),
	}
	doc := BuildDoc(cfg, rec)
	if doc.EntityType != "site" || doc.ID != 7 {
		t.Fatalf("doc: %+v", doc)
	}
	if doc.Text != "Usine Nord Lille" {
		t.Fatalf("text: %q", doc.Text)
	}
	if doc.Fields["headcount"] != float64(120) {
		t.Fatalf("fields: %v", doc.Fields)
	}

	// empty search fields are skipped, not joined as blanks
	doc = BuildDoc(cfg, schema.Record{"id": int64(8), "name": "Dépôt Est"})
	if doc.Text != "Dépôt Est" {
		t.Fatalf("text: %q", doc.Text)
	}
}
