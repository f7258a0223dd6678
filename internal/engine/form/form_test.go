package form

import (
	"context"
	"errors"
	"testing"

	"previplan/internal/engine/crud"
	"previplan/internal/engine/schema"
)

func workerConfig() *schema.EntityConfig {
	min := 0.0
	max := 120.0
	return &schema.EntityConfig{
		Type:       "worker",
		Name:       "Intervenant",
		PluralName: "Intervenants",
		Fields: []schema.FieldConfig{
			{Key: "id", Type: schema.TypeNumber, Hidden: true, ReadOnly: true},
			{Key: "first_name", Label: "Prénom", Type: schema.TypeText, Required: true},
			{Key: "last_name", Label: "Nom", Type: schema.TypeText, Required: true},
			{
				Key: "email", Label: "Email", Type: schema.TypeText,
				Pattern:        `^[^@\s]+@[^@\s]+\.[^@\s]+$`,
				PatternMessage: "Adresse email invalide",
			},
			{Key: "age", Label: "Âge", Type: schema.TypeNumber, Min: &min, Max: &max},
			{Key: "company_id", Label: "Entreprise", Type: schema.TypeEntityRef, RefType: "company", Required: true},
			{Key: "certifications", Label: "Habilitations", Type: schema.TypeValueList, ItemType: schema.TypeText},
		},
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := workerConfig()
	errs := Validate(cfg, schema.Record{
		"email": "not-an-email",
		"age":   float64(200),
	})
	// three missing required fields plus two constraint violations
	for _, key := range []string{"first_name", "last_name", "company_id", "email", "age"} {
		if errs[key] == "" {
			t.Fatalf("missing error for %s: %v", key, errs)
		}
	}
	if errs["email"] != "Adresse email invalide" {
		t.Fatalf("pattern message not used: %q", errs["email"])
	}
	if errs["age"] != "Maximum value is 120" {
		t.Fatalf("max message: %q", errs["age"])
	}
}

func TestValidate_CleanRecord(t *testing.T) {
	cfg := workerConfig()
	errs := Validate(cfg, schema.Record{
		"first_name": "Marie",
		"last_name":  "Durand",
		"email":      "marie.durand@example.fr",
		"age":        float64(34),
		"company_id": int64(2),
	})
	if len(errs) != 0 {
		t.Fatalf("want clean, got %v", errs)
	}
}

func TestValidate_OptionalEmptySkipsConstraints(t *testing.T) {
	cfg := workerConfig()
	errs := Validate(cfg, schema.Record{
		"first_name": "Marie",
		"last_name":  "Durand",
		"company_id": int64(2),
		"email":      "",
	})
	if errs["email"] != "" {
		t.Fatalf("empty optional field must not hit the pattern: %v", errs)
	}
}

func TestValidate_CustomValidator(t *testing.T) {
	cfg := &schema.EntityConfig{Fields: []schema.FieldConfig{
		{Key: "code", Type: schema.TypeText, Validate: func(v any) string {
			if s, _ := v.(string); s == "forbidden" {
				return "Code réservé"
			}
			return ""
		}},
	}}
	if errs := Validate(cfg, schema.Record{"code": "forbidden"}); errs["code"] != "Code réservé" {
		t.Fatalf("got %v", errs)
	}
	if errs := Validate(cfg, schema.Record{"code": "ok"}); len(errs) != 0 {
		t.Fatalf("got %v", errs)
	}
}

func TestSubmit_GatesOnValidation(t *testing.T) {
	s := NewSession(workerConfig(), nil)
	s.OpenCreate()
	s.Set("first_name", "Marie")

	calls := 0
	ran, err := s.Submit(context.Background(), func(context.Context, schema.Record) error {
		calls++
		return nil
	})
	if ran || err != nil || calls != 0 {
		t.Fatalf("invalid form must not reach the adapter: ran=%v err=%v calls=%d", ran, err, calls)
	}
	if len(s.Errors()) == 0 {
		t.Fatalf("errors should be populated")
	}

	s.Set("last_name", "Durand")
	s.Set("company_id", int64(1))
	ran, err = s.Submit(context.Background(), func(context.Context, schema.Record) error {
		calls++
		return nil
	})
	if !ran || err != nil || calls != 1 {
		t.Fatalf("clean form: ran=%v err=%v calls=%d", ran, err, calls)
	}
	if len(s.Errors()) != 0 {
		t.Fatalf("errors should clear on clean submit: %v", s.Errors())
	}
}

func TestSubmit_AdapterErrorPropagates(t *testing.T) {
	s := NewSession(workerConfig(), nil)
	s.OpenCreate()
	s.Set("first_name", "Marie")
	s.Set("last_name", "Durand")
	s.Set("company_id", int64(1))

	boom := errors.New("constraint violation")
	ran, err := s.Submit(context.Background(), func(context.Context, schema.Record) error { return boom })
	if !ran || !errors.Is(err, boom) {
		t.Fatalf("ran=%v err=%v", ran, err)
	}
	// the dialog stays open for a retry
	if s.Mode() != Create {
		t.Fatalf("dialog must stay open after adapter failure")
	}
}

func TestSubmit_ClosedForm(t *testing.T) {
	s := NewSession(workerConfig(), nil)
	if _, err := s.Submit(context.Background(), nil); err == nil {
		t.Fatalf("submitting a closed form must fail")
	}
}

func TestOptions_CachedPerOpen(t *testing.T) {
	calls := 0
	resolver := crud.ResolverFunc(func(_ context.Context, entityType string) ([]schema.Record, error) {
		calls++
		return []schema.Record{{"id": int64(1), "name": "Vinci"}}, nil
	})
	s := NewSession(workerConfig(), resolver)
	s.OpenCreate()

	for i := 0; i < 3; i++ {
		opts, err := s.Options(context.Background(), "company_id")
		if err != nil || len(opts) != 1 {
			t.Fatalf("opts=%v err=%v", opts, err)
		}
	}
	if calls != 1 {
		t.Fatalf("resolver must run once per open dialog, ran %d times", calls)
	}

	// reopening drops the cache
	s.Close()
	s.OpenCreate()
	if _, err := s.Options(context.Background(), "company_id"); err != nil {
		t.Fatalf("err=%v", err)
	}
	if calls != 2 {
		t.Fatalf("want fresh resolve after reopen, got %d", calls)
	}
}

func TestOptions_NonRefField(t *testing.T) {
	s := NewSession(workerConfig(), nil)
	s.OpenCreate()
	if _, err := s.Options(context.Background(), "first_name"); err == nil {
		t.Fatalf("non-reference field must error")
	}
}

func TestOpenEdit_ClonesTarget(t *testing.T) {
	target := schema.Record{
		"id":             int64(7),
		"first_name":     "Marie",
		"certifications": []any{"H0B0"},
	}
	s := NewSession(workerConfig(), nil)
	s.OpenEdit(target)
	s.Set("first_name", "Jeanne")
	s.AppendItem("certifications")

	if target.String("first_name") != "Marie" {
		t.Fatalf("edit leaked into the source record")
	}
	if len(target.Slice("certifications")) != 1 {
		t.Fatalf("list edit leaked into the source record")
	}
}

func TestSet_ReadOnlyIgnored(t *testing.T) {
	s := NewSession(workerConfig(), nil)
	s.OpenEdit(schema.Record{"id": int64(7)})
	s.Set("id", int64(99))
	if id, _ := s.Values().ID(); id != 7 {
		t.Fatalf("read-only field must not change, got %d", id)
	}
	// setting on a closed form is a no-op, not a panic
	s.Close()
	s.Set("first_name", "x")
}

func TestValueListOperations(t *testing.T) {
	s := NewSession(workerConfig(), nil)
	s.OpenCreate()

	s.AppendItem("certifications")
	s.AppendItem("certifications")
	items := s.Values().Slice("certifications")
	if len(items) != 2 || items[0] != "" {
		t.Fatalf("append: %v", items)
	}

	s.SetItem("certifications", 0, "H0B0")
	s.SetItem("certifications", 5, "out-of-range")
	items = s.Values().Slice("certifications")
	if items[0] != "H0B0" || len(items) != 2 {
		t.Fatalf("set: %v", items)
	}

	s.RemoveItem("certifications", 1)
	items = s.Values().Slice("certifications")
	if len(items) != 1 || items[0] != "H0B0" {
		t.Fatalf("remove: %v", items)
	}

	// value-list ops on a non-list field are no-ops
	s.AppendItem("first_name")
	if s.Values()["first_name"] != nil {
		t.Fatalf("append on non-list changed the field")
	}
}

func TestRefListOperations(t *testing.T) {
	cfg := &schema.EntityConfig{Fields: []schema.FieldConfig{
		{Key: "risks", Type: schema.TypeRefList, RefType: "risk"},
	}}
	s := NewSession(cfg, nil)
	s.OpenCreate()

	s.AddRef("risks", 1)
	s.AddRef("risks", 2)
	s.AddRef("risks", 1) // duplicate
	if ids := s.Values().RefIDs("risks"); len(ids) != 2 {
		t.Fatalf("dedupe failed: %v", ids)
	}

	s.RemoveRef("risks", 1)
	ids := s.Values().RefIDs("risks")
	if len(ids) != 1 || ids[0] != 2 {
		t.Fatalf("remove: %v", ids)
	}
}

// Minimal valid PNG header; DetectContentType only needs the magic bytes.
var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func TestAttachImage(t *testing.T) {
	cfg := &schema.EntityConfig{Fields: []schema.FieldConfig{
		{Key: "picto", Type: schema.TypeImage},
		{Key: "name", Type: schema.TypeText},
	}}
	s := NewSession(cfg, nil)
	s.OpenCreate()

	if err := s.AttachImage("picto", pngBytes); err != nil {
		t.Fatalf("attach: %v", err)
	}
	v := s.Values()["picto"]
	mime, data, err := DecodeImage(v)
	if err != nil || mime != "image/png" || len(data) != len(pngBytes) {
		t.Fatalf("round trip: mime=%q len=%d err=%v", mime, len(data), err)
	}

	if err := s.AttachImage("name", pngBytes); err == nil {
		t.Fatalf("non-image field must error")
	}
	if err := s.AttachImage("picto", []byte("plain text")); err == nil {
		t.Fatalf("unsupported type must error")
	}
	if err := s.AttachImage("picto", nil); err == nil {
		t.Fatalf("empty payload must error")
	}
}
