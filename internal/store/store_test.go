package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"previplan/ent"
	"previplan/internal/engine/crud"
	"previplan/internal/engine/form"
	"previplan/internal/engine/schema"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := "file:ent?mode=memory&cache=shared&_fk=1"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, _ = db.Exec("PRAGMA foreign_keys = ON")
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSiteOps_CRUD(t *testing.T) {
	s := New(newTestClient(t))
	ops, ok := s.Ops("site")
	if !ok {
		t.Fatalf("site binding missing")
	}
	ctx := context.Background()

	created, err := ops.Create(ctx, schema.Record{
		"name":        "Usine Nord",
		"address":     "12 rue des Forges",
		"city":        "Lille",
		"postal_code": "59000",
		"status":      "active",
		"start_date":  "2026-02-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id, ok := created.ID()
	if !ok || id == 0 {
		t.Fatalf("no id: %v", created)
	}
	if created.String("status") != "active" {
		t.Fatalf("status: %v", created["status"])
	}
	if _, ok := created.Time("start_date"); !ok {
		t.Fatalf("start_date should round-trip: %v", created["start_date"])
	}
	if created["end_date"] != nil {
		t.Fatalf("unset date must come back nil")
	}

	got, err := ops.GetByID(ctx, id)
	if err != nil || got.String("name") != "Usine Nord" {
		t.Fatalf("get: %v %v", got, err)
	}

	updated, err := ops.Update(ctx, id, schema.Record{
		"name":        "Usine Nord",
		"address":     "12 rue des Forges",
		"city":        "Lille",
		"postal_code": "59000",
		"status":      "closed",
	})
	if err != nil || updated.String("status") != "closed" {
		t.Fatalf("update: %v %v", updated, err)
	}

	all, err := ops.GetAll(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("all: %v %v", all, err)
	}

	if err := ops.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := ops.GetByID(ctx, id); !errors.Is(err, crud.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := ops.Delete(ctx, id); !errors.Is(err, crud.ErrNotFound) {
		t.Fatalf("double delete: %v", err)
	}
}

func TestWorkerOps_RefAndList(t *testing.T) {
	client := newTestClient(t)
	s := New(client)
	ctx := context.Background()

	companyOps, _ := s.Ops("company")
	co, err := companyOps.Create(ctx, schema.Record{
		"name":  "Vinci Énergies",
		"siret": "12345678901234",
	})
	if err != nil {
		t.Fatalf("company: %v", err)
	}
	coID, _ := co.ID()

	ops, _ := s.Ops("worker")
	w, err := ops.Create(ctx, schema.Record{
		"first_name":     "Marie",
		"last_name":      "Durand",
		"email":          "marie@example.fr",
		"company_id":     coID,
		"certifications": []any{"H0B0", "CACES"},
	})
	if err != nil {
		t.Fatalf("worker: %v", err)
	}
	if got, _ := schema.AsID(w["company_id"]); got != coID {
		t.Fatalf("company ref: %v", w["company_id"])
	}
	certs := w.Slice("certifications")
	if len(certs) != 2 || certs[0] != "H0B0" {
		t.Fatalf("certifications: %v", certs)
	}
}

func TestRiskOps_ImageRoundTrip(t *testing.T) {
	s := New(newTestClient(t))
	ops, _ := s.Ops("risk")
	ctx := context.Background()

	img, err := form.EncodeImage([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	created, err := ops.Create(ctx, schema.Record{
		"title": "Chute de hauteur",
		"level": "high",
		"logo":  map[string]any(img),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	mime, _, err := form.DecodeImage(created["logo"])
	if err != nil || mime != "image/png" {
		t.Fatalf("logo round trip: %v %v", mime, err)
	}

	// a risk without a logo renders nil, leaving the placeholder image
	bare, err := ops.Create(ctx, schema.Record{"title": "Bruit"})
	if err != nil {
		t.Fatalf("create bare: %v", err)
	}
	if bare["logo"] != nil {
		t.Fatalf("want nil logo, got %v", bare["logo"])
	}
}

func TestRelations_LinkAnswerRevive(t *testing.T) {
	s := New(newTestClient(t))
	ctx := context.Background()

	siteOps, _ := s.Ops("site")
	st, _ := siteOps.Create(ctx, schema.Record{"name": "Usine Nord", "city": "Lille"})
	siteID, _ := st.ID()

	companyOps, _ := s.Ops("company")
	co, _ := companyOps.Create(ctx, schema.Record{"name": "Vinci"})
	coID, _ := co.ID()

	pdpOps, _ := s.Ops("pdp")
	pdp, err := pdpOps.Create(ctx, schema.Record{
		"reference":  "PDP-2026-001",
		"site_id":    siteID,
		"company_id": coID,
	})
	if err != nil {
		t.Fatalf("pdp: %v", err)
	}
	pdpID, _ := pdp.ID()

	riskOps, _ := s.Ops("risk")
	rk, _ := riskOps.Create(ctx, schema.Record{"title": "Chute", "level": "high"})
	riskID, _ := rk.ID()

	// link resolves the child record
	row, err := s.LinkChild(ctx, "pdp", pdpID, "risk", riskID)
	if err != nil {
		t.Fatalf("link: %v", err)
	}
	if !row.Applies || row.ChildType != "risk" || row.ChildID != riskID {
		t.Fatalf("row: %+v", row)
	}
	if row.Child.String("title") != "Chute" {
		t.Fatalf("child not resolved: %+v", row.Child)
	}

	// answering "no" keeps the row, flipped off
	answered, err := s.AnswerRelation(ctx, row.ID, false)
	if err != nil || answered.Applies {
		t.Fatalf("answer: %+v %v", answered, err)
	}
	rows, err := s.ListRelations(ctx, "pdp", pdpID)
	if err != nil || len(rows) != 1 {
		t.Fatalf("list: %v %v", rows, err)
	}

	// re-linking the same pair revives the existing row
	revived, err := s.LinkChild(ctx, "pdp", pdpID, "risk", riskID)
	if err != nil {
		t.Fatalf("revive: %v", err)
	}
	if revived.ID != row.ID || !revived.Applies {
		t.Fatalf("want same row applies=true, got %+v", revived)
	}
	rows, _ = s.ListRelations(ctx, "pdp", pdpID)
	if len(rows) != 1 {
		t.Fatalf("revive must not duplicate, got %d rows", len(rows))
	}

	// unknown ids and types
	if _, err := s.LinkChild(ctx, "pdp", pdpID, "risk", 9999); !errors.Is(err, crud.ErrNotFound) {
		t.Fatalf("missing child: %v", err)
	}
	if _, err := s.LinkChild(ctx, "pdp", pdpID, "worker", 1); err == nil {
		t.Fatalf("worker is not a linkable child type")
	}
	if _, err := s.ListRelations(ctx, "site", 1); err == nil {
		t.Fatalf("site is not a document type")
	}
	if _, err := s.AnswerRelation(ctx, 9999, true); !errors.Is(err, crud.ErrNotFound) {
		t.Fatalf("missing relation: %v", err)
	}
}

func TestPdpDelete_CascadesRelations(t *testing.T) {
	s := New(newTestClient(t))
	ctx := context.Background()

	pdpOps, _ := s.Ops("pdp")
	pdp, _ := pdpOps.Create(ctx, schema.Record{"reference": "PDP-2026-002"})
	pdpID, _ := pdp.ID()

	riskOps, _ := s.Ops("risk")
	rk, _ := riskOps.Create(ctx, schema.Record{"title": "Bruit"})
	riskID, _ := rk.ID()

	if _, err := s.LinkChild(ctx, "pdp", pdpID, "risk", riskID); err != nil {
		t.Fatalf("link: %v", err)
	}
	if err := pdpOps.Delete(ctx, pdpID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	rows, err := s.ListRelations(ctx, "pdp", pdpID)
	if err != nil || len(rows) != 0 {
		t.Fatalf("join rows must go with the document: %v %v", rows, err)
	}
	// the child survives
	if _, err := riskOps.GetByID(ctx, riskID); err != nil {
		t.Fatalf("child must survive: %v", err)
	}
}

func TestGetReferences(t *testing.T) {
	s := New(newTestClient(t))
	ctx := context.Background()

	companyOps, _ := s.Ops("company")
	_, _ = companyOps.Create(ctx, schema.Record{"name": "Vinci"})
	_, _ = companyOps.Create(ctx, schema.Record{"name": "Eiffage"})

	refs, err := s.GetReferences(ctx, "company")
	if err != nil || len(refs) != 2 {
		t.Fatalf("refs: %v %v", refs, err)
	}
	if _, err := s.GetReferences(ctx, "nope"); err == nil {
		t.Fatalf("unknown type must error")
	}
}

func TestConfigs_Consistency(t *testing.T) {
	s := New(newTestClient(t))
	configs := Configs()

	for _, typ := range s.Types() {
		cfg, ok := configs[typ]
		if !ok {
			t.Fatalf("no config for binding %q", typ)
		}
		if cfg.Type != typ {
			t.Fatalf("%s: type mismatch %q", typ, cfg.Type)
		}
		if cfg.Name == "" || cfg.PluralName == "" || cfg.DisplayField == "" {
			t.Fatalf("%s: incomplete config", typ)
		}
		if cfg.Field(cfg.DisplayField) == nil {
			t.Fatalf("%s: display field %q not declared", typ, cfg.DisplayField)
		}
		if cfg.DefaultSort != "" && cfg.Field(cfg.DefaultSort) == nil {
			t.Fatalf("%s: default sort %q not declared", typ, cfg.DefaultSort)
		}
		for _, f := range cfg.Fields {
			if f.Type == schema.TypeEntityRef || f.Type == schema.TypeRefList {
				if _, ok := configs[f.RefType]; !ok {
					t.Fatalf("%s.%s: unknown ref type %q", typ, f.Key, f.RefType)
				}
			}
		}
		for _, key := range cfg.EffectiveSearchFields() {
			if cfg.Field(key) == nil {
				t.Fatalf("%s: search field %q not declared", typ, key)
			}
		}
	}
	if len(configs) != len(s.Types()) {
		t.Fatalf("configs without bindings: %d vs %d", len(configs), len(s.Types()))
	}
}
