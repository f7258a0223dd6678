package relations

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"

	"previplan/ent"
	"previplan/internal/engine/schema"
	"previplan/internal/httpx/kit/testutil"
	"previplan/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
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
	return store.New(client)
}

func seedDocAndRisk(t *testing.T, s *store.Store) (pdpID, riskID int64) {
	t.Helper()
	ctx := context.Background()
	pdpOps, _ := s.Ops("pdp")
	pdp, err := pdpOps.Create(ctx, schema.Record{"reference": "PDP-2026-001"})
	if err != nil {
		t.Fatalf("pdp: %v", err)
	}
	pdpID, _ = pdp.ID()

	riskOps, _ := s.Ops("risk")
	rk, err := riskOps.Create(ctx, schema.Record{"title": "Chute de hauteur", "level": "high"})
	if err != nil {
		t.Fatalf("risk: %v", err)
	}
	riskID, _ = rk.ID()
	return pdpID, riskID
}

func newApp(s *store.Store) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Get("/documents/:docType/:id/relations", ListHandler(s))
		app.Post("/documents/:docType/:id/relations", LinkHandler(s))
		app.Post("/documents/:docType/:id/relations/:relID/answer", AnswerHandler(s))
	})
}

func post(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("post %s: %v", path, err)
	}
	return res
}

func TestLinkAnswerFlow(t *testing.T) {
	s := newTestStore(t)
	app := newApp(s)
	pdpID, riskID := seedDocAndRisk(t, s)
	base := fmt.Sprintf("/documents/pdp/%d/relations", pdpID)

	// link
	res := post(t, app, base, LinkRequest{ChildType: "risk", ChildID: riskID})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("link: status=%d", res.StatusCode)
	}
	var env struct {
		Data store.RelationRow `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Data.Applies || env.Data.ChildID != riskID {
		t.Fatalf("row: %+v", env.Data)
	}
	if env.Data.Child["title"] != "Chute de hauteur" {
		t.Fatalf("child not resolved: %+v", env.Data.Child)
	}
	relID := env.Data.ID

	// answer no: row survives with applies=false
	res = post(t, app, fmt.Sprintf("%s/%d/answer", base, relID), AnswerRequest{Applies: false})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("answer: status=%d", res.StatusCode)
	}
	env.Data = store.RelationRow{}
	_ = json.NewDecoder(res.Body).Decode(&env)
	if env.Data.Applies {
		t.Fatalf("want applies=false: %+v", env.Data)
	}

	// re-link revives the same row
	res = post(t, app, base, LinkRequest{ChildType: "risk", ChildID: riskID})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("revive: status=%d", res.StatusCode)
	}
	env.Data = store.RelationRow{}
	_ = json.NewDecoder(res.Body).Decode(&env)
	if env.Data.ID != relID || !env.Data.Applies {
		t.Fatalf("revive must reuse the row: %+v", env.Data)
	}

	// list shows exactly one row
	lreq := httptest.NewRequest(http.MethodGet, base, nil)
	lres, err := app.Test(lreq, 5000)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var list struct {
		Data []store.RelationRow `json:"data"`
	}
	if err := json.NewDecoder(lres.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Data) != 1 {
		t.Fatalf("want 1 row, got %d", len(list.Data))
	}
}

func TestLinkErrors(t *testing.T) {
	s := newTestStore(t)
	app := newApp(s)
	pdpID, riskID := seedDocAndRisk(t, s)
	base := fmt.Sprintf("/documents/pdp/%d/relations", pdpID)

	if res := post(t, app, base, LinkRequest{ChildType: "risk", ChildID: 9999}); res.StatusCode != http.StatusNotFound {
		t.Fatalf("missing child: status=%d", res.StatusCode)
	}
	if res := post(t, app, base, LinkRequest{ChildType: "worker", ChildID: riskID}); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad child type: status=%d", res.StatusCode)
	}
	if res := post(t, app, base, LinkRequest{}); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty payload: status=%d", res.StatusCode)
	}
	if res := post(t, app, fmt.Sprintf("/documents/site/%d/relations", pdpID), LinkRequest{ChildType: "risk", ChildID: riskID}); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad doc type: status=%d", res.StatusCode)
	}
	if res := post(t, app, fmt.Sprintf("%s/9999/answer", base), AnswerRequest{Applies: true}); res.StatusCode != http.StatusNotFound {
		t.Fatalf("missing relation: status=%d", res.StatusCode)
	}
}
