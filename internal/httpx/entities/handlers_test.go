package entities

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"

	"previplan/ent"
	"previplan/internal/httpx/kit/testutil"
	"previplan/internal/refcache"
	"previplan/internal/store"
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

func newTestApp(t *testing.T) (*fiber.App, *Deps) {
	t.Helper()
	st := store.New(newTestClient(t))
	cache := refcache.NewMemory()
	deps := &Deps{
		Store:    st,
		Configs:  store.Configs(),
		Resolver: refcache.NewResolver(cache, st),
		Cache:    cache,
		PageSize: 20,
	}
	app := testutil.NewApp(func(app *fiber.App) {
		app.Get("/entities/:type", ListHandler(deps))
		app.Post("/entities/:type", CreateHandler(deps))
		app.Get("/entities/:type/export", ExportHandler(deps))
		app.Post("/entities/:type/import", ImportHandler(deps))
		app.Get("/entities/:type/schema", SchemaHandler(deps))
		app.Post("/entities/:type/bulk-delete", BulkDeleteHandler(deps))
		app.Get("/entities/:type/:id", GetHandler(deps))
		app.Put("/entities/:type/:id", UpdateHandler(deps))
		app.Delete("/entities/:type/:id", DeleteHandler(deps))
		app.Get("/refs/:refType", RefsHandler(deps))
	})
	return app, deps
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()
	var req *http.Request
	if payload != nil {
		b, _ := json.Marshal(payload)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	res, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return res
}

func decode(t *testing.T, res *http.Response, out any) {
	t.Helper()
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func createSite(t *testing.T, app *fiber.App, name, city string) int64 {
	t.Helper()
	res := doJSON(t, app, http.MethodPost, "/entities/site", map[string]any{
		"name": name, "city": city, "status": "active",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create site: status=%d", res.StatusCode)
	}
	var env struct {
		Data struct {
			Item map[string]any `json:"item"`
		} `json:"data"`
	}
	decode(t, res, &env)
	id, _ := env.Data.Item["id"].(float64)
	if id == 0 {
		t.Fatalf("no id in %v", env.Data.Item)
	}
	return int64(id)
}

func TestCreate_ValidationErrors(t *testing.T) {
	app, _ := newTestApp(t)
	res := doJSON(t, app, http.MethodPost, "/entities/site", map[string]any{
		"city":        "Lille",
		"postal_code": "ABC",
	})
	if res.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	}
	decode(t, res, &env)
	if env.Code != "E_VALIDATION" {
		t.Fatalf("code=%q", env.Code)
	}
	if env.Details["name"] == "" || env.Details["postal_code"] == "" {
		t.Fatalf("want field errors for name and postal_code: %v", env.Details)
	}
}

func TestCreate_SuccessWithToast(t *testing.T) {
	app, _ := newTestApp(t)
	res := doJSON(t, app, http.MethodPost, "/entities/site", map[string]any{
		"name": "Usine Nord", "city": "Lille", "postal_code": "59000",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Data struct {
			Item   map[string]any `json:"item"`
			Toasts []Toast        `json:"toasts"`
		} `json:"data"`
	}
	decode(t, res, &env)
	if env.Data.Item["name"] != "Usine Nord" {
		t.Fatalf("item: %v", env.Data.Item)
	}
	if len(env.Data.Toasts) == 0 || env.Data.Toasts[len(env.Data.Toasts)-1].Severity != "success" {
		t.Fatalf("toasts: %v", env.Data.Toasts)
	}
}

func TestList_SearchSortPaginate(t *testing.T) {
	app, _ := newTestApp(t)
	createSite(t, app, "Usine Nord", "Lille")
	createSite(t, app, "Atelier Sud", "Toulouse")
	createSite(t, app, "Dépôt Est", "Metz")

	type listEnv struct {
		Data struct {
			Items      []map[string]any `json:"items"`
			Rows       []map[string]any `json:"rows"`
			EmptyState string           `json:"empty_state"`
		} `json:"data"`
		Meta struct {
			Total      *int `json:"total"`
			Count      int  `json:"count"`
			HasMore    bool `json:"has_more"`
			NextOffset *int `json:"next_offset"`
		} `json:"meta"`
	}

	var env listEnv
	decode(t, doJSON(t, app, http.MethodGet, "/entities/site?sort=name", nil), &env)
	if len(env.Data.Items) != 3 || env.Data.Items[0]["name"] != "Atelier Sud" {
		t.Fatalf("sorted list: %v", env.Data.Items)
	}
	if env.Meta.Total == nil || *env.Meta.Total != 3 {
		t.Fatalf("meta: %+v", env.Meta)
	}
	if len(env.Data.Rows) != 3 {
		t.Fatalf("rows: %d", len(env.Data.Rows))
	}

	env = listEnv{}
	decode(t, doJSON(t, app, http.MethodGet, "/entities/site?sort=name:desc", nil), &env)
	if env.Data.Items[0]["name"] != "Usine Nord" {
		t.Fatalf("desc sort: %v", env.Data.Items[0])
	}

	env = listEnv{}
	decode(t, doJSON(t, app, http.MethodGet, "/entities/site?q=usine", nil), &env)
	if len(env.Data.Items) != 1 || env.Data.Items[0]["city"] != "Lille" {
		t.Fatalf("search: %v", env.Data.Items)
	}

	env = listEnv{}
	decode(t, doJSON(t, app, http.MethodGet, "/entities/site?q=zzz", nil), &env)
	if len(env.Data.Items) != 0 || env.Data.EmptyState != "no_matches" {
		t.Fatalf("no matches: %+v", env.Data)
	}

	env = listEnv{}
	decode(t, doJSON(t, app, http.MethodGet, "/entities/site?limit=2&offset=0", nil), &env)
	if env.Meta.Count != 2 || !env.Meta.HasMore || env.Meta.NextOffset == nil || *env.Meta.NextOffset != 2 {
		t.Fatalf("page 1 meta: %+v", env.Meta)
	}
	env = listEnv{}
	decode(t, doJSON(t, app, http.MethodGet, "/entities/site?limit=2&offset=2", nil), &env)
	if env.Meta.Count != 1 || env.Meta.HasMore {
		t.Fatalf("page 2 meta: %+v", env.Meta)
	}

	if res := doJSON(t, app, http.MethodGet, "/entities/site?sort=bogus", nil); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("bogus sort field: status=%d", res.StatusCode)
	}
}

func TestList_EmptyCollection(t *testing.T) {
	app, _ := newTestApp(t)
	var env struct {
		Data struct {
			EmptyState string `json:"empty_state"`
		} `json:"data"`
	}
	decode(t, doJSON(t, app, http.MethodGet, "/entities/site", nil), &env)
	if env.Data.EmptyState != "collection_empty" {
		t.Fatalf("got %q", env.Data.EmptyState)
	}
}

func TestGet_DisplayAndErrors(t *testing.T) {
	app, _ := newTestApp(t)
	id := createSite(t, app, "Usine Nord", "Lille")

	var env struct {
		Data struct {
			Item    map[string]any            `json:"item"`
			Display map[string]map[string]any `json:"display"`
		} `json:"data"`
	}
	decode(t, doJSON(t, app, http.MethodGet, "/entities/site/"+strconv.FormatInt(id, 10), nil), &env)
	if env.Data.Item["name"] != "Usine Nord" {
		t.Fatalf("item: %v", env.Data.Item)
	}
	// enum renders through its label, null dates as placeholder
	if env.Data.Display["status"]["text"] != "En cours" {
		t.Fatalf("status display: %v", env.Data.Display["status"])
	}
	if env.Data.Display["start_date"]["text"] != "—" {
		t.Fatalf("null date display: %v", env.Data.Display["start_date"])
	}

	if res := doJSON(t, app, http.MethodGet, "/entities/site/9999", nil); res.StatusCode != http.StatusNotFound {
		t.Fatalf("missing id: status=%d", res.StatusCode)
	}
	if res := doJSON(t, app, http.MethodGet, "/entities/site/abc", nil); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad id: status=%d", res.StatusCode)
	}
	if res := doJSON(t, app, http.MethodGet, "/entities/nope", nil); res.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown type: status=%d", res.StatusCode)
	}
}

func TestUpdate(t *testing.T) {
	app, _ := newTestApp(t)
	id := createSite(t, app, "Usine Nord", "Lille")
	path := "/entities/site/" + strconv.FormatInt(id, 10)

	res := doJSON(t, app, http.MethodPut, path, map[string]any{"status": "closed"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Data struct {
			Item map[string]any `json:"item"`
		} `json:"data"`
	}
	decode(t, res, &env)
	// partial payload merges over the existing record
	if env.Data.Item["status"] != "closed" || env.Data.Item["name"] != "Usine Nord" {
		t.Fatalf("item: %v", env.Data.Item)
	}

	// a partial update that breaks validation is rejected
	if res := doJSON(t, app, http.MethodPut, path, map[string]any{"name": ""}); res.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("blank name: status=%d", res.StatusCode)
	}
	if res := doJSON(t, app, http.MethodPut, "/entities/site/9999", map[string]any{"name": "X"}); res.StatusCode != http.StatusNotFound {
		t.Fatalf("missing id: status=%d", res.StatusCode)
	}
}

func TestDelete(t *testing.T) {
	app, _ := newTestApp(t)
	id := createSite(t, app, "Usine Nord", "Lille")
	path := "/entities/site/" + strconv.FormatInt(id, 10)

	if res := doJSON(t, app, http.MethodDelete, path, nil); res.StatusCode != http.StatusOK {
		t.Fatalf("delete: status=%d", res.StatusCode)
	}
	if res := doJSON(t, app, http.MethodDelete, path, nil); res.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete: status=%d", res.StatusCode)
	}
}

func TestBulkDelete_Partial(t *testing.T) {
	app, _ := newTestApp(t)
	id1 := createSite(t, app, "Usine Nord", "Lille")
	id2 := createSite(t, app, "Atelier Sud", "Toulouse")

	res := doJSON(t, app, http.MethodPost, "/entities/site/bulk-delete", map[string]any{
		"ids": []int64{id1, 9999, id2},
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Data struct {
			Deleted   int  `json:"deleted"`
			Requested int  `json:"requested"`
			Aborted   bool `json:"aborted"`
		} `json:"data"`
	}
	decode(t, res, &env)
	// id1 removed, 9999 aborts, id2 untouched
	if env.Data.Deleted != 1 || env.Data.Requested != 3 || !env.Data.Aborted {
		t.Fatalf("got %+v", env.Data)
	}

	if res := doJSON(t, app, http.MethodPost, "/entities/site/bulk-delete", map[string]any{"ids": []int64{}}); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty ids: status=%d", res.StatusCode)
	}
}

func TestExportImport(t *testing.T) {
	app, _ := newTestApp(t)
	createSite(t, app, "Usine Nord", "Lille")
	createSite(t, app, "Atelier Sud", "Toulouse")

	res := doJSON(t, app, http.MethodGet, "/entities/site/export", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("export: status=%d", res.StatusCode)
	}
	if cd := res.Header.Get("Content-Disposition"); cd == "" {
		t.Fatalf("missing Content-Disposition")
	}
	var exported []map[string]any
	decode(t, res, &exported)
	if len(exported) != 2 {
		t.Fatalf("exported %d", len(exported))
	}

	// import the export back in; ids are reassigned
	req := httptest.NewRequest(http.MethodPost, "/entities/site/import", bytes.NewReader(mustJSON(t, exported)))
	req.Header.Set("Content-Type", "application/json")
	ires, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	var env struct {
		Data struct {
			Imported int  `json:"imported"`
			Aborted  bool `json:"aborted"`
		} `json:"data"`
	}
	decode(t, ires, &env)
	if env.Data.Imported != 2 || env.Data.Aborted {
		t.Fatalf("got %+v", env.Data)
	}

	var list struct {
		Meta struct {
			Total *int `json:"total"`
		} `json:"meta"`
	}
	decode(t, doJSON(t, app, http.MethodGet, "/entities/site", nil), &list)
	if list.Meta.Total == nil || *list.Meta.Total != 4 {
		t.Fatalf("want 4 after import, got %v", list.Meta.Total)
	}

	if res := doJSON(t, app, http.MethodPost, "/entities/site/import", map[string]any{"not": "an array"}); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad payload: status=%d", res.StatusCode)
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func TestSchemaEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	var env struct {
		Data struct {
			Type   string `json:"type"`
			Fields []struct {
				Key  string `json:"key"`
				Type string `json:"type"`
			} `json:"fields"`
		} `json:"data"`
	}
	decode(t, doJSON(t, app, http.MethodGet, "/entities/worker/schema", nil), &env)
	if env.Data.Type != "worker" || len(env.Data.Fields) == 0 {
		t.Fatalf("schema: %+v", env.Data)
	}
	types := map[string]string{}
	for _, f := range env.Data.Fields {
		types[f.Key] = f.Type
	}
	if types["company_id"] != "entity_ref" || types["certifications"] != "value_list" {
		t.Fatalf("field types: %v", types)
	}

	if res := doJSON(t, app, http.MethodGet, "/entities/nope/schema", nil); res.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown type: status=%d", res.StatusCode)
	}
}

func TestRefsEndpoint_CachedAndInvalidated(t *testing.T) {
	app, deps := newTestApp(t)

	res := doJSON(t, app, http.MethodPost, "/entities/company", map[string]any{"name": "Vinci"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("company: status=%d", res.StatusCode)
	}

	var env struct {
		Data []map[string]any `json:"data"`
	}
	decode(t, doJSON(t, app, http.MethodGet, "/refs/company", nil), &env)
	if len(env.Data) != 1 || env.Data[0]["name"] != "Vinci" {
		t.Fatalf("refs: %v", env.Data)
	}

	// the cache entry must be keyed by the entity type itself, not by a
	// view into the request buffer fiber reuses between requests
	doJSON(t, app, http.MethodGet, "/entities/site", nil)
	cache := deps.Cache.(*refcache.Memory)
	if _, ok, _ := cache.Get(context.Background(), "company"); !ok {
		t.Fatal("ref cache lost the company entry after another request")
	}

	// mutations invalidate the ref cache, so a new company shows up
	doJSON(t, app, http.MethodPost, "/entities/company", map[string]any{"name": "Eiffage"})
	env.Data = nil
	decode(t, doJSON(t, app, http.MethodGet, "/refs/company", nil), &env)
	if len(env.Data) != 2 {
		t.Fatalf("want 2 refs after create, got %d", len(env.Data))
	}

	if res := doJSON(t, app, http.MethodGet, "/refs/nope", nil); res.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown ref type: status=%d", res.StatusCode)
	}
}

func TestDocumentCreate_RequiredRefs(t *testing.T) {
	app, _ := newTestApp(t)
	res := doJSON(t, app, http.MethodPost, "/entities/pdp", map[string]any{"reference": "PDP-2026-001"})
	if res.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Details map[string]string `json:"details"`
	}
	decode(t, res, &env)
	if env.Details["site_id"] == "" || env.Details["company_id"] == "" {
		t.Fatalf("want required ref errors: %v", env.Details)
	}

	siteID := createSite(t, app, "Usine Nord", "Lille")
	cres := doJSON(t, app, http.MethodPost, "/entities/company", map[string]any{"name": "Vinci"})
	var cenv struct {
		Data struct {
			Item map[string]any `json:"item"`
		} `json:"data"`
	}
	decode(t, cres, &cenv)
	companyID := int64(cenv.Data.Item["id"].(float64))

	res = doJSON(t, app, http.MethodPost, "/entities/pdp", map[string]any{
		"reference":  "PDP-2026-001",
		"site_id":    siteID,
		"company_id": companyID,
		"status":     "draft",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status=%d", res.StatusCode)
	}
}
