package manager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"previplan/internal/engine/crud"
	"previplan/internal/engine/schema"
)

func riskConfig() *schema.EntityConfig {
	return &schema.EntityConfig{
		Type:         "risk",
		Name:         "Risque",
		PluralName:   "Risques",
		DisplayField: "name",
		DefaultSort:  "name",
		Fields: []schema.FieldConfig{
			{Key: "id", Type: schema.TypeNumber, Hidden: true, ReadOnly: true},
			{Key: "name", Label: "Nom", Type: schema.TypeText, Required: true},
			{Key: "level", Label: "Niveau", Type: schema.TypeEnum},
		},
	}
}

type toastRec struct {
	sevs []Severity
	msgs []string
}

func (r *toastRec) Notify(sev Severity, msg string) {
	r.sevs = append(r.sevs, sev)
	r.msgs = append(r.msgs, msg)
}

func (r *toastRec) last() string {
	if len(r.msgs) == 0 {
		return ""
	}
	return r.msgs[len(r.msgs)-1]
}

type eventRec struct{ events []string }

func (r *eventRec) EntityEvent(_ context.Context, action, entityType string, id int64) {
	r.events = append(r.events, fmt.Sprintf("%s:%s:%d", action, entityType, id))
}

func seeded() *crud.Memory {
	return crud.NewMemory(
		schema.Record{"name": "Chute de hauteur", "level": "high"},
		schema.Record{"name": "Bruit", "level": "medium"},
	)
}

func TestLoad(t *testing.T) {
	m := New(riskConfig(), seeded(), 20)
	if m.State() != StateIdle {
		t.Fatalf("want idle before first load")
	}
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.State() != StateLoaded {
		t.Fatalf("want loaded, got %v", m.State())
	}
	if got := len(m.View().Visible()); got != 2 {
		t.Fatalf("want 2 items, got %d", got)
	}
}

func TestLoadError_RetainsItems(t *testing.T) {
	mem := seeded()
	fail := false
	ops := crud.Funcs{
		GetAllFn: func(ctx context.Context) ([]schema.Record, error) {
			if fail {
				return nil, errors.New("db down")
			}
			return mem.GetAll(ctx)
		},
	}
	toasts := &toastRec{}
	m := New(riskConfig(), ops, 20, WithNotifier(toasts))
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	fail = true
	if err := m.Load(context.Background()); err == nil {
		t.Fatalf("want error")
	}
	if m.State() != StateError || m.LastError() == nil {
		t.Fatalf("state=%v err=%v", m.State(), m.LastError())
	}
	// the previous list stays on screen
	if got := len(m.View().Visible()); got != 2 {
		t.Fatalf("items must survive a failed reload, got %d", got)
	}
	if !strings.Contains(toasts.last(), "Risques") {
		t.Fatalf("error toast should name the collection: %q", toasts.last())
	}
}

func TestCreate_ReloadAndNotify(t *testing.T) {
	toasts := &toastRec{}
	events := &eventRec{}
	m := New(riskConfig(), seeded(), 20, WithNotifier(toasts), WithEvents(events))
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	created, err := m.Create(context.Background(), schema.Record{"name": "Amiante", "level": "high"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id, ok := created.ID()
	if !ok || id == 0 {
		t.Fatalf("created record must carry the store id: %v", created)
	}
	if got := len(m.View().Visible()); got != 3 {
		t.Fatalf("reload after create: want 3, got %d", got)
	}
	if len(toasts.sevs) == 0 || toasts.sevs[len(toasts.sevs)-1] != SeveritySuccess {
		t.Fatalf("want success toast, got %v", toasts.sevs)
	}
	want := fmt.Sprintf("created:risk:%d", id)
	if len(events.events) != 1 || events.events[0] != want {
		t.Fatalf("want %q, got %v", want, events.events)
	}
}

func TestCreateError_NoReload(t *testing.T) {
	toasts := &toastRec{}
	ops := crud.Funcs{
		GetAllFn: func(context.Context) ([]schema.Record, error) {
			return []schema.Record{{"id": int64(1), "name": "Bruit"}}, nil
		},
		CreateFn: func(context.Context, schema.Record) (schema.Record, error) {
			return nil, errors.New("unique violation")
		},
	}
	m := New(riskConfig(), ops, 20, WithNotifier(toasts))
	_ = m.Load(context.Background())

	if _, err := m.Create(context.Background(), schema.Record{"name": "Bruit"}); err == nil {
		t.Fatalf("want error")
	}
	if len(m.View().Visible()) != 1 {
		t.Fatalf("failed create must not change the list")
	}
	if len(toasts.sevs) != 1 || toasts.sevs[0] != SeverityError {
		t.Fatalf("want one error toast, got %v", toasts.sevs)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	mem := seeded()
	events := &eventRec{}
	m := New(riskConfig(), mem, 20, WithEvents(events))
	_ = m.Load(context.Background())

	items := m.View().Visible()
	id, _ := items[0].ID()

	if _, err := m.Update(context.Background(), id, schema.Record{"name": "Bruit continu", "level": "low"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := m.Get(context.Background(), id)
	if err != nil || got.String("name") != "Bruit continu" {
		t.Fatalf("get after update: %v %v", got, err)
	}

	if err := m.Delete(context.Background(), id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := m.Get(context.Background(), id); !errors.Is(err, crud.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if len(m.View().Visible()) != 1 {
		t.Fatalf("reload after delete")
	}
	if len(events.events) != 2 {
		t.Fatalf("want update+delete events, got %v", events.events)
	}
}

func TestBulkDelete_PartialFailure(t *testing.T) {
	mem := crud.NewMemory(
		schema.Record{"name": "R1"},
		schema.Record{"name": "R2"},
		schema.Record{"name": "R3"},
	)
	ops := crud.Funcs{
		GetAllFn: mem.GetAll,
		DeleteFn: func(ctx context.Context, id int64) error {
			if id == 2 {
				return errors.New("referenced by a plan")
			}
			return mem.Delete(ctx, id)
		},
	}
	toasts := &toastRec{}
	m := New(riskConfig(), ops, 20, WithNotifier(toasts))
	_ = m.Load(context.Background())

	done, err := m.BulkDelete(context.Background(), []int64{1, 2, 3})
	if err == nil {
		t.Fatalf("want error")
	}
	// id 1 deleted, id 2 failed, id 3 never attempted
	if done != 1 {
		t.Fatalf("want 1 done, got %d", done)
	}
	if mem.Len() != 2 {
		t.Fatalf("want 2 remaining, got %d", mem.Len())
	}
	if !strings.Contains(toasts.last(), "1 of 3") {
		t.Fatalf("toast should report progress: %q", toasts.last())
	}
}

func TestBulkDelete_AllSucceed(t *testing.T) {
	mem := seeded()
	m := New(riskConfig(), mem, 20)
	_ = m.Load(context.Background())
	m.View().Select(1)
	m.View().Select(2)

	done, err := m.BulkDelete(context.Background(), m.View().SelectedIDs())
	if err != nil || done != 2 {
		t.Fatalf("done=%d err=%v", done, err)
	}
	if mem.Len() != 0 {
		t.Fatalf("want empty store")
	}
	if len(m.View().SelectedIDs()) != 0 {
		t.Fatalf("selection must clear")
	}
}

func TestSearch_RemoteAndLocal(t *testing.T) {
	remote := func(hits []schema.Record) Searcher {
		return searcherFunc(func(_ context.Context, entityType, query string, _ int) ([]schema.Record, error) {
			if entityType != "risk" {
				return nil, fmt.Errorf("wrong type %s", entityType)
			}
			return hits, nil
		})
	}
	hits := []schema.Record{{"id": int64(9), "name": "Chute de hauteur"}}
	m := New(riskConfig(), seeded(), 20, WithSearcher(remote(hits)))
	_ = m.Load(context.Background())

	if err := m.Search(context.Background(), "chute"); err != nil {
		t.Fatalf("search: %v", err)
	}
	got := m.View().Visible()
	if len(got) != 1 || got[0].String("name") != "Chute de hauteur" {
		t.Fatalf("remote hits must replace the list: %v", got)
	}

	// clearing the term reloads the full collection
	if err := m.Search(context.Background(), ""); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(m.View().Visible()) != 2 {
		t.Fatalf("want full reload, got %d", len(m.View().Visible()))
	}

	// without a searcher the view filters locally
	local := New(riskConfig(), seeded(), 20)
	_ = local.Load(context.Background())
	_ = local.Search(context.Background(), "bruit")
	if got := local.View().Visible(); len(got) != 1 || got[0].String("name") != "Bruit" {
		t.Fatalf("local filter: %v", got)
	}
}

type searcherFunc func(ctx context.Context, entityType, query string, limit int) ([]schema.Record, error)

func (f searcherFunc) Search(ctx context.Context, entityType, query string, limit int) ([]schema.Record, error) {
	return f(ctx, entityType, query, limit)
}

type invalidateRec struct{ types []string }

func (r *invalidateRec) Invalidate(_ context.Context, entityType string) error {
	r.types = append(r.types, entityType)
	return nil
}

func TestMutationsInvalidateCache(t *testing.T) {
	cache := &invalidateRec{}
	m := New(riskConfig(), seeded(), 20, WithCache(cache))
	_ = m.Load(context.Background())

	created, _ := m.Create(context.Background(), schema.Record{"name": "Amiante"})
	id, _ := created.ID()
	_, _ = m.Update(context.Background(), id, schema.Record{"name": "Amiante friable"})
	_ = m.Delete(context.Background(), id)

	if len(cache.types) != 3 {
		t.Fatalf("want 3 invalidations, got %v", cache.types)
	}
	for _, typ := range cache.types {
		if typ != "risk" {
			t.Fatalf("wrong type invalidated: %v", cache.types)
		}
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	src := New(riskConfig(), seeded(), 20)
	_ = src.Load(context.Background())

	data, name, err := src.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(name, "risk-") || !strings.HasSuffix(name, ".json") {
		t.Fatalf("filename: %q", name)
	}
	var payload []schema.Record
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("export payload: %v", err)
	}
	if len(payload) != 2 {
		t.Fatalf("want 2 exported, got %d", len(payload))
	}

	dstMem := crud.NewMemory()
	dst := New(riskConfig(), dstMem, 20)
	_ = dst.Load(context.Background())
	n, err := dst.Import(context.Background(), data)
	if err != nil || n != 2 {
		t.Fatalf("import: n=%d err=%v", n, err)
	}
	// ids are reassigned by the destination store
	items, _ := dstMem.GetAll(context.Background())
	for _, r := range items {
		if id, ok := r.ID(); !ok || id == 0 {
			t.Fatalf("imported record without fresh id: %v", r)
		}
	}
}

func TestImport_InvalidPayload(t *testing.T) {
	toasts := &toastRec{}
	m := New(riskConfig(), crud.NewMemory(), 20, WithNotifier(toasts))
	if n, err := m.Import(context.Background(), []byte("{not json")); err == nil || n != 0 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if len(toasts.msgs) == 0 {
		t.Fatalf("want an error toast")
	}
}

func TestImport_PartialFailure(t *testing.T) {
	calls := 0
	ops := crud.Funcs{
		GetAllFn: func(context.Context) ([]schema.Record, error) { return nil, nil },
		CreateFn: func(_ context.Context, rec schema.Record) (schema.Record, error) {
			calls++
			if calls == 2 {
				return nil, errors.New("bad record")
			}
			rec["id"] = int64(calls)
			return rec, nil
		},
	}
	m := New(riskConfig(), ops, 20)
	data, _ := json.Marshal([]schema.Record{{"name": "A"}, {"name": "B"}, {"name": "C"}})
	n, err := m.Import(context.Background(), data)
	if err == nil || n != 1 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if calls != 2 {
		t.Fatalf("import must stop at the failure, got %d calls", calls)
	}
}
