package view

import (
	"testing"

	"previplan/internal/engine/format"
	"previplan/internal/engine/schema"
)

func siteConfig() *schema.EntityConfig {
	return &schema.EntityConfig{
		Type:         "site",
		Name:         "Site",
		PluralName:   "Sites",
		KeyField:     "id",
		DisplayField: "name",
		DefaultSort:  "name",
		SearchFields: []string{"name", "city"},
		Fields: []schema.FieldConfig{
			{Key: "id", Label: "ID", Type: schema.TypeNumber, Hidden: true},
			{Key: "name", Label: "Nom", Type: schema.TypeText},
			{Key: "city", Label: "Ville", Type: schema.TypeText},
			{Key: "headcount", Label: "Effectif", Type: schema.TypeNumber},
		},
	}
}

func sites() []schema.Record {
	return []schema.Record{
		{"id": int64(1), "name": "Usine Nord", "city": "Lille", "headcount": float64(120)},
		{"id": int64(2), "name": "Dépôt Est", "city": "Metz", "headcount": float64(30)},
		{"id": int64(3), "name": "Atelier Sud", "city": "Toulouse", "headcount": nil},
		{"id": int64(4), "name": "Entrepôt Ouest", "city": "Nantes", "headcount": float64(55)},
	}
}

func names(items []schema.Record) []string {
	out := make([]string, len(items))
	for i, r := range items {
		out[i] = r.String("name")
	}
	return out
}

func TestDefaultSortAscending(t *testing.T) {
	c := New(siteConfig(), 10)
	c.SetItems(sites())
	got := names(c.Visible())
	want := []string{"Atelier Sud", "Dépôt Est", "Entrepôt Ouest", "Usine Nord"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}
}

func TestSetSortExplicit(t *testing.T) {
	c := New(siteConfig(), 10)
	c.SetItems(sites())

	// name is already the default sort key; an absolute spec must set the
	// direction, never toggle it
	c.SetSort("name", true)
	if key, asc := c.SortState(); key != "name" || !asc {
		t.Fatalf("want name asc, got %s asc=%v", key, asc)
	}
	if got := names(c.Visible()); got[0] != "Atelier Sud" {
		t.Fatalf("want ascending order, got %v", got)
	}

	c.SetSort("name", false)
	if key, asc := c.SortState(); key != "name" || asc {
		t.Fatalf("want name desc, got %s asc=%v", key, asc)
	}
	if got := names(c.Visible()); got[0] != "Usine Nord" {
		t.Fatalf("want descending order, got %v", got)
	}
}

func TestSortToggleAndNulls(t *testing.T) {
	c := New(siteConfig(), 10)
	c.SetItems(sites())

	c.SortBy("headcount")
	got := c.Visible()
	// ascending: null first
	if got[0].String("name") != "Atelier Sud" {
		t.Fatalf("nulls should sort first ascending, got %v", names(got))
	}
	if got[1]["headcount"].(float64) != 30 {
		t.Fatalf("want 30 after null, got %v", got[1]["headcount"])
	}

	// same key again flips direction; null moves last
	c.SortBy("headcount")
	if key, asc := c.SortState(); key != "headcount" || asc {
		t.Fatalf("want headcount desc, got %s asc=%v", key, asc)
	}
	got = c.Visible()
	if got[0]["headcount"].(float64) != 120 {
		t.Fatalf("want 120 first descending, got %v", got[0]["headcount"])
	}
	if got[len(got)-1].String("name") != "Atelier Sud" {
		t.Fatalf("nulls should sort last descending, got %v", names(got))
	}

	// a different key resets to ascending
	c.SortBy("city")
	if key, asc := c.SortState(); key != "city" || !asc {
		t.Fatalf("want city asc, got %s asc=%v", key, asc)
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	c := New(siteConfig(), 10)
	c.SetItems(sites())
	c.SetQuery("usine")
	if got := names(c.Visible()); len(got) != 1 || got[0] != "Usine Nord" {
		t.Fatalf("got %v", got)
	}
	// matches any configured search field
	c.SetQuery("TOULOUSE")
	if got := names(c.Visible()); len(got) != 1 || got[0] != "Atelier Sud" {
		t.Fatalf("got %v", got)
	}
	// headcount is not a search field
	c.SetQuery("120")
	if got := c.Visible(); len(got) != 0 {
		t.Fatalf("numeric field must not match, got %v", names(got))
	}
}

func TestEmptyStates(t *testing.T) {
	c := New(siteConfig(), 10)
	if c.Empty() != CollectionEmpty {
		t.Fatalf("no items: want CollectionEmpty")
	}
	c.SetItems(sites())
	if c.Empty() != NotEmpty {
		t.Fatalf("items present: want NotEmpty")
	}
	c.SetQuery("zzz")
	if c.Empty() != NoMatches {
		t.Fatalf("filtered out: want NoMatches")
	}
	c.SetQuery("")
	if c.Empty() != NotEmpty {
		t.Fatalf("query cleared: want NotEmpty")
	}
}

func TestPagination(t *testing.T) {
	c := New(siteConfig(), 3)
	c.SetItems(sites())
	if c.PageCount() != 2 {
		t.Fatalf("want 2 pages, got %d", c.PageCount())
	}
	if len(c.Visible()) != 3 {
		t.Fatalf("page 0: want 3, got %d", len(c.Visible()))
	}
	c.SetPage(1)
	if len(c.Visible()) != 1 {
		t.Fatalf("page 1: want 1, got %d", len(c.Visible()))
	}
	// out of range clamps
	c.SetPage(99)
	if c.Page() != 1 {
		t.Fatalf("want clamp to 1, got %d", c.Page())
	}
	c.SetPage(-1)
	if c.Page() != 0 {
		t.Fatalf("want clamp to 0, got %d", c.Page())
	}
	// a new query resets to the first page
	c.SetPage(1)
	c.SetQuery("e")
	if c.Page() != 0 {
		t.Fatalf("query must reset page, got %d", c.Page())
	}
}

func TestSelectionPrunedOnSetItems(t *testing.T) {
	c := New(siteConfig(), 10)
	c.SetItems(sites())
	c.Select(1)
	c.Select(3)
	c.ToggleSelect(2)
	if len(c.SelectedIDs()) != 3 {
		t.Fatalf("want 3 selected, got %v", c.SelectedIDs())
	}
	c.ToggleSelect(2)
	if len(c.SelectedIDs()) != 2 {
		t.Fatalf("toggle off failed, got %v", c.SelectedIDs())
	}

	// item 3 disappears from the reload; its selection goes with it
	c.SetItems(sites()[:2])
	ids := c.SelectedIDs()
	if len(ids) != 1 || ids[0] != 1 {
		t.Fatalf("want [1], got %v", ids)
	}

	c.ClearSelection()
	if len(c.SelectedIDs()) != 0 {
		t.Fatalf("clear failed")
	}
}

func TestRows(t *testing.T) {
	c := New(siteConfig(), 10)
	c.SetItems(sites()[:1])
	rows := c.Rows()
	if len(rows) != 1 {
		t.Fatalf("want 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.ID != 1 {
		t.Fatalf("want id 1, got %d", row.ID)
	}
	if _, hidden := row.Cells["id"]; hidden {
		t.Fatalf("hidden field must not render a cell")
	}
	if cell := row.Cells["name"]; cell.Kind != format.KindText || cell.Text != "Usine Nord" {
		t.Fatalf("name cell: %+v", cell)
	}
	if cell := row.Cells["headcount"]; cell.Text != "120" {
		t.Fatalf("headcount cell: %+v", cell)
	}
}

func TestRemoteFilterDisablesLocal(t *testing.T) {
	c := New(siteConfig(), 10)
	c.SetLocalFilter(false)
	c.SetItems(sites())
	c.SetQuery("zzz")
	// the remote searcher owns filtering; the view shows what it was handed
	if len(c.Visible()) != len(sites()) {
		t.Fatalf("local filter should be off, got %d", len(c.Visible()))
	}
}
