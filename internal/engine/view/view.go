// Package view presents an in-memory entity collection with search, sort,
// pagination and selection. It never talks to an adapter: the manager owns
// loading, the view only arranges what it is handed.
package view

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"previplan/internal/engine/format"
	"previplan/internal/engine/schema"
)

// EmptyState distinguishes a collection that has no data at all from one
// where the current filter matched nothing.
type EmptyState int

const (
	NotEmpty EmptyState = iota
	// CollectionEmpty: the unfiltered collection has no items.
	CollectionEmpty
	// NoMatches: items exist but the search filtered them all out.
	NoMatches
)

var collator = collate.New(language.French, collate.IgnoreCase)

// Collection is the presentation state over one entity list.
type Collection struct {
	cfg      *schema.EntityConfig
	items    []schema.Record
	query    string
	sortKey  string
	sortAsc  bool
	page     int
	pageSize int
	selected map[int64]struct{}
	// localFilter is switched off when a remote searcher owns filtering.
	localFilter bool
}

// New builds a collection for the given config. Sort defaults to the
// config's default sort field, ascending.
func New(cfg *schema.EntityConfig, pageSize int) *Collection {
	return &Collection{
		cfg:         cfg,
		sortKey:     cfg.DefaultSort,
		sortAsc:     true,
		pageSize:    lo.Clamp(pageSize, 1, 200),
		selected:    map[int64]struct{}{},
		localFilter: true,
	}
}

// SetItems replaces the backing list and drops selections that no longer
// resolve to an item.
func (c *Collection) SetItems(items []schema.Record) {
	c.items = items
	present := map[int64]struct{}{}
	for _, r := range items {
		if id, ok := r.ID(); ok {
			present[id] = struct{}{}
		}
	}
	for id := range c.selected {
		if _, ok := present[id]; !ok {
			delete(c.selected, id)
		}
	}
	c.page = 0
}

// SetQuery updates the search term and resets to the first page.
func (c *Collection) SetQuery(q string) {
	c.query = q
	c.page = 0
}

// SetLocalFilter disables in-memory filtering when a parent-supplied
// async search handler is in charge.
func (c *Collection) SetLocalFilter(on bool) { c.localFilter = on }

// SortBy sets the active sort field; calling it again with the same field
// toggles the direction.
func (c *Collection) SortBy(key string) {
	if c.sortKey == key {
		c.sortAsc = !c.sortAsc
		return
	}
	c.sortKey = key
	c.sortAsc = true
}

// SetSort sets the field and direction explicitly, regardless of the
// current sort state. Callers that carry an absolute sort spec (the list
// API) use this; SortBy keeps the click-to-toggle behavior.
func (c *Collection) SetSort(key string, asc bool) {
	c.sortKey = key
	c.sortAsc = asc
}

// SortState exposes the active field and direction.
func (c *Collection) SortState() (string, bool) { return c.sortKey, c.sortAsc }

// SetPage moves to the given zero-based page, clamped to range.
func (c *Collection) SetPage(p int) {
	c.page = lo.Clamp(p, 0, maxPage(len(c.Filtered()), c.pageSize))
}

// Page returns the current zero-based page index.
func (c *Collection) Page() int { return c.page }

// PageCount returns the number of pages for the filtered set (at least 1).
func (c *Collection) PageCount() int {
	return maxPage(len(c.Filtered()), c.pageSize) + 1
}

func maxPage(n, size int) int {
	if n <= size {
		return 0
	}
	return (n - 1) / size
}

// Filtered returns the search-filtered, sorted list (no page slicing).
func (c *Collection) Filtered() []schema.Record {
	items := c.items
	if c.localFilter && c.query != "" {
		items = c.filter(items)
	}
	return c.sort(items)
}

// Visible returns the records of the current page.
func (c *Collection) Visible() []schema.Record {
	items := c.Filtered()
	start := c.page * c.pageSize
	if start >= len(items) {
		start = 0
	}
	end := start + c.pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Empty reports which empty state, if any, the current view is in.
func (c *Collection) Empty() EmptyState {
	if len(c.items) == 0 {
		return CollectionEmpty
	}
	if len(c.Filtered()) == 0 {
		return NoMatches
	}
	return NotEmpty
}

// filter keeps records whose search fields contain the query,
// case-insensitively.
func (c *Collection) filter(items []schema.Record) []schema.Record {
	q := strings.ToLower(c.query)
	keys := c.cfg.EffectiveSearchFields()
	return lo.Filter(items, func(r schema.Record, _ int) bool {
		for _, k := range keys {
			s, ok := r[k].(string)
			if ok && strings.Contains(strings.ToLower(s), q) {
				return true
			}
		}
		return false
	})
}

// sort orders by the active field. Missing values go first ascending and
// last descending, so repeated sorts are stable with respect to nulls.
// Strings use locale-aware comparison, everything else plain ordering.
func (c *Collection) sort(items []schema.Record) []schema.Record {
	if c.sortKey == "" {
		return items
	}
	out := make([]schema.Record, len(items))
	copy(out, items)
	key, asc := c.sortKey, c.sortAsc

	less := func(a, b schema.Record) bool {
		av, bv := a[key], b[key]
		aNull, bNull := av == nil, bv == nil
		switch {
		case aNull && bNull:
			return false
		case aNull:
			return asc
		case bNull:
			return !asc
		}
		cmp := compare(av, bv)
		if asc {
			return cmp < 0
		}
		return cmp > 0
	}
	// Insertion sort keeps equal elements in input order; collections
	// here are page-scale, re-fetched on every mutation.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func compare(a, b any) int {
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return collator.CompareString(as, bs)
		}
	}
	af, aok := (schema.Record{"x": a}).Float("x")
	bf, bok := (schema.Record{"x": b}).Float("x")
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
	if at, ok := (schema.Record{"x": a}).Time("x"); ok {
		if bt, ok := (schema.Record{"x": b}).Time("x"); ok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			}
			return 0
		}
	}
	if b2, ok := b.(bool); ok {
		a2, _ := a.(bool)
		switch {
		case !a2 && b2:
			return -1
		case a2 && !b2:
			return 1
		}
		return 0
	}
	return 0
}

// Select adds an id to the selection set.
func (c *Collection) Select(id int64) { c.selected[id] = struct{}{} }

// Deselect removes an id from the selection set.
func (c *Collection) Deselect(id int64) { delete(c.selected, id) }

// ToggleSelect flips one id in the selection set.
func (c *Collection) ToggleSelect(id int64) {
	if _, ok := c.selected[id]; ok {
		delete(c.selected, id)
		return
	}
	c.selected[id] = struct{}{}
}

// SelectedIDs returns the selection as a sorted-insensitive slice for
// bulk actions.
func (c *Collection) SelectedIDs() []int64 {
	return lo.Keys(c.selected)
}

// ClearSelection empties the selection set.
func (c *Collection) ClearSelection() { c.selected = map[int64]struct{}{} }

// Row is one rendered table row.
type Row struct {
	ID    int64                      `json:"id"`
	Cells map[string]format.Rendered `json:"cells"`
}

// Rows renders the visible page through the formatter, one cell per
// non-hidden field.
func (c *Collection) Rows() []Row {
	fields := c.cfg.VisibleFields()
	visible := c.Visible()
	rows := make([]Row, 0, len(visible))
	for _, r := range visible {
		row := Row{Cells: make(map[string]format.Rendered, len(fields))}
		row.ID, _ = r.ID()
		for _, f := range fields {
			row.Cells[f.Key] = format.Value(f, r[f.Key])
		}
		rows = append(rows, row)
	}
	return rows
}
