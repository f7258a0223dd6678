// Package manager owns the lifecycle of one entity collection: loading
// through the CRUD adapter, presenting through the view, and sequencing
// mutations. State only ever changes after a confirmed adapter success;
// there is no optimistic update, and a reload is issued strictly after
// each successful mutation.
package manager

import (
	"context"
	"fmt"

	"previplan/internal/engine/crud"
	"previplan/internal/engine/schema"
	"previplan/internal/engine/view"
)

// State is the collection lifecycle state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateError
)

// Severity tags a user-facing notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notifier surfaces transient toast-style notifications.
type Notifier interface {
	Notify(sev Severity, msg string)
}

// EventSink receives confirmed entity mutations (for brokers, audit, ...).
type EventSink interface {
	EntityEvent(ctx context.Context, action, entityType string, id int64)
}

// Searcher is a parent-supplied async search handler. When present, the
// view's local filtering is skipped and search terms go remote.
type Searcher interface {
	Search(ctx context.Context, entityType, query string, limit int) ([]schema.Record, error)
}

// Invalidator drops cached reference options after mutations.
type Invalidator interface {
	Invalidate(ctx context.Context, entityType string) error
}

// Manager orchestrates one entity collection.
type Manager struct {
	cfg  *schema.EntityConfig
	ops  crud.Operations
	view *view.Collection

	notifier Notifier
	events   EventSink
	searcher Searcher
	cache    Invalidator

	state   State
	lastErr error
}

// Option configures a Manager.
type Option func(*Manager)

// WithNotifier routes notifications to the given sink.
func WithNotifier(n Notifier) Option { return func(m *Manager) { m.notifier = n } }

// WithEvents publishes confirmed mutations to the given sink.
func WithEvents(e EventSink) Option { return func(m *Manager) { m.events = e } }

// WithSearcher delegates searching to an external handler.
func WithSearcher(s Searcher) Option { return func(m *Manager) { m.searcher = s } }

// WithCache wires the reference cache invalidated on each mutation.
func WithCache(c Invalidator) Option { return func(m *Manager) { m.cache = c } }

// New builds a Manager for one entity type.
func New(cfg *schema.EntityConfig, ops crud.Operations, pageSize int, opts ...Option) *Manager {
	m := &Manager{
		cfg:   cfg,
		ops:   ops,
		view:  view.New(cfg, pageSize),
		state: StateIdle,
	}
	for _, o := range opts {
		o(m)
	}
	if m.searcher != nil {
		m.view.SetLocalFilter(false)
	}
	return m
}

// View exposes the presentation state (search/sort/page/selection).
func (m *Manager) View() *view.Collection { return m.view }

// Config returns the entity config this manager serves.
func (m *Manager) Config() *schema.EntityConfig { return m.cfg }

// State returns the lifecycle state; LastError explains StateError.
func (m *Manager) State() State { return m.state }
func (m *Manager) LastError() error { return m.lastErr }

// Load fetches the full collection and replaces the view's items.
func (m *Manager) Load(ctx context.Context) error {
	m.state = StateLoading
	items, err := m.ops.GetAll(ctx)
	if err != nil {
		// Prior items stay on screen; only the state flag flips.
		m.state = StateError
		m.lastErr = err
		m.notify(SeverityError, fmt.Sprintf("Loading %s failed", m.cfg.PluralName))
		return err
	}
	m.view.SetItems(items)
	m.state = StateLoaded
	m.lastErr = nil
	return nil
}

// Search applies a term: remote when a searcher is wired, local substring
// filtering otherwise.
func (m *Manager) Search(ctx context.Context, query string) error {
	if m.searcher == nil {
		m.view.SetQuery(query)
		return nil
	}
	if query == "" {
		return m.Load(ctx)
	}
	m.state = StateLoading
	items, err := m.searcher.Search(ctx, m.cfg.Type, query, 200)
	if err != nil {
		m.state = StateError
		m.lastErr = err
		m.notify(SeverityError, "Search failed")
		return err
	}
	m.view.SetItems(items)
	m.state = StateLoaded
	return nil
}

// Get fetches a single record through the adapter.
func (m *Manager) Get(ctx context.Context, id int64) (schema.Record, error) {
	return m.ops.GetByID(ctx, id)
}

// Create persists a new record, then reloads and notifies.
func (m *Manager) Create(ctx context.Context, rec schema.Record) (schema.Record, error) {
	created, err := m.ops.Create(ctx, rec)
	if err != nil {
		m.notify(SeverityError, fmt.Sprintf("Creating %s failed", m.cfg.Name))
		return nil, err
	}
	id, _ := created.ID()
	m.afterMutation(ctx, "created", id)
	return created, nil
}

// Update persists changes to an existing record, then reloads.
func (m *Manager) Update(ctx context.Context, id int64, rec schema.Record) (schema.Record, error) {
	updated, err := m.ops.Update(ctx, id, rec)
	if err != nil {
		m.notify(SeverityError, fmt.Sprintf("Updating %s failed", m.cfg.Name))
		return nil, err
	}
	m.afterMutation(ctx, "updated", id)
	return updated, nil
}

// Delete removes one record, then reloads.
func (m *Manager) Delete(ctx context.Context, id int64) error {
	if err := m.ops.Delete(ctx, id); err != nil {
		m.notify(SeverityError, fmt.Sprintf("Deleting %s failed", m.cfg.Name))
		return err
	}
	m.afterMutation(ctx, "deleted", id)
	return nil
}

// BulkDelete deletes sequentially, one adapter call per id. A failure
// aborts the remaining ids but does not roll back the ones already
// deleted. Partial completion is accepted behavior here.
func (m *Manager) BulkDelete(ctx context.Context, ids []int64) (int, error) {
	done := 0
	for _, id := range ids {
		if err := m.ops.Delete(ctx, id); err != nil {
			m.notify(SeverityError, fmt.Sprintf("Bulk delete stopped after %d of %d", done, len(ids)))
			return done, err
		}
		done++
		m.emit(ctx, "deleted", id)
	}
	m.view.ClearSelection()
	m.invalidate(ctx)
	if err := m.Load(ctx); err != nil {
		return done, err
	}
	m.notify(SeveritySuccess, fmt.Sprintf("%d %s deleted", done, m.cfg.PluralName))
	return done, nil
}

// afterMutation is the common confirmed-success path: cache invalidation,
// event emission, full reload, success toast.
func (m *Manager) afterMutation(ctx context.Context, action string, id int64) {
	m.invalidate(ctx)
	m.emit(ctx, action, id)
	if err := m.Load(ctx); err != nil {
		return
	}
	m.notify(SeveritySuccess, fmt.Sprintf("%s %s", m.cfg.Name, action))
}

func (m *Manager) invalidate(ctx context.Context) {
	if m.cache != nil {
		_ = m.cache.Invalidate(ctx, m.cfg.Type)
	}
}

func (m *Manager) emit(ctx context.Context, action string, id int64) {
	if m.events != nil {
		m.events.EntityEvent(ctx, action, m.cfg.Type, id)
	}
}

func (m *Manager) notify(sev Severity, msg string) {
	if m.notifier != nil {
		m.notifier.Notify(sev, msg)
	}
}
