// Package entities exposes the metadata-driven CRUD engine over HTTP.
// Every entity type shares the same handlers; behavior differences come
// entirely from the EntityConfig.
package entities

import (
	"context"

	"previplan/internal/engine/crud"
	"previplan/internal/engine/manager"
	"previplan/internal/engine/schema"
	"previplan/internal/esx"
	"previplan/internal/httpx/kit"
	"previplan/internal/store"
)

// Deps bundles what the generic handlers need: the Ent-backed store, the
// authored configs, the reference resolver and the optional side rails
// (cache invalidation, event publishing, remote search, ES indexing).
type Deps struct {
	Store    *store.Store
	Configs  map[string]*schema.EntityConfig
	Resolver crud.ReferenceResolver
	Cache    manager.Invalidator
	Events   manager.EventSink
	Searcher manager.Searcher
	ES       *esx.Client
	ESIndex  string
	PageSize int
}

// Toast is a user-facing notification collected during one request.
type Toast struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// toastBuffer implements manager.Notifier for the request scope.
type toastBuffer struct {
	items []Toast
}

func (t *toastBuffer) Notify(sev manager.Severity, msg string) {
	t.items = append(t.items, Toast{Severity: string(sev), Message: msg})
}

func (t *toastBuffer) Items() []Toast {
	if t.items == nil {
		return []Toast{}
	}
	return t.items
}

// indexSink keeps the Elasticsearch index in step with confirmed
// mutations. Index failures are swallowed: search lags, data does not.
type indexSink struct {
	d *Deps
}

func (s indexSink) EntityEvent(ctx context.Context, action, entityType string, id int64) {
	if s.d.ES == nil {
		return
	}
	cfg, ok := s.d.Configs[entityType]
	if !ok {
		return
	}
	if action == "deleted" {
		_ = esx.DeleteEntity(ctx, s.d.ES, s.d.ESIndex, entityType, id)
		return
	}
	ops, ok := s.d.Store.Ops(entityType)
	if !ok {
		return
	}
	rec, err := ops.GetByID(ctx, id)
	if err != nil {
		return
	}
	_ = esx.IndexEntity(ctx, s.d.ES, s.d.ESIndex, esx.BuildDoc(cfg, rec))
}

// fanoutSink delivers events to several sinks.
type fanoutSink []manager.EventSink

func (f fanoutSink) EntityEvent(ctx context.Context, action, entityType string, id int64) {
	for _, s := range f {
		if s != nil {
			s.EntityEvent(ctx, action, entityType, id)
		}
	}
}

// manager builds a request-scoped manager for one entity type.
func (d *Deps) manager(entityType string, pageSize int, notes *toastBuffer) (*manager.Manager, *schema.EntityConfig, error) {
	cfg, ok := d.Configs[entityType]
	if !ok {
		return nil, nil, kit.NotFound("unknown entity type " + entityType)
	}
	ops, ok := d.Store.Ops(entityType)
	if !ok {
		return nil, nil, kit.NotFound("unknown entity type " + entityType)
	}
	if pageSize <= 0 {
		pageSize = d.PageSize
	}

	opts := []manager.Option{manager.WithNotifier(notes)}
	sinks := fanoutSink{}
	if d.Events != nil {
		sinks = append(sinks, d.Events)
	}
	if d.ES != nil {
		sinks = append(sinks, indexSink{d: d})
	}
	if len(sinks) > 0 {
		opts = append(opts, manager.WithEvents(sinks))
	}
	if d.Cache != nil {
		opts = append(opts, manager.WithCache(d.Cache))
	}
	if d.Searcher != nil {
		opts = append(opts, manager.WithSearcher(d.Searcher))
	}
	return manager.New(cfg, ops, pageSize, opts...), cfg, nil
}
