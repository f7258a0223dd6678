// Package refcache holds reference-option lists (the autocomplete choices
// for entity-reference fields) behind an explicit cache object. Managers
// invalidate the entry for an entity type on every confirmed mutation of
// that type, so stale options never outlive a write.
package refcache

import (
	"context"
	"sync"

	"previplan/internal/engine/crud"
	"previplan/internal/engine/schema"
)

// Cache stores reference lists per entity type.
type Cache interface {
	Get(ctx context.Context, entityType string) ([]schema.Record, bool, error)
	Put(ctx context.Context, entityType string, items []schema.Record) error
	Invalidate(ctx context.Context, entityType string) error
}

// Memory is a process-local Cache.
type Memory struct {
	mu    sync.RWMutex
	items map[string][]schema.Record
}

// NewMemory builds an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{items: map[string][]schema.Record{}}
}

func (m *Memory) Get(_ context.Context, entityType string) ([]schema.Record, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items, ok := m.items[entityType]
	return items, ok, nil
}

func (m *Memory) Put(_ context.Context, entityType string, items []schema.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[entityType] = items
	return nil
}

func (m *Memory) Invalidate(_ context.Context, entityType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, entityType)
	return nil
}

// Resolver wraps a ReferenceResolver with a Cache. A miss resolves
// through the inner adapter and fills the cache; resolver errors are
// never cached.
type Resolver struct {
	cache Cache
	next  crud.ReferenceResolver
}

// NewResolver builds a caching resolver over next.
func NewResolver(cache Cache, next crud.ReferenceResolver) *Resolver {
	return &Resolver{cache: cache, next: next}
}

func (r *Resolver) GetReferences(ctx context.Context, entityType string) ([]schema.Record, error) {
	if items, ok, err := r.cache.Get(ctx, entityType); err == nil && ok {
		return items, nil
	}
	items, err := r.next.GetReferences(ctx, entityType)
	if err != nil {
		return nil, err
	}
	_ = r.cache.Put(ctx, entityType, items)
	return items, nil
}
