package refcache

import (
	"context"
	"errors"
	"testing"

	"previplan/internal/engine/crud"
	"previplan/internal/engine/schema"
)

func TestResolver_MissFillsCache(t *testing.T) {
	calls := 0
	next := crud.ResolverFunc(func(_ context.Context, entityType string) ([]schema.Record, error) {
		calls++
		return []schema.Record{{"id": int64(1), "name": "Vinci"}}, nil
	})
	r := NewResolver(NewMemory(), next)

	for i := 0; i < 3; i++ {
		items, err := r.GetReferences(context.Background(), "company")
		if err != nil || len(items) != 1 {
			t.Fatalf("items=%v err=%v", items, err)
		}
	}
	if calls != 1 {
		t.Fatalf("want 1 resolve, got %d", calls)
	}
}

func TestResolver_ErrorsNotCached(t *testing.T) {
	calls := 0
	next := crud.ResolverFunc(func(context.Context, string) ([]schema.Record, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("db down")
		}
		return []schema.Record{{"id": int64(1)}}, nil
	})
	r := NewResolver(NewMemory(), next)

	if _, err := r.GetReferences(context.Background(), "site"); err == nil {
		t.Fatalf("want error")
	}
	items, err := r.GetReferences(context.Background(), "site")
	if err != nil || len(items) != 1 {
		t.Fatalf("retry must hit the resolver again: %v %v", items, err)
	}
	if calls != 2 {
		t.Fatalf("calls=%d", calls)
	}
}

func TestInvalidate(t *testing.T) {
	calls := 0
	next := crud.ResolverFunc(func(context.Context, string) ([]schema.Record, error) {
		calls++
		return nil, nil
	})
	cache := NewMemory()
	r := NewResolver(cache, next)

	_, _ = r.GetReferences(context.Background(), "risk")
	if err := cache.Invalidate(context.Background(), "risk"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	_, _ = r.GetReferences(context.Background(), "risk")
	if calls != 2 {
		t.Fatalf("invalidate must force a fresh resolve, got %d", calls)
	}
}

func TestMemory_TypesIsolated(t *testing.T) {
	cache := NewMemory()
	ctx := context.Background()
	_ = cache.Put(ctx, "site", []schema.Record{{"id": int64(1)}})
	_ = cache.Put(ctx, "company", []schema.Record{{"id": int64(2)}})

	_ = cache.Invalidate(ctx, "site")
	if _, ok, _ := cache.Get(ctx, "site"); ok {
		t.Fatalf("site should be gone")
	}
	if items, ok, _ := cache.Get(ctx, "company"); !ok || len(items) != 1 {
		t.Fatalf("company must survive")
	}
}
