// Package crud defines the adapter seam between the generic engine and
// whatever actually persists entities. Any conforming implementation
// (Ent, REST, in-memory) drives the engine unchanged.
package crud

import (
	"context"
	"errors"

	"previplan/internal/engine/schema"
)

// ErrNotFound is returned by adapters when an id does not resolve.
var ErrNotFound = errors.New("entity not found")

// Operations is the per-entity-type persistence contract.
type Operations interface {
	GetAll(ctx context.Context) ([]schema.Record, error)
	GetByID(ctx context.Context, id int64) (schema.Record, error)
	Create(ctx context.Context, rec schema.Record) (schema.Record, error)
	Update(ctx context.Context, id int64, rec schema.Record) (schema.Record, error)
	Delete(ctx context.Context, id int64) error
}

// ReferenceResolver supplies the option lists for entity-reference fields.
type ReferenceResolver interface {
	GetReferences(ctx context.Context, entityType string) ([]schema.Record, error)
}

// ResolverFunc adapts a plain function to ReferenceResolver.
type ResolverFunc func(ctx context.Context, entityType string) ([]schema.Record, error)

func (f ResolverFunc) GetReferences(ctx context.Context, entityType string) ([]schema.Record, error) {
	return f(ctx, entityType)
}

// Funcs implements Operations from individual function fields. Unset
// operations return ErrNotFound / nil. Handy for glue code and tests.
type Funcs struct {
	GetAllFn  func(ctx context.Context) ([]schema.Record, error)
	GetByIDFn func(ctx context.Context, id int64) (schema.Record, error)
	CreateFn  func(ctx context.Context, rec schema.Record) (schema.Record, error)
	UpdateFn  func(ctx context.Context, id int64, rec schema.Record) (schema.Record, error)
	DeleteFn  func(ctx context.Context, id int64) error
}

func (f Funcs) GetAll(ctx context.Context) ([]schema.Record, error) {
	if f.GetAllFn == nil {
		return nil, nil
	}
	return f.GetAllFn(ctx)
}

func (f Funcs) GetByID(ctx context.Context, id int64) (schema.Record, error) {
	if f.GetByIDFn == nil {
		return nil, ErrNotFound
	}
	return f.GetByIDFn(ctx, id)
}

func (f Funcs) Create(ctx context.Context, rec schema.Record) (schema.Record, error) {
	if f.CreateFn == nil {
		return nil, ErrNotFound
	}
	return f.CreateFn(ctx, rec)
}

func (f Funcs) Update(ctx context.Context, id int64, rec schema.Record) (schema.Record, error) {
	if f.UpdateFn == nil {
		return nil, ErrNotFound
	}
	return f.UpdateFn(ctx, id, rec)
}

func (f Funcs) Delete(ctx context.Context, id int64) error {
	if f.DeleteFn == nil {
		return ErrNotFound
	}
	return f.DeleteFn(ctx, id)
}
