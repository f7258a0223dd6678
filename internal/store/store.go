// Package store adapts the Ent persistence layer to the engine's CRUD
// seam. One binding per entity type converts between the loosely-typed
// engine records and the typed Ent client calls, and Configs authors the
// EntityConfig each page hands to the engine.
package store

import (
	"context"
	"fmt"

	"previplan/ent"
	"previplan/internal/engine/crud"
	"previplan/internal/engine/schema"
)

// Store wires every domain entity type to its Ent-backed operations.
type Store struct {
	client   *ent.Client
	bindings map[string]crud.Operations
}

// New builds a Store over an open Ent client.
func New(client *ent.Client) *Store {
	s := &Store{client: client}
	s.bindings = map[string]crud.Operations{
		"site":     siteOps(client),
		"company":  companyOps(client),
		"worker":   workerOps(client),
		"risk":     riskOps(client),
		"device":   deviceOps(client),
		"permit":   permitOps(client),
		"audit":    auditOps(client),
		"analysis": analysisOps(client),
		"pdp":      pdpOps(client),
		"bdt":      bdtOps(client),
	}
	return s
}

// Ops returns the operations for an entity type tag.
func (s *Store) Ops(entityType string) (crud.Operations, bool) {
	ops, ok := s.bindings[entityType]
	return ops, ok
}

// Types lists the known entity type tags.
func (s *Store) Types() []string {
	out := make([]string, 0, len(s.bindings))
	for t := range s.bindings {
		out = append(out, t)
	}
	return out
}

// GetReferences implements crud.ReferenceResolver: option lists for
// entity-reference fields are simply the referenced collection.
func (s *Store) GetReferences(ctx context.Context, entityType string) ([]schema.Record, error) {
	ops, ok := s.bindings[entityType]
	if !ok {
		return nil, fmt.Errorf("unknown reference type %q", entityType)
	}
	return ops.GetAll(ctx)
}
