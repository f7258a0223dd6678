package store

import (
	"context"
	"errors"
	"fmt"

	"previplan/ent"
	"previplan/ent/relation"

	"previplan/internal/engine/crud"
	"previplan/internal/engine/schema"
)

// RelationRow is a join row between a parent document (pdp or bdt) and a
// child safety entity, decorated with the resolved child record.
type RelationRow struct {
	ID        int64         `json:"id"`
	ChildType string        `json:"child_type"`
	ChildID   int64         `json:"child_id"`
	Applies   bool          `json:"applies"`
	Child     schema.Record `json:"child,omitempty"`
}

var childTypes = map[string]relation.ChildType{
	"risk":     relation.ChildTypeRisk,
	"device":   relation.ChildTypeDevice,
	"permit":   relation.ChildTypePermit,
	"audit":    relation.ChildTypeAudit,
	"analysis": relation.ChildTypeAnalysis,
}

func parentType(docType string) (relation.ParentType, error) {
	switch docType {
	case "pdp":
		return relation.ParentTypePdp, nil
	case "bdt":
		return relation.ParentTypeBdt, nil
	default:
		return "", fmt.Errorf("unknown document type %q", docType)
	}
}

func (s *Store) relationRow(ctx context.Context, row *ent.Relation) RelationRow {
	out := RelationRow{
		ID:        int64(row.ID),
		ChildType: string(row.ChildType),
		ChildID:   row.ChildID,
		Applies:   row.Applies,
	}
	if ops, ok := s.bindings[out.ChildType]; ok {
		if child, err := ops.GetByID(ctx, out.ChildID); err == nil {
			out.Child = child
		}
	}
	return out
}

// ListRelations returns every join row attached to a document, applying
// or not, with the child record resolved when it still exists.
func (s *Store) ListRelations(ctx context.Context, docType string, parentID int64) ([]RelationRow, error) {
	pt, err := parentType(docType)
	if err != nil {
		return nil, err
	}
	rows, err := s.client.Relation.Query().
		Where(relation.ParentTypeEQ(pt), relation.ParentIDEQ(parentID)).
		Order(ent.Asc(relation.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RelationRow, len(rows))
	for i, row := range rows {
		out[i] = s.relationRow(ctx, row)
	}
	return out, nil
}

// LinkChild attaches a child entity to a document. If the pair already
// has a join row the row is revived with applies=true instead of
// duplicated; rows are never deleted.
func (s *Store) LinkChild(ctx context.Context, docType string, parentID int64, childType string, childID int64) (RelationRow, error) {
	pt, err := parentType(docType)
	if err != nil {
		return RelationRow{}, err
	}
	ct, ok := childTypes[childType]
	if !ok {
		return RelationRow{}, fmt.Errorf("unknown child type %q", childType)
	}
	ops, ok := s.bindings[childType]
	if !ok {
		return RelationRow{}, fmt.Errorf("unknown child type %q", childType)
	}
	if _, err := ops.GetByID(ctx, childID); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return RelationRow{}, fmt.Errorf("%s %d: %w", childType, childID, crud.ErrNotFound)
		}
		return RelationRow{}, err
	}

	existing, err := s.client.Relation.Query().
		Where(
			relation.ParentTypeEQ(pt),
			relation.ParentIDEQ(parentID),
			relation.ChildTypeEQ(ct),
			relation.ChildIDEQ(childID),
		).
		Only(ctx)
	switch {
	case err == nil:
		row, err := existing.Update().SetApplies(true).Save(ctx)
		if err != nil {
			return RelationRow{}, err
		}
		return s.relationRow(ctx, row), nil
	case ent.IsNotFound(err):
		row, err := s.client.Relation.Create().
			SetParentType(pt).
			SetParentID(parentID).
			SetChildType(ct).
			SetChildID(childID).
			SetApplies(true).
			Save(ctx)
		if err != nil {
			return RelationRow{}, err
		}
		return s.relationRow(ctx, row), nil
	default:
		return RelationRow{}, err
	}
}

// AnswerRelation records whether a linked child applies to its document.
func (s *Store) AnswerRelation(ctx context.Context, relID int64, applies bool) (RelationRow, error) {
	row, err := s.client.Relation.UpdateOneID(int(relID)).SetApplies(applies).Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return RelationRow{}, crud.ErrNotFound
		}
		return RelationRow{}, err
	}
	return s.relationRow(ctx, row), nil
}
