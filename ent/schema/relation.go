package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Relation is the join row recording that a child entity (risk, device,
// permit, audit, analysis) applies to a parent document (pdp or bdt).
// Rows are created when a user links an item and updated when the
// "applies" answer flips; they are never deleted in place.
type Relation struct{ ent.Schema }

// Fields defines the fields for the Relation entity.
func (Relation) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("parent_type").Values("pdp", "bdt"),
		field.Int64("parent_id"),
		field.Enum("child_type").Values("risk", "device", "permit", "audit", "analysis"),
		field.Int64("child_id"),
		field.Bool("applies").Default(true),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes defines indexes for the Relation entity.
func (Relation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parent_type", "parent_id"),
		index.Fields("parent_type", "parent_id", "child_type", "child_id").Unique(),
	}
}
