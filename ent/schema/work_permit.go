package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkPermit is a permit ("permis de travail") required for certain
// high-risk operations.
type WorkPermit struct{ ent.Schema }

// Fields defines the fields for the WorkPermit entity.
func (WorkPermit) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").NotEmpty().MaxLen(255),
		field.Text("description").Optional(),
		field.Time("valid_until").Optional().Nillable(),
		field.JSON("logo", map[string]string{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes defines indexes for the WorkPermit entity.
func (WorkPermit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("valid_until"),
	}
}
