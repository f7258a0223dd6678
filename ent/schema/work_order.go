package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkOrder is the BDT ("bon de travail") authorizing a specific task,
// referencing risks/devices/permits through Relation rows.
type WorkOrder struct{ ent.Schema }

// Fields defines the fields for the WorkOrder entity.
func (WorkOrder) Fields() []ent.Field {
	return []ent.Field{
		field.String("reference").NotEmpty().MaxLen(64),
		field.Int64("site_id").Optional(),
		field.Int64("company_id").Optional(),
		field.Time("work_date").Optional().Nillable(),
		field.Enum("status").Values("draft", "signed", "done").Default("draft"),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes defines indexes for the WorkOrder entity.
func (WorkOrder) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("site_id"),
		index.Fields("reference").Unique(),
	}
}
