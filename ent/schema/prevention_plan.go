package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PreventionPlan is the PDP document linking a site, a contractor and the
// safety artifacts (risks, devices, permits, audits, analyses) that apply
// to it via Relation rows.
type PreventionPlan struct{ ent.Schema }

// Fields defines the fields for the PreventionPlan entity.
func (PreventionPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("reference").NotEmpty().MaxLen(64),
		field.Int64("site_id").Optional(),
		field.Int64("company_id").Optional(),
		field.Time("start_date").Optional().Nillable(),
		field.Time("end_date").Optional().Nillable(),
		// Date of the joint prior inspection ("inspection commune préalable").
		field.Time("icp_date").Optional().Nillable(),
		field.Enum("status").Values("draft", "signed", "expired").Default("draft"),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes defines indexes for the PreventionPlan entity.
func (PreventionPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("site_id"),
		index.Fields("company_id"),
		index.Fields("reference").Unique(),
	}
}
