package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RiskAnalysis is an "analyse de risque": the prevention measures agreed
// for one activity of a contractor on a site.
type RiskAnalysis struct{ ent.Schema }

// Fields defines the fields for the RiskAnalysis entity.
func (RiskAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("activity").NotEmpty().MaxLen(255),
		field.Text("measures").Optional(),
		field.Int64("company_id").Optional(),
		field.Enum("status").Values("draft", "validated").Default("draft"),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes defines indexes for the RiskAnalysis entity.
func (RiskAnalysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id"),
	}
}
