package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Company is a contractor company ("entreprise extérieure").
type Company struct{ ent.Schema }

// Fields defines the fields for the Company entity.
func (Company) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").NotEmpty().MaxLen(255),
		field.String("siret").Optional().MaxLen(14),
		field.String("address").Optional(),
		field.String("phone").Optional().MaxLen(32),
		field.String("contact_name").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes defines indexes for the Company entity.
func (Company) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
