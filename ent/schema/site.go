// Package schema defines Ent ORM schema types for the application.
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Site is a work site ("chantier") where prevention plans apply.
type Site struct{ ent.Schema }

// Fields defines the fields for the Site entity.
func (Site) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").NotEmpty().MaxLen(255),
		field.String("address").Optional(),
		field.String("city").Optional(),
		field.String("postal_code").Optional().MaxLen(10),
		field.Enum("status").Values("planned", "active", "closed").Default("planned"),
		field.Time("start_date").Optional().Nillable(),
		field.Time("end_date").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes defines indexes for the Site entity.
func (Site) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("updated_at"),
	}
}
