package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Worker is an employee of a contractor company present on a site.
type Worker struct{ ent.Schema }

// Fields defines the fields for the Worker entity.
func (Worker) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").NotEmpty(),
		field.String("last_name").NotEmpty(),
		field.String("email").Optional(),
		field.String("phone").Optional().MaxLen(32),
		// Company reference by id; the engine stores refs as bare ids.
		field.Int64("company_id").Optional(),
		// Certification names, free-form.
		field.JSON("certifications", []string{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes defines indexes for the Worker entity.
func (Worker) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id"),
		index.Fields("last_name"),
	}
}
