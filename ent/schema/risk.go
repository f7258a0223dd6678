package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Risk is a hazard that a prevention plan or work order can reference.
type Risk struct{ ent.Schema }

// Fields defines the fields for the Risk entity.
func (Risk) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").NotEmpty().MaxLen(255),
		field.Text("description").Optional(),
		field.Enum("level").Values("low", "medium", "high", "critical").Default("medium"),
		// Whether working under this risk requires a permit.
		field.Bool("permit_required").Default(false),
		// {mimeType, imageData} payload, base64-encoded by the engine.
		field.JSON("logo", map[string]string{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes defines indexes for the Risk entity.
func (Risk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level"),
		index.Fields("title"),
	}
}
