package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SafetyDevice is a protection device ("dispositif de sécurité")
// deployable against one or more risks.
type SafetyDevice struct{ ent.Schema }

// Fields defines the fields for the SafetyDevice entity.
func (SafetyDevice) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").NotEmpty().MaxLen(255),
		field.Text("description").Optional(),
		field.JSON("logo", map[string]string{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
