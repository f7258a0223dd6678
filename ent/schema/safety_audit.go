package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SafetyAudit is a periodic security audit item attachable to documents.
type SafetyAudit struct{ ent.Schema }

// Fields defines the fields for the SafetyAudit entity.
func (SafetyAudit) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").NotEmpty().MaxLen(255),
		field.Text("description").Optional(),
		field.JSON("logo", map[string]string{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
