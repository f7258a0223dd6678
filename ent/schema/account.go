package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Account is an application login. Passwords are argon2id-encoded.
type Account struct{ ent.Schema }

// Fields defines the fields for the Account entity.
func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").NotEmpty().Unique().MaxLen(64),
		field.String("password_hash").NotEmpty().Sensitive(),
		field.Enum("role").Values("user", "admin").Default("user"),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("last_login_at").Optional().Nillable(),
	}
}
