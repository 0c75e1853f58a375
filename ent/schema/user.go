package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is an authenticated member of a firm.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("firm_id").
			Immutable(),
		field.String("email").
			NotEmpty().
			Unique(),
		field.String("password_hash").
			Sensitive(),
		field.String("full_name"),
		field.Enum("role").
			NamedValues(
				"Partner", "PARTNER",
				"Associate", "ASSOCIATE",
				"Paralegal", "PARALEGAL",
				"Admin", "ADMIN",
			).
			Default("ASSOCIATE"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("firm", Firm.Type).
			Ref("users").
			Field("firm_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("firm_id"),
	}
}
