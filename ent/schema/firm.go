package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Firm is the tenant root. Every other entity is reachable from exactly one firm.
type Firm struct {
	ent.Schema
}

// Fields of the Firm.
func (Firm) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("firm_id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Int("retention_days").
			Default(90).
			Comment("How long completed session data is kept"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Firm.
func (Firm) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("users", User.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("cases", LegalCase.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
