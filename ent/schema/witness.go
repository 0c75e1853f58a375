package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Witness is a deponent being prepared. Score rollups are maintained by the
// brief generator when a session completes.
type Witness struct {
	ent.Schema
}

// Fields of the Witness.
func (Witness) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("witness_id").
			Unique().
			Immutable(),
		field.String("case_id").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("email").
			Optional(),
		field.String("role").
			Optional().
			Comment("Relationship to the case, e.g. plaintiff, expert, custodian"),
		field.Int("session_count").
			Default(0),
		field.Float("latest_score").
			Optional().
			Nillable(),
		field.Float("baseline_score").
			Optional().
			Nillable().
			Comment("Score of the first completed session; never updated after set"),
		field.Bool("plateau_detected").
			Default(false).
			Comment("Three consecutive session scores within +/-3 points"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Witness.
func (Witness) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("legal_case", LegalCase.Type).
			Ref("witnesses").
			Field("case_id").
			Unique().
			Required().
			Immutable(),
		edge.To("sessions", Session.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Witness.
func (Witness) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id"),
	}
}
