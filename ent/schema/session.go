package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for a rehearsal session.
//
// Lifecycle: LOBBY -> ACTIVE <-> PAUSED -> COMPLETE, with ABANDONED reachable
// from any non-terminal state via the idle sweeper. Status transitions are
// performed with conditional updates (WHERE status = expected) so that two
// replicas never drive the same session concurrently.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("case_id").
			Immutable(),
		field.String("witness_id").
			Immutable(),
		field.Enum("status").
			NamedValues(
				"Lobby", "LOBBY",
				"Active", "ACTIVE",
				"Paused", "PAUSED",
				"Complete", "COMPLETE",
				"Abandoned", "ABANDONED",
			).
			Default("LOBBY"),
		field.Enum("aggression_level").
			NamedValues(
				"Standard", "STANDARD",
				"Elevated", "ELEVATED",
				"HighStakes", "HIGH_STAKES",
			).
			Default("STANDARD"),
		field.JSON("focus_areas", []string{}).
			Optional(),
		field.Int("duration_minutes").
			Default(30).
			Comment("Planned rehearsal length; the sweeper abandons sessions that exceed it plus grace"),
		field.String("current_topic").
			Optional().
			Comment("Topic of the most recent question, surfaced in live state"),
		field.Bool("objection_copilot_enabled").
			Default(true),
		field.Bool("sentinel_enabled").
			Default(true),
		field.Enum("brief_status").
			NamedValues(
				"None", "NONE",
				"Pending", "PENDING",
				"Generating", "GENERATING",
				"Done", "DONE",
				"Failed", "FAILED",
			).
			Default("NONE").
			Comment("Brief job state; workers claim PENDING rows with a conditional update"),
		field.String("witness_token").
			Unique().
			Comment("Join token handed to the witness device"),
		field.Int("question_count").
			Default(0).
			Comment("Incremented exactly once per completed question stream"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Time("paused_at").
			Optional().
			Nillable(),
		field.Int64("total_pause_ms").
			Default(0),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("For abandoned-session detection"),
		field.Float("session_score").
			Optional().
			Nillable(),
		field.Float("consistency_rate").
			Optional().
			Nillable(),
		field.JSON("prior_weak_areas", []string{}).
			Optional().
			Comment("Weakness dimensions carried in from the witness's previous brief"),
		field.String("external_context_id").
			Optional().
			Nillable().
			Comment("Opaque caller-supplied correlation ID; stored, never interpreted"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("legal_case", LegalCase.Type).
			Ref("sessions").
			Field("case_id").
			Unique().
			Required().
			Immutable(),
		edge.From("witness", Witness.Type).
			Ref("sessions").
			Field("witness_id").
			Unique().
			Required().
			Immutable(),
		edge.To("events", SessionEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("alerts", Alert.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("brief", Brief.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id"),
		index.Fields("witness_id"),
		index.Fields("status"),
		index.Fields("status", "last_interaction_at"),
		index.Fields("brief_status", "updated_at"),
	}
}
