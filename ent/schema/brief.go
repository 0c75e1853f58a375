package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Brief is the post-session performance report. One per session; regeneration
// requests return the existing row.
type Brief struct {
	ent.Schema
}

// Fields of the Brief.
func (Brief) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("brief_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Unique().
			Immutable(),
		field.Float("session_score").
			Comment("0..100 overall"),
		field.Float("consistency_rate").
			Comment("0..1"),
		field.JSON("weakness_map", map[string]float64{}).
			Comment("composure, tactical_discipline, professionalism, directness, consistency"),
		field.Text("narrative_text"),
		field.JSON("recommendations", []string{}).
			Comment("Always exactly three"),
		field.Int("confirmed_flags").
			Default(0),
		field.Int("objection_count").
			Default(0),
		field.Int("composure_alerts").
			Default(0),
		field.Float("delta_vs_baseline").
			Optional().
			Nillable(),
		field.String("share_token").
			Optional().
			Nillable().
			Unique(),
		field.Time("share_expires_at").
			Optional().
			Nillable(),
		field.String("pdf_key").
			Optional().
			Comment("Blob storage key of the rendered PDF"),
		field.String("coach_audio_key").
			Optional().
			Comment("Blob storage key of the narrated summary"),
		field.Enum("generated_by").
			NamedValues(
				"Model", "MODEL",
				"Heuristic", "HEURISTIC",
			),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Brief.
func (Brief) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("brief").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Brief.
func (Brief) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("share_token"),
	}
}
