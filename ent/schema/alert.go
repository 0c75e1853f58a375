package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Alert is an attorney-facing flag raised by the objection copilot or the
// inconsistency sentinel. Alerts start PENDING and are confirmed or rejected
// by the attorney during or after the session.
type Alert struct {
	ent.Schema
}

// Fields of the Alert.
func (Alert) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("alert_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Enum("alert_type").
			NamedValues(
				"Contradiction", "CONTRADICTION",
				"Objection", "OBJECTION",
				"Composure", "COMPOSURE",
			),
		field.Enum("status").
			NamedValues(
				"Pending", "PENDING",
				"Confirmed", "CONFIRMED",
				"Rejected", "REJECTED",
			).
			Default("PENDING"),
		field.Float("confidence"),
		field.Enum("impeachment_risk").
			NamedValues(
				"Low", "LOW",
				"Medium", "MEDIUM",
				"High", "HIGH",
			).
			Optional(),
		field.Text("prior_quote").
			Optional(),
		field.Int("prior_source_page").
			Optional().
			Nillable(),
		field.Int("prior_source_line").
			Optional().
			Nillable(),
		field.Text("current_quote").
			Optional(),
		field.String("fre_rule").
			Optional().
			Comment("Federal Rules of Evidence citation, e.g. FRE 611(c)"),
		field.String("fre_classification").
			Optional(),
		field.Int("question_number").
			Optional().
			Nillable(),
		field.Time("confirmed_at").
			Optional().
			Nillable(),
		field.Time("rejected_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Alert.
func (Alert) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("alerts").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Alert.
func (Alert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "status"),
		index.Fields("session_id", "alert_type"),
	}
}
