package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent is the append-only per-session timeline. seq is assigned under
// the session's writer lock; (session_id, seq) is unique so replays and
// retries cannot interleave.
type SessionEvent struct {
	ent.Schema
}

// Fields of the SessionEvent.
func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("seq").
			Immutable().
			Comment("Per-session monotonic sequence, starting at 1"),
		field.Enum("event_type").
			NamedValues(
				"SessionStarted", "SESSION_STARTED",
				"QuestionAsked", "QUESTION_ASKED",
				"AnswerReceived", "ANSWER_RECEIVED",
				"ObjectionRaised", "OBJECTION_RAISED",
				"FlagRaised", "FLAG_RAISED",
				"SessionPaused", "SESSION_PAUSED",
				"SessionResumed", "SESSION_RESUMED",
				"SessionEnded", "SESSION_ENDED",
				"SessionAbandoned", "SESSION_ABANDONED",
				"BriefGenerated", "BRIEF_GENERATED",
			),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SessionEvent.
func (SessionEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("events").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SessionEvent.
func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "seq").
			Unique(),
		index.Fields("session_id", "event_type"),
		index.Fields("created_at"),
	}
}
