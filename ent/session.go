// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/verdictlabs/verdict/ent/brief"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/ent/witness"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID string `json:"case_id,omitempty"`
	// WitnessID holds the value of the "witness_id" field.
	WitnessID string `json:"witness_id,omitempty"`
	// Status holds the value of the "status" field.
	Status session.Status `json:"status,omitempty"`
	// AggressionLevel holds the value of the "aggression_level" field.
	AggressionLevel session.AggressionLevel `json:"aggression_level,omitempty"`
	// FocusAreas holds the value of the "focus_areas" field.
	FocusAreas []string `json:"focus_areas,omitempty"`
	// Planned rehearsal length; the sweeper abandons sessions that exceed it plus grace
	DurationMinutes int `json:"duration_minutes,omitempty"`
	// Topic of the most recent question, surfaced in live state
	CurrentTopic string `json:"current_topic,omitempty"`
	// ObjectionCopilotEnabled holds the value of the "objection_copilot_enabled" field.
	ObjectionCopilotEnabled bool `json:"objection_copilot_enabled,omitempty"`
	// SentinelEnabled holds the value of the "sentinel_enabled" field.
	SentinelEnabled bool `json:"sentinel_enabled,omitempty"`
	// Brief job state; workers claim PENDING rows with a conditional update
	BriefStatus session.BriefStatus `json:"brief_status,omitempty"`
	// Join token handed to the witness device
	WitnessToken string `json:"witness_token,omitempty"`
	// Incremented exactly once per completed question stream
	QuestionCount int `json:"question_count,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// PausedAt holds the value of the "paused_at" field.
	PausedAt *time.Time `json:"paused_at,omitempty"`
	// TotalPauseMs holds the value of the "total_pause_ms" field.
	TotalPauseMs int64 `json:"total_pause_ms,omitempty"`
	// For abandoned-session detection
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// SessionScore holds the value of the "session_score" field.
	SessionScore *float64 `json:"session_score,omitempty"`
	// ConsistencyRate holds the value of the "consistency_rate" field.
	ConsistencyRate *float64 `json:"consistency_rate,omitempty"`
	// Weakness dimensions carried in from the witness's previous brief
	PriorWeakAreas []string `json:"prior_weak_areas,omitempty"`
	// Opaque caller-supplied correlation ID; stored, never interpreted
	ExternalContextID *string `json:"external_context_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionQuery when eager-loading is set.
	Edges        SessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionEdges holds the relations/edges for other nodes in the graph.
type SessionEdges struct {
	// LegalCase holds the value of the legal_case edge.
	LegalCase *LegalCase `json:"legal_case,omitempty"`
	// Witness holds the value of the witness edge.
	Witness *Witness `json:"witness,omitempty"`
	// Events holds the value of the events edge.
	Events []*SessionEvent `json:"events,omitempty"`
	// Alerts holds the value of the alerts edge.
	Alerts []*Alert `json:"alerts,omitempty"`
	// Brief holds the value of the brief edge.
	Brief *Brief `json:"brief,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// LegalCaseOrErr returns the LegalCase value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionEdges) LegalCaseOrErr() (*LegalCase, error) {
	if e.LegalCase != nil {
		return e.LegalCase, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: legalcase.Label}
	}
	return nil, &NotLoadedError{edge: "legal_case"}
}

// WitnessOrErr returns the Witness value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionEdges) WitnessOrErr() (*Witness, error) {
	if e.Witness != nil {
		return e.Witness, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: witness.Label}
	}
	return nil, &NotLoadedError{edge: "witness"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) EventsOrErr() ([]*SessionEvent, error) {
	if e.loadedTypes[2] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// AlertsOrErr returns the Alerts value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) AlertsOrErr() ([]*Alert, error) {
	if e.loadedTypes[3] {
		return e.Alerts, nil
	}
	return nil, &NotLoadedError{edge: "alerts"}
}

// BriefOrErr returns the Brief value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionEdges) BriefOrErr() (*Brief, error) {
	if e.Brief != nil {
		return e.Brief, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: brief.Label}
	}
	return nil, &NotLoadedError{edge: "brief"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldFocusAreas, session.FieldPriorWeakAreas:
			values[i] = new([]byte)
		case session.FieldObjectionCopilotEnabled, session.FieldSentinelEnabled:
			values[i] = new(sql.NullBool)
		case session.FieldSessionScore, session.FieldConsistencyRate:
			values[i] = new(sql.NullFloat64)
		case session.FieldDurationMinutes, session.FieldQuestionCount, session.FieldTotalPauseMs:
			values[i] = new(sql.NullInt64)
		case session.FieldID, session.FieldCaseID, session.FieldWitnessID, session.FieldStatus, session.FieldAggressionLevel, session.FieldCurrentTopic, session.FieldBriefStatus, session.FieldWitnessToken, session.FieldExternalContextID:
			values[i] = new(sql.NullString)
		case session.FieldStartedAt, session.FieldEndedAt, session.FieldPausedAt, session.FieldLastInteractionAt, session.FieldCreatedAt, session.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case session.FieldCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value.Valid {
				_m.CaseID = value.String
			}
		case session.FieldWitnessID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field witness_id", values[i])
			} else if value.Valid {
				_m.WitnessID = value.String
			}
		case session.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = session.Status(value.String)
			}
		case session.FieldAggressionLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field aggression_level", values[i])
			} else if value.Valid {
				_m.AggressionLevel = session.AggressionLevel(value.String)
			}
		case session.FieldFocusAreas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field focus_areas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FocusAreas); err != nil {
					return fmt.Errorf("unmarshal field focus_areas: %w", err)
				}
			}
		case session.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = int(value.Int64)
			}
		case session.FieldCurrentTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_topic", values[i])
			} else if value.Valid {
				_m.CurrentTopic = value.String
			}
		case session.FieldObjectionCopilotEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field objection_copilot_enabled", values[i])
			} else if value.Valid {
				_m.ObjectionCopilotEnabled = value.Bool
			}
		case session.FieldSentinelEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field sentinel_enabled", values[i])
			} else if value.Valid {
				_m.SentinelEnabled = value.Bool
			}
		case session.FieldBriefStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field brief_status", values[i])
			} else if value.Valid {
				_m.BriefStatus = session.BriefStatus(value.String)
			}
		case session.FieldWitnessToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field witness_token", values[i])
			} else if value.Valid {
				_m.WitnessToken = value.String
			}
		case session.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				_m.QuestionCount = int(value.Int64)
			}
		case session.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case session.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case session.FieldPausedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field paused_at", values[i])
			} else if value.Valid {
				_m.PausedAt = new(time.Time)
				*_m.PausedAt = value.Time
			}
		case session.FieldTotalPauseMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_pause_ms", values[i])
			} else if value.Valid {
				_m.TotalPauseMs = value.Int64
			}
		case session.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		case session.FieldSessionScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field session_score", values[i])
			} else if value.Valid {
				_m.SessionScore = new(float64)
				*_m.SessionScore = value.Float64
			}
		case session.FieldConsistencyRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field consistency_rate", values[i])
			} else if value.Valid {
				_m.ConsistencyRate = new(float64)
				*_m.ConsistencyRate = value.Float64
			}
		case session.FieldPriorWeakAreas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field prior_weak_areas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PriorWeakAreas); err != nil {
					return fmt.Errorf("unmarshal field prior_weak_areas: %w", err)
				}
			}
		case session.FieldExternalContextID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_context_id", values[i])
			} else if value.Valid {
				_m.ExternalContextID = new(string)
				*_m.ExternalContextID = value.String
			}
		case session.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case session.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLegalCase queries the "legal_case" edge of the Session entity.
func (_m *Session) QueryLegalCase() *LegalCaseQuery {
	return NewSessionClient(_m.config).QueryLegalCase(_m)
}

// QueryWitness queries the "witness" edge of the Session entity.
func (_m *Session) QueryWitness() *WitnessQuery {
	return NewSessionClient(_m.config).QueryWitness(_m)
}

// QueryEvents queries the "events" edge of the Session entity.
func (_m *Session) QueryEvents() *SessionEventQuery {
	return NewSessionClient(_m.config).QueryEvents(_m)
}

// QueryAlerts queries the "alerts" edge of the Session entity.
func (_m *Session) QueryAlerts() *AlertQuery {
	return NewSessionClient(_m.config).QueryAlerts(_m)
}

// QueryBrief queries the "brief" edge of the Session entity.
func (_m *Session) QueryBrief() *BriefQuery {
	return NewSessionClient(_m.config).QueryBrief(_m)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("case_id=")
	builder.WriteString(_m.CaseID)
	builder.WriteString(", ")
	builder.WriteString("witness_id=")
	builder.WriteString(_m.WitnessID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("aggression_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.AggressionLevel))
	builder.WriteString(", ")
	builder.WriteString("focus_areas=")
	builder.WriteString(fmt.Sprintf("%v", _m.FocusAreas))
	builder.WriteString(", ")
	builder.WriteString("duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("current_topic=")
	builder.WriteString(_m.CurrentTopic)
	builder.WriteString(", ")
	builder.WriteString("objection_copilot_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.ObjectionCopilotEnabled))
	builder.WriteString(", ")
	builder.WriteString("sentinel_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentinelEnabled))
	builder.WriteString(", ")
	builder.WriteString("brief_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.BriefStatus))
	builder.WriteString(", ")
	builder.WriteString("witness_token=")
	builder.WriteString(_m.WitnessToken)
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionCount))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PausedAt; v != nil {
		builder.WriteString("paused_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_pause_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPauseMs))
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SessionScore; v != nil {
		builder.WriteString("session_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ConsistencyRate; v != nil {
		builder.WriteString("consistency_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("prior_weak_areas=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorWeakAreas))
	builder.WriteString(", ")
	if v := _m.ExternalContextID; v != nil {
		builder.WriteString("external_context_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session
