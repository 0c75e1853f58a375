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
	"github.com/verdictlabs/verdict/ent/session"
)

// Brief is the model entity for the Brief schema.
type Brief struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// 0..100 overall
	SessionScore float64 `json:"session_score,omitempty"`
	// 0..1
	ConsistencyRate float64 `json:"consistency_rate,omitempty"`
	// composure, tactical_discipline, professionalism, directness, consistency
	WeaknessMap map[string]float64 `json:"weakness_map,omitempty"`
	// NarrativeText holds the value of the "narrative_text" field.
	NarrativeText string `json:"narrative_text,omitempty"`
	// Always exactly three
	Recommendations []string `json:"recommendations,omitempty"`
	// ConfirmedFlags holds the value of the "confirmed_flags" field.
	ConfirmedFlags int `json:"confirmed_flags,omitempty"`
	// ObjectionCount holds the value of the "objection_count" field.
	ObjectionCount int `json:"objection_count,omitempty"`
	// ComposureAlerts holds the value of the "composure_alerts" field.
	ComposureAlerts int `json:"composure_alerts,omitempty"`
	// DeltaVsBaseline holds the value of the "delta_vs_baseline" field.
	DeltaVsBaseline *float64 `json:"delta_vs_baseline,omitempty"`
	// ShareToken holds the value of the "share_token" field.
	ShareToken *string `json:"share_token,omitempty"`
	// ShareExpiresAt holds the value of the "share_expires_at" field.
	ShareExpiresAt *time.Time `json:"share_expires_at,omitempty"`
	// Blob storage key of the rendered PDF
	PdfKey string `json:"pdf_key,omitempty"`
	// Blob storage key of the narrated summary
	CoachAudioKey string `json:"coach_audio_key,omitempty"`
	// GeneratedBy holds the value of the "generated_by" field.
	GeneratedBy brief.GeneratedBy `json:"generated_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BriefQuery when eager-loading is set.
	Edges        BriefEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BriefEdges holds the relations/edges for other nodes in the graph.
type BriefEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BriefEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Brief) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case brief.FieldWeaknessMap, brief.FieldRecommendations:
			values[i] = new([]byte)
		case brief.FieldSessionScore, brief.FieldConsistencyRate, brief.FieldDeltaVsBaseline:
			values[i] = new(sql.NullFloat64)
		case brief.FieldConfirmedFlags, brief.FieldObjectionCount, brief.FieldComposureAlerts:
			values[i] = new(sql.NullInt64)
		case brief.FieldID, brief.FieldSessionID, brief.FieldNarrativeText, brief.FieldShareToken, brief.FieldPdfKey, brief.FieldCoachAudioKey, brief.FieldGeneratedBy:
			values[i] = new(sql.NullString)
		case brief.FieldShareExpiresAt, brief.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Brief fields.
func (_m *Brief) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case brief.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case brief.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case brief.FieldSessionScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field session_score", values[i])
			} else if value.Valid {
				_m.SessionScore = value.Float64
			}
		case brief.FieldConsistencyRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field consistency_rate", values[i])
			} else if value.Valid {
				_m.ConsistencyRate = value.Float64
			}
		case brief.FieldWeaknessMap:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weakness_map", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WeaknessMap); err != nil {
					return fmt.Errorf("unmarshal field weakness_map: %w", err)
				}
			}
		case brief.FieldNarrativeText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field narrative_text", values[i])
			} else if value.Valid {
				_m.NarrativeText = value.String
			}
		case brief.FieldRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recommendations); err != nil {
					return fmt.Errorf("unmarshal field recommendations: %w", err)
				}
			}
		case brief.FieldConfirmedFlags:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confirmed_flags", values[i])
			} else if value.Valid {
				_m.ConfirmedFlags = int(value.Int64)
			}
		case brief.FieldObjectionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field objection_count", values[i])
			} else if value.Valid {
				_m.ObjectionCount = int(value.Int64)
			}
		case brief.FieldComposureAlerts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field composure_alerts", values[i])
			} else if value.Valid {
				_m.ComposureAlerts = int(value.Int64)
			}
		case brief.FieldDeltaVsBaseline:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field delta_vs_baseline", values[i])
			} else if value.Valid {
				_m.DeltaVsBaseline = new(float64)
				*_m.DeltaVsBaseline = value.Float64
			}
		case brief.FieldShareToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field share_token", values[i])
			} else if value.Valid {
				_m.ShareToken = new(string)
				*_m.ShareToken = value.String
			}
		case brief.FieldShareExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field share_expires_at", values[i])
			} else if value.Valid {
				_m.ShareExpiresAt = new(time.Time)
				*_m.ShareExpiresAt = value.Time
			}
		case brief.FieldPdfKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_key", values[i])
			} else if value.Valid {
				_m.PdfKey = value.String
			}
		case brief.FieldCoachAudioKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field coach_audio_key", values[i])
			} else if value.Valid {
				_m.CoachAudioKey = value.String
			}
		case brief.FieldGeneratedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generated_by", values[i])
			} else if value.Valid {
				_m.GeneratedBy = brief.GeneratedBy(value.String)
			}
		case brief.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Brief.
// This includes values selected through modifiers, order, etc.
func (_m *Brief) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Brief entity.
func (_m *Brief) QuerySession() *SessionQuery {
	return NewBriefClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this Brief.
// Note that you need to call Brief.Unwrap() before calling this method if this Brief
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Brief) Update() *BriefUpdateOne {
	return NewBriefClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Brief entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Brief) Unwrap() *Brief {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Brief is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Brief) String() string {
	var builder strings.Builder
	builder.WriteString("Brief(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("session_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionScore))
	builder.WriteString(", ")
	builder.WriteString("consistency_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsistencyRate))
	builder.WriteString(", ")
	builder.WriteString("weakness_map=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeaknessMap))
	builder.WriteString(", ")
	builder.WriteString("narrative_text=")
	builder.WriteString(_m.NarrativeText)
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recommendations))
	builder.WriteString(", ")
	builder.WriteString("confirmed_flags=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfirmedFlags))
	builder.WriteString(", ")
	builder.WriteString("objection_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ObjectionCount))
	builder.WriteString(", ")
	builder.WriteString("composure_alerts=")
	builder.WriteString(fmt.Sprintf("%v", _m.ComposureAlerts))
	builder.WriteString(", ")
	if v := _m.DeltaVsBaseline; v != nil {
		builder.WriteString("delta_vs_baseline=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ShareToken; v != nil {
		builder.WriteString("share_token=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ShareExpiresAt; v != nil {
		builder.WriteString("share_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("pdf_key=")
	builder.WriteString(_m.PdfKey)
	builder.WriteString(", ")
	builder.WriteString("coach_audio_key=")
	builder.WriteString(_m.CoachAudioKey)
	builder.WriteString(", ")
	builder.WriteString("generated_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.GeneratedBy))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Briefs is a parsable slice of Brief.
type Briefs []*Brief
