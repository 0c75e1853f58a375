// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/verdictlabs/verdict/ent/alert"
	"github.com/verdictlabs/verdict/ent/session"
)

// Alert is the model entity for the Alert schema.
type Alert struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// AlertType holds the value of the "alert_type" field.
	AlertType alert.AlertType `json:"alert_type,omitempty"`
	// Status holds the value of the "status" field.
	Status alert.Status `json:"status,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// ImpeachmentRisk holds the value of the "impeachment_risk" field.
	ImpeachmentRisk alert.ImpeachmentRisk `json:"impeachment_risk,omitempty"`
	// PriorQuote holds the value of the "prior_quote" field.
	PriorQuote string `json:"prior_quote,omitempty"`
	// PriorSourcePage holds the value of the "prior_source_page" field.
	PriorSourcePage *int `json:"prior_source_page,omitempty"`
	// PriorSourceLine holds the value of the "prior_source_line" field.
	PriorSourceLine *int `json:"prior_source_line,omitempty"`
	// CurrentQuote holds the value of the "current_quote" field.
	CurrentQuote string `json:"current_quote,omitempty"`
	// Federal Rules of Evidence citation, e.g. FRE 611(c)
	FreRule string `json:"fre_rule,omitempty"`
	// FreClassification holds the value of the "fre_classification" field.
	FreClassification string `json:"fre_classification,omitempty"`
	// QuestionNumber holds the value of the "question_number" field.
	QuestionNumber *int `json:"question_number,omitempty"`
	// ConfirmedAt holds the value of the "confirmed_at" field.
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	// RejectedAt holds the value of the "rejected_at" field.
	RejectedAt *time.Time `json:"rejected_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AlertQuery when eager-loading is set.
	Edges        AlertEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AlertEdges holds the relations/edges for other nodes in the graph.
type AlertEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AlertEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Alert) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case alert.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case alert.FieldPriorSourcePage, alert.FieldPriorSourceLine, alert.FieldQuestionNumber:
			values[i] = new(sql.NullInt64)
		case alert.FieldID, alert.FieldSessionID, alert.FieldAlertType, alert.FieldStatus, alert.FieldImpeachmentRisk, alert.FieldPriorQuote, alert.FieldCurrentQuote, alert.FieldFreRule, alert.FieldFreClassification:
			values[i] = new(sql.NullString)
		case alert.FieldConfirmedAt, alert.FieldRejectedAt, alert.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Alert fields.
func (_m *Alert) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case alert.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case alert.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case alert.FieldAlertType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_type", values[i])
			} else if value.Valid {
				_m.AlertType = alert.AlertType(value.String)
			}
		case alert.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = alert.Status(value.String)
			}
		case alert.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case alert.FieldImpeachmentRisk:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field impeachment_risk", values[i])
			} else if value.Valid {
				_m.ImpeachmentRisk = alert.ImpeachmentRisk(value.String)
			}
		case alert.FieldPriorQuote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prior_quote", values[i])
			} else if value.Valid {
				_m.PriorQuote = value.String
			}
		case alert.FieldPriorSourcePage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prior_source_page", values[i])
			} else if value.Valid {
				_m.PriorSourcePage = new(int)
				*_m.PriorSourcePage = int(value.Int64)
			}
		case alert.FieldPriorSourceLine:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prior_source_line", values[i])
			} else if value.Valid {
				_m.PriorSourceLine = new(int)
				*_m.PriorSourceLine = int(value.Int64)
			}
		case alert.FieldCurrentQuote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_quote", values[i])
			} else if value.Valid {
				_m.CurrentQuote = value.String
			}
		case alert.FieldFreRule:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fre_rule", values[i])
			} else if value.Valid {
				_m.FreRule = value.String
			}
		case alert.FieldFreClassification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fre_classification", values[i])
			} else if value.Valid {
				_m.FreClassification = value.String
			}
		case alert.FieldQuestionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_number", values[i])
			} else if value.Valid {
				_m.QuestionNumber = new(int)
				*_m.QuestionNumber = int(value.Int64)
			}
		case alert.FieldConfirmedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field confirmed_at", values[i])
			} else if value.Valid {
				_m.ConfirmedAt = new(time.Time)
				*_m.ConfirmedAt = value.Time
			}
		case alert.FieldRejectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field rejected_at", values[i])
			} else if value.Valid {
				_m.RejectedAt = new(time.Time)
				*_m.RejectedAt = value.Time
			}
		case alert.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Alert.
// This includes values selected through modifiers, order, etc.
func (_m *Alert) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Alert entity.
func (_m *Alert) QuerySession() *SessionQuery {
	return NewAlertClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this Alert.
// Note that you need to call Alert.Unwrap() before calling this method if this Alert
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Alert) Update() *AlertUpdateOne {
	return NewAlertClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Alert entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Alert) Unwrap() *Alert {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Alert is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Alert) String() string {
	var builder strings.Builder
	builder.WriteString("Alert(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("alert_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AlertType))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("impeachment_risk=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImpeachmentRisk))
	builder.WriteString(", ")
	builder.WriteString("prior_quote=")
	builder.WriteString(_m.PriorQuote)
	builder.WriteString(", ")
	if v := _m.PriorSourcePage; v != nil {
		builder.WriteString("prior_source_page=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PriorSourceLine; v != nil {
		builder.WriteString("prior_source_line=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("current_quote=")
	builder.WriteString(_m.CurrentQuote)
	builder.WriteString(", ")
	builder.WriteString("fre_rule=")
	builder.WriteString(_m.FreRule)
	builder.WriteString(", ")
	builder.WriteString("fre_classification=")
	builder.WriteString(_m.FreClassification)
	builder.WriteString(", ")
	if v := _m.QuestionNumber; v != nil {
		builder.WriteString("question_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ConfirmedAt; v != nil {
		builder.WriteString("confirmed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RejectedAt; v != nil {
		builder.WriteString("rejected_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Alerts is a parsable slice of Alert.
type Alerts []*Alert
