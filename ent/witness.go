// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/ent/witness"
)

// Witness is the model entity for the Witness schema.
type Witness struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID string `json:"case_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Relationship to the case, e.g. plaintiff, expert, custodian
	Role string `json:"role,omitempty"`
	// SessionCount holds the value of the "session_count" field.
	SessionCount int `json:"session_count,omitempty"`
	// LatestScore holds the value of the "latest_score" field.
	LatestScore *float64 `json:"latest_score,omitempty"`
	// Score of the first completed session; never updated after set
	BaselineScore *float64 `json:"baseline_score,omitempty"`
	// Three consecutive session scores within +/-3 points
	PlateauDetected bool `json:"plateau_detected,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WitnessQuery when eager-loading is set.
	Edges        WitnessEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WitnessEdges holds the relations/edges for other nodes in the graph.
type WitnessEdges struct {
	// LegalCase holds the value of the legal_case edge.
	LegalCase *LegalCase `json:"legal_case,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*Session `json:"sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// LegalCaseOrErr returns the LegalCase value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WitnessEdges) LegalCaseOrErr() (*LegalCase, error) {
	if e.LegalCase != nil {
		return e.LegalCase, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: legalcase.Label}
	}
	return nil, &NotLoadedError{edge: "legal_case"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e WitnessEdges) SessionsOrErr() ([]*Session, error) {
	if e.loadedTypes[1] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Witness) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case witness.FieldPlateauDetected:
			values[i] = new(sql.NullBool)
		case witness.FieldLatestScore, witness.FieldBaselineScore:
			values[i] = new(sql.NullFloat64)
		case witness.FieldSessionCount:
			values[i] = new(sql.NullInt64)
		case witness.FieldID, witness.FieldCaseID, witness.FieldName, witness.FieldEmail, witness.FieldRole:
			values[i] = new(sql.NullString)
		case witness.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Witness fields.
func (_m *Witness) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case witness.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case witness.FieldCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value.Valid {
				_m.CaseID = value.String
			}
		case witness.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case witness.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case witness.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case witness.FieldSessionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_count", values[i])
			} else if value.Valid {
				_m.SessionCount = int(value.Int64)
			}
		case witness.FieldLatestScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latest_score", values[i])
			} else if value.Valid {
				_m.LatestScore = new(float64)
				*_m.LatestScore = value.Float64
			}
		case witness.FieldBaselineScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field baseline_score", values[i])
			} else if value.Valid {
				_m.BaselineScore = new(float64)
				*_m.BaselineScore = value.Float64
			}
		case witness.FieldPlateauDetected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field plateau_detected", values[i])
			} else if value.Valid {
				_m.PlateauDetected = value.Bool
			}
		case witness.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Witness.
// This includes values selected through modifiers, order, etc.
func (_m *Witness) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLegalCase queries the "legal_case" edge of the Witness entity.
func (_m *Witness) QueryLegalCase() *LegalCaseQuery {
	return NewWitnessClient(_m.config).QueryLegalCase(_m)
}

// QuerySessions queries the "sessions" edge of the Witness entity.
func (_m *Witness) QuerySessions() *SessionQuery {
	return NewWitnessClient(_m.config).QuerySessions(_m)
}

// Update returns a builder for updating this Witness.
// Note that you need to call Witness.Unwrap() before calling this method if this Witness
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Witness) Update() *WitnessUpdateOne {
	return NewWitnessClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Witness entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Witness) Unwrap() *Witness {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Witness is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Witness) String() string {
	var builder strings.Builder
	builder.WriteString("Witness(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("case_id=")
	builder.WriteString(_m.CaseID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("session_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionCount))
	builder.WriteString(", ")
	if v := _m.LatestScore; v != nil {
		builder.WriteString("latest_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BaselineScore; v != nil {
		builder.WriteString("baseline_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("plateau_detected=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlateauDetected))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Witnesses is a parsable slice of Witness.
type Witnesses []*Witness
