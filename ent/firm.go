// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/verdictlabs/verdict/ent/firm"
)

// Firm is the model entity for the Firm schema.
type Firm struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// How long completed session data is kept
	RetentionDays int `json:"retention_days,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FirmQuery when eager-loading is set.
	Edges        FirmEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FirmEdges holds the relations/edges for other nodes in the graph.
type FirmEdges struct {
	// Users holds the value of the users edge.
	Users []*User `json:"users,omitempty"`
	// Cases holds the value of the cases edge.
	Cases []*LegalCase `json:"cases,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UsersOrErr returns the Users value or an error if the edge
// was not loaded in eager-loading.
func (e FirmEdges) UsersOrErr() ([]*User, error) {
	if e.loadedTypes[0] {
		return e.Users, nil
	}
	return nil, &NotLoadedError{edge: "users"}
}

// CasesOrErr returns the Cases value or an error if the edge
// was not loaded in eager-loading.
func (e FirmEdges) CasesOrErr() ([]*LegalCase, error) {
	if e.loadedTypes[1] {
		return e.Cases, nil
	}
	return nil, &NotLoadedError{edge: "cases"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Firm) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case firm.FieldRetentionDays:
			values[i] = new(sql.NullInt64)
		case firm.FieldID, firm.FieldName:
			values[i] = new(sql.NullString)
		case firm.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Firm fields.
func (_m *Firm) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case firm.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case firm.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case firm.FieldRetentionDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retention_days", values[i])
			} else if value.Valid {
				_m.RetentionDays = int(value.Int64)
			}
		case firm.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Firm.
// This includes values selected through modifiers, order, etc.
func (_m *Firm) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUsers queries the "users" edge of the Firm entity.
func (_m *Firm) QueryUsers() *UserQuery {
	return NewFirmClient(_m.config).QueryUsers(_m)
}

// QueryCases queries the "cases" edge of the Firm entity.
func (_m *Firm) QueryCases() *LegalCaseQuery {
	return NewFirmClient(_m.config).QueryCases(_m)
}

// Update returns a builder for updating this Firm.
// Note that you need to call Firm.Unwrap() before calling this method if this Firm
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Firm) Update() *FirmUpdateOne {
	return NewFirmClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Firm entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Firm) Unwrap() *Firm {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Firm is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Firm) String() string {
	var builder strings.Builder
	builder.WriteString("Firm(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("retention_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetentionDays))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Firms is a parsable slice of Firm.
type Firms []*Firm
