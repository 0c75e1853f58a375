// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/verdictlabs/verdict/ent/firm"
	"github.com/verdictlabs/verdict/ent/legalcase"
)

// LegalCase is the model entity for the LegalCase schema.
type LegalCase struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// FirmID holds the value of the "firm_id" field.
	FirmID string `json:"firm_id,omitempty"`
	// Canonicalized (trimmed, inner whitespace collapsed) before write
	CaseName string `json:"case_name,omitempty"`
	// CaseType holds the value of the "case_type" field.
	CaseType legalcase.CaseType `json:"case_type,omitempty"`
	// Canonicalized like case_name
	OpposingParty string `json:"opposing_party,omitempty"`
	// CaseNumber holds the value of the "case_number" field.
	CaseNumber string `json:"case_number,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// DepositionDate holds the value of the "deposition_date" field.
	DepositionDate *time.Time `json:"deposition_date,omitempty"`
	// Aggregated document analysis (parties, key dates, disputed facts)
	ExtractedFacts map[string]interface{} `json:"extracted_facts,omitempty"`
	// Free-text summary of prior sworn testimony; the indexed chunks live in the vector store
	PriorStatements string `json:"prior_statements,omitempty"`
	// Exhibit summaries fed to the interrogator prompt
	ExhibitList string `json:"exhibit_list,omitempty"`
	// Default focus topics copied onto new sessions when the request omits them
	FocusAreas []string `json:"focus_areas,omitempty"`
	// Default aggression for new sessions on this case
	AggressionPreset legalcase.AggressionPreset `json:"aggression_preset,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LegalCaseQuery when eager-loading is set.
	Edges        LegalCaseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LegalCaseEdges holds the relations/edges for other nodes in the graph.
type LegalCaseEdges struct {
	// Firm holds the value of the firm edge.
	Firm *Firm `json:"firm,omitempty"`
	// Witnesses holds the value of the witnesses edge.
	Witnesses []*Witness `json:"witnesses,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*Session `json:"sessions,omitempty"`
	// Documents holds the value of the documents edge.
	Documents []*Document `json:"documents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// FirmOrErr returns the Firm value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LegalCaseEdges) FirmOrErr() (*Firm, error) {
	if e.Firm != nil {
		return e.Firm, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: firm.Label}
	}
	return nil, &NotLoadedError{edge: "firm"}
}

// WitnessesOrErr returns the Witnesses value or an error if the edge
// was not loaded in eager-loading.
func (e LegalCaseEdges) WitnessesOrErr() ([]*Witness, error) {
	if e.loadedTypes[1] {
		return e.Witnesses, nil
	}
	return nil, &NotLoadedError{edge: "witnesses"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e LegalCaseEdges) SessionsOrErr() ([]*Session, error) {
	if e.loadedTypes[2] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e LegalCaseEdges) DocumentsOrErr() ([]*Document, error) {
	if e.loadedTypes[3] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LegalCase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case legalcase.FieldExtractedFacts, legalcase.FieldFocusAreas:
			values[i] = new([]byte)
		case legalcase.FieldID, legalcase.FieldFirmID, legalcase.FieldCaseName, legalcase.FieldCaseType, legalcase.FieldOpposingParty, legalcase.FieldCaseNumber, legalcase.FieldDescription, legalcase.FieldPriorStatements, legalcase.FieldExhibitList, legalcase.FieldAggressionPreset:
			values[i] = new(sql.NullString)
		case legalcase.FieldDepositionDate, legalcase.FieldCreatedAt, legalcase.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LegalCase fields.
func (_m *LegalCase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case legalcase.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case legalcase.FieldFirmID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field firm_id", values[i])
			} else if value.Valid {
				_m.FirmID = value.String
			}
		case legalcase.FieldCaseName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_name", values[i])
			} else if value.Valid {
				_m.CaseName = value.String
			}
		case legalcase.FieldCaseType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_type", values[i])
			} else if value.Valid {
				_m.CaseType = legalcase.CaseType(value.String)
			}
		case legalcase.FieldOpposingParty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field opposing_party", values[i])
			} else if value.Valid {
				_m.OpposingParty = value.String
			}
		case legalcase.FieldCaseNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_number", values[i])
			} else if value.Valid {
				_m.CaseNumber = value.String
			}
		case legalcase.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case legalcase.FieldDepositionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deposition_date", values[i])
			} else if value.Valid {
				_m.DepositionDate = new(time.Time)
				*_m.DepositionDate = value.Time
			}
		case legalcase.FieldExtractedFacts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_facts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedFacts); err != nil {
					return fmt.Errorf("unmarshal field extracted_facts: %w", err)
				}
			}
		case legalcase.FieldPriorStatements:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prior_statements", values[i])
			} else if value.Valid {
				_m.PriorStatements = value.String
			}
		case legalcase.FieldExhibitList:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exhibit_list", values[i])
			} else if value.Valid {
				_m.ExhibitList = value.String
			}
		case legalcase.FieldFocusAreas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field focus_areas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FocusAreas); err != nil {
					return fmt.Errorf("unmarshal field focus_areas: %w", err)
				}
			}
		case legalcase.FieldAggressionPreset:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field aggression_preset", values[i])
			} else if value.Valid {
				_m.AggressionPreset = legalcase.AggressionPreset(value.String)
			}
		case legalcase.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case legalcase.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LegalCase.
// This includes values selected through modifiers, order, etc.
func (_m *LegalCase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFirm queries the "firm" edge of the LegalCase entity.
func (_m *LegalCase) QueryFirm() *FirmQuery {
	return NewLegalCaseClient(_m.config).QueryFirm(_m)
}

// QueryWitnesses queries the "witnesses" edge of the LegalCase entity.
func (_m *LegalCase) QueryWitnesses() *WitnessQuery {
	return NewLegalCaseClient(_m.config).QueryWitnesses(_m)
}

// QuerySessions queries the "sessions" edge of the LegalCase entity.
func (_m *LegalCase) QuerySessions() *SessionQuery {
	return NewLegalCaseClient(_m.config).QuerySessions(_m)
}

// QueryDocuments queries the "documents" edge of the LegalCase entity.
func (_m *LegalCase) QueryDocuments() *DocumentQuery {
	return NewLegalCaseClient(_m.config).QueryDocuments(_m)
}

// Update returns a builder for updating this LegalCase.
// Note that you need to call LegalCase.Unwrap() before calling this method if this LegalCase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LegalCase) Update() *LegalCaseUpdateOne {
	return NewLegalCaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LegalCase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LegalCase) Unwrap() *LegalCase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LegalCase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LegalCase) String() string {
	var builder strings.Builder
	builder.WriteString("LegalCase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("firm_id=")
	builder.WriteString(_m.FirmID)
	builder.WriteString(", ")
	builder.WriteString("case_name=")
	builder.WriteString(_m.CaseName)
	builder.WriteString(", ")
	builder.WriteString("case_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.CaseType))
	builder.WriteString(", ")
	builder.WriteString("opposing_party=")
	builder.WriteString(_m.OpposingParty)
	builder.WriteString(", ")
	builder.WriteString("case_number=")
	builder.WriteString(_m.CaseNumber)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	if v := _m.DepositionDate; v != nil {
		builder.WriteString("deposition_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("extracted_facts=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedFacts))
	builder.WriteString(", ")
	builder.WriteString("prior_statements=")
	builder.WriteString(_m.PriorStatements)
	builder.WriteString(", ")
	builder.WriteString("exhibit_list=")
	builder.WriteString(_m.ExhibitList)
	builder.WriteString(", ")
	builder.WriteString("focus_areas=")
	builder.WriteString(fmt.Sprintf("%v", _m.FocusAreas))
	builder.WriteString(", ")
	builder.WriteString("aggression_preset=")
	builder.WriteString(fmt.Sprintf("%v", _m.AggressionPreset))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LegalCases is a parsable slice of LegalCase.
type LegalCases []*LegalCase
