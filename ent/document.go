// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/verdictlabs/verdict/ent/document"
	"github.com/verdictlabs/verdict/ent/legalcase"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID string `json:"case_id,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// MimeType holds the value of the "mime_type" field.
	MimeType string `json:"mime_type,omitempty"`
	// StorageKey holds the value of the "storage_key" field.
	StorageKey string `json:"storage_key,omitempty"`
	// DEPOSITION_TRANSCRIPT, AFFIDAVIT, EXHIBIT, ...
	DocType string `json:"doc_type,omitempty"`
	// SHA-256 of the raw upload
	FileHash string `json:"file_hash,omitempty"`
	// PageCount holds the value of the "page_count" field.
	PageCount *int `json:"page_count,omitempty"`
	// IngestionStatus holds the value of the "ingestion_status" field.
	IngestionStatus document.IngestionStatus `json:"ingestion_status,omitempty"`
	// IngestionError holds the value of the "ingestion_error" field.
	IngestionError *string `json:"ingestion_error,omitempty"`
	// ExtractedFacts holds the value of the "extracted_facts" field.
	ExtractedFacts map[string]interface{} `json:"extracted_facts,omitempty"`
	// IngestionStartedAt holds the value of the "ingestion_started_at" field.
	IngestionStartedAt *time.Time `json:"ingestion_started_at,omitempty"`
	// IngestionCompletedAt holds the value of the "ingestion_completed_at" field.
	IngestionCompletedAt *time.Time `json:"ingestion_completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentQuery when eager-loading is set.
	Edges        DocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentEdges holds the relations/edges for other nodes in the graph.
type DocumentEdges struct {
	// LegalCase holds the value of the legal_case edge.
	LegalCase *LegalCase `json:"legal_case,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LegalCaseOrErr returns the LegalCase value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentEdges) LegalCaseOrErr() (*LegalCase, error) {
	if e.LegalCase != nil {
		return e.LegalCase, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: legalcase.Label}
	}
	return nil, &NotLoadedError{edge: "legal_case"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldExtractedFacts:
			values[i] = new([]byte)
		case document.FieldPageCount:
			values[i] = new(sql.NullInt64)
		case document.FieldID, document.FieldCaseID, document.FieldFileName, document.FieldMimeType, document.FieldStorageKey, document.FieldDocType, document.FieldFileHash, document.FieldIngestionStatus, document.FieldIngestionError:
			values[i] = new(sql.NullString)
		case document.FieldIngestionStartedAt, document.FieldIngestionCompletedAt, document.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case document.FieldCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value.Valid {
				_m.CaseID = value.String
			}
		case document.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case document.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				_m.MimeType = value.String
			}
		case document.FieldStorageKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_key", values[i])
			} else if value.Valid {
				_m.StorageKey = value.String
			}
		case document.FieldDocType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_type", values[i])
			} else if value.Valid {
				_m.DocType = value.String
			}
		case document.FieldFileHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_hash", values[i])
			} else if value.Valid {
				_m.FileHash = value.String
			}
		case document.FieldPageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_count", values[i])
			} else if value.Valid {
				_m.PageCount = new(int)
				*_m.PageCount = int(value.Int64)
			}
		case document.FieldIngestionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ingestion_status", values[i])
			} else if value.Valid {
				_m.IngestionStatus = document.IngestionStatus(value.String)
			}
		case document.FieldIngestionError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ingestion_error", values[i])
			} else if value.Valid {
				_m.IngestionError = new(string)
				*_m.IngestionError = value.String
			}
		case document.FieldExtractedFacts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_facts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedFacts); err != nil {
					return fmt.Errorf("unmarshal field extracted_facts: %w", err)
				}
			}
		case document.FieldIngestionStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ingestion_started_at", values[i])
			} else if value.Valid {
				_m.IngestionStartedAt = new(time.Time)
				*_m.IngestionStartedAt = value.Time
			}
		case document.FieldIngestionCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ingestion_completed_at", values[i])
			} else if value.Valid {
				_m.IngestionCompletedAt = new(time.Time)
				*_m.IngestionCompletedAt = value.Time
			}
		case document.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLegalCase queries the "legal_case" edge of the Document entity.
func (_m *Document) QueryLegalCase() *LegalCaseQuery {
	return NewDocumentClient(_m.config).QueryLegalCase(_m)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("case_id=")
	builder.WriteString(_m.CaseID)
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("mime_type=")
	builder.WriteString(_m.MimeType)
	builder.WriteString(", ")
	builder.WriteString("storage_key=")
	builder.WriteString(_m.StorageKey)
	builder.WriteString(", ")
	builder.WriteString("doc_type=")
	builder.WriteString(_m.DocType)
	builder.WriteString(", ")
	builder.WriteString("file_hash=")
	builder.WriteString(_m.FileHash)
	builder.WriteString(", ")
	if v := _m.PageCount; v != nil {
		builder.WriteString("page_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("ingestion_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.IngestionStatus))
	builder.WriteString(", ")
	if v := _m.IngestionError; v != nil {
		builder.WriteString("ingestion_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("extracted_facts=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedFacts))
	builder.WriteString(", ")
	if v := _m.IngestionStartedAt; v != nil {
		builder.WriteString("ingestion_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.IngestionCompletedAt; v != nil {
		builder.WriteString("ingestion_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document
