// Code generated by ent, DO NOT EDIT.

package document

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "document_id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldFileName holds the string denoting the file_name field in the database.
	FieldFileName = "file_name"
	// FieldMimeType holds the string denoting the mime_type field in the database.
	FieldMimeType = "mime_type"
	// FieldStorageKey holds the string denoting the storage_key field in the database.
	FieldStorageKey = "storage_key"
	// FieldDocType holds the string denoting the doc_type field in the database.
	FieldDocType = "doc_type"
	// FieldFileHash holds the string denoting the file_hash field in the database.
	FieldFileHash = "file_hash"
	// FieldPageCount holds the string denoting the page_count field in the database.
	FieldPageCount = "page_count"
	// FieldIngestionStatus holds the string denoting the ingestion_status field in the database.
	FieldIngestionStatus = "ingestion_status"
	// FieldIngestionError holds the string denoting the ingestion_error field in the database.
	FieldIngestionError = "ingestion_error"
	// FieldExtractedFacts holds the string denoting the extracted_facts field in the database.
	FieldExtractedFacts = "extracted_facts"
	// FieldIngestionStartedAt holds the string denoting the ingestion_started_at field in the database.
	FieldIngestionStartedAt = "ingestion_started_at"
	// FieldIngestionCompletedAt holds the string denoting the ingestion_completed_at field in the database.
	FieldIngestionCompletedAt = "ingestion_completed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeLegalCase holds the string denoting the legal_case edge name in mutations.
	EdgeLegalCase = "legal_case"
	// LegalCaseFieldID holds the string denoting the ID field of the LegalCase.
	LegalCaseFieldID = "case_id"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// LegalCaseTable is the table that holds the legal_case relation/edge.
	LegalCaseTable = "documents"
	// LegalCaseInverseTable is the table name for the LegalCase entity.
	// It exists in this package in order to avoid circular dependency with the "legalcase" package.
	LegalCaseInverseTable = "legal_cases"
	// LegalCaseColumn is the table column denoting the legal_case relation/edge.
	LegalCaseColumn = "case_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldCaseID,
	FieldFileName,
	FieldMimeType,
	FieldStorageKey,
	FieldDocType,
	FieldFileHash,
	FieldPageCount,
	FieldIngestionStatus,
	FieldIngestionError,
	FieldExtractedFacts,
	FieldIngestionStartedAt,
	FieldIngestionCompletedAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	FileNameValidator func(string) error
	// DefaultDocType holds the default value on creation for the "doc_type" field.
	DefaultDocType string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// IngestionStatus defines the type for the "ingestion_status" enum field.
type IngestionStatus string

// IngestionStatusPending is the default value of the IngestionStatus enum.
const DefaultIngestionStatus = IngestionStatusPending

// IngestionStatus values.
const (
	IngestionStatusPending   IngestionStatus = "PENDING"
	IngestionStatusUploading IngestionStatus = "UPLOADING"
	IngestionStatusIndexing  IngestionStatus = "INDEXING"
	IngestionStatusReady     IngestionStatus = "READY"
	IngestionStatusFailed    IngestionStatus = "FAILED"
)

func (is IngestionStatus) String() string {
	return string(is)
}

// IngestionStatusValidator is a validator for the "ingestion_status" field enum values. It is called by the builders before save.
func IngestionStatusValidator(is IngestionStatus) error {
	switch is {
	case IngestionStatusPending, IngestionStatusUploading, IngestionStatusIndexing, IngestionStatusReady, IngestionStatusFailed:
		return nil
	default:
		return fmt.Errorf("document: invalid enum value for ingestion_status field: %q", is)
	}
}

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByFileName orders the results by the file_name field.
func ByFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileName, opts...).ToFunc()
}

// ByMimeType orders the results by the mime_type field.
func ByMimeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimeType, opts...).ToFunc()
}

// ByStorageKey orders the results by the storage_key field.
func ByStorageKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageKey, opts...).ToFunc()
}

// ByDocType orders the results by the doc_type field.
func ByDocType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocType, opts...).ToFunc()
}

// ByFileHash orders the results by the file_hash field.
func ByFileHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileHash, opts...).ToFunc()
}

// ByPageCount orders the results by the page_count field.
func ByPageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageCount, opts...).ToFunc()
}

// ByIngestionStatus orders the results by the ingestion_status field.
func ByIngestionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIngestionStatus, opts...).ToFunc()
}

// ByIngestionError orders the results by the ingestion_error field.
func ByIngestionError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIngestionError, opts...).ToFunc()
}

// ByIngestionStartedAt orders the results by the ingestion_started_at field.
func ByIngestionStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIngestionStartedAt, opts...).ToFunc()
}

// ByIngestionCompletedAt orders the results by the ingestion_completed_at field.
func ByIngestionCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIngestionCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLegalCaseField orders the results by legal_case field.
func ByLegalCaseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLegalCaseStep(), sql.OrderByField(field, opts...))
	}
}
func newLegalCaseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LegalCaseInverseTable, LegalCaseFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LegalCaseTable, LegalCaseColumn),
	)
}
