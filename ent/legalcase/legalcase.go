// Code generated by ent, DO NOT EDIT.

package legalcase

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the legalcase type in the database.
	Label = "legal_case"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "case_id"
	// FieldFirmID holds the string denoting the firm_id field in the database.
	FieldFirmID = "firm_id"
	// FieldCaseName holds the string denoting the case_name field in the database.
	FieldCaseName = "case_name"
	// FieldCaseType holds the string denoting the case_type field in the database.
	FieldCaseType = "case_type"
	// FieldOpposingParty holds the string denoting the opposing_party field in the database.
	FieldOpposingParty = "opposing_party"
	// FieldCaseNumber holds the string denoting the case_number field in the database.
	FieldCaseNumber = "case_number"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldDepositionDate holds the string denoting the deposition_date field in the database.
	FieldDepositionDate = "deposition_date"
	// FieldExtractedFacts holds the string denoting the extracted_facts field in the database.
	FieldExtractedFacts = "extracted_facts"
	// FieldPriorStatements holds the string denoting the prior_statements field in the database.
	FieldPriorStatements = "prior_statements"
	// FieldExhibitList holds the string denoting the exhibit_list field in the database.
	FieldExhibitList = "exhibit_list"
	// FieldFocusAreas holds the string denoting the focus_areas field in the database.
	FieldFocusAreas = "focus_areas"
	// FieldAggressionPreset holds the string denoting the aggression_preset field in the database.
	FieldAggressionPreset = "aggression_preset"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeFirm holds the string denoting the firm edge name in mutations.
	EdgeFirm = "firm"
	// EdgeWitnesses holds the string denoting the witnesses edge name in mutations.
	EdgeWitnesses = "witnesses"
	// EdgeSessions holds the string denoting the sessions edge name in mutations.
	EdgeSessions = "sessions"
	// EdgeDocuments holds the string denoting the documents edge name in mutations.
	EdgeDocuments = "documents"
	// FirmFieldID holds the string denoting the ID field of the Firm.
	FirmFieldID = "firm_id"
	// WitnessFieldID holds the string denoting the ID field of the Witness.
	WitnessFieldID = "witness_id"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// DocumentFieldID holds the string denoting the ID field of the Document.
	DocumentFieldID = "document_id"
	// Table holds the table name of the legalcase in the database.
	Table = "legal_cases"
	// FirmTable is the table that holds the firm relation/edge.
	FirmTable = "legal_cases"
	// FirmInverseTable is the table name for the Firm entity.
	// It exists in this package in order to avoid circular dependency with the "firm" package.
	FirmInverseTable = "firms"
	// FirmColumn is the table column denoting the firm relation/edge.
	FirmColumn = "firm_id"
	// WitnessesTable is the table that holds the witnesses relation/edge.
	WitnessesTable = "witnesses"
	// WitnessesInverseTable is the table name for the Witness entity.
	// It exists in this package in order to avoid circular dependency with the "witness" package.
	WitnessesInverseTable = "witnesses"
	// WitnessesColumn is the table column denoting the witnesses relation/edge.
	WitnessesColumn = "case_id"
	// SessionsTable is the table that holds the sessions relation/edge.
	SessionsTable = "sessions"
	// SessionsInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionsInverseTable = "sessions"
	// SessionsColumn is the table column denoting the sessions relation/edge.
	SessionsColumn = "case_id"
	// DocumentsTable is the table that holds the documents relation/edge.
	DocumentsTable = "documents"
	// DocumentsInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentsInverseTable = "documents"
	// DocumentsColumn is the table column denoting the documents relation/edge.
	DocumentsColumn = "case_id"
)

// Columns holds all SQL columns for legalcase fields.
var Columns = []string{
	FieldID,
	FieldFirmID,
	FieldCaseName,
	FieldCaseType,
	FieldOpposingParty,
	FieldCaseNumber,
	FieldDescription,
	FieldDepositionDate,
	FieldExtractedFacts,
	FieldPriorStatements,
	FieldExhibitList,
	FieldFocusAreas,
	FieldAggressionPreset,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// CaseNameValidator is a validator for the "case_name" field. It is called by the builders before save.
	CaseNameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// CaseType defines the type for the "case_type" enum field.
type CaseType string

// CaseTypeOther is the default value of the CaseType enum.
const DefaultCaseType = CaseTypeOther

// CaseType values.
const (
	CaseTypeMedicalMalpractice       CaseType = "MEDICAL_MALPRACTICE"
	CaseTypeEmploymentDiscrimination CaseType = "EMPLOYMENT_DISCRIMINATION"
	CaseTypeCommercialDispute        CaseType = "COMMERCIAL_DISPUTE"
	CaseTypeContractBreach           CaseType = "CONTRACT_BREACH"
	CaseTypeOther                    CaseType = "OTHER"
)

func (ct CaseType) String() string {
	return string(ct)
}

// CaseTypeValidator is a validator for the "case_type" field enum values. It is called by the builders before save.
func CaseTypeValidator(ct CaseType) error {
	switch ct {
	case CaseTypeMedicalMalpractice, CaseTypeEmploymentDiscrimination, CaseTypeCommercialDispute, CaseTypeContractBreach, CaseTypeOther:
		return nil
	default:
		return fmt.Errorf("legalcase: invalid enum value for case_type field: %q", ct)
	}
}

// AggressionPreset defines the type for the "aggression_preset" enum field.
type AggressionPreset string

// AggressionPresetStandard is the default value of the AggressionPreset enum.
const DefaultAggressionPreset = AggressionPresetStandard

// AggressionPreset values.
const (
	AggressionPresetStandard   AggressionPreset = "STANDARD"
	AggressionPresetElevated   AggressionPreset = "ELEVATED"
	AggressionPresetHighStakes AggressionPreset = "HIGH_STAKES"
)

func (ap AggressionPreset) String() string {
	return string(ap)
}

// AggressionPresetValidator is a validator for the "aggression_preset" field enum values. It is called by the builders before save.
func AggressionPresetValidator(ap AggressionPreset) error {
	switch ap {
	case AggressionPresetStandard, AggressionPresetElevated, AggressionPresetHighStakes:
		return nil
	default:
		return fmt.Errorf("legalcase: invalid enum value for aggression_preset field: %q", ap)
	}
}

// OrderOption defines the ordering options for the LegalCase queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFirmID orders the results by the firm_id field.
func ByFirmID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirmID, opts...).ToFunc()
}

// ByCaseName orders the results by the case_name field.
func ByCaseName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseName, opts...).ToFunc()
}

// ByCaseType orders the results by the case_type field.
func ByCaseType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseType, opts...).ToFunc()
}

// ByOpposingParty orders the results by the opposing_party field.
func ByOpposingParty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpposingParty, opts...).ToFunc()
}

// ByCaseNumber orders the results by the case_number field.
func ByCaseNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseNumber, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByDepositionDate orders the results by the deposition_date field.
func ByDepositionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepositionDate, opts...).ToFunc()
}

// ByPriorStatements orders the results by the prior_statements field.
func ByPriorStatements(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorStatements, opts...).ToFunc()
}

// ByExhibitList orders the results by the exhibit_list field.
func ByExhibitList(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExhibitList, opts...).ToFunc()
}

// ByAggressionPreset orders the results by the aggression_preset field.
func ByAggressionPreset(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAggressionPreset, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFirmField orders the results by firm field.
func ByFirmField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFirmStep(), sql.OrderByField(field, opts...))
	}
}

// ByWitnessesCount orders the results by witnesses count.
func ByWitnessesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWitnessesStep(), opts...)
	}
}

// ByWitnesses orders the results by witnesses terms.
func ByWitnesses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWitnessesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySessionsCount orders the results by sessions count.
func BySessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSessionsStep(), opts...)
	}
}

// BySessions orders the results by sessions terms.
func BySessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDocumentsCount orders the results by documents count.
func ByDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentsStep(), opts...)
	}
}

// ByDocuments orders the results by documents terms.
func ByDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFirmStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FirmInverseTable, FirmFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FirmTable, FirmColumn),
	)
}
func newWitnessesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WitnessesInverseTable, WitnessFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WitnessesTable, WitnessesColumn),
	)
}
func newSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionsInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
	)
}
func newDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentsInverseTable, DocumentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
	)
}
