// Code generated by ent, DO NOT EDIT.

package witness

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the witness type in the database.
	Label = "witness"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "witness_id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldSessionCount holds the string denoting the session_count field in the database.
	FieldSessionCount = "session_count"
	// FieldLatestScore holds the string denoting the latest_score field in the database.
	FieldLatestScore = "latest_score"
	// FieldBaselineScore holds the string denoting the baseline_score field in the database.
	FieldBaselineScore = "baseline_score"
	// FieldPlateauDetected holds the string denoting the plateau_detected field in the database.
	FieldPlateauDetected = "plateau_detected"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeLegalCase holds the string denoting the legal_case edge name in mutations.
	EdgeLegalCase = "legal_case"
	// EdgeSessions holds the string denoting the sessions edge name in mutations.
	EdgeSessions = "sessions"
	// LegalCaseFieldID holds the string denoting the ID field of the LegalCase.
	LegalCaseFieldID = "case_id"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// Table holds the table name of the witness in the database.
	Table = "witnesses"
	// LegalCaseTable is the table that holds the legal_case relation/edge.
	LegalCaseTable = "witnesses"
	// LegalCaseInverseTable is the table name for the LegalCase entity.
	// It exists in this package in order to avoid circular dependency with the "legalcase" package.
	LegalCaseInverseTable = "legal_cases"
	// LegalCaseColumn is the table column denoting the legal_case relation/edge.
	LegalCaseColumn = "case_id"
	// SessionsTable is the table that holds the sessions relation/edge.
	SessionsTable = "sessions"
	// SessionsInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionsInverseTable = "sessions"
	// SessionsColumn is the table column denoting the sessions relation/edge.
	SessionsColumn = "witness_id"
)

// Columns holds all SQL columns for witness fields.
var Columns = []string{
	FieldID,
	FieldCaseID,
	FieldName,
	FieldEmail,
	FieldRole,
	FieldSessionCount,
	FieldLatestScore,
	FieldBaselineScore,
	FieldPlateauDetected,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultSessionCount holds the default value on creation for the "session_count" field.
	DefaultSessionCount int
	// DefaultPlateauDetected holds the default value on creation for the "plateau_detected" field.
	DefaultPlateauDetected bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Witness queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// BySessionCount orders the results by the session_count field.
func BySessionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionCount, opts...).ToFunc()
}

// ByLatestScore orders the results by the latest_score field.
func ByLatestScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatestScore, opts...).ToFunc()
}

// ByBaselineScore orders the results by the baseline_score field.
func ByBaselineScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaselineScore, opts...).ToFunc()
}

// ByPlateauDetected orders the results by the plateau_detected field.
func ByPlateauDetected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlateauDetected, opts...).ToFunc()
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
func newLegalCaseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LegalCaseInverseTable, LegalCaseFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LegalCaseTable, LegalCaseColumn),
	)
}
func newSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionsInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
	)
}
