// Code generated by ent, DO NOT EDIT.

package firm

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the firm type in the database.
	Label = "firm"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "firm_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldRetentionDays holds the string denoting the retention_days field in the database.
	FieldRetentionDays = "retention_days"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeUsers holds the string denoting the users edge name in mutations.
	EdgeUsers = "users"
	// EdgeCases holds the string denoting the cases edge name in mutations.
	EdgeCases = "cases"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// LegalCaseFieldID holds the string denoting the ID field of the LegalCase.
	LegalCaseFieldID = "case_id"
	// Table holds the table name of the firm in the database.
	Table = "firms"
	// UsersTable is the table that holds the users relation/edge.
	UsersTable = "users"
	// UsersInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UsersInverseTable = "users"
	// UsersColumn is the table column denoting the users relation/edge.
	UsersColumn = "firm_id"
	// CasesTable is the table that holds the cases relation/edge.
	CasesTable = "legal_cases"
	// CasesInverseTable is the table name for the LegalCase entity.
	// It exists in this package in order to avoid circular dependency with the "legalcase" package.
	CasesInverseTable = "legal_cases"
	// CasesColumn is the table column denoting the cases relation/edge.
	CasesColumn = "firm_id"
)

// Columns holds all SQL columns for firm fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldRetentionDays,
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
	// DefaultRetentionDays holds the default value on creation for the "retention_days" field.
	DefaultRetentionDays int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Firm queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByRetentionDays orders the results by the retention_days field.
func ByRetentionDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetentionDays, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUsersCount orders the results by users count.
func ByUsersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUsersStep(), opts...)
	}
}

// ByUsers orders the results by users terms.
func ByUsers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUsersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCasesCount orders the results by cases count.
func ByCasesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCasesStep(), opts...)
	}
}

// ByCases orders the results by cases terms.
func ByCases(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCasesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUsersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UsersInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UsersTable, UsersColumn),
	)
}
func newCasesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CasesInverseTable, LegalCaseFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CasesTable, CasesColumn),
	)
}
