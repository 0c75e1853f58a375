// Code generated by ent, DO NOT EDIT.

package alert

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the alert type in the database.
	Label = "alert"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "alert_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAlertType holds the string denoting the alert_type field in the database.
	FieldAlertType = "alert_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldImpeachmentRisk holds the string denoting the impeachment_risk field in the database.
	FieldImpeachmentRisk = "impeachment_risk"
	// FieldPriorQuote holds the string denoting the prior_quote field in the database.
	FieldPriorQuote = "prior_quote"
	// FieldPriorSourcePage holds the string denoting the prior_source_page field in the database.
	FieldPriorSourcePage = "prior_source_page"
	// FieldPriorSourceLine holds the string denoting the prior_source_line field in the database.
	FieldPriorSourceLine = "prior_source_line"
	// FieldCurrentQuote holds the string denoting the current_quote field in the database.
	FieldCurrentQuote = "current_quote"
	// FieldFreRule holds the string denoting the fre_rule field in the database.
	FieldFreRule = "fre_rule"
	// FieldFreClassification holds the string denoting the fre_classification field in the database.
	FieldFreClassification = "fre_classification"
	// FieldQuestionNumber holds the string denoting the question_number field in the database.
	FieldQuestionNumber = "question_number"
	// FieldConfirmedAt holds the string denoting the confirmed_at field in the database.
	FieldConfirmedAt = "confirmed_at"
	// FieldRejectedAt holds the string denoting the rejected_at field in the database.
	FieldRejectedAt = "rejected_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// Table holds the table name of the alert in the database.
	Table = "alerts"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "alerts"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for alert fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldAlertType,
	FieldStatus,
	FieldConfidence,
	FieldImpeachmentRisk,
	FieldPriorQuote,
	FieldPriorSourcePage,
	FieldPriorSourceLine,
	FieldCurrentQuote,
	FieldFreRule,
	FieldFreClassification,
	FieldQuestionNumber,
	FieldConfirmedAt,
	FieldRejectedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// AlertType defines the type for the "alert_type" enum field.
type AlertType string

// AlertType values.
const (
	AlertTypeContradiction AlertType = "CONTRADICTION"
	AlertTypeObjection     AlertType = "OBJECTION"
	AlertTypeComposure     AlertType = "COMPOSURE"
)

func (at AlertType) String() string {
	return string(at)
}

// AlertTypeValidator is a validator for the "alert_type" field enum values. It is called by the builders before save.
func AlertTypeValidator(at AlertType) error {
	switch at {
	case AlertTypeContradiction, AlertTypeObjection, AlertTypeComposure:
		return nil
	default:
		return fmt.Errorf("alert: invalid enum value for alert_type field: %q", at)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusRejected  Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected:
		return nil
	default:
		return fmt.Errorf("alert: invalid enum value for status field: %q", s)
	}
}

// ImpeachmentRisk defines the type for the "impeachment_risk" enum field.
type ImpeachmentRisk string

// ImpeachmentRisk values.
const (
	ImpeachmentRiskLow    ImpeachmentRisk = "LOW"
	ImpeachmentRiskMedium ImpeachmentRisk = "MEDIUM"
	ImpeachmentRiskHigh   ImpeachmentRisk = "HIGH"
)

func (ir ImpeachmentRisk) String() string {
	return string(ir)
}

// ImpeachmentRiskValidator is a validator for the "impeachment_risk" field enum values. It is called by the builders before save.
func ImpeachmentRiskValidator(ir ImpeachmentRisk) error {
	switch ir {
	case ImpeachmentRiskLow, ImpeachmentRiskMedium, ImpeachmentRiskHigh:
		return nil
	default:
		return fmt.Errorf("alert: invalid enum value for impeachment_risk field: %q", ir)
	}
}

// OrderOption defines the ordering options for the Alert queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAlertType orders the results by the alert_type field.
func ByAlertType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByImpeachmentRisk orders the results by the impeachment_risk field.
func ByImpeachmentRisk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImpeachmentRisk, opts...).ToFunc()
}

// ByPriorQuote orders the results by the prior_quote field.
func ByPriorQuote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorQuote, opts...).ToFunc()
}

// ByPriorSourcePage orders the results by the prior_source_page field.
func ByPriorSourcePage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorSourcePage, opts...).ToFunc()
}

// ByPriorSourceLine orders the results by the prior_source_line field.
func ByPriorSourceLine(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorSourceLine, opts...).ToFunc()
}

// ByCurrentQuote orders the results by the current_quote field.
func ByCurrentQuote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentQuote, opts...).ToFunc()
}

// ByFreRule orders the results by the fre_rule field.
func ByFreRule(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFreRule, opts...).ToFunc()
}

// ByFreClassification orders the results by the fre_classification field.
func ByFreClassification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFreClassification, opts...).ToFunc()
}

// ByQuestionNumber orders the results by the question_number field.
func ByQuestionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionNumber, opts...).ToFunc()
}

// ByConfirmedAt orders the results by the confirmed_at field.
func ByConfirmedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfirmedAt, opts...).ToFunc()
}

// ByRejectedAt orders the results by the rejected_at field.
func ByRejectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
