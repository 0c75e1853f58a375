// Code generated by ent, DO NOT EDIT.

package brief

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the brief type in the database.
	Label = "brief"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "brief_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSessionScore holds the string denoting the session_score field in the database.
	FieldSessionScore = "session_score"
	// FieldConsistencyRate holds the string denoting the consistency_rate field in the database.
	FieldConsistencyRate = "consistency_rate"
	// FieldWeaknessMap holds the string denoting the weakness_map field in the database.
	FieldWeaknessMap = "weakness_map"
	// FieldNarrativeText holds the string denoting the narrative_text field in the database.
	FieldNarrativeText = "narrative_text"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldConfirmedFlags holds the string denoting the confirmed_flags field in the database.
	FieldConfirmedFlags = "confirmed_flags"
	// FieldObjectionCount holds the string denoting the objection_count field in the database.
	FieldObjectionCount = "objection_count"
	// FieldComposureAlerts holds the string denoting the composure_alerts field in the database.
	FieldComposureAlerts = "composure_alerts"
	// FieldDeltaVsBaseline holds the string denoting the delta_vs_baseline field in the database.
	FieldDeltaVsBaseline = "delta_vs_baseline"
	// FieldShareToken holds the string denoting the share_token field in the database.
	FieldShareToken = "share_token"
	// FieldShareExpiresAt holds the string denoting the share_expires_at field in the database.
	FieldShareExpiresAt = "share_expires_at"
	// FieldPdfKey holds the string denoting the pdf_key field in the database.
	FieldPdfKey = "pdf_key"
	// FieldCoachAudioKey holds the string denoting the coach_audio_key field in the database.
	FieldCoachAudioKey = "coach_audio_key"
	// FieldGeneratedBy holds the string denoting the generated_by field in the database.
	FieldGeneratedBy = "generated_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// Table holds the table name of the brief in the database.
	Table = "briefs"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "briefs"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for brief fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldSessionScore,
	FieldConsistencyRate,
	FieldWeaknessMap,
	FieldNarrativeText,
	FieldRecommendations,
	FieldConfirmedFlags,
	FieldObjectionCount,
	FieldComposureAlerts,
	FieldDeltaVsBaseline,
	FieldShareToken,
	FieldShareExpiresAt,
	FieldPdfKey,
	FieldCoachAudioKey,
	FieldGeneratedBy,
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
	// DefaultConfirmedFlags holds the default value on creation for the "confirmed_flags" field.
	DefaultConfirmedFlags int
	// DefaultObjectionCount holds the default value on creation for the "objection_count" field.
	DefaultObjectionCount int
	// DefaultComposureAlerts holds the default value on creation for the "composure_alerts" field.
	DefaultComposureAlerts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// GeneratedBy defines the type for the "generated_by" enum field.
type GeneratedBy string

// GeneratedBy values.
const (
	GeneratedByModel     GeneratedBy = "MODEL"
	GeneratedByHeuristic GeneratedBy = "HEURISTIC"
)

func (gb GeneratedBy) String() string {
	return string(gb)
}

// GeneratedByValidator is a validator for the "generated_by" field enum values. It is called by the builders before save.
func GeneratedByValidator(gb GeneratedBy) error {
	switch gb {
	case GeneratedByModel, GeneratedByHeuristic:
		return nil
	default:
		return fmt.Errorf("brief: invalid enum value for generated_by field: %q", gb)
	}
}

// OrderOption defines the ordering options for the Brief queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySessionScore orders the results by the session_score field.
func BySessionScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionScore, opts...).ToFunc()
}

// ByConsistencyRate orders the results by the consistency_rate field.
func ByConsistencyRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsistencyRate, opts...).ToFunc()
}

// ByNarrativeText orders the results by the narrative_text field.
func ByNarrativeText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNarrativeText, opts...).ToFunc()
}

// ByConfirmedFlags orders the results by the confirmed_flags field.
func ByConfirmedFlags(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfirmedFlags, opts...).ToFunc()
}

// ByObjectionCount orders the results by the objection_count field.
func ByObjectionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjectionCount, opts...).ToFunc()
}

// ByComposureAlerts orders the results by the composure_alerts field.
func ByComposureAlerts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComposureAlerts, opts...).ToFunc()
}

// ByDeltaVsBaseline orders the results by the delta_vs_baseline field.
func ByDeltaVsBaseline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeltaVsBaseline, opts...).ToFunc()
}

// ByShareToken orders the results by the share_token field.
func ByShareToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShareToken, opts...).ToFunc()
}

// ByShareExpiresAt orders the results by the share_expires_at field.
func ByShareExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShareExpiresAt, opts...).ToFunc()
}

// ByPdfKey orders the results by the pdf_key field.
func ByPdfKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfKey, opts...).ToFunc()
}

// ByCoachAudioKey orders the results by the coach_audio_key field.
func ByCoachAudioKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoachAudioKey, opts...).ToFunc()
}

// ByGeneratedBy orders the results by the generated_by field.
func ByGeneratedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedBy, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
	)
}
