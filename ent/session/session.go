// Code generated by ent, DO NOT EDIT.

package session

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldWitnessID holds the string denoting the witness_id field in the database.
	FieldWitnessID = "witness_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAggressionLevel holds the string denoting the aggression_level field in the database.
	FieldAggressionLevel = "aggression_level"
	// FieldFocusAreas holds the string denoting the focus_areas field in the database.
	FieldFocusAreas = "focus_areas"
	// FieldDurationMinutes holds the string denoting the duration_minutes field in the database.
	FieldDurationMinutes = "duration_minutes"
	// FieldCurrentTopic holds the string denoting the current_topic field in the database.
	FieldCurrentTopic = "current_topic"
	// FieldObjectionCopilotEnabled holds the string denoting the objection_copilot_enabled field in the database.
	FieldObjectionCopilotEnabled = "objection_copilot_enabled"
	// FieldSentinelEnabled holds the string denoting the sentinel_enabled field in the database.
	FieldSentinelEnabled = "sentinel_enabled"
	// FieldBriefStatus holds the string denoting the brief_status field in the database.
	FieldBriefStatus = "brief_status"
	// FieldWitnessToken holds the string denoting the witness_token field in the database.
	FieldWitnessToken = "witness_token"
	// FieldQuestionCount holds the string denoting the question_count field in the database.
	FieldQuestionCount = "question_count"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldPausedAt holds the string denoting the paused_at field in the database.
	FieldPausedAt = "paused_at"
	// FieldTotalPauseMs holds the string denoting the total_pause_ms field in the database.
	FieldTotalPauseMs = "total_pause_ms"
	// FieldLastInteractionAt holds the string denoting the last_interaction_at field in the database.
	FieldLastInteractionAt = "last_interaction_at"
	// FieldSessionScore holds the string denoting the session_score field in the database.
	FieldSessionScore = "session_score"
	// FieldConsistencyRate holds the string denoting the consistency_rate field in the database.
	FieldConsistencyRate = "consistency_rate"
	// FieldPriorWeakAreas holds the string denoting the prior_weak_areas field in the database.
	FieldPriorWeakAreas = "prior_weak_areas"
	// FieldExternalContextID holds the string denoting the external_context_id field in the database.
	FieldExternalContextID = "external_context_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeLegalCase holds the string denoting the legal_case edge name in mutations.
	EdgeLegalCase = "legal_case"
	// EdgeWitness holds the string denoting the witness edge name in mutations.
	EdgeWitness = "witness"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeAlerts holds the string denoting the alerts edge name in mutations.
	EdgeAlerts = "alerts"
	// EdgeBrief holds the string denoting the brief edge name in mutations.
	EdgeBrief = "brief"
	// LegalCaseFieldID holds the string denoting the ID field of the LegalCase.
	LegalCaseFieldID = "case_id"
	// WitnessFieldID holds the string denoting the ID field of the Witness.
	WitnessFieldID = "witness_id"
	// SessionEventFieldID holds the string denoting the ID field of the SessionEvent.
	SessionEventFieldID = "event_id"
	// AlertFieldID holds the string denoting the ID field of the Alert.
	AlertFieldID = "alert_id"
	// BriefFieldID holds the string denoting the ID field of the Brief.
	BriefFieldID = "brief_id"
	// Table holds the table name of the session in the database.
	Table = "sessions"
	// LegalCaseTable is the table that holds the legal_case relation/edge.
	LegalCaseTable = "sessions"
	// LegalCaseInverseTable is the table name for the LegalCase entity.
	// It exists in this package in order to avoid circular dependency with the "legalcase" package.
	LegalCaseInverseTable = "legal_cases"
	// LegalCaseColumn is the table column denoting the legal_case relation/edge.
	LegalCaseColumn = "case_id"
	// WitnessTable is the table that holds the witness relation/edge.
	WitnessTable = "sessions"
	// WitnessInverseTable is the table name for the Witness entity.
	// It exists in this package in order to avoid circular dependency with the "witness" package.
	WitnessInverseTable = "witnesses"
	// WitnessColumn is the table column denoting the witness relation/edge.
	WitnessColumn = "witness_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "session_events"
	// EventsInverseTable is the table name for the SessionEvent entity.
	// It exists in this package in order to avoid circular dependency with the "sessionevent" package.
	EventsInverseTable = "session_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "session_id"
	// AlertsTable is the table that holds the alerts relation/edge.
	AlertsTable = "alerts"
	// AlertsInverseTable is the table name for the Alert entity.
	// It exists in this package in order to avoid circular dependency with the "alert" package.
	AlertsInverseTable = "alerts"
	// AlertsColumn is the table column denoting the alerts relation/edge.
	AlertsColumn = "session_id"
	// BriefTable is the table that holds the brief relation/edge.
	BriefTable = "briefs"
	// BriefInverseTable is the table name for the Brief entity.
	// It exists in this package in order to avoid circular dependency with the "brief" package.
	BriefInverseTable = "briefs"
	// BriefColumn is the table column denoting the brief relation/edge.
	BriefColumn = "session_id"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldCaseID,
	FieldWitnessID,
	FieldStatus,
	FieldAggressionLevel,
	FieldFocusAreas,
	FieldDurationMinutes,
	FieldCurrentTopic,
	FieldObjectionCopilotEnabled,
	FieldSentinelEnabled,
	FieldBriefStatus,
	FieldWitnessToken,
	FieldQuestionCount,
	FieldStartedAt,
	FieldEndedAt,
	FieldPausedAt,
	FieldTotalPauseMs,
	FieldLastInteractionAt,
	FieldSessionScore,
	FieldConsistencyRate,
	FieldPriorWeakAreas,
	FieldExternalContextID,
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
	// DefaultDurationMinutes holds the default value on creation for the "duration_minutes" field.
	DefaultDurationMinutes int
	// DefaultObjectionCopilotEnabled holds the default value on creation for the "objection_copilot_enabled" field.
	DefaultObjectionCopilotEnabled bool
	// DefaultSentinelEnabled holds the default value on creation for the "sentinel_enabled" field.
	DefaultSentinelEnabled bool
	// DefaultQuestionCount holds the default value on creation for the "question_count" field.
	DefaultQuestionCount int
	// DefaultTotalPauseMs holds the default value on creation for the "total_pause_ms" field.
	DefaultTotalPauseMs int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusLobby is the default value of the Status enum.
const DefaultStatus = StatusLobby

// Status values.
const (
	StatusLobby     Status = "LOBBY"
	StatusActive    Status = "ACTIVE"
	StatusPaused    Status = "PAUSED"
	StatusComplete  Status = "COMPLETE"
	StatusAbandoned Status = "ABANDONED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusLobby, StatusActive, StatusPaused, StatusComplete, StatusAbandoned:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for status field: %q", s)
	}
}

// AggressionLevel defines the type for the "aggression_level" enum field.
type AggressionLevel string

// AggressionLevelStandard is the default value of the AggressionLevel enum.
const DefaultAggressionLevel = AggressionLevelStandard

// AggressionLevel values.
const (
	AggressionLevelStandard   AggressionLevel = "STANDARD"
	AggressionLevelElevated   AggressionLevel = "ELEVATED"
	AggressionLevelHighStakes AggressionLevel = "HIGH_STAKES"
)

func (al AggressionLevel) String() string {
	return string(al)
}

// AggressionLevelValidator is a validator for the "aggression_level" field enum values. It is called by the builders before save.
func AggressionLevelValidator(al AggressionLevel) error {
	switch al {
	case AggressionLevelStandard, AggressionLevelElevated, AggressionLevelHighStakes:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for aggression_level field: %q", al)
	}
}

// BriefStatus defines the type for the "brief_status" enum field.
type BriefStatus string

// BriefStatusNone is the default value of the BriefStatus enum.
const DefaultBriefStatus = BriefStatusNone

// BriefStatus values.
const (
	BriefStatusNone       BriefStatus = "NONE"
	BriefStatusPending    BriefStatus = "PENDING"
	BriefStatusGenerating BriefStatus = "GENERATING"
	BriefStatusDone       BriefStatus = "DONE"
	BriefStatusFailed     BriefStatus = "FAILED"
)

func (bs BriefStatus) String() string {
	return string(bs)
}

// BriefStatusValidator is a validator for the "brief_status" field enum values. It is called by the builders before save.
func BriefStatusValidator(bs BriefStatus) error {
	switch bs {
	case BriefStatusNone, BriefStatusPending, BriefStatusGenerating, BriefStatusDone, BriefStatusFailed:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for brief_status field: %q", bs)
	}
}

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByWitnessID orders the results by the witness_id field.
func ByWitnessID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWitnessID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAggressionLevel orders the results by the aggression_level field.
func ByAggressionLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAggressionLevel, opts...).ToFunc()
}

// ByDurationMinutes orders the results by the duration_minutes field.
func ByDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMinutes, opts...).ToFunc()
}

// ByCurrentTopic orders the results by the current_topic field.
func ByCurrentTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentTopic, opts...).ToFunc()
}

// ByObjectionCopilotEnabled orders the results by the objection_copilot_enabled field.
func ByObjectionCopilotEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjectionCopilotEnabled, opts...).ToFunc()
}

// BySentinelEnabled orders the results by the sentinel_enabled field.
func BySentinelEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentinelEnabled, opts...).ToFunc()
}

// ByBriefStatus orders the results by the brief_status field.
func ByBriefStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBriefStatus, opts...).ToFunc()
}

// ByWitnessToken orders the results by the witness_token field.
func ByWitnessToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWitnessToken, opts...).ToFunc()
}

// ByQuestionCount orders the results by the question_count field.
func ByQuestionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionCount, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByPausedAt orders the results by the paused_at field.
func ByPausedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPausedAt, opts...).ToFunc()
}

// ByTotalPauseMs orders the results by the total_pause_ms field.
func ByTotalPauseMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPauseMs, opts...).ToFunc()
}

// ByLastInteractionAt orders the results by the last_interaction_at field.
func ByLastInteractionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastInteractionAt, opts...).ToFunc()
}

// BySessionScore orders the results by the session_score field.
func BySessionScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionScore, opts...).ToFunc()
}

// ByConsistencyRate orders the results by the consistency_rate field.
func ByConsistencyRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsistencyRate, opts...).ToFunc()
}

// ByExternalContextID orders the results by the external_context_id field.
func ByExternalContextID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalContextID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLegalCaseField orders the results by legal_case field.
func ByLegalCaseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLegalCaseStep(), sql.OrderByField(field, opts...))
	}
}

// ByWitnessField orders the results by witness field.
func ByWitnessField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWitnessStep(), sql.OrderByField(field, opts...))
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAlertsCount orders the results by alerts count.
func ByAlertsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAlertsStep(), opts...)
	}
}

// ByAlerts orders the results by alerts terms.
func ByAlerts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAlertsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBriefField orders the results by brief field.
func ByBriefField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBriefStep(), sql.OrderByField(field, opts...))
	}
}
func newLegalCaseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LegalCaseInverseTable, LegalCaseFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LegalCaseTable, LegalCaseColumn),
	)
}
func newWitnessStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WitnessInverseTable, WitnessFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WitnessTable, WitnessColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, SessionEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newAlertsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AlertsInverseTable, AlertFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AlertsTable, AlertsColumn),
	)
}
func newBriefStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BriefInverseTable, BriefFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, BriefTable, BriefColumn),
	)
}
