// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/verdictlabs/verdict/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCaseID, v))
}

// WitnessID applies equality check predicate on the "witness_id" field. It's identical to WitnessIDEQ.
func WitnessID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldWitnessID, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDurationMinutes, v))
}

// CurrentTopic applies equality check predicate on the "current_topic" field. It's identical to CurrentTopicEQ.
func CurrentTopic(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCurrentTopic, v))
}

// ObjectionCopilotEnabled applies equality check predicate on the "objection_copilot_enabled" field. It's identical to ObjectionCopilotEnabledEQ.
func ObjectionCopilotEnabled(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldObjectionCopilotEnabled, v))
}

// SentinelEnabled applies equality check predicate on the "sentinel_enabled" field. It's identical to SentinelEnabledEQ.
func SentinelEnabled(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSentinelEnabled, v))
}

// WitnessToken applies equality check predicate on the "witness_token" field. It's identical to WitnessTokenEQ.
func WitnessToken(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldWitnessToken, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldQuestionCount, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndedAt, v))
}

// PausedAt applies equality check predicate on the "paused_at" field. It's identical to PausedAtEQ.
func PausedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPausedAt, v))
}

// TotalPauseMs applies equality check predicate on the "total_pause_ms" field. It's identical to TotalPauseMsEQ.
func TotalPauseMs(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTotalPauseMs, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLastInteractionAt, v))
}

// SessionScore applies equality check predicate on the "session_score" field. It's identical to SessionScoreEQ.
func SessionScore(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionScore, v))
}

// ConsistencyRate applies equality check predicate on the "consistency_rate" field. It's identical to ConsistencyRateEQ.
func ConsistencyRate(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldConsistencyRate, v))
}

// ExternalContextID applies equality check predicate on the "external_context_id" field. It's identical to ExternalContextIDEQ.
func ExternalContextID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldExternalContextID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldCaseID, v))
}

// WitnessIDEQ applies the EQ predicate on the "witness_id" field.
func WitnessIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldWitnessID, v))
}

// WitnessIDNEQ applies the NEQ predicate on the "witness_id" field.
func WitnessIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldWitnessID, v))
}

// WitnessIDIn applies the In predicate on the "witness_id" field.
func WitnessIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldWitnessID, vs...))
}

// WitnessIDNotIn applies the NotIn predicate on the "witness_id" field.
func WitnessIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldWitnessID, vs...))
}

// WitnessIDGT applies the GT predicate on the "witness_id" field.
func WitnessIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldWitnessID, v))
}

// WitnessIDGTE applies the GTE predicate on the "witness_id" field.
func WitnessIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldWitnessID, v))
}

// WitnessIDLT applies the LT predicate on the "witness_id" field.
func WitnessIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldWitnessID, v))
}

// WitnessIDLTE applies the LTE predicate on the "witness_id" field.
func WitnessIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldWitnessID, v))
}

// WitnessIDContains applies the Contains predicate on the "witness_id" field.
func WitnessIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldWitnessID, v))
}

// WitnessIDHasPrefix applies the HasPrefix predicate on the "witness_id" field.
func WitnessIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldWitnessID, v))
}

// WitnessIDHasSuffix applies the HasSuffix predicate on the "witness_id" field.
func WitnessIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldWitnessID, v))
}

// WitnessIDEqualFold applies the EqualFold predicate on the "witness_id" field.
func WitnessIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldWitnessID, v))
}

// WitnessIDContainsFold applies the ContainsFold predicate on the "witness_id" field.
func WitnessIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldWitnessID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatus, vs...))
}

// AggressionLevelEQ applies the EQ predicate on the "aggression_level" field.
func AggressionLevelEQ(v AggressionLevel) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldAggressionLevel, v))
}

// AggressionLevelNEQ applies the NEQ predicate on the "aggression_level" field.
func AggressionLevelNEQ(v AggressionLevel) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldAggressionLevel, v))
}

// AggressionLevelIn applies the In predicate on the "aggression_level" field.
func AggressionLevelIn(vs ...AggressionLevel) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldAggressionLevel, vs...))
}

// AggressionLevelNotIn applies the NotIn predicate on the "aggression_level" field.
func AggressionLevelNotIn(vs ...AggressionLevel) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldAggressionLevel, vs...))
}

// FocusAreasIsNil applies the IsNil predicate on the "focus_areas" field.
func FocusAreasIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldFocusAreas))
}

// FocusAreasNotNil applies the NotNil predicate on the "focus_areas" field.
func FocusAreasNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldFocusAreas))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldDurationMinutes, v))
}

// CurrentTopicEQ applies the EQ predicate on the "current_topic" field.
func CurrentTopicEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCurrentTopic, v))
}

// CurrentTopicNEQ applies the NEQ predicate on the "current_topic" field.
func CurrentTopicNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCurrentTopic, v))
}

// CurrentTopicIn applies the In predicate on the "current_topic" field.
func CurrentTopicIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCurrentTopic, vs...))
}

// CurrentTopicNotIn applies the NotIn predicate on the "current_topic" field.
func CurrentTopicNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCurrentTopic, vs...))
}

// CurrentTopicGT applies the GT predicate on the "current_topic" field.
func CurrentTopicGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCurrentTopic, v))
}

// CurrentTopicGTE applies the GTE predicate on the "current_topic" field.
func CurrentTopicGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCurrentTopic, v))
}

// CurrentTopicLT applies the LT predicate on the "current_topic" field.
func CurrentTopicLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCurrentTopic, v))
}

// CurrentTopicLTE applies the LTE predicate on the "current_topic" field.
func CurrentTopicLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCurrentTopic, v))
}

// CurrentTopicContains applies the Contains predicate on the "current_topic" field.
func CurrentTopicContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldCurrentTopic, v))
}

// CurrentTopicHasPrefix applies the HasPrefix predicate on the "current_topic" field.
func CurrentTopicHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldCurrentTopic, v))
}

// CurrentTopicHasSuffix applies the HasSuffix predicate on the "current_topic" field.
func CurrentTopicHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldCurrentTopic, v))
}

// CurrentTopicIsNil applies the IsNil predicate on the "current_topic" field.
func CurrentTopicIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldCurrentTopic))
}

// CurrentTopicNotNil applies the NotNil predicate on the "current_topic" field.
func CurrentTopicNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldCurrentTopic))
}

// CurrentTopicEqualFold applies the EqualFold predicate on the "current_topic" field.
func CurrentTopicEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldCurrentTopic, v))
}

// CurrentTopicContainsFold applies the ContainsFold predicate on the "current_topic" field.
func CurrentTopicContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldCurrentTopic, v))
}

// ObjectionCopilotEnabledEQ applies the EQ predicate on the "objection_copilot_enabled" field.
func ObjectionCopilotEnabledEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldObjectionCopilotEnabled, v))
}

// ObjectionCopilotEnabledNEQ applies the NEQ predicate on the "objection_copilot_enabled" field.
func ObjectionCopilotEnabledNEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldObjectionCopilotEnabled, v))
}

// SentinelEnabledEQ applies the EQ predicate on the "sentinel_enabled" field.
func SentinelEnabledEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSentinelEnabled, v))
}

// SentinelEnabledNEQ applies the NEQ predicate on the "sentinel_enabled" field.
func SentinelEnabledNEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSentinelEnabled, v))
}

// BriefStatusEQ applies the EQ predicate on the "brief_status" field.
func BriefStatusEQ(v BriefStatus) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldBriefStatus, v))
}

// BriefStatusNEQ applies the NEQ predicate on the "brief_status" field.
func BriefStatusNEQ(v BriefStatus) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldBriefStatus, v))
}

// BriefStatusIn applies the In predicate on the "brief_status" field.
func BriefStatusIn(vs ...BriefStatus) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldBriefStatus, vs...))
}

// BriefStatusNotIn applies the NotIn predicate on the "brief_status" field.
func BriefStatusNotIn(vs ...BriefStatus) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldBriefStatus, vs...))
}

// WitnessTokenEQ applies the EQ predicate on the "witness_token" field.
func WitnessTokenEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldWitnessToken, v))
}

// WitnessTokenNEQ applies the NEQ predicate on the "witness_token" field.
func WitnessTokenNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldWitnessToken, v))
}

// WitnessTokenIn applies the In predicate on the "witness_token" field.
func WitnessTokenIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldWitnessToken, vs...))
}

// WitnessTokenNotIn applies the NotIn predicate on the "witness_token" field.
func WitnessTokenNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldWitnessToken, vs...))
}

// WitnessTokenGT applies the GT predicate on the "witness_token" field.
func WitnessTokenGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldWitnessToken, v))
}

// WitnessTokenGTE applies the GTE predicate on the "witness_token" field.
func WitnessTokenGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldWitnessToken, v))
}

// WitnessTokenLT applies the LT predicate on the "witness_token" field.
func WitnessTokenLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldWitnessToken, v))
}

// WitnessTokenLTE applies the LTE predicate on the "witness_token" field.
func WitnessTokenLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldWitnessToken, v))
}

// WitnessTokenContains applies the Contains predicate on the "witness_token" field.
func WitnessTokenContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldWitnessToken, v))
}

// WitnessTokenHasPrefix applies the HasPrefix predicate on the "witness_token" field.
func WitnessTokenHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldWitnessToken, v))
}

// WitnessTokenHasSuffix applies the HasSuffix predicate on the "witness_token" field.
func WitnessTokenHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldWitnessToken, v))
}

// WitnessTokenEqualFold applies the EqualFold predicate on the "witness_token" field.
func WitnessTokenEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldWitnessToken, v))
}

// WitnessTokenContainsFold applies the ContainsFold predicate on the "witness_token" field.
func WitnessTokenContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldWitnessToken, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldQuestionCount, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldStartedAt))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldEndedAt))
}

// PausedAtEQ applies the EQ predicate on the "paused_at" field.
func PausedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPausedAt, v))
}

// PausedAtNEQ applies the NEQ predicate on the "paused_at" field.
func PausedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPausedAt, v))
}

// PausedAtIn applies the In predicate on the "paused_at" field.
func PausedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPausedAt, vs...))
}

// PausedAtNotIn applies the NotIn predicate on the "paused_at" field.
func PausedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPausedAt, vs...))
}

// PausedAtGT applies the GT predicate on the "paused_at" field.
func PausedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldPausedAt, v))
}

// PausedAtGTE applies the GTE predicate on the "paused_at" field.
func PausedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldPausedAt, v))
}

// PausedAtLT applies the LT predicate on the "paused_at" field.
func PausedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldPausedAt, v))
}

// PausedAtLTE applies the LTE predicate on the "paused_at" field.
func PausedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldPausedAt, v))
}

// PausedAtIsNil applies the IsNil predicate on the "paused_at" field.
func PausedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldPausedAt))
}

// PausedAtNotNil applies the NotNil predicate on the "paused_at" field.
func PausedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldPausedAt))
}

// TotalPauseMsEQ applies the EQ predicate on the "total_pause_ms" field.
func TotalPauseMsEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTotalPauseMs, v))
}

// TotalPauseMsNEQ applies the NEQ predicate on the "total_pause_ms" field.
func TotalPauseMsNEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTotalPauseMs, v))
}

// TotalPauseMsIn applies the In predicate on the "total_pause_ms" field.
func TotalPauseMsIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTotalPauseMs, vs...))
}

// TotalPauseMsNotIn applies the NotIn predicate on the "total_pause_ms" field.
func TotalPauseMsNotIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTotalPauseMs, vs...))
}

// TotalPauseMsGT applies the GT predicate on the "total_pause_ms" field.
func TotalPauseMsGT(v int64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTotalPauseMs, v))
}

// TotalPauseMsGTE applies the GTE predicate on the "total_pause_ms" field.
func TotalPauseMsGTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTotalPauseMs, v))
}

// TotalPauseMsLT applies the LT predicate on the "total_pause_ms" field.
func TotalPauseMsLT(v int64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTotalPauseMs, v))
}

// TotalPauseMsLTE applies the LTE predicate on the "total_pause_ms" field.
func TotalPauseMsLTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTotalPauseMs, v))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldLastInteractionAt))
}

// SessionScoreEQ applies the EQ predicate on the "session_score" field.
func SessionScoreEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionScore, v))
}

// SessionScoreNEQ applies the NEQ predicate on the "session_score" field.
func SessionScoreNEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSessionScore, v))
}

// SessionScoreIn applies the In predicate on the "session_score" field.
func SessionScoreIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSessionScore, vs...))
}

// SessionScoreNotIn applies the NotIn predicate on the "session_score" field.
func SessionScoreNotIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSessionScore, vs...))
}

// SessionScoreGT applies the GT predicate on the "session_score" field.
func SessionScoreGT(v float64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSessionScore, v))
}

// SessionScoreGTE applies the GTE predicate on the "session_score" field.
func SessionScoreGTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSessionScore, v))
}

// SessionScoreLT applies the LT predicate on the "session_score" field.
func SessionScoreLT(v float64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSessionScore, v))
}

// SessionScoreLTE applies the LTE predicate on the "session_score" field.
func SessionScoreLTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSessionScore, v))
}

// SessionScoreIsNil applies the IsNil predicate on the "session_score" field.
func SessionScoreIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldSessionScore))
}

// SessionScoreNotNil applies the NotNil predicate on the "session_score" field.
func SessionScoreNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldSessionScore))
}

// ConsistencyRateEQ applies the EQ predicate on the "consistency_rate" field.
func ConsistencyRateEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldConsistencyRate, v))
}

// ConsistencyRateNEQ applies the NEQ predicate on the "consistency_rate" field.
func ConsistencyRateNEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldConsistencyRate, v))
}

// ConsistencyRateIn applies the In predicate on the "consistency_rate" field.
func ConsistencyRateIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldConsistencyRate, vs...))
}

// ConsistencyRateNotIn applies the NotIn predicate on the "consistency_rate" field.
func ConsistencyRateNotIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldConsistencyRate, vs...))
}

// ConsistencyRateGT applies the GT predicate on the "consistency_rate" field.
func ConsistencyRateGT(v float64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldConsistencyRate, v))
}

// ConsistencyRateGTE applies the GTE predicate on the "consistency_rate" field.
func ConsistencyRateGTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldConsistencyRate, v))
}

// ConsistencyRateLT applies the LT predicate on the "consistency_rate" field.
func ConsistencyRateLT(v float64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldConsistencyRate, v))
}

// ConsistencyRateLTE applies the LTE predicate on the "consistency_rate" field.
func ConsistencyRateLTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldConsistencyRate, v))
}

// ConsistencyRateIsNil applies the IsNil predicate on the "consistency_rate" field.
func ConsistencyRateIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldConsistencyRate))
}

// ConsistencyRateNotNil applies the NotNil predicate on the "consistency_rate" field.
func ConsistencyRateNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldConsistencyRate))
}

// PriorWeakAreasIsNil applies the IsNil predicate on the "prior_weak_areas" field.
func PriorWeakAreasIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldPriorWeakAreas))
}

// PriorWeakAreasNotNil applies the NotNil predicate on the "prior_weak_areas" field.
func PriorWeakAreasNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldPriorWeakAreas))
}

// ExternalContextIDEQ applies the EQ predicate on the "external_context_id" field.
func ExternalContextIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldExternalContextID, v))
}

// ExternalContextIDNEQ applies the NEQ predicate on the "external_context_id" field.
func ExternalContextIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldExternalContextID, v))
}

// ExternalContextIDIn applies the In predicate on the "external_context_id" field.
func ExternalContextIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldExternalContextID, vs...))
}

// ExternalContextIDNotIn applies the NotIn predicate on the "external_context_id" field.
func ExternalContextIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldExternalContextID, vs...))
}

// ExternalContextIDGT applies the GT predicate on the "external_context_id" field.
func ExternalContextIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldExternalContextID, v))
}

// ExternalContextIDGTE applies the GTE predicate on the "external_context_id" field.
func ExternalContextIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldExternalContextID, v))
}

// ExternalContextIDLT applies the LT predicate on the "external_context_id" field.
func ExternalContextIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldExternalContextID, v))
}

// ExternalContextIDLTE applies the LTE predicate on the "external_context_id" field.
func ExternalContextIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldExternalContextID, v))
}

// ExternalContextIDContains applies the Contains predicate on the "external_context_id" field.
func ExternalContextIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldExternalContextID, v))
}

// ExternalContextIDHasPrefix applies the HasPrefix predicate on the "external_context_id" field.
func ExternalContextIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldExternalContextID, v))
}

// ExternalContextIDHasSuffix applies the HasSuffix predicate on the "external_context_id" field.
func ExternalContextIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldExternalContextID, v))
}

// ExternalContextIDIsNil applies the IsNil predicate on the "external_context_id" field.
func ExternalContextIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldExternalContextID))
}

// ExternalContextIDNotNil applies the NotNil predicate on the "external_context_id" field.
func ExternalContextIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldExternalContextID))
}

// ExternalContextIDEqualFold applies the EqualFold predicate on the "external_context_id" field.
func ExternalContextIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldExternalContextID, v))
}

// ExternalContextIDContainsFold applies the ContainsFold predicate on the "external_context_id" field.
func ExternalContextIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldExternalContextID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasLegalCase applies the HasEdge predicate on the "legal_case" edge.
func HasLegalCase() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LegalCaseTable, LegalCaseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLegalCaseWith applies the HasEdge predicate on the "legal_case" edge with a given conditions (other predicates).
func HasLegalCaseWith(preds ...predicate.LegalCase) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newLegalCaseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWitness applies the HasEdge predicate on the "witness" edge.
func HasWitness() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WitnessTable, WitnessColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWitnessWith applies the HasEdge predicate on the "witness" edge with a given conditions (other predicates).
func HasWitnessWith(preds ...predicate.Witness) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newWitnessStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.SessionEvent) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAlerts applies the HasEdge predicate on the "alerts" edge.
func HasAlerts() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AlertsTable, AlertsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAlertsWith applies the HasEdge predicate on the "alerts" edge with a given conditions (other predicates).
func HasAlertsWith(preds ...predicate.Alert) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newAlertsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBrief applies the HasEdge predicate on the "brief" edge.
func HasBrief() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, BriefTable, BriefColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBriefWith applies the HasEdge predicate on the "brief" edge with a given conditions (other predicates).
func HasBriefWith(preds ...predicate.Brief) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newBriefStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
