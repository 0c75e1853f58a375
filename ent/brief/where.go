// Code generated by ent, DO NOT EDIT.

package brief

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/verdictlabs/verdict/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Brief {
	return predicate.Brief(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Brief {
	return predicate.Brief(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Brief {
	return predicate.Brief(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Brief {
	return predicate.Brief(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Brief {
	return predicate.Brief(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Brief {
	return predicate.Brief(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Brief {
	return predicate.Brief(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Brief {
	return predicate.Brief(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Brief {
	return predicate.Brief(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldSessionID, v))
}

// SessionScore applies equality check predicate on the "session_score" field. It's identical to SessionScoreEQ.
func SessionScore(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldSessionScore, v))
}

// ConsistencyRate applies equality check predicate on the "consistency_rate" field. It's identical to ConsistencyRateEQ.
func ConsistencyRate(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldConsistencyRate, v))
}

// NarrativeText applies equality check predicate on the "narrative_text" field. It's identical to NarrativeTextEQ.
func NarrativeText(v string) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldNarrativeText, v))
}

// ConfirmedFlags applies equality check predicate on the "confirmed_flags" field. It's identical to ConfirmedFlagsEQ.
func ConfirmedFlags(v int) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldConfirmedFlags, v))
}

// ObjectionCount applies equality check predicate on the "objection_count" field. It's identical to ObjectionCountEQ.
func ObjectionCount(v int) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldObjectionCount, v))
}

// ComposureAlerts applies equality check predicate on the "composure_alerts" field. It's identical to ComposureAlertsEQ.
func ComposureAlerts(v int) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldComposureAlerts, v))
}

// DeltaVsBaseline applies equality check predicate on the "delta_vs_baseline" field. It's identical to DeltaVsBaselineEQ.
func DeltaVsBaseline(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldDeltaVsBaseline, v))
}

// ShareToken applies equality check predicate on the "share_token" field. It's identical to ShareTokenEQ.
func ShareToken(v string) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldShareToken, v))
}

// ShareExpiresAt applies equality check predicate on the "share_expires_at" field. It's identical to ShareExpiresAtEQ.
func ShareExpiresAt(v time.Time) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldShareExpiresAt, v))
}

// PdfKey applies equality check predicate on the "pdf_key" field. It's identical to PdfKeyEQ.
func PdfKey(v string) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldPdfKey, v))
}

// CoachAudioKey applies equality check predicate on the "coach_audio_key" field. It's identical to CoachAudioKeyEQ.
func CoachAudioKey(v string) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldCoachAudioKey, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Brief {
	return predicate.Brief(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Brief {
	return predicate.Brief(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Brief {
	return predicate.Brief(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Brief {
	return predicate.Brief(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Brief {
	return predicate.Brief(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Brief {
	return predicate.Brief(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Brief {
	return predicate.Brief(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Brief {
	return predicate.Brief(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Brief {
	return predicate.Brief(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Brief {
	return predicate.Brief(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Brief {
	return predicate.Brief(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Brief {
	return predicate.Brief(sql.FieldContainsFold(FieldSessionID, v))
}

// SessionScoreEQ applies the EQ predicate on the "session_score" field.
func SessionScoreEQ(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldSessionScore, v))
}

// SessionScoreNEQ applies the NEQ predicate on the "session_score" field.
func SessionScoreNEQ(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldNEQ(FieldSessionScore, v))
}

// SessionScoreIn applies the In predicate on the "session_score" field.
func SessionScoreIn(vs ...float64) predicate.Brief {
	return predicate.Brief(sql.FieldIn(FieldSessionScore, vs...))
}

// SessionScoreNotIn applies the NotIn predicate on the "session_score" field.
func SessionScoreNotIn(vs ...float64) predicate.Brief {
	return predicate.Brief(sql.FieldNotIn(FieldSessionScore, vs...))
}

// SessionScoreGT applies the GT predicate on the "session_score" field.
func SessionScoreGT(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldGT(FieldSessionScore, v))
}

// SessionScoreGTE applies the GTE predicate on the "session_score" field.
func SessionScoreGTE(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldGTE(FieldSessionScore, v))
}

// SessionScoreLT applies the LT predicate on the "session_score" field.
func SessionScoreLT(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldLT(FieldSessionScore, v))
}

// SessionScoreLTE applies the LTE predicate on the "session_score" field.
func SessionScoreLTE(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldLTE(FieldSessionScore, v))
}

// ConsistencyRateEQ applies the EQ predicate on the "consistency_rate" field.
func ConsistencyRateEQ(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldConsistencyRate, v))
}

// ConsistencyRateNEQ applies the NEQ predicate on the "consistency_rate" field.
func ConsistencyRateNEQ(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldNEQ(FieldConsistencyRate, v))
}

// ConsistencyRateIn applies the In predicate on the "consistency_rate" field.
func ConsistencyRateIn(vs ...float64) predicate.Brief {
	return predicate.Brief(sql.FieldIn(FieldConsistencyRate, vs...))
}

// ConsistencyRateNotIn applies the NotIn predicate on the "consistency_rate" field.
func ConsistencyRateNotIn(vs ...float64) predicate.Brief {
	return predicate.Brief(sql.FieldNotIn(FieldConsistencyRate, vs...))
}

// ConsistencyRateGT applies the GT predicate on the "consistency_rate" field.
func ConsistencyRateGT(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldGT(FieldConsistencyRate, v))
}

// ConsistencyRateGTE applies the GTE predicate on the "consistency_rate" field.
func ConsistencyRateGTE(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldGTE(FieldConsistencyRate, v))
}

// ConsistencyRateLT applies the LT predicate on the "consistency_rate" field.
func ConsistencyRateLT(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldLT(FieldConsistencyRate, v))
}

// ConsistencyRateLTE applies the LTE predicate on the "consistency_rate" field.
func ConsistencyRateLTE(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldLTE(FieldConsistencyRate, v))
}

// NarrativeTextEQ applies the EQ predicate on the "narrative_text" field.
func NarrativeTextEQ(v string) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldNarrativeText, v))
}

// NarrativeTextNEQ applies the NEQ predicate on the "narrative_text" field.
func NarrativeTextNEQ(v string) predicate.Brief {
	return predicate.Brief(sql.FieldNEQ(FieldNarrativeText, v))
}

// NarrativeTextIn applies the In predicate on the "narrative_text" field.
func NarrativeTextIn(vs ...string) predicate.Brief {
	return predicate.Brief(sql.FieldIn(FieldNarrativeText, vs...))
}

// NarrativeTextNotIn applies the NotIn predicate on the "narrative_text" field.
func NarrativeTextNotIn(vs ...string) predicate.Brief {
	return predicate.Brief(sql.FieldNotIn(FieldNarrativeText, vs...))
}

// NarrativeTextGT applies the GT predicate on the "narrative_text" field.
func NarrativeTextGT(v string) predicate.Brief {
	return predicate.Brief(sql.FieldGT(FieldNarrativeText, v))
}

// NarrativeTextGTE applies the GTE predicate on the "narrative_text" field.
func NarrativeTextGTE(v string) predicate.Brief {
	return predicate.Brief(sql.FieldGTE(FieldNarrativeText, v))
}

// NarrativeTextLT applies the LT predicate on the "narrative_text" field.
func NarrativeTextLT(v string) predicate.Brief {
	return predicate.Brief(sql.FieldLT(FieldNarrativeText, v))
}

// NarrativeTextLTE applies the LTE predicate on the "narrative_text" field.
func NarrativeTextLTE(v string) predicate.Brief {
	return predicate.Brief(sql.FieldLTE(FieldNarrativeText, v))
}

// NarrativeTextContains applies the Contains predicate on the "narrative_text" field.
func NarrativeTextContains(v string) predicate.Brief {
	return predicate.Brief(sql.FieldContains(FieldNarrativeText, v))
}

// NarrativeTextHasPrefix applies the HasPrefix predicate on the "narrative_text" field.
func NarrativeTextHasPrefix(v string) predicate.Brief {
	return predicate.Brief(sql.FieldHasPrefix(FieldNarrativeText, v))
}

// NarrativeTextHasSuffix applies the HasSuffix predicate on the "narrative_text" field.
func NarrativeTextHasSuffix(v string) predicate.Brief {
	return predicate.Brief(sql.FieldHasSuffix(FieldNarrativeText, v))
}

// NarrativeTextEqualFold applies the EqualFold predicate on the "narrative_text" field.
func NarrativeTextEqualFold(v string) predicate.Brief {
	return predicate.Brief(sql.FieldEqualFold(FieldNarrativeText, v))
}

// NarrativeTextContainsFold applies the ContainsFold predicate on the "narrative_text" field.
func NarrativeTextContainsFold(v string) predicate.Brief {
	return predicate.Brief(sql.FieldContainsFold(FieldNarrativeText, v))
}

// ConfirmedFlagsEQ applies the EQ predicate on the "confirmed_flags" field.
func ConfirmedFlagsEQ(v int) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldConfirmedFlags, v))
}

// ConfirmedFlagsNEQ applies the NEQ predicate on the "confirmed_flags" field.
func ConfirmedFlagsNEQ(v int) predicate.Brief {
	return predicate.Brief(sql.FieldNEQ(FieldConfirmedFlags, v))
}

// ConfirmedFlagsIn applies the In predicate on the "confirmed_flags" field.
func ConfirmedFlagsIn(vs ...int) predicate.Brief {
	return predicate.Brief(sql.FieldIn(FieldConfirmedFlags, vs...))
}

// ConfirmedFlagsNotIn applies the NotIn predicate on the "confirmed_flags" field.
func ConfirmedFlagsNotIn(vs ...int) predicate.Brief {
	return predicate.Brief(sql.FieldNotIn(FieldConfirmedFlags, vs...))
}

// ConfirmedFlagsGT applies the GT predicate on the "confirmed_flags" field.
func ConfirmedFlagsGT(v int) predicate.Brief {
	return predicate.Brief(sql.FieldGT(FieldConfirmedFlags, v))
}

// ConfirmedFlagsGTE applies the GTE predicate on the "confirmed_flags" field.
func ConfirmedFlagsGTE(v int) predicate.Brief {
	return predicate.Brief(sql.FieldGTE(FieldConfirmedFlags, v))
}

// ConfirmedFlagsLT applies the LT predicate on the "confirmed_flags" field.
func ConfirmedFlagsLT(v int) predicate.Brief {
	return predicate.Brief(sql.FieldLT(FieldConfirmedFlags, v))
}

// ConfirmedFlagsLTE applies the LTE predicate on the "confirmed_flags" field.
func ConfirmedFlagsLTE(v int) predicate.Brief {
	return predicate.Brief(sql.FieldLTE(FieldConfirmedFlags, v))
}

// ObjectionCountEQ applies the EQ predicate on the "objection_count" field.
func ObjectionCountEQ(v int) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldObjectionCount, v))
}

// ObjectionCountNEQ applies the NEQ predicate on the "objection_count" field.
func ObjectionCountNEQ(v int) predicate.Brief {
	return predicate.Brief(sql.FieldNEQ(FieldObjectionCount, v))
}

// ObjectionCountIn applies the In predicate on the "objection_count" field.
func ObjectionCountIn(vs ...int) predicate.Brief {
	return predicate.Brief(sql.FieldIn(FieldObjectionCount, vs...))
}

// ObjectionCountNotIn applies the NotIn predicate on the "objection_count" field.
func ObjectionCountNotIn(vs ...int) predicate.Brief {
	return predicate.Brief(sql.FieldNotIn(FieldObjectionCount, vs...))
}

// ObjectionCountGT applies the GT predicate on the "objection_count" field.
func ObjectionCountGT(v int) predicate.Brief {
	return predicate.Brief(sql.FieldGT(FieldObjectionCount, v))
}

// ObjectionCountGTE applies the GTE predicate on the "objection_count" field.
func ObjectionCountGTE(v int) predicate.Brief {
	return predicate.Brief(sql.FieldGTE(FieldObjectionCount, v))
}

// ObjectionCountLT applies the LT predicate on the "objection_count" field.
func ObjectionCountLT(v int) predicate.Brief {
	return predicate.Brief(sql.FieldLT(FieldObjectionCount, v))
}

// ObjectionCountLTE applies the LTE predicate on the "objection_count" field.
func ObjectionCountLTE(v int) predicate.Brief {
	return predicate.Brief(sql.FieldLTE(FieldObjectionCount, v))
}

// ComposureAlertsEQ applies the EQ predicate on the "composure_alerts" field.
func ComposureAlertsEQ(v int) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldComposureAlerts, v))
}

// ComposureAlertsNEQ applies the NEQ predicate on the "composure_alerts" field.
func ComposureAlertsNEQ(v int) predicate.Brief {
	return predicate.Brief(sql.FieldNEQ(FieldComposureAlerts, v))
}

// ComposureAlertsIn applies the In predicate on the "composure_alerts" field.
func ComposureAlertsIn(vs ...int) predicate.Brief {
	return predicate.Brief(sql.FieldIn(FieldComposureAlerts, vs...))
}

// ComposureAlertsNotIn applies the NotIn predicate on the "composure_alerts" field.
func ComposureAlertsNotIn(vs ...int) predicate.Brief {
	return predicate.Brief(sql.FieldNotIn(FieldComposureAlerts, vs...))
}

// ComposureAlertsGT applies the GT predicate on the "composure_alerts" field.
func ComposureAlertsGT(v int) predicate.Brief {
	return predicate.Brief(sql.FieldGT(FieldComposureAlerts, v))
}

// ComposureAlertsGTE applies the GTE predicate on the "composure_alerts" field.
func ComposureAlertsGTE(v int) predicate.Brief {
	return predicate.Brief(sql.FieldGTE(FieldComposureAlerts, v))
}

// ComposureAlertsLT applies the LT predicate on the "composure_alerts" field.
func ComposureAlertsLT(v int) predicate.Brief {
	return predicate.Brief(sql.FieldLT(FieldComposureAlerts, v))
}

// ComposureAlertsLTE applies the LTE predicate on the "composure_alerts" field.
func ComposureAlertsLTE(v int) predicate.Brief {
	return predicate.Brief(sql.FieldLTE(FieldComposureAlerts, v))
}

// DeltaVsBaselineEQ applies the EQ predicate on the "delta_vs_baseline" field.
func DeltaVsBaselineEQ(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldDeltaVsBaseline, v))
}

// DeltaVsBaselineNEQ applies the NEQ predicate on the "delta_vs_baseline" field.
func DeltaVsBaselineNEQ(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldNEQ(FieldDeltaVsBaseline, v))
}

// DeltaVsBaselineIn applies the In predicate on the "delta_vs_baseline" field.
func DeltaVsBaselineIn(vs ...float64) predicate.Brief {
	return predicate.Brief(sql.FieldIn(FieldDeltaVsBaseline, vs...))
}

// DeltaVsBaselineNotIn applies the NotIn predicate on the "delta_vs_baseline" field.
func DeltaVsBaselineNotIn(vs ...float64) predicate.Brief {
	return predicate.Brief(sql.FieldNotIn(FieldDeltaVsBaseline, vs...))
}

// DeltaVsBaselineGT applies the GT predicate on the "delta_vs_baseline" field.
func DeltaVsBaselineGT(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldGT(FieldDeltaVsBaseline, v))
}

// DeltaVsBaselineGTE applies the GTE predicate on the "delta_vs_baseline" field.
func DeltaVsBaselineGTE(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldGTE(FieldDeltaVsBaseline, v))
}

// DeltaVsBaselineLT applies the LT predicate on the "delta_vs_baseline" field.
func DeltaVsBaselineLT(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldLT(FieldDeltaVsBaseline, v))
}

// DeltaVsBaselineLTE applies the LTE predicate on the "delta_vs_baseline" field.
func DeltaVsBaselineLTE(v float64) predicate.Brief {
	return predicate.Brief(sql.FieldLTE(FieldDeltaVsBaseline, v))
}

// DeltaVsBaselineIsNil applies the IsNil predicate on the "delta_vs_baseline" field.
func DeltaVsBaselineIsNil() predicate.Brief {
	return predicate.Brief(sql.FieldIsNull(FieldDeltaVsBaseline))
}

// DeltaVsBaselineNotNil applies the NotNil predicate on the "delta_vs_baseline" field.
func DeltaVsBaselineNotNil() predicate.Brief {
	return predicate.Brief(sql.FieldNotNull(FieldDeltaVsBaseline))
}

// ShareTokenEQ applies the EQ predicate on the "share_token" field.
func ShareTokenEQ(v string) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldShareToken, v))
}

// ShareTokenNEQ applies the NEQ predicate on the "share_token" field.
func ShareTokenNEQ(v string) predicate.Brief {
	return predicate.Brief(sql.FieldNEQ(FieldShareToken, v))
}

// ShareTokenIn applies the In predicate on the "share_token" field.
func ShareTokenIn(vs ...string) predicate.Brief {
	return predicate.Brief(sql.FieldIn(FieldShareToken, vs...))
}

// ShareTokenNotIn applies the NotIn predicate on the "share_token" field.
func ShareTokenNotIn(vs ...string) predicate.Brief {
	return predicate.Brief(sql.FieldNotIn(FieldShareToken, vs...))
}

// ShareTokenGT applies the GT predicate on the "share_token" field.
func ShareTokenGT(v string) predicate.Brief {
	return predicate.Brief(sql.FieldGT(FieldShareToken, v))
}

// ShareTokenGTE applies the GTE predicate on the "share_token" field.
func ShareTokenGTE(v string) predicate.Brief {
	return predicate.Brief(sql.FieldGTE(FieldShareToken, v))
}

// ShareTokenLT applies the LT predicate on the "share_token" field.
func ShareTokenLT(v string) predicate.Brief {
	return predicate.Brief(sql.FieldLT(FieldShareToken, v))
}

// ShareTokenLTE applies the LTE predicate on the "share_token" field.
func ShareTokenLTE(v string) predicate.Brief {
	return predicate.Brief(sql.FieldLTE(FieldShareToken, v))
}

// ShareTokenContains applies the Contains predicate on the "share_token" field.
func ShareTokenContains(v string) predicate.Brief {
	return predicate.Brief(sql.FieldContains(FieldShareToken, v))
}

// ShareTokenHasPrefix applies the HasPrefix predicate on the "share_token" field.
func ShareTokenHasPrefix(v string) predicate.Brief {
	return predicate.Brief(sql.FieldHasPrefix(FieldShareToken, v))
}

// ShareTokenHasSuffix applies the HasSuffix predicate on the "share_token" field.
func ShareTokenHasSuffix(v string) predicate.Brief {
	return predicate.Brief(sql.FieldHasSuffix(FieldShareToken, v))
}

// ShareTokenIsNil applies the IsNil predicate on the "share_token" field.
func ShareTokenIsNil() predicate.Brief {
	return predicate.Brief(sql.FieldIsNull(FieldShareToken))
}

// ShareTokenNotNil applies the NotNil predicate on the "share_token" field.
func ShareTokenNotNil() predicate.Brief {
	return predicate.Brief(sql.FieldNotNull(FieldShareToken))
}

// ShareTokenEqualFold applies the EqualFold predicate on the "share_token" field.
func ShareTokenEqualFold(v string) predicate.Brief {
	return predicate.Brief(sql.FieldEqualFold(FieldShareToken, v))
}

// ShareTokenContainsFold applies the ContainsFold predicate on the "share_token" field.
func ShareTokenContainsFold(v string) predicate.Brief {
	return predicate.Brief(sql.FieldContainsFold(FieldShareToken, v))
}

// ShareExpiresAtEQ applies the EQ predicate on the "share_expires_at" field.
func ShareExpiresAtEQ(v time.Time) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldShareExpiresAt, v))
}

// ShareExpiresAtNEQ applies the NEQ predicate on the "share_expires_at" field.
func ShareExpiresAtNEQ(v time.Time) predicate.Brief {
	return predicate.Brief(sql.FieldNEQ(FieldShareExpiresAt, v))
}

// ShareExpiresAtIn applies the In predicate on the "share_expires_at" field.
func ShareExpiresAtIn(vs ...time.Time) predicate.Brief {
	return predicate.Brief(sql.FieldIn(FieldShareExpiresAt, vs...))
}

// ShareExpiresAtNotIn applies the NotIn predicate on the "share_expires_at" field.
func ShareExpiresAtNotIn(vs ...time.Time) predicate.Brief {
	return predicate.Brief(sql.FieldNotIn(FieldShareExpiresAt, vs...))
}

// ShareExpiresAtGT applies the GT predicate on the "share_expires_at" field.
func ShareExpiresAtGT(v time.Time) predicate.Brief {
	return predicate.Brief(sql.FieldGT(FieldShareExpiresAt, v))
}

// ShareExpiresAtGTE applies the GTE predicate on the "share_expires_at" field.
func ShareExpiresAtGTE(v time.Time) predicate.Brief {
	return predicate.Brief(sql.FieldGTE(FieldShareExpiresAt, v))
}

// ShareExpiresAtLT applies the LT predicate on the "share_expires_at" field.
func ShareExpiresAtLT(v time.Time) predicate.Brief {
	return predicate.Brief(sql.FieldLT(FieldShareExpiresAt, v))
}

// ShareExpiresAtLTE applies the LTE predicate on the "share_expires_at" field.
func ShareExpiresAtLTE(v time.Time) predicate.Brief {
	return predicate.Brief(sql.FieldLTE(FieldShareExpiresAt, v))
}

// ShareExpiresAtIsNil applies the IsNil predicate on the "share_expires_at" field.
func ShareExpiresAtIsNil() predicate.Brief {
	return predicate.Brief(sql.FieldIsNull(FieldShareExpiresAt))
}

// ShareExpiresAtNotNil applies the NotNil predicate on the "share_expires_at" field.
func ShareExpiresAtNotNil() predicate.Brief {
	return predicate.Brief(sql.FieldNotNull(FieldShareExpiresAt))
}

// PdfKeyEQ applies the EQ predicate on the "pdf_key" field.
func PdfKeyEQ(v string) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldPdfKey, v))
}

// PdfKeyNEQ applies the NEQ predicate on the "pdf_key" field.
func PdfKeyNEQ(v string) predicate.Brief {
	return predicate.Brief(sql.FieldNEQ(FieldPdfKey, v))
}

// PdfKeyIn applies the In predicate on the "pdf_key" field.
func PdfKeyIn(vs ...string) predicate.Brief {
	return predicate.Brief(sql.FieldIn(FieldPdfKey, vs...))
}

// PdfKeyNotIn applies the NotIn predicate on the "pdf_key" field.
func PdfKeyNotIn(vs ...string) predicate.Brief {
	return predicate.Brief(sql.FieldNotIn(FieldPdfKey, vs...))
}

// PdfKeyGT applies the GT predicate on the "pdf_key" field.
func PdfKeyGT(v string) predicate.Brief {
	return predicate.Brief(sql.FieldGT(FieldPdfKey, v))
}

// PdfKeyGTE applies the GTE predicate on the "pdf_key" field.
func PdfKeyGTE(v string) predicate.Brief {
	return predicate.Brief(sql.FieldGTE(FieldPdfKey, v))
}

// PdfKeyLT applies the LT predicate on the "pdf_key" field.
func PdfKeyLT(v string) predicate.Brief {
	return predicate.Brief(sql.FieldLT(FieldPdfKey, v))
}

// PdfKeyLTE applies the LTE predicate on the "pdf_key" field.
func PdfKeyLTE(v string) predicate.Brief {
	return predicate.Brief(sql.FieldLTE(FieldPdfKey, v))
}

// PdfKeyContains applies the Contains predicate on the "pdf_key" field.
func PdfKeyContains(v string) predicate.Brief {
	return predicate.Brief(sql.FieldContains(FieldPdfKey, v))
}

// PdfKeyHasPrefix applies the HasPrefix predicate on the "pdf_key" field.
func PdfKeyHasPrefix(v string) predicate.Brief {
	return predicate.Brief(sql.FieldHasPrefix(FieldPdfKey, v))
}

// PdfKeyHasSuffix applies the HasSuffix predicate on the "pdf_key" field.
func PdfKeyHasSuffix(v string) predicate.Brief {
	return predicate.Brief(sql.FieldHasSuffix(FieldPdfKey, v))
}

// PdfKeyIsNil applies the IsNil predicate on the "pdf_key" field.
func PdfKeyIsNil() predicate.Brief {
	return predicate.Brief(sql.FieldIsNull(FieldPdfKey))
}

// PdfKeyNotNil applies the NotNil predicate on the "pdf_key" field.
func PdfKeyNotNil() predicate.Brief {
	return predicate.Brief(sql.FieldNotNull(FieldPdfKey))
}

// PdfKeyEqualFold applies the EqualFold predicate on the "pdf_key" field.
func PdfKeyEqualFold(v string) predicate.Brief {
	return predicate.Brief(sql.FieldEqualFold(FieldPdfKey, v))
}

// PdfKeyContainsFold applies the ContainsFold predicate on the "pdf_key" field.
func PdfKeyContainsFold(v string) predicate.Brief {
	return predicate.Brief(sql.FieldContainsFold(FieldPdfKey, v))
}

// CoachAudioKeyEQ applies the EQ predicate on the "coach_audio_key" field.
func CoachAudioKeyEQ(v string) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldCoachAudioKey, v))
}

// CoachAudioKeyNEQ applies the NEQ predicate on the "coach_audio_key" field.
func CoachAudioKeyNEQ(v string) predicate.Brief {
	return predicate.Brief(sql.FieldNEQ(FieldCoachAudioKey, v))
}

// CoachAudioKeyIn applies the In predicate on the "coach_audio_key" field.
func CoachAudioKeyIn(vs ...string) predicate.Brief {
	return predicate.Brief(sql.FieldIn(FieldCoachAudioKey, vs...))
}

// CoachAudioKeyNotIn applies the NotIn predicate on the "coach_audio_key" field.
func CoachAudioKeyNotIn(vs ...string) predicate.Brief {
	return predicate.Brief(sql.FieldNotIn(FieldCoachAudioKey, vs...))
}

// CoachAudioKeyGT applies the GT predicate on the "coach_audio_key" field.
func CoachAudioKeyGT(v string) predicate.Brief {
	return predicate.Brief(sql.FieldGT(FieldCoachAudioKey, v))
}

// CoachAudioKeyGTE applies the GTE predicate on the "coach_audio_key" field.
func CoachAudioKeyGTE(v string) predicate.Brief {
	return predicate.Brief(sql.FieldGTE(FieldCoachAudioKey, v))
}

// CoachAudioKeyLT applies the LT predicate on the "coach_audio_key" field.
func CoachAudioKeyLT(v string) predicate.Brief {
	return predicate.Brief(sql.FieldLT(FieldCoachAudioKey, v))
}

// CoachAudioKeyLTE applies the LTE predicate on the "coach_audio_key" field.
func CoachAudioKeyLTE(v string) predicate.Brief {
	return predicate.Brief(sql.FieldLTE(FieldCoachAudioKey, v))
}

// CoachAudioKeyContains applies the Contains predicate on the "coach_audio_key" field.
func CoachAudioKeyContains(v string) predicate.Brief {
	return predicate.Brief(sql.FieldContains(FieldCoachAudioKey, v))
}

// CoachAudioKeyHasPrefix applies the HasPrefix predicate on the "coach_audio_key" field.
func CoachAudioKeyHasPrefix(v string) predicate.Brief {
	return predicate.Brief(sql.FieldHasPrefix(FieldCoachAudioKey, v))
}

// CoachAudioKeyHasSuffix applies the HasSuffix predicate on the "coach_audio_key" field.
func CoachAudioKeyHasSuffix(v string) predicate.Brief {
	return predicate.Brief(sql.FieldHasSuffix(FieldCoachAudioKey, v))
}

// CoachAudioKeyIsNil applies the IsNil predicate on the "coach_audio_key" field.
func CoachAudioKeyIsNil() predicate.Brief {
	return predicate.Brief(sql.FieldIsNull(FieldCoachAudioKey))
}

// CoachAudioKeyNotNil applies the NotNil predicate on the "coach_audio_key" field.
func CoachAudioKeyNotNil() predicate.Brief {
	return predicate.Brief(sql.FieldNotNull(FieldCoachAudioKey))
}

// CoachAudioKeyEqualFold applies the EqualFold predicate on the "coach_audio_key" field.
func CoachAudioKeyEqualFold(v string) predicate.Brief {
	return predicate.Brief(sql.FieldEqualFold(FieldCoachAudioKey, v))
}

// CoachAudioKeyContainsFold applies the ContainsFold predicate on the "coach_audio_key" field.
func CoachAudioKeyContainsFold(v string) predicate.Brief {
	return predicate.Brief(sql.FieldContainsFold(FieldCoachAudioKey, v))
}

// GeneratedByEQ applies the EQ predicate on the "generated_by" field.
func GeneratedByEQ(v GeneratedBy) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldGeneratedBy, v))
}

// GeneratedByNEQ applies the NEQ predicate on the "generated_by" field.
func GeneratedByNEQ(v GeneratedBy) predicate.Brief {
	return predicate.Brief(sql.FieldNEQ(FieldGeneratedBy, v))
}

// GeneratedByIn applies the In predicate on the "generated_by" field.
func GeneratedByIn(vs ...GeneratedBy) predicate.Brief {
	return predicate.Brief(sql.FieldIn(FieldGeneratedBy, vs...))
}

// GeneratedByNotIn applies the NotIn predicate on the "generated_by" field.
func GeneratedByNotIn(vs ...GeneratedBy) predicate.Brief {
	return predicate.Brief(sql.FieldNotIn(FieldGeneratedBy, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Brief {
	return predicate.Brief(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Brief {
	return predicate.Brief(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Brief {
	return predicate.Brief(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Brief {
	return predicate.Brief(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Brief {
	return predicate.Brief(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Brief {
	return predicate.Brief(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Brief {
	return predicate.Brief(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Brief {
	return predicate.Brief(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Brief {
	return predicate.Brief(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.Brief {
	return predicate.Brief(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Brief) predicate.Brief {
	return predicate.Brief(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Brief) predicate.Brief {
	return predicate.Brief(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Brief) predicate.Brief {
	return predicate.Brief(sql.NotPredicates(p))
}
