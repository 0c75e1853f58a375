// Code generated by ent, DO NOT EDIT.

package alert

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/verdictlabs/verdict/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Alert {
	return predicate.Alert(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Alert {
	return predicate.Alert(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldSessionID, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldConfidence, v))
}

// PriorQuote applies equality check predicate on the "prior_quote" field. It's identical to PriorQuoteEQ.
func PriorQuote(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldPriorQuote, v))
}

// PriorSourcePage applies equality check predicate on the "prior_source_page" field. It's identical to PriorSourcePageEQ.
func PriorSourcePage(v int) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldPriorSourcePage, v))
}

// PriorSourceLine applies equality check predicate on the "prior_source_line" field. It's identical to PriorSourceLineEQ.
func PriorSourceLine(v int) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldPriorSourceLine, v))
}

// CurrentQuote applies equality check predicate on the "current_quote" field. It's identical to CurrentQuoteEQ.
func CurrentQuote(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldCurrentQuote, v))
}

// FreRule applies equality check predicate on the "fre_rule" field. It's identical to FreRuleEQ.
func FreRule(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldFreRule, v))
}

// FreClassification applies equality check predicate on the "fre_classification" field. It's identical to FreClassificationEQ.
func FreClassification(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldFreClassification, v))
}

// QuestionNumber applies equality check predicate on the "question_number" field. It's identical to QuestionNumberEQ.
func QuestionNumber(v int) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldQuestionNumber, v))
}

// ConfirmedAt applies equality check predicate on the "confirmed_at" field. It's identical to ConfirmedAtEQ.
func ConfirmedAt(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldConfirmedAt, v))
}

// RejectedAt applies equality check predicate on the "rejected_at" field. It's identical to RejectedAtEQ.
func RejectedAt(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldRejectedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContainsFold(FieldSessionID, v))
}

// AlertTypeEQ applies the EQ predicate on the "alert_type" field.
func AlertTypeEQ(v AlertType) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldAlertType, v))
}

// AlertTypeNEQ applies the NEQ predicate on the "alert_type" field.
func AlertTypeNEQ(v AlertType) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldAlertType, v))
}

// AlertTypeIn applies the In predicate on the "alert_type" field.
func AlertTypeIn(vs ...AlertType) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldAlertType, vs...))
}

// AlertTypeNotIn applies the NotIn predicate on the "alert_type" field.
func AlertTypeNotIn(vs ...AlertType) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldAlertType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldStatus, vs...))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldConfidence, v))
}

// ImpeachmentRiskEQ applies the EQ predicate on the "impeachment_risk" field.
func ImpeachmentRiskEQ(v ImpeachmentRisk) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldImpeachmentRisk, v))
}

// ImpeachmentRiskNEQ applies the NEQ predicate on the "impeachment_risk" field.
func ImpeachmentRiskNEQ(v ImpeachmentRisk) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldImpeachmentRisk, v))
}

// ImpeachmentRiskIn applies the In predicate on the "impeachment_risk" field.
func ImpeachmentRiskIn(vs ...ImpeachmentRisk) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldImpeachmentRisk, vs...))
}

// ImpeachmentRiskNotIn applies the NotIn predicate on the "impeachment_risk" field.
func ImpeachmentRiskNotIn(vs ...ImpeachmentRisk) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldImpeachmentRisk, vs...))
}

// ImpeachmentRiskIsNil applies the IsNil predicate on the "impeachment_risk" field.
func ImpeachmentRiskIsNil() predicate.Alert {
	return predicate.Alert(sql.FieldIsNull(FieldImpeachmentRisk))
}

// ImpeachmentRiskNotNil applies the NotNil predicate on the "impeachment_risk" field.
func ImpeachmentRiskNotNil() predicate.Alert {
	return predicate.Alert(sql.FieldNotNull(FieldImpeachmentRisk))
}

// PriorQuoteEQ applies the EQ predicate on the "prior_quote" field.
func PriorQuoteEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldPriorQuote, v))
}

// PriorQuoteNEQ applies the NEQ predicate on the "prior_quote" field.
func PriorQuoteNEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldPriorQuote, v))
}

// PriorQuoteIn applies the In predicate on the "prior_quote" field.
func PriorQuoteIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldPriorQuote, vs...))
}

// PriorQuoteNotIn applies the NotIn predicate on the "prior_quote" field.
func PriorQuoteNotIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldPriorQuote, vs...))
}

// PriorQuoteGT applies the GT predicate on the "prior_quote" field.
func PriorQuoteGT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldPriorQuote, v))
}

// PriorQuoteGTE applies the GTE predicate on the "prior_quote" field.
func PriorQuoteGTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldPriorQuote, v))
}

// PriorQuoteLT applies the LT predicate on the "prior_quote" field.
func PriorQuoteLT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldPriorQuote, v))
}

// PriorQuoteLTE applies the LTE predicate on the "prior_quote" field.
func PriorQuoteLTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldPriorQuote, v))
}

// PriorQuoteContains applies the Contains predicate on the "prior_quote" field.
func PriorQuoteContains(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContains(FieldPriorQuote, v))
}

// PriorQuoteHasPrefix applies the HasPrefix predicate on the "prior_quote" field.
func PriorQuoteHasPrefix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasPrefix(FieldPriorQuote, v))
}

// PriorQuoteHasSuffix applies the HasSuffix predicate on the "prior_quote" field.
func PriorQuoteHasSuffix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasSuffix(FieldPriorQuote, v))
}

// PriorQuoteIsNil applies the IsNil predicate on the "prior_quote" field.
func PriorQuoteIsNil() predicate.Alert {
	return predicate.Alert(sql.FieldIsNull(FieldPriorQuote))
}

// PriorQuoteNotNil applies the NotNil predicate on the "prior_quote" field.
func PriorQuoteNotNil() predicate.Alert {
	return predicate.Alert(sql.FieldNotNull(FieldPriorQuote))
}

// PriorQuoteEqualFold applies the EqualFold predicate on the "prior_quote" field.
func PriorQuoteEqualFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEqualFold(FieldPriorQuote, v))
}

// PriorQuoteContainsFold applies the ContainsFold predicate on the "prior_quote" field.
func PriorQuoteContainsFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContainsFold(FieldPriorQuote, v))
}

// PriorSourcePageEQ applies the EQ predicate on the "prior_source_page" field.
func PriorSourcePageEQ(v int) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldPriorSourcePage, v))
}

// PriorSourcePageNEQ applies the NEQ predicate on the "prior_source_page" field.
func PriorSourcePageNEQ(v int) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldPriorSourcePage, v))
}

// PriorSourcePageIn applies the In predicate on the "prior_source_page" field.
func PriorSourcePageIn(vs ...int) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldPriorSourcePage, vs...))
}

// PriorSourcePageNotIn applies the NotIn predicate on the "prior_source_page" field.
func PriorSourcePageNotIn(vs ...int) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldPriorSourcePage, vs...))
}

// PriorSourcePageGT applies the GT predicate on the "prior_source_page" field.
func PriorSourcePageGT(v int) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldPriorSourcePage, v))
}

// PriorSourcePageGTE applies the GTE predicate on the "prior_source_page" field.
func PriorSourcePageGTE(v int) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldPriorSourcePage, v))
}

// PriorSourcePageLT applies the LT predicate on the "prior_source_page" field.
func PriorSourcePageLT(v int) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldPriorSourcePage, v))
}

// PriorSourcePageLTE applies the LTE predicate on the "prior_source_page" field.
func PriorSourcePageLTE(v int) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldPriorSourcePage, v))
}

// PriorSourcePageIsNil applies the IsNil predicate on the "prior_source_page" field.
func PriorSourcePageIsNil() predicate.Alert {
	return predicate.Alert(sql.FieldIsNull(FieldPriorSourcePage))
}

// PriorSourcePageNotNil applies the NotNil predicate on the "prior_source_page" field.
func PriorSourcePageNotNil() predicate.Alert {
	return predicate.Alert(sql.FieldNotNull(FieldPriorSourcePage))
}

// PriorSourceLineEQ applies the EQ predicate on the "prior_source_line" field.
func PriorSourceLineEQ(v int) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldPriorSourceLine, v))
}

// PriorSourceLineNEQ applies the NEQ predicate on the "prior_source_line" field.
func PriorSourceLineNEQ(v int) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldPriorSourceLine, v))
}

// PriorSourceLineIn applies the In predicate on the "prior_source_line" field.
func PriorSourceLineIn(vs ...int) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldPriorSourceLine, vs...))
}

// PriorSourceLineNotIn applies the NotIn predicate on the "prior_source_line" field.
func PriorSourceLineNotIn(vs ...int) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldPriorSourceLine, vs...))
}

// PriorSourceLineGT applies the GT predicate on the "prior_source_line" field.
func PriorSourceLineGT(v int) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldPriorSourceLine, v))
}

// PriorSourceLineGTE applies the GTE predicate on the "prior_source_line" field.
func PriorSourceLineGTE(v int) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldPriorSourceLine, v))
}

// PriorSourceLineLT applies the LT predicate on the "prior_source_line" field.
func PriorSourceLineLT(v int) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldPriorSourceLine, v))
}

// PriorSourceLineLTE applies the LTE predicate on the "prior_source_line" field.
func PriorSourceLineLTE(v int) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldPriorSourceLine, v))
}

// PriorSourceLineIsNil applies the IsNil predicate on the "prior_source_line" field.
func PriorSourceLineIsNil() predicate.Alert {
	return predicate.Alert(sql.FieldIsNull(FieldPriorSourceLine))
}

// PriorSourceLineNotNil applies the NotNil predicate on the "prior_source_line" field.
func PriorSourceLineNotNil() predicate.Alert {
	return predicate.Alert(sql.FieldNotNull(FieldPriorSourceLine))
}

// CurrentQuoteEQ applies the EQ predicate on the "current_quote" field.
func CurrentQuoteEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldCurrentQuote, v))
}

// CurrentQuoteNEQ applies the NEQ predicate on the "current_quote" field.
func CurrentQuoteNEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldCurrentQuote, v))
}

// CurrentQuoteIn applies the In predicate on the "current_quote" field.
func CurrentQuoteIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldCurrentQuote, vs...))
}

// CurrentQuoteNotIn applies the NotIn predicate on the "current_quote" field.
func CurrentQuoteNotIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldCurrentQuote, vs...))
}

// CurrentQuoteGT applies the GT predicate on the "current_quote" field.
func CurrentQuoteGT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldCurrentQuote, v))
}

// CurrentQuoteGTE applies the GTE predicate on the "current_quote" field.
func CurrentQuoteGTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldCurrentQuote, v))
}

// CurrentQuoteLT applies the LT predicate on the "current_quote" field.
func CurrentQuoteLT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldCurrentQuote, v))
}

// CurrentQuoteLTE applies the LTE predicate on the "current_quote" field.
func CurrentQuoteLTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldCurrentQuote, v))
}

// CurrentQuoteContains applies the Contains predicate on the "current_quote" field.
func CurrentQuoteContains(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContains(FieldCurrentQuote, v))
}

// CurrentQuoteHasPrefix applies the HasPrefix predicate on the "current_quote" field.
func CurrentQuoteHasPrefix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasPrefix(FieldCurrentQuote, v))
}

// CurrentQuoteHasSuffix applies the HasSuffix predicate on the "current_quote" field.
func CurrentQuoteHasSuffix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasSuffix(FieldCurrentQuote, v))
}

// CurrentQuoteIsNil applies the IsNil predicate on the "current_quote" field.
func CurrentQuoteIsNil() predicate.Alert {
	return predicate.Alert(sql.FieldIsNull(FieldCurrentQuote))
}

// CurrentQuoteNotNil applies the NotNil predicate on the "current_quote" field.
func CurrentQuoteNotNil() predicate.Alert {
	return predicate.Alert(sql.FieldNotNull(FieldCurrentQuote))
}

// CurrentQuoteEqualFold applies the EqualFold predicate on the "current_quote" field.
func CurrentQuoteEqualFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEqualFold(FieldCurrentQuote, v))
}

// CurrentQuoteContainsFold applies the ContainsFold predicate on the "current_quote" field.
func CurrentQuoteContainsFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContainsFold(FieldCurrentQuote, v))
}

// FreRuleEQ applies the EQ predicate on the "fre_rule" field.
func FreRuleEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldFreRule, v))
}

// FreRuleNEQ applies the NEQ predicate on the "fre_rule" field.
func FreRuleNEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldFreRule, v))
}

// FreRuleIn applies the In predicate on the "fre_rule" field.
func FreRuleIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldFreRule, vs...))
}

// FreRuleNotIn applies the NotIn predicate on the "fre_rule" field.
func FreRuleNotIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldFreRule, vs...))
}

// FreRuleGT applies the GT predicate on the "fre_rule" field.
func FreRuleGT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldFreRule, v))
}

// FreRuleGTE applies the GTE predicate on the "fre_rule" field.
func FreRuleGTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldFreRule, v))
}

// FreRuleLT applies the LT predicate on the "fre_rule" field.
func FreRuleLT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldFreRule, v))
}

// FreRuleLTE applies the LTE predicate on the "fre_rule" field.
func FreRuleLTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldFreRule, v))
}

// FreRuleContains applies the Contains predicate on the "fre_rule" field.
func FreRuleContains(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContains(FieldFreRule, v))
}

// FreRuleHasPrefix applies the HasPrefix predicate on the "fre_rule" field.
func FreRuleHasPrefix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasPrefix(FieldFreRule, v))
}

// FreRuleHasSuffix applies the HasSuffix predicate on the "fre_rule" field.
func FreRuleHasSuffix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasSuffix(FieldFreRule, v))
}

// FreRuleIsNil applies the IsNil predicate on the "fre_rule" field.
func FreRuleIsNil() predicate.Alert {
	return predicate.Alert(sql.FieldIsNull(FieldFreRule))
}

// FreRuleNotNil applies the NotNil predicate on the "fre_rule" field.
func FreRuleNotNil() predicate.Alert {
	return predicate.Alert(sql.FieldNotNull(FieldFreRule))
}

// FreRuleEqualFold applies the EqualFold predicate on the "fre_rule" field.
func FreRuleEqualFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEqualFold(FieldFreRule, v))
}

// FreRuleContainsFold applies the ContainsFold predicate on the "fre_rule" field.
func FreRuleContainsFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContainsFold(FieldFreRule, v))
}

// FreClassificationEQ applies the EQ predicate on the "fre_classification" field.
func FreClassificationEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldFreClassification, v))
}

// FreClassificationNEQ applies the NEQ predicate on the "fre_classification" field.
func FreClassificationNEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldFreClassification, v))
}

// FreClassificationIn applies the In predicate on the "fre_classification" field.
func FreClassificationIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldFreClassification, vs...))
}

// FreClassificationNotIn applies the NotIn predicate on the "fre_classification" field.
func FreClassificationNotIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldFreClassification, vs...))
}

// FreClassificationGT applies the GT predicate on the "fre_classification" field.
func FreClassificationGT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldFreClassification, v))
}

// FreClassificationGTE applies the GTE predicate on the "fre_classification" field.
func FreClassificationGTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldFreClassification, v))
}

// FreClassificationLT applies the LT predicate on the "fre_classification" field.
func FreClassificationLT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldFreClassification, v))
}

// FreClassificationLTE applies the LTE predicate on the "fre_classification" field.
func FreClassificationLTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldFreClassification, v))
}

// FreClassificationContains applies the Contains predicate on the "fre_classification" field.
func FreClassificationContains(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContains(FieldFreClassification, v))
}

// FreClassificationHasPrefix applies the HasPrefix predicate on the "fre_classification" field.
func FreClassificationHasPrefix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasPrefix(FieldFreClassification, v))
}

// FreClassificationHasSuffix applies the HasSuffix predicate on the "fre_classification" field.
func FreClassificationHasSuffix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasSuffix(FieldFreClassification, v))
}

// FreClassificationIsNil applies the IsNil predicate on the "fre_classification" field.
func FreClassificationIsNil() predicate.Alert {
	return predicate.Alert(sql.FieldIsNull(FieldFreClassification))
}

// FreClassificationNotNil applies the NotNil predicate on the "fre_classification" field.
func FreClassificationNotNil() predicate.Alert {
	return predicate.Alert(sql.FieldNotNull(FieldFreClassification))
}

// FreClassificationEqualFold applies the EqualFold predicate on the "fre_classification" field.
func FreClassificationEqualFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEqualFold(FieldFreClassification, v))
}

// FreClassificationContainsFold applies the ContainsFold predicate on the "fre_classification" field.
func FreClassificationContainsFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContainsFold(FieldFreClassification, v))
}

// QuestionNumberEQ applies the EQ predicate on the "question_number" field.
func QuestionNumberEQ(v int) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldQuestionNumber, v))
}

// QuestionNumberNEQ applies the NEQ predicate on the "question_number" field.
func QuestionNumberNEQ(v int) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldQuestionNumber, v))
}

// QuestionNumberIn applies the In predicate on the "question_number" field.
func QuestionNumberIn(vs ...int) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldQuestionNumber, vs...))
}

// QuestionNumberNotIn applies the NotIn predicate on the "question_number" field.
func QuestionNumberNotIn(vs ...int) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldQuestionNumber, vs...))
}

// QuestionNumberGT applies the GT predicate on the "question_number" field.
func QuestionNumberGT(v int) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldQuestionNumber, v))
}

// QuestionNumberGTE applies the GTE predicate on the "question_number" field.
func QuestionNumberGTE(v int) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldQuestionNumber, v))
}

// QuestionNumberLT applies the LT predicate on the "question_number" field.
func QuestionNumberLT(v int) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldQuestionNumber, v))
}

// QuestionNumberLTE applies the LTE predicate on the "question_number" field.
func QuestionNumberLTE(v int) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldQuestionNumber, v))
}

// QuestionNumberIsNil applies the IsNil predicate on the "question_number" field.
func QuestionNumberIsNil() predicate.Alert {
	return predicate.Alert(sql.FieldIsNull(FieldQuestionNumber))
}

// QuestionNumberNotNil applies the NotNil predicate on the "question_number" field.
func QuestionNumberNotNil() predicate.Alert {
	return predicate.Alert(sql.FieldNotNull(FieldQuestionNumber))
}

// ConfirmedAtEQ applies the EQ predicate on the "confirmed_at" field.
func ConfirmedAtEQ(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldConfirmedAt, v))
}

// ConfirmedAtNEQ applies the NEQ predicate on the "confirmed_at" field.
func ConfirmedAtNEQ(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldConfirmedAt, v))
}

// ConfirmedAtIn applies the In predicate on the "confirmed_at" field.
func ConfirmedAtIn(vs ...time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldConfirmedAt, vs...))
}

// ConfirmedAtNotIn applies the NotIn predicate on the "confirmed_at" field.
func ConfirmedAtNotIn(vs ...time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldConfirmedAt, vs...))
}

// ConfirmedAtGT applies the GT predicate on the "confirmed_at" field.
func ConfirmedAtGT(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldConfirmedAt, v))
}

// ConfirmedAtGTE applies the GTE predicate on the "confirmed_at" field.
func ConfirmedAtGTE(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldConfirmedAt, v))
}

// ConfirmedAtLT applies the LT predicate on the "confirmed_at" field.
func ConfirmedAtLT(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldConfirmedAt, v))
}

// ConfirmedAtLTE applies the LTE predicate on the "confirmed_at" field.
func ConfirmedAtLTE(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldConfirmedAt, v))
}

// ConfirmedAtIsNil applies the IsNil predicate on the "confirmed_at" field.
func ConfirmedAtIsNil() predicate.Alert {
	return predicate.Alert(sql.FieldIsNull(FieldConfirmedAt))
}

// ConfirmedAtNotNil applies the NotNil predicate on the "confirmed_at" field.
func ConfirmedAtNotNil() predicate.Alert {
	return predicate.Alert(sql.FieldNotNull(FieldConfirmedAt))
}

// RejectedAtEQ applies the EQ predicate on the "rejected_at" field.
func RejectedAtEQ(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldRejectedAt, v))
}

// RejectedAtNEQ applies the NEQ predicate on the "rejected_at" field.
func RejectedAtNEQ(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldRejectedAt, v))
}

// RejectedAtIn applies the In predicate on the "rejected_at" field.
func RejectedAtIn(vs ...time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldRejectedAt, vs...))
}

// RejectedAtNotIn applies the NotIn predicate on the "rejected_at" field.
func RejectedAtNotIn(vs ...time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldRejectedAt, vs...))
}

// RejectedAtGT applies the GT predicate on the "rejected_at" field.
func RejectedAtGT(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldRejectedAt, v))
}

// RejectedAtGTE applies the GTE predicate on the "rejected_at" field.
func RejectedAtGTE(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldRejectedAt, v))
}

// RejectedAtLT applies the LT predicate on the "rejected_at" field.
func RejectedAtLT(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldRejectedAt, v))
}

// RejectedAtLTE applies the LTE predicate on the "rejected_at" field.
func RejectedAtLTE(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldRejectedAt, v))
}

// RejectedAtIsNil applies the IsNil predicate on the "rejected_at" field.
func RejectedAtIsNil() predicate.Alert {
	return predicate.Alert(sql.FieldIsNull(FieldRejectedAt))
}

// RejectedAtNotNil applies the NotNil predicate on the "rejected_at" field.
func RejectedAtNotNil() predicate.Alert {
	return predicate.Alert(sql.FieldNotNull(FieldRejectedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Alert {
	return predicate.Alert(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.Alert {
	return predicate.Alert(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Alert) predicate.Alert {
	return predicate.Alert(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Alert) predicate.Alert {
	return predicate.Alert(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Alert) predicate.Alert {
	return predicate.Alert(sql.NotPredicates(p))
}
