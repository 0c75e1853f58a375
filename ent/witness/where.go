// Code generated by ent, DO NOT EDIT.

package witness

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/verdictlabs/verdict/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Witness {
	return predicate.Witness(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Witness {
	return predicate.Witness(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Witness {
	return predicate.Witness(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Witness {
	return predicate.Witness(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Witness {
	return predicate.Witness(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Witness {
	return predicate.Witness(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Witness {
	return predicate.Witness(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Witness {
	return predicate.Witness(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Witness {
	return predicate.Witness(sql.FieldContainsFold(FieldID, id))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldCaseID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldEmail, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldRole, v))
}

// SessionCount applies equality check predicate on the "session_count" field. It's identical to SessionCountEQ.
func SessionCount(v int) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldSessionCount, v))
}

// LatestScore applies equality check predicate on the "latest_score" field. It's identical to LatestScoreEQ.
func LatestScore(v float64) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldLatestScore, v))
}

// BaselineScore applies equality check predicate on the "baseline_score" field. It's identical to BaselineScoreEQ.
func BaselineScore(v float64) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldBaselineScore, v))
}

// PlateauDetected applies equality check predicate on the "plateau_detected" field. It's identical to PlateauDetectedEQ.
func PlateauDetected(v bool) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldPlateauDetected, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldCreatedAt, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.Witness {
	return predicate.Witness(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.Witness {
	return predicate.Witness(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.Witness {
	return predicate.Witness(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.Witness {
	return predicate.Witness(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.Witness {
	return predicate.Witness(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.Witness {
	return predicate.Witness(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.Witness {
	return predicate.Witness(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.Witness {
	return predicate.Witness(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.Witness {
	return predicate.Witness(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.Witness {
	return predicate.Witness(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.Witness {
	return predicate.Witness(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.Witness {
	return predicate.Witness(sql.FieldContainsFold(FieldCaseID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Witness {
	return predicate.Witness(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Witness {
	return predicate.Witness(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Witness {
	return predicate.Witness(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Witness {
	return predicate.Witness(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Witness {
	return predicate.Witness(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Witness {
	return predicate.Witness(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Witness {
	return predicate.Witness(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Witness {
	return predicate.Witness(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Witness {
	return predicate.Witness(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Witness {
	return predicate.Witness(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Witness {
	return predicate.Witness(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Witness {
	return predicate.Witness(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Witness {
	return predicate.Witness(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Witness {
	return predicate.Witness(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Witness {
	return predicate.Witness(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Witness {
	return predicate.Witness(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Witness {
	return predicate.Witness(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Witness {
	return predicate.Witness(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Witness {
	return predicate.Witness(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Witness {
	return predicate.Witness(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Witness {
	return predicate.Witness(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Witness {
	return predicate.Witness(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Witness {
	return predicate.Witness(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Witness {
	return predicate.Witness(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Witness {
	return predicate.Witness(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Witness {
	return predicate.Witness(sql.FieldContainsFold(FieldEmail, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.Witness {
	return predicate.Witness(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.Witness {
	return predicate.Witness(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.Witness {
	return predicate.Witness(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.Witness {
	return predicate.Witness(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.Witness {
	return predicate.Witness(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.Witness {
	return predicate.Witness(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.Witness {
	return predicate.Witness(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.Witness {
	return predicate.Witness(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.Witness {
	return predicate.Witness(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.Witness {
	return predicate.Witness(sql.FieldHasSuffix(FieldRole, v))
}

// RoleIsNil applies the IsNil predicate on the "role" field.
func RoleIsNil() predicate.Witness {
	return predicate.Witness(sql.FieldIsNull(FieldRole))
}

// RoleNotNil applies the NotNil predicate on the "role" field.
func RoleNotNil() predicate.Witness {
	return predicate.Witness(sql.FieldNotNull(FieldRole))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.Witness {
	return predicate.Witness(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.Witness {
	return predicate.Witness(sql.FieldContainsFold(FieldRole, v))
}

// SessionCountEQ applies the EQ predicate on the "session_count" field.
func SessionCountEQ(v int) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldSessionCount, v))
}

// SessionCountNEQ applies the NEQ predicate on the "session_count" field.
func SessionCountNEQ(v int) predicate.Witness {
	return predicate.Witness(sql.FieldNEQ(FieldSessionCount, v))
}

// SessionCountIn applies the In predicate on the "session_count" field.
func SessionCountIn(vs ...int) predicate.Witness {
	return predicate.Witness(sql.FieldIn(FieldSessionCount, vs...))
}

// SessionCountNotIn applies the NotIn predicate on the "session_count" field.
func SessionCountNotIn(vs ...int) predicate.Witness {
	return predicate.Witness(sql.FieldNotIn(FieldSessionCount, vs...))
}

// SessionCountGT applies the GT predicate on the "session_count" field.
func SessionCountGT(v int) predicate.Witness {
	return predicate.Witness(sql.FieldGT(FieldSessionCount, v))
}

// SessionCountGTE applies the GTE predicate on the "session_count" field.
func SessionCountGTE(v int) predicate.Witness {
	return predicate.Witness(sql.FieldGTE(FieldSessionCount, v))
}

// SessionCountLT applies the LT predicate on the "session_count" field.
func SessionCountLT(v int) predicate.Witness {
	return predicate.Witness(sql.FieldLT(FieldSessionCount, v))
}

// SessionCountLTE applies the LTE predicate on the "session_count" field.
func SessionCountLTE(v int) predicate.Witness {
	return predicate.Witness(sql.FieldLTE(FieldSessionCount, v))
}

// LatestScoreEQ applies the EQ predicate on the "latest_score" field.
func LatestScoreEQ(v float64) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldLatestScore, v))
}

// LatestScoreNEQ applies the NEQ predicate on the "latest_score" field.
func LatestScoreNEQ(v float64) predicate.Witness {
	return predicate.Witness(sql.FieldNEQ(FieldLatestScore, v))
}

// LatestScoreIn applies the In predicate on the "latest_score" field.
func LatestScoreIn(vs ...float64) predicate.Witness {
	return predicate.Witness(sql.FieldIn(FieldLatestScore, vs...))
}

// LatestScoreNotIn applies the NotIn predicate on the "latest_score" field.
func LatestScoreNotIn(vs ...float64) predicate.Witness {
	return predicate.Witness(sql.FieldNotIn(FieldLatestScore, vs...))
}

// LatestScoreGT applies the GT predicate on the "latest_score" field.
func LatestScoreGT(v float64) predicate.Witness {
	return predicate.Witness(sql.FieldGT(FieldLatestScore, v))
}

// LatestScoreGTE applies the GTE predicate on the "latest_score" field.
func LatestScoreGTE(v float64) predicate.Witness {
	return predicate.Witness(sql.FieldGTE(FieldLatestScore, v))
}

// LatestScoreLT applies the LT predicate on the "latest_score" field.
func LatestScoreLT(v float64) predicate.Witness {
	return predicate.Witness(sql.FieldLT(FieldLatestScore, v))
}

// LatestScoreLTE applies the LTE predicate on the "latest_score" field.
func LatestScoreLTE(v float64) predicate.Witness {
	return predicate.Witness(sql.FieldLTE(FieldLatestScore, v))
}

// LatestScoreIsNil applies the IsNil predicate on the "latest_score" field.
func LatestScoreIsNil() predicate.Witness {
	return predicate.Witness(sql.FieldIsNull(FieldLatestScore))
}

// LatestScoreNotNil applies the NotNil predicate on the "latest_score" field.
func LatestScoreNotNil() predicate.Witness {
	return predicate.Witness(sql.FieldNotNull(FieldLatestScore))
}

// BaselineScoreEQ applies the EQ predicate on the "baseline_score" field.
func BaselineScoreEQ(v float64) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldBaselineScore, v))
}

// BaselineScoreNEQ applies the NEQ predicate on the "baseline_score" field.
func BaselineScoreNEQ(v float64) predicate.Witness {
	return predicate.Witness(sql.FieldNEQ(FieldBaselineScore, v))
}

// BaselineScoreIn applies the In predicate on the "baseline_score" field.
func BaselineScoreIn(vs ...float64) predicate.Witness {
	return predicate.Witness(sql.FieldIn(FieldBaselineScore, vs...))
}

// BaselineScoreNotIn applies the NotIn predicate on the "baseline_score" field.
func BaselineScoreNotIn(vs ...float64) predicate.Witness {
	return predicate.Witness(sql.FieldNotIn(FieldBaselineScore, vs...))
}

// BaselineScoreGT applies the GT predicate on the "baseline_score" field.
func BaselineScoreGT(v float64) predicate.Witness {
	return predicate.Witness(sql.FieldGT(FieldBaselineScore, v))
}

// BaselineScoreGTE applies the GTE predicate on the "baseline_score" field.
func BaselineScoreGTE(v float64) predicate.Witness {
	return predicate.Witness(sql.FieldGTE(FieldBaselineScore, v))
}

// BaselineScoreLT applies the LT predicate on the "baseline_score" field.
func BaselineScoreLT(v float64) predicate.Witness {
	return predicate.Witness(sql.FieldLT(FieldBaselineScore, v))
}

// BaselineScoreLTE applies the LTE predicate on the "baseline_score" field.
func BaselineScoreLTE(v float64) predicate.Witness {
	return predicate.Witness(sql.FieldLTE(FieldBaselineScore, v))
}

// BaselineScoreIsNil applies the IsNil predicate on the "baseline_score" field.
func BaselineScoreIsNil() predicate.Witness {
	return predicate.Witness(sql.FieldIsNull(FieldBaselineScore))
}

// BaselineScoreNotNil applies the NotNil predicate on the "baseline_score" field.
func BaselineScoreNotNil() predicate.Witness {
	return predicate.Witness(sql.FieldNotNull(FieldBaselineScore))
}

// PlateauDetectedEQ applies the EQ predicate on the "plateau_detected" field.
func PlateauDetectedEQ(v bool) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldPlateauDetected, v))
}

// PlateauDetectedNEQ applies the NEQ predicate on the "plateau_detected" field.
func PlateauDetectedNEQ(v bool) predicate.Witness {
	return predicate.Witness(sql.FieldNEQ(FieldPlateauDetected, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Witness {
	return predicate.Witness(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Witness {
	return predicate.Witness(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Witness {
	return predicate.Witness(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Witness {
	return predicate.Witness(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Witness {
	return predicate.Witness(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Witness {
	return predicate.Witness(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Witness {
	return predicate.Witness(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Witness {
	return predicate.Witness(sql.FieldLTE(FieldCreatedAt, v))
}

// HasLegalCase applies the HasEdge predicate on the "legal_case" edge.
func HasLegalCase() predicate.Witness {
	return predicate.Witness(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LegalCaseTable, LegalCaseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLegalCaseWith applies the HasEdge predicate on the "legal_case" edge with a given conditions (other predicates).
func HasLegalCaseWith(preds ...predicate.LegalCase) predicate.Witness {
	return predicate.Witness(func(s *sql.Selector) {
		step := newLegalCaseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.Witness {
	return predicate.Witness(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.Session) predicate.Witness {
	return predicate.Witness(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Witness) predicate.Witness {
	return predicate.Witness(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Witness) predicate.Witness {
	return predicate.Witness(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Witness) predicate.Witness {
	return predicate.Witness(sql.NotPredicates(p))
}
