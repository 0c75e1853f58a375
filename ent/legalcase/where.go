// Code generated by ent, DO NOT EDIT.

package legalcase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/verdictlabs/verdict/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldContainsFold(FieldID, id))
}

// FirmID applies equality check predicate on the "firm_id" field. It's identical to FirmIDEQ.
func FirmID(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldFirmID, v))
}

// CaseName applies equality check predicate on the "case_name" field. It's identical to CaseNameEQ.
func CaseName(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldCaseName, v))
}

// OpposingParty applies equality check predicate on the "opposing_party" field. It's identical to OpposingPartyEQ.
func OpposingParty(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldOpposingParty, v))
}

// CaseNumber applies equality check predicate on the "case_number" field. It's identical to CaseNumberEQ.
func CaseNumber(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldCaseNumber, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldDescription, v))
}

// DepositionDate applies equality check predicate on the "deposition_date" field. It's identical to DepositionDateEQ.
func DepositionDate(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldDepositionDate, v))
}

// PriorStatements applies equality check predicate on the "prior_statements" field. It's identical to PriorStatementsEQ.
func PriorStatements(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldPriorStatements, v))
}

// ExhibitList applies equality check predicate on the "exhibit_list" field. It's identical to ExhibitListEQ.
func ExhibitList(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldExhibitList, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldUpdatedAt, v))
}

// FirmIDEQ applies the EQ predicate on the "firm_id" field.
func FirmIDEQ(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldFirmID, v))
}

// FirmIDNEQ applies the NEQ predicate on the "firm_id" field.
func FirmIDNEQ(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNEQ(FieldFirmID, v))
}

// FirmIDIn applies the In predicate on the "firm_id" field.
func FirmIDIn(vs ...string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIn(FieldFirmID, vs...))
}

// FirmIDNotIn applies the NotIn predicate on the "firm_id" field.
func FirmIDNotIn(vs ...string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotIn(FieldFirmID, vs...))
}

// FirmIDGT applies the GT predicate on the "firm_id" field.
func FirmIDGT(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGT(FieldFirmID, v))
}

// FirmIDGTE applies the GTE predicate on the "firm_id" field.
func FirmIDGTE(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGTE(FieldFirmID, v))
}

// FirmIDLT applies the LT predicate on the "firm_id" field.
func FirmIDLT(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLT(FieldFirmID, v))
}

// FirmIDLTE applies the LTE predicate on the "firm_id" field.
func FirmIDLTE(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLTE(FieldFirmID, v))
}

// FirmIDContains applies the Contains predicate on the "firm_id" field.
func FirmIDContains(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldContains(FieldFirmID, v))
}

// FirmIDHasPrefix applies the HasPrefix predicate on the "firm_id" field.
func FirmIDHasPrefix(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldHasPrefix(FieldFirmID, v))
}

// FirmIDHasSuffix applies the HasSuffix predicate on the "firm_id" field.
func FirmIDHasSuffix(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldHasSuffix(FieldFirmID, v))
}

// FirmIDEqualFold applies the EqualFold predicate on the "firm_id" field.
func FirmIDEqualFold(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEqualFold(FieldFirmID, v))
}

// FirmIDContainsFold applies the ContainsFold predicate on the "firm_id" field.
func FirmIDContainsFold(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldContainsFold(FieldFirmID, v))
}

// CaseNameEQ applies the EQ predicate on the "case_name" field.
func CaseNameEQ(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldCaseName, v))
}

// CaseNameNEQ applies the NEQ predicate on the "case_name" field.
func CaseNameNEQ(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNEQ(FieldCaseName, v))
}

// CaseNameIn applies the In predicate on the "case_name" field.
func CaseNameIn(vs ...string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIn(FieldCaseName, vs...))
}

// CaseNameNotIn applies the NotIn predicate on the "case_name" field.
func CaseNameNotIn(vs ...string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotIn(FieldCaseName, vs...))
}

// CaseNameGT applies the GT predicate on the "case_name" field.
func CaseNameGT(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGT(FieldCaseName, v))
}

// CaseNameGTE applies the GTE predicate on the "case_name" field.
func CaseNameGTE(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGTE(FieldCaseName, v))
}

// CaseNameLT applies the LT predicate on the "case_name" field.
func CaseNameLT(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLT(FieldCaseName, v))
}

// CaseNameLTE applies the LTE predicate on the "case_name" field.
func CaseNameLTE(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLTE(FieldCaseName, v))
}

// CaseNameContains applies the Contains predicate on the "case_name" field.
func CaseNameContains(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldContains(FieldCaseName, v))
}

// CaseNameHasPrefix applies the HasPrefix predicate on the "case_name" field.
func CaseNameHasPrefix(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldHasPrefix(FieldCaseName, v))
}

// CaseNameHasSuffix applies the HasSuffix predicate on the "case_name" field.
func CaseNameHasSuffix(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldHasSuffix(FieldCaseName, v))
}

// CaseNameEqualFold applies the EqualFold predicate on the "case_name" field.
func CaseNameEqualFold(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEqualFold(FieldCaseName, v))
}

// CaseNameContainsFold applies the ContainsFold predicate on the "case_name" field.
func CaseNameContainsFold(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldContainsFold(FieldCaseName, v))
}

// CaseTypeEQ applies the EQ predicate on the "case_type" field.
func CaseTypeEQ(v CaseType) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldCaseType, v))
}

// CaseTypeNEQ applies the NEQ predicate on the "case_type" field.
func CaseTypeNEQ(v CaseType) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNEQ(FieldCaseType, v))
}

// CaseTypeIn applies the In predicate on the "case_type" field.
func CaseTypeIn(vs ...CaseType) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIn(FieldCaseType, vs...))
}

// CaseTypeNotIn applies the NotIn predicate on the "case_type" field.
func CaseTypeNotIn(vs ...CaseType) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotIn(FieldCaseType, vs...))
}

// OpposingPartyEQ applies the EQ predicate on the "opposing_party" field.
func OpposingPartyEQ(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldOpposingParty, v))
}

// OpposingPartyNEQ applies the NEQ predicate on the "opposing_party" field.
func OpposingPartyNEQ(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNEQ(FieldOpposingParty, v))
}

// OpposingPartyIn applies the In predicate on the "opposing_party" field.
func OpposingPartyIn(vs ...string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIn(FieldOpposingParty, vs...))
}

// OpposingPartyNotIn applies the NotIn predicate on the "opposing_party" field.
func OpposingPartyNotIn(vs ...string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotIn(FieldOpposingParty, vs...))
}

// OpposingPartyGT applies the GT predicate on the "opposing_party" field.
func OpposingPartyGT(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGT(FieldOpposingParty, v))
}

// OpposingPartyGTE applies the GTE predicate on the "opposing_party" field.
func OpposingPartyGTE(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGTE(FieldOpposingParty, v))
}

// OpposingPartyLT applies the LT predicate on the "opposing_party" field.
func OpposingPartyLT(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLT(FieldOpposingParty, v))
}

// OpposingPartyLTE applies the LTE predicate on the "opposing_party" field.
func OpposingPartyLTE(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLTE(FieldOpposingParty, v))
}

// OpposingPartyContains applies the Contains predicate on the "opposing_party" field.
func OpposingPartyContains(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldContains(FieldOpposingParty, v))
}

// OpposingPartyHasPrefix applies the HasPrefix predicate on the "opposing_party" field.
func OpposingPartyHasPrefix(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldHasPrefix(FieldOpposingParty, v))
}

// OpposingPartyHasSuffix applies the HasSuffix predicate on the "opposing_party" field.
func OpposingPartyHasSuffix(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldHasSuffix(FieldOpposingParty, v))
}

// OpposingPartyIsNil applies the IsNil predicate on the "opposing_party" field.
func OpposingPartyIsNil() predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIsNull(FieldOpposingParty))
}

// OpposingPartyNotNil applies the NotNil predicate on the "opposing_party" field.
func OpposingPartyNotNil() predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotNull(FieldOpposingParty))
}

// OpposingPartyEqualFold applies the EqualFold predicate on the "opposing_party" field.
func OpposingPartyEqualFold(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEqualFold(FieldOpposingParty, v))
}

// OpposingPartyContainsFold applies the ContainsFold predicate on the "opposing_party" field.
func OpposingPartyContainsFold(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldContainsFold(FieldOpposingParty, v))
}

// CaseNumberEQ applies the EQ predicate on the "case_number" field.
func CaseNumberEQ(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldCaseNumber, v))
}

// CaseNumberNEQ applies the NEQ predicate on the "case_number" field.
func CaseNumberNEQ(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNEQ(FieldCaseNumber, v))
}

// CaseNumberIn applies the In predicate on the "case_number" field.
func CaseNumberIn(vs ...string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIn(FieldCaseNumber, vs...))
}

// CaseNumberNotIn applies the NotIn predicate on the "case_number" field.
func CaseNumberNotIn(vs ...string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotIn(FieldCaseNumber, vs...))
}

// CaseNumberGT applies the GT predicate on the "case_number" field.
func CaseNumberGT(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGT(FieldCaseNumber, v))
}

// CaseNumberGTE applies the GTE predicate on the "case_number" field.
func CaseNumberGTE(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGTE(FieldCaseNumber, v))
}

// CaseNumberLT applies the LT predicate on the "case_number" field.
func CaseNumberLT(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLT(FieldCaseNumber, v))
}

// CaseNumberLTE applies the LTE predicate on the "case_number" field.
func CaseNumberLTE(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLTE(FieldCaseNumber, v))
}

// CaseNumberContains applies the Contains predicate on the "case_number" field.
func CaseNumberContains(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldContains(FieldCaseNumber, v))
}

// CaseNumberHasPrefix applies the HasPrefix predicate on the "case_number" field.
func CaseNumberHasPrefix(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldHasPrefix(FieldCaseNumber, v))
}

// CaseNumberHasSuffix applies the HasSuffix predicate on the "case_number" field.
func CaseNumberHasSuffix(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldHasSuffix(FieldCaseNumber, v))
}

// CaseNumberIsNil applies the IsNil predicate on the "case_number" field.
func CaseNumberIsNil() predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIsNull(FieldCaseNumber))
}

// CaseNumberNotNil applies the NotNil predicate on the "case_number" field.
func CaseNumberNotNil() predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotNull(FieldCaseNumber))
}

// CaseNumberEqualFold applies the EqualFold predicate on the "case_number" field.
func CaseNumberEqualFold(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEqualFold(FieldCaseNumber, v))
}

// CaseNumberContainsFold applies the ContainsFold predicate on the "case_number" field.
func CaseNumberContainsFold(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldContainsFold(FieldCaseNumber, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldContainsFold(FieldDescription, v))
}

// DepositionDateEQ applies the EQ predicate on the "deposition_date" field.
func DepositionDateEQ(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldDepositionDate, v))
}

// DepositionDateNEQ applies the NEQ predicate on the "deposition_date" field.
func DepositionDateNEQ(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNEQ(FieldDepositionDate, v))
}

// DepositionDateIn applies the In predicate on the "deposition_date" field.
func DepositionDateIn(vs ...time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIn(FieldDepositionDate, vs...))
}

// DepositionDateNotIn applies the NotIn predicate on the "deposition_date" field.
func DepositionDateNotIn(vs ...time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotIn(FieldDepositionDate, vs...))
}

// DepositionDateGT applies the GT predicate on the "deposition_date" field.
func DepositionDateGT(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGT(FieldDepositionDate, v))
}

// DepositionDateGTE applies the GTE predicate on the "deposition_date" field.
func DepositionDateGTE(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGTE(FieldDepositionDate, v))
}

// DepositionDateLT applies the LT predicate on the "deposition_date" field.
func DepositionDateLT(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLT(FieldDepositionDate, v))
}

// DepositionDateLTE applies the LTE predicate on the "deposition_date" field.
func DepositionDateLTE(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLTE(FieldDepositionDate, v))
}

// DepositionDateIsNil applies the IsNil predicate on the "deposition_date" field.
func DepositionDateIsNil() predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIsNull(FieldDepositionDate))
}

// DepositionDateNotNil applies the NotNil predicate on the "deposition_date" field.
func DepositionDateNotNil() predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotNull(FieldDepositionDate))
}

// ExtractedFactsIsNil applies the IsNil predicate on the "extracted_facts" field.
func ExtractedFactsIsNil() predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIsNull(FieldExtractedFacts))
}

// ExtractedFactsNotNil applies the NotNil predicate on the "extracted_facts" field.
func ExtractedFactsNotNil() predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotNull(FieldExtractedFacts))
}

// PriorStatementsEQ applies the EQ predicate on the "prior_statements" field.
func PriorStatementsEQ(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldPriorStatements, v))
}

// PriorStatementsNEQ applies the NEQ predicate on the "prior_statements" field.
func PriorStatementsNEQ(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNEQ(FieldPriorStatements, v))
}

// PriorStatementsIn applies the In predicate on the "prior_statements" field.
func PriorStatementsIn(vs ...string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIn(FieldPriorStatements, vs...))
}

// PriorStatementsNotIn applies the NotIn predicate on the "prior_statements" field.
func PriorStatementsNotIn(vs ...string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotIn(FieldPriorStatements, vs...))
}

// PriorStatementsGT applies the GT predicate on the "prior_statements" field.
func PriorStatementsGT(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGT(FieldPriorStatements, v))
}

// PriorStatementsGTE applies the GTE predicate on the "prior_statements" field.
func PriorStatementsGTE(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGTE(FieldPriorStatements, v))
}

// PriorStatementsLT applies the LT predicate on the "prior_statements" field.
func PriorStatementsLT(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLT(FieldPriorStatements, v))
}

// PriorStatementsLTE applies the LTE predicate on the "prior_statements" field.
func PriorStatementsLTE(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLTE(FieldPriorStatements, v))
}

// PriorStatementsContains applies the Contains predicate on the "prior_statements" field.
func PriorStatementsContains(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldContains(FieldPriorStatements, v))
}

// PriorStatementsHasPrefix applies the HasPrefix predicate on the "prior_statements" field.
func PriorStatementsHasPrefix(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldHasPrefix(FieldPriorStatements, v))
}

// PriorStatementsHasSuffix applies the HasSuffix predicate on the "prior_statements" field.
func PriorStatementsHasSuffix(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldHasSuffix(FieldPriorStatements, v))
}

// PriorStatementsIsNil applies the IsNil predicate on the "prior_statements" field.
func PriorStatementsIsNil() predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIsNull(FieldPriorStatements))
}

// PriorStatementsNotNil applies the NotNil predicate on the "prior_statements" field.
func PriorStatementsNotNil() predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotNull(FieldPriorStatements))
}

// PriorStatementsEqualFold applies the EqualFold predicate on the "prior_statements" field.
func PriorStatementsEqualFold(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEqualFold(FieldPriorStatements, v))
}

// PriorStatementsContainsFold applies the ContainsFold predicate on the "prior_statements" field.
func PriorStatementsContainsFold(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldContainsFold(FieldPriorStatements, v))
}

// ExhibitListEQ applies the EQ predicate on the "exhibit_list" field.
func ExhibitListEQ(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldExhibitList, v))
}

// ExhibitListNEQ applies the NEQ predicate on the "exhibit_list" field.
func ExhibitListNEQ(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNEQ(FieldExhibitList, v))
}

// ExhibitListIn applies the In predicate on the "exhibit_list" field.
func ExhibitListIn(vs ...string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIn(FieldExhibitList, vs...))
}

// ExhibitListNotIn applies the NotIn predicate on the "exhibit_list" field.
func ExhibitListNotIn(vs ...string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotIn(FieldExhibitList, vs...))
}

// ExhibitListGT applies the GT predicate on the "exhibit_list" field.
func ExhibitListGT(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGT(FieldExhibitList, v))
}

// ExhibitListGTE applies the GTE predicate on the "exhibit_list" field.
func ExhibitListGTE(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGTE(FieldExhibitList, v))
}

// ExhibitListLT applies the LT predicate on the "exhibit_list" field.
func ExhibitListLT(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLT(FieldExhibitList, v))
}

// ExhibitListLTE applies the LTE predicate on the "exhibit_list" field.
func ExhibitListLTE(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLTE(FieldExhibitList, v))
}

// ExhibitListContains applies the Contains predicate on the "exhibit_list" field.
func ExhibitListContains(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldContains(FieldExhibitList, v))
}

// ExhibitListHasPrefix applies the HasPrefix predicate on the "exhibit_list" field.
func ExhibitListHasPrefix(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldHasPrefix(FieldExhibitList, v))
}

// ExhibitListHasSuffix applies the HasSuffix predicate on the "exhibit_list" field.
func ExhibitListHasSuffix(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldHasSuffix(FieldExhibitList, v))
}

// ExhibitListIsNil applies the IsNil predicate on the "exhibit_list" field.
func ExhibitListIsNil() predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIsNull(FieldExhibitList))
}

// ExhibitListNotNil applies the NotNil predicate on the "exhibit_list" field.
func ExhibitListNotNil() predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotNull(FieldExhibitList))
}

// ExhibitListEqualFold applies the EqualFold predicate on the "exhibit_list" field.
func ExhibitListEqualFold(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEqualFold(FieldExhibitList, v))
}

// ExhibitListContainsFold applies the ContainsFold predicate on the "exhibit_list" field.
func ExhibitListContainsFold(v string) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldContainsFold(FieldExhibitList, v))
}

// FocusAreasIsNil applies the IsNil predicate on the "focus_areas" field.
func FocusAreasIsNil() predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIsNull(FieldFocusAreas))
}

// FocusAreasNotNil applies the NotNil predicate on the "focus_areas" field.
func FocusAreasNotNil() predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotNull(FieldFocusAreas))
}

// AggressionPresetEQ applies the EQ predicate on the "aggression_preset" field.
func AggressionPresetEQ(v AggressionPreset) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldAggressionPreset, v))
}

// AggressionPresetNEQ applies the NEQ predicate on the "aggression_preset" field.
func AggressionPresetNEQ(v AggressionPreset) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNEQ(FieldAggressionPreset, v))
}

// AggressionPresetIn applies the In predicate on the "aggression_preset" field.
func AggressionPresetIn(vs ...AggressionPreset) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIn(FieldAggressionPreset, vs...))
}

// AggressionPresetNotIn applies the NotIn predicate on the "aggression_preset" field.
func AggressionPresetNotIn(vs ...AggressionPreset) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotIn(FieldAggressionPreset, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LegalCase {
	return predicate.LegalCase(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFirm applies the HasEdge predicate on the "firm" edge.
func HasFirm() predicate.LegalCase {
	return predicate.LegalCase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FirmTable, FirmColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFirmWith applies the HasEdge predicate on the "firm" edge with a given conditions (other predicates).
func HasFirmWith(preds ...predicate.Firm) predicate.LegalCase {
	return predicate.LegalCase(func(s *sql.Selector) {
		step := newFirmStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWitnesses applies the HasEdge predicate on the "witnesses" edge.
func HasWitnesses() predicate.LegalCase {
	return predicate.LegalCase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WitnessesTable, WitnessesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWitnessesWith applies the HasEdge predicate on the "witnesses" edge with a given conditions (other predicates).
func HasWitnessesWith(preds ...predicate.Witness) predicate.LegalCase {
	return predicate.LegalCase(func(s *sql.Selector) {
		step := newWitnessesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.LegalCase {
	return predicate.LegalCase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.Session) predicate.LegalCase {
	return predicate.LegalCase(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.LegalCase {
	return predicate.LegalCase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.LegalCase {
	return predicate.LegalCase(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LegalCase) predicate.LegalCase {
	return predicate.LegalCase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LegalCase) predicate.LegalCase {
	return predicate.LegalCase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LegalCase) predicate.LegalCase {
	return predicate.LegalCase(sql.NotPredicates(p))
}
