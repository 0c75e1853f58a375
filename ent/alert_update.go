// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verdictlabs/verdict/ent/alert"
	"github.com/verdictlabs/verdict/ent/predicate"
)

// AlertUpdate is the builder for updating Alert entities.
type AlertUpdate struct {
	config
	hooks    []Hook
	mutation *AlertMutation
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdate) Where(ps ...predicate.Alert) *AlertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAlertType sets the "alert_type" field.
func (_u *AlertUpdate) SetAlertType(v alert.AlertType) *AlertUpdate {
	_u.mutation.SetAlertType(v)
	return _u
}

// SetNillableAlertType sets the "alert_type" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableAlertType(v *alert.AlertType) *AlertUpdate {
	if v != nil {
		_u.SetAlertType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertUpdate) SetStatus(v alert.Status) *AlertUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableStatus(v *alert.Status) *AlertUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AlertUpdate) SetConfidence(v float64) *AlertUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableConfidence(v *float64) *AlertUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AlertUpdate) AddConfidence(v float64) *AlertUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetImpeachmentRisk sets the "impeachment_risk" field.
func (_u *AlertUpdate) SetImpeachmentRisk(v alert.ImpeachmentRisk) *AlertUpdate {
	_u.mutation.SetImpeachmentRisk(v)
	return _u
}

// SetNillableImpeachmentRisk sets the "impeachment_risk" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableImpeachmentRisk(v *alert.ImpeachmentRisk) *AlertUpdate {
	if v != nil {
		_u.SetImpeachmentRisk(*v)
	}
	return _u
}

// ClearImpeachmentRisk clears the value of the "impeachment_risk" field.
func (_u *AlertUpdate) ClearImpeachmentRisk() *AlertUpdate {
	_u.mutation.ClearImpeachmentRisk()
	return _u
}

// SetPriorQuote sets the "prior_quote" field.
func (_u *AlertUpdate) SetPriorQuote(v string) *AlertUpdate {
	_u.mutation.SetPriorQuote(v)
	return _u
}

// SetNillablePriorQuote sets the "prior_quote" field if the given value is not nil.
func (_u *AlertUpdate) SetNillablePriorQuote(v *string) *AlertUpdate {
	if v != nil {
		_u.SetPriorQuote(*v)
	}
	return _u
}

// ClearPriorQuote clears the value of the "prior_quote" field.
func (_u *AlertUpdate) ClearPriorQuote() *AlertUpdate {
	_u.mutation.ClearPriorQuote()
	return _u
}

// SetPriorSourcePage sets the "prior_source_page" field.
func (_u *AlertUpdate) SetPriorSourcePage(v int) *AlertUpdate {
	_u.mutation.ResetPriorSourcePage()
	_u.mutation.SetPriorSourcePage(v)
	return _u
}

// SetNillablePriorSourcePage sets the "prior_source_page" field if the given value is not nil.
func (_u *AlertUpdate) SetNillablePriorSourcePage(v *int) *AlertUpdate {
	if v != nil {
		_u.SetPriorSourcePage(*v)
	}
	return _u
}

// AddPriorSourcePage adds value to the "prior_source_page" field.
func (_u *AlertUpdate) AddPriorSourcePage(v int) *AlertUpdate {
	_u.mutation.AddPriorSourcePage(v)
	return _u
}

// ClearPriorSourcePage clears the value of the "prior_source_page" field.
func (_u *AlertUpdate) ClearPriorSourcePage() *AlertUpdate {
	_u.mutation.ClearPriorSourcePage()
	return _u
}

// SetPriorSourceLine sets the "prior_source_line" field.
func (_u *AlertUpdate) SetPriorSourceLine(v int) *AlertUpdate {
	_u.mutation.ResetPriorSourceLine()
	_u.mutation.SetPriorSourceLine(v)
	return _u
}

// SetNillablePriorSourceLine sets the "prior_source_line" field if the given value is not nil.
func (_u *AlertUpdate) SetNillablePriorSourceLine(v *int) *AlertUpdate {
	if v != nil {
		_u.SetPriorSourceLine(*v)
	}
	return _u
}

// AddPriorSourceLine adds value to the "prior_source_line" field.
func (_u *AlertUpdate) AddPriorSourceLine(v int) *AlertUpdate {
	_u.mutation.AddPriorSourceLine(v)
	return _u
}

// ClearPriorSourceLine clears the value of the "prior_source_line" field.
func (_u *AlertUpdate) ClearPriorSourceLine() *AlertUpdate {
	_u.mutation.ClearPriorSourceLine()
	return _u
}

// SetCurrentQuote sets the "current_quote" field.
func (_u *AlertUpdate) SetCurrentQuote(v string) *AlertUpdate {
	_u.mutation.SetCurrentQuote(v)
	return _u
}

// SetNillableCurrentQuote sets the "current_quote" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableCurrentQuote(v *string) *AlertUpdate {
	if v != nil {
		_u.SetCurrentQuote(*v)
	}
	return _u
}

// ClearCurrentQuote clears the value of the "current_quote" field.
func (_u *AlertUpdate) ClearCurrentQuote() *AlertUpdate {
	_u.mutation.ClearCurrentQuote()
	return _u
}

// SetFreRule sets the "fre_rule" field.
func (_u *AlertUpdate) SetFreRule(v string) *AlertUpdate {
	_u.mutation.SetFreRule(v)
	return _u
}

// SetNillableFreRule sets the "fre_rule" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableFreRule(v *string) *AlertUpdate {
	if v != nil {
		_u.SetFreRule(*v)
	}
	return _u
}

// ClearFreRule clears the value of the "fre_rule" field.
func (_u *AlertUpdate) ClearFreRule() *AlertUpdate {
	_u.mutation.ClearFreRule()
	return _u
}

// SetFreClassification sets the "fre_classification" field.
func (_u *AlertUpdate) SetFreClassification(v string) *AlertUpdate {
	_u.mutation.SetFreClassification(v)
	return _u
}

// SetNillableFreClassification sets the "fre_classification" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableFreClassification(v *string) *AlertUpdate {
	if v != nil {
		_u.SetFreClassification(*v)
	}
	return _u
}

// ClearFreClassification clears the value of the "fre_classification" field.
func (_u *AlertUpdate) ClearFreClassification() *AlertUpdate {
	_u.mutation.ClearFreClassification()
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *AlertUpdate) SetQuestionNumber(v int) *AlertUpdate {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableQuestionNumber(v *int) *AlertUpdate {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *AlertUpdate) AddQuestionNumber(v int) *AlertUpdate {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// ClearQuestionNumber clears the value of the "question_number" field.
func (_u *AlertUpdate) ClearQuestionNumber() *AlertUpdate {
	_u.mutation.ClearQuestionNumber()
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *AlertUpdate) SetConfirmedAt(v time.Time) *AlertUpdate {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableConfirmedAt(v *time.Time) *AlertUpdate {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (_u *AlertUpdate) ClearConfirmedAt() *AlertUpdate {
	_u.mutation.ClearConfirmedAt()
	return _u
}

// SetRejectedAt sets the "rejected_at" field.
func (_u *AlertUpdate) SetRejectedAt(v time.Time) *AlertUpdate {
	_u.mutation.SetRejectedAt(v)
	return _u
}

// SetNillableRejectedAt sets the "rejected_at" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableRejectedAt(v *time.Time) *AlertUpdate {
	if v != nil {
		_u.SetRejectedAt(*v)
	}
	return _u
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (_u *AlertUpdate) ClearRejectedAt() *AlertUpdate {
	_u.mutation.ClearRejectedAt()
	return _u
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdate) Mutation() *AlertMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertUpdate) check() error {
	if v, ok := _u.mutation.AlertType(); ok {
		if err := alert.AlertTypeValidator(v); err != nil {
			return &ValidationError{Name: "alert_type", err: fmt.Errorf(`ent: validator failed for field "Alert.alert_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := alert.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Alert.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImpeachmentRisk(); ok {
		if err := alert.ImpeachmentRiskValidator(v); err != nil {
			return &ValidationError{Name: "impeachment_risk", err: fmt.Errorf(`ent: validator failed for field "Alert.impeachment_risk": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Alert.session"`)
	}
	return nil
}

func (_u *AlertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AlertType(); ok {
		_spec.SetField(alert.FieldAlertType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alert.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(alert.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(alert.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ImpeachmentRisk(); ok {
		_spec.SetField(alert.FieldImpeachmentRisk, field.TypeEnum, value)
	}
	if _u.mutation.ImpeachmentRiskCleared() {
		_spec.ClearField(alert.FieldImpeachmentRisk, field.TypeEnum)
	}
	if value, ok := _u.mutation.PriorQuote(); ok {
		_spec.SetField(alert.FieldPriorQuote, field.TypeString, value)
	}
	if _u.mutation.PriorQuoteCleared() {
		_spec.ClearField(alert.FieldPriorQuote, field.TypeString)
	}
	if value, ok := _u.mutation.PriorSourcePage(); ok {
		_spec.SetField(alert.FieldPriorSourcePage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorSourcePage(); ok {
		_spec.AddField(alert.FieldPriorSourcePage, field.TypeInt, value)
	}
	if _u.mutation.PriorSourcePageCleared() {
		_spec.ClearField(alert.FieldPriorSourcePage, field.TypeInt)
	}
	if value, ok := _u.mutation.PriorSourceLine(); ok {
		_spec.SetField(alert.FieldPriorSourceLine, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorSourceLine(); ok {
		_spec.AddField(alert.FieldPriorSourceLine, field.TypeInt, value)
	}
	if _u.mutation.PriorSourceLineCleared() {
		_spec.ClearField(alert.FieldPriorSourceLine, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentQuote(); ok {
		_spec.SetField(alert.FieldCurrentQuote, field.TypeString, value)
	}
	if _u.mutation.CurrentQuoteCleared() {
		_spec.ClearField(alert.FieldCurrentQuote, field.TypeString)
	}
	if value, ok := _u.mutation.FreRule(); ok {
		_spec.SetField(alert.FieldFreRule, field.TypeString, value)
	}
	if _u.mutation.FreRuleCleared() {
		_spec.ClearField(alert.FieldFreRule, field.TypeString)
	}
	if value, ok := _u.mutation.FreClassification(); ok {
		_spec.SetField(alert.FieldFreClassification, field.TypeString, value)
	}
	if _u.mutation.FreClassificationCleared() {
		_spec.ClearField(alert.FieldFreClassification, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(alert.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(alert.FieldQuestionNumber, field.TypeInt, value)
	}
	if _u.mutation.QuestionNumberCleared() {
		_spec.ClearField(alert.FieldQuestionNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(alert.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.ConfirmedAtCleared() {
		_spec.ClearField(alert.FieldConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RejectedAt(); ok {
		_spec.SetField(alert.FieldRejectedAt, field.TypeTime, value)
	}
	if _u.mutation.RejectedAtCleared() {
		_spec.ClearField(alert.FieldRejectedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertUpdateOne is the builder for updating a single Alert entity.
type AlertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertMutation
}

// SetAlertType sets the "alert_type" field.
func (_u *AlertUpdateOne) SetAlertType(v alert.AlertType) *AlertUpdateOne {
	_u.mutation.SetAlertType(v)
	return _u
}

// SetNillableAlertType sets the "alert_type" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableAlertType(v *alert.AlertType) *AlertUpdateOne {
	if v != nil {
		_u.SetAlertType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertUpdateOne) SetStatus(v alert.Status) *AlertUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableStatus(v *alert.Status) *AlertUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AlertUpdateOne) SetConfidence(v float64) *AlertUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableConfidence(v *float64) *AlertUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AlertUpdateOne) AddConfidence(v float64) *AlertUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetImpeachmentRisk sets the "impeachment_risk" field.
func (_u *AlertUpdateOne) SetImpeachmentRisk(v alert.ImpeachmentRisk) *AlertUpdateOne {
	_u.mutation.SetImpeachmentRisk(v)
	return _u
}

// SetNillableImpeachmentRisk sets the "impeachment_risk" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableImpeachmentRisk(v *alert.ImpeachmentRisk) *AlertUpdateOne {
	if v != nil {
		_u.SetImpeachmentRisk(*v)
	}
	return _u
}

// ClearImpeachmentRisk clears the value of the "impeachment_risk" field.
func (_u *AlertUpdateOne) ClearImpeachmentRisk() *AlertUpdateOne {
	_u.mutation.ClearImpeachmentRisk()
	return _u
}

// SetPriorQuote sets the "prior_quote" field.
func (_u *AlertUpdateOne) SetPriorQuote(v string) *AlertUpdateOne {
	_u.mutation.SetPriorQuote(v)
	return _u
}

// SetNillablePriorQuote sets the "prior_quote" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillablePriorQuote(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetPriorQuote(*v)
	}
	return _u
}

// ClearPriorQuote clears the value of the "prior_quote" field.
func (_u *AlertUpdateOne) ClearPriorQuote() *AlertUpdateOne {
	_u.mutation.ClearPriorQuote()
	return _u
}

// SetPriorSourcePage sets the "prior_source_page" field.
func (_u *AlertUpdateOne) SetPriorSourcePage(v int) *AlertUpdateOne {
	_u.mutation.ResetPriorSourcePage()
	_u.mutation.SetPriorSourcePage(v)
	return _u
}

// SetNillablePriorSourcePage sets the "prior_source_page" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillablePriorSourcePage(v *int) *AlertUpdateOne {
	if v != nil {
		_u.SetPriorSourcePage(*v)
	}
	return _u
}

// AddPriorSourcePage adds value to the "prior_source_page" field.
func (_u *AlertUpdateOne) AddPriorSourcePage(v int) *AlertUpdateOne {
	_u.mutation.AddPriorSourcePage(v)
	return _u
}

// ClearPriorSourcePage clears the value of the "prior_source_page" field.
func (_u *AlertUpdateOne) ClearPriorSourcePage() *AlertUpdateOne {
	_u.mutation.ClearPriorSourcePage()
	return _u
}

// SetPriorSourceLine sets the "prior_source_line" field.
func (_u *AlertUpdateOne) SetPriorSourceLine(v int) *AlertUpdateOne {
	_u.mutation.ResetPriorSourceLine()
	_u.mutation.SetPriorSourceLine(v)
	return _u
}

// SetNillablePriorSourceLine sets the "prior_source_line" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillablePriorSourceLine(v *int) *AlertUpdateOne {
	if v != nil {
		_u.SetPriorSourceLine(*v)
	}
	return _u
}

// AddPriorSourceLine adds value to the "prior_source_line" field.
func (_u *AlertUpdateOne) AddPriorSourceLine(v int) *AlertUpdateOne {
	_u.mutation.AddPriorSourceLine(v)
	return _u
}

// ClearPriorSourceLine clears the value of the "prior_source_line" field.
func (_u *AlertUpdateOne) ClearPriorSourceLine() *AlertUpdateOne {
	_u.mutation.ClearPriorSourceLine()
	return _u
}

// SetCurrentQuote sets the "current_quote" field.
func (_u *AlertUpdateOne) SetCurrentQuote(v string) *AlertUpdateOne {
	_u.mutation.SetCurrentQuote(v)
	return _u
}

// SetNillableCurrentQuote sets the "current_quote" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableCurrentQuote(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetCurrentQuote(*v)
	}
	return _u
}

// ClearCurrentQuote clears the value of the "current_quote" field.
func (_u *AlertUpdateOne) ClearCurrentQuote() *AlertUpdateOne {
	_u.mutation.ClearCurrentQuote()
	return _u
}

// SetFreRule sets the "fre_rule" field.
func (_u *AlertUpdateOne) SetFreRule(v string) *AlertUpdateOne {
	_u.mutation.SetFreRule(v)
	return _u
}

// SetNillableFreRule sets the "fre_rule" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableFreRule(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetFreRule(*v)
	}
	return _u
}

// ClearFreRule clears the value of the "fre_rule" field.
func (_u *AlertUpdateOne) ClearFreRule() *AlertUpdateOne {
	_u.mutation.ClearFreRule()
	return _u
}

// SetFreClassification sets the "fre_classification" field.
func (_u *AlertUpdateOne) SetFreClassification(v string) *AlertUpdateOne {
	_u.mutation.SetFreClassification(v)
	return _u
}

// SetNillableFreClassification sets the "fre_classification" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableFreClassification(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetFreClassification(*v)
	}
	return _u
}

// ClearFreClassification clears the value of the "fre_classification" field.
func (_u *AlertUpdateOne) ClearFreClassification() *AlertUpdateOne {
	_u.mutation.ClearFreClassification()
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *AlertUpdateOne) SetQuestionNumber(v int) *AlertUpdateOne {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableQuestionNumber(v *int) *AlertUpdateOne {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *AlertUpdateOne) AddQuestionNumber(v int) *AlertUpdateOne {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// ClearQuestionNumber clears the value of the "question_number" field.
func (_u *AlertUpdateOne) ClearQuestionNumber() *AlertUpdateOne {
	_u.mutation.ClearQuestionNumber()
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *AlertUpdateOne) SetConfirmedAt(v time.Time) *AlertUpdateOne {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableConfirmedAt(v *time.Time) *AlertUpdateOne {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (_u *AlertUpdateOne) ClearConfirmedAt() *AlertUpdateOne {
	_u.mutation.ClearConfirmedAt()
	return _u
}

// SetRejectedAt sets the "rejected_at" field.
func (_u *AlertUpdateOne) SetRejectedAt(v time.Time) *AlertUpdateOne {
	_u.mutation.SetRejectedAt(v)
	return _u
}

// SetNillableRejectedAt sets the "rejected_at" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableRejectedAt(v *time.Time) *AlertUpdateOne {
	if v != nil {
		_u.SetRejectedAt(*v)
	}
	return _u
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (_u *AlertUpdateOne) ClearRejectedAt() *AlertUpdateOne {
	_u.mutation.ClearRejectedAt()
	return _u
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdateOne) Mutation() *AlertMutation {
	return _u.mutation
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdateOne) Where(ps ...predicate.Alert) *AlertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertUpdateOne) Select(field string, fields ...string) *AlertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Alert entity.
func (_u *AlertUpdateOne) Save(ctx context.Context) (*Alert, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdateOne) SaveX(ctx context.Context) *Alert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertUpdateOne) check() error {
	if v, ok := _u.mutation.AlertType(); ok {
		if err := alert.AlertTypeValidator(v); err != nil {
			return &ValidationError{Name: "alert_type", err: fmt.Errorf(`ent: validator failed for field "Alert.alert_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := alert.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Alert.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImpeachmentRisk(); ok {
		if err := alert.ImpeachmentRiskValidator(v); err != nil {
			return &ValidationError{Name: "impeachment_risk", err: fmt.Errorf(`ent: validator failed for field "Alert.impeachment_risk": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Alert.session"`)
	}
	return nil
}

func (_u *AlertUpdateOne) sqlSave(ctx context.Context) (_node *Alert, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Alert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alert.FieldID)
		for _, f := range fields {
			if !alert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alert.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AlertType(); ok {
		_spec.SetField(alert.FieldAlertType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alert.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(alert.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(alert.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ImpeachmentRisk(); ok {
		_spec.SetField(alert.FieldImpeachmentRisk, field.TypeEnum, value)
	}
	if _u.mutation.ImpeachmentRiskCleared() {
		_spec.ClearField(alert.FieldImpeachmentRisk, field.TypeEnum)
	}
	if value, ok := _u.mutation.PriorQuote(); ok {
		_spec.SetField(alert.FieldPriorQuote, field.TypeString, value)
	}
	if _u.mutation.PriorQuoteCleared() {
		_spec.ClearField(alert.FieldPriorQuote, field.TypeString)
	}
	if value, ok := _u.mutation.PriorSourcePage(); ok {
		_spec.SetField(alert.FieldPriorSourcePage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorSourcePage(); ok {
		_spec.AddField(alert.FieldPriorSourcePage, field.TypeInt, value)
	}
	if _u.mutation.PriorSourcePageCleared() {
		_spec.ClearField(alert.FieldPriorSourcePage, field.TypeInt)
	}
	if value, ok := _u.mutation.PriorSourceLine(); ok {
		_spec.SetField(alert.FieldPriorSourceLine, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorSourceLine(); ok {
		_spec.AddField(alert.FieldPriorSourceLine, field.TypeInt, value)
	}
	if _u.mutation.PriorSourceLineCleared() {
		_spec.ClearField(alert.FieldPriorSourceLine, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentQuote(); ok {
		_spec.SetField(alert.FieldCurrentQuote, field.TypeString, value)
	}
	if _u.mutation.CurrentQuoteCleared() {
		_spec.ClearField(alert.FieldCurrentQuote, field.TypeString)
	}
	if value, ok := _u.mutation.FreRule(); ok {
		_spec.SetField(alert.FieldFreRule, field.TypeString, value)
	}
	if _u.mutation.FreRuleCleared() {
		_spec.ClearField(alert.FieldFreRule, field.TypeString)
	}
	if value, ok := _u.mutation.FreClassification(); ok {
		_spec.SetField(alert.FieldFreClassification, field.TypeString, value)
	}
	if _u.mutation.FreClassificationCleared() {
		_spec.ClearField(alert.FieldFreClassification, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(alert.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(alert.FieldQuestionNumber, field.TypeInt, value)
	}
	if _u.mutation.QuestionNumberCleared() {
		_spec.ClearField(alert.FieldQuestionNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(alert.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.ConfirmedAtCleared() {
		_spec.ClearField(alert.FieldConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RejectedAt(); ok {
		_spec.SetField(alert.FieldRejectedAt, field.TypeTime, value)
	}
	if _u.mutation.RejectedAtCleared() {
		_spec.ClearField(alert.FieldRejectedAt, field.TypeTime)
	}
	_node = &Alert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
