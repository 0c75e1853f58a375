// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/verdictlabs/verdict/ent/brief"
	"github.com/verdictlabs/verdict/ent/predicate"
)

// BriefUpdate is the builder for updating Brief entities.
type BriefUpdate struct {
	config
	hooks    []Hook
	mutation *BriefMutation
}

// Where appends a list predicates to the BriefUpdate builder.
func (_u *BriefUpdate) Where(ps ...predicate.Brief) *BriefUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionScore sets the "session_score" field.
func (_u *BriefUpdate) SetSessionScore(v float64) *BriefUpdate {
	_u.mutation.ResetSessionScore()
	_u.mutation.SetSessionScore(v)
	return _u
}

// SetNillableSessionScore sets the "session_score" field if the given value is not nil.
func (_u *BriefUpdate) SetNillableSessionScore(v *float64) *BriefUpdate {
	if v != nil {
		_u.SetSessionScore(*v)
	}
	return _u
}

// AddSessionScore adds value to the "session_score" field.
func (_u *BriefUpdate) AddSessionScore(v float64) *BriefUpdate {
	_u.mutation.AddSessionScore(v)
	return _u
}

// SetConsistencyRate sets the "consistency_rate" field.
func (_u *BriefUpdate) SetConsistencyRate(v float64) *BriefUpdate {
	_u.mutation.ResetConsistencyRate()
	_u.mutation.SetConsistencyRate(v)
	return _u
}

// SetNillableConsistencyRate sets the "consistency_rate" field if the given value is not nil.
func (_u *BriefUpdate) SetNillableConsistencyRate(v *float64) *BriefUpdate {
	if v != nil {
		_u.SetConsistencyRate(*v)
	}
	return _u
}

// AddConsistencyRate adds value to the "consistency_rate" field.
func (_u *BriefUpdate) AddConsistencyRate(v float64) *BriefUpdate {
	_u.mutation.AddConsistencyRate(v)
	return _u
}

// SetWeaknessMap sets the "weakness_map" field.
func (_u *BriefUpdate) SetWeaknessMap(v map[string]float64) *BriefUpdate {
	_u.mutation.SetWeaknessMap(v)
	return _u
}

// SetNarrativeText sets the "narrative_text" field.
func (_u *BriefUpdate) SetNarrativeText(v string) *BriefUpdate {
	_u.mutation.SetNarrativeText(v)
	return _u
}

// SetNillableNarrativeText sets the "narrative_text" field if the given value is not nil.
func (_u *BriefUpdate) SetNillableNarrativeText(v *string) *BriefUpdate {
	if v != nil {
		_u.SetNarrativeText(*v)
	}
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *BriefUpdate) SetRecommendations(v []string) *BriefUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *BriefUpdate) AppendRecommendations(v []string) *BriefUpdate {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// SetConfirmedFlags sets the "confirmed_flags" field.
func (_u *BriefUpdate) SetConfirmedFlags(v int) *BriefUpdate {
	_u.mutation.ResetConfirmedFlags()
	_u.mutation.SetConfirmedFlags(v)
	return _u
}

// SetNillableConfirmedFlags sets the "confirmed_flags" field if the given value is not nil.
func (_u *BriefUpdate) SetNillableConfirmedFlags(v *int) *BriefUpdate {
	if v != nil {
		_u.SetConfirmedFlags(*v)
	}
	return _u
}

// AddConfirmedFlags adds value to the "confirmed_flags" field.
func (_u *BriefUpdate) AddConfirmedFlags(v int) *BriefUpdate {
	_u.mutation.AddConfirmedFlags(v)
	return _u
}

// SetObjectionCount sets the "objection_count" field.
func (_u *BriefUpdate) SetObjectionCount(v int) *BriefUpdate {
	_u.mutation.ResetObjectionCount()
	_u.mutation.SetObjectionCount(v)
	return _u
}

// SetNillableObjectionCount sets the "objection_count" field if the given value is not nil.
func (_u *BriefUpdate) SetNillableObjectionCount(v *int) *BriefUpdate {
	if v != nil {
		_u.SetObjectionCount(*v)
	}
	return _u
}

// AddObjectionCount adds value to the "objection_count" field.
func (_u *BriefUpdate) AddObjectionCount(v int) *BriefUpdate {
	_u.mutation.AddObjectionCount(v)
	return _u
}

// SetComposureAlerts sets the "composure_alerts" field.
func (_u *BriefUpdate) SetComposureAlerts(v int) *BriefUpdate {
	_u.mutation.ResetComposureAlerts()
	_u.mutation.SetComposureAlerts(v)
	return _u
}

// SetNillableComposureAlerts sets the "composure_alerts" field if the given value is not nil.
func (_u *BriefUpdate) SetNillableComposureAlerts(v *int) *BriefUpdate {
	if v != nil {
		_u.SetComposureAlerts(*v)
	}
	return _u
}

// AddComposureAlerts adds value to the "composure_alerts" field.
func (_u *BriefUpdate) AddComposureAlerts(v int) *BriefUpdate {
	_u.mutation.AddComposureAlerts(v)
	return _u
}

// SetDeltaVsBaseline sets the "delta_vs_baseline" field.
func (_u *BriefUpdate) SetDeltaVsBaseline(v float64) *BriefUpdate {
	_u.mutation.ResetDeltaVsBaseline()
	_u.mutation.SetDeltaVsBaseline(v)
	return _u
}

// SetNillableDeltaVsBaseline sets the "delta_vs_baseline" field if the given value is not nil.
func (_u *BriefUpdate) SetNillableDeltaVsBaseline(v *float64) *BriefUpdate {
	if v != nil {
		_u.SetDeltaVsBaseline(*v)
	}
	return _u
}

// AddDeltaVsBaseline adds value to the "delta_vs_baseline" field.
func (_u *BriefUpdate) AddDeltaVsBaseline(v float64) *BriefUpdate {
	_u.mutation.AddDeltaVsBaseline(v)
	return _u
}

// ClearDeltaVsBaseline clears the value of the "delta_vs_baseline" field.
func (_u *BriefUpdate) ClearDeltaVsBaseline() *BriefUpdate {
	_u.mutation.ClearDeltaVsBaseline()
	return _u
}

// SetShareToken sets the "share_token" field.
func (_u *BriefUpdate) SetShareToken(v string) *BriefUpdate {
	_u.mutation.SetShareToken(v)
	return _u
}

// SetNillableShareToken sets the "share_token" field if the given value is not nil.
func (_u *BriefUpdate) SetNillableShareToken(v *string) *BriefUpdate {
	if v != nil {
		_u.SetShareToken(*v)
	}
	return _u
}

// ClearShareToken clears the value of the "share_token" field.
func (_u *BriefUpdate) ClearShareToken() *BriefUpdate {
	_u.mutation.ClearShareToken()
	return _u
}

// SetShareExpiresAt sets the "share_expires_at" field.
func (_u *BriefUpdate) SetShareExpiresAt(v time.Time) *BriefUpdate {
	_u.mutation.SetShareExpiresAt(v)
	return _u
}

// SetNillableShareExpiresAt sets the "share_expires_at" field if the given value is not nil.
func (_u *BriefUpdate) SetNillableShareExpiresAt(v *time.Time) *BriefUpdate {
	if v != nil {
		_u.SetShareExpiresAt(*v)
	}
	return _u
}

// ClearShareExpiresAt clears the value of the "share_expires_at" field.
func (_u *BriefUpdate) ClearShareExpiresAt() *BriefUpdate {
	_u.mutation.ClearShareExpiresAt()
	return _u
}

// SetPdfKey sets the "pdf_key" field.
func (_u *BriefUpdate) SetPdfKey(v string) *BriefUpdate {
	_u.mutation.SetPdfKey(v)
	return _u
}

// SetNillablePdfKey sets the "pdf_key" field if the given value is not nil.
func (_u *BriefUpdate) SetNillablePdfKey(v *string) *BriefUpdate {
	if v != nil {
		_u.SetPdfKey(*v)
	}
	return _u
}

// ClearPdfKey clears the value of the "pdf_key" field.
func (_u *BriefUpdate) ClearPdfKey() *BriefUpdate {
	_u.mutation.ClearPdfKey()
	return _u
}

// SetCoachAudioKey sets the "coach_audio_key" field.
func (_u *BriefUpdate) SetCoachAudioKey(v string) *BriefUpdate {
	_u.mutation.SetCoachAudioKey(v)
	return _u
}

// SetNillableCoachAudioKey sets the "coach_audio_key" field if the given value is not nil.
func (_u *BriefUpdate) SetNillableCoachAudioKey(v *string) *BriefUpdate {
	if v != nil {
		_u.SetCoachAudioKey(*v)
	}
	return _u
}

// ClearCoachAudioKey clears the value of the "coach_audio_key" field.
func (_u *BriefUpdate) ClearCoachAudioKey() *BriefUpdate {
	_u.mutation.ClearCoachAudioKey()
	return _u
}

// SetGeneratedBy sets the "generated_by" field.
func (_u *BriefUpdate) SetGeneratedBy(v brief.GeneratedBy) *BriefUpdate {
	_u.mutation.SetGeneratedBy(v)
	return _u
}

// SetNillableGeneratedBy sets the "generated_by" field if the given value is not nil.
func (_u *BriefUpdate) SetNillableGeneratedBy(v *brief.GeneratedBy) *BriefUpdate {
	if v != nil {
		_u.SetGeneratedBy(*v)
	}
	return _u
}

// Mutation returns the BriefMutation object of the builder.
func (_u *BriefUpdate) Mutation() *BriefMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BriefUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BriefUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BriefUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BriefUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BriefUpdate) check() error {
	if v, ok := _u.mutation.GeneratedBy(); ok {
		if err := brief.GeneratedByValidator(v); err != nil {
			return &ValidationError{Name: "generated_by", err: fmt.Errorf(`ent: validator failed for field "Brief.generated_by": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Brief.session"`)
	}
	return nil
}

func (_u *BriefUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(brief.Table, brief.Columns, sqlgraph.NewFieldSpec(brief.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionScore(); ok {
		_spec.SetField(brief.FieldSessionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSessionScore(); ok {
		_spec.AddField(brief.FieldSessionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConsistencyRate(); ok {
		_spec.SetField(brief.FieldConsistencyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConsistencyRate(); ok {
		_spec.AddField(brief.FieldConsistencyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WeaknessMap(); ok {
		_spec.SetField(brief.FieldWeaknessMap, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.NarrativeText(); ok {
		_spec.SetField(brief.FieldNarrativeText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(brief.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, brief.FieldRecommendations, value)
		})
	}
	if value, ok := _u.mutation.ConfirmedFlags(); ok {
		_spec.SetField(brief.FieldConfirmedFlags, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfirmedFlags(); ok {
		_spec.AddField(brief.FieldConfirmedFlags, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ObjectionCount(); ok {
		_spec.SetField(brief.FieldObjectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedObjectionCount(); ok {
		_spec.AddField(brief.FieldObjectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ComposureAlerts(); ok {
		_spec.SetField(brief.FieldComposureAlerts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedComposureAlerts(); ok {
		_spec.AddField(brief.FieldComposureAlerts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeltaVsBaseline(); ok {
		_spec.SetField(brief.FieldDeltaVsBaseline, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDeltaVsBaseline(); ok {
		_spec.AddField(brief.FieldDeltaVsBaseline, field.TypeFloat64, value)
	}
	if _u.mutation.DeltaVsBaselineCleared() {
		_spec.ClearField(brief.FieldDeltaVsBaseline, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ShareToken(); ok {
		_spec.SetField(brief.FieldShareToken, field.TypeString, value)
	}
	if _u.mutation.ShareTokenCleared() {
		_spec.ClearField(brief.FieldShareToken, field.TypeString)
	}
	if value, ok := _u.mutation.ShareExpiresAt(); ok {
		_spec.SetField(brief.FieldShareExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ShareExpiresAtCleared() {
		_spec.ClearField(brief.FieldShareExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PdfKey(); ok {
		_spec.SetField(brief.FieldPdfKey, field.TypeString, value)
	}
	if _u.mutation.PdfKeyCleared() {
		_spec.ClearField(brief.FieldPdfKey, field.TypeString)
	}
	if value, ok := _u.mutation.CoachAudioKey(); ok {
		_spec.SetField(brief.FieldCoachAudioKey, field.TypeString, value)
	}
	if _u.mutation.CoachAudioKeyCleared() {
		_spec.ClearField(brief.FieldCoachAudioKey, field.TypeString)
	}
	if value, ok := _u.mutation.GeneratedBy(); ok {
		_spec.SetField(brief.FieldGeneratedBy, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{brief.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BriefUpdateOne is the builder for updating a single Brief entity.
type BriefUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BriefMutation
}

// SetSessionScore sets the "session_score" field.
func (_u *BriefUpdateOne) SetSessionScore(v float64) *BriefUpdateOne {
	_u.mutation.ResetSessionScore()
	_u.mutation.SetSessionScore(v)
	return _u
}

// SetNillableSessionScore sets the "session_score" field if the given value is not nil.
func (_u *BriefUpdateOne) SetNillableSessionScore(v *float64) *BriefUpdateOne {
	if v != nil {
		_u.SetSessionScore(*v)
	}
	return _u
}

// AddSessionScore adds value to the "session_score" field.
func (_u *BriefUpdateOne) AddSessionScore(v float64) *BriefUpdateOne {
	_u.mutation.AddSessionScore(v)
	return _u
}

// SetConsistencyRate sets the "consistency_rate" field.
func (_u *BriefUpdateOne) SetConsistencyRate(v float64) *BriefUpdateOne {
	_u.mutation.ResetConsistencyRate()
	_u.mutation.SetConsistencyRate(v)
	return _u
}

// SetNillableConsistencyRate sets the "consistency_rate" field if the given value is not nil.
func (_u *BriefUpdateOne) SetNillableConsistencyRate(v *float64) *BriefUpdateOne {
	if v != nil {
		_u.SetConsistencyRate(*v)
	}
	return _u
}

// AddConsistencyRate adds value to the "consistency_rate" field.
func (_u *BriefUpdateOne) AddConsistencyRate(v float64) *BriefUpdateOne {
	_u.mutation.AddConsistencyRate(v)
	return _u
}

// SetWeaknessMap sets the "weakness_map" field.
func (_u *BriefUpdateOne) SetWeaknessMap(v map[string]float64) *BriefUpdateOne {
	_u.mutation.SetWeaknessMap(v)
	return _u
}

// SetNarrativeText sets the "narrative_text" field.
func (_u *BriefUpdateOne) SetNarrativeText(v string) *BriefUpdateOne {
	_u.mutation.SetNarrativeText(v)
	return _u
}

// SetNillableNarrativeText sets the "narrative_text" field if the given value is not nil.
func (_u *BriefUpdateOne) SetNillableNarrativeText(v *string) *BriefUpdateOne {
	if v != nil {
		_u.SetNarrativeText(*v)
	}
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *BriefUpdateOne) SetRecommendations(v []string) *BriefUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *BriefUpdateOne) AppendRecommendations(v []string) *BriefUpdateOne {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// SetConfirmedFlags sets the "confirmed_flags" field.
func (_u *BriefUpdateOne) SetConfirmedFlags(v int) *BriefUpdateOne {
	_u.mutation.ResetConfirmedFlags()
	_u.mutation.SetConfirmedFlags(v)
	return _u
}

// SetNillableConfirmedFlags sets the "confirmed_flags" field if the given value is not nil.
func (_u *BriefUpdateOne) SetNillableConfirmedFlags(v *int) *BriefUpdateOne {
	if v != nil {
		_u.SetConfirmedFlags(*v)
	}
	return _u
}

// AddConfirmedFlags adds value to the "confirmed_flags" field.
func (_u *BriefUpdateOne) AddConfirmedFlags(v int) *BriefUpdateOne {
	_u.mutation.AddConfirmedFlags(v)
	return _u
}

// SetObjectionCount sets the "objection_count" field.
func (_u *BriefUpdateOne) SetObjectionCount(v int) *BriefUpdateOne {
	_u.mutation.ResetObjectionCount()
	_u.mutation.SetObjectionCount(v)
	return _u
}

// SetNillableObjectionCount sets the "objection_count" field if the given value is not nil.
func (_u *BriefUpdateOne) SetNillableObjectionCount(v *int) *BriefUpdateOne {
	if v != nil {
		_u.SetObjectionCount(*v)
	}
	return _u
}

// AddObjectionCount adds value to the "objection_count" field.
func (_u *BriefUpdateOne) AddObjectionCount(v int) *BriefUpdateOne {
	_u.mutation.AddObjectionCount(v)
	return _u
}

// SetComposureAlerts sets the "composure_alerts" field.
func (_u *BriefUpdateOne) SetComposureAlerts(v int) *BriefUpdateOne {
	_u.mutation.ResetComposureAlerts()
	_u.mutation.SetComposureAlerts(v)
	return _u
}

// SetNillableComposureAlerts sets the "composure_alerts" field if the given value is not nil.
func (_u *BriefUpdateOne) SetNillableComposureAlerts(v *int) *BriefUpdateOne {
	if v != nil {
		_u.SetComposureAlerts(*v)
	}
	return _u
}

// AddComposureAlerts adds value to the "composure_alerts" field.
func (_u *BriefUpdateOne) AddComposureAlerts(v int) *BriefUpdateOne {
	_u.mutation.AddComposureAlerts(v)
	return _u
}

// SetDeltaVsBaseline sets the "delta_vs_baseline" field.
func (_u *BriefUpdateOne) SetDeltaVsBaseline(v float64) *BriefUpdateOne {
	_u.mutation.ResetDeltaVsBaseline()
	_u.mutation.SetDeltaVsBaseline(v)
	return _u
}

// SetNillableDeltaVsBaseline sets the "delta_vs_baseline" field if the given value is not nil.
func (_u *BriefUpdateOne) SetNillableDeltaVsBaseline(v *float64) *BriefUpdateOne {
	if v != nil {
		_u.SetDeltaVsBaseline(*v)
	}
	return _u
}

// AddDeltaVsBaseline adds value to the "delta_vs_baseline" field.
func (_u *BriefUpdateOne) AddDeltaVsBaseline(v float64) *BriefUpdateOne {
	_u.mutation.AddDeltaVsBaseline(v)
	return _u
}

// ClearDeltaVsBaseline clears the value of the "delta_vs_baseline" field.
func (_u *BriefUpdateOne) ClearDeltaVsBaseline() *BriefUpdateOne {
	_u.mutation.ClearDeltaVsBaseline()
	return _u
}

// SetShareToken sets the "share_token" field.
func (_u *BriefUpdateOne) SetShareToken(v string) *BriefUpdateOne {
	_u.mutation.SetShareToken(v)
	return _u
}

// SetNillableShareToken sets the "share_token" field if the given value is not nil.
func (_u *BriefUpdateOne) SetNillableShareToken(v *string) *BriefUpdateOne {
	if v != nil {
		_u.SetShareToken(*v)
	}
	return _u
}

// ClearShareToken clears the value of the "share_token" field.
func (_u *BriefUpdateOne) ClearShareToken() *BriefUpdateOne {
	_u.mutation.ClearShareToken()
	return _u
}

// SetShareExpiresAt sets the "share_expires_at" field.
func (_u *BriefUpdateOne) SetShareExpiresAt(v time.Time) *BriefUpdateOne {
	_u.mutation.SetShareExpiresAt(v)
	return _u
}

// SetNillableShareExpiresAt sets the "share_expires_at" field if the given value is not nil.
func (_u *BriefUpdateOne) SetNillableShareExpiresAt(v *time.Time) *BriefUpdateOne {
	if v != nil {
		_u.SetShareExpiresAt(*v)
	}
	return _u
}

// ClearShareExpiresAt clears the value of the "share_expires_at" field.
func (_u *BriefUpdateOne) ClearShareExpiresAt() *BriefUpdateOne {
	_u.mutation.ClearShareExpiresAt()
	return _u
}

// SetPdfKey sets the "pdf_key" field.
func (_u *BriefUpdateOne) SetPdfKey(v string) *BriefUpdateOne {
	_u.mutation.SetPdfKey(v)
	return _u
}

// SetNillablePdfKey sets the "pdf_key" field if the given value is not nil.
func (_u *BriefUpdateOne) SetNillablePdfKey(v *string) *BriefUpdateOne {
	if v != nil {
		_u.SetPdfKey(*v)
	}
	return _u
}

// ClearPdfKey clears the value of the "pdf_key" field.
func (_u *BriefUpdateOne) ClearPdfKey() *BriefUpdateOne {
	_u.mutation.ClearPdfKey()
	return _u
}

// SetCoachAudioKey sets the "coach_audio_key" field.
func (_u *BriefUpdateOne) SetCoachAudioKey(v string) *BriefUpdateOne {
	_u.mutation.SetCoachAudioKey(v)
	return _u
}

// SetNillableCoachAudioKey sets the "coach_audio_key" field if the given value is not nil.
func (_u *BriefUpdateOne) SetNillableCoachAudioKey(v *string) *BriefUpdateOne {
	if v != nil {
		_u.SetCoachAudioKey(*v)
	}
	return _u
}

// ClearCoachAudioKey clears the value of the "coach_audio_key" field.
func (_u *BriefUpdateOne) ClearCoachAudioKey() *BriefUpdateOne {
	_u.mutation.ClearCoachAudioKey()
	return _u
}

// SetGeneratedBy sets the "generated_by" field.
func (_u *BriefUpdateOne) SetGeneratedBy(v brief.GeneratedBy) *BriefUpdateOne {
	_u.mutation.SetGeneratedBy(v)
	return _u
}

// SetNillableGeneratedBy sets the "generated_by" field if the given value is not nil.
func (_u *BriefUpdateOne) SetNillableGeneratedBy(v *brief.GeneratedBy) *BriefUpdateOne {
	if v != nil {
		_u.SetGeneratedBy(*v)
	}
	return _u
}

// Mutation returns the BriefMutation object of the builder.
func (_u *BriefUpdateOne) Mutation() *BriefMutation {
	return _u.mutation
}

// Where appends a list predicates to the BriefUpdate builder.
func (_u *BriefUpdateOne) Where(ps ...predicate.Brief) *BriefUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BriefUpdateOne) Select(field string, fields ...string) *BriefUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Brief entity.
func (_u *BriefUpdateOne) Save(ctx context.Context) (*Brief, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BriefUpdateOne) SaveX(ctx context.Context) *Brief {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BriefUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BriefUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BriefUpdateOne) check() error {
	if v, ok := _u.mutation.GeneratedBy(); ok {
		if err := brief.GeneratedByValidator(v); err != nil {
			return &ValidationError{Name: "generated_by", err: fmt.Errorf(`ent: validator failed for field "Brief.generated_by": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Brief.session"`)
	}
	return nil
}

func (_u *BriefUpdateOne) sqlSave(ctx context.Context) (_node *Brief, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(brief.Table, brief.Columns, sqlgraph.NewFieldSpec(brief.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Brief.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, brief.FieldID)
		for _, f := range fields {
			if !brief.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != brief.FieldID {
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
	if value, ok := _u.mutation.SessionScore(); ok {
		_spec.SetField(brief.FieldSessionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSessionScore(); ok {
		_spec.AddField(brief.FieldSessionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConsistencyRate(); ok {
		_spec.SetField(brief.FieldConsistencyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConsistencyRate(); ok {
		_spec.AddField(brief.FieldConsistencyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WeaknessMap(); ok {
		_spec.SetField(brief.FieldWeaknessMap, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.NarrativeText(); ok {
		_spec.SetField(brief.FieldNarrativeText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(brief.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, brief.FieldRecommendations, value)
		})
	}
	if value, ok := _u.mutation.ConfirmedFlags(); ok {
		_spec.SetField(brief.FieldConfirmedFlags, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfirmedFlags(); ok {
		_spec.AddField(brief.FieldConfirmedFlags, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ObjectionCount(); ok {
		_spec.SetField(brief.FieldObjectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedObjectionCount(); ok {
		_spec.AddField(brief.FieldObjectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ComposureAlerts(); ok {
		_spec.SetField(brief.FieldComposureAlerts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedComposureAlerts(); ok {
		_spec.AddField(brief.FieldComposureAlerts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeltaVsBaseline(); ok {
		_spec.SetField(brief.FieldDeltaVsBaseline, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDeltaVsBaseline(); ok {
		_spec.AddField(brief.FieldDeltaVsBaseline, field.TypeFloat64, value)
	}
	if _u.mutation.DeltaVsBaselineCleared() {
		_spec.ClearField(brief.FieldDeltaVsBaseline, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ShareToken(); ok {
		_spec.SetField(brief.FieldShareToken, field.TypeString, value)
	}
	if _u.mutation.ShareTokenCleared() {
		_spec.ClearField(brief.FieldShareToken, field.TypeString)
	}
	if value, ok := _u.mutation.ShareExpiresAt(); ok {
		_spec.SetField(brief.FieldShareExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ShareExpiresAtCleared() {
		_spec.ClearField(brief.FieldShareExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PdfKey(); ok {
		_spec.SetField(brief.FieldPdfKey, field.TypeString, value)
	}
	if _u.mutation.PdfKeyCleared() {
		_spec.ClearField(brief.FieldPdfKey, field.TypeString)
	}
	if value, ok := _u.mutation.CoachAudioKey(); ok {
		_spec.SetField(brief.FieldCoachAudioKey, field.TypeString, value)
	}
	if _u.mutation.CoachAudioKeyCleared() {
		_spec.ClearField(brief.FieldCoachAudioKey, field.TypeString)
	}
	if value, ok := _u.mutation.GeneratedBy(); ok {
		_spec.SetField(brief.FieldGeneratedBy, field.TypeEnum, value)
	}
	_node = &Brief{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{brief.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
