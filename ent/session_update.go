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
	"github.com/verdictlabs/verdict/ent/alert"
	"github.com/verdictlabs/verdict/ent/brief"
	"github.com/verdictlabs/verdict/ent/predicate"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/ent/sessionevent"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v session.Status) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *session.Status) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAggressionLevel sets the "aggression_level" field.
func (_u *SessionUpdate) SetAggressionLevel(v session.AggressionLevel) *SessionUpdate {
	_u.mutation.SetAggressionLevel(v)
	return _u
}

// SetNillableAggressionLevel sets the "aggression_level" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableAggressionLevel(v *session.AggressionLevel) *SessionUpdate {
	if v != nil {
		_u.SetAggressionLevel(*v)
	}
	return _u
}

// SetFocusAreas sets the "focus_areas" field.
func (_u *SessionUpdate) SetFocusAreas(v []string) *SessionUpdate {
	_u.mutation.SetFocusAreas(v)
	return _u
}

// AppendFocusAreas appends value to the "focus_areas" field.
func (_u *SessionUpdate) AppendFocusAreas(v []string) *SessionUpdate {
	_u.mutation.AppendFocusAreas(v)
	return _u
}

// ClearFocusAreas clears the value of the "focus_areas" field.
func (_u *SessionUpdate) ClearFocusAreas() *SessionUpdate {
	_u.mutation.ClearFocusAreas()
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *SessionUpdate) SetDurationMinutes(v int) *SessionUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableDurationMinutes(v *int) *SessionUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *SessionUpdate) AddDurationMinutes(v int) *SessionUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetCurrentTopic sets the "current_topic" field.
func (_u *SessionUpdate) SetCurrentTopic(v string) *SessionUpdate {
	_u.mutation.SetCurrentTopic(v)
	return _u
}

// SetNillableCurrentTopic sets the "current_topic" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCurrentTopic(v *string) *SessionUpdate {
	if v != nil {
		_u.SetCurrentTopic(*v)
	}
	return _u
}

// ClearCurrentTopic clears the value of the "current_topic" field.
func (_u *SessionUpdate) ClearCurrentTopic() *SessionUpdate {
	_u.mutation.ClearCurrentTopic()
	return _u
}

// SetObjectionCopilotEnabled sets the "objection_copilot_enabled" field.
func (_u *SessionUpdate) SetObjectionCopilotEnabled(v bool) *SessionUpdate {
	_u.mutation.SetObjectionCopilotEnabled(v)
	return _u
}

// SetNillableObjectionCopilotEnabled sets the "objection_copilot_enabled" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableObjectionCopilotEnabled(v *bool) *SessionUpdate {
	if v != nil {
		_u.SetObjectionCopilotEnabled(*v)
	}
	return _u
}

// SetSentinelEnabled sets the "sentinel_enabled" field.
func (_u *SessionUpdate) SetSentinelEnabled(v bool) *SessionUpdate {
	_u.mutation.SetSentinelEnabled(v)
	return _u
}

// SetNillableSentinelEnabled sets the "sentinel_enabled" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSentinelEnabled(v *bool) *SessionUpdate {
	if v != nil {
		_u.SetSentinelEnabled(*v)
	}
	return _u
}

// SetBriefStatus sets the "brief_status" field.
func (_u *SessionUpdate) SetBriefStatus(v session.BriefStatus) *SessionUpdate {
	_u.mutation.SetBriefStatus(v)
	return _u
}

// SetNillableBriefStatus sets the "brief_status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableBriefStatus(v *session.BriefStatus) *SessionUpdate {
	if v != nil {
		_u.SetBriefStatus(*v)
	}
	return _u
}

// SetWitnessToken sets the "witness_token" field.
func (_u *SessionUpdate) SetWitnessToken(v string) *SessionUpdate {
	_u.mutation.SetWitnessToken(v)
	return _u
}

// SetNillableWitnessToken sets the "witness_token" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableWitnessToken(v *string) *SessionUpdate {
	if v != nil {
		_u.SetWitnessToken(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *SessionUpdate) SetQuestionCount(v int) *SessionUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableQuestionCount(v *int) *SessionUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *SessionUpdate) AddQuestionCount(v int) *SessionUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionUpdate) SetStartedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStartedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SessionUpdate) ClearStartedAt() *SessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionUpdate) SetEndedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableEndedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *SessionUpdate) ClearEndedAt() *SessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetPausedAt sets the "paused_at" field.
func (_u *SessionUpdate) SetPausedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetPausedAt(v)
	return _u
}

// SetNillablePausedAt sets the "paused_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePausedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetPausedAt(*v)
	}
	return _u
}

// ClearPausedAt clears the value of the "paused_at" field.
func (_u *SessionUpdate) ClearPausedAt() *SessionUpdate {
	_u.mutation.ClearPausedAt()
	return _u
}

// SetTotalPauseMs sets the "total_pause_ms" field.
func (_u *SessionUpdate) SetTotalPauseMs(v int64) *SessionUpdate {
	_u.mutation.ResetTotalPauseMs()
	_u.mutation.SetTotalPauseMs(v)
	return _u
}

// SetNillableTotalPauseMs sets the "total_pause_ms" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTotalPauseMs(v *int64) *SessionUpdate {
	if v != nil {
		_u.SetTotalPauseMs(*v)
	}
	return _u
}

// AddTotalPauseMs adds value to the "total_pause_ms" field.
func (_u *SessionUpdate) AddTotalPauseMs(v int64) *SessionUpdate {
	_u.mutation.AddTotalPauseMs(v)
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *SessionUpdate) SetLastInteractionAt(v time.Time) *SessionUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableLastInteractionAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *SessionUpdate) ClearLastInteractionAt() *SessionUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetSessionScore sets the "session_score" field.
func (_u *SessionUpdate) SetSessionScore(v float64) *SessionUpdate {
	_u.mutation.ResetSessionScore()
	_u.mutation.SetSessionScore(v)
	return _u
}

// SetNillableSessionScore sets the "session_score" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSessionScore(v *float64) *SessionUpdate {
	if v != nil {
		_u.SetSessionScore(*v)
	}
	return _u
}

// AddSessionScore adds value to the "session_score" field.
func (_u *SessionUpdate) AddSessionScore(v float64) *SessionUpdate {
	_u.mutation.AddSessionScore(v)
	return _u
}

// ClearSessionScore clears the value of the "session_score" field.
func (_u *SessionUpdate) ClearSessionScore() *SessionUpdate {
	_u.mutation.ClearSessionScore()
	return _u
}

// SetConsistencyRate sets the "consistency_rate" field.
func (_u *SessionUpdate) SetConsistencyRate(v float64) *SessionUpdate {
	_u.mutation.ResetConsistencyRate()
	_u.mutation.SetConsistencyRate(v)
	return _u
}

// SetNillableConsistencyRate sets the "consistency_rate" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableConsistencyRate(v *float64) *SessionUpdate {
	if v != nil {
		_u.SetConsistencyRate(*v)
	}
	return _u
}

// AddConsistencyRate adds value to the "consistency_rate" field.
func (_u *SessionUpdate) AddConsistencyRate(v float64) *SessionUpdate {
	_u.mutation.AddConsistencyRate(v)
	return _u
}

// ClearConsistencyRate clears the value of the "consistency_rate" field.
func (_u *SessionUpdate) ClearConsistencyRate() *SessionUpdate {
	_u.mutation.ClearConsistencyRate()
	return _u
}

// SetPriorWeakAreas sets the "prior_weak_areas" field.
func (_u *SessionUpdate) SetPriorWeakAreas(v []string) *SessionUpdate {
	_u.mutation.SetPriorWeakAreas(v)
	return _u
}

// AppendPriorWeakAreas appends value to the "prior_weak_areas" field.
func (_u *SessionUpdate) AppendPriorWeakAreas(v []string) *SessionUpdate {
	_u.mutation.AppendPriorWeakAreas(v)
	return _u
}

// ClearPriorWeakAreas clears the value of the "prior_weak_areas" field.
func (_u *SessionUpdate) ClearPriorWeakAreas() *SessionUpdate {
	_u.mutation.ClearPriorWeakAreas()
	return _u
}

// SetExternalContextID sets the "external_context_id" field.
func (_u *SessionUpdate) SetExternalContextID(v string) *SessionUpdate {
	_u.mutation.SetExternalContextID(v)
	return _u
}

// SetNillableExternalContextID sets the "external_context_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableExternalContextID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetExternalContextID(*v)
	}
	return _u
}

// ClearExternalContextID clears the value of the "external_context_id" field.
func (_u *SessionUpdate) ClearExternalContextID() *SessionUpdate {
	_u.mutation.ClearExternalContextID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by IDs.
func (_u *SessionUpdate) AddEventIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the SessionEvent entity.
func (_u *SessionUpdate) AddEvents(v ...*SessionEvent) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by IDs.
func (_u *SessionUpdate) AddAlertIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddAlertIDs(ids...)
	return _u
}

// AddAlerts adds the "alerts" edges to the Alert entity.
func (_u *SessionUpdate) AddAlerts(v ...*Alert) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertIDs(ids...)
}

// SetBriefID sets the "brief" edge to the Brief entity by ID.
func (_u *SessionUpdate) SetBriefID(id string) *SessionUpdate {
	_u.mutation.SetBriefID(id)
	return _u
}

// SetNillableBriefID sets the "brief" edge to the Brief entity by ID if the given value is not nil.
func (_u *SessionUpdate) SetNillableBriefID(id *string) *SessionUpdate {
	if id != nil {
		_u = _u.SetBriefID(*id)
	}
	return _u
}

// SetBrief sets the "brief" edge to the Brief entity.
func (_u *SessionUpdate) SetBrief(v *Brief) *SessionUpdate {
	return _u.SetBriefID(v.ID)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the SessionEvent entity.
func (_u *SessionUpdate) ClearEvents() *SessionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to SessionEvent entities by IDs.
func (_u *SessionUpdate) RemoveEventIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to SessionEvent entities.
func (_u *SessionUpdate) RemoveEvents(v ...*SessionEvent) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearAlerts clears all "alerts" edges to the Alert entity.
func (_u *SessionUpdate) ClearAlerts() *SessionUpdate {
	_u.mutation.ClearAlerts()
	return _u
}

// RemoveAlertIDs removes the "alerts" edge to Alert entities by IDs.
func (_u *SessionUpdate) RemoveAlertIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveAlertIDs(ids...)
	return _u
}

// RemoveAlerts removes "alerts" edges to Alert entities.
func (_u *SessionUpdate) RemoveAlerts(v ...*Alert) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertIDs(ids...)
}

// ClearBrief clears the "brief" edge to the Brief entity.
func (_u *SessionUpdate) ClearBrief() *SessionUpdate {
	_u.mutation.ClearBrief()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AggressionLevel(); ok {
		if err := session.AggressionLevelValidator(v); err != nil {
			return &ValidationError{Name: "aggression_level", err: fmt.Errorf(`ent: validator failed for field "Session.aggression_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BriefStatus(); ok {
		if err := session.BriefStatusValidator(v); err != nil {
			return &ValidationError{Name: "brief_status", err: fmt.Errorf(`ent: validator failed for field "Session.brief_status": %w`, err)}
		}
	}
	if _u.mutation.LegalCaseCleared() && len(_u.mutation.LegalCaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.legal_case"`)
	}
	if _u.mutation.WitnessCleared() && len(_u.mutation.WitnessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.witness"`)
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AggressionLevel(); ok {
		_spec.SetField(session.FieldAggressionLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FocusAreas(); ok {
		_spec.SetField(session.FieldFocusAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFocusAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldFocusAreas, value)
		})
	}
	if _u.mutation.FocusAreasCleared() {
		_spec.ClearField(session.FieldFocusAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentTopic(); ok {
		_spec.SetField(session.FieldCurrentTopic, field.TypeString, value)
	}
	if _u.mutation.CurrentTopicCleared() {
		_spec.ClearField(session.FieldCurrentTopic, field.TypeString)
	}
	if value, ok := _u.mutation.ObjectionCopilotEnabled(); ok {
		_spec.SetField(session.FieldObjectionCopilotEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SentinelEnabled(); ok {
		_spec.SetField(session.FieldSentinelEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BriefStatus(); ok {
		_spec.SetField(session.FieldBriefStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WitnessToken(); ok {
		_spec.SetField(session.FieldWitnessToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(session.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(session.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(session.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(session.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(session.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(session.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PausedAt(); ok {
		_spec.SetField(session.FieldPausedAt, field.TypeTime, value)
	}
	if _u.mutation.PausedAtCleared() {
		_spec.ClearField(session.FieldPausedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalPauseMs(); ok {
		_spec.SetField(session.FieldTotalPauseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalPauseMs(); ok {
		_spec.AddField(session.FieldTotalPauseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(session.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(session.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SessionScore(); ok {
		_spec.SetField(session.FieldSessionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSessionScore(); ok {
		_spec.AddField(session.FieldSessionScore, field.TypeFloat64, value)
	}
	if _u.mutation.SessionScoreCleared() {
		_spec.ClearField(session.FieldSessionScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ConsistencyRate(); ok {
		_spec.SetField(session.FieldConsistencyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConsistencyRate(); ok {
		_spec.AddField(session.FieldConsistencyRate, field.TypeFloat64, value)
	}
	if _u.mutation.ConsistencyRateCleared() {
		_spec.ClearField(session.FieldConsistencyRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PriorWeakAreas(); ok {
		_spec.SetField(session.FieldPriorWeakAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPriorWeakAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldPriorWeakAreas, value)
		})
	}
	if _u.mutation.PriorWeakAreasCleared() {
		_spec.ClearField(session.FieldPriorWeakAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExternalContextID(); ok {
		_spec.SetField(session.FieldExternalContextID, field.TypeString, value)
	}
	if _u.mutation.ExternalContextIDCleared() {
		_spec.ClearField(session.FieldExternalContextID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.EventsTable,
			Columns: []string{session.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.EventsTable,
			Columns: []string{session.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.EventsTable,
			Columns: []string{session.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.AlertsTable,
			Columns: []string{session.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertsIDs(); len(nodes) > 0 && !_u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.AlertsTable,
			Columns: []string{session.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.AlertsTable,
			Columns: []string{session.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BriefCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   session.BriefTable,
			Columns: []string{session.BriefColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(brief.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BriefIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   session.BriefTable,
			Columns: []string{session.BriefColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(brief.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v session.Status) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *session.Status) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAggressionLevel sets the "aggression_level" field.
func (_u *SessionUpdateOne) SetAggressionLevel(v session.AggressionLevel) *SessionUpdateOne {
	_u.mutation.SetAggressionLevel(v)
	return _u
}

// SetNillableAggressionLevel sets the "aggression_level" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableAggressionLevel(v *session.AggressionLevel) *SessionUpdateOne {
	if v != nil {
		_u.SetAggressionLevel(*v)
	}
	return _u
}

// SetFocusAreas sets the "focus_areas" field.
func (_u *SessionUpdateOne) SetFocusAreas(v []string) *SessionUpdateOne {
	_u.mutation.SetFocusAreas(v)
	return _u
}

// AppendFocusAreas appends value to the "focus_areas" field.
func (_u *SessionUpdateOne) AppendFocusAreas(v []string) *SessionUpdateOne {
	_u.mutation.AppendFocusAreas(v)
	return _u
}

// ClearFocusAreas clears the value of the "focus_areas" field.
func (_u *SessionUpdateOne) ClearFocusAreas() *SessionUpdateOne {
	_u.mutation.ClearFocusAreas()
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *SessionUpdateOne) SetDurationMinutes(v int) *SessionUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableDurationMinutes(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *SessionUpdateOne) AddDurationMinutes(v int) *SessionUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetCurrentTopic sets the "current_topic" field.
func (_u *SessionUpdateOne) SetCurrentTopic(v string) *SessionUpdateOne {
	_u.mutation.SetCurrentTopic(v)
	return _u
}

// SetNillableCurrentTopic sets the "current_topic" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCurrentTopic(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetCurrentTopic(*v)
	}
	return _u
}

// ClearCurrentTopic clears the value of the "current_topic" field.
func (_u *SessionUpdateOne) ClearCurrentTopic() *SessionUpdateOne {
	_u.mutation.ClearCurrentTopic()
	return _u
}

// SetObjectionCopilotEnabled sets the "objection_copilot_enabled" field.
func (_u *SessionUpdateOne) SetObjectionCopilotEnabled(v bool) *SessionUpdateOne {
	_u.mutation.SetObjectionCopilotEnabled(v)
	return _u
}

// SetNillableObjectionCopilotEnabled sets the "objection_copilot_enabled" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableObjectionCopilotEnabled(v *bool) *SessionUpdateOne {
	if v != nil {
		_u.SetObjectionCopilotEnabled(*v)
	}
	return _u
}

// SetSentinelEnabled sets the "sentinel_enabled" field.
func (_u *SessionUpdateOne) SetSentinelEnabled(v bool) *SessionUpdateOne {
	_u.mutation.SetSentinelEnabled(v)
	return _u
}

// SetNillableSentinelEnabled sets the "sentinel_enabled" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSentinelEnabled(v *bool) *SessionUpdateOne {
	if v != nil {
		_u.SetSentinelEnabled(*v)
	}
	return _u
}

// SetBriefStatus sets the "brief_status" field.
func (_u *SessionUpdateOne) SetBriefStatus(v session.BriefStatus) *SessionUpdateOne {
	_u.mutation.SetBriefStatus(v)
	return _u
}

// SetNillableBriefStatus sets the "brief_status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableBriefStatus(v *session.BriefStatus) *SessionUpdateOne {
	if v != nil {
		_u.SetBriefStatus(*v)
	}
	return _u
}

// SetWitnessToken sets the "witness_token" field.
func (_u *SessionUpdateOne) SetWitnessToken(v string) *SessionUpdateOne {
	_u.mutation.SetWitnessToken(v)
	return _u
}

// SetNillableWitnessToken sets the "witness_token" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableWitnessToken(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetWitnessToken(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *SessionUpdateOne) SetQuestionCount(v int) *SessionUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableQuestionCount(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *SessionUpdateOne) AddQuestionCount(v int) *SessionUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionUpdateOne) SetStartedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStartedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SessionUpdateOne) ClearStartedAt() *SessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionUpdateOne) SetEndedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableEndedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *SessionUpdateOne) ClearEndedAt() *SessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetPausedAt sets the "paused_at" field.
func (_u *SessionUpdateOne) SetPausedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetPausedAt(v)
	return _u
}

// SetNillablePausedAt sets the "paused_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePausedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetPausedAt(*v)
	}
	return _u
}

// ClearPausedAt clears the value of the "paused_at" field.
func (_u *SessionUpdateOne) ClearPausedAt() *SessionUpdateOne {
	_u.mutation.ClearPausedAt()
	return _u
}

// SetTotalPauseMs sets the "total_pause_ms" field.
func (_u *SessionUpdateOne) SetTotalPauseMs(v int64) *SessionUpdateOne {
	_u.mutation.ResetTotalPauseMs()
	_u.mutation.SetTotalPauseMs(v)
	return _u
}

// SetNillableTotalPauseMs sets the "total_pause_ms" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTotalPauseMs(v *int64) *SessionUpdateOne {
	if v != nil {
		_u.SetTotalPauseMs(*v)
	}
	return _u
}

// AddTotalPauseMs adds value to the "total_pause_ms" field.
func (_u *SessionUpdateOne) AddTotalPauseMs(v int64) *SessionUpdateOne {
	_u.mutation.AddTotalPauseMs(v)
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *SessionUpdateOne) SetLastInteractionAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableLastInteractionAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *SessionUpdateOne) ClearLastInteractionAt() *SessionUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetSessionScore sets the "session_score" field.
func (_u *SessionUpdateOne) SetSessionScore(v float64) *SessionUpdateOne {
	_u.mutation.ResetSessionScore()
	_u.mutation.SetSessionScore(v)
	return _u
}

// SetNillableSessionScore sets the "session_score" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSessionScore(v *float64) *SessionUpdateOne {
	if v != nil {
		_u.SetSessionScore(*v)
	}
	return _u
}

// AddSessionScore adds value to the "session_score" field.
func (_u *SessionUpdateOne) AddSessionScore(v float64) *SessionUpdateOne {
	_u.mutation.AddSessionScore(v)
	return _u
}

// ClearSessionScore clears the value of the "session_score" field.
func (_u *SessionUpdateOne) ClearSessionScore() *SessionUpdateOne {
	_u.mutation.ClearSessionScore()
	return _u
}

// SetConsistencyRate sets the "consistency_rate" field.
func (_u *SessionUpdateOne) SetConsistencyRate(v float64) *SessionUpdateOne {
	_u.mutation.ResetConsistencyRate()
	_u.mutation.SetConsistencyRate(v)
	return _u
}

// SetNillableConsistencyRate sets the "consistency_rate" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableConsistencyRate(v *float64) *SessionUpdateOne {
	if v != nil {
		_u.SetConsistencyRate(*v)
	}
	return _u
}

// AddConsistencyRate adds value to the "consistency_rate" field.
func (_u *SessionUpdateOne) AddConsistencyRate(v float64) *SessionUpdateOne {
	_u.mutation.AddConsistencyRate(v)
	return _u
}

// ClearConsistencyRate clears the value of the "consistency_rate" field.
func (_u *SessionUpdateOne) ClearConsistencyRate() *SessionUpdateOne {
	_u.mutation.ClearConsistencyRate()
	return _u
}

// SetPriorWeakAreas sets the "prior_weak_areas" field.
func (_u *SessionUpdateOne) SetPriorWeakAreas(v []string) *SessionUpdateOne {
	_u.mutation.SetPriorWeakAreas(v)
	return _u
}

// AppendPriorWeakAreas appends value to the "prior_weak_areas" field.
func (_u *SessionUpdateOne) AppendPriorWeakAreas(v []string) *SessionUpdateOne {
	_u.mutation.AppendPriorWeakAreas(v)
	return _u
}

// ClearPriorWeakAreas clears the value of the "prior_weak_areas" field.
func (_u *SessionUpdateOne) ClearPriorWeakAreas() *SessionUpdateOne {
	_u.mutation.ClearPriorWeakAreas()
	return _u
}

// SetExternalContextID sets the "external_context_id" field.
func (_u *SessionUpdateOne) SetExternalContextID(v string) *SessionUpdateOne {
	_u.mutation.SetExternalContextID(v)
	return _u
}

// SetNillableExternalContextID sets the "external_context_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableExternalContextID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetExternalContextID(*v)
	}
	return _u
}

// ClearExternalContextID clears the value of the "external_context_id" field.
func (_u *SessionUpdateOne) ClearExternalContextID() *SessionUpdateOne {
	_u.mutation.ClearExternalContextID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by IDs.
func (_u *SessionUpdateOne) AddEventIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the SessionEvent entity.
func (_u *SessionUpdateOne) AddEvents(v ...*SessionEvent) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by IDs.
func (_u *SessionUpdateOne) AddAlertIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddAlertIDs(ids...)
	return _u
}

// AddAlerts adds the "alerts" edges to the Alert entity.
func (_u *SessionUpdateOne) AddAlerts(v ...*Alert) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertIDs(ids...)
}

// SetBriefID sets the "brief" edge to the Brief entity by ID.
func (_u *SessionUpdateOne) SetBriefID(id string) *SessionUpdateOne {
	_u.mutation.SetBriefID(id)
	return _u
}

// SetNillableBriefID sets the "brief" edge to the Brief entity by ID if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableBriefID(id *string) *SessionUpdateOne {
	if id != nil {
		_u = _u.SetBriefID(*id)
	}
	return _u
}

// SetBrief sets the "brief" edge to the Brief entity.
func (_u *SessionUpdateOne) SetBrief(v *Brief) *SessionUpdateOne {
	return _u.SetBriefID(v.ID)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the SessionEvent entity.
func (_u *SessionUpdateOne) ClearEvents() *SessionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to SessionEvent entities by IDs.
func (_u *SessionUpdateOne) RemoveEventIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to SessionEvent entities.
func (_u *SessionUpdateOne) RemoveEvents(v ...*SessionEvent) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearAlerts clears all "alerts" edges to the Alert entity.
func (_u *SessionUpdateOne) ClearAlerts() *SessionUpdateOne {
	_u.mutation.ClearAlerts()
	return _u
}

// RemoveAlertIDs removes the "alerts" edge to Alert entities by IDs.
func (_u *SessionUpdateOne) RemoveAlertIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveAlertIDs(ids...)
	return _u
}

// RemoveAlerts removes "alerts" edges to Alert entities.
func (_u *SessionUpdateOne) RemoveAlerts(v ...*Alert) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertIDs(ids...)
}

// ClearBrief clears the "brief" edge to the Brief entity.
func (_u *SessionUpdateOne) ClearBrief() *SessionUpdateOne {
	_u.mutation.ClearBrief()
	return _u
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AggressionLevel(); ok {
		if err := session.AggressionLevelValidator(v); err != nil {
			return &ValidationError{Name: "aggression_level", err: fmt.Errorf(`ent: validator failed for field "Session.aggression_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BriefStatus(); ok {
		if err := session.BriefStatusValidator(v); err != nil {
			return &ValidationError{Name: "brief_status", err: fmt.Errorf(`ent: validator failed for field "Session.brief_status": %w`, err)}
		}
	}
	if _u.mutation.LegalCaseCleared() && len(_u.mutation.LegalCaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.legal_case"`)
	}
	if _u.mutation.WitnessCleared() && len(_u.mutation.WitnessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.witness"`)
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AggressionLevel(); ok {
		_spec.SetField(session.FieldAggressionLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FocusAreas(); ok {
		_spec.SetField(session.FieldFocusAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFocusAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldFocusAreas, value)
		})
	}
	if _u.mutation.FocusAreasCleared() {
		_spec.ClearField(session.FieldFocusAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentTopic(); ok {
		_spec.SetField(session.FieldCurrentTopic, field.TypeString, value)
	}
	if _u.mutation.CurrentTopicCleared() {
		_spec.ClearField(session.FieldCurrentTopic, field.TypeString)
	}
	if value, ok := _u.mutation.ObjectionCopilotEnabled(); ok {
		_spec.SetField(session.FieldObjectionCopilotEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SentinelEnabled(); ok {
		_spec.SetField(session.FieldSentinelEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BriefStatus(); ok {
		_spec.SetField(session.FieldBriefStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WitnessToken(); ok {
		_spec.SetField(session.FieldWitnessToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(session.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(session.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(session.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(session.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(session.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(session.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PausedAt(); ok {
		_spec.SetField(session.FieldPausedAt, field.TypeTime, value)
	}
	if _u.mutation.PausedAtCleared() {
		_spec.ClearField(session.FieldPausedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalPauseMs(); ok {
		_spec.SetField(session.FieldTotalPauseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalPauseMs(); ok {
		_spec.AddField(session.FieldTotalPauseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(session.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(session.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SessionScore(); ok {
		_spec.SetField(session.FieldSessionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSessionScore(); ok {
		_spec.AddField(session.FieldSessionScore, field.TypeFloat64, value)
	}
	if _u.mutation.SessionScoreCleared() {
		_spec.ClearField(session.FieldSessionScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ConsistencyRate(); ok {
		_spec.SetField(session.FieldConsistencyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConsistencyRate(); ok {
		_spec.AddField(session.FieldConsistencyRate, field.TypeFloat64, value)
	}
	if _u.mutation.ConsistencyRateCleared() {
		_spec.ClearField(session.FieldConsistencyRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PriorWeakAreas(); ok {
		_spec.SetField(session.FieldPriorWeakAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPriorWeakAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldPriorWeakAreas, value)
		})
	}
	if _u.mutation.PriorWeakAreasCleared() {
		_spec.ClearField(session.FieldPriorWeakAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExternalContextID(); ok {
		_spec.SetField(session.FieldExternalContextID, field.TypeString, value)
	}
	if _u.mutation.ExternalContextIDCleared() {
		_spec.ClearField(session.FieldExternalContextID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.EventsTable,
			Columns: []string{session.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.EventsTable,
			Columns: []string{session.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.EventsTable,
			Columns: []string{session.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.AlertsTable,
			Columns: []string{session.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertsIDs(); len(nodes) > 0 && !_u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.AlertsTable,
			Columns: []string{session.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.AlertsTable,
			Columns: []string{session.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BriefCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   session.BriefTable,
			Columns: []string{session.BriefColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(brief.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BriefIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   session.BriefTable,
			Columns: []string{session.BriefColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(brief.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
