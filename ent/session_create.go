// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verdictlabs/verdict/ent/alert"
	"github.com/verdictlabs/verdict/ent/brief"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/ent/sessionevent"
	"github.com/verdictlabs/verdict/ent/witness"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetCaseID sets the "case_id" field.
func (_c *SessionCreate) SetCaseID(v string) *SessionCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetWitnessID sets the "witness_id" field.
func (_c *SessionCreate) SetWitnessID(v string) *SessionCreate {
	_c.mutation.SetWitnessID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionCreate) SetStatus(v session.Status) *SessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStatus(v *session.Status) *SessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAggressionLevel sets the "aggression_level" field.
func (_c *SessionCreate) SetAggressionLevel(v session.AggressionLevel) *SessionCreate {
	_c.mutation.SetAggressionLevel(v)
	return _c
}

// SetNillableAggressionLevel sets the "aggression_level" field if the given value is not nil.
func (_c *SessionCreate) SetNillableAggressionLevel(v *session.AggressionLevel) *SessionCreate {
	if v != nil {
		_c.SetAggressionLevel(*v)
	}
	return _c
}

// SetFocusAreas sets the "focus_areas" field.
func (_c *SessionCreate) SetFocusAreas(v []string) *SessionCreate {
	_c.mutation.SetFocusAreas(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *SessionCreate) SetDurationMinutes(v int) *SessionCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_c *SessionCreate) SetNillableDurationMinutes(v *int) *SessionCreate {
	if v != nil {
		_c.SetDurationMinutes(*v)
	}
	return _c
}

// SetCurrentTopic sets the "current_topic" field.
func (_c *SessionCreate) SetCurrentTopic(v string) *SessionCreate {
	_c.mutation.SetCurrentTopic(v)
	return _c
}

// SetNillableCurrentTopic sets the "current_topic" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCurrentTopic(v *string) *SessionCreate {
	if v != nil {
		_c.SetCurrentTopic(*v)
	}
	return _c
}

// SetObjectionCopilotEnabled sets the "objection_copilot_enabled" field.
func (_c *SessionCreate) SetObjectionCopilotEnabled(v bool) *SessionCreate {
	_c.mutation.SetObjectionCopilotEnabled(v)
	return _c
}

// SetNillableObjectionCopilotEnabled sets the "objection_copilot_enabled" field if the given value is not nil.
func (_c *SessionCreate) SetNillableObjectionCopilotEnabled(v *bool) *SessionCreate {
	if v != nil {
		_c.SetObjectionCopilotEnabled(*v)
	}
	return _c
}

// SetSentinelEnabled sets the "sentinel_enabled" field.
func (_c *SessionCreate) SetSentinelEnabled(v bool) *SessionCreate {
	_c.mutation.SetSentinelEnabled(v)
	return _c
}

// SetNillableSentinelEnabled sets the "sentinel_enabled" field if the given value is not nil.
func (_c *SessionCreate) SetNillableSentinelEnabled(v *bool) *SessionCreate {
	if v != nil {
		_c.SetSentinelEnabled(*v)
	}
	return _c
}

// SetBriefStatus sets the "brief_status" field.
func (_c *SessionCreate) SetBriefStatus(v session.BriefStatus) *SessionCreate {
	_c.mutation.SetBriefStatus(v)
	return _c
}

// SetNillableBriefStatus sets the "brief_status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableBriefStatus(v *session.BriefStatus) *SessionCreate {
	if v != nil {
		_c.SetBriefStatus(*v)
	}
	return _c
}

// SetWitnessToken sets the "witness_token" field.
func (_c *SessionCreate) SetWitnessToken(v string) *SessionCreate {
	_c.mutation.SetWitnessToken(v)
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *SessionCreate) SetQuestionCount(v int) *SessionCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_c *SessionCreate) SetNillableQuestionCount(v *int) *SessionCreate {
	if v != nil {
		_c.SetQuestionCount(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SessionCreate) SetStartedAt(v time.Time) *SessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStartedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *SessionCreate) SetEndedAt(v time.Time) *SessionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableEndedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetPausedAt sets the "paused_at" field.
func (_c *SessionCreate) SetPausedAt(v time.Time) *SessionCreate {
	_c.mutation.SetPausedAt(v)
	return _c
}

// SetNillablePausedAt sets the "paused_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillablePausedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetPausedAt(*v)
	}
	return _c
}

// SetTotalPauseMs sets the "total_pause_ms" field.
func (_c *SessionCreate) SetTotalPauseMs(v int64) *SessionCreate {
	_c.mutation.SetTotalPauseMs(v)
	return _c
}

// SetNillableTotalPauseMs sets the "total_pause_ms" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTotalPauseMs(v *int64) *SessionCreate {
	if v != nil {
		_c.SetTotalPauseMs(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *SessionCreate) SetLastInteractionAt(v time.Time) *SessionCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableLastInteractionAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetSessionScore sets the "session_score" field.
func (_c *SessionCreate) SetSessionScore(v float64) *SessionCreate {
	_c.mutation.SetSessionScore(v)
	return _c
}

// SetNillableSessionScore sets the "session_score" field if the given value is not nil.
func (_c *SessionCreate) SetNillableSessionScore(v *float64) *SessionCreate {
	if v != nil {
		_c.SetSessionScore(*v)
	}
	return _c
}

// SetConsistencyRate sets the "consistency_rate" field.
func (_c *SessionCreate) SetConsistencyRate(v float64) *SessionCreate {
	_c.mutation.SetConsistencyRate(v)
	return _c
}

// SetNillableConsistencyRate sets the "consistency_rate" field if the given value is not nil.
func (_c *SessionCreate) SetNillableConsistencyRate(v *float64) *SessionCreate {
	if v != nil {
		_c.SetConsistencyRate(*v)
	}
	return _c
}

// SetPriorWeakAreas sets the "prior_weak_areas" field.
func (_c *SessionCreate) SetPriorWeakAreas(v []string) *SessionCreate {
	_c.mutation.SetPriorWeakAreas(v)
	return _c
}

// SetExternalContextID sets the "external_context_id" field.
func (_c *SessionCreate) SetExternalContextID(v string) *SessionCreate {
	_c.mutation.SetExternalContextID(v)
	return _c
}

// SetNillableExternalContextID sets the "external_context_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableExternalContextID(v *string) *SessionCreate {
	if v != nil {
		_c.SetExternalContextID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionCreate) SetUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetLegalCaseID sets the "legal_case" edge to the LegalCase entity by ID.
func (_c *SessionCreate) SetLegalCaseID(id string) *SessionCreate {
	_c.mutation.SetLegalCaseID(id)
	return _c
}

// SetLegalCase sets the "legal_case" edge to the LegalCase entity.
func (_c *SessionCreate) SetLegalCase(v *LegalCase) *SessionCreate {
	return _c.SetLegalCaseID(v.ID)
}

// SetWitness sets the "witness" edge to the Witness entity.
func (_c *SessionCreate) SetWitness(v *Witness) *SessionCreate {
	return _c.SetWitnessID(v.ID)
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by IDs.
func (_c *SessionCreate) AddEventIDs(ids ...string) *SessionCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the SessionEvent entity.
func (_c *SessionCreate) AddEvents(v ...*SessionEvent) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by IDs.
func (_c *SessionCreate) AddAlertIDs(ids ...string) *SessionCreate {
	_c.mutation.AddAlertIDs(ids...)
	return _c
}

// AddAlerts adds the "alerts" edges to the Alert entity.
func (_c *SessionCreate) AddAlerts(v ...*Alert) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAlertIDs(ids...)
}

// SetBriefID sets the "brief" edge to the Brief entity by ID.
func (_c *SessionCreate) SetBriefID(id string) *SessionCreate {
	_c.mutation.SetBriefID(id)
	return _c
}

// SetNillableBriefID sets the "brief" edge to the Brief entity by ID if the given value is not nil.
func (_c *SessionCreate) SetNillableBriefID(id *string) *SessionCreate {
	if id != nil {
		_c = _c.SetBriefID(*id)
	}
	return _c
}

// SetBrief sets the "brief" edge to the Brief entity.
func (_c *SessionCreate) SetBrief(v *Brief) *SessionCreate {
	return _c.SetBriefID(v.ID)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := session.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AggressionLevel(); !ok {
		v := session.DefaultAggressionLevel
		_c.mutation.SetAggressionLevel(v)
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		v := session.DefaultDurationMinutes
		_c.mutation.SetDurationMinutes(v)
	}
	if _, ok := _c.mutation.ObjectionCopilotEnabled(); !ok {
		v := session.DefaultObjectionCopilotEnabled
		_c.mutation.SetObjectionCopilotEnabled(v)
	}
	if _, ok := _c.mutation.SentinelEnabled(); !ok {
		v := session.DefaultSentinelEnabled
		_c.mutation.SetSentinelEnabled(v)
	}
	if _, ok := _c.mutation.BriefStatus(); !ok {
		v := session.DefaultBriefStatus
		_c.mutation.SetBriefStatus(v)
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		v := session.DefaultQuestionCount
		_c.mutation.SetQuestionCount(v)
	}
	if _, ok := _c.mutation.TotalPauseMs(); !ok {
		v := session.DefaultTotalPauseMs
		_c.mutation.SetTotalPauseMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := session.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "Session.case_id"`)}
	}
	if _, ok := _c.mutation.WitnessID(); !ok {
		return &ValidationError{Name: "witness_id", err: errors.New(`ent: missing required field "Session.witness_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Session.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AggressionLevel(); !ok {
		return &ValidationError{Name: "aggression_level", err: errors.New(`ent: missing required field "Session.aggression_level"`)}
	}
	if v, ok := _c.mutation.AggressionLevel(); ok {
		if err := session.AggressionLevelValidator(v); err != nil {
			return &ValidationError{Name: "aggression_level", err: fmt.Errorf(`ent: validator failed for field "Session.aggression_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "Session.duration_minutes"`)}
	}
	if _, ok := _c.mutation.ObjectionCopilotEnabled(); !ok {
		return &ValidationError{Name: "objection_copilot_enabled", err: errors.New(`ent: missing required field "Session.objection_copilot_enabled"`)}
	}
	if _, ok := _c.mutation.SentinelEnabled(); !ok {
		return &ValidationError{Name: "sentinel_enabled", err: errors.New(`ent: missing required field "Session.sentinel_enabled"`)}
	}
	if _, ok := _c.mutation.BriefStatus(); !ok {
		return &ValidationError{Name: "brief_status", err: errors.New(`ent: missing required field "Session.brief_status"`)}
	}
	if v, ok := _c.mutation.BriefStatus(); ok {
		if err := session.BriefStatusValidator(v); err != nil {
			return &ValidationError{Name: "brief_status", err: fmt.Errorf(`ent: validator failed for field "Session.brief_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WitnessToken(); !ok {
		return &ValidationError{Name: "witness_token", err: errors.New(`ent: missing required field "Session.witness_token"`)}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "Session.question_count"`)}
	}
	if _, ok := _c.mutation.TotalPauseMs(); !ok {
		return &ValidationError{Name: "total_pause_ms", err: errors.New(`ent: missing required field "Session.total_pause_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Session.updated_at"`)}
	}
	if len(_c.mutation.LegalCaseIDs()) == 0 {
		return &ValidationError{Name: "legal_case", err: errors.New(`ent: missing required edge "Session.legal_case"`)}
	}
	if len(_c.mutation.WitnessIDs()) == 0 {
		return &ValidationError{Name: "witness", err: errors.New(`ent: missing required edge "Session.witness"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AggressionLevel(); ok {
		_spec.SetField(session.FieldAggressionLevel, field.TypeEnum, value)
		_node.AggressionLevel = value
	}
	if value, ok := _c.mutation.FocusAreas(); ok {
		_spec.SetField(session.FieldFocusAreas, field.TypeJSON, value)
		_node.FocusAreas = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(session.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.CurrentTopic(); ok {
		_spec.SetField(session.FieldCurrentTopic, field.TypeString, value)
		_node.CurrentTopic = value
	}
	if value, ok := _c.mutation.ObjectionCopilotEnabled(); ok {
		_spec.SetField(session.FieldObjectionCopilotEnabled, field.TypeBool, value)
		_node.ObjectionCopilotEnabled = value
	}
	if value, ok := _c.mutation.SentinelEnabled(); ok {
		_spec.SetField(session.FieldSentinelEnabled, field.TypeBool, value)
		_node.SentinelEnabled = value
	}
	if value, ok := _c.mutation.BriefStatus(); ok {
		_spec.SetField(session.FieldBriefStatus, field.TypeEnum, value)
		_node.BriefStatus = value
	}
	if value, ok := _c.mutation.WitnessToken(); ok {
		_spec.SetField(session.FieldWitnessToken, field.TypeString, value)
		_node.WitnessToken = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(session.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(session.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(session.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.PausedAt(); ok {
		_spec.SetField(session.FieldPausedAt, field.TypeTime, value)
		_node.PausedAt = &value
	}
	if value, ok := _c.mutation.TotalPauseMs(); ok {
		_spec.SetField(session.FieldTotalPauseMs, field.TypeInt64, value)
		_node.TotalPauseMs = value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(session.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.SessionScore(); ok {
		_spec.SetField(session.FieldSessionScore, field.TypeFloat64, value)
		_node.SessionScore = &value
	}
	if value, ok := _c.mutation.ConsistencyRate(); ok {
		_spec.SetField(session.FieldConsistencyRate, field.TypeFloat64, value)
		_node.ConsistencyRate = &value
	}
	if value, ok := _c.mutation.PriorWeakAreas(); ok {
		_spec.SetField(session.FieldPriorWeakAreas, field.TypeJSON, value)
		_node.PriorWeakAreas = value
	}
	if value, ok := _c.mutation.ExternalContextID(); ok {
		_spec.SetField(session.FieldExternalContextID, field.TypeString, value)
		_node.ExternalContextID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LegalCaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.LegalCaseTable,
			Columns: []string{session.LegalCaseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(legalcase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CaseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WitnessIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.WitnessTable,
			Columns: []string{session.WitnessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(witness.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WitnessID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AlertsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BriefIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
