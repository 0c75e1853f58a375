// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verdictlabs/verdict/ent/predicate"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/ent/witness"
)

// WitnessUpdate is the builder for updating Witness entities.
type WitnessUpdate struct {
	config
	hooks    []Hook
	mutation *WitnessMutation
}

// Where appends a list predicates to the WitnessUpdate builder.
func (_u *WitnessUpdate) Where(ps ...predicate.Witness) *WitnessUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *WitnessUpdate) SetName(v string) *WitnessUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WitnessUpdate) SetNillableName(v *string) *WitnessUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *WitnessUpdate) SetEmail(v string) *WitnessUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *WitnessUpdate) SetNillableEmail(v *string) *WitnessUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *WitnessUpdate) ClearEmail() *WitnessUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetRole sets the "role" field.
func (_u *WitnessUpdate) SetRole(v string) *WitnessUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *WitnessUpdate) SetNillableRole(v *string) *WitnessUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *WitnessUpdate) ClearRole() *WitnessUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetSessionCount sets the "session_count" field.
func (_u *WitnessUpdate) SetSessionCount(v int) *WitnessUpdate {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *WitnessUpdate) SetNillableSessionCount(v *int) *WitnessUpdate {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *WitnessUpdate) AddSessionCount(v int) *WitnessUpdate {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetLatestScore sets the "latest_score" field.
func (_u *WitnessUpdate) SetLatestScore(v float64) *WitnessUpdate {
	_u.mutation.ResetLatestScore()
	_u.mutation.SetLatestScore(v)
	return _u
}

// SetNillableLatestScore sets the "latest_score" field if the given value is not nil.
func (_u *WitnessUpdate) SetNillableLatestScore(v *float64) *WitnessUpdate {
	if v != nil {
		_u.SetLatestScore(*v)
	}
	return _u
}

// AddLatestScore adds value to the "latest_score" field.
func (_u *WitnessUpdate) AddLatestScore(v float64) *WitnessUpdate {
	_u.mutation.AddLatestScore(v)
	return _u
}

// ClearLatestScore clears the value of the "latest_score" field.
func (_u *WitnessUpdate) ClearLatestScore() *WitnessUpdate {
	_u.mutation.ClearLatestScore()
	return _u
}

// SetBaselineScore sets the "baseline_score" field.
func (_u *WitnessUpdate) SetBaselineScore(v float64) *WitnessUpdate {
	_u.mutation.ResetBaselineScore()
	_u.mutation.SetBaselineScore(v)
	return _u
}

// SetNillableBaselineScore sets the "baseline_score" field if the given value is not nil.
func (_u *WitnessUpdate) SetNillableBaselineScore(v *float64) *WitnessUpdate {
	if v != nil {
		_u.SetBaselineScore(*v)
	}
	return _u
}

// AddBaselineScore adds value to the "baseline_score" field.
func (_u *WitnessUpdate) AddBaselineScore(v float64) *WitnessUpdate {
	_u.mutation.AddBaselineScore(v)
	return _u
}

// ClearBaselineScore clears the value of the "baseline_score" field.
func (_u *WitnessUpdate) ClearBaselineScore() *WitnessUpdate {
	_u.mutation.ClearBaselineScore()
	return _u
}

// SetPlateauDetected sets the "plateau_detected" field.
func (_u *WitnessUpdate) SetPlateauDetected(v bool) *WitnessUpdate {
	_u.mutation.SetPlateauDetected(v)
	return _u
}

// SetNillablePlateauDetected sets the "plateau_detected" field if the given value is not nil.
func (_u *WitnessUpdate) SetNillablePlateauDetected(v *bool) *WitnessUpdate {
	if v != nil {
		_u.SetPlateauDetected(*v)
	}
	return _u
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *WitnessUpdate) AddSessionIDs(ids ...string) *WitnessUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *WitnessUpdate) AddSessions(v ...*Session) *WitnessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the WitnessMutation object of the builder.
func (_u *WitnessUpdate) Mutation() *WitnessMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *WitnessUpdate) ClearSessions() *WitnessUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *WitnessUpdate) RemoveSessionIDs(ids ...string) *WitnessUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *WitnessUpdate) RemoveSessions(v ...*Session) *WitnessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WitnessUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WitnessUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WitnessUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WitnessUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WitnessUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := witness.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Witness.name": %w`, err)}
		}
	}
	if _u.mutation.LegalCaseCleared() && len(_u.mutation.LegalCaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Witness.legal_case"`)
	}
	return nil
}

func (_u *WitnessUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(witness.Table, witness.Columns, sqlgraph.NewFieldSpec(witness.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(witness.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(witness.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(witness.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(witness.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(witness.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(witness.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(witness.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatestScore(); ok {
		_spec.SetField(witness.FieldLatestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatestScore(); ok {
		_spec.AddField(witness.FieldLatestScore, field.TypeFloat64, value)
	}
	if _u.mutation.LatestScoreCleared() {
		_spec.ClearField(witness.FieldLatestScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BaselineScore(); ok {
		_spec.SetField(witness.FieldBaselineScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBaselineScore(); ok {
		_spec.AddField(witness.FieldBaselineScore, field.TypeFloat64, value)
	}
	if _u.mutation.BaselineScoreCleared() {
		_spec.ClearField(witness.FieldBaselineScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PlateauDetected(); ok {
		_spec.SetField(witness.FieldPlateauDetected, field.TypeBool, value)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   witness.SessionsTable,
			Columns: []string{witness.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   witness.SessionsTable,
			Columns: []string{witness.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   witness.SessionsTable,
			Columns: []string{witness.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{witness.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WitnessUpdateOne is the builder for updating a single Witness entity.
type WitnessUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WitnessMutation
}

// SetName sets the "name" field.
func (_u *WitnessUpdateOne) SetName(v string) *WitnessUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WitnessUpdateOne) SetNillableName(v *string) *WitnessUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *WitnessUpdateOne) SetEmail(v string) *WitnessUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *WitnessUpdateOne) SetNillableEmail(v *string) *WitnessUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *WitnessUpdateOne) ClearEmail() *WitnessUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetRole sets the "role" field.
func (_u *WitnessUpdateOne) SetRole(v string) *WitnessUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *WitnessUpdateOne) SetNillableRole(v *string) *WitnessUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *WitnessUpdateOne) ClearRole() *WitnessUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetSessionCount sets the "session_count" field.
func (_u *WitnessUpdateOne) SetSessionCount(v int) *WitnessUpdateOne {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *WitnessUpdateOne) SetNillableSessionCount(v *int) *WitnessUpdateOne {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *WitnessUpdateOne) AddSessionCount(v int) *WitnessUpdateOne {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetLatestScore sets the "latest_score" field.
func (_u *WitnessUpdateOne) SetLatestScore(v float64) *WitnessUpdateOne {
	_u.mutation.ResetLatestScore()
	_u.mutation.SetLatestScore(v)
	return _u
}

// SetNillableLatestScore sets the "latest_score" field if the given value is not nil.
func (_u *WitnessUpdateOne) SetNillableLatestScore(v *float64) *WitnessUpdateOne {
	if v != nil {
		_u.SetLatestScore(*v)
	}
	return _u
}

// AddLatestScore adds value to the "latest_score" field.
func (_u *WitnessUpdateOne) AddLatestScore(v float64) *WitnessUpdateOne {
	_u.mutation.AddLatestScore(v)
	return _u
}

// ClearLatestScore clears the value of the "latest_score" field.
func (_u *WitnessUpdateOne) ClearLatestScore() *WitnessUpdateOne {
	_u.mutation.ClearLatestScore()
	return _u
}

// SetBaselineScore sets the "baseline_score" field.
func (_u *WitnessUpdateOne) SetBaselineScore(v float64) *WitnessUpdateOne {
	_u.mutation.ResetBaselineScore()
	_u.mutation.SetBaselineScore(v)
	return _u
}

// SetNillableBaselineScore sets the "baseline_score" field if the given value is not nil.
func (_u *WitnessUpdateOne) SetNillableBaselineScore(v *float64) *WitnessUpdateOne {
	if v != nil {
		_u.SetBaselineScore(*v)
	}
	return _u
}

// AddBaselineScore adds value to the "baseline_score" field.
func (_u *WitnessUpdateOne) AddBaselineScore(v float64) *WitnessUpdateOne {
	_u.mutation.AddBaselineScore(v)
	return _u
}

// ClearBaselineScore clears the value of the "baseline_score" field.
func (_u *WitnessUpdateOne) ClearBaselineScore() *WitnessUpdateOne {
	_u.mutation.ClearBaselineScore()
	return _u
}

// SetPlateauDetected sets the "plateau_detected" field.
func (_u *WitnessUpdateOne) SetPlateauDetected(v bool) *WitnessUpdateOne {
	_u.mutation.SetPlateauDetected(v)
	return _u
}

// SetNillablePlateauDetected sets the "plateau_detected" field if the given value is not nil.
func (_u *WitnessUpdateOne) SetNillablePlateauDetected(v *bool) *WitnessUpdateOne {
	if v != nil {
		_u.SetPlateauDetected(*v)
	}
	return _u
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *WitnessUpdateOne) AddSessionIDs(ids ...string) *WitnessUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *WitnessUpdateOne) AddSessions(v ...*Session) *WitnessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the WitnessMutation object of the builder.
func (_u *WitnessUpdateOne) Mutation() *WitnessMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *WitnessUpdateOne) ClearSessions() *WitnessUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *WitnessUpdateOne) RemoveSessionIDs(ids ...string) *WitnessUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *WitnessUpdateOne) RemoveSessions(v ...*Session) *WitnessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Where appends a list predicates to the WitnessUpdate builder.
func (_u *WitnessUpdateOne) Where(ps ...predicate.Witness) *WitnessUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WitnessUpdateOne) Select(field string, fields ...string) *WitnessUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Witness entity.
func (_u *WitnessUpdateOne) Save(ctx context.Context) (*Witness, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WitnessUpdateOne) SaveX(ctx context.Context) *Witness {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WitnessUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WitnessUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WitnessUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := witness.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Witness.name": %w`, err)}
		}
	}
	if _u.mutation.LegalCaseCleared() && len(_u.mutation.LegalCaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Witness.legal_case"`)
	}
	return nil
}

func (_u *WitnessUpdateOne) sqlSave(ctx context.Context) (_node *Witness, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(witness.Table, witness.Columns, sqlgraph.NewFieldSpec(witness.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Witness.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, witness.FieldID)
		for _, f := range fields {
			if !witness.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != witness.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(witness.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(witness.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(witness.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(witness.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(witness.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(witness.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(witness.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatestScore(); ok {
		_spec.SetField(witness.FieldLatestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatestScore(); ok {
		_spec.AddField(witness.FieldLatestScore, field.TypeFloat64, value)
	}
	if _u.mutation.LatestScoreCleared() {
		_spec.ClearField(witness.FieldLatestScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BaselineScore(); ok {
		_spec.SetField(witness.FieldBaselineScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBaselineScore(); ok {
		_spec.AddField(witness.FieldBaselineScore, field.TypeFloat64, value)
	}
	if _u.mutation.BaselineScoreCleared() {
		_spec.ClearField(witness.FieldBaselineScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PlateauDetected(); ok {
		_spec.SetField(witness.FieldPlateauDetected, field.TypeBool, value)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   witness.SessionsTable,
			Columns: []string{witness.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   witness.SessionsTable,
			Columns: []string{witness.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   witness.SessionsTable,
			Columns: []string{witness.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Witness{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{witness.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
