// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verdictlabs/verdict/ent/firm"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/ent/predicate"
	"github.com/verdictlabs/verdict/ent/user"
)

// FirmUpdate is the builder for updating Firm entities.
type FirmUpdate struct {
	config
	hooks    []Hook
	mutation *FirmMutation
}

// Where appends a list predicates to the FirmUpdate builder.
func (_u *FirmUpdate) Where(ps ...predicate.Firm) *FirmUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *FirmUpdate) SetName(v string) *FirmUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FirmUpdate) SetNillableName(v *string) *FirmUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRetentionDays sets the "retention_days" field.
func (_u *FirmUpdate) SetRetentionDays(v int) *FirmUpdate {
	_u.mutation.ResetRetentionDays()
	_u.mutation.SetRetentionDays(v)
	return _u
}

// SetNillableRetentionDays sets the "retention_days" field if the given value is not nil.
func (_u *FirmUpdate) SetNillableRetentionDays(v *int) *FirmUpdate {
	if v != nil {
		_u.SetRetentionDays(*v)
	}
	return _u
}

// AddRetentionDays adds value to the "retention_days" field.
func (_u *FirmUpdate) AddRetentionDays(v int) *FirmUpdate {
	_u.mutation.AddRetentionDays(v)
	return _u
}

// AddUserIDs adds the "users" edge to the User entity by IDs.
func (_u *FirmUpdate) AddUserIDs(ids ...string) *FirmUpdate {
	_u.mutation.AddUserIDs(ids...)
	return _u
}

// AddUsers adds the "users" edges to the User entity.
func (_u *FirmUpdate) AddUsers(v ...*User) *FirmUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserIDs(ids...)
}

// AddCaseIDs adds the "cases" edge to the LegalCase entity by IDs.
func (_u *FirmUpdate) AddCaseIDs(ids ...string) *FirmUpdate {
	_u.mutation.AddCaseIDs(ids...)
	return _u
}

// AddCases adds the "cases" edges to the LegalCase entity.
func (_u *FirmUpdate) AddCases(v ...*LegalCase) *FirmUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCaseIDs(ids...)
}

// Mutation returns the FirmMutation object of the builder.
func (_u *FirmUpdate) Mutation() *FirmMutation {
	return _u.mutation
}

// ClearUsers clears all "users" edges to the User entity.
func (_u *FirmUpdate) ClearUsers() *FirmUpdate {
	_u.mutation.ClearUsers()
	return _u
}

// RemoveUserIDs removes the "users" edge to User entities by IDs.
func (_u *FirmUpdate) RemoveUserIDs(ids ...string) *FirmUpdate {
	_u.mutation.RemoveUserIDs(ids...)
	return _u
}

// RemoveUsers removes "users" edges to User entities.
func (_u *FirmUpdate) RemoveUsers(v ...*User) *FirmUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserIDs(ids...)
}

// ClearCases clears all "cases" edges to the LegalCase entity.
func (_u *FirmUpdate) ClearCases() *FirmUpdate {
	_u.mutation.ClearCases()
	return _u
}

// RemoveCaseIDs removes the "cases" edge to LegalCase entities by IDs.
func (_u *FirmUpdate) RemoveCaseIDs(ids ...string) *FirmUpdate {
	_u.mutation.RemoveCaseIDs(ids...)
	return _u
}

// RemoveCases removes "cases" edges to LegalCase entities.
func (_u *FirmUpdate) RemoveCases(v ...*LegalCase) *FirmUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCaseIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FirmUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FirmUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FirmUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FirmUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FirmUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := firm.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Firm.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FirmUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(firm.Table, firm.Columns, sqlgraph.NewFieldSpec(firm.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(firm.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RetentionDays(); ok {
		_spec.SetField(firm.FieldRetentionDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetentionDays(); ok {
		_spec.AddField(firm.FieldRetentionDays, field.TypeInt, value)
	}
	if _u.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   firm.UsersTable,
			Columns: []string{firm.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsersIDs(); len(nodes) > 0 && !_u.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   firm.UsersTable,
			Columns: []string{firm.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   firm.UsersTable,
			Columns: []string{firm.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   firm.CasesTable,
			Columns: []string{firm.CasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(legalcase.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCasesIDs(); len(nodes) > 0 && !_u.mutation.CasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   firm.CasesTable,
			Columns: []string{firm.CasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(legalcase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   firm.CasesTable,
			Columns: []string{firm.CasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(legalcase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{firm.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FirmUpdateOne is the builder for updating a single Firm entity.
type FirmUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FirmMutation
}

// SetName sets the "name" field.
func (_u *FirmUpdateOne) SetName(v string) *FirmUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FirmUpdateOne) SetNillableName(v *string) *FirmUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRetentionDays sets the "retention_days" field.
func (_u *FirmUpdateOne) SetRetentionDays(v int) *FirmUpdateOne {
	_u.mutation.ResetRetentionDays()
	_u.mutation.SetRetentionDays(v)
	return _u
}

// SetNillableRetentionDays sets the "retention_days" field if the given value is not nil.
func (_u *FirmUpdateOne) SetNillableRetentionDays(v *int) *FirmUpdateOne {
	if v != nil {
		_u.SetRetentionDays(*v)
	}
	return _u
}

// AddRetentionDays adds value to the "retention_days" field.
func (_u *FirmUpdateOne) AddRetentionDays(v int) *FirmUpdateOne {
	_u.mutation.AddRetentionDays(v)
	return _u
}

// AddUserIDs adds the "users" edge to the User entity by IDs.
func (_u *FirmUpdateOne) AddUserIDs(ids ...string) *FirmUpdateOne {
	_u.mutation.AddUserIDs(ids...)
	return _u
}

// AddUsers adds the "users" edges to the User entity.
func (_u *FirmUpdateOne) AddUsers(v ...*User) *FirmUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserIDs(ids...)
}

// AddCaseIDs adds the "cases" edge to the LegalCase entity by IDs.
func (_u *FirmUpdateOne) AddCaseIDs(ids ...string) *FirmUpdateOne {
	_u.mutation.AddCaseIDs(ids...)
	return _u
}

// AddCases adds the "cases" edges to the LegalCase entity.
func (_u *FirmUpdateOne) AddCases(v ...*LegalCase) *FirmUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCaseIDs(ids...)
}

// Mutation returns the FirmMutation object of the builder.
func (_u *FirmUpdateOne) Mutation() *FirmMutation {
	return _u.mutation
}

// ClearUsers clears all "users" edges to the User entity.
func (_u *FirmUpdateOne) ClearUsers() *FirmUpdateOne {
	_u.mutation.ClearUsers()
	return _u
}

// RemoveUserIDs removes the "users" edge to User entities by IDs.
func (_u *FirmUpdateOne) RemoveUserIDs(ids ...string) *FirmUpdateOne {
	_u.mutation.RemoveUserIDs(ids...)
	return _u
}

// RemoveUsers removes "users" edges to User entities.
func (_u *FirmUpdateOne) RemoveUsers(v ...*User) *FirmUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserIDs(ids...)
}

// ClearCases clears all "cases" edges to the LegalCase entity.
func (_u *FirmUpdateOne) ClearCases() *FirmUpdateOne {
	_u.mutation.ClearCases()
	return _u
}

// RemoveCaseIDs removes the "cases" edge to LegalCase entities by IDs.
func (_u *FirmUpdateOne) RemoveCaseIDs(ids ...string) *FirmUpdateOne {
	_u.mutation.RemoveCaseIDs(ids...)
	return _u
}

// RemoveCases removes "cases" edges to LegalCase entities.
func (_u *FirmUpdateOne) RemoveCases(v ...*LegalCase) *FirmUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCaseIDs(ids...)
}

// Where appends a list predicates to the FirmUpdate builder.
func (_u *FirmUpdateOne) Where(ps ...predicate.Firm) *FirmUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FirmUpdateOne) Select(field string, fields ...string) *FirmUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Firm entity.
func (_u *FirmUpdateOne) Save(ctx context.Context) (*Firm, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FirmUpdateOne) SaveX(ctx context.Context) *Firm {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FirmUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FirmUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FirmUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := firm.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Firm.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FirmUpdateOne) sqlSave(ctx context.Context) (_node *Firm, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(firm.Table, firm.Columns, sqlgraph.NewFieldSpec(firm.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Firm.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, firm.FieldID)
		for _, f := range fields {
			if !firm.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != firm.FieldID {
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
		_spec.SetField(firm.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RetentionDays(); ok {
		_spec.SetField(firm.FieldRetentionDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetentionDays(); ok {
		_spec.AddField(firm.FieldRetentionDays, field.TypeInt, value)
	}
	if _u.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   firm.UsersTable,
			Columns: []string{firm.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsersIDs(); len(nodes) > 0 && !_u.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   firm.UsersTable,
			Columns: []string{firm.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   firm.UsersTable,
			Columns: []string{firm.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   firm.CasesTable,
			Columns: []string{firm.CasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(legalcase.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCasesIDs(); len(nodes) > 0 && !_u.mutation.CasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   firm.CasesTable,
			Columns: []string{firm.CasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(legalcase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   firm.CasesTable,
			Columns: []string{firm.CasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(legalcase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Firm{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{firm.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
