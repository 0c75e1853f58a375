// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/ent/witness"
)

// WitnessCreate is the builder for creating a Witness entity.
type WitnessCreate struct {
	config
	mutation *WitnessMutation
	hooks    []Hook
}

// SetCaseID sets the "case_id" field.
func (_c *WitnessCreate) SetCaseID(v string) *WitnessCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *WitnessCreate) SetName(v string) *WitnessCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *WitnessCreate) SetEmail(v string) *WitnessCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *WitnessCreate) SetNillableEmail(v *string) *WitnessCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *WitnessCreate) SetRole(v string) *WitnessCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *WitnessCreate) SetNillableRole(v *string) *WitnessCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetSessionCount sets the "session_count" field.
func (_c *WitnessCreate) SetSessionCount(v int) *WitnessCreate {
	_c.mutation.SetSessionCount(v)
	return _c
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_c *WitnessCreate) SetNillableSessionCount(v *int) *WitnessCreate {
	if v != nil {
		_c.SetSessionCount(*v)
	}
	return _c
}

// SetLatestScore sets the "latest_score" field.
func (_c *WitnessCreate) SetLatestScore(v float64) *WitnessCreate {
	_c.mutation.SetLatestScore(v)
	return _c
}

// SetNillableLatestScore sets the "latest_score" field if the given value is not nil.
func (_c *WitnessCreate) SetNillableLatestScore(v *float64) *WitnessCreate {
	if v != nil {
		_c.SetLatestScore(*v)
	}
	return _c
}

// SetBaselineScore sets the "baseline_score" field.
func (_c *WitnessCreate) SetBaselineScore(v float64) *WitnessCreate {
	_c.mutation.SetBaselineScore(v)
	return _c
}

// SetNillableBaselineScore sets the "baseline_score" field if the given value is not nil.
func (_c *WitnessCreate) SetNillableBaselineScore(v *float64) *WitnessCreate {
	if v != nil {
		_c.SetBaselineScore(*v)
	}
	return _c
}

// SetPlateauDetected sets the "plateau_detected" field.
func (_c *WitnessCreate) SetPlateauDetected(v bool) *WitnessCreate {
	_c.mutation.SetPlateauDetected(v)
	return _c
}

// SetNillablePlateauDetected sets the "plateau_detected" field if the given value is not nil.
func (_c *WitnessCreate) SetNillablePlateauDetected(v *bool) *WitnessCreate {
	if v != nil {
		_c.SetPlateauDetected(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WitnessCreate) SetCreatedAt(v time.Time) *WitnessCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WitnessCreate) SetNillableCreatedAt(v *time.Time) *WitnessCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WitnessCreate) SetID(v string) *WitnessCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetLegalCaseID sets the "legal_case" edge to the LegalCase entity by ID.
func (_c *WitnessCreate) SetLegalCaseID(id string) *WitnessCreate {
	_c.mutation.SetLegalCaseID(id)
	return _c
}

// SetLegalCase sets the "legal_case" edge to the LegalCase entity.
func (_c *WitnessCreate) SetLegalCase(v *LegalCase) *WitnessCreate {
	return _c.SetLegalCaseID(v.ID)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_c *WitnessCreate) AddSessionIDs(ids ...string) *WitnessCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_c *WitnessCreate) AddSessions(v ...*Session) *WitnessCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// Mutation returns the WitnessMutation object of the builder.
func (_c *WitnessCreate) Mutation() *WitnessMutation {
	return _c.mutation
}

// Save creates the Witness in the database.
func (_c *WitnessCreate) Save(ctx context.Context) (*Witness, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WitnessCreate) SaveX(ctx context.Context) *Witness {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WitnessCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WitnessCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WitnessCreate) defaults() {
	if _, ok := _c.mutation.SessionCount(); !ok {
		v := witness.DefaultSessionCount
		_c.mutation.SetSessionCount(v)
	}
	if _, ok := _c.mutation.PlateauDetected(); !ok {
		v := witness.DefaultPlateauDetected
		_c.mutation.SetPlateauDetected(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := witness.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WitnessCreate) check() error {
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "Witness.case_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Witness.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := witness.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Witness.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionCount(); !ok {
		return &ValidationError{Name: "session_count", err: errors.New(`ent: missing required field "Witness.session_count"`)}
	}
	if _, ok := _c.mutation.PlateauDetected(); !ok {
		return &ValidationError{Name: "plateau_detected", err: errors.New(`ent: missing required field "Witness.plateau_detected"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Witness.created_at"`)}
	}
	if len(_c.mutation.LegalCaseIDs()) == 0 {
		return &ValidationError{Name: "legal_case", err: errors.New(`ent: missing required edge "Witness.legal_case"`)}
	}
	return nil
}

func (_c *WitnessCreate) sqlSave(ctx context.Context) (*Witness, error) {
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
			return nil, fmt.Errorf("unexpected Witness.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WitnessCreate) createSpec() (*Witness, *sqlgraph.CreateSpec) {
	var (
		_node = &Witness{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(witness.Table, sqlgraph.NewFieldSpec(witness.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(witness.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(witness.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(witness.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.SessionCount(); ok {
		_spec.SetField(witness.FieldSessionCount, field.TypeInt, value)
		_node.SessionCount = value
	}
	if value, ok := _c.mutation.LatestScore(); ok {
		_spec.SetField(witness.FieldLatestScore, field.TypeFloat64, value)
		_node.LatestScore = &value
	}
	if value, ok := _c.mutation.BaselineScore(); ok {
		_spec.SetField(witness.FieldBaselineScore, field.TypeFloat64, value)
		_node.BaselineScore = &value
	}
	if value, ok := _c.mutation.PlateauDetected(); ok {
		_spec.SetField(witness.FieldPlateauDetected, field.TypeBool, value)
		_node.PlateauDetected = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(witness.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.LegalCaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   witness.LegalCaseTable,
			Columns: []string{witness.LegalCaseColumn},
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
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WitnessCreateBulk is the builder for creating many Witness entities in bulk.
type WitnessCreateBulk struct {
	config
	err      error
	builders []*WitnessCreate
}

// Save creates the Witness entities in the database.
func (_c *WitnessCreateBulk) Save(ctx context.Context) ([]*Witness, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Witness, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WitnessMutation)
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
func (_c *WitnessCreateBulk) SaveX(ctx context.Context) []*Witness {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WitnessCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WitnessCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
