// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verdictlabs/verdict/ent/firm"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/ent/user"
)

// FirmCreate is the builder for creating a Firm entity.
type FirmCreate struct {
	config
	mutation *FirmMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *FirmCreate) SetName(v string) *FirmCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRetentionDays sets the "retention_days" field.
func (_c *FirmCreate) SetRetentionDays(v int) *FirmCreate {
	_c.mutation.SetRetentionDays(v)
	return _c
}

// SetNillableRetentionDays sets the "retention_days" field if the given value is not nil.
func (_c *FirmCreate) SetNillableRetentionDays(v *int) *FirmCreate {
	if v != nil {
		_c.SetRetentionDays(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FirmCreate) SetCreatedAt(v time.Time) *FirmCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FirmCreate) SetNillableCreatedAt(v *time.Time) *FirmCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FirmCreate) SetID(v string) *FirmCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddUserIDs adds the "users" edge to the User entity by IDs.
func (_c *FirmCreate) AddUserIDs(ids ...string) *FirmCreate {
	_c.mutation.AddUserIDs(ids...)
	return _c
}

// AddUsers adds the "users" edges to the User entity.
func (_c *FirmCreate) AddUsers(v ...*User) *FirmCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUserIDs(ids...)
}

// AddCaseIDs adds the "cases" edge to the LegalCase entity by IDs.
func (_c *FirmCreate) AddCaseIDs(ids ...string) *FirmCreate {
	_c.mutation.AddCaseIDs(ids...)
	return _c
}

// AddCases adds the "cases" edges to the LegalCase entity.
func (_c *FirmCreate) AddCases(v ...*LegalCase) *FirmCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCaseIDs(ids...)
}

// Mutation returns the FirmMutation object of the builder.
func (_c *FirmCreate) Mutation() *FirmMutation {
	return _c.mutation
}

// Save creates the Firm in the database.
func (_c *FirmCreate) Save(ctx context.Context) (*Firm, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FirmCreate) SaveX(ctx context.Context) *Firm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FirmCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FirmCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FirmCreate) defaults() {
	if _, ok := _c.mutation.RetentionDays(); !ok {
		v := firm.DefaultRetentionDays
		_c.mutation.SetRetentionDays(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := firm.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FirmCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Firm.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := firm.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Firm.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetentionDays(); !ok {
		return &ValidationError{Name: "retention_days", err: errors.New(`ent: missing required field "Firm.retention_days"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Firm.created_at"`)}
	}
	return nil
}

func (_c *FirmCreate) sqlSave(ctx context.Context) (*Firm, error) {
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
			return nil, fmt.Errorf("unexpected Firm.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FirmCreate) createSpec() (*Firm, *sqlgraph.CreateSpec) {
	var (
		_node = &Firm{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(firm.Table, sqlgraph.NewFieldSpec(firm.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(firm.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.RetentionDays(); ok {
		_spec.SetField(firm.FieldRetentionDays, field.TypeInt, value)
		_node.RetentionDays = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(firm.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UsersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CasesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FirmCreateBulk is the builder for creating many Firm entities in bulk.
type FirmCreateBulk struct {
	config
	err      error
	builders []*FirmCreate
}

// Save creates the Firm entities in the database.
func (_c *FirmCreateBulk) Save(ctx context.Context) ([]*Firm, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Firm, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FirmMutation)
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
func (_c *FirmCreateBulk) SaveX(ctx context.Context) []*Firm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FirmCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FirmCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
