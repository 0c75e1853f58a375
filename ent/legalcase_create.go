// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verdictlabs/verdict/ent/document"
	"github.com/verdictlabs/verdict/ent/firm"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/ent/witness"
)

// LegalCaseCreate is the builder for creating a LegalCase entity.
type LegalCaseCreate struct {
	config
	mutation *LegalCaseMutation
	hooks    []Hook
}

// SetFirmID sets the "firm_id" field.
func (_c *LegalCaseCreate) SetFirmID(v string) *LegalCaseCreate {
	_c.mutation.SetFirmID(v)
	return _c
}

// SetCaseName sets the "case_name" field.
func (_c *LegalCaseCreate) SetCaseName(v string) *LegalCaseCreate {
	_c.mutation.SetCaseName(v)
	return _c
}

// SetCaseType sets the "case_type" field.
func (_c *LegalCaseCreate) SetCaseType(v legalcase.CaseType) *LegalCaseCreate {
	_c.mutation.SetCaseType(v)
	return _c
}

// SetNillableCaseType sets the "case_type" field if the given value is not nil.
func (_c *LegalCaseCreate) SetNillableCaseType(v *legalcase.CaseType) *LegalCaseCreate {
	if v != nil {
		_c.SetCaseType(*v)
	}
	return _c
}

// SetOpposingParty sets the "opposing_party" field.
func (_c *LegalCaseCreate) SetOpposingParty(v string) *LegalCaseCreate {
	_c.mutation.SetOpposingParty(v)
	return _c
}

// SetNillableOpposingParty sets the "opposing_party" field if the given value is not nil.
func (_c *LegalCaseCreate) SetNillableOpposingParty(v *string) *LegalCaseCreate {
	if v != nil {
		_c.SetOpposingParty(*v)
	}
	return _c
}

// SetCaseNumber sets the "case_number" field.
func (_c *LegalCaseCreate) SetCaseNumber(v string) *LegalCaseCreate {
	_c.mutation.SetCaseNumber(v)
	return _c
}

// SetNillableCaseNumber sets the "case_number" field if the given value is not nil.
func (_c *LegalCaseCreate) SetNillableCaseNumber(v *string) *LegalCaseCreate {
	if v != nil {
		_c.SetCaseNumber(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *LegalCaseCreate) SetDescription(v string) *LegalCaseCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *LegalCaseCreate) SetNillableDescription(v *string) *LegalCaseCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDepositionDate sets the "deposition_date" field.
func (_c *LegalCaseCreate) SetDepositionDate(v time.Time) *LegalCaseCreate {
	_c.mutation.SetDepositionDate(v)
	return _c
}

// SetNillableDepositionDate sets the "deposition_date" field if the given value is not nil.
func (_c *LegalCaseCreate) SetNillableDepositionDate(v *time.Time) *LegalCaseCreate {
	if v != nil {
		_c.SetDepositionDate(*v)
	}
	return _c
}

// SetExtractedFacts sets the "extracted_facts" field.
func (_c *LegalCaseCreate) SetExtractedFacts(v map[string]interface{}) *LegalCaseCreate {
	_c.mutation.SetExtractedFacts(v)
	return _c
}

// SetPriorStatements sets the "prior_statements" field.
func (_c *LegalCaseCreate) SetPriorStatements(v string) *LegalCaseCreate {
	_c.mutation.SetPriorStatements(v)
	return _c
}

// SetNillablePriorStatements sets the "prior_statements" field if the given value is not nil.
func (_c *LegalCaseCreate) SetNillablePriorStatements(v *string) *LegalCaseCreate {
	if v != nil {
		_c.SetPriorStatements(*v)
	}
	return _c
}

// SetExhibitList sets the "exhibit_list" field.
func (_c *LegalCaseCreate) SetExhibitList(v string) *LegalCaseCreate {
	_c.mutation.SetExhibitList(v)
	return _c
}

// SetNillableExhibitList sets the "exhibit_list" field if the given value is not nil.
func (_c *LegalCaseCreate) SetNillableExhibitList(v *string) *LegalCaseCreate {
	if v != nil {
		_c.SetExhibitList(*v)
	}
	return _c
}

// SetFocusAreas sets the "focus_areas" field.
func (_c *LegalCaseCreate) SetFocusAreas(v []string) *LegalCaseCreate {
	_c.mutation.SetFocusAreas(v)
	return _c
}

// SetAggressionPreset sets the "aggression_preset" field.
func (_c *LegalCaseCreate) SetAggressionPreset(v legalcase.AggressionPreset) *LegalCaseCreate {
	_c.mutation.SetAggressionPreset(v)
	return _c
}

// SetNillableAggressionPreset sets the "aggression_preset" field if the given value is not nil.
func (_c *LegalCaseCreate) SetNillableAggressionPreset(v *legalcase.AggressionPreset) *LegalCaseCreate {
	if v != nil {
		_c.SetAggressionPreset(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LegalCaseCreate) SetCreatedAt(v time.Time) *LegalCaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LegalCaseCreate) SetNillableCreatedAt(v *time.Time) *LegalCaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LegalCaseCreate) SetUpdatedAt(v time.Time) *LegalCaseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LegalCaseCreate) SetNillableUpdatedAt(v *time.Time) *LegalCaseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LegalCaseCreate) SetID(v string) *LegalCaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetFirm sets the "firm" edge to the Firm entity.
func (_c *LegalCaseCreate) SetFirm(v *Firm) *LegalCaseCreate {
	return _c.SetFirmID(v.ID)
}

// AddWitnessIDs adds the "witnesses" edge to the Witness entity by IDs.
func (_c *LegalCaseCreate) AddWitnessIDs(ids ...string) *LegalCaseCreate {
	_c.mutation.AddWitnessIDs(ids...)
	return _c
}

// AddWitnesses adds the "witnesses" edges to the Witness entity.
func (_c *LegalCaseCreate) AddWitnesses(v ...*Witness) *LegalCaseCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWitnessIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_c *LegalCaseCreate) AddSessionIDs(ids ...string) *LegalCaseCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_c *LegalCaseCreate) AddSessions(v ...*Session) *LegalCaseCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *LegalCaseCreate) AddDocumentIDs(ids ...string) *LegalCaseCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *LegalCaseCreate) AddDocuments(v ...*Document) *LegalCaseCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// Mutation returns the LegalCaseMutation object of the builder.
func (_c *LegalCaseCreate) Mutation() *LegalCaseMutation {
	return _c.mutation
}

// Save creates the LegalCase in the database.
func (_c *LegalCaseCreate) Save(ctx context.Context) (*LegalCase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LegalCaseCreate) SaveX(ctx context.Context) *LegalCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LegalCaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LegalCaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LegalCaseCreate) defaults() {
	if _, ok := _c.mutation.CaseType(); !ok {
		v := legalcase.DefaultCaseType
		_c.mutation.SetCaseType(v)
	}
	if _, ok := _c.mutation.AggressionPreset(); !ok {
		v := legalcase.DefaultAggressionPreset
		_c.mutation.SetAggressionPreset(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := legalcase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := legalcase.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LegalCaseCreate) check() error {
	if _, ok := _c.mutation.FirmID(); !ok {
		return &ValidationError{Name: "firm_id", err: errors.New(`ent: missing required field "LegalCase.firm_id"`)}
	}
	if _, ok := _c.mutation.CaseName(); !ok {
		return &ValidationError{Name: "case_name", err: errors.New(`ent: missing required field "LegalCase.case_name"`)}
	}
	if v, ok := _c.mutation.CaseName(); ok {
		if err := legalcase.CaseNameValidator(v); err != nil {
			return &ValidationError{Name: "case_name", err: fmt.Errorf(`ent: validator failed for field "LegalCase.case_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CaseType(); !ok {
		return &ValidationError{Name: "case_type", err: errors.New(`ent: missing required field "LegalCase.case_type"`)}
	}
	if v, ok := _c.mutation.CaseType(); ok {
		if err := legalcase.CaseTypeValidator(v); err != nil {
			return &ValidationError{Name: "case_type", err: fmt.Errorf(`ent: validator failed for field "LegalCase.case_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AggressionPreset(); !ok {
		return &ValidationError{Name: "aggression_preset", err: errors.New(`ent: missing required field "LegalCase.aggression_preset"`)}
	}
	if v, ok := _c.mutation.AggressionPreset(); ok {
		if err := legalcase.AggressionPresetValidator(v); err != nil {
			return &ValidationError{Name: "aggression_preset", err: fmt.Errorf(`ent: validator failed for field "LegalCase.aggression_preset": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LegalCase.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LegalCase.updated_at"`)}
	}
	if len(_c.mutation.FirmIDs()) == 0 {
		return &ValidationError{Name: "firm", err: errors.New(`ent: missing required edge "LegalCase.firm"`)}
	}
	return nil
}

func (_c *LegalCaseCreate) sqlSave(ctx context.Context) (*LegalCase, error) {
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
			return nil, fmt.Errorf("unexpected LegalCase.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LegalCaseCreate) createSpec() (*LegalCase, *sqlgraph.CreateSpec) {
	var (
		_node = &LegalCase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(legalcase.Table, sqlgraph.NewFieldSpec(legalcase.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CaseName(); ok {
		_spec.SetField(legalcase.FieldCaseName, field.TypeString, value)
		_node.CaseName = value
	}
	if value, ok := _c.mutation.CaseType(); ok {
		_spec.SetField(legalcase.FieldCaseType, field.TypeEnum, value)
		_node.CaseType = value
	}
	if value, ok := _c.mutation.OpposingParty(); ok {
		_spec.SetField(legalcase.FieldOpposingParty, field.TypeString, value)
		_node.OpposingParty = value
	}
	if value, ok := _c.mutation.CaseNumber(); ok {
		_spec.SetField(legalcase.FieldCaseNumber, field.TypeString, value)
		_node.CaseNumber = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(legalcase.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.DepositionDate(); ok {
		_spec.SetField(legalcase.FieldDepositionDate, field.TypeTime, value)
		_node.DepositionDate = &value
	}
	if value, ok := _c.mutation.ExtractedFacts(); ok {
		_spec.SetField(legalcase.FieldExtractedFacts, field.TypeJSON, value)
		_node.ExtractedFacts = value
	}
	if value, ok := _c.mutation.PriorStatements(); ok {
		_spec.SetField(legalcase.FieldPriorStatements, field.TypeString, value)
		_node.PriorStatements = value
	}
	if value, ok := _c.mutation.ExhibitList(); ok {
		_spec.SetField(legalcase.FieldExhibitList, field.TypeString, value)
		_node.ExhibitList = value
	}
	if value, ok := _c.mutation.FocusAreas(); ok {
		_spec.SetField(legalcase.FieldFocusAreas, field.TypeJSON, value)
		_node.FocusAreas = value
	}
	if value, ok := _c.mutation.AggressionPreset(); ok {
		_spec.SetField(legalcase.FieldAggressionPreset, field.TypeEnum, value)
		_node.AggressionPreset = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(legalcase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(legalcase.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FirmIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   legalcase.FirmTable,
			Columns: []string{legalcase.FirmColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(firm.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FirmID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WitnessesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   legalcase.WitnessesTable,
			Columns: []string{legalcase.WitnessesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(witness.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   legalcase.SessionsTable,
			Columns: []string{legalcase.SessionsColumn},
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
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   legalcase.DocumentsTable,
			Columns: []string{legalcase.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LegalCaseCreateBulk is the builder for creating many LegalCase entities in bulk.
type LegalCaseCreateBulk struct {
	config
	err      error
	builders []*LegalCaseCreate
}

// Save creates the LegalCase entities in the database.
func (_c *LegalCaseCreateBulk) Save(ctx context.Context) ([]*LegalCase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LegalCase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LegalCaseMutation)
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
func (_c *LegalCaseCreateBulk) SaveX(ctx context.Context) []*LegalCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LegalCaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LegalCaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
