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
	"github.com/verdictlabs/verdict/ent/session"
)

// AlertCreate is the builder for creating a Alert entity.
type AlertCreate struct {
	config
	mutation *AlertMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *AlertCreate) SetSessionID(v string) *AlertCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAlertType sets the "alert_type" field.
func (_c *AlertCreate) SetAlertType(v alert.AlertType) *AlertCreate {
	_c.mutation.SetAlertType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AlertCreate) SetStatus(v alert.Status) *AlertCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AlertCreate) SetNillableStatus(v *alert.Status) *AlertCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AlertCreate) SetConfidence(v float64) *AlertCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetImpeachmentRisk sets the "impeachment_risk" field.
func (_c *AlertCreate) SetImpeachmentRisk(v alert.ImpeachmentRisk) *AlertCreate {
	_c.mutation.SetImpeachmentRisk(v)
	return _c
}

// SetNillableImpeachmentRisk sets the "impeachment_risk" field if the given value is not nil.
func (_c *AlertCreate) SetNillableImpeachmentRisk(v *alert.ImpeachmentRisk) *AlertCreate {
	if v != nil {
		_c.SetImpeachmentRisk(*v)
	}
	return _c
}

// SetPriorQuote sets the "prior_quote" field.
func (_c *AlertCreate) SetPriorQuote(v string) *AlertCreate {
	_c.mutation.SetPriorQuote(v)
	return _c
}

// SetNillablePriorQuote sets the "prior_quote" field if the given value is not nil.
func (_c *AlertCreate) SetNillablePriorQuote(v *string) *AlertCreate {
	if v != nil {
		_c.SetPriorQuote(*v)
	}
	return _c
}

// SetPriorSourcePage sets the "prior_source_page" field.
func (_c *AlertCreate) SetPriorSourcePage(v int) *AlertCreate {
	_c.mutation.SetPriorSourcePage(v)
	return _c
}

// SetNillablePriorSourcePage sets the "prior_source_page" field if the given value is not nil.
func (_c *AlertCreate) SetNillablePriorSourcePage(v *int) *AlertCreate {
	if v != nil {
		_c.SetPriorSourcePage(*v)
	}
	return _c
}

// SetPriorSourceLine sets the "prior_source_line" field.
func (_c *AlertCreate) SetPriorSourceLine(v int) *AlertCreate {
	_c.mutation.SetPriorSourceLine(v)
	return _c
}

// SetNillablePriorSourceLine sets the "prior_source_line" field if the given value is not nil.
func (_c *AlertCreate) SetNillablePriorSourceLine(v *int) *AlertCreate {
	if v != nil {
		_c.SetPriorSourceLine(*v)
	}
	return _c
}

// SetCurrentQuote sets the "current_quote" field.
func (_c *AlertCreate) SetCurrentQuote(v string) *AlertCreate {
	_c.mutation.SetCurrentQuote(v)
	return _c
}

// SetNillableCurrentQuote sets the "current_quote" field if the given value is not nil.
func (_c *AlertCreate) SetNillableCurrentQuote(v *string) *AlertCreate {
	if v != nil {
		_c.SetCurrentQuote(*v)
	}
	return _c
}

// SetFreRule sets the "fre_rule" field.
func (_c *AlertCreate) SetFreRule(v string) *AlertCreate {
	_c.mutation.SetFreRule(v)
	return _c
}

// SetNillableFreRule sets the "fre_rule" field if the given value is not nil.
func (_c *AlertCreate) SetNillableFreRule(v *string) *AlertCreate {
	if v != nil {
		_c.SetFreRule(*v)
	}
	return _c
}

// SetFreClassification sets the "fre_classification" field.
func (_c *AlertCreate) SetFreClassification(v string) *AlertCreate {
	_c.mutation.SetFreClassification(v)
	return _c
}

// SetNillableFreClassification sets the "fre_classification" field if the given value is not nil.
func (_c *AlertCreate) SetNillableFreClassification(v *string) *AlertCreate {
	if v != nil {
		_c.SetFreClassification(*v)
	}
	return _c
}

// SetQuestionNumber sets the "question_number" field.
func (_c *AlertCreate) SetQuestionNumber(v int) *AlertCreate {
	_c.mutation.SetQuestionNumber(v)
	return _c
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_c *AlertCreate) SetNillableQuestionNumber(v *int) *AlertCreate {
	if v != nil {
		_c.SetQuestionNumber(*v)
	}
	return _c
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_c *AlertCreate) SetConfirmedAt(v time.Time) *AlertCreate {
	_c.mutation.SetConfirmedAt(v)
	return _c
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_c *AlertCreate) SetNillableConfirmedAt(v *time.Time) *AlertCreate {
	if v != nil {
		_c.SetConfirmedAt(*v)
	}
	return _c
}

// SetRejectedAt sets the "rejected_at" field.
func (_c *AlertCreate) SetRejectedAt(v time.Time) *AlertCreate {
	_c.mutation.SetRejectedAt(v)
	return _c
}

// SetNillableRejectedAt sets the "rejected_at" field if the given value is not nil.
func (_c *AlertCreate) SetNillableRejectedAt(v *time.Time) *AlertCreate {
	if v != nil {
		_c.SetRejectedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AlertCreate) SetCreatedAt(v time.Time) *AlertCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AlertCreate) SetNillableCreatedAt(v *time.Time) *AlertCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AlertCreate) SetID(v string) *AlertCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *AlertCreate) SetSession(v *Session) *AlertCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the AlertMutation object of the builder.
func (_c *AlertCreate) Mutation() *AlertMutation {
	return _c.mutation
}

// Save creates the Alert in the database.
func (_c *AlertCreate) Save(ctx context.Context) (*Alert, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlertCreate) SaveX(ctx context.Context) *Alert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlertCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := alert.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := alert.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlertCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Alert.session_id"`)}
	}
	if _, ok := _c.mutation.AlertType(); !ok {
		return &ValidationError{Name: "alert_type", err: errors.New(`ent: missing required field "Alert.alert_type"`)}
	}
	if v, ok := _c.mutation.AlertType(); ok {
		if err := alert.AlertTypeValidator(v); err != nil {
			return &ValidationError{Name: "alert_type", err: fmt.Errorf(`ent: validator failed for field "Alert.alert_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Alert.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := alert.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Alert.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Alert.confidence"`)}
	}
	if v, ok := _c.mutation.ImpeachmentRisk(); ok {
		if err := alert.ImpeachmentRiskValidator(v); err != nil {
			return &ValidationError{Name: "impeachment_risk", err: fmt.Errorf(`ent: validator failed for field "Alert.impeachment_risk": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Alert.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Alert.session"`)}
	}
	return nil
}

func (_c *AlertCreate) sqlSave(ctx context.Context) (*Alert, error) {
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
			return nil, fmt.Errorf("unexpected Alert.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AlertCreate) createSpec() (*Alert, *sqlgraph.CreateSpec) {
	var (
		_node = &Alert{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(alert.Table, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AlertType(); ok {
		_spec.SetField(alert.FieldAlertType, field.TypeEnum, value)
		_node.AlertType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(alert.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(alert.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.ImpeachmentRisk(); ok {
		_spec.SetField(alert.FieldImpeachmentRisk, field.TypeEnum, value)
		_node.ImpeachmentRisk = value
	}
	if value, ok := _c.mutation.PriorQuote(); ok {
		_spec.SetField(alert.FieldPriorQuote, field.TypeString, value)
		_node.PriorQuote = value
	}
	if value, ok := _c.mutation.PriorSourcePage(); ok {
		_spec.SetField(alert.FieldPriorSourcePage, field.TypeInt, value)
		_node.PriorSourcePage = &value
	}
	if value, ok := _c.mutation.PriorSourceLine(); ok {
		_spec.SetField(alert.FieldPriorSourceLine, field.TypeInt, value)
		_node.PriorSourceLine = &value
	}
	if value, ok := _c.mutation.CurrentQuote(); ok {
		_spec.SetField(alert.FieldCurrentQuote, field.TypeString, value)
		_node.CurrentQuote = value
	}
	if value, ok := _c.mutation.FreRule(); ok {
		_spec.SetField(alert.FieldFreRule, field.TypeString, value)
		_node.FreRule = value
	}
	if value, ok := _c.mutation.FreClassification(); ok {
		_spec.SetField(alert.FieldFreClassification, field.TypeString, value)
		_node.FreClassification = value
	}
	if value, ok := _c.mutation.QuestionNumber(); ok {
		_spec.SetField(alert.FieldQuestionNumber, field.TypeInt, value)
		_node.QuestionNumber = &value
	}
	if value, ok := _c.mutation.ConfirmedAt(); ok {
		_spec.SetField(alert.FieldConfirmedAt, field.TypeTime, value)
		_node.ConfirmedAt = &value
	}
	if value, ok := _c.mutation.RejectedAt(); ok {
		_spec.SetField(alert.FieldRejectedAt, field.TypeTime, value)
		_node.RejectedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(alert.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alert.SessionTable,
			Columns: []string{alert.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AlertCreateBulk is the builder for creating many Alert entities in bulk.
type AlertCreateBulk struct {
	config
	err      error
	builders []*AlertCreate
}

// Save creates the Alert entities in the database.
func (_c *AlertCreateBulk) Save(ctx context.Context) ([]*Alert, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Alert, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlertMutation)
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
func (_c *AlertCreateBulk) SaveX(ctx context.Context) []*Alert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
