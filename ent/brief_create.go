// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verdictlabs/verdict/ent/brief"
	"github.com/verdictlabs/verdict/ent/session"
)

// BriefCreate is the builder for creating a Brief entity.
type BriefCreate struct {
	config
	mutation *BriefMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *BriefCreate) SetSessionID(v string) *BriefCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSessionScore sets the "session_score" field.
func (_c *BriefCreate) SetSessionScore(v float64) *BriefCreate {
	_c.mutation.SetSessionScore(v)
	return _c
}

// SetConsistencyRate sets the "consistency_rate" field.
func (_c *BriefCreate) SetConsistencyRate(v float64) *BriefCreate {
	_c.mutation.SetConsistencyRate(v)
	return _c
}

// SetWeaknessMap sets the "weakness_map" field.
func (_c *BriefCreate) SetWeaknessMap(v map[string]float64) *BriefCreate {
	_c.mutation.SetWeaknessMap(v)
	return _c
}

// SetNarrativeText sets the "narrative_text" field.
func (_c *BriefCreate) SetNarrativeText(v string) *BriefCreate {
	_c.mutation.SetNarrativeText(v)
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *BriefCreate) SetRecommendations(v []string) *BriefCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetConfirmedFlags sets the "confirmed_flags" field.
func (_c *BriefCreate) SetConfirmedFlags(v int) *BriefCreate {
	_c.mutation.SetConfirmedFlags(v)
	return _c
}

// SetNillableConfirmedFlags sets the "confirmed_flags" field if the given value is not nil.
func (_c *BriefCreate) SetNillableConfirmedFlags(v *int) *BriefCreate {
	if v != nil {
		_c.SetConfirmedFlags(*v)
	}
	return _c
}

// SetObjectionCount sets the "objection_count" field.
func (_c *BriefCreate) SetObjectionCount(v int) *BriefCreate {
	_c.mutation.SetObjectionCount(v)
	return _c
}

// SetNillableObjectionCount sets the "objection_count" field if the given value is not nil.
func (_c *BriefCreate) SetNillableObjectionCount(v *int) *BriefCreate {
	if v != nil {
		_c.SetObjectionCount(*v)
	}
	return _c
}

// SetComposureAlerts sets the "composure_alerts" field.
func (_c *BriefCreate) SetComposureAlerts(v int) *BriefCreate {
	_c.mutation.SetComposureAlerts(v)
	return _c
}

// SetNillableComposureAlerts sets the "composure_alerts" field if the given value is not nil.
func (_c *BriefCreate) SetNillableComposureAlerts(v *int) *BriefCreate {
	if v != nil {
		_c.SetComposureAlerts(*v)
	}
	return _c
}

// SetDeltaVsBaseline sets the "delta_vs_baseline" field.
func (_c *BriefCreate) SetDeltaVsBaseline(v float64) *BriefCreate {
	_c.mutation.SetDeltaVsBaseline(v)
	return _c
}

// SetNillableDeltaVsBaseline sets the "delta_vs_baseline" field if the given value is not nil.
func (_c *BriefCreate) SetNillableDeltaVsBaseline(v *float64) *BriefCreate {
	if v != nil {
		_c.SetDeltaVsBaseline(*v)
	}
	return _c
}

// SetShareToken sets the "share_token" field.
func (_c *BriefCreate) SetShareToken(v string) *BriefCreate {
	_c.mutation.SetShareToken(v)
	return _c
}

// SetNillableShareToken sets the "share_token" field if the given value is not nil.
func (_c *BriefCreate) SetNillableShareToken(v *string) *BriefCreate {
	if v != nil {
		_c.SetShareToken(*v)
	}
	return _c
}

// SetShareExpiresAt sets the "share_expires_at" field.
func (_c *BriefCreate) SetShareExpiresAt(v time.Time) *BriefCreate {
	_c.mutation.SetShareExpiresAt(v)
	return _c
}

// SetNillableShareExpiresAt sets the "share_expires_at" field if the given value is not nil.
func (_c *BriefCreate) SetNillableShareExpiresAt(v *time.Time) *BriefCreate {
	if v != nil {
		_c.SetShareExpiresAt(*v)
	}
	return _c
}

// SetPdfKey sets the "pdf_key" field.
func (_c *BriefCreate) SetPdfKey(v string) *BriefCreate {
	_c.mutation.SetPdfKey(v)
	return _c
}

// SetNillablePdfKey sets the "pdf_key" field if the given value is not nil.
func (_c *BriefCreate) SetNillablePdfKey(v *string) *BriefCreate {
	if v != nil {
		_c.SetPdfKey(*v)
	}
	return _c
}

// SetCoachAudioKey sets the "coach_audio_key" field.
func (_c *BriefCreate) SetCoachAudioKey(v string) *BriefCreate {
	_c.mutation.SetCoachAudioKey(v)
	return _c
}

// SetNillableCoachAudioKey sets the "coach_audio_key" field if the given value is not nil.
func (_c *BriefCreate) SetNillableCoachAudioKey(v *string) *BriefCreate {
	if v != nil {
		_c.SetCoachAudioKey(*v)
	}
	return _c
}

// SetGeneratedBy sets the "generated_by" field.
func (_c *BriefCreate) SetGeneratedBy(v brief.GeneratedBy) *BriefCreate {
	_c.mutation.SetGeneratedBy(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BriefCreate) SetCreatedAt(v time.Time) *BriefCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BriefCreate) SetNillableCreatedAt(v *time.Time) *BriefCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BriefCreate) SetID(v string) *BriefCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *BriefCreate) SetSession(v *Session) *BriefCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the BriefMutation object of the builder.
func (_c *BriefCreate) Mutation() *BriefMutation {
	return _c.mutation
}

// Save creates the Brief in the database.
func (_c *BriefCreate) Save(ctx context.Context) (*Brief, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BriefCreate) SaveX(ctx context.Context) *Brief {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BriefCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BriefCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BriefCreate) defaults() {
	if _, ok := _c.mutation.ConfirmedFlags(); !ok {
		v := brief.DefaultConfirmedFlags
		_c.mutation.SetConfirmedFlags(v)
	}
	if _, ok := _c.mutation.ObjectionCount(); !ok {
		v := brief.DefaultObjectionCount
		_c.mutation.SetObjectionCount(v)
	}
	if _, ok := _c.mutation.ComposureAlerts(); !ok {
		v := brief.DefaultComposureAlerts
		_c.mutation.SetComposureAlerts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := brief.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BriefCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Brief.session_id"`)}
	}
	if _, ok := _c.mutation.SessionScore(); !ok {
		return &ValidationError{Name: "session_score", err: errors.New(`ent: missing required field "Brief.session_score"`)}
	}
	if _, ok := _c.mutation.ConsistencyRate(); !ok {
		return &ValidationError{Name: "consistency_rate", err: errors.New(`ent: missing required field "Brief.consistency_rate"`)}
	}
	if _, ok := _c.mutation.WeaknessMap(); !ok {
		return &ValidationError{Name: "weakness_map", err: errors.New(`ent: missing required field "Brief.weakness_map"`)}
	}
	if _, ok := _c.mutation.NarrativeText(); !ok {
		return &ValidationError{Name: "narrative_text", err: errors.New(`ent: missing required field "Brief.narrative_text"`)}
	}
	if _, ok := _c.mutation.Recommendations(); !ok {
		return &ValidationError{Name: "recommendations", err: errors.New(`ent: missing required field "Brief.recommendations"`)}
	}
	if _, ok := _c.mutation.ConfirmedFlags(); !ok {
		return &ValidationError{Name: "confirmed_flags", err: errors.New(`ent: missing required field "Brief.confirmed_flags"`)}
	}
	if _, ok := _c.mutation.ObjectionCount(); !ok {
		return &ValidationError{Name: "objection_count", err: errors.New(`ent: missing required field "Brief.objection_count"`)}
	}
	if _, ok := _c.mutation.ComposureAlerts(); !ok {
		return &ValidationError{Name: "composure_alerts", err: errors.New(`ent: missing required field "Brief.composure_alerts"`)}
	}
	if _, ok := _c.mutation.GeneratedBy(); !ok {
		return &ValidationError{Name: "generated_by", err: errors.New(`ent: missing required field "Brief.generated_by"`)}
	}
	if v, ok := _c.mutation.GeneratedBy(); ok {
		if err := brief.GeneratedByValidator(v); err != nil {
			return &ValidationError{Name: "generated_by", err: fmt.Errorf(`ent: validator failed for field "Brief.generated_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Brief.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Brief.session"`)}
	}
	return nil
}

func (_c *BriefCreate) sqlSave(ctx context.Context) (*Brief, error) {
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
			return nil, fmt.Errorf("unexpected Brief.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BriefCreate) createSpec() (*Brief, *sqlgraph.CreateSpec) {
	var (
		_node = &Brief{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(brief.Table, sqlgraph.NewFieldSpec(brief.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionScore(); ok {
		_spec.SetField(brief.FieldSessionScore, field.TypeFloat64, value)
		_node.SessionScore = value
	}
	if value, ok := _c.mutation.ConsistencyRate(); ok {
		_spec.SetField(brief.FieldConsistencyRate, field.TypeFloat64, value)
		_node.ConsistencyRate = value
	}
	if value, ok := _c.mutation.WeaknessMap(); ok {
		_spec.SetField(brief.FieldWeaknessMap, field.TypeJSON, value)
		_node.WeaknessMap = value
	}
	if value, ok := _c.mutation.NarrativeText(); ok {
		_spec.SetField(brief.FieldNarrativeText, field.TypeString, value)
		_node.NarrativeText = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(brief.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.ConfirmedFlags(); ok {
		_spec.SetField(brief.FieldConfirmedFlags, field.TypeInt, value)
		_node.ConfirmedFlags = value
	}
	if value, ok := _c.mutation.ObjectionCount(); ok {
		_spec.SetField(brief.FieldObjectionCount, field.TypeInt, value)
		_node.ObjectionCount = value
	}
	if value, ok := _c.mutation.ComposureAlerts(); ok {
		_spec.SetField(brief.FieldComposureAlerts, field.TypeInt, value)
		_node.ComposureAlerts = value
	}
	if value, ok := _c.mutation.DeltaVsBaseline(); ok {
		_spec.SetField(brief.FieldDeltaVsBaseline, field.TypeFloat64, value)
		_node.DeltaVsBaseline = &value
	}
	if value, ok := _c.mutation.ShareToken(); ok {
		_spec.SetField(brief.FieldShareToken, field.TypeString, value)
		_node.ShareToken = &value
	}
	if value, ok := _c.mutation.ShareExpiresAt(); ok {
		_spec.SetField(brief.FieldShareExpiresAt, field.TypeTime, value)
		_node.ShareExpiresAt = &value
	}
	if value, ok := _c.mutation.PdfKey(); ok {
		_spec.SetField(brief.FieldPdfKey, field.TypeString, value)
		_node.PdfKey = value
	}
	if value, ok := _c.mutation.CoachAudioKey(); ok {
		_spec.SetField(brief.FieldCoachAudioKey, field.TypeString, value)
		_node.CoachAudioKey = value
	}
	if value, ok := _c.mutation.GeneratedBy(); ok {
		_spec.SetField(brief.FieldGeneratedBy, field.TypeEnum, value)
		_node.GeneratedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(brief.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   brief.SessionTable,
			Columns: []string{brief.SessionColumn},
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

// BriefCreateBulk is the builder for creating many Brief entities in bulk.
type BriefCreateBulk struct {
	config
	err      error
	builders []*BriefCreate
}

// Save creates the Brief entities in the database.
func (_c *BriefCreateBulk) Save(ctx context.Context) ([]*Brief, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Brief, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BriefMutation)
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
func (_c *BriefCreateBulk) SaveX(ctx context.Context) []*Brief {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BriefCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BriefCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
