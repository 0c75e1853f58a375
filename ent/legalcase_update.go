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
	"github.com/verdictlabs/verdict/ent/document"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/ent/predicate"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/ent/witness"
)

// LegalCaseUpdate is the builder for updating LegalCase entities.
type LegalCaseUpdate struct {
	config
	hooks    []Hook
	mutation *LegalCaseMutation
}

// Where appends a list predicates to the LegalCaseUpdate builder.
func (_u *LegalCaseUpdate) Where(ps ...predicate.LegalCase) *LegalCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaseName sets the "case_name" field.
func (_u *LegalCaseUpdate) SetCaseName(v string) *LegalCaseUpdate {
	_u.mutation.SetCaseName(v)
	return _u
}

// SetNillableCaseName sets the "case_name" field if the given value is not nil.
func (_u *LegalCaseUpdate) SetNillableCaseName(v *string) *LegalCaseUpdate {
	if v != nil {
		_u.SetCaseName(*v)
	}
	return _u
}

// SetCaseType sets the "case_type" field.
func (_u *LegalCaseUpdate) SetCaseType(v legalcase.CaseType) *LegalCaseUpdate {
	_u.mutation.SetCaseType(v)
	return _u
}

// SetNillableCaseType sets the "case_type" field if the given value is not nil.
func (_u *LegalCaseUpdate) SetNillableCaseType(v *legalcase.CaseType) *LegalCaseUpdate {
	if v != nil {
		_u.SetCaseType(*v)
	}
	return _u
}

// SetOpposingParty sets the "opposing_party" field.
func (_u *LegalCaseUpdate) SetOpposingParty(v string) *LegalCaseUpdate {
	_u.mutation.SetOpposingParty(v)
	return _u
}

// SetNillableOpposingParty sets the "opposing_party" field if the given value is not nil.
func (_u *LegalCaseUpdate) SetNillableOpposingParty(v *string) *LegalCaseUpdate {
	if v != nil {
		_u.SetOpposingParty(*v)
	}
	return _u
}

// ClearOpposingParty clears the value of the "opposing_party" field.
func (_u *LegalCaseUpdate) ClearOpposingParty() *LegalCaseUpdate {
	_u.mutation.ClearOpposingParty()
	return _u
}

// SetCaseNumber sets the "case_number" field.
func (_u *LegalCaseUpdate) SetCaseNumber(v string) *LegalCaseUpdate {
	_u.mutation.SetCaseNumber(v)
	return _u
}

// SetNillableCaseNumber sets the "case_number" field if the given value is not nil.
func (_u *LegalCaseUpdate) SetNillableCaseNumber(v *string) *LegalCaseUpdate {
	if v != nil {
		_u.SetCaseNumber(*v)
	}
	return _u
}

// ClearCaseNumber clears the value of the "case_number" field.
func (_u *LegalCaseUpdate) ClearCaseNumber() *LegalCaseUpdate {
	_u.mutation.ClearCaseNumber()
	return _u
}

// SetDescription sets the "description" field.
func (_u *LegalCaseUpdate) SetDescription(v string) *LegalCaseUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LegalCaseUpdate) SetNillableDescription(v *string) *LegalCaseUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *LegalCaseUpdate) ClearDescription() *LegalCaseUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetDepositionDate sets the "deposition_date" field.
func (_u *LegalCaseUpdate) SetDepositionDate(v time.Time) *LegalCaseUpdate {
	_u.mutation.SetDepositionDate(v)
	return _u
}

// SetNillableDepositionDate sets the "deposition_date" field if the given value is not nil.
func (_u *LegalCaseUpdate) SetNillableDepositionDate(v *time.Time) *LegalCaseUpdate {
	if v != nil {
		_u.SetDepositionDate(*v)
	}
	return _u
}

// ClearDepositionDate clears the value of the "deposition_date" field.
func (_u *LegalCaseUpdate) ClearDepositionDate() *LegalCaseUpdate {
	_u.mutation.ClearDepositionDate()
	return _u
}

// SetExtractedFacts sets the "extracted_facts" field.
func (_u *LegalCaseUpdate) SetExtractedFacts(v map[string]interface{}) *LegalCaseUpdate {
	_u.mutation.SetExtractedFacts(v)
	return _u
}

// ClearExtractedFacts clears the value of the "extracted_facts" field.
func (_u *LegalCaseUpdate) ClearExtractedFacts() *LegalCaseUpdate {
	_u.mutation.ClearExtractedFacts()
	return _u
}

// SetPriorStatements sets the "prior_statements" field.
func (_u *LegalCaseUpdate) SetPriorStatements(v string) *LegalCaseUpdate {
	_u.mutation.SetPriorStatements(v)
	return _u
}

// SetNillablePriorStatements sets the "prior_statements" field if the given value is not nil.
func (_u *LegalCaseUpdate) SetNillablePriorStatements(v *string) *LegalCaseUpdate {
	if v != nil {
		_u.SetPriorStatements(*v)
	}
	return _u
}

// ClearPriorStatements clears the value of the "prior_statements" field.
func (_u *LegalCaseUpdate) ClearPriorStatements() *LegalCaseUpdate {
	_u.mutation.ClearPriorStatements()
	return _u
}

// SetExhibitList sets the "exhibit_list" field.
func (_u *LegalCaseUpdate) SetExhibitList(v string) *LegalCaseUpdate {
	_u.mutation.SetExhibitList(v)
	return _u
}

// SetNillableExhibitList sets the "exhibit_list" field if the given value is not nil.
func (_u *LegalCaseUpdate) SetNillableExhibitList(v *string) *LegalCaseUpdate {
	if v != nil {
		_u.SetExhibitList(*v)
	}
	return _u
}

// ClearExhibitList clears the value of the "exhibit_list" field.
func (_u *LegalCaseUpdate) ClearExhibitList() *LegalCaseUpdate {
	_u.mutation.ClearExhibitList()
	return _u
}

// SetFocusAreas sets the "focus_areas" field.
func (_u *LegalCaseUpdate) SetFocusAreas(v []string) *LegalCaseUpdate {
	_u.mutation.SetFocusAreas(v)
	return _u
}

// AppendFocusAreas appends value to the "focus_areas" field.
func (_u *LegalCaseUpdate) AppendFocusAreas(v []string) *LegalCaseUpdate {
	_u.mutation.AppendFocusAreas(v)
	return _u
}

// ClearFocusAreas clears the value of the "focus_areas" field.
func (_u *LegalCaseUpdate) ClearFocusAreas() *LegalCaseUpdate {
	_u.mutation.ClearFocusAreas()
	return _u
}

// SetAggressionPreset sets the "aggression_preset" field.
func (_u *LegalCaseUpdate) SetAggressionPreset(v legalcase.AggressionPreset) *LegalCaseUpdate {
	_u.mutation.SetAggressionPreset(v)
	return _u
}

// SetNillableAggressionPreset sets the "aggression_preset" field if the given value is not nil.
func (_u *LegalCaseUpdate) SetNillableAggressionPreset(v *legalcase.AggressionPreset) *LegalCaseUpdate {
	if v != nil {
		_u.SetAggressionPreset(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LegalCaseUpdate) SetUpdatedAt(v time.Time) *LegalCaseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddWitnessIDs adds the "witnesses" edge to the Witness entity by IDs.
func (_u *LegalCaseUpdate) AddWitnessIDs(ids ...string) *LegalCaseUpdate {
	_u.mutation.AddWitnessIDs(ids...)
	return _u
}

// AddWitnesses adds the "witnesses" edges to the Witness entity.
func (_u *LegalCaseUpdate) AddWitnesses(v ...*Witness) *LegalCaseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWitnessIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *LegalCaseUpdate) AddSessionIDs(ids ...string) *LegalCaseUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *LegalCaseUpdate) AddSessions(v ...*Session) *LegalCaseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *LegalCaseUpdate) AddDocumentIDs(ids ...string) *LegalCaseUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *LegalCaseUpdate) AddDocuments(v ...*Document) *LegalCaseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the LegalCaseMutation object of the builder.
func (_u *LegalCaseUpdate) Mutation() *LegalCaseMutation {
	return _u.mutation
}

// ClearWitnesses clears all "witnesses" edges to the Witness entity.
func (_u *LegalCaseUpdate) ClearWitnesses() *LegalCaseUpdate {
	_u.mutation.ClearWitnesses()
	return _u
}

// RemoveWitnessIDs removes the "witnesses" edge to Witness entities by IDs.
func (_u *LegalCaseUpdate) RemoveWitnessIDs(ids ...string) *LegalCaseUpdate {
	_u.mutation.RemoveWitnessIDs(ids...)
	return _u
}

// RemoveWitnesses removes "witnesses" edges to Witness entities.
func (_u *LegalCaseUpdate) RemoveWitnesses(v ...*Witness) *LegalCaseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWitnessIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *LegalCaseUpdate) ClearSessions() *LegalCaseUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *LegalCaseUpdate) RemoveSessionIDs(ids ...string) *LegalCaseUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *LegalCaseUpdate) RemoveSessions(v ...*Session) *LegalCaseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *LegalCaseUpdate) ClearDocuments() *LegalCaseUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *LegalCaseUpdate) RemoveDocumentIDs(ids ...string) *LegalCaseUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *LegalCaseUpdate) RemoveDocuments(v ...*Document) *LegalCaseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LegalCaseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LegalCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LegalCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LegalCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LegalCaseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := legalcase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LegalCaseUpdate) check() error {
	if v, ok := _u.mutation.CaseName(); ok {
		if err := legalcase.CaseNameValidator(v); err != nil {
			return &ValidationError{Name: "case_name", err: fmt.Errorf(`ent: validator failed for field "LegalCase.case_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaseType(); ok {
		if err := legalcase.CaseTypeValidator(v); err != nil {
			return &ValidationError{Name: "case_type", err: fmt.Errorf(`ent: validator failed for field "LegalCase.case_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AggressionPreset(); ok {
		if err := legalcase.AggressionPresetValidator(v); err != nil {
			return &ValidationError{Name: "aggression_preset", err: fmt.Errorf(`ent: validator failed for field "LegalCase.aggression_preset": %w`, err)}
		}
	}
	if _u.mutation.FirmCleared() && len(_u.mutation.FirmIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LegalCase.firm"`)
	}
	return nil
}

func (_u *LegalCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(legalcase.Table, legalcase.Columns, sqlgraph.NewFieldSpec(legalcase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CaseName(); ok {
		_spec.SetField(legalcase.FieldCaseName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseType(); ok {
		_spec.SetField(legalcase.FieldCaseType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OpposingParty(); ok {
		_spec.SetField(legalcase.FieldOpposingParty, field.TypeString, value)
	}
	if _u.mutation.OpposingPartyCleared() {
		_spec.ClearField(legalcase.FieldOpposingParty, field.TypeString)
	}
	if value, ok := _u.mutation.CaseNumber(); ok {
		_spec.SetField(legalcase.FieldCaseNumber, field.TypeString, value)
	}
	if _u.mutation.CaseNumberCleared() {
		_spec.ClearField(legalcase.FieldCaseNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(legalcase.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(legalcase.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DepositionDate(); ok {
		_spec.SetField(legalcase.FieldDepositionDate, field.TypeTime, value)
	}
	if _u.mutation.DepositionDateCleared() {
		_spec.ClearField(legalcase.FieldDepositionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ExtractedFacts(); ok {
		_spec.SetField(legalcase.FieldExtractedFacts, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedFactsCleared() {
		_spec.ClearField(legalcase.FieldExtractedFacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.PriorStatements(); ok {
		_spec.SetField(legalcase.FieldPriorStatements, field.TypeString, value)
	}
	if _u.mutation.PriorStatementsCleared() {
		_spec.ClearField(legalcase.FieldPriorStatements, field.TypeString)
	}
	if value, ok := _u.mutation.ExhibitList(); ok {
		_spec.SetField(legalcase.FieldExhibitList, field.TypeString, value)
	}
	if _u.mutation.ExhibitListCleared() {
		_spec.ClearField(legalcase.FieldExhibitList, field.TypeString)
	}
	if value, ok := _u.mutation.FocusAreas(); ok {
		_spec.SetField(legalcase.FieldFocusAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFocusAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, legalcase.FieldFocusAreas, value)
		})
	}
	if _u.mutation.FocusAreasCleared() {
		_spec.ClearField(legalcase.FieldFocusAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.AggressionPreset(); ok {
		_spec.SetField(legalcase.FieldAggressionPreset, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(legalcase.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WitnessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWitnessesIDs(); len(nodes) > 0 && !_u.mutation.WitnessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WitnessesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{legalcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LegalCaseUpdateOne is the builder for updating a single LegalCase entity.
type LegalCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LegalCaseMutation
}

// SetCaseName sets the "case_name" field.
func (_u *LegalCaseUpdateOne) SetCaseName(v string) *LegalCaseUpdateOne {
	_u.mutation.SetCaseName(v)
	return _u
}

// SetNillableCaseName sets the "case_name" field if the given value is not nil.
func (_u *LegalCaseUpdateOne) SetNillableCaseName(v *string) *LegalCaseUpdateOne {
	if v != nil {
		_u.SetCaseName(*v)
	}
	return _u
}

// SetCaseType sets the "case_type" field.
func (_u *LegalCaseUpdateOne) SetCaseType(v legalcase.CaseType) *LegalCaseUpdateOne {
	_u.mutation.SetCaseType(v)
	return _u
}

// SetNillableCaseType sets the "case_type" field if the given value is not nil.
func (_u *LegalCaseUpdateOne) SetNillableCaseType(v *legalcase.CaseType) *LegalCaseUpdateOne {
	if v != nil {
		_u.SetCaseType(*v)
	}
	return _u
}

// SetOpposingParty sets the "opposing_party" field.
func (_u *LegalCaseUpdateOne) SetOpposingParty(v string) *LegalCaseUpdateOne {
	_u.mutation.SetOpposingParty(v)
	return _u
}

// SetNillableOpposingParty sets the "opposing_party" field if the given value is not nil.
func (_u *LegalCaseUpdateOne) SetNillableOpposingParty(v *string) *LegalCaseUpdateOne {
	if v != nil {
		_u.SetOpposingParty(*v)
	}
	return _u
}

// ClearOpposingParty clears the value of the "opposing_party" field.
func (_u *LegalCaseUpdateOne) ClearOpposingParty() *LegalCaseUpdateOne {
	_u.mutation.ClearOpposingParty()
	return _u
}

// SetCaseNumber sets the "case_number" field.
func (_u *LegalCaseUpdateOne) SetCaseNumber(v string) *LegalCaseUpdateOne {
	_u.mutation.SetCaseNumber(v)
	return _u
}

// SetNillableCaseNumber sets the "case_number" field if the given value is not nil.
func (_u *LegalCaseUpdateOne) SetNillableCaseNumber(v *string) *LegalCaseUpdateOne {
	if v != nil {
		_u.SetCaseNumber(*v)
	}
	return _u
}

// ClearCaseNumber clears the value of the "case_number" field.
func (_u *LegalCaseUpdateOne) ClearCaseNumber() *LegalCaseUpdateOne {
	_u.mutation.ClearCaseNumber()
	return _u
}

// SetDescription sets the "description" field.
func (_u *LegalCaseUpdateOne) SetDescription(v string) *LegalCaseUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LegalCaseUpdateOne) SetNillableDescription(v *string) *LegalCaseUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *LegalCaseUpdateOne) ClearDescription() *LegalCaseUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetDepositionDate sets the "deposition_date" field.
func (_u *LegalCaseUpdateOne) SetDepositionDate(v time.Time) *LegalCaseUpdateOne {
	_u.mutation.SetDepositionDate(v)
	return _u
}

// SetNillableDepositionDate sets the "deposition_date" field if the given value is not nil.
func (_u *LegalCaseUpdateOne) SetNillableDepositionDate(v *time.Time) *LegalCaseUpdateOne {
	if v != nil {
		_u.SetDepositionDate(*v)
	}
	return _u
}

// ClearDepositionDate clears the value of the "deposition_date" field.
func (_u *LegalCaseUpdateOne) ClearDepositionDate() *LegalCaseUpdateOne {
	_u.mutation.ClearDepositionDate()
	return _u
}

// SetExtractedFacts sets the "extracted_facts" field.
func (_u *LegalCaseUpdateOne) SetExtractedFacts(v map[string]interface{}) *LegalCaseUpdateOne {
	_u.mutation.SetExtractedFacts(v)
	return _u
}

// ClearExtractedFacts clears the value of the "extracted_facts" field.
func (_u *LegalCaseUpdateOne) ClearExtractedFacts() *LegalCaseUpdateOne {
	_u.mutation.ClearExtractedFacts()
	return _u
}

// SetPriorStatements sets the "prior_statements" field.
func (_u *LegalCaseUpdateOne) SetPriorStatements(v string) *LegalCaseUpdateOne {
	_u.mutation.SetPriorStatements(v)
	return _u
}

// SetNillablePriorStatements sets the "prior_statements" field if the given value is not nil.
func (_u *LegalCaseUpdateOne) SetNillablePriorStatements(v *string) *LegalCaseUpdateOne {
	if v != nil {
		_u.SetPriorStatements(*v)
	}
	return _u
}

// ClearPriorStatements clears the value of the "prior_statements" field.
func (_u *LegalCaseUpdateOne) ClearPriorStatements() *LegalCaseUpdateOne {
	_u.mutation.ClearPriorStatements()
	return _u
}

// SetExhibitList sets the "exhibit_list" field.
func (_u *LegalCaseUpdateOne) SetExhibitList(v string) *LegalCaseUpdateOne {
	_u.mutation.SetExhibitList(v)
	return _u
}

// SetNillableExhibitList sets the "exhibit_list" field if the given value is not nil.
func (_u *LegalCaseUpdateOne) SetNillableExhibitList(v *string) *LegalCaseUpdateOne {
	if v != nil {
		_u.SetExhibitList(*v)
	}
	return _u
}

// ClearExhibitList clears the value of the "exhibit_list" field.
func (_u *LegalCaseUpdateOne) ClearExhibitList() *LegalCaseUpdateOne {
	_u.mutation.ClearExhibitList()
	return _u
}

// SetFocusAreas sets the "focus_areas" field.
func (_u *LegalCaseUpdateOne) SetFocusAreas(v []string) *LegalCaseUpdateOne {
	_u.mutation.SetFocusAreas(v)
	return _u
}

// AppendFocusAreas appends value to the "focus_areas" field.
func (_u *LegalCaseUpdateOne) AppendFocusAreas(v []string) *LegalCaseUpdateOne {
	_u.mutation.AppendFocusAreas(v)
	return _u
}

// ClearFocusAreas clears the value of the "focus_areas" field.
func (_u *LegalCaseUpdateOne) ClearFocusAreas() *LegalCaseUpdateOne {
	_u.mutation.ClearFocusAreas()
	return _u
}

// SetAggressionPreset sets the "aggression_preset" field.
func (_u *LegalCaseUpdateOne) SetAggressionPreset(v legalcase.AggressionPreset) *LegalCaseUpdateOne {
	_u.mutation.SetAggressionPreset(v)
	return _u
}

// SetNillableAggressionPreset sets the "aggression_preset" field if the given value is not nil.
func (_u *LegalCaseUpdateOne) SetNillableAggressionPreset(v *legalcase.AggressionPreset) *LegalCaseUpdateOne {
	if v != nil {
		_u.SetAggressionPreset(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LegalCaseUpdateOne) SetUpdatedAt(v time.Time) *LegalCaseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddWitnessIDs adds the "witnesses" edge to the Witness entity by IDs.
func (_u *LegalCaseUpdateOne) AddWitnessIDs(ids ...string) *LegalCaseUpdateOne {
	_u.mutation.AddWitnessIDs(ids...)
	return _u
}

// AddWitnesses adds the "witnesses" edges to the Witness entity.
func (_u *LegalCaseUpdateOne) AddWitnesses(v ...*Witness) *LegalCaseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWitnessIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *LegalCaseUpdateOne) AddSessionIDs(ids ...string) *LegalCaseUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *LegalCaseUpdateOne) AddSessions(v ...*Session) *LegalCaseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *LegalCaseUpdateOne) AddDocumentIDs(ids ...string) *LegalCaseUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *LegalCaseUpdateOne) AddDocuments(v ...*Document) *LegalCaseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the LegalCaseMutation object of the builder.
func (_u *LegalCaseUpdateOne) Mutation() *LegalCaseMutation {
	return _u.mutation
}

// ClearWitnesses clears all "witnesses" edges to the Witness entity.
func (_u *LegalCaseUpdateOne) ClearWitnesses() *LegalCaseUpdateOne {
	_u.mutation.ClearWitnesses()
	return _u
}

// RemoveWitnessIDs removes the "witnesses" edge to Witness entities by IDs.
func (_u *LegalCaseUpdateOne) RemoveWitnessIDs(ids ...string) *LegalCaseUpdateOne {
	_u.mutation.RemoveWitnessIDs(ids...)
	return _u
}

// RemoveWitnesses removes "witnesses" edges to Witness entities.
func (_u *LegalCaseUpdateOne) RemoveWitnesses(v ...*Witness) *LegalCaseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWitnessIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *LegalCaseUpdateOne) ClearSessions() *LegalCaseUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *LegalCaseUpdateOne) RemoveSessionIDs(ids ...string) *LegalCaseUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *LegalCaseUpdateOne) RemoveSessions(v ...*Session) *LegalCaseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *LegalCaseUpdateOne) ClearDocuments() *LegalCaseUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *LegalCaseUpdateOne) RemoveDocumentIDs(ids ...string) *LegalCaseUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *LegalCaseUpdateOne) RemoveDocuments(v ...*Document) *LegalCaseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Where appends a list predicates to the LegalCaseUpdate builder.
func (_u *LegalCaseUpdateOne) Where(ps ...predicate.LegalCase) *LegalCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LegalCaseUpdateOne) Select(field string, fields ...string) *LegalCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LegalCase entity.
func (_u *LegalCaseUpdateOne) Save(ctx context.Context) (*LegalCase, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LegalCaseUpdateOne) SaveX(ctx context.Context) *LegalCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LegalCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LegalCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LegalCaseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := legalcase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LegalCaseUpdateOne) check() error {
	if v, ok := _u.mutation.CaseName(); ok {
		if err := legalcase.CaseNameValidator(v); err != nil {
			return &ValidationError{Name: "case_name", err: fmt.Errorf(`ent: validator failed for field "LegalCase.case_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaseType(); ok {
		if err := legalcase.CaseTypeValidator(v); err != nil {
			return &ValidationError{Name: "case_type", err: fmt.Errorf(`ent: validator failed for field "LegalCase.case_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AggressionPreset(); ok {
		if err := legalcase.AggressionPresetValidator(v); err != nil {
			return &ValidationError{Name: "aggression_preset", err: fmt.Errorf(`ent: validator failed for field "LegalCase.aggression_preset": %w`, err)}
		}
	}
	if _u.mutation.FirmCleared() && len(_u.mutation.FirmIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LegalCase.firm"`)
	}
	return nil
}

func (_u *LegalCaseUpdateOne) sqlSave(ctx context.Context) (_node *LegalCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(legalcase.Table, legalcase.Columns, sqlgraph.NewFieldSpec(legalcase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LegalCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, legalcase.FieldID)
		for _, f := range fields {
			if !legalcase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != legalcase.FieldID {
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
	if value, ok := _u.mutation.CaseName(); ok {
		_spec.SetField(legalcase.FieldCaseName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseType(); ok {
		_spec.SetField(legalcase.FieldCaseType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OpposingParty(); ok {
		_spec.SetField(legalcase.FieldOpposingParty, field.TypeString, value)
	}
	if _u.mutation.OpposingPartyCleared() {
		_spec.ClearField(legalcase.FieldOpposingParty, field.TypeString)
	}
	if value, ok := _u.mutation.CaseNumber(); ok {
		_spec.SetField(legalcase.FieldCaseNumber, field.TypeString, value)
	}
	if _u.mutation.CaseNumberCleared() {
		_spec.ClearField(legalcase.FieldCaseNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(legalcase.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(legalcase.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DepositionDate(); ok {
		_spec.SetField(legalcase.FieldDepositionDate, field.TypeTime, value)
	}
	if _u.mutation.DepositionDateCleared() {
		_spec.ClearField(legalcase.FieldDepositionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ExtractedFacts(); ok {
		_spec.SetField(legalcase.FieldExtractedFacts, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedFactsCleared() {
		_spec.ClearField(legalcase.FieldExtractedFacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.PriorStatements(); ok {
		_spec.SetField(legalcase.FieldPriorStatements, field.TypeString, value)
	}
	if _u.mutation.PriorStatementsCleared() {
		_spec.ClearField(legalcase.FieldPriorStatements, field.TypeString)
	}
	if value, ok := _u.mutation.ExhibitList(); ok {
		_spec.SetField(legalcase.FieldExhibitList, field.TypeString, value)
	}
	if _u.mutation.ExhibitListCleared() {
		_spec.ClearField(legalcase.FieldExhibitList, field.TypeString)
	}
	if value, ok := _u.mutation.FocusAreas(); ok {
		_spec.SetField(legalcase.FieldFocusAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFocusAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, legalcase.FieldFocusAreas, value)
		})
	}
	if _u.mutation.FocusAreasCleared() {
		_spec.ClearField(legalcase.FieldFocusAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.AggressionPreset(); ok {
		_spec.SetField(legalcase.FieldAggressionPreset, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(legalcase.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WitnessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWitnessesIDs(); len(nodes) > 0 && !_u.mutation.WitnessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WitnessesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LegalCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{legalcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
