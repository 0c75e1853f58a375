// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verdictlabs/verdict/ent/document"
	"github.com/verdictlabs/verdict/ent/predicate"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *DocumentUpdate) SetFileName(v string) *DocumentUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *DocumentUpdate) SetMimeType(v string) *DocumentUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableMimeType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *DocumentUpdate) SetStorageKey(v string) *DocumentUpdate {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStorageKey(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *DocumentUpdate) SetDocType(v string) *DocumentUpdate {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetFileHash sets the "file_hash" field.
func (_u *DocumentUpdate) SetFileHash(v string) *DocumentUpdate {
	_u.mutation.SetFileHash(v)
	return _u
}

// SetNillableFileHash sets the "file_hash" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileHash(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileHash(*v)
	}
	return _u
}

// ClearFileHash clears the value of the "file_hash" field.
func (_u *DocumentUpdate) ClearFileHash() *DocumentUpdate {
	_u.mutation.ClearFileHash()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *DocumentUpdate) SetPageCount(v int) *DocumentUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePageCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *DocumentUpdate) AddPageCount(v int) *DocumentUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// ClearPageCount clears the value of the "page_count" field.
func (_u *DocumentUpdate) ClearPageCount() *DocumentUpdate {
	_u.mutation.ClearPageCount()
	return _u
}

// SetIngestionStatus sets the "ingestion_status" field.
func (_u *DocumentUpdate) SetIngestionStatus(v document.IngestionStatus) *DocumentUpdate {
	_u.mutation.SetIngestionStatus(v)
	return _u
}

// SetNillableIngestionStatus sets the "ingestion_status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableIngestionStatus(v *document.IngestionStatus) *DocumentUpdate {
	if v != nil {
		_u.SetIngestionStatus(*v)
	}
	return _u
}

// SetIngestionError sets the "ingestion_error" field.
func (_u *DocumentUpdate) SetIngestionError(v string) *DocumentUpdate {
	_u.mutation.SetIngestionError(v)
	return _u
}

// SetNillableIngestionError sets the "ingestion_error" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableIngestionError(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetIngestionError(*v)
	}
	return _u
}

// ClearIngestionError clears the value of the "ingestion_error" field.
func (_u *DocumentUpdate) ClearIngestionError() *DocumentUpdate {
	_u.mutation.ClearIngestionError()
	return _u
}

// SetExtractedFacts sets the "extracted_facts" field.
func (_u *DocumentUpdate) SetExtractedFacts(v map[string]interface{}) *DocumentUpdate {
	_u.mutation.SetExtractedFacts(v)
	return _u
}

// ClearExtractedFacts clears the value of the "extracted_facts" field.
func (_u *DocumentUpdate) ClearExtractedFacts() *DocumentUpdate {
	_u.mutation.ClearExtractedFacts()
	return _u
}

// SetIngestionStartedAt sets the "ingestion_started_at" field.
func (_u *DocumentUpdate) SetIngestionStartedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetIngestionStartedAt(v)
	return _u
}

// SetNillableIngestionStartedAt sets the "ingestion_started_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableIngestionStartedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetIngestionStartedAt(*v)
	}
	return _u
}

// ClearIngestionStartedAt clears the value of the "ingestion_started_at" field.
func (_u *DocumentUpdate) ClearIngestionStartedAt() *DocumentUpdate {
	_u.mutation.ClearIngestionStartedAt()
	return _u
}

// SetIngestionCompletedAt sets the "ingestion_completed_at" field.
func (_u *DocumentUpdate) SetIngestionCompletedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetIngestionCompletedAt(v)
	return _u
}

// SetNillableIngestionCompletedAt sets the "ingestion_completed_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableIngestionCompletedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetIngestionCompletedAt(*v)
	}
	return _u
}

// ClearIngestionCompletedAt clears the value of the "ingestion_completed_at" field.
func (_u *DocumentUpdate) ClearIngestionCompletedAt() *DocumentUpdate {
	_u.mutation.ClearIngestionCompletedAt()
	return _u
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := document.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Document.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IngestionStatus(); ok {
		if err := document.IngestionStatusValidator(v); err != nil {
			return &ValidationError{Name: "ingestion_status", err: fmt.Errorf(`ent: validator failed for field "Document.ingestion_status": %w`, err)}
		}
	}
	if _u.mutation.LegalCaseCleared() && len(_u.mutation.LegalCaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.legal_case"`)
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(document.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(document.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(document.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileHash(); ok {
		_spec.SetField(document.FieldFileHash, field.TypeString, value)
	}
	if _u.mutation.FileHashCleared() {
		_spec.ClearField(document.FieldFileHash, field.TypeString)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(document.FieldPageCount, field.TypeInt, value)
	}
	if _u.mutation.PageCountCleared() {
		_spec.ClearField(document.FieldPageCount, field.TypeInt)
	}
	if value, ok := _u.mutation.IngestionStatus(); ok {
		_spec.SetField(document.FieldIngestionStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IngestionError(); ok {
		_spec.SetField(document.FieldIngestionError, field.TypeString, value)
	}
	if _u.mutation.IngestionErrorCleared() {
		_spec.ClearField(document.FieldIngestionError, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedFacts(); ok {
		_spec.SetField(document.FieldExtractedFacts, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedFactsCleared() {
		_spec.ClearField(document.FieldExtractedFacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.IngestionStartedAt(); ok {
		_spec.SetField(document.FieldIngestionStartedAt, field.TypeTime, value)
	}
	if _u.mutation.IngestionStartedAtCleared() {
		_spec.ClearField(document.FieldIngestionStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IngestionCompletedAt(); ok {
		_spec.SetField(document.FieldIngestionCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.IngestionCompletedAtCleared() {
		_spec.ClearField(document.FieldIngestionCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetFileName sets the "file_name" field.
func (_u *DocumentUpdateOne) SetFileName(v string) *DocumentUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *DocumentUpdateOne) SetMimeType(v string) *DocumentUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableMimeType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *DocumentUpdateOne) SetStorageKey(v string) *DocumentUpdateOne {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStorageKey(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *DocumentUpdateOne) SetDocType(v string) *DocumentUpdateOne {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetFileHash sets the "file_hash" field.
func (_u *DocumentUpdateOne) SetFileHash(v string) *DocumentUpdateOne {
	_u.mutation.SetFileHash(v)
	return _u
}

// SetNillableFileHash sets the "file_hash" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileHash(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileHash(*v)
	}
	return _u
}

// ClearFileHash clears the value of the "file_hash" field.
func (_u *DocumentUpdateOne) ClearFileHash() *DocumentUpdateOne {
	_u.mutation.ClearFileHash()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *DocumentUpdateOne) SetPageCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePageCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *DocumentUpdateOne) AddPageCount(v int) *DocumentUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// ClearPageCount clears the value of the "page_count" field.
func (_u *DocumentUpdateOne) ClearPageCount() *DocumentUpdateOne {
	_u.mutation.ClearPageCount()
	return _u
}

// SetIngestionStatus sets the "ingestion_status" field.
func (_u *DocumentUpdateOne) SetIngestionStatus(v document.IngestionStatus) *DocumentUpdateOne {
	_u.mutation.SetIngestionStatus(v)
	return _u
}

// SetNillableIngestionStatus sets the "ingestion_status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableIngestionStatus(v *document.IngestionStatus) *DocumentUpdateOne {
	if v != nil {
		_u.SetIngestionStatus(*v)
	}
	return _u
}

// SetIngestionError sets the "ingestion_error" field.
func (_u *DocumentUpdateOne) SetIngestionError(v string) *DocumentUpdateOne {
	_u.mutation.SetIngestionError(v)
	return _u
}

// SetNillableIngestionError sets the "ingestion_error" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableIngestionError(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetIngestionError(*v)
	}
	return _u
}

// ClearIngestionError clears the value of the "ingestion_error" field.
func (_u *DocumentUpdateOne) ClearIngestionError() *DocumentUpdateOne {
	_u.mutation.ClearIngestionError()
	return _u
}

// SetExtractedFacts sets the "extracted_facts" field.
func (_u *DocumentUpdateOne) SetExtractedFacts(v map[string]interface{}) *DocumentUpdateOne {
	_u.mutation.SetExtractedFacts(v)
	return _u
}

// ClearExtractedFacts clears the value of the "extracted_facts" field.
func (_u *DocumentUpdateOne) ClearExtractedFacts() *DocumentUpdateOne {
	_u.mutation.ClearExtractedFacts()
	return _u
}

// SetIngestionStartedAt sets the "ingestion_started_at" field.
func (_u *DocumentUpdateOne) SetIngestionStartedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetIngestionStartedAt(v)
	return _u
}

// SetNillableIngestionStartedAt sets the "ingestion_started_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableIngestionStartedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetIngestionStartedAt(*v)
	}
	return _u
}

// ClearIngestionStartedAt clears the value of the "ingestion_started_at" field.
func (_u *DocumentUpdateOne) ClearIngestionStartedAt() *DocumentUpdateOne {
	_u.mutation.ClearIngestionStartedAt()
	return _u
}

// SetIngestionCompletedAt sets the "ingestion_completed_at" field.
func (_u *DocumentUpdateOne) SetIngestionCompletedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetIngestionCompletedAt(v)
	return _u
}

// SetNillableIngestionCompletedAt sets the "ingestion_completed_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableIngestionCompletedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetIngestionCompletedAt(*v)
	}
	return _u
}

// ClearIngestionCompletedAt clears the value of the "ingestion_completed_at" field.
func (_u *DocumentUpdateOne) ClearIngestionCompletedAt() *DocumentUpdateOne {
	_u.mutation.ClearIngestionCompletedAt()
	return _u
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := document.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Document.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IngestionStatus(); ok {
		if err := document.IngestionStatusValidator(v); err != nil {
			return &ValidationError{Name: "ingestion_status", err: fmt.Errorf(`ent: validator failed for field "Document.ingestion_status": %w`, err)}
		}
	}
	if _u.mutation.LegalCaseCleared() && len(_u.mutation.LegalCaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.legal_case"`)
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(document.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(document.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(document.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileHash(); ok {
		_spec.SetField(document.FieldFileHash, field.TypeString, value)
	}
	if _u.mutation.FileHashCleared() {
		_spec.ClearField(document.FieldFileHash, field.TypeString)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(document.FieldPageCount, field.TypeInt, value)
	}
	if _u.mutation.PageCountCleared() {
		_spec.ClearField(document.FieldPageCount, field.TypeInt)
	}
	if value, ok := _u.mutation.IngestionStatus(); ok {
		_spec.SetField(document.FieldIngestionStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IngestionError(); ok {
		_spec.SetField(document.FieldIngestionError, field.TypeString, value)
	}
	if _u.mutation.IngestionErrorCleared() {
		_spec.ClearField(document.FieldIngestionError, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedFacts(); ok {
		_spec.SetField(document.FieldExtractedFacts, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedFactsCleared() {
		_spec.ClearField(document.FieldExtractedFacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.IngestionStartedAt(); ok {
		_spec.SetField(document.FieldIngestionStartedAt, field.TypeTime, value)
	}
	if _u.mutation.IngestionStartedAtCleared() {
		_spec.ClearField(document.FieldIngestionStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IngestionCompletedAt(); ok {
		_spec.SetField(document.FieldIngestionCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.IngestionCompletedAtCleared() {
		_spec.ClearField(document.FieldIngestionCompletedAt, field.TypeTime)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
