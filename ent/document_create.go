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
	"github.com/verdictlabs/verdict/ent/legalcase"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
}

// SetCaseID sets the "case_id" field.
func (_c *DocumentCreate) SetCaseID(v string) *DocumentCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *DocumentCreate) SetFileName(v string) *DocumentCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *DocumentCreate) SetMimeType(v string) *DocumentCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetStorageKey sets the "storage_key" field.
func (_c *DocumentCreate) SetStorageKey(v string) *DocumentCreate {
	_c.mutation.SetStorageKey(v)
	return _c
}

// SetDocType sets the "doc_type" field.
func (_c *DocumentCreate) SetDocType(v string) *DocumentCreate {
	_c.mutation.SetDocType(v)
	return _c
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableDocType(v *string) *DocumentCreate {
	if v != nil {
		_c.SetDocType(*v)
	}
	return _c
}

// SetFileHash sets the "file_hash" field.
func (_c *DocumentCreate) SetFileHash(v string) *DocumentCreate {
	_c.mutation.SetFileHash(v)
	return _c
}

// SetNillableFileHash sets the "file_hash" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableFileHash(v *string) *DocumentCreate {
	if v != nil {
		_c.SetFileHash(*v)
	}
	return _c
}

// SetPageCount sets the "page_count" field.
func (_c *DocumentCreate) SetPageCount(v int) *DocumentCreate {
	_c.mutation.SetPageCount(v)
	return _c
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillablePageCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetPageCount(*v)
	}
	return _c
}

// SetIngestionStatus sets the "ingestion_status" field.
func (_c *DocumentCreate) SetIngestionStatus(v document.IngestionStatus) *DocumentCreate {
	_c.mutation.SetIngestionStatus(v)
	return _c
}

// SetNillableIngestionStatus sets the "ingestion_status" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableIngestionStatus(v *document.IngestionStatus) *DocumentCreate {
	if v != nil {
		_c.SetIngestionStatus(*v)
	}
	return _c
}

// SetIngestionError sets the "ingestion_error" field.
func (_c *DocumentCreate) SetIngestionError(v string) *DocumentCreate {
	_c.mutation.SetIngestionError(v)
	return _c
}

// SetNillableIngestionError sets the "ingestion_error" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableIngestionError(v *string) *DocumentCreate {
	if v != nil {
		_c.SetIngestionError(*v)
	}
	return _c
}

// SetExtractedFacts sets the "extracted_facts" field.
func (_c *DocumentCreate) SetExtractedFacts(v map[string]interface{}) *DocumentCreate {
	_c.mutation.SetExtractedFacts(v)
	return _c
}

// SetIngestionStartedAt sets the "ingestion_started_at" field.
func (_c *DocumentCreate) SetIngestionStartedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetIngestionStartedAt(v)
	return _c
}

// SetNillableIngestionStartedAt sets the "ingestion_started_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableIngestionStartedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetIngestionStartedAt(*v)
	}
	return _c
}

// SetIngestionCompletedAt sets the "ingestion_completed_at" field.
func (_c *DocumentCreate) SetIngestionCompletedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetIngestionCompletedAt(v)
	return _c
}

// SetNillableIngestionCompletedAt sets the "ingestion_completed_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableIngestionCompletedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetIngestionCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentCreate) SetCreatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCreatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v string) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetLegalCaseID sets the "legal_case" edge to the LegalCase entity by ID.
func (_c *DocumentCreate) SetLegalCaseID(id string) *DocumentCreate {
	_c.mutation.SetLegalCaseID(id)
	return _c
}

// SetLegalCase sets the "legal_case" edge to the LegalCase entity.
func (_c *DocumentCreate) SetLegalCase(v *LegalCase) *DocumentCreate {
	return _c.SetLegalCaseID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.DocType(); !ok {
		v := document.DefaultDocType
		_c.mutation.SetDocType(v)
	}
	if _, ok := _c.mutation.IngestionStatus(); !ok {
		v := document.DefaultIngestionStatus
		_c.mutation.SetIngestionStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "Document.case_id"`)}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "Document.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := document.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Document.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "Document.mime_type"`)}
	}
	if _, ok := _c.mutation.StorageKey(); !ok {
		return &ValidationError{Name: "storage_key", err: errors.New(`ent: missing required field "Document.storage_key"`)}
	}
	if _, ok := _c.mutation.DocType(); !ok {
		return &ValidationError{Name: "doc_type", err: errors.New(`ent: missing required field "Document.doc_type"`)}
	}
	if _, ok := _c.mutation.IngestionStatus(); !ok {
		return &ValidationError{Name: "ingestion_status", err: errors.New(`ent: missing required field "Document.ingestion_status"`)}
	}
	if v, ok := _c.mutation.IngestionStatus(); ok {
		if err := document.IngestionStatusValidator(v); err != nil {
			return &ValidationError{Name: "ingestion_status", err: fmt.Errorf(`ent: validator failed for field "Document.ingestion_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	if len(_c.mutation.LegalCaseIDs()) == 0 {
		return &ValidationError{Name: "legal_case", err: errors.New(`ent: missing required edge "Document.legal_case"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
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
			return nil, fmt.Errorf("unexpected Document.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(document.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.StorageKey(); ok {
		_spec.SetField(document.FieldStorageKey, field.TypeString, value)
		_node.StorageKey = value
	}
	if value, ok := _c.mutation.DocType(); ok {
		_spec.SetField(document.FieldDocType, field.TypeString, value)
		_node.DocType = value
	}
	if value, ok := _c.mutation.FileHash(); ok {
		_spec.SetField(document.FieldFileHash, field.TypeString, value)
		_node.FileHash = value
	}
	if value, ok := _c.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
		_node.PageCount = &value
	}
	if value, ok := _c.mutation.IngestionStatus(); ok {
		_spec.SetField(document.FieldIngestionStatus, field.TypeEnum, value)
		_node.IngestionStatus = value
	}
	if value, ok := _c.mutation.IngestionError(); ok {
		_spec.SetField(document.FieldIngestionError, field.TypeString, value)
		_node.IngestionError = &value
	}
	if value, ok := _c.mutation.ExtractedFacts(); ok {
		_spec.SetField(document.FieldExtractedFacts, field.TypeJSON, value)
		_node.ExtractedFacts = value
	}
	if value, ok := _c.mutation.IngestionStartedAt(); ok {
		_spec.SetField(document.FieldIngestionStartedAt, field.TypeTime, value)
		_node.IngestionStartedAt = &value
	}
	if value, ok := _c.mutation.IngestionCompletedAt(); ok {
		_spec.SetField(document.FieldIngestionCompletedAt, field.TypeTime, value)
		_node.IngestionCompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.LegalCaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.LegalCaseTable,
			Columns: []string{document.LegalCaseColumn},
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
	return _node, _spec
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
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
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
