// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verdictlabs/verdict/ent/document"
	"github.com/verdictlabs/verdict/ent/firm"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/ent/predicate"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/ent/witness"
)

// LegalCaseQuery is the builder for querying LegalCase entities.
type LegalCaseQuery struct {
	config
	ctx           *QueryContext
	order         []legalcase.OrderOption
	inters        []Interceptor
	predicates    []predicate.LegalCase
	withFirm      *FirmQuery
	withWitnesses *WitnessQuery
	withSessions  *SessionQuery
	withDocuments *DocumentQuery
	modifiers     []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LegalCaseQuery builder.
func (_q *LegalCaseQuery) Where(ps ...predicate.LegalCase) *LegalCaseQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *LegalCaseQuery) Limit(limit int) *LegalCaseQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *LegalCaseQuery) Offset(offset int) *LegalCaseQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *LegalCaseQuery) Unique(unique bool) *LegalCaseQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *LegalCaseQuery) Order(o ...legalcase.OrderOption) *LegalCaseQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryFirm chains the current query on the "firm" edge.
func (_q *LegalCaseQuery) QueryFirm() *FirmQuery {
	query := (&FirmClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(legalcase.Table, legalcase.FieldID, selector),
			sqlgraph.To(firm.Table, firm.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, legalcase.FirmTable, legalcase.FirmColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryWitnesses chains the current query on the "witnesses" edge.
func (_q *LegalCaseQuery) QueryWitnesses() *WitnessQuery {
	query := (&WitnessClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(legalcase.Table, legalcase.FieldID, selector),
			sqlgraph.To(witness.Table, witness.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, legalcase.WitnessesTable, legalcase.WitnessesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySessions chains the current query on the "sessions" edge.
func (_q *LegalCaseQuery) QuerySessions() *SessionQuery {
	query := (&SessionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(legalcase.Table, legalcase.FieldID, selector),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, legalcase.SessionsTable, legalcase.SessionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDocuments chains the current query on the "documents" edge.
func (_q *LegalCaseQuery) QueryDocuments() *DocumentQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(legalcase.Table, legalcase.FieldID, selector),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, legalcase.DocumentsTable, legalcase.DocumentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first LegalCase entity from the query.
// Returns a *NotFoundError when no LegalCase was found.
func (_q *LegalCaseQuery) First(ctx context.Context) (*LegalCase, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{legalcase.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *LegalCaseQuery) FirstX(ctx context.Context) *LegalCase {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first LegalCase ID from the query.
// Returns a *NotFoundError when no LegalCase ID was found.
func (_q *LegalCaseQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{legalcase.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *LegalCaseQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single LegalCase entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one LegalCase entity is found.
// Returns a *NotFoundError when no LegalCase entities are found.
func (_q *LegalCaseQuery) Only(ctx context.Context) (*LegalCase, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{legalcase.Label}
	default:
		return nil, &NotSingularError{legalcase.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *LegalCaseQuery) OnlyX(ctx context.Context) *LegalCase {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only LegalCase ID in the query.
// Returns a *NotSingularError when more than one LegalCase ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *LegalCaseQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{legalcase.Label}
	default:
		err = &NotSingularError{legalcase.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *LegalCaseQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of LegalCases.
func (_q *LegalCaseQuery) All(ctx context.Context) ([]*LegalCase, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*LegalCase, *LegalCaseQuery]()
	return withInterceptors[[]*LegalCase](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *LegalCaseQuery) AllX(ctx context.Context) []*LegalCase {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of LegalCase IDs.
func (_q *LegalCaseQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(legalcase.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *LegalCaseQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *LegalCaseQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*LegalCaseQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *LegalCaseQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *LegalCaseQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *LegalCaseQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LegalCaseQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *LegalCaseQuery) Clone() *LegalCaseQuery {
	if _q == nil {
		return nil
	}
	return &LegalCaseQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]legalcase.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.LegalCase{}, _q.predicates...),
		withFirm:      _q.withFirm.Clone(),
		withWitnesses: _q.withWitnesses.Clone(),
		withSessions:  _q.withSessions.Clone(),
		withDocuments: _q.withDocuments.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithFirm tells the query-builder to eager-load the nodes that are connected to
// the "firm" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LegalCaseQuery) WithFirm(opts ...func(*FirmQuery)) *LegalCaseQuery {
	query := (&FirmClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFirm = query
	return _q
}

// WithWitnesses tells the query-builder to eager-load the nodes that are connected to
// the "witnesses" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LegalCaseQuery) WithWitnesses(opts ...func(*WitnessQuery)) *LegalCaseQuery {
	query := (&WitnessClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWitnesses = query
	return _q
}

// WithSessions tells the query-builder to eager-load the nodes that are connected to
// the "sessions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LegalCaseQuery) WithSessions(opts ...func(*SessionQuery)) *LegalCaseQuery {
	query := (&SessionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSessions = query
	return _q
}

// WithDocuments tells the query-builder to eager-load the nodes that are connected to
// the "documents" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LegalCaseQuery) WithDocuments(opts ...func(*DocumentQuery)) *LegalCaseQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDocuments = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		FirmID string `json:"firm_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.LegalCase.Query().
//		GroupBy(legalcase.FieldFirmID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *LegalCaseQuery) GroupBy(field string, fields ...string) *LegalCaseGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LegalCaseGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = legalcase.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		FirmID string `json:"firm_id,omitempty"`
//	}
//
//	client.LegalCase.Query().
//		Select(legalcase.FieldFirmID).
//		Scan(ctx, &v)
func (_q *LegalCaseQuery) Select(fields ...string) *LegalCaseSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &LegalCaseSelect{LegalCaseQuery: _q}
	sbuild.label = legalcase.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LegalCaseSelect configured with the given aggregations.
func (_q *LegalCaseQuery) Aggregate(fns ...AggregateFunc) *LegalCaseSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *LegalCaseQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !legalcase.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *LegalCaseQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*LegalCase, error) {
	var (
		nodes       = []*LegalCase{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withFirm != nil,
			_q.withWitnesses != nil,
			_q.withSessions != nil,
			_q.withDocuments != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*LegalCase).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &LegalCase{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withFirm; query != nil {
		if err := _q.loadFirm(ctx, query, nodes, nil,
			func(n *LegalCase, e *Firm) { n.Edges.Firm = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withWitnesses; query != nil {
		if err := _q.loadWitnesses(ctx, query, nodes,
			func(n *LegalCase) { n.Edges.Witnesses = []*Witness{} },
			func(n *LegalCase, e *Witness) { n.Edges.Witnesses = append(n.Edges.Witnesses, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSessions; query != nil {
		if err := _q.loadSessions(ctx, query, nodes,
			func(n *LegalCase) { n.Edges.Sessions = []*Session{} },
			func(n *LegalCase, e *Session) { n.Edges.Sessions = append(n.Edges.Sessions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDocuments; query != nil {
		if err := _q.loadDocuments(ctx, query, nodes,
			func(n *LegalCase) { n.Edges.Documents = []*Document{} },
			func(n *LegalCase, e *Document) { n.Edges.Documents = append(n.Edges.Documents, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *LegalCaseQuery) loadFirm(ctx context.Context, query *FirmQuery, nodes []*LegalCase, init func(*LegalCase), assign func(*LegalCase, *Firm)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*LegalCase)
	for i := range nodes {
		fk := nodes[i].FirmID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(firm.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "firm_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *LegalCaseQuery) loadWitnesses(ctx context.Context, query *WitnessQuery, nodes []*LegalCase, init func(*LegalCase), assign func(*LegalCase, *Witness)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*LegalCase)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(witness.FieldCaseID)
	}
	query.Where(predicate.Witness(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(legalcase.WitnessesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CaseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "case_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *LegalCaseQuery) loadSessions(ctx context.Context, query *SessionQuery, nodes []*LegalCase, init func(*LegalCase), assign func(*LegalCase, *Session)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*LegalCase)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(session.FieldCaseID)
	}
	query.Where(predicate.Session(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(legalcase.SessionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CaseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "case_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *LegalCaseQuery) loadDocuments(ctx context.Context, query *DocumentQuery, nodes []*LegalCase, init func(*LegalCase), assign func(*LegalCase, *Document)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*LegalCase)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(document.FieldCaseID)
	}
	query.Where(predicate.Document(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(legalcase.DocumentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CaseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "case_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *LegalCaseQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *LegalCaseQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(legalcase.Table, legalcase.Columns, sqlgraph.NewFieldSpec(legalcase.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, legalcase.FieldID)
		for i := range fields {
			if fields[i] != legalcase.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withFirm != nil {
			_spec.Node.AddColumnOnce(legalcase.FieldFirmID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *LegalCaseQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(legalcase.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = legalcase.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *LegalCaseQuery) ForUpdate(opts ...sql.LockOption) *LegalCaseQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *LegalCaseQuery) ForShare(opts ...sql.LockOption) *LegalCaseQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// LegalCaseGroupBy is the group-by builder for LegalCase entities.
type LegalCaseGroupBy struct {
	selector
	build *LegalCaseQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *LegalCaseGroupBy) Aggregate(fns ...AggregateFunc) *LegalCaseGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *LegalCaseGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LegalCaseQuery, *LegalCaseGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *LegalCaseGroupBy) sqlScan(ctx context.Context, root *LegalCaseQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// LegalCaseSelect is the builder for selecting fields of LegalCase entities.
type LegalCaseSelect struct {
	*LegalCaseQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *LegalCaseSelect) Aggregate(fns ...AggregateFunc) *LegalCaseSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *LegalCaseSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LegalCaseQuery, *LegalCaseSelect](ctx, _s.LegalCaseQuery, _s, _s.inters, v)
}

func (_s *LegalCaseSelect) sqlScan(ctx context.Context, root *LegalCaseQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
