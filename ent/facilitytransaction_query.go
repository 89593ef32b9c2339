// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/facilitytransaction"
	"sky-herald.io/herald/ent/followuprequest"
	"sky-herald.io/herald/ent/predicate"
)

// FacilityTransactionQuery is the builder for querying FacilityTransaction entities.
type FacilityTransactionQuery struct {
	config
	ctx                 *QueryContext
	order               []facilitytransaction.OrderOption
	inters              []Interceptor
	predicates          []predicate.FacilityTransaction
	withFollowupRequest *FollowupRequestQuery
	withFKs             bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the FacilityTransactionQuery builder.
func (_q *FacilityTransactionQuery) Where(ps ...predicate.FacilityTransaction) *FacilityTransactionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *FacilityTransactionQuery) Limit(limit int) *FacilityTransactionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *FacilityTransactionQuery) Offset(offset int) *FacilityTransactionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *FacilityTransactionQuery) Unique(unique bool) *FacilityTransactionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *FacilityTransactionQuery) Order(o ...facilitytransaction.OrderOption) *FacilityTransactionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryFollowupRequest chains the current query on the "followup_request" edge.
func (_q *FacilityTransactionQuery) QueryFollowupRequest() *FollowupRequestQuery {
	query := (&FollowupRequestClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(facilitytransaction.Table, facilitytransaction.FieldID, selector),
			sqlgraph.To(followuprequest.Table, followuprequest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, facilitytransaction.FollowupRequestTable, facilitytransaction.FollowupRequestColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first FacilityTransaction entity from the query.
// Returns a *NotFoundError when no FacilityTransaction was found.
func (_q *FacilityTransactionQuery) First(ctx context.Context) (*FacilityTransaction, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{facilitytransaction.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *FacilityTransactionQuery) FirstX(ctx context.Context) *FacilityTransaction {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first FacilityTransaction ID from the query.
// Returns a *NotFoundError when no FacilityTransaction ID was found.
func (_q *FacilityTransactionQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{facilitytransaction.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *FacilityTransactionQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single FacilityTransaction entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one FacilityTransaction entity is found.
// Returns a *NotFoundError when no FacilityTransaction entities are found.
func (_q *FacilityTransactionQuery) Only(ctx context.Context) (*FacilityTransaction, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{facilitytransaction.Label}
	default:
		return nil, &NotSingularError{facilitytransaction.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *FacilityTransactionQuery) OnlyX(ctx context.Context) *FacilityTransaction {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only FacilityTransaction ID in the query.
// Returns a *NotSingularError when more than one FacilityTransaction ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *FacilityTransactionQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{facilitytransaction.Label}
	default:
		err = &NotSingularError{facilitytransaction.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *FacilityTransactionQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of FacilityTransactions.
func (_q *FacilityTransactionQuery) All(ctx context.Context) ([]*FacilityTransaction, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*FacilityTransaction, *FacilityTransactionQuery]()
	return withInterceptors[[]*FacilityTransaction](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *FacilityTransactionQuery) AllX(ctx context.Context) []*FacilityTransaction {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of FacilityTransaction IDs.
func (_q *FacilityTransactionQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(facilitytransaction.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *FacilityTransactionQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *FacilityTransactionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*FacilityTransactionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *FacilityTransactionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *FacilityTransactionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *FacilityTransactionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the FacilityTransactionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *FacilityTransactionQuery) Clone() *FacilityTransactionQuery {
	if _q == nil {
		return nil
	}
	return &FacilityTransactionQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]facilitytransaction.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.FacilityTransaction{}, _q.predicates...),
		withFollowupRequest: _q.withFollowupRequest.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithFollowupRequest tells the query-builder to eager-load the nodes that are connected to
// the "followup_request" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FacilityTransactionQuery) WithFollowupRequest(opts ...func(*FollowupRequestQuery)) *FacilityTransactionQuery {
	query := (&FollowupRequestClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFollowupRequest = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.FacilityTransaction.Query().
//		GroupBy(facilitytransaction.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *FacilityTransactionQuery) GroupBy(field string, fields ...string) *FacilityTransactionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &FacilityTransactionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = facilitytransaction.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.FacilityTransaction.Query().
//		Select(facilitytransaction.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *FacilityTransactionQuery) Select(fields ...string) *FacilityTransactionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &FacilityTransactionSelect{FacilityTransactionQuery: _q}
	sbuild.label = facilitytransaction.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a FacilityTransactionSelect configured with the given aggregations.
func (_q *FacilityTransactionQuery) Aggregate(fns ...AggregateFunc) *FacilityTransactionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *FacilityTransactionQuery) prepareQuery(ctx context.Context) error {
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
		if !facilitytransaction.ValidColumn(f) {
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

func (_q *FacilityTransactionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*FacilityTransaction, error) {
	var (
		nodes       = []*FacilityTransaction{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withFollowupRequest != nil,
		}
	)
	if _q.withFollowupRequest != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, facilitytransaction.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*FacilityTransaction).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &FacilityTransaction{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
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
	if query := _q.withFollowupRequest; query != nil {
		if err := _q.loadFollowupRequest(ctx, query, nodes, nil,
			func(n *FacilityTransaction, e *FollowupRequest) { n.Edges.FollowupRequest = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *FacilityTransactionQuery) loadFollowupRequest(ctx context.Context, query *FollowupRequestQuery, nodes []*FacilityTransaction, init func(*FacilityTransaction), assign func(*FacilityTransaction, *FollowupRequest)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*FacilityTransaction)
	for i := range nodes {
		if nodes[i].followup_request_transactions == nil {
			continue
		}
		fk := *nodes[i].followup_request_transactions
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(followuprequest.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "followup_request_transactions" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *FacilityTransactionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *FacilityTransactionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(facilitytransaction.Table, facilitytransaction.Columns, sqlgraph.NewFieldSpec(facilitytransaction.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, facilitytransaction.FieldID)
		for i := range fields {
			if fields[i] != facilitytransaction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *FacilityTransactionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(facilitytransaction.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = facilitytransaction.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
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

// FacilityTransactionGroupBy is the group-by builder for FacilityTransaction entities.
type FacilityTransactionGroupBy struct {
	selector
	build *FacilityTransactionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *FacilityTransactionGroupBy) Aggregate(fns ...AggregateFunc) *FacilityTransactionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *FacilityTransactionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FacilityTransactionQuery, *FacilityTransactionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *FacilityTransactionGroupBy) sqlScan(ctx context.Context, root *FacilityTransactionQuery, v any) error {
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

// FacilityTransactionSelect is the builder for selecting fields of FacilityTransaction entities.
type FacilityTransactionSelect struct {
	*FacilityTransactionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *FacilityTransactionSelect) Aggregate(fns ...AggregateFunc) *FacilityTransactionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *FacilityTransactionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FacilityTransactionQuery, *FacilityTransactionSelect](ctx, _s.FacilityTransactionQuery, _s, _s.inters, v)
}

func (_s *FacilityTransactionSelect) sqlScan(ctx context.Context, root *FacilityTransactionQuery, v any) error {
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
