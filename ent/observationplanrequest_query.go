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
	"sky-herald.io/herald/ent/allocation"
	"sky-herald.io/herald/ent/observationplanrequest"
	"sky-herald.io/herald/ent/predicate"
	"sky-herald.io/herald/ent/user"
)

// ObservationPlanRequestQuery is the builder for querying ObservationPlanRequest entities.
type ObservationPlanRequestQuery struct {
	config
	ctx            *QueryContext
	order          []observationplanrequest.OrderOption
	inters         []Interceptor
	predicates     []predicate.ObservationPlanRequest
	withAllocation *AllocationQuery
	withRequester  *UserQuery
	withFKs        bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ObservationPlanRequestQuery builder.
func (_q *ObservationPlanRequestQuery) Where(ps ...predicate.ObservationPlanRequest) *ObservationPlanRequestQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ObservationPlanRequestQuery) Limit(limit int) *ObservationPlanRequestQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ObservationPlanRequestQuery) Offset(offset int) *ObservationPlanRequestQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ObservationPlanRequestQuery) Unique(unique bool) *ObservationPlanRequestQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ObservationPlanRequestQuery) Order(o ...observationplanrequest.OrderOption) *ObservationPlanRequestQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAllocation chains the current query on the "allocation" edge.
func (_q *ObservationPlanRequestQuery) QueryAllocation() *AllocationQuery {
	query := (&AllocationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(observationplanrequest.Table, observationplanrequest.FieldID, selector),
			sqlgraph.To(allocation.Table, allocation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, observationplanrequest.AllocationTable, observationplanrequest.AllocationColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRequester chains the current query on the "requester" edge.
func (_q *ObservationPlanRequestQuery) QueryRequester() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(observationplanrequest.Table, observationplanrequest.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, observationplanrequest.RequesterTable, observationplanrequest.RequesterColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ObservationPlanRequest entity from the query.
// Returns a *NotFoundError when no ObservationPlanRequest was found.
func (_q *ObservationPlanRequestQuery) First(ctx context.Context) (*ObservationPlanRequest, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{observationplanrequest.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ObservationPlanRequestQuery) FirstX(ctx context.Context) *ObservationPlanRequest {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ObservationPlanRequest ID from the query.
// Returns a *NotFoundError when no ObservationPlanRequest ID was found.
func (_q *ObservationPlanRequestQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{observationplanrequest.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ObservationPlanRequestQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ObservationPlanRequest entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ObservationPlanRequest entity is found.
// Returns a *NotFoundError when no ObservationPlanRequest entities are found.
func (_q *ObservationPlanRequestQuery) Only(ctx context.Context) (*ObservationPlanRequest, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{observationplanrequest.Label}
	default:
		return nil, &NotSingularError{observationplanrequest.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ObservationPlanRequestQuery) OnlyX(ctx context.Context) *ObservationPlanRequest {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ObservationPlanRequest ID in the query.
// Returns a *NotSingularError when more than one ObservationPlanRequest ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ObservationPlanRequestQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{observationplanrequest.Label}
	default:
		err = &NotSingularError{observationplanrequest.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ObservationPlanRequestQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ObservationPlanRequests.
func (_q *ObservationPlanRequestQuery) All(ctx context.Context) ([]*ObservationPlanRequest, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ObservationPlanRequest, *ObservationPlanRequestQuery]()
	return withInterceptors[[]*ObservationPlanRequest](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ObservationPlanRequestQuery) AllX(ctx context.Context) []*ObservationPlanRequest {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ObservationPlanRequest IDs.
func (_q *ObservationPlanRequestQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(observationplanrequest.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ObservationPlanRequestQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ObservationPlanRequestQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ObservationPlanRequestQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ObservationPlanRequestQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ObservationPlanRequestQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ObservationPlanRequestQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ObservationPlanRequestQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ObservationPlanRequestQuery) Clone() *ObservationPlanRequestQuery {
	if _q == nil {
		return nil
	}
	return &ObservationPlanRequestQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]observationplanrequest.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.ObservationPlanRequest{}, _q.predicates...),
		withAllocation: _q.withAllocation.Clone(),
		withRequester:  _q.withRequester.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAllocation tells the query-builder to eager-load the nodes that are connected to
// the "allocation" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ObservationPlanRequestQuery) WithAllocation(opts ...func(*AllocationQuery)) *ObservationPlanRequestQuery {
	query := (&AllocationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAllocation = query
	return _q
}

// WithRequester tells the query-builder to eager-load the nodes that are connected to
// the "requester" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ObservationPlanRequestQuery) WithRequester(opts ...func(*UserQuery)) *ObservationPlanRequestQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRequester = query
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
//	client.ObservationPlanRequest.Query().
//		GroupBy(observationplanrequest.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ObservationPlanRequestQuery) GroupBy(field string, fields ...string) *ObservationPlanRequestGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ObservationPlanRequestGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = observationplanrequest.Label
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
//	client.ObservationPlanRequest.Query().
//		Select(observationplanrequest.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *ObservationPlanRequestQuery) Select(fields ...string) *ObservationPlanRequestSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ObservationPlanRequestSelect{ObservationPlanRequestQuery: _q}
	sbuild.label = observationplanrequest.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ObservationPlanRequestSelect configured with the given aggregations.
func (_q *ObservationPlanRequestQuery) Aggregate(fns ...AggregateFunc) *ObservationPlanRequestSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ObservationPlanRequestQuery) prepareQuery(ctx context.Context) error {
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
		if !observationplanrequest.ValidColumn(f) {
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

func (_q *ObservationPlanRequestQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ObservationPlanRequest, error) {
	var (
		nodes       = []*ObservationPlanRequest{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withAllocation != nil,
			_q.withRequester != nil,
		}
	)
	if _q.withAllocation != nil || _q.withRequester != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, observationplanrequest.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ObservationPlanRequest).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ObservationPlanRequest{config: _q.config}
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
	if query := _q.withAllocation; query != nil {
		if err := _q.loadAllocation(ctx, query, nodes, nil,
			func(n *ObservationPlanRequest, e *Allocation) { n.Edges.Allocation = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRequester; query != nil {
		if err := _q.loadRequester(ctx, query, nodes, nil,
			func(n *ObservationPlanRequest, e *User) { n.Edges.Requester = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ObservationPlanRequestQuery) loadAllocation(ctx context.Context, query *AllocationQuery, nodes []*ObservationPlanRequest, init func(*ObservationPlanRequest), assign func(*ObservationPlanRequest, *Allocation)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ObservationPlanRequest)
	for i := range nodes {
		if nodes[i].allocation_observation_plan_requests == nil {
			continue
		}
		fk := *nodes[i].allocation_observation_plan_requests
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(allocation.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "allocation_observation_plan_requests" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ObservationPlanRequestQuery) loadRequester(ctx context.Context, query *UserQuery, nodes []*ObservationPlanRequest, init func(*ObservationPlanRequest), assign func(*ObservationPlanRequest, *User)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ObservationPlanRequest)
	for i := range nodes {
		if nodes[i].observation_plan_request_requester == nil {
			continue
		}
		fk := *nodes[i].observation_plan_request_requester
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "observation_plan_request_requester" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ObservationPlanRequestQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ObservationPlanRequestQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(observationplanrequest.Table, observationplanrequest.Columns, sqlgraph.NewFieldSpec(observationplanrequest.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, observationplanrequest.FieldID)
		for i := range fields {
			if fields[i] != observationplanrequest.FieldID {
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

func (_q *ObservationPlanRequestQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(observationplanrequest.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = observationplanrequest.Columns
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

// ObservationPlanRequestGroupBy is the group-by builder for ObservationPlanRequest entities.
type ObservationPlanRequestGroupBy struct {
	selector
	build *ObservationPlanRequestQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ObservationPlanRequestGroupBy) Aggregate(fns ...AggregateFunc) *ObservationPlanRequestGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ObservationPlanRequestGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ObservationPlanRequestQuery, *ObservationPlanRequestGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ObservationPlanRequestGroupBy) sqlScan(ctx context.Context, root *ObservationPlanRequestQuery, v any) error {
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

// ObservationPlanRequestSelect is the builder for selecting fields of ObservationPlanRequest entities.
type ObservationPlanRequestSelect struct {
	*ObservationPlanRequestQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ObservationPlanRequestSelect) Aggregate(fns ...AggregateFunc) *ObservationPlanRequestSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ObservationPlanRequestSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ObservationPlanRequestQuery, *ObservationPlanRequestSelect](ctx, _s.ObservationPlanRequestQuery, _s, _s.inters, v)
}

func (_s *ObservationPlanRequestSelect) sqlScan(ctx context.Context, root *ObservationPlanRequestQuery, v any) error {
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
