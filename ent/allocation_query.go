// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/allocation"
	"sky-herald.io/herald/ent/followuprequest"
	"sky-herald.io/herald/ent/group"
	"sky-herald.io/herald/ent/observationplanrequest"
	"sky-herald.io/herald/ent/predicate"
)

// AllocationQuery is the builder for querying Allocation entities.
type AllocationQuery struct {
	config
	ctx                         *QueryContext
	order                       []allocation.OrderOption
	inters                      []Interceptor
	predicates                  []predicate.Allocation
	withGroup                   *GroupQuery
	withFollowupRequests        *FollowupRequestQuery
	withObservationPlanRequests *ObservationPlanRequestQuery
	withFKs                     bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AllocationQuery builder.
func (_q *AllocationQuery) Where(ps ...predicate.Allocation) *AllocationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AllocationQuery) Limit(limit int) *AllocationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AllocationQuery) Offset(offset int) *AllocationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AllocationQuery) Unique(unique bool) *AllocationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AllocationQuery) Order(o ...allocation.OrderOption) *AllocationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryGroup chains the current query on the "group" edge.
func (_q *AllocationQuery) QueryGroup() *GroupQuery {
	query := (&GroupClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(allocation.Table, allocation.FieldID, selector),
			sqlgraph.To(group.Table, group.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, allocation.GroupTable, allocation.GroupColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFollowupRequests chains the current query on the "followup_requests" edge.
func (_q *AllocationQuery) QueryFollowupRequests() *FollowupRequestQuery {
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
			sqlgraph.From(allocation.Table, allocation.FieldID, selector),
			sqlgraph.To(followuprequest.Table, followuprequest.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, allocation.FollowupRequestsTable, allocation.FollowupRequestsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryObservationPlanRequests chains the current query on the "observation_plan_requests" edge.
func (_q *AllocationQuery) QueryObservationPlanRequests() *ObservationPlanRequestQuery {
	query := (&ObservationPlanRequestClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(allocation.Table, allocation.FieldID, selector),
			sqlgraph.To(observationplanrequest.Table, observationplanrequest.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, allocation.ObservationPlanRequestsTable, allocation.ObservationPlanRequestsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Allocation entity from the query.
// Returns a *NotFoundError when no Allocation was found.
func (_q *AllocationQuery) First(ctx context.Context) (*Allocation, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{allocation.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AllocationQuery) FirstX(ctx context.Context) *Allocation {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Allocation ID from the query.
// Returns a *NotFoundError when no Allocation ID was found.
func (_q *AllocationQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{allocation.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AllocationQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Allocation entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Allocation entity is found.
// Returns a *NotFoundError when no Allocation entities are found.
func (_q *AllocationQuery) Only(ctx context.Context) (*Allocation, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{allocation.Label}
	default:
		return nil, &NotSingularError{allocation.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AllocationQuery) OnlyX(ctx context.Context) *Allocation {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Allocation ID in the query.
// Returns a *NotSingularError when more than one Allocation ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AllocationQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{allocation.Label}
	default:
		err = &NotSingularError{allocation.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AllocationQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Allocations.
func (_q *AllocationQuery) All(ctx context.Context) ([]*Allocation, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Allocation, *AllocationQuery]()
	return withInterceptors[[]*Allocation](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AllocationQuery) AllX(ctx context.Context) []*Allocation {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Allocation IDs.
func (_q *AllocationQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(allocation.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AllocationQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AllocationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AllocationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AllocationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AllocationQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *AllocationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AllocationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AllocationQuery) Clone() *AllocationQuery {
	if _q == nil {
		return nil
	}
	return &AllocationQuery{
		config:                      _q.config,
		ctx:                         _q.ctx.Clone(),
		order:                       append([]allocation.OrderOption{}, _q.order...),
		inters:                      append([]Interceptor{}, _q.inters...),
		predicates:                  append([]predicate.Allocation{}, _q.predicates...),
		withGroup:                   _q.withGroup.Clone(),
		withFollowupRequests:        _q.withFollowupRequests.Clone(),
		withObservationPlanRequests: _q.withObservationPlanRequests.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithGroup tells the query-builder to eager-load the nodes that are connected to
// the "group" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AllocationQuery) WithGroup(opts ...func(*GroupQuery)) *AllocationQuery {
	query := (&GroupClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGroup = query
	return _q
}

// WithFollowupRequests tells the query-builder to eager-load the nodes that are connected to
// the "followup_requests" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AllocationQuery) WithFollowupRequests(opts ...func(*FollowupRequestQuery)) *AllocationQuery {
	query := (&FollowupRequestClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFollowupRequests = query
	return _q
}

// WithObservationPlanRequests tells the query-builder to eager-load the nodes that are connected to
// the "observation_plan_requests" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AllocationQuery) WithObservationPlanRequests(opts ...func(*ObservationPlanRequestQuery)) *AllocationQuery {
	query := (&ObservationPlanRequestClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withObservationPlanRequests = query
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
//	client.Allocation.Query().
//		GroupBy(allocation.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AllocationQuery) GroupBy(field string, fields ...string) *AllocationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AllocationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = allocation.Label
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
//	client.Allocation.Query().
//		Select(allocation.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *AllocationQuery) Select(fields ...string) *AllocationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AllocationSelect{AllocationQuery: _q}
	sbuild.label = allocation.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AllocationSelect configured with the given aggregations.
func (_q *AllocationQuery) Aggregate(fns ...AggregateFunc) *AllocationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AllocationQuery) prepareQuery(ctx context.Context) error {
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
		if !allocation.ValidColumn(f) {
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

func (_q *AllocationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Allocation, error) {
	var (
		nodes       = []*Allocation{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withGroup != nil,
			_q.withFollowupRequests != nil,
			_q.withObservationPlanRequests != nil,
		}
	)
	if _q.withGroup != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, allocation.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Allocation).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Allocation{config: _q.config}
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
	if query := _q.withGroup; query != nil {
		if err := _q.loadGroup(ctx, query, nodes, nil,
			func(n *Allocation, e *Group) { n.Edges.Group = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withFollowupRequests; query != nil {
		if err := _q.loadFollowupRequests(ctx, query, nodes,
			func(n *Allocation) { n.Edges.FollowupRequests = []*FollowupRequest{} },
			func(n *Allocation, e *FollowupRequest) {
				n.Edges.FollowupRequests = append(n.Edges.FollowupRequests, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withObservationPlanRequests; query != nil {
		if err := _q.loadObservationPlanRequests(ctx, query, nodes,
			func(n *Allocation) { n.Edges.ObservationPlanRequests = []*ObservationPlanRequest{} },
			func(n *Allocation, e *ObservationPlanRequest) {
				n.Edges.ObservationPlanRequests = append(n.Edges.ObservationPlanRequests, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AllocationQuery) loadGroup(ctx context.Context, query *GroupQuery, nodes []*Allocation, init func(*Allocation), assign func(*Allocation, *Group)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Allocation)
	for i := range nodes {
		if nodes[i].group_allocations == nil {
			continue
		}
		fk := *nodes[i].group_allocations
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(group.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "group_allocations" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *AllocationQuery) loadFollowupRequests(ctx context.Context, query *FollowupRequestQuery, nodes []*Allocation, init func(*Allocation), assign func(*Allocation, *FollowupRequest)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Allocation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.FollowupRequest(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(allocation.FollowupRequestsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.allocation_followup_requests
		if fk == nil {
			return fmt.Errorf(`foreign-key "allocation_followup_requests" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "allocation_followup_requests" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AllocationQuery) loadObservationPlanRequests(ctx context.Context, query *ObservationPlanRequestQuery, nodes []*Allocation, init func(*Allocation), assign func(*Allocation, *ObservationPlanRequest)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Allocation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.ObservationPlanRequest(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(allocation.ObservationPlanRequestsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.allocation_observation_plan_requests
		if fk == nil {
			return fmt.Errorf(`foreign-key "allocation_observation_plan_requests" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "allocation_observation_plan_requests" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AllocationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AllocationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(allocation.Table, allocation.Columns, sqlgraph.NewFieldSpec(allocation.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, allocation.FieldID)
		for i := range fields {
			if fields[i] != allocation.FieldID {
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

func (_q *AllocationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(allocation.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = allocation.Columns
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

// AllocationGroupBy is the group-by builder for Allocation entities.
type AllocationGroupBy struct {
	selector
	build *AllocationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AllocationGroupBy) Aggregate(fns ...AggregateFunc) *AllocationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AllocationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AllocationQuery, *AllocationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AllocationGroupBy) sqlScan(ctx context.Context, root *AllocationQuery, v any) error {
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

// AllocationSelect is the builder for selecting fields of Allocation entities.
type AllocationSelect struct {
	*AllocationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AllocationSelect) Aggregate(fns ...AggregateFunc) *AllocationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AllocationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AllocationQuery, *AllocationSelect](ctx, _s.AllocationQuery, _s, _s.inters, v)
}

func (_s *AllocationSelect) sqlScan(ctx context.Context, root *AllocationQuery, v any) error {
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
