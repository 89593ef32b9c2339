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
	"sky-herald.io/herald/ent/facilitytransaction"
	"sky-herald.io/herald/ent/followuprequest"
	"sky-herald.io/herald/ent/predicate"
	"sky-herald.io/herald/ent/user"
)

// FollowupRequestQuery is the builder for querying FollowupRequest entities.
type FollowupRequestQuery struct {
	config
	ctx              *QueryContext
	order            []followuprequest.OrderOption
	inters           []Interceptor
	predicates       []predicate.FollowupRequest
	withAllocation   *AllocationQuery
	withRequester    *UserQuery
	withTransactions *FacilityTransactionQuery
	withFKs          bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the FollowupRequestQuery builder.
func (_q *FollowupRequestQuery) Where(ps ...predicate.FollowupRequest) *FollowupRequestQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *FollowupRequestQuery) Limit(limit int) *FollowupRequestQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *FollowupRequestQuery) Offset(offset int) *FollowupRequestQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *FollowupRequestQuery) Unique(unique bool) *FollowupRequestQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *FollowupRequestQuery) Order(o ...followuprequest.OrderOption) *FollowupRequestQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAllocation chains the current query on the "allocation" edge.
func (_q *FollowupRequestQuery) QueryAllocation() *AllocationQuery {
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
			sqlgraph.From(followuprequest.Table, followuprequest.FieldID, selector),
			sqlgraph.To(allocation.Table, allocation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, followuprequest.AllocationTable, followuprequest.AllocationColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRequester chains the current query on the "requester" edge.
func (_q *FollowupRequestQuery) QueryRequester() *UserQuery {
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
			sqlgraph.From(followuprequest.Table, followuprequest.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, followuprequest.RequesterTable, followuprequest.RequesterColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTransactions chains the current query on the "transactions" edge.
func (_q *FollowupRequestQuery) QueryTransactions() *FacilityTransactionQuery {
	query := (&FacilityTransactionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(followuprequest.Table, followuprequest.FieldID, selector),
			sqlgraph.To(facilitytransaction.Table, facilitytransaction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, followuprequest.TransactionsTable, followuprequest.TransactionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first FollowupRequest entity from the query.
// Returns a *NotFoundError when no FollowupRequest was found.
func (_q *FollowupRequestQuery) First(ctx context.Context) (*FollowupRequest, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{followuprequest.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *FollowupRequestQuery) FirstX(ctx context.Context) *FollowupRequest {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first FollowupRequest ID from the query.
// Returns a *NotFoundError when no FollowupRequest ID was found.
func (_q *FollowupRequestQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{followuprequest.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *FollowupRequestQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single FollowupRequest entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one FollowupRequest entity is found.
// Returns a *NotFoundError when no FollowupRequest entities are found.
func (_q *FollowupRequestQuery) Only(ctx context.Context) (*FollowupRequest, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{followuprequest.Label}
	default:
		return nil, &NotSingularError{followuprequest.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *FollowupRequestQuery) OnlyX(ctx context.Context) *FollowupRequest {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only FollowupRequest ID in the query.
// Returns a *NotSingularError when more than one FollowupRequest ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *FollowupRequestQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{followuprequest.Label}
	default:
		err = &NotSingularError{followuprequest.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *FollowupRequestQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of FollowupRequests.
func (_q *FollowupRequestQuery) All(ctx context.Context) ([]*FollowupRequest, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*FollowupRequest, *FollowupRequestQuery]()
	return withInterceptors[[]*FollowupRequest](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *FollowupRequestQuery) AllX(ctx context.Context) []*FollowupRequest {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of FollowupRequest IDs.
func (_q *FollowupRequestQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(followuprequest.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *FollowupRequestQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *FollowupRequestQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*FollowupRequestQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *FollowupRequestQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *FollowupRequestQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *FollowupRequestQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the FollowupRequestQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *FollowupRequestQuery) Clone() *FollowupRequestQuery {
	if _q == nil {
		return nil
	}
	return &FollowupRequestQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]followuprequest.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.FollowupRequest{}, _q.predicates...),
		withAllocation:   _q.withAllocation.Clone(),
		withRequester:    _q.withRequester.Clone(),
		withTransactions: _q.withTransactions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAllocation tells the query-builder to eager-load the nodes that are connected to
// the "allocation" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FollowupRequestQuery) WithAllocation(opts ...func(*AllocationQuery)) *FollowupRequestQuery {
	query := (&AllocationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAllocation = query
	return _q
}

// WithRequester tells the query-builder to eager-load the nodes that are connected to
// the "requester" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FollowupRequestQuery) WithRequester(opts ...func(*UserQuery)) *FollowupRequestQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRequester = query
	return _q
}

// WithTransactions tells the query-builder to eager-load the nodes that are connected to
// the "transactions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FollowupRequestQuery) WithTransactions(opts ...func(*FacilityTransactionQuery)) *FollowupRequestQuery {
	query := (&FacilityTransactionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTransactions = query
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
//	client.FollowupRequest.Query().
//		GroupBy(followuprequest.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *FollowupRequestQuery) GroupBy(field string, fields ...string) *FollowupRequestGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &FollowupRequestGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = followuprequest.Label
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
//	client.FollowupRequest.Query().
//		Select(followuprequest.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *FollowupRequestQuery) Select(fields ...string) *FollowupRequestSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &FollowupRequestSelect{FollowupRequestQuery: _q}
	sbuild.label = followuprequest.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a FollowupRequestSelect configured with the given aggregations.
func (_q *FollowupRequestQuery) Aggregate(fns ...AggregateFunc) *FollowupRequestSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *FollowupRequestQuery) prepareQuery(ctx context.Context) error {
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
		if !followuprequest.ValidColumn(f) {
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

func (_q *FollowupRequestQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*FollowupRequest, error) {
	var (
		nodes       = []*FollowupRequest{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withAllocation != nil,
			_q.withRequester != nil,
			_q.withTransactions != nil,
		}
	)
	if _q.withAllocation != nil || _q.withRequester != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, followuprequest.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*FollowupRequest).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &FollowupRequest{config: _q.config}
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
			func(n *FollowupRequest, e *Allocation) { n.Edges.Allocation = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRequester; query != nil {
		if err := _q.loadRequester(ctx, query, nodes, nil,
			func(n *FollowupRequest, e *User) { n.Edges.Requester = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTransactions; query != nil {
		if err := _q.loadTransactions(ctx, query, nodes,
			func(n *FollowupRequest) { n.Edges.Transactions = []*FacilityTransaction{} },
			func(n *FollowupRequest, e *FacilityTransaction) {
				n.Edges.Transactions = append(n.Edges.Transactions, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *FollowupRequestQuery) loadAllocation(ctx context.Context, query *AllocationQuery, nodes []*FollowupRequest, init func(*FollowupRequest), assign func(*FollowupRequest, *Allocation)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*FollowupRequest)
	for i := range nodes {
		if nodes[i].allocation_followup_requests == nil {
			continue
		}
		fk := *nodes[i].allocation_followup_requests
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
			return fmt.Errorf(`unexpected foreign-key "allocation_followup_requests" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *FollowupRequestQuery) loadRequester(ctx context.Context, query *UserQuery, nodes []*FollowupRequest, init func(*FollowupRequest), assign func(*FollowupRequest, *User)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*FollowupRequest)
	for i := range nodes {
		if nodes[i].followup_request_requester == nil {
			continue
		}
		fk := *nodes[i].followup_request_requester
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
			return fmt.Errorf(`unexpected foreign-key "followup_request_requester" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *FollowupRequestQuery) loadTransactions(ctx context.Context, query *FacilityTransactionQuery, nodes []*FollowupRequest, init func(*FollowupRequest), assign func(*FollowupRequest, *FacilityTransaction)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*FollowupRequest)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.FacilityTransaction(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(followuprequest.TransactionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.followup_request_transactions
		if fk == nil {
			return fmt.Errorf(`foreign-key "followup_request_transactions" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "followup_request_transactions" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *FollowupRequestQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *FollowupRequestQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(followuprequest.Table, followuprequest.Columns, sqlgraph.NewFieldSpec(followuprequest.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, followuprequest.FieldID)
		for i := range fields {
			if fields[i] != followuprequest.FieldID {
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

func (_q *FollowupRequestQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(followuprequest.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = followuprequest.Columns
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

// FollowupRequestGroupBy is the group-by builder for FollowupRequest entities.
type FollowupRequestGroupBy struct {
	selector
	build *FollowupRequestQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *FollowupRequestGroupBy) Aggregate(fns ...AggregateFunc) *FollowupRequestGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *FollowupRequestGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FollowupRequestQuery, *FollowupRequestGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *FollowupRequestGroupBy) sqlScan(ctx context.Context, root *FollowupRequestQuery, v any) error {
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

// FollowupRequestSelect is the builder for selecting fields of FollowupRequest entities.
type FollowupRequestSelect struct {
	*FollowupRequestQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *FollowupRequestSelect) Aggregate(fns ...AggregateFunc) *FollowupRequestSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *FollowupRequestSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FollowupRequestQuery, *FollowupRequestSelect](ctx, _s.FollowupRequestQuery, _s, _s.inters, v)
}

func (_s *FollowupRequestSelect) sqlScan(ctx context.Context, root *FollowupRequestQuery, v any) error {
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
