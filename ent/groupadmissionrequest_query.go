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
	"sky-herald.io/herald/ent/group"
	"sky-herald.io/herald/ent/groupadmissionrequest"
	"sky-herald.io/herald/ent/predicate"
	"sky-herald.io/herald/ent/user"
)

// GroupAdmissionRequestQuery is the builder for querying GroupAdmissionRequest entities.
type GroupAdmissionRequestQuery struct {
	config
	ctx           *QueryContext
	order         []groupadmissionrequest.OrderOption
	inters        []Interceptor
	predicates    []predicate.GroupAdmissionRequest
	withGroup     *GroupQuery
	withApplicant *UserQuery
	withFKs       bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the GroupAdmissionRequestQuery builder.
func (_q *GroupAdmissionRequestQuery) Where(ps ...predicate.GroupAdmissionRequest) *GroupAdmissionRequestQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *GroupAdmissionRequestQuery) Limit(limit int) *GroupAdmissionRequestQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *GroupAdmissionRequestQuery) Offset(offset int) *GroupAdmissionRequestQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *GroupAdmissionRequestQuery) Unique(unique bool) *GroupAdmissionRequestQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *GroupAdmissionRequestQuery) Order(o ...groupadmissionrequest.OrderOption) *GroupAdmissionRequestQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryGroup chains the current query on the "group" edge.
func (_q *GroupAdmissionRequestQuery) QueryGroup() *GroupQuery {
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
			sqlgraph.From(groupadmissionrequest.Table, groupadmissionrequest.FieldID, selector),
			sqlgraph.To(group.Table, group.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, groupadmissionrequest.GroupTable, groupadmissionrequest.GroupColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryApplicant chains the current query on the "applicant" edge.
func (_q *GroupAdmissionRequestQuery) QueryApplicant() *UserQuery {
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
			sqlgraph.From(groupadmissionrequest.Table, groupadmissionrequest.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, groupadmissionrequest.ApplicantTable, groupadmissionrequest.ApplicantColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first GroupAdmissionRequest entity from the query.
// Returns a *NotFoundError when no GroupAdmissionRequest was found.
func (_q *GroupAdmissionRequestQuery) First(ctx context.Context) (*GroupAdmissionRequest, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{groupadmissionrequest.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *GroupAdmissionRequestQuery) FirstX(ctx context.Context) *GroupAdmissionRequest {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first GroupAdmissionRequest ID from the query.
// Returns a *NotFoundError when no GroupAdmissionRequest ID was found.
func (_q *GroupAdmissionRequestQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{groupadmissionrequest.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *GroupAdmissionRequestQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single GroupAdmissionRequest entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one GroupAdmissionRequest entity is found.
// Returns a *NotFoundError when no GroupAdmissionRequest entities are found.
func (_q *GroupAdmissionRequestQuery) Only(ctx context.Context) (*GroupAdmissionRequest, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{groupadmissionrequest.Label}
	default:
		return nil, &NotSingularError{groupadmissionrequest.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *GroupAdmissionRequestQuery) OnlyX(ctx context.Context) *GroupAdmissionRequest {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only GroupAdmissionRequest ID in the query.
// Returns a *NotSingularError when more than one GroupAdmissionRequest ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *GroupAdmissionRequestQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{groupadmissionrequest.Label}
	default:
		err = &NotSingularError{groupadmissionrequest.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *GroupAdmissionRequestQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of GroupAdmissionRequests.
func (_q *GroupAdmissionRequestQuery) All(ctx context.Context) ([]*GroupAdmissionRequest, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*GroupAdmissionRequest, *GroupAdmissionRequestQuery]()
	return withInterceptors[[]*GroupAdmissionRequest](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *GroupAdmissionRequestQuery) AllX(ctx context.Context) []*GroupAdmissionRequest {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of GroupAdmissionRequest IDs.
func (_q *GroupAdmissionRequestQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(groupadmissionrequest.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *GroupAdmissionRequestQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *GroupAdmissionRequestQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*GroupAdmissionRequestQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *GroupAdmissionRequestQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *GroupAdmissionRequestQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *GroupAdmissionRequestQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the GroupAdmissionRequestQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *GroupAdmissionRequestQuery) Clone() *GroupAdmissionRequestQuery {
	if _q == nil {
		return nil
	}
	return &GroupAdmissionRequestQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]groupadmissionrequest.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.GroupAdmissionRequest{}, _q.predicates...),
		withGroup:     _q.withGroup.Clone(),
		withApplicant: _q.withApplicant.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithGroup tells the query-builder to eager-load the nodes that are connected to
// the "group" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *GroupAdmissionRequestQuery) WithGroup(opts ...func(*GroupQuery)) *GroupAdmissionRequestQuery {
	query := (&GroupClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGroup = query
	return _q
}

// WithApplicant tells the query-builder to eager-load the nodes that are connected to
// the "applicant" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *GroupAdmissionRequestQuery) WithApplicant(opts ...func(*UserQuery)) *GroupAdmissionRequestQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withApplicant = query
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
//	client.GroupAdmissionRequest.Query().
//		GroupBy(groupadmissionrequest.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *GroupAdmissionRequestQuery) GroupBy(field string, fields ...string) *GroupAdmissionRequestGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &GroupAdmissionRequestGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = groupadmissionrequest.Label
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
//	client.GroupAdmissionRequest.Query().
//		Select(groupadmissionrequest.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *GroupAdmissionRequestQuery) Select(fields ...string) *GroupAdmissionRequestSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &GroupAdmissionRequestSelect{GroupAdmissionRequestQuery: _q}
	sbuild.label = groupadmissionrequest.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a GroupAdmissionRequestSelect configured with the given aggregations.
func (_q *GroupAdmissionRequestQuery) Aggregate(fns ...AggregateFunc) *GroupAdmissionRequestSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *GroupAdmissionRequestQuery) prepareQuery(ctx context.Context) error {
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
		if !groupadmissionrequest.ValidColumn(f) {
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

func (_q *GroupAdmissionRequestQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*GroupAdmissionRequest, error) {
	var (
		nodes       = []*GroupAdmissionRequest{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withGroup != nil,
			_q.withApplicant != nil,
		}
	)
	if _q.withGroup != nil || _q.withApplicant != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, groupadmissionrequest.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*GroupAdmissionRequest).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &GroupAdmissionRequest{config: _q.config}
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
			func(n *GroupAdmissionRequest, e *Group) { n.Edges.Group = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withApplicant; query != nil {
		if err := _q.loadApplicant(ctx, query, nodes, nil,
			func(n *GroupAdmissionRequest, e *User) { n.Edges.Applicant = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *GroupAdmissionRequestQuery) loadGroup(ctx context.Context, query *GroupQuery, nodes []*GroupAdmissionRequest, init func(*GroupAdmissionRequest), assign func(*GroupAdmissionRequest, *Group)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*GroupAdmissionRequest)
	for i := range nodes {
		if nodes[i].group_admission_request_group == nil {
			continue
		}
		fk := *nodes[i].group_admission_request_group
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
			return fmt.Errorf(`unexpected foreign-key "group_admission_request_group" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *GroupAdmissionRequestQuery) loadApplicant(ctx context.Context, query *UserQuery, nodes []*GroupAdmissionRequest, init func(*GroupAdmissionRequest), assign func(*GroupAdmissionRequest, *User)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*GroupAdmissionRequest)
	for i := range nodes {
		if nodes[i].group_admission_request_applicant == nil {
			continue
		}
		fk := *nodes[i].group_admission_request_applicant
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
			return fmt.Errorf(`unexpected foreign-key "group_admission_request_applicant" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *GroupAdmissionRequestQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *GroupAdmissionRequestQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(groupadmissionrequest.Table, groupadmissionrequest.Columns, sqlgraph.NewFieldSpec(groupadmissionrequest.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, groupadmissionrequest.FieldID)
		for i := range fields {
			if fields[i] != groupadmissionrequest.FieldID {
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

func (_q *GroupAdmissionRequestQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(groupadmissionrequest.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = groupadmissionrequest.Columns
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

// GroupAdmissionRequestGroupBy is the group-by builder for GroupAdmissionRequest entities.
type GroupAdmissionRequestGroupBy struct {
	selector
	build *GroupAdmissionRequestQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *GroupAdmissionRequestGroupBy) Aggregate(fns ...AggregateFunc) *GroupAdmissionRequestGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *GroupAdmissionRequestGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GroupAdmissionRequestQuery, *GroupAdmissionRequestGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *GroupAdmissionRequestGroupBy) sqlScan(ctx context.Context, root *GroupAdmissionRequestQuery, v any) error {
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

// GroupAdmissionRequestSelect is the builder for selecting fields of GroupAdmissionRequest entities.
type GroupAdmissionRequestSelect struct {
	*GroupAdmissionRequestQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *GroupAdmissionRequestSelect) Aggregate(fns ...AggregateFunc) *GroupAdmissionRequestSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *GroupAdmissionRequestSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GroupAdmissionRequestQuery, *GroupAdmissionRequestSelect](ctx, _s.GroupAdmissionRequestQuery, _s, _s.inters, v)
}

func (_s *GroupAdmissionRequestSelect) sqlScan(ctx context.Context, root *GroupAdmissionRequestQuery, v any) error {
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
