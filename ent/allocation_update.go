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
	"sky-herald.io/herald/ent/allocation"
	"sky-herald.io/herald/ent/followuprequest"
	"sky-herald.io/herald/ent/group"
	"sky-herald.io/herald/ent/observationplanrequest"
	"sky-herald.io/herald/ent/predicate"
)

// AllocationUpdate is the builder for updating Allocation entities.
type AllocationUpdate struct {
	config
	hooks    []Hook
	mutation *AllocationMutation
}

// Where appends a list predicates to the AllocationUpdate builder.
func (_u *AllocationUpdate) Where(ps ...predicate.Allocation) *AllocationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AllocationUpdate) SetUpdatedAt(v time.Time) *AllocationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetInstrument sets the "instrument" field.
func (_u *AllocationUpdate) SetInstrument(v string) *AllocationUpdate {
	_u.mutation.SetInstrument(v)
	return _u
}

// SetNillableInstrument sets the "instrument" field if the given value is not nil.
func (_u *AllocationUpdate) SetNillableInstrument(v *string) *AllocationUpdate {
	if v != nil {
		_u.SetInstrument(*v)
	}
	return _u
}

// SetGroupID sets the "group" edge to the Group entity by ID.
func (_u *AllocationUpdate) SetGroupID(id int) *AllocationUpdate {
	_u.mutation.SetGroupID(id)
	return _u
}

// SetGroup sets the "group" edge to the Group entity.
func (_u *AllocationUpdate) SetGroup(v *Group) *AllocationUpdate {
	return _u.SetGroupID(v.ID)
}

// AddFollowupRequestIDs adds the "followup_requests" edge to the FollowupRequest entity by IDs.
func (_u *AllocationUpdate) AddFollowupRequestIDs(ids ...int) *AllocationUpdate {
	_u.mutation.AddFollowupRequestIDs(ids...)
	return _u
}

// AddFollowupRequests adds the "followup_requests" edges to the FollowupRequest entity.
func (_u *AllocationUpdate) AddFollowupRequests(v ...*FollowupRequest) *AllocationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFollowupRequestIDs(ids...)
}

// AddObservationPlanRequestIDs adds the "observation_plan_requests" edge to the ObservationPlanRequest entity by IDs.
func (_u *AllocationUpdate) AddObservationPlanRequestIDs(ids ...int) *AllocationUpdate {
	_u.mutation.AddObservationPlanRequestIDs(ids...)
	return _u
}

// AddObservationPlanRequests adds the "observation_plan_requests" edges to the ObservationPlanRequest entity.
func (_u *AllocationUpdate) AddObservationPlanRequests(v ...*ObservationPlanRequest) *AllocationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddObservationPlanRequestIDs(ids...)
}

// Mutation returns the AllocationMutation object of the builder.
func (_u *AllocationUpdate) Mutation() *AllocationMutation {
	return _u.mutation
}

// ClearGroup clears the "group" edge to the Group entity.
func (_u *AllocationUpdate) ClearGroup() *AllocationUpdate {
	_u.mutation.ClearGroup()
	return _u
}

// ClearFollowupRequests clears all "followup_requests" edges to the FollowupRequest entity.
func (_u *AllocationUpdate) ClearFollowupRequests() *AllocationUpdate {
	_u.mutation.ClearFollowupRequests()
	return _u
}

// RemoveFollowupRequestIDs removes the "followup_requests" edge to FollowupRequest entities by IDs.
func (_u *AllocationUpdate) RemoveFollowupRequestIDs(ids ...int) *AllocationUpdate {
	_u.mutation.RemoveFollowupRequestIDs(ids...)
	return _u
}

// RemoveFollowupRequests removes "followup_requests" edges to FollowupRequest entities.
func (_u *AllocationUpdate) RemoveFollowupRequests(v ...*FollowupRequest) *AllocationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFollowupRequestIDs(ids...)
}

// ClearObservationPlanRequests clears all "observation_plan_requests" edges to the ObservationPlanRequest entity.
func (_u *AllocationUpdate) ClearObservationPlanRequests() *AllocationUpdate {
	_u.mutation.ClearObservationPlanRequests()
	return _u
}

// RemoveObservationPlanRequestIDs removes the "observation_plan_requests" edge to ObservationPlanRequest entities by IDs.
func (_u *AllocationUpdate) RemoveObservationPlanRequestIDs(ids ...int) *AllocationUpdate {
	_u.mutation.RemoveObservationPlanRequestIDs(ids...)
	return _u
}

// RemoveObservationPlanRequests removes "observation_plan_requests" edges to ObservationPlanRequest entities.
func (_u *AllocationUpdate) RemoveObservationPlanRequests(v ...*ObservationPlanRequest) *AllocationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveObservationPlanRequestIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AllocationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AllocationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AllocationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AllocationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AllocationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := allocation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AllocationUpdate) check() error {
	if v, ok := _u.mutation.Instrument(); ok {
		if err := allocation.InstrumentValidator(v); err != nil {
			return &ValidationError{Name: "instrument", err: fmt.Errorf(`ent: validator failed for field "Allocation.instrument": %w`, err)}
		}
	}
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Allocation.group"`)
	}
	return nil
}

func (_u *AllocationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(allocation.Table, allocation.Columns, sqlgraph.NewFieldSpec(allocation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(allocation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Instrument(); ok {
		_spec.SetField(allocation.FieldInstrument, field.TypeString, value)
	}
	if _u.mutation.GroupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   allocation.GroupTable,
			Columns: []string{allocation.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   allocation.GroupTable,
			Columns: []string{allocation.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FollowupRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   allocation.FollowupRequestsTable,
			Columns: []string{allocation.FollowupRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(followuprequest.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFollowupRequestsIDs(); len(nodes) > 0 && !_u.mutation.FollowupRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   allocation.FollowupRequestsTable,
			Columns: []string{allocation.FollowupRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(followuprequest.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FollowupRequestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   allocation.FollowupRequestsTable,
			Columns: []string{allocation.FollowupRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(followuprequest.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ObservationPlanRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   allocation.ObservationPlanRequestsTable,
			Columns: []string{allocation.ObservationPlanRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(observationplanrequest.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedObservationPlanRequestsIDs(); len(nodes) > 0 && !_u.mutation.ObservationPlanRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   allocation.ObservationPlanRequestsTable,
			Columns: []string{allocation.ObservationPlanRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(observationplanrequest.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ObservationPlanRequestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   allocation.ObservationPlanRequestsTable,
			Columns: []string{allocation.ObservationPlanRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(observationplanrequest.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{allocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AllocationUpdateOne is the builder for updating a single Allocation entity.
type AllocationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AllocationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AllocationUpdateOne) SetUpdatedAt(v time.Time) *AllocationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetInstrument sets the "instrument" field.
func (_u *AllocationUpdateOne) SetInstrument(v string) *AllocationUpdateOne {
	_u.mutation.SetInstrument(v)
	return _u
}

// SetNillableInstrument sets the "instrument" field if the given value is not nil.
func (_u *AllocationUpdateOne) SetNillableInstrument(v *string) *AllocationUpdateOne {
	if v != nil {
		_u.SetInstrument(*v)
	}
	return _u
}

// SetGroupID sets the "group" edge to the Group entity by ID.
func (_u *AllocationUpdateOne) SetGroupID(id int) *AllocationUpdateOne {
	_u.mutation.SetGroupID(id)
	return _u
}

// SetGroup sets the "group" edge to the Group entity.
func (_u *AllocationUpdateOne) SetGroup(v *Group) *AllocationUpdateOne {
	return _u.SetGroupID(v.ID)
}

// AddFollowupRequestIDs adds the "followup_requests" edge to the FollowupRequest entity by IDs.
func (_u *AllocationUpdateOne) AddFollowupRequestIDs(ids ...int) *AllocationUpdateOne {
	_u.mutation.AddFollowupRequestIDs(ids...)
	return _u
}

// AddFollowupRequests adds the "followup_requests" edges to the FollowupRequest entity.
func (_u *AllocationUpdateOne) AddFollowupRequests(v ...*FollowupRequest) *AllocationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFollowupRequestIDs(ids...)
}

// AddObservationPlanRequestIDs adds the "observation_plan_requests" edge to the ObservationPlanRequest entity by IDs.
func (_u *AllocationUpdateOne) AddObservationPlanRequestIDs(ids ...int) *AllocationUpdateOne {
	_u.mutation.AddObservationPlanRequestIDs(ids...)
	return _u
}

// AddObservationPlanRequests adds the "observation_plan_requests" edges to the ObservationPlanRequest entity.
func (_u *AllocationUpdateOne) AddObservationPlanRequests(v ...*ObservationPlanRequest) *AllocationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddObservationPlanRequestIDs(ids...)
}

// Mutation returns the AllocationMutation object of the builder.
func (_u *AllocationUpdateOne) Mutation() *AllocationMutation {
	return _u.mutation
}

// ClearGroup clears the "group" edge to the Group entity.
func (_u *AllocationUpdateOne) ClearGroup() *AllocationUpdateOne {
	_u.mutation.ClearGroup()
	return _u
}

// ClearFollowupRequests clears all "followup_requests" edges to the FollowupRequest entity.
func (_u *AllocationUpdateOne) ClearFollowupRequests() *AllocationUpdateOne {
	_u.mutation.ClearFollowupRequests()
	return _u
}

// RemoveFollowupRequestIDs removes the "followup_requests" edge to FollowupRequest entities by IDs.
func (_u *AllocationUpdateOne) RemoveFollowupRequestIDs(ids ...int) *AllocationUpdateOne {
	_u.mutation.RemoveFollowupRequestIDs(ids...)
	return _u
}

// RemoveFollowupRequests removes "followup_requests" edges to FollowupRequest entities.
func (_u *AllocationUpdateOne) RemoveFollowupRequests(v ...*FollowupRequest) *AllocationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFollowupRequestIDs(ids...)
}

// ClearObservationPlanRequests clears all "observation_plan_requests" edges to the ObservationPlanRequest entity.
func (_u *AllocationUpdateOne) ClearObservationPlanRequests() *AllocationUpdateOne {
	_u.mutation.ClearObservationPlanRequests()
	return _u
}

// RemoveObservationPlanRequestIDs removes the "observation_plan_requests" edge to ObservationPlanRequest entities by IDs.
func (_u *AllocationUpdateOne) RemoveObservationPlanRequestIDs(ids ...int) *AllocationUpdateOne {
	_u.mutation.RemoveObservationPlanRequestIDs(ids...)
	return _u
}

// RemoveObservationPlanRequests removes "observation_plan_requests" edges to ObservationPlanRequest entities.
func (_u *AllocationUpdateOne) RemoveObservationPlanRequests(v ...*ObservationPlanRequest) *AllocationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveObservationPlanRequestIDs(ids...)
}

// Where appends a list predicates to the AllocationUpdate builder.
func (_u *AllocationUpdateOne) Where(ps ...predicate.Allocation) *AllocationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AllocationUpdateOne) Select(field string, fields ...string) *AllocationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Allocation entity.
func (_u *AllocationUpdateOne) Save(ctx context.Context) (*Allocation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AllocationUpdateOne) SaveX(ctx context.Context) *Allocation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AllocationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AllocationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AllocationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := allocation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AllocationUpdateOne) check() error {
	if v, ok := _u.mutation.Instrument(); ok {
		if err := allocation.InstrumentValidator(v); err != nil {
			return &ValidationError{Name: "instrument", err: fmt.Errorf(`ent: validator failed for field "Allocation.instrument": %w`, err)}
		}
	}
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Allocation.group"`)
	}
	return nil
}

func (_u *AllocationUpdateOne) sqlSave(ctx context.Context) (_node *Allocation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(allocation.Table, allocation.Columns, sqlgraph.NewFieldSpec(allocation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Allocation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, allocation.FieldID)
		for _, f := range fields {
			if !allocation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != allocation.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(allocation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Instrument(); ok {
		_spec.SetField(allocation.FieldInstrument, field.TypeString, value)
	}
	if _u.mutation.GroupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   allocation.GroupTable,
			Columns: []string{allocation.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   allocation.GroupTable,
			Columns: []string{allocation.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FollowupRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   allocation.FollowupRequestsTable,
			Columns: []string{allocation.FollowupRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(followuprequest.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFollowupRequestsIDs(); len(nodes) > 0 && !_u.mutation.FollowupRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   allocation.FollowupRequestsTable,
			Columns: []string{allocation.FollowupRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(followuprequest.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FollowupRequestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   allocation.FollowupRequestsTable,
			Columns: []string{allocation.FollowupRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(followuprequest.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ObservationPlanRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   allocation.ObservationPlanRequestsTable,
			Columns: []string{allocation.ObservationPlanRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(observationplanrequest.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedObservationPlanRequestsIDs(); len(nodes) > 0 && !_u.mutation.ObservationPlanRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   allocation.ObservationPlanRequestsTable,
			Columns: []string{allocation.ObservationPlanRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(observationplanrequest.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ObservationPlanRequestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   allocation.ObservationPlanRequestsTable,
			Columns: []string{allocation.ObservationPlanRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(observationplanrequest.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Allocation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{allocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
