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
	"sky-herald.io/herald/ent/observationplanrequest"
	"sky-herald.io/herald/ent/predicate"
	"sky-herald.io/herald/ent/user"
)

// ObservationPlanRequestUpdate is the builder for updating ObservationPlanRequest entities.
type ObservationPlanRequestUpdate struct {
	config
	hooks    []Hook
	mutation *ObservationPlanRequestMutation
}

// Where appends a list predicates to the ObservationPlanRequestUpdate builder.
func (_u *ObservationPlanRequestUpdate) Where(ps ...predicate.ObservationPlanRequest) *ObservationPlanRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ObservationPlanRequestUpdate) SetUpdatedAt(v time.Time) *ObservationPlanRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDateobs sets the "dateobs" field.
func (_u *ObservationPlanRequestUpdate) SetDateobs(v time.Time) *ObservationPlanRequestUpdate {
	_u.mutation.SetDateobs(v)
	return _u
}

// SetNillableDateobs sets the "dateobs" field if the given value is not nil.
func (_u *ObservationPlanRequestUpdate) SetNillableDateobs(v *time.Time) *ObservationPlanRequestUpdate {
	if v != nil {
		_u.SetDateobs(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ObservationPlanRequestUpdate) SetStatus(v string) *ObservationPlanRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ObservationPlanRequestUpdate) SetNillableStatus(v *string) *ObservationPlanRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAllocationID sets the "allocation" edge to the Allocation entity by ID.
func (_u *ObservationPlanRequestUpdate) SetAllocationID(id int) *ObservationPlanRequestUpdate {
	_u.mutation.SetAllocationID(id)
	return _u
}

// SetAllocation sets the "allocation" edge to the Allocation entity.
func (_u *ObservationPlanRequestUpdate) SetAllocation(v *Allocation) *ObservationPlanRequestUpdate {
	return _u.SetAllocationID(v.ID)
}

// SetRequesterID sets the "requester" edge to the User entity by ID.
func (_u *ObservationPlanRequestUpdate) SetRequesterID(id int) *ObservationPlanRequestUpdate {
	_u.mutation.SetRequesterID(id)
	return _u
}

// SetRequester sets the "requester" edge to the User entity.
func (_u *ObservationPlanRequestUpdate) SetRequester(v *User) *ObservationPlanRequestUpdate {
	return _u.SetRequesterID(v.ID)
}

// Mutation returns the ObservationPlanRequestMutation object of the builder.
func (_u *ObservationPlanRequestUpdate) Mutation() *ObservationPlanRequestMutation {
	return _u.mutation
}

// ClearAllocation clears the "allocation" edge to the Allocation entity.
func (_u *ObservationPlanRequestUpdate) ClearAllocation() *ObservationPlanRequestUpdate {
	_u.mutation.ClearAllocation()
	return _u
}

// ClearRequester clears the "requester" edge to the User entity.
func (_u *ObservationPlanRequestUpdate) ClearRequester() *ObservationPlanRequestUpdate {
	_u.mutation.ClearRequester()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ObservationPlanRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObservationPlanRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ObservationPlanRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObservationPlanRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ObservationPlanRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := observationplanrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ObservationPlanRequestUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := observationplanrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ObservationPlanRequest.status": %w`, err)}
		}
	}
	if _u.mutation.AllocationCleared() && len(_u.mutation.AllocationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ObservationPlanRequest.allocation"`)
	}
	if _u.mutation.RequesterCleared() && len(_u.mutation.RequesterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ObservationPlanRequest.requester"`)
	}
	return nil
}

func (_u *ObservationPlanRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(observationplanrequest.Table, observationplanrequest.Columns, sqlgraph.NewFieldSpec(observationplanrequest.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(observationplanrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Dateobs(); ok {
		_spec.SetField(observationplanrequest.FieldDateobs, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(observationplanrequest.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.AllocationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   observationplanrequest.AllocationTable,
			Columns: []string{observationplanrequest.AllocationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(allocation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AllocationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   observationplanrequest.AllocationTable,
			Columns: []string{observationplanrequest.AllocationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(allocation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RequesterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   observationplanrequest.RequesterTable,
			Columns: []string{observationplanrequest.RequesterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequesterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   observationplanrequest.RequesterTable,
			Columns: []string{observationplanrequest.RequesterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{observationplanrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ObservationPlanRequestUpdateOne is the builder for updating a single ObservationPlanRequest entity.
type ObservationPlanRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ObservationPlanRequestMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ObservationPlanRequestUpdateOne) SetUpdatedAt(v time.Time) *ObservationPlanRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDateobs sets the "dateobs" field.
func (_u *ObservationPlanRequestUpdateOne) SetDateobs(v time.Time) *ObservationPlanRequestUpdateOne {
	_u.mutation.SetDateobs(v)
	return _u
}

// SetNillableDateobs sets the "dateobs" field if the given value is not nil.
func (_u *ObservationPlanRequestUpdateOne) SetNillableDateobs(v *time.Time) *ObservationPlanRequestUpdateOne {
	if v != nil {
		_u.SetDateobs(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ObservationPlanRequestUpdateOne) SetStatus(v string) *ObservationPlanRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ObservationPlanRequestUpdateOne) SetNillableStatus(v *string) *ObservationPlanRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAllocationID sets the "allocation" edge to the Allocation entity by ID.
func (_u *ObservationPlanRequestUpdateOne) SetAllocationID(id int) *ObservationPlanRequestUpdateOne {
	_u.mutation.SetAllocationID(id)
	return _u
}

// SetAllocation sets the "allocation" edge to the Allocation entity.
func (_u *ObservationPlanRequestUpdateOne) SetAllocation(v *Allocation) *ObservationPlanRequestUpdateOne {
	return _u.SetAllocationID(v.ID)
}

// SetRequesterID sets the "requester" edge to the User entity by ID.
func (_u *ObservationPlanRequestUpdateOne) SetRequesterID(id int) *ObservationPlanRequestUpdateOne {
	_u.mutation.SetRequesterID(id)
	return _u
}

// SetRequester sets the "requester" edge to the User entity.
func (_u *ObservationPlanRequestUpdateOne) SetRequester(v *User) *ObservationPlanRequestUpdateOne {
	return _u.SetRequesterID(v.ID)
}

// Mutation returns the ObservationPlanRequestMutation object of the builder.
func (_u *ObservationPlanRequestUpdateOne) Mutation() *ObservationPlanRequestMutation {
	return _u.mutation
}

// ClearAllocation clears the "allocation" edge to the Allocation entity.
func (_u *ObservationPlanRequestUpdateOne) ClearAllocation() *ObservationPlanRequestUpdateOne {
	_u.mutation.ClearAllocation()
	return _u
}

// ClearRequester clears the "requester" edge to the User entity.
func (_u *ObservationPlanRequestUpdateOne) ClearRequester() *ObservationPlanRequestUpdateOne {
	_u.mutation.ClearRequester()
	return _u
}

// Where appends a list predicates to the ObservationPlanRequestUpdate builder.
func (_u *ObservationPlanRequestUpdateOne) Where(ps ...predicate.ObservationPlanRequest) *ObservationPlanRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ObservationPlanRequestUpdateOne) Select(field string, fields ...string) *ObservationPlanRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ObservationPlanRequest entity.
func (_u *ObservationPlanRequestUpdateOne) Save(ctx context.Context) (*ObservationPlanRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObservationPlanRequestUpdateOne) SaveX(ctx context.Context) *ObservationPlanRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ObservationPlanRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObservationPlanRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ObservationPlanRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := observationplanrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ObservationPlanRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := observationplanrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ObservationPlanRequest.status": %w`, err)}
		}
	}
	if _u.mutation.AllocationCleared() && len(_u.mutation.AllocationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ObservationPlanRequest.allocation"`)
	}
	if _u.mutation.RequesterCleared() && len(_u.mutation.RequesterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ObservationPlanRequest.requester"`)
	}
	return nil
}

func (_u *ObservationPlanRequestUpdateOne) sqlSave(ctx context.Context) (_node *ObservationPlanRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(observationplanrequest.Table, observationplanrequest.Columns, sqlgraph.NewFieldSpec(observationplanrequest.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ObservationPlanRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, observationplanrequest.FieldID)
		for _, f := range fields {
			if !observationplanrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != observationplanrequest.FieldID {
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
		_spec.SetField(observationplanrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Dateobs(); ok {
		_spec.SetField(observationplanrequest.FieldDateobs, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(observationplanrequest.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.AllocationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   observationplanrequest.AllocationTable,
			Columns: []string{observationplanrequest.AllocationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(allocation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AllocationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   observationplanrequest.AllocationTable,
			Columns: []string{observationplanrequest.AllocationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(allocation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RequesterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   observationplanrequest.RequesterTable,
			Columns: []string{observationplanrequest.RequesterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequesterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   observationplanrequest.RequesterTable,
			Columns: []string{observationplanrequest.RequesterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ObservationPlanRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{observationplanrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
