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
	"sky-herald.io/herald/ent/facilitytransaction"
	"sky-herald.io/herald/ent/followuprequest"
	"sky-herald.io/herald/ent/predicate"
	"sky-herald.io/herald/ent/user"
)

// FollowupRequestUpdate is the builder for updating FollowupRequest entities.
type FollowupRequestUpdate struct {
	config
	hooks    []Hook
	mutation *FollowupRequestMutation
}

// Where appends a list predicates to the FollowupRequestUpdate builder.
func (_u *FollowupRequestUpdate) Where(ps ...predicate.FollowupRequest) *FollowupRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FollowupRequestUpdate) SetUpdatedAt(v time.Time) *FollowupRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetObjID sets the "obj_id" field.
func (_u *FollowupRequestUpdate) SetObjID(v string) *FollowupRequestUpdate {
	_u.mutation.SetObjID(v)
	return _u
}

// SetNillableObjID sets the "obj_id" field if the given value is not nil.
func (_u *FollowupRequestUpdate) SetNillableObjID(v *string) *FollowupRequestUpdate {
	if v != nil {
		_u.SetObjID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FollowupRequestUpdate) SetStatus(v string) *FollowupRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FollowupRequestUpdate) SetNillableStatus(v *string) *FollowupRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAllocationID sets the "allocation" edge to the Allocation entity by ID.
func (_u *FollowupRequestUpdate) SetAllocationID(id int) *FollowupRequestUpdate {
	_u.mutation.SetAllocationID(id)
	return _u
}

// SetAllocation sets the "allocation" edge to the Allocation entity.
func (_u *FollowupRequestUpdate) SetAllocation(v *Allocation) *FollowupRequestUpdate {
	return _u.SetAllocationID(v.ID)
}

// SetRequesterID sets the "requester" edge to the User entity by ID.
func (_u *FollowupRequestUpdate) SetRequesterID(id int) *FollowupRequestUpdate {
	_u.mutation.SetRequesterID(id)
	return _u
}

// SetRequester sets the "requester" edge to the User entity.
func (_u *FollowupRequestUpdate) SetRequester(v *User) *FollowupRequestUpdate {
	return _u.SetRequesterID(v.ID)
}

// AddTransactionIDs adds the "transactions" edge to the FacilityTransaction entity by IDs.
func (_u *FollowupRequestUpdate) AddTransactionIDs(ids ...int) *FollowupRequestUpdate {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the FacilityTransaction entity.
func (_u *FollowupRequestUpdate) AddTransactions(v ...*FacilityTransaction) *FollowupRequestUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// Mutation returns the FollowupRequestMutation object of the builder.
func (_u *FollowupRequestUpdate) Mutation() *FollowupRequestMutation {
	return _u.mutation
}

// ClearAllocation clears the "allocation" edge to the Allocation entity.
func (_u *FollowupRequestUpdate) ClearAllocation() *FollowupRequestUpdate {
	_u.mutation.ClearAllocation()
	return _u
}

// ClearRequester clears the "requester" edge to the User entity.
func (_u *FollowupRequestUpdate) ClearRequester() *FollowupRequestUpdate {
	_u.mutation.ClearRequester()
	return _u
}

// ClearTransactions clears all "transactions" edges to the FacilityTransaction entity.
func (_u *FollowupRequestUpdate) ClearTransactions() *FollowupRequestUpdate {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to FacilityTransaction entities by IDs.
func (_u *FollowupRequestUpdate) RemoveTransactionIDs(ids ...int) *FollowupRequestUpdate {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to FacilityTransaction entities.
func (_u *FollowupRequestUpdate) RemoveTransactions(v ...*FacilityTransaction) *FollowupRequestUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FollowupRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FollowupRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FollowupRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FollowupRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FollowupRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := followuprequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FollowupRequestUpdate) check() error {
	if v, ok := _u.mutation.ObjID(); ok {
		if err := followuprequest.ObjIDValidator(v); err != nil {
			return &ValidationError{Name: "obj_id", err: fmt.Errorf(`ent: validator failed for field "FollowupRequest.obj_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := followuprequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FollowupRequest.status": %w`, err)}
		}
	}
	if _u.mutation.AllocationCleared() && len(_u.mutation.AllocationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FollowupRequest.allocation"`)
	}
	if _u.mutation.RequesterCleared() && len(_u.mutation.RequesterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FollowupRequest.requester"`)
	}
	return nil
}

func (_u *FollowupRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(followuprequest.Table, followuprequest.Columns, sqlgraph.NewFieldSpec(followuprequest.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(followuprequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ObjID(); ok {
		_spec.SetField(followuprequest.FieldObjID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(followuprequest.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.AllocationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   followuprequest.AllocationTable,
			Columns: []string{followuprequest.AllocationColumn},
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
			Table:   followuprequest.AllocationTable,
			Columns: []string{followuprequest.AllocationColumn},
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
			Table:   followuprequest.RequesterTable,
			Columns: []string{followuprequest.RequesterColumn},
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
			Table:   followuprequest.RequesterTable,
			Columns: []string{followuprequest.RequesterColumn},
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
	if _u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   followuprequest.TransactionsTable,
			Columns: []string{followuprequest.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facilitytransaction.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   followuprequest.TransactionsTable,
			Columns: []string{followuprequest.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facilitytransaction.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   followuprequest.TransactionsTable,
			Columns: []string{followuprequest.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facilitytransaction.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{followuprequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FollowupRequestUpdateOne is the builder for updating a single FollowupRequest entity.
type FollowupRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FollowupRequestMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FollowupRequestUpdateOne) SetUpdatedAt(v time.Time) *FollowupRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetObjID sets the "obj_id" field.
func (_u *FollowupRequestUpdateOne) SetObjID(v string) *FollowupRequestUpdateOne {
	_u.mutation.SetObjID(v)
	return _u
}

// SetNillableObjID sets the "obj_id" field if the given value is not nil.
func (_u *FollowupRequestUpdateOne) SetNillableObjID(v *string) *FollowupRequestUpdateOne {
	if v != nil {
		_u.SetObjID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FollowupRequestUpdateOne) SetStatus(v string) *FollowupRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FollowupRequestUpdateOne) SetNillableStatus(v *string) *FollowupRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAllocationID sets the "allocation" edge to the Allocation entity by ID.
func (_u *FollowupRequestUpdateOne) SetAllocationID(id int) *FollowupRequestUpdateOne {
	_u.mutation.SetAllocationID(id)
	return _u
}

// SetAllocation sets the "allocation" edge to the Allocation entity.
func (_u *FollowupRequestUpdateOne) SetAllocation(v *Allocation) *FollowupRequestUpdateOne {
	return _u.SetAllocationID(v.ID)
}

// SetRequesterID sets the "requester" edge to the User entity by ID.
func (_u *FollowupRequestUpdateOne) SetRequesterID(id int) *FollowupRequestUpdateOne {
	_u.mutation.SetRequesterID(id)
	return _u
}

// SetRequester sets the "requester" edge to the User entity.
func (_u *FollowupRequestUpdateOne) SetRequester(v *User) *FollowupRequestUpdateOne {
	return _u.SetRequesterID(v.ID)
}

// AddTransactionIDs adds the "transactions" edge to the FacilityTransaction entity by IDs.
func (_u *FollowupRequestUpdateOne) AddTransactionIDs(ids ...int) *FollowupRequestUpdateOne {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the FacilityTransaction entity.
func (_u *FollowupRequestUpdateOne) AddTransactions(v ...*FacilityTransaction) *FollowupRequestUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// Mutation returns the FollowupRequestMutation object of the builder.
func (_u *FollowupRequestUpdateOne) Mutation() *FollowupRequestMutation {
	return _u.mutation
}

// ClearAllocation clears the "allocation" edge to the Allocation entity.
func (_u *FollowupRequestUpdateOne) ClearAllocation() *FollowupRequestUpdateOne {
	_u.mutation.ClearAllocation()
	return _u
}

// ClearRequester clears the "requester" edge to the User entity.
func (_u *FollowupRequestUpdateOne) ClearRequester() *FollowupRequestUpdateOne {
	_u.mutation.ClearRequester()
	return _u
}

// ClearTransactions clears all "transactions" edges to the FacilityTransaction entity.
func (_u *FollowupRequestUpdateOne) ClearTransactions() *FollowupRequestUpdateOne {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to FacilityTransaction entities by IDs.
func (_u *FollowupRequestUpdateOne) RemoveTransactionIDs(ids ...int) *FollowupRequestUpdateOne {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to FacilityTransaction entities.
func (_u *FollowupRequestUpdateOne) RemoveTransactions(v ...*FacilityTransaction) *FollowupRequestUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// Where appends a list predicates to the FollowupRequestUpdate builder.
func (_u *FollowupRequestUpdateOne) Where(ps ...predicate.FollowupRequest) *FollowupRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FollowupRequestUpdateOne) Select(field string, fields ...string) *FollowupRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FollowupRequest entity.
func (_u *FollowupRequestUpdateOne) Save(ctx context.Context) (*FollowupRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FollowupRequestUpdateOne) SaveX(ctx context.Context) *FollowupRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FollowupRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FollowupRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FollowupRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := followuprequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FollowupRequestUpdateOne) check() error {
	if v, ok := _u.mutation.ObjID(); ok {
		if err := followuprequest.ObjIDValidator(v); err != nil {
			return &ValidationError{Name: "obj_id", err: fmt.Errorf(`ent: validator failed for field "FollowupRequest.obj_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := followuprequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FollowupRequest.status": %w`, err)}
		}
	}
	if _u.mutation.AllocationCleared() && len(_u.mutation.AllocationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FollowupRequest.allocation"`)
	}
	if _u.mutation.RequesterCleared() && len(_u.mutation.RequesterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FollowupRequest.requester"`)
	}
	return nil
}

func (_u *FollowupRequestUpdateOne) sqlSave(ctx context.Context) (_node *FollowupRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(followuprequest.Table, followuprequest.Columns, sqlgraph.NewFieldSpec(followuprequest.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FollowupRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, followuprequest.FieldID)
		for _, f := range fields {
			if !followuprequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != followuprequest.FieldID {
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
		_spec.SetField(followuprequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ObjID(); ok {
		_spec.SetField(followuprequest.FieldObjID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(followuprequest.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.AllocationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   followuprequest.AllocationTable,
			Columns: []string{followuprequest.AllocationColumn},
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
			Table:   followuprequest.AllocationTable,
			Columns: []string{followuprequest.AllocationColumn},
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
			Table:   followuprequest.RequesterTable,
			Columns: []string{followuprequest.RequesterColumn},
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
			Table:   followuprequest.RequesterTable,
			Columns: []string{followuprequest.RequesterColumn},
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
	if _u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   followuprequest.TransactionsTable,
			Columns: []string{followuprequest.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facilitytransaction.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   followuprequest.TransactionsTable,
			Columns: []string{followuprequest.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facilitytransaction.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   followuprequest.TransactionsTable,
			Columns: []string{followuprequest.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facilitytransaction.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FollowupRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{followuprequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
