// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/allocation"
	"sky-herald.io/herald/ent/facilitytransaction"
	"sky-herald.io/herald/ent/followuprequest"
	"sky-herald.io/herald/ent/user"
)

// FollowupRequestCreate is the builder for creating a FollowupRequest entity.
type FollowupRequestCreate struct {
	config
	mutation *FollowupRequestMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *FollowupRequestCreate) SetCreatedAt(v time.Time) *FollowupRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FollowupRequestCreate) SetNillableCreatedAt(v *time.Time) *FollowupRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FollowupRequestCreate) SetUpdatedAt(v time.Time) *FollowupRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FollowupRequestCreate) SetNillableUpdatedAt(v *time.Time) *FollowupRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetObjID sets the "obj_id" field.
func (_c *FollowupRequestCreate) SetObjID(v string) *FollowupRequestCreate {
	_c.mutation.SetObjID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *FollowupRequestCreate) SetStatus(v string) *FollowupRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FollowupRequestCreate) SetNillableStatus(v *string) *FollowupRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAllocationID sets the "allocation" edge to the Allocation entity by ID.
func (_c *FollowupRequestCreate) SetAllocationID(id int) *FollowupRequestCreate {
	_c.mutation.SetAllocationID(id)
	return _c
}

// SetAllocation sets the "allocation" edge to the Allocation entity.
func (_c *FollowupRequestCreate) SetAllocation(v *Allocation) *FollowupRequestCreate {
	return _c.SetAllocationID(v.ID)
}

// SetRequesterID sets the "requester" edge to the User entity by ID.
func (_c *FollowupRequestCreate) SetRequesterID(id int) *FollowupRequestCreate {
	_c.mutation.SetRequesterID(id)
	return _c
}

// SetRequester sets the "requester" edge to the User entity.
func (_c *FollowupRequestCreate) SetRequester(v *User) *FollowupRequestCreate {
	return _c.SetRequesterID(v.ID)
}

// AddTransactionIDs adds the "transactions" edge to the FacilityTransaction entity by IDs.
func (_c *FollowupRequestCreate) AddTransactionIDs(ids ...int) *FollowupRequestCreate {
	_c.mutation.AddTransactionIDs(ids...)
	return _c
}

// AddTransactions adds the "transactions" edges to the FacilityTransaction entity.
func (_c *FollowupRequestCreate) AddTransactions(v ...*FacilityTransaction) *FollowupRequestCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTransactionIDs(ids...)
}

// Mutation returns the FollowupRequestMutation object of the builder.
func (_c *FollowupRequestCreate) Mutation() *FollowupRequestMutation {
	return _c.mutation
}

// Save creates the FollowupRequest in the database.
func (_c *FollowupRequestCreate) Save(ctx context.Context) (*FollowupRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FollowupRequestCreate) SaveX(ctx context.Context) *FollowupRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FollowupRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FollowupRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FollowupRequestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := followuprequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := followuprequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := followuprequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FollowupRequestCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FollowupRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FollowupRequest.updated_at"`)}
	}
	if _, ok := _c.mutation.ObjID(); !ok {
		return &ValidationError{Name: "obj_id", err: errors.New(`ent: missing required field "FollowupRequest.obj_id"`)}
	}
	if v, ok := _c.mutation.ObjID(); ok {
		if err := followuprequest.ObjIDValidator(v); err != nil {
			return &ValidationError{Name: "obj_id", err: fmt.Errorf(`ent: validator failed for field "FollowupRequest.obj_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FollowupRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := followuprequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FollowupRequest.status": %w`, err)}
		}
	}
	if len(_c.mutation.AllocationIDs()) == 0 {
		return &ValidationError{Name: "allocation", err: errors.New(`ent: missing required edge "FollowupRequest.allocation"`)}
	}
	if len(_c.mutation.RequesterIDs()) == 0 {
		return &ValidationError{Name: "requester", err: errors.New(`ent: missing required edge "FollowupRequest.requester"`)}
	}
	return nil
}

func (_c *FollowupRequestCreate) sqlSave(ctx context.Context) (*FollowupRequest, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FollowupRequestCreate) createSpec() (*FollowupRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &FollowupRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(followuprequest.Table, sqlgraph.NewFieldSpec(followuprequest.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(followuprequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(followuprequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ObjID(); ok {
		_spec.SetField(followuprequest.FieldObjID, field.TypeString, value)
		_node.ObjID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(followuprequest.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if nodes := _c.mutation.AllocationIDs(); len(nodes) > 0 {
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
		_node.allocation_followup_requests = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RequesterIDs(); len(nodes) > 0 {
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
		_node.followup_request_requester = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FollowupRequestCreateBulk is the builder for creating many FollowupRequest entities in bulk.
type FollowupRequestCreateBulk struct {
	config
	err      error
	builders []*FollowupRequestCreate
}

// Save creates the FollowupRequest entities in the database.
func (_c *FollowupRequestCreateBulk) Save(ctx context.Context) ([]*FollowupRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FollowupRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FollowupRequestMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *FollowupRequestCreateBulk) SaveX(ctx context.Context) []*FollowupRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FollowupRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FollowupRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
