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
	"sky-herald.io/herald/ent/observationplanrequest"
	"sky-herald.io/herald/ent/user"
)

// ObservationPlanRequestCreate is the builder for creating a ObservationPlanRequest entity.
type ObservationPlanRequestCreate struct {
	config
	mutation *ObservationPlanRequestMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ObservationPlanRequestCreate) SetCreatedAt(v time.Time) *ObservationPlanRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ObservationPlanRequestCreate) SetNillableCreatedAt(v *time.Time) *ObservationPlanRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ObservationPlanRequestCreate) SetUpdatedAt(v time.Time) *ObservationPlanRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ObservationPlanRequestCreate) SetNillableUpdatedAt(v *time.Time) *ObservationPlanRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDateobs sets the "dateobs" field.
func (_c *ObservationPlanRequestCreate) SetDateobs(v time.Time) *ObservationPlanRequestCreate {
	_c.mutation.SetDateobs(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ObservationPlanRequestCreate) SetStatus(v string) *ObservationPlanRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ObservationPlanRequestCreate) SetNillableStatus(v *string) *ObservationPlanRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAllocationID sets the "allocation" edge to the Allocation entity by ID.
func (_c *ObservationPlanRequestCreate) SetAllocationID(id int) *ObservationPlanRequestCreate {
	_c.mutation.SetAllocationID(id)
	return _c
}

// SetAllocation sets the "allocation" edge to the Allocation entity.
func (_c *ObservationPlanRequestCreate) SetAllocation(v *Allocation) *ObservationPlanRequestCreate {
	return _c.SetAllocationID(v.ID)
}

// SetRequesterID sets the "requester" edge to the User entity by ID.
func (_c *ObservationPlanRequestCreate) SetRequesterID(id int) *ObservationPlanRequestCreate {
	_c.mutation.SetRequesterID(id)
	return _c
}

// SetRequester sets the "requester" edge to the User entity.
func (_c *ObservationPlanRequestCreate) SetRequester(v *User) *ObservationPlanRequestCreate {
	return _c.SetRequesterID(v.ID)
}

// Mutation returns the ObservationPlanRequestMutation object of the builder.
func (_c *ObservationPlanRequestCreate) Mutation() *ObservationPlanRequestMutation {
	return _c.mutation
}

// Save creates the ObservationPlanRequest in the database.
func (_c *ObservationPlanRequestCreate) Save(ctx context.Context) (*ObservationPlanRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ObservationPlanRequestCreate) SaveX(ctx context.Context) *ObservationPlanRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObservationPlanRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObservationPlanRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ObservationPlanRequestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := observationplanrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := observationplanrequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := observationplanrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ObservationPlanRequestCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ObservationPlanRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ObservationPlanRequest.updated_at"`)}
	}
	if _, ok := _c.mutation.Dateobs(); !ok {
		return &ValidationError{Name: "dateobs", err: errors.New(`ent: missing required field "ObservationPlanRequest.dateobs"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ObservationPlanRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := observationplanrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ObservationPlanRequest.status": %w`, err)}
		}
	}
	if len(_c.mutation.AllocationIDs()) == 0 {
		return &ValidationError{Name: "allocation", err: errors.New(`ent: missing required edge "ObservationPlanRequest.allocation"`)}
	}
	if len(_c.mutation.RequesterIDs()) == 0 {
		return &ValidationError{Name: "requester", err: errors.New(`ent: missing required edge "ObservationPlanRequest.requester"`)}
	}
	return nil
}

func (_c *ObservationPlanRequestCreate) sqlSave(ctx context.Context) (*ObservationPlanRequest, error) {
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

func (_c *ObservationPlanRequestCreate) createSpec() (*ObservationPlanRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &ObservationPlanRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(observationplanrequest.Table, sqlgraph.NewFieldSpec(observationplanrequest.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(observationplanrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(observationplanrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Dateobs(); ok {
		_spec.SetField(observationplanrequest.FieldDateobs, field.TypeTime, value)
		_node.Dateobs = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(observationplanrequest.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if nodes := _c.mutation.AllocationIDs(); len(nodes) > 0 {
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
		_node.allocation_observation_plan_requests = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RequesterIDs(); len(nodes) > 0 {
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
		_node.observation_plan_request_requester = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ObservationPlanRequestCreateBulk is the builder for creating many ObservationPlanRequest entities in bulk.
type ObservationPlanRequestCreateBulk struct {
	config
	err      error
	builders []*ObservationPlanRequestCreate
}

// Save creates the ObservationPlanRequest entities in the database.
func (_c *ObservationPlanRequestCreateBulk) Save(ctx context.Context) ([]*ObservationPlanRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ObservationPlanRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ObservationPlanRequestMutation)
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
func (_c *ObservationPlanRequestCreateBulk) SaveX(ctx context.Context) []*ObservationPlanRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObservationPlanRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObservationPlanRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
