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
	"sky-herald.io/herald/ent/followuprequest"
	"sky-herald.io/herald/ent/group"
	"sky-herald.io/herald/ent/observationplanrequest"
)

// AllocationCreate is the builder for creating a Allocation entity.
type AllocationCreate struct {
	config
	mutation *AllocationMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AllocationCreate) SetCreatedAt(v time.Time) *AllocationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AllocationCreate) SetNillableCreatedAt(v *time.Time) *AllocationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AllocationCreate) SetUpdatedAt(v time.Time) *AllocationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AllocationCreate) SetNillableUpdatedAt(v *time.Time) *AllocationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetInstrument sets the "instrument" field.
func (_c *AllocationCreate) SetInstrument(v string) *AllocationCreate {
	_c.mutation.SetInstrument(v)
	return _c
}

// SetGroupID sets the "group" edge to the Group entity by ID.
func (_c *AllocationCreate) SetGroupID(id int) *AllocationCreate {
	_c.mutation.SetGroupID(id)
	return _c
}

// SetGroup sets the "group" edge to the Group entity.
func (_c *AllocationCreate) SetGroup(v *Group) *AllocationCreate {
	return _c.SetGroupID(v.ID)
}

// AddFollowupRequestIDs adds the "followup_requests" edge to the FollowupRequest entity by IDs.
func (_c *AllocationCreate) AddFollowupRequestIDs(ids ...int) *AllocationCreate {
	_c.mutation.AddFollowupRequestIDs(ids...)
	return _c
}

// AddFollowupRequests adds the "followup_requests" edges to the FollowupRequest entity.
func (_c *AllocationCreate) AddFollowupRequests(v ...*FollowupRequest) *AllocationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFollowupRequestIDs(ids...)
}

// AddObservationPlanRequestIDs adds the "observation_plan_requests" edge to the ObservationPlanRequest entity by IDs.
func (_c *AllocationCreate) AddObservationPlanRequestIDs(ids ...int) *AllocationCreate {
	_c.mutation.AddObservationPlanRequestIDs(ids...)
	return _c
}

// AddObservationPlanRequests adds the "observation_plan_requests" edges to the ObservationPlanRequest entity.
func (_c *AllocationCreate) AddObservationPlanRequests(v ...*ObservationPlanRequest) *AllocationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddObservationPlanRequestIDs(ids...)
}

// Mutation returns the AllocationMutation object of the builder.
func (_c *AllocationCreate) Mutation() *AllocationMutation {
	return _c.mutation
}

// Save creates the Allocation in the database.
func (_c *AllocationCreate) Save(ctx context.Context) (*Allocation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AllocationCreate) SaveX(ctx context.Context) *Allocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AllocationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AllocationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AllocationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := allocation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := allocation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AllocationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Allocation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Allocation.updated_at"`)}
	}
	if _, ok := _c.mutation.Instrument(); !ok {
		return &ValidationError{Name: "instrument", err: errors.New(`ent: missing required field "Allocation.instrument"`)}
	}
	if v, ok := _c.mutation.Instrument(); ok {
		if err := allocation.InstrumentValidator(v); err != nil {
			return &ValidationError{Name: "instrument", err: fmt.Errorf(`ent: validator failed for field "Allocation.instrument": %w`, err)}
		}
	}
	if len(_c.mutation.GroupIDs()) == 0 {
		return &ValidationError{Name: "group", err: errors.New(`ent: missing required edge "Allocation.group"`)}
	}
	return nil
}

func (_c *AllocationCreate) sqlSave(ctx context.Context) (*Allocation, error) {
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

func (_c *AllocationCreate) createSpec() (*Allocation, *sqlgraph.CreateSpec) {
	var (
		_node = &Allocation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(allocation.Table, sqlgraph.NewFieldSpec(allocation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(allocation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(allocation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Instrument(); ok {
		_spec.SetField(allocation.FieldInstrument, field.TypeString, value)
		_node.Instrument = value
	}
	if nodes := _c.mutation.GroupIDs(); len(nodes) > 0 {
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
		_node.group_allocations = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FollowupRequestsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ObservationPlanRequestsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AllocationCreateBulk is the builder for creating many Allocation entities in bulk.
type AllocationCreateBulk struct {
	config
	err      error
	builders []*AllocationCreate
}

// Save creates the Allocation entities in the database.
func (_c *AllocationCreateBulk) Save(ctx context.Context) ([]*Allocation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Allocation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AllocationMutation)
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
func (_c *AllocationCreateBulk) SaveX(ctx context.Context) []*Allocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AllocationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AllocationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
