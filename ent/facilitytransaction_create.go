// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/facilitytransaction"
	"sky-herald.io/herald/ent/followuprequest"
)

// FacilityTransactionCreate is the builder for creating a FacilityTransaction entity.
type FacilityTransactionCreate struct {
	config
	mutation *FacilityTransactionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *FacilityTransactionCreate) SetCreatedAt(v time.Time) *FacilityTransactionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FacilityTransactionCreate) SetNillableCreatedAt(v *time.Time) *FacilityTransactionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetInitiator sets the "initiator" field.
func (_c *FacilityTransactionCreate) SetInitiator(v string) *FacilityTransactionCreate {
	_c.mutation.SetInitiator(v)
	return _c
}

// SetNillableInitiator sets the "initiator" field if the given value is not nil.
func (_c *FacilityTransactionCreate) SetNillableInitiator(v *string) *FacilityTransactionCreate {
	if v != nil {
		_c.SetInitiator(*v)
	}
	return _c
}

// SetFollowupRequestID sets the "followup_request" edge to the FollowupRequest entity by ID.
func (_c *FacilityTransactionCreate) SetFollowupRequestID(id int) *FacilityTransactionCreate {
	_c.mutation.SetFollowupRequestID(id)
	return _c
}

// SetFollowupRequest sets the "followup_request" edge to the FollowupRequest entity.
func (_c *FacilityTransactionCreate) SetFollowupRequest(v *FollowupRequest) *FacilityTransactionCreate {
	return _c.SetFollowupRequestID(v.ID)
}

// Mutation returns the FacilityTransactionMutation object of the builder.
func (_c *FacilityTransactionCreate) Mutation() *FacilityTransactionMutation {
	return _c.mutation
}

// Save creates the FacilityTransaction in the database.
func (_c *FacilityTransactionCreate) Save(ctx context.Context) (*FacilityTransaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FacilityTransactionCreate) SaveX(ctx context.Context) *FacilityTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FacilityTransactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FacilityTransactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FacilityTransactionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := facilitytransaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FacilityTransactionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FacilityTransaction.created_at"`)}
	}
	if v, ok := _c.mutation.Initiator(); ok {
		if err := facilitytransaction.InitiatorValidator(v); err != nil {
			return &ValidationError{Name: "initiator", err: fmt.Errorf(`ent: validator failed for field "FacilityTransaction.initiator": %w`, err)}
		}
	}
	if len(_c.mutation.FollowupRequestIDs()) == 0 {
		return &ValidationError{Name: "followup_request", err: errors.New(`ent: missing required edge "FacilityTransaction.followup_request"`)}
	}
	return nil
}

func (_c *FacilityTransactionCreate) sqlSave(ctx context.Context) (*FacilityTransaction, error) {
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

func (_c *FacilityTransactionCreate) createSpec() (*FacilityTransaction, *sqlgraph.CreateSpec) {
	var (
		_node = &FacilityTransaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(facilitytransaction.Table, sqlgraph.NewFieldSpec(facilitytransaction.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(facilitytransaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Initiator(); ok {
		_spec.SetField(facilitytransaction.FieldInitiator, field.TypeString, value)
		_node.Initiator = value
	}
	if nodes := _c.mutation.FollowupRequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   facilitytransaction.FollowupRequestTable,
			Columns: []string{facilitytransaction.FollowupRequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(followuprequest.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.followup_request_transactions = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FacilityTransactionCreateBulk is the builder for creating many FacilityTransaction entities in bulk.
type FacilityTransactionCreateBulk struct {
	config
	err      error
	builders []*FacilityTransactionCreate
}

// Save creates the FacilityTransaction entities in the database.
func (_c *FacilityTransactionCreateBulk) Save(ctx context.Context) ([]*FacilityTransaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FacilityTransaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FacilityTransactionMutation)
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
func (_c *FacilityTransactionCreateBulk) SaveX(ctx context.Context) []*FacilityTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FacilityTransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FacilityTransactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
