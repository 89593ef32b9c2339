// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/gcnproperty"
)

// GcnPropertyCreate is the builder for creating a GcnProperty entity.
type GcnPropertyCreate struct {
	config
	mutation *GcnPropertyMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *GcnPropertyCreate) SetCreatedAt(v time.Time) *GcnPropertyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GcnPropertyCreate) SetNillableCreatedAt(v *time.Time) *GcnPropertyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDateobs sets the "dateobs" field.
func (_c *GcnPropertyCreate) SetDateobs(v time.Time) *GcnPropertyCreate {
	_c.mutation.SetDateobs(v)
	return _c
}

// SetData sets the "data" field.
func (_c *GcnPropertyCreate) SetData(v map[string]interface{}) *GcnPropertyCreate {
	_c.mutation.SetData(v)
	return _c
}

// Mutation returns the GcnPropertyMutation object of the builder.
func (_c *GcnPropertyCreate) Mutation() *GcnPropertyMutation {
	return _c.mutation
}

// Save creates the GcnProperty in the database.
func (_c *GcnPropertyCreate) Save(ctx context.Context) (*GcnProperty, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GcnPropertyCreate) SaveX(ctx context.Context) *GcnProperty {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GcnPropertyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GcnPropertyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GcnPropertyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := gcnproperty.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GcnPropertyCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GcnProperty.created_at"`)}
	}
	if _, ok := _c.mutation.Dateobs(); !ok {
		return &ValidationError{Name: "dateobs", err: errors.New(`ent: missing required field "GcnProperty.dateobs"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "GcnProperty.data"`)}
	}
	return nil
}

func (_c *GcnPropertyCreate) sqlSave(ctx context.Context) (*GcnProperty, error) {
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

func (_c *GcnPropertyCreate) createSpec() (*GcnProperty, *sqlgraph.CreateSpec) {
	var (
		_node = &GcnProperty{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gcnproperty.Table, sqlgraph.NewFieldSpec(gcnproperty.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(gcnproperty.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Dateobs(); ok {
		_spec.SetField(gcnproperty.FieldDateobs, field.TypeTime, value)
		_node.Dateobs = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(gcnproperty.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// GcnPropertyCreateBulk is the builder for creating many GcnProperty entities in bulk.
type GcnPropertyCreateBulk struct {
	config
	err      error
	builders []*GcnPropertyCreate
}

// Save creates the GcnProperty entities in the database.
func (_c *GcnPropertyCreateBulk) Save(ctx context.Context) ([]*GcnProperty, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GcnProperty, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GcnPropertyMutation)
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
func (_c *GcnPropertyCreateBulk) SaveX(ctx context.Context) []*GcnProperty {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GcnPropertyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GcnPropertyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
