// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/gcntag"
)

// GcnTagCreate is the builder for creating a GcnTag entity.
type GcnTagCreate struct {
	config
	mutation *GcnTagMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *GcnTagCreate) SetCreatedAt(v time.Time) *GcnTagCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GcnTagCreate) SetNillableCreatedAt(v *time.Time) *GcnTagCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDateobs sets the "dateobs" field.
func (_c *GcnTagCreate) SetDateobs(v time.Time) *GcnTagCreate {
	_c.mutation.SetDateobs(v)
	return _c
}

// SetText sets the "text" field.
func (_c *GcnTagCreate) SetText(v string) *GcnTagCreate {
	_c.mutation.SetText(v)
	return _c
}

// Mutation returns the GcnTagMutation object of the builder.
func (_c *GcnTagCreate) Mutation() *GcnTagMutation {
	return _c.mutation
}

// Save creates the GcnTag in the database.
func (_c *GcnTagCreate) Save(ctx context.Context) (*GcnTag, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GcnTagCreate) SaveX(ctx context.Context) *GcnTag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GcnTagCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GcnTagCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GcnTagCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := gcntag.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GcnTagCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GcnTag.created_at"`)}
	}
	if _, ok := _c.mutation.Dateobs(); !ok {
		return &ValidationError{Name: "dateobs", err: errors.New(`ent: missing required field "GcnTag.dateobs"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "GcnTag.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := gcntag.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "GcnTag.text": %w`, err)}
		}
	}
	return nil
}

func (_c *GcnTagCreate) sqlSave(ctx context.Context) (*GcnTag, error) {
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

func (_c *GcnTagCreate) createSpec() (*GcnTag, *sqlgraph.CreateSpec) {
	var (
		_node = &GcnTag{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gcntag.Table, sqlgraph.NewFieldSpec(gcntag.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(gcntag.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Dateobs(); ok {
		_spec.SetField(gcntag.FieldDateobs, field.TypeTime, value)
		_node.Dateobs = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(gcntag.FieldText, field.TypeString, value)
		_node.Text = value
	}
	return _node, _spec
}

// GcnTagCreateBulk is the builder for creating many GcnTag entities in bulk.
type GcnTagCreateBulk struct {
	config
	err      error
	builders []*GcnTagCreate
}

// Save creates the GcnTag entities in the database.
func (_c *GcnTagCreateBulk) Save(ctx context.Context) ([]*GcnTag, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GcnTag, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GcnTagMutation)
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
func (_c *GcnTagCreateBulk) SaveX(ctx context.Context) []*GcnTag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GcnTagCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GcnTagCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
