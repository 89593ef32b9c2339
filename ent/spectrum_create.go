// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/spectrum"
)

// SpectrumCreate is the builder for creating a Spectrum entity.
type SpectrumCreate struct {
	config
	mutation *SpectrumMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SpectrumCreate) SetCreatedAt(v time.Time) *SpectrumCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SpectrumCreate) SetNillableCreatedAt(v *time.Time) *SpectrumCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetObjID sets the "obj_id" field.
func (_c *SpectrumCreate) SetObjID(v string) *SpectrumCreate {
	_c.mutation.SetObjID(v)
	return _c
}

// Mutation returns the SpectrumMutation object of the builder.
func (_c *SpectrumCreate) Mutation() *SpectrumMutation {
	return _c.mutation
}

// Save creates the Spectrum in the database.
func (_c *SpectrumCreate) Save(ctx context.Context) (*Spectrum, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpectrumCreate) SaveX(ctx context.Context) *Spectrum {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpectrumCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpectrumCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SpectrumCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := spectrum.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpectrumCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Spectrum.created_at"`)}
	}
	if _, ok := _c.mutation.ObjID(); !ok {
		return &ValidationError{Name: "obj_id", err: errors.New(`ent: missing required field "Spectrum.obj_id"`)}
	}
	if v, ok := _c.mutation.ObjID(); ok {
		if err := spectrum.ObjIDValidator(v); err != nil {
			return &ValidationError{Name: "obj_id", err: fmt.Errorf(`ent: validator failed for field "Spectrum.obj_id": %w`, err)}
		}
	}
	return nil
}

func (_c *SpectrumCreate) sqlSave(ctx context.Context) (*Spectrum, error) {
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

func (_c *SpectrumCreate) createSpec() (*Spectrum, *sqlgraph.CreateSpec) {
	var (
		_node = &Spectrum{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(spectrum.Table, sqlgraph.NewFieldSpec(spectrum.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(spectrum.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ObjID(); ok {
		_spec.SetField(spectrum.FieldObjID, field.TypeString, value)
		_node.ObjID = value
	}
	return _node, _spec
}

// SpectrumCreateBulk is the builder for creating many Spectrum entities in bulk.
type SpectrumCreateBulk struct {
	config
	err      error
	builders []*SpectrumCreate
}

// Save creates the Spectrum entities in the database.
func (_c *SpectrumCreateBulk) Save(ctx context.Context) ([]*Spectrum, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Spectrum, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpectrumMutation)
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
func (_c *SpectrumCreateBulk) SaveX(ctx context.Context) []*Spectrum {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpectrumCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpectrumCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
