// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/classification"
)

// ClassificationCreate is the builder for creating a Classification entity.
type ClassificationCreate struct {
	config
	mutation *ClassificationMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClassificationCreate) SetCreatedAt(v time.Time) *ClassificationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClassificationCreate) SetNillableCreatedAt(v *time.Time) *ClassificationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetObjID sets the "obj_id" field.
func (_c *ClassificationCreate) SetObjID(v string) *ClassificationCreate {
	_c.mutation.SetObjID(v)
	return _c
}

// SetClassification sets the "classification" field.
func (_c *ClassificationCreate) SetClassification(v string) *ClassificationCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// Mutation returns the ClassificationMutation object of the builder.
func (_c *ClassificationCreate) Mutation() *ClassificationMutation {
	return _c.mutation
}

// Save creates the Classification in the database.
func (_c *ClassificationCreate) Save(ctx context.Context) (*Classification, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClassificationCreate) SaveX(ctx context.Context) *Classification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClassificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClassificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClassificationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := classification.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClassificationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Classification.created_at"`)}
	}
	if _, ok := _c.mutation.ObjID(); !ok {
		return &ValidationError{Name: "obj_id", err: errors.New(`ent: missing required field "Classification.obj_id"`)}
	}
	if v, ok := _c.mutation.ObjID(); ok {
		if err := classification.ObjIDValidator(v); err != nil {
			return &ValidationError{Name: "obj_id", err: fmt.Errorf(`ent: validator failed for field "Classification.obj_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Classification(); !ok {
		return &ValidationError{Name: "classification", err: errors.New(`ent: missing required field "Classification.classification"`)}
	}
	if v, ok := _c.mutation.Classification(); ok {
		if err := classification.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "Classification.classification": %w`, err)}
		}
	}
	return nil
}

func (_c *ClassificationCreate) sqlSave(ctx context.Context) (*Classification, error) {
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

func (_c *ClassificationCreate) createSpec() (*Classification, *sqlgraph.CreateSpec) {
	var (
		_node = &Classification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(classification.Table, sqlgraph.NewFieldSpec(classification.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(classification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ObjID(); ok {
		_spec.SetField(classification.FieldObjID, field.TypeString, value)
		_node.ObjID = value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(classification.FieldClassification, field.TypeString, value)
		_node.Classification = value
	}
	return _node, _spec
}

// ClassificationCreateBulk is the builder for creating many Classification entities in bulk.
type ClassificationCreateBulk struct {
	config
	err      error
	builders []*ClassificationCreate
}

// Save creates the Classification entities in the database.
func (_c *ClassificationCreateBulk) Save(ctx context.Context) ([]*Classification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Classification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClassificationMutation)
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
func (_c *ClassificationCreateBulk) SaveX(ctx context.Context) []*Classification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClassificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClassificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
