// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/localization"
)

// LocalizationCreate is the builder for creating a Localization entity.
type LocalizationCreate struct {
	config
	mutation *LocalizationMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *LocalizationCreate) SetCreatedAt(v time.Time) *LocalizationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LocalizationCreate) SetNillableCreatedAt(v *time.Time) *LocalizationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDateobs sets the "dateobs" field.
func (_c *LocalizationCreate) SetDateobs(v time.Time) *LocalizationCreate {
	_c.mutation.SetDateobs(v)
	return _c
}

// SetLocalizationName sets the "localization_name" field.
func (_c *LocalizationCreate) SetLocalizationName(v string) *LocalizationCreate {
	_c.mutation.SetLocalizationName(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *LocalizationCreate) SetTags(v []string) *LocalizationCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetProperties sets the "properties" field.
func (_c *LocalizationCreate) SetProperties(v []map[string]interface{}) *LocalizationCreate {
	_c.mutation.SetProperties(v)
	return _c
}

// Mutation returns the LocalizationMutation object of the builder.
func (_c *LocalizationCreate) Mutation() *LocalizationMutation {
	return _c.mutation
}

// Save creates the Localization in the database.
func (_c *LocalizationCreate) Save(ctx context.Context) (*Localization, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LocalizationCreate) SaveX(ctx context.Context) *Localization {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LocalizationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LocalizationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LocalizationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := localization.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LocalizationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Localization.created_at"`)}
	}
	if _, ok := _c.mutation.Dateobs(); !ok {
		return &ValidationError{Name: "dateobs", err: errors.New(`ent: missing required field "Localization.dateobs"`)}
	}
	if _, ok := _c.mutation.LocalizationName(); !ok {
		return &ValidationError{Name: "localization_name", err: errors.New(`ent: missing required field "Localization.localization_name"`)}
	}
	if v, ok := _c.mutation.LocalizationName(); ok {
		if err := localization.LocalizationNameValidator(v); err != nil {
			return &ValidationError{Name: "localization_name", err: fmt.Errorf(`ent: validator failed for field "Localization.localization_name": %w`, err)}
		}
	}
	return nil
}

func (_c *LocalizationCreate) sqlSave(ctx context.Context) (*Localization, error) {
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

func (_c *LocalizationCreate) createSpec() (*Localization, *sqlgraph.CreateSpec) {
	var (
		_node = &Localization{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(localization.Table, sqlgraph.NewFieldSpec(localization.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(localization.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Dateobs(); ok {
		_spec.SetField(localization.FieldDateobs, field.TypeTime, value)
		_node.Dateobs = value
	}
	if value, ok := _c.mutation.LocalizationName(); ok {
		_spec.SetField(localization.FieldLocalizationName, field.TypeString, value)
		_node.LocalizationName = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(localization.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Properties(); ok {
		_spec.SetField(localization.FieldProperties, field.TypeJSON, value)
		_node.Properties = value
	}
	return _node, _spec
}

// LocalizationCreateBulk is the builder for creating many Localization entities in bulk.
type LocalizationCreateBulk struct {
	config
	err      error
	builders []*LocalizationCreate
}

// Save creates the Localization entities in the database.
func (_c *LocalizationCreateBulk) Save(ctx context.Context) ([]*Localization, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Localization, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LocalizationMutation)
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
func (_c *LocalizationCreateBulk) SaveX(ctx context.Context) []*Localization {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LocalizationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LocalizationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
