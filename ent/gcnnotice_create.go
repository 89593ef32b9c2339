// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/gcnnotice"
)

// GcnNoticeCreate is the builder for creating a GcnNotice entity.
type GcnNoticeCreate struct {
	config
	mutation *GcnNoticeMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *GcnNoticeCreate) SetCreatedAt(v time.Time) *GcnNoticeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GcnNoticeCreate) SetNillableCreatedAt(v *time.Time) *GcnNoticeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDateobs sets the "dateobs" field.
func (_c *GcnNoticeCreate) SetDateobs(v time.Time) *GcnNoticeCreate {
	_c.mutation.SetDateobs(v)
	return _c
}

// SetNoticeType sets the "notice_type" field.
func (_c *GcnNoticeCreate) SetNoticeType(v string) *GcnNoticeCreate {
	_c.mutation.SetNoticeType(v)
	return _c
}

// SetNillableNoticeType sets the "notice_type" field if the given value is not nil.
func (_c *GcnNoticeCreate) SetNillableNoticeType(v *string) *GcnNoticeCreate {
	if v != nil {
		_c.SetNoticeType(*v)
	}
	return _c
}

// Mutation returns the GcnNoticeMutation object of the builder.
func (_c *GcnNoticeCreate) Mutation() *GcnNoticeMutation {
	return _c.mutation
}

// Save creates the GcnNotice in the database.
func (_c *GcnNoticeCreate) Save(ctx context.Context) (*GcnNotice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GcnNoticeCreate) SaveX(ctx context.Context) *GcnNotice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GcnNoticeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GcnNoticeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GcnNoticeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := gcnnotice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GcnNoticeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GcnNotice.created_at"`)}
	}
	if _, ok := _c.mutation.Dateobs(); !ok {
		return &ValidationError{Name: "dateobs", err: errors.New(`ent: missing required field "GcnNotice.dateobs"`)}
	}
	if v, ok := _c.mutation.NoticeType(); ok {
		if err := gcnnotice.NoticeTypeValidator(v); err != nil {
			return &ValidationError{Name: "notice_type", err: fmt.Errorf(`ent: validator failed for field "GcnNotice.notice_type": %w`, err)}
		}
	}
	return nil
}

func (_c *GcnNoticeCreate) sqlSave(ctx context.Context) (*GcnNotice, error) {
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

func (_c *GcnNoticeCreate) createSpec() (*GcnNotice, *sqlgraph.CreateSpec) {
	var (
		_node = &GcnNotice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gcnnotice.Table, sqlgraph.NewFieldSpec(gcnnotice.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(gcnnotice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Dateobs(); ok {
		_spec.SetField(gcnnotice.FieldDateobs, field.TypeTime, value)
		_node.Dateobs = value
	}
	if value, ok := _c.mutation.NoticeType(); ok {
		_spec.SetField(gcnnotice.FieldNoticeType, field.TypeString, value)
		_node.NoticeType = value
	}
	return _node, _spec
}

// GcnNoticeCreateBulk is the builder for creating many GcnNotice entities in bulk.
type GcnNoticeCreateBulk struct {
	config
	err      error
	builders []*GcnNoticeCreate
}

// Save creates the GcnNotice entities in the database.
func (_c *GcnNoticeCreateBulk) Save(ctx context.Context) ([]*GcnNotice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GcnNotice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GcnNoticeMutation)
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
func (_c *GcnNoticeCreateBulk) SaveX(ctx context.Context) []*GcnNotice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GcnNoticeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GcnNoticeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
