// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/gcnproperty"
	"sky-herald.io/herald/ent/predicate"
)

// GcnPropertyDelete is the builder for deleting a GcnProperty entity.
type GcnPropertyDelete struct {
	config
	hooks    []Hook
	mutation *GcnPropertyMutation
}

// Where appends a list predicates to the GcnPropertyDelete builder.
func (_d *GcnPropertyDelete) Where(ps ...predicate.GcnProperty) *GcnPropertyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GcnPropertyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GcnPropertyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GcnPropertyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(gcnproperty.Table, sqlgraph.NewFieldSpec(gcnproperty.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// GcnPropertyDeleteOne is the builder for deleting a single GcnProperty entity.
type GcnPropertyDeleteOne struct {
	_d *GcnPropertyDelete
}

// Where appends a list predicates to the GcnPropertyDelete builder.
func (_d *GcnPropertyDeleteOne) Where(ps ...predicate.GcnProperty) *GcnPropertyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GcnPropertyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{gcnproperty.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GcnPropertyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
