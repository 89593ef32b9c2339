// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/gcnnotice"
	"sky-herald.io/herald/ent/predicate"
)

// GcnNoticeDelete is the builder for deleting a GcnNotice entity.
type GcnNoticeDelete struct {
	config
	hooks    []Hook
	mutation *GcnNoticeMutation
}

// Where appends a list predicates to the GcnNoticeDelete builder.
func (_d *GcnNoticeDelete) Where(ps ...predicate.GcnNotice) *GcnNoticeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GcnNoticeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GcnNoticeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GcnNoticeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(gcnnotice.Table, sqlgraph.NewFieldSpec(gcnnotice.FieldID, field.TypeInt))
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

// GcnNoticeDeleteOne is the builder for deleting a single GcnNotice entity.
type GcnNoticeDeleteOne struct {
	_d *GcnNoticeDelete
}

// Where appends a list predicates to the GcnNoticeDelete builder.
func (_d *GcnNoticeDeleteOne) Where(ps ...predicate.GcnNotice) *GcnNoticeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GcnNoticeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{gcnnotice.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GcnNoticeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
