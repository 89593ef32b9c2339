// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/groupadmissionrequest"
	"sky-herald.io/herald/ent/predicate"
)

// GroupAdmissionRequestDelete is the builder for deleting a GroupAdmissionRequest entity.
type GroupAdmissionRequestDelete struct {
	config
	hooks    []Hook
	mutation *GroupAdmissionRequestMutation
}

// Where appends a list predicates to the GroupAdmissionRequestDelete builder.
func (_d *GroupAdmissionRequestDelete) Where(ps ...predicate.GroupAdmissionRequest) *GroupAdmissionRequestDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GroupAdmissionRequestDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GroupAdmissionRequestDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GroupAdmissionRequestDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(groupadmissionrequest.Table, sqlgraph.NewFieldSpec(groupadmissionrequest.FieldID, field.TypeInt))
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

// GroupAdmissionRequestDeleteOne is the builder for deleting a single GroupAdmissionRequest entity.
type GroupAdmissionRequestDeleteOne struct {
	_d *GroupAdmissionRequestDelete
}

// Where appends a list predicates to the GroupAdmissionRequestDelete builder.
func (_d *GroupAdmissionRequestDeleteOne) Where(ps ...predicate.GroupAdmissionRequest) *GroupAdmissionRequestDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GroupAdmissionRequestDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{groupadmissionrequest.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GroupAdmissionRequestDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
