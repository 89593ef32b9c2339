// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/observationplanrequest"
	"sky-herald.io/herald/ent/predicate"
)

// ObservationPlanRequestDelete is the builder for deleting a ObservationPlanRequest entity.
type ObservationPlanRequestDelete struct {
	config
	hooks    []Hook
	mutation *ObservationPlanRequestMutation
}

// Where appends a list predicates to the ObservationPlanRequestDelete builder.
func (_d *ObservationPlanRequestDelete) Where(ps ...predicate.ObservationPlanRequest) *ObservationPlanRequestDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ObservationPlanRequestDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ObservationPlanRequestDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ObservationPlanRequestDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(observationplanrequest.Table, sqlgraph.NewFieldSpec(observationplanrequest.FieldID, field.TypeInt))
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

// ObservationPlanRequestDeleteOne is the builder for deleting a single ObservationPlanRequest entity.
type ObservationPlanRequestDeleteOne struct {
	_d *ObservationPlanRequestDelete
}

// Where appends a list predicates to the ObservationPlanRequestDelete builder.
func (_d *ObservationPlanRequestDeleteOne) Where(ps ...predicate.ObservationPlanRequest) *ObservationPlanRequestDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ObservationPlanRequestDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{observationplanrequest.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ObservationPlanRequestDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
