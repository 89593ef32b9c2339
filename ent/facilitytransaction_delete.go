// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/facilitytransaction"
	"sky-herald.io/herald/ent/predicate"
)

// FacilityTransactionDelete is the builder for deleting a FacilityTransaction entity.
type FacilityTransactionDelete struct {
	config
	hooks    []Hook
	mutation *FacilityTransactionMutation
}

// Where appends a list predicates to the FacilityTransactionDelete builder.
func (_d *FacilityTransactionDelete) Where(ps ...predicate.FacilityTransaction) *FacilityTransactionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FacilityTransactionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FacilityTransactionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FacilityTransactionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(facilitytransaction.Table, sqlgraph.NewFieldSpec(facilitytransaction.FieldID, field.TypeInt))
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

// FacilityTransactionDeleteOne is the builder for deleting a single FacilityTransaction entity.
type FacilityTransactionDeleteOne struct {
	_d *FacilityTransactionDelete
}

// Where appends a list predicates to the FacilityTransactionDelete builder.
func (_d *FacilityTransactionDeleteOne) Where(ps ...predicate.FacilityTransaction) *FacilityTransactionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FacilityTransactionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{facilitytransaction.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FacilityTransactionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
