// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/gcnnotice"
	"sky-herald.io/herald/ent/predicate"
)

// GcnNoticeUpdate is the builder for updating GcnNotice entities.
type GcnNoticeUpdate struct {
	config
	hooks    []Hook
	mutation *GcnNoticeMutation
}

// Where appends a list predicates to the GcnNoticeUpdate builder.
func (_u *GcnNoticeUpdate) Where(ps ...predicate.GcnNotice) *GcnNoticeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDateobs sets the "dateobs" field.
func (_u *GcnNoticeUpdate) SetDateobs(v time.Time) *GcnNoticeUpdate {
	_u.mutation.SetDateobs(v)
	return _u
}

// SetNillableDateobs sets the "dateobs" field if the given value is not nil.
func (_u *GcnNoticeUpdate) SetNillableDateobs(v *time.Time) *GcnNoticeUpdate {
	if v != nil {
		_u.SetDateobs(*v)
	}
	return _u
}

// SetNoticeType sets the "notice_type" field.
func (_u *GcnNoticeUpdate) SetNoticeType(v string) *GcnNoticeUpdate {
	_u.mutation.SetNoticeType(v)
	return _u
}

// SetNillableNoticeType sets the "notice_type" field if the given value is not nil.
func (_u *GcnNoticeUpdate) SetNillableNoticeType(v *string) *GcnNoticeUpdate {
	if v != nil {
		_u.SetNoticeType(*v)
	}
	return _u
}

// ClearNoticeType clears the value of the "notice_type" field.
func (_u *GcnNoticeUpdate) ClearNoticeType() *GcnNoticeUpdate {
	_u.mutation.ClearNoticeType()
	return _u
}

// Mutation returns the GcnNoticeMutation object of the builder.
func (_u *GcnNoticeUpdate) Mutation() *GcnNoticeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GcnNoticeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GcnNoticeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GcnNoticeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GcnNoticeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GcnNoticeUpdate) check() error {
	if v, ok := _u.mutation.NoticeType(); ok {
		if err := gcnnotice.NoticeTypeValidator(v); err != nil {
			return &ValidationError{Name: "notice_type", err: fmt.Errorf(`ent: validator failed for field "GcnNotice.notice_type": %w`, err)}
		}
	}
	return nil
}

func (_u *GcnNoticeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gcnnotice.Table, gcnnotice.Columns, sqlgraph.NewFieldSpec(gcnnotice.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Dateobs(); ok {
		_spec.SetField(gcnnotice.FieldDateobs, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NoticeType(); ok {
		_spec.SetField(gcnnotice.FieldNoticeType, field.TypeString, value)
	}
	if _u.mutation.NoticeTypeCleared() {
		_spec.ClearField(gcnnotice.FieldNoticeType, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gcnnotice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GcnNoticeUpdateOne is the builder for updating a single GcnNotice entity.
type GcnNoticeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GcnNoticeMutation
}

// SetDateobs sets the "dateobs" field.
func (_u *GcnNoticeUpdateOne) SetDateobs(v time.Time) *GcnNoticeUpdateOne {
	_u.mutation.SetDateobs(v)
	return _u
}

// SetNillableDateobs sets the "dateobs" field if the given value is not nil.
func (_u *GcnNoticeUpdateOne) SetNillableDateobs(v *time.Time) *GcnNoticeUpdateOne {
	if v != nil {
		_u.SetDateobs(*v)
	}
	return _u
}

// SetNoticeType sets the "notice_type" field.
func (_u *GcnNoticeUpdateOne) SetNoticeType(v string) *GcnNoticeUpdateOne {
	_u.mutation.SetNoticeType(v)
	return _u
}

// SetNillableNoticeType sets the "notice_type" field if the given value is not nil.
func (_u *GcnNoticeUpdateOne) SetNillableNoticeType(v *string) *GcnNoticeUpdateOne {
	if v != nil {
		_u.SetNoticeType(*v)
	}
	return _u
}

// ClearNoticeType clears the value of the "notice_type" field.
func (_u *GcnNoticeUpdateOne) ClearNoticeType() *GcnNoticeUpdateOne {
	_u.mutation.ClearNoticeType()
	return _u
}

// Mutation returns the GcnNoticeMutation object of the builder.
func (_u *GcnNoticeUpdateOne) Mutation() *GcnNoticeMutation {
	return _u.mutation
}

// Where appends a list predicates to the GcnNoticeUpdate builder.
func (_u *GcnNoticeUpdateOne) Where(ps ...predicate.GcnNotice) *GcnNoticeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GcnNoticeUpdateOne) Select(field string, fields ...string) *GcnNoticeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GcnNotice entity.
func (_u *GcnNoticeUpdateOne) Save(ctx context.Context) (*GcnNotice, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GcnNoticeUpdateOne) SaveX(ctx context.Context) *GcnNotice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GcnNoticeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GcnNoticeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GcnNoticeUpdateOne) check() error {
	if v, ok := _u.mutation.NoticeType(); ok {
		if err := gcnnotice.NoticeTypeValidator(v); err != nil {
			return &ValidationError{Name: "notice_type", err: fmt.Errorf(`ent: validator failed for field "GcnNotice.notice_type": %w`, err)}
		}
	}
	return nil
}

func (_u *GcnNoticeUpdateOne) sqlSave(ctx context.Context) (_node *GcnNotice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gcnnotice.Table, gcnnotice.Columns, sqlgraph.NewFieldSpec(gcnnotice.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GcnNotice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gcnnotice.FieldID)
		for _, f := range fields {
			if !gcnnotice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gcnnotice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Dateobs(); ok {
		_spec.SetField(gcnnotice.FieldDateobs, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NoticeType(); ok {
		_spec.SetField(gcnnotice.FieldNoticeType, field.TypeString, value)
	}
	if _u.mutation.NoticeTypeCleared() {
		_spec.ClearField(gcnnotice.FieldNoticeType, field.TypeString)
	}
	_node = &GcnNotice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gcnnotice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
