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
	"sky-herald.io/herald/ent/gcntag"
	"sky-herald.io/herald/ent/predicate"
)

// GcnTagUpdate is the builder for updating GcnTag entities.
type GcnTagUpdate struct {
	config
	hooks    []Hook
	mutation *GcnTagMutation
}

// Where appends a list predicates to the GcnTagUpdate builder.
func (_u *GcnTagUpdate) Where(ps ...predicate.GcnTag) *GcnTagUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDateobs sets the "dateobs" field.
func (_u *GcnTagUpdate) SetDateobs(v time.Time) *GcnTagUpdate {
	_u.mutation.SetDateobs(v)
	return _u
}

// SetNillableDateobs sets the "dateobs" field if the given value is not nil.
func (_u *GcnTagUpdate) SetNillableDateobs(v *time.Time) *GcnTagUpdate {
	if v != nil {
		_u.SetDateobs(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *GcnTagUpdate) SetText(v string) *GcnTagUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *GcnTagUpdate) SetNillableText(v *string) *GcnTagUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// Mutation returns the GcnTagMutation object of the builder.
func (_u *GcnTagUpdate) Mutation() *GcnTagMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GcnTagUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GcnTagUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GcnTagUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GcnTagUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GcnTagUpdate) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := gcntag.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "GcnTag.text": %w`, err)}
		}
	}
	return nil
}

func (_u *GcnTagUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gcntag.Table, gcntag.Columns, sqlgraph.NewFieldSpec(gcntag.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Dateobs(); ok {
		_spec.SetField(gcntag.FieldDateobs, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(gcntag.FieldText, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gcntag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GcnTagUpdateOne is the builder for updating a single GcnTag entity.
type GcnTagUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GcnTagMutation
}

// SetDateobs sets the "dateobs" field.
func (_u *GcnTagUpdateOne) SetDateobs(v time.Time) *GcnTagUpdateOne {
	_u.mutation.SetDateobs(v)
	return _u
}

// SetNillableDateobs sets the "dateobs" field if the given value is not nil.
func (_u *GcnTagUpdateOne) SetNillableDateobs(v *time.Time) *GcnTagUpdateOne {
	if v != nil {
		_u.SetDateobs(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *GcnTagUpdateOne) SetText(v string) *GcnTagUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *GcnTagUpdateOne) SetNillableText(v *string) *GcnTagUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// Mutation returns the GcnTagMutation object of the builder.
func (_u *GcnTagUpdateOne) Mutation() *GcnTagMutation {
	return _u.mutation
}

// Where appends a list predicates to the GcnTagUpdate builder.
func (_u *GcnTagUpdateOne) Where(ps ...predicate.GcnTag) *GcnTagUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GcnTagUpdateOne) Select(field string, fields ...string) *GcnTagUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GcnTag entity.
func (_u *GcnTagUpdateOne) Save(ctx context.Context) (*GcnTag, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GcnTagUpdateOne) SaveX(ctx context.Context) *GcnTag {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GcnTagUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GcnTagUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GcnTagUpdateOne) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := gcntag.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "GcnTag.text": %w`, err)}
		}
	}
	return nil
}

func (_u *GcnTagUpdateOne) sqlSave(ctx context.Context) (_node *GcnTag, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gcntag.Table, gcntag.Columns, sqlgraph.NewFieldSpec(gcntag.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GcnTag.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gcntag.FieldID)
		for _, f := range fields {
			if !gcntag.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gcntag.FieldID {
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
		_spec.SetField(gcntag.FieldDateobs, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(gcntag.FieldText, field.TypeString, value)
	}
	_node = &GcnTag{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gcntag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
