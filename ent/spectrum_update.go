// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/predicate"
	"sky-herald.io/herald/ent/spectrum"
)

// SpectrumUpdate is the builder for updating Spectrum entities.
type SpectrumUpdate struct {
	config
	hooks    []Hook
	mutation *SpectrumMutation
}

// Where appends a list predicates to the SpectrumUpdate builder.
func (_u *SpectrumUpdate) Where(ps ...predicate.Spectrum) *SpectrumUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetObjID sets the "obj_id" field.
func (_u *SpectrumUpdate) SetObjID(v string) *SpectrumUpdate {
	_u.mutation.SetObjID(v)
	return _u
}

// SetNillableObjID sets the "obj_id" field if the given value is not nil.
func (_u *SpectrumUpdate) SetNillableObjID(v *string) *SpectrumUpdate {
	if v != nil {
		_u.SetObjID(*v)
	}
	return _u
}

// Mutation returns the SpectrumMutation object of the builder.
func (_u *SpectrumUpdate) Mutation() *SpectrumMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpectrumUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpectrumUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpectrumUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpectrumUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpectrumUpdate) check() error {
	if v, ok := _u.mutation.ObjID(); ok {
		if err := spectrum.ObjIDValidator(v); err != nil {
			return &ValidationError{Name: "obj_id", err: fmt.Errorf(`ent: validator failed for field "Spectrum.obj_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SpectrumUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(spectrum.Table, spectrum.Columns, sqlgraph.NewFieldSpec(spectrum.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ObjID(); ok {
		_spec.SetField(spectrum.FieldObjID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{spectrum.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpectrumUpdateOne is the builder for updating a single Spectrum entity.
type SpectrumUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpectrumMutation
}

// SetObjID sets the "obj_id" field.
func (_u *SpectrumUpdateOne) SetObjID(v string) *SpectrumUpdateOne {
	_u.mutation.SetObjID(v)
	return _u
}

// SetNillableObjID sets the "obj_id" field if the given value is not nil.
func (_u *SpectrumUpdateOne) SetNillableObjID(v *string) *SpectrumUpdateOne {
	if v != nil {
		_u.SetObjID(*v)
	}
	return _u
}

// Mutation returns the SpectrumMutation object of the builder.
func (_u *SpectrumUpdateOne) Mutation() *SpectrumMutation {
	return _u.mutation
}

// Where appends a list predicates to the SpectrumUpdate builder.
func (_u *SpectrumUpdateOne) Where(ps ...predicate.Spectrum) *SpectrumUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpectrumUpdateOne) Select(field string, fields ...string) *SpectrumUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Spectrum entity.
func (_u *SpectrumUpdateOne) Save(ctx context.Context) (*Spectrum, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpectrumUpdateOne) SaveX(ctx context.Context) *Spectrum {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpectrumUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpectrumUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpectrumUpdateOne) check() error {
	if v, ok := _u.mutation.ObjID(); ok {
		if err := spectrum.ObjIDValidator(v); err != nil {
			return &ValidationError{Name: "obj_id", err: fmt.Errorf(`ent: validator failed for field "Spectrum.obj_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SpectrumUpdateOne) sqlSave(ctx context.Context) (_node *Spectrum, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(spectrum.Table, spectrum.Columns, sqlgraph.NewFieldSpec(spectrum.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Spectrum.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, spectrum.FieldID)
		for _, f := range fields {
			if !spectrum.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != spectrum.FieldID {
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
	if value, ok := _u.mutation.ObjID(); ok {
		_spec.SetField(spectrum.FieldObjID, field.TypeString, value)
	}
	_node = &Spectrum{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{spectrum.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
