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
	"sky-herald.io/herald/ent/gcnproperty"
	"sky-herald.io/herald/ent/predicate"
)

// GcnPropertyUpdate is the builder for updating GcnProperty entities.
type GcnPropertyUpdate struct {
	config
	hooks    []Hook
	mutation *GcnPropertyMutation
}

// Where appends a list predicates to the GcnPropertyUpdate builder.
func (_u *GcnPropertyUpdate) Where(ps ...predicate.GcnProperty) *GcnPropertyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDateobs sets the "dateobs" field.
func (_u *GcnPropertyUpdate) SetDateobs(v time.Time) *GcnPropertyUpdate {
	_u.mutation.SetDateobs(v)
	return _u
}

// SetNillableDateobs sets the "dateobs" field if the given value is not nil.
func (_u *GcnPropertyUpdate) SetNillableDateobs(v *time.Time) *GcnPropertyUpdate {
	if v != nil {
		_u.SetDateobs(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *GcnPropertyUpdate) SetData(v map[string]interface{}) *GcnPropertyUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the GcnPropertyMutation object of the builder.
func (_u *GcnPropertyUpdate) Mutation() *GcnPropertyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GcnPropertyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GcnPropertyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GcnPropertyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GcnPropertyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GcnPropertyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(gcnproperty.Table, gcnproperty.Columns, sqlgraph.NewFieldSpec(gcnproperty.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Dateobs(); ok {
		_spec.SetField(gcnproperty.FieldDateobs, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(gcnproperty.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gcnproperty.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GcnPropertyUpdateOne is the builder for updating a single GcnProperty entity.
type GcnPropertyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GcnPropertyMutation
}

// SetDateobs sets the "dateobs" field.
func (_u *GcnPropertyUpdateOne) SetDateobs(v time.Time) *GcnPropertyUpdateOne {
	_u.mutation.SetDateobs(v)
	return _u
}

// SetNillableDateobs sets the "dateobs" field if the given value is not nil.
func (_u *GcnPropertyUpdateOne) SetNillableDateobs(v *time.Time) *GcnPropertyUpdateOne {
	if v != nil {
		_u.SetDateobs(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *GcnPropertyUpdateOne) SetData(v map[string]interface{}) *GcnPropertyUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the GcnPropertyMutation object of the builder.
func (_u *GcnPropertyUpdateOne) Mutation() *GcnPropertyMutation {
	return _u.mutation
}

// Where appends a list predicates to the GcnPropertyUpdate builder.
func (_u *GcnPropertyUpdateOne) Where(ps ...predicate.GcnProperty) *GcnPropertyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GcnPropertyUpdateOne) Select(field string, fields ...string) *GcnPropertyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GcnProperty entity.
func (_u *GcnPropertyUpdateOne) Save(ctx context.Context) (*GcnProperty, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GcnPropertyUpdateOne) SaveX(ctx context.Context) *GcnProperty {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GcnPropertyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GcnPropertyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GcnPropertyUpdateOne) sqlSave(ctx context.Context) (_node *GcnProperty, err error) {
	_spec := sqlgraph.NewUpdateSpec(gcnproperty.Table, gcnproperty.Columns, sqlgraph.NewFieldSpec(gcnproperty.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GcnProperty.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gcnproperty.FieldID)
		for _, f := range fields {
			if !gcnproperty.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gcnproperty.FieldID {
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
		_spec.SetField(gcnproperty.FieldDateobs, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(gcnproperty.FieldData, field.TypeJSON, value)
	}
	_node = &GcnProperty{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gcnproperty.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
