// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/classification"
	"sky-herald.io/herald/ent/predicate"
)

// ClassificationUpdate is the builder for updating Classification entities.
type ClassificationUpdate struct {
	config
	hooks    []Hook
	mutation *ClassificationMutation
}

// Where appends a list predicates to the ClassificationUpdate builder.
func (_u *ClassificationUpdate) Where(ps ...predicate.Classification) *ClassificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetObjID sets the "obj_id" field.
func (_u *ClassificationUpdate) SetObjID(v string) *ClassificationUpdate {
	_u.mutation.SetObjID(v)
	return _u
}

// SetNillableObjID sets the "obj_id" field if the given value is not nil.
func (_u *ClassificationUpdate) SetNillableObjID(v *string) *ClassificationUpdate {
	if v != nil {
		_u.SetObjID(*v)
	}
	return _u
}

// SetClassification sets the "classification" field.
func (_u *ClassificationUpdate) SetClassification(v string) *ClassificationUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *ClassificationUpdate) SetNillableClassification(v *string) *ClassificationUpdate {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// Mutation returns the ClassificationMutation object of the builder.
func (_u *ClassificationUpdate) Mutation() *ClassificationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClassificationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClassificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClassificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClassificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClassificationUpdate) check() error {
	if v, ok := _u.mutation.ObjID(); ok {
		if err := classification.ObjIDValidator(v); err != nil {
			return &ValidationError{Name: "obj_id", err: fmt.Errorf(`ent: validator failed for field "Classification.obj_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := classification.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "Classification.classification": %w`, err)}
		}
	}
	return nil
}

func (_u *ClassificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(classification.Table, classification.Columns, sqlgraph.NewFieldSpec(classification.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ObjID(); ok {
		_spec.SetField(classification.FieldObjID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(classification.FieldClassification, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{classification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClassificationUpdateOne is the builder for updating a single Classification entity.
type ClassificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClassificationMutation
}

// SetObjID sets the "obj_id" field.
func (_u *ClassificationUpdateOne) SetObjID(v string) *ClassificationUpdateOne {
	_u.mutation.SetObjID(v)
	return _u
}

// SetNillableObjID sets the "obj_id" field if the given value is not nil.
func (_u *ClassificationUpdateOne) SetNillableObjID(v *string) *ClassificationUpdateOne {
	if v != nil {
		_u.SetObjID(*v)
	}
	return _u
}

// SetClassification sets the "classification" field.
func (_u *ClassificationUpdateOne) SetClassification(v string) *ClassificationUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *ClassificationUpdateOne) SetNillableClassification(v *string) *ClassificationUpdateOne {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// Mutation returns the ClassificationMutation object of the builder.
func (_u *ClassificationUpdateOne) Mutation() *ClassificationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClassificationUpdate builder.
func (_u *ClassificationUpdateOne) Where(ps ...predicate.Classification) *ClassificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClassificationUpdateOne) Select(field string, fields ...string) *ClassificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Classification entity.
func (_u *ClassificationUpdateOne) Save(ctx context.Context) (*Classification, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClassificationUpdateOne) SaveX(ctx context.Context) *Classification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClassificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClassificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClassificationUpdateOne) check() error {
	if v, ok := _u.mutation.ObjID(); ok {
		if err := classification.ObjIDValidator(v); err != nil {
			return &ValidationError{Name: "obj_id", err: fmt.Errorf(`ent: validator failed for field "Classification.obj_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := classification.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "Classification.classification": %w`, err)}
		}
	}
	return nil
}

func (_u *ClassificationUpdateOne) sqlSave(ctx context.Context) (_node *Classification, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(classification.Table, classification.Columns, sqlgraph.NewFieldSpec(classification.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Classification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, classification.FieldID)
		for _, f := range fields {
			if !classification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != classification.FieldID {
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
		_spec.SetField(classification.FieldObjID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(classification.FieldClassification, field.TypeString, value)
	}
	_node = &Classification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{classification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
