// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/localization"
	"sky-herald.io/herald/ent/predicate"
)

// LocalizationUpdate is the builder for updating Localization entities.
type LocalizationUpdate struct {
	config
	hooks    []Hook
	mutation *LocalizationMutation
}

// Where appends a list predicates to the LocalizationUpdate builder.
func (_u *LocalizationUpdate) Where(ps ...predicate.Localization) *LocalizationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDateobs sets the "dateobs" field.
func (_u *LocalizationUpdate) SetDateobs(v time.Time) *LocalizationUpdate {
	_u.mutation.SetDateobs(v)
	return _u
}

// SetNillableDateobs sets the "dateobs" field if the given value is not nil.
func (_u *LocalizationUpdate) SetNillableDateobs(v *time.Time) *LocalizationUpdate {
	if v != nil {
		_u.SetDateobs(*v)
	}
	return _u
}

// SetLocalizationName sets the "localization_name" field.
func (_u *LocalizationUpdate) SetLocalizationName(v string) *LocalizationUpdate {
	_u.mutation.SetLocalizationName(v)
	return _u
}

// SetNillableLocalizationName sets the "localization_name" field if the given value is not nil.
func (_u *LocalizationUpdate) SetNillableLocalizationName(v *string) *LocalizationUpdate {
	if v != nil {
		_u.SetLocalizationName(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *LocalizationUpdate) SetTags(v []string) *LocalizationUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *LocalizationUpdate) AppendTags(v []string) *LocalizationUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *LocalizationUpdate) ClearTags() *LocalizationUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetProperties sets the "properties" field.
func (_u *LocalizationUpdate) SetProperties(v []map[string]interface{}) *LocalizationUpdate {
	_u.mutation.SetProperties(v)
	return _u
}

// AppendProperties appends value to the "properties" field.
func (_u *LocalizationUpdate) AppendProperties(v []map[string]interface{}) *LocalizationUpdate {
	_u.mutation.AppendProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *LocalizationUpdate) ClearProperties() *LocalizationUpdate {
	_u.mutation.ClearProperties()
	return _u
}

// Mutation returns the LocalizationMutation object of the builder.
func (_u *LocalizationUpdate) Mutation() *LocalizationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LocalizationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LocalizationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LocalizationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LocalizationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LocalizationUpdate) check() error {
	if v, ok := _u.mutation.LocalizationName(); ok {
		if err := localization.LocalizationNameValidator(v); err != nil {
			return &ValidationError{Name: "localization_name", err: fmt.Errorf(`ent: validator failed for field "Localization.localization_name": %w`, err)}
		}
	}
	return nil
}

func (_u *LocalizationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(localization.Table, localization.Columns, sqlgraph.NewFieldSpec(localization.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Dateobs(); ok {
		_spec.SetField(localization.FieldDateobs, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LocalizationName(); ok {
		_spec.SetField(localization.FieldLocalizationName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(localization.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, localization.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(localization.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(localization.FieldProperties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProperties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, localization.FieldProperties, value)
		})
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(localization.FieldProperties, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{localization.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LocalizationUpdateOne is the builder for updating a single Localization entity.
type LocalizationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LocalizationMutation
}

// SetDateobs sets the "dateobs" field.
func (_u *LocalizationUpdateOne) SetDateobs(v time.Time) *LocalizationUpdateOne {
	_u.mutation.SetDateobs(v)
	return _u
}

// SetNillableDateobs sets the "dateobs" field if the given value is not nil.
func (_u *LocalizationUpdateOne) SetNillableDateobs(v *time.Time) *LocalizationUpdateOne {
	if v != nil {
		_u.SetDateobs(*v)
	}
	return _u
}

// SetLocalizationName sets the "localization_name" field.
func (_u *LocalizationUpdateOne) SetLocalizationName(v string) *LocalizationUpdateOne {
	_u.mutation.SetLocalizationName(v)
	return _u
}

// SetNillableLocalizationName sets the "localization_name" field if the given value is not nil.
func (_u *LocalizationUpdateOne) SetNillableLocalizationName(v *string) *LocalizationUpdateOne {
	if v != nil {
		_u.SetLocalizationName(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *LocalizationUpdateOne) SetTags(v []string) *LocalizationUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *LocalizationUpdateOne) AppendTags(v []string) *LocalizationUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *LocalizationUpdateOne) ClearTags() *LocalizationUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetProperties sets the "properties" field.
func (_u *LocalizationUpdateOne) SetProperties(v []map[string]interface{}) *LocalizationUpdateOne {
	_u.mutation.SetProperties(v)
	return _u
}

// AppendProperties appends value to the "properties" field.
func (_u *LocalizationUpdateOne) AppendProperties(v []map[string]interface{}) *LocalizationUpdateOne {
	_u.mutation.AppendProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *LocalizationUpdateOne) ClearProperties() *LocalizationUpdateOne {
	_u.mutation.ClearProperties()
	return _u
}

// Mutation returns the LocalizationMutation object of the builder.
func (_u *LocalizationUpdateOne) Mutation() *LocalizationMutation {
	return _u.mutation
}

// Where appends a list predicates to the LocalizationUpdate builder.
func (_u *LocalizationUpdateOne) Where(ps ...predicate.Localization) *LocalizationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LocalizationUpdateOne) Select(field string, fields ...string) *LocalizationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Localization entity.
func (_u *LocalizationUpdateOne) Save(ctx context.Context) (*Localization, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LocalizationUpdateOne) SaveX(ctx context.Context) *Localization {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LocalizationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LocalizationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LocalizationUpdateOne) check() error {
	if v, ok := _u.mutation.LocalizationName(); ok {
		if err := localization.LocalizationNameValidator(v); err != nil {
			return &ValidationError{Name: "localization_name", err: fmt.Errorf(`ent: validator failed for field "Localization.localization_name": %w`, err)}
		}
	}
	return nil
}

func (_u *LocalizationUpdateOne) sqlSave(ctx context.Context) (_node *Localization, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(localization.Table, localization.Columns, sqlgraph.NewFieldSpec(localization.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Localization.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, localization.FieldID)
		for _, f := range fields {
			if !localization.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != localization.FieldID {
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
		_spec.SetField(localization.FieldDateobs, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LocalizationName(); ok {
		_spec.SetField(localization.FieldLocalizationName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(localization.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, localization.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(localization.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(localization.FieldProperties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProperties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, localization.FieldProperties, value)
		})
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(localization.FieldProperties, field.TypeJSON)
	}
	_node = &Localization{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{localization.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
