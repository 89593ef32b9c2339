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
	"sky-herald.io/herald/ent/listing"
	"sky-herald.io/herald/ent/predicate"
	"sky-herald.io/herald/ent/user"
)

// ListingUpdate is the builder for updating Listing entities.
type ListingUpdate struct {
	config
	hooks    []Hook
	mutation *ListingMutation
}

// Where appends a list predicates to the ListingUpdate builder.
func (_u *ListingUpdate) Where(ps ...predicate.Listing) *ListingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ListingUpdate) SetUpdatedAt(v time.Time) *ListingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetObjID sets the "obj_id" field.
func (_u *ListingUpdate) SetObjID(v string) *ListingUpdate {
	_u.mutation.SetObjID(v)
	return _u
}

// SetNillableObjID sets the "obj_id" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableObjID(v *string) *ListingUpdate {
	if v != nil {
		_u.SetObjID(*v)
	}
	return _u
}

// SetListName sets the "list_name" field.
func (_u *ListingUpdate) SetListName(v string) *ListingUpdate {
	_u.mutation.SetListName(v)
	return _u
}

// SetNillableListName sets the "list_name" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableListName(v *string) *ListingUpdate {
	if v != nil {
		_u.SetListName(*v)
	}
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *ListingUpdate) SetUserID(id int) *ListingUpdate {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ListingUpdate) SetUser(v *User) *ListingUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the ListingMutation object of the builder.
func (_u *ListingUpdate) Mutation() *ListingMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ListingUpdate) ClearUser() *ListingUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ListingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ListingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ListingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := listing.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListingUpdate) check() error {
	if v, ok := _u.mutation.ObjID(); ok {
		if err := listing.ObjIDValidator(v); err != nil {
			return &ValidationError{Name: "obj_id", err: fmt.Errorf(`ent: validator failed for field "Listing.obj_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ListName(); ok {
		if err := listing.ListNameValidator(v); err != nil {
			return &ValidationError{Name: "list_name", err: fmt.Errorf(`ent: validator failed for field "Listing.list_name": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Listing.user"`)
	}
	return nil
}

func (_u *ListingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listing.Table, listing.Columns, sqlgraph.NewFieldSpec(listing.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(listing.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ObjID(); ok {
		_spec.SetField(listing.FieldObjID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ListName(); ok {
		_spec.SetField(listing.FieldListName, field.TypeString, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   listing.UserTable,
			Columns: []string{listing.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   listing.UserTable,
			Columns: []string{listing.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ListingUpdateOne is the builder for updating a single Listing entity.
type ListingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ListingMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ListingUpdateOne) SetUpdatedAt(v time.Time) *ListingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetObjID sets the "obj_id" field.
func (_u *ListingUpdateOne) SetObjID(v string) *ListingUpdateOne {
	_u.mutation.SetObjID(v)
	return _u
}

// SetNillableObjID sets the "obj_id" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableObjID(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetObjID(*v)
	}
	return _u
}

// SetListName sets the "list_name" field.
func (_u *ListingUpdateOne) SetListName(v string) *ListingUpdateOne {
	_u.mutation.SetListName(v)
	return _u
}

// SetNillableListName sets the "list_name" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableListName(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetListName(*v)
	}
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *ListingUpdateOne) SetUserID(id int) *ListingUpdateOne {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ListingUpdateOne) SetUser(v *User) *ListingUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the ListingMutation object of the builder.
func (_u *ListingUpdateOne) Mutation() *ListingMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ListingUpdateOne) ClearUser() *ListingUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the ListingUpdate builder.
func (_u *ListingUpdateOne) Where(ps ...predicate.Listing) *ListingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ListingUpdateOne) Select(field string, fields ...string) *ListingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Listing entity.
func (_u *ListingUpdateOne) Save(ctx context.Context) (*Listing, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListingUpdateOne) SaveX(ctx context.Context) *Listing {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ListingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ListingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := listing.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListingUpdateOne) check() error {
	if v, ok := _u.mutation.ObjID(); ok {
		if err := listing.ObjIDValidator(v); err != nil {
			return &ValidationError{Name: "obj_id", err: fmt.Errorf(`ent: validator failed for field "Listing.obj_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ListName(); ok {
		if err := listing.ListNameValidator(v); err != nil {
			return &ValidationError{Name: "list_name", err: fmt.Errorf(`ent: validator failed for field "Listing.list_name": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Listing.user"`)
	}
	return nil
}

func (_u *ListingUpdateOne) sqlSave(ctx context.Context) (_node *Listing, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listing.Table, listing.Columns, sqlgraph.NewFieldSpec(listing.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Listing.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, listing.FieldID)
		for _, f := range fields {
			if !listing.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != listing.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(listing.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ObjID(); ok {
		_spec.SetField(listing.FieldObjID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ListName(); ok {
		_spec.SetField(listing.FieldListName, field.TypeString, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   listing.UserTable,
			Columns: []string{listing.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   listing.UserTable,
			Columns: []string{listing.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Listing{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
