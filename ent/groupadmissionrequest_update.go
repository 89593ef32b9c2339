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
	"sky-herald.io/herald/ent/group"
	"sky-herald.io/herald/ent/groupadmissionrequest"
	"sky-herald.io/herald/ent/predicate"
	"sky-herald.io/herald/ent/user"
)

// GroupAdmissionRequestUpdate is the builder for updating GroupAdmissionRequest entities.
type GroupAdmissionRequestUpdate struct {
	config
	hooks    []Hook
	mutation *GroupAdmissionRequestMutation
}

// Where appends a list predicates to the GroupAdmissionRequestUpdate builder.
func (_u *GroupAdmissionRequestUpdate) Where(ps ...predicate.GroupAdmissionRequest) *GroupAdmissionRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GroupAdmissionRequestUpdate) SetUpdatedAt(v time.Time) *GroupAdmissionRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *GroupAdmissionRequestUpdate) SetStatus(v string) *GroupAdmissionRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GroupAdmissionRequestUpdate) SetNillableStatus(v *string) *GroupAdmissionRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGroupID sets the "group" edge to the Group entity by ID.
func (_u *GroupAdmissionRequestUpdate) SetGroupID(id int) *GroupAdmissionRequestUpdate {
	_u.mutation.SetGroupID(id)
	return _u
}

// SetGroup sets the "group" edge to the Group entity.
func (_u *GroupAdmissionRequestUpdate) SetGroup(v *Group) *GroupAdmissionRequestUpdate {
	return _u.SetGroupID(v.ID)
}

// SetApplicantID sets the "applicant" edge to the User entity by ID.
func (_u *GroupAdmissionRequestUpdate) SetApplicantID(id int) *GroupAdmissionRequestUpdate {
	_u.mutation.SetApplicantID(id)
	return _u
}

// SetApplicant sets the "applicant" edge to the User entity.
func (_u *GroupAdmissionRequestUpdate) SetApplicant(v *User) *GroupAdmissionRequestUpdate {
	return _u.SetApplicantID(v.ID)
}

// Mutation returns the GroupAdmissionRequestMutation object of the builder.
func (_u *GroupAdmissionRequestUpdate) Mutation() *GroupAdmissionRequestMutation {
	return _u.mutation
}

// ClearGroup clears the "group" edge to the Group entity.
func (_u *GroupAdmissionRequestUpdate) ClearGroup() *GroupAdmissionRequestUpdate {
	_u.mutation.ClearGroup()
	return _u
}

// ClearApplicant clears the "applicant" edge to the User entity.
func (_u *GroupAdmissionRequestUpdate) ClearApplicant() *GroupAdmissionRequestUpdate {
	_u.mutation.ClearApplicant()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GroupAdmissionRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupAdmissionRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GroupAdmissionRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupAdmissionRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GroupAdmissionRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := groupadmissionrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GroupAdmissionRequestUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := groupadmissionrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GroupAdmissionRequest.status": %w`, err)}
		}
	}
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GroupAdmissionRequest.group"`)
	}
	if _u.mutation.ApplicantCleared() && len(_u.mutation.ApplicantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GroupAdmissionRequest.applicant"`)
	}
	return nil
}

func (_u *GroupAdmissionRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(groupadmissionrequest.Table, groupadmissionrequest.Columns, sqlgraph.NewFieldSpec(groupadmissionrequest.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(groupadmissionrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(groupadmissionrequest.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.GroupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   groupadmissionrequest.GroupTable,
			Columns: []string{groupadmissionrequest.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   groupadmissionrequest.GroupTable,
			Columns: []string{groupadmissionrequest.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApplicantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   groupadmissionrequest.ApplicantTable,
			Columns: []string{groupadmissionrequest.ApplicantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   groupadmissionrequest.ApplicantTable,
			Columns: []string{groupadmissionrequest.ApplicantColumn},
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
			err = &NotFoundError{groupadmissionrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GroupAdmissionRequestUpdateOne is the builder for updating a single GroupAdmissionRequest entity.
type GroupAdmissionRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GroupAdmissionRequestMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GroupAdmissionRequestUpdateOne) SetUpdatedAt(v time.Time) *GroupAdmissionRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *GroupAdmissionRequestUpdateOne) SetStatus(v string) *GroupAdmissionRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GroupAdmissionRequestUpdateOne) SetNillableStatus(v *string) *GroupAdmissionRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGroupID sets the "group" edge to the Group entity by ID.
func (_u *GroupAdmissionRequestUpdateOne) SetGroupID(id int) *GroupAdmissionRequestUpdateOne {
	_u.mutation.SetGroupID(id)
	return _u
}

// SetGroup sets the "group" edge to the Group entity.
func (_u *GroupAdmissionRequestUpdateOne) SetGroup(v *Group) *GroupAdmissionRequestUpdateOne {
	return _u.SetGroupID(v.ID)
}

// SetApplicantID sets the "applicant" edge to the User entity by ID.
func (_u *GroupAdmissionRequestUpdateOne) SetApplicantID(id int) *GroupAdmissionRequestUpdateOne {
	_u.mutation.SetApplicantID(id)
	return _u
}

// SetApplicant sets the "applicant" edge to the User entity.
func (_u *GroupAdmissionRequestUpdateOne) SetApplicant(v *User) *GroupAdmissionRequestUpdateOne {
	return _u.SetApplicantID(v.ID)
}

// Mutation returns the GroupAdmissionRequestMutation object of the builder.
func (_u *GroupAdmissionRequestUpdateOne) Mutation() *GroupAdmissionRequestMutation {
	return _u.mutation
}

// ClearGroup clears the "group" edge to the Group entity.
func (_u *GroupAdmissionRequestUpdateOne) ClearGroup() *GroupAdmissionRequestUpdateOne {
	_u.mutation.ClearGroup()
	return _u
}

// ClearApplicant clears the "applicant" edge to the User entity.
func (_u *GroupAdmissionRequestUpdateOne) ClearApplicant() *GroupAdmissionRequestUpdateOne {
	_u.mutation.ClearApplicant()
	return _u
}

// Where appends a list predicates to the GroupAdmissionRequestUpdate builder.
func (_u *GroupAdmissionRequestUpdateOne) Where(ps ...predicate.GroupAdmissionRequest) *GroupAdmissionRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GroupAdmissionRequestUpdateOne) Select(field string, fields ...string) *GroupAdmissionRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GroupAdmissionRequest entity.
func (_u *GroupAdmissionRequestUpdateOne) Save(ctx context.Context) (*GroupAdmissionRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupAdmissionRequestUpdateOne) SaveX(ctx context.Context) *GroupAdmissionRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GroupAdmissionRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupAdmissionRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GroupAdmissionRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := groupadmissionrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GroupAdmissionRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := groupadmissionrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GroupAdmissionRequest.status": %w`, err)}
		}
	}
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GroupAdmissionRequest.group"`)
	}
	if _u.mutation.ApplicantCleared() && len(_u.mutation.ApplicantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GroupAdmissionRequest.applicant"`)
	}
	return nil
}

func (_u *GroupAdmissionRequestUpdateOne) sqlSave(ctx context.Context) (_node *GroupAdmissionRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(groupadmissionrequest.Table, groupadmissionrequest.Columns, sqlgraph.NewFieldSpec(groupadmissionrequest.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GroupAdmissionRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, groupadmissionrequest.FieldID)
		for _, f := range fields {
			if !groupadmissionrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != groupadmissionrequest.FieldID {
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
		_spec.SetField(groupadmissionrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(groupadmissionrequest.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.GroupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   groupadmissionrequest.GroupTable,
			Columns: []string{groupadmissionrequest.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   groupadmissionrequest.GroupTable,
			Columns: []string{groupadmissionrequest.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApplicantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   groupadmissionrequest.ApplicantTable,
			Columns: []string{groupadmissionrequest.ApplicantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   groupadmissionrequest.ApplicantTable,
			Columns: []string{groupadmissionrequest.ApplicantColumn},
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
	_node = &GroupAdmissionRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{groupadmissionrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
