// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/facilitytransaction"
	"sky-herald.io/herald/ent/followuprequest"
	"sky-herald.io/herald/ent/predicate"
)

// FacilityTransactionUpdate is the builder for updating FacilityTransaction entities.
type FacilityTransactionUpdate struct {
	config
	hooks    []Hook
	mutation *FacilityTransactionMutation
}

// Where appends a list predicates to the FacilityTransactionUpdate builder.
func (_u *FacilityTransactionUpdate) Where(ps ...predicate.FacilityTransaction) *FacilityTransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInitiator sets the "initiator" field.
func (_u *FacilityTransactionUpdate) SetInitiator(v string) *FacilityTransactionUpdate {
	_u.mutation.SetInitiator(v)
	return _u
}

// SetNillableInitiator sets the "initiator" field if the given value is not nil.
func (_u *FacilityTransactionUpdate) SetNillableInitiator(v *string) *FacilityTransactionUpdate {
	if v != nil {
		_u.SetInitiator(*v)
	}
	return _u
}

// ClearInitiator clears the value of the "initiator" field.
func (_u *FacilityTransactionUpdate) ClearInitiator() *FacilityTransactionUpdate {
	_u.mutation.ClearInitiator()
	return _u
}

// SetFollowupRequestID sets the "followup_request" edge to the FollowupRequest entity by ID.
func (_u *FacilityTransactionUpdate) SetFollowupRequestID(id int) *FacilityTransactionUpdate {
	_u.mutation.SetFollowupRequestID(id)
	return _u
}

// SetFollowupRequest sets the "followup_request" edge to the FollowupRequest entity.
func (_u *FacilityTransactionUpdate) SetFollowupRequest(v *FollowupRequest) *FacilityTransactionUpdate {
	return _u.SetFollowupRequestID(v.ID)
}

// Mutation returns the FacilityTransactionMutation object of the builder.
func (_u *FacilityTransactionUpdate) Mutation() *FacilityTransactionMutation {
	return _u.mutation
}

// ClearFollowupRequest clears the "followup_request" edge to the FollowupRequest entity.
func (_u *FacilityTransactionUpdate) ClearFollowupRequest() *FacilityTransactionUpdate {
	_u.mutation.ClearFollowupRequest()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FacilityTransactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FacilityTransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FacilityTransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FacilityTransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FacilityTransactionUpdate) check() error {
	if v, ok := _u.mutation.Initiator(); ok {
		if err := facilitytransaction.InitiatorValidator(v); err != nil {
			return &ValidationError{Name: "initiator", err: fmt.Errorf(`ent: validator failed for field "FacilityTransaction.initiator": %w`, err)}
		}
	}
	if _u.mutation.FollowupRequestCleared() && len(_u.mutation.FollowupRequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FacilityTransaction.followup_request"`)
	}
	return nil
}

func (_u *FacilityTransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(facilitytransaction.Table, facilitytransaction.Columns, sqlgraph.NewFieldSpec(facilitytransaction.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Initiator(); ok {
		_spec.SetField(facilitytransaction.FieldInitiator, field.TypeString, value)
	}
	if _u.mutation.InitiatorCleared() {
		_spec.ClearField(facilitytransaction.FieldInitiator, field.TypeString)
	}
	if _u.mutation.FollowupRequestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   facilitytransaction.FollowupRequestTable,
			Columns: []string{facilitytransaction.FollowupRequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(followuprequest.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FollowupRequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   facilitytransaction.FollowupRequestTable,
			Columns: []string{facilitytransaction.FollowupRequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(followuprequest.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{facilitytransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FacilityTransactionUpdateOne is the builder for updating a single FacilityTransaction entity.
type FacilityTransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FacilityTransactionMutation
}

// SetInitiator sets the "initiator" field.
func (_u *FacilityTransactionUpdateOne) SetInitiator(v string) *FacilityTransactionUpdateOne {
	_u.mutation.SetInitiator(v)
	return _u
}

// SetNillableInitiator sets the "initiator" field if the given value is not nil.
func (_u *FacilityTransactionUpdateOne) SetNillableInitiator(v *string) *FacilityTransactionUpdateOne {
	if v != nil {
		_u.SetInitiator(*v)
	}
	return _u
}

// ClearInitiator clears the value of the "initiator" field.
func (_u *FacilityTransactionUpdateOne) ClearInitiator() *FacilityTransactionUpdateOne {
	_u.mutation.ClearInitiator()
	return _u
}

// SetFollowupRequestID sets the "followup_request" edge to the FollowupRequest entity by ID.
func (_u *FacilityTransactionUpdateOne) SetFollowupRequestID(id int) *FacilityTransactionUpdateOne {
	_u.mutation.SetFollowupRequestID(id)
	return _u
}

// SetFollowupRequest sets the "followup_request" edge to the FollowupRequest entity.
func (_u *FacilityTransactionUpdateOne) SetFollowupRequest(v *FollowupRequest) *FacilityTransactionUpdateOne {
	return _u.SetFollowupRequestID(v.ID)
}

// Mutation returns the FacilityTransactionMutation object of the builder.
func (_u *FacilityTransactionUpdateOne) Mutation() *FacilityTransactionMutation {
	return _u.mutation
}

// ClearFollowupRequest clears the "followup_request" edge to the FollowupRequest entity.
func (_u *FacilityTransactionUpdateOne) ClearFollowupRequest() *FacilityTransactionUpdateOne {
	_u.mutation.ClearFollowupRequest()
	return _u
}

// Where appends a list predicates to the FacilityTransactionUpdate builder.
func (_u *FacilityTransactionUpdateOne) Where(ps ...predicate.FacilityTransaction) *FacilityTransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FacilityTransactionUpdateOne) Select(field string, fields ...string) *FacilityTransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FacilityTransaction entity.
func (_u *FacilityTransactionUpdateOne) Save(ctx context.Context) (*FacilityTransaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FacilityTransactionUpdateOne) SaveX(ctx context.Context) *FacilityTransaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FacilityTransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FacilityTransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FacilityTransactionUpdateOne) check() error {
	if v, ok := _u.mutation.Initiator(); ok {
		if err := facilitytransaction.InitiatorValidator(v); err != nil {
			return &ValidationError{Name: "initiator", err: fmt.Errorf(`ent: validator failed for field "FacilityTransaction.initiator": %w`, err)}
		}
	}
	if _u.mutation.FollowupRequestCleared() && len(_u.mutation.FollowupRequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FacilityTransaction.followup_request"`)
	}
	return nil
}

func (_u *FacilityTransactionUpdateOne) sqlSave(ctx context.Context) (_node *FacilityTransaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(facilitytransaction.Table, facilitytransaction.Columns, sqlgraph.NewFieldSpec(facilitytransaction.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FacilityTransaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, facilitytransaction.FieldID)
		for _, f := range fields {
			if !facilitytransaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != facilitytransaction.FieldID {
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
	if value, ok := _u.mutation.Initiator(); ok {
		_spec.SetField(facilitytransaction.FieldInitiator, field.TypeString, value)
	}
	if _u.mutation.InitiatorCleared() {
		_spec.ClearField(facilitytransaction.FieldInitiator, field.TypeString)
	}
	if _u.mutation.FollowupRequestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   facilitytransaction.FollowupRequestTable,
			Columns: []string{facilitytransaction.FollowupRequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(followuprequest.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FollowupRequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   facilitytransaction.FollowupRequestTable,
			Columns: []string{facilitytransaction.FollowupRequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(followuprequest.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FacilityTransaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{facilitytransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
