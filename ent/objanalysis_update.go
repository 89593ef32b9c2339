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
	"sky-herald.io/herald/ent/objanalysis"
	"sky-herald.io/herald/ent/predicate"
	"sky-herald.io/herald/ent/user"
)

// ObjAnalysisUpdate is the builder for updating ObjAnalysis entities.
type ObjAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *ObjAnalysisMutation
}

// Where appends a list predicates to the ObjAnalysisUpdate builder.
func (_u *ObjAnalysisUpdate) Where(ps ...predicate.ObjAnalysis) *ObjAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ObjAnalysisUpdate) SetUpdatedAt(v time.Time) *ObjAnalysisUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetObjID sets the "obj_id" field.
func (_u *ObjAnalysisUpdate) SetObjID(v string) *ObjAnalysisUpdate {
	_u.mutation.SetObjID(v)
	return _u
}

// SetNillableObjID sets the "obj_id" field if the given value is not nil.
func (_u *ObjAnalysisUpdate) SetNillableObjID(v *string) *ObjAnalysisUpdate {
	if v != nil {
		_u.SetObjID(*v)
	}
	return _u
}

// SetAnalysisService sets the "analysis_service" field.
func (_u *ObjAnalysisUpdate) SetAnalysisService(v string) *ObjAnalysisUpdate {
	_u.mutation.SetAnalysisService(v)
	return _u
}

// SetNillableAnalysisService sets the "analysis_service" field if the given value is not nil.
func (_u *ObjAnalysisUpdate) SetNillableAnalysisService(v *string) *ObjAnalysisUpdate {
	if v != nil {
		_u.SetAnalysisService(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ObjAnalysisUpdate) SetStatus(v string) *ObjAnalysisUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ObjAnalysisUpdate) SetNillableStatus(v *string) *ObjAnalysisUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *ObjAnalysisUpdate) SetOwnerID(id int) *ObjAnalysisUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *ObjAnalysisUpdate) SetOwner(v *User) *ObjAnalysisUpdate {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the ObjAnalysisMutation object of the builder.
func (_u *ObjAnalysisUpdate) Mutation() *ObjAnalysisMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *ObjAnalysisUpdate) ClearOwner() *ObjAnalysisUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ObjAnalysisUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObjAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ObjAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObjAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ObjAnalysisUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := objanalysis.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ObjAnalysisUpdate) check() error {
	if v, ok := _u.mutation.ObjID(); ok {
		if err := objanalysis.ObjIDValidator(v); err != nil {
			return &ValidationError{Name: "obj_id", err: fmt.Errorf(`ent: validator failed for field "ObjAnalysis.obj_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnalysisService(); ok {
		if err := objanalysis.AnalysisServiceValidator(v); err != nil {
			return &ValidationError{Name: "analysis_service", err: fmt.Errorf(`ent: validator failed for field "ObjAnalysis.analysis_service": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := objanalysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ObjAnalysis.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ObjAnalysis.owner"`)
	}
	return nil
}

func (_u *ObjAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(objanalysis.Table, objanalysis.Columns, sqlgraph.NewFieldSpec(objanalysis.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(objanalysis.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ObjID(); ok {
		_spec.SetField(objanalysis.FieldObjID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnalysisService(); ok {
		_spec.SetField(objanalysis.FieldAnalysisService, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(objanalysis.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   objanalysis.OwnerTable,
			Columns: []string{objanalysis.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   objanalysis.OwnerTable,
			Columns: []string{objanalysis.OwnerColumn},
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
			err = &NotFoundError{objanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ObjAnalysisUpdateOne is the builder for updating a single ObjAnalysis entity.
type ObjAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ObjAnalysisMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ObjAnalysisUpdateOne) SetUpdatedAt(v time.Time) *ObjAnalysisUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetObjID sets the "obj_id" field.
func (_u *ObjAnalysisUpdateOne) SetObjID(v string) *ObjAnalysisUpdateOne {
	_u.mutation.SetObjID(v)
	return _u
}

// SetNillableObjID sets the "obj_id" field if the given value is not nil.
func (_u *ObjAnalysisUpdateOne) SetNillableObjID(v *string) *ObjAnalysisUpdateOne {
	if v != nil {
		_u.SetObjID(*v)
	}
	return _u
}

// SetAnalysisService sets the "analysis_service" field.
func (_u *ObjAnalysisUpdateOne) SetAnalysisService(v string) *ObjAnalysisUpdateOne {
	_u.mutation.SetAnalysisService(v)
	return _u
}

// SetNillableAnalysisService sets the "analysis_service" field if the given value is not nil.
func (_u *ObjAnalysisUpdateOne) SetNillableAnalysisService(v *string) *ObjAnalysisUpdateOne {
	if v != nil {
		_u.SetAnalysisService(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ObjAnalysisUpdateOne) SetStatus(v string) *ObjAnalysisUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ObjAnalysisUpdateOne) SetNillableStatus(v *string) *ObjAnalysisUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *ObjAnalysisUpdateOne) SetOwnerID(id int) *ObjAnalysisUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *ObjAnalysisUpdateOne) SetOwner(v *User) *ObjAnalysisUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the ObjAnalysisMutation object of the builder.
func (_u *ObjAnalysisUpdateOne) Mutation() *ObjAnalysisMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *ObjAnalysisUpdateOne) ClearOwner() *ObjAnalysisUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// Where appends a list predicates to the ObjAnalysisUpdate builder.
func (_u *ObjAnalysisUpdateOne) Where(ps ...predicate.ObjAnalysis) *ObjAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ObjAnalysisUpdateOne) Select(field string, fields ...string) *ObjAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ObjAnalysis entity.
func (_u *ObjAnalysisUpdateOne) Save(ctx context.Context) (*ObjAnalysis, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObjAnalysisUpdateOne) SaveX(ctx context.Context) *ObjAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ObjAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObjAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ObjAnalysisUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := objanalysis.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ObjAnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.ObjID(); ok {
		if err := objanalysis.ObjIDValidator(v); err != nil {
			return &ValidationError{Name: "obj_id", err: fmt.Errorf(`ent: validator failed for field "ObjAnalysis.obj_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnalysisService(); ok {
		if err := objanalysis.AnalysisServiceValidator(v); err != nil {
			return &ValidationError{Name: "analysis_service", err: fmt.Errorf(`ent: validator failed for field "ObjAnalysis.analysis_service": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := objanalysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ObjAnalysis.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ObjAnalysis.owner"`)
	}
	return nil
}

func (_u *ObjAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *ObjAnalysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(objanalysis.Table, objanalysis.Columns, sqlgraph.NewFieldSpec(objanalysis.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ObjAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, objanalysis.FieldID)
		for _, f := range fields {
			if !objanalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != objanalysis.FieldID {
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
		_spec.SetField(objanalysis.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ObjID(); ok {
		_spec.SetField(objanalysis.FieldObjID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnalysisService(); ok {
		_spec.SetField(objanalysis.FieldAnalysisService, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(objanalysis.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   objanalysis.OwnerTable,
			Columns: []string{objanalysis.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   objanalysis.OwnerTable,
			Columns: []string{objanalysis.OwnerColumn},
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
	_node = &ObjAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{objanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
