// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/group"
	"sky-herald.io/herald/ent/groupadmissionrequest"
	"sky-herald.io/herald/ent/user"
)

// GroupAdmissionRequestCreate is the builder for creating a GroupAdmissionRequest entity.
type GroupAdmissionRequestCreate struct {
	config
	mutation *GroupAdmissionRequestMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *GroupAdmissionRequestCreate) SetCreatedAt(v time.Time) *GroupAdmissionRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GroupAdmissionRequestCreate) SetNillableCreatedAt(v *time.Time) *GroupAdmissionRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GroupAdmissionRequestCreate) SetUpdatedAt(v time.Time) *GroupAdmissionRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GroupAdmissionRequestCreate) SetNillableUpdatedAt(v *time.Time) *GroupAdmissionRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *GroupAdmissionRequestCreate) SetStatus(v string) *GroupAdmissionRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GroupAdmissionRequestCreate) SetNillableStatus(v *string) *GroupAdmissionRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetGroupID sets the "group" edge to the Group entity by ID.
func (_c *GroupAdmissionRequestCreate) SetGroupID(id int) *GroupAdmissionRequestCreate {
	_c.mutation.SetGroupID(id)
	return _c
}

// SetGroup sets the "group" edge to the Group entity.
func (_c *GroupAdmissionRequestCreate) SetGroup(v *Group) *GroupAdmissionRequestCreate {
	return _c.SetGroupID(v.ID)
}

// SetApplicantID sets the "applicant" edge to the User entity by ID.
func (_c *GroupAdmissionRequestCreate) SetApplicantID(id int) *GroupAdmissionRequestCreate {
	_c.mutation.SetApplicantID(id)
	return _c
}

// SetApplicant sets the "applicant" edge to the User entity.
func (_c *GroupAdmissionRequestCreate) SetApplicant(v *User) *GroupAdmissionRequestCreate {
	return _c.SetApplicantID(v.ID)
}

// Mutation returns the GroupAdmissionRequestMutation object of the builder.
func (_c *GroupAdmissionRequestCreate) Mutation() *GroupAdmissionRequestMutation {
	return _c.mutation
}

// Save creates the GroupAdmissionRequest in the database.
func (_c *GroupAdmissionRequestCreate) Save(ctx context.Context) (*GroupAdmissionRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GroupAdmissionRequestCreate) SaveX(ctx context.Context) *GroupAdmissionRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupAdmissionRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupAdmissionRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GroupAdmissionRequestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := groupadmissionrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := groupadmissionrequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := groupadmissionrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GroupAdmissionRequestCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GroupAdmissionRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GroupAdmissionRequest.updated_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GroupAdmissionRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := groupadmissionrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GroupAdmissionRequest.status": %w`, err)}
		}
	}
	if len(_c.mutation.GroupIDs()) == 0 {
		return &ValidationError{Name: "group", err: errors.New(`ent: missing required edge "GroupAdmissionRequest.group"`)}
	}
	if len(_c.mutation.ApplicantIDs()) == 0 {
		return &ValidationError{Name: "applicant", err: errors.New(`ent: missing required edge "GroupAdmissionRequest.applicant"`)}
	}
	return nil
}

func (_c *GroupAdmissionRequestCreate) sqlSave(ctx context.Context) (*GroupAdmissionRequest, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GroupAdmissionRequestCreate) createSpec() (*GroupAdmissionRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &GroupAdmissionRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(groupadmissionrequest.Table, sqlgraph.NewFieldSpec(groupadmissionrequest.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(groupadmissionrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(groupadmissionrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(groupadmissionrequest.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if nodes := _c.mutation.GroupIDs(); len(nodes) > 0 {
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
		_node.group_admission_request_group = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ApplicantIDs(); len(nodes) > 0 {
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
		_node.group_admission_request_applicant = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GroupAdmissionRequestCreateBulk is the builder for creating many GroupAdmissionRequest entities in bulk.
type GroupAdmissionRequestCreateBulk struct {
	config
	err      error
	builders []*GroupAdmissionRequestCreate
}

// Save creates the GroupAdmissionRequest entities in the database.
func (_c *GroupAdmissionRequestCreateBulk) Save(ctx context.Context) ([]*GroupAdmissionRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GroupAdmissionRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GroupAdmissionRequestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GroupAdmissionRequestCreateBulk) SaveX(ctx context.Context) []*GroupAdmissionRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupAdmissionRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupAdmissionRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
