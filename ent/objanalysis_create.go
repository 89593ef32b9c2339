// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sky-herald.io/herald/ent/objanalysis"
	"sky-herald.io/herald/ent/user"
)

// ObjAnalysisCreate is the builder for creating a ObjAnalysis entity.
type ObjAnalysisCreate struct {
	config
	mutation *ObjAnalysisMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ObjAnalysisCreate) SetCreatedAt(v time.Time) *ObjAnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ObjAnalysisCreate) SetNillableCreatedAt(v *time.Time) *ObjAnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ObjAnalysisCreate) SetUpdatedAt(v time.Time) *ObjAnalysisCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ObjAnalysisCreate) SetNillableUpdatedAt(v *time.Time) *ObjAnalysisCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetObjID sets the "obj_id" field.
func (_c *ObjAnalysisCreate) SetObjID(v string) *ObjAnalysisCreate {
	_c.mutation.SetObjID(v)
	return _c
}

// SetAnalysisService sets the "analysis_service" field.
func (_c *ObjAnalysisCreate) SetAnalysisService(v string) *ObjAnalysisCreate {
	_c.mutation.SetAnalysisService(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ObjAnalysisCreate) SetStatus(v string) *ObjAnalysisCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ObjAnalysisCreate) SetNillableStatus(v *string) *ObjAnalysisCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *ObjAnalysisCreate) SetOwnerID(id int) *ObjAnalysisCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *ObjAnalysisCreate) SetOwner(v *User) *ObjAnalysisCreate {
	return _c.SetOwnerID(v.ID)
}

// Mutation returns the ObjAnalysisMutation object of the builder.
func (_c *ObjAnalysisCreate) Mutation() *ObjAnalysisMutation {
	return _c.mutation
}

// Save creates the ObjAnalysis in the database.
func (_c *ObjAnalysisCreate) Save(ctx context.Context) (*ObjAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ObjAnalysisCreate) SaveX(ctx context.Context) *ObjAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObjAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObjAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ObjAnalysisCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := objanalysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := objanalysis.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := objanalysis.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ObjAnalysisCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ObjAnalysis.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ObjAnalysis.updated_at"`)}
	}
	if _, ok := _c.mutation.ObjID(); !ok {
		return &ValidationError{Name: "obj_id", err: errors.New(`ent: missing required field "ObjAnalysis.obj_id"`)}
	}
	if v, ok := _c.mutation.ObjID(); ok {
		if err := objanalysis.ObjIDValidator(v); err != nil {
			return &ValidationError{Name: "obj_id", err: fmt.Errorf(`ent: validator failed for field "ObjAnalysis.obj_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnalysisService(); !ok {
		return &ValidationError{Name: "analysis_service", err: errors.New(`ent: missing required field "ObjAnalysis.analysis_service"`)}
	}
	if v, ok := _c.mutation.AnalysisService(); ok {
		if err := objanalysis.AnalysisServiceValidator(v); err != nil {
			return &ValidationError{Name: "analysis_service", err: fmt.Errorf(`ent: validator failed for field "ObjAnalysis.analysis_service": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ObjAnalysis.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := objanalysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ObjAnalysis.status": %w`, err)}
		}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "ObjAnalysis.owner"`)}
	}
	return nil
}

func (_c *ObjAnalysisCreate) sqlSave(ctx context.Context) (*ObjAnalysis, error) {
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

func (_c *ObjAnalysisCreate) createSpec() (*ObjAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &ObjAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(objanalysis.Table, sqlgraph.NewFieldSpec(objanalysis.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(objanalysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(objanalysis.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ObjID(); ok {
		_spec.SetField(objanalysis.FieldObjID, field.TypeString, value)
		_node.ObjID = value
	}
	if value, ok := _c.mutation.AnalysisService(); ok {
		_spec.SetField(objanalysis.FieldAnalysisService, field.TypeString, value)
		_node.AnalysisService = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(objanalysis.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_node.obj_analysis_owner = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ObjAnalysisCreateBulk is the builder for creating many ObjAnalysis entities in bulk.
type ObjAnalysisCreateBulk struct {
	config
	err      error
	builders []*ObjAnalysisCreate
}

// Save creates the ObjAnalysis entities in the database.
func (_c *ObjAnalysisCreateBulk) Save(ctx context.Context) ([]*ObjAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ObjAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ObjAnalysisMutation)
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
func (_c *ObjAnalysisCreateBulk) SaveX(ctx context.Context) []*ObjAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObjAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObjAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
