// Code generated by ent, DO NOT EDIT.

package listing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"sky-herald.io/herald/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldUpdatedAt, v))
}

// ObjID applies equality check predicate on the "obj_id" field. It's identical to ObjIDEQ.
func ObjID(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldObjID, v))
}

// ListName applies equality check predicate on the "list_name" field. It's identical to ListNameEQ.
func ListName(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldListName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldUpdatedAt, v))
}

// ObjIDEQ applies the EQ predicate on the "obj_id" field.
func ObjIDEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldObjID, v))
}

// ObjIDNEQ applies the NEQ predicate on the "obj_id" field.
func ObjIDNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldObjID, v))
}

// ObjIDIn applies the In predicate on the "obj_id" field.
func ObjIDIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldObjID, vs...))
}

// ObjIDNotIn applies the NotIn predicate on the "obj_id" field.
func ObjIDNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldObjID, vs...))
}

// ObjIDGT applies the GT predicate on the "obj_id" field.
func ObjIDGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldObjID, v))
}

// ObjIDGTE applies the GTE predicate on the "obj_id" field.
func ObjIDGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldObjID, v))
}

// ObjIDLT applies the LT predicate on the "obj_id" field.
func ObjIDLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldObjID, v))
}

// ObjIDLTE applies the LTE predicate on the "obj_id" field.
func ObjIDLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldObjID, v))
}

// ObjIDContains applies the Contains predicate on the "obj_id" field.
func ObjIDContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldObjID, v))
}

// ObjIDHasPrefix applies the HasPrefix predicate on the "obj_id" field.
func ObjIDHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldObjID, v))
}

// ObjIDHasSuffix applies the HasSuffix predicate on the "obj_id" field.
func ObjIDHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldObjID, v))
}

// ObjIDEqualFold applies the EqualFold predicate on the "obj_id" field.
func ObjIDEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldObjID, v))
}

// ObjIDContainsFold applies the ContainsFold predicate on the "obj_id" field.
func ObjIDContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldObjID, v))
}

// ListNameEQ applies the EQ predicate on the "list_name" field.
func ListNameEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldListName, v))
}

// ListNameNEQ applies the NEQ predicate on the "list_name" field.
func ListNameNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldListName, v))
}

// ListNameIn applies the In predicate on the "list_name" field.
func ListNameIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldListName, vs...))
}

// ListNameNotIn applies the NotIn predicate on the "list_name" field.
func ListNameNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldListName, vs...))
}

// ListNameGT applies the GT predicate on the "list_name" field.
func ListNameGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldListName, v))
}

// ListNameGTE applies the GTE predicate on the "list_name" field.
func ListNameGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldListName, v))
}

// ListNameLT applies the LT predicate on the "list_name" field.
func ListNameLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldListName, v))
}

// ListNameLTE applies the LTE predicate on the "list_name" field.
func ListNameLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldListName, v))
}

// ListNameContains applies the Contains predicate on the "list_name" field.
func ListNameContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldListName, v))
}

// ListNameHasPrefix applies the HasPrefix predicate on the "list_name" field.
func ListNameHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldListName, v))
}

// ListNameHasSuffix applies the HasSuffix predicate on the "list_name" field.
func ListNameHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldListName, v))
}

// ListNameEqualFold applies the EqualFold predicate on the "list_name" field.
func ListNameEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldListName, v))
}

// ListNameContainsFold applies the ContainsFold predicate on the "list_name" field.
func ListNameContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldListName, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Listing {
	return predicate.Listing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Listing {
	return predicate.Listing(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Listing) predicate.Listing {
	return predicate.Listing(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Listing) predicate.Listing {
	return predicate.Listing(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Listing) predicate.Listing {
	return predicate.Listing(sql.NotPredicates(p))
}
