// Code generated by ent, DO NOT EDIT.

package followuprequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"sky-herald.io/herald/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// ObjID applies equality check predicate on the "obj_id" field. It's identical to ObjIDEQ.
func ObjID(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldEQ(FieldObjID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldEQ(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// ObjIDEQ applies the EQ predicate on the "obj_id" field.
func ObjIDEQ(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldEQ(FieldObjID, v))
}

// ObjIDNEQ applies the NEQ predicate on the "obj_id" field.
func ObjIDNEQ(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldNEQ(FieldObjID, v))
}

// ObjIDIn applies the In predicate on the "obj_id" field.
func ObjIDIn(vs ...string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldIn(FieldObjID, vs...))
}

// ObjIDNotIn applies the NotIn predicate on the "obj_id" field.
func ObjIDNotIn(vs ...string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldNotIn(FieldObjID, vs...))
}

// ObjIDGT applies the GT predicate on the "obj_id" field.
func ObjIDGT(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldGT(FieldObjID, v))
}

// ObjIDGTE applies the GTE predicate on the "obj_id" field.
func ObjIDGTE(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldGTE(FieldObjID, v))
}

// ObjIDLT applies the LT predicate on the "obj_id" field.
func ObjIDLT(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldLT(FieldObjID, v))
}

// ObjIDLTE applies the LTE predicate on the "obj_id" field.
func ObjIDLTE(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldLTE(FieldObjID, v))
}

// ObjIDContains applies the Contains predicate on the "obj_id" field.
func ObjIDContains(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldContains(FieldObjID, v))
}

// ObjIDHasPrefix applies the HasPrefix predicate on the "obj_id" field.
func ObjIDHasPrefix(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldHasPrefix(FieldObjID, v))
}

// ObjIDHasSuffix applies the HasSuffix predicate on the "obj_id" field.
func ObjIDHasSuffix(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldHasSuffix(FieldObjID, v))
}

// ObjIDEqualFold applies the EqualFold predicate on the "obj_id" field.
func ObjIDEqualFold(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldEqualFold(FieldObjID, v))
}

// ObjIDContainsFold applies the ContainsFold predicate on the "obj_id" field.
func ObjIDContainsFold(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldContainsFold(FieldObjID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.FieldContainsFold(FieldStatus, v))
}

// HasAllocation applies the HasEdge predicate on the "allocation" edge.
func HasAllocation() predicate.FollowupRequest {
	return predicate.FollowupRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AllocationTable, AllocationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAllocationWith applies the HasEdge predicate on the "allocation" edge with a given conditions (other predicates).
func HasAllocationWith(preds ...predicate.Allocation) predicate.FollowupRequest {
	return predicate.FollowupRequest(func(s *sql.Selector) {
		step := newAllocationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRequester applies the HasEdge predicate on the "requester" edge.
func HasRequester() predicate.FollowupRequest {
	return predicate.FollowupRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, RequesterTable, RequesterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequesterWith applies the HasEdge predicate on the "requester" edge with a given conditions (other predicates).
func HasRequesterWith(preds ...predicate.User) predicate.FollowupRequest {
	return predicate.FollowupRequest(func(s *sql.Selector) {
		step := newRequesterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTransactions applies the HasEdge predicate on the "transactions" edge.
func HasTransactions() predicate.FollowupRequest {
	return predicate.FollowupRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TransactionsTable, TransactionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTransactionsWith applies the HasEdge predicate on the "transactions" edge with a given conditions (other predicates).
func HasTransactionsWith(preds ...predicate.FacilityTransaction) predicate.FollowupRequest {
	return predicate.FollowupRequest(func(s *sql.Selector) {
		step := newTransactionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FollowupRequest) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FollowupRequest) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FollowupRequest) predicate.FollowupRequest {
	return predicate.FollowupRequest(sql.NotPredicates(p))
}
