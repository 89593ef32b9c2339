// Code generated by ent, DO NOT EDIT.

package observationplanrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"sky-herald.io/herald/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// Dateobs applies equality check predicate on the "dateobs" field. It's identical to DateobsEQ.
func Dateobs(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldEQ(FieldDateobs, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldEQ(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// DateobsEQ applies the EQ predicate on the "dateobs" field.
func DateobsEQ(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldEQ(FieldDateobs, v))
}

// DateobsNEQ applies the NEQ predicate on the "dateobs" field.
func DateobsNEQ(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldNEQ(FieldDateobs, v))
}

// DateobsIn applies the In predicate on the "dateobs" field.
func DateobsIn(vs ...time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldIn(FieldDateobs, vs...))
}

// DateobsNotIn applies the NotIn predicate on the "dateobs" field.
func DateobsNotIn(vs ...time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldNotIn(FieldDateobs, vs...))
}

// DateobsGT applies the GT predicate on the "dateobs" field.
func DateobsGT(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldGT(FieldDateobs, v))
}

// DateobsGTE applies the GTE predicate on the "dateobs" field.
func DateobsGTE(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldGTE(FieldDateobs, v))
}

// DateobsLT applies the LT predicate on the "dateobs" field.
func DateobsLT(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldLT(FieldDateobs, v))
}

// DateobsLTE applies the LTE predicate on the "dateobs" field.
func DateobsLTE(v time.Time) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldLTE(FieldDateobs, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.FieldContainsFold(FieldStatus, v))
}

// HasAllocation applies the HasEdge predicate on the "allocation" edge.
func HasAllocation() predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AllocationTable, AllocationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAllocationWith applies the HasEdge predicate on the "allocation" edge with a given conditions (other predicates).
func HasAllocationWith(preds ...predicate.Allocation) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(func(s *sql.Selector) {
		step := newAllocationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRequester applies the HasEdge predicate on the "requester" edge.
func HasRequester() predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, RequesterTable, RequesterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequesterWith applies the HasEdge predicate on the "requester" edge with a given conditions (other predicates).
func HasRequesterWith(preds ...predicate.User) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(func(s *sql.Selector) {
		step := newRequesterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ObservationPlanRequest) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ObservationPlanRequest) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ObservationPlanRequest) predicate.ObservationPlanRequest {
	return predicate.ObservationPlanRequest(sql.NotPredicates(p))
}
