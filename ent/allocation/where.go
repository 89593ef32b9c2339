// Code generated by ent, DO NOT EDIT.

package allocation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"sky-herald.io/herald/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Allocation {
	return predicate.Allocation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Allocation {
	return predicate.Allocation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Allocation {
	return predicate.Allocation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Allocation {
	return predicate.Allocation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Allocation {
	return predicate.Allocation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Allocation {
	return predicate.Allocation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Allocation {
	return predicate.Allocation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Allocation {
	return predicate.Allocation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Allocation {
	return predicate.Allocation(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Allocation {
	return predicate.Allocation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Allocation {
	return predicate.Allocation(sql.FieldEQ(FieldUpdatedAt, v))
}

// Instrument applies equality check predicate on the "instrument" field. It's identical to InstrumentEQ.
func Instrument(v string) predicate.Allocation {
	return predicate.Allocation(sql.FieldEQ(FieldInstrument, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Allocation {
	return predicate.Allocation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Allocation {
	return predicate.Allocation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Allocation {
	return predicate.Allocation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Allocation {
	return predicate.Allocation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Allocation {
	return predicate.Allocation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Allocation {
	return predicate.Allocation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Allocation {
	return predicate.Allocation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Allocation {
	return predicate.Allocation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Allocation {
	return predicate.Allocation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Allocation {
	return predicate.Allocation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Allocation {
	return predicate.Allocation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Allocation {
	return predicate.Allocation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Allocation {
	return predicate.Allocation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Allocation {
	return predicate.Allocation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Allocation {
	return predicate.Allocation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Allocation {
	return predicate.Allocation(sql.FieldLTE(FieldUpdatedAt, v))
}

// InstrumentEQ applies the EQ predicate on the "instrument" field.
func InstrumentEQ(v string) predicate.Allocation {
	return predicate.Allocation(sql.FieldEQ(FieldInstrument, v))
}

// InstrumentNEQ applies the NEQ predicate on the "instrument" field.
func InstrumentNEQ(v string) predicate.Allocation {
	return predicate.Allocation(sql.FieldNEQ(FieldInstrument, v))
}

// InstrumentIn applies the In predicate on the "instrument" field.
func InstrumentIn(vs ...string) predicate.Allocation {
	return predicate.Allocation(sql.FieldIn(FieldInstrument, vs...))
}

// InstrumentNotIn applies the NotIn predicate on the "instrument" field.
func InstrumentNotIn(vs ...string) predicate.Allocation {
	return predicate.Allocation(sql.FieldNotIn(FieldInstrument, vs...))
}

// InstrumentGT applies the GT predicate on the "instrument" field.
func InstrumentGT(v string) predicate.Allocation {
	return predicate.Allocation(sql.FieldGT(FieldInstrument, v))
}

// InstrumentGTE applies the GTE predicate on the "instrument" field.
func InstrumentGTE(v string) predicate.Allocation {
	return predicate.Allocation(sql.FieldGTE(FieldInstrument, v))
}

// InstrumentLT applies the LT predicate on the "instrument" field.
func InstrumentLT(v string) predicate.Allocation {
	return predicate.Allocation(sql.FieldLT(FieldInstrument, v))
}

// InstrumentLTE applies the LTE predicate on the "instrument" field.
func InstrumentLTE(v string) predicate.Allocation {
	return predicate.Allocation(sql.FieldLTE(FieldInstrument, v))
}

// InstrumentContains applies the Contains predicate on the "instrument" field.
func InstrumentContains(v string) predicate.Allocation {
	return predicate.Allocation(sql.FieldContains(FieldInstrument, v))
}

// InstrumentHasPrefix applies the HasPrefix predicate on the "instrument" field.
func InstrumentHasPrefix(v string) predicate.Allocation {
	return predicate.Allocation(sql.FieldHasPrefix(FieldInstrument, v))
}

// InstrumentHasSuffix applies the HasSuffix predicate on the "instrument" field.
func InstrumentHasSuffix(v string) predicate.Allocation {
	return predicate.Allocation(sql.FieldHasSuffix(FieldInstrument, v))
}

// InstrumentEqualFold applies the EqualFold predicate on the "instrument" field.
func InstrumentEqualFold(v string) predicate.Allocation {
	return predicate.Allocation(sql.FieldEqualFold(FieldInstrument, v))
}

// InstrumentContainsFold applies the ContainsFold predicate on the "instrument" field.
func InstrumentContainsFold(v string) predicate.Allocation {
	return predicate.Allocation(sql.FieldContainsFold(FieldInstrument, v))
}

// HasGroup applies the HasEdge predicate on the "group" edge.
func HasGroup() predicate.Allocation {
	return predicate.Allocation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GroupTable, GroupColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGroupWith applies the HasEdge predicate on the "group" edge with a given conditions (other predicates).
func HasGroupWith(preds ...predicate.Group) predicate.Allocation {
	return predicate.Allocation(func(s *sql.Selector) {
		step := newGroupStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFollowupRequests applies the HasEdge predicate on the "followup_requests" edge.
func HasFollowupRequests() predicate.Allocation {
	return predicate.Allocation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FollowupRequestsTable, FollowupRequestsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFollowupRequestsWith applies the HasEdge predicate on the "followup_requests" edge with a given conditions (other predicates).
func HasFollowupRequestsWith(preds ...predicate.FollowupRequest) predicate.Allocation {
	return predicate.Allocation(func(s *sql.Selector) {
		step := newFollowupRequestsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasObservationPlanRequests applies the HasEdge predicate on the "observation_plan_requests" edge.
func HasObservationPlanRequests() predicate.Allocation {
	return predicate.Allocation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ObservationPlanRequestsTable, ObservationPlanRequestsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasObservationPlanRequestsWith applies the HasEdge predicate on the "observation_plan_requests" edge with a given conditions (other predicates).
func HasObservationPlanRequestsWith(preds ...predicate.ObservationPlanRequest) predicate.Allocation {
	return predicate.Allocation(func(s *sql.Selector) {
		step := newObservationPlanRequestsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Allocation) predicate.Allocation {
	return predicate.Allocation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Allocation) predicate.Allocation {
	return predicate.Allocation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Allocation) predicate.Allocation {
	return predicate.Allocation(sql.NotPredicates(p))
}
