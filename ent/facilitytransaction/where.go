// Code generated by ent, DO NOT EDIT.

package facilitytransaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"sky-herald.io/herald/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// Initiator applies equality check predicate on the "initiator" field. It's identical to InitiatorEQ.
func Initiator(v string) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldEQ(FieldInitiator, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldLTE(FieldCreatedAt, v))
}

// InitiatorEQ applies the EQ predicate on the "initiator" field.
func InitiatorEQ(v string) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldEQ(FieldInitiator, v))
}

// InitiatorNEQ applies the NEQ predicate on the "initiator" field.
func InitiatorNEQ(v string) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldNEQ(FieldInitiator, v))
}

// InitiatorIn applies the In predicate on the "initiator" field.
func InitiatorIn(vs ...string) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldIn(FieldInitiator, vs...))
}

// InitiatorNotIn applies the NotIn predicate on the "initiator" field.
func InitiatorNotIn(vs ...string) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldNotIn(FieldInitiator, vs...))
}

// InitiatorGT applies the GT predicate on the "initiator" field.
func InitiatorGT(v string) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldGT(FieldInitiator, v))
}

// InitiatorGTE applies the GTE predicate on the "initiator" field.
func InitiatorGTE(v string) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldGTE(FieldInitiator, v))
}

// InitiatorLT applies the LT predicate on the "initiator" field.
func InitiatorLT(v string) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldLT(FieldInitiator, v))
}

// InitiatorLTE applies the LTE predicate on the "initiator" field.
func InitiatorLTE(v string) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldLTE(FieldInitiator, v))
}

// InitiatorContains applies the Contains predicate on the "initiator" field.
func InitiatorContains(v string) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldContains(FieldInitiator, v))
}

// InitiatorHasPrefix applies the HasPrefix predicate on the "initiator" field.
func InitiatorHasPrefix(v string) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldHasPrefix(FieldInitiator, v))
}

// InitiatorHasSuffix applies the HasSuffix predicate on the "initiator" field.
func InitiatorHasSuffix(v string) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldHasSuffix(FieldInitiator, v))
}

// InitiatorIsNil applies the IsNil predicate on the "initiator" field.
func InitiatorIsNil() predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldIsNull(FieldInitiator))
}

// InitiatorNotNil applies the NotNil predicate on the "initiator" field.
func InitiatorNotNil() predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldNotNull(FieldInitiator))
}

// InitiatorEqualFold applies the EqualFold predicate on the "initiator" field.
func InitiatorEqualFold(v string) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldEqualFold(FieldInitiator, v))
}

// InitiatorContainsFold applies the ContainsFold predicate on the "initiator" field.
func InitiatorContainsFold(v string) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.FieldContainsFold(FieldInitiator, v))
}

// HasFollowupRequest applies the HasEdge predicate on the "followup_request" edge.
func HasFollowupRequest() predicate.FacilityTransaction {
	return predicate.FacilityTransaction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FollowupRequestTable, FollowupRequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFollowupRequestWith applies the HasEdge predicate on the "followup_request" edge with a given conditions (other predicates).
func HasFollowupRequestWith(preds ...predicate.FollowupRequest) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(func(s *sql.Selector) {
		step := newFollowupRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FacilityTransaction) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FacilityTransaction) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FacilityTransaction) predicate.FacilityTransaction {
	return predicate.FacilityTransaction(sql.NotPredicates(p))
}
