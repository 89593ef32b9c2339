// Code generated by ent, DO NOT EDIT.

package gcnproperty

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"sky-herald.io/herald/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldEQ(FieldCreatedAt, v))
}

// Dateobs applies equality check predicate on the "dateobs" field. It's identical to DateobsEQ.
func Dateobs(v time.Time) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldEQ(FieldDateobs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldLTE(FieldCreatedAt, v))
}

// DateobsEQ applies the EQ predicate on the "dateobs" field.
func DateobsEQ(v time.Time) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldEQ(FieldDateobs, v))
}

// DateobsNEQ applies the NEQ predicate on the "dateobs" field.
func DateobsNEQ(v time.Time) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldNEQ(FieldDateobs, v))
}

// DateobsIn applies the In predicate on the "dateobs" field.
func DateobsIn(vs ...time.Time) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldIn(FieldDateobs, vs...))
}

// DateobsNotIn applies the NotIn predicate on the "dateobs" field.
func DateobsNotIn(vs ...time.Time) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldNotIn(FieldDateobs, vs...))
}

// DateobsGT applies the GT predicate on the "dateobs" field.
func DateobsGT(v time.Time) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldGT(FieldDateobs, v))
}

// DateobsGTE applies the GTE predicate on the "dateobs" field.
func DateobsGTE(v time.Time) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldGTE(FieldDateobs, v))
}

// DateobsLT applies the LT predicate on the "dateobs" field.
func DateobsLT(v time.Time) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldLT(FieldDateobs, v))
}

// DateobsLTE applies the LTE predicate on the "dateobs" field.
func DateobsLTE(v time.Time) predicate.GcnProperty {
	return predicate.GcnProperty(sql.FieldLTE(FieldDateobs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GcnProperty) predicate.GcnProperty {
	return predicate.GcnProperty(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GcnProperty) predicate.GcnProperty {
	return predicate.GcnProperty(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GcnProperty) predicate.GcnProperty {
	return predicate.GcnProperty(sql.NotPredicates(p))
}
