// Code generated by ent, DO NOT EDIT.

package gcntag

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"sky-herald.io/herald/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldEQ(FieldCreatedAt, v))
}

// Dateobs applies equality check predicate on the "dateobs" field. It's identical to DateobsEQ.
func Dateobs(v time.Time) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldEQ(FieldDateobs, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldEQ(FieldText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldLTE(FieldCreatedAt, v))
}

// DateobsEQ applies the EQ predicate on the "dateobs" field.
func DateobsEQ(v time.Time) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldEQ(FieldDateobs, v))
}

// DateobsNEQ applies the NEQ predicate on the "dateobs" field.
func DateobsNEQ(v time.Time) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldNEQ(FieldDateobs, v))
}

// DateobsIn applies the In predicate on the "dateobs" field.
func DateobsIn(vs ...time.Time) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldIn(FieldDateobs, vs...))
}

// DateobsNotIn applies the NotIn predicate on the "dateobs" field.
func DateobsNotIn(vs ...time.Time) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldNotIn(FieldDateobs, vs...))
}

// DateobsGT applies the GT predicate on the "dateobs" field.
func DateobsGT(v time.Time) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldGT(FieldDateobs, v))
}

// DateobsGTE applies the GTE predicate on the "dateobs" field.
func DateobsGTE(v time.Time) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldGTE(FieldDateobs, v))
}

// DateobsLT applies the LT predicate on the "dateobs" field.
func DateobsLT(v time.Time) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldLT(FieldDateobs, v))
}

// DateobsLTE applies the LTE predicate on the "dateobs" field.
func DateobsLTE(v time.Time) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldLTE(FieldDateobs, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.GcnTag {
	return predicate.GcnTag(sql.FieldContainsFold(FieldText, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GcnTag) predicate.GcnTag {
	return predicate.GcnTag(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GcnTag) predicate.GcnTag {
	return predicate.GcnTag(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GcnTag) predicate.GcnTag {
	return predicate.GcnTag(sql.NotPredicates(p))
}
