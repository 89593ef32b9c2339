// Code generated by ent, DO NOT EDIT.

package classification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"sky-herald.io/herald/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Classification {
	return predicate.Classification(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Classification {
	return predicate.Classification(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Classification {
	return predicate.Classification(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Classification {
	return predicate.Classification(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldCreatedAt, v))
}

// ObjID applies equality check predicate on the "obj_id" field. It's identical to ObjIDEQ.
func ObjID(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldObjID, v))
}

// Classification applies equality check predicate on the "classification" field. It's identical to ClassificationEQ.
func Classification(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldClassification, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldLTE(FieldCreatedAt, v))
}

// ObjIDEQ applies the EQ predicate on the "obj_id" field.
func ObjIDEQ(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldObjID, v))
}

// ObjIDNEQ applies the NEQ predicate on the "obj_id" field.
func ObjIDNEQ(v string) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldObjID, v))
}

// ObjIDIn applies the In predicate on the "obj_id" field.
func ObjIDIn(vs ...string) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldObjID, vs...))
}

// ObjIDNotIn applies the NotIn predicate on the "obj_id" field.
func ObjIDNotIn(vs ...string) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldObjID, vs...))
}

// ObjIDGT applies the GT predicate on the "obj_id" field.
func ObjIDGT(v string) predicate.Classification {
	return predicate.Classification(sql.FieldGT(FieldObjID, v))
}

// ObjIDGTE applies the GTE predicate on the "obj_id" field.
func ObjIDGTE(v string) predicate.Classification {
	return predicate.Classification(sql.FieldGTE(FieldObjID, v))
}

// ObjIDLT applies the LT predicate on the "obj_id" field.
func ObjIDLT(v string) predicate.Classification {
	return predicate.Classification(sql.FieldLT(FieldObjID, v))
}

// ObjIDLTE applies the LTE predicate on the "obj_id" field.
func ObjIDLTE(v string) predicate.Classification {
	return predicate.Classification(sql.FieldLTE(FieldObjID, v))
}

// ObjIDContains applies the Contains predicate on the "obj_id" field.
func ObjIDContains(v string) predicate.Classification {
	return predicate.Classification(sql.FieldContains(FieldObjID, v))
}

// ObjIDHasPrefix applies the HasPrefix predicate on the "obj_id" field.
func ObjIDHasPrefix(v string) predicate.Classification {
	return predicate.Classification(sql.FieldHasPrefix(FieldObjID, v))
}

// ObjIDHasSuffix applies the HasSuffix predicate on the "obj_id" field.
func ObjIDHasSuffix(v string) predicate.Classification {
	return predicate.Classification(sql.FieldHasSuffix(FieldObjID, v))
}

// ObjIDEqualFold applies the EqualFold predicate on the "obj_id" field.
func ObjIDEqualFold(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEqualFold(FieldObjID, v))
}

// ObjIDContainsFold applies the ContainsFold predicate on the "obj_id" field.
func ObjIDContainsFold(v string) predicate.Classification {
	return predicate.Classification(sql.FieldContainsFold(FieldObjID, v))
}

// ClassificationEQ applies the EQ predicate on the "classification" field.
func ClassificationEQ(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldClassification, v))
}

// ClassificationNEQ applies the NEQ predicate on the "classification" field.
func ClassificationNEQ(v string) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldClassification, v))
}

// ClassificationIn applies the In predicate on the "classification" field.
func ClassificationIn(vs ...string) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldClassification, vs...))
}

// ClassificationNotIn applies the NotIn predicate on the "classification" field.
func ClassificationNotIn(vs ...string) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldClassification, vs...))
}

// ClassificationGT applies the GT predicate on the "classification" field.
func ClassificationGT(v string) predicate.Classification {
	return predicate.Classification(sql.FieldGT(FieldClassification, v))
}

// ClassificationGTE applies the GTE predicate on the "classification" field.
func ClassificationGTE(v string) predicate.Classification {
	return predicate.Classification(sql.FieldGTE(FieldClassification, v))
}

// ClassificationLT applies the LT predicate on the "classification" field.
func ClassificationLT(v string) predicate.Classification {
	return predicate.Classification(sql.FieldLT(FieldClassification, v))
}

// ClassificationLTE applies the LTE predicate on the "classification" field.
func ClassificationLTE(v string) predicate.Classification {
	return predicate.Classification(sql.FieldLTE(FieldClassification, v))
}

// ClassificationContains applies the Contains predicate on the "classification" field.
func ClassificationContains(v string) predicate.Classification {
	return predicate.Classification(sql.FieldContains(FieldClassification, v))
}

// ClassificationHasPrefix applies the HasPrefix predicate on the "classification" field.
func ClassificationHasPrefix(v string) predicate.Classification {
	return predicate.Classification(sql.FieldHasPrefix(FieldClassification, v))
}

// ClassificationHasSuffix applies the HasSuffix predicate on the "classification" field.
func ClassificationHasSuffix(v string) predicate.Classification {
	return predicate.Classification(sql.FieldHasSuffix(FieldClassification, v))
}

// ClassificationEqualFold applies the EqualFold predicate on the "classification" field.
func ClassificationEqualFold(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEqualFold(FieldClassification, v))
}

// ClassificationContainsFold applies the ContainsFold predicate on the "classification" field.
func ClassificationContainsFold(v string) predicate.Classification {
	return predicate.Classification(sql.FieldContainsFold(FieldClassification, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Classification) predicate.Classification {
	return predicate.Classification(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Classification) predicate.Classification {
	return predicate.Classification(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Classification) predicate.Classification {
	return predicate.Classification(sql.NotPredicates(p))
}
