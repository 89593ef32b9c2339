// Code generated by ent, DO NOT EDIT.

package localization

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"sky-herald.io/herald/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Localization {
	return predicate.Localization(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Localization {
	return predicate.Localization(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Localization {
	return predicate.Localization(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Localization {
	return predicate.Localization(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Localization {
	return predicate.Localization(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Localization {
	return predicate.Localization(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Localization {
	return predicate.Localization(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Localization {
	return predicate.Localization(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Localization {
	return predicate.Localization(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Localization {
	return predicate.Localization(sql.FieldEQ(FieldCreatedAt, v))
}

// Dateobs applies equality check predicate on the "dateobs" field. It's identical to DateobsEQ.
func Dateobs(v time.Time) predicate.Localization {
	return predicate.Localization(sql.FieldEQ(FieldDateobs, v))
}

// LocalizationName applies equality check predicate on the "localization_name" field. It's identical to LocalizationNameEQ.
func LocalizationName(v string) predicate.Localization {
	return predicate.Localization(sql.FieldEQ(FieldLocalizationName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Localization {
	return predicate.Localization(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Localization {
	return predicate.Localization(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Localization {
	return predicate.Localization(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Localization {
	return predicate.Localization(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Localization {
	return predicate.Localization(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Localization {
	return predicate.Localization(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Localization {
	return predicate.Localization(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Localization {
	return predicate.Localization(sql.FieldLTE(FieldCreatedAt, v))
}

// DateobsEQ applies the EQ predicate on the "dateobs" field.
func DateobsEQ(v time.Time) predicate.Localization {
	return predicate.Localization(sql.FieldEQ(FieldDateobs, v))
}

// DateobsNEQ applies the NEQ predicate on the "dateobs" field.
func DateobsNEQ(v time.Time) predicate.Localization {
	return predicate.Localization(sql.FieldNEQ(FieldDateobs, v))
}

// DateobsIn applies the In predicate on the "dateobs" field.
func DateobsIn(vs ...time.Time) predicate.Localization {
	return predicate.Localization(sql.FieldIn(FieldDateobs, vs...))
}

// DateobsNotIn applies the NotIn predicate on the "dateobs" field.
func DateobsNotIn(vs ...time.Time) predicate.Localization {
	return predicate.Localization(sql.FieldNotIn(FieldDateobs, vs...))
}

// DateobsGT applies the GT predicate on the "dateobs" field.
func DateobsGT(v time.Time) predicate.Localization {
	return predicate.Localization(sql.FieldGT(FieldDateobs, v))
}

// DateobsGTE applies the GTE predicate on the "dateobs" field.
func DateobsGTE(v time.Time) predicate.Localization {
	return predicate.Localization(sql.FieldGTE(FieldDateobs, v))
}

// DateobsLT applies the LT predicate on the "dateobs" field.
func DateobsLT(v time.Time) predicate.Localization {
	return predicate.Localization(sql.FieldLT(FieldDateobs, v))
}

// DateobsLTE applies the LTE predicate on the "dateobs" field.
func DateobsLTE(v time.Time) predicate.Localization {
	return predicate.Localization(sql.FieldLTE(FieldDateobs, v))
}

// LocalizationNameEQ applies the EQ predicate on the "localization_name" field.
func LocalizationNameEQ(v string) predicate.Localization {
	return predicate.Localization(sql.FieldEQ(FieldLocalizationName, v))
}

// LocalizationNameNEQ applies the NEQ predicate on the "localization_name" field.
func LocalizationNameNEQ(v string) predicate.Localization {
	return predicate.Localization(sql.FieldNEQ(FieldLocalizationName, v))
}

// LocalizationNameIn applies the In predicate on the "localization_name" field.
func LocalizationNameIn(vs ...string) predicate.Localization {
	return predicate.Localization(sql.FieldIn(FieldLocalizationName, vs...))
}

// LocalizationNameNotIn applies the NotIn predicate on the "localization_name" field.
func LocalizationNameNotIn(vs ...string) predicate.Localization {
	return predicate.Localization(sql.FieldNotIn(FieldLocalizationName, vs...))
}

// LocalizationNameGT applies the GT predicate on the "localization_name" field.
func LocalizationNameGT(v string) predicate.Localization {
	return predicate.Localization(sql.FieldGT(FieldLocalizationName, v))
}

// LocalizationNameGTE applies the GTE predicate on the "localization_name" field.
func LocalizationNameGTE(v string) predicate.Localization {
	return predicate.Localization(sql.FieldGTE(FieldLocalizationName, v))
}

// LocalizationNameLT applies the LT predicate on the "localization_name" field.
func LocalizationNameLT(v string) predicate.Localization {
	return predicate.Localization(sql.FieldLT(FieldLocalizationName, v))
}

// LocalizationNameLTE applies the LTE predicate on the "localization_name" field.
func LocalizationNameLTE(v string) predicate.Localization {
	return predicate.Localization(sql.FieldLTE(FieldLocalizationName, v))
}

// LocalizationNameContains applies the Contains predicate on the "localization_name" field.
func LocalizationNameContains(v string) predicate.Localization {
	return predicate.Localization(sql.FieldContains(FieldLocalizationName, v))
}

// LocalizationNameHasPrefix applies the HasPrefix predicate on the "localization_name" field.
func LocalizationNameHasPrefix(v string) predicate.Localization {
	return predicate.Localization(sql.FieldHasPrefix(FieldLocalizationName, v))
}

// LocalizationNameHasSuffix applies the HasSuffix predicate on the "localization_name" field.
func LocalizationNameHasSuffix(v string) predicate.Localization {
	return predicate.Localization(sql.FieldHasSuffix(FieldLocalizationName, v))
}

// LocalizationNameEqualFold applies the EqualFold predicate on the "localization_name" field.
func LocalizationNameEqualFold(v string) predicate.Localization {
	return predicate.Localization(sql.FieldEqualFold(FieldLocalizationName, v))
}

// LocalizationNameContainsFold applies the ContainsFold predicate on the "localization_name" field.
func LocalizationNameContainsFold(v string) predicate.Localization {
	return predicate.Localization(sql.FieldContainsFold(FieldLocalizationName, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Localization {
	return predicate.Localization(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Localization {
	return predicate.Localization(sql.FieldNotNull(FieldTags))
}

// PropertiesIsNil applies the IsNil predicate on the "properties" field.
func PropertiesIsNil() predicate.Localization {
	return predicate.Localization(sql.FieldIsNull(FieldProperties))
}

// PropertiesNotNil applies the NotNil predicate on the "properties" field.
func PropertiesNotNil() predicate.Localization {
	return predicate.Localization(sql.FieldNotNull(FieldProperties))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Localization) predicate.Localization {
	return predicate.Localization(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Localization) predicate.Localization {
	return predicate.Localization(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Localization) predicate.Localization {
	return predicate.Localization(sql.NotPredicates(p))
}
