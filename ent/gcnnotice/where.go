// Code generated by ent, DO NOT EDIT.

package gcnnotice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"sky-herald.io/herald/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldEQ(FieldCreatedAt, v))
}

// Dateobs applies equality check predicate on the "dateobs" field. It's identical to DateobsEQ.
func Dateobs(v time.Time) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldEQ(FieldDateobs, v))
}

// NoticeType applies equality check predicate on the "notice_type" field. It's identical to NoticeTypeEQ.
func NoticeType(v string) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldEQ(FieldNoticeType, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldLTE(FieldCreatedAt, v))
}

// DateobsEQ applies the EQ predicate on the "dateobs" field.
func DateobsEQ(v time.Time) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldEQ(FieldDateobs, v))
}

// DateobsNEQ applies the NEQ predicate on the "dateobs" field.
func DateobsNEQ(v time.Time) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldNEQ(FieldDateobs, v))
}

// DateobsIn applies the In predicate on the "dateobs" field.
func DateobsIn(vs ...time.Time) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldIn(FieldDateobs, vs...))
}

// DateobsNotIn applies the NotIn predicate on the "dateobs" field.
func DateobsNotIn(vs ...time.Time) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldNotIn(FieldDateobs, vs...))
}

// DateobsGT applies the GT predicate on the "dateobs" field.
func DateobsGT(v time.Time) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldGT(FieldDateobs, v))
}

// DateobsGTE applies the GTE predicate on the "dateobs" field.
func DateobsGTE(v time.Time) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldGTE(FieldDateobs, v))
}

// DateobsLT applies the LT predicate on the "dateobs" field.
func DateobsLT(v time.Time) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldLT(FieldDateobs, v))
}

// DateobsLTE applies the LTE predicate on the "dateobs" field.
func DateobsLTE(v time.Time) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldLTE(FieldDateobs, v))
}

// NoticeTypeEQ applies the EQ predicate on the "notice_type" field.
func NoticeTypeEQ(v string) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldEQ(FieldNoticeType, v))
}

// NoticeTypeNEQ applies the NEQ predicate on the "notice_type" field.
func NoticeTypeNEQ(v string) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldNEQ(FieldNoticeType, v))
}

// NoticeTypeIn applies the In predicate on the "notice_type" field.
func NoticeTypeIn(vs ...string) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldIn(FieldNoticeType, vs...))
}

// NoticeTypeNotIn applies the NotIn predicate on the "notice_type" field.
func NoticeTypeNotIn(vs ...string) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldNotIn(FieldNoticeType, vs...))
}

// NoticeTypeGT applies the GT predicate on the "notice_type" field.
func NoticeTypeGT(v string) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldGT(FieldNoticeType, v))
}

// NoticeTypeGTE applies the GTE predicate on the "notice_type" field.
func NoticeTypeGTE(v string) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldGTE(FieldNoticeType, v))
}

// NoticeTypeLT applies the LT predicate on the "notice_type" field.
func NoticeTypeLT(v string) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldLT(FieldNoticeType, v))
}

// NoticeTypeLTE applies the LTE predicate on the "notice_type" field.
func NoticeTypeLTE(v string) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldLTE(FieldNoticeType, v))
}

// NoticeTypeContains applies the Contains predicate on the "notice_type" field.
func NoticeTypeContains(v string) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldContains(FieldNoticeType, v))
}

// NoticeTypeHasPrefix applies the HasPrefix predicate on the "notice_type" field.
func NoticeTypeHasPrefix(v string) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldHasPrefix(FieldNoticeType, v))
}

// NoticeTypeHasSuffix applies the HasSuffix predicate on the "notice_type" field.
func NoticeTypeHasSuffix(v string) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldHasSuffix(FieldNoticeType, v))
}

// NoticeTypeIsNil applies the IsNil predicate on the "notice_type" field.
func NoticeTypeIsNil() predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldIsNull(FieldNoticeType))
}

// NoticeTypeNotNil applies the NotNil predicate on the "notice_type" field.
func NoticeTypeNotNil() predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldNotNull(FieldNoticeType))
}

// NoticeTypeEqualFold applies the EqualFold predicate on the "notice_type" field.
func NoticeTypeEqualFold(v string) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldEqualFold(FieldNoticeType, v))
}

// NoticeTypeContainsFold applies the ContainsFold predicate on the "notice_type" field.
func NoticeTypeContainsFold(v string) predicate.GcnNotice {
	return predicate.GcnNotice(sql.FieldContainsFold(FieldNoticeType, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GcnNotice) predicate.GcnNotice {
	return predicate.GcnNotice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GcnNotice) predicate.GcnNotice {
	return predicate.GcnNotice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GcnNotice) predicate.GcnNotice {
	return predicate.GcnNotice(sql.NotPredicates(p))
}
