// Code generated by ent, DO NOT EDIT.

package objanalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"sky-herald.io/herald/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldEQ(FieldUpdatedAt, v))
}

// ObjID applies equality check predicate on the "obj_id" field. It's identical to ObjIDEQ.
func ObjID(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldEQ(FieldObjID, v))
}

// AnalysisService applies equality check predicate on the "analysis_service" field. It's identical to AnalysisServiceEQ.
func AnalysisService(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldEQ(FieldAnalysisService, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldEQ(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldLTE(FieldUpdatedAt, v))
}

// ObjIDEQ applies the EQ predicate on the "obj_id" field.
func ObjIDEQ(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldEQ(FieldObjID, v))
}

// ObjIDNEQ applies the NEQ predicate on the "obj_id" field.
func ObjIDNEQ(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldNEQ(FieldObjID, v))
}

// ObjIDIn applies the In predicate on the "obj_id" field.
func ObjIDIn(vs ...string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldIn(FieldObjID, vs...))
}

// ObjIDNotIn applies the NotIn predicate on the "obj_id" field.
func ObjIDNotIn(vs ...string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldNotIn(FieldObjID, vs...))
}

// ObjIDGT applies the GT predicate on the "obj_id" field.
func ObjIDGT(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldGT(FieldObjID, v))
}

// ObjIDGTE applies the GTE predicate on the "obj_id" field.
func ObjIDGTE(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldGTE(FieldObjID, v))
}

// ObjIDLT applies the LT predicate on the "obj_id" field.
func ObjIDLT(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldLT(FieldObjID, v))
}

// ObjIDLTE applies the LTE predicate on the "obj_id" field.
func ObjIDLTE(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldLTE(FieldObjID, v))
}

// ObjIDContains applies the Contains predicate on the "obj_id" field.
func ObjIDContains(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldContains(FieldObjID, v))
}

// ObjIDHasPrefix applies the HasPrefix predicate on the "obj_id" field.
func ObjIDHasPrefix(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldHasPrefix(FieldObjID, v))
}

// ObjIDHasSuffix applies the HasSuffix predicate on the "obj_id" field.
func ObjIDHasSuffix(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldHasSuffix(FieldObjID, v))
}

// ObjIDEqualFold applies the EqualFold predicate on the "obj_id" field.
func ObjIDEqualFold(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldEqualFold(FieldObjID, v))
}

// ObjIDContainsFold applies the ContainsFold predicate on the "obj_id" field.
func ObjIDContainsFold(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldContainsFold(FieldObjID, v))
}

// AnalysisServiceEQ applies the EQ predicate on the "analysis_service" field.
func AnalysisServiceEQ(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldEQ(FieldAnalysisService, v))
}

// AnalysisServiceNEQ applies the NEQ predicate on the "analysis_service" field.
func AnalysisServiceNEQ(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldNEQ(FieldAnalysisService, v))
}

// AnalysisServiceIn applies the In predicate on the "analysis_service" field.
func AnalysisServiceIn(vs ...string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldIn(FieldAnalysisService, vs...))
}

// AnalysisServiceNotIn applies the NotIn predicate on the "analysis_service" field.
func AnalysisServiceNotIn(vs ...string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldNotIn(FieldAnalysisService, vs...))
}

// AnalysisServiceGT applies the GT predicate on the "analysis_service" field.
func AnalysisServiceGT(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldGT(FieldAnalysisService, v))
}

// AnalysisServiceGTE applies the GTE predicate on the "analysis_service" field.
func AnalysisServiceGTE(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldGTE(FieldAnalysisService, v))
}

// AnalysisServiceLT applies the LT predicate on the "analysis_service" field.
func AnalysisServiceLT(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldLT(FieldAnalysisService, v))
}

// AnalysisServiceLTE applies the LTE predicate on the "analysis_service" field.
func AnalysisServiceLTE(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldLTE(FieldAnalysisService, v))
}

// AnalysisServiceContains applies the Contains predicate on the "analysis_service" field.
func AnalysisServiceContains(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldContains(FieldAnalysisService, v))
}

// AnalysisServiceHasPrefix applies the HasPrefix predicate on the "analysis_service" field.
func AnalysisServiceHasPrefix(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldHasPrefix(FieldAnalysisService, v))
}

// AnalysisServiceHasSuffix applies the HasSuffix predicate on the "analysis_service" field.
func AnalysisServiceHasSuffix(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldHasSuffix(FieldAnalysisService, v))
}

// AnalysisServiceEqualFold applies the EqualFold predicate on the "analysis_service" field.
func AnalysisServiceEqualFold(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldEqualFold(FieldAnalysisService, v))
}

// AnalysisServiceContainsFold applies the ContainsFold predicate on the "analysis_service" field.
func AnalysisServiceContainsFold(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldContainsFold(FieldAnalysisService, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.FieldContainsFold(FieldStatus, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.ObjAnalysis {
	return predicate.ObjAnalysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ObjAnalysis) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ObjAnalysis) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ObjAnalysis) predicate.ObjAnalysis {
	return predicate.ObjAnalysis(sql.NotPredicates(p))
}
