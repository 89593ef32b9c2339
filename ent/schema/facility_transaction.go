package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// FacilityTransaction holds the schema definition for the FacilityTransaction
// entity. It records a message exchanged with a follow-up facility.
type FacilityTransaction struct {
	ent.Schema
}

// Mixin of the FacilityTransaction.
func (FacilityTransaction) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the FacilityTransaction.
func (FacilityTransaction) Fields() []ent.Field {
	return []ent.Field{
		field.String("initiator").
			Optional().
			MaxLen(255),
	}
}

// Edges of the FacilityTransaction.
func (FacilityTransaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("followup_request", FollowupRequest.Type).
			Ref("transactions").
			Unique().
			Required(),
	}
}
