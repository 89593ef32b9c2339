package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FollowupRequest holds the schema definition for the FollowupRequest entity.
type FollowupRequest struct {
	ent.Schema
}

// Mixin of the FollowupRequest.
func (FollowupRequest) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the FollowupRequest.
func (FollowupRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("obj_id").
			NotEmpty().
			MaxLen(255),
		field.String("status").
			Default("pending submission").
			MaxLen(255),
	}
}

// Edges of the FollowupRequest.
func (FollowupRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("allocation", Allocation.Type).
			Ref("followup_requests").
			Unique().
			Required(),
		edge.To("requester", User.Type).
			Unique().
			Required(),
		edge.To("transactions", FacilityTransaction.Type),
	}
}

// Indexes of the FollowupRequest.
func (FollowupRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("obj_id"),
	}
}
