package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Allocation holds the schema definition for the Allocation entity.
// An allocation grants a group observing time on an instrument; follow-up
// requests and observation plans are submitted against it.
type Allocation struct {
	ent.Schema
}

// Mixin of the Allocation.
func (Allocation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Allocation.
func (Allocation) Fields() []ent.Field {
	return []ent.Field{
		field.String("instrument").
			NotEmpty().
			MaxLen(255),
	}
}

// Edges of the Allocation.
func (Allocation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("group", Group.Type).
			Ref("allocations").
			Unique().
			Required(),
		edge.To("followup_requests", FollowupRequest.Type),
		edge.To("observation_plan_requests", ObservationPlanRequest.Type),
	}
}
