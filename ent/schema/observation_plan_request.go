package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ObservationPlanRequest holds the schema definition for the
// ObservationPlanRequest entity, a plan submitted against a GCN event.
type ObservationPlanRequest struct {
	ent.Schema
}

// Mixin of the ObservationPlanRequest.
func (ObservationPlanRequest) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ObservationPlanRequest.
func (ObservationPlanRequest) Fields() []ent.Field {
	return []ent.Field{
		field.Time("dateobs").
			Comment("Parent GCN event trigger time"),
		field.String("status").
			Default("pending submission").
			MaxLen(255),
	}
}

// Edges of the ObservationPlanRequest.
func (ObservationPlanRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("allocation", Allocation.Type).
			Ref("observation_plan_requests").
			Unique().
			Required(),
		edge.To("requester", User.Type).
			Unique().
			Required(),
	}
}

// Indexes of the ObservationPlanRequest.
func (ObservationPlanRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dateobs"),
	}
}
