package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// GroupAdmissionRequest holds the schema definition for the
// GroupAdmissionRequest entity. Group admins are notified on creation and
// are always emailed regardless of their channel preferences.
type GroupAdmissionRequest struct {
	ent.Schema
}

// Mixin of the GroupAdmissionRequest.
func (GroupAdmissionRequest) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the GroupAdmissionRequest.
func (GroupAdmissionRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("status").
			Default("pending").
			MaxLen(64),
	}
}

// Edges of the GroupAdmissionRequest.
func (GroupAdmissionRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("group", Group.Type).
			Unique().
			Required(),
		edge.To("applicant", User.Type).
			Unique().
			Required(),
	}
}
