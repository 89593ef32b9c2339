package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for the Notification entity.
// One row is created per (event, recipient) pair; rows are immutable after
// creation except for the viewed flag. Deleting a user cascades here.
type Notification struct {
	ent.Schema
}

// Mixin of the Notification.
func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // created_at only (notifications are append-only)
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("text").
			NotEmpty().
			MaxLen(2048),
		field.String("notification_type").
			NotEmpty().
			Comment("Resource-type-scoped kind, e.g. favorite_sources_new_comment"),
		field.String("url").
			Optional().
			Comment("Canonical resource path for navigation, e.g. /source/ZTF21abc"),
		field.Bool("viewed").
			Default(false),
	}
}

// Edges of the Notification.
func (Notification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("notifications").
			Unique().
			Required(),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("user").Fields("viewed"),     // Fast unread count query
		index.Edges("user").Fields("created_at"), // Paginated list by user
		index.Fields("created_at"),               // Retention cleanup
	}
}
