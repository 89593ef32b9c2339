package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// Only the fields the notification engine reads are modeled here; the wider
// portal account data lives with the portal service.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			NotEmpty().
			MaxLen(255),
		field.String("contact_email").
			Optional().
			MaxLen(255),
		field.String("contact_phone").
			Optional().
			MaxLen(32),
		field.JSON("preferences", map[string]interface{}{}).
			Optional().
			Comment("Raw notification preference blob; parsed once by prefs.Parse"),
		field.Bool("enabled").
			Default(true),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("notifications", Notification.Type),
		edge.To("listings", Listing.Type),
		edge.From("shifts", Shift.Type).
			Ref("users"),
		edge.From("groups", Group.Type).
			Ref("users"),
		edge.From("admin_of", Group.Type).
			Ref("admins"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username").Unique(),
	}
}
