package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Listing holds the schema definition for the Listing entity.
// A listing with list_name "favorites" marks an object as a user favorite,
// which is the key the favorite-source notification path looks up.
type Listing struct {
	ent.Schema
}

// Mixin of the Listing.
func (Listing) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Listing.
func (Listing) Fields() []ent.Field {
	return []ent.Field{
		field.String("obj_id").
			NotEmpty().
			MaxLen(255),
		field.String("list_name").
			Default("favorites").
			MaxLen(255),
	}
}

// Edges of the Listing.
func (Listing) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("listings").
			Unique().
			Required(),
	}
}

// Indexes of the Listing.
func (Listing) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("obj_id", "list_name"),
	}
}
