package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Classification holds the schema definition for the Classification entity.
// Only the fields the notification engine inspects are modeled.
type Classification struct {
	ent.Schema
}

// Mixin of the Classification.
func (Classification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the Classification.
func (Classification) Fields() []ent.Field {
	return []ent.Field{
		field.String("obj_id").
			NotEmpty().
			MaxLen(255),
		field.String("classification").
			NotEmpty().
			MaxLen(255),
	}
}

// Indexes of the Classification.
func (Classification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("obj_id"),
	}
}
