package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GcnTag holds the schema definition for the GcnTag entity.
// All tags sharing a dateobs form the tag set of one GCN event.
type GcnTag struct {
	ent.Schema
}

// Mixin of the GcnTag.
func (GcnTag) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the GcnTag.
func (GcnTag) Fields() []ent.Field {
	return []ent.Field{
		field.Time("dateobs"),
		field.String("text").
			NotEmpty().
			MaxLen(255),
	}
}

// Indexes of the GcnTag.
func (GcnTag) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dateobs", "text").Unique(),
	}
}
