package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GcnProperty holds the schema definition for the GcnProperty entity.
// A GCN event can carry several property records; a user's property filters
// match when at least one whole record passes all of them.
type GcnProperty struct {
	ent.Schema
}

// Mixin of the GcnProperty.
func (GcnProperty) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the GcnProperty.
func (GcnProperty) Fields() []ent.Field {
	return []ent.Field{
		field.Time("dateobs"),
		field.JSON("data", map[string]interface{}{}).
			Comment("Numeric property values keyed by name"),
	}
}

// Indexes of the GcnProperty.
func (GcnProperty) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dateobs"),
	}
}
