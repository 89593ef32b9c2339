package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Spectrum holds the schema definition for the Spectrum entity.
type Spectrum struct {
	ent.Schema
}

// Mixin of the Spectrum.
func (Spectrum) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the Spectrum.
func (Spectrum) Fields() []ent.Field {
	return []ent.Field{
		field.String("obj_id").
			NotEmpty().
			MaxLen(255),
	}
}

// Indexes of the Spectrum.
func (Spectrum) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("obj_id"),
	}
}
