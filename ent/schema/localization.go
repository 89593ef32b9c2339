package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Localization holds the schema definition for the Localization entity.
// Tags and properties are derived from the skymap at ingestion time; the
// notification engine only reads them.
type Localization struct {
	ent.Schema
}

// Mixin of the Localization.
func (Localization) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the Localization.
func (Localization) Fields() []ent.Field {
	return []ent.Field{
		field.Time("dateobs"),
		field.String("localization_name").
			NotEmpty().
			MaxLen(255),
		field.Strings("tags").
			Optional(),
		field.JSON("properties", []map[string]interface{}{}).
			Optional().
			Comment("Derived skymap property records"),
	}
}

// Indexes of the Localization.
func (Localization) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dateobs"),
	}
}
