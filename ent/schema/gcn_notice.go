package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GcnNotice holds the schema definition for the GcnNotice entity.
// notice_type is empty for raw JSON notices whose type could not be decoded;
// the GCN filter skips the notice-type condition in that case.
type GcnNotice struct {
	ent.Schema
}

// Mixin of the GcnNotice.
func (GcnNotice) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the GcnNotice.
func (GcnNotice) Fields() []ent.Field {
	return []ent.Field{
		field.Time("dateobs").
			Comment("Trigger time identifying the parent GCN event"),
		field.String("notice_type").
			Optional().
			MaxLen(255),
	}
}

// Indexes of the GcnNotice.
func (GcnNotice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dateobs"),
	}
}
