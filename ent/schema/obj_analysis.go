package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ObjAnalysis holds the schema definition for the ObjAnalysis entity.
type ObjAnalysis struct {
	ent.Schema
}

// Mixin of the ObjAnalysis.
func (ObjAnalysis) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ObjAnalysis.
func (ObjAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("obj_id").
			NotEmpty().
			MaxLen(255),
		field.String("analysis_service").
			NotEmpty().
			MaxLen(255),
		field.String("status").
			Default("completed").
			MaxLen(64),
	}
}

// Edges of the ObjAnalysis.
func (ObjAnalysis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("owner", User.Type).
			Unique().
			Required(),
	}
}

// Indexes of the ObjAnalysis.
func (ObjAnalysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("obj_id"),
	}
}
