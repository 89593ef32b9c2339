package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Shift holds the schema definition for the Shift entity.
// A user is "on shift" when the current UTC time falls inside
// [start_date, end_date] of a shift they are a member of.
type Shift struct {
	ent.Schema
}

// Mixin of the Shift.
func (Shift) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Shift.
func (Shift) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.Time("start_date"),
		field.Time("end_date"),
	}
}

// Edges of the Shift.
func (Shift) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("users", User.Type),
	}
}

// Indexes of the Shift.
func (Shift) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("start_date", "end_date"),
	}
}
