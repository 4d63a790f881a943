package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Shift holds the schema definition for a scheduled work shift.
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
		field.String("id").
			Unique().
			Immutable(),
		field.Time("starts_at"),
		field.Time("ends_at"),
		field.String("position").
			Optional().
			MaxLen(255),
	}
}

// Edges of the Shift.
func (Shift) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("shifts").
			Unique().
			Required(),
		edge.To("swap_requests", ShiftSwapRequest.Type),
	}
}

// Indexes of the Shift.
func (Shift) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("user").Fields("starts_at"),
	}
}
