package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TimeOffRequest holds the schema definition for a time-off request.
// Same lifecycle as ShiftSwapRequest.
type TimeOffRequest struct {
	ent.Schema
}

// Mixin of the TimeOffRequest.
func (TimeOffRequest) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the TimeOffRequest.
func (TimeOffRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Time("starts_on"),
		field.Time("ends_on"),
		field.Enum("status").
			Values("PENDING", "APPROVED", "REJECTED", "CANCELLED").
			Default("PENDING"),
		field.String("reason").
			Optional().
			MaxLen(2048),
		field.String("responded_by").
			Optional(),
	}
}

// Edges of the TimeOffRequest.
func (TimeOffRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("time_off_requests").
			Unique().
			Required(),
	}
}

// Indexes of the TimeOffRequest.
func (TimeOffRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("user").Fields("created_at"),
	}
}
