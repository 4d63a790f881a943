package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ShiftSwapRequest holds the schema definition for a shift swap request.
// Lifecycle: PENDING → APPROVED | REJECTED (terminal), or CANCELLED by
// the requester before a response. Re-requesting needs a new row.
type ShiftSwapRequest struct {
	ent.Schema
}

// Mixin of the ShiftSwapRequest.
func (ShiftSwapRequest) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ShiftSwapRequest.
func (ShiftSwapRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
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

// Edges of the ShiftSwapRequest.
func (ShiftSwapRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("requester", User.Type).
			Ref("swap_requests").
			Unique().
			Required(),
		edge.From("target", User.Type).
			Ref("swap_targets").
			Unique(),
		edge.From("shift", Shift.Type).
			Ref("swap_requests").
			Unique().
			Required(),
	}
}

// Indexes of the ShiftSwapRequest.
func (ShiftSwapRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("requester").Fields("created_at"),
		index.Edges("target").Fields("created_at"),
	}
}
