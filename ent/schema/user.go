package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("email").
			NotEmpty().
			MaxLen(255),
		field.String("first_name").
			NotEmpty().
			MaxLen(255),
		field.String("last_name").
			Optional().
			MaxLen(255),
		field.Enum("role").
			Values("ADMIN", "MANAGER", "EMPLOYEE").
			Default("EMPLOYEE"),
		field.String("password_hash").
			Optional().
			Sensitive(),
		field.Time("birth_date").
			Optional().
			Nillable().
			Comment("Month+day drive the daily birthday job; year drives age"),
		field.Bool("enabled").
			Default(true),
		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("users").
			Unique().
			Required(),
		edge.From("team", Team.Type).
			Ref("members").
			Unique(),
		edge.To("notifications", Notification.Type),
		edge.To("preference", NotificationPreference.Type).
			Unique(),
		edge.To("push_subscriptions", PushSubscription.Type),
		edge.To("created_tasks", Task.Type),
		edge.To("assigned_tasks", Task.Type),
		edge.To("sent_messages", Message.Type),
		edge.To("received_messages", Message.Type),
		edge.To("shifts", Shift.Type),
		edge.To("swap_requests", ShiftSwapRequest.Type),
		edge.To("swap_targets", ShiftSwapRequest.Type),
		edge.To("time_off_requests", TimeOffRequest.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
	}
}
