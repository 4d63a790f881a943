package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// NotificationPreference holds per-user outbound channel settings.
// The row is created lazily: absence means every channel defaults to
// send. Preferences gate
// email and push only; the in-app feed is unconditional.
type NotificationPreference struct {
	ent.Schema
}

// Mixin of the NotificationPreference.
func (NotificationPreference) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the NotificationPreference.
func (NotificationPreference) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),

		// Email per-event gates.
		field.Bool("email_on_task_assigned").Default(true),
		field.Bool("email_on_task_completed").Default(true),
		field.Bool("email_on_task_comment").Default(true),
		field.Bool("email_on_mention").Default(true),
		field.Bool("email_on_deadline").Default(true),
		field.Bool("email_on_shift_assigned").Default(true),
		field.Bool("email_on_shift_swap").Default(true),
		field.Bool("email_on_time_off").Default(true),
		field.Bool("email_on_message").Default(true),

		// Push per-event gates.
		field.Bool("push_on_task_assigned").Default(true),
		field.Bool("push_on_task_comment").Default(true),
		field.Bool("push_on_mention").Default(true),
		field.Bool("push_on_message").Default(true),
		field.Bool("push_on_shift_swap").Default(true),
		field.Bool("push_on_time_off").Default(true),
		field.Bool("push_enabled").
			Default(true).
			Comment("Master switch checked before any per-event push gate"),

		// Digest cadence.
		field.Bool("daily_digest").Default(false),
		field.Bool("weekly_digest").Default(false),
		field.Bool("monthly_digest").Default(false),
		field.String("digest_time").
			Default("08:00").
			MaxLen(5).
			Comment("HH:mm, matched by exact string equality"),
		field.Int("digest_day_of_week").
			Default(1).
			Min(0).
			Max(6),
		field.Int("digest_day_of_month").
			Default(1).
			Min(1).
			Max(28).
			Comment("Clamped to 28 so short months never skip a send"),
	}
}

// Edges of the NotificationPreference.
func (NotificationPreference) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("preference").
			Unique().
			Required(),
	}
}
