package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PushSubscription holds one browser push registration. A user may hold
// many (multi-device). Rows are removed by the dispatcher when the push
// service reports the endpoint gone (HTTP 410/404), or by the user.
type PushSubscription struct {
	ent.Schema
}

// Mixin of the PushSubscription.
func (PushSubscription) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the PushSubscription.
func (PushSubscription) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("endpoint").
			NotEmpty().
			MaxLen(2048),
		field.String("p256dh").
			NotEmpty(),
		field.String("auth").
			NotEmpty().
			Sensitive(),
		field.String("user_agent").
			Optional().
			MaxLen(512),
	}
}

// Edges of the PushSubscription.
func (PushSubscription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("push_subscriptions").
			Unique().
			Required(),
	}
}

// Indexes of the PushSubscription.
func (PushSubscription) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("user").Fields("endpoint").Unique(), // Idempotent registration
	}
}
