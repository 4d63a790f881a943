package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Company holds the schema definition for the Company (tenant) entity.
// Branding fields feed the email renderer; birthday settings drive the
// daily birthday job.
type Company struct {
	ent.Schema
}

// Mixin of the Company.
func (Company) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Company.
func (Company) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("primary_color").
			Default("#3b82f6").
			Comment("Email header gradient start color"),
		field.String("secondary_color").
			Default("#8b5cf6").
			Comment("Email header gradient end color"),
		field.String("logo_url").
			Optional(),
		field.String("footer_message").
			Optional().
			MaxLen(1024),
		field.Bool("birthday_notifications_enabled").
			Default(true),
		field.Bool("birthday_notify_self").
			Default(true),
		field.Bool("birthday_notify_managers").
			Default(true),
		field.Bool("birthday_notify_team").
			Default(false),
		field.Enum("birthday_visibility").
			Values("PUBLIC", "PRIVATE").
			Default("PRIVATE").
			Comment("PUBLIC additionally posts into the company general chat room"),
		field.String("birthday_message_template").
			Default("Happy birthday, {{name}}! 🎉").
			MaxLen(1024),
	}
}

// Edges of the Company.
func (Company) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("users", User.Type),
		edge.To("teams", Team.Type),
		edge.To("email_templates", EmailTemplate.Type),
		edge.To("chat_rooms", ChatRoom.Type),
	}
}

// Indexes of the Company.
func (Company) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}
