package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatRoom holds the schema definition for a company chat room. The
// birthday job posts into the company "general" room when birthday
// visibility is PUBLIC; chat transport itself is out of scope here.
type ChatRoom struct {
	ent.Schema
}

// Mixin of the ChatRoom.
func (ChatRoom) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ChatRoom.
func (ChatRoom) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.Bool("is_general").
			Default(false),
	}
}

// Edges of the ChatRoom.
func (ChatRoom) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("chat_rooms").
			Unique().
			Required(),
		edge.To("messages", ChatMessage.Type),
	}
}

// Indexes of the ChatRoom.
func (ChatRoom) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("company").Fields("is_general"),
	}
}

// ChatMessage holds one message in a chat room.
type ChatMessage struct {
	ent.Schema
}

// Mixin of the ChatMessage.
func (ChatMessage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("sender_id").
			Optional().
			Comment("Empty for system-authored posts (e.g. birthday announcements)"),
		field.String("body").
			NotEmpty().
			MaxLen(8192),
	}
}

// Edges of the ChatMessage.
func (ChatMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("room", ChatRoom.Type).
			Ref("messages").
			Unique().
			Required(),
	}
}
