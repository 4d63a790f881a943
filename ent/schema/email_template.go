package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EmailTemplate holds one company-branded template per category. A
// disabled template turns sends of that category into successful no-ops;
// a missing row falls back to the built-in defaults.
type EmailTemplate struct {
	ent.Schema
}

// Mixin of the EmailTemplate.
func (EmailTemplate) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the EmailTemplate.
func (EmailTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Enum("type").
			Values("WELCOME", "PASSWORD_RESET", "TEAM_INVITE", "NOTIFICATION"),
		field.String("subject").
			NotEmpty().
			MaxLen(512),
		field.String("body").
			NotEmpty().
			MaxLen(8192).
			Comment("Plain text with {{placeholder}} variables; newlines become paragraphs"),
		field.Bool("enabled").
			Default(true),
	}
}

// Edges of the EmailTemplate.
func (EmailTemplate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("email_templates").
			Unique().
			Required(),
	}
}

// Indexes of the EmailTemplate.
func (EmailTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("company").Fields("type").Unique(),
	}
}
