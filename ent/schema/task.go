package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity. The digest
// aggregator reads a narrow projection (title, status, timestamps);
// task CRUD itself lives outside this service.
type Task struct {
	ent.Schema
}

// Mixin of the Task.
func (Task) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("title").
			NotEmpty().
			MaxLen(512),
		field.Enum("status").
			Values("TODO", "IN_PROGRESS", "COMPLETED").
			Default("TODO"),
		field.Time("due_date").
			Optional().
			Nillable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("creator", User.Type).
			Ref("created_tasks").
			Unique().
			Required(),
		edge.From("assignee", User.Type).
			Ref("assigned_tasks").
			Unique(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("assignee").Fields("created_at"),
		index.Edges("creator").Fields("created_at"),
	}
}
