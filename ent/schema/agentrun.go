package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRun holds the schema definition for the AgentRun entity.
// One row per user request driven through the agent scheduler.
type AgentRun struct {
	ent.Schema
}

// Annotations of the AgentRun.
func (AgentRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "agent_runs"},
	}
}

// Fields of the AgentRun.
func (AgentRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.Text("prompt").
			Immutable(),
		field.JSON("images", []ImageAttachment{}).
			Optional().
			Immutable(),
		field.String("conversation_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Conversation that triggered this run, if any"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed", "cancelled", "timed_out").
			Default("pending"),
		field.Int("loops").
			Default(0).
			Comment("Scheduler iterations consumed"),
		field.Bool("replanned").
			Default(false),
		field.Text("final_response").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the AgentRun.
func (AgentRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", Message.Type),
	}
}

// Indexes of the AgentRun.
func (AgentRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
