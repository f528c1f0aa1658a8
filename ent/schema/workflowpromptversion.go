package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowPromptVersion links a workflow to the prompt versions it ran with.
type WorkflowPromptVersion struct {
	ent.Schema
}

// Fields of the WorkflowPromptVersion.
func (WorkflowPromptVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("workflow_id").
			Immutable(),
		field.String("prompt_version_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the WorkflowPromptVersion.
func (WorkflowPromptVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("prompt_versions").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
		edge.From("prompt_version", PromptVersion.Type).
			Ref("workflow_links").
			Field("prompt_version_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WorkflowPromptVersion.
func (WorkflowPromptVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "prompt_version_id").
			Unique(),
	}
}
