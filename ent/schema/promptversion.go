package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PromptVersion is one immutable revision of a prompt template. Workflows
// record which versions they ran with so past runs stay reproducible.
type PromptVersion struct {
	ent.Schema
}

// Fields of the PromptVersion.
func (PromptVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("prompt_version_id").
			Unique().
			Immutable(),
		field.String("prompt_id").
			Immutable(),
		field.Int("version").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PromptVersion.
func (PromptVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("prompt", Prompt.Type).
			Ref("versions").
			Field("prompt_id").
			Unique().
			Required().
			Immutable(),
		edge.To("workflow_links", WorkflowPromptVersion.Type),
	}
}

// Indexes of the PromptVersion.
func (PromptVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("prompt_id", "version").
			Unique(),
	}
}
