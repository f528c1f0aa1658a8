package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds a snapshot of a workflow's ExecutionState at a state
// machine node boundary. The latest checkpoint per workflow is what the
// orchestrator resumes from after approval or process restart.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("node").
			Immutable().
			Comment("State machine node the snapshot was taken at"),
		field.JSON("state", map[string]interface{}{}).
			Immutable().
			Comment("Serialized ExecutionState"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Checkpoint.
func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("checkpoints").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "created_at"),
		index.Fields("created_at"),
	}
}
