package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workflow holds the schema definition for the Workflow entity.
// One workflow is a single Architect → Developer → Reviewer run for one
// issue on one git worktree.
type Workflow struct {
	ent.Schema
}

// Fields of the Workflow.
func (Workflow) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workflow_id").
			Unique().
			Immutable(),
		field.String("issue_id").
			Comment("Tracker issue reference (e.g. 'TASK-1', 'owner/repo#42')"),
		field.String("worktree_path").
			Comment("Absolute path of the git worktree this workflow targets"),
		field.String("worktree_name").
			Optional(),
		field.String("profile_id").
			Comment("Profile identifier (live lookup, no snapshot)"),
		field.Enum("workflow_type").
			Values("full", "review").
			Default("full"),
		field.Enum("status").
			Values("pending", "planning", "in_progress", "blocked", "completed", "failed", "cancelled").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the workflow was submitted"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When the state machine entered planning"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("failure_reason").
			Optional().
			Nillable(),
		field.JSON("plan_cache", map[string]interface{}{}).
			Optional().
			Comment("Plan artifact snapshot: path, goal, markdown, key files"),
		field.JSON("issue_cache", map[string]interface{}{}).
			Optional().
			Comment("Issue snapshot from the tracker at creation time"),
		field.Int("review_iteration").
			Default(0).
			Comment("How many times the reviewer has sent the plan back"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Edges of the Workflow.
func (Workflow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("checkpoints", Checkpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("token_usages", TokenUsage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("prompt_versions", WorkflowPromptVersion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Workflow.
//
// The exclusivity invariant (at most one active workflow per worktree_path)
// is a partial unique index that Ent cannot express; it is created by
// database.CreatePartialUniqueIndexes and the init migration.
func (Workflow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("worktree_path"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
