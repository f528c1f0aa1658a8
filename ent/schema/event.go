package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity, the append-only
// history of a workflow. Rows are never updated; they are deleted only by
// retention sweeps (or by cascade when the owning workflow is deleted).
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		// Default int ID doubles as the global backfill cursor.
		field.String("workflow_id").
			Immutable(),
		field.Int("sequence").
			Immutable().
			Comment("Monotonic per-workflow order, starts at 1, no gaps"),
		field.Enum("agent").
			Values("architect", "developer", "reviewer", "system").
			Default("system").
			Immutable(),
		field.String("event_type").
			Immutable().
			Comment("Open tag; the known set maps to a level in pkg/events"),
		field.Enum("level").
			Values("info", "debug", "trace").
			Immutable(),
		field.Text("message").
			Immutable(),
		field.JSON("data", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.String("correlation_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("trace_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("parent_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Parent trace event for hierarchical traces"),
		field.String("tool_name").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("tool_input", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Bool("is_error").
			Default(false).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("events").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "sequence").
			Unique(),
		index.Fields("workflow_id", "created_at"),
		index.Fields("level"),
		index.Fields("level", "created_at"),
	}
}
