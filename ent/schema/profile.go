package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Profile mirrors the configured execution profiles into the database so
// dashboards and workflow rows can reference them. Configuration is the
// source of truth; rows are synced at startup.
type Profile struct {
	ent.Schema
}

// Fields of the Profile.
func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("profile_id").
			Unique().
			Immutable(),
		field.String("tracker"),
		field.String("working_dir"),
		field.String("plan_output_dir"),
		field.JSON("agents", map[string]interface{}{}).
			Optional().
			Comment("Per-role driver/model/options"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
