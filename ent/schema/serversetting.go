package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ServerSetting is a key/value row for runtime-tunable settings that
// override the static config file (e.g. trace retention).
type ServerSetting struct {
	ent.Schema
}

// Fields of the ServerSetting.
func (ServerSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("setting_key").
			Unique().
			Immutable(),
		field.Text("value"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
