// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "node", Type: field.TypeString},
		{Name: "state", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_workflows_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[4]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_workflow_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[4], CheckpointsColumns[3]},
			},
			{
				Name:    "checkpoint_created_at",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[3]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "agent", Type: field.TypeEnum, Enums: []string{"architect", "developer", "reviewer", "system"}, Default: "system"},
		{Name: "event_type", Type: field.TypeString},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"info", "debug", "trace"}},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "trace_id", Type: field.TypeString, Nullable: true},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "tool_input", Type: field.TypeJSON, Nullable: true},
		{Name: "is_error", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_workflows_events",
				Columns:    []*schema.Column{EventsColumns[14]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_workflow_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[14], EventsColumns[1]},
			},
			{
				Name:    "event_workflow_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[14], EventsColumns[13]},
			},
			{
				Name:    "event_level",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
			{
				Name:    "event_level_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4], EventsColumns[13]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "profile_id", Type: field.TypeString, Unique: true},
		{Name: "tracker", Type: field.TypeString},
		{Name: "working_dir", Type: field.TypeString},
		{Name: "plan_output_dir", Type: field.TypeString},
		{Name: "agents", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// PromptsColumns holds the columns for the "prompts" table.
	PromptsColumns = []*schema.Column{
		{Name: "prompt_id", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PromptsTable holds the schema information for the "prompts" table.
	PromptsTable = &schema.Table{
		Name:       "prompts",
		Columns:    PromptsColumns,
		PrimaryKey: []*schema.Column{PromptsColumns[0]},
	}
	// PromptVersionsColumns holds the columns for the "prompt_versions" table.
	PromptVersionsColumns = []*schema.Column{
		{Name: "prompt_version_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "prompt_id", Type: field.TypeString},
	}
	// PromptVersionsTable holds the schema information for the "prompt_versions" table.
	PromptVersionsTable = &schema.Table{
		Name:       "prompt_versions",
		Columns:    PromptVersionsColumns,
		PrimaryKey: []*schema.Column{PromptVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prompt_versions_prompts_versions",
				Columns:    []*schema.Column{PromptVersionsColumns[4]},
				RefColumns: []*schema.Column{PromptsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "promptversion_prompt_id_version",
				Unique:  true,
				Columns: []*schema.Column{PromptVersionsColumns[4], PromptVersionsColumns[1]},
			},
		},
	}
	// ServerSettingsColumns holds the columns for the "server_settings" table.
	ServerSettingsColumns = []*schema.Column{
		{Name: "setting_key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ServerSettingsTable holds the schema information for the "server_settings" table.
	ServerSettingsTable = &schema.Table{
		Name:       "server_settings",
		Columns:    ServerSettingsColumns,
		PrimaryKey: []*schema.Column{ServerSettingsColumns[0]},
	}
	// TokenUsagesColumns holds the columns for the "token_usages" table.
	TokenUsagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "agent", Type: field.TypeEnum, Enums: []string{"architect", "developer", "reviewer"}},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// TokenUsagesTable holds the schema information for the "token_usages" table.
	TokenUsagesTable = &schema.Table{
		Name:       "token_usages",
		Columns:    TokenUsagesColumns,
		PrimaryKey: []*schema.Column{TokenUsagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "token_usages_workflows_token_usages",
				Columns:    []*schema.Column{TokenUsagesColumns[6]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tokenusage_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{TokenUsagesColumns[6]},
			},
		},
	}
	// WorkflowsColumns holds the columns for the "workflows" table.
	WorkflowsColumns = []*schema.Column{
		{Name: "workflow_id", Type: field.TypeString, Unique: true},
		{Name: "issue_id", Type: field.TypeString},
		{Name: "worktree_path", Type: field.TypeString},
		{Name: "worktree_name", Type: field.TypeString, Nullable: true},
		{Name: "profile_id", Type: field.TypeString},
		{Name: "workflow_type", Type: field.TypeEnum, Enums: []string{"full", "review"}, Default: "full"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "planning", "in_progress", "blocked", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "plan_cache", Type: field.TypeJSON, Nullable: true},
		{Name: "issue_cache", Type: field.TypeJSON, Nullable: true},
		{Name: "review_iteration", Type: field.TypeInt, Default: 0},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
	}
	// WorkflowsTable holds the schema information for the "workflows" table.
	WorkflowsTable = &schema.Table{
		Name:       "workflows",
		Columns:    WorkflowsColumns,
		PrimaryKey: []*schema.Column{WorkflowsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflow_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[6]},
			},
			{
				Name:    "workflow_worktree_path",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[2]},
			},
			{
				Name:    "workflow_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[6], WorkflowsColumns[7]},
			},
			{
				Name:    "workflow_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[6], WorkflowsColumns[16]},
			},
		},
	}
	// WorkflowPromptVersionsColumns holds the columns for the "workflow_prompt_versions" table.
	WorkflowPromptVersionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "prompt_version_id", Type: field.TypeString},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// WorkflowPromptVersionsTable holds the schema information for the "workflow_prompt_versions" table.
	WorkflowPromptVersionsTable = &schema.Table{
		Name:       "workflow_prompt_versions",
		Columns:    WorkflowPromptVersionsColumns,
		PrimaryKey: []*schema.Column{WorkflowPromptVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_prompt_versions_prompt_versions_workflow_links",
				Columns:    []*schema.Column{WorkflowPromptVersionsColumns[2]},
				RefColumns: []*schema.Column{PromptVersionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "workflow_prompt_versions_workflows_prompt_versions",
				Columns:    []*schema.Column{WorkflowPromptVersionsColumns[3]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowpromptversion_workflow_id_prompt_version_id",
				Unique:  true,
				Columns: []*schema.Column{WorkflowPromptVersionsColumns[3], WorkflowPromptVersionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CheckpointsTable,
		EventsTable,
		ProfilesTable,
		PromptsTable,
		PromptVersionsTable,
		ServerSettingsTable,
		TokenUsagesTable,
		WorkflowsTable,
		WorkflowPromptVersionsTable,
	}
)

func init() {
	CheckpointsTable.ForeignKeys[0].RefTable = WorkflowsTable
	EventsTable.ForeignKeys[0].RefTable = WorkflowsTable
	PromptVersionsTable.ForeignKeys[0].RefTable = PromptsTable
	TokenUsagesTable.ForeignKeys[0].RefTable = WorkflowsTable
	WorkflowPromptVersionsTable.ForeignKeys[0].RefTable = PromptVersionsTable
	WorkflowPromptVersionsTable.ForeignKeys[1].RefTable = WorkflowsTable
}
