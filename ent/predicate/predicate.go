// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// Prompt is the predicate function for prompt builders.
type Prompt func(*sql.Selector)

// PromptVersion is the predicate function for promptversion builders.
type PromptVersion func(*sql.Selector)

// ServerSetting is the predicate function for serversetting builders.
type ServerSetting func(*sql.Selector)

// TokenUsage is the predicate function for tokenusage builders.
type TokenUsage func(*sql.Selector)

// Workflow is the predicate function for workflow builders.
type Workflow func(*sql.Selector)

// WorkflowPromptVersion is the predicate function for workflowpromptversion builders.
type WorkflowPromptVersion func(*sql.Selector)
