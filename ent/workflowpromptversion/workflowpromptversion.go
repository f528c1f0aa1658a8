// Code generated by ent, DO NOT EDIT.

package workflowpromptversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workflowpromptversion type in the database.
	Label = "workflow_prompt_version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldPromptVersionID holds the string denoting the prompt_version_id field in the database.
	FieldPromptVersionID = "prompt_version_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWorkflow holds the string denoting the workflow edge name in mutations.
	EdgeWorkflow = "workflow"
	// EdgePromptVersion holds the string denoting the prompt_version edge name in mutations.
	EdgePromptVersion = "prompt_version"
	// WorkflowFieldID holds the string denoting the ID field of the Workflow.
	WorkflowFieldID = "workflow_id"
	// PromptVersionFieldID holds the string denoting the ID field of the PromptVersion.
	PromptVersionFieldID = "prompt_version_id"
	// Table holds the table name of the workflowpromptversion in the database.
	Table = "workflow_prompt_versions"
	// WorkflowTable is the table that holds the workflow relation/edge.
	WorkflowTable = "workflow_prompt_versions"
	// WorkflowInverseTable is the table name for the Workflow entity.
	// It exists in this package in order to avoid circular dependency with the "workflow" package.
	WorkflowInverseTable = "workflows"
	// WorkflowColumn is the table column denoting the workflow relation/edge.
	WorkflowColumn = "workflow_id"
	// PromptVersionTable is the table that holds the prompt_version relation/edge.
	PromptVersionTable = "workflow_prompt_versions"
	// PromptVersionInverseTable is the table name for the PromptVersion entity.
	// It exists in this package in order to avoid circular dependency with the "promptversion" package.
	PromptVersionInverseTable = "prompt_versions"
	// PromptVersionColumn is the table column denoting the prompt_version relation/edge.
	PromptVersionColumn = "prompt_version_id"
)

// Columns holds all SQL columns for workflowpromptversion fields.
var Columns = []string{
	FieldID,
	FieldWorkflowID,
	FieldPromptVersionID,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the WorkflowPromptVersion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// ByPromptVersionID orders the results by the prompt_version_id field.
func ByPromptVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptVersionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByWorkflowField orders the results by workflow field.
func ByWorkflowField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkflowStep(), sql.OrderByField(field, opts...))
	}
}

// ByPromptVersionField orders the results by prompt_version field.
func ByPromptVersionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPromptVersionStep(), sql.OrderByField(field, opts...))
	}
}
func newWorkflowStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkflowInverseTable, WorkflowFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
	)
}
func newPromptVersionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PromptVersionInverseTable, PromptVersionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PromptVersionTable, PromptVersionColumn),
	)
}
