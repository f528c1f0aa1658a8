// Code generated by ent, DO NOT EDIT.

package promptversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the promptversion type in the database.
	Label = "prompt_version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "prompt_version_id"
	// FieldPromptID holds the string denoting the prompt_id field in the database.
	FieldPromptID = "prompt_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePrompt holds the string denoting the prompt edge name in mutations.
	EdgePrompt = "prompt"
	// EdgeWorkflowLinks holds the string denoting the workflow_links edge name in mutations.
	EdgeWorkflowLinks = "workflow_links"
	// PromptFieldID holds the string denoting the ID field of the Prompt.
	PromptFieldID = "prompt_id"
	// WorkflowPromptVersionFieldID holds the string denoting the ID field of the WorkflowPromptVersion.
	WorkflowPromptVersionFieldID = "id"
	// Table holds the table name of the promptversion in the database.
	Table = "prompt_versions"
	// PromptTable is the table that holds the prompt relation/edge.
	PromptTable = "prompt_versions"
	// PromptInverseTable is the table name for the Prompt entity.
	// It exists in this package in order to avoid circular dependency with the "prompt" package.
	PromptInverseTable = "prompts"
	// PromptColumn is the table column denoting the prompt relation/edge.
	PromptColumn = "prompt_id"
	// WorkflowLinksTable is the table that holds the workflow_links relation/edge.
	WorkflowLinksTable = "workflow_prompt_versions"
	// WorkflowLinksInverseTable is the table name for the WorkflowPromptVersion entity.
	// It exists in this package in order to avoid circular dependency with the "workflowpromptversion" package.
	WorkflowLinksInverseTable = "workflow_prompt_versions"
	// WorkflowLinksColumn is the table column denoting the workflow_links relation/edge.
	WorkflowLinksColumn = "prompt_version_id"
)

// Columns holds all SQL columns for promptversion fields.
var Columns = []string{
	FieldID,
	FieldPromptID,
	FieldVersion,
	FieldContent,
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

// OrderOption defines the ordering options for the PromptVersion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPromptID orders the results by the prompt_id field.
func ByPromptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPromptField orders the results by prompt field.
func ByPromptField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPromptStep(), sql.OrderByField(field, opts...))
	}
}

// ByWorkflowLinksCount orders the results by workflow_links count.
func ByWorkflowLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWorkflowLinksStep(), opts...)
	}
}

// ByWorkflowLinks orders the results by workflow_links terms.
func ByWorkflowLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkflowLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPromptStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PromptInverseTable, PromptFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PromptTable, PromptColumn),
	)
}
func newWorkflowLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkflowLinksInverseTable, WorkflowPromptVersionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WorkflowLinksTable, WorkflowLinksColumn),
	)
}
