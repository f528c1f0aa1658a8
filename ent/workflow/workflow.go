// Code generated by ent, DO NOT EDIT.

package workflow

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workflow type in the database.
	Label = "workflow"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "workflow_id"
	// FieldIssueID holds the string denoting the issue_id field in the database.
	FieldIssueID = "issue_id"
	// FieldWorktreePath holds the string denoting the worktree_path field in the database.
	FieldWorktreePath = "worktree_path"
	// FieldWorktreeName holds the string denoting the worktree_name field in the database.
	FieldWorktreeName = "worktree_name"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldWorkflowType holds the string denoting the workflow_type field in the database.
	FieldWorkflowType = "workflow_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldPlanCache holds the string denoting the plan_cache field in the database.
	FieldPlanCache = "plan_cache"
	// FieldIssueCache holds the string denoting the issue_cache field in the database.
	FieldIssueCache = "issue_cache"
	// FieldReviewIteration holds the string denoting the review_iteration field in the database.
	FieldReviewIteration = "review_iteration"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeCheckpoints holds the string denoting the checkpoints edge name in mutations.
	EdgeCheckpoints = "checkpoints"
	// EdgeTokenUsages holds the string denoting the token_usages edge name in mutations.
	EdgeTokenUsages = "token_usages"
	// EdgePromptVersions holds the string denoting the prompt_versions edge name in mutations.
	EdgePromptVersions = "prompt_versions"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "id"
	// CheckpointFieldID holds the string denoting the ID field of the Checkpoint.
	CheckpointFieldID = "checkpoint_id"
	// TokenUsageFieldID holds the string denoting the ID field of the TokenUsage.
	TokenUsageFieldID = "id"
	// WorkflowPromptVersionFieldID holds the string denoting the ID field of the WorkflowPromptVersion.
	WorkflowPromptVersionFieldID = "id"
	// Table holds the table name of the workflow in the database.
	Table = "workflows"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "workflow_id"
	// CheckpointsTable is the table that holds the checkpoints relation/edge.
	CheckpointsTable = "checkpoints"
	// CheckpointsInverseTable is the table name for the Checkpoint entity.
	// It exists in this package in order to avoid circular dependency with the "checkpoint" package.
	CheckpointsInverseTable = "checkpoints"
	// CheckpointsColumn is the table column denoting the checkpoints relation/edge.
	CheckpointsColumn = "workflow_id"
	// TokenUsagesTable is the table that holds the token_usages relation/edge.
	TokenUsagesTable = "token_usages"
	// TokenUsagesInverseTable is the table name for the TokenUsage entity.
	// It exists in this package in order to avoid circular dependency with the "tokenusage" package.
	TokenUsagesInverseTable = "token_usages"
	// TokenUsagesColumn is the table column denoting the token_usages relation/edge.
	TokenUsagesColumn = "workflow_id"
	// PromptVersionsTable is the table that holds the prompt_versions relation/edge.
	PromptVersionsTable = "workflow_prompt_versions"
	// PromptVersionsInverseTable is the table name for the WorkflowPromptVersion entity.
	// It exists in this package in order to avoid circular dependency with the "workflowpromptversion" package.
	PromptVersionsInverseTable = "workflow_prompt_versions"
	// PromptVersionsColumn is the table column denoting the prompt_versions relation/edge.
	PromptVersionsColumn = "workflow_id"
)

// Columns holds all SQL columns for workflow fields.
var Columns = []string{
	FieldID,
	FieldIssueID,
	FieldWorktreePath,
	FieldWorktreeName,
	FieldProfileID,
	FieldWorkflowType,
	FieldStatus,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldUpdatedAt,
	FieldFailureReason,
	FieldPlanCache,
	FieldIssueCache,
	FieldReviewIteration,
	FieldPodID,
	FieldLastHeartbeatAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultReviewIteration holds the default value on creation for the "review_iteration" field.
	DefaultReviewIteration int
)

// WorkflowType defines the type for the "workflow_type" enum field.
type WorkflowType string

// WorkflowTypeFull is the default value of the WorkflowType enum.
const DefaultWorkflowType = WorkflowTypeFull

// WorkflowType values.
const (
	WorkflowTypeFull   WorkflowType = "full"
	WorkflowTypeReview WorkflowType = "review"
)

func (wt WorkflowType) String() string {
	return string(wt)
}

// WorkflowTypeValidator is a validator for the "workflow_type" field enum values. It is called by the builders before save.
func WorkflowTypeValidator(wt WorkflowType) error {
	switch wt {
	case WorkflowTypeFull, WorkflowTypeReview:
		return nil
	default:
		return fmt.Errorf("workflow: invalid enum value for workflow_type field: %q", wt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in_progress"
	StatusBlocked    Status = "blocked"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusPlanning, StatusInProgress, StatusBlocked, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("workflow: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Workflow queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByIssueID orders the results by the issue_id field.
func ByIssueID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueID, opts...).ToFunc()
}

// ByWorktreePath orders the results by the worktree_path field.
func ByWorktreePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorktreePath, opts...).ToFunc()
}

// ByWorktreeName orders the results by the worktree_name field.
func ByWorktreeName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorktreeName, opts...).ToFunc()
}

// ByProfileID orders the results by the profile_id field.
func ByProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileID, opts...).ToFunc()
}

// ByWorkflowType orders the results by the workflow_type field.
func ByWorkflowType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByReviewIteration orders the results by the review_iteration field.
func ByReviewIteration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewIteration, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCheckpointsCount orders the results by checkpoints count.
func ByCheckpointsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCheckpointsStep(), opts...)
	}
}

// ByCheckpoints orders the results by checkpoints terms.
func ByCheckpoints(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCheckpointsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTokenUsagesCount orders the results by token_usages count.
func ByTokenUsagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTokenUsagesStep(), opts...)
	}
}

// ByTokenUsages orders the results by token_usages terms.
func ByTokenUsages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTokenUsagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPromptVersionsCount orders the results by prompt_versions count.
func ByPromptVersionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPromptVersionsStep(), opts...)
	}
}

// ByPromptVersions orders the results by prompt_versions terms.
func ByPromptVersions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPromptVersionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newCheckpointsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CheckpointsInverseTable, CheckpointFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
	)
}
func newTokenUsagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TokenUsagesInverseTable, TokenUsageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TokenUsagesTable, TokenUsagesColumn),
	)
}
func newPromptVersionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PromptVersionsInverseTable, WorkflowPromptVersionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PromptVersionsTable, PromptVersionsColumn),
	)
}
