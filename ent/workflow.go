// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/existential-birds/amelia-sub003/ent/workflow"
)

// Workflow is the model entity for the Workflow schema.
type Workflow struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Tracker issue reference (e.g. 'TASK-1', 'owner/repo#42')
	IssueID string `json:"issue_id,omitempty"`
	// Absolute path of the git worktree this workflow targets
	WorktreePath string `json:"worktree_path,omitempty"`
	// WorktreeName holds the value of the "worktree_name" field.
	WorktreeName string `json:"worktree_name,omitempty"`
	// Profile identifier (live lookup, no snapshot)
	ProfileID string `json:"profile_id,omitempty"`
	// WorkflowType holds the value of the "workflow_type" field.
	WorkflowType workflow.WorkflowType `json:"workflow_type,omitempty"`
	// Status holds the value of the "status" field.
	Status workflow.Status `json:"status,omitempty"`
	// When the workflow was submitted
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the state machine entered planning
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason *string `json:"failure_reason,omitempty"`
	// Plan artifact snapshot: path, goal, markdown, key files
	PlanCache map[string]interface{} `json:"plan_cache,omitempty"`
	// Issue snapshot from the tracker at creation time
	IssueCache map[string]interface{} `json:"issue_cache,omitempty"`
	// How many times the reviewer has sent the plan back
	ReviewIteration int `json:"review_iteration,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowQuery when eager-loading is set.
	Edges        WorkflowEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowEdges holds the relations/edges for other nodes in the graph.
type WorkflowEdges struct {
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// Checkpoints holds the value of the checkpoints edge.
	Checkpoints []*Checkpoint `json:"checkpoints,omitempty"`
	// TokenUsages holds the value of the token_usages edge.
	TokenUsages []*TokenUsage `json:"token_usages,omitempty"`
	// PromptVersions holds the value of the prompt_versions edge.
	PromptVersions []*WorkflowPromptVersion `json:"prompt_versions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[0] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// CheckpointsOrErr returns the Checkpoints value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowEdges) CheckpointsOrErr() ([]*Checkpoint, error) {
	if e.loadedTypes[1] {
		return e.Checkpoints, nil
	}
	return nil, &NotLoadedError{edge: "checkpoints"}
}

// TokenUsagesOrErr returns the TokenUsages value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowEdges) TokenUsagesOrErr() ([]*TokenUsage, error) {
	if e.loadedTypes[2] {
		return e.TokenUsages, nil
	}
	return nil, &NotLoadedError{edge: "token_usages"}
}

// PromptVersionsOrErr returns the PromptVersions value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowEdges) PromptVersionsOrErr() ([]*WorkflowPromptVersion, error) {
	if e.loadedTypes[3] {
		return e.PromptVersions, nil
	}
	return nil, &NotLoadedError{edge: "prompt_versions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Workflow) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflow.FieldPlanCache, workflow.FieldIssueCache:
			values[i] = new([]byte)
		case workflow.FieldReviewIteration:
			values[i] = new(sql.NullInt64)
		case workflow.FieldID, workflow.FieldIssueID, workflow.FieldWorktreePath, workflow.FieldWorktreeName, workflow.FieldProfileID, workflow.FieldWorkflowType, workflow.FieldStatus, workflow.FieldFailureReason, workflow.FieldPodID:
			values[i] = new(sql.NullString)
		case workflow.FieldCreatedAt, workflow.FieldStartedAt, workflow.FieldCompletedAt, workflow.FieldUpdatedAt, workflow.FieldLastHeartbeatAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Workflow fields.
func (_m *Workflow) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflow.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workflow.FieldIssueID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issue_id", values[i])
			} else if value.Valid {
				_m.IssueID = value.String
			}
		case workflow.FieldWorktreePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field worktree_path", values[i])
			} else if value.Valid {
				_m.WorktreePath = value.String
			}
		case workflow.FieldWorktreeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field worktree_name", values[i])
			} else if value.Valid {
				_m.WorktreeName = value.String
			}
		case workflow.FieldProfileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value.Valid {
				_m.ProfileID = value.String
			}
		case workflow.FieldWorkflowType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_type", values[i])
			} else if value.Valid {
				_m.WorkflowType = workflow.WorkflowType(value.String)
			}
		case workflow.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = workflow.Status(value.String)
			}
		case workflow.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workflow.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case workflow.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case workflow.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case workflow.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = new(string)
				*_m.FailureReason = value.String
			}
		case workflow.FieldPlanCache:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field plan_cache", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PlanCache); err != nil {
					return fmt.Errorf("unmarshal field plan_cache: %w", err)
				}
			}
		case workflow.FieldIssueCache:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field issue_cache", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.IssueCache); err != nil {
					return fmt.Errorf("unmarshal field issue_cache: %w", err)
				}
			}
		case workflow.FieldReviewIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field review_iteration", values[i])
			} else if value.Valid {
				_m.ReviewIteration = int(value.Int64)
			}
		case workflow.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case workflow.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Workflow.
// This includes values selected through modifiers, order, etc.
func (_m *Workflow) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvents queries the "events" edge of the Workflow entity.
func (_m *Workflow) QueryEvents() *EventQuery {
	return NewWorkflowClient(_m.config).QueryEvents(_m)
}

// QueryCheckpoints queries the "checkpoints" edge of the Workflow entity.
func (_m *Workflow) QueryCheckpoints() *CheckpointQuery {
	return NewWorkflowClient(_m.config).QueryCheckpoints(_m)
}

// QueryTokenUsages queries the "token_usages" edge of the Workflow entity.
func (_m *Workflow) QueryTokenUsages() *TokenUsageQuery {
	return NewWorkflowClient(_m.config).QueryTokenUsages(_m)
}

// QueryPromptVersions queries the "prompt_versions" edge of the Workflow entity.
func (_m *Workflow) QueryPromptVersions() *WorkflowPromptVersionQuery {
	return NewWorkflowClient(_m.config).QueryPromptVersions(_m)
}

// Update returns a builder for updating this Workflow.
// Note that you need to call Workflow.Unwrap() before calling this method if this Workflow
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Workflow) Update() *WorkflowUpdateOne {
	return NewWorkflowClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Workflow entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Workflow) Unwrap() *Workflow {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Workflow is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Workflow) String() string {
	var builder strings.Builder
	builder.WriteString("Workflow(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("issue_id=")
	builder.WriteString(_m.IssueID)
	builder.WriteString(", ")
	builder.WriteString("worktree_path=")
	builder.WriteString(_m.WorktreePath)
	builder.WriteString(", ")
	builder.WriteString("worktree_name=")
	builder.WriteString(_m.WorktreeName)
	builder.WriteString(", ")
	builder.WriteString("profile_id=")
	builder.WriteString(_m.ProfileID)
	builder.WriteString(", ")
	builder.WriteString("workflow_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkflowType))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FailureReason; v != nil {
		builder.WriteString("failure_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("plan_cache=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlanCache))
	builder.WriteString(", ")
	builder.WriteString("issue_cache=")
	builder.WriteString(fmt.Sprintf("%v", _m.IssueCache))
	builder.WriteString(", ")
	builder.WriteString("review_iteration=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewIteration))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Workflows is a parsable slice of Workflow.
type Workflows []*Workflow
