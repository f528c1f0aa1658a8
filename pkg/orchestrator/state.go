package orchestrator

import (
	"encoding/json"
	"fmt"

	"github.com/existential-birds/amelia-sub003/ent"
	"github.com/existential-birds/amelia-sub003/pkg/models"
)

// Graph node identifiers. Checkpoints are keyed by these, so renaming one
// breaks resumption of in-flight workflows.
const (
	NodeArchitect    = "architect_node"
	NodeApprovalGate = "approval_gate"
	NodeDeveloper    = "developer_node"
	NodeReviewer     = "reviewer_node"
)

// ExecutionState is the serializable snapshot of one workflow run. It is
// persisted as a checkpoint after every node completion and before every
// suspension; a restarted process resumes from the latest snapshot.
type ExecutionState struct {
	WorkflowID   string        `json:"workflow_id"`
	IssueID      string        `json:"issue_id"`
	Issue        *models.Issue `json:"issue,omitempty"`
	ProfileID    string        `json:"profile_id"`
	WorktreePath string        `json:"worktree_path"`

	// DriverOverride replaces the profile's driver for all agents when set.
	DriverOverride string `json:"driver_override,omitempty"`

	// Node is the next node to execute.
	Node string `json:"node"`

	PlanPath    string   `json:"plan_path,omitempty"`
	PlanGoal    string   `json:"plan_goal,omitempty"`
	PlanContent string   `json:"plan_content,omitempty"`
	KeyFiles    []string `json:"key_files,omitempty"`

	// Feedback accumulates reviewer revision requests, oldest first.
	Feedback []string `json:"feedback,omitempty"`

	// DeveloperSession lets the developer driver resume its context across
	// review iterations.
	DeveloperSession string `json:"developer_session,omitempty"`

	ReviewIteration int `json:"review_iteration"`

	// ApprovalRequested is set once the approval_required event has been
	// emitted, so a resumed workflow does not emit it twice.
	ApprovalRequested bool `json:"approval_requested"`
}

// ToMap converts the state to the JSON shape stored in checkpoints.
func (s *ExecutionState) ToMap() (map[string]interface{}, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal execution state: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to convert execution state: %w", err)
	}
	return m, nil
}

// StateFromMap reconstructs an ExecutionState from a checkpoint snapshot.
func StateFromMap(m map[string]interface{}) (*ExecutionState, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal checkpoint state: %w", err)
	}
	var s ExecutionState
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to decode checkpoint state: %w", err)
	}
	if s.WorkflowID == "" || s.Node == "" {
		return nil, fmt.Errorf("checkpoint state is missing workflow_id or node")
	}
	return &s, nil
}

// stateFromWorkflowRow rebuilds execution state from the workflow row alone,
// for blocked workflows whose checkpoint was purged. The plan and issue
// caches carry everything the approval gate onwards needs.
func stateFromWorkflowRow(wf *ent.Workflow) *ExecutionState {
	st := &ExecutionState{
		WorkflowID:        wf.ID,
		IssueID:           wf.IssueID,
		Issue:             models.IssueFromMap(wf.IssueCache),
		ProfileID:         wf.ProfileID,
		WorktreePath:      wf.WorktreePath,
		Node:              NodeApprovalGate,
		ReviewIteration:   wf.ReviewIteration,
		ApprovalRequested: true,
	}
	if plan := models.PlanArtifactFromMap(wf.PlanCache); plan != nil {
		st.PlanPath = plan.Path
		st.PlanGoal = plan.Goal
		st.PlanContent = plan.Markdown
	}
	return st
}
