package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/existential-birds/amelia-sub003/ent"
	"github.com/existential-birds/amelia-sub003/ent/workflow"
	"github.com/existential-birds/amelia-sub003/pkg/models"
	"github.com/google/uuid"
)

// WorkflowService manages workflow lifecycle rows. Status changes go through
// UpdateWorkflowStatus, which enforces the transition table; nothing else in
// the codebase writes the status column.
type WorkflowService struct {
	client *ent.Client
}

// NewWorkflowService creates a new WorkflowService
func NewWorkflowService(client *ent.Client) *WorkflowService {
	return &WorkflowService{client: client}
}

// CreateWorkflow creates a new workflow row in status pending.
//
// The worktree exclusivity check runs inside the transaction; the partial
// unique index on (worktree_path) WHERE active is the authoritative backstop
// under concurrent creates.
func (s *WorkflowService) CreateWorkflow(httpCtx context.Context, req models.CreateWorkflowRequest, issue *models.Issue) (*ent.Workflow, error) {
	if req.IssueID == "" {
		return nil, NewValidationError("issue_id", "required")
	}
	if req.WorktreePath == "" {
		return nil, NewValidationError("worktree_path", "required")
	}
	if req.ProfileID == "" {
		return nil, NewValidationError("profile_id", "required")
	}

	workflowType := workflow.WorkflowTypeFull
	if req.WorkflowType != "" {
		workflowType = workflow.WorkflowType(req.WorkflowType)
		if err := workflow.WorkflowTypeValidator(workflowType); err != nil {
			return nil, NewValidationError("workflow_type", err.Error())
		}
	}

	workflowID := req.WorkflowID
	if workflowID == "" {
		workflowID = uuid.New().String()
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Fast-path conflict check with a clear error. Any non-terminal row
	// occupies the worktree, pending included; the partial unique index
	// catches races between concurrent creates.
	conflicting, err := tx.Workflow.Query().
		Where(
			workflow.WorktreePathEQ(req.WorktreePath),
			workflow.StatusIn(models.OpenStatuses...),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check worktree exclusivity: %w", err)
	}
	if conflicting {
		return nil, fmt.Errorf("%w: %s", ErrWorkflowConflict, req.WorktreePath)
	}

	builder := tx.Workflow.Create().
		SetID(workflowID).
		SetIssueID(req.IssueID).
		SetWorktreePath(req.WorktreePath).
		SetProfileID(req.ProfileID).
		SetWorkflowType(workflowType).
		SetStatus(workflow.StatusPending)

	if req.WorktreeName != "" {
		builder.SetWorktreeName(req.WorktreeName)
	}
	if issue != nil {
		builder.SetIssueCache(issue.ToMap())
	}

	wf, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// The worktree index firing means a concurrent create won
			// the race; anything else is a duplicate workflow ID.
			if strings.Contains(err.Error(), "workflow_worktree_path") {
				return nil, fmt.Errorf("%w: %s", ErrWorkflowConflict, req.WorktreePath)
			}
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create workflow: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return wf, nil
}

// GetWorkflow retrieves a workflow by ID
func (s *WorkflowService) GetWorkflow(ctx context.Context, workflowID string) (*ent.Workflow, error) {
	wf, err := s.client.Workflow.Query().
		Where(workflow.IDEQ(workflowID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workflow: %w", err)
	}

	return wf, nil
}

// ListWorkflows lists workflows with filtering and pagination
func (s *WorkflowService) ListWorkflows(ctx context.Context, filters models.WorkflowFilters) (*models.WorkflowListResponse, error) {
	query := s.client.Workflow.Query()

	if filters.Status != "" {
		// Comma-separated status list.
		parts := strings.Split(filters.Status, ",")
		statuses := make([]workflow.Status, 0, len(parts))
		for _, p := range parts {
			statuses = append(statuses, workflow.Status(strings.TrimSpace(p)))
		}
		query = query.Where(workflow.StatusIn(statuses...))
	}
	if filters.ProfileID != "" {
		query = query.Where(workflow.ProfileIDEQ(filters.ProfileID))
	}
	if filters.WorktreePath != "" {
		query = query.Where(workflow.WorktreePathEQ(filters.WorktreePath))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(workflow.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(workflow.CreatedAtLT(*filters.CreatedBefore))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count workflows: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	workflows, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(workflow.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}

	return &models.WorkflowListResponse{
		Workflows:  workflows,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateWorkflowStatus transitions a workflow to a new status, enforcing the
// transition table. failureReason is recorded only on failed/cancelled.
func (s *WorkflowService) UpdateWorkflowStatus(ctx context.Context, workflowID string, status workflow.Status, failureReason string) (*ent.Workflow, error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := tx.Workflow.Query().
		Where(workflow.IDEQ(workflowID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load workflow: %w", err)
	}

	if !models.CanTransition(current.Status, status) {
		return nil, &TransitionError{
			WorkflowID: workflowID,
			From:       string(current.Status),
			To:         string(status),
		}
	}

	update := current.Update().SetStatus(status)

	if status == workflow.StatusPlanning || (current.Status == workflow.StatusPending && status == workflow.StatusInProgress) {
		update = update.SetStartedAt(time.Now())
	}
	if models.IsTerminal(status) {
		update = update.SetCompletedAt(time.Now())
	}
	if failureReason != "" && (status == workflow.StatusFailed || status == workflow.StatusCancelled) {
		update = update.SetFailureReason(failureReason)
	}

	updated, err := update.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to update workflow status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit status update: %w", err)
	}

	return updated, nil
}

// SetPlanCache stores the architect's plan artifact snapshot.
func (s *WorkflowService) SetPlanCache(ctx context.Context, workflowID string, plan *models.PlanArtifact) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Workflow.UpdateOneID(workflowID).
		SetPlanCache(plan.ToMap()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set plan cache: %w", err)
	}

	return nil
}

// IncrementReviewIteration bumps the review loop counter and returns the new
// value.
func (s *WorkflowService) IncrementReviewIteration(ctx context.Context, workflowID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wf, err := s.client.Workflow.UpdateOneID(workflowID).
		AddReviewIteration(1).
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to increment review iteration: %w", err)
	}

	return wf.ReviewIteration, nil
}

// Heartbeat refreshes last_heartbeat_at for a running workflow.
func (s *WorkflowService) Heartbeat(ctx context.Context, workflowID string, podID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Workflow.UpdateOneID(workflowID).
		SetLastHeartbeatAt(time.Now())
	if podID != "" {
		update = update.SetPodID(podID)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record heartbeat: %w", err)
	}

	return nil
}

// CountActive returns how many workflows currently hold an active status.
func (s *WorkflowService) CountActive(ctx context.Context) (int, error) {
	count, err := s.client.Workflow.Query().
		Where(workflow.StatusIn(models.ActiveStatuses...)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active workflows: %w", err)
	}

	return count, nil
}

// CountOpen returns how many workflows are in any non-terminal status.
// Admission uses this rather than CountActive so a freshly created pending
// row already holds its concurrency slot.
func (s *WorkflowService) CountOpen(ctx context.Context) (int, error) {
	count, err := s.client.Workflow.Query().
		Where(workflow.StatusIn(models.OpenStatuses...)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count open workflows: %w", err)
	}

	return count, nil
}

// FindOpenByWorktree returns the non-terminal workflow holding a worktree,
// or ErrNotFound.
func (s *WorkflowService) FindOpenByWorktree(ctx context.Context, worktreePath string) (*ent.Workflow, error) {
	wf, err := s.client.Workflow.Query().
		Where(
			workflow.WorktreePathEQ(worktreePath),
			workflow.StatusIn(models.OpenStatuses...),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find worktree holder: %w", err)
	}

	return wf, nil
}

// FindResumable returns non-terminal workflows for startup recovery: rows in
// an active status whose heartbeat is stale, plus pending rows never picked
// up.
func (s *WorkflowService) FindResumable(ctx context.Context, orphanThreshold time.Duration) ([]*ent.Workflow, error) {
	threshold := time.Now().Add(-orphanThreshold)

	workflows, err := s.client.Workflow.Query().
		Where(
			workflow.Or(
				workflow.StatusEQ(workflow.StatusPending),
				workflow.And(
					workflow.StatusIn(models.ActiveStatuses...),
					workflow.Or(
						workflow.LastHeartbeatAtIsNil(),
						workflow.LastHeartbeatAtLT(threshold),
					),
				),
			),
		).
		Order(ent.Asc(workflow.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find resumable workflows: %w", err)
	}

	return workflows, nil
}
