package services

import (
	"context"
	"fmt"
	"time"

	"github.com/existential-birds/amelia-sub003/ent"
	"github.com/existential-birds/amelia-sub003/ent/checkpoint"
	"github.com/google/uuid"
)

// CheckpointService persists ExecutionState snapshots at node boundaries.
type CheckpointService struct {
	client *ent.Client
}

// NewCheckpointService creates a new CheckpointService
func NewCheckpointService(client *ent.Client) *CheckpointService {
	return &CheckpointService{client: client}
}

// SaveCheckpoint stores a snapshot for a workflow at the given node.
func (s *CheckpointService) SaveCheckpoint(ctx context.Context, workflowID, node string, state map[string]interface{}) (*ent.Checkpoint, error) {
	if workflowID == "" {
		return nil, NewValidationError("workflow_id", "required")
	}
	if node == "" {
		return nil, NewValidationError("node", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cp, err := s.client.Checkpoint.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(workflowID).
		SetNode(node).
		SetState(state).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to save checkpoint: %w", err)
	}

	return cp, nil
}

// LatestCheckpoint returns the most recent snapshot for a workflow.
func (s *CheckpointService) LatestCheckpoint(ctx context.Context, workflowID string) (*ent.Checkpoint, error) {
	cp, err := s.client.Checkpoint.Query().
		Where(checkpoint.WorkflowIDEQ(workflowID)).
		Order(ent.Desc(checkpoint.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest checkpoint: %w", err)
	}

	return cp, nil
}

// CleanupWorkflowCheckpoints removes all checkpoints for a workflow
func (s *CheckpointService) CleanupWorkflowCheckpoints(ctx context.Context, workflowID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Checkpoint.Delete().
		Where(checkpoint.WorkflowIDEQ(workflowID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup workflow checkpoints: %w", err)
	}

	return count, nil
}

// PurgeOldCheckpoints removes checkpoints older than the retention window.
func (s *CheckpointService) PurgeOldCheckpoints(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Checkpoint.Delete().
		Where(checkpoint.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge old checkpoints: %w", err)
	}

	return count, nil
}
