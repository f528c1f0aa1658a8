package services

import (
	"context"
	"fmt"
	"time"

	"github.com/existential-birds/amelia-sub003/ent"
	"github.com/existential-birds/amelia-sub003/ent/prompt"
	"github.com/existential-birds/amelia-sub003/ent/promptversion"
	"github.com/google/uuid"
)

// PromptService stores versioned agent prompt templates and records which
// versions each workflow ran with.
type PromptService struct {
	client *ent.Client
}

// NewPromptService creates a new PromptService
func NewPromptService(client *ent.Client) *PromptService {
	return &PromptService{client: client}
}

// UpsertPromptVersion stores content as a new version of the named prompt,
// creating the prompt row if needed. Identical content to the latest version
// is not duplicated; the existing version is returned.
func (s *PromptService) UpsertPromptVersion(ctx context.Context, promptID, description, content string) (*ent.PromptVersion, error) {
	if promptID == "" {
		return nil, NewValidationError("prompt_id", "required")
	}
	if content == "" {
		return nil, NewValidationError("content", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.Prompt.Create().
		SetID(promptID).
		SetDescription(description).
		OnConflictColumns(prompt.FieldID).
		Ignore().
		Exec(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert prompt: %w", err)
	}

	latest, err := tx.PromptVersion.Query().
		Where(promptversion.PromptIDEQ(promptID)).
		Order(ent.Desc(promptversion.FieldVersion)).
		First(writeCtx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get latest prompt version: %w", err)
	}

	if latest != nil && latest.Content == content {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return latest, nil
	}

	next := 1
	if latest != nil {
		next = latest.Version + 1
	}

	version, err := tx.PromptVersion.Create().
		SetID(uuid.New().String()).
		SetPromptID(promptID).
		SetVersion(next).
		SetContent(content).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return version, nil
}

// LatestVersion returns the newest version of the named prompt.
func (s *PromptService) LatestVersion(ctx context.Context, promptID string) (*ent.PromptVersion, error) {
	version, err := s.client.PromptVersion.Query().
		Where(promptversion.PromptIDEQ(promptID)).
		Order(ent.Desc(promptversion.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest prompt version: %w", err)
	}

	return version, nil
}

// LinkWorkflowVersion records that a workflow ran with a prompt version.
// Duplicate links are ignored.
func (s *PromptService) LinkWorkflowVersion(ctx context.Context, workflowID, promptVersionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.WorkflowPromptVersion.Create().
		SetWorkflowID(workflowID).
		SetPromptVersionID(promptVersionID).
		Exec(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("failed to link workflow prompt version: %w", err)
	}

	return nil
}
