package services

import (
	"context"
	"fmt"
	"time"

	"github.com/existential-birds/amelia-sub003/ent"
	"github.com/existential-birds/amelia-sub003/ent/tokenusage"
)

// TokenService records per-agent token consumption reported by drivers.
type TokenService struct {
	client *ent.Client
}

// NewTokenService creates a new TokenService
func NewTokenService(client *ent.Client) *TokenService {
	return &TokenService{client: client}
}

// RecordUsage stores one agent invocation's token counts.
func (s *TokenService) RecordUsage(ctx context.Context, workflowID string, agent tokenusage.Agent, inputTokens, outputTokens int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.TokenUsage.Create().
		SetWorkflowID(workflowID).
		SetAgent(agent).
		SetInputTokens(inputTokens).
		SetOutputTokens(outputTokens).
		SetTotalTokens(inputTokens + outputTokens).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to record token usage: %w", err)
	}

	return nil
}

// TokenTotals aggregates token usage for one workflow.
type TokenTotals struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// WorkflowTotals sums all recorded usage for a workflow.
func (s *TokenService) WorkflowTotals(ctx context.Context, workflowID string) (*TokenTotals, error) {
	usages, err := s.client.TokenUsage.Query().
		Where(tokenusage.WorkflowIDEQ(workflowID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get token usage: %w", err)
	}

	totals := &TokenTotals{}
	for _, u := range usages {
		totals.InputTokens += u.InputTokens
		totals.OutputTokens += u.OutputTokens
		totals.TotalTokens += u.TotalTokens
	}

	return totals, nil
}
