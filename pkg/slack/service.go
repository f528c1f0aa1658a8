// Package slack posts workflow lifecycle notifications to a Slack channel.
package slack

import (
	"context"
	"log/slog"
	"time"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// ApprovalRequiredInput contains data for a plan-ready notification.
type ApprovalRequiredInput struct {
	WorkflowID string
	IssueID    string
	PlanPath   string
}

// WorkflowCompletedInput contains data for a terminal workflow notification.
type WorkflowCompletedInput struct {
	WorkflowID    string
	IssueID       string
	Status        string // completed, failed, cancelled
	FailureReason string
}

// Service handles Slack notification delivery.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NotifyApprovalRequired announces a plan awaiting human review.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyApprovalRequired(ctx context.Context, input ApprovalRequiredInput) {
	if s == nil {
		return
	}

	blocks := BuildApprovalMessage(input.WorkflowID, input.IssueID, input.PlanPath, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, 5*time.Second); err != nil {
		s.logger.Error("Failed to send Slack approval notification",
			"workflow_id", input.WorkflowID,
			"error", err)
	}
}

// NotifyWorkflowCompleted sends a terminal status notification.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyWorkflowCompleted(ctx context.Context, input WorkflowCompletedInput) {
	if s == nil {
		return
	}

	blocks := BuildTerminalMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, 10*time.Second); err != nil {
		s.logger.Error("Failed to send Slack notification",
			"workflow_id", input.WorkflowID,
			"status", input.Status,
			"error", err)
	}
}
