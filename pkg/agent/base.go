package agent

import (
	"context"
	"log/slog"

	"github.com/existential-birds/amelia-sub003/ent/tokenusage"
	"github.com/existential-birds/amelia-sub003/pkg/config"
	"github.com/existential-birds/amelia-sub003/pkg/driver"
	"github.com/existential-birds/amelia-sub003/pkg/events"
	"github.com/existential-birds/amelia-sub003/pkg/models"
)

// run executes one driver invocation, streaming every non-terminal message
// as a trace event and recording token usage from the terminal result.
// The terminal message is returned even when err is non-nil so callers can
// inspect the failure reason.
func (d *Deps) run(ctx context.Context, role config.AgentRole, inv Invocation, req driver.Request) (driver.Message, error) {
	stream, err := inv.Driver.Run(ctx, req)
	if err != nil {
		return driver.Message{}, err
	}

	terminal, err := driver.Consume(ctx, stream, func(msg driver.Message) error {
		d.emitTrace(ctx, inv.WorkflowID, role, msg)
		return nil
	})

	if terminal.Usage != nil && d.Tokens != nil {
		if recErr := d.Tokens.RecordUsage(ctx, inv.WorkflowID, usageAgent(role),
			terminal.Usage.InputTokens, terminal.Usage.OutputTokens); recErr != nil {
			slog.Warn("Failed to record token usage",
				"workflow_id", inv.WorkflowID, "agent", role, "error", recErr)
		}
	}

	return terminal, err
}

// emitTrace translates one driver message into its trace event. Publish
// failures are logged, never propagated: a lost trace must not fail the run.
func (d *Deps) emitTrace(ctx context.Context, workflowID string, role config.AgentRole, msg driver.Message) {
	req := models.CreateEventRequest{
		WorkflowID: workflowID,
		Agent:      eventAgent(role),
	}

	switch msg.Type {
	case driver.MessageThinking:
		req.EventType = events.EventTypeClaudeThinking
		req.Message = d.Masker.Mask(msg.Content)
	case driver.MessageToolCall:
		req.EventType = events.EventTypeClaudeToolCall
		req.Message = "invoking " + msg.ToolName
		req.ToolName = msg.ToolName
		req.ToolInput = d.Masker.MaskMap(msg.ToolInput)
		req.CorrelationID = msg.ID
	case driver.MessageToolResult:
		if !d.StreamToolResults {
			return
		}
		req.EventType = events.EventTypeClaudeToolResult
		req.Message = d.Masker.Mask(msg.Output)
		req.CorrelationID = msg.CallID
		req.IsError = msg.IsError
	case driver.MessageOutput:
		req.EventType = events.EventTypeAgentOutput
		req.Message = d.Masker.Mask(msg.Content)
	default:
		return
	}

	if _, err := d.Publisher.Publish(ctx, req); err != nil {
		slog.Warn("Failed to publish trace event",
			"workflow_id", workflowID, "event_type", req.EventType, "error", err)
	}
}

func (d *Deps) emitStageStarted(ctx context.Context, workflowID string, role config.AgentRole) {
	d.emitStage(ctx, workflowID, role, events.EventTypeStageStarted, string(role)+" stage started", nil)
}

func (d *Deps) emitStageCompleted(ctx context.Context, workflowID string, role config.AgentRole, data map[string]interface{}) {
	d.emitStage(ctx, workflowID, role, events.EventTypeStageCompleted, string(role)+" stage completed", data)
}

// emitAgentError records a driver failure as a debug event flagged is_error.
func (d *Deps) emitAgentError(ctx context.Context, workflowID string, role config.AgentRole, reason string) {
	if _, err := d.Publisher.Publish(ctx, models.CreateEventRequest{
		WorkflowID: workflowID,
		Agent:      eventAgent(role),
		EventType:  events.EventTypeSystemError,
		Message:    d.Masker.Mask(reason),
		IsError:    true,
	}); err != nil {
		slog.Warn("Failed to publish error event",
			"workflow_id", workflowID, "error", err)
	}
}

func (d *Deps) emitStage(ctx context.Context, workflowID string, role config.AgentRole, eventType, message string, data map[string]interface{}) {
	if _, err := d.Publisher.Publish(ctx, models.CreateEventRequest{
		WorkflowID: workflowID,
		Agent:      eventAgent(role),
		EventType:  eventType,
		Message:    message,
		Data:       data,
	}); err != nil {
		slog.Warn("Failed to publish stage event",
			"workflow_id", workflowID, "event_type", eventType, "error", err)
	}
}

func usageAgent(role config.AgentRole) tokenusage.Agent {
	switch role {
	case config.RoleDeveloper:
		return tokenusage.AgentDeveloper
	case config.RoleReviewer:
		return tokenusage.AgentReviewer
	default:
		return tokenusage.AgentArchitect
	}
}
