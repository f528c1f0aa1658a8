// Package events provides the workflow event pipeline: append-only
// persistence with per-workflow sequencing, real-time delivery via
// WebSocket, and PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Every event carries an event_type that maps to exactly one level:
//
//   - info:  workflow and stage lifecycle plus approval actions. Persisted,
//     shown on workflow list pages.
//   - debug: task progress, file operations, warnings and errors.
//     Persisted.
//   - trace: raw agent activity (thinking, tool calls, tool results,
//     output). Persisted only while trace retention is enabled; always
//     streamed live.
//
// The mapping is consulted in both directions: at emission (to store the
// level) and at retention (to select rows for each sweep).
package events

import "github.com/existential-birds/amelia-sub003/ent/event"

// Workflow lifecycle event types (level info).
const (
	EventTypeWorkflowCreated   = "workflow_created"
	EventTypeWorkflowStarted   = "workflow_started"
	EventTypeWorkflowCompleted = "workflow_completed"
	EventTypeWorkflowFailed    = "workflow_failed"
	EventTypeWorkflowCancelled = "workflow_cancelled"
)

// Stage and approval event types (level info).
const (
	EventTypeStageStarted      = "stage_started"
	EventTypeStageCompleted    = "stage_completed"
	EventTypeApprovalRequired  = "approval_required"
	EventTypeApprovalGranted   = "approval_granted"
	EventTypeApprovalRejected  = "approval_rejected"
	EventTypeRevisionRequested = "revision_requested"
)

// Progress and diagnostic event types (level debug).
const (
	EventTypeTaskStarted   = "task_started"
	EventTypeTaskCompleted = "task_completed"
	EventTypeFileOperation = "file_operation"
	EventTypeSystemWarning = "system_warning"
	EventTypeSystemError   = "system_error"
)

// Raw agent activity event types (level trace).
const (
	EventTypeClaudeThinking   = "claude_thinking"
	EventTypeClaudeToolCall   = "claude_tool_call"
	EventTypeClaudeToolResult = "claude_tool_result"
	EventTypeAgentOutput      = "agent_output"
)

// levelByType is the fixed event_type to level table.
var levelByType = map[string]event.Level{
	EventTypeWorkflowCreated:   event.LevelInfo,
	EventTypeWorkflowStarted:   event.LevelInfo,
	EventTypeWorkflowCompleted: event.LevelInfo,
	EventTypeWorkflowFailed:    event.LevelInfo,
	EventTypeWorkflowCancelled: event.LevelInfo,
	EventTypeStageStarted:      event.LevelInfo,
	EventTypeStageCompleted:    event.LevelInfo,
	EventTypeApprovalRequired:  event.LevelInfo,
	EventTypeApprovalGranted:   event.LevelInfo,
	EventTypeApprovalRejected:  event.LevelInfo,
	EventTypeRevisionRequested: event.LevelInfo,

	EventTypeTaskStarted:   event.LevelDebug,
	EventTypeTaskCompleted: event.LevelDebug,
	EventTypeFileOperation: event.LevelDebug,
	EventTypeSystemWarning: event.LevelDebug,
	EventTypeSystemError:   event.LevelDebug,

	EventTypeClaudeThinking:   event.LevelTrace,
	EventTypeClaudeToolCall:   event.LevelTrace,
	EventTypeClaudeToolResult: event.LevelTrace,
	EventTypeAgentOutput:      event.LevelTrace,
}

// LevelFor returns the level for an event type. Unknown types default to
// debug so they are persisted but kept off the lifecycle surfaces.
func LevelFor(eventType string) event.Level {
	if level, ok := levelByType[eventType]; ok {
		return level
	}
	return event.LevelDebug
}

// GlobalWorkflowsChannel carries a transient copy of every non-trace event
// for wildcard subscribers and the workflow list page.
const GlobalWorkflowsChannel = "workflows"

// TraceChannel carries every trace event. Trace payloads are delivered to
// all connections.
const TraceChannel = "trace"

// WorkflowChannel returns the channel name for a specific workflow's events.
// Format: "workflow:{workflow_id}"
func WorkflowChannel(workflowID string) string {
	return "workflow:" + workflowID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action     string `json:"action"`                // "subscribe", "unsubscribe", "subscribe_all", "catchup", "pong"
	WorkflowID string `json:"workflow_id,omitempty"` // For subscribe/unsubscribe/catchup
	SinceID    *int   `json:"since_id,omitempty"`    // For catchup
}
