package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/existential-birds/amelia-sub003/ent"
)

// Envelope is the wire format for one event, used both for NOTIFY payloads
// and WebSocket frames. ID and Sequence are zero for transient (never
// persisted) events.
type Envelope struct {
	Type          string                 `json:"type"` // always "event"
	ID            int                    `json:"id,omitempty"`
	WorkflowID    string                 `json:"workflow_id"`
	Sequence      int                    `json:"sequence,omitempty"`
	Agent         string                 `json:"agent"`
	EventType     string                 `json:"event_type"`
	Level         string                 `json:"level"`
	Message       string                 `json:"message"`
	Data          map[string]interface{} `json:"data,omitempty"`
	CorrelationID string                 `json:"correlation_id,omitempty"`
	TraceID       string                 `json:"trace_id,omitempty"`
	ParentID      string                 `json:"parent_id,omitempty"`
	ToolName      string                 `json:"tool_name,omitempty"`
	ToolInput     map[string]interface{} `json:"tool_input,omitempty"`
	IsError       bool                   `json:"is_error,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}

// EnvelopeFromEnt converts a stored event row to its wire form.
func EnvelopeFromEnt(e *ent.Event) *Envelope {
	env := &Envelope{
		Type:       "event",
		ID:         e.ID,
		WorkflowID: e.WorkflowID,
		Sequence:   e.Sequence,
		Agent:      string(e.Agent),
		EventType:  e.EventType,
		Level:      string(e.Level),
		Message:    e.Message,
		Data:       e.Data,
		ToolInput:  e.ToolInput,
		IsError:    e.IsError,
		CreatedAt:  e.CreatedAt,
	}
	if e.CorrelationID != nil {
		env.CorrelationID = *e.CorrelationID
	}
	if e.TraceID != nil {
		env.TraceID = *e.TraceID
	}
	if e.ParentID != nil {
		env.ParentID = *e.ParentID
	}
	if e.ToolName != nil {
		env.ToolName = *e.ToolName
	}
	return env
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the REST API.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type       string `json:"type"`
		ID         int    `json:"id"`
		WorkflowID string `json:"workflow_id"`
		Sequence   int    `json:"sequence"`
		EventType  string `json:"event_type"`
		Level      string `json:"level"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":        routing.Type,
		"workflow_id": routing.WorkflowID,
		"event_type":  routing.EventType,
		"level":       routing.Level,
		"truncated":   true,
	}
	if routing.ID != 0 {
		truncated["id"] = routing.ID
		truncated["sequence"] = routing.Sequence
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
