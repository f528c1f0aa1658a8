package models

import "github.com/existential-birds/amelia-sub003/ent/event"

// CreateEventRequest contains fields for appending a workflow event.
// Sequence assignment and level derivation happen in the event pipeline,
// not here.
type CreateEventRequest struct {
	WorkflowID    string                 `json:"workflow_id"`
	Agent         event.Agent            `json:"agent"`
	EventType     string                 `json:"event_type"`
	Message       string                 `json:"message"`
	Data          map[string]interface{} `json:"data,omitempty"`
	CorrelationID string                 `json:"correlation_id,omitempty"`
	TraceID       string                 `json:"trace_id,omitempty"`
	ParentID      string                 `json:"parent_id,omitempty"`
	ToolName      string                 `json:"tool_name,omitempty"`
	ToolInput     map[string]interface{} `json:"tool_input,omitempty"`
	IsError       bool                   `json:"is_error,omitempty"`
}

// EventFilters contains filtering options for listing workflow events
type EventFilters struct {
	Level         string `json:"level,omitempty"`
	EventType     string `json:"event_type,omitempty"`
	AfterSequence int    `json:"after_sequence,omitempty"`
	Limit         int    `json:"limit,omitempty"`
	Offset        int    `json:"offset,omitempty"`
}
