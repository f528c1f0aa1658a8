// Package driver defines the streaming protocol between agents and the
// underlying LLM execution backends. A driver turns one prompt invocation
// into an asynchronous sequence of typed messages ending in exactly one
// terminal message (result or error).
package driver

import (
	"context"
	"errors"
	"fmt"
)

// MessageType identifies one kind of driver stream message.
type MessageType string

const (
	MessageThinking   MessageType = "thinking"
	MessageToolCall   MessageType = "tool_call"
	MessageToolResult MessageType = "tool_result"
	MessageOutput     MessageType = "output"
	MessageResult     MessageType = "result"
	MessageError      MessageType = "error"
)

// Terminal reports whether a message type ends the stream.
func (t MessageType) Terminal() bool {
	return t == MessageResult || t == MessageError
}

// TokenUsage carries the token counts reported on a terminal result.
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Message is one element of a driver stream. Fields are populated per type:
// thinking and output carry Content; tool_call carries ID, ToolName and
// ToolInput; tool_result carries CallID, Output and IsError; result carries
// SessionID, FinalText and Usage; error carries Reason.
type Message struct {
	Type      MessageType            `json:"type"`
	Content   string                 `json:"content,omitempty"`
	ID        string                 `json:"id,omitempty"`
	ToolName  string                 `json:"tool_name,omitempty"`
	ToolInput map[string]interface{} `json:"tool_input,omitempty"`
	CallID    string                 `json:"call_id,omitempty"`
	Output    string                 `json:"output,omitempty"`
	IsError   bool                   `json:"is_error,omitempty"`
	SessionID string                 `json:"session_id,omitempty"`
	FinalText string                 `json:"final_text,omitempty"`
	Reason    string                 `json:"reason,omitempty"`
	Usage     *TokenUsage            `json:"usage,omitempty"`
}

// Request describes one driver invocation.
type Request struct {
	Prompt       string
	SystemPrompt string
	WorkingDir   string
	// PriorSession resumes an earlier invocation's context when non-empty.
	PriorSession string
	Model        string
	// Options carries driver-specific settings from the agent profile.
	Options map[string]string
}

// Driver produces a message stream for one invocation. The returned channel
// is closed after the terminal message. Cancelling ctx must cause the driver
// to stop within a bounded time and still produce a terminal message.
type Driver interface {
	Run(ctx context.Context, req Request) (<-chan Message, error)
}

// ErrUnterminated indicates a driver stream ended without a terminal message.
var ErrUnterminated = errors.New("driver stream ended without terminal message")

// Consume drains a driver stream, invoking observe for every non-terminal
// message, and returns the terminal message. A stream that closes without a
// terminal message yields ErrUnterminated; a terminal error message is
// returned alongside a descriptive error so callers can branch on either.
func Consume(ctx context.Context, messages <-chan Message, observe func(Message) error) (Message, error) {
	for {
		select {
		case <-ctx.Done():
			return Message{}, ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return Message{}, ErrUnterminated
			}
			if msg.Type.Terminal() {
				if msg.Type == MessageError {
					return msg, fmt.Errorf("driver failed: %s", msg.Reason)
				}
				return msg, nil
			}
			if observe != nil {
				if err := observe(msg); err != nil {
					return Message{}, err
				}
			}
		}
	}
}
