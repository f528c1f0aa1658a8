// Package anthropicapi runs prompts through the hosted Anthropic Messages
// API with streaming. The API has no server-side sessions, so conversation
// continuity is kept in an in-memory history keyed by a generated session id.
package anthropicapi

import (
	"context"
	"strconv"
	"strings"
	"sync"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
	"github.com/google/uuid"

	"github.com/existential-birds/amelia-sub003/pkg/driver"
)

const defaultMaxTokens = 8192

// Driver streams completions from the Anthropic API.
type Driver struct {
	client sdk.Client

	// Conversation history per session id. Entries live for the process
	// lifetime; a workflow holds at most a handful of sessions.
	mu       sync.Mutex
	sessions map[string][]sdk.MessageParam
}

// New creates an API driver. An empty apiKey falls back to the SDK's
// ANTHROPIC_API_KEY environment lookup.
func New(apiKey string) *Driver {
	opts := []option.RequestOption{}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	return &Driver{
		client:   sdk.NewClient(opts...),
		sessions: make(map[string][]sdk.MessageParam),
	}
}

// Run streams one Messages API turn. Text deltas surface as output messages,
// thinking deltas as thinking messages, and the accumulated final message
// becomes the terminal result carrying a session id for resumption.
func (d *Driver) Run(ctx context.Context, req driver.Request) (<-chan driver.Message, error) {
	history := d.history(req.PriorSession)
	history = append(history, sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt)))

	params := sdk.MessageNewParams{
		Model:     sdk.Model(req.Model),
		MaxTokens: maxTokens(req.Options),
		Messages:  history,
	}
	if req.SystemPrompt != "" {
		params.System = []sdk.TextBlockParam{{Text: req.SystemPrompt}}
	}

	stream := d.client.Messages.NewStreaming(ctx, params)

	messages := make(chan driver.Message, 32)
	go d.pump(ctx, stream, history, messages)
	return messages, nil
}

func (d *Driver) pump(ctx context.Context, stream *ssestream.Stream[sdk.MessageStreamEventUnion], history []sdk.MessageParam, messages chan<- driver.Message) {
	defer close(messages)

	var acc sdk.Message
	var text strings.Builder

	emit := func(msg driver.Message) bool {
		select {
		case messages <- msg:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for stream.Next() {
		event := stream.Current()
		if err := acc.Accumulate(event); err != nil {
			emit(driver.Message{Type: driver.MessageError, Reason: "stream accumulation failed: " + err.Error()})
			return
		}

		switch ev := event.AsAny().(type) {
		case sdk.ContentBlockDeltaEvent:
			switch delta := ev.Delta.AsAny().(type) {
			case sdk.TextDelta:
				if delta.Text == "" {
					continue
				}
				text.WriteString(delta.Text)
				if !emit(driver.Message{Type: driver.MessageOutput, Content: delta.Text}) {
					return
				}
			case sdk.ThinkingDelta:
				if delta.Thinking == "" {
					continue
				}
				if !emit(driver.Message{Type: driver.MessageThinking, Content: delta.Thinking}) {
					return
				}
			}
		}
	}

	if err := stream.Err(); err != nil {
		reason := "api stream failed: " + err.Error()
		if ctx.Err() != nil {
			reason = "cancelled"
		}
		emit(driver.Message{Type: driver.MessageError, Reason: reason})
		return
	}
	if ctx.Err() != nil {
		emit(driver.Message{Type: driver.MessageError, Reason: "cancelled"})
		return
	}

	sessionID := d.storeSession(history, acc)

	result := driver.Message{
		Type:      driver.MessageResult,
		SessionID: sessionID,
		FinalText: text.String(),
		Usage: &driver.TokenUsage{
			InputTokens:  int(acc.Usage.InputTokens),
			OutputTokens: int(acc.Usage.OutputTokens),
		},
	}
	emit(result)
}

// history returns a copy of a session's conversation, or nil for a fresh one.
func (d *Driver) history(sessionID string) []sdk.MessageParam {
	if sessionID == "" {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	prior := d.sessions[sessionID]
	out := make([]sdk.MessageParam, len(prior))
	copy(out, prior)
	return out
}

// storeSession records the turn under a fresh session id for later resumption.
func (d *Driver) storeSession(history []sdk.MessageParam, final sdk.Message) string {
	sessionID := uuid.New().String()
	full := append(history, final.ToParam())
	d.mu.Lock()
	d.sessions[sessionID] = full
	d.mu.Unlock()
	return sessionID
}

func maxTokens(options map[string]string) int64 {
	if raw := options["max_tokens"]; raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultMaxTokens
}
