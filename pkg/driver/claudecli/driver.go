// Package claudecli runs prompts through the Claude Code CLI in headless
// mode, parsing its stream-json output into driver messages.
package claudecli

import (
	"bufio"
	"context"
	"encoding/json"
	"log/slog"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/existential-birds/amelia-sub003/pkg/driver"
)

const (
	defaultBinary = "claude"
	// Grace period between SIGTERM and SIGKILL on cancellation.
	defaultStopGrace = 5 * time.Second
	// Scanner buffer sized for large tool outputs on single lines.
	maxLineBytes = 10 * 1024 * 1024
)

// Driver invokes the claude CLI as a subprocess per request.
type Driver struct {
	binary    string
	stopGrace time.Duration
}

// New creates a CLI driver. An empty binary uses "claude" from PATH.
func New(binary string) *Driver {
	if binary == "" {
		binary = defaultBinary
	}
	return &Driver{binary: binary, stopGrace: defaultStopGrace}
}

// Run spawns the CLI and streams its parsed output. The subprocess receives
// SIGTERM on context cancellation and SIGKILL after the grace period.
func (d *Driver) Run(ctx context.Context, req driver.Request) (<-chan driver.Message, error) {
	args := buildArgs(req)

	// #nosec G204 -- args are assembled from the agent profile, not request bodies
	cmd := exec.CommandContext(ctx, d.binary, args...)
	cmd.Dir = req.WorkingDir
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = d.stopGrace

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	slog.Debug("claude process started", "pid", cmd.Process.Pid, "work_dir", req.WorkingDir)

	messages := make(chan driver.Message, 100)
	go d.pump(ctx, cmd, stdout, messages)
	return messages, nil
}

// pump parses stream-json lines until EOF, then reaps the process and
// guarantees a terminal message.
func (d *Driver) pump(ctx context.Context, cmd *exec.Cmd, stdout interface{ Read([]byte) (int, error) }, messages chan<- driver.Message) {
	defer close(messages)

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	sawTerminal := false
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var ev streamEvent
		if err := json.Unmarshal(line, &ev); err != nil {
			slog.Debug("unparseable stream-json line", "error", err)
			continue
		}

		for _, msg := range ev.toMessages() {
			if msg.Type.Terminal() {
				sawTerminal = true
			}
			select {
			case messages <- msg:
			case <-ctx.Done():
				_ = cmd.Wait()
				return
			}
		}
	}
	scanErr := scanner.Err()

	waitErr := cmd.Wait()

	if sawTerminal {
		return
	}

	reason := "unterminated"
	switch {
	case ctx.Err() != nil:
		reason = "cancelled"
	case waitErr != nil:
		reason = "process exited: " + waitErr.Error()
	case scanErr != nil:
		reason = "output read failed: " + scanErr.Error()
	}
	select {
	case messages <- driver.Message{Type: driver.MessageError, Reason: reason}:
	default:
	}
}

// buildArgs assembles the headless invocation flags.
func buildArgs(req driver.Request) []string {
	args := []string{
		"--print",
		"--output-format", "stream-json",
		"--verbose",
	}
	if req.PriorSession != "" {
		args = append(args, "--resume", req.PriorSession)
	}
	if req.Model != "" {
		args = append(args, "--model", req.Model)
	}
	if req.SystemPrompt != "" {
		args = append(args, "--append-system-prompt", req.SystemPrompt)
	}
	if req.Options["skip_permissions"] == "true" {
		args = append(args, "--dangerously-skip-permissions")
	}
	if tools := req.Options["allowed_tools"]; tools != "" {
		for _, tool := range strings.Split(tools, ",") {
			args = append(args, "--allowed-tools", strings.TrimSpace(tool))
		}
	}
	if tools := req.Options["disallowed_tools"]; tools != "" {
		for _, tool := range strings.Split(tools, ",") {
			args = append(args, "--disallowed-tools", strings.TrimSpace(tool))
		}
	}
	// The -- separator keeps the prompt from being consumed by flags.
	if req.Prompt != "" {
		args = append(args, "--", req.Prompt)
	}
	return args
}

// streamEvent is one line of claude --output-format stream-json.
type streamEvent struct {
	Type      string `json:"type"`
	Subtype   string `json:"subtype"`
	SessionID string `json:"session_id"`
	Message   *struct {
		Content []contentBlock `json:"content"`
	} `json:"message"`
	Result  string `json:"result"`
	IsError bool   `json:"is_error"`
	Usage   *struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type contentBlock struct {
	Type      string                 `json:"type"`
	Text      string                 `json:"text"`
	Thinking  string                 `json:"thinking"`
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Input     map[string]interface{} `json:"input"`
	ToolUseID string                 `json:"tool_use_id"`
	Content   json.RawMessage        `json:"content"`
	IsError   bool                   `json:"is_error"`
}

// toMessages maps one stream-json event onto driver messages. Assistant
// turns can carry several content blocks, so one event may yield several
// messages.
func (ev *streamEvent) toMessages() []driver.Message {
	switch ev.Type {
	case "assistant":
		if ev.Message == nil {
			return nil
		}
		var out []driver.Message
		for _, block := range ev.Message.Content {
			switch block.Type {
			case "thinking":
				out = append(out, driver.Message{Type: driver.MessageThinking, Content: block.Thinking})
			case "text":
				if block.Text != "" {
					out = append(out, driver.Message{Type: driver.MessageOutput, Content: block.Text})
				}
			case "tool_use":
				out = append(out, driver.Message{
					Type:      driver.MessageToolCall,
					ID:        block.ID,
					ToolName:  block.Name,
					ToolInput: block.Input,
				})
			}
		}
		return out

	case "user":
		if ev.Message == nil {
			return nil
		}
		var out []driver.Message
		for _, block := range ev.Message.Content {
			if block.Type != "tool_result" {
				continue
			}
			out = append(out, driver.Message{
				Type:    driver.MessageToolResult,
				CallID:  block.ToolUseID,
				Output:  decodeToolResultContent(block.Content),
				IsError: block.IsError,
			})
		}
		return out

	case "result":
		if ev.IsError {
			reason := ev.Result
			if reason == "" {
				reason = ev.Subtype
			}
			return []driver.Message{{Type: driver.MessageError, Reason: reason}}
		}
		msg := driver.Message{
			Type:      driver.MessageResult,
			SessionID: ev.SessionID,
			FinalText: ev.Result,
		}
		if ev.Usage != nil {
			msg.Usage = &driver.TokenUsage{
				InputTokens:  ev.Usage.InputTokens,
				OutputTokens: ev.Usage.OutputTokens,
			}
		}
		return []driver.Message{msg}
	}
	return nil
}

// decodeToolResultContent flattens a tool_result content field, which the
// CLI emits either as a plain string or as an array of text blocks.
func decodeToolResultContent(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var blocks []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &blocks); err == nil {
		var b strings.Builder
		for _, block := range blocks {
			if block.Type == "text" {
				b.WriteString(block.Text)
			}
		}
		return b.String()
	}
	return string(raw)
}
