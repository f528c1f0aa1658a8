package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/existential-birds/amelia-sub003/pkg/config"
	"github.com/existential-birds/amelia-sub003/pkg/driver"
)

// Verdict is the Reviewer's structured output.
type Verdict struct {
	Approved  bool   `json:"approved"`
	Feedback  string `json:"feedback,omitempty"`
	SessionID string `json:"-"`
}

// Reviewer verifies that the worktree changes fulfill the plan.
type Reviewer struct {
	deps *Deps
}

func NewReviewer(deps *Deps) *Reviewer {
	return &Reviewer{deps: deps}
}

// Execute runs one review pass and returns the parsed verdict. The
// orchestrator owns the revision bookkeeping for rejections.
func (r *Reviewer) Execute(ctx context.Context, inv Invocation, planContent string) (*Verdict, error) {
	r.deps.emitStageStarted(ctx, inv.WorkflowID, config.RoleReviewer)

	req := driver.Request{
		Prompt:       buildReviewerPrompt(planContent),
		SystemPrompt: reviewerSystemPrompt,
		WorkingDir:   inv.WorkingDir,
		PriorSession: inv.PriorSession,
		Model:        inv.Model,
		Options:      inv.Options,
	}

	terminal, err := r.deps.run(ctx, config.RoleReviewer, inv, req)
	if err != nil {
		r.deps.emitAgentError(ctx, inv.WorkflowID, config.RoleReviewer, errReason(terminal, err))
		return nil, err
	}

	verdict, err := ParseVerdict(terminal.FinalText)
	if err != nil {
		r.deps.emitAgentError(ctx, inv.WorkflowID, config.RoleReviewer, err.Error())
		return nil, err
	}
	verdict.SessionID = terminal.SessionID

	r.deps.emitStageCompleted(ctx, inv.WorkflowID, config.RoleReviewer, map[string]interface{}{
		"approved": verdict.Approved,
	})
	return verdict, nil
}

// ParseVerdict extracts the {approved, feedback} object from the reviewer's
// final text. Accepts bare JSON, a fenced code block, or an object embedded
// in surrounding prose.
func ParseVerdict(text string) (*Verdict, error) {
	trimmed := strings.TrimSpace(text)

	if v := tryVerdictJSON(trimmed); v != nil {
		return v, nil
	}

	if fenced := extractFencedBlock(trimmed); fenced != "" {
		if v := tryVerdictJSON(fenced); v != nil {
			return v, nil
		}
	}

	// Last resort: the first balanced object mentioning "approved".
	if embedded := extractEmbeddedObject(trimmed); embedded != "" {
		if v := tryVerdictJSON(embedded); v != nil {
			return v, nil
		}
	}

	return nil, fmt.Errorf("reviewer output is not a recognizable verdict")
}

func tryVerdictJSON(s string) *Verdict {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &fields); err != nil {
		return nil
	}
	if _, ok := fields["approved"]; !ok {
		return nil
	}
	var v Verdict
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil
	}
	return &v
}

// extractFencedBlock returns the contents of the first ``` fence.
func extractFencedBlock(s string) string {
	start := strings.Index(s, "```")
	if start < 0 {
		return ""
	}
	rest := s[start+3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		// Drop the info string ("json" etc.)
		rest = rest[nl+1:]
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(rest[:end])
}

// extractEmbeddedObject scans for the first balanced JSON object containing
// the word "approved".
func extractEmbeddedObject(s string) string {
	for start := 0; start < len(s); start++ {
		idx := strings.IndexByte(s[start:], '{')
		if idx < 0 {
			return ""
		}
		open := start + idx
		end := matchBrace(s, open)
		if end < 0 {
			return ""
		}
		candidate := s[open : end+1]
		if strings.Contains(candidate, "approved") {
			return candidate
		}
		start = open
	}
	return ""
}

// matchBrace returns the index of the brace closing the object opened at
// open, skipping braces inside string literals, or -1 if unbalanced.
func matchBrace(s string, open int) int {
	depth := 0
	inString := false
	escaped := false
	for i := open; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
