package agent

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/existential-birds/amelia-sub003/pkg/config"
	"github.com/existential-birds/amelia-sub003/pkg/driver"
	"github.com/existential-birds/amelia-sub003/pkg/models"
)

// PlanOutput is the Architect's structured result.
type PlanOutput struct {
	Goal            string
	MarkdownPath    string
	MarkdownContent string
	KeyFiles        []string
	SessionID       string
}

// Architect produces the implementation plan for an issue.
type Architect struct {
	deps *Deps
}

func NewArchitect(deps *Deps) *Architect {
	return &Architect{deps: deps}
}

// Execute runs the planning stage: invokes the driver read-only, parses the
// terminal result as a plan, and writes the plan artifact to
// {planOutputDir}/{YYYY-MM-DD}-{issue_id}.md.
func (a *Architect) Execute(ctx context.Context, inv Invocation, issue *models.Issue, planOutputDir string) (*PlanOutput, error) {
	a.deps.emitStageStarted(ctx, inv.WorkflowID, config.RoleArchitect)

	req := driver.Request{
		Prompt:       buildArchitectPrompt(issue),
		SystemPrompt: architectSystemPrompt,
		WorkingDir:   inv.WorkingDir,
		PriorSession: inv.PriorSession,
		Model:        inv.Model,
		Options:      inv.Options,
	}

	terminal, err := a.deps.run(ctx, config.RoleArchitect, inv, req)
	if err != nil {
		a.deps.emitAgentError(ctx, inv.WorkflowID, config.RoleArchitect, errReason(terminal, err))
		return nil, err
	}
	if strings.TrimSpace(terminal.FinalText) == "" {
		err := fmt.Errorf("architect produced an empty plan")
		a.deps.emitAgentError(ctx, inv.WorkflowID, config.RoleArchitect, err.Error())
		return nil, err
	}

	plan := parsePlanOutput(terminal.FinalText, issue)
	plan.SessionID = terminal.SessionID

	path, err := writePlanFile(planOutputDir, issue.ID, plan.MarkdownContent)
	if err != nil {
		a.deps.emitAgentError(ctx, inv.WorkflowID, config.RoleArchitect, err.Error())
		return nil, err
	}
	plan.MarkdownPath = path

	a.deps.emitStageCompleted(ctx, inv.WorkflowID, config.RoleArchitect, map[string]interface{}{
		"plan_path": plan.MarkdownPath,
		"goal":      plan.Goal,
		"key_files": plan.KeyFiles,
	})
	return plan, nil
}

// parsePlanOutput extracts the goal and key files from the plan markdown.
// The goal is the first top-level heading, falling back to the issue title;
// key files are the bullets under a "Key Files" heading.
func parsePlanOutput(markdown string, issue *models.Issue) *PlanOutput {
	plan := &PlanOutput{
		Goal:            issue.Title,
		MarkdownContent: markdown,
	}

	inKeyFiles := false
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "# ") && !strings.HasPrefix(trimmed, "## "):
			if plan.Goal == issue.Title || plan.Goal == "" {
				plan.Goal = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
			}
			inKeyFiles = false
		case strings.HasPrefix(trimmed, "#"):
			heading := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			inKeyFiles = strings.EqualFold(heading, "key files")
		case inKeyFiles && (strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ")):
			file := strings.TrimSpace(trimmed[2:])
			file = strings.Trim(file, "`")
			if file != "" {
				plan.KeyFiles = append(plan.KeyFiles, file)
			}
		}
	}
	return plan
}

// writePlanFile persists the plan artifact and returns its absolute path.
func writePlanFile(planOutputDir, issueID, content string) (string, error) {
	if err := os.MkdirAll(planOutputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create plan output dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.md", time.Now().Format("2006-01-02"), sanitizeIssueID(issueID))
	path := filepath.Join(planOutputDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write plan file: %w", err)
	}
	return path, nil
}

// sanitizeIssueID makes an issue reference safe for a filename.
func sanitizeIssueID(issueID string) string {
	replacer := strings.NewReplacer("/", "_", "#", "_", " ", "_", "\\", "_")
	return replacer.Replace(issueID)
}

// errReason prefers the driver's terminal reason over the Go error text.
func errReason(terminal driver.Message, err error) string {
	if terminal.Type == driver.MessageError && terminal.Reason != "" {
		return terminal.Reason
	}
	return err.Error()
}
