package agent

import (
	"context"

	"github.com/existential-birds/amelia-sub003/pkg/config"
	"github.com/existential-birds/amelia-sub003/pkg/driver"
)

// DeveloperResult is the Developer's structured output. Changes themselves
// land in the worktree; the summary is informational.
type DeveloperResult struct {
	Summary   string
	SessionID string
}

// Developer executes the approved plan against the worktree.
type Developer struct {
	deps *Deps
}

func NewDeveloper(deps *Deps) *Developer {
	return &Developer{deps: deps}
}

// Execute runs one development pass. feedback carries reviewer revision
// requests from earlier iterations, oldest first.
func (d *Developer) Execute(ctx context.Context, inv Invocation, planContent string, feedback []string) (*DeveloperResult, error) {
	d.deps.emitStageStarted(ctx, inv.WorkflowID, config.RoleDeveloper)

	req := driver.Request{
		Prompt:       buildDeveloperPrompt(planContent, feedback),
		SystemPrompt: developerSystemPrompt,
		WorkingDir:   inv.WorkingDir,
		PriorSession: inv.PriorSession,
		Model:        inv.Model,
		Options:      inv.Options,
	}

	terminal, err := d.deps.run(ctx, config.RoleDeveloper, inv, req)
	if err != nil {
		d.deps.emitAgentError(ctx, inv.WorkflowID, config.RoleDeveloper, errReason(terminal, err))
		return nil, err
	}

	d.deps.emitStageCompleted(ctx, inv.WorkflowID, config.RoleDeveloper, map[string]interface{}{
		"summary": d.deps.Masker.Mask(terminal.FinalText),
	})
	return &DeveloperResult{
		Summary:   terminal.FinalText,
		SessionID: terminal.SessionID,
	}, nil
}
