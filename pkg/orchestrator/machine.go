package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/existential-birds/amelia-sub003/ent/workflow"
	"github.com/existential-birds/amelia-sub003/pkg/agent"
	"github.com/existential-birds/amelia-sub003/pkg/config"
	"github.com/existential-birds/amelia-sub003/pkg/events"
	"github.com/existential-birds/amelia-sub003/pkg/models"
	"github.com/existential-birds/amelia-sub003/pkg/slack"
)

// failReviewLimit is the failure reason recorded when the reviewer rejects
// the work more times than the configured limit allows.
const failReviewLimit = "review_limit_exceeded"

// runMachine executes the workflow graph from the state's current node until
// a terminal status is reached. Cancellation is observed at node boundaries
// and at the approval gate.
func (s *Service) runMachine(ctx context.Context, st *ExecutionState) {
	for {
		if ctx.Err() != nil {
			s.transitionCancelled(st)
			return
		}

		var (
			done bool
			err  error
		)
		switch st.Node {
		case NodeArchitect:
			err = s.runArchitect(ctx, st)
		case NodeApprovalGate:
			done, err = s.runApprovalGate(ctx, st)
		case NodeDeveloper:
			err = s.runDeveloper(ctx, st)
		case NodeReviewer:
			done, err = s.runReviewer(ctx, st)
		default:
			err = fmt.Errorf("unknown node %q", st.Node)
		}

		if err != nil {
			if ctx.Err() != nil {
				s.transitionCancelled(st)
			} else {
				s.failWorkflow(st, err.Error())
			}
			return
		}
		if done {
			return
		}
	}
}

// runArchitect moves the workflow into planning, produces the plan and
// stores it in the plan cache.
func (s *Service) runArchitect(ctx context.Context, st *ExecutionState) error {
	if _, err := s.deps.Workflows.UpdateWorkflowStatus(ctx, st.WorkflowID, workflow.StatusPlanning, ""); err != nil {
		return fmt.Errorf("failed to enter planning: %w", err)
	}
	s.emitWorkflowEvent(ctx, st.WorkflowID, events.EventTypeWorkflowStarted, "workflow started", nil)

	inv, profile, err := s.invocationFor(st, config.RoleArchitect, "")
	if err != nil {
		return err
	}

	plan, err := agent.NewArchitect(s.deps.Agents).Execute(ctx, inv, st.Issue, s.planDir(profile, st))
	if err != nil {
		return fmt.Errorf("architect failed: %w", err)
	}

	st.PlanPath = plan.MarkdownPath
	st.PlanGoal = plan.Goal
	st.PlanContent = plan.MarkdownContent
	st.KeyFiles = plan.KeyFiles
	st.Node = NodeApprovalGate

	if err := s.deps.Workflows.SetPlanCache(ctx, st.WorkflowID, &models.PlanArtifact{
		Path:     plan.MarkdownPath,
		Goal:     plan.Goal,
		Markdown: plan.MarkdownContent,
	}); err != nil {
		return fmt.Errorf("failed to store plan: %w", err)
	}

	s.checkpoint(ctx, st)
	return nil
}

// runApprovalGate suspends the workflow for operator review: it emits the
// approval request, moves the row to blocked, checkpoints at the gate and
// returns. No goroutine waits while blocked; Approve respawns the machine
// from the checkpoint with the node advanced past the gate.
func (s *Service) runApprovalGate(ctx context.Context, st *ExecutionState) (bool, error) {
	if !st.ApprovalRequested {
		s.emitWorkflowEvent(ctx, st.WorkflowID, events.EventTypeApprovalRequired,
			"plan ready for review", map[string]interface{}{
				"plan_path": st.PlanPath,
				"goal":      st.PlanGoal,
				"key_files": st.KeyFiles,
			})
		s.deps.Slack.NotifyApprovalRequired(ctx, slack.ApprovalRequiredInput{
			WorkflowID: st.WorkflowID,
			IssueID:    st.IssueID,
			PlanPath:   st.PlanPath,
		})
		if _, err := s.deps.Workflows.UpdateWorkflowStatus(ctx, st.WorkflowID, workflow.StatusBlocked, ""); err != nil {
			return false, fmt.Errorf("failed to block for approval: %w", err)
		}
		st.ApprovalRequested = true
		s.checkpoint(ctx, st)
	}
	return true, nil
}

// runDeveloper executes the approved plan, resuming the developer's driver
// session on revision iterations.
func (s *Service) runDeveloper(ctx context.Context, st *ExecutionState) error {
	inv, _, err := s.invocationFor(st, config.RoleDeveloper, st.DeveloperSession)
	if err != nil {
		return err
	}

	result, err := agent.NewDeveloper(s.deps.Agents).Execute(ctx, inv, st.PlanContent, st.Feedback)
	if err != nil {
		return fmt.Errorf("developer failed: %w", err)
	}

	if result.SessionID != "" {
		st.DeveloperSession = result.SessionID
	}
	st.Node = NodeReviewer
	s.checkpoint(ctx, st)
	return nil
}

// runReviewer judges the developer's work. Approval completes the workflow;
// rejection either loops back to the developer or fails the workflow once
// the review limit is exhausted.
func (s *Service) runReviewer(ctx context.Context, st *ExecutionState) (bool, error) {
	inv, _, err := s.invocationFor(st, config.RoleReviewer, "")
	if err != nil {
		return false, err
	}

	verdict, err := agent.NewReviewer(s.deps.Agents).Execute(ctx, inv, st.PlanContent)
	if err != nil {
		return false, fmt.Errorf("reviewer failed: %w", err)
	}

	if verdict.Approved {
		if _, err := s.deps.Workflows.UpdateWorkflowStatus(ctx, st.WorkflowID, workflow.StatusCompleted, ""); err != nil {
			return false, fmt.Errorf("failed to complete workflow: %w", err)
		}
		s.emitWorkflowEvent(ctx, st.WorkflowID, events.EventTypeWorkflowCompleted, "workflow completed", nil)
		s.notifyTerminal(ctx, st.WorkflowID, st.IssueID, string(workflow.StatusCompleted), "")
		return true, nil
	}

	iteration, err := s.deps.Workflows.IncrementReviewIteration(ctx, st.WorkflowID)
	if err != nil {
		return false, fmt.Errorf("failed to record review iteration: %w", err)
	}
	st.ReviewIteration = iteration

	s.emitWorkflowEvent(ctx, st.WorkflowID, events.EventTypeRevisionRequested,
		fmt.Sprintf("revision %d of %d requested", iteration, s.deps.Config.ReviewLimit),
		map[string]interface{}{"feedback": s.deps.Agents.Masker.Mask(verdict.Feedback), "iteration": iteration})

	if iteration >= s.deps.Config.ReviewLimit {
		slog.Warn("Review limit reached",
			"workflow_id", st.WorkflowID, "iteration", iteration, "limit", s.deps.Config.ReviewLimit)
		s.failWorkflow(st, failReviewLimit)
		return true, nil
	}

	// The revision loop passes through blocked (reviewer sent the work
	// back) and immediately resumes, since no human action is needed.
	if _, err := s.deps.Workflows.UpdateWorkflowStatus(ctx, st.WorkflowID, workflow.StatusBlocked, ""); err != nil {
		return false, fmt.Errorf("failed to enter revision: %w", err)
	}
	if _, err := s.deps.Workflows.UpdateWorkflowStatus(ctx, st.WorkflowID, workflow.StatusInProgress, ""); err != nil {
		return false, fmt.Errorf("failed to resume after revision: %w", err)
	}

	st.Feedback = append(st.Feedback, verdict.Feedback)
	st.Node = NodeDeveloper
	s.checkpoint(ctx, st)
	return false, nil
}

// invocationFor resolves the profile's agent config for a role into a
// driver invocation.
func (s *Service) invocationFor(st *ExecutionState, role config.AgentRole, priorSession string) (agent.Invocation, *config.ProfileConfig, error) {
	profile, err := s.deps.Profiles.Get(st.ProfileID)
	if err != nil {
		return agent.Invocation{}, nil, fmt.Errorf("profile vanished mid-workflow: %w", err)
	}
	cfg := profile.AgentFor(role)
	if st.DriverOverride != "" {
		cfg.Driver = config.DriverType(st.DriverOverride)
	}
	drv, err := s.deps.Drivers(cfg.Driver)
	if err != nil {
		return agent.Invocation{}, nil, fmt.Errorf("failed to resolve %s driver for %s: %w", cfg.Driver, role, err)
	}
	return agent.Invocation{
		WorkflowID:   st.WorkflowID,
		Driver:       drv,
		Model:        cfg.Model,
		Options:      cfg.Options,
		WorkingDir:   st.WorktreePath,
		PriorSession: priorSession,
	}, profile, nil
}

// planDir returns where the architect writes plan files.
func (s *Service) planDir(profile *config.ProfileConfig, st *ExecutionState) string {
	if profile.PlanOutputDir != "" {
		return profile.PlanOutputDir
	}
	return filepath.Join(st.WorktreePath, ".amelia", "plans")
}

// checkpoint persists the current execution state. A checkpoint failure is
// logged but does not stop the workflow; the next checkpoint supersedes it.
func (s *Service) checkpoint(ctx context.Context, st *ExecutionState) {
	state, err := st.ToMap()
	if err != nil {
		slog.Error("Failed to serialize checkpoint", "workflow_id", st.WorkflowID, "error", err)
		return
	}
	if _, err := s.deps.Checkpoints.SaveCheckpoint(ctx, st.WorkflowID, st.Node, state); err != nil {
		slog.Warn("Failed to save checkpoint",
			"workflow_id", st.WorkflowID, "node", st.Node, "error", err)
	}
}

// failWorkflow records a failed terminal status. Uses a background context
// so the write survives task cancellation.
func (s *Service) failWorkflow(st *ExecutionState, reason string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slog.Error("Workflow failed", "workflow_id", st.WorkflowID, "reason", reason)
	if _, err := s.deps.Workflows.UpdateWorkflowStatus(ctx, st.WorkflowID, workflow.StatusFailed, reason); err != nil {
		slog.Error("Failed to record workflow failure", "workflow_id", st.WorkflowID, "error", err)
		return
	}
	s.emitWorkflowEvent(ctx, st.WorkflowID, events.EventTypeWorkflowFailed, reason, nil)
	s.notifyTerminal(ctx, st.WorkflowID, st.IssueID, string(workflow.StatusFailed), reason)
}

// transitionCancelled records cooperative cancellation. The machine calls
// this after observing ctx.Done, so the task context is already dead and a
// fresh one is used for the writes.
func (s *Service) transitionCancelled(st *ExecutionState) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wf, err := s.deps.Workflows.GetWorkflow(ctx, st.WorkflowID)
	if err != nil {
		slog.Error("Failed to load workflow during cancellation", "workflow_id", st.WorkflowID, "error", err)
		return
	}
	if models.IsTerminal(wf.Status) {
		// Reject or the start watchdog already finished it.
		return
	}

	s.checkpoint(ctx, st)
	if _, err := s.deps.Workflows.UpdateWorkflowStatus(ctx, st.WorkflowID, workflow.StatusCancelled, "cancelled"); err != nil {
		slog.Error("Failed to record cancellation", "workflow_id", st.WorkflowID, "error", err)
		return
	}
	s.emitWorkflowEvent(ctx, st.WorkflowID, events.EventTypeWorkflowCancelled, "workflow cancelled", nil)
	s.notifyTerminal(ctx, st.WorkflowID, st.IssueID, string(workflow.StatusCancelled), "")
}
