// Package orchestrator supervises workflow execution: admission (worktree
// exclusivity, global concurrency cap), the Architect/Developer/Reviewer
// state machine, approval routing, startup recovery and graceful shutdown.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/existential-birds/amelia-sub003/ent"
	"github.com/existential-birds/amelia-sub003/ent/workflow"
	"github.com/existential-birds/amelia-sub003/pkg/agent"
	"github.com/existential-birds/amelia-sub003/pkg/config"
	"github.com/existential-birds/amelia-sub003/pkg/driver"
	"github.com/existential-birds/amelia-sub003/pkg/events"
	"github.com/existential-birds/amelia-sub003/pkg/models"
	"github.com/existential-birds/amelia-sub003/pkg/services"
	"github.com/existential-birds/amelia-sub003/pkg/slack"
	"github.com/existential-birds/amelia-sub003/pkg/tracker"
)

// DriverResolver returns the driver implementation for a driver type.
type DriverResolver func(config.DriverType) (driver.Driver, error)

// TrackerResolver returns the issue tracker for a tracker type.
type TrackerResolver func(config.TrackerType) (tracker.Tracker, error)

// Deps bundles the orchestrator's collaborators.
type Deps struct {
	Config     *config.OrchestratorConfig
	Profiles   *config.ProfileRegistry
	DefaultPro string

	Workflows   *services.WorkflowService
	Checkpoints *services.CheckpointService
	Prompts     *services.PromptService
	Publisher   agent.Publisher
	Agents      *agent.Deps
	Drivers     DriverResolver
	Trackers    TrackerResolver
	Slack       *slack.Service
	PodID       string
}

// task is one running machine goroutine. done closes once the goroutine has
// fully drained, including finalize.
type task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Service is the workflow supervisor. Workflows blocked at the approval
// gate hold no goroutine; approve respawns the machine from the latest
// checkpoint.
type Service struct {
	deps Deps

	mu    sync.Mutex
	tasks map[string]*task

	// admitMu serializes the concurrency cap check with the workflow
	// insert so two creates cannot both pass the count. The open-worktree
	// unique index backs this up across processes.
	admitMu sync.Mutex

	wg sync.WaitGroup

	runCtx    context.Context
	cancelAll context.CancelFunc
}

// NewService creates the orchestrator. Call Start to begin background loops.
func NewService(deps Deps) *Service {
	runCtx, cancelAll := context.WithCancel(context.Background())
	return &Service{
		deps:      deps,
		tasks:     make(map[string]*task),
		runCtx:    runCtx,
		cancelAll: cancelAll,
	}
}

// Start recovers orphaned workflows and launches the heartbeat loop.
func (s *Service) Start(ctx context.Context) error {
	if err := s.recover(ctx); err != nil {
		return err
	}
	s.wg.Add(1)
	go s.heartbeatLoop()
	return nil
}

// StartWorkflow validates the request, snapshots the issue, writes the
// pending workflow row and spawns the state machine task.
func (s *Service) StartWorkflow(ctx context.Context, req models.CreateWorkflowRequest) (*ent.Workflow, error) {
	if req.ProfileID == "" {
		req.ProfileID = s.deps.DefaultPro
	}
	profile, err := s.deps.Profiles.Get(req.ProfileID)
	if err != nil {
		return nil, services.NewValidationError("profile_id", err.Error())
	}
	if req.TaskDescription != "" && req.TaskTitle == "" {
		return nil, services.NewValidationError("task_title", "required when task_description is set")
	}
	if req.TaskTitle != "" && profile.Tracker != config.TrackerNoop {
		return nil, services.NewValidationError("task_title", "requires a noop tracker profile")
	}
	if req.Driver != "" && !config.DriverType(req.Driver).Valid() {
		return nil, services.NewValidationError("driver", fmt.Sprintf("unknown driver %q", req.Driver))
	}

	issue, err := s.resolveIssue(ctx, profile, req)
	if err != nil {
		return nil, err
	}

	// Global cap: every non-terminal workflow counts. Blocked rows still
	// own a worktree and pending rows hold their slot from creation.
	s.admitMu.Lock()
	open, err := s.deps.Workflows.CountOpen(ctx)
	if err != nil {
		s.admitMu.Unlock()
		return nil, fmt.Errorf("failed to count open workflows: %w", err)
	}
	if open >= s.deps.Config.MaxConcurrent {
		s.admitMu.Unlock()
		return nil, fmt.Errorf("%w: %d workflows already active", services.ErrRateLimited, open)
	}

	wf, err := s.deps.Workflows.CreateWorkflow(ctx, req, issue)
	s.admitMu.Unlock()
	if err != nil {
		if errors.Is(err, services.ErrWorkflowConflict) {
			if holder, findErr := s.deps.Workflows.FindOpenByWorktree(ctx, req.WorktreePath); findErr == nil {
				return nil, fmt.Errorf("%w: worktree held by workflow %s", services.ErrWorkflowConflict, holder.ID)
			}
		}
		return nil, err
	}

	s.emitWorkflowEvent(ctx, wf.ID, events.EventTypeWorkflowCreated,
		fmt.Sprintf("workflow created for issue %s", wf.IssueID),
		map[string]interface{}{"issue_id": wf.IssueID, "worktree_path": wf.WorktreePath})

	s.recordPromptVersions(ctx, wf.ID)

	st := &ExecutionState{
		WorkflowID:     wf.ID,
		IssueID:        wf.IssueID,
		Issue:          issue,
		ProfileID:      wf.ProfileID,
		WorktreePath:   wf.WorktreePath,
		DriverOverride: req.Driver,
		Node:           NodeArchitect,
	}
	s.spawn(st, true)
	return wf, nil
}

// Approve resumes a workflow blocked at the approval gate by spawning the
// machine from its latest checkpoint. Idempotent on terminal workflows:
// returns ErrAlreadyTerminal, which callers treat as success.
func (s *Service) Approve(ctx context.Context, workflowID string) error {
	wf, err := s.deps.Workflows.GetWorkflow(ctx, workflowID)
	if err != nil {
		return err
	}
	if models.IsTerminal(wf.Status) {
		return services.ErrAlreadyTerminal
	}
	if wf.Status != workflow.StatusBlocked {
		return fmt.Errorf("%w: workflow is %s", services.ErrNotApprovable, wf.Status)
	}
	if len(wf.PlanCache) == 0 {
		return fmt.Errorf("%w: no plan artifact", services.ErrNotApprovable)
	}

	st, err := s.loadState(ctx, wf)
	if err != nil {
		return fmt.Errorf("failed to load execution state: %w", err)
	}

	if _, err := s.deps.Workflows.UpdateWorkflowStatus(ctx, workflowID, workflow.StatusInProgress, ""); err != nil {
		return err
	}
	s.emitWorkflowEvent(ctx, workflowID, events.EventTypeApprovalGranted, "plan approved", nil)

	st.Node = NodeDeveloper
	s.spawn(st, false)
	return nil
}

// Reject terminates a blocked workflow, recording the feedback as the
// failure reason. No machine task is running while blocked, so this is a
// pure status change.
func (s *Service) Reject(ctx context.Context, workflowID, feedback string) error {
	wf, err := s.deps.Workflows.GetWorkflow(ctx, workflowID)
	if err != nil {
		return err
	}
	if models.IsTerminal(wf.Status) {
		return services.ErrAlreadyTerminal
	}
	if wf.Status != workflow.StatusBlocked {
		return fmt.Errorf("%w: workflow is %s", services.ErrNotApprovable, wf.Status)
	}

	reason := feedback
	if reason == "" {
		reason = "plan rejected"
	}
	if _, err := s.deps.Workflows.UpdateWorkflowStatus(ctx, workflowID, workflow.StatusFailed, reason); err != nil {
		return err
	}
	s.emitWorkflowEvent(ctx, workflowID, events.EventTypeApprovalRejected, "plan rejected",
		map[string]interface{}{"feedback": feedback})
	s.emitWorkflowEvent(ctx, workflowID, events.EventTypeWorkflowFailed, reason, nil)
	s.notifyTerminal(ctx, workflowID, wf.IssueID, string(workflow.StatusFailed), reason)
	return nil
}

// Cancel requests cooperative cancellation. A running machine observes it
// at the next node boundary; workflows with no running task (blocked at the
// gate, or orphans) are transitioned directly. When a task is running, Cancel
// waits for it to drain and finishes the transition itself if the machine
// exited without seeing the signal.
func (s *Service) Cancel(ctx context.Context, workflowID string) error {
	wf, err := s.deps.Workflows.GetWorkflow(ctx, workflowID)
	if err != nil {
		return err
	}
	if models.IsTerminal(wf.Status) {
		return services.ErrAlreadyTerminal
	}

	s.mu.Lock()
	tk, running := s.tasks[workflowID]
	s.mu.Unlock()

	if running {
		tk.cancel()
		// Wait for the task to drain, then re-check. The machine may have
		// suspended at the approval gate between our status read and the
		// cancel signal, leaving a blocked row with no goroutine to
		// observe the cancellation.
		select {
		case <-tk.done:
		case <-ctx.Done():
			return ctx.Err()
		}
		wf, err = s.deps.Workflows.GetWorkflow(ctx, workflowID)
		if err != nil {
			return err
		}
		if models.IsTerminal(wf.Status) {
			return nil
		}
	}

	if _, err := s.deps.Workflows.UpdateWorkflowStatus(ctx, workflowID, workflow.StatusCancelled, "cancelled"); err != nil {
		return err
	}
	s.emitWorkflowEvent(ctx, workflowID, events.EventTypeWorkflowCancelled, "workflow cancelled", nil)
	s.notifyTerminal(ctx, workflowID, wf.IssueID, string(workflow.StatusCancelled), "")
	return nil
}

// Shutdown cancels all machine tasks and waits up to the configured grace
// period for them to checkpoint and exit.
func (s *Service) Shutdown(ctx context.Context) {
	s.cancelAll()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Orchestrator drained")
	case <-time.After(s.deps.Config.GracefulShutdownTimeout):
		slog.Warn("Orchestrator shutdown timed out with tasks still running")
	case <-ctx.Done():
	}
}

// resolveIssue builds the Issue value: directly for ad-hoc noop tasks,
// through the tracker otherwise.
func (s *Service) resolveIssue(ctx context.Context, profile *config.ProfileConfig, req models.CreateWorkflowRequest) (*models.Issue, error) {
	if req.TaskTitle != "" {
		return tracker.BuildAdHocIssue(req.IssueID, req.TaskTitle, req.TaskDescription), nil
	}
	tr, err := s.deps.Trackers(profile.Tracker)
	if err != nil {
		return nil, fmt.Errorf("failed to construct %s tracker: %w", profile.Tracker, err)
	}
	issue, err := tr.FetchIssue(ctx, req.IssueID)
	if err != nil {
		if errors.Is(err, tracker.ErrIssueNotFound) {
			return nil, services.NewValidationError("issue_id", err.Error())
		}
		return nil, fmt.Errorf("failed to fetch issue %s: %w", req.IssueID, err)
	}
	return issue, nil
}

// spawn launches the machine goroutine for a state, with the start-deadline
// watchdog when the workflow is fresh.
func (s *Service) spawn(st *ExecutionState, fresh bool) {
	taskCtx, cancel := context.WithCancel(s.runCtx)
	tk := &task{cancel: cancel, done: make(chan struct{})}

	s.mu.Lock()
	s.tasks[st.WorkflowID] = tk
	s.mu.Unlock()

	if fresh {
		s.wg.Add(1)
		go s.startWatchdog(taskCtx, st.WorkflowID, cancel)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(tk.done)
		defer s.finalize(st.WorkflowID, tk)
		s.runMachine(taskCtx, st)
	}()
}

// startWatchdog fails a workflow stuck in pending past the start deadline.
func (s *Service) startWatchdog(ctx context.Context, workflowID string, cancel context.CancelFunc) {
	defer s.wg.Done()

	select {
	case <-ctx.Done():
		return
	case <-time.After(s.deps.Config.StartTimeout):
	}

	wf, err := s.deps.Workflows.GetWorkflow(ctx, workflowID)
	if err != nil || wf.Status != workflow.StatusPending {
		return
	}
	slog.Error("Workflow failed to start within deadline", "workflow_id", workflowID)
	if _, err := s.deps.Workflows.UpdateWorkflowStatus(ctx, workflowID, workflow.StatusFailed, "start_timeout"); err != nil {
		slog.Error("Failed to fail stalled workflow", "workflow_id", workflowID, "error", err)
		return
	}
	s.emitWorkflowEvent(ctx, workflowID, events.EventTypeWorkflowFailed, "start_timeout", nil)
	cancel()
}

// finalize removes the task from the supervisor table and, when the
// workflow completed, drops its now-useless checkpoints. A task that
// suspended at the approval gate is removed too; approve spawns a new one.
func (s *Service) finalize(workflowID string, tk *task) {
	tk.cancel()

	s.mu.Lock()
	if s.tasks[workflowID] == tk {
		delete(s.tasks, workflowID)
	}
	s.mu.Unlock()

	cleanupCtx, cancelCleanup := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelCleanup()
	wf, err := s.deps.Workflows.GetWorkflow(cleanupCtx, workflowID)
	if err == nil && wf.Status == workflow.StatusCompleted {
		if _, err := s.deps.Checkpoints.CleanupWorkflowCheckpoints(cleanupCtx, workflowID); err != nil {
			slog.Warn("Failed to clean up checkpoints", "workflow_id", workflowID, "error", err)
		}
	}
}

// loadState restores execution state from the latest checkpoint, falling
// back to the workflow row for blocked workflows whose checkpoints were
// swept.
func (s *Service) loadState(ctx context.Context, wf *ent.Workflow) (*ExecutionState, error) {
	cp, err := s.deps.Checkpoints.LatestCheckpoint(ctx, wf.ID)
	if err == nil {
		return StateFromMap(cp.State)
	}
	if errors.Is(err, services.ErrNotFound) && wf.Status == workflow.StatusBlocked {
		return stateFromWorkflowRow(wf), nil
	}
	return nil, err
}

// recover resumes workflows abandoned by a dead process.
//
// Taxonomy: pending rows are started from scratch; planning/in_progress
// rows resume from their checkpoint or fail with "orphaned"; blocked rows
// are left alone, their approval gate is still valid and approve will
// respawn them.
func (s *Service) recover(ctx context.Context) error {
	orphans, err := s.deps.Workflows.FindResumable(ctx, s.deps.Config.OrphanThreshold)
	if err != nil {
		return fmt.Errorf("failed to scan for resumable workflows: %w", err)
	}

	for _, wf := range orphans {
		if wf.Status == workflow.StatusBlocked {
			continue
		}

		s.mu.Lock()
		_, owned := s.tasks[wf.ID]
		s.mu.Unlock()
		if owned {
			continue
		}

		var st *ExecutionState
		if wf.Status == workflow.StatusPending {
			st = &ExecutionState{
				WorkflowID:   wf.ID,
				IssueID:      wf.IssueID,
				Issue:        models.IssueFromMap(wf.IssueCache),
				ProfileID:    wf.ProfileID,
				WorktreePath: wf.WorktreePath,
				Node:         NodeArchitect,
			}
		} else {
			st, err = s.loadState(ctx, wf)
			if err != nil {
				slog.Warn("Orphaned workflow has no usable checkpoint, failing it",
					"workflow_id", wf.ID, "status", wf.Status, "error", err)
				if _, failErr := s.deps.Workflows.UpdateWorkflowStatus(ctx, wf.ID, workflow.StatusFailed, "orphaned"); failErr != nil {
					slog.Error("Failed to mark orphan failed", "workflow_id", wf.ID, "error", failErr)
				} else {
					s.emitWorkflowEvent(ctx, wf.ID, events.EventTypeWorkflowFailed, "orphaned", nil)
				}
				continue
			}
			// A checkpoint taken at the gate means approval is still
			// pending; no machine task is needed for it.
			if st.Node == NodeApprovalGate && st.ApprovalRequested {
				continue
			}
		}

		slog.Info("Resuming workflow", "workflow_id", wf.ID, "node", st.Node, "status", wf.Status)
		s.spawn(st, wf.Status == workflow.StatusPending)
	}
	return nil
}

// heartbeatLoop refreshes last_heartbeat_at for all workflows with a
// running task.
func (s *Service) heartbeatLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.deps.Config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.runCtx.Done():
			return
		case <-ticker.C:
		}

		s.mu.Lock()
		ids := make([]string, 0, len(s.tasks))
		for id := range s.tasks {
			ids = append(ids, id)
		}
		s.mu.Unlock()

		for _, id := range ids {
			if err := s.deps.Workflows.Heartbeat(s.runCtx, id, s.deps.PodID); err != nil &&
				!errors.Is(err, services.ErrNotFound) {
				slog.Warn("Heartbeat failed", "workflow_id", id, "error", err)
			}
		}
	}
}

// ActiveTaskCount reports how many machine goroutines are currently
// running, for the health endpoint.
func (s *Service) ActiveTaskCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// recordPromptVersions snapshots the system prompts this workflow runs with.
func (s *Service) recordPromptVersions(ctx context.Context, workflowID string) {
	if s.deps.Prompts == nil {
		return
	}
	for role, content := range agent.SystemPrompts() {
		pv, err := s.deps.Prompts.UpsertPromptVersion(ctx, string(role)+"-system",
			string(role)+" system prompt", content)
		if err != nil {
			slog.Warn("Failed to record prompt version", "role", role, "error", err)
			continue
		}
		if err := s.deps.Prompts.LinkWorkflowVersion(ctx, workflowID, pv.ID); err != nil {
			slog.Warn("Failed to link prompt version", "workflow_id", workflowID, "error", err)
		}
	}
}

// emitWorkflowEvent publishes a lifecycle event as the system agent.
func (s *Service) emitWorkflowEvent(ctx context.Context, workflowID, eventType, message string, data map[string]interface{}) {
	if _, err := s.deps.Publisher.Publish(ctx, models.CreateEventRequest{
		WorkflowID: workflowID,
		EventType:  eventType,
		Message:    message,
		Data:       data,
	}); err != nil {
		slog.Warn("Failed to publish workflow event",
			"workflow_id", workflowID, "event_type", eventType, "error", err)
	}
}

// notifyTerminal posts the Slack terminal notification. Nil-safe.
func (s *Service) notifyTerminal(ctx context.Context, workflowID, issueID, status, reason string) {
	s.deps.Slack.NotifyWorkflowCompleted(ctx, slack.WorkflowCompletedInput{
		WorkflowID:    workflowID,
		IssueID:       issueID,
		Status:        status,
		FailureReason: reason,
	})
}
