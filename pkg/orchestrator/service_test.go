package orchestrator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existential-birds/amelia-sub003/ent"
	"github.com/existential-birds/amelia-sub003/ent/event"
	"github.com/existential-birds/amelia-sub003/ent/workflow"
	"github.com/existential-birds/amelia-sub003/pkg/agent"
	"github.com/existential-birds/amelia-sub003/pkg/config"
	"github.com/existential-birds/amelia-sub003/pkg/driver"
	"github.com/existential-birds/amelia-sub003/pkg/events"
	"github.com/existential-birds/amelia-sub003/pkg/masking"
	"github.com/existential-birds/amelia-sub003/pkg/models"
	"github.com/existential-birds/amelia-sub003/pkg/services"
	"github.com/existential-birds/amelia-sub003/pkg/tracker"
	testdb "github.com/existential-birds/amelia-sub003/test/database"
)

const testPlan = "# Test goal\n\n1. Do the work.\n\n## Key Files\n- main.go\n"

// queueDriver replays scripted message sequences, one per agent run,
// in invocation order.
type queueDriver struct {
	mu      sync.Mutex
	scripts [][]driver.Message
}

func (d *queueDriver) push(msgs ...driver.Message) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scripts = append(d.scripts, msgs)
}

func (d *queueDriver) Run(_ context.Context, _ driver.Request) (<-chan driver.Message, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.scripts) == 0 {
		return nil, errors.New("no scripted response left")
	}
	script := d.scripts[0]
	d.scripts = d.scripts[1:]

	ch := make(chan driver.Message, len(script))
	for _, msg := range script {
		ch <- msg
	}
	close(ch)
	return ch, nil
}

func resultMsg(text string) driver.Message {
	return driver.Message{Type: driver.MessageResult, FinalText: text, SessionID: "sess-1"}
}

type orchFixture struct {
	svc       *Service
	deps      Deps
	workflows *services.WorkflowService
	client    *ent.Client
	drv       *queueDriver
}

func newOrchFixture(t *testing.T, cfg *config.OrchestratorConfig) *orchFixture {
	t.Helper()

	client := testdb.NewTestClient(t)
	drv := &queueDriver{}

	profiles := config.NewProfileRegistry(map[string]*config.ProfileConfig{
		"local": {
			Tracker:       config.TrackerNoop,
			PlanOutputDir: t.TempDir(),
			Default:       config.AgentConfig{Driver: config.DriverClaudeCLI},
		},
	})

	publisher := events.NewEventPublisher(client.DB(), func() bool { return true })
	workflows := services.NewWorkflowService(client.Client)

	deps := Deps{
		Config:      cfg,
		Profiles:    profiles,
		DefaultPro:  "local",
		Workflows:   workflows,
		Checkpoints: services.NewCheckpointService(client.Client),
		Prompts:     services.NewPromptService(client.Client),
		Publisher:   publisher,
		Agents: &agent.Deps{
			Publisher:         publisher,
			Masker:            masking.NewService(config.MaskingConfig{Enabled: false}),
			Tokens:            services.NewTokenService(client.Client),
			StreamToolResults: true,
		},
		Drivers:  func(config.DriverType) (driver.Driver, error) { return drv, nil },
		Trackers: func(tt config.TrackerType) (tracker.Tracker, error) { return tracker.New(tt) },
		PodID:    "test-pod",
	}

	svc := NewService(deps)
	require.NoError(t, svc.Start(t.Context()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		svc.Shutdown(ctx)
	})

	return &orchFixture{svc: svc, deps: deps, workflows: workflows, client: client.Client, drv: drv}
}

func (f *orchFixture) startAdHoc(t *testing.T, worktree string) *ent.Workflow {
	t.Helper()
	wf, err := f.svc.StartWorkflow(t.Context(), models.CreateWorkflowRequest{
		IssueID:      "TASK-1",
		WorktreePath: worktree,
		ProfileID:    "local",
		TaskTitle:    "Add feature",
	})
	require.NoError(t, err)
	return wf
}

func (f *orchFixture) waitForStatus(t *testing.T, workflowID string, want workflow.Status) *ent.Workflow {
	t.Helper()
	var wf *ent.Workflow
	require.Eventually(t, func() bool {
		var err error
		wf, err = f.workflows.GetWorkflow(t.Context(), workflowID)
		require.NoError(t, err)
		return wf.Status == want
	}, 15*time.Second, 20*time.Millisecond, "workflow never reached %s", want)
	return wf
}

func (f *orchFixture) eventTypes(t *testing.T, workflowID string) []string {
	t.Helper()
	rows, err := f.client.Event.Query().
		Where(event.WorkflowIDEQ(workflowID)).
		Order(ent.Asc(event.FieldSequence)).
		All(t.Context())
	require.NoError(t, err)
	types := make([]string, len(rows))
	for i, r := range rows {
		types[i] = r.EventType
	}
	return types
}

func TestOrchestrator_HappyPath(t *testing.T) {
	f := newOrchFixture(t, config.DefaultOrchestratorConfig())
	f.drv.push(resultMsg(testPlan))                 // architect
	f.drv.push(resultMsg("implemented"))            // developer
	f.drv.push(resultMsg(`{"approved": true}`))     // reviewer

	wf := f.startAdHoc(t, "/repos/happy")
	f.waitForStatus(t, wf.ID, workflow.StatusBlocked)

	blocked, err := f.workflows.GetWorkflow(t.Context(), wf.ID)
	require.NoError(t, err)
	require.NotEmpty(t, blocked.PlanCache)
	assert.Equal(t, "Test goal", blocked.PlanCache["goal"])

	require.NoError(t, f.svc.Approve(t.Context(), wf.ID))
	final := f.waitForStatus(t, wf.ID, workflow.StatusCompleted)
	assert.NotNil(t, final.CompletedAt)

	types := f.eventTypes(t, wf.ID)
	assert.Contains(t, types, events.EventTypeWorkflowCreated)
	assert.Contains(t, types, events.EventTypeWorkflowStarted)
	assert.Contains(t, types, events.EventTypeApprovalRequired)
	assert.Contains(t, types, events.EventTypeApprovalGranted)
	assert.Contains(t, types, events.EventTypeWorkflowCompleted)
}

func TestOrchestrator_RevisionLoop(t *testing.T) {
	f := newOrchFixture(t, config.DefaultOrchestratorConfig())
	f.drv.push(resultMsg(testPlan))
	f.drv.push(resultMsg("first attempt"))
	f.drv.push(resultMsg(`{"approved": false, "feedback": "missing tests"}`))
	f.drv.push(resultMsg("second attempt"))
	f.drv.push(resultMsg(`{"approved": true}`))

	wf := f.startAdHoc(t, "/repos/revision")
	f.waitForStatus(t, wf.ID, workflow.StatusBlocked)
	require.NoError(t, f.svc.Approve(t.Context(), wf.ID))

	final := f.waitForStatus(t, wf.ID, workflow.StatusCompleted)
	assert.Equal(t, 1, final.ReviewIteration)

	// Exactly one revision event per rejection.
	revisions := 0
	for _, et := range f.eventTypes(t, wf.ID) {
		if et == events.EventTypeRevisionRequested {
			revisions++
		}
	}
	assert.Equal(t, 1, revisions)
}

func TestOrchestrator_ReviewLimitExceeded(t *testing.T) {
	cfg := config.DefaultOrchestratorConfig()
	cfg.ReviewLimit = 1
	f := newOrchFixture(t, cfg)
	f.drv.push(resultMsg(testPlan))
	f.drv.push(resultMsg("attempt"))
	f.drv.push(resultMsg(`{"approved": false, "feedback": "nope"}`))

	wf := f.startAdHoc(t, "/repos/limit")
	f.waitForStatus(t, wf.ID, workflow.StatusBlocked)
	require.NoError(t, f.svc.Approve(t.Context(), wf.ID))

	final := f.waitForStatus(t, wf.ID, workflow.StatusFailed)
	assert.Equal(t, "review_limit_exceeded", final.FailureReason)
}

func TestOrchestrator_RejectAtGate(t *testing.T) {
	f := newOrchFixture(t, config.DefaultOrchestratorConfig())
	f.drv.push(resultMsg(testPlan))

	wf := f.startAdHoc(t, "/repos/reject")
	f.waitForStatus(t, wf.ID, workflow.StatusBlocked)

	require.NoError(t, f.svc.Reject(t.Context(), wf.ID, "wrong direction"))
	final := f.waitForStatus(t, wf.ID, workflow.StatusFailed)
	assert.Equal(t, "wrong direction", final.FailureReason)
	assert.Contains(t, f.eventTypes(t, wf.ID), events.EventTypeApprovalRejected)

	// Terminal actions are idempotent.
	assert.ErrorIs(t, f.svc.Reject(t.Context(), wf.ID, "again"), services.ErrAlreadyTerminal)
	assert.ErrorIs(t, f.svc.Approve(t.Context(), wf.ID), services.ErrAlreadyTerminal)
}

func TestOrchestrator_CancelAtGate(t *testing.T) {
	f := newOrchFixture(t, config.DefaultOrchestratorConfig())
	f.drv.push(resultMsg(testPlan))

	wf := f.startAdHoc(t, "/repos/cancel")
	f.waitForStatus(t, wf.ID, workflow.StatusBlocked)

	require.NoError(t, f.svc.Cancel(t.Context(), wf.ID))
	f.waitForStatus(t, wf.ID, workflow.StatusCancelled)
	assert.Contains(t, f.eventTypes(t, wf.ID), events.EventTypeWorkflowCancelled)
}

func TestOrchestrator_CancelRightAfterStart(t *testing.T) {
	f := newOrchFixture(t, config.DefaultOrchestratorConfig())
	f.drv.push(resultMsg(testPlan))

	wf := f.startAdHoc(t, "/repos/earlycancel")

	// One call must suffice regardless of where the machine is: either it
	// observes the cancellation at a node boundary, or it has already
	// suspended at the gate and Cancel transitions the row directly after
	// the task drains.
	require.NoError(t, f.svc.Cancel(t.Context(), wf.ID))
	final := f.waitForStatus(t, wf.ID, workflow.StatusCancelled)
	assert.NotNil(t, final.CompletedAt)
	assert.Contains(t, f.eventTypes(t, wf.ID), events.EventTypeWorkflowCancelled)
}

func TestOrchestrator_ApproveRequiresBlocked(t *testing.T) {
	f := newOrchFixture(t, config.DefaultOrchestratorConfig())
	f.drv.push(resultMsg(testPlan))

	wf := f.startAdHoc(t, "/repos/notblocked")
	// Approve races the architect here; either the workflow is not yet
	// blocked or, rarely, it is. Only assert the not-approvable case.
	err := f.svc.Approve(t.Context(), wf.ID)
	if err != nil {
		assert.ErrorIs(t, err, services.ErrNotApprovable)
	}
	f.waitForStatus(t, wf.ID, workflow.StatusBlocked)
	require.NoError(t, f.svc.Cancel(t.Context(), wf.ID))
	f.waitForStatus(t, wf.ID, workflow.StatusCancelled)
}

func TestOrchestrator_WorktreeConflict(t *testing.T) {
	f := newOrchFixture(t, config.DefaultOrchestratorConfig())
	f.drv.push(resultMsg(testPlan))

	wf := f.startAdHoc(t, "/repos/shared")
	f.waitForStatus(t, wf.ID, workflow.StatusBlocked)

	_, err := f.svc.StartWorkflow(t.Context(), models.CreateWorkflowRequest{
		IssueID:      "TASK-2",
		WorktreePath: "/repos/shared",
		ProfileID:    "local",
		TaskTitle:    "Another task",
	})
	assert.ErrorIs(t, err, services.ErrWorkflowConflict)

	require.NoError(t, f.svc.Cancel(t.Context(), wf.ID))
	f.waitForStatus(t, wf.ID, workflow.StatusCancelled)
}

func TestOrchestrator_RateLimited(t *testing.T) {
	cfg := config.DefaultOrchestratorConfig()
	cfg.MaxConcurrent = 1
	f := newOrchFixture(t, cfg)
	f.drv.push(resultMsg(testPlan))

	wf := f.startAdHoc(t, "/repos/first")
	f.waitForStatus(t, wf.ID, workflow.StatusBlocked)

	_, err := f.svc.StartWorkflow(t.Context(), models.CreateWorkflowRequest{
		IssueID:      "TASK-2",
		WorktreePath: "/repos/second",
		ProfileID:    "local",
		TaskTitle:    "Another task",
	})
	assert.ErrorIs(t, err, services.ErrRateLimited)

	// The slot frees once the first workflow terminates.
	require.NoError(t, f.svc.Cancel(t.Context(), wf.ID))
	f.waitForStatus(t, wf.ID, workflow.StatusCancelled)

	f.drv.push(resultMsg(testPlan))
	wf2, err := f.svc.StartWorkflow(t.Context(), models.CreateWorkflowRequest{
		IssueID:      "TASK-3",
		WorktreePath: "/repos/third",
		ProfileID:    "local",
		TaskTitle:    "Third task",
	})
	require.NoError(t, err)
	f.waitForStatus(t, wf2.ID, workflow.StatusBlocked)
	require.NoError(t, f.svc.Cancel(t.Context(), wf2.ID))
}

func TestOrchestrator_UnknownProfile(t *testing.T) {
	f := newOrchFixture(t, config.DefaultOrchestratorConfig())

	_, err := f.svc.StartWorkflow(t.Context(), models.CreateWorkflowRequest{
		IssueID:      "TASK-1",
		WorktreePath: "/repos/x",
		ProfileID:    "missing",
		TaskTitle:    "t",
	})
	var vErr *services.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestOrchestrator_TaskDescriptionRequiresTitle(t *testing.T) {
	f := newOrchFixture(t, config.DefaultOrchestratorConfig())

	_, err := f.svc.StartWorkflow(t.Context(), models.CreateWorkflowRequest{
		IssueID:         "TASK-1",
		WorktreePath:    "/repos/x",
		ProfileID:       "local",
		TaskDescription: "details without a title",
	})
	var vErr *services.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "task_title", vErr.Field)
}

func TestOrchestrator_RecoverFailsOrphanWithoutCheckpoint(t *testing.T) {
	f := newOrchFixture(t, config.DefaultOrchestratorConfig())

	// A planning workflow from a dead process: no checkpoint, no heartbeat.
	wf, err := f.workflows.CreateWorkflow(t.Context(), models.CreateWorkflowRequest{
		IssueID:      "TASK-9",
		WorktreePath: "/repos/orphan",
		ProfileID:    "local",
	}, &models.Issue{ID: "TASK-9", Title: "orphan"})
	require.NoError(t, err)
	_, err = f.workflows.UpdateWorkflowStatus(t.Context(), wf.ID, workflow.StatusPlanning, "")
	require.NoError(t, err)

	svc2 := NewService(f.deps)
	require.NoError(t, svc2.Start(t.Context()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		svc2.Shutdown(ctx)
	})

	final := f.waitForStatus(t, wf.ID, workflow.StatusFailed)
	assert.Equal(t, "orphaned", final.FailureReason)
}

func TestOrchestrator_ApproveAfterRestart(t *testing.T) {
	f := newOrchFixture(t, config.DefaultOrchestratorConfig())
	f.drv.push(resultMsg(testPlan))

	wf := f.startAdHoc(t, "/repos/restart")
	f.waitForStatus(t, wf.ID, workflow.StatusBlocked)

	// Simulate a process restart: the blocked workflow survives it and
	// approval resumes from the persisted checkpoint.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	f.svc.Shutdown(shutdownCtx)
	cancel()

	svc2 := NewService(f.deps)
	require.NoError(t, svc2.Start(t.Context()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		svc2.Shutdown(ctx)
	})

	still, err := f.workflows.GetWorkflow(t.Context(), wf.ID)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusBlocked, still.Status)

	f.drv.push(resultMsg("implemented"))
	f.drv.push(resultMsg(`{"approved": true}`))
	require.NoError(t, svc2.Approve(t.Context(), wf.ID))
	f.waitForStatus(t, wf.ID, workflow.StatusCompleted)
}

func TestOrchestrator_ArchitectFailureFailsWorkflow(t *testing.T) {
	f := newOrchFixture(t, config.DefaultOrchestratorConfig())
	f.drv.push(driver.Message{Type: driver.MessageError, Reason: "model overloaded"})

	wf := f.startAdHoc(t, "/repos/archfail")
	final := f.waitForStatus(t, wf.ID, workflow.StatusFailed)
	assert.Contains(t, final.FailureReason, "architect failed")
	assert.Contains(t, f.eventTypes(t, wf.ID), events.EventTypeWorkflowFailed)
}
