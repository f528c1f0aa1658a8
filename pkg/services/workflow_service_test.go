package services_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existential-birds/amelia-sub003/ent/workflow"
	"github.com/existential-birds/amelia-sub003/pkg/models"
	"github.com/existential-birds/amelia-sub003/pkg/services"
	testdb "github.com/existential-birds/amelia-sub003/test/database"
)

func newWorkflowService(t *testing.T) *services.WorkflowService {
	t.Helper()
	return services.NewWorkflowService(testdb.NewTestClient(t).Client)
}

func createRequest(worktree string) models.CreateWorkflowRequest {
	return models.CreateWorkflowRequest{
		WorkflowID:   uuid.New().String(),
		IssueID:      "TASK-1",
		WorktreePath: worktree,
		ProfileID:    "local",
	}
}

func TestWorkflowService_CreateValidation(t *testing.T) {
	svc := newWorkflowService(t)

	_, err := svc.CreateWorkflow(t.Context(), models.CreateWorkflowRequest{WorktreePath: "/r", ProfileID: "p"}, nil)
	var vErr *services.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "issue_id", vErr.Field)

	_, err = svc.CreateWorkflow(t.Context(), models.CreateWorkflowRequest{IssueID: "T", ProfileID: "p"}, nil)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "worktree_path", vErr.Field)
}

func TestWorkflowService_CreateSnapshotsIssue(t *testing.T) {
	svc := newWorkflowService(t)

	issue := &models.Issue{ID: "TASK-1", Title: "Fix it", Labels: []string{"bug"}}
	wf, err := svc.CreateWorkflow(t.Context(), createRequest("/repos/snap"), issue)
	require.NoError(t, err)

	assert.Equal(t, workflow.StatusPending, wf.Status)
	got := models.IssueFromMap(wf.IssueCache)
	require.NotNil(t, got)
	assert.Equal(t, "Fix it", got.Title)
	assert.Equal(t, []string{"bug"}, got.Labels)
}

func TestWorkflowService_WorktreeExclusivity(t *testing.T) {
	svc := newWorkflowService(t)

	wf, err := svc.CreateWorkflow(t.Context(), createRequest("/repos/excl"), nil)
	require.NoError(t, err)

	// The worktree is held from the moment the row exists, before the
	// workflow makes its first transition.
	_, err = svc.CreateWorkflow(t.Context(), createRequest("/repos/excl"), nil)
	assert.ErrorIs(t, err, services.ErrWorkflowConflict, "pending already occupies the worktree")

	_, err = svc.UpdateWorkflowStatus(t.Context(), wf.ID, workflow.StatusPlanning, "")
	require.NoError(t, err)
	_, err = svc.CreateWorkflow(t.Context(), createRequest("/repos/excl"), nil)
	assert.ErrorIs(t, err, services.ErrWorkflowConflict)

	// A terminal workflow releases it.
	_, err = svc.UpdateWorkflowStatus(t.Context(), wf.ID, workflow.StatusFailed, "gave up")
	require.NoError(t, err)
	_, err = svc.CreateWorkflow(t.Context(), createRequest("/repos/excl"), nil)
	assert.NoError(t, err)
}

func TestWorkflowService_ConcurrentCreatesSingleWinner(t *testing.T) {
	svc := newWorkflowService(t)

	// Both creates race past the fast-path existence check; the partial
	// unique index lets exactly one land.
	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateWorkflow(t.Context(), createRequest("/repos/race"), nil)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var created, conflicted int
	for err := range results {
		switch {
		case err == nil:
			created++
		case errors.Is(err, services.ErrWorkflowConflict):
			conflicted++
		default:
			t.Fatalf("unexpected create error: %v", err)
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, conflicted)
}

func TestWorkflowService_StatusTransitions(t *testing.T) {
	svc := newWorkflowService(t)

	wf, err := svc.CreateWorkflow(t.Context(), createRequest("/repos/trans"), nil)
	require.NoError(t, err)
	assert.Nil(t, wf.StartedAt)

	updated, err := svc.UpdateWorkflowStatus(t.Context(), wf.ID, workflow.StatusPlanning, "")
	require.NoError(t, err)
	assert.NotNil(t, updated.StartedAt)

	// Illegal jump rejected with the transition error.
	_, err = svc.UpdateWorkflowStatus(t.Context(), wf.ID, workflow.StatusCompleted, "")
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	_, err = svc.UpdateWorkflowStatus(t.Context(), wf.ID, workflow.StatusBlocked, "")
	require.NoError(t, err)
	_, err = svc.UpdateWorkflowStatus(t.Context(), wf.ID, workflow.StatusInProgress, "")
	require.NoError(t, err)

	final, err := svc.UpdateWorkflowStatus(t.Context(), wf.ID, workflow.StatusCompleted, "")
	require.NoError(t, err)
	assert.NotNil(t, final.CompletedAt)
	assert.Empty(t, final.FailureReason)

	// Terminal rows accept no further transitions.
	_, err = svc.UpdateWorkflowStatus(t.Context(), wf.ID, workflow.StatusFailed, "late")
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestWorkflowService_FailureReasonOnlyOnTerminalFailure(t *testing.T) {
	svc := newWorkflowService(t)

	wf, err := svc.CreateWorkflow(t.Context(), createRequest("/repos/reason"), nil)
	require.NoError(t, err)

	// Reason is ignored on non-failure transitions.
	updated, err := svc.UpdateWorkflowStatus(t.Context(), wf.ID, workflow.StatusPlanning, "not recorded")
	require.NoError(t, err)
	assert.Empty(t, updated.FailureReason)

	failed, err := svc.UpdateWorkflowStatus(t.Context(), wf.ID, workflow.StatusFailed, "architect failed")
	require.NoError(t, err)
	assert.Equal(t, "architect failed", failed.FailureReason)
}

func TestWorkflowService_ListWithCommaStatuses(t *testing.T) {
	svc := newWorkflowService(t)

	a, err := svc.CreateWorkflow(t.Context(), createRequest("/repos/list-a"), nil)
	require.NoError(t, err)
	b, err := svc.CreateWorkflow(t.Context(), createRequest("/repos/list-b"), nil)
	require.NoError(t, err)
	_, err = svc.UpdateWorkflowStatus(t.Context(), a.ID, workflow.StatusPlanning, "")
	require.NoError(t, err)
	_, err = svc.UpdateWorkflowStatus(t.Context(), b.ID, workflow.StatusPlanning, "")
	require.NoError(t, err)
	_, err = svc.UpdateWorkflowStatus(t.Context(), b.ID, workflow.StatusBlocked, "")
	require.NoError(t, err)

	result, err := svc.ListWorkflows(t.Context(), models.WorkflowFilters{Status: "planning, blocked"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCount)

	result, err = svc.ListWorkflows(t.Context(), models.WorkflowFilters{Status: "blocked"})
	require.NoError(t, err)
	require.Len(t, result.Workflows, 1)
	assert.Equal(t, b.ID, result.Workflows[0].ID)
}

func TestWorkflowService_CountActiveAndFindByWorktree(t *testing.T) {
	svc := newWorkflowService(t)

	wf, err := svc.CreateWorkflow(t.Context(), createRequest("/repos/count"), nil)
	require.NoError(t, err)

	count, err := svc.CountActive(t.Context())
	require.NoError(t, err)
	assert.Zero(t, count, "pending is not active")

	open, err := svc.CountOpen(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, open, "pending already holds a slot")

	_, err = svc.UpdateWorkflowStatus(t.Context(), wf.ID, workflow.StatusPlanning, "")
	require.NoError(t, err)

	count, err = svc.CountActive(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	found, err := svc.FindOpenByWorktree(t.Context(), "/repos/count")
	require.NoError(t, err)
	assert.Equal(t, wf.ID, found.ID)

	_, err = svc.FindOpenByWorktree(t.Context(), "/repos/elsewhere")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestWorkflowService_FindResumable(t *testing.T) {
	svc := newWorkflowService(t)

	pending, err := svc.CreateWorkflow(t.Context(), createRequest("/repos/res-pending"), nil)
	require.NoError(t, err)

	stale, err := svc.CreateWorkflow(t.Context(), createRequest("/repos/res-stale"), nil)
	require.NoError(t, err)
	_, err = svc.UpdateWorkflowStatus(t.Context(), stale.ID, workflow.StatusPlanning, "")
	require.NoError(t, err)

	fresh, err := svc.CreateWorkflow(t.Context(), createRequest("/repos/res-fresh"), nil)
	require.NoError(t, err)
	_, err = svc.UpdateWorkflowStatus(t.Context(), fresh.ID, workflow.StatusPlanning, "")
	require.NoError(t, err)
	require.NoError(t, svc.Heartbeat(t.Context(), fresh.ID, "pod-1"))

	rows, err := svc.FindResumable(t.Context(), time.Minute)
	require.NoError(t, err)

	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	assert.Contains(t, ids, pending.ID, "never-started rows are resumable")
	assert.Contains(t, ids, stale.ID, "rows without a heartbeat are resumable")
	assert.NotContains(t, ids, fresh.ID, "recently heartbeaten rows are owned")
}

func TestWorkflowService_PlanCacheAndReviewIteration(t *testing.T) {
	svc := newWorkflowService(t)

	wf, err := svc.CreateWorkflow(t.Context(), createRequest("/repos/plan"), nil)
	require.NoError(t, err)

	plan := &models.PlanArtifact{Path: "/plans/p.md", Goal: "Do the thing", Markdown: "# Do the thing"}
	require.NoError(t, svc.SetPlanCache(t.Context(), wf.ID, plan))

	got, err := svc.GetWorkflow(t.Context(), wf.ID)
	require.NoError(t, err)
	assert.Equal(t, plan, models.PlanArtifactFromMap(got.PlanCache))

	n, err := svc.IncrementReviewIteration(t.Context(), wf.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = svc.IncrementReviewIteration(t.Context(), wf.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.ErrorIs(t, svc.SetPlanCache(t.Context(), uuid.New().String(), plan), services.ErrNotFound)
}
