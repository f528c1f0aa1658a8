package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existential-birds/amelia-sub003/ent"
	"github.com/existential-birds/amelia-sub003/ent/event"
	"github.com/existential-birds/amelia-sub003/pkg/config"
	"github.com/existential-birds/amelia-sub003/pkg/models"
	"github.com/existential-birds/amelia-sub003/pkg/services"
	testdb "github.com/existential-birds/amelia-sub003/test/database"
)

func setupServices(t *testing.T) (*ent.Client, *services.EventService, *services.CheckpointService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client.Client, services.NewEventService(client.Client), services.NewCheckpointService(client.Client)
}

func createWorkflow(t *testing.T, client *ent.Client, worktree string) *ent.Workflow {
	t.Helper()
	workflows := services.NewWorkflowService(client)
	wf, err := workflows.CreateWorkflow(context.Background(), models.CreateWorkflowRequest{
		WorkflowID:   uuid.New().String(),
		IssueID:      "TASK-1",
		WorktreePath: worktree,
		ProfileID:    "default",
	}, &models.Issue{ID: "TASK-1", Title: "test"})
	require.NoError(t, err)
	return wf
}

func createEvent(t *testing.T, client *ent.Client, workflowID string, seq int, level event.Level, age time.Duration) {
	t.Helper()
	_, err := client.Event.Create().
		SetWorkflowID(workflowID).
		SetSequence(seq).
		SetEventType("system_warning").
		SetLevel(level).
		SetMessage("test event").
		SetCreatedAt(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
}

func testConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		LogRetentionDays:        30,
		LogRetentionMaxEvents:   100000,
		TraceRetentionDays:      7,
		CheckpointRetentionDays: 30,
		SweepInterval:           time.Hour,
	}
}

func TestService_PurgesExpiredEvents(t *testing.T) {
	client, eventService, checkpointService := setupServices(t)
	ctx := context.Background()
	wf := createWorkflow(t, client, "/repos/purge")

	createEvent(t, client, wf.ID, 1, event.LevelInfo, 40*24*time.Hour)
	createEvent(t, client, wf.ID, 2, event.LevelInfo, time.Hour)

	svc := NewService(testConfig(), eventService, checkpointService)
	svc.Sweep(ctx)

	remaining, err := client.Event.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, 2, remaining[0].Sequence)
}

func TestService_TraceEventsUseShorterWindow(t *testing.T) {
	client, eventService, checkpointService := setupServices(t)
	ctx := context.Background()
	wf := createWorkflow(t, client, "/repos/trace")

	// Old enough for the trace window but not the log window.
	createEvent(t, client, wf.ID, 1, event.LevelTrace, 10*24*time.Hour)
	createEvent(t, client, wf.ID, 2, event.LevelInfo, 10*24*time.Hour)

	svc := NewService(testConfig(), eventService, checkpointService)
	svc.Sweep(ctx)

	remaining, err := client.Event.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, event.LevelInfo, remaining[0].Level)
}

func TestService_TracePurgeSkippedWhenPersistenceDisabled(t *testing.T) {
	client, eventService, checkpointService := setupServices(t)
	ctx := context.Background()
	wf := createWorkflow(t, client, "/repos/notrace")

	createEvent(t, client, wf.ID, 1, event.LevelTrace, 10*24*time.Hour)

	cfg := testConfig()
	cfg.TraceRetentionDays = 0
	svc := NewService(cfg, eventService, checkpointService)
	svc.Sweep(ctx)

	count, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestService_TrimsEventsOverCap(t *testing.T) {
	client, eventService, checkpointService := setupServices(t)
	ctx := context.Background()
	wf := createWorkflow(t, client, "/repos/cap")

	for i := 1; i <= 5; i++ {
		createEvent(t, client, wf.ID, i, event.LevelInfo, time.Hour)
	}

	cfg := testConfig()
	cfg.LogRetentionMaxEvents = 3
	svc := NewService(cfg, eventService, checkpointService)
	svc.Sweep(ctx)

	remaining, err := client.Event.Query().Order(ent.Asc(event.FieldSequence)).All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 3)
	assert.Equal(t, 3, remaining[0].Sequence, "oldest rows should be trimmed first")
}

func TestService_PurgesOldCheckpoints(t *testing.T) {
	client, eventService, checkpointService := setupServices(t)
	ctx := context.Background()
	wf := createWorkflow(t, client, "/repos/checkpoints")

	_, err := client.Checkpoint.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(wf.ID).
		SetNode("developer_node").
		SetState(map[string]interface{}{"n": 1}).
		SetCreatedAt(time.Now().Add(-40 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	recent, err := checkpointService.SaveCheckpoint(ctx, wf.ID, "reviewer_node", map[string]interface{}{"n": 2})
	require.NoError(t, err)

	svc := NewService(testConfig(), eventService, checkpointService)
	svc.Sweep(ctx)

	remaining, err := client.Checkpoint.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, recent.ID, remaining[0].ID)
}

func TestService_StartStop(t *testing.T) {
	_, eventService, checkpointService := setupServices(t)

	svc := NewService(testConfig(), eventService, checkpointService)
	svc.Start(t.Context())
	svc.Stop()
}
