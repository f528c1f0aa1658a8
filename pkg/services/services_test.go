package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existential-birds/amelia-sub003/ent/event"
	"github.com/existential-birds/amelia-sub003/ent/tokenusage"
	"github.com/existential-birds/amelia-sub003/pkg/config"
	"github.com/existential-birds/amelia-sub003/pkg/database"
	"github.com/existential-birds/amelia-sub003/pkg/models"
	"github.com/existential-birds/amelia-sub003/pkg/services"
	testdb "github.com/existential-birds/amelia-sub003/test/database"
)

func createWorkflowRow(t *testing.T, client *database.Client, worktree string) string {
	t.Helper()
	wf, err := services.NewWorkflowService(client.Client).CreateWorkflow(t.Context(),
		models.CreateWorkflowRequest{
			WorkflowID:   uuid.New().String(),
			IssueID:      "TASK-1",
			WorktreePath: worktree,
			ProfileID:    "local",
		}, nil)
	require.NoError(t, err)
	return wf.ID
}

func appendEvent(t *testing.T, client *database.Client, workflowID string, seq int, eventType string, level event.Level) int {
	t.Helper()
	row, err := client.Event.Create().
		SetWorkflowID(workflowID).
		SetSequence(seq).
		SetAgent(event.AgentSystem).
		SetEventType(eventType).
		SetLevel(level).
		SetMessage(eventType).
		Save(t.Context())
	require.NoError(t, err)
	return row.ID
}

func TestCheckpointService_SaveAndLatest(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCheckpointService(client.Client)
	wfID := createWorkflowRow(t, client, "/repos/cp")

	_, err := svc.SaveCheckpoint(t.Context(), wfID, "architect_node", map[string]interface{}{"step": 1})
	require.NoError(t, err)
	second, err := svc.SaveCheckpoint(t.Context(), wfID, "developer_node", map[string]interface{}{"step": 2})
	require.NoError(t, err)

	latest, err := svc.LatestCheckpoint(t.Context(), wfID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, "developer_node", latest.Node)

	_, err = svc.LatestCheckpoint(t.Context(), uuid.New().String())
	assert.ErrorIs(t, err, services.ErrNotFound)

	deleted, err := svc.CleanupWorkflowCheckpoints(t.Context(), wfID)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
}

func TestCheckpointService_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCheckpointService(client.Client)

	_, err := svc.SaveCheckpoint(t.Context(), "", "node", nil)
	var vErr *services.ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.SaveCheckpoint(t.Context(), "wf", "", nil)
	assert.ErrorAs(t, err, &vErr)
}

func TestEventService_ListAndRecent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewEventService(client.Client)
	wfID := createWorkflowRow(t, client, "/repos/evt")

	appendEvent(t, client, wfID, 1, "workflow_created", event.LevelInfo)
	appendEvent(t, client, wfID, 2, "task_started", event.LevelDebug)
	appendEvent(t, client, wfID, 3, "claude_thinking", event.LevelTrace)
	appendEvent(t, client, wfID, 4, "approval_required", event.LevelInfo)

	all, err := svc.ListEvents(t.Context(), wfID, models.EventFilters{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, 1, all[0].Sequence)

	infoOnly, err := svc.ListEvents(t.Context(), wfID, models.EventFilters{Level: "info"})
	require.NoError(t, err)
	assert.Len(t, infoOnly, 2)

	after, err := svc.ListEvents(t.Context(), wfID, models.EventFilters{AfterSequence: 2})
	require.NoError(t, err)
	require.Len(t, after, 2)
	assert.Equal(t, 3, after[0].Sequence)

	recent, err := svc.Recent(t.Context(), wfID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	// Ascending order, ending at the newest.
	assert.Equal(t, 3, recent[0].Sequence)
	assert.Equal(t, 4, recent[1].Sequence)

	maxSeq, err := svc.MaxSequence(t.Context(), wfID)
	require.NoError(t, err)
	assert.Equal(t, 4, maxSeq)

	maxSeq, err = svc.MaxSequence(t.Context(), uuid.New().String())
	require.NoError(t, err)
	assert.Zero(t, maxSeq)
}

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewEventService(client.Client)
	wfID := createWorkflowRow(t, client, "/repos/since")

	first := appendEvent(t, client, wfID, 1, "workflow_created", event.LevelInfo)
	second := appendEvent(t, client, wfID, 2, "workflow_started", event.LevelInfo)

	rows, err := svc.GetEventsSince(t.Context(), first, 100)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, second, rows[0].ID)

	_, err = svc.GetEventsSince(t.Context(), second+1000, 100)
	assert.ErrorIs(t, err, services.ErrCursorNotFound)
}

func TestTokenService_Totals(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewTokenService(client.Client)
	wfID := createWorkflowRow(t, client, "/repos/tokens")

	require.NoError(t, svc.RecordUsage(t.Context(), wfID, tokenusage.AgentArchitect, 100, 40))
	require.NoError(t, svc.RecordUsage(t.Context(), wfID, tokenusage.AgentDeveloper, 250, 90))

	totals, err := svc.WorkflowTotals(t.Context(), wfID)
	require.NoError(t, err)
	assert.Equal(t, 350, totals.InputTokens)
	assert.Equal(t, 130, totals.OutputTokens)
	assert.Equal(t, 480, totals.TotalTokens)

	empty, err := svc.WorkflowTotals(t.Context(), uuid.New().String())
	require.NoError(t, err)
	assert.Zero(t, empty.TotalTokens)
}

func TestPromptService_UpsertDeduplicatesContent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewPromptService(client.Client)

	v1, err := svc.UpsertPromptVersion(t.Context(), "architect-system", "architect system prompt", "You plan.")
	require.NoError(t, err)
	assert.Equal(t, 1, v1.Version)

	// Identical content returns the existing version.
	same, err := svc.UpsertPromptVersion(t.Context(), "architect-system", "architect system prompt", "You plan.")
	require.NoError(t, err)
	assert.Equal(t, v1.ID, same.ID)

	v2, err := svc.UpsertPromptVersion(t.Context(), "architect-system", "architect system prompt", "You plan carefully.")
	require.NoError(t, err)
	assert.Equal(t, 2, v2.Version)

	latest, err := svc.LatestVersion(t.Context(), "architect-system")
	require.NoError(t, err)
	assert.Equal(t, v2.ID, latest.ID)

	_, err = svc.LatestVersion(t.Context(), "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestPromptService_LinkWorkflowVersionIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewPromptService(client.Client)
	wfID := createWorkflowRow(t, client, "/repos/prompt-link")

	v, err := svc.UpsertPromptVersion(t.Context(), "developer-system", "developer system prompt", "You build.")
	require.NoError(t, err)

	require.NoError(t, svc.LinkWorkflowVersion(t.Context(), wfID, v.ID))
	require.NoError(t, svc.LinkWorkflowVersion(t.Context(), wfID, v.ID))
}

func TestSettingsService_RoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewSettingsService(client.Client)

	_, err := svc.GetSetting(t.Context(), services.SettingTraceRetentionDays)
	assert.ErrorIs(t, err, services.ErrNotFound)

	got, err := svc.GetIntSetting(t.Context(), services.SettingTraceRetentionDays, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got, "absent key falls back to default")

	require.NoError(t, svc.SetSetting(t.Context(), services.SettingTraceRetentionDays, "3"))
	require.NoError(t, svc.SetSetting(t.Context(), services.SettingTraceRetentionDays, "5"))

	got, err = svc.GetIntSetting(t.Context(), services.SettingTraceRetentionDays, 7)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestProfileService_SyncFromConfig(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewProfileService(client.Client)

	registry := config.NewProfileRegistry(map[string]*config.ProfileConfig{
		"local": {
			Tracker:       config.TrackerNoop,
			WorkingDir:    "/repos/p",
			PlanOutputDir: "/repos/p/plans",
			Default:       config.AgentConfig{Driver: config.DriverClaudeCLI},
			Agents: map[config.AgentRole]config.AgentConfig{
				config.RoleReviewer: {Driver: config.DriverAnthropicAPI, Model: "sonnet"},
			},
		},
	})

	require.NoError(t, svc.SyncFromConfig(t.Context(), registry))
	// Re-sync upserts instead of failing.
	require.NoError(t, svc.SyncFromConfig(t.Context(), registry))

	profiles, err := svc.ListProfiles(t.Context())
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "local", profiles[0].ID)
	assert.Equal(t, "noop", profiles[0].Tracker)

	reviewer, ok := profiles[0].Agents["reviewer"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "anthropic-api", reviewer["driver"])
}
