package events

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existential-birds/amelia-sub003/ent/event"
	"github.com/existential-birds/amelia-sub003/pkg/database"
	"github.com/existential-birds/amelia-sub003/pkg/models"
	"github.com/existential-birds/amelia-sub003/pkg/services"
	testdb "github.com/existential-birds/amelia-sub003/test/database"
)

func createTestWorkflow(t *testing.T, client *database.Client, worktree string) string {
	t.Helper()
	wf, err := services.NewWorkflowService(client.Client).CreateWorkflow(t.Context(), models.CreateWorkflowRequest{
		WorkflowID:   uuid.New().String(),
		IssueID:      "TASK-1",
		WorktreePath: worktree,
		ProfileID:    "local",
	}, &models.Issue{ID: "TASK-1", Title: "publish things"})
	require.NoError(t, err)
	return wf.ID
}

func TestPublisher_AssignsSequencesPerWorkflow(t *testing.T) {
	client := testdb.NewTestClient(t)
	pub := NewEventPublisher(client.DB(), nil)

	wfA := createTestWorkflow(t, client, "/repos/pub-a")
	wfB := createTestWorkflow(t, client, "/repos/pub-b")

	for i := 0; i < 3; i++ {
		env, err := pub.Publish(t.Context(), models.CreateEventRequest{
			WorkflowID: wfA,
			EventType:  EventTypeTaskStarted,
			Message:    "step",
		})
		require.NoError(t, err)
		assert.Equal(t, i+1, env.Sequence)
		assert.NotZero(t, env.ID)
	}

	// The second workflow's counter is independent.
	env, err := pub.Publish(t.Context(), models.CreateEventRequest{
		WorkflowID: wfB,
		EventType:  EventTypeWorkflowStarted,
		Message:    "workflow started",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, env.Sequence)
	assert.Equal(t, "info", env.Level)
}

func TestPublisher_RequiresWorkflowAndType(t *testing.T) {
	client := testdb.NewTestClient(t)
	pub := NewEventPublisher(client.DB(), nil)

	_, err := pub.Publish(t.Context(), models.CreateEventRequest{EventType: EventTypeTaskStarted})
	assert.Error(t, err)

	_, err = pub.Publish(t.Context(), models.CreateEventRequest{WorkflowID: "wf-1"})
	assert.Error(t, err)
}

func TestPublisher_TraceEventsSkipStoreWhenDisabled(t *testing.T) {
	client := testdb.NewTestClient(t)
	pub := NewEventPublisher(client.DB(), func() bool { return false })

	wfID := createTestWorkflow(t, client, "/repos/pub-trace-off")

	env, err := pub.Publish(t.Context(), models.CreateEventRequest{
		WorkflowID: wfID,
		EventType:  EventTypeClaudeThinking,
		Message:    "hmm",
	})
	require.NoError(t, err)
	assert.Zero(t, env.ID)
	assert.Zero(t, env.Sequence)

	count, err := client.Event.Query().Count(t.Context())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPublisher_TraceEventsPersistWhenEnabled(t *testing.T) {
	client := testdb.NewTestClient(t)
	pub := NewEventPublisher(client.DB(), func() bool { return true })

	wfID := createTestWorkflow(t, client, "/repos/pub-trace-on")

	env, err := pub.Publish(t.Context(), models.CreateEventRequest{
		WorkflowID: wfID,
		EventType:  EventTypeClaudeToolCall,
		ToolName:   "bash",
		ToolInput:  map[string]interface{}{"command": "go test ./..."},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, env.Sequence)

	row, err := client.Event.Get(t.Context(), env.ID)
	require.NoError(t, err)
	assert.Equal(t, event.LevelTrace, row.Level)
	require.NotNil(t, row.ToolName)
	assert.Equal(t, "bash", *row.ToolName)
	assert.Equal(t, "go test ./...", row.ToolInput["command"])
}

func TestPublisher_DefaultsAgentToSystem(t *testing.T) {
	client := testdb.NewTestClient(t)
	pub := NewEventPublisher(client.DB(), nil)

	wfID := createTestWorkflow(t, client, "/repos/pub-agent")

	env, err := pub.Publish(t.Context(), models.CreateEventRequest{
		WorkflowID: wfID,
		EventType:  EventTypeWorkflowCreated,
	})
	require.NoError(t, err)
	assert.Equal(t, "system", env.Agent)

	row, err := client.Event.Get(t.Context(), env.ID)
	require.NoError(t, err)
	assert.Equal(t, event.AgentSystem, row.Agent)
}
