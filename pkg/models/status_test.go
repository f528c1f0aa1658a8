package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/existential-birds/amelia-sub003/ent/workflow"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from workflow.Status
		to   workflow.Status
		want bool
	}{
		{"pending to planning", workflow.StatusPending, workflow.StatusPlanning, true},
		{"pending skips planning", workflow.StatusPending, workflow.StatusInProgress, true},
		{"planning to blocked", workflow.StatusPlanning, workflow.StatusBlocked, true},
		{"blocked to in_progress", workflow.StatusBlocked, workflow.StatusInProgress, true},
		{"in_progress to completed", workflow.StatusInProgress, workflow.StatusCompleted, true},
		{"in_progress back to blocked for revision", workflow.StatusInProgress, workflow.StatusBlocked, true},
		{"blocked to failed", workflow.StatusBlocked, workflow.StatusFailed, true},
		{"planning to cancelled", workflow.StatusPlanning, workflow.StatusCancelled, true},

		{"pending straight to completed", workflow.StatusPending, workflow.StatusCompleted, false},
		{"planning to in_progress without gate", workflow.StatusPlanning, workflow.StatusInProgress, false},
		{"blocked to completed", workflow.StatusBlocked, workflow.StatusCompleted, false},
		{"self transition", workflow.StatusBlocked, workflow.StatusBlocked, false},
		{"completed has no exits", workflow.StatusCompleted, workflow.StatusFailed, false},
		{"failed has no exits", workflow.StatusFailed, workflow.StatusPending, false},
		{"cancelled has no exits", workflow.StatusCancelled, workflow.StatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminalAndIsActive(t *testing.T) {
	for _, s := range []workflow.Status{workflow.StatusCompleted, workflow.StatusFailed, workflow.StatusCancelled} {
		assert.True(t, IsTerminal(s), "%s should be terminal", s)
		assert.False(t, IsActive(s), "%s should not be active", s)
	}
	for _, s := range ActiveStatuses {
		assert.True(t, IsActive(s), "%s should be active", s)
		assert.False(t, IsTerminal(s), "%s should not be terminal", s)
	}
	// Pending is not active (no task runs for it) but it is open: the row
	// already occupies its worktree and a concurrency slot.
	assert.False(t, IsActive(workflow.StatusPending))
	assert.False(t, IsTerminal(workflow.StatusPending))
	assert.Contains(t, OpenStatuses, workflow.StatusPending)
	for _, s := range ActiveStatuses {
		assert.Contains(t, OpenStatuses, s)
	}
}

func TestPlanArtifactRoundTrip(t *testing.T) {
	p := &PlanArtifact{Path: "/plans/p.md", Goal: "Ship it", Markdown: "# Ship it\n"}
	got := PlanArtifactFromMap(p.ToMap())
	assert.Equal(t, p, got)

	assert.Nil(t, PlanArtifactFromMap(nil))
	assert.Nil(t, PlanArtifactFromMap(map[string]interface{}{}))
}

func TestIssueRoundTrip(t *testing.T) {
	i := &Issue{
		ID:     "TASK-7",
		Title:  "Fix the flake",
		Body:   "Details",
		Labels: []string{"bug", "ci"},
		URL:    "https://tracker.example/TASK-7",
	}
	got := IssueFromMap(i.ToMap())
	assert.Equal(t, i, got)

	assert.Nil(t, IssueFromMap(nil))
}
