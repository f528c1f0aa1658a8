package slack

import (
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionText(t *testing.T, block goslack.Block) string {
	t.Helper()
	section, ok := block.(*goslack.SectionBlock)
	require.True(t, ok, "expected section block")
	return section.Text.Text
}

func TestBuildApprovalMessage(t *testing.T) {
	blocks := BuildApprovalMessage("wf-1", "ISSUE-42", "/plans/2026-08-26-ISSUE-42.md", "http://localhost:5173")
	require.Len(t, blocks, 1)

	text := sectionText(t, blocks[0])
	assert.Contains(t, text, "ISSUE-42")
	assert.Contains(t, text, "/plans/2026-08-26-ISSUE-42.md")
	assert.Contains(t, text, "http://localhost:5173/workflows/wf-1")
}

func TestBuildTerminalMessage_Completed(t *testing.T) {
	blocks := BuildTerminalMessage(WorkflowCompletedInput{
		WorkflowID: "wf-1",
		IssueID:    "ISSUE-42",
		Status:     "completed",
	}, "http://dash")
	require.Len(t, blocks, 2)

	text := sectionText(t, blocks[0])
	assert.Contains(t, text, "Workflow Complete")
	assert.Contains(t, text, ":white_check_mark:")
}

func TestBuildTerminalMessage_FailedWithReason(t *testing.T) {
	blocks := BuildTerminalMessage(WorkflowCompletedInput{
		WorkflowID:    "wf-2",
		IssueID:       "ISSUE-7",
		Status:        "failed",
		FailureReason: "review_limit_exceeded",
	}, "http://dash")
	require.Len(t, blocks, 2)

	text := sectionText(t, blocks[0])
	assert.Contains(t, text, "Workflow Failed")
	assert.Contains(t, text, "review_limit_exceeded")
}

func TestBuildTerminalMessage_UnknownStatus(t *testing.T) {
	blocks := BuildTerminalMessage(WorkflowCompletedInput{
		WorkflowID: "wf-3",
		IssueID:    "I-1",
		Status:     "mystery",
	}, "http://dash")
	text := sectionText(t, blocks[0])
	assert.Contains(t, text, ":question:")
	assert.Contains(t, text, "Workflow mystery")
}

func TestTruncateForSlack(t *testing.T) {
	short := "all good"
	assert.Equal(t, short, truncateForSlack(short))

	long := strings.Repeat("x", maxBlockTextLength+100)
	truncated := truncateForSlack(long)
	assert.Less(t, len(truncated), len(long)+100)
	assert.Contains(t, truncated, "truncated")
}

func TestNewService_DisabledWithoutToken(t *testing.T) {
	assert.Nil(t, NewService(ServiceConfig{Channel: "#amelia"}))
	assert.Nil(t, NewService(ServiceConfig{Token: "xoxb-test"}))
	assert.NotNil(t, NewService(ServiceConfig{Token: "xoxb-test", Channel: "#amelia"}))
}

func TestService_NilSafe(t *testing.T) {
	var s *Service
	s.NotifyApprovalRequired(t.Context(), ApprovalRequiredInput{WorkflowID: "wf-1"})
	s.NotifyWorkflowCompleted(t.Context(), WorkflowCompletedInput{WorkflowID: "wf-1"})
}
