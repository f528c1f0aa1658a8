package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existential-birds/amelia-sub003/pkg/models"
)

var issueFixture = models.Issue{ID: "TASK-9", Title: "Speed up boot"}

func TestParseVerdict_BareJSON(t *testing.T) {
	v, err := ParseVerdict(`{"approved": true}`)
	require.NoError(t, err)
	assert.True(t, v.Approved)
	assert.Empty(t, v.Feedback)
}

func TestParseVerdict_RejectedWithFeedback(t *testing.T) {
	v, err := ParseVerdict(`{"approved": false, "feedback": "error handling is missing in the new endpoint"}`)
	require.NoError(t, err)
	assert.False(t, v.Approved)
	assert.Contains(t, v.Feedback, "error handling")
}

func TestParseVerdict_FencedBlock(t *testing.T) {
	text := "Here is my verdict:\n```json\n{\"approved\": false, \"feedback\": \"add tests\"}\n```\nThanks."
	v, err := ParseVerdict(text)
	require.NoError(t, err)
	assert.False(t, v.Approved)
	assert.Equal(t, "add tests", v.Feedback)
}

func TestParseVerdict_EmbeddedInProse(t *testing.T) {
	text := `After reviewing the changes I conclude {"approved": true} as everything matches the plan.`
	v, err := ParseVerdict(text)
	require.NoError(t, err)
	assert.True(t, v.Approved)
}

func TestParseVerdict_SkipsUnrelatedObjects(t *testing.T) {
	text := `The config {"debug": true} was untouched. Verdict: {"approved": false, "feedback": "wrong file"}`
	v, err := ParseVerdict(text)
	require.NoError(t, err)
	assert.False(t, v.Approved)
	assert.Equal(t, "wrong file", v.Feedback)
}

func TestParseVerdict_Malformed(t *testing.T) {
	for _, text := range []string{
		"",
		"LGTM",
		`{"verdict": "yes"}`,
		"{unbalanced",
	} {
		_, err := ParseVerdict(text)
		assert.Error(t, err, "input %q", text)
	}
}

func TestParsePlanOutput_GoalAndKeyFiles(t *testing.T) {
	markdown := "# Improve startup time\n\n1. Do things.\n\n## Key Files\n- `cmd/main.go`\n* pkg/boot/loader.go\n\n## Risks\n- none\n"
	plan := parsePlanOutput(markdown, &issueFixture)
	assert.Equal(t, "Improve startup time", plan.Goal)
	assert.Equal(t, []string{"cmd/main.go", "pkg/boot/loader.go"}, plan.KeyFiles)
	assert.Equal(t, markdown, plan.MarkdownContent)
}

func TestParsePlanOutput_NoHeadingFallsBackToIssueTitle(t *testing.T) {
	plan := parsePlanOutput("just some steps", &issueFixture)
	assert.Equal(t, issueFixture.Title, plan.Goal)
	assert.Empty(t, plan.KeyFiles)
}

func TestSanitizeIssueID(t *testing.T) {
	assert.Equal(t, "acme_widgets_42", sanitizeIssueID("acme/widgets#42"))
	assert.Equal(t, "TASK-1", sanitizeIssueID("TASK-1"))
}
