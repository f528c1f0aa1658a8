package agent

import (
	"fmt"
	"strings"

	"github.com/existential-birds/amelia-sub003/pkg/config"
	"github.com/existential-birds/amelia-sub003/pkg/models"
)

const architectSystemPrompt = `You are the Architect. Study the issue and the repository in the working directory, then produce an implementation plan as a markdown document.

Structure the plan as:
- A single top-level heading stating the goal.
- Numbered implementation steps with enough detail for another engineer to execute without further questions.
- A "## Key Files" section listing, one bullet per line, the files that will be created or modified.

Do not modify any files. Respond with the plan markdown only.`

const developerSystemPrompt = `You are the Developer. Execute the implementation plan below exactly, using your filesystem tools to create and modify files in the working directory. Stay within the plan's scope. When finished, respond with a short summary of the changes you made.`

const reviewerSystemPrompt = `You are the Reviewer. Verify that the changes in the working directory fulfill the implementation plan below. Inspect the modified files; do not change anything.

Respond with a JSON object and nothing else:
{"approved": true} if the changes meet the plan, or
{"approved": false, "feedback": "<specific, actionable revision requests>"} if they do not.`

// SystemPrompts returns the active system prompt per role, used to record
// prompt versions against each workflow.
func SystemPrompts() map[config.AgentRole]string {
	return map[config.AgentRole]string{
		config.RoleArchitect: architectSystemPrompt,
		config.RoleDeveloper: developerSystemPrompt,
		config.RoleReviewer:  reviewerSystemPrompt,
	}
}

func buildArchitectPrompt(issue *models.Issue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Issue %s: %s\n", issue.ID, issue.Title)
	if issue.Body != "" {
		b.WriteString("\n")
		b.WriteString(issue.Body)
		b.WriteString("\n")
	}
	if len(issue.Labels) > 0 {
		fmt.Fprintf(&b, "\nLabels: %s\n", strings.Join(issue.Labels, ", "))
	}
	b.WriteString("\nProduce the implementation plan.")
	return b.String()
}

func buildDeveloperPrompt(planContent string, feedback []string) string {
	var b strings.Builder
	b.WriteString("Implementation plan:\n\n")
	b.WriteString(planContent)
	if len(feedback) > 0 {
		b.WriteString("\n\nReviewer feedback from previous iterations, address all of it:\n")
		for i, f := range feedback {
			fmt.Fprintf(&b, "\nIteration %d:\n%s\n", i+1, f)
		}
	}
	return b.String()
}

func buildReviewerPrompt(planContent string) string {
	return "Implementation plan to verify:\n\n" + planContent
}
