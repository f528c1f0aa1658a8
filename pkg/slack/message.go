package slack

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var statusEmoji = map[string]string{
	"completed": ":white_check_mark:",
	"failed":    ":x:",
	"cancelled": ":no_entry_sign:",
}

var statusLabel = map[string]string{
	"completed": "Workflow Complete",
	"failed":    "Workflow Failed",
	"cancelled": "Workflow Cancelled",
}

func workflowURL(workflowID, dashboardURL string) string {
	return fmt.Sprintf("%s/workflows/%s", dashboardURL, workflowID)
}

// BuildApprovalMessage creates Block Kit blocks for a plan-awaiting-approval
// notification.
func BuildApprovalMessage(workflowID, issueID, planPath, dashboardURL string) []goslack.Block {
	url := workflowURL(workflowID, dashboardURL)
	text := fmt.Sprintf(":raised_hand: *Plan ready for review* (issue %s)\nPlan: `%s`\n<%s|Review in Dashboard>",
		issueID, planPath, url)

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

// BuildTerminalMessage creates Block Kit blocks for a terminal workflow
// notification.
func BuildTerminalMessage(input WorkflowCompletedInput, dashboardURL string) []goslack.Block {
	emoji := statusEmoji[input.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := statusLabel[input.Status]
	if label == "" {
		label = "Workflow " + input.Status
	}

	headerText := fmt.Sprintf("%s *%s* (issue %s)", emoji, label, input.IssueID)
	if input.FailureReason != "" {
		headerText += fmt.Sprintf("\n\n*Reason:*\n%s", truncateForSlack(input.FailureReason))
	}

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil,
		),
	}

	buttonText := "View Workflow"
	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, buttonText, false, false))
	btn.URL = workflowURL(input.WorkflowID, dashboardURL)
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated, view details in dashboard)_"
}
