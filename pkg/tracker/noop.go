package tracker

import (
	"context"

	"github.com/existential-birds/amelia-sub003/pkg/models"
)

// Noop is the tracker for ad-hoc tasks with no external issue system.
type Noop struct{}

// FetchIssue returns a bare issue carrying only the reference. Callers with
// a task title use BuildAdHocIssue instead.
func (n *Noop) FetchIssue(_ context.Context, issueID string) (*models.Issue, error) {
	return &models.Issue{ID: issueID, Title: issueID}, nil
}

// BuildAdHocIssue constructs an issue directly from user-supplied task
// fields, bypassing any tracker lookup.
func BuildAdHocIssue(issueID, title, description string) *models.Issue {
	return &models.Issue{
		ID:    issueID,
		Title: title,
		Body:  description,
	}
}
