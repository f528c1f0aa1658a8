// Package tracker resolves issue references into Issue values. Adapters are
// pure I/O shims; the orchestrator treats the returned Issue as immutable
// for the whole run.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/existential-birds/amelia-sub003/pkg/config"
	"github.com/existential-birds/amelia-sub003/pkg/models"
)

// ErrIssueNotFound indicates the tracker has no issue for the reference.
var ErrIssueNotFound = errors.New("issue not found")

// Tracker fetches one issue by its reference.
type Tracker interface {
	FetchIssue(ctx context.Context, issueID string) (*models.Issue, error)
}

const requestTimeout = 15 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}

// New constructs the adapter for a tracker type. GitHub and Jira read their
// credentials from the environment at construction time.
func New(trackerType config.TrackerType) (Tracker, error) {
	switch trackerType {
	case config.TrackerNoop:
		return &Noop{}, nil
	case config.TrackerGitHub:
		return NewGitHubFromEnv()
	case config.TrackerJira:
		return NewJiraFromEnv()
	default:
		return nil, fmt.Errorf("unknown tracker type: %s", trackerType)
	}
}
