package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/existential-birds/amelia-sub003/pkg/models"
)

// Jira fetches issues from the Jira Cloud REST API.
type Jira struct {
	client   *http.Client
	baseURL  string
	email    string
	apiToken string
}

// NewJiraFromEnv builds a Jira tracker from JIRA_BASE_URL, JIRA_EMAIL and
// JIRA_API_TOKEN.
func NewJiraFromEnv() (*Jira, error) {
	baseURL := os.Getenv("JIRA_BASE_URL")
	email := os.Getenv("JIRA_EMAIL")
	apiToken := os.Getenv("JIRA_API_TOKEN")
	if baseURL == "" || email == "" || apiToken == "" {
		return nil, fmt.Errorf("JIRA_BASE_URL, JIRA_EMAIL and JIRA_API_TOKEN are required for the jira tracker")
	}
	return NewJira(baseURL, email, apiToken), nil
}

// NewJira builds a Jira tracker against an explicit base URL.
func NewJira(baseURL, email, apiToken string) *Jira {
	return &Jira{
		client:   newHTTPClient(),
		baseURL:  strings.TrimRight(baseURL, "/"),
		email:    email,
		apiToken: apiToken,
	}
}

// FetchIssue resolves a Jira key like "PROJ-123".
func (j *Jira) FetchIssue(ctx context.Context, issueID string) (*models.Issue, error) {
	url := fmt.Sprintf("%s/rest/api/2/issue/%s?fields=summary,description,labels", j.baseURL, issueID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(j.email, j.apiToken)
	req.Header.Set("Accept", "application/json")

	resp, err := j.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jira request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrIssueNotFound, issueID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jira returned status %d for %s", resp.StatusCode, issueID)
	}

	var payload struct {
		Fields struct {
			Summary     string   `json:"summary"`
			Description string   `json:"description"`
			Labels      []string `json:"labels"`
		} `json:"fields"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode jira issue: %w", err)
	}

	return &models.Issue{
		ID:     issueID,
		Title:  payload.Fields.Summary,
		Body:   payload.Fields.Description,
		Labels: payload.Fields.Labels,
		URL:    fmt.Sprintf("%s/browse/%s", j.baseURL, issueID),
	}, nil
}
