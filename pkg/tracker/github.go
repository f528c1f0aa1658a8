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

const githubAPIBase = "https://api.github.com"

// GitHub fetches issues from the GitHub REST API.
type GitHub struct {
	client *http.Client
	base   string
	token  string
	repo   string // owner/name default when the reference carries none
}

// NewGitHubFromEnv builds a GitHub tracker from GITHUB_TOKEN and
// GITHUB_REPOSITORY ("owner/name").
func NewGitHubFromEnv() (*GitHub, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN is required for the github tracker")
	}
	return &GitHub{
		client: newHTTPClient(),
		base:   githubAPIBase,
		token:  token,
		repo:   os.Getenv("GITHUB_REPOSITORY"),
	}, nil
}

// NewGitHub builds a GitHub tracker against a custom API base URL.
// Useful for testing with a mock server.
func NewGitHub(base, token, repo string) *GitHub {
	return &GitHub{client: newHTTPClient(), base: base, token: token, repo: repo}
}

// FetchIssue resolves "owner/name#123" or a bare number against the default
// repository.
func (g *GitHub) FetchIssue(ctx context.Context, issueID string) (*models.Issue, error) {
	repo, number, err := g.splitReference(issueID)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/repos/%s/issues/%s", g.base, repo, number)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrIssueNotFound, issueID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github returned status %d for %s", resp.StatusCode, issueID)
	}

	var payload struct {
		Title   string `json:"title"`
		Body    string `json:"body"`
		HTMLURL string `json:"html_url"`
		Labels  []struct {
			Name string `json:"name"`
		} `json:"labels"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode github issue: %w", err)
	}

	issue := &models.Issue{
		ID:    issueID,
		Title: payload.Title,
		Body:  payload.Body,
		URL:   payload.HTMLURL,
	}
	for _, l := range payload.Labels {
		issue.Labels = append(issue.Labels, l.Name)
	}
	return issue, nil
}

func (g *GitHub) splitReference(issueID string) (repo, number string, err error) {
	if owner, rest, ok := strings.Cut(issueID, "#"); ok {
		if owner == "" || rest == "" {
			return "", "", fmt.Errorf("malformed github issue reference: %q", issueID)
		}
		return owner, rest, nil
	}
	if g.repo == "" {
		return "", "", fmt.Errorf("github issue reference %q has no repo and GITHUB_REPOSITORY is unset", issueID)
	}
	return g.repo, issueID, nil
}
