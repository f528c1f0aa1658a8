package tracker

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existential-birds/amelia-sub003/pkg/config"
)

func TestNew_Noop(t *testing.T) {
	tr, err := New(config.TrackerNoop)
	require.NoError(t, err)
	assert.IsType(t, &Noop{}, tr)
}

func TestNew_UnknownType(t *testing.T) {
	_, err := New(config.TrackerType("bitbucket"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tracker type")
}

func TestNoop_FetchIssue(t *testing.T) {
	issue, err := (&Noop{}).FetchIssue(t.Context(), "TASK-1")
	require.NoError(t, err)
	assert.Equal(t, "TASK-1", issue.ID)
	assert.Equal(t, "TASK-1", issue.Title)
}

func TestBuildAdHocIssue(t *testing.T) {
	issue := BuildAdHocIssue("TASK-1", "Add button", "A blue one")
	assert.Equal(t, "TASK-1", issue.ID)
	assert.Equal(t, "Add button", issue.Title)
	assert.Equal(t, "A blue one", issue.Body)
}

func TestGitHub_FetchIssue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/widgets/issues/42", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"title":    "Button missing",
			"body":     "The button is gone.",
			"html_url": "https://github.com/acme/widgets/issues/42",
			"labels":   []map[string]string{{"name": "bug"}},
		})
	}))
	defer srv.Close()

	g := NewGitHub(srv.URL, "test-token", "acme/widgets")
	issue, err := g.FetchIssue(t.Context(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", issue.ID)
	assert.Equal(t, "Button missing", issue.Title)
	assert.Equal(t, "The button is gone.", issue.Body)
	assert.Equal(t, []string{"bug"}, issue.Labels)
}

func TestGitHub_FetchIssue_ExplicitRepoReference(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/other/repo/issues/7", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"title": "x"})
	}))
	defer srv.Close()

	g := NewGitHub(srv.URL, "tok", "acme/widgets")
	_, err := g.FetchIssue(t.Context(), "other/repo#7")
	require.NoError(t, err)
}

func TestGitHub_FetchIssue_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	g := NewGitHub(srv.URL, "tok", "acme/widgets")
	_, err := g.FetchIssue(t.Context(), "999")
	require.ErrorIs(t, err, ErrIssueNotFound)
}

func TestGitHub_FetchIssue_NoDefaultRepo(t *testing.T) {
	g := NewGitHub("http://unused", "tok", "")
	_, err := g.FetchIssue(t.Context(), "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_REPOSITORY")
}

func TestJira_FetchIssue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/2/issue/PROJ-123", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "dev@example.com", user)
		assert.Equal(t, "secret", pass)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"fields": map[string]any{
				"summary":     "Fix login",
				"description": "Login fails on Safari.",
				"labels":      []string{"auth"},
			},
		})
	}))
	defer srv.Close()

	j := NewJira(srv.URL, "dev@example.com", "secret")
	issue, err := j.FetchIssue(t.Context(), "PROJ-123")
	require.NoError(t, err)
	assert.Equal(t, "Fix login", issue.Title)
	assert.Equal(t, "Login fails on Safari.", issue.Body)
	assert.Equal(t, srv.URL+"/browse/PROJ-123", issue.URL)
}

func TestJira_FetchIssue_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	j := NewJira(srv.URL, "dev@example.com", "secret")
	_, err := j.FetchIssue(t.Context(), "PROJ-404")
	require.ErrorIs(t, err, ErrIssueNotFound)
}
