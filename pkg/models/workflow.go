package models

import (
	"time"

	"github.com/existential-birds/amelia-sub003/ent"
)

// CreateWorkflowRequest contains fields for creating a new workflow
type CreateWorkflowRequest struct {
	WorkflowID   string `json:"workflow_id,omitempty"`
	IssueID      string `json:"issue_id"`
	WorktreePath string `json:"worktree_path"`
	WorktreeName string `json:"worktree_name,omitempty"`
	ProfileID    string `json:"profile_id,omitempty"`
	WorkflowType string `json:"workflow_type,omitempty"`

	// Driver overrides the profile's driver for every agent of this
	// workflow when set.
	Driver string `json:"driver,omitempty"`

	// TaskTitle and TaskDescription build the issue directly when the
	// profile uses the noop tracker instead of fetching it.
	TaskTitle       string `json:"task_title,omitempty"`
	TaskDescription string `json:"task_description,omitempty"`
}

// WorkflowFilters contains filtering options for listing workflows
type WorkflowFilters struct {
	Status        string     `json:"status,omitempty"`
	ProfileID     string     `json:"profile_id,omitempty"`
	WorktreePath  string     `json:"worktree_path,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// WorkflowListResponse contains a paginated workflow list
type WorkflowListResponse struct {
	Workflows  []*ent.Workflow `json:"workflows"`
	TotalCount int             `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

// PlanArtifact is the stored snapshot of the architect's plan. The markdown
// itself is opaque to the orchestrator.
type PlanArtifact struct {
	Path     string `json:"path"`
	Goal     string `json:"goal,omitempty"`
	Markdown string `json:"markdown"`
}

// ToMap converts the artifact to the JSON shape stored in plan_cache.
func (p *PlanArtifact) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"path":     p.Path,
		"goal":     p.Goal,
		"markdown": p.Markdown,
	}
}

// PlanArtifactFromMap reconstructs an artifact from a plan_cache value.
// Returns nil for a nil or empty map.
func PlanArtifactFromMap(m map[string]interface{}) *PlanArtifact {
	if len(m) == 0 {
		return nil
	}
	p := &PlanArtifact{}
	if v, ok := m["path"].(string); ok {
		p.Path = v
	}
	if v, ok := m["goal"].(string); ok {
		p.Goal = v
	}
	if v, ok := m["markdown"].(string); ok {
		p.Markdown = v
	}
	return p
}

// Issue is a snapshot of a tracker issue taken at workflow creation.
type Issue struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Body   string   `json:"body,omitempty"`
	Labels []string `json:"labels,omitempty"`
	URL    string   `json:"url,omitempty"`
}

// ToMap converts the issue to the JSON shape stored in issue_cache.
func (i *Issue) ToMap() map[string]interface{} {
	labels := make([]interface{}, len(i.Labels))
	for n, l := range i.Labels {
		labels[n] = l
	}
	return map[string]interface{}{
		"id":     i.ID,
		"title":  i.Title,
		"body":   i.Body,
		"labels": labels,
		"url":    i.URL,
	}
}

// IssueFromMap reconstructs an issue from an issue_cache value.
// Returns nil for a nil or empty map.
func IssueFromMap(m map[string]interface{}) *Issue {
	if len(m) == 0 {
		return nil
	}
	i := &Issue{}
	if v, ok := m["id"].(string); ok {
		i.ID = v
	}
	if v, ok := m["title"].(string); ok {
		i.Title = v
	}
	if v, ok := m["body"].(string); ok {
		i.Body = v
	}
	if v, ok := m["url"].(string); ok {
		i.URL = v
	}
	if labels, ok := m["labels"].([]interface{}); ok {
		for _, l := range labels {
			if s, ok := l.(string); ok {
				i.Labels = append(i.Labels, s)
			}
		}
	}
	return i
}
