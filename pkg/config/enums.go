package config

// DriverType identifies the LLM backend an agent runs against.
type DriverType string

const (
	// DriverClaudeCLI drives an external claude CLI subprocess streaming
	// JSONL on stdout.
	DriverClaudeCLI DriverType = "claude-cli"

	// DriverAnthropicAPI drives the hosted Anthropic Messages API directly.
	DriverAnthropicAPI DriverType = "anthropic-api"
)

// Valid reports whether the driver type is a known backend.
func (d DriverType) Valid() bool {
	switch d {
	case DriverClaudeCLI, DriverAnthropicAPI:
		return true
	}
	return false
}

// TrackerType identifies the issue tracker a profile reads issues from.
type TrackerType string

const (
	TrackerNoop   TrackerType = "noop"
	TrackerGitHub TrackerType = "github"
	TrackerJira   TrackerType = "jira"
)

// NormalizeTracker maps deprecated aliases onto canonical tracker names.
// "none" is an older spelling of "noop" still found in existing configs.
func NormalizeTracker(t string) TrackerType {
	if t == "none" || t == "" {
		return TrackerNoop
	}
	return TrackerType(t)
}

// Valid reports whether the tracker type is a known tracker.
func (t TrackerType) Valid() bool {
	switch t {
	case TrackerNoop, TrackerGitHub, TrackerJira:
		return true
	}
	return false
}

// AgentRole identifies one of the three pipeline agents.
type AgentRole string

const (
	RoleArchitect AgentRole = "architect"
	RoleDeveloper AgentRole = "developer"
	RoleReviewer  AgentRole = "reviewer"
)

// AgentRoles lists the pipeline roles in execution order.
var AgentRoles = []AgentRole{RoleArchitect, RoleDeveloper, RoleReviewer}
