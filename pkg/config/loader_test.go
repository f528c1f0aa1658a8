package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "amelia.yaml"), []byte(yaml), 0o644))
	return dir
}

const minimalYAML = `
profiles:
  local:
    tracker: noop
    working_dir: /repos/project
    plan_output_dir: /repos/project/.amelia/plans
    default:
      driver: claude-cli
`

func TestInitialize_MinimalConfig(t *testing.T) {
	dir := writeConfig(t, minimalYAML)

	cfg, err := Initialize(t.Context(), dir)
	require.NoError(t, err)

	// Built-in defaults fill everything the YAML leaves out.
	assert.Equal(t, 5, cfg.Orchestrator.MaxConcurrent)
	assert.Equal(t, 3, cfg.Orchestrator.ReviewLimit)
	assert.Equal(t, 30, cfg.Retention.LogRetentionDays)
	assert.Equal(t, 7, cfg.Retention.TraceRetentionDays)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Slack.Enabled)
	assert.True(t, cfg.Masking.Enabled)

	// A single profile becomes the default automatically.
	assert.Equal(t, "local", cfg.DefaultProfile)
	assert.Equal(t, dir, cfg.ConfigDir())
	assert.Equal(t, 1, cfg.Stats().Profiles)
}

func TestInitialize_OverridesMergeOverDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 9090
  allowed_ws_origins: ["https://dashboard.example"]
orchestrator:
  max_concurrent: 2
  review_limit: 5
retention:
  log_retention_days: 14
  trace_retention_days: 0
profiles:
  local:
    tracker: noop
    working_dir: /repos/project
    plan_output_dir: /repos/project/.amelia/plans
    default:
      driver: claude-cli
`)

	cfg, err := Initialize(t.Context(), dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://dashboard.example"}, cfg.Server.AllowedWSOrigins)
	assert.Equal(t, 2, cfg.Orchestrator.MaxConcurrent)
	assert.Equal(t, 5, cfg.Orchestrator.ReviewLimit)
	// Unset orchestrator fields keep their defaults through the merge.
	assert.Equal(t, 60*time.Second, cfg.Orchestrator.StartTimeout)

	assert.Equal(t, 14, cfg.Retention.LogRetentionDays)
	// Explicit 0 disables trace persistence despite the merge.
	assert.Equal(t, 0, cfg.Retention.TraceRetentionDays)
	assert.False(t, cfg.Retention.TracePersistenceEnabled())
}

func TestInitialize_NormalizesTrackerAlias(t *testing.T) {
	dir := writeConfig(t, `
profiles:
  legacy:
    tracker: none
    working_dir: /repos/legacy
    plan_output_dir: /repos/legacy/plans
    default:
      driver: claude-cli
`)

	cfg, err := Initialize(t.Context(), dir)
	require.NoError(t, err)

	p, err := cfg.Profiles.Get("legacy")
	require.NoError(t, err)
	assert.Equal(t, TrackerNoop, p.Tracker)
}

func TestInitialize_ExpandsEnvTemplates(t *testing.T) {
	t.Setenv("TEST_PLAN_DIR", "/mnt/plans")
	dir := writeConfig(t, `
profiles:
  local:
    tracker: noop
    working_dir: /repos/project
    plan_output_dir: "{{.TEST_PLAN_DIR}}"
    default:
      driver: claude-cli
`)

	cfg, err := Initialize(t.Context(), dir)
	require.NoError(t, err)

	p, err := cfg.Profiles.Get("local")
	require.NoError(t, err)
	assert.Equal(t, "/mnt/plans", p.PlanOutputDir)
}

func TestInitialize_MissingConfigFile(t *testing.T) {
	_, err := Initialize(t.Context(), t.TempDir())
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "no profiles",
			yaml: `profiles: {}`,
		},
		{
			name: "unknown tracker",
			yaml: `
profiles:
  local:
    tracker: bugzilla
    working_dir: /repos/p
    plan_output_dir: /repos/p/plans
    default:
      driver: claude-cli
`,
		},
		{
			name: "missing working_dir",
			yaml: `
profiles:
  local:
    tracker: noop
    plan_output_dir: /repos/p/plans
    default:
      driver: claude-cli
`,
		},
		{
			name: "unknown driver",
			yaml: `
profiles:
  local:
    tracker: noop
    working_dir: /repos/p
    plan_output_dir: /repos/p/plans
    default:
      driver: gpt-cli
`,
		},
		{
			name: "unknown agent role",
			yaml: `
profiles:
  local:
    tracker: noop
    working_dir: /repos/p
    plan_output_dir: /repos/p/plans
    default:
      driver: claude-cli
    agents:
      tester:
        driver: claude-cli
`,
		},
		{
			name: "unknown default profile",
			yaml: minimalYAML + `
defaults:
  profile: missing
`,
		},
		{
			name: "zero max_concurrent",
			yaml: minimalYAML + `
orchestrator:
  max_concurrent: -1
`,
		},
		{
			name: "negative trace retention",
			yaml: minimalYAML + `
retention:
  trace_retention_days: -1
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.yaml)
			_, err := Initialize(t.Context(), dir)
			assert.Error(t, err)
		})
	}
}

func TestAgentFor_MergesRoleOverride(t *testing.T) {
	p := &ProfileConfig{
		Default: AgentConfig{
			Driver:  DriverClaudeCLI,
			Model:   "base-model",
			Options: map[string]string{"permission_mode": "plan", "verbose": "true"},
		},
		Agents: map[AgentRole]AgentConfig{
			RoleReviewer: {
				Driver:  DriverAnthropicAPI,
				Options: map[string]string{"permission_mode": "read-only"},
			},
		},
	}

	dev := p.AgentFor(RoleDeveloper)
	assert.Equal(t, DriverClaudeCLI, dev.Driver)
	assert.Equal(t, "base-model", dev.Model)

	rev := p.AgentFor(RoleReviewer)
	assert.Equal(t, DriverAnthropicAPI, rev.Driver)
	assert.Equal(t, "base-model", rev.Model)
	assert.Equal(t, "read-only", rev.Options["permission_mode"])
	assert.Equal(t, "true", rev.Options["verbose"])
}
