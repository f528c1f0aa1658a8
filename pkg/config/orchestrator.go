package config

import "time"

// OrchestratorConfig contains workflow execution configuration.
// These values control how workflows are admitted, driven, and reaped.
type OrchestratorConfig struct {
	// MaxConcurrent is the global limit of active workflows (planning,
	// in_progress or blocked) across the whole process. Beyond the cap,
	// creation fails with a rate limit error.
	MaxConcurrent int `yaml:"max_concurrent"`

	// ReviewLimit is how many times the reviewer may send the plan back
	// to the developer before the workflow fails with
	// "review_limit_exceeded".
	ReviewLimit int `yaml:"review_limit"`

	// StartTimeout is the maximum time a workflow may sit in pending
	// before it fails with "start_timeout".
	StartTimeout time.Duration `yaml:"start_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active
	// workflows to checkpoint during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is how often running workflows refresh
	// last_heartbeat_at.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanThreshold is how long a workflow can go without a heartbeat
	// before startup recovery considers it abandoned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// StreamToolResults controls whether full tool results are included
	// in trace events or elided to summaries.
	StreamToolResults bool `yaml:"stream_tool_results"`
}

// DefaultOrchestratorConfig returns the built-in orchestrator defaults.
func DefaultOrchestratorConfig() *OrchestratorConfig {
	return &OrchestratorConfig{
		MaxConcurrent:           5,
		ReviewLimit:             3,
		StartTimeout:            60 * time.Second,
		GracefulShutdownTimeout: 30 * time.Second,
		HeartbeatInterval:       30 * time.Second,
		OrphanThreshold:         5 * time.Minute,
		StreamToolResults:       true,
	}
}
