package config

import "time"

// RetentionConfig controls data retention and sweep behavior.
type RetentionConfig struct {
	// LogRetentionDays is how many days to keep info/debug events.
	LogRetentionDays int `yaml:"log_retention_days"`

	// LogRetentionMaxEvents caps total persisted non-trace events; the
	// oldest rows beyond the cap are trimmed each sweep.
	LogRetentionMaxEvents int `yaml:"log_retention_max_events"`

	// TraceRetentionDays is how many days to keep trace events.
	// 0 disables trace persistence entirely (live streaming only).
	TraceRetentionDays int `yaml:"trace_retention_days"`

	// CheckpointRetentionDays is how many days to keep checkpoints of
	// terminal workflows.
	CheckpointRetentionDays int `yaml:"checkpoint_retention_days"`

	// SweepInterval is how often the retention loop runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		LogRetentionDays:        30,
		LogRetentionMaxEvents:   100000,
		TraceRetentionDays:      7,
		CheckpointRetentionDays: 30,
		SweepInterval:           12 * time.Hour,
	}
}

// TracePersistenceEnabled reports whether trace events are written to the
// store at all.
func (c *RetentionConfig) TracePersistenceEnabled() bool {
	return c.TraceRetentionDays > 0
}
