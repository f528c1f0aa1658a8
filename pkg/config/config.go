package config

// Config is the fully resolved, validated runtime configuration.
type Config struct {
	configDir string

	Server       *ServerConfig
	Orchestrator *OrchestratorConfig
	Retention    *RetentionConfig
	Slack        *SlackConfig
	Masking      *MaskingConfig
	DashboardURL string

	// DefaultProfile is the profile used when a create request does not
	// name one.
	DefaultProfile string

	Profiles *ProfileRegistry
}

// ConfigDir returns the directory configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Stats summarizes loaded configuration for startup logging.
type Stats struct {
	Profiles int
}

// Stats returns counts of loaded configuration components.
func (c *Config) Stats() Stats {
	return Stats{
		Profiles: c.Profiles.Len(),
	}
}
