package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// AmeliaYAMLConfig represents the complete amelia.yaml file structure
type AmeliaYAMLConfig struct {
	Server       *ServerYAMLConfig         `yaml:"server"`
	Orchestrator *OrchestratorConfig       `yaml:"orchestrator"`
	Retention    *RetentionConfig          `yaml:"retention"`
	Slack        *SlackYAMLConfig          `yaml:"slack"`
	Masking      *MaskingYAMLConfig        `yaml:"masking"`
	Profiles     map[string]*ProfileConfig `yaml:"profiles"`
	Defaults     *Defaults                 `yaml:"defaults"`
}

// ServerYAMLConfig groups server settings from YAML.
type ServerYAMLConfig struct {
	Host                 string   `yaml:"host,omitempty"`
	Port                 int      `yaml:"port,omitempty"`
	DashboardURL         string   `yaml:"dashboard_url,omitempty"`
	AllowedWSOrigins     []string `yaml:"allowed_ws_origins,omitempty"`
	WSIdleTimeoutSeconds float64  `yaml:"websocket_idle_timeout_seconds,omitempty"`
}

// SlackYAMLConfig holds Slack notification settings from YAML.
type SlackYAMLConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	TokenEnv string `yaml:"token_env,omitempty"`
	Channel  string `yaml:"channel,omitempty"`
}

// MaskingYAMLConfig holds secret-masking settings from YAML.
type MaskingYAMLConfig struct {
	Enabled      *bool    `yaml:"enabled,omitempty"`
	PatternGroup string   `yaml:"pattern_group,omitempty"`
	Patterns     []string `yaml:"patterns,omitempty"`
}

// Defaults holds fallbacks applied when a request omits a value.
type Defaults struct {
	Profile string `yaml:"profile,omitempty"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load amelia.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Normalize tracker aliases and apply defaults
//  5. Build the profile registry
//  6. Validate all configuration
//  7. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"profiles", stats.Profiles,
		"default_profile", cfg.DefaultProfile,
		"max_concurrent", cfg.Orchestrator.MaxConcurrent)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	ameliaConfig, err := loader.loadAmeliaYAML()
	if err != nil {
		return nil, NewLoadError("amelia.yaml", err)
	}

	// Normalize tracker aliases and initialize profile maps before any
	// lookups happen.
	for _, p := range ameliaConfig.Profiles {
		p.Tracker = NormalizeTracker(string(p.Tracker))
		if p.Agents == nil {
			p.Agents = make(map[AgentRole]AgentConfig)
		}
	}

	profileRegistry := NewProfileRegistry(ameliaConfig.Profiles)

	// Resolve orchestrator config (merge user YAML with built-in defaults).
	// Start with defaults, then merge user config on top to preserve
	// unset defaults.
	orchestratorConfig := DefaultOrchestratorConfig()
	if ameliaConfig.Orchestrator != nil {
		if err := mergo.Merge(orchestratorConfig, ameliaConfig.Orchestrator, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge orchestrator config: %w", err)
		}
	}

	retentionConfig := DefaultRetentionConfig()
	if ameliaConfig.Retention != nil {
		if err := mergo.Merge(retentionConfig, ameliaConfig.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
		// mergo treats 0 as unset; an explicit 0 here means "disable
		// trace persistence" and must survive the merge.
		if ameliaConfig.Retention.TraceRetentionDays == 0 {
			retentionConfig.TraceRetentionDays = 0
		}
	}

	serverConfig := resolveServerConfig(ameliaConfig.Server)
	slackConfig := resolveSlackConfig(ameliaConfig.Slack)
	maskingConfig := resolveMaskingConfig(ameliaConfig.Masking)
	dashboardURL := resolveDashboardURL(ameliaConfig.Server)

	defaultProfile := ""
	if ameliaConfig.Defaults != nil {
		defaultProfile = ameliaConfig.Defaults.Profile
	}
	if defaultProfile == "" && len(ameliaConfig.Profiles) == 1 {
		for id := range ameliaConfig.Profiles {
			defaultProfile = id
		}
	}

	return &Config{
		configDir:      configDir,
		Server:         serverConfig,
		Orchestrator:   orchestratorConfig,
		Retention:      retentionConfig,
		Slack:          slackConfig,
		Masking:        maskingConfig,
		DashboardURL:   dashboardURL,
		DefaultProfile: defaultProfile,
		Profiles:       profileRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadAmeliaYAML() (*AmeliaYAMLConfig, error) {
	var config AmeliaYAMLConfig

	// Initialize maps to avoid nil maps
	config.Profiles = make(map[string]*ProfileConfig)

	if err := l.loadYAML("amelia.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// resolveServerConfig resolves server configuration from YAML, applying defaults.
func resolveServerConfig(srv *ServerYAMLConfig) *ServerConfig {
	cfg := &ServerConfig{
		Host:          "0.0.0.0",
		Port:          8080,
		WSIdleTimeout: 5 * time.Minute,
	}

	if srv == nil {
		return cfg
	}

	if srv.Host != "" {
		cfg.Host = srv.Host
	}
	if srv.Port != 0 {
		cfg.Port = srv.Port
	}
	if len(srv.AllowedWSOrigins) > 0 {
		cfg.AllowedWSOrigins = srv.AllowedWSOrigins
	}
	if srv.WSIdleTimeoutSeconds > 0 {
		cfg.WSIdleTimeout = time.Duration(srv.WSIdleTimeoutSeconds * float64(time.Second))
	}

	return cfg
}

// resolveSlackConfig resolves Slack configuration from YAML, applying defaults.
func resolveSlackConfig(s *SlackYAMLConfig) *SlackConfig {
	cfg := &SlackConfig{
		Enabled:  false,
		TokenEnv: "SLACK_BOT_TOKEN",
	}

	if s == nil {
		return cfg
	}

	if s.Enabled != nil {
		cfg.Enabled = *s.Enabled
	}
	if s.TokenEnv != "" {
		cfg.TokenEnv = s.TokenEnv
	}
	if s.Channel != "" {
		cfg.Channel = s.Channel
	}

	return cfg
}

// resolveMaskingConfig resolves masking configuration from YAML, applying defaults.
func resolveMaskingConfig(m *MaskingYAMLConfig) *MaskingConfig {
	cfg := &MaskingConfig{
		Enabled:      true,
		PatternGroup: "security",
	}

	if m == nil {
		return cfg
	}

	if m.Enabled != nil {
		cfg.Enabled = *m.Enabled
	}
	if m.PatternGroup != "" {
		cfg.PatternGroup = m.PatternGroup
	}
	if len(m.Patterns) > 0 {
		cfg.Patterns = m.Patterns
	}

	return cfg
}

// resolveDashboardURL resolves the dashboard base URL from YAML, applying defaults.
func resolveDashboardURL(srv *ServerYAMLConfig) string {
	if srv != nil && srv.DashboardURL != "" {
		return srv.DashboardURL
	}
	return "http://localhost:5173"
}
