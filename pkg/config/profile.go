package config

import "fmt"

// AgentConfig configures one agent role within a profile.
type AgentConfig struct {
	Driver  DriverType        `yaml:"driver"`
	Model   string            `yaml:"model,omitempty"`
	Options map[string]string `yaml:"options,omitempty"`
}

// ProfileConfig is a named execution environment: which tracker issues come
// from, where the code lives, and how each agent role is driven. Profiles
// are immutable for the duration of a workflow.
type ProfileConfig struct {
	Tracker       TrackerType `yaml:"tracker"`
	WorkingDir    string      `yaml:"working_dir"`
	PlanOutputDir string      `yaml:"plan_output_dir"`

	// Agents holds per-role overrides keyed by role name. Roles absent
	// here fall back to the profile's Default agent config.
	Agents map[AgentRole]AgentConfig `yaml:"agents,omitempty"`

	// Default is the agent config used for roles without an override.
	Default AgentConfig `yaml:"default,omitempty"`
}

// AgentFor returns the effective agent config for a role, merging the
// role override over the profile default.
func (p *ProfileConfig) AgentFor(role AgentRole) AgentConfig {
	cfg := p.Default
	override, ok := p.Agents[role]
	if !ok {
		return cfg
	}
	if override.Driver != "" {
		cfg.Driver = override.Driver
	}
	if override.Model != "" {
		cfg.Model = override.Model
	}
	if len(override.Options) > 0 {
		merged := make(map[string]string, len(cfg.Options)+len(override.Options))
		for k, v := range cfg.Options {
			merged[k] = v
		}
		for k, v := range override.Options {
			merged[k] = v
		}
		cfg.Options = merged
	}
	return cfg
}

// ProfileRegistry provides lookup of profiles by ID.
type ProfileRegistry struct {
	profiles map[string]*ProfileConfig
}

// NewProfileRegistry creates a registry from parsed profile configurations.
func NewProfileRegistry(profiles map[string]*ProfileConfig) *ProfileRegistry {
	if profiles == nil {
		profiles = make(map[string]*ProfileConfig)
	}
	return &ProfileRegistry{profiles: profiles}
}

// Get returns the profile for the given ID.
func (r *ProfileRegistry) Get(id string) (*ProfileConfig, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}
	return p, nil
}

// GetAll returns all registered profiles keyed by ID.
func (r *ProfileRegistry) GetAll() map[string]*ProfileConfig {
	return r.profiles
}

// IDs returns all registered profile IDs.
func (r *ProfileRegistry) IDs() []string {
	ids := make([]string, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of registered profiles.
func (r *ProfileRegistry) Len() int {
	return len(r.profiles)
}
