package config

import "fmt"

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateProfiles(); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}

	if err := v.validateOrchestrator(); err != nil {
		return fmt.Errorf("orchestrator validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateProfiles() error {
	if v.cfg.Profiles.Len() == 0 {
		return NewValidationError("profiles", "", "", fmt.Errorf("at least one profile required"))
	}

	for id, profile := range v.cfg.Profiles.GetAll() {
		if !profile.Tracker.Valid() {
			return NewValidationError("profile", id, "tracker", fmt.Errorf("unknown tracker: %s", profile.Tracker))
		}

		if profile.WorkingDir == "" {
			return NewValidationError("profile", id, "working_dir", ErrMissingRequiredField)
		}

		if profile.PlanOutputDir == "" {
			return NewValidationError("profile", id, "plan_output_dir", ErrMissingRequiredField)
		}

		// Every role must resolve to a known driver, either via an
		// override or the profile default.
		for _, role := range AgentRoles {
			agent := profile.AgentFor(role)
			if agent.Driver == "" {
				return NewValidationError("profile", id, string(role), fmt.Errorf("no driver configured"))
			}
			if !agent.Driver.Valid() {
				return NewValidationError("profile", id, string(role), fmt.Errorf("unknown driver: %s", agent.Driver))
			}
		}

		for role := range profile.Agents {
			switch role {
			case RoleArchitect, RoleDeveloper, RoleReviewer:
			default:
				return NewValidationError("profile", id, "agents", fmt.Errorf("unknown agent role: %s", role))
			}
		}
	}

	if v.cfg.DefaultProfile != "" {
		if _, err := v.cfg.Profiles.Get(v.cfg.DefaultProfile); err != nil {
			return NewValidationError("defaults", "profile", "", err)
		}
	}

	return nil
}

func (v *ConfigValidator) validateOrchestrator() error {
	o := v.cfg.Orchestrator

	if o.MaxConcurrent < 1 {
		return NewValidationError("orchestrator", "max_concurrent", "", fmt.Errorf("must be at least 1"))
	}

	if o.ReviewLimit < 1 {
		return NewValidationError("orchestrator", "review_limit", "", fmt.Errorf("must be at least 1"))
	}

	if o.StartTimeout <= 0 {
		return NewValidationError("orchestrator", "start_timeout", "", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention

	if r.LogRetentionDays < 1 {
		return NewValidationError("retention", "log_retention_days", "", fmt.Errorf("must be at least 1"))
	}

	if r.LogRetentionMaxEvents < 1 {
		return NewValidationError("retention", "log_retention_max_events", "", fmt.Errorf("must be at least 1"))
	}

	if r.TraceRetentionDays < 0 {
		return NewValidationError("retention", "trace_retention_days", "", fmt.Errorf("must not be negative"))
	}

	if r.SweepInterval <= 0 {
		return NewValidationError("retention", "sweep_interval", "", fmt.Errorf("must be positive"))
	}

	return nil
}
