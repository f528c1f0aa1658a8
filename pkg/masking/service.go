// Package masking redacts secrets from event payloads before they are
// persisted or broadcast. Patterns are compiled once at startup; the
// service is stateless afterwards and safe for concurrent use.
package masking

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/existential-birds/amelia-sub003/pkg/config"
)

// CompiledPattern holds a pre-compiled regex with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// Service applies secret masking to trace content and tool payloads.
type Service struct {
	enabled  bool
	patterns []*CompiledPattern
}

// NewService compiles the configured pattern group plus any custom patterns.
// Invalid custom patterns are logged and skipped.
func NewService(cfg config.MaskingConfig) *Service {
	s := &Service{enabled: cfg.Enabled}
	if !cfg.Enabled {
		return s
	}

	group := cfg.PatternGroup
	if group == "" {
		group = "security"
	}
	builtin := builtinPatterns()
	names, ok := patternGroups()[group]
	if !ok {
		slog.Warn("Unknown masking pattern group, falling back to security", "group", group)
		names = patternGroups()["security"]
	}
	for _, name := range names {
		p, ok := builtin[name]
		if !ok {
			continue
		}
		compiled, err := regexp.Compile(p.pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: p.replacement,
		})
	}

	for i, raw := range cfg.Patterns {
		name := fmt.Sprintf("custom:%d", i)
		compiled, err := regexp.Compile(raw)
		if err != nil {
			slog.Error("Failed to compile custom masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: "__MASKED__",
		})
	}

	slog.Info("Masking service initialized",
		"group", group, "compiled_patterns", len(s.patterns))
	return s
}

// Enabled reports whether any masking is active.
func (s *Service) Enabled() bool {
	return s != nil && s.enabled && len(s.patterns) > 0
}

// Mask applies all compiled patterns to the content.
func (s *Service) Mask(content string) string {
	if !s.Enabled() || content == "" {
		return content
	}
	masked := content
	for _, p := range s.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}

// MaskMap masks every string value in a payload map, recursing into nested
// maps. Non-string values pass through unchanged.
func (s *Service) MaskMap(payload map[string]interface{}) map[string]interface{} {
	if !s.Enabled() || len(payload) == 0 {
		return payload
	}
	out := make(map[string]interface{}, len(payload))
	for k, v := range payload {
		switch val := v.(type) {
		case string:
			out[k] = s.Mask(val)
		case map[string]interface{}:
			out[k] = s.MaskMap(val)
		default:
			out[k] = v
		}
	}
	return out
}
