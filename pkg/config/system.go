package config

import "time"

// ServerConfig holds resolved HTTP/WebSocket server configuration.
type ServerConfig struct {
	Host string
	Port int

	// AllowedWSOrigins are additional origin patterns accepted on
	// WebSocket upgrade, beyond same-host and the dashboard URL.
	AllowedWSOrigins []string

	// WSIdleTimeout closes a WebSocket connection that has not answered
	// a ping within this window.
	WSIdleTimeout time.Duration
}

// SlackConfig holds resolved Slack notification configuration.
type SlackConfig struct {
	Enabled  bool
	TokenEnv string // Env var name for Slack bot token (default: "SLACK_BOT_TOKEN")
	Channel  string // Slack channel ID (e.g., "C12345678")
}

// MaskingConfig holds resolved secret-masking configuration for event
// payloads and driver output.
type MaskingConfig struct {
	Enabled      bool
	PatternGroup string   // Built-in pattern group name (default: "security")
	Patterns     []string // Additional custom regex patterns
}
