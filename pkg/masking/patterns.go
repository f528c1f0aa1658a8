package masking

type builtinPattern struct {
	pattern     string
	replacement string
}

// builtinPatterns covers the credential shapes that show up in coding-agent
// traces: provider API keys, tokens in tool output, key material read from
// files, and cloud credentials in environment dumps.
func builtinPatterns() map[string]builtinPattern {
	return map[string]builtinPattern{
		"api_key": {
			pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`,
			replacement: `"api_key": "__MASKED_API_KEY__"`,
		},
		"anthropic_key": {
			pattern:     `sk-ant-[A-Za-z0-9_\-]{20,}`,
			replacement: `__MASKED_ANTHROPIC_KEY__`,
		},
		"password": {
			pattern:     `(?i)(?:password|pwd|passwd)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
			replacement: `"password": "__MASKED_PASSWORD__"`,
		},
		"token": {
			pattern:     `(?i)(?:token|bearer|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			replacement: `"token": "__MASKED_TOKEN__"`,
		},
		"private_key": {
			pattern:     `(?s)-----BEGIN [A-Z ]+PRIVATE KEY-----.*?-----END [A-Z ]+PRIVATE KEY-----`,
			replacement: `__MASKED_PRIVATE_KEY__`,
		},
		"secret_key": {
			pattern:     `(?i)(?:secret[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			replacement: `"secret_key": "__MASKED_SECRET_KEY__"`,
		},
		"ssh_key": {
			pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
			replacement: `__MASKED_SSH_KEY__`,
		},
		"aws_access_key": {
			pattern:     `AKIA[A-Z0-9]{16}`,
			replacement: `__MASKED_AWS_KEY__`,
		},
		"aws_secret_key": {
			pattern:     `(?i)(?:aws[_-]?secret[_-]?access[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`,
			replacement: `"aws_secret_access_key": "__MASKED_AWS_SECRET__"`,
		},
		"github_token": {
			pattern:     `gh[pousr]_[A-Za-z0-9_]{36,255}`,
			replacement: `__MASKED_GITHUB_TOKEN__`,
		},
		"slack_token": {
			pattern:     `xox[baprs]-[A-Za-z0-9-]{10,72}`,
			replacement: `__MASKED_SLACK_TOKEN__`,
		},
	}
}

// patternGroups names predefined sets of patterns for the masking config.
func patternGroups() map[string][]string {
	return map[string][]string{
		"basic":   {"api_key", "password"},
		"secrets": {"api_key", "password", "token", "private_key", "secret_key"},
		"security": {
			"api_key", "anthropic_key", "password", "token", "private_key",
			"secret_key", "ssh_key", "github_token", "slack_token",
		},
		"all": {
			"api_key", "anthropic_key", "password", "token", "private_key",
			"secret_key", "ssh_key", "aws_access_key", "aws_secret_key",
			"github_token", "slack_token",
		},
	}
}
