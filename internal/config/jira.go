package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// JiraConfig is the issue tracker configuration read from the environment
type JiraConfig struct {
	Insecure bool          `env:"CHRONOPICK_JIRA_INSECURE"`
	Project  string        `env:"CHRONOPICK_JIRA_PROJECT"`
	Server   string        `env:"CHRONOPICK_JIRA_SERVER"`
	Timeout  time.Duration `env:"CHRONOPICK_JIRA_TIMEOUT" envDefault:"30s"`
	Token    string        `env:"CHRONOPICK_JIRA_TOKEN"`
}

// Configured reports whether enough is known to reach the tracker
func (c JiraConfig) Configured() bool {
	return c.Server != "" && c.Project != ""
}

// LoadJiraConfig reads the tracker configuration from the environment and
// fills unset values from settings
func LoadJiraConfig(settings *Settings) (JiraConfig, error) {
	var cfg JiraConfig
	if err := env.Parse(&cfg); err != nil {
		return JiraConfig{}, fmt.Errorf("parse env: %w", err)
	}

	if settings == nil || settings.Jira == nil {
		return cfg, nil
	}
	if cfg.Server == "" {
		cfg.Server = settings.Jira.Server
	}
	if cfg.Project == "" {
		cfg.Project = settings.Jira.Project
	}
	if !cfg.Insecure && settings.Jira.Insecure != nil {
		cfg.Insecure = *settings.Jira.Insecure
	}
	return cfg, nil
}
