package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings represents the structure of $CHRONOPICK_HOME/settings.yaml.
// Pointer fields distinguish "not set" from the zero value.
type Settings struct {
	Debug       *bool         `yaml:"debug,omitempty"`
	Editor      string        `yaml:"editor,omitempty"`
	Jira        *JiraSettings `yaml:"jira,omitempty"`
	Journal     *bool         `yaml:"journal,omitempty"`
	MaxLogFiles *int          `yaml:"max_log_files,omitempty"`
	Notify      *bool         `yaml:"notify,omitempty"`
	Plain       *bool         `yaml:"plain,omitempty"`
}

// JiraSettings holds the non-secret tracker settings. The token is only
// ever read from the environment.
type JiraSettings struct {
	Insecure *bool  `yaml:"insecure,omitempty"`
	Project  string `yaml:"project,omitempty"`
	Server   string `yaml:"server,omitempty"`
}

// JournalEnabled reports whether replay runs should be recorded (default true)
func (s *Settings) JournalEnabled() bool {
	return s == nil || s.Journal == nil || *s.Journal
}

// LoadSettings loads settings from $CHRONOPICK_HOME/settings.yaml.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from path. Unknown keys are rejected so
// typos surface instead of being ignored.
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid settings.yaml: %w", err)
	}

	if settings.Editor != "" {
		settings.Editor = ExpandPath(settings.Editor)
	}

	return &settings, nil
}

// SaveSettings saves settings to path, creating its directory
func SaveSettings(path string, settings *Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
