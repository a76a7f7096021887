package config

import (
	"os"
	"path/filepath"
)

// GetChronopickHome returns $CHRONOPICK_HOME or ~/.chronopick
func GetChronopickHome() string {
	home := os.Getenv("CHRONOPICK_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".chronopick"
		}
		return filepath.Join(homeDir, ".chronopick")
	}
	return ExpandPath(home)
}

// GetJournalPath returns $CHRONOPICK_HOME/journal.db
func GetJournalPath() string {
	return filepath.Join(GetChronopickHome(), "journal.db")
}

// GetSettingsPath returns $CHRONOPICK_HOME/settings.yaml
func GetSettingsPath() string {
	return filepath.Join(GetChronopickHome(), "settings.yaml")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
