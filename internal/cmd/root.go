package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/chronopick/internal/config"
	"github.com/renato0307/chronopick/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"200"`

	Pick    PickCmd    `cmd:"pick" help:"Replay task commits onto a branch in chronological order (default)" default:"withargs"`
	Tasks   TasksCmd   `cmd:"tasks" help:"Look up task sets in the issue tracker"`
	History HistoryCmd `cmd:"history" help:"Show recorded replay runs"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// Settings returns the loaded settings, never nil
func (c *CLI) Settings() *config.Settings {
	if c.settings == nil {
		return &config.Settings{}
	}
	return c.settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.yaml > defaults.
	// A setting only applies while the flag is still at its default.
	settings := c.Settings()

	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("CHRONOPICK_MAX_LOG_FILES"); !hasEnv && settings.MaxLogFiles != nil {
			c.MaxLogFiles = *settings.MaxLogFiles
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv("CHRONOPICK_DEBUG"); !hasEnv && settings.Debug != nil && *settings.Debug {
			c.Debug = true
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if logFilePath != "" {
		// The journal's GORM logger keys off this
		os.Setenv("CHRONOPICK_DEBUG", "1")
	}
	logging.Logger.Info("chronopick starting", "args", os.Args[1:], "log_file", logFilePath)

	// Create container AFTER logging is initialized so adapters log from the start
	container, err := NewContainer(settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
