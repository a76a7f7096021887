package cmd

import (
	"io"
	"os"

	adaptereditor "github.com/renato0307/chronopick/internal/adapters/editor"
	adaptergit "github.com/renato0307/chronopick/internal/adapters/git"
	adapterjira "github.com/renato0307/chronopick/internal/adapters/jira"
	adapterprompt "github.com/renato0307/chronopick/internal/adapters/prompt"
	adapterstorage "github.com/renato0307/chronopick/internal/adapters/storage"
	"github.com/renato0307/chronopick/internal/config"
	"github.com/renato0307/chronopick/internal/logging"
	"github.com/renato0307/chronopick/internal/ports"
	"github.com/renato0307/chronopick/internal/services"
	"github.com/renato0307/chronopick/internal/ui"
)

// Container holds the dependencies shared by every command
type Container struct {
	Journal  ports.JournalRepository // nil when disabled or unavailable
	Settings *config.Settings

	stdin  io.Reader
	stdout *os.File
}

// NewContainer creates a new Container. A journal that cannot be opened is
// logged and disabled, never fatal.
func NewContainer(settings *config.Settings) (*Container, error) {
	c := &Container{
		Settings: settings,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
	}

	if settings.JournalEnabled() {
		journal, err := adapterstorage.NewSQLiteJournal(config.GetJournalPath())
		if err != nil {
			logging.Logger.Warn("Journal unavailable, runs will not be recorded", "error", err)
		} else {
			c.Journal = journal
		}
	}

	return c, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.Journal != nil {
		return c.Journal.Close()
	}
	return nil
}

// Styled reports whether output should use colors and tables
func (c *Container) Styled(plain bool) bool {
	return !plain && ui.IsTerminal(c.stdout)
}

// NewConsole creates the reporter for this process's stdout
func (c *Container) NewConsole(plain bool) *ui.Console {
	return ui.NewConsole(c.stdout, c.Styled(plain))
}

// NewPrompter returns huh forms on a terminal and line prompts otherwise
func (c *Container) NewPrompter(plain bool) ports.Prompter {
	if f, ok := c.stdin.(*os.File); ok && !plain && ui.IsTerminal(f) && ui.IsTerminal(c.stdout) {
		return adapterprompt.NewFormPrompter(os.Getenv("ACCESSIBLE") != "")
	}
	return adapterprompt.NewLinePrompter(c.stdin, c.stdout)
}

// PickOptions configures the pick pipeline for one invocation
type PickOptions struct {
	Editor   string
	Plain    bool
	RepoDir  string
	Reporter ports.ReplayReporter
	Verbose  bool
}

// NewPickService wires git, editor, prompts and journal into a PickService
// bound to one repository
func (c *Container) NewPickService(opts PickOptions) *services.PickService {
	gitRepo := adaptergit.NewCLIRepository(adaptergit.Options{
		Dir:     opts.RepoDir,
		Echo:    opts.Reporter.Writer(),
		Verbose: opts.Verbose,
	})
	editorOpener := adaptereditor.NewOpener(opts.Editor, opts.RepoDir)
	prompter := c.NewPrompter(opts.Plain)

	recovery := services.NewRecoverySession(gitRepo, editorOpener, prompter, opts.Reporter)
	engine := services.NewReplayEngine(gitRepo, recovery, opts.Reporter)

	return services.NewPickService(gitRepo, services.NewCommitSource(gitRepo), engine, c.Journal)
}

// NewTaskService creates a TaskService backed by Jira when it is configured.
// An unconfigured tracker yields a service whose lookups fail with
// domain.ErrTrackerNotConfigured.
func (c *Container) NewTaskService(includeSubtasks bool) (*services.TaskService, error) {
	cfg, err := config.LoadJiraConfig(c.Settings)
	if err != nil {
		return nil, err
	}
	if !cfg.Configured() {
		logging.Logger.Debug("Issue tracker not configured")
		return services.NewTaskService(nil), nil
	}

	client, err := adapterjira.NewClient(adapterjira.Options{
		IncludeSubtasks: includeSubtasks,
		Insecure:        cfg.Insecure,
		Project:         cfg.Project,
		Server:          cfg.Server,
		Timeout:         cfg.Timeout,
		Token:           cfg.Token,
	})
	if err != nil {
		return nil, err
	}
	return services.NewTaskService(client), nil
}
