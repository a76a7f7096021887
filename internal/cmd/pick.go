package cmd

import (
	"context"
	"fmt"

	adaptersound "github.com/renato0307/chronopick/internal/adapters/sound"
	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/logging"
	"github.com/renato0307/chronopick/internal/ports"
	"github.com/renato0307/chronopick/internal/services"
	"github.com/renato0307/chronopick/internal/ui"
)

// PickCmd replays the commits of a set of tasks onto a target branch
type PickCmd struct {
	Source string   `arg:"" help:"Branch to take commits from"`
	Target string   `arg:"" help:"Branch to apply commits to"`
	Tasks  []string `arg:"" optional:"" help:"Task IDs, comma-separated lists or task files"`

	DryRun  bool   `help:"Show the ordered commits without applying them" short:"d"`
	Editor  string `help:"Editor for manual conflict resolution (overrides $CHRONOPICK_EDITOR, $VISUAL, $EDITOR)"`
	Notify  bool   `help:"Play a sound when a conflict needs you and when the replay ends"`
	Plain   bool   `help:"Plain output and line prompts, even on a terminal"`
	Release string `help:"Also pick every task of this tracker release"`
	RepoDir string `help:"Repository to operate in" default:"." type:"existingdir"`
	Verbose bool   `help:"Echo git commands and the full task list" short:"v"`
	Yes     bool   `help:"Apply without asking for confirmation" short:"y"`
}

// Run executes the pick command
func (p *PickCmd) Run(cli *CLI) error {
	p.applySettings(cli)
	container := cli.Container
	ctx := context.Background()

	logging.Logger.Info("Executing pick command",
		"source", p.Source, "target", p.Target, "specifiers", len(p.Tasks),
		"release", p.Release, "dry_run", p.DryRun, "repo_dir", p.RepoDir)

	console := container.NewConsole(p.Plain)
	tasks, err := p.resolveTasks(ctx, container, console)
	if err != nil {
		return err
	}

	console.RenderHeader(ui.RunHeader{
		DryRun:  p.DryRun,
		Release: p.Release,
		Source:  p.Source,
		Target:  p.Target,
		Tasks:   tasks.Sorted(),
		Verbose: p.Verbose,
	})

	if tasks.Len() == 0 {
		return domain.ErrEmptyTaskSet
	}

	var reporter ports.ReplayReporter = console
	if p.Notify {
		reporter = newNotifyingReporter(console, adaptersound.NewPlayer())
	}
	svc := container.NewPickService(PickOptions{
		Editor:   p.Editor,
		Plain:    p.Plain,
		RepoDir:  p.RepoDir,
		Reporter: reporter,
		Verbose:  p.Verbose,
	})

	if err := svc.ValidateBranches(ctx, p.Source, p.Target); err != nil {
		return err
	}

	plan, err := svc.Plan(ctx, p.Source, tasks)
	if err != nil {
		return err
	}
	if len(plan) == 0 {
		console.Writeln("\nNo commits found for the given tasks.")
		return nil
	}
	console.RenderPlan(plan)

	if p.DryRun {
		console.Writeln("\nDry run: no changes applied.")
		return nil
	}

	if !p.Yes {
		ok, err := container.NewPrompter(p.Plain).Confirm(ctx, fmt.Sprintf("\nApply %d commits to '%s'?", len(plan), p.Target))
		if err != nil || !ok {
			logging.Logger.Info("Pick cancelled by the operator", "error", err)
			console.Writeln("Cancelled.")
			return nil
		}
	}

	_, err = svc.Replay(ctx, services.ReplayParams{
		Changes: plan,
		Source:  p.Source,
		Target:  p.Target,
		Tasks:   tasks,
	})
	return err
}

// applySettings fills flags still at their defaults from settings.yaml
func (p *PickCmd) applySettings(cli *CLI) {
	settings := cli.Settings()
	if p.Editor == "" {
		p.Editor = settings.Editor
	}
	if !p.Plain && settings.Plain != nil {
		p.Plain = *settings.Plain
	}
	if !p.Notify && settings.Notify != nil {
		p.Notify = *settings.Notify
	}
}

func (p *PickCmd) resolveTasks(ctx context.Context, container *Container, console *ui.Console) (domain.TaskSet, error) {
	tasks, err := services.ParseTaskSpecifiers(p.Tasks)
	if err != nil {
		return nil, err
	}

	if p.Release != "" {
		taskSvc, err := container.NewTaskService(true)
		if err != nil {
			return nil, err
		}
		found, err := taskSvc.MergeRelease(ctx, tasks, p.Release)
		if err != nil {
			return nil, err
		}
		if !found {
			console.Warn(fmt.Sprintf("Release %s not found, no tasks added from it", p.Release))
		}
	}

	return tasks, nil
}
