package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/logging"
)

// TasksCmd groups the issue tracker commands
type TasksCmd struct {
	Fetch TasksFetchCmd `cmd:"fetch" help:"Write the tasks of a release to a task file"`
}

// TasksFetchCmd exports the tasks of a tracker release to a task file
type TasksFetchCmd struct {
	Release string `arg:"" help:"Release (fix version) name"`

	NoSubtasks bool   `help:"Do not include subtasks of the release issues"`
	Output     string `help:"Task file to write" default:"tasks.txt" short:"o" type:"path"`
}

// Run executes the tasks fetch command
func (t *TasksFetchCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing tasks fetch command", "release", t.Release, "output", t.Output, "subtasks", !t.NoSubtasks)

	svc, err := cli.Container.NewTaskService(!t.NoSubtasks)
	if err != nil {
		return err
	}

	tasks, err := svc.ExportRelease(context.Background(), t.Release, t.Output)
	if errors.Is(err, domain.ErrReleaseNotFound) {
		fmt.Printf("Release %s not found, wrote an empty task file to %s\n", t.Release, t.Output)
		return nil
	}
	if err != nil {
		return err
	}

	for _, id := range tasks.Sorted() {
		fmt.Println(id)
	}
	fmt.Printf("Wrote %d tasks to %s\n", tasks.Len(), t.Output)
	return nil
}
