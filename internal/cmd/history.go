package cmd

import (
	"context"

	"github.com/renato0307/chronopick/internal/logging"
	"github.com/renato0307/chronopick/internal/services"
)

// HistoryCmd lists recorded replay runs
type HistoryCmd struct {
	Limit int  `help:"Number of runs to show (0 = all)" default:"20" short:"n"`
	Plain bool `help:"Plain output, even on a terminal"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing history command", "limit", h.Limit)

	runs, err := services.NewHistoryService(cli.Container.Journal).Recent(context.Background(), h.Limit)
	if err != nil {
		return err
	}

	cli.Container.NewConsole(h.Plain).RenderHistory(runs)
	return nil
}
