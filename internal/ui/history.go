package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/theme"
)

const historyTimeLayout = "2006-01-02 15:04"

func historyRow(run domain.ReplayRun) []string {
	return []string{
		shortRunID(run.ID),
		run.StartedAt.Format(historyTimeLayout),
		run.Source + " -> " + run.Target,
		fmt.Sprint(len(run.Tasks)),
		fmt.Sprint(run.Applied),
		fmt.Sprint(run.Skipped),
		fmt.Sprint(run.AbortedRemaining),
		run.FinishedAt.Sub(run.StartedAt).Round(time.Second).String(),
	}
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

var historyHeaders = []string{"Run", "Started", "Branches", "Tasks", "Applied", "Skipped", "Aborted", "Took"}

// FormatHistoryPlain formats runs as tab-free aligned text
func FormatHistoryPlain(runs []domain.ReplayRun) string {
	if len(runs) == 0 {
		return "No replay runs recorded.\n"
	}
	var b strings.Builder
	for _, run := range runs {
		r := historyRow(run)
		fmt.Fprintf(&b, "%s %s %s tasks=%s applied=%s skipped=%s aborted=%s took=%s\n",
			r[0], r[1], r[2], r[3], r[4], r[5], r[6], r[7])
	}
	return b.String()
}

// RenderHistory writes recorded runs, newest first
func (c *Console) RenderHistory(runs []domain.ReplayRun) {
	if !c.styled || len(runs) == 0 {
		fmt.Fprint(c.out, FormatHistoryPlain(runs))
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.TableBorderStyle).
		Headers(historyHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.TableHeaderStyle
			}
			switch col {
			case 4:
				return theme.TableCellStyle.Foreground(theme.ColorApplied)
			case 5:
				return theme.TableCellStyle.Foreground(theme.ColorSkipped)
			case 6:
				return theme.TableCellStyle.Foreground(theme.ColorAborted)
			default:
				return theme.TableCellStyle
			}
		})
	for _, run := range runs {
		t.Row(historyRow(run)...)
	}
	fmt.Fprintln(c.out, t.Render())
}
