package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/theme"
)

const subjectPreviewLen = 60

// FormatPlanLine formats one planned change as
// "NNN. <hash8> | <iso date> | <subject> (<task>)"
func FormatPlanLine(position int, change domain.ChangeRecord) string {
	return fmt.Sprintf("%3d. %s | %s | %s (%s)",
		position, change.ShortID(), change.ISODate, change.SubjectPreview(subjectPreviewLen), change.TaskID)
}

// FormatPlanPlain formats the whole plan, one line per change
func FormatPlanPlain(changes []domain.ChangeRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d commits:\n", len(changes))
	b.WriteString(strings.Repeat("-", ruleWidth))
	b.WriteByte('\n')
	for i, change := range changes {
		b.WriteString(FormatPlanLine(i+1, change))
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderPlan writes the ordered plan, as a table when styled
func (c *Console) RenderPlan(changes []domain.ChangeRecord) {
	if !c.styled {
		fmt.Fprint(c.out, "\n"+FormatPlanPlain(changes))
		return
	}

	rows := make([][]string, 0, len(changes))
	for i, change := range changes {
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			change.ShortID(),
			change.ISODate,
			change.SubjectPreview(subjectPreviewLen),
			change.TaskID,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.TableBorderStyle).
		Headers("#", "Hash", "Date", "Subject", "Task").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.TableHeaderStyle
			}
			switch col {
			case 1:
				return theme.TableCellStyle.Foreground(theme.ColorHash)
			case 2:
				return theme.TableCellStyle.Foreground(theme.ColorMuted)
			case 4:
				return theme.TableCellStyle.Foreground(theme.ColorTask)
			default:
				return theme.TableCellStyle
			}
		})

	fmt.Fprintf(c.out, "\nFound %d commits:\n%s\n", len(changes), t.Render())
}
