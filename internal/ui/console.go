package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/ports"
	"github.com/renato0307/chronopick/internal/theme"
)

const ruleWidth = 70

// IsTerminal reports whether f is attached to an interactive terminal
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Console renders replay progress as lines of text, styled with the theme
// when writing to a terminal
type Console struct {
	out    io.Writer
	styled bool
}

var _ ports.ReplayReporter = (*Console)(nil)

// NewConsole creates a new Console writing to out
func NewConsole(out io.Writer, styled bool) *Console {
	return &Console{out: out, styled: styled}
}

func (c *Console) paint(style lipgloss.Style, s string) string {
	if !c.styled {
		return s
	}
	return style.Render(s)
}

func (c *Console) ChangeStarted(position, total int, change domain.ChangeRecord) {
	fmt.Fprintf(c.out, "\n[%d/%d] Applying %s (%s)...\n",
		position, total,
		c.paint(theme.HashStyle, change.ShortID()),
		c.paint(theme.TaskStyle, change.TaskID))
}

func (c *Console) ChangeApplied(change domain.ChangeRecord) {
	fmt.Fprintln(c.out, c.paint(theme.AppliedStyle, "  ✓ Applied"))
}

func (c *Console) ChangeBlocked(change domain.ChangeRecord, err error) {
	fmt.Fprintln(c.out, c.paint(theme.ConflictStyle, "  ✗ Conflict or error"))
}

// ConflictHeader prints the banner that opens a recovery session
func (c *Console) ConflictHeader(change domain.ChangeRecord) {
	body := fmt.Sprintf("Conflict applying %s (%s)\nSubject: %s", change.ShortID(), change.TaskID, change.Subject)
	if c.styled {
		fmt.Fprintln(c.out, theme.BannerStyle.Render(body))
		return
	}
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(c.out, "\n%s\n%s\n%s\n", rule, body, rule)
}

func (c *Console) UnmergedFiles(files []string) {
	fmt.Fprintln(c.out, "\nConflicted files:")
	if len(files) == 0 {
		fmt.Fprintln(c.out, "  No conflicts.")
		return
	}
	for i, f := range files {
		fmt.Fprintf(c.out, "  %d. %s\n", i+1, f)
	}
	fmt.Fprintln(c.out, c.paint(theme.MutedStyle, "Use 'd' to inspect the staged diff."))
}

func (c *Console) Failure(msg string, err error) {
	fmt.Fprintf(c.out, "%s %v\n", c.paint(theme.ErrorStyle, msg+":"), err)
}

func (c *Console) Info(msg string) {
	fmt.Fprintln(c.out, "  "+msg)
}

func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.out, c.paint(theme.WarnStyle, "  ⚠ "+msg))
}

func (c *Console) ReplayAborted() {
	fmt.Fprintln(c.out, c.paint(theme.ErrorStyle, "\nCherry-pick aborted by the operator."))
}

// Summary prints the closing counts of a replay
func (c *Console) Summary(summary domain.ReplaySummary) {
	fmt.Fprintf(c.out, "\n%s\n%s\n", strings.Repeat("=", ruleWidth), c.SummaryLine(summary))
}

// SummaryLine formats the applied/skipped/aborted counts
func (c *Console) SummaryLine(summary domain.ReplaySummary) string {
	return fmt.Sprintf("Summary: %s applied, %s skipped, %s aborted",
		c.paint(theme.AppliedStyle, fmt.Sprint(summary.Applied)),
		c.paint(theme.SkippedStyle, fmt.Sprint(summary.Skipped)),
		c.paint(theme.AbortedStyle, fmt.Sprint(summary.AbortedRemaining)))
}

func (c *Console) Writer() io.Writer { return c.out }

// Writeln writes one unstyled line
func (c *Console) Writeln(line string) {
	fmt.Fprintln(c.out, line)
}
