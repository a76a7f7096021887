package ui

import (
	"fmt"
	"strings"

	"github.com/renato0307/chronopick/internal/theme"
)

// RunHeader describes a pick invocation for the opening banner
type RunHeader struct {
	DryRun  bool
	Release string
	Source  string
	Target  string
	Tasks   []string // sorted; listed only when Verbose
	Verbose bool
}

// RenderHeader writes the opening banner of a pick run
func (c *Console) RenderHeader(h RunHeader) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, c.paint(theme.AppNameStyle, "chronopick")+" "+c.paint(theme.SubtitleStyle, "(chronological order)"))
	fmt.Fprintln(c.out, rule)

	row := func(label, value string) {
		fmt.Fprintf(c.out, "%s %s\n", c.paint(theme.LabelStyle, fmt.Sprintf("%-9s", label+":")), c.paint(theme.ValueStyle, value))
	}
	row("Source", h.Source)
	row("Target", h.Target)
	if h.Release != "" {
		row("Release", h.Release)
	}
	row("Tasks", fmt.Sprint(len(h.Tasks)))
	if h.Verbose {
		row("List", strings.Join(h.Tasks, ", "))
	}
	row("Dry run", yesNo(h.DryRun))
	fmt.Fprintln(c.out, strings.Repeat("-", ruleWidth))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
