package theme

import "github.com/charmbracelet/lipgloss"

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(10)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// Plan styles
var (
	DateStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HashStyle = lipgloss.NewStyle().
			Foreground(ColorHash)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TaskStyle = lipgloss.NewStyle().
			Foreground(ColorTask).
			Bold(true)
)

// Change state styles
var (
	AbortedStyle = lipgloss.NewStyle().
			Foreground(ColorAborted)

	AppliedStyle = lipgloss.NewStyle().
			Foreground(ColorApplied)

	ConflictStyle = lipgloss.NewStyle().
			Foreground(ColorConflict).
			Bold(true)

	SkippedStyle = lipgloss.NewStyle().
			Foreground(ColorSkipped)
)

// Message styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	WarnStyle = lipgloss.NewStyle().
			Foreground(ColorSkipped)
)

// Conflict banner shown when a recovery session starts
var BannerStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorConflict).
	Padding(0, 1)

// Table styles
var (
	TableBorderStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary).
				Padding(0, 1)

	TableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)
