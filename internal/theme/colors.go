package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Change state colors
const (
	ColorAborted  Color = "8" // Gray - never attempted
	ColorApplied  Color = "2" // Green - applied
	ColorConflict Color = "1" // Red - blocked by a conflict
	ColorSkipped  Color = "3" // Yellow - skipped
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
)

// Plan colors
const (
	ColorHash Color = "214" // Orange
	ColorTask Color = "141" // Purple
)
