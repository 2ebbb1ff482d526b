package theme

import "github.com/charmbracelet/lipgloss"

// Explain output styles
var (
	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeading)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Width(12)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorValue)
)

// Explain value styles
var (
	AheadStyle = lipgloss.NewStyle().
			Foreground(ColorAhead)

	BehindStyle = lipgloss.NewStyle().
			Foreground(ColorBehind)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorBranch).
			Bold(true)

	OperationStyle = lipgloss.NewStyle().
			Foreground(ColorOperation).
			Bold(true)
)
