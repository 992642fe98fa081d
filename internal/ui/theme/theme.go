package theme

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Color palette — calm office tones
var (
	Primary = lipgloss.Color("#6366F1") // Indigo
	Accent  = lipgloss.Color("#F59E0B") // Amber
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// SeparatorWidth is the number of characters in a horizontal rule.
const SeparatorWidth = 60

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Rule = lipgloss.NewStyle().
		Foreground(Border)
)

// Question card
var (
	Heading = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Stars = lipgloss.NewStyle().
		Foreground(Accent)

	OptionNumber = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Prompt = lipgloss.NewStyle().
		Foreground(Primary)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Accent)
)

// Separator renders a full-width horizontal rule.
func Separator() string {
	return Rule.Render(strings.Repeat("=", SeparatorWidth))
}
