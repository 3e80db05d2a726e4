package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Accent color shared with the huh theme
	Accent = lipgloss.Color("#7D56F4")

	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	// Success styling
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	// Warning styling
	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB000"))

	// Error styling
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	// Command styling for shell snippets the user should type
	CommandStyle = lipgloss.NewStyle().
			Foreground(Accent)
)
