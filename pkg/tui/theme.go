package tui

import "github.com/charmbracelet/lipgloss"

// theme mirrors the badge palette used by the terminal printers.
var (
	colorInfo      = lipgloss.Color("14")
	colorWarning   = lipgloss.Color("11")
	colorDanger    = lipgloss.Color("9")
	colorSecondary = lipgloss.Color("8")
	colorAccent    = lipgloss.Color("12")

	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(colorSecondary)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(colorAccent)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	completedStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(colorSecondary)

	overdueStyle = lipgloss.NewStyle().
			Foreground(colorDanger)

	faintStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWarning)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			MarginTop(1)
)

func priorityStyle(token string) lipgloss.Style {
	switch token {
	case "info":
		return lipgloss.NewStyle().Foreground(colorInfo)
	case "warning":
		return lipgloss.NewStyle().Foreground(colorWarning)
	case "danger":
		return lipgloss.NewStyle().Foreground(colorDanger)
	default:
		return lipgloss.NewStyle().Foreground(colorSecondary)
	}
}
