package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared look of the menu, scoreboard and visualizer screens.
var (
	accentColor = lipgloss.Color("229")
	borderColor = lipgloss.Color("240")
	dimColor    = lipgloss.Color("241")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	dimStyle    = lipgloss.NewStyle().Foreground(dimColor)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(dimColor).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
)

// centerText pads text on the left so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
