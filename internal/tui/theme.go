package tui

import (
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type theme struct {
	title    lipgloss.Style
	pane     lipgloss.Style
	focused  lipgloss.Style
	active   lipgloss.Style
	selected lipgloss.Style
	disabled lipgloss.Style
	status   lipgloss.Style
	help     lipgloss.Style
	sel      lipgloss.Style
}

func newTheme(name string) theme {
	accent, muted := lipgloss.Color("63"), lipgloss.Color("241")
	if name == "light" {
		accent, muted = lipgloss.Color("26"), lipgloss.Color("245")
	}
	return theme{
		title:    lipgloss.NewStyle().Bold(true).Underline(true),
		pane:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1),
		focused:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		active:   lipgloss.NewStyle().Reverse(true),
		selected: lipgloss.NewStyle().Foreground(accent).Bold(true),
		disabled: lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
		status:   lipgloss.NewStyle().Foreground(accent),
		help:     lipgloss.NewStyle().Foreground(muted),
		sel:      lipgloss.NewStyle().Reverse(true).Foreground(accent),
	}
}

// fit truncates a rendered line to width cells, keeping escape sequences
// intact.
func fit(line string, width int) string {
	if width <= 0 || xansi.StringWidth(line) <= width {
		return line
	}
	return xansi.Truncate(line, width, "…")
}
