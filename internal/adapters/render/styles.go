package render

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	count   lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	handle  lipgloss.Style
	line    lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		count:   lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		handle:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		line:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
