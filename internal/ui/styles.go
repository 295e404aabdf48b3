package ui

import "github.com/charmbracelet/lipgloss"

const accentColor = "#10b981"

type styles struct {
	title    lipgloss.Style
	section  lipgloss.Style
	stepName lipgloss.Style
	deadline lipgloss.Style
	hint     lipgloss.Style
	cursor   lipgloss.Style
	taskDone lipgloss.Style
	taskOpen lipgloss.Style
	errLine  lipgloss.Style
}

func defaultStyles() styles {
	accent := lipgloss.Color(accentColor)
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		section:  lipgloss.NewStyle().Bold(true),
		stepName: lipgloss.NewStyle().Bold(true),
		deadline: lipgloss.NewStyle().Faint(true),
		hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		cursor:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		taskDone: lipgloss.NewStyle().Faint(true).Strikethrough(true),
		taskOpen: lipgloss.NewStyle(),
		errLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
