package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	primary = lipgloss.Color("#0B63F6")
	deep    = lipgloss.Color("#083A99")
	muted   = lipgloss.Color("#6B7A99")
	warn    = lipgloss.Color("#E65100")
	danger  = lipgloss.Color("#E53935")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primary).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(deep).MarginTop(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1)

	badgeStyle   = lipgloss.NewStyle().Foreground(primary)
	noteStyle    = lipgloss.NewStyle().Foreground(muted).Italic(true)
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(warn)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(danger)
)

func badges(items []string, prefix string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, badgeStyle.Render("["+prefix+item+"]"))
	}
	return strings.Join(parts, " ")
}

func card(lines ...string) string {
	return cardStyle.Render(strings.Join(lines, "\n"))
}
