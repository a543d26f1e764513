package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles for the radius prompt, the result card and the toast line.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style

	Card  lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style

	Toast lipgloss.Style
}

func DefaultTheme() Theme {
	accent := lipgloss.Color("63")
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent),
		Label: lipgloss.NewStyle().Foreground(accent),
		Value: lipgloss.NewStyle().Bold(true),
		Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
