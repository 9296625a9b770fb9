package ui

import "charm.land/lipgloss/v2"

// Styles contains the viewer styles.
type Styles struct {
	Title   lipgloss.Style
	Marquee lipgloss.Style
	Edge    lipgloss.Style
	Status  lipgloss.Style
	Paused  lipgloss.Style
	Hints   lipgloss.Style
	Toast   lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7aa2f7")),
		Marquee: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a9b1d6")),
		Edge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89")),
		Paused: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e0af68")),
		Hints: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3b4261")),
		Toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ece6a")),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f7768e")),
	}
}
