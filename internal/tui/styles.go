package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorMuted   = lipgloss.Color("#8a8f98")
	colorAccent  = lipgloss.Color("#8BC34A")
	colorWarning = lipgloss.Color("#FFC107")
	colorDanger  = lipgloss.Color("#e53935")
)

// Styles holds the lipgloss styles of the results view.
type Styles struct {
	Title      lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Damage     lipgloss.Style
	HighDamage lipgloss.Style
	Insight    lipgloss.Style
	Hint       lipgloss.Style
}

// DefaultStyles returns the calculator's terminal palette.
func DefaultStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Label:      lipgloss.NewStyle().Foreground(colorMuted).Width(18),
		Value:      lipgloss.NewStyle().Bold(true),
		Damage:     lipgloss.NewStyle().Bold(true).Foreground(colorWarning),
		HighDamage: lipgloss.NewStyle().Bold(true).Foreground(colorDanger),
		Insight:    lipgloss.NewStyle().Italic(true).Foreground(colorAccent).MarginTop(1),
		Hint:       lipgloss.NewStyle().Foreground(colorMuted),
	}
}
