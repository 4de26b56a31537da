package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles shared by every page.
type Styles struct {
	Title    lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
	Label    lipgloss.Style
	Box      lipgloss.Style
	Verbatim lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Label:    lipgloss.NewStyle().Bold(true),
		Box:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Verbatim: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
