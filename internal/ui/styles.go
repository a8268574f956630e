package ui

import "github.com/charmbracelet/lipgloss"

// Styles for the CLI's tabular output.
var (
	Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	Label  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	Warn   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	Err    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// PriorityStyle colors a priority token by urgency.
func PriorityStyle(name string) lipgloss.Style {
	switch name {
	case "URGENT":
		return Err
	case "HIGH":
		return Warn
	default:
		return Label
	}
}
