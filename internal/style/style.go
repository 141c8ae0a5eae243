// Package style holds the lipgloss styles used for operator-facing output.
package style

import "github.com/charmbracelet/lipgloss"

var (
	// Title is the bold blue banner printed when a command starts.
	Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	// Dim de-emphasizes secondary text.
	Dim = lipgloss.NewStyle().Faint(true)

	// Success marks completed steps.
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	// Warning marks recoverable problems.
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	// Error marks failures.
	Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	// Command highlights shell commands the operator should run.
	Command = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)
