package viz

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	pausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)
