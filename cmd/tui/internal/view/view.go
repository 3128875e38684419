package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

var (
	padded     = lipgloss.NewStyle().Padding(1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Frame renders v with its title and help line.
func Frame(v View) string {
	return padded.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(v.Title()),
		"",
		v.View(),
		"",
		helpStyle.Render(v.ShortHelp()),
	))
}
