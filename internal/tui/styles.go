package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thruflo/seqrun/internal/sequence"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688"))

	contentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688")).
			Italic(true)

	runningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	idleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

func stateStyle(s sequence.State) lipgloss.Style {
	switch s {
	case sequence.StateRunning:
		return runningStyle
	case sequence.StatePaused:
		return pausedStyle
	default:
		return idleStyle
	}
}
