package viz

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	Rod      = lipgloss.NewStyle().Foreground(lipgloss.Color("#dddddd"))
	Trace    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3399ff"))
	Velocity = lipgloss.NewStyle().Foreground(lipgloss.Color("#3399ff")).Bold(true)
	Strip    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cc88"))

	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusLooping = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)
