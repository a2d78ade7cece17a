package tui

import "github.com/charmbracelet/lipgloss"

// Global styles used across views
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("246"))

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("170"))

	authorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("cyan")).
			Bold(true)

	timestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")) // Lighter gray that works better in dark terminals

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("120"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("yellow"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
