package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette — focused, low-stimulus study colors
var (
	primary   = lipgloss.Color("#2DD4BF") // Teal
	accent    = lipgloss.Color("#FBBF24") // Amber
	success   = lipgloss.Color("#4ADE80") // Green
	failure   = lipgloss.Color("#FB7185") // Rose
	text      = lipgloss.Color("#E2E8F0") // Light slate
	textDim   = lipgloss.Color("#64748B") // Slate
	borderCol = lipgloss.Color("#334155") // Dark slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	bodyStyle = lipgloss.NewStyle().
			Foreground(text)

	dimStyle = lipgloss.NewStyle().
			Foreground(textDim)

	hintStyle = lipgloss.NewStyle().
			Foreground(textDim).
			Italic(true)

	tagStyle = lipgloss.NewStyle().
			Foreground(accent)

	successStyle = lipgloss.NewStyle().
			Foreground(success).
			Bold(true)

	failureStyle = lipgloss.NewStyle().
			Foreground(failure).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderCol).
			Padding(1, 2)
)
