package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary   = lipgloss.Color("#1D4ED8")
	colorSecondary = lipgloss.Color("#0891B2")
	colorSuccess   = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorWarn      = lipgloss.Color("#F59E0B")
	colorMuted     = lipgloss.Color("#6B7280")
	colorWhite     = lipgloss.Color("#F9FAFB")

	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleLabelFocused = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	styleHelp = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	styleErrorText = lipgloss.NewStyle().
			Foreground(colorError)

	styleWarnText = lipgloss.NewStyle().
			Foreground(colorWarn)

	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorMuted)
)
