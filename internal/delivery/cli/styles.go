package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	PromptStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	FeedbackStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)

	// Person list
	IndexStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	NameStyle = lipgloss.NewStyle().
			Bold(true)

	RoleStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	TagStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	DetailStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			PaddingLeft(4)

	HistoryStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			PaddingLeft(2)
)
