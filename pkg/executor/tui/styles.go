package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette
// This is the single source of truth for all TUI colors.
var (
	salmonPink  = lipgloss.Color("#FFB3BA") // primary accent, failure badges
	coralPink   = lipgloss.Color("#FFCCCB") // section titles
	mintGreen   = lipgloss.Color("#A8E6CF") // success badges, copy confirmation
	mutedGray   = lipgloss.Color("#6B7280") // labels, disabled controls
	brightWhite = lipgloss.Color("#F9FAFB") // values
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Bold(true)

	tipsStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	sectionTitleStyle = lipgloss.NewStyle().
				Foreground(coralPink).
				Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Width(18)

	valueStyle = lipgloss.NewStyle().
			Foreground(brightWhite)

	hashStyle = lipgloss.NewStyle().
			Foreground(mintGreen).
			Bold(true)

	successBadgeStyle = lipgloss.NewStyle().
				Foreground(mintGreen).
				Bold(true)

	failureBadgeStyle = lipgloss.NewStyle().
				Foreground(salmonPink).
				Bold(true)

	loadingStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Padding(0, 2)

	// Controls
	buttonStyle = lipgloss.NewStyle().
			Foreground(brightWhite).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(salmonPink).
			Padding(0, 1)

	disabledButtonStyle = buttonStyle.
				Foreground(mutedGray).
				BorderForeground(mutedGray)

	confirmedButtonStyle = buttonStyle.
				Foreground(mintGreen).
				BorderForeground(mintGreen)

	errorPanelStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(salmonPink).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)
)
