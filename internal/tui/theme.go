package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
)

const (
	colorAccent  = colorPink
	colorSuccess = colorGreen
	colorError   = colorRed
)

// ---------------------------------------------------------------------------
// Shared styles
// ---------------------------------------------------------------------------

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	descStyle        = lipgloss.NewStyle().Foreground(colorSubtext0)
	paneTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	paneBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
	placeholderStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	footerStyle      = lipgloss.NewStyle().Foreground(colorSubtext0).Padding(0, 2)
	spinnerStyle     = lipgloss.NewStyle().Foreground(colorTeal)

	statusBarStyle     = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 2)
	statusErrorStyle   = statusBarStyle.Foreground(colorError)
	statusSuccessStyle = statusBarStyle.Foreground(colorSuccess)
)
