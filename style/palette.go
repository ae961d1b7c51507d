// Package style provides a functional API for composing and applying lipgloss-based CLI styles.
package style

import "github.com/charmbracelet/lipgloss"

// Palette defines the application's color scheme.
var (
	// Base colors
	Text    = lipgloss.Color("#cdd6f4")
	Subtext = lipgloss.Color("#a6adc8")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")

	// Accents
	Red      = lipgloss.Color("#f38ba8")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
	Green    = lipgloss.Color("#a6e3a1")
	Sky      = lipgloss.Color("#89dceb")
	Blue     = lipgloss.Color("#89b4fa")
	Mauve    = lipgloss.Color("#cba6f7")
	Lavender = lipgloss.Color("#b4befe")

	// Semantic mappings
	AccentColor  = Mauve
	SuccessColor = Green
	WarningColor = Yellow
	ErrorColor   = Red
	FaintColor   = Overlay
)
