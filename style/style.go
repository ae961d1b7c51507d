// Package style provides a functional API for composing and applying lipgloss-based CLI styles.
package style

import "github.com/charmbracelet/lipgloss"

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a stateless rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Bg returns a stateless rendering function that applies the specified background color to a string.
func Bg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored("", c).Render(s) }
}

// Bold renders a string with bold emphasis.
func Bold(s string) string {
	return New().Bold(true).Render(s)
}

// Italic renders a string with italic emphasis.
func Italic(s string) string {
	return New().Italic(true).Render(s)
}

// Faint renders a string with reduced visual intensity.
func Faint(s string) string {
	return New().Faint(true).Render(s)
}
