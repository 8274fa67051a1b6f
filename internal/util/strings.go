// Package util provides small string helpers shared by the display code.
package util

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// TruncateANSI truncates a string to maxWidth visual columns, adding "..." if
// truncated. ANSI escape codes and wide characters are measured by their
// rendered width, so styled text can be passed directly.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= len(Ellipsis) {
		return Ellipsis
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	// ansi.Truncate includes the tail in the final width calculation
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// FitWidth truncates s to width columns. A width of zero or less disables
// truncation.
func FitWidth(s string, width int) string {
	if width <= 0 {
		return s
	}
	return TruncateANSI(s, width)
}
