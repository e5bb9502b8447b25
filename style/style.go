// Package style provides a functional API for composing lipgloss styles for CLI output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mugiwara-cli/mugiwara/color"
)

// New returns an empty lipgloss.Style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a rendering function that applies the given foreground color.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Tag encapsulates a string in a colored, padded block. Used for stream kinds.
func Tag(bg lipgloss.Color) func(string) string {
	return func(s string) string {
		return New().Foreground(color.New("230")).Background(bg).Padding(0, 1).Render(s)
	}
}

// Truncate cuts rendered strings to width.
func Truncate(width int) func(string) string {
	return func(s string) string { return New().MaxWidth(width).Render(s) }
}

// Title renders a section title of the interactive interface.
func Title(s string) string {
	return New().Foreground(Base).Background(AccentColor).Padding(0, 1).Render(s)
}

// ErrorTitle renders the title of an error screen.
func ErrorTitle(s string) string {
	return New().Foreground(Base).Background(ErrorColor).Padding(0, 1).Render(s)
}
