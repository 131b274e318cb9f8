package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Core palette
	White    = lipgloss.Color("#e2e8f0")
	Slate    = lipgloss.Color("#64748b")
	DimSlate = lipgloss.Color("#334155")
	Red      = lipgloss.Color("#ef4444")
	Orange   = lipgloss.Color("#f97316")
	Amber    = lipgloss.Color("#f59e0b")
	Green    = lipgloss.Color("#22c55e")
	Teal     = lipgloss.Color("#14b8a6")
	Cyan     = lipgloss.Color("#06b6d4")
	Blue     = lipgloss.Color("#3b82f6")
	Violet   = lipgloss.Color("#8b5cf6")
	Pink     = lipgloss.Color("#ec4899")

	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Slate)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(Slate)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(Green)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	InputBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(DimSlate).
				Padding(0, 1)

	InputActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Green).
				Padding(0, 1)

	PaneBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(DimSlate).
			Padding(0, 1)

	EditPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Amber).
			PaddingLeft(1)

	TodayStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Blue).
			Bold(true)

	EventDayStyle = lipgloss.NewStyle().
			Foreground(Green).
			Background(Pink).
			Bold(true)
)

// Named maps the color names stored in tier/trait rows to the palette.
// Unknown names render as plain text.
func Named(name string) lipgloss.Color {
	switch strings.ToLower(name) {
	case "red":
		return Red
	case "orange":
		return Orange
	case "gold", "amber":
		return Amber
	case "green":
		return Green
	case "teal":
		return Teal
	case "cyan":
		return Cyan
	case "blue":
		return Blue
	case "violet", "purple":
		return Violet
	case "pink":
		return Pink
	case "slate":
		return Slate
	case "white":
		return White
	default:
		return White
	}
}

// Colored styles text with a stored color name; empty names pass through
// unstyled.
func Colored(name, text string) string {
	if name == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(Named(name)).Render(text)
}
