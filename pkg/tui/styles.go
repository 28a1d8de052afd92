package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared palette, matching pane conventions across all views.
var (
	activeBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("170"))

	helpBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("214"))

	labelStyle = lipgloss.NewStyle().
			Width(20).
			Foreground(lipgloss.Color("245"))

	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("238"))

	commentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			Italic(true)

	successStatusStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("29")).
				Foreground(lipgloss.Color("230")).
				Padding(0, 1)

	errorStatusStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("124")).
				Foreground(lipgloss.Color("230")).
				Padding(0, 1)
)

// paneHeading renders a view heading with a colon rule filling the
// remaining width.
func paneHeading(title string, width int) string {
	remaining := width - len(title) - 5
	if remaining < 0 {
		remaining = 0
	}
	colonStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	padding := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
	return padding.Render(headingStyle.Render(title) + " " + colonStyle.Render(strings.Repeat(":", remaining)))
}

// formatHelpText joins help items with a dimmed separator.
func formatHelpText(items []string) string {
	sep := lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render(" • ")
	styled := make([]string, len(items))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, item := range items {
		styled[i] = dim.Render(item)
	}
	return strings.Join(styled, sep)
}

// renderHelpBox renders the help strip in its own bordered pane.
func renderHelpBox(items []string, width int) string {
	content := lipgloss.NewStyle().
		Width(width - 8).
		Align(lipgloss.Right).
		Render(formatHelpText(items))
	box := helpBorderStyle.
		Width(width - 4).
		Padding(0, 1).
		Render(content)
	return lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1).Render(box)
}
