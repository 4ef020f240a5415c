package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired palette
var (
	colorGreen  = lipgloss.Color("#8ec07c")
	colorYellow = lipgloss.Color("#fabd2f")
	colorRed    = lipgloss.Color("#fb4934")
	colorBlue   = lipgloss.Color("#83a598")
	colorDim    = lipgloss.Color("#928374")
	colorFg     = lipgloss.Color("#ebdbb2")
	colorHeader = lipgloss.Color("#fe8019")
)

var (
	styleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	styleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	styleRed    = lipgloss.NewStyle().Foreground(colorRed)
	styleBar    = lipgloss.NewStyle().Foreground(colorBlue)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	styleBold   = lipgloss.NewStyle().Foreground(colorFg).Bold(true)
)

// header renders a section header with an underline
func header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", styleHeader.Render(upper), styleDim.Render(line))
}

// renderBox wraps content in a rounded-border box with an optional title
func renderBox(title, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return box.Render(styleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return box.Render(content)
}

// column pads text to a fixed display width
func column(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(text)
}
