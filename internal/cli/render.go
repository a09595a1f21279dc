package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	budgetStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)
)

// RenderAnswer renders the backend reply in a titled panel.
func RenderAnswer(title, text string) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(panelStyle.Width(76).Render(strings.TrimSpace(text)))
	b.WriteString("\n")
	return b.String()
}

// RenderBudget renders the local budget summary below the answer.
func RenderBudget(summary string) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerStyle.Render("Local budget summary"))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(budgetStyle.Render(strings.TrimSpace(summary))))
	b.WriteString("\n")
	return b.String()
}

// RenderHint renders a muted footer line.
func RenderHint(text string) string {
	return "  " + mutedStyle.Render(text) + "\n"
}
