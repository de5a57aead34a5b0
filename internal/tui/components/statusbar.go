package components

import (
	"agcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with key hints on the
// left and the active scenario on the right.
func RenderStatusBar(width int, scenario string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [j/k]scenario  [?]help  [q]uit"
	right := ""
	if scenario != "" {
		right = "Scenario: " + scenario + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}

// Bar renders a proportional horizontal bar of at most maxWidth cells.
func Bar(value, maxValue float64, maxWidth int) string {
	if maxValue <= 0 || maxWidth <= 0 {
		return ""
	}
	n := int(value / maxValue * float64(maxWidth))
	if n < 0 {
		n = 0
	}
	if n > maxWidth {
		n = maxWidth
	}

	t := theme.Active
	filled := lipgloss.NewStyle().Foreground(t.Accent)

	out := ""
	for i := 0; i < n; i++ {
		out += "█"
	}
	return filled.Render(out)
}
