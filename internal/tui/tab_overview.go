package tui

import (
	"fmt"
	"strings"

	"agcost/internal/cli"
	"agcost/internal/model"
	"agcost/internal/tui/components"
	"agcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderOverviewTab shows the selected scenario: headline metric cards
// plus personnel and operational breakdowns side by side.
func (a App) renderOverviewTab(cw int) string {
	var b strings.Builder

	if errs := a.renderErrors(); errs != "" {
		b.WriteString(errs)
		b.WriteString("\n")
	}

	res, ok := a.selected()
	if !ok {
		t := theme.Active
		dim := lipgloss.NewStyle().Foreground(t.TextDim)
		b.WriteString(dim.Render("  No scenario computed."))
		return b.String()
	}

	t := theme.Active
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	b.WriteString(" " + descStyle.Render(truncStr(res.Description, cw-2)))
	b.WriteString("\n")

	cards := []struct{ Label, Value, Note string }{
		{"Annual Budget", cli.FormatCompactMoney(res.TotalCost), cli.FormatMoney(res.TotalCost)},
		{"Total Staff", cli.FormatCount(res.TotalStaff), "across all roles"},
		{"Cost / Employee", cli.FormatMoney(res.CostPerEmployee), "annual"},
		{"Personnel Share", cli.FormatPercent(res.PersonnelPct), cli.FormatPercent(res.OperationalPct) + " operational"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	colWidths := components.LayoutRow(cw, 2)
	left := components.ContentCard("Personnel", a.renderStaffingLines(res, components.CardInnerWidth(colWidths[0])), colWidths[0])
	right := components.ContentCard("Operational", a.renderOperationalLines(res, components.CardInnerWidth(colWidths[1])), colWidths[1])
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))

	return b.String()
}

func (a App) renderStaffingLines(res model.ScenarioResult, innerWidth int) string {
	t := theme.Active
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	countStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	moneyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	totalStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	nameWidth := innerWidth - 28
	if nameWidth < 12 {
		nameWidth = 12
	}

	var b strings.Builder
	for _, line := range res.Staffing {
		fmt.Fprintf(&b, "%s %s %s\n",
			nameStyle.Render(padRight(truncStr(line.Title, nameWidth), nameWidth)),
			countStyle.Render(fmt.Sprintf("%4d", line.Count)),
			moneyStyle.Render(fmt.Sprintf("%14s", cli.FormatMoney(line.Cost))))
	}
	fmt.Fprintf(&b, "%s %s %s",
		totalStyle.Render(padRight("Total", nameWidth)),
		totalStyle.Render(fmt.Sprintf("%4d", res.TotalStaff)),
		totalStyle.Render(fmt.Sprintf("%14s", cli.FormatMoney(res.PersonnelCost))))
	return b.String()
}

func (a App) renderOperationalLines(res model.ScenarioResult, innerWidth int) string {
	t := theme.Active
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	moneyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	totalStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	nameWidth := innerWidth - 16
	if nameWidth < 12 {
		nameWidth = 12
	}

	var b strings.Builder
	for _, line := range res.Operational {
		fmt.Fprintf(&b, "%s %s\n",
			nameStyle.Render(padRight(truncStr(line.Category, nameWidth), nameWidth)),
			moneyStyle.Render(fmt.Sprintf("%14s", cli.FormatMoney(line.Cost))))
	}
	fmt.Fprintf(&b, "%s %s",
		totalStyle.Render(padRight("Total", nameWidth)),
		totalStyle.Render(fmt.Sprintf("%14s", cli.FormatMoney(res.OperationalCost))))
	return b.String()
}

func padRight(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
