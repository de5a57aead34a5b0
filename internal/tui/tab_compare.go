package tui

import (
	"fmt"
	"strings"

	"agcost/internal/budget"
	"agcost/internal/cli"
	"agcost/internal/tui/components"
	"agcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderCompareTab shows all scenarios side by side plus a relative
// budget bar chart.
func (a App) renderCompareTab(cw int) string {
	var b strings.Builder

	if errs := a.renderErrors(); errs != "" {
		b.WriteString(errs)
		b.WriteString("\n")
	}

	if len(a.results) == 0 {
		t := theme.Active
		dim := lipgloss.NewStyle().Foreground(t.TextDim)
		b.WriteString(dim.Render("  No scenarios computed."))
		return b.String()
	}

	cmp := budget.Compare(a.results)

	t := theme.Active
	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	const labelWidth = 18
	colWidth := (components.CardInnerWidth(cw) - labelWidth) / len(cmp.Scenarios)
	if colWidth < 14 {
		colWidth = 14
	}

	var table strings.Builder
	table.WriteString(strings.Repeat(" ", labelWidth))
	for _, name := range cmp.Scenarios {
		table.WriteString(headStyle.Render(fmt.Sprintf("%*s", colWidth, name.Title())))
	}
	table.WriteString("\n")

	rows := []struct {
		label  string
		render func(i int) string
	}{
		{"Total Staff", func(i int) string { return cli.FormatCount(cmp.TotalStaff[i]) }},
		{"Annual Budget", func(i int) string { return cli.FormatCompactMoney(cmp.TotalCost[i]) }},
		{"Personnel", func(i int) string { return cli.FormatCompactMoney(cmp.PersonnelCost[i]) }},
		{"Operational", func(i int) string { return cli.FormatCompactMoney(cmp.OperationalCost[i]) }},
		{"Cost / Employee", func(i int) string { return cli.FormatMoney(cmp.CostPerEmployee[i]) }},
	}
	for _, row := range rows {
		table.WriteString(labelStyle.Render(padRight(row.label, labelWidth)))
		for i := range cmp.Scenarios {
			table.WriteString(valueStyle.Render(fmt.Sprintf("%*s", colWidth, row.render(i))))
		}
		table.WriteString("\n")
	}

	b.WriteString(components.ContentCard("Scenario Comparison", strings.TrimRight(table.String(), "\n"), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Relative Budget", a.renderBudgetBars(cmp, components.CardInnerWidth(cw)), cw))

	return b.String()
}

func (a App) renderBudgetBars(cmp budget.Comparison, innerWidth int) string {
	maxCost := 0.0
	for _, c := range cmp.TotalCost {
		if c > maxCost {
			maxCost = c
		}
	}

	const nameWidth = 14
	barWidth := innerWidth - nameWidth - 12
	if barWidth < 10 {
		barWidth = 10
	}

	t := theme.Active
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	moneyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	for i, name := range cmp.Scenarios {
		fmt.Fprintf(&b, "%s %s %s\n",
			nameStyle.Render(padRight(name.Title(), nameWidth)),
			components.Bar(cmp.TotalCost[i], maxCost, barWidth),
			moneyStyle.Render(cli.FormatCompactMoney(cmp.TotalCost[i])))
	}
	return strings.TrimRight(b.String(), "\n")
}
