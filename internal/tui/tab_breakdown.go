package tui

import (
	"fmt"
	"sort"
	"strings"

	"agcost/internal/cli"
	"agcost/internal/tui/components"
	"agcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderBreakdownTab shows every cost category of the selected scenario
// as a bar chart, largest first.
func (a App) renderBreakdownTab(cw int) string {
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

	type entry struct {
		name string
		cost float64
		pct  float64
	}
	var entries []entry
	for _, line := range res.Staffing {
		entries = append(entries, entry{line.Title, line.Cost, line.ShareOfTotal})
	}
	for _, line := range res.Operational {
		entries = append(entries, entry{line.Category, line.Cost, line.ShareOfTotal})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].cost > entries[j].cost })

	maxCost := 0.0
	for _, e := range entries {
		if e.cost > maxCost {
			maxCost = e.cost
		}
	}

	innerWidth := components.CardInnerWidth(cw)
	const nameWidth = 26
	barWidth := innerWidth - nameWidth - 26
	if barWidth < 10 {
		barWidth = 10
	}

	t := theme.Active
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	moneyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var rows strings.Builder
	for _, e := range entries {
		bar := components.Bar(e.cost, maxCost, barWidth)
		fmt.Fprintf(&rows, "%s %s %s %s\n",
			nameStyle.Render(padRight(truncStr(e.name, nameWidth), nameWidth)),
			padRight(bar, barWidth),
			moneyStyle.Render(fmt.Sprintf("%14s", cli.FormatMoney(e.cost))),
			pctStyle.Render(fmt.Sprintf("%6s", cli.FormatPercent(e.pct))))
	}

	title := fmt.Sprintf("Cost Breakdown: %s (%s total)",
		res.Scenario.Title(), cli.FormatCompactMoney(res.TotalCost))
	b.WriteString(components.ContentCard(title, strings.TrimRight(rows.String(), "\n"), cw))

	return b.String()
}
