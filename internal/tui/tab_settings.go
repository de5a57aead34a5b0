package tui

import (
	"fmt"
	"strconv"
	"strings"

	"agcost/internal/cli"
	"agcost/internal/model"
	"agcost/internal/tui/components"
	"agcost/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Settings tab fields. Edits apply in memory only and trigger a full
// recompute, so invalid values surface as scenario validation errors.
const (
	settingOverhead = iota
	settingComputeBudget
	settingResearchBudget
	settingsFieldCount
)

type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	errMsg  string
}

func newSettingsState() settingsState {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 16
	ti.Width = 20
	return settingsState{input: ti}
}

// settingsScenario resolves which scenario budget edits apply to. It
// follows the dashboard's scenario selection, falling back to the first
// defined scenario when nothing computed.
func (a App) settingsScenario() model.ScenarioName {
	if res, ok := a.selected(); ok {
		return res.Scenario
	}
	if len(a.defs) > 0 {
		return a.defs[0].Name
	}
	return model.ScenarioMinimal
}

func (a App) settingValue(field int) float64 {
	switch field {
	case settingOverhead:
		// Overhead is uniform across tiers; read any one.
		for _, r := range a.tables.Rates {
			return r.Overhead
		}
		return 0
	case settingComputeBudget:
		return a.tables.Assumptions[a.settingsScenario()].ComputeBudget
	case settingResearchBudget:
		return a.tables.Assumptions[a.settingsScenario()].ResearchBudget
	}
	return 0
}

func (a App) settingLabel(field int) string {
	switch field {
	case settingOverhead:
		return "Overhead multiplier (all roles)"
	case settingComputeBudget:
		return fmt.Sprintf("Compute budget (%s)", a.settingsScenario().Title())
	case settingResearchBudget:
		return fmt.Sprintf("Research budget (%s)", a.settingsScenario().Title())
	}
	return ""
}

func (a App) settingDisplay(field int) string {
	v := a.settingValue(field)
	if field == settingOverhead {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return cli.FormatMoney(v)
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.errMsg = ""
	a.settings.input.SetValue(strconv.FormatFloat(a.settingValue(a.settings.cursor), 'f', -1, 64))
	a.settings.input.CursorEnd()
	a.settings.editing = true
	return a, a.settings.input.Focus()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.settings.editing = false
		a.settings.input.Blur()
		return a, nil
	case "enter":
		v, err := strconv.ParseFloat(strings.TrimSpace(a.settings.input.Value()), 64)
		if err != nil {
			a.settings.errMsg = "not a number: " + a.settings.input.Value()
			return a, nil
		}
		a.applySetting(a.settings.cursor, v)
		a.settings.editing = false
		a.settings.input.Blur()
		a.recompute()
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// applySetting writes the new value into the in-memory rate tables.
// Negative values are accepted here and rejected by scenario validation,
// which shows up as an error banner on every tab.
func (a *App) applySetting(field int, v float64) {
	a.settings.errMsg = ""
	switch field {
	case settingOverhead:
		for tier, r := range a.tables.Rates {
			r.Overhead = v
			a.tables.Rates[tier] = r
		}
	case settingComputeBudget:
		name := a.settingsScenario()
		ops := a.tables.Assumptions[name]
		ops.ComputeBudget = v
		a.tables.Assumptions[name] = ops
	case settingResearchBudget:
		name := a.settingsScenario()
		ops := a.tables.Assumptions[name]
		ops.ResearchBudget = v
		a.tables.Assumptions[name] = ops
	}
}

// renderSettingsTab lists the editable assumptions with the current
// field highlighted.
func (a App) renderSettingsTab(cw int) string {
	var b strings.Builder

	if errs := a.renderErrors(); errs != "" {
		b.WriteString(errs)
		b.WriteString("\n")
	}

	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	activeLabelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	const labelWidth = 36

	var body strings.Builder
	for field := 0; field < settingsFieldCount; field++ {
		marker := "  "
		label := labelStyle.Render(padRight(a.settingLabel(field), labelWidth))
		if field == a.settings.cursor {
			marker = cursorStyle.Render("▸ ")
			label = activeLabelStyle.Render(padRight(a.settingLabel(field), labelWidth))
		}

		if field == a.settings.cursor && a.settings.editing {
			fmt.Fprintf(&body, "%s%s %s\n", marker, label, a.settings.input.View())
			continue
		}
		fmt.Fprintf(&body, "%s%s %s\n", marker, label, valueStyle.Render(a.settingDisplay(field)))
	}

	if a.settings.errMsg != "" {
		body.WriteString("\n" + errStyle.Render("  "+a.settings.errMsg))
	}

	body.WriteString("\n" + dimStyle.Render("Changes apply to this session only; edit the config file to persist."))

	b.WriteString(components.ContentCard("Assumptions", body.String(), cw))
	return b.String()
}
