// Package tui provides the interactive Bubble Tea dashboard for agcost.
package tui

import (
	"fmt"
	"strings"

	"agcost/internal/budget"
	"agcost/internal/config"
	"agcost/internal/model"
	"agcost/internal/tui/components"
	"agcost/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model. All scenario data is computed
// synchronously from the static tables; the Settings tab can tweak
// assumptions in memory and recompute live.
type App struct {
	cfg    config.Config
	tables config.RateTable
	defs   []model.ScenarioDefinition

	results []model.ScenarioResult
	errs    []budget.ScenarioError

	// UI state
	width     int
	height    int
	activeTab int
	scenIdx   int // selected scenario on Overview/Breakdown
	showHelp  bool

	settings settingsState
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates the dashboard model and computes all scenarios.
func NewApp(cfg config.Config) App {
	a := App{
		cfg:      cfg,
		tables:   config.DefaultRateTable().ApplyOverrides(cfg.Overrides),
		defs:     config.Scenarios(cfg.Overrides),
		settings: newSettingsState(),
	}
	a.recompute()
	return a
}

func (a *App) recompute() {
	a.results, a.errs = budget.AggregateAll(a.defs, a.tables)
	if a.scenIdx >= len(a.results) {
		a.scenIdx = len(a.results) - 1
	}
	if a.scenIdx < 0 {
		a.scenIdx = 0
	}
}

// selected returns the currently highlighted scenario result.
func (a App) selected() (model.ScenarioResult, bool) {
	if len(a.results) == 0 {
		return model.ScenarioResult{}, false
	}
	return a.results[a.scenIdx], true
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Settings edit mode intercepts all keys
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Settings tab field navigation
		if a.activeTab == tabSettings {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		} else {
			// Scenario selection on the content tabs
			switch key {
			case "j", "down":
				if a.scenIdx < len(a.results)-1 {
					a.scenIdx++
				}
				return a, nil
			case "k", "up":
				if a.scenIdx > 0 {
					a.scenIdx--
				}
				return a, nil
			}
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil
	}

	return a, nil
}

// Tab indices, matching components.Tabs order.
const (
	tabOverview = iota
	tabCompare
	tabBreakdown
	tabSettings
)

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  agcost needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o c b x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Select scenario (or settings field)"},
		{"Enter", "Edit setting"},
		{"Esc", "Cancel edit"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	scenario := ""
	if res, ok := a.selected(); ok && a.activeTab != tabCompare {
		scenario = res.Scenario.Title()
	}
	statusBar := components.RenderStatusBar(w, scenario)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabCompare:
		content = a.renderCompareTab(cw)
	case tabBreakdown:
		content = a.renderBreakdownTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// renderErrors lists scenario validation failures at the top of a tab.
func (a App) renderErrors() string {
	if len(a.errs) == 0 {
		return ""
	}
	t := theme.Active
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	var b strings.Builder
	for _, se := range a.errs {
		b.WriteString(errStyle.Render("  ✗ " + se.Error()))
		b.WriteString("\n")
	}
	return b.String()
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
