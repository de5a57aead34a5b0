package cmd

import (
	"fmt"
	"strings"

	"agcost/internal/budget"
	"agcost/internal/cli"
	"agcost/internal/model"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [scenario]",
	Short: "Detailed budget summary per scenario",
	Long: "Print the full budget breakdown for every scenario, or for a single\n" +
		"scenario given by name (minimal, moderate, comprehensive).",
	Args: cobra.MaximumNArgs(1),
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, args []string) error {
	_, tables, defs, err := loadInputs()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		name := model.ScenarioName(strings.ToLower(args[0]))
		filtered := defs[:0:0]
		for _, d := range defs {
			if d.Name == name {
				filtered = append(filtered, d)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("unknown scenario %q (want minimal, moderate, or comprehensive)", args[0])
		}
		defs = filtered
	}

	results, errs := budget.AggregateAll(defs, tables)
	for _, res := range results {
		printScenarioSummary(res)
	}
	return reportErrors(errs)
}

// printScenarioSummary renders one scenario's headline metrics plus
// staffing and operational breakdowns. Dollar figures are rounded to
// whole units and percentages to one decimal, for display only.
func printScenarioSummary(res model.ScenarioResult) {
	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s SCENARIO  Annual Budget", strings.ToUpper(string(res.Scenario)))))
	fmt.Println()

	headline := [][]string{
		{"Total Annual Budget", cli.FormatMoney(res.TotalCost)},
		{"Total Staff", cli.FormatCount(res.TotalStaff)},
		{"Cost per Employee", cli.FormatMoney(res.CostPerEmployee)},
		{"---"},
		{"Personnel", fmt.Sprintf("%s  (%s)", cli.FormatMoney(res.PersonnelCost), cli.FormatPercent(res.PersonnelPct))},
		{"Operational", fmt.Sprintf("%s  (%s)", cli.FormatMoney(res.OperationalCost), cli.FormatPercent(res.OperationalPct))},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    headline,
	}))

	staffRows := make([][]string, 0, len(res.Staffing)+2)
	for _, s := range res.Staffing {
		staffRows = append(staffRows, []string{
			s.Title,
			cli.FormatCount(s.Count),
			cli.FormatMoney(s.Cost),
			cli.FormatPercent(s.ShareOfTotal),
		})
	}
	staffRows = append(staffRows, []string{"---"})
	staffRows = append(staffRows, []string{
		"TOTAL",
		cli.FormatCount(res.TotalStaff),
		cli.FormatMoney(res.PersonnelCost),
		cli.FormatPercent(res.PersonnelPct),
	})
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Personnel",
		Headers: []string{"Role", "Staff", "Cost", "Share"},
		Rows:    staffRows,
	}))

	opRows := make([][]string, 0, len(res.Operational)+2)
	for _, o := range res.Operational {
		opRows = append(opRows, []string{
			o.Category,
			cli.FormatMoney(o.Cost),
			cli.FormatPercent(o.ShareOfTotal),
		})
	}
	opRows = append(opRows, []string{"---"})
	opRows = append(opRows, []string{
		"TOTAL",
		cli.FormatMoney(res.OperationalCost),
		cli.FormatPercent(res.OperationalPct),
	})
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Operational",
		Headers: []string{"Category", "Cost", "Share"},
		Rows:    opRows,
	}))
}
