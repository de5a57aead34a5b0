package cmd

import (
	"fmt"

	"agcost/internal/budget"
	"agcost/internal/cli"
	"agcost/internal/model"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Cross-scenario comparison table",
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	_, tables, defs, err := loadInputs()
	if err != nil {
		return err
	}

	results, errs := budget.AggregateAll(defs, tables)
	if len(results) > 0 {
		printComparison(results)
	}
	return reportErrors(errs)
}

// printComparison renders the metric-by-scenario table. Columns are in
// fixed severity order: Minimal, Moderate, Comprehensive.
func printComparison(results []model.ScenarioResult) {
	c := budget.Compare(results)

	headers := make([]string, 0, len(c.Scenarios)+1)
	headers = append(headers, "Metric")
	for _, name := range c.Scenarios {
		headers = append(headers, name.Title())
	}

	moneyRow := func(label string, values []float64) []string {
		row := make([]string, 0, len(values)+1)
		row = append(row, label)
		for _, v := range values {
			row = append(row, cli.FormatMoney(v))
		}
		return row
	}

	staffRow := make([]string, 0, len(c.TotalStaff)+1)
	staffRow = append(staffRow, "Total Staff")
	for _, n := range c.TotalStaff {
		staffRow = append(staffRow, cli.FormatCount(n))
	}

	rows := [][]string{
		staffRow,
		moneyRow("Annual Budget", c.TotalCost),
		moneyRow("Personnel Costs", c.PersonnelCost),
		moneyRow("Operational Costs", c.OperationalCost),
		moneyRow("Cost per Employee", c.CostPerEmployee),
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SCENARIO COMPARISON"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: headers,
		Rows:    rows,
	}))
	fmt.Println()

	maxCost := 0.0
	for _, v := range c.TotalCost {
		if v > maxCost {
			maxCost = v
		}
	}
	for i, name := range c.Scenarios {
		fmt.Printf("  %-14s %s %s\n",
			name.Title(),
			cli.RenderHorizontalBar(c.TotalCost[i], maxCost, 40),
			cli.FormatCompactMoney(c.TotalCost[i]))
	}
	fmt.Println()
}
