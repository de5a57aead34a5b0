package cmd

import (
	"fmt"

	"agcost/internal/cli"
	"agcost/internal/store"

	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent budget runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	h, err := store.Open(store.DefaultPath())
	if err != nil {
		return err
	}
	defer h.Close()

	runs, err := h.RecentRuns(flagHistoryLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("\n  No recorded runs yet. Run `agcost` first.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("RUN HISTORY"))
	fmt.Println()

	total, err := h.RunCount()
	if err != nil {
		return err
	}

	for _, run := range runs {
		rows := make([][]string, 0, len(run.Results))
		for _, r := range run.Results {
			rows = append(rows, []string{
				r.Scenario.Title(),
				cli.FormatCount(r.TotalStaff),
				cli.FormatMoney(r.TotalCost),
				cli.FormatMoney(r.CostPerEmployee),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("Run #%d  %s", run.ID, run.RanAt.Local().Format("2006-01-02 15:04")),
			Headers: []string{"Scenario", "Staff", "Budget", "Cost/Employee"},
			Rows:    rows,
		}))
	}

	if total > len(runs) {
		fmt.Printf("  Showing %d of %d runs (use --limit to see more).\n", len(runs), total)
	}

	return nil
}
