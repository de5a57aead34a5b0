package cmd

import (
	"fmt"

	"agcost/internal/config"
	"agcost/internal/model"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration and effective rates",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Output]")
	fmt.Printf("    Path:   %s\n", cfg.Output.Path)
	fmt.Printf("    Format: %s\n", cfg.Output.Format)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	tables := config.DefaultRateTable().ApplyOverrides(cfg.Overrides)

	fmt.Println("  [Salaries]  (base x overhead)")
	for _, tier := range model.AllTiers {
		r := tables.Rates[tier]
		overridden := ""
		if _, ok := cfg.Overrides.Salaries[string(tier)]; ok {
			overridden = "  (overridden)"
		}
		fmt.Printf("    %-28s $%.0f x %.2f%s\n", r.Title, r.BaseSalary, r.Overhead, overridden)
	}
	fmt.Println()

	fmt.Println("  [Budgets]  (compute / research)")
	for _, name := range model.AllScenarios {
		ops := tables.Assumptions[name]
		fmt.Printf("    %-14s $%.0f / $%.0f\n", name.Title(), ops.ComputeBudget, ops.ResearchBudget)
	}
	fmt.Println()

	fmt.Println("  Run `agcost setup` to reconfigure.")
	return nil
}
