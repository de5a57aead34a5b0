package cmd

import (
	"fmt"

	"agcost/internal/budget"
	"agcost/internal/export"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the budget analysis artifact without printing tables",
	Long: "Compute all scenarios and write the structured export artifact\n" +
		"(JSON by default, YAML with --format yaml) for downstream viewers.",
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, tables, defs, err := loadInputs()
	if err != nil {
		return err
	}

	results, errs := budget.AggregateAll(defs, tables)
	if len(results) > 0 {
		path, format := exportTarget(cfg)
		doc := export.Build(results, defs, tables)
		if err := export.Write(doc, path, format); err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Printf("  Budget analysis exported to %s\n", path)
		}
	}
	return reportErrors(errs)
}
