// Package cmd implements the agcost CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"agcost/internal/budget"
	"agcost/internal/cli"
	"agcost/internal/config"
	"agcost/internal/export"
	"agcost/internal/model"
	"agcost/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagOut       string
	flagFormat    string
	flagQuiet     bool
	flagNoHistory bool
)

var rootCmd = &cobra.Command{
	Use:   "agcost",
	Short: "Agency budget scenario estimates",
	Long: "Compute annual budget estimates for a frontier AI safety regulatory agency\n" +
		"under three staffing scenarios: Minimal, Moderate, and Comprehensive.",
	RunE: runReport,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOut, "out", "o", "", "Export artifact path (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "Export format: json or yaml (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Skip recording this run in the history database")
}

// loadInputs resolves the user config and builds the effective rate
// tables and scenario definitions with overrides applied.
func loadInputs() (config.Config, config.RateTable, []model.ScenarioDefinition, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, config.RateTable{}, nil, err
	}

	tables := config.DefaultRateTable().ApplyOverrides(cfg.Overrides)
	defs := config.Scenarios(cfg.Overrides)
	return cfg, tables, defs, nil
}

// exportTarget resolves the artifact path and format: flags win over
// config, config over defaults.
func exportTarget(cfg config.Config) (string, string) {
	path := cfg.Output.Path
	if flagOut != "" {
		path = flagOut
	}
	format := cfg.Output.Format
	if flagFormat != "" {
		format = flagFormat
	}
	return path, format
}

// reportErrors prints every scenario failure and returns an error if
// any occurred, so the process exits non-zero.
func reportErrors(errs []budget.ScenarioError) error {
	for _, se := range errs {
		fmt.Fprintln(os.Stderr, cli.RenderError("error: "+se.Error()))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d scenario(s) failed validation", len(errs))
	}
	return nil
}

// runReport is the default command: compute all scenarios, print each
// summary plus the comparison, write the export artifact, and record
// the run.
func runReport(_ *cobra.Command, _ []string) error {
	cfg, tables, defs, err := loadInputs()
	if err != nil {
		return err
	}

	results, errs := budget.AggregateAll(defs, tables)

	for _, res := range results {
		printScenarioSummary(res)
	}
	if len(results) > 1 {
		printComparison(results)
	}

	if len(results) > 0 {
		path, format := exportTarget(cfg)
		doc := export.Build(results, defs, tables)
		if err := export.Write(doc, path, format); err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Printf("  Exported to %s\n\n", path)
		}

		if !flagNoHistory {
			recordHistory(results)
		}
	}

	return reportErrors(errs)
}

// recordHistory appends this run to the history database. Best-effort:
// a broken history store never fails the run.
func recordHistory(results []model.ScenarioResult) {
	h, err := store.Open(store.DefaultPath())
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  history unavailable: %v\n", err)
		}
		return
	}
	defer h.Close()

	if _, err := h.RecordRun(results, time.Now()); err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  could not record run: %v\n", err)
	}
}
