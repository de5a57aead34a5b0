package cmd

import (
	"fmt"

	"agcost/internal/config"
	"agcost/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	themeName := cfg.Appearance.Theme
	format := cfg.Output.Format
	path := cfg.Output.Path

	themeOptions := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOptions = append(themeOptions, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Description("Used by the TUI dashboard.").
				Options(themeOptions...).
				Value(&themeName),
			huh.NewSelect[string]().
				Title("Export format").
				Options(
					huh.NewOption("JSON", "json"),
					huh.NewOption("YAML", "yaml"),
				).
				Value(&format),
			huh.NewInput().
				Title("Export path").
				Description("Written to the working directory on every run.").
				Placeholder(config.DefaultExportPath).
				Value(&path),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Appearance.Theme = themeName
	cfg.Output.Format = format
	if path != "" {
		cfg.Output.Path = path
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `agcost setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
