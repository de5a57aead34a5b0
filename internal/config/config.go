// Package config holds the agcost rate tables, scenario definitions,
// and the user configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all agcost configuration.
type Config struct {
	Output     OutputConfig     `toml:"output"`
	Appearance AppearanceConfig `toml:"appearance"`
	Overrides  Overrides        `toml:"overrides"`
}

// OutputConfig holds export artifact settings.
type OutputConfig struct {
	// Path of the export artifact, relative to the working directory
	// unless absolute. Defaults to budget_analysis.json.
	Path   string `toml:"path,omitempty"`
	Format string `toml:"format,omitempty"` // "json" or "yaml"
}

// AppearanceConfig holds theme settings for the TUI.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// Overrides allows user-defined rates and headcounts on top of the
// built-in tables. Nil fields keep the defaults.
type Overrides struct {
	FacilitiesPerEmployee *float64 `toml:"facilities_per_employee,omitempty"`
	TechnologyPerEmployee *float64 `toml:"technology_per_employee,omitempty"`
	TrainingPerEmployee   *float64 `toml:"training_per_employee,omitempty"`

	Salaries   map[string]SalaryOverride `toml:"salaries,omitempty"`   // keyed by role tier
	Budgets    map[string]BudgetOverride `toml:"budgets,omitempty"`    // keyed by scenario
	Headcounts map[string]map[string]int `toml:"headcounts,omitempty"` // scenario -> tier -> count
}

// SalaryOverride holds per-tier compensation overrides.
type SalaryOverride struct {
	BaseSalary *float64 `toml:"base_salary,omitempty"`
	Overhead   *float64 `toml:"overhead,omitempty"`
}

// BudgetOverride holds per-scenario lump budget overrides.
type BudgetOverride struct {
	ComputeBudget  *float64 `toml:"compute_budget,omitempty"`
	ResearchBudget *float64 `toml:"research_budget,omitempty"`
}

// DefaultExportPath is the artifact written on every successful run.
const DefaultExportPath = "budget_analysis.json"

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Path:   DefaultExportPath,
			Format: "json",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "agcost")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "agcost")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Output.Path == "" {
		cfg.Output.Path = DefaultExportPath
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "json"
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
