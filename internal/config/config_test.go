package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Output.Path != DefaultExportPath {
		t.Errorf("Output.Path = %q, want %q", cfg.Output.Path, DefaultExportPath)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want json", cfg.Output.Format)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Appearance.Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	raw := `
[output]
path = "out/budget.yaml"
format = "yaml"

[overrides]
facilities_per_employee = 14000.0

[overrides.salaries.senior_technical]
base_salary = 155000.0

[overrides.budgets.moderate]
compute_budget = 20000000.0

[overrides.headcounts.minimal]
technical_staff = 25
`
	if err := os.MkdirAll(filepath.Join(dir, "agcost"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "agcost", "config.toml"), []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Output.Path != "out/budget.yaml" {
		t.Errorf("Output.Path = %q, want out/budget.yaml", cfg.Output.Path)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %q, want yaml", cfg.Output.Format)
	}
	if cfg.Overrides.FacilitiesPerEmployee == nil || *cfg.Overrides.FacilitiesPerEmployee != 14_000 {
		t.Errorf("FacilitiesPerEmployee = %v, want 14000", cfg.Overrides.FacilitiesPerEmployee)
	}
	so := cfg.Overrides.Salaries["senior_technical"]
	if so.BaseSalary == nil || *so.BaseSalary != 155_000 {
		t.Errorf("senior_technical base_salary = %v, want 155000", so.BaseSalary)
	}
	bo := cfg.Overrides.Budgets["moderate"]
	if bo.ComputeBudget == nil || *bo.ComputeBudget != 20_000_000 {
		t.Errorf("moderate compute_budget = %v, want 20000000", bo.ComputeBudget)
	}
	if got := cfg.Overrides.Headcounts["minimal"]["technical_staff"]; got != 25 {
		t.Errorf("minimal technical_staff headcount = %d, want 25", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Output.Format = "yaml"
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Overrides.TrainingPerEmployee = floatPtr(6_000)

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save()")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if loaded.Output.Format != "yaml" {
		t.Errorf("Output.Format = %q, want yaml", loaded.Output.Format)
	}
	if loaded.Appearance.Theme != "tokyo-night" {
		t.Errorf("Appearance.Theme = %q, want tokyo-night", loaded.Appearance.Theme)
	}
	if loaded.Overrides.TrainingPerEmployee == nil || *loaded.Overrides.TrainingPerEmployee != 6_000 {
		t.Errorf("TrainingPerEmployee = %v, want 6000", loaded.Overrides.TrainingPerEmployee)
	}
}
