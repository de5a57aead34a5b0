package config

import (
	"testing"

	"agcost/internal/model"
)

func floatPtr(v float64) *float64 { return &v }

func TestDefaultRateTableCoversAllTiers(t *testing.T) {
	tables := DefaultRateTable()

	for _, tier := range model.AllTiers {
		r, ok := tables.Rates[tier]
		if !ok {
			t.Fatalf("no rate entry for tier %q", tier)
		}
		if r.BaseSalary <= 0 {
			t.Errorf("tier %q: BaseSalary = %v, want > 0", tier, r.BaseSalary)
		}
		if r.Overhead != OverheadMultiplier {
			t.Errorf("tier %q: Overhead = %v, want %v", tier, r.Overhead, OverheadMultiplier)
		}
		if r.Title == "" {
			t.Errorf("tier %q: empty Title", tier)
		}
	}

	for _, name := range model.AllScenarios {
		if _, ok := tables.Assumptions[name]; !ok {
			t.Fatalf("no operational assumptions for scenario %q", name)
		}
	}
}

func TestLookupRate(t *testing.T) {
	r, ok := LookupRate(DefaultRates, model.TierPolicyLegal)
	if !ok {
		t.Fatal("LookupRate(policy_legal) ok = false, want true")
	}
	if r.BaseSalary != 115_000 {
		t.Errorf("BaseSalary = %v, want 115000", r.BaseSalary)
	}

	if _, ok := LookupRate(DefaultRates, model.RoleTier("astronaut")); ok {
		t.Error("LookupRate(astronaut) ok = true, want false")
	}
}

func TestDefaultRateTableIsACopy(t *testing.T) {
	tables := DefaultRateTable()

	r := tables.Rates[model.TierTechnicalStaff]
	r.BaseSalary = 1
	tables.Rates[model.TierTechnicalStaff] = r

	if got := DefaultRates[model.TierTechnicalStaff].BaseSalary; got != 110_000 {
		t.Errorf("package default mutated: BaseSalary = %v, want 110000", got)
	}
}

func TestApplyOverridesSalary(t *testing.T) {
	ov := Overrides{
		Salaries: map[string]SalaryOverride{
			"senior_technical": {BaseSalary: floatPtr(160_000)},
		},
	}

	tables := DefaultRateTable().ApplyOverrides(ov)

	if got := tables.Rates[model.TierSeniorTechnical].BaseSalary; got != 160_000 {
		t.Errorf("overridden BaseSalary = %v, want 160000", got)
	}
	// Overhead untouched by a salary-only override.
	if got := tables.Rates[model.TierSeniorTechnical].Overhead; got != OverheadMultiplier {
		t.Errorf("Overhead = %v, want %v", got, OverheadMultiplier)
	}
	// Other tiers untouched.
	if got := tables.Rates[model.TierTechnicalStaff].BaseSalary; got != 110_000 {
		t.Errorf("unrelated tier BaseSalary = %v, want 110000", got)
	}
}

func TestApplyOverridesBudgetsAndRates(t *testing.T) {
	ov := Overrides{
		FacilitiesPerEmployee: floatPtr(15_000),
		Budgets: map[string]BudgetOverride{
			"comprehensive": {ComputeBudget: floatPtr(40_000_000)},
		},
	}

	tables := DefaultRateTable().ApplyOverrides(ov)

	if got := tables.Assumptions[model.ScenarioComprehensive].ComputeBudget; got != 40_000_000 {
		t.Errorf("comprehensive ComputeBudget = %v, want 40000000", got)
	}
	// Lump override leaves the other scenarios alone.
	if got := tables.Assumptions[model.ScenarioMinimal].ComputeBudget; got != 8_000_000 {
		t.Errorf("minimal ComputeBudget = %v, want 8000000", got)
	}
	// Per-employee rates apply uniformly.
	for _, name := range model.AllScenarios {
		if got := tables.Assumptions[name].FacilitiesPerEmployee; got != 15_000 {
			t.Errorf("%s FacilitiesPerEmployee = %v, want 15000", name, got)
		}
	}
}

func TestApplyOverridesEmptyIsIdentity(t *testing.T) {
	base := DefaultRateTable()
	tables := base.ApplyOverrides(Overrides{})

	for tier, want := range base.Rates {
		if got := tables.Rates[tier]; got != want {
			t.Errorf("tier %q changed: got %+v, want %+v", tier, got, want)
		}
	}
	for name, want := range base.Assumptions {
		if got := tables.Assumptions[name]; got != want {
			t.Errorf("scenario %q changed: got %+v, want %+v", name, got, want)
		}
	}
}
