package config

import (
	"testing"

	"agcost/internal/model"
)

func TestScenariosDefaults(t *testing.T) {
	defs := Scenarios(Overrides{})

	if len(defs) != 3 {
		t.Fatalf("Scenarios() returned %d definitions, want 3", len(defs))
	}

	wantOrder := []model.ScenarioName{
		model.ScenarioMinimal,
		model.ScenarioModerate,
		model.ScenarioComprehensive,
	}
	wantStaff := []int{50, 150, 308}

	for i, def := range defs {
		if def.Name != wantOrder[i] {
			t.Errorf("defs[%d].Name = %q, want %q", i, def.Name, wantOrder[i])
		}
		if got := def.TotalStaff(); got != wantStaff[i] {
			t.Errorf("%s TotalStaff() = %d, want %d", def.Name, got, wantStaff[i])
		}
		if def.Description == "" {
			t.Errorf("%s: empty description", def.Name)
		}
	}
}

func TestScenariosMinimalOmitsJuniorTier(t *testing.T) {
	defs := Scenarios(Overrides{})

	if _, ok := defs[0].Headcount[model.TierJuniorTechnical]; ok {
		t.Errorf("minimal scenario includes junior_technical, want absent")
	}
	for _, def := range defs[1:] {
		if _, ok := def.Headcount[model.TierJuniorTechnical]; !ok {
			t.Errorf("%s scenario missing junior_technical", def.Name)
		}
	}
}

func TestScenariosHeadcountOverrides(t *testing.T) {
	ov := Overrides{
		Headcounts: map[string]map[string]int{
			"minimal": {"technical_staff": 30},
		},
	}

	defs := Scenarios(ov)

	if got := defs[0].Headcount[model.TierTechnicalStaff]; got != 30 {
		t.Errorf("overridden headcount = %d, want 30", got)
	}
	if got := defs[0].TotalStaff(); got != 60 {
		t.Errorf("minimal TotalStaff() = %d, want 60", got)
	}

	// Package defaults must stay untouched.
	if got := DefaultScenarios[model.ScenarioMinimal].Headcount[model.TierTechnicalStaff]; got != 20 {
		t.Errorf("package default mutated: headcount = %d, want 20", got)
	}
	// Other scenarios untouched.
	if got := defs[1].TotalStaff(); got != 150 {
		t.Errorf("moderate TotalStaff() = %d, want 150", got)
	}
}
