package model

import "testing"

func TestScenarioRankOrdering(t *testing.T) {
	if !(ScenarioMinimal.Rank() < ScenarioModerate.Rank() &&
		ScenarioModerate.Rank() < ScenarioComprehensive.Rank()) {
		t.Errorf("ranks not strictly increasing: %d, %d, %d",
			ScenarioMinimal.Rank(), ScenarioModerate.Rank(), ScenarioComprehensive.Rank())
	}
	if got := ScenarioName("surprise").Rank(); got != 3 {
		t.Errorf("unknown scenario Rank() = %d, want 3", got)
	}
}

func TestScenarioTitle(t *testing.T) {
	tests := []struct {
		name ScenarioName
		want string
	}{
		{ScenarioMinimal, "Minimal"},
		{ScenarioModerate, "Moderate"},
		{ScenarioComprehensive, "Comprehensive"},
		{ScenarioName("custom"), "custom"},
	}
	for _, tt := range tests {
		if got := tt.name.Title(); got != tt.want {
			t.Errorf("%q.Title() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestTotalStaff(t *testing.T) {
	def := ScenarioDefinition{
		Headcount: map[RoleTier]int{
			TierSeniorTechnical: 8,
			TierTechnicalStaff:  20,
			TierOperationsAdmin: 5,
		},
	}
	if got := def.TotalStaff(); got != 33 {
		t.Errorf("TotalStaff() = %d, want 33", got)
	}

	empty := ScenarioDefinition{}
	if got := empty.TotalStaff(); got != 0 {
		t.Errorf("empty TotalStaff() = %d, want 0", got)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	res := ScenarioResult{
		Staffing: []StaffingLine{
			{Title: "Technical Staff", Cost: 2_860_000},
		},
		Operational: []OperationalLine{
			{Category: "Facilities", Cost: 600_000},
		},
	}

	got := res.CategoryBreakdown()
	if len(got) != 2 {
		t.Fatalf("len(CategoryBreakdown()) = %d, want 2", len(got))
	}
	if got["Technical Staff"] != 2_860_000 {
		t.Errorf("Technical Staff = %v, want 2860000", got["Technical Staff"])
	}
	if got["Facilities"] != 600_000 {
		t.Errorf("Facilities = %v, want 600000", got["Facilities"])
	}
}
