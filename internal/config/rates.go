package config

import "agcost/internal/model"

// OverheadMultiplier is the benefits/taxes factor applied to every
// base salary. Constant across all tiers in the current model.
const OverheadMultiplier = 1.30

// DefaultRates maps role tiers to their compensation assumptions.
// Salary figures follow NY state government compensation schedules.
var DefaultRates = map[model.RoleTier]model.RoleRate{
	model.TierExecutiveLeadership: {
		Tier:        model.TierExecutiveLeadership,
		Title:       "Executive Leadership",
		BaseSalary:  175_000,
		Overhead:    OverheadMultiplier,
		Description: "Commissioner, Deputy Commissioners, Chief of Staff",
	},
	model.TierSeniorTechnical: {
		Tier:        model.TierSeniorTechnical,
		Title:       "Senior Technical Staff",
		BaseSalary:  145_000,
		Overhead:    OverheadMultiplier,
		Description: "Senior AI Safety Researchers, Principal Engineers",
	},
	model.TierTechnicalStaff: {
		Tier:        model.TierTechnicalStaff,
		Title:       "Technical Staff",
		BaseSalary:  110_000,
		Overhead:    OverheadMultiplier,
		Description: "AI Safety Researchers, ML Engineers, Model Evaluators",
	},
	model.TierJuniorTechnical: {
		Tier:        model.TierJuniorTechnical,
		Title:       "Junior Technical Staff",
		BaseSalary:  85_000,
		Overhead:    OverheadMultiplier,
		Description: "Junior Researchers, Technical Analysts, Research Associates",
	},
	model.TierPolicyLegal: {
		Tier:        model.TierPolicyLegal,
		Title:       "Policy & Legal",
		BaseSalary:  115_000,
		Overhead:    OverheadMultiplier,
		Description: "Policy Analysts, Legal Counsel, Regulatory Affairs",
	},
	model.TierComplianceEnforce: {
		Tier:        model.TierComplianceEnforce,
		Title:       "Compliance & Enforcement",
		BaseSalary:  95_000,
		Overhead:    OverheadMultiplier,
		Description: "Compliance Officers, Enforcement Investigators",
	},
	model.TierOperationsAdmin: {
		Tier:        model.TierOperationsAdmin,
		Title:       "Operations & Administration",
		BaseSalary:  70_000,
		Overhead:    OverheadMultiplier,
		Description: "Administrative Support, HR, Finance, IT",
	},
}

// Per-employee operational rates, USD annually. The facilities figure
// is the average NYC office cost per employee.
const (
	FacilitiesRatePerEmployee = 12_000.0
	TechnologyRatePerEmployee = 8_000.0
	TrainingRatePerEmployee   = 5_000.0
)

// DefaultAssumptions maps each scenario to its operational spending
// model. Compute and research budgets scale with scenario severity;
// per-employee rates are uniform.
var DefaultAssumptions = map[model.ScenarioName]model.OperationalAssumptions{
	model.ScenarioMinimal: {
		ComputeBudget:         8_000_000,
		FacilitiesPerEmployee: FacilitiesRatePerEmployee,
		TechnologyPerEmployee: TechnologyRatePerEmployee,
		TrainingPerEmployee:   TrainingRatePerEmployee,
		ResearchBudget:        3_500_000,
	},
	model.ScenarioModerate: {
		ComputeBudget:         16_000_000,
		FacilitiesPerEmployee: FacilitiesRatePerEmployee,
		TechnologyPerEmployee: TechnologyRatePerEmployee,
		TrainingPerEmployee:   TrainingRatePerEmployee,
		ResearchBudget:        5_000_000,
	},
	model.ScenarioComprehensive: {
		ComputeBudget:         32_000_000,
		FacilitiesPerEmployee: FacilitiesRatePerEmployee,
		TechnologyPerEmployee: TechnologyRatePerEmployee,
		TrainingPerEmployee:   TrainingRatePerEmployee,
		ResearchBudget:        7_500_000,
	},
}

// LookupRate returns the rate entry for a role tier.
// Returns a zero rate and false if the tier is unknown.
func LookupRate(rates map[model.RoleTier]model.RoleRate, tier model.RoleTier) (model.RoleRate, bool) {
	r, ok := rates[tier]
	return r, ok
}

// RateTable bundles everything the aggregator needs: compensation
// rates plus per-scenario operational assumptions. Constructed fresh
// on each run so tests can inject alternates without touching the
// package-level defaults.
type RateTable struct {
	Rates       map[model.RoleTier]model.RoleRate
	Assumptions map[model.ScenarioName]model.OperationalAssumptions
}

// DefaultRateTable returns a copy of the built-in tables.
func DefaultRateTable() RateTable {
	rates := make(map[model.RoleTier]model.RoleRate, len(DefaultRates))
	for k, v := range DefaultRates {
		rates[k] = v
	}
	assumptions := make(map[model.ScenarioName]model.OperationalAssumptions, len(DefaultAssumptions))
	for k, v := range DefaultAssumptions {
		assumptions[k] = v
	}
	return RateTable{Rates: rates, Assumptions: assumptions}
}

// ApplyOverrides returns a rate table with user config overrides
// applied on top of t. Nil pointer fields leave defaults untouched.
func (t RateTable) ApplyOverrides(ov Overrides) RateTable {
	out := RateTable{
		Rates:       make(map[model.RoleTier]model.RoleRate, len(t.Rates)),
		Assumptions: make(map[model.ScenarioName]model.OperationalAssumptions, len(t.Assumptions)),
	}
	for k, v := range t.Rates {
		if so, ok := ov.Salaries[string(k)]; ok {
			if so.BaseSalary != nil {
				v.BaseSalary = *so.BaseSalary
			}
			if so.Overhead != nil {
				v.Overhead = *so.Overhead
			}
		}
		out.Rates[k] = v
	}
	for k, v := range t.Assumptions {
		if bo, ok := ov.Budgets[string(k)]; ok {
			if bo.ComputeBudget != nil {
				v.ComputeBudget = *bo.ComputeBudget
			}
			if bo.ResearchBudget != nil {
				v.ResearchBudget = *bo.ResearchBudget
			}
		}
		if ov.FacilitiesPerEmployee != nil {
			v.FacilitiesPerEmployee = *ov.FacilitiesPerEmployee
		}
		if ov.TechnologyPerEmployee != nil {
			v.TechnologyPerEmployee = *ov.TechnologyPerEmployee
		}
		if ov.TrainingPerEmployee != nil {
			v.TrainingPerEmployee = *ov.TrainingPerEmployee
		}
		out.Assumptions[k] = v
	}
	return out
}
