// Package budget turns scenario definitions and rate tables into
// fully-computed scenario results.
package budget

import (
	"errors"
	"fmt"
	"sort"

	"agcost/internal/config"
	"agcost/internal/model"
)

// Operational category names. Stable: the export consumer extracts
// breakdown entries by name.
const (
	CategoryCompute    = "Compute Infrastructure"
	CategoryFacilities = "Facilities"
	CategoryTechnology = "Technology"
	CategoryTraining   = "Training"
	CategoryResearch   = "Research Partnerships"
)

// Aggregate computes the budget for one scenario. Inputs are validated
// before any arithmetic; on failure the zero result and a ScenarioError
// wrapping the specific cause are returned.
func Aggregate(
	def model.ScenarioDefinition,
	rates map[model.RoleTier]model.RoleRate,
	ops model.OperationalAssumptions,
) (model.ScenarioResult, error) {
	if err := validate(def, rates, ops); err != nil {
		return model.ScenarioResult{}, ScenarioError{Scenario: def.Name, Err: err}
	}

	totalStaff := def.TotalStaff()

	// Personnel: headcount x base salary x overhead per tier.
	// Iterate AllTiers so breakdown order is deterministic.
	var personnel float64
	staffing := make([]model.StaffingLine, 0, len(def.Headcount))
	for _, tier := range model.AllTiers {
		count, ok := def.Headcount[tier]
		if !ok {
			continue
		}
		rate := rates[tier]
		cost := float64(count) * rate.BaseSalary * rate.Overhead
		personnel += cost
		staffing = append(staffing, model.StaffingLine{
			Tier:        tier,
			Title:       rate.Title,
			Count:       count,
			BaseSalary:  rate.BaseSalary,
			Cost:        cost,
			Description: rate.Description,
		})
	}

	// Operational: scenario lump budgets plus uniform per-employee rates.
	staff := float64(totalStaff)
	operational := []model.OperationalLine{
		{
			Category:    CategoryCompute,
			Cost:        ops.ComputeBudget,
			Description: "GPU clusters for model evaluation, cloud services, data storage",
		},
		{
			Category:    CategoryFacilities,
			Cost:        ops.FacilitiesPerEmployee * staff,
			Description: "Office space, security, utilities",
		},
		{
			Category:    CategoryTechnology,
			Cost:        ops.TechnologyPerEmployee * staff,
			Description: "Software licenses, development tools, security tooling",
		},
		{
			Category:    CategoryTraining,
			Cost:        ops.TrainingPerEmployee * staff,
			Description: "Technical training, conferences, certifications",
		},
		{
			Category:    CategoryResearch,
			Cost:        ops.ResearchBudget,
			Description: "University partnerships, consulting, third-party audits",
		},
	}

	var opTotal float64
	for _, line := range operational {
		opTotal += line.Cost
	}

	total := personnel + opTotal

	// Derive the operational share from the personnel share so the two
	// always sum to exactly 100.
	var personnelPct float64
	if total > 0 {
		personnelPct = personnel / total * 100
	}

	for i := range staffing {
		if total > 0 {
			staffing[i].ShareOfTotal = staffing[i].Cost / total * 100
		}
	}
	for i := range operational {
		if total > 0 {
			operational[i].ShareOfTotal = operational[i].Cost / total * 100
		}
	}

	return model.ScenarioResult{
		Scenario:        def.Name,
		Description:     def.Description,
		TotalStaff:      totalStaff,
		PersonnelCost:   personnel,
		OperationalCost: opTotal,
		TotalCost:       total,
		CostPerEmployee: total / staff,
		PersonnelPct:    personnelPct,
		OperationalPct:  100 - personnelPct,
		Staffing:        staffing,
		Operational:     operational,
	}, nil
}

// validate checks the scenario definition and rates before any cost
// math runs. The first problem found wins.
func validate(
	def model.ScenarioDefinition,
	rates map[model.RoleTier]model.RoleRate,
	ops model.OperationalAssumptions,
) error {
	for _, tier := range sortedTiers(def.Headcount) {
		count := def.Headcount[tier]
		rate, ok := config.LookupRate(rates, tier)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownRoleTier, tier)
		}
		if count < 0 {
			return fmt.Errorf("%w: headcount for %q is %d", ErrInvalidRate, tier, count)
		}
		if rate.BaseSalary < 0 {
			return fmt.Errorf("%w: base salary for %q is %.f", ErrInvalidRate, tier, rate.BaseSalary)
		}
		if rate.Overhead < 0 {
			return fmt.Errorf("%w: overhead for %q is %.2f", ErrInvalidRate, tier, rate.Overhead)
		}
	}

	if ops.ComputeBudget < 0 {
		return fmt.Errorf("%w: compute budget is %.f", ErrInvalidRate, ops.ComputeBudget)
	}
	if ops.FacilitiesPerEmployee < 0 {
		return fmt.Errorf("%w: facilities rate is %.f", ErrInvalidRate, ops.FacilitiesPerEmployee)
	}
	if ops.TechnologyPerEmployee < 0 {
		return fmt.Errorf("%w: technology rate is %.f", ErrInvalidRate, ops.TechnologyPerEmployee)
	}
	if ops.TrainingPerEmployee < 0 {
		return fmt.Errorf("%w: training rate is %.f", ErrInvalidRate, ops.TrainingPerEmployee)
	}
	if ops.ResearchBudget < 0 {
		return fmt.Errorf("%w: research budget is %.f", ErrInvalidRate, ops.ResearchBudget)
	}

	if def.TotalStaff() == 0 {
		return ErrZeroStaff
	}

	return nil
}

// sortedTiers returns map keys in a stable order so validation errors
// are deterministic.
func sortedTiers(hc map[model.RoleTier]int) []model.RoleTier {
	tiers := make([]model.RoleTier, 0, len(hc))
	for t := range hc {
		tiers = append(tiers, t)
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i] < tiers[j] })
	return tiers
}

// AggregateAll computes every scenario independently. A failure in one
// scenario does not prevent the others from being computed; results
// come back in severity order alongside any per-scenario errors.
func AggregateAll(
	defs []model.ScenarioDefinition,
	tables config.RateTable,
) ([]model.ScenarioResult, []ScenarioError) {
	var results []model.ScenarioResult
	var errs []ScenarioError

	for _, def := range defs {
		ops, ok := tables.Assumptions[def.Name]
		if !ok {
			errs = append(errs, ScenarioError{
				Scenario: def.Name,
				Err:      fmt.Errorf("no operational assumptions for scenario %q", def.Name),
			})
			continue
		}

		result, err := Aggregate(def, tables.Rates, ops)
		if err != nil {
			var se ScenarioError
			if !errors.As(err, &se) {
				se = ScenarioError{Scenario: def.Name, Err: err}
			}
			errs = append(errs, se)
			continue
		}
		results = append(results, result)
	}

	SortByRank(results)
	return results, errs
}

// SortByRank orders results by fixed scenario severity, not insertion
// order: Minimal, Moderate, Comprehensive.
func SortByRank(results []model.ScenarioResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Scenario.Rank() < results[j].Scenario.Rank()
	})
}
