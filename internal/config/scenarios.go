package config

import "agcost/internal/model"

// DefaultScenarios holds the three built-in staffing scenarios.
// Headcounts are whole-agency full-time equivalents.
var DefaultScenarios = map[model.ScenarioName]model.ScenarioDefinition{
	model.ScenarioMinimal: {
		Name:        model.ScenarioMinimal,
		Description: "Small focused team for basic model evaluation and oversight",
		Headcount: map[model.RoleTier]int{
			model.TierExecutiveLeadership: 3,
			model.TierSeniorTechnical:     8,
			model.TierTechnicalStaff:      20,
			model.TierPolicyLegal:         8,
			model.TierComplianceEnforce:   6,
			model.TierOperationsAdmin:     5,
		},
	},
	model.ScenarioModerate: {
		Name:        model.ScenarioModerate,
		Description: "Medium agency with full evaluation, compliance, and enforcement",
		Headcount: map[model.RoleTier]int{
			model.TierExecutiveLeadership: 5,
			model.TierSeniorTechnical:     20,
			model.TierTechnicalStaff:      60,
			model.TierJuniorTechnical:     20,
			model.TierPolicyLegal:         20,
			model.TierComplianceEnforce:   15,
			model.TierOperationsAdmin:     10,
		},
	},
	model.ScenarioComprehensive: {
		Name:        model.ScenarioComprehensive,
		Description: "Full-service regulatory body with proactive monitoring and research",
		Headcount: map[model.RoleTier]int{
			model.TierExecutiveLeadership: 8,
			model.TierSeniorTechnical:     40,
			model.TierTechnicalStaff:      140,
			model.TierJuniorTechnical:     40,
			model.TierPolicyLegal:         35,
			model.TierComplianceEnforce:   25,
			model.TierOperationsAdmin:     20,
		},
	},
}

// Scenarios returns the built-in definitions in severity order, with
// headcount overrides from the user config applied.
func Scenarios(ov Overrides) []model.ScenarioDefinition {
	defs := make([]model.ScenarioDefinition, 0, len(model.AllScenarios))
	for _, name := range model.AllScenarios {
		def := DefaultScenarios[name]

		// Copy the headcount map before applying overrides so the
		// package defaults stay immutable.
		hc := make(map[model.RoleTier]int, len(def.Headcount))
		for k, v := range def.Headcount {
			hc[k] = v
		}
		if sc, ok := ov.Headcounts[string(name)]; ok {
			for tier, count := range sc {
				hc[model.RoleTier(tier)] = count
			}
		}
		def.Headcount = hc

		defs = append(defs, def)
	}
	return defs
}
