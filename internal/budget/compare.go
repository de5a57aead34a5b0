package budget

import "agcost/internal/model"

// Comparison holds per-metric columns across scenarios, always in
// severity order regardless of input order.
type Comparison struct {
	Scenarios       []model.ScenarioName
	TotalStaff      []int
	TotalCost       []float64
	PersonnelCost   []float64
	OperationalCost []float64
	CostPerEmployee []float64
}

// Compare builds a cross-scenario comparison from computed results.
func Compare(results []model.ScenarioResult) Comparison {
	ordered := make([]model.ScenarioResult, len(results))
	copy(ordered, results)
	SortByRank(ordered)

	c := Comparison{
		Scenarios:       make([]model.ScenarioName, 0, len(ordered)),
		TotalStaff:      make([]int, 0, len(ordered)),
		TotalCost:       make([]float64, 0, len(ordered)),
		PersonnelCost:   make([]float64, 0, len(ordered)),
		OperationalCost: make([]float64, 0, len(ordered)),
		CostPerEmployee: make([]float64, 0, len(ordered)),
	}

	for _, r := range ordered {
		c.Scenarios = append(c.Scenarios, r.Scenario)
		c.TotalStaff = append(c.TotalStaff, r.TotalStaff)
		c.TotalCost = append(c.TotalCost, r.TotalCost)
		c.PersonnelCost = append(c.PersonnelCost, r.PersonnelCost)
		c.OperationalCost = append(c.OperationalCost, r.OperationalCost)
		c.CostPerEmployee = append(c.CostPerEmployee, r.CostPerEmployee)
	}

	return c
}
