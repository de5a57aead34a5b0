// Package export serializes computed scenario results together with
// the rate table and assumption inputs that produced them, so a
// downstream viewer can reproduce every number independently.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"agcost/internal/config"
	"agcost/internal/model"
)

// Supported artifact formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Document is the self-describing export artifact. Every field is
// keyed; consumers extract by name, never by position.
type Document struct {
	GeneratedAt        string                 `json:"generated_at" yaml:"generated_at"`
	OverheadMultiplier float64                `json:"overhead_multiplier" yaml:"overhead_multiplier"`
	RoleRates          []RoleRateDoc          `json:"role_rates" yaml:"role_rates"`
	Scenarios          map[string]ScenarioDoc `json:"scenarios" yaml:"scenarios"`
}

// RoleRateDoc mirrors one rate table entry.
type RoleRateDoc struct {
	Tier               string  `json:"tier" yaml:"tier"`
	Title              string  `json:"title" yaml:"title"`
	AnnualBaseSalary   float64 `json:"annual_base_salary" yaml:"annual_base_salary"`
	OverheadMultiplier float64 `json:"overhead_multiplier" yaml:"overhead_multiplier"`
	Description        string  `json:"description" yaml:"description"`
}

// AssumptionsDoc mirrors the operational assumptions for one scenario.
type AssumptionsDoc struct {
	ComputeBudget             float64 `json:"compute_budget" yaml:"compute_budget"`
	FacilitiesRatePerEmployee float64 `json:"facilities_rate_per_employee" yaml:"facilities_rate_per_employee"`
	TechnologyRatePerEmployee float64 `json:"technology_rate_per_employee" yaml:"technology_rate_per_employee"`
	TrainingRatePerEmployee   float64 `json:"training_rate_per_employee" yaml:"training_rate_per_employee"`
	ResearchPartnershipBudget float64 `json:"research_partnership_budget" yaml:"research_partnership_budget"`
}

// BreakdownDoc is one cost line in a staffing or operational breakdown.
type BreakdownDoc struct {
	Category     string  `json:"category" yaml:"category"`
	Count        int     `json:"count,omitempty" yaml:"count,omitempty"`
	Cost         float64 `json:"cost" yaml:"cost"`
	ShareOfTotal float64 `json:"share_of_total" yaml:"share_of_total"`
	Description  string  `json:"description" yaml:"description"`
}

// ScenarioDoc is one computed scenario with its inputs.
type ScenarioDoc struct {
	Scenario             string             `json:"scenario" yaml:"scenario"`
	Description          string             `json:"description" yaml:"description"`
	TotalStaff           int                `json:"total_staff" yaml:"total_staff"`
	PersonnelCost        float64            `json:"personnel_cost" yaml:"personnel_cost"`
	OperationalCost      float64            `json:"operational_cost" yaml:"operational_cost"`
	TotalCost            float64            `json:"total_cost" yaml:"total_cost"`
	CostPerEmployee      float64            `json:"cost_per_employee" yaml:"cost_per_employee"`
	PersonnelPct         float64            `json:"personnel_pct" yaml:"personnel_pct"`
	OperationalPct       float64            `json:"operational_pct" yaml:"operational_pct"`
	Headcount            map[string]int     `json:"headcount_by_role" yaml:"headcount_by_role"`
	Assumptions          AssumptionsDoc     `json:"operational_assumptions" yaml:"operational_assumptions"`
	StaffingBreakdown    []BreakdownDoc     `json:"staffing_breakdown" yaml:"staffing_breakdown"`
	OperationalBreakdown []BreakdownDoc     `json:"operational_breakdown" yaml:"operational_breakdown"`
	CategoryBreakdown    map[string]float64 `json:"category_breakdown" yaml:"category_breakdown"`
}

// Build assembles the export document from results and the tables that
// produced them. Unrounded values go into the artifact; rounding is a
// display concern only.
func Build(
	results []model.ScenarioResult,
	defs []model.ScenarioDefinition,
	tables config.RateTable,
) Document {
	defsByName := make(map[model.ScenarioName]model.ScenarioDefinition, len(defs))
	for _, d := range defs {
		defsByName[d.Name] = d
	}

	rates := make([]RoleRateDoc, 0, len(model.AllTiers))
	for _, tier := range model.AllTiers {
		r, ok := tables.Rates[tier]
		if !ok {
			continue
		}
		rates = append(rates, RoleRateDoc{
			Tier:               string(r.Tier),
			Title:              r.Title,
			AnnualBaseSalary:   r.BaseSalary,
			OverheadMultiplier: r.Overhead,
			Description:        r.Description,
		})
	}

	scenarios := make(map[string]ScenarioDoc, len(results))
	for _, res := range results {
		def := defsByName[res.Scenario]
		ops := tables.Assumptions[res.Scenario]

		headcount := make(map[string]int, len(def.Headcount))
		for tier, count := range def.Headcount {
			headcount[string(tier)] = count
		}

		staffing := make([]BreakdownDoc, 0, len(res.Staffing))
		for _, s := range res.Staffing {
			staffing = append(staffing, BreakdownDoc{
				Category:     s.Title,
				Count:        s.Count,
				Cost:         s.Cost,
				ShareOfTotal: s.ShareOfTotal,
				Description:  s.Description,
			})
		}

		operational := make([]BreakdownDoc, 0, len(res.Operational))
		for _, o := range res.Operational {
			operational = append(operational, BreakdownDoc{
				Category:     o.Category,
				Cost:         o.Cost,
				ShareOfTotal: o.ShareOfTotal,
				Description:  o.Description,
			})
		}

		scenarios[string(res.Scenario)] = ScenarioDoc{
			Scenario:        res.Scenario.Title(),
			Description:     res.Description,
			TotalStaff:      res.TotalStaff,
			PersonnelCost:   res.PersonnelCost,
			OperationalCost: res.OperationalCost,
			TotalCost:       res.TotalCost,
			CostPerEmployee: res.CostPerEmployee,
			PersonnelPct:    res.PersonnelPct,
			OperationalPct:  res.OperationalPct,
			Headcount:       headcount,
			Assumptions: AssumptionsDoc{
				ComputeBudget:             ops.ComputeBudget,
				FacilitiesRatePerEmployee: ops.FacilitiesPerEmployee,
				TechnologyRatePerEmployee: ops.TechnologyPerEmployee,
				TrainingRatePerEmployee:   ops.TrainingPerEmployee,
				ResearchPartnershipBudget: ops.ResearchBudget,
			},
			StaffingBreakdown:    staffing,
			OperationalBreakdown: operational,
			CategoryBreakdown:    res.CategoryBreakdown(),
		}
	}

	return Document{
		GeneratedAt:        time.Now().UTC().Format(time.RFC3339),
		OverheadMultiplier: config.OverheadMultiplier,
		RoleRates:          rates,
		Scenarios:          scenarios,
	}
}

// Marshal encodes the document in the given format.
func Marshal(doc Document, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		return yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// Write serializes the document and writes it to path, overwriting any
// prior artifact.
func Write(doc Document, path, format string) error {
	data, err := Marshal(doc, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
