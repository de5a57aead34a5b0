// Package model defines domain types for agency budget scenarios.
package model

// RoleTier identifies a staff category in the rate table.
type RoleTier string

// Recognized role tiers. Scenario definitions may only reference these.
const (
	TierExecutiveLeadership RoleTier = "executive_leadership"
	TierSeniorTechnical     RoleTier = "senior_technical"
	TierTechnicalStaff      RoleTier = "technical_staff"
	TierJuniorTechnical     RoleTier = "junior_technical"
	TierPolicyLegal         RoleTier = "policy_legal"
	TierComplianceEnforce   RoleTier = "compliance_enforcement"
	TierOperationsAdmin     RoleTier = "operations_admin"
)

// AllTiers lists the recognized tiers in display order.
var AllTiers = []RoleTier{
	TierExecutiveLeadership,
	TierSeniorTechnical,
	TierTechnicalStaff,
	TierJuniorTechnical,
	TierPolicyLegal,
	TierComplianceEnforce,
	TierOperationsAdmin,
}

// RoleRate holds compensation assumptions for one role tier.
type RoleRate struct {
	Tier        RoleTier
	Title       string  // display name, e.g. "Senior Technical Staff"
	BaseSalary  float64 // annual base salary, USD
	Overhead    float64 // benefits/taxes multiplier, 1.30 across all tiers
	Description string
}

// ScenarioName identifies one of the built-in staffing scenarios.
type ScenarioName string

const (
	ScenarioMinimal       ScenarioName = "minimal"
	ScenarioModerate      ScenarioName = "moderate"
	ScenarioComprehensive ScenarioName = "comprehensive"
)

// AllScenarios lists the built-in scenarios in severity order.
var AllScenarios = []ScenarioName{
	ScenarioMinimal,
	ScenarioModerate,
	ScenarioComprehensive,
}

// Rank returns the fixed severity rank used for ordering output.
// Unknown scenarios sort last.
func (n ScenarioName) Rank() int {
	switch n {
	case ScenarioMinimal:
		return 0
	case ScenarioModerate:
		return 1
	case ScenarioComprehensive:
		return 2
	}
	return 3
}

// Title returns the capitalized display name.
func (n ScenarioName) Title() string {
	switch n {
	case ScenarioMinimal:
		return "Minimal"
	case ScenarioModerate:
		return "Moderate"
	case ScenarioComprehensive:
		return "Comprehensive"
	}
	return string(n)
}

// ScenarioDefinition maps role tiers to full-time headcounts.
type ScenarioDefinition struct {
	Name        ScenarioName
	Description string
	Headcount   map[RoleTier]int
}

// TotalStaff sums all headcounts in the definition.
func (d ScenarioDefinition) TotalStaff() int {
	total := 0
	for _, n := range d.Headcount {
		total += n
	}
	return total
}

// OperationalAssumptions holds the non-personnel spending model for
// one scenario. Per-employee rates apply uniformly regardless of role.
type OperationalAssumptions struct {
	ComputeBudget         float64 // scenario-specific, not per-employee
	FacilitiesPerEmployee float64
	TechnologyPerEmployee float64
	TrainingPerEmployee   float64
	ResearchBudget        float64 // scenario-specific partnerships/contracts
}

// StaffingLine is one role tier's contribution to personnel cost.
type StaffingLine struct {
	Tier         RoleTier
	Title        string
	Count        int
	BaseSalary   float64
	Cost         float64 // count * salary * overhead
	ShareOfTotal float64 // percent of total scenario cost
	Description  string
}

// OperationalLine is one category's contribution to operational cost.
type OperationalLine struct {
	Category     string
	Cost         float64
	ShareOfTotal float64
	Description  string
}

// ScenarioResult is the fully-computed budget for one scenario.
// PersonnelCost + OperationalCost == TotalCost exactly; PersonnelPct
// and OperationalPct always sum to 100 because the latter is derived.
type ScenarioResult struct {
	Scenario        ScenarioName
	Description     string
	TotalStaff      int
	PersonnelCost   float64
	OperationalCost float64
	TotalCost       float64
	CostPerEmployee float64
	PersonnelPct    float64
	OperationalPct  float64

	Staffing    []StaffingLine
	Operational []OperationalLine
}

// CategoryBreakdown returns all cost categories (staffing tiers and
// operational categories) keyed by stable display name.
func (r ScenarioResult) CategoryBreakdown() map[string]float64 {
	out := make(map[string]float64, len(r.Staffing)+len(r.Operational))
	for _, s := range r.Staffing {
		out[s.Title] = s.Cost
	}
	for _, o := range r.Operational {
		out[o.Category] = o.Cost
	}
	return out
}
