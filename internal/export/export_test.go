package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"agcost/internal/budget"
	"agcost/internal/config"
)

func buildTestDoc(t *testing.T) Document {
	t.Helper()

	defs := config.Scenarios(config.Overrides{})
	tables := config.DefaultRateTable()
	results, errs := budget.AggregateAll(defs, tables)
	if len(errs) != 0 {
		t.Fatalf("AggregateAll() errors: %v", errs)
	}
	return Build(results, defs, tables)
}

func TestBuildIncludesInputs(t *testing.T) {
	doc := buildTestDoc(t)

	if doc.GeneratedAt == "" {
		t.Error("GeneratedAt is empty")
	}
	if doc.OverheadMultiplier != config.OverheadMultiplier {
		t.Errorf("OverheadMultiplier = %v, want %v", doc.OverheadMultiplier, config.OverheadMultiplier)
	}
	if len(doc.RoleRates) != 7 {
		t.Errorf("len(RoleRates) = %d, want 7", len(doc.RoleRates))
	}
	if len(doc.Scenarios) != 3 {
		t.Fatalf("len(Scenarios) = %d, want 3", len(doc.Scenarios))
	}

	// Keyed by scenario name, consumable without positional knowledge.
	mod, ok := doc.Scenarios["moderate"]
	if !ok {
		t.Fatalf("no scenario keyed %q, have %v", "moderate", keys(doc.Scenarios))
	}
	if mod.TotalStaff != 150 {
		t.Errorf("moderate TotalStaff = %d, want 150", mod.TotalStaff)
	}
	if mod.Description == "" {
		t.Error("moderate Description is empty")
	}
	if mod.Assumptions.ComputeBudget != 16_000_000 {
		t.Errorf("moderate ComputeBudget = %v, want 16000000", mod.Assumptions.ComputeBudget)
	}
	if got := mod.Headcount["technical_staff"]; got != 60 {
		t.Errorf("moderate technical_staff headcount = %d, want 60", got)
	}
	if mod.TotalCost != mod.PersonnelCost+mod.OperationalCost {
		t.Errorf("TotalCost = %v, want personnel+operational = %v",
			mod.TotalCost, mod.PersonnelCost+mod.OperationalCost)
	}
	if got := mod.PersonnelPct + mod.OperationalPct; got != 100 {
		t.Errorf("pct sum = %v, want exactly 100", got)
	}
	if len(mod.StaffingBreakdown) != 7 {
		t.Errorf("len(StaffingBreakdown) = %d, want 7", len(mod.StaffingBreakdown))
	}
	if len(mod.OperationalBreakdown) != 5 {
		t.Errorf("len(OperationalBreakdown) = %d, want 5", len(mod.OperationalBreakdown))
	}
}

func keys(m map[string]ScenarioDoc) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestMarshalJSONRoundTrip(t *testing.T) {
	doc := buildTestDoc(t)

	data, err := Marshal(doc, FormatJSON)
	if err != nil {
		t.Fatalf("Marshal(json) error: %v", err)
	}

	var decoded Document
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON artifact: %v", err)
	}
	if decoded.Scenarios["comprehensive"].TotalStaff != 308 {
		t.Errorf("decoded comprehensive TotalStaff = %d, want 308",
			decoded.Scenarios["comprehensive"].TotalStaff)
	}
}

func TestMarshalYAMLRoundTrip(t *testing.T) {
	doc := buildTestDoc(t)

	data, err := Marshal(doc, FormatYAML)
	if err != nil {
		t.Fatalf("Marshal(yaml) error: %v", err)
	}

	var decoded Document
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid YAML artifact: %v", err)
	}
	if decoded.Scenarios["minimal"].TotalStaff != 50 {
		t.Errorf("decoded minimal TotalStaff = %d, want 50",
			decoded.Scenarios["minimal"].TotalStaff)
	}
}

func TestMarshalUnknownFormat(t *testing.T) {
	if _, err := Marshal(Document{}, "xml"); err == nil {
		t.Fatal("Marshal(xml) error = nil, want error")
	}
}

func TestWriteOverwrites(t *testing.T) {
	doc := buildTestDoc(t)
	path := filepath.Join(t.TempDir(), "budget_analysis.json")

	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Write(doc, path, FormatJSON); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Document
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("artifact not valid JSON after overwrite: %v", err)
	}
}
