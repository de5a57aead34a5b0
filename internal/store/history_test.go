package store

import (
	"path/filepath"
	"testing"
	"time"

	"agcost/internal/model"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()

	h, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func sampleResults() []model.ScenarioResult {
	return []model.ScenarioResult{
		{
			Scenario:        model.ScenarioMinimal,
			TotalStaff:      50,
			PersonnelCost:   7_500_000,
			OperationalCost: 12_750_000,
			TotalCost:       20_250_000,
			CostPerEmployee: 405_000,
			PersonnelPct:    37.0,
		},
		{
			Scenario:        model.ScenarioComprehensive,
			TotalStaff:      308,
			PersonnelCost:   44_000_000,
			OperationalCost: 47_200_000,
			TotalCost:       91_200_000,
			CostPerEmployee: 296_103,
			PersonnelPct:    48.2,
		},
	}
}

func TestRecordAndReadBack(t *testing.T) {
	h := openTestHistory(t)

	ranAt := time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)
	runID, err := h.RecordRun(sampleResults(), ranAt)
	if err != nil {
		t.Fatalf("RecordRun() error: %v", err)
	}
	if runID == 0 {
		t.Fatal("RecordRun() returned run ID 0")
	}

	runs, err := h.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("RecentRuns() returned %d runs, want 1", len(runs))
	}

	run := runs[0]
	if run.ID != runID {
		t.Errorf("run ID = %d, want %d", run.ID, runID)
	}
	if !run.RanAt.Equal(ranAt) {
		t.Errorf("RanAt = %v, want %v", run.RanAt, ranAt)
	}
	if len(run.Results) != 2 {
		t.Fatalf("run has %d results, want 2", len(run.Results))
	}

	// Severity order, not insertion order.
	if run.Results[0].Scenario != model.ScenarioMinimal {
		t.Errorf("Results[0].Scenario = %q, want minimal", run.Results[0].Scenario)
	}
	if run.Results[1].Scenario != model.ScenarioComprehensive {
		t.Errorf("Results[1].Scenario = %q, want comprehensive", run.Results[1].Scenario)
	}

	got := run.Results[1]
	if got.TotalStaff != 308 {
		t.Errorf("TotalStaff = %d, want 308", got.TotalStaff)
	}
	if got.TotalCost != 91_200_000 {
		t.Errorf("TotalCost = %v, want 91200000", got.TotalCost)
	}
	if got.PersonnelPct != 48.2 {
		t.Errorf("PersonnelPct = %v, want 48.2", got.PersonnelPct)
	}
}

func TestRecentRunsOrderAndLimit(t *testing.T) {
	h := openTestHistory(t)

	base := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	var ids []int64
	for i := 0; i < 3; i++ {
		id, err := h.RecordRun(sampleResults(), base.Add(time.Duration(i)*time.Hour))
		if err != nil {
			t.Fatalf("RecordRun() error: %v", err)
		}
		ids = append(ids, id)
	}

	runs, err := h.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("RecentRuns(2) returned %d runs, want 2", len(runs))
	}

	// Most recent first.
	if runs[0].ID != ids[2] || runs[1].ID != ids[1] {
		t.Errorf("run IDs = %d, %d, want %d, %d", runs[0].ID, runs[1].ID, ids[2], ids[1])
	}

	count, err := h.RunCount()
	if err != nil {
		t.Fatalf("RunCount() error: %v", err)
	}
	if count != 3 {
		t.Errorf("RunCount() = %d, want 3", count)
	}
}

func TestRecentRunsEmpty(t *testing.T) {
	h := openTestHistory(t)

	runs, err := h.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() error: %v", err)
	}
	if runs != nil {
		t.Errorf("RecentRuns() = %v, want nil", runs)
	}

	count, err := h.RunCount()
	if err != nil {
		t.Fatalf("RunCount() error: %v", err)
	}
	if count != 0 {
		t.Errorf("RunCount() = %d, want 0", count)
	}
}
