// Package store provides a SQLite-backed history of past budget runs.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"agcost/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// History records one row per scenario result for each successful run.
type History struct {
	db *sql.DB
}

// DefaultPath returns the history database location under the XDG data
// directory.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "agcost", "history.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "agcost", "history.db")
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// RecordRun stores one run's scenario results atomically and returns
// the new run ID.
func (h *History) RecordRun(results []model.ScenarioResult, ranAt time.Time) (int64, error) {
	tx, err := h.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec("INSERT INTO runs (ran_at) VALUES (?)",
		ranAt.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, r := range results {
		_, err = tx.Exec(`INSERT INTO run_results
			(run_id, scenario, total_staff, personnel_cost, operational_cost,
			 total_cost, cost_per_employee, personnel_pct)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, string(r.Scenario), r.TotalStaff, r.PersonnelCost, r.OperationalCost,
			r.TotalCost, r.CostPerEmployee, r.PersonnelPct,
		)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

// Run is one recorded run with its scenario rows.
type Run struct {
	ID      int64
	RanAt   time.Time
	Results []RunResult
}

// RunResult is one stored scenario row.
type RunResult struct {
	Scenario        model.ScenarioName
	TotalStaff      int
	PersonnelCost   float64
	OperationalCost float64
	TotalCost       float64
	CostPerEmployee float64
	PersonnelPct    float64
}

// RecentRuns returns up to limit runs, most recent first, each with
// its scenario rows in severity order.
func (h *History) RecentRuns(limit int) ([]Run, error) {
	rows, err := h.db.Query(
		"SELECT run_id, ran_at FROM runs ORDER BY run_id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	idx := make(map[int64]int)
	for rows.Next() {
		var r Run
		var ranAt string
		if err := rows.Scan(&r.ID, &ranAt); err != nil {
			return nil, err
		}
		r.RanAt, _ = time.Parse(time.RFC3339, ranAt)
		idx[r.ID] = len(runs)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}

	resultRows, err := h.db.Query(`SELECT
		run_id, scenario, total_staff, personnel_cost, operational_cost,
		total_cost, cost_per_employee, personnel_pct
		FROM run_results ORDER BY run_id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resultRows.Close() }()

	for resultRows.Next() {
		var runID int64
		var scenario string
		var rr RunResult
		err := resultRows.Scan(&runID, &scenario, &rr.TotalStaff,
			&rr.PersonnelCost, &rr.OperationalCost, &rr.TotalCost,
			&rr.CostPerEmployee, &rr.PersonnelPct)
		if err != nil {
			return nil, err
		}
		rr.Scenario = model.ScenarioName(scenario)
		if i, ok := idx[runID]; ok {
			runs[i].Results = append(runs[i].Results, rr)
		}
	}
	if err := resultRows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		sortResults(runs[i].Results)
	}
	return runs, nil
}

func sortResults(results []RunResult) {
	// Insertion sort: three scenarios at most per run.
	for i := 1; i < len(results); i++ {
		for j := i; j > 0 && results[j].Scenario.Rank() < results[j-1].Scenario.Rank(); j-- {
			results[j], results[j-1] = results[j-1], results[j]
		}
	}
}

// RunCount returns the number of recorded runs.
func (h *History) RunCount() (int, error) {
	var count int
	err := h.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count)
	return count, err
}
