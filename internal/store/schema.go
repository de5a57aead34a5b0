package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    run_id               INTEGER PRIMARY KEY AUTOINCREMENT,
    ran_at               TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS run_results (
    run_id               INTEGER NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    scenario             TEXT NOT NULL,
    total_staff          INTEGER NOT NULL,
    personnel_cost       REAL NOT NULL,
    operational_cost     REAL NOT NULL,
    total_cost           REAL NOT NULL,
    cost_per_employee    REAL NOT NULL,
    personnel_pct        REAL NOT NULL,
    PRIMARY KEY (run_id, scenario)
);

CREATE INDEX IF NOT EXISTS idx_runs_ran_at ON runs(ran_at);
`
