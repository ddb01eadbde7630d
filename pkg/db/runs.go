package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Run represents one build invocation
type Run struct {
	RunID         int64
	CreatedAt     time.Time
	SourceCount   int
	FoundCount    int
	NotFoundCount int
	FailedCount   int
	OutputDir     string
}

// RunStats are the counters filled in once a run finishes.
type RunStats struct {
	Sources  int
	Found    int
	NotFound int
	Failed   int
}

// CreateRun inserts a new run and returns its run_id.
func (db *DB) CreateRun(outputDir string) (int64, error) {
	result, err := db.Exec("INSERT INTO runs (output_dir) VALUES (?)", outputDir)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// UpdateRunStats stores the final counters for a run.
func (db *DB) UpdateRunStats(runID int64, stats RunStats) error {
	_, err := db.Exec(`
		UPDATE runs
		SET source_count = ?, found_count = ?, not_found_count = ?, failed_count = ?
		WHERE run_id = ?
	`, stats.Sources, stats.Found, stats.NotFound, stats.Failed, runID)
	if err != nil {
		return fmt.Errorf("failed to update run stats: %w", err)
	}
	return nil
}

const runColumns = `run_id, created_at, source_count, found_count, not_found_count, failed_count, output_dir`

func scanRun(row scanner) (Run, error) {
	var r Run
	err := row.Scan(&r.RunID, &r.CreatedAt, &r.SourceCount, &r.FoundCount, &r.NotFoundCount, &r.FailedCount, &r.OutputDir)
	return r, err
}

// GetRunByID retrieves a run, or ErrNotFound.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	r, err := scanRun(db.QueryRow("SELECT "+runColumns+" FROM runs WHERE run_id = ?", runID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d: %w", runID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &r, nil
}

// ListRuns retrieves runs ordered by most recent first
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := "SELECT " + runColumns + " FROM runs ORDER BY created_at DESC, run_id DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}
