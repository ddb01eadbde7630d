package db

import (
	"errors"
	"testing"
)

func TestRuns(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	first, err := db.CreateRun("out-a")
	if err != nil {
		t.Fatalf("CreateRun() failed: %v", err)
	}
	second, err := db.CreateRun("out-b")
	if err != nil {
		t.Fatalf("CreateRun() failed: %v", err)
	}

	stats := RunStats{Sources: 10, Found: 7, NotFound: 2, Failed: 1}
	if err := db.UpdateRunStats(first, stats); err != nil {
		t.Fatalf("UpdateRunStats() failed: %v", err)
	}

	run, err := db.GetRunByID(first)
	if err != nil {
		t.Fatalf("GetRunByID() failed: %v", err)
	}
	if run.SourceCount != 10 || run.FoundCount != 7 || run.NotFoundCount != 2 || run.FailedCount != 1 {
		t.Errorf("GetRunByID() counts = %+v", run)
	}
	if run.OutputDir != "out-a" {
		t.Errorf("OutputDir = %q, want out-a", run.OutputDir)
	}

	runs, err := db.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns() returned %d runs, want 2", len(runs))
	}
	if runs[0].RunID != second {
		t.Errorf("most recent run = %d, want %d", runs[0].RunID, second)
	}

	runs, _ = db.ListRuns(1)
	if len(runs) != 1 {
		t.Errorf("ListRuns(1) returned %d runs", len(runs))
	}
}

func TestGetRunByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.GetRunByID(42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetRunByID() error = %v, want ErrNotFound", err)
	}
}
