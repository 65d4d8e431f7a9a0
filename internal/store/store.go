// Package store provides SQLite-backed persistence for plan runs.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fentz26/gridplan/internal/models"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store provides access to the gridplan SQLite database.
type Store struct {
	db *sql.DB
}

// New creates a new Store and runs migrations.
func New(dbPath string) (*Store, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	// Open with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// migrate runs idempotent schema migrations.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS plan_runs (
		id TEXT PRIMARY KEY,
		source_path TEXT NOT NULL,
		crew_size INTEGER NOT NULL,
		building_count INTEGER NOT NULL,
		segment_count INTEGER NOT NULL,
		total_cost REAL NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS plan_entries (
		run_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		building_id TEXT NOT NULL,
		phase INTEGER NOT NULL,
		segment_count INTEGER NOT NULL,
		workers_total INTEGER NOT NULL,
		duration_h REAL NOT NULL,
		cost_euros REAL NOT NULL,
		max_houses INTEGER NOT NULL,
		hospital_ok INTEGER,
		PRIMARY KEY (run_id, position),
		FOREIGN KEY (run_id) REFERENCES plan_runs(id)
	);

	CREATE INDEX IF NOT EXISTS idx_plan_entries_run_id ON plan_entries(run_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveRun persists a planning run with its ordered entries.
func (s *Store) SaveRun(sourcePath string, crewSize int, entries []models.PlanEntry) (*models.PlanRun, error) {
	run := &models.PlanRun{
		ID:            uuid.New().String(),
		SourcePath:    sourcePath,
		CrewSize:      crewSize,
		BuildingCount: len(entries),
		CreatedAt:     time.Now().UTC(),
	}
	for _, e := range entries {
		run.SegmentCount += e.SegmentCount
		run.TotalCost += e.CostEuros
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO plan_runs (id, source_path, crew_size, building_count, segment_count, total_cost, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.SourcePath, run.CrewSize, run.BuildingCount, run.SegmentCount, run.TotalCost, run.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	for i, e := range entries {
		var hospitalOK sql.NullBool
		if e.HospitalOK != nil {
			hospitalOK = sql.NullBool{Bool: *e.HospitalOK, Valid: true}
		}
		_, err = tx.Exec(
			`INSERT INTO plan_entries (run_id, position, building_id, phase, segment_count, workers_total, duration_h, cost_euros, max_houses, hospital_ok)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID, i, e.BuildingID, e.Phase, e.SegmentCount, e.WorkersTotal, e.DurationH, e.CostEuros, e.MaxHouses, hospitalOK,
		)
		if err != nil {
			return nil, fmt.Errorf("insert entry %s: %w", e.BuildingID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return run, nil
}

// GetRun returns a run by id.
func (s *Store) GetRun(id string) (*models.PlanRun, error) {
	row := s.db.QueryRow(
		`SELECT id, source_path, crew_size, building_count, segment_count, total_cost, created_at
		 FROM plan_runs WHERE id = ?`, id,
	)
	return scanRun(row)
}

// LatestRun returns the most recently saved run, or nil if none exist.
func (s *Store) LatestRun() (*models.PlanRun, error) {
	row := s.db.QueryRow(
		`SELECT id, source_path, crew_size, building_count, segment_count, total_cost, created_at
		 FROM plan_runs ORDER BY created_at DESC, id DESC LIMIT 1`,
	)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return run, err
}

// ListRuns returns all runs, newest first.
func (s *Store) ListRuns() ([]*models.PlanRun, error) {
	rows, err := s.db.Query(
		`SELECT id, source_path, crew_size, building_count, segment_count, total_cost, created_at
		 FROM plan_runs ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.PlanRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetEntries returns a run's plan entries in repair order.
func (s *Store) GetEntries(runID string) ([]models.PlanEntry, error) {
	rows, err := s.db.Query(
		`SELECT building_id, phase, segment_count, workers_total, duration_h, cost_euros, max_houses, hospital_ok
		 FROM plan_entries WHERE run_id = ? ORDER BY position`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("get entries: %w", err)
	}
	defer rows.Close()

	var entries []models.PlanEntry
	for rows.Next() {
		var e models.PlanEntry
		var hospitalOK sql.NullBool
		err := rows.Scan(&e.BuildingID, &e.Phase, &e.SegmentCount, &e.WorkersTotal, &e.DurationH, &e.CostEuros, &e.MaxHouses, &hospitalOK)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if hospitalOK.Valid {
			ok := hospitalOK.Bool
			e.HospitalOK = &ok
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (*models.PlanRun, error) {
	var run models.PlanRun
	err := row.Scan(&run.ID, &run.SourcePath, &run.CrewSize, &run.BuildingCount, &run.SegmentCount, &run.TotalCost, &run.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &run, nil
}
