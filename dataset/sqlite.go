package dataset

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/pricer/internal/id"
)

// SQLite persists pricing grids keyed by run ID, so several generation
// runs can share one database file.
type SQLite struct {
	db    *sql.DB
	runID string
}

// RunInfo summarizes one stored generation run.
type RunInfo struct {
	RunID     string
	CreatedAt time.Time
	Points    int
}

// NewSQLite opens (or creates) the store at path and registers a new
// run. All records written through this handle belong to that run.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	runID := id.New()
	if _, err := db.Exec(
		`INSERT INTO runs (run_id, created_at) VALUES (?, ?)`,
		runID, time.Now().UTC(),
	); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db, runID: runID}, nil
}

// RunID returns the identifier of the run this handle writes to.
func (s *SQLite) RunID() string { return s.runID }

func (s *SQLite) Record(r Record) error {
	_, err := s.db.Exec(`
		INSERT INTO prices
		(run_id, spot, strike, maturity, rate, sigma, call, put)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.runID, r.S, r.K, r.T, r.R, r.Sigma, r.Call, r.Put,
	)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`UPDATE runs SET points = points + 1 WHERE run_id = ?`, s.runID)
	return err
}

// ListRun returns every record stored under runID, in insertion order.
func (s *SQLite) ListRun(runID string) ([]Record, error) {
	rows, err := s.db.Query(`
		SELECT spot, strike, maturity, rate, sigma, call, put
		FROM prices
		WHERE run_id = ?`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.S, &r.K, &r.T, &r.R, &r.Sigma, &r.Call, &r.Put); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Runs lists every generation run in the store, newest first.
func (s *SQLite) Runs() ([]RunInfo, error) {
	rows, err := s.db.Query(`
		SELECT run_id, created_at, points
		FROM runs
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunInfo
	for rows.Next() {
		var ri RunInfo
		if err := rows.Scan(&ri.RunID, &ri.CreatedAt, &ri.Points); err != nil {
			return nil, err
		}
		out = append(out, ri)
	}
	return out, rows.Err()
}

// GetRun returns the summary row for runID.
func (s *SQLite) GetRun(runID string) (RunInfo, error) {
	var ri RunInfo
	row := s.db.QueryRow(`
		SELECT run_id, created_at, points
		FROM runs
		WHERE run_id = ?`, runID)
	if err := row.Scan(&ri.RunID, &ri.CreatedAt, &ri.Points); err != nil {
		if err == sql.ErrNoRows {
			return RunInfo{}, fmt.Errorf("run %q not found", runID)
		}
		return RunInfo{}, err
	}
	return ri, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
