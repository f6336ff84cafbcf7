package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Run is the summary of one finished game or simulation.
type Run struct {
	ID              int64
	Mode            string
	Seed            int64
	LevelReached    int
	BricksDestroyed int
	BallsLost       int
	Ticks           int64
	Cleared         bool // every level destroyed
	CreatedAt       time.Time
}

// SaveRun records a run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (mode, seed, level_reached, bricks_destroyed, balls_lost, ticks, cleared)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Mode, r.Seed, r.LevelReached, r.BricksDestroyed, r.BallsLost, r.Ticks, r.Cleared,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const runColumns = `id, mode, seed, level_reached, bricks_destroyed, balls_lost, ticks, cleared, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var r Run
	var createdAt any
	err := row.Scan(&r.ID, &r.Mode, &r.Seed, &r.LevelReached, &r.BricksDestroyed,
		&r.BallsLost, &r.Ticks, &r.Cleared, &createdAt)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// RunByID retrieves a single run.
func (s *Store) RunByID(id int64) (Run, error) {
	r, err := scanRun(s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return r, fmt.Errorf("storage: run %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return r, nil
}

// RecentRuns retrieves the most recent runs, optionally filtered by mode.
func (s *Store) RecentRuns(mode string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + runColumns + ` FROM runs`
	args := []any{}
	if mode != "" {
		query += ` WHERE mode = ?`
		args = append(args, mode)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}
