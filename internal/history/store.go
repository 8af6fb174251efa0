// apps/go-solver/internal/history/store.go
//
// Outcome log of finished solver sessions.
// Rows are written once a session reaches a terminal state and are only
// read back for statistics; a session is never resumed from history.

package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Result is one finished session.
type Result struct {
	ID         string    `json:"id"`
	Opener     string    `json:"opener"`
	Answer     string    `json:"answer,omitempty"` // known only for refereed games
	Outcome    string    `json:"outcome"`          // "solved" | "exhausted"
	Rounds     int       `json:"rounds"`
	Remaining  int       `json:"remaining"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Summary aggregates every recorded session.
type Summary struct {
	Total       int     `json:"total"`
	Solved      int     `json:"solved"`
	Exhausted   int     `json:"exhausted"`
	AvgRounds   float64 `json:"avgRounds"` // over solved sessions
	BestOpener  string  `json:"bestOpener,omitempty"`
	BestOpenerN int     `json:"bestOpenerSolved,omitempty"`
}

// timeLayout keeps finished_at sortable as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

type Store struct{ db *sql.DB }

// Open opens (creating if needed) the history database at path and applies
// migrations.
func Open(path string) (*Store, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate history: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Record inserts r; a duplicate ID is ignored.
func (s *Store) Record(ctx context.Context, r Result) error {
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO sessions (id, opener, answer, outcome, rounds, remaining, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Opener, r.Answer, r.Outcome, r.Rounds, r.Remaining, r.FinishedAt.UTC().Format(timeLayout),
	)
	return err
}

// Summary computes totals over all recorded sessions.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	var sum Summary
	var avg sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(1),
               COALESCE(SUM(outcome = 'solved'), 0),
               COALESCE(SUM(outcome = 'exhausted'), 0),
               AVG(CASE WHEN outcome = 'solved' THEN rounds END)
        FROM sessions`,
	).Scan(&sum.Total, &sum.Solved, &sum.Exhausted, &avg)
	if err != nil {
		return sum, err
	}
	sum.AvgRounds = avg.Float64

	err = s.db.QueryRowContext(ctx, `
        SELECT opener, COUNT(1) AS n
        FROM sessions
        WHERE outcome = 'solved'
        GROUP BY opener
        ORDER BY n DESC, opener ASC
        LIMIT 1`,
	).Scan(&sum.BestOpener, &sum.BestOpenerN)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return sum, err
	}
	return sum, nil
}

// Recent returns the latest sessions, newest first. Default limit is 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, opener, answer, outcome, rounds, remaining, finished_at
        FROM sessions
        ORDER BY finished_at DESC, id ASC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Result, 0, limit)
	for rows.Next() {
		var r Result
		var finished string
		if err := rows.Scan(&r.ID, &r.Opener, &r.Answer, &r.Outcome, &r.Rounds, &r.Remaining, &finished); err != nil {
			return nil, err
		}
		t, err := time.Parse(timeLayout, finished)
		if err != nil {
			return nil, fmt.Errorf("session %s: finished_at: %w", r.ID, err)
		}
		r.FinishedAt = t
		out = append(out, r)
	}
	return out, rows.Err()
}
