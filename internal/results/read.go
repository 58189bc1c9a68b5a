package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNoRuns is returned when the log contains no runs.
var ErrNoRuns = errors.New("no runs recorded")

// LatestRun returns the most recently started run.
func (s *Store) LatestRun(ctx context.Context) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, mode, compare_mode, target, host, stage_id
		FROM runs
		ORDER BY started_at DESC, id DESC
		LIMIT 1
	`)
	return scanRun(row)
}

// GetRun returns the run with the given ID.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, mode, compare_mode, target, host, stage_id
		FROM runs
		WHERE id = ?
	`, id)
	return scanRun(row)
}

func scanRun(row *sql.Row) (*Run, error) {
	var run Run
	var startedAt string
	err := row.Scan(&run.ID, &startedAt, &run.Mode, &run.CompareMode,
		&run.Target, &run.Host, &run.StageID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRuns
	}
	if err != nil {
		return nil, fmt.Errorf("read run: %w", err)
	}

	run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		return nil, fmt.Errorf("read run: parse started_at: %w", err)
	}
	return &run, nil
}

// Summarize aggregates the outcomes recorded for a run.
func (s *Store) Summarize(ctx context.Context, runID string) (*Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT status, COUNT(*)
		FROM outcomes
		WHERE run_id = ?
		GROUP BY status
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("summarize run: %w", err)
	}
	defer rows.Close()

	summary := &Summary{RunID: runID}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("summarize run: %w", err)
		}
		switch Status(status) {
		case StatusOk:
			summary.Passed = count
		case StatusFailed:
			summary.Failed = count
		case StatusIgnored:
			summary.Ignored = count
		}
		summary.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("summarize run: %w", err)
	}
	return summary, nil
}

// Outcomes returns every outcome recorded for a run in insertion order.
func (s *Store) Outcomes(ctx context.Context, runID string) ([]Outcome, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, test, revision, status, duration_ms
		FROM outcomes
		WHERE run_id = ?
		ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("read outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []Outcome
	for rows.Next() {
		var o Outcome
		var status string
		var durationMillis int64
		if err := rows.Scan(&o.RunID, &o.Test, &o.Revision, &status, &durationMillis); err != nil {
			return nil, fmt.Errorf("read outcomes: %w", err)
		}
		o.Status = Status(status)
		o.Duration = time.Duration(durationMillis) * time.Millisecond
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read outcomes: %w", err)
	}
	return outcomes, nil
}
