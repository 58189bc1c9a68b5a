package results

import (
	"context"
	"fmt"
	"time"
)

// WriteRun inserts a run record.
// ON CONFLICT DO NOTHING makes re-recording the same run a no-op.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, started_at, mode, compare_mode, target, host, stage_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.Mode,
		run.CompareMode,
		run.Target,
		run.Host,
		run.StageID,
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}

// WriteOutcome inserts one test outcome for a run.
// The test name is NFC-normalized before it becomes a log key. Each
// (run, test, revision) records exactly one outcome; duplicate writes are
// silently ignored for idempotency.
func (s *Store) WriteOutcome(ctx context.Context, o Outcome) error {
	if !ValidStatus(o.Status) {
		return fmt.Errorf("write outcome: invalid status %q", o.Status)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO outcomes
		(run_id, test, revision, status, duration_ms)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		o.RunID,
		canonicalName(o.Test),
		o.Revision,
		string(o.Status),
		o.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("write outcome: %w", err)
	}
	return nil
}
