package store

import (
	"context"
	"fmt"

	"github.com/roach88/pgsolve/internal/game"
)

// EnsureRun inserts a runs row for runID if one does not already exist.
// Idempotent via ON CONFLICT DO NOTHING.
func (s *Store) EnsureRun(ctx context.Context, runID string, nVertices int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (run_id, n_vertices)
		VALUES (?, ?)
		ON CONFLICT(run_id) DO NOTHING
	`, runID, nVertices)
	if err != nil {
		return fmt.Errorf("ensure run: %w", err)
	}
	return nil
}

// RecordDecision persists one committed vertex decision for runID.
// Idempotent via ON CONFLICT(run_id, vertex) DO NOTHING — replaying the
// same solve against the same database is safe to re-run: the first
// write for a vertex wins and later attempts are silently ignored, same
// as the teacher's invocation/completion writes.
func (s *Store) RecordDecision(ctx context.Context, runID string, vertex int, winner game.Player, strategy int, seq int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO decisions (run_id, vertex, winner, strategy, seq)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(run_id, vertex) DO NOTHING
	`, runID, vertex, int(winner), strategy, seq)
	if err != nil {
		return fmt.Errorf("record decision: %w", err)
	}
	return nil
}
