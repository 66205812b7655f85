package store

import (
	"context"
	"fmt"

	"github.com/roach88/pgsolve/internal/game"
)

// Decision is one previously-committed vertex outcome, as loaded back
// from a checkpoint database for a resumed run.
type Decision struct {
	Vertex   int
	Winner   game.Player
	Strategy int
}

// LoadDecisions returns every decision recorded for runID, keyed by
// vertex, for a driver to seed a resumed Game with before it starts
// solving — vertices present in the returned map are skipped by the
// engine entirely.
func (s *Store) LoadDecisions(ctx context.Context, runID string) (map[int]Decision, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT vertex, winner, strategy FROM decisions WHERE run_id = ?
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("load decisions: %w", err)
	}
	defer rows.Close()

	out := make(map[int]Decision)
	for rows.Next() {
		var d Decision
		var winner int
		if err := rows.Scan(&d.Vertex, &winner, &d.Strategy); err != nil {
			return nil, fmt.Errorf("load decisions: scan: %w", err)
		}
		d.Winner = game.Player(winner)
		out[d.Vertex] = d
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load decisions: %w", err)
	}
	return out, nil
}
