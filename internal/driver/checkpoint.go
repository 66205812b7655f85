package driver

import (
	"context"
	"log/slog"

	"github.com/roach88/pgsolve/internal/game"
	"github.com/roach88/pgsolve/internal/store"
)

// checkpointObserver mirrors every committed decision into a checkpoint
// store, keyed by the driver's RunID. It is registered as an ordinary
// Observer (§4.A's ambient addition) so Game and Driver stay free of
// any awareness that persistence is happening.
type checkpointObserver struct {
	ctx   context.Context
	store *store.Store
	runID string
	log   *slog.Logger
	seq   int
}

func newCheckpointObserver(ctx context.Context, st *store.Store, runID string, log *slog.Logger) *checkpointObserver {
	return &checkpointObserver{ctx: ctx, store: st, runID: runID, log: log}
}

func (c *checkpointObserver) OnSolve(v int, winner game.Player, strategy int) {
	c.seq++
	if err := c.store.RecordDecision(c.ctx, c.runID, v, winner, strategy, c.seq); err != nil {
		c.log.Error("checkpoint write failed", "vertex", v, "error", err)
	}
}

func (c *checkpointObserver) OnRoundStart(round int, active []int) {}
func (c *checkpointObserver) OnRoundEnd(round int)                 {}

// WithCheckpointStore registers a checkpoint store the driver mirrors
// every commit into, under ctx. EnsureRun is called immediately so the
// run row exists even if the solve finds nothing to commit (e.g. every
// vertex was already resumed from a prior run).
func WithCheckpointStore(ctx context.Context, st *store.Store) Option {
	return func(d *Driver) {
		d.cpStore = st
		d.cpCtx = ctx
	}
}

// WithFlags installs the solver's behavioural flags. Defaults to the
// zero Flags (precision-parameterised, no quick-priority, no
// auto-reduction).
func WithFlags(f Flags) Option {
	return func(d *Driver) { d.flags = f }
}

// ResumeFromCheckpoint loads every decision previously recorded for
// runID and seeds g with them via MarkSolved, returning the vertices
// that were resumed. Call before constructing a Driver for g, passing
// the same game to both ResumeFromCheckpoint and New — resumed vertices
// are marked solved but not yet disabled/flushed, so the driver must
// still run at least one SolveLoop pass (its first flush will drain
// them) even when every vertex resumes.
func ResumeFromCheckpoint(ctx context.Context, st *store.Store, runID string, g *game.Game) ([]int, error) {
	decisions, err := st.LoadDecisions(ctx, runID)
	if err != nil {
		return nil, err
	}
	resumed := make([]int, 0, len(decisions))
	for v, dec := range decisions {
		if err := g.MarkSolved(v, dec.Winner, dec.Strategy); err != nil {
			return nil, err
		}
		resumed = append(resumed, v)
	}
	return resumed, nil
}
