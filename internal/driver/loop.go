package driver

import (
	"context"
	"fmt"

	"github.com/roach88/pgsolve/internal/engine"
	"github.com/roach88/pgsolve/internal/game"
)

// SolveLoop runs the two pre-reductions once, then solveLoop() to
// completion: resync disabled from solved, optionally restrict to a
// bottom SCC, run the engine on whatever vertex set results, commit its
// verdicts, flush, and repeat until every vertex is solved. ctx is
// checked once per round for cancellation — never inside the engine or
// flush, per the concurrency model — mirrored on the teacher engine's
// context-aware Run loop.
//
// The pre-reductions are unconditional, not gated by Flags.AutoReduce:
// that flag is surfaced for config-file parity with the source solver's
// removeLoops/removeWCWC switches but is reserved and never consumed
// here, matching the source spec's explicit note that it is not
// consumed by the engine.
func (d *Driver) SolveLoop(ctx context.Context) error {
	if err := d.SolveSelfloops(); err != nil {
		return err
	}
	if err := d.SolveTrivialCycles(); err != nil {
		return err
	}

	for !d.g.AllSolved() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := d.runRound(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) runRound(ctx context.Context) error {
	d.rounds++
	round := d.rounds

	d.resyncDisabled()

	active := d.ActiveVertices()
	if len(active) == 0 {
		return nil
	}

	if d.flags.BottomSCC {
		if scc, ok := d.bottomSCC(active); ok {
			active = scc
		}
	}

	d.notifyRoundStart(round, active)

	precisionBudget := d.flags.InitialPrecision
	if precisionBudget <= 0 {
		precisionBudget = ceilLog2(len(active))
	}
	precision := engine.Precision{precisionBudget, precisionBudget}

	mode := engine.ModeReducedFirst
	if d.flags.ClassicalZielonka {
		mode = engine.ModeClassical
	}

	mprio := -1
	if !d.flags.QuickPriority {
		mprio = d.g.MaxPriority(active)
	}

	cat := d.cat.New()
	d.eng.SeedCategory(active, cat)
	d.eng.Run(active, cat, precision, mode, mprio)

	for _, v := range active {
		strat := d.eng.Strategy(v)
		var err error
		if strat >= 0 {
			err = d.Solve(v, d.g.Owner[v], strat)
		} else {
			err = d.Solve(v, d.g.Owner[v].Other(), game.NoStrategy)
		}
		if err != nil {
			return fmt.Errorf("commit vertex %d: %w", v, err)
		}
	}

	if err := d.Flush(); err != nil {
		return err
	}

	d.notifyRoundEnd(round)
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return nil
}

// ceilLog2 returns ceil(log2(n)), the initial precision budget per
// player the spec assigns every fresh solveLoop round: the smallest
// exponent p such that 2^p >= n.
func ceilLog2(n int) int {
	p := 0
	for (1 << p) < n {
		p++
	}
	return p
}
