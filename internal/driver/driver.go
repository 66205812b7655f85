// Package driver owns everything outside a single engine.Run call: the
// disabled bitset and todo queue described in the spec's data model, the
// solveLoop/flush/pre-reduction operations built on top of them, and the
// observer hooks used for checkpointing and trace capture. driver never
// reaches into engine's scratch arrays directly — it only calls Run and
// reads back the strategy it produced for the vertices it asked about.
package driver

import (
	"context"
	"log/slog"

	"github.com/roach88/pgsolve/internal/engine"
	"github.com/roach88/pgsolve/internal/game"
	"github.com/roach88/pgsolve/internal/store"
)

// Driver holds the per-solve mutable state the spec's data model assigns
// to the driver rather than to Game: which vertices are disabled (solved
// and already committed out of the active set), the outcount scratch
// array flush uses to count down an unsolved vertex's live out-edges,
// and the todo queue of solved vertices still waiting to be flushed.
//
// A Driver is single-threaded: the spec places the engine and driver on
// one logical thread per solve (§5), so todo is a plain slice rather
// than the teacher's channel-backed concurrent queue.
type Driver struct {
	g   *game.Game
	eng *engine.Engine
	cat *engine.CategoryAllocator
	log *slog.Logger

	disabled []bool
	outcount []int
	todo     []int

	flags Flags

	observers []Observer
	cpStore   *store.Store
	cpCtx     context.Context

	runID  string
	runGen RunIDGenerator

	rounds int
}

// Option configures a Driver at construction time.
type Option func(*Driver)

// WithLogger installs a structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) { d.log = l }
}

// WithEngine installs a pre-constructed engine, e.g. one built with a
// memoisation store via engine.WithMemoStore. Without this option the
// driver builds an unmemoised engine of its own.
func WithEngine(e *engine.Engine, cat *engine.CategoryAllocator) Option {
	return func(d *Driver) {
		d.eng = e
		d.cat = cat
	}
}

// WithObserver registers an Observer to receive solve/round callbacks.
func WithObserver(o Observer) Option {
	return func(d *Driver) { d.observers = append(d.observers, o) }
}

// WithRunIDGenerator installs the generator used to stamp the RunID
// returned by RunID(). Defaults to UUIDv7Generator.
func WithRunIDGenerator(g RunIDGenerator) Option {
	return func(d *Driver) { d.runGen = g }
}

// New allocates a Driver bound to g. outcount is seeded from g's current
// out-edge counts — this is the "live out-edges" cardinality flush
// decrements, so it must be computed before any pre-reduction removes
// edges (self-loop removal keeps outcount in sync explicitly, see
// SolveSelfloops).
func New(g *game.Game, opts ...Option) *Driver {
	d := &Driver{
		g:        g,
		log:      slog.Default(),
		disabled: make([]bool, g.N),
		outcount: make([]int, g.N),
		runGen:   UUIDv7Generator{},
	}
	for v := 0; v < g.N; v++ {
		d.outcount[v] = len(g.Out[v])
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.cat == nil {
		d.cat = engine.NewCategoryAllocator()
	}
	if d.eng == nil {
		d.eng = engine.NewEngine(g, d.cat, engine.WithLogger(d.log))
	}
	d.runID = d.runGen.Generate()
	if d.cpStore != nil {
		if d.cpCtx == nil {
			d.cpCtx = context.Background()
		}
		if err := d.cpStore.EnsureRun(d.cpCtx, d.runID, g.N); err != nil {
			d.log.Error("checkpoint EnsureRun failed", "error", err)
		}
		d.observers = append(d.observers, newCheckpointObserver(d.cpCtx, d.cpStore, d.runID, d.log))
	}
	// A resumed game may already carry Solved=true for vertices seeded
	// by ResumeFromCheckpoint before this Driver existed; sync disabled
	// to match immediately rather than waiting for the first solveLoop
	// round's own resync.
	d.resyncDisabled()
	for v := 0; v < g.N; v++ {
		if g.Solved[v] {
			d.pushTodo(v)
		}
	}
	return d
}

// RunID returns the identifier stamped on this Driver at construction,
// used to correlate checkpoint rows with a single SolveLoop run.
func (d *Driver) RunID() string { return d.runID }

// Game returns the underlying game being solved.
func (d *Driver) Game() *game.Game { return d.g }

// ActiveVertices returns the indices of all vertices not yet disabled.
func (d *Driver) ActiveVertices() []int {
	active := make([]int, 0, d.g.N)
	for v := 0; v < d.g.N; v++ {
		if !d.disabled[v] {
			active = append(active, v)
		}
	}
	return active
}

func (d *Driver) pushTodo(v int) { d.todo = append(d.todo, v) }

func (d *Driver) popTodo() (int, bool) {
	if len(d.todo) == 0 {
		return 0, false
	}
	v := d.todo[0]
	d.todo = d.todo[1:]
	return v, true
}

// disable marks v out of the active set. Game.MarkSolved is always
// called first by Solve, so a double-disable can never actually occur —
// the LogicError it would represent is already raised by MarkSolved.
func (d *Driver) disable(v int) {
	d.disabled[v] = true
}

// resyncDisabled implements solveLoop step 1, "disabled <- solved": a
// resumed game can have Solved=true for vertices this Driver never
// disabled itself (seeded by ResumeFromCheckpoint before construction),
// so each round starts by resyncing rather than assuming disabled is
// already consistent.
func (d *Driver) resyncDisabled() {
	for v := 0; v < d.g.N; v++ {
		d.disabled[v] = d.g.Solved[v]
	}
}
