package engine

import (
	"log/slog"

	"github.com/roach88/pgsolve/internal/game"
)

// Mode steers which of the four precision passes a recursive call is
// running: 0 and 2 are reduced-precision passes that decrement the
// opponent's budget on the way down, 1 is the full-precision "second
// pass" entered once a reduced-precision frame turns out to already be
// won outright, and 3 is classical Zielonka with no precision decrement
// at all.
const (
	ModeReducedFirst Mode = 0
	ModeFullSecond   Mode = 1
	ModeReducedThird Mode = 2
	ModeClassical    Mode = 3
)

// Mode is one of the four recursion modes the engine steers between.
type Mode int

// Strategy sentinels used in the engine's scratch strategy array. They
// only ever appear transiently inside a Run call or, for NotYetDecided,
// between step 5's marking and step 9/10's resolution. WinPlaceholder is
// non-negative, so if a frame leaves it behind, the driver's §4.F step 4
// takes its "strategy >= 0" branch and commits the vertex as won by its
// owner with 999 recorded as the strategy.
const (
	NotYetDecided  = -2
	WinPlaceholder = 999
)

// Engine runs the precision-parameterised Zielonka procedure over a
// single Game. One Engine is bound to exactly one Game and is not safe
// for concurrent use — the spec places the engine and driver on a
// single logical thread (§5).
type Engine struct {
	g   *game.Game
	cat *CategoryAllocator
	log *slog.Logger

	memoize bool
	memo    MemoStore

	vtype    []int
	strategy []int
	degs     []int
	aqueue   []int

	iters int
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithMemoStore installs a MemoStore and enables memoisation. Without
// this option the engine runs unmemoised, matching the teacher's flags
// pattern of additive, independently toggleable behaviours.
func WithMemoStore(store MemoStore) Option {
	return func(e *Engine) {
		e.memo = store
		e.memoize = true
	}
}

// WithLogger installs a structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine allocates an Engine bound to g. Every vtype slot starts at
// -1, a value no CategoryAllocator tag takes. The vtype array is the
// caller's responsibility to seed before the first Run call — see
// driver.SolveLoop, which tags the active vertex set with a fresh
// cat_base category on every invocation.
func NewEngine(g *game.Game, cat *CategoryAllocator, opts ...Option) *Engine {
	e := &Engine{
		g:        g,
		cat:      cat,
		log:      slog.Default(),
		vtype:    make([]int, g.N),
		strategy: make([]int, g.N),
		degs:     make([]int, g.N),
		aqueue:   make([]int, 0, g.N),
	}
	for i := range e.degs {
		e.degs[i] = -1
		e.vtype[i] = -1
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Iterations returns the number of Run invocations performed so far that
// were not answered from the memoisation store, for benchmarking and
// logging — mirrors the source's iters counter.
func (e *Engine) Iterations() int { return e.iters }

// SeedCategory tags every vertex in vs with cat, and is how a caller
// establishes the precondition Run requires of vtype before the
// outermost call of a solve pass.
func (e *Engine) SeedCategory(vs []int, cat int) {
	for _, v := range vs {
		e.vtype[v] = cat
	}
}

// Strategy returns the engine-local strategy value last written for v.
// Valid only after Run has processed a subgame containing v; driver
// code reads this once Run returns to decide the §4.F step 4 commit.
func (e *Engine) Strategy(v int) int { return e.strategy[v] }

// Run solves the subgame vs under the given precision budget, mode and
// mprio override, writing the outcome into e.strategy. This is the
// one recursive procedure the whole solver core is built around.
func (e *Engine) Run(vs []int, catBase int, precision Precision, mode Mode, mprio int) {
	if e.memoize {
		if strat, ok := e.memo.Lookup(precision, vs); ok {
			for i, v := range vs {
				e.strategy[v] = strat[i]
			}
			return
		}
	}

	e.iters++

	if len(vs) == 0 {
		return
	}

	h := mprio
	if h < 0 {
		h = e.g.MaxPriority(vs)
	}
	us := game.Parity(h)
	opp := us.Other()

	if precision[us] <= 0 {
		for _, v := range vs {
			if e.g.Owner[v] == us {
				e.strategy[v] = game.NoStrategy
			} else {
				e.strategy[v] = WinPlaceholder
			}
		}
		return
	}

	catHiprio := e.cat.New()
	for _, v := range vs {
		if e.g.Priority[v] == h {
			e.vtype[v] = catHiprio
			e.strategy[v] = NotYetDecided
		}
	}

	e.attract(vs, us, catBase, catHiprio)

	subprecision := precision
	if mode == ModeReducedFirst || mode == ModeReducedThird {
		subprecision[opp]--
	}

	subS := make([]int, 0, len(vs))
	for _, v := range vs {
		if e.vtype[v] == catBase {
			subS = append(subS, v)
		}
	}

	if subprecision[opp] == 0 {
		for _, v := range vs {
			if e.g.Owner[v] == us {
				e.strategy[v] = WinPlaceholder
			} else {
				e.strategy[v] = game.NoStrategy
			}
		}
	} else {
		submode := ModeReducedFirst
		if mode == ModeClassical {
			submode = ModeClassical
		}
		subMprio := mprio
		if mprio >= 0 {
			subMprio = mprio - 1
		}
		e.Run(subS, catBase, subprecision, submode, subMprio)
	}

	catOpponentWins := e.cat.New()
	subgameWon := true
	for _, v := range subS {
		opponentWins := false
		if e.g.Owner[v] == us {
			opponentWins = e.strategy[v] == game.NoStrategy
		} else {
			opponentWins = e.strategy[v] >= 0
		}
		if opponentWins {
			e.vtype[v] = catOpponentWins
			subgameWon = false
		} else {
			e.vtype[v] = catHiprio
		}
	}

	if subgameWon {
		if mode == ModeReducedFirst {
			e.Run(vs, catHiprio, precision, ModeFullSecond, mprio)
			return
		}

		for _, v := range vs {
			if e.g.Priority[v] != h {
				continue
			}
			if e.g.Owner[v] == us {
				e.strategy[v] = game.NoStrategy
				for _, succ := range e.g.Out[v] {
					if e.vtype[succ] == catHiprio {
						e.strategy[v] = succ
						break
					}
				}
			} else {
				e.strategy[v] = game.NoStrategy
			}
		}

		e.memoizeResult(precision, vs)
		return
	}

	e.attract(vs, opp, catHiprio, catOpponentWins)

	subS2 := make([]int, 0, len(vs))
	for _, v := range vs {
		if e.vtype[v] == catHiprio {
			subS2 = append(subS2, v)
		}
	}

	submode := mode
	if mode == ModeFullSecond {
		submode = ModeReducedThird
	}
	e.Run(subS2, catHiprio, precision, submode, mprio)

	e.memoizeResult(precision, vs)
}

func (e *Engine) memoizeResult(precision Precision, vs []int) {
	if !e.memoize {
		return
	}
	strat := make([]int, len(vs))
	for i, v := range vs {
		strat[i] = e.strategy[v]
	}
	e.memo.Store(precision, vs, strat)
}
