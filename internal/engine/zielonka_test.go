package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/pgsolve/internal/game"
)

// buildCycleGame returns the winner-controlled 3-cycle from the driver
// package's worked scenario, all owned by Even, so the engine itself
// (not the pre-reductions) must resolve it under either mode.
func buildCycleGame() *game.Game {
	g := game.New(3)
	g.Owner[0], g.Owner[1], g.Owner[2] = game.Even, game.Even, game.Even
	g.Priority[0], g.Priority[1], g.Priority[2] = 4, 2, 0
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	return g
}

func allVertices(g *game.Game) []int {
	vs := make([]int, g.N)
	for i := range vs {
		vs[i] = i
	}
	return vs
}

func runFull(g *game.Game, classical bool, opts ...Option) *Engine {
	cat := NewCategoryAllocator()
	e := NewEngine(g, cat, opts...)
	vs := allVertices(g)
	cat0 := cat.New()
	e.SeedCategory(vs, cat0)
	precision := Precision{10000 * g.N, 10000 * g.N}
	mode := ModeReducedFirst
	if classical {
		mode = ModeClassical
	}
	e.Run(vs, cat0, precision, mode, -1)
	return e
}

func winnersFromStrategy(g *game.Game, e *Engine) []game.Player {
	winners := make([]game.Player, g.N)
	for v := 0; v < g.N; v++ {
		s := e.Strategy(v)
		if g.Owner[v] == game.Even {
			if s >= 0 {
				winners[v] = game.Even
			} else {
				winners[v] = game.Odd
			}
		} else {
			if s >= 0 {
				winners[v] = game.Odd
			} else {
				winners[v] = game.Even
			}
		}
	}
	return winners
}

func TestEngineAgreesWithClassical(t *testing.T) {
	g := buildCycleGame()
	reduced := runFull(buildCycleGameFresh(g), false)
	classical := runFull(buildCycleGameFresh(g), true)

	rw := winnersFromStrategy(g, reduced)
	cw := winnersFromStrategy(g, classical)
	for v := 0; v < g.N; v++ {
		require.Equalf(t, cw[v], rw[v], "vertex %d disagrees between reduced and classical run", v)
	}
}

// buildCycleGameFresh returns a topology-identical copy so two Run
// passes never share result-field state.
func buildCycleGameFresh(src *game.Game) *game.Game {
	g := game.New(src.N)
	copy(g.Owner, src.Owner)
	copy(g.Priority, src.Priority)
	for v := 0; v < src.N; v++ {
		g.Out[v] = append([]int(nil), src.Out[v]...)
		g.In[v] = append([]int(nil), src.In[v]...)
	}
	return g
}

func TestPrecisionMonotonicity(t *testing.T) {
	g := buildCycleGame()

	low := buildCycleGameFresh(g)
	cat := NewCategoryAllocator()
	e := NewEngine(low, cat)
	vs := allVertices(low)
	c0 := cat.New()
	e.SeedCategory(vs, c0)
	budget := ceilLog2(len(vs))
	e.Run(vs, c0, Precision{budget, budget}, ModeReducedFirst, -1)
	lowWinners := winnersFromStrategy(low, e)

	high := buildCycleGameFresh(g)
	eHigh := runFull(high, false)
	highWinners := winnersFromStrategy(high, eHigh)

	for v := 0; v < g.N; v++ {
		if lowWinners[v] == g.Owner[v] {
			require.Equal(t, lowWinners[v], highWinners[v], "vertex %d won under low precision must stay won under higher precision", v)
		}
	}
}

func ceilLog2(n int) int {
	p := 0
	for (1 << p) < n {
		p++
	}
	return p
}

func TestMemoisationNeutrality(t *testing.T) {
	base := buildCycleGame()

	plain := buildCycleGameFresh(base)
	ePlain := runFull(plain, false)
	plainWinners := winnersFromStrategy(plain, ePlain)

	memoGame := buildCycleGameFresh(base)
	memoStore := NewMemoStore()
	eMemo := runFull(memoGame, false, WithMemoStore(memoStore))
	memoWinners := winnersFromStrategy(memoGame, eMemo)

	require.Equal(t, plainWinners, memoWinners)
}

func TestSeedCategoryTagsExactlyVs(t *testing.T) {
	g := buildCycleGame()
	cat := NewCategoryAllocator()
	e := NewEngine(g, cat)
	tag := cat.New()
	e.SeedCategory([]int{0, 2}, tag)
	require.Equal(t, tag, e.vtype[0])
	require.Equal(t, tag, e.vtype[2])
	require.NotEqual(t, tag, e.vtype[1])
}
