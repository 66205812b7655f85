// Package game holds the dense, array-backed representation of a parity
// game: immutable topology plus the mutable per-vertex result fields the
// solver fills in. See the driver package for the write sink that commits
// decisions into a Game and propagates them through the rest of the
// pipeline (disabling, flushing, checkpointing, logging).
package game

import (
	"fmt"

	"github.com/roach88/pgsolve/internal/pgerr"
)

// Player identifies one of the two parity-game players. A vertex's owner
// and a play's winner are both Players; priorities resolve to a Player via
// parity (priority & 1).
type Player int

const (
	Even Player = 0
	Odd  Player = 1
)

// Other returns the opposing player.
func (p Player) Other() Player { return 1 - p }

func (p Player) String() string {
	if p == Even {
		return "even"
	}
	return "odd"
}

// Parity returns the player whose parity matches pr.
func Parity(pr int) Player { return Player(pr & 1) }

// NoStrategy is the sentinel strategy value meaning "no successor is
// recorded" — either the vertex is owned by the losing player, or it is
// owned by the winner but has not been assigned a witness move.
const NoStrategy = -1

// Game is the dense topology of a parity game plus the result fields the
// solver writes into. Topology (owner, priority, out, in) never changes
// after construction except that solveSelfloops may physically remove a
// losing self-loop edge from both out and in, in lockstep.
//
// Game does not know about "disabled" vertices or the todo queue used to
// propagate newly-solved regions — those belong to the driver, which is
// the only caller of MarkSolved. Game enforces only the one invariant it
// can see on its own: a vertex may be solved exactly once.
type Game struct {
	N        int
	Owner    []Player
	Priority []int
	Out      [][]int
	In       [][]int

	Solved   []bool
	Winner   []Player
	Strategy []int
}

// New allocates a Game for n vertices with no edges. Call AddEdge to
// populate the topology before handing the Game to a driver.
func New(n int) *Game {
	g := &Game{
		N:        n,
		Owner:    make([]Player, n),
		Priority: make([]int, n),
		Out:      make([][]int, n),
		In:       make([][]int, n),
		Solved:   make([]bool, n),
		Winner:   make([]Player, n),
		Strategy: make([]int, n),
	}
	for i := range g.Strategy {
		g.Strategy[i] = NoStrategy
	}
	return g
}

// AddEdge records a directed edge v -> w in both Out[v] and In[w].
// Parallel edges are permitted; the spec places no uniqueness requirement
// on out/in sequences.
func (g *Game) AddEdge(v, w int) {
	g.Out[v] = append(g.Out[v], w)
	g.In[w] = append(g.In[w], v)
}

// RemoveEdge deletes exactly one occurrence of v -> w from Out[v] and
// In[w]. Used only by the self-loop pre-reduction to physically remove a
// losing self-loop once it has been ruled out as a dominion.
func (g *Game) RemoveEdge(v, w int) {
	g.Out[v] = removeOne(g.Out[v], w)
	g.In[w] = removeOne(g.In[w], v)
}

func removeOne(xs []int, x int) []int {
	for i, v := range xs {
		if v == x {
			return append(xs[:i], xs[i+1:]...)
		}
	}
	return xs
}

// MarkSolved records the final decision for v: it sets Solved, Winner,
// and Strategy (per the owner=winner?strategy:NoStrategy rule from the
// spec's write sink). It is the driver's job — not Game's — to disable v
// and enqueue it for flushing; MarkSolved only protects the one invariant
// a Game instance can enforce locally.
//
// Returns a *pgerr.LogicError (CodeDoubleSolve) if v is already solved.
func (g *Game) MarkSolved(v int, winner Player, strategy int) error {
	if g.Solved[v] {
		return pgerr.NewForVertex(pgerr.CodeDoubleSolve, "vertex already solved", v)
	}
	g.Solved[v] = true
	g.Winner[v] = winner
	if winner == g.Owner[v] {
		g.Strategy[v] = strategy
	} else {
		g.Strategy[v] = NoStrategy
	}
	return nil
}

// AllSolved reports whether every vertex has been decided (totality,
// property 1).
func (g *Game) AllSolved() bool {
	for _, s := range g.Solved {
		if !s {
			return false
		}
	}
	return true
}

// CountUnsolved returns the number of vertices not yet solved.
func (g *Game) CountUnsolved() int {
	n := 0
	for _, s := range g.Solved {
		if !s {
			n++
		}
	}
	return n
}

// MaxPriority returns the maximum priority among vs. Panics if vs is
// empty — callers must check len(vs) first, as the engine's Run does
// before it computes a subgame's top priority.
func (g *Game) MaxPriority(vs []int) int {
	if len(vs) == 0 {
		panic("game: MaxPriority called on empty vertex set")
	}
	max := -1
	for _, v := range vs {
		if g.Priority[v] > max {
			max = g.Priority[v]
		}
	}
	return max
}

// String renders a short human-readable summary, used by CLI/log output.
func (g *Game) String() string {
	return fmt.Sprintf("Game{n=%d, edges=%d}", g.N, g.EdgeCount())
}

// EdgeCount returns the total number of out-edges across all vertices.
func (g *Game) EdgeCount() int {
	n := 0
	for _, o := range g.Out {
		n += len(o)
	}
	return n
}
