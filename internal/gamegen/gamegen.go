// Package gamegen builds small parity games for the demo CLI: a seeded
// random generator and a tiny whitespace-delimited text loader. Neither
// oink's .pg format nor its extended pgsolver dialect is implemented
// here — those file parsers are an excluded external collaborator; this
// package exists only so the core is exercisable from a terminal without
// a real game file on hand.
package gamegen

import (
	"math/rand"

	"github.com/roach88/pgsolve/internal/game"
)

// Options controls the shape of a generated game.
type Options struct {
	// N is the number of vertices. Must be positive.
	N int
	// MaxPriority is the highest priority a vertex may receive; priorities
	// are drawn uniformly from [0, MaxPriority].
	MaxPriority int
	// Density is the expected number of out-edges per vertex, clamped to
	// at least 1 so every vertex has somewhere to move.
	Density float64
	// Seed seeds the generator. Equal seeds (and equal Options) always
	// produce an identical game.
	Seed int64
}

// Generate builds a random Game from opts using a dedicated *rand.Rand
// seeded from opts.Seed, so results never depend on any global generator
// state and are reproducible run to run.
func Generate(opts Options) *game.Game {
	if opts.N <= 0 {
		panic("gamegen: N must be positive")
	}
	degree := opts.Density
	if degree < 1 {
		degree = 1
	}

	r := rand.New(rand.NewSource(opts.Seed))
	g := game.New(opts.N)

	for v := 0; v < opts.N; v++ {
		g.Priority[v] = r.Intn(opts.MaxPriority + 1)
		g.Owner[v] = game.Player(r.Intn(2))
	}

	for v := 0; v < opts.N; v++ {
		outDegree := 1 + r.Intn(maxInt(1, int(degree*2)-1))
		picked := make(map[int]bool, outDegree)
		targets := make([]int, 0, outDegree)
		for len(targets) < outDegree && len(targets) < opts.N {
			w := r.Intn(opts.N)
			if !picked[w] {
				picked[w] = true
				targets = append(targets, w)
			}
		}
		for _, w := range targets {
			g.AddEdge(v, w)
		}
	}

	return g
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
