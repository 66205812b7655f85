package cli

import (
	"fmt"
	"os"

	"github.com/roach88/pgsolve/internal/game"
	"github.com/roach88/pgsolve/internal/gamegen"
)

// GameOptions controls how loadOrGenerateGame obtains a Game: from a
// text file (File set) or from the seeded random generator.
type GameOptions struct {
	File        string
	N           int
	Seed        int64
	Density     float64
	MaxPriority int
}

func loadOrGenerateGame(opts GameOptions) (*game.Game, error) {
	if opts.File != "" {
		f, err := os.Open(opts.File)
		if err != nil {
			return nil, fmt.Errorf("open game file: %w", err)
		}
		defer f.Close()
		g, err := gamegen.Load(f)
		if err != nil {
			return nil, fmt.Errorf("load game file: %w", err)
		}
		return g, nil
	}

	return gamegen.Generate(gamegen.Options{
		N:           opts.N,
		MaxPriority: opts.MaxPriority,
		Density:     opts.Density,
		Seed:        opts.Seed,
	}), nil
}

// cloneGame deep-copies g's topology and result fields so bench can run
// the same starting position through multiple independent driver
// instances without one run's commits leaking into another's.
func cloneGame(g *game.Game) *game.Game {
	clone := game.New(g.N)
	copy(clone.Owner, g.Owner)
	copy(clone.Priority, g.Priority)
	for v := 0; v < g.N; v++ {
		clone.Out[v] = append([]int(nil), g.Out[v]...)
		clone.In[v] = append([]int(nil), g.In[v]...)
	}
	return clone
}

// evenWinners returns the vertices Even wins, for bench's summary rows.
func evenWinners(g *game.Game) []int {
	wins := make([]int, 0, g.N)
	for v := 0; v < g.N; v++ {
		if g.Winner[v] == game.Even {
			wins = append(wins, v)
		}
	}
	return wins
}
