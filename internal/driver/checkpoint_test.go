package driver

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/pgsolve/internal/game"
	"github.com/roach88/pgsolve/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "checkpoint.db")
	st, err := store.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, st.Close()) })
	return st
}

// TestCheckpointResumeIdempotence covers property 9: re-running against
// a store that already holds a complete decision set for a run ID
// reproduces the same winners without driving any fresh solveLoop work,
// since every vertex resumes as already solved.
func TestCheckpointResumeIdempotence(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	buildGame := func() *game.Game {
		g := newGame(3, []game.Player{game.Even, game.Even, game.Even}, []int{4, 2, 0},
			[][2]int{{0, 1}, {1, 2}, {2, 0}})
		return g
	}

	g1 := buildGame()
	d1 := New(g1, WithCheckpointStore(ctx, st), WithRunIDGenerator(NewFixedGenerator("run-1")))
	require.NoError(t, d1.SolveLoop(ctx))
	requireAllSolved(t, g1)

	g2 := buildGame()
	resumed, err := ResumeFromCheckpoint(ctx, st, "run-1", g2)
	require.NoError(t, err)
	require.Len(t, resumed, 3)

	d2 := New(g2, WithCheckpointStore(ctx, st), WithRunIDGenerator(NewFixedGenerator("run-1")))
	require.NoError(t, d2.SolveLoop(ctx))

	requireAllSolved(t, g2)
	for v := 0; v < 3; v++ {
		require.Equal(t, g1.Winner[v], g2.Winner[v])
		require.Equal(t, g1.Strategy[v], g2.Strategy[v])
	}
}

func TestResumeFromCheckpointSeedsOnlyRecordedVertices(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.EnsureRun(ctx, "run-2", 2))
	require.NoError(t, st.RecordDecision(ctx, "run-2", 0, game.Even, 1, 1))

	g := newGame(2, []game.Player{game.Even, game.Odd}, []int{0, 1}, [][2]int{{0, 1}, {1, 1}})
	resumed, err := ResumeFromCheckpoint(ctx, st, "run-2", g)
	require.NoError(t, err)
	require.Equal(t, []int{0}, resumed)
	require.True(t, g.Solved[0])
	require.False(t, g.Solved[1])
}
