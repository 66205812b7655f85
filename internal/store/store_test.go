package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/pgsolve/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "checkpoint.db")
	st, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, st.Close()) })
	return st
}

func TestEnsureRunIsIdempotent(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.EnsureRun(ctx, "run-1", 5))
	require.NoError(t, st.EnsureRun(ctx, "run-1", 5))
}

func TestRecordDecisionIdempotentOnConflict(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, st.EnsureRun(ctx, "run-1", 2))

	require.NoError(t, st.RecordDecision(ctx, "run-1", 0, game.Even, 1, 1))
	// A second write for the same (run_id, vertex) must be silently
	// ignored rather than overwriting the first decision.
	require.NoError(t, st.RecordDecision(ctx, "run-1", 0, game.Odd, -1, 2))

	decisions, err := st.LoadDecisions(ctx, "run-1")
	require.NoError(t, err)
	require.Equal(t, game.Even, decisions[0].Winner)
	require.Equal(t, 1, decisions[0].Strategy)
}

func TestLoadDecisionsRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, st.EnsureRun(ctx, "run-1", 3))

	require.NoError(t, st.RecordDecision(ctx, "run-1", 0, game.Even, 1, 1))
	require.NoError(t, st.RecordDecision(ctx, "run-1", 1, game.Odd, -1, 2))
	require.NoError(t, st.RecordDecision(ctx, "run-1", 2, game.Even, 0, 3))

	decisions, err := st.LoadDecisions(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, decisions, 3)
	require.Equal(t, Decision{Vertex: 1, Winner: game.Odd, Strategy: -1}, decisions[1])
}

func TestLoadDecisionsEmptyForUnknownRun(t *testing.T) {
	st := openTestStore(t)
	decisions, err := st.LoadDecisions(context.Background(), "no-such-run")
	require.NoError(t, err)
	require.Empty(t, decisions)
}

func TestLoadDecisionsScopedByRunID(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, st.EnsureRun(ctx, "run-a", 1))
	require.NoError(t, st.EnsureRun(ctx, "run-b", 1))
	require.NoError(t, st.RecordDecision(ctx, "run-a", 0, game.Even, 0, 1))
	require.NoError(t, st.RecordDecision(ctx, "run-b", 0, game.Odd, 0, 1))

	a, err := st.LoadDecisions(ctx, "run-a")
	require.NoError(t, err)
	require.Equal(t, game.Even, a[0].Winner)

	b, err := st.LoadDecisions(ctx, "run-b")
	require.NoError(t, err)
	require.Equal(t, game.Odd, b[0].Winner)
}
