package gamegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateEverySuccessorExists(t *testing.T) {
	g := Generate(Options{N: 50, MaxPriority: 6, Density: 2.5, Seed: 42})
	require.Equal(t, 50, g.N)
	for v := 0; v < g.N; v++ {
		require.NotEmpty(t, g.Out[v], "vertex %d has no successors", v)
		for _, w := range g.Out[v] {
			require.GreaterOrEqual(t, w, 0)
			require.Less(t, w, g.N)
		}
		require.LessOrEqual(t, g.Priority[v], 6)
	}
}

func TestGenerateDeterministicForSameSeed(t *testing.T) {
	opts := Options{N: 30, MaxPriority: 4, Density: 2, Seed: 7}
	a := Generate(opts)
	b := Generate(opts)
	require.Equal(t, a.Owner, b.Owner)
	require.Equal(t, a.Priority, b.Priority)
	require.Equal(t, a.Out, b.Out)
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	a := Generate(Options{N: 30, MaxPriority: 4, Density: 2, Seed: 1})
	b := Generate(Options{N: 30, MaxPriority: 4, Density: 2, Seed: 2})
	require.NotEqual(t, a.Out, b.Out)
}

func TestLoadRoundTrip(t *testing.T) {
	input := `3
0 0 2 1 2
1 1 3 0
2 0 1 2
`
	g, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, g.N)
	require.Equal(t, []int{1, 2}, g.Out[0])
	require.Equal(t, []int{0}, g.Out[1])
	require.Equal(t, []int{2}, g.Out[2])
	require.Equal(t, 3, g.Priority[1])
}

func TestLoadRejectsMissingVertex(t *testing.T) {
	input := `2
0 0 1 1
`
	_, err := Load(strings.NewReader(input))
	require.Error(t, err)
}

func TestLoadRejectsVertexWithNoSuccessors(t *testing.T) {
	input := `2
0 0 1
1 1 0 0
`
	_, err := Load(strings.NewReader(input))
	require.Error(t, err)
}

func TestLoadIgnoresCommentsAndBlankLines(t *testing.T) {
	input := `2
# a comment
0 0 1 1

1 1 0 0
`
	g, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, g.N)
}
