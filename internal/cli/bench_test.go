package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeGameFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestBenchCommandReportsBothModes(t *testing.T) {
	root := NewRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"--format", "json", "bench", "--n", "10", "--seed", "2"})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "precision-reduced")
	require.Contains(t, out.String(), "classical")
}
