package solverconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
classical_zielonka: true
memoize: true
hashed_memo: true
bottom_scc: true
initial_precision: 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.ClassicalZielonka)
	require.True(t, cfg.Memoize)
	require.True(t, cfg.HashedMemo)
	require.True(t, cfg.BottomSCC)
	require.Equal(t, 3, cfg.InitialPrecision)
}

func TestLoadRejectsResumeWithoutDatabase(t *testing.T) {
	path := writeConfig(t, `
resume: true
run_id: abc
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsResumeWithoutRunID(t *testing.T) {
	path := writeConfig(t, `
resume: true
database: ./checkpoint.db
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsHashedMemoWithoutMemoize(t *testing.T) {
	path := writeConfig(t, `
hashed_memo: true
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsNegativeInitialPrecision(t *testing.T) {
	path := writeConfig(t, `
initial_precision: -1
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestValidateAcceptsZeroValue(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())
}
