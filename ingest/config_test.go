package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRunConfigDefaultsAndOverrides(t *testing.T) {
	path := writeTempFile(t, "run.yaml", `
puzzlePath: puzzle.json
solve:
  maxSolutions: 5
output: svg
svgPath: out.svg
`)

	cfg, err := LoadRunConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "puzzle.json", cfg.PuzzlePath)
	assert.Equal(t, OutputSVG, cfg.Output)
	assert.Equal(t, "out.svg", cfg.SVGPath)
	// unset solve.Config fields keep DefaultConfig's zero-overridden values
	// since yaml.Unmarshal only touches keys present in the document...
	// but maxSolutions was explicit, so it must win.
	assert.Equal(t, 5, cfg.Solve.MaxSolutions)
}

func TestLoadRunConfigRequiresPuzzlePath(t *testing.T) {
	path := writeTempFile(t, "run.yaml", `output: text`)
	_, err := LoadRunConfig(path)
	assert.Error(t, err)
}

func TestLoadRunConfigMissingFile(t *testing.T) {
	_, err := LoadRunConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
