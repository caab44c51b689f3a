package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GRIDPATH_CONFIG", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeMap(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestRunCommand_Map(t *testing.T) {
	m := writeMap(t, "S..\n.#.\n..G\n")

	out, err := execute(t, "run", "--map", m, "--algorithm", "bfs", "--no-color", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "S~~\n*#~\n**G\n")
	assert.Contains(t, out, "bfs: path of 3 cells, 8 visited")
}

func TestRunCommand_NoPath(t *testing.T) {
	m := writeMap(t, "S#G\n")

	out, err := execute(t, "run", "--map", m, "--no-color", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "astar: no path, 1 visited")
}

func TestRunCommand_Trace(t *testing.T) {
	m := writeMap(t, "S.G\n")

	out, err := execute(t, "run", "--map", m, "-a", "dfs", "--trace", "--no-color", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "   1 visited  (0,0)")
	assert.Contains(t, out, "   2 frontier (0,1)")
	assert.Contains(t, out, "dfs: path of 1 cells")
}

func TestRunCommand_Errors(t *testing.T) {
	_, err := execute(t, "run", "--algorithm", "greedy", "--log-level", "error")
	assert.Error(t, err)

	_, err = execute(t, "run", "--map", filepath.Join(t.TempDir(), "none.txt"), "--log-level", "error")
	assert.Error(t, err)

	_, err = execute(t, "run", "--map", writeMap(t, "S..\n"), "--log-level", "error")
	assert.Error(t, err, "map without goal")

	_, err = execute(t, "run", "--log-level", "chatty")
	assert.Error(t, err)
}

func TestAlgorithmsCommand(t *testing.T) {
	out, err := execute(t, "algorithms", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "* astar ")
	assert.Contains(t, out, "  dijkstra ")
	assert.Contains(t, out, "  bfs ")
	assert.Contains(t, out, "  dfs ")
}
