package search_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseAndResolve covers strict and lenient name lookup.
func TestParseAndResolve(t *testing.T) {
	cases := []struct {
		in   string
		want search.Algorithm
	}{
		{"bfs", search.BFS},
		{"DFS", search.DFS},
		{" dijkstra ", search.Dijkstra},
		{"AStar", search.AStar},
	}
	for _, tc := range cases {
		got, err := search.Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, tc.want, search.Resolve(tc.in))
	}

	_, err := search.Parse("greedy")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
	assert.Equal(t, search.AStar, search.Resolve("greedy"))
	assert.Equal(t, search.AStar, search.Resolve(""))
}

// TestRegistry_Complete ensures every listed algorithm has an implementation
// and a description, and reports its own name.
func TestRegistry_Complete(t *testing.T) {
	algos := search.Algorithms()
	assert.Len(t, algos, 4)
	for _, a := range algos {
		pf, err := search.New(a)
		require.NoError(t, err)
		assert.Equal(t, a, pf.Algorithm())
		assert.NotEmpty(t, search.Describe(a))
	}
	_, err := search.New("greedy")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
	assert.Empty(t, search.Describe("greedy"))
}
