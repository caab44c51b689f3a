package search_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
	"github.com/stretchr/testify/require"
)

// mustParse builds a grid from a text layout or fails the test.
func mustParse(t testing.TB, layout string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(layout)
	require.NoError(t, err)
	return g
}

// runOn executes algorithm a from the grid's own start to its own goal.
func runOn(t testing.TB, a search.Algorithm, g *grid.Grid, opts ...search.Option) *search.Result {
	t.Helper()
	res, err := search.Search(a, g, g.Start(), g.Goal(), opts...)
	require.NoError(t, err)
	return res
}

// requireValidPath checks that path links start to goal through adjacent,
// walkable cells.
func requireValidPath(t testing.TB, g *grid.Grid, path []grid.Position) {
	t.Helper()
	full := append([]grid.Position{g.Start()}, path...)
	full = append(full, g.Goal())
	for i := 1; i < len(full); i++ {
		require.Equal(t, 1, search.Manhattan(full[i-1], full[i]), "step %d: %v -> %v", i, full[i-1], full[i])
		require.False(t, g.IsWall(full[i].Row, full[i].Col), "path crosses wall at %v", full[i])
	}
}
