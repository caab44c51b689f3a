package search_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
	"github.com/stretchr/testify/assert"
)

// TestReconstruct covers the negative and trivial cases and endpoint exclusion.
func TestReconstruct(t *testing.T) {
	start, goal := grid.Pos(0, 0), grid.Pos(0, 3)
	chain := map[grid.Position]grid.Position{
		grid.Pos(0, 1): grid.Pos(0, 0),
		grid.Pos(0, 2): grid.Pos(0, 1),
		grid.Pos(0, 3): grid.Pos(0, 2),
	}

	cases := []struct {
		name string
		pred map[grid.Position]grid.Position
		goal grid.Position
		want []grid.Position
	}{
		{"NilMap", nil, goal, []grid.Position{}},
		{"GoalUndiscovered", map[grid.Position]grid.Position{grid.Pos(0, 1): grid.Pos(0, 0)}, goal, []grid.Position{}},
		{"Adjacent", map[grid.Position]grid.Position{grid.Pos(0, 1): grid.Pos(0, 0)}, grid.Pos(0, 1), []grid.Position{}},
		{"Chain", chain, goal, []grid.Position{grid.Pos(0, 1), grid.Pos(0, 2)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := search.Reconstruct(tc.pred, tc.goal, start)
			assert.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestReconstruct_Idempotent: repeated calls yield identical sequences and
// leave the map untouched.
func TestReconstruct_Idempotent(t *testing.T) {
	g := mustParse(t, `
S....
.###.
....G`)
	res := runOn(t, search.AStar, g)
	before := len(res.Predecessors)

	first := search.Reconstruct(res.Predecessors, g.Goal(), g.Start())
	second := search.Reconstruct(res.Predecessors, g.Goal(), g.Start())
	assert.Equal(t, first, second)
	assert.Equal(t, first, res.Path())
	assert.Len(t, res.Predecessors, before)
}

// TestReconstruct_CycleTerminates guards against malformed maps.
func TestReconstruct_CycleTerminates(t *testing.T) {
	pred := map[grid.Position]grid.Position{
		grid.Pos(0, 1): grid.Pos(0, 2),
		grid.Pos(0, 2): grid.Pos(0, 1),
	}
	got := search.Reconstruct(pred, grid.Pos(0, 2), grid.Pos(0, 0))
	assert.LessOrEqual(t, len(got), len(pred))
}
