package search

import (
	"github.com/katalvlaran/gridpath/grid"
)

// astar expands positions in increasing f = g + h, with h the Manhattan
// distance to the goal. The heuristic is admissible and consistent on a
// 4-connected unit-cost grid, so the first expansion of the goal is optimal.
type astar struct{}

// Algorithm implements Pathfinder.
func (astar) Algorithm() Algorithm { return AStar }

// Search implements Pathfinder.
func (astar) Search(g *grid.Grid, start, goal grid.Position, opts ...Option) (*Result, error) {
	o, res, err := prepare(AStar, g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	w := newCostWalker(g, o, res,
		func(p grid.Position) int { return Manhattan(p, goal) },
		func(a, b entry) int { return a.f - b.f },
	)
	w.seed(start)

	return w.res, w.loop()
}
