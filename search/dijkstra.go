package search

import (
	"github.com/katalvlaran/gridpath/grid"
)

// dijkstra expands positions in increasing cumulative cost.
type dijkstra struct{}

// Algorithm implements Pathfinder.
func (dijkstra) Algorithm() Algorithm { return Dijkstra }

// Search implements Pathfinder.
// The queue is ordered by dist alone; relaxation happens only when
// dist[cur]+1 < dist[neighbor].
func (dijkstra) Search(g *grid.Grid, start, goal grid.Position, opts ...Option) (*Result, error) {
	o, res, err := prepare(Dijkstra, g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	w := newCostWalker(g, o, res,
		func(grid.Position) int { return 0 },
		func(a, b entry) int { return a.g - b.g },
	)
	w.seed(start)

	return w.res, w.loop()
}
