package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Search runs the named algorithm. It is shorthand for New(a) followed by
// Pathfinder.Search and fails with ErrUnknownAlgorithm for unknown names.
func Search(a Algorithm, g *grid.Grid, start, goal grid.Position, opts ...Option) (*Result, error) {
	pf, err := New(a)
	if err != nil {
		return nil, err
	}
	return pf.Search(g, start, goal, opts...)
}

// prepare validates the inputs shared by every algorithm, applies options,
// and allocates an empty Result.
func prepare(a Algorithm, g *grid.Grid, start, goal grid.Position, opts []Option) (Options, *Result, error) {
	o := DefaultOptions()
	if g == nil {
		return o, nil, ErrGridNil
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !g.Contains(start) {
		return o, nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.Contains(goal) {
		return o, nil, fmt.Errorf("%w: goal %v", ErrOutOfBounds, goal)
	}

	n := g.Rows() * g.Cols()
	res := &Result{
		Algorithm:    a,
		Start:        start,
		Goal:         goal,
		Predecessors: make(map[grid.Position]grid.Position, n),
		Visited:      make([]grid.Position, 0, n),
	}

	return o, res, nil
}

// visit records p in the visit order and fires OnVisited.
func visit(o *Options, res *Result, p grid.Position) {
	res.Visited = append(res.Visited, p)
	o.OnVisited(p)
}

// step crosses the step boundary after p has been expanded.
func step(o *Options, res *Result, p grid.Position) error {
	res.Steps++
	if err := o.StepBoundary(o.Ctx); err != nil {
		return fmt.Errorf("search: %s aborted after %v: %w", res.Algorithm, p, err)
	}
	return nil
}

// cancelled reports the context error, if any, without blocking.
func cancelled(o *Options) error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}

// Manhattan returns |Δrow| + |Δcol|, the admissible A* heuristic on a
// 4-connected grid with unit edge cost.
func Manhattan(a, b grid.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
