package search

import (
	"github.com/katalvlaran/gridpath/grid"
)

// dfs expands the most recently discovered position first using an explicit
// LIFO stack. It marks cells discovered when pushed, so each cell enters the
// stack once; the resulting path is valid but not necessarily shortest.
type dfs struct{}

// Algorithm implements Pathfinder.
func (dfs) Algorithm() Algorithm { return DFS }

// dfsWalker encapsulates mutable DFS state.
type dfsWalker struct {
	g     *grid.Grid
	opts  Options
	goal  grid.Position
	stack []grid.Position
	seen  map[grid.Position]bool
	res   *Result
}

// Search implements Pathfinder.
func (dfs) Search(g *grid.Grid, start, goal grid.Position, opts ...Option) (*Result, error) {
	// Build options and validate endpoints
	o, res, err := prepare(DFS, g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	w := &dfsWalker{
		g:     g,
		opts:  o,
		goal:  goal,
		stack: make([]grid.Position, 0, g.Rows()*g.Cols()),
		seen:  make(map[grid.Position]bool, g.Rows()*g.Cols()),
		res:   res,
	}

	// Seed stack with start (no predecessor)
	w.seen[start] = true
	w.stack = append(w.stack, start)

	// Main loop
	return w.res, w.loop()
}

// loop pops until the goal is expanded, the stack drains, or the step
// boundary fails.
func (w *dfsWalker) loop() error {
	for len(w.stack) > 0 {
		// cancellation check (once per loop)
		if err := cancelled(&w.opts); err != nil {
			return err
		}

		// pop the most recent discovery
		top := len(w.stack) - 1
		cur := w.stack[top]
		w.stack = w.stack[:top]
		visit(&w.opts, w.res, cur)
		if cur == w.goal {
			w.res.Found = true
			return nil
		}

		// later neighbors end up on top and are expanded first
		for _, nb := range w.g.Neighbors(cur.Row, cur.Col) {
			if w.seen[nb] {
				continue
			}
			w.seen[nb] = true
			w.res.Predecessors[nb] = cur
			w.opts.OnFrontier(nb)
			w.stack = append(w.stack, nb)
		}

		if err := step(&w.opts, w.res, cur); err != nil {
			return err
		}
	}
	return nil
}
