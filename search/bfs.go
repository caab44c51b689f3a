package search

import (
	"github.com/katalvlaran/gridpath/grid"
)

// bfs expands positions in discovery order using a FIFO queue.
// On a unit-cost grid the first discovery of a cell is along a shortest path.
type bfs struct{}

// Algorithm implements Pathfinder.
func (bfs) Algorithm() Algorithm { return BFS }

// bfsWalker encapsulates mutable BFS state.
type bfsWalker struct {
	g     *grid.Grid
	opts  Options
	goal  grid.Position
	queue []grid.Position
	head  int // index of the next position to dequeue
	seen  map[grid.Position]bool
	res   *Result
}

// Search implements Pathfinder.
func (bfs) Search(g *grid.Grid, start, goal grid.Position, opts ...Option) (*Result, error) {
	// Build options and validate endpoints
	o, res, err := prepare(BFS, g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	// Prepare walker
	w := &bfsWalker{
		g:     g,
		opts:  o,
		goal:  goal,
		queue: make([]grid.Position, 0, g.Rows()*g.Cols()),
		seen:  make(map[grid.Position]bool, g.Rows()*g.Cols()),
		res:   res,
	}

	// Seed with start, discovered but not announced as frontier.
	w.seen[start] = true
	w.queue = append(w.queue, start)

	// Main loop
	return w.res, w.loop()
}

// loop dequeues until the goal is expanded, the queue drains, or the step
// boundary fails.
func (w *bfsWalker) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		if err := cancelled(&w.opts); err != nil {
			return err
		}

		// dequeue and expand
		cur := w.queue[w.head]
		w.head++
		visit(&w.opts, w.res, cur)
		if cur == w.goal {
			w.res.Found = true
			return nil
		}

		// discover unseen neighbors, in grid order
		for _, nb := range w.g.Neighbors(cur.Row, cur.Col) {
			if w.seen[nb] {
				continue
			}
			w.seen[nb] = true
			w.res.Predecessors[nb] = cur
			w.opts.OnFrontier(nb)
			w.queue = append(w.queue, nb)
		}

		// pause or abort between expansions
		if err := step(&w.opts, w.res, cur); err != nil {
			return err
		}
	}
	return nil
}
