package search

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pq"
)

// unitCost is the price of every move; terrain is not weighted.
const unitCost = 1

// entry is one priority-queue record. g is the cost-so-far it was pushed
// with and f the rank (g for Dijkstra, g+h for A*).
type entry struct {
	pos  grid.Position
	g, f int
}

// costWalker holds the state shared by Dijkstra and A*: a best-known cost
// map, a lazily-invalidated priority queue, and the set of expanded cells.
type costWalker struct {
	g         *grid.Grid
	opts      Options
	goal      grid.Position
	heuristic func(p grid.Position) int
	best      map[grid.Position]int
	expanded  map[grid.Position]bool
	open      *pq.Queue[entry]
	res       *Result
}

func newCostWalker(g *grid.Grid, o Options, res *Result, h func(grid.Position) int, cmp pq.Compare[entry]) *costWalker {
	n := g.Rows() * g.Cols()
	return &costWalker{
		g:         g,
		opts:      o,
		goal:      res.Goal,
		heuristic: h,
		best:      make(map[grid.Position]int, n),
		expanded:  make(map[grid.Position]bool, n),
		open:      pq.NewWithCapacity(cmp, n),
		res:       res,
	}
}

// seed pushes the start with cost zero.
func (w *costWalker) seed(start grid.Position) {
	w.best[start] = 0
	w.open.Push(entry{pos: start, g: 0, f: w.heuristic(start)})
}

// loop pops until the goal is expanded, the queue drains, or the step
// boundary fails. Stale entries are dropped without events.
func (w *costWalker) loop() error {
	for {
		// cancellation check (once per loop)
		if err := cancelled(&w.opts); err != nil {
			return err
		}
		cur, ok := w.open.Pop()
		if !ok {
			return nil
		}
		// stale entry: already expanded, or superseded by a cheaper push
		if w.expanded[cur.pos] || cur.g > w.best[cur.pos] {
			continue
		}
		w.expanded[cur.pos] = true

		visit(&w.opts, w.res, cur.pos)
		if cur.pos == w.goal {
			w.res.Found = true
			return nil
		}

		// push improved neighbors, then pause or abort
		w.relax(cur)

		if err := step(&w.opts, w.res, cur.pos); err != nil {
			return err
		}
	}
}

// relax pushes every neighbor whose cost strictly improves through cur.
// Pushing only on strict improvement keeps each (position, cost) pair
// in the queue at most once.
func (w *costWalker) relax(cur entry) {
	for _, nb := range w.g.Neighbors(cur.pos.Row, cur.pos.Col) {
		tentative := cur.g + unitCost
		if prev, seen := w.best[nb]; seen && tentative >= prev {
			continue
		}
		w.best[nb] = tentative
		w.res.Predecessors[nb] = cur.pos
		w.open.Push(entry{pos: nb, g: tentative, f: tentative + w.heuristic(nb)})
		w.opts.OnFrontier(nb)
	}
}
