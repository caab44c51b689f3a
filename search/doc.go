// Package search implements the four grid traversals a visualizer can animate:
// breadth-first search, depth-first search, Dijkstra's algorithm, and A*.
//
// What
//
//   - Every algorithm satisfies the Pathfinder interface and shares one event
//     contract: OnVisited fires when a position leaves the frontier, OnFrontier
//     fires when a neighbor is (re)discovered, and the step boundary runs once
//     per expanded position, after its neighbors have been processed.
//   - Search returns a Result holding the predecessor map, the visit order,
//     and whether the goal was reached. Reconstruct (or Result.Path) turns the
//     predecessor map into the ordered start→goal path, endpoints excluded.
//
// Ordering
//
//	| Algorithm | Frontier        | Removal                 | Relaxation                  |
//	|-----------|-----------------|-------------------------|-----------------------------|
//	| BFS       | FIFO queue      | oldest first            | first discovery is final    |
//	| DFS       | LIFO stack      | newest first            | first discovery is final    |
//	| Dijkstra  | pq by dist      | smallest dist           | iff dist[u]+1 < dist[v]     |
//	| A*        | pq by g+h       | smallest f              | iff g[u]+1 < g[v]           |
//
//	Neighbors come from grid.Grid.Neighbors in the fixed order down, up, right,
//	left, and ties in the priority queue resolve by heap structure, so every
//	run is reproducible for a given grid.
//
// Step boundary
//
//	WithStepBoundary installs the single suspension point. A host passes a
//	function that sleeps for the animation delay; returning an error (for
//	example ctx.Err()) aborts the search, and the partial Result is returned
//	together with the wrapped error.
//
// Stale entries
//
//	Dijkstra and A* never decrease keys in place. A position is pushed again
//	only when its best-known cost strictly improves, and a popped entry whose
//	cost is worse than the recorded best, or whose position was already
//	expanded, is discarded silently: no events, no step boundary.
//
// Complexity (N = rows×cols)
//
//   - BFS, DFS: O(N) time, O(N) memory.
//   - Dijkstra, A*: O(N log N) time, O(N) memory.
//
// Errors
//
//   - ErrGridNil           if the grid pointer is nil.
//   - ErrOutOfBounds       if start or goal lies outside the grid.
//   - ErrUnknownAlgorithm  from Parse and New for unrecognised names.
//   - Wrapped step-boundary errors (context.Canceled, context.DeadlineExceeded, ...).
package search
