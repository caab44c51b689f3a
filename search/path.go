package search

import (
	"github.com/katalvlaran/gridpath/grid"
)

// Reconstruct walks pred backwards from goal until it reaches a position
// with no predecessor (the start) and returns the cells in between, ordered
// start→goal. The start and goal themselves are never included.
//
// A goal with no predecessor yields an empty, non-nil slice: no path exists,
// or start and goal coincide. The walk is bounded by len(pred) hops, so a
// malformed map with a cycle cannot loop forever. Reconstruct does not
// modify pred and is idempotent.
func Reconstruct(pred map[grid.Position]grid.Position, goal, start grid.Position) []grid.Position {
	path := make([]grid.Position, 0)
	cur := goal
	for hops := 0; hops < len(pred); hops++ {
		prev, ok := pred[cur]
		if !ok {
			break
		}
		if cur != goal && cur != start {
			path = append(path, cur)
		}
		cur = prev
	}

	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
