package search

import (
	"fmt"
	"strings"
)

// Algorithm names a search strategy. The string values are the names the
// CLI, TUI, and HTTP API accept.
type Algorithm string

// Supported algorithms.
const (
	BFS      Algorithm = "bfs"
	DFS      Algorithm = "dfs"
	Dijkstra Algorithm = "dijkstra"
	AStar    Algorithm = "astar"
)

// Default is used when a caller asks for an algorithm by an unknown name.
const Default = AStar

var registry = map[Algorithm]Pathfinder{
	BFS:      bfs{},
	DFS:      dfs{},
	Dijkstra: dijkstra{},
	AStar:    astar{},
}

var descriptions = map[Algorithm]string{
	AStar: "A* always expands the node with the lowest f = g + h, where g is the cost " +
		"so far and h the Manhattan distance to the goal. The estimate never overshoots " +
		"on a 4-way grid, so the path is optimal, and the search usually expands far " +
		"fewer cells than Dijkstra.",
	Dijkstra: "Dijkstra grows outward in order of cumulative cost using a priority queue. " +
		"With non-negative moves it is optimal, but without a heuristic it explores in " +
		"every direction and expands more cells than A*.",
	BFS: "Breadth-First Search expands the grid ring by ring from a FIFO queue. Every " +
		"move costs the same, so the first time it reaches the goal it has found a " +
		"fewest-steps path.",
	DFS: "Depth-First Search follows one branch as far as it can from a LIFO stack " +
		"before backing up. It shows a very different exploration order, but its path " +
		"is not guaranteed to be the shortest.",
}

// Algorithms returns the supported algorithms in display order.
func Algorithms() []Algorithm {
	return []Algorithm{AStar, Dijkstra, BFS, DFS}
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return string(a) }

// Parse converts a name to an Algorithm, case-insensitively.
// Unknown names fail with ErrUnknownAlgorithm.
func Parse(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := registry[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return a, nil
}

// Resolve is the lenient form of Parse: unknown names fall back to Default.
func Resolve(name string) Algorithm {
	a, err := Parse(name)
	if err != nil {
		return Default
	}
	return a
}

// New returns the Pathfinder for a. Pathfinders are stateless and safe to share.
func New(a Algorithm) (Pathfinder, error) {
	pf, ok := registry[a]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}
	return pf, nil
}

// Describe returns a one-paragraph explanation of a, or "" if unknown.
func Describe(a Algorithm) string {
	return descriptions[a]
}
