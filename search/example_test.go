package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleSearch_bfs traces a breadth-first run around a wall.
func ExampleSearch_bfs() {
	g, _ := grid.Parse(`
S.#.
..#.
....
...G`)

	res, err := search.Search(search.BFS, g, g.Start(), g.Goal())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", res.Found)
	fmt.Println("path:", res.Path())
	// Output:
	// found: true
	// path: [{1 0} {2 0} {3 0} {3 1} {3 2}]
}

// ExampleReconstruct shows that endpoints are excluded from the path.
func ExampleReconstruct() {
	pred := map[grid.Position]grid.Position{
		grid.Pos(1, 0): grid.Pos(0, 0),
		grid.Pos(2, 0): grid.Pos(1, 0),
		grid.Pos(2, 1): grid.Pos(2, 0),
	}
	fmt.Println(search.Reconstruct(pred, grid.Pos(2, 1), grid.Pos(0, 0)))
	// Output:
	// [{1 0} {2 0}]
}
