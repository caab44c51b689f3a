package grid

import (
	"math/rand"
	"sync"
)

// offsets lists neighbor deltas in the order down, up, right, left.
// Every search breaks ties by discovery order, so this order is part of the contract.
var offsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is a fixed-size board of cells with one start and one goal.
type Grid struct {
	mu           sync.RWMutex
	rows, cols   int
	cells        []Cell // row-major
	start, goal  Position
	defaultStart Position
	defaultGoal  Position
}

// New constructs a rows×cols grid with no walls.
// The default start is (rows/2, cols*3/20) and the default goal (rows/2, cols*4/5),
// i.e. (10,6) and (10,32) on a 20×40 board; WithStart/WithGoal override them.
// Returns ErrEmptyGrid if rows or cols is less than one.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	o := options{
		start: Position{Row: rows / 2, Col: cols * 3 / 20},
		goal:  Position{Row: rows / 2, Col: cols * 4 / 5},
	}
	for _, opt := range opts {
		opt(&o)
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	g.defaultStart = g.clamp(o.start)
	g.defaultGoal = g.clamp(o.goal)
	g.placeEndpoints(g.defaultStart, g.defaultGoal)

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (r,c) lies inside the grid.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && c >= 0 && r < g.rows && c < g.cols
}

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p Position) bool { return g.InBounds(p.Row, p.Col) }

// Index maps p to its row-major index row*Cols+col.
func (g *Grid) Index(p Position) int { return p.Row*g.cols + p.Col }

// PositionAt converts a row-major index back to a Position.
func (g *Grid) PositionAt(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// Neighbors returns the walkable 4-neighbors of (r,c) in the order
// down, up, right, left. Out-of-bounds and wall cells are omitted.
// Complexity: O(1).
func (g *Grid) Neighbors(r, c int) []Position {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Position, 0, len(offsets))
	for _, d := range offsets {
		nr, nc := r+d[0], c+d[1]
		if !g.InBounds(nr, nc) || g.cells[nr*g.cols+nc].Wall {
			continue
		}
		out = append(out, Position{Row: nr, Col: nc})
	}

	return out
}

// Cell returns a copy of the cell at (r,c) and whether the coordinates were in bounds.
func (g *Grid) Cell(r, c int) (Cell, bool) {
	if !g.InBounds(r, c) {
		return Cell{}, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cells[r*g.cols+c], true
}

// IsWall reports whether (r,c) is an in-bounds wall.
func (g *Grid) IsWall(r, c int) bool {
	cell, ok := g.Cell(r, c)
	return ok && cell.Wall
}

// Start returns the current start position.
func (g *Grid) Start() Position {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.start
}

// Goal returns the current goal position.
func (g *Grid) Goal() Position {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.goal
}

// ToggleWall flips the wall flag at (r,c). Start, goal, and out-of-bounds
// cells are left untouched.
func (g *Grid) ToggleWall(r, c int) {
	if !g.InBounds(r, c) {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	cell := &g.cells[r*g.cols+c]
	if cell.Start || cell.Goal {
		return
	}
	cell.Wall = !cell.Wall
}

// SetWall sets the wall flag at (r,c) explicitly, with the same guards as ToggleWall.
func (g *Grid) SetWall(r, c int, wall bool) {
	if !g.InBounds(r, c) {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	cell := &g.cells[r*g.cols+c]
	if cell.Start || cell.Goal {
		return
	}
	cell.Wall = wall
}

// SetStart moves the start to (r,c). Out-of-bounds coordinates are ignored.
// The previous start loses its flag and state; the new cell loses its wall.
func (g *Grid) SetStart(r, c int) {
	if !g.InBounds(r, c) {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	old := &g.cells[g.Index(g.start)]
	old.Start = false
	old.State = None

	g.start = Position{Row: r, Col: c}
	cell := &g.cells[r*g.cols+c]
	cell.Wall = false
	cell.Start = true
	cell.State = None
}

// SetGoal moves the goal to (r,c). Out-of-bounds coordinates are ignored.
// The previous goal loses its flag and state; the new cell loses its wall.
func (g *Grid) SetGoal(r, c int) {
	if !g.InBounds(r, c) {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	old := &g.cells[g.Index(g.goal)]
	old.Goal = false
	old.State = None

	g.goal = Position{Row: r, Col: c}
	cell := &g.cells[r*g.cols+c]
	cell.Wall = false
	cell.Goal = true
	cell.State = None
}

// Mark sets the exploration state of p. Start, goal, and out-of-bounds
// positions are ignored: endpoints keep their own visual identity.
func (g *Grid) Mark(p Position, s State) {
	if !g.Contains(p) {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	cell := &g.cells[g.Index(p)]
	if cell.Start || cell.Goal {
		return
	}
	cell.State = s
}

// ClearStates resets every cell's exploration state to None.
// Walls and endpoints are preserved.
func (g *Grid) ClearStates() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.cells {
		g.cells[i].State = None
	}
}

// Reset removes all walls and states and restores the default start and goal.
func (g *Grid) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.cells {
		g.cells[i] = Cell{}
	}
	g.placeEndpoints(g.defaultStart, g.defaultGoal)
}

// Randomize clears exploration states and then turns every cell other than
// the start and goal into a wall with probability density.
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.cells {
		cell := &g.cells[i]
		cell.State = None
		if cell.Start || cell.Goal {
			continue
		}
		cell.Wall = rng.Float64() < density
	}
}

// Count returns how many cells currently carry state s.
func (g *Grid) Count(s State) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, cell := range g.cells {
		if cell.State == s {
			n++
		}
	}
	return n
}

// Walls returns the positions of all walls in row-major order.
func (g *Grid) Walls() []Position {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Position
	for i, cell := range g.cells {
		if cell.Wall {
			out = append(out, g.PositionAt(i))
		}
	}
	return out
}

// Snapshot returns a deep copy of the grid.
func (g *Grid) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)

	return Snapshot{
		Rows:  g.rows,
		Cols:  g.cols,
		Start: g.start,
		Goal:  g.goal,
		Cells: cells,
	}
}

// placeEndpoints installs start and goal on a grid whose cells carry no flags.
// Caller holds the write lock (or owns g exclusively during construction).
func (g *Grid) placeEndpoints(start, goal Position) {
	g.start, g.goal = start, goal

	s := &g.cells[g.Index(start)]
	s.Wall, s.Start = false, true

	t := &g.cells[g.Index(goal)]
	t.Wall, t.Goal = false, true
}

// clamp pulls p into the grid's bounds.
func (g *Grid) clamp(p Position) Position {
	p.Row = min(max(p.Row, 0), g.rows-1)
	p.Col = min(max(p.Col, 0), g.cols-1)
	return p
}
