package grid

import (
	"errors"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: must have at least one row and one column")
	// ErrNonRectangular indicates text rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadSymbol indicates an unknown character in a text layout.
	ErrBadSymbol = errors.New("grid: unknown cell symbol")
	// ErrMissingEndpoint indicates a text layout without a start or a goal.
	ErrMissingEndpoint = errors.New("grid: layout must contain one start and one goal")
	// ErrDuplicateEndpoint indicates a text layout with more than one start or goal.
	ErrDuplicateEndpoint = errors.New("grid: layout contains more than one start or goal")
)

// Position identifies a cell by row and column. It is comparable and is used
// directly as a map key by the search algorithms.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Pos is shorthand for Position{Row: r, Col: c}.
func Pos(r, c int) Position { return Position{Row: r, Col: c} }

// State is the exploration state a run assigns to a cell.
type State int

const (
	// None means the cell has not been touched by the current run.
	None State = iota
	// Frontier means the cell was discovered and awaits expansion.
	Frontier
	// Visited means the cell was removed from the frontier and expanded.
	Visited
	// Path means the cell lies on the reconstructed start→goal path.
	Path
)

// String returns the lower-case state name ("" for None), matching the CSS
// class names the web front-end uses.
func (s State) String() string {
	switch s {
	case Frontier:
		return "frontier"
	case Visited:
		return "visited"
	case Path:
		return "path"
	default:
		return ""
	}
}

// Cell holds the attributes of a single grid cell.
type Cell struct {
	Wall  bool  // blocks traversal
	Start bool  // the unique start cell
	Goal  bool  // the unique goal cell
	State State // exploration state of the current run
}

// Option configures New.
type Option func(*options)

type options struct {
	start, goal Position
}

// WithStart overrides the default start cell. Out-of-bounds values are clamped.
func WithStart(p Position) Option {
	return func(o *options) {
		o.start = p
	}
}

// WithGoal overrides the default goal cell. Out-of-bounds values are clamped.
func WithGoal(p Position) Option {
	return func(o *options) {
		o.goal = p
	}
}

// Snapshot is an immutable copy of a grid, used by renderers and the HTTP API.
type Snapshot struct {
	Rows  int      `json:"rows"`
	Cols  int      `json:"cols"`
	Start Position `json:"start"`
	Goal  Position `json:"goal"`
	Cells []Cell   `json:"-"` // row-major, len == Rows*Cols
}

// At returns the cell at (r,c) in the snapshot. The caller must stay in bounds.
func (s Snapshot) At(r, c int) Cell {
	return s.Cells[r*s.Cols+c]
}
