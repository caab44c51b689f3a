package grid

import (
	"fmt"
	"strings"
)

// Text symbols understood by Parse and produced by String.
const (
	SymbolOpen  = '.'
	SymbolWall  = '#'
	SymbolStart = 'S'
	SymbolGoal  = 'G'
)

// Parse builds a grid from a text layout, one line per row.
// Blank lines and surrounding whitespace are ignored. The layout must contain
// exactly one 'S' and one 'G'; they become the grid's default endpoints, so
// Reset restores them.
func Parse(text string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(lines[0])
	for _, line := range lines {
		if len(line) != cols {
			return nil, ErrNonRectangular
		}
	}

	var (
		start, goal       Position
		hasStart, hasGoal bool
		walls             []Position
	)
	for r, line := range lines {
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case SymbolOpen:
			case SymbolWall:
				walls = append(walls, Position{Row: r, Col: c})
			case SymbolStart:
				if hasStart {
					return nil, fmt.Errorf("%w: second start at (%d,%d)", ErrDuplicateEndpoint, r, c)
				}
				start, hasStart = Position{Row: r, Col: c}, true
			case SymbolGoal:
				if hasGoal {
					return nil, fmt.Errorf("%w: second goal at (%d,%d)", ErrDuplicateEndpoint, r, c)
				}
				goal, hasGoal = Position{Row: r, Col: c}, true
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadSymbol, line[c], r, c)
			}
		}
	}
	if !hasStart || !hasGoal {
		return nil, ErrMissingEndpoint
	}

	g, err := New(len(lines), cols, WithStart(start), WithGoal(goal))
	if err != nil {
		return nil, err
	}
	for _, w := range walls {
		g.SetWall(w.Row, w.Col, true)
	}

	return g, nil
}

// String renders walls and endpoints in the Parse format.
// Exploration states are not part of the text form.
func (g *Grid) String() string {
	snap := g.Snapshot()

	var b strings.Builder
	b.Grow(snap.Rows * (snap.Cols + 1))
	for r := 0; r < snap.Rows; r++ {
		for c := 0; c < snap.Cols; c++ {
			cell := snap.At(r, c)
			switch {
			case cell.Start:
				b.WriteByte(SymbolStart)
			case cell.Goal:
				b.WriteByte(SymbolGoal)
			case cell.Wall:
				b.WriteByte(SymbolWall)
			default:
				b.WriteByte(SymbolOpen)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
