// Package render draws grid snapshots as text for the CLI and the TUI.
//
// Every cell is one glyph. With color enabled, glyphs are styled with
// lipgloss; without it the output is plain ASCII and stable enough to
// compare in tests.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/session"
)

// Glyphs used for each kind of cell.
const (
	GlyphOpen     = '.'
	GlyphWall     = '#'
	GlyphStart    = 'S'
	GlyphGoal     = 'G'
	GlyphFrontier = 'o'
	GlyphVisited  = '~'
	GlyphPath     = '*'
)

// Palette.
var (
	colorWall     = lipgloss.Color("#3C4B5C")
	colorStart    = lipgloss.Color("#2ECC71")
	colorGoal     = lipgloss.Color("#E74C3C")
	colorFrontier = lipgloss.Color("#F4D03F")
	colorVisited  = lipgloss.Color("#5DADE2")
	colorPath     = lipgloss.Color("#F39C12")
	colorMuted    = lipgloss.Color("241")
)

// Theme maps cell kinds to styles.
type Theme struct {
	Color bool

	Open     lipgloss.Style
	Wall     lipgloss.Style
	Start    lipgloss.Style
	Goal     lipgloss.Style
	Frontier lipgloss.Style
	Visited  lipgloss.Style
	Path     lipgloss.Style
	Cursor   lipgloss.Style
	Muted    lipgloss.Style
}

// NewTheme returns the default theme; color=false disables all styling.
func NewTheme(color bool) Theme {
	if !color {
		return Theme{}
	}
	return Theme{
		Color:    true,
		Open:     lipgloss.NewStyle().Foreground(colorMuted),
		Wall:     lipgloss.NewStyle().Foreground(colorWall).Bold(true),
		Start:    lipgloss.NewStyle().Foreground(colorStart).Bold(true),
		Goal:     lipgloss.NewStyle().Foreground(colorGoal).Bold(true),
		Frontier: lipgloss.NewStyle().Foreground(colorFrontier),
		Visited:  lipgloss.NewStyle().Foreground(colorVisited),
		Path:     lipgloss.NewStyle().Foreground(colorPath).Bold(true),
		Cursor:   lipgloss.NewStyle().Reverse(true),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
	}
}

// Glyph returns the character drawn for c.
// Endpoints and walls take precedence over exploration state.
func Glyph(c grid.Cell) rune {
	switch {
	case c.Start:
		return GlyphStart
	case c.Goal:
		return GlyphGoal
	case c.Wall:
		return GlyphWall
	}
	switch c.State {
	case grid.Frontier:
		return GlyphFrontier
	case grid.Visited:
		return GlyphVisited
	case grid.Path:
		return GlyphPath
	default:
		return GlyphOpen
	}
}

func (t Theme) style(c grid.Cell) lipgloss.Style {
	switch Glyph(c) {
	case GlyphStart:
		return t.Start
	case GlyphGoal:
		return t.Goal
	case GlyphWall:
		return t.Wall
	case GlyphFrontier:
		return t.Frontier
	case GlyphVisited:
		return t.Visited
	case GlyphPath:
		return t.Path
	default:
		return t.Open
	}
}

// Grid draws snap, one line per row, each line ending in a newline.
// A non-nil cursor is highlighted; in plain mode it is drawn as '@'.
func Grid(snap grid.Snapshot, t Theme, cursor *grid.Position) string {
	var b strings.Builder
	b.Grow(snap.Rows * (snap.Cols + 1))
	for r := 0; r < snap.Rows; r++ {
		for c := 0; c < snap.Cols; c++ {
			cell := snap.At(r, c)
			glyph := string(Glyph(cell))
			onCursor := cursor != nil && cursor.Row == r && cursor.Col == c
			switch {
			case !t.Color && onCursor:
				b.WriteByte('@')
			case !t.Color:
				b.WriteString(glyph)
			case onCursor:
				b.WriteString(t.style(cell).Inherit(t.Cursor).Render(glyph))
			default:
				b.WriteString(t.style(cell).Render(glyph))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Legend lists the glyphs on one line.
func Legend(t Theme) string {
	items := []struct {
		glyph rune
		label string
		style lipgloss.Style
	}{
		{GlyphStart, "start", t.Start},
		{GlyphGoal, "goal", t.Goal},
		{GlyphWall, "wall", t.Wall},
		{GlyphFrontier, "frontier", t.Frontier},
		{GlyphVisited, "visited", t.Visited},
		{GlyphPath, "path", t.Path},
	}
	parts := make([]string, len(items))
	for i, it := range items {
		g := string(it.glyph)
		if t.Color {
			g = it.style.Render(g)
		}
		parts[i] = g + " " + it.label
	}
	return strings.Join(parts, "  ")
}

// Summary describes a finished run in one line.
func Summary(rep *session.Report) string {
	if rep == nil {
		return ""
	}
	elapsed := rep.Elapsed.Round(time.Microsecond)
	switch {
	case rep.Canceled:
		return fmt.Sprintf("%s: canceled after visiting %d cells (%s)", rep.Algorithm, rep.Visited, elapsed)
	case rep.Found:
		return fmt.Sprintf("%s: path of %d cells, %d visited (%s)", rep.Algorithm, len(rep.Path), rep.Visited, elapsed)
	default:
		return fmt.Sprintf("%s: no path, %d visited (%s)", rep.Algorithm, rep.Visited, elapsed)
	}
}
