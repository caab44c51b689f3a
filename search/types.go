package search

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrOutOfBounds is returned when start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("search: position out of bounds")

	// ErrUnknownAlgorithm is returned by Parse and New for an unrecognised name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Pathfinder is the capability shared by all four algorithms.
type Pathfinder interface {
	// Algorithm reports which algorithm this is.
	Algorithm() Algorithm

	// Search explores g from start until goal is expanded or the frontier is
	// exhausted, reporting progress through the hooks in opts.
	Search(g *grid.Grid, start, goal grid.Position, opts ...Option) (*Result, error)
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds the context and hooks a search reports through.
type Options struct {
	// Ctx allows cancellation; it is checked once per loop iteration.
	Ctx context.Context

	// OnFrontier is called when a neighbor is discovered or its cost improves.
	OnFrontier func(p grid.Position)

	// OnVisited is called when a position is removed from the frontier.
	OnVisited func(p grid.Position)

	// StepBoundary is called once per expanded position. A non-nil error aborts.
	StepBoundary func(ctx context.Context) error
}

// DefaultOptions returns Options with a background context, no-op hooks,
// and a step boundary that only reports context cancellation.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		OnFrontier:   func(grid.Position) {},
		OnVisited:    func(grid.Position) {},
		StepBoundary: func(ctx context.Context) error { return ctx.Err() },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnFrontier registers the frontier-discovered hook.
func WithOnFrontier(fn func(p grid.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFrontier = fn
		}
	}
}

// WithOnVisited registers the node-visited hook.
func WithOnVisited(fn func(p grid.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisited = fn
		}
	}
}

// WithStepBoundary registers the per-expansion suspension point.
func WithStepBoundary(fn func(ctx context.Context) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.StepBoundary = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Predecessors: discovered position → the position it was discovered from.
//   - Visited: positions in the order they left the frontier.
//   - Found: whether the goal was expanded.
//   - Steps: how many step boundaries were crossed.
type Result struct {
	Algorithm    Algorithm
	Start, Goal  grid.Position
	Predecessors map[grid.Position]grid.Position
	Visited      []grid.Position
	Found        bool
	Steps        int
}

// Path returns the intermediate cells from Start to Goal, endpoints excluded.
// It is empty when the goal was never reached or is adjacent to the start.
// A goal that was discovered but never expanded does not count.
func (r *Result) Path() []grid.Position {
	if !r.Found {
		return []grid.Position{}
	}
	return Reconstruct(r.Predecessors, r.Goal, r.Start)
}
