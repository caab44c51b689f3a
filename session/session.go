package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/search"
)

var tracer = otel.Tracer("gridpath/session")

// Session pairs a grid with a single-flight run guard.
type Session struct {
	grid    *grid.Grid
	guard   *semaphore.Weighted // one run at a time
	mu      sync.Mutex          // orders edits against run start and end
	running atomic.Bool
	logger  *slog.Logger
}

// New returns a session that exclusively owns g.
func New(g *grid.Grid, opts ...Option) *Session {
	s := &Session{
		grid:   g,
		guard:  semaphore.NewWeighted(1),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Grid returns the owned grid for read-only use (rendering, snapshots).
// Mutations must go through the Session.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Running reports whether a run is in flight.
func (s *Session) Running() bool { return s.running.Load() }

// Run clears the previous exploration, executes the requested algorithm
// from the grid's start to its goal, marks the path, and returns a Report.
//
// Only one run may be in flight; a concurrent call returns ErrBusy at once.
// Unknown algorithm names fall back to A*. The listener may be nil.
// If ctx is cancelled the run stops at the next step boundary and the partial
// Report is returned together with the error.
func (s *Session) Run(ctx context.Context, req Request, listener Listener) (*Report, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}

	return s.run(ctx, req, uuid.NewString(), listener)
}

// Start is the asynchronous form of Run. The guard is taken before Start
// returns, so ErrBusy is reported synchronously; the search itself runs on a
// new goroutine and its outcome is collected with Handle.Wait.
func (s *Session) Start(ctx context.Context, req Request, listener Listener) (*Handle, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}

	h := &Handle{RunID: uuid.NewString(), done: make(chan struct{})}
	go func() {
		defer close(h.done)
		h.report, h.err = s.run(ctx, req, h.RunID, listener)
	}()

	return h, nil
}

// Handle tracks a run launched with Start.
type Handle struct {
	RunID string

	done   chan struct{}
	report *Report
	err    error
}

// Done is closed when the run has finished and the guard is released.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Wait blocks until the run finishes and returns what Run would have.
func (h *Handle) Wait() (*Report, error) {
	<-h.done
	return h.report, h.err
}

// acquire takes the run guard. An edit in progress finishes first.
func (s *Session) acquire() error {
	if !s.guard.TryAcquire(1) {
		metrics.BusyRejected()
		s.logger.Debug("request rejected: session busy", "op", "run")
		return ErrBusy
	}
	s.mu.Lock()
	s.running.Store(true)
	s.mu.Unlock()
	return nil
}

func (s *Session) release() {
	s.mu.Lock()
	s.running.Store(false)
	s.mu.Unlock()
	s.guard.Release(1)
}

// run executes one search while the caller holds the guard, and gives the
// guard back before the done event so listeners may edit or run again.
func (s *Session) run(ctx context.Context, req Request, runID string, listener Listener) (*Report, error) {
	release := sync.OnceFunc(s.release)
	defer release()

	algo := search.Resolve(req.Algorithm)
	if _, err := search.Parse(req.Algorithm); err != nil && req.Algorithm != "" {
		s.logger.Warn("unknown algorithm, falling back", "requested", req.Algorithm, "using", algo)
	}

	r := &runner{
		session:  s,
		listener: listener,
		report:   &Report{RunID: runID, Algorithm: algo},
	}

	ctx, span := tracer.Start(ctx, "session.Run", trace.WithAttributes(
		attribute.String("gridpath.run_id", runID),
		attribute.String("gridpath.algorithm", algo.String()),
		attribute.Int64("gridpath.delay_ms", req.Delay.Milliseconds()),
	))
	defer span.End()

	metrics.RunStarted()
	s.logger.Info("run started",
		"run_id", runID,
		"algorithm", algo,
		"delay", req.Delay,
		"start", s.grid.Start(),
		"goal", s.grid.Goal(),
	)

	began := time.Now()
	err := r.execute(ctx, algo, NewPacer(req.Delay))
	r.report.Elapsed = time.Since(began)

	outcome := outcomeOf(r.report, err)
	metrics.RunFinished(algo.String(), outcome, r.report.Visited, len(r.report.Path), r.report.Elapsed)
	span.SetAttributes(
		attribute.Bool("gridpath.found", r.report.Found),
		attribute.Int("gridpath.visited", r.report.Visited),
		attribute.Int("gridpath.path_length", len(r.report.Path)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		s.logger.Warn("run aborted", "run_id", runID, "outcome", outcome, "error", err)
	} else {
		s.logger.Info("run finished",
			"run_id", runID,
			"outcome", outcome,
			"visited", r.report.Visited,
			"path_length", len(r.report.Path),
			"elapsed", r.report.Elapsed,
		)
	}
	release()
	r.emit(EventDone, grid.Position{})

	return r.report, err
}

// runner carries the per-run state: event sequence numbers and the report.
type runner struct {
	session  *Session
	listener Listener
	report   *Report
	seq      int
}

// execute runs the search and then marks and emits the path.
func (r *runner) execute(ctx context.Context, algo search.Algorithm, pacer *Pacer) error {
	g := r.session.grid
	g.ClearStates()

	res, err := search.Search(algo, g, g.Start(), g.Goal(),
		search.WithContext(ctx),
		search.WithOnFrontier(func(p grid.Position) {
			g.Mark(p, grid.Frontier)
			r.emit(EventFrontier, p)
		}),
		search.WithOnVisited(func(p grid.Position) {
			g.Mark(p, grid.Visited)
			r.emit(EventVisited, p)
		}),
		search.WithStepBoundary(pacer.Wait),
	)
	if res != nil {
		r.report.Visited = len(res.Visited)
		r.report.Steps = res.Steps
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			r.report.Canceled = true
		}
		return fmt.Errorf("session: run %s: %w", r.report.RunID, err)
	}

	r.report.Found = res.Found
	r.report.Path = res.Path()
	for _, p := range r.report.Path {
		g.Mark(p, grid.Path)
		r.emit(EventPath, p)
	}

	return nil
}

// emit forwards one event to the listener, if any.
func (r *runner) emit(kind EventKind, p grid.Position) {
	r.seq++
	if r.listener == nil {
		return
	}
	ev := Event{RunID: r.report.RunID, Seq: r.seq, Kind: kind, Pos: p}
	if kind == EventDone {
		ev.Report = r.report
	}
	r.listener(ev)
}

func outcomeOf(rep *Report, err error) string {
	switch {
	case rep.Canceled:
		return metrics.OutcomeCanceled
	case err != nil:
		return metrics.OutcomeError
	case rep.Found:
		return metrics.OutcomeFound
	default:
		return metrics.OutcomeNoPath
	}
}

// edit applies fn to the grid unless a run is in flight.
// Concurrent edits queue behind each other rather than failing.
func (s *Session) edit(op string, fn func(g *grid.Grid)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running.Load() {
		metrics.BusyRejected()
		s.logger.Debug("request rejected: session busy", "op", op)
		return ErrBusy
	}

	fn(s.grid)
	return nil
}

// ToggleWall flips the wall at (r,c); see grid.Grid.ToggleWall.
func (s *Session) ToggleWall(r, c int) error {
	return s.edit("toggle_wall", func(g *grid.Grid) { g.ToggleWall(r, c) })
}

// SetStart moves the start; out-of-bounds coordinates are ignored.
func (s *Session) SetStart(r, c int) error {
	return s.edit("set_start", func(g *grid.Grid) { g.SetStart(r, c) })
}

// SetGoal moves the goal; out-of-bounds coordinates are ignored.
func (s *Session) SetGoal(r, c int) error {
	return s.edit("set_goal", func(g *grid.Grid) { g.SetGoal(r, c) })
}

// ClearVisited erases the exploration of the previous run, keeping walls.
func (s *Session) ClearVisited() error {
	return s.edit("clear_visited", func(g *grid.Grid) { g.ClearStates() })
}

// Reset removes all walls and restores the default endpoints.
func (s *Session) Reset() error {
	return s.edit("reset", func(g *grid.Grid) { g.Reset() })
}

// Randomize replaces the walls with random ones at the given density,
// drawing from a generator seeded with seed.
func (s *Session) Randomize(seed int64, density float64) error {
	return s.edit("randomize", func(g *grid.Grid) {
		g.Randomize(rand.New(rand.NewSource(seed)), density)
	})
}
