package session

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ErrBusy is returned when a run or an edit is requested while a run is in flight.
var ErrBusy = errors.New("session: a run is already in progress")

// EventKind classifies a run event.
type EventKind string

const (
	// EventFrontier reports a discovered (or improved) neighbor.
	EventFrontier EventKind = "frontier"
	// EventVisited reports a position removed from the frontier.
	EventVisited EventKind = "visited"
	// EventPath reports one path cell; path events arrive in start→goal order.
	EventPath EventKind = "path"
	// EventDone closes a run and carries its Report.
	EventDone EventKind = "done"
)

// Event is delivered to a Listener synchronously, in traversal order.
// Frontier and visited events are also emitted for the start and goal cells;
// the grid keeps their state at None, and renderers should do the same.
type Event struct {
	RunID  string        `json:"run_id"`
	Seq    int           `json:"seq"`
	Kind   EventKind     `json:"kind"`
	Pos    grid.Position `json:"pos"`
	Report *Report       `json:"report,omitempty"`
}

// Listener observes run events. It must not block indefinitely: the run waits
// for it before continuing.
type Listener func(Event)

// Request selects the algorithm and pacing of a run.
type Request struct {
	// Algorithm is resolved leniently: unknown names run A*.
	Algorithm string
	// Delay is the pause at each step boundary; zero runs at full speed.
	Delay time.Duration
}

// Report summarises a finished run.
type Report struct {
	RunID     string           `json:"run_id"`
	Algorithm search.Algorithm `json:"algorithm"`
	Found     bool             `json:"found"`
	Visited   int              `json:"visited"`
	Steps     int              `json:"steps"`
	Path      []grid.Position  `json:"path"`
	Elapsed   time.Duration    `json:"elapsed_ns"`
	Canceled  bool             `json:"canceled,omitempty"`
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the structured logger; slog.Default() is used otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}
