// Package tui is the interactive terminal front end: a cursor-driven grid
// editor that animates runs as the session reports them.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/session"
)

// RandomDensity is the wall probability used by the randomize key.
const RandomDensity = 0.26

// delaySteps are the speeds cycled by the faster/slower keys.
var delaySteps = []time.Duration{
	0,
	5 * time.Millisecond,
	10 * time.Millisecond,
	20 * time.Millisecond,
	50 * time.Millisecond,
	100 * time.Millisecond,
	250 * time.Millisecond,
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4"))
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F"))
)

// eventMsg carries one session event into Update.
type eventMsg session.Event

// finishedMsg reports that the background run has released the session.
type finishedMsg struct {
	report *session.Report
	err    error
}

// Options configures a Model.
type Options struct {
	Algorithm search.Algorithm
	Delay     time.Duration
	Color     bool
	Seed      int64
}

// Model is the bubbletea model.
type Model struct {
	sess   *session.Session
	theme  render.Theme
	keys   keyMap
	help   help.Model
	algos  []search.Algorithm
	algo   int
	delay  time.Duration
	seed   int64
	cursor grid.Position

	running bool
	cancel  context.CancelFunc
	events  chan session.Event
	handle  *session.Handle

	report *session.Report
	status string
}

// New returns a model editing the session's grid, with the cursor on the start.
func New(sess *session.Session, opts Options) Model {
	algos := search.Algorithms()
	idx := 0
	for i, a := range algos {
		if a == opts.Algorithm {
			idx = i
		}
	}
	return Model{
		sess:   sess,
		theme:  render.NewTheme(opts.Color),
		keys:   defaultKeys(),
		help:   help.New(),
		algos:  algos,
		algo:   idx,
		delay:  opts.Delay,
		seed:   opts.Seed,
		cursor: sess.Grid().Start(),
	}
}

// Algorithm returns the selected algorithm.
func (m Model) Algorithm() search.Algorithm { return m.algos[m.algo] }

// Cursor returns the cursor position.
func (m Model) Cursor() grid.Position { return m.cursor }

// Delay returns the step delay used for the next run.
func (m Model) Delay() time.Duration { return m.delay }

// Running reports whether a run started from this model is in flight.
func (m Model) Running() bool { return m.running }

// Report returns the last finished run, if any.
func (m Model) Report() *session.Report { return m.report }

// Status returns the current status line.
func (m Model) Status() string { return m.status }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case eventMsg:
		return m, m.waitForRun()

	case finishedMsg:
		m.running = false
		if m.cancel != nil {
			m.cancel()
		}
		m.cancel, m.events, m.handle = nil, nil, nil
		m.report = msg.report
		switch {
		case msg.err != nil && msg.report != nil && msg.report.Canceled:
			m.status = render.Summary(msg.report)
		case msg.err != nil:
			m.status = "run failed: " + msg.err.Error()
		default:
			m.status = render.Summary(msg.report)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Cancel):
		if m.running {
			m.cancel()
			m.status = "stopping..."
		}

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)

	case key.Matches(msg, m.keys.Faster):
		m.delay = stepDelay(m.delay, -1)
		m.status = "delay " + m.delay.String()
	case key.Matches(msg, m.keys.Slower):
		m.delay = stepDelay(m.delay, 1)
		m.status = "delay " + m.delay.String()

	case key.Matches(msg, m.keys.NextAlgo):
		m.algo = (m.algo + 1) % len(m.algos)
	case key.Matches(msg, m.keys.Algo):
		if i := int(msg.String()[0] - '1'); i >= 0 && i < len(m.algos) {
			m.algo = i
		}

	case key.Matches(msg, m.keys.Run):
		return m.startRun()

	case key.Matches(msg, m.keys.Wall):
		m.apply("wall", m.sess.ToggleWall(m.cursor.Row, m.cursor.Col))
	case key.Matches(msg, m.keys.Start):
		m.apply("start", m.sess.SetStart(m.cursor.Row, m.cursor.Col))
	case key.Matches(msg, m.keys.Goal):
		m.apply("goal", m.sess.SetGoal(m.cursor.Row, m.cursor.Col))
	case key.Matches(msg, m.keys.Clear):
		m.apply("clear", m.sess.ClearVisited())
	case key.Matches(msg, m.keys.Reset):
		m.apply("reset", m.sess.Reset())
	case key.Matches(msg, m.keys.Randomize):
		m.seed++
		m.apply("randomize", m.sess.Randomize(m.seed, RandomDensity))
	}
	return m, nil
}

func (m *Model) moveCursor(dr, dc int) {
	g := m.sess.Grid()
	next := grid.Pos(m.cursor.Row+dr, m.cursor.Col+dc)
	if g.Contains(next) {
		m.cursor = next
	}
}

// apply records the outcome of an edit in the status line.
func (m *Model) apply(op string, err error) {
	switch {
	case errors.Is(err, session.ErrBusy):
		m.status = "busy: wait for the run to finish"
	case err != nil:
		m.status = op + ": " + err.Error()
	default:
		m.status = ""
	}
}

func (m Model) startRun() (tea.Model, tea.Cmd) {
	if m.running {
		return m, nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan session.Event, 64)
	listener := func(ev session.Event) {
		if ev.Kind == session.EventDone {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	}

	req := session.Request{Algorithm: m.Algorithm().String(), Delay: m.delay}
	h, err := m.sess.Start(ctx, req, listener)
	if err != nil {
		cancel()
		m.apply("run", err)
		return m, nil
	}

	m.running = true
	m.cancel, m.events, m.handle = cancel, events, h
	m.report = nil
	m.status = fmt.Sprintf("running %s...", m.Algorithm())
	return m, m.waitForRun()
}

// waitForRun delivers the next event, or the finish once the run is over.
// Events only trigger a redraw; the session has already marked the grid.
func (m Model) waitForRun() tea.Cmd {
	events, h := m.events, m.handle
	if h == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case ev := <-events:
			return eventMsg(ev)
		case <-h.Done():
			rep, err := h.Wait()
			return finishedMsg{report: rep, err: err}
		}
	}
}

func stepDelay(cur time.Duration, dir int) time.Duration {
	i := 0
	for i < len(delaySteps)-1 && delaySteps[i] < cur {
		i++
	}
	i += dir
	if i < 0 {
		i = 0
	}
	if i >= len(delaySteps) {
		i = len(delaySteps) - 1
	}
	return delaySteps[i]
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	algo := m.Algorithm()
	b.WriteString(titleStyle.Render(fmt.Sprintf("gridpath  %s  delay %s", algo, m.delay)))
	b.WriteString("\n")
	b.WriteString(descStyle.Render(search.Describe(algo)))
	b.WriteString("\n\n")

	cursor := m.cursor
	b.WriteString(render.Grid(m.sess.Grid().Snapshot(), m.theme, &cursor))
	b.WriteString("\n")
	b.WriteString(render.Legend(m.theme))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(sess *session.Session, opts Options) error {
	_, err := tea.NewProgram(New(sess, opts), tea.WithAltScreen()).Run()
	return err
}
