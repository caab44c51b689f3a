// Package session owns a grid and runs one search over it at a time.
//
// A Session is the explicit replacement for global visualizer state: the
// grid, the single-flight guard, and the pacing of the step boundary all
// live here. Runs mark the grid as they progress (frontier, visited, path)
// and forward every change to a Listener, which is how the TUI and the
// websocket hub animate a run.
//
// Edits (walls, endpoints, reset, randomize) fail with ErrBusy while a run is
// in flight instead of mutating a grid that a search is reading.
//
// Concurrency:
//
//   - A semaphore of weight one is the run guard; TryAcquire never blocks, so
//     a second Run returns ErrBusy immediately.
//   - A mutex serializes edits with each other and with the start and end of
//     a run. Two edits never reject each other; an edit is refused only while
//     a run holds the guard.
//   - The guard is released before the done event, so a listener reacting to
//     done may edit the grid or start the next run.
//   - Listeners run synchronously on the run's goroutine, in traversal order.
//   - The step boundary is a Pacer (golang.org/x/time/rate) that spaces
//     expansions Delay apart and honours context cancellation.
//
// Observability:
//
//   - Each run gets a uuid RunID, an OpenTelemetry span, slog records at
//     start and finish, and Prometheus counters via the metrics package.
package session
