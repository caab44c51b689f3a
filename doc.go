// Package gridpath is a grid pathfinding visualizer: draw walls on a
// rectangular board, pick a start and a goal, and watch A*, Dijkstra,
// BFS, or DFS explore it cell by cell.
//
// 🚀 What is gridpath?
//
//	A small, concurrency-safe toolkit that brings together:
//		• Grid model: walls, start/goal, exploration states, text maps
//		• Priority queue: generic binary min-heap with a comparator
//		• Searches: A* (Manhattan), Dijkstra, BFS, DFS with step hooks
//		• Sessions: one run at a time, paced steps, event streams
//		• Front ends: headless CLI, terminal UI, HTTP + websocket server
//
// ✨ Why gridpath?
//
//   - Deterministic: fixed neighbor order (down, up, right, left) and
//     heap tie-breaking make every run reproducible
//   - Observable: OnFrontier/OnVisited hooks, slog logs, Prometheus
//     metrics, OpenTelemetry spans
//   - Cancellable: every step boundary honours context.Context
//
// Packages:
//
//	grid/     Grid, Cell, Position, Parse/String text maps
//	pq/       generic priority queue (container/heap)
//	search/   BFS, DFS, Dijkstra, A*, Reconstruct, algorithm registry
//	session/  single-flight runs, Pacer, events, Report
//	config/   YAML + env configuration, file watching
//	metrics/  Prometheus instruments
//	render/   text and lipgloss rendering
//	tui/      bubbletea terminal UI
//	server/   gin HTTP API and websocket hub
//	cmd/gridpath  the CLI
//
// Quick example (BFS on a 3×3 grid with the centre blocked):
//
//	S..        S~~
//	.#.   →    *#~
//	..G        **G
//
//	g, _ := grid.Parse("S..\n.#.\n..G")
//	res, _ := search.Search(search.BFS, g, g.Start(), g.Goal())
//	fmt.Println(res.Path()) // [{1 0} {2 0} {2 1}]
package gridpath
