// Package metrics exposes Prometheus instruments for pathfinding runs.
//
// Instruments are registered on the default registry at init via promauto;
// Handler serves them for scraping.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run outcomes used as the "outcome" label.
const (
	OutcomeFound    = "found"
	OutcomeNoPath   = "no_path"
	OutcomeCanceled = "canceled"
	OutcomeError    = "error"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_runs_total",
		Help: "Total search runs by algorithm and outcome",
	}, []string{"algorithm", "outcome"})

	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_run_duration_seconds",
		Help:    "Wall-clock duration of a run, step delays included",
		Buckets: []float64{0.001, 0.01, 0.1, 1, 5, 15, 60},
	}, []string{"algorithm"})

	visitedCells = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_visited_cells",
		Help:    "Cells expanded per run",
		Buckets: []float64{1, 10, 50, 100, 200, 400, 800, 1600},
	}, []string{"algorithm"})

	pathLength = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_path_length",
		Help:    "Intermediate cells on the reconstructed path of successful runs",
		Buckets: []float64{0, 5, 10, 20, 40, 80, 160},
	}, []string{"algorithm"})

	busyRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridpath_busy_rejections_total",
		Help: "Run or edit requests rejected because a run was in flight",
	})

	activeRuns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gridpath_active_runs",
		Help: "Runs currently in flight (0 or 1)",
	})

	wsClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gridpath_ws_clients",
		Help: "Connected websocket event subscribers",
	})
)

// RunStarted marks a run as in flight.
func RunStarted() { activeRuns.Inc() }

// RunFinished records the outcome of a run and clears the in-flight gauge.
// pathLen is only observed for OutcomeFound.
func RunFinished(algorithm, outcome string, visited, pathLen int, elapsed time.Duration) {
	activeRuns.Dec()
	runsTotal.WithLabelValues(algorithm, outcome).Inc()
	runDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	visitedCells.WithLabelValues(algorithm).Observe(float64(visited))
	if outcome == OutcomeFound {
		pathLength.WithLabelValues(algorithm).Observe(float64(pathLen))
	}
}

// BusyRejected counts a request turned away by the single-flight guard.
func BusyRejected() { busyRejections.Inc() }

// ClientConnected counts a new websocket subscriber.
func ClientConnected() { wsClients.Inc() }

// ClientDisconnected removes a websocket subscriber from the gauge.
func ClientDisconnected() { wsClients.Dec() }

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler { return promhttp.Handler() }
