package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/katalvlaran/gridpath/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHandler_ExposesRunMetrics records a run and scrapes the handler.
func TestHandler_ExposesRunMetrics(t *testing.T) {
	metrics.RunStarted()
	metrics.RunFinished("bfs", metrics.OutcomeFound, 12, 5, 20*time.Millisecond)
	metrics.BusyRejected()

	srv := httptest.NewServer(metrics.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, `gridpath_runs_total{algorithm="bfs",outcome="found"}`)
	assert.Contains(t, text, "gridpath_busy_rejections_total")
	assert.Contains(t, text, "gridpath_path_length_bucket")
}
