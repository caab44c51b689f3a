package server_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/server"
	"github.com/katalvlaran/gridpath/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newServer(t *testing.T, layout string) (*server.Server, *session.Session) {
	t.Helper()
	g, err := grid.Parse(layout)
	require.NoError(t, err)
	sess := session.New(g)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		require.Eventually(t, func() bool { return !sess.Running() }, 2*time.Second, 5*time.Millisecond)
	})
	return server.New(ctx, sess, server.WithDefaults(search.AStar, 0)), sess
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

const smallLayout = `
	S...
	.##.
	...G`

func TestHealthz(t *testing.T) {
	s, _ := newServer(t, smallLayout)
	w := do(t, s.Handler(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAlgorithms(t *testing.T) {
	s, _ := newServer(t, smallLayout)
	w := do(t, s.Handler(), http.MethodGet, "/api/algorithms", "")
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[[]server.AlgorithmInfo](t, w)
	require.Len(t, got, 4)
	assert.Equal(t, search.AStar, got[0].Name)
	assert.True(t, got[0].Default)
	for _, a := range got {
		assert.NotEmpty(t, a.Description, a.Name)
	}
}

func TestGetGrid(t *testing.T) {
	s, _ := newServer(t, smallLayout)
	w := do(t, s.Handler(), http.MethodGet, "/api/grid", "")
	require.Equal(t, http.StatusOK, w.Code)

	g := decode[server.GridResponse](t, w)
	assert.Equal(t, 3, g.Rows)
	assert.Equal(t, 4, g.Cols)
	assert.Equal(t, grid.Pos(0, 0), g.Start)
	assert.Equal(t, grid.Pos(2, 3), g.Goal)
	assert.Equal(t, []grid.Position{grid.Pos(1, 1), grid.Pos(1, 2)}, g.Walls)
	assert.Empty(t, g.States.Visited)
	assert.False(t, g.Running)
}

func TestEdits(t *testing.T) {
	s, sess := newServer(t, smallLayout)
	h := s.Handler()

	w := do(t, h, http.MethodPost, "/api/grid/walls", `{"row":0,"col":1}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, sess.Grid().IsWall(0, 1))
	assert.Contains(t, decode[server.GridResponse](t, w).Walls, grid.Pos(0, 1))

	w = do(t, h, http.MethodPost, "/api/grid/walls", `{"row":0,"col":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, sess.Grid().IsWall(0, 0), "start cell cannot become a wall")

	w = do(t, h, http.MethodPut, "/api/grid/start", `{"row":2,"col":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, grid.Pos(2, 0), sess.Grid().Start())

	w = do(t, h, http.MethodPut, "/api/grid/goal", `{"row":0,"col":3}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, grid.Pos(0, 3), sess.Grid().Goal())

	w = do(t, h, http.MethodPost, "/api/grid/reset", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, sess.Grid().Walls())
	assert.Equal(t, grid.Pos(0, 0), sess.Grid().Start())
}

func TestEdits_BadRequests(t *testing.T) {
	s, _ := newServer(t, smallLayout)
	h := s.Handler()

	tests := []struct {
		name, method, path, body string
	}{
		{"missing col", http.MethodPost, "/api/grid/walls", `{"row":1}`},
		{"negative row", http.MethodPost, "/api/grid/walls", `{"row":-1,"col":0}`},
		{"outside grid", http.MethodPut, "/api/grid/start", `{"row":3,"col":0}`},
		{"not json", http.MethodPut, "/api/grid/goal", `row=1`},
		{"density too high", http.MethodPost, "/api/grid/randomize", `{"density":1.5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, server.CodeInvalidRequest, decode[server.ErrorResponse](t, w).Code)
		})
	}
}

func TestRandomize(t *testing.T) {
	s, sess := newServer(t, `
		S...................
		....................
		...................G`)

	w := do(t, s.Handler(), http.MethodPost, "/api/grid/randomize", `{"density":0.5,"seed":3}`)
	require.Equal(t, http.StatusOK, w.Code)
	first := sess.Grid().Walls()
	assert.NotEmpty(t, first)

	w = do(t, s.Handler(), http.MethodPost, "/api/grid/randomize", `{"density":0.5,"seed":3}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first, sess.Grid().Walls())

	w = do(t, s.Handler(), http.MethodPost, "/api/grid/clear", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first, sess.Grid().Walls(), "clear keeps walls")
}

func TestRun(t *testing.T) {
	s, sess := newServer(t, smallLayout)
	h := s.Handler()

	w := do(t, h, http.MethodGet, "/api/runs/last", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodPost, "/api/runs", `{"algorithm":"BFS","delay_ms":0}`)
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	ack := decode[server.RunResponse](t, w)
	assert.NotEmpty(t, ack.RunID)
	assert.Equal(t, search.BFS, ack.Algorithm)

	var rep session.Report
	require.Eventually(t, func() bool {
		w := do(t, h, http.MethodGet, "/api/runs/last", "")
		if w.Code != http.StatusOK {
			return false
		}
		return json.Unmarshal(w.Body.Bytes(), &rep) == nil
	}, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, ack.RunID, rep.RunID)
	assert.True(t, rep.Found)
	assert.Len(t, rep.Path, 4)
	assert.Equal(t, 4, sess.Grid().Count(grid.Path))

	g := decode[server.GridResponse](t, do(t, h, http.MethodGet, "/api/grid", ""))
	assert.Len(t, g.States.Path, 4)
	assert.NotEmpty(t, g.States.Visited)
}

func TestRun_DefaultsAndErrors(t *testing.T) {
	s, _ := newServer(t, smallLayout)
	h := s.Handler()

	w := do(t, h, http.MethodPost, "/api/runs", `{"algorithm":"greedy"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, server.CodeUnknownAlgorithm, decode[server.ErrorResponse](t, w).Code)

	w = do(t, h, http.MethodPost, "/api/runs", `{"delay_ms":-5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, "/api/runs", "")
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, search.AStar, decode[server.RunResponse](t, w).Algorithm)
}

func TestRun_BusyWhileRunning(t *testing.T) {
	s, sess := newServer(t, "S........G")
	h := s.Handler()

	w := do(t, h, http.MethodPost, "/api/runs", `{"algorithm":"bfs","delay_ms":1000}`)
	require.Equal(t, http.StatusAccepted, w.Code)

	w = do(t, h, http.MethodPost, "/api/runs", `{"algorithm":"dfs"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, server.CodeBusy, decode[server.ErrorResponse](t, w).Code)

	w = do(t, h, http.MethodPost, "/api/grid/walls", `{"row":0,"col":4}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, sess.Grid().IsWall(0, 4))
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newServer(t, smallLayout)
	w := do(t, s.Handler(), http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gridpath_busy_rejections_total")
}

type wsMessage struct {
	Kind     string          `json:"kind"`
	RunID    string          `json:"run_id"`
	ClientID string          `json:"client_id"`
	Report   *session.Report `json:"report"`
}

func TestWebsocketStreamsRun(t *testing.T) {
	s, _ := newServer(t, smallLayout)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var hello wsMessage
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, server.NoticeHello, hello.Kind)
	assert.NotEmpty(t, hello.ClientID)
	assert.Equal(t, 1, s.Hub().Len())

	resp, err := http.Post(ts.URL+"/api/runs", "application/json", strings.NewReader(`{"algorithm":"astar"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var kinds []string
	var done wsMessage
	for done.Kind != string(session.EventDone) {
		var msg wsMessage
		require.NoError(t, conn.ReadJSON(&msg))
		kinds = append(kinds, msg.Kind)
		done = msg
	}

	assert.Contains(t, kinds, string(session.EventVisited))
	assert.Contains(t, kinds, string(session.EventFrontier))
	assert.Contains(t, kinds, string(session.EventPath))
	require.NotNil(t, done.Report)
	assert.True(t, done.Report.Found)
	assert.Equal(t, done.RunID, done.Report.RunID)
}
