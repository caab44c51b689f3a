// Package server exposes a session over HTTP: a JSON API for editing the
// grid and starting runs, Prometheus metrics, and a websocket stream that
// broadcasts every run event to connected clients.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/session"
)

// DefaultDensity is used by randomize requests that omit a density.
const DefaultDensity = 0.26

// Server routes HTTP requests to a session.
type Server struct {
	sess     *session.Session
	hub      *Hub
	engine   *gin.Engine
	logger   *slog.Logger
	defaults session.Request

	// runCtx parents every run so that runs outlive the request that
	// started them but stop when the server shuts down.
	runCtx context.Context

	mu   sync.Mutex
	last *session.Report
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger; slog.Default() is used otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDefaults sets the algorithm and delay used when a run request omits them.
func WithDefaults(algorithm search.Algorithm, delay time.Duration) Option {
	return func(s *Server) {
		s.defaults = session.Request{Algorithm: algorithm.String(), Delay: delay}
	}
}

// New builds the router. Runs started through it are cancelled when ctx is done.
func New(ctx context.Context, sess *session.Session, opts ...Option) *Server {
	s := &Server{
		sess:     sess,
		logger:   slog.Default(),
		defaults: session.Request{Algorithm: search.Default.String()},
		runCtx:   ctx,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hub = NewHub(s.logger)

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	api.GET("/algorithms", s.handleAlgorithms)
	api.GET("/grid", s.handleGrid)
	api.POST("/grid/walls", s.handleToggleWall)
	api.PUT("/grid/start", s.handleSetStart)
	api.PUT("/grid/goal", s.handleSetGoal)
	api.POST("/grid/reset", s.handleReset)
	api.POST("/grid/clear", s.handleClear)
	api.POST("/grid/randomize", s.handleRandomize)
	api.POST("/runs", s.handleRun)
	api.GET("/runs/last", s.handleLastRun)
	api.GET("/ws", s.hub.serve)

	s.engine = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Hub returns the websocket hub.
func (s *Server) Hub() *Hub { return s.hub }

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("http server stopped")
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()
		s.logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(began),
		)
	}
}

func (s *Server) handleAlgorithms(c *gin.Context) {
	algos := search.Algorithms()
	out := make([]AlgorithmInfo, len(algos))
	for i, a := range algos {
		out[i] = AlgorithmInfo{Name: a, Description: search.Describe(a), Default: a.String() == s.defaults.Algorithm}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGrid(c *gin.Context) {
	snap := s.sess.Grid().Snapshot()
	resp := GridResponse{
		Rows:    snap.Rows,
		Cols:    snap.Cols,
		Start:   snap.Start,
		Goal:    snap.Goal,
		Walls:   []grid.Position{},
		Running: s.sess.Running(),
		States: StateLists{
			Frontier: []grid.Position{},
			Visited:  []grid.Position{},
			Path:     []grid.Position{},
		},
	}
	for r := 0; r < snap.Rows; r++ {
		for col := 0; col < snap.Cols; col++ {
			cell, p := snap.At(r, col), grid.Pos(r, col)
			if cell.Wall {
				resp.Walls = append(resp.Walls, p)
			}
			switch cell.State {
			case grid.Frontier:
				resp.States.Frontier = append(resp.States.Frontier, p)
			case grid.Visited:
				resp.States.Visited = append(resp.States.Visited, p)
			case grid.Path:
				resp.States.Path = append(resp.States.Path, p)
			}
		}
	}
	c.JSON(http.StatusOK, resp)
}

// bindCell decodes a CellRequest and checks it against the grid bounds.
func (s *Server) bindCell(c *gin.Context) (grid.Position, bool) {
	var req CellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, CodeInvalidRequest, err)
		return grid.Position{}, false
	}
	p := grid.Pos(*req.Row, *req.Col)
	if !s.sess.Grid().Contains(p) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cell outside the grid", Code: CodeInvalidRequest})
		return grid.Position{}, false
	}
	return p, true
}

func (s *Server) handleToggleWall(c *gin.Context) {
	if p, ok := s.bindCell(c); ok {
		s.finishEdit(c, "toggle_wall", s.sess.ToggleWall(p.Row, p.Col))
	}
}

func (s *Server) handleSetStart(c *gin.Context) {
	if p, ok := s.bindCell(c); ok {
		s.finishEdit(c, "set_start", s.sess.SetStart(p.Row, p.Col))
	}
}

func (s *Server) handleSetGoal(c *gin.Context) {
	if p, ok := s.bindCell(c); ok {
		s.finishEdit(c, "set_goal", s.sess.SetGoal(p.Row, p.Col))
	}
}

func (s *Server) handleReset(c *gin.Context) {
	s.finishEdit(c, "reset", s.sess.Reset())
}

func (s *Server) handleClear(c *gin.Context) {
	s.finishEdit(c, "clear", s.sess.ClearVisited())
}

func (s *Server) handleRandomize(c *gin.Context) {
	var req RandomizeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, CodeInvalidRequest, err)
			return
		}
	}
	density := DefaultDensity
	if req.Density != nil {
		density = *req.Density
	}
	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	s.finishEdit(c, "randomize", s.sess.Randomize(seed, density))
}

// finishEdit replies to an edit with the new grid, or 409 if a run holds
// the session.
func (s *Server) finishEdit(c *gin.Context, op string, err error) {
	if errors.Is(err, session.ErrBusy) {
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: CodeBusy})
		return
	}
	if err != nil {
		s.logger.Error("edit failed", "op", op, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "INTERNAL"})
		return
	}
	s.hub.Broadcast(Notice{Kind: NoticeGridChanged})
	s.handleGrid(c)
}

func (s *Server) handleRun(c *gin.Context) {
	var req RunRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, CodeInvalidRequest, err)
			return
		}
	}

	run := s.defaults
	if req.Algorithm != "" {
		algo, err := search.Parse(req.Algorithm)
		if err != nil {
			badRequest(c, CodeUnknownAlgorithm, err)
			return
		}
		run.Algorithm = algo.String()
	}
	if req.DelayMS != nil {
		run.Delay = time.Duration(*req.DelayMS) * time.Millisecond
	}

	broadcast := s.hub.Listener()
	h, err := s.sess.Start(s.runCtx, run, func(ev session.Event) {
		if ev.Kind == session.EventDone {
			s.mu.Lock()
			s.last = ev.Report
			s.mu.Unlock()
		}
		broadcast(ev)
	})
	if errors.Is(err, session.ErrBusy) {
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: CodeBusy})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "INTERNAL"})
		return
	}

	c.JSON(http.StatusAccepted, RunResponse{RunID: h.RunID, Algorithm: search.Resolve(run.Algorithm)})
}

func (s *Server) handleLastRun(c *gin.Context) {
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()
	if last == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no finished run", Code: CodeNotFound})
		return
	}
	c.JSON(http.StatusOK, last)
}

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: code})
}
