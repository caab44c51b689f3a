package server

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeUnknownAlgorithm = "UNKNOWN_ALGORITHM"
	CodeBusy             = "BUSY"
	CodeNotFound         = "NOT_FOUND"
)

// ErrorResponse is the body of every 4xx/5xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// AlgorithmInfo describes one supported algorithm.
type AlgorithmInfo struct {
	Name        search.Algorithm `json:"name"`
	Description string           `json:"description"`
	Default     bool             `json:"default,omitempty"`
}

// GridResponse is the JSON form of a grid snapshot.
type GridResponse struct {
	Rows    int             `json:"rows"`
	Cols    int             `json:"cols"`
	Start   grid.Position   `json:"start"`
	Goal    grid.Position   `json:"goal"`
	Walls   []grid.Position `json:"walls"`
	States  StateLists      `json:"states"`
	Running bool            `json:"running"`
}

// StateLists groups the cells carrying each exploration state.
type StateLists struct {
	Frontier []grid.Position `json:"frontier"`
	Visited  []grid.Position `json:"visited"`
	Path     []grid.Position `json:"path"`
}

// CellRequest addresses one cell. Pointers make zero coordinates
// distinguishable from missing ones.
type CellRequest struct {
	Row *int `json:"row" binding:"required,gte=0"`
	Col *int `json:"col" binding:"required,gte=0"`
}

// RandomizeRequest configures POST /api/grid/randomize. Omitted fields use
// the default density and a time-based seed.
type RandomizeRequest struct {
	Density *float64 `json:"density" binding:"omitempty,gte=0,lte=1"`
	Seed    *int64   `json:"seed"`
}

// RunRequest starts a run. Omitted fields use the server defaults.
type RunRequest struct {
	Algorithm string `json:"algorithm"`
	DelayMS   *int   `json:"delay_ms" binding:"omitempty,gte=0,lte=10000"`
}

// RunResponse acknowledges an accepted run.
type RunResponse struct {
	RunID     string           `json:"run_id"`
	Algorithm search.Algorithm `json:"algorithm"`
}

// Notice is a websocket message that is not a session event.
type Notice struct {
	Kind     string `json:"kind"`
	ClientID string `json:"client_id,omitempty"`
}

// Notice kinds.
const (
	NoticeHello       = "hello"
	NoticeGridChanged = "grid_changed"
)
