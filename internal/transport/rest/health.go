package rest

import (
	"context"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// lexiconStatus reports the state of the reading table load.
type lexiconStatus interface {
	Ready() bool
	Len() int
	Err() error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	lexicon lexiconStatus
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler. db may be nil when the lexicon is
// not backed by a database server.
func NewHealthHandler(lex lexiconStatus, db dbPinger, version string) *HealthHandler {
	return &HealthHandler{lexicon: lex, db: db, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Entries int    `json:"entries,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 503 until the lexicon has loaded.
// Conversion works before that, but without dictionary readings.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.lexicon.Ready() {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "loading",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check with lexicon state, optional DB latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]CompStatus)
	overallStatus := "ok"

	switch {
	case h.lexicon.Ready():
		components["lexicon"] = CompStatus{Status: "ok", Entries: h.lexicon.Len()}
	case h.lexicon.Err() != nil:
		components["lexicon"] = CompStatus{Status: "down", Error: h.lexicon.Err().Error()}
		overallStatus = "degraded"
	default:
		components["lexicon"] = CompStatus{Status: "loading"}
		overallStatus = "degraded"
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		start := time.Now()
		err := h.db.Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			components["database"] = CompStatus{Status: "down"}
			overallStatus = "down"
		} else {
			components["database"] = CompStatus{
				Status:  "ok",
				Latency: latency.String(),
			}
		}
	}

	status := http.StatusOK
	if overallStatus == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
