package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/transkana/internal/config"
	"github.com/heartmarshall/transkana/internal/transport/middleware"
)

// RouterDeps groups everything NewRouter needs.
type RouterDeps struct {
	Logger    *slog.Logger
	Convert   *ConvertHandler
	Health    *HealthHandler
	CORS      config.CORSConfig
	Limiter   *middleware.RateLimiter
	RateLimit int
}

// NewRouter builds the HTTP handler: probes at the root, conversion under /api/v1.
func NewRouter(d RouterDeps) http.Handler {
	var limit middleware.Middleware
	if d.Limiter != nil {
		limit = d.Limiter.Limit(d.RateLimit)
	}
	convert := middleware.Chain(limit)(http.HandlerFunc(d.Convert.Convert))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	mux.Handle("POST /api/v1/convert", convert)

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
	)(mux)
}
