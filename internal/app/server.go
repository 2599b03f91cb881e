package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/transkana/internal/config"
	"github.com/heartmarshall/transkana/internal/transport/middleware"
	"github.com/heartmarshall/transkana/internal/transport/rest"
)

// Serve starts the lexicon load in the background and runs the HTTP server
// until ctx is canceled, then shuts it down gracefully.
func Serve(ctx context.Context, rt *Runtime) error {
	cfg := rt.Config
	logger := rt.Logger

	rt.StartLexicon(ctx)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      rt.Handler(limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// Handler builds the HTTP API over the runtime's engine and lexicon.
func (rt *Runtime) Handler(limiter *middleware.RateLimiter) http.Handler {
	cfg := rt.Config
	return rest.NewRouter(rest.RouterDeps{
		Logger:    rt.Logger,
		Convert:   rest.NewConvertHandler(rt.Engine, cfg.Engine, cfg.Server.MaxBodyBytes, rt.Logger),
		Health:    rest.NewHealthHandler(rt.Lexicon, rt.db, BuildVersion()),
		CORS:      cfg.CORS,
		Limiter:   limiter,
		RateLimit: cfg.RateLimit.RequestsPerMinute,
	})
}

// Run is the server entry point: it loads configuration from path,
// initializes the logger and serves until ctx is canceled.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("lexicon_driver", cfg.Lexicon.Driver),
	)

	rt, err := Bootstrap(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer rt.Close()

	return Serve(ctx, rt)
}
