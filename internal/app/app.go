package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/healthhub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/healthhub-backend/internal/adapter/postgres/dismissal"
	"github.com/heartmarshall/healthhub-backend/internal/adapter/postgres/event"
	"github.com/heartmarshall/healthhub-backend/internal/adapter/postgres/track"
	"github.com/heartmarshall/healthhub-backend/internal/auth"
	"github.com/heartmarshall/healthhub-backend/internal/config"
	"github.com/heartmarshall/healthhub-backend/internal/service/hub"
	"github.com/heartmarshall/healthhub-backend/internal/transport/middleware"
	"github.com/heartmarshall/healthhub-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database, and serves HTTP until ctx is cancelled, then drains in-flight
// requests within the configured shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:           logger,
		Tokens:           auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		CORS:             cfg.CORS,
		Health:           rest.NewHealthHandler(pool, BuildVersion(), logger),
		Hub:              rest.NewHubHandler(NewHubService(logger, pool, cfg.Hub), logger),
		DismissLimiter:   limiter,
		DismissPerMinute: cfg.Hub.DismissPerMinute,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewHubService wires the hub service to its PostgreSQL repositories.
func NewHubService(logger *slog.Logger, pool *pgxpool.Pool, cfg config.HubConfig) *hub.Service {
	return hub.NewService(logger, event.New(pool), track.New(pool), dismissal.New(pool), cfg)
}

func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
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
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
