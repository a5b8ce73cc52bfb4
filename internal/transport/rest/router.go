package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/healthhub-backend/internal/config"
	"github.com/heartmarshall/healthhub-backend/internal/transport/middleware"
)

// TokenValidator resolves a bearer token to a user id.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps holds everything NewRouter wires together.
type RouterDeps struct {
	Logger *slog.Logger
	Tokens TokenValidator
	CORS   config.CORSConfig
	Health *HealthHandler
	Hub    *HubHandler
	// DismissLimiter, when set, limits dismiss calls to DismissPerMinute per user.
	DismissLimiter   *middleware.RateLimiter
	DismissPerMinute int
}

// NewRouter builds the HTTP handler. Probes are public; everything under
// /api requires a valid bearer token.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
	)

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Route("/api/hub", func(r chi.Router) {
		r.Use(middleware.Auth(d.Tokens), middleware.RequireAuth)

		r.Get("/notifications", d.Hub.List)

		dismiss := r.With()
		if d.DismissLimiter != nil && d.DismissPerMinute > 0 {
			dismiss = r.With(d.DismissLimiter.Limit(d.DismissPerMinute))
		}
		dismiss.Post("/notifications/dismiss", d.Hub.Dismiss)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
