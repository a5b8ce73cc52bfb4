package hub

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/healthhub-backend/internal/config"
	"github.com/heartmarshall/healthhub-backend/internal/domain"
)

// DefaultLookbackWindow is the window both reminder rules use when none is configured.
const DefaultLookbackWindow = 7 * 24 * time.Hour

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type eventRepo interface {
	ListMissingDetails(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.TrackEvent, error)
}

type trackRepo interface {
	ListSymptomStatus(ctx context.Context, userID uuid.UUID) ([]domain.TrackSymptomStatus, error)
}

type dismissalRepo interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Dismissal, error)
	Upsert(ctx context.Context, userID uuid.UUID, key domain.DismissalKey, dismissedAt time.Time) error
	DeleteMany(ctx context.Context, userID uuid.UUID, keys []domain.DismissalKey) (int, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service derives a user's hub notifications, records dismissals, and
// garbage-collects dismissals whose entity is no longer eligible.
// It holds no per-user state; every call recomputes from the store.
type Service struct {
	events     eventRepo
	tracks     trackRepo
	dismissals dismissalRepo
	window     time.Duration
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new hub service.
func NewService(
	log *slog.Logger,
	events eventRepo,
	tracks trackRepo,
	dismissals dismissalRepo,
	cfg config.HubConfig,
) *Service {
	window := cfg.LookbackWindow
	if window <= 0 {
		window = DefaultLookbackWindow
	}
	return &Service{
		events:     events,
		tracks:     tracks,
		dismissals: dismissals,
		window:     window,
		now:        time.Now,
		log:        log.With("service", "hub"),
	}
}
