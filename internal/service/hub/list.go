package hub

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/healthhub-backend/internal/domain"
	"github.com/heartmarshall/healthhub-backend/pkg/ctxutil"
)

// ListNotifications returns the caller's outstanding notifications.
// As a side effect it reconciles stale dismissals; a reconciliation failure
// is logged and does not affect the returned list.
func (s *Service) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now().UTC()

	eligible, err := s.ComputeEligible(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("compute eligible: %w", err)
	}

	dismissals, err := s.dismissals.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list dismissals: %w", err)
	}

	stale := StaleKeys(eligible, dismissals)
	notifications := Assemble(eligible, activeDismissals(dismissals, stale), s.window)

	if _, err := s.deleteStale(ctx, userID, stale); err != nil {
		attrs := append(ctxutil.LogAttrs(ctx), slog.String("error", err.Error()))
		s.log.LogAttrs(ctx, slog.LevelWarn, "dismissal reconciliation failed", attrs...)
	}

	return notifications, nil
}
