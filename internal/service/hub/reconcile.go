package hub

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/healthhub-backend/internal/domain"
)

// StaleKeys returns the keys of stored dismissals that no longer suppress
// anything, in the order the dismissals were given. A dismissal is stale
// when its entity is no longer eligible, or when it was made before
// eligible.From: a reminder that is still due after a full window is a new
// occurrence, and the old dismissal does not cover it.
func StaleKeys(eligible Eligible, dismissals []domain.Dismissal) []domain.DismissalKey {
	live := eligible.Keys()

	var stale []domain.DismissalKey
	for _, d := range dismissals {
		if _, ok := live[d.Key()]; !ok || d.DismissedAt.Before(eligible.From) {
			stale = append(stale, d.Key())
		}
	}
	return stale
}

// activeDismissals returns the keys that still suppress a notification.
func activeDismissals(dismissals []domain.Dismissal, stale []domain.DismissalKey) map[domain.DismissalKey]struct{} {
	out := make(map[domain.DismissalKey]struct{}, len(dismissals))
	for _, d := range dismissals {
		out[d.Key()] = struct{}{}
	}
	for _, k := range stale {
		delete(out, k)
	}
	return out
}

// Reconcile deletes the user's stale dismissals (see StaleKeys), so a later
// occurrence of the same reminder is not suppressed. Returns the number of
// rows deleted. No query is issued when nothing is stale.
func (s *Service) Reconcile(ctx context.Context, userID uuid.UUID, eligible Eligible, dismissals []domain.Dismissal) (int, error) {
	return s.deleteStale(ctx, userID, StaleKeys(eligible, dismissals))
}

func (s *Service) deleteStale(ctx context.Context, userID uuid.UUID, stale []domain.DismissalKey) (int, error) {
	if len(stale) == 0 {
		return 0, nil
	}

	deleted, err := s.dismissals.DeleteMany(ctx, userID, stale)
	if err != nil {
		return 0, fmt.Errorf("delete stale dismissals: %w", err)
	}

	s.log.DebugContext(ctx, "stale dismissals removed",
		slog.String("user_id", userID.String()),
		slog.Int("stale", len(stale)),
		slog.Int("deleted", deleted),
	)

	return deleted, nil
}
