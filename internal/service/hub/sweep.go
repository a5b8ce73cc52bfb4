package hub

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Sweep reconciles one user's dismissals outside of a read, for the batch
// cleanup command. Returns the number of dismissals deleted.
func (s *Service) Sweep(ctx context.Context, userID uuid.UUID) (int, error) {
	eligible, err := s.ComputeEligible(ctx, userID, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("compute eligible: %w", err)
	}

	dismissals, err := s.dismissals.ListForUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("list dismissals: %w", err)
	}

	return s.Reconcile(ctx, userID, eligible, dismissals)
}
