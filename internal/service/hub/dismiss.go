package hub

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/healthhub-backend/internal/domain"
	"github.com/heartmarshall/healthhub-backend/pkg/ctxutil"
)

// Dismiss records that the caller suppressed one notification. It does not
// check that the entity is currently eligible; a dismissal for an
// ineligible entity is removed by the next reconciliation. Dismissing twice
// refreshes the timestamp of the existing row.
func (s *Service) Dismiss(ctx context.Context, input DismissInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	key := input.key()
	if err := s.dismissals.Upsert(ctx, userID, key, s.now().UTC()); err != nil {
		return fmt.Errorf("upsert dismissal: %w", err)
	}

	s.log.InfoContext(ctx, "notification dismissed",
		slog.String("user_id", userID.String()),
		slog.String("type", key.Type.String()),
		slog.String("entity_id", key.EntityID),
	)

	return nil
}
