package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type sweepUserLister interface {
	ListUserIDs(ctx context.Context) ([]uuid.UUID, error)
}

type userSweeper interface {
	Sweep(ctx context.Context, userID uuid.UUID) (int, error)
}

// SweepReport summarizes a batch reconciliation run.
type SweepReport struct {
	Users   int
	Deleted int64
	Failed  int64
}

// SweepAll reconciles the dismissals of every user that has any, at most
// concurrency users at a time. A failing user does not stop the others;
// the first error is returned after all users were attempted.
func SweepAll(ctx context.Context, logger *slog.Logger, users sweepUserLister, sweeper userSweeper, concurrency int) (SweepReport, error) {
	ids, err := users.ListUserIDs(ctx)
	if err != nil {
		return SweepReport{}, fmt.Errorf("list users: %w", err)
	}

	if concurrency < 1 {
		concurrency = 1
	}

	var deleted, failed atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(concurrency)

	for _, id := range ids {
		g.Go(func() error {
			n, err := sweeper.Sweep(ctx, id)
			if err != nil {
				failed.Add(1)
				logger.ErrorContext(ctx, "sweep user failed",
					slog.String("user_id", id.String()),
					slog.String("error", err.Error()),
				)
				return fmt.Errorf("sweep user %s: %w", id, err)
			}
			deleted.Add(int64(n))
			return nil
		})
	}

	err = g.Wait()
	report := SweepReport{Users: len(ids), Deleted: deleted.Load(), Failed: failed.Load()}

	logger.InfoContext(ctx, "sweep completed",
		slog.Int("users", report.Users),
		slog.Int64("deleted", report.Deleted),
		slog.Int64("failed", report.Failed),
	)
	return report, err
}
