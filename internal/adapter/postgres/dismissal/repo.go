// Package dismissal implements the hub dismissal store using PostgreSQL.
// Rows are keyed by (user_id, notification_type, entity_id).
package dismissal

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/healthhub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/healthhub-backend/internal/domain"
)

const table = "hub_dismissals"

var columns = []string{"user_id", "notification_type", "entity_id", "dismissed_at", "updated_at"}

// Repo provides dismissal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new dismissal repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	UserID           uuid.UUID `db:"user_id"`
	NotificationType string    `db:"notification_type"`
	EntityID         string    `db:"entity_id"`
	DismissedAt      time.Time `db:"dismissed_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// ListForUser returns every stored dismissal of the user, newest first.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Dismissal, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("dismissed_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list dismissals: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list dismissals: %w", err)
	}

	out := make([]domain.Dismissal, len(rows))
	for i, rw := range rows {
		out[i] = toDomain(rw)
	}
	return out, nil
}

// Upsert creates the dismissal or, if one already exists for the same key,
// refreshes its timestamps. It never creates a duplicate row.
func (r *Repo) Upsert(ctx context.Context, userID uuid.UUID, key domain.DismissalKey, dismissedAt time.Time) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(userID, string(key.Type), key.EntityID, dismissedAt, dismissedAt).
		Suffix("ON CONFLICT (user_id, notification_type, entity_id) DO UPDATE SET dismissed_at = EXCLUDED.dismissed_at, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert dismissal: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "dismissal", key)
	}
	return nil
}

// DeleteMany removes the given keys for the user and returns how many rows
// were deleted. Keys without a stored row are ignored, so the call is
// idempotent. An empty key list issues no query.
func (r *Repo) DeleteMany(ctx context.Context, userID uuid.UUID, keys []domain.DismissalKey) (int, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	match := make(sq.Or, 0, len(keys))
	for _, k := range keys {
		match = append(match, sq.And{
			sq.Eq{"notification_type": string(k.Type)},
			sq.Eq{"entity_id": k.EntityID},
		})
	}

	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"user_id": userID}).
		Where(match).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete dismissals: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete dismissals: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ListUserIDs returns every user that has at least one stored dismissal.
func (r *Repo) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	query, args, err := postgres.Builder().
		Select("DISTINCT user_id").
		From(table).
		OrderBy("user_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list dismissal users: %w", err)
	}

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list dismissal users: %w", err)
	}
	return ids, nil
}

func toDomain(rw row) domain.Dismissal {
	return domain.Dismissal{
		UserID:      rw.UserID,
		Type:        domain.NotificationType(rw.NotificationType),
		EntityID:    rw.EntityID,
		DismissedAt: rw.DismissedAt,
		UpdatedAt:   rw.UpdatedAt,
	}
}
