// Package track implements the HealthTrack repository using PostgreSQL.
package track

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

var trackColumns = []string{
	"t.id", "t.user_id", "t.title", "t.slug", "t.description", "t.created_at", "t.updated_at",
}

// Repo provides track persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new track repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Title       string    `db:"title"`
	Slug        string    `db:"slug"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type symptomStatusRow struct {
	row
	LatestSymptomAt *time.Time `db:"latest_symptom_at"`
}

// ListSymptomStatus returns every track of the user together with the date
// of its most recent SYMPTOM event (nil if it never had one), oldest track
// first. The latest date is computed in the same query, once per track.
func (r *Repo) ListSymptomStatus(ctx context.Context, userID uuid.UUID) ([]domain.TrackSymptomStatus, error) {
	query, args, err := postgres.Builder().
		Select(trackColumns...).
		Column("MAX(e.date) AS latest_symptom_at").
		From("health_tracks t").
		LeftJoin("events e ON e.track_id = t.id AND e.type = ?", string(domain.EventTypeSymptom)).
		Where(sq.Eq{"t.user_id": userID}).
		GroupBy("t.id").
		OrderBy("t.created_at", "t.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list track symptom status: %w", err)
	}

	var rows []symptomStatusRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list track symptom status: %w", err)
	}

	out := make([]domain.TrackSymptomStatus, len(rows))
	for i, rw := range rows {
		out[i] = domain.TrackSymptomStatus{
			Track:           toDomain(rw.row),
			LatestSymptomAt: rw.LatestSymptomAt,
		}
	}
	return out, nil
}

// GetBySlug returns the user's track with the given slug.
func (r *Repo) GetBySlug(ctx context.Context, userID uuid.UUID, slug string) (*domain.HealthTrack, error) {
	query, args, err := postgres.Builder().
		Select(trackColumns...).
		From("health_tracks t").
		Where(sq.Eq{"t.user_id": userID, "t.slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get track: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "health_track", slug)
	}

	t := toDomain(rw)
	return &t, nil
}

// Create inserts a new track. Returns domain.ErrAlreadyExists if the user
// already has a track with the same slug.
func (r *Repo) Create(ctx context.Context, t *domain.HealthTrack) error {
	query, args, err := postgres.Builder().
		Insert("health_tracks").
		Columns("id", "user_id", "title", "slug", "description", "created_at", "updated_at").
		Values(t.ID, t.UserID, t.Title, t.Slug, t.Description, t.CreatedAt, t.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create track: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "health_track", t.Slug)
	}
	return nil
}

func toDomain(rw row) domain.HealthTrack {
	return domain.HealthTrack{
		ID:          rw.ID,
		UserID:      rw.UserID,
		Title:       rw.Title,
		Slug:        rw.Slug,
		Description: rw.Description,
		CreatedAt:   rw.CreatedAt,
		UpdatedAt:   rw.UpdatedAt,
	}
}
