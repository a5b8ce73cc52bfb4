// Package event implements read and update queries over track events.
package event

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

var eventColumns = []string{
	"e.id", "e.track_id", "e.date", "e.type", "e.title", "e.notes", "e.file_url",
	"e.symptom_type", "e.severity", "e.created_at", "e.updated_at",
}

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	TrackID     uuid.UUID `db:"track_id"`
	Date        time.Time `db:"date"`
	Type        string    `db:"type"`
	Title       string    `db:"title"`
	Notes       *string   `db:"notes"`
	FileURL     *string   `db:"file_url"`
	SymptomType *string   `db:"symptom_type"`
	Severity    *int      `db:"severity"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type trackEventRow struct {
	row
	TrackSlug  string `db:"track_slug"`
	TrackTitle string `db:"track_title"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListMissingDetails returns the user's events dated within [from, to) that
// have neither a non-blank note nor an attached file, most recent first.
func (r *Repo) ListMissingDetails(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.TrackEvent, error) {
	query, args, err := postgres.Builder().
		Select(eventColumns...).
		Columns("t.slug AS track_slug", "t.title AS track_title").
		From("events e").
		Join("health_tracks t ON t.id = e.track_id").
		Where(sq.Eq{"t.user_id": userID}).
		Where(sq.GtOrEq{"e.date": from}).
		Where(sq.Lt{"e.date": to}).
		// Same cutset as domain.NoteBlanks: whitespace-only notes are empty.
		Where(`NULLIF(btrim(e.notes, E' \t\r\n'), '') IS NULL`).
		Where(sq.Eq{"e.file_url": nil}).
		OrderBy("e.date DESC", "e.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events missing details: %w", err)
	}

	var rows []trackEventRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list events missing details: %w", err)
	}

	out := make([]domain.TrackEvent, len(rows))
	for i, rw := range rows {
		out[i] = domain.TrackEvent{
			Event:      toDomain(rw.row),
			TrackSlug:  rw.TrackSlug,
			TrackTitle: rw.TrackTitle,
		}
	}
	return out, nil
}

// GetByID returns an event owned (through its track) by the user.
// Returns domain.ErrNotFound otherwise.
func (r *Repo) GetByID(ctx context.Context, userID, eventID uuid.UUID) (*domain.Event, error) {
	query, args, err := postgres.Builder().
		Select(eventColumns...).
		From("events e").
		Join("health_tracks t ON t.id = e.track_id").
		Where(sq.Eq{"e.id": eventID, "t.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get event: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "event", eventID)
	}

	ev := toDomain(rw)
	return &ev, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new event.
func (r *Repo) Create(ctx context.Context, ev *domain.Event) error {
	query, args, err := postgres.Builder().
		Insert("events").
		Columns("id", "track_id", "date", "type", "title", "notes", "file_url",
			"symptom_type", "severity", "created_at", "updated_at").
		Values(ev.ID, ev.TrackID, ev.Date, string(ev.Type), ev.Title, ev.Notes, ev.FileURL,
			ev.SymptomType, ev.Severity, ev.CreatedAt, ev.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create event: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "event", ev.ID)
	}
	return nil
}

// UpdateDetails replaces the notes and file reference of an event owned by
// the user. Returns domain.ErrNotFound if no such event exists.
func (r *Repo) UpdateDetails(ctx context.Context, userID, eventID uuid.UUID, notes, fileURL *string, at time.Time) error {
	query, args, err := postgres.Builder().
		Update("events").
		Set("notes", notes).
		Set("file_url", fileURL).
		Set("updated_at", at).
		Where(sq.Eq{"id": eventID}).
		Where("track_id IN (SELECT id FROM health_tracks WHERE user_id = ?)", userID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update event: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "event", eventID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
	}
	return nil
}

func toDomain(rw row) domain.Event {
	return domain.Event{
		ID:          rw.ID,
		TrackID:     rw.TrackID,
		Date:        rw.Date,
		Type:        domain.EventType(rw.Type),
		Title:       rw.Title,
		Notes:       rw.Notes,
		FileURL:     rw.FileURL,
		SymptomType: rw.SymptomType,
		Severity:    rw.Severity,
		CreatedAt:   rw.CreatedAt,
		UpdatedAt:   rw.UpdatedAt,
	}
}
