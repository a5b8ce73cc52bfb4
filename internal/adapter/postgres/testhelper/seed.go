package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/healthhub-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Name:      "Test User " + suffix,
		Email:     "testuser-" + suffix + "@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Name, user.Email, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedTrack creates a track owned by userID. The slug is derived from the
// title plus a unique suffix.
func SeedTrack(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string) domain.HealthTrack {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	track := domain.HealthTrack{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Slug:      domain.Slugify(title) + "-" + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO health_tracks (id, user_id, title, slug, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		track.ID, track.UserID, track.Title, track.Slug, track.CreatedAt, track.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTrack: %v", err)
	}

	return track
}

// EventOpts customizes SeedEvent. Zero values mean a NOTE event without
// notes or file.
type EventOpts struct {
	Type    domain.EventType
	Notes   *string
	FileURL *string
}

// SeedEvent creates an event on trackID dated at date.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, trackID uuid.UUID, date time.Time, opts EventOpts) domain.Event {
	t.Helper()

	typ := opts.Type
	if typ == "" {
		typ = domain.EventTypeNote
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	ev := domain.Event{
		ID:        uuid.New(),
		TrackID:   trackID,
		Date:      date.UTC().Truncate(time.Microsecond),
		Type:      typ,
		Title:     "Event " + uniqueSuffix(),
		Notes:     opts.Notes,
		FileURL:   opts.FileURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO events (id, track_id, date, type, title, notes, file_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		ev.ID, ev.TrackID, ev.Date, string(ev.Type), ev.Title, ev.Notes, ev.FileURL, ev.CreatedAt, ev.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent: %v", err)
	}

	return ev
}
