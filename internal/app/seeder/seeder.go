// Package seeder creates a demo user whose tracks produce every kind of hub
// notification, for local development and manual testing.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/healthhub-backend/internal/domain"
)

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type userCreator interface {
	Create(ctx context.Context, u *domain.User) error
}

type trackCreator interface {
	Create(ctx context.Context, t *domain.HealthTrack) error
}

type eventCreator interface {
	Create(ctx context.Context, ev *domain.Event) error
}

// Result summarizes what Run wrote (or would write on a dry run).
type Result struct {
	UserID uuid.UUID
	Tracks int
	Events int
}

// Seeder writes the demo data set in one transaction.
type Seeder struct {
	log    *slog.Logger
	tx     txRunner
	users  userCreator
	tracks trackCreator
	events eventCreator
	now    func() time.Time
}

// New creates a Seeder.
func New(log *slog.Logger, tx txRunner, users userCreator, tracks trackCreator, events eventCreator) *Seeder {
	return &Seeder{
		log:    log.With("component", "seeder"),
		tx:     tx,
		users:  users,
		tracks: tracks,
		events: events,
		now:    time.Now,
	}
}

// Run creates the user and its tracks. The first track gets a recent
// symptom so it stays quiet; the others only have an old one and show a
// symptom reminder. Every track gets one appointment without details and
// one detailed note.
func (s *Seeder) Run(ctx context.Context, cfg Config) (Result, error) {
	now := s.now().UTC()
	user := domain.User{
		ID:        uuid.New(),
		Name:      cfg.UserName,
		Email:     strings.ToLower(strings.TrimSpace(cfg.UserEmail)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	plan := make([]trackPlan, 0, len(cfg.Tracks))
	for i, title := range cfg.Tracks {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		plan = append(plan, planTrack(user.ID, title, i == 0, now))
	}

	res := Result{UserID: user.ID, Tracks: len(plan)}
	for _, p := range plan {
		res.Events += len(p.events)
	}

	if cfg.DryRun {
		s.log.InfoContext(ctx, "dry run, nothing written",
			slog.String("email", user.Email),
			slog.Int("tracks", res.Tracks),
			slog.Int("events", res.Events),
		)
		return res, nil
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.users.Create(ctx, &user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		for _, p := range plan {
			if err := s.tracks.Create(ctx, &p.track); err != nil {
				return fmt.Errorf("create track %q: %w", p.track.Title, err)
			}
			for i := range p.events {
				if err := s.events.Create(ctx, &p.events[i]); err != nil {
					return fmt.Errorf("create event %q: %w", p.events[i].Title, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	s.log.InfoContext(ctx, "demo data seeded",
		slog.String("user_id", user.ID.String()),
		slog.String("email", user.Email),
		slog.Int("tracks", res.Tracks),
		slog.Int("events", res.Events),
	)
	return res, nil
}

type trackPlan struct {
	track  domain.HealthTrack
	events []domain.Event
}

func planTrack(userID uuid.UUID, title string, recentSymptom bool, now time.Time) trackPlan {
	track := domain.HealthTrack{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Slug:      domain.Slugify(title),
		CreatedAt: now,
		UpdatedAt: now,
	}

	symptomAt := now.AddDate(0, 0, -12)
	if recentSymptom {
		symptomAt = now.Add(-20 * time.Hour)
	}
	notes := "Follow-up booked, keep the current plan."
	symptomType := "pain"
	severity := 3

	newEvent := func(date time.Time, typ domain.EventType, title string) domain.Event {
		return domain.Event{
			ID:        uuid.New(),
			TrackID:   track.ID,
			Date:      date,
			Type:      typ,
			Title:     title,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	appointment := newEvent(now.Add(-50*time.Hour), domain.EventTypeAppointment, title+" check-up")
	note := newEvent(now.Add(-26*time.Hour), domain.EventTypeNote, title+" notes")
	note.Notes = &notes
	symptom := newEvent(symptomAt, domain.EventTypeSymptom, title+" flare-up")
	symptom.Notes = &notes
	symptom.SymptomType = &symptomType
	symptom.Severity = &severity

	return trackPlan{track: track, events: []domain.Event{appointment, note, symptom}}
}
