package hub

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/healthhub-backend/internal/domain"
)

// Eligible is the set of entities that currently qualify for a notification.
type Eligible struct {
	// MissingDetailsEvents are events dated in [now-window, now) without
	// notes or a file, most recent first.
	MissingDetailsEvents []domain.TrackEvent
	// SymptomMissingTracks are tracks whose latest SYMPTOM event is absent
	// or older than now-window.
	SymptomMissingTracks []domain.HealthTrack
	// From is the start of the window the rules were evaluated against.
	From time.Time
}

// Keys returns the dismissal key of every eligible entity.
func (e Eligible) Keys() map[domain.DismissalKey]struct{} {
	keys := make(map[domain.DismissalKey]struct{}, len(e.MissingDetailsEvents)+len(e.SymptomMissingTracks))
	for _, ev := range e.MissingDetailsEvents {
		keys[eventKey(ev.ID)] = struct{}{}
	}
	for _, t := range e.SymptomMissingTracks {
		keys[trackKey(t.ID)] = struct{}{}
	}
	return keys
}

// ComputeEligible evaluates both rules for the user against one instant.
// The two store queries are read-only and run concurrently.
func (s *Service) ComputeEligible(ctx context.Context, userID uuid.UUID, now time.Time) (Eligible, error) {
	from := LookbackStart(now, s.window)

	var (
		events   []domain.TrackEvent
		statuses []domain.TrackSymptomStatus
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.events.ListMissingDetails(gctx, userID, from, now)
		if err != nil {
			return fmt.Errorf("list events missing details: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		statuses, err = s.tracks.ListSymptomStatus(gctx, userID)
		if err != nil {
			return fmt.Errorf("list track symptom status: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Eligible{}, err
	}

	return Eligible{
		MissingDetailsEvents: filterMissingDetails(events, from, now),
		SymptomMissingTracks: filterSymptomMissing(statuses, from),
		From:                 from,
	}, nil
}

// filterMissingDetails re-applies Rule A to the store result so eligibility
// does not depend on the query alone. Order is preserved.
func filterMissingDetails(events []domain.TrackEvent, from, now time.Time) []domain.TrackEvent {
	out := make([]domain.TrackEvent, 0, len(events))
	for _, ev := range events {
		if ev.Date.Before(from) || !ev.Date.Before(now) {
			continue
		}
		if ev.HasDetails() {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// filterSymptomMissing applies Rule B: a track with no SYMPTOM event, or
// whose latest one is older than from, is eligible.
func filterSymptomMissing(statuses []domain.TrackSymptomStatus, from time.Time) []domain.HealthTrack {
	out := make([]domain.HealthTrack, 0, len(statuses))
	for _, st := range statuses {
		if st.LatestSymptomAt == nil || st.LatestSymptomAt.Before(from) {
			out = append(out, st.Track)
		}
	}
	return out
}

func eventKey(id uuid.UUID) domain.DismissalKey {
	return domain.DismissalKey{Type: domain.NotificationEventMissingDetails, EntityID: id.String()}
}

func trackKey(id uuid.UUID) domain.DismissalKey {
	return domain.DismissalKey{Type: domain.NotificationTrackMissingSymptom, EntityID: id.String()}
}
