package hub

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/healthhub-backend/internal/domain"
)

const (
	ctaAddDetails  = "Add details"
	ctaLogSymptom  = "Log symptom"
	eventDateShape = "Jan 2"
)

// Assemble turns eligible entities into notifications, skipping those whose
// key is in dismissed. Event reminders come first (in the order given, i.e.
// most recent first), followed by track reminders.
func Assemble(eligible Eligible, dismissed map[domain.DismissalKey]struct{}, window time.Duration) []domain.Notification {
	out := make([]domain.Notification, 0, len(eligible.MissingDetailsEvents)+len(eligible.SymptomMissingTracks))

	for _, ev := range eligible.MissingDetailsEvents {
		key := eventKey(ev.ID)
		if _, ok := dismissed[key]; ok {
			continue
		}
		out = append(out, eventNotification(ev, key))
	}

	days := windowDays(window)
	for _, t := range eligible.SymptomMissingTracks {
		key := trackKey(t.ID)
		if _, ok := dismissed[key]; ok {
			continue
		}
		out = append(out, trackNotification(t, key, days))
	}

	return out
}

func eventNotification(ev domain.TrackEvent, key domain.DismissalKey) domain.Notification {
	cta := ctaAddDetails
	href := fmt.Sprintf("/tracks/%s/events/%s", ev.TrackSlug, ev.ID)
	message := fmt.Sprintf("%q in %s on %s has no notes or documents yet.",
		ev.Title, ev.TrackTitle, ev.Date.Format(eventDateShape))

	return domain.Notification{
		ID:               domain.NotificationID(domain.KindAppointmentDetails, key.EntityID),
		Kind:             domain.KindAppointmentDetails,
		Title:            fmt.Sprintf("Add details to your %s event", strings.ToLower(ev.Type.String())),
		Message:          message,
		CTALabel:         &cta,
		Href:             &href,
		EntityID:         key.EntityID,
		NotificationType: key.Type,
	}
}

func trackNotification(t domain.HealthTrack, key domain.DismissalKey, days int) domain.Notification {
	cta := ctaLogSymptom
	slug := t.Slug

	period := "day"
	if days != 1 {
		period = fmt.Sprintf("%d days", days)
	}

	return domain.Notification{
		ID:               domain.NotificationID(domain.KindSymptomReminder, key.EntityID),
		Kind:             domain.KindSymptomReminder,
		Title:            fmt.Sprintf("How is your %s?", t.Title),
		Message:          fmt.Sprintf("You haven't logged a symptom on %s in the last %s.", t.Title, period),
		CTALabel:         &cta,
		EntityID:         key.EntityID,
		NotificationType: key.Type,
		TrackSlug:        &slug,
	}
}
