// Package hubclient is a Go client for the hub notification API together
// with the optimistic state machine a UI uses to hide dismissed reminders
// before the server confirms.
package hubclient

// Notification kinds as sent by the server.
const (
	KindAppointmentDetails = "appointmentDetails"
	KindSymptomReminder    = "symptomReminder"
)

// Notification types accepted by the dismiss endpoint.
const (
	TypeEventMissingDetails = "EVENT_MISSING_DETAILS"
	TypeTrackMissingSymptom = "TRACK_MISSING_SYMPTOM"
)

// Notification mirrors one element of GET /api/hub/notifications.
type Notification struct {
	ID               string  `json:"id"`
	Kind             string  `json:"kind"`
	Title            string  `json:"title"`
	Message          string  `json:"message"`
	CTALabel         *string `json:"ctaLabel,omitempty"`
	Href             *string `json:"href,omitempty"`
	EntityID         string  `json:"entityId"`
	NotificationType string  `json:"notificationType"`
	TrackSlug        *string `json:"trackSlug,omitempty"`
}
