package domain

// EventType is the kind of entry logged on a track.
type EventType string

const (
	EventTypeNote        EventType = "NOTE"
	EventTypeAppointment EventType = "APPOINTMENT"
	EventTypeResult      EventType = "RESULT"
	EventTypeLetter      EventType = "LETTER"
	EventTypeFeeling     EventType = "FEELING"
	EventTypeExercise    EventType = "EXERCISE"
	EventTypeSymptom     EventType = "SYMPTOM"
)

func (t EventType) String() string { return string(t) }

func (t EventType) IsValid() bool {
	switch t {
	case EventTypeNote, EventTypeAppointment, EventTypeResult, EventTypeLetter,
		EventTypeFeeling, EventTypeExercise, EventTypeSymptom:
		return true
	}
	return false
}

// NotificationType tags the rule a hub notification (and its dismissal) belongs to.
type NotificationType string

const (
	NotificationEventMissingDetails NotificationType = "EVENT_MISSING_DETAILS"
	NotificationTrackMissingSymptom NotificationType = "TRACK_MISSING_SYMPTOM"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationEventMissingDetails, NotificationTrackMissingSymptom:
		return true
	}
	return false
}

// NotificationKind is the client-facing variant of a hub notification.
type NotificationKind string

const (
	KindAppointmentDetails NotificationKind = "appointmentDetails"
	KindSymptomReminder    NotificationKind = "symptomReminder"
)

func (k NotificationKind) String() string { return string(k) }
