package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// HealthTrack is a named series of events owned by one user.
// Slug is unique per user.
type HealthTrack struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Slug        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Event is one logged entry on a track. Date is the logical time of the
// event and is independent of CreatedAt.
type Event struct {
	ID          uuid.UUID
	TrackID     uuid.UUID
	Date        time.Time
	Type        EventType
	Title       string
	Notes       *string
	FileURL     *string
	SymptomType *string
	Severity    *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NoteBlanks are the characters stripped from notes before deciding whether
// they are empty. The events repository trims the same set in SQL.
const NoteBlanks = " \t\r\n"

// HasDetails reports whether the event carries a note or an attached
// document. Notes made only of NoteBlanks count as empty, so "  \n" is not
// a note. Any non-nil file URL counts as a document.
func (e Event) HasDetails() bool {
	if e.FileURL != nil {
		return true
	}
	return e.Notes != nil && strings.Trim(*e.Notes, NoteBlanks) != ""
}

// TrackEvent is an event together with the track fields needed to link to it.
type TrackEvent struct {
	Event
	TrackSlug  string
	TrackTitle string
}

// TrackSymptomStatus pairs a track with the date of its most recent SYMPTOM
// event. LatestSymptomAt is nil when the track has never had one.
type TrackSymptomStatus struct {
	Track           HealthTrack
	LatestSymptomAt *time.Time
}
