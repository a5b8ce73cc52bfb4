package domain

import (
	"time"

	"github.com/google/uuid"
)

// DismissalKey is the per-user natural key of a dismissal.
type DismissalKey struct {
	Type     NotificationType
	EntityID string
}

// String renders the key as "TYPE:entityId".
func (k DismissalKey) String() string {
	return string(k.Type) + ":" + k.EntityID
}

// Dismissal records that a user suppressed one notification occurrence.
// At most one row exists per (UserID, Type, EntityID).
type Dismissal struct {
	UserID      uuid.UUID
	Type        NotificationType
	EntityID    string
	DismissedAt time.Time
	UpdatedAt   time.Time
}

// Key returns the dismissal's natural key.
func (d Dismissal) Key() DismissalKey {
	return DismissalKey{Type: d.Type, EntityID: d.EntityID}
}

// Notification is a transient hub reminder. It is recomputed on every read
// and never stored. TrackSlug is only set for KindSymptomReminder.
type Notification struct {
	ID               string
	Kind             NotificationKind
	Title            string
	Message          string
	CTALabel         *string
	Href             *string
	EntityID         string
	NotificationType NotificationType
	TrackSlug        *string
}

// NotificationID derives the stable id of a notification for an entity.
func NotificationID(kind NotificationKind, entityID string) string {
	return string(kind) + ":" + entityID
}
