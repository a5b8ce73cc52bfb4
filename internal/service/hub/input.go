package hub

import (
	"strings"

	"github.com/heartmarshall/healthhub-backend/internal/domain"
)

// maxEntityIDLength bounds entity ids accepted by Dismiss.
const maxEntityIDLength = 128

// DismissInput holds the parameters for dismissing one notification.
type DismissInput struct {
	Type     domain.NotificationType
	EntityID string
}

// Validate checks all fields and collects all errors.
func (i DismissInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Type == "":
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	case !i.Type.IsValid():
		errs = append(errs, domain.FieldError{
			Field:   "type",
			Message: "must be one of " + string(domain.NotificationEventMissingDetails) + ", " + string(domain.NotificationTrackMissingSymptom),
		})
	}

	entityID := strings.TrimSpace(i.EntityID)
	if entityID == "" {
		errs = append(errs, domain.FieldError{Field: "entity_id", Message: "required"})
	}
	if len(entityID) > maxEntityIDLength {
		errs = append(errs, domain.FieldError{Field: "entity_id", Message: "max 128 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// key returns the normalized dismissal key. Call after Validate.
func (i DismissInput) key() domain.DismissalKey {
	return domain.DismissalKey{Type: i.Type, EntityID: strings.TrimSpace(i.EntityID)}
}
