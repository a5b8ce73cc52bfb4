package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the account that owns tracks. Users are created by the auth
// collaborator; the hub only reads them.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
