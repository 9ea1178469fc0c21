package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered zoning officer account. Usernames are unique
// case-insensitively; the credential is an opaque secret compared verbatim
// at login. Accounts are never mutated or deleted after registration.
type User struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Credential string    `json:"credential"`
	CreatedAt  time.Time `json:"createdAt"`
}
