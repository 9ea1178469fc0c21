package repository

import (
	"context"
	"errors"

	"zoning/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for officer account persistence.
// There is deliberately no delete or update: accounts are append-only.
type UserRepository interface {
	// FindByUsername retrieves a single user by username. The match is
	// case-insensitive, which also makes it the uniqueness probe for
	// registration.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error
}
