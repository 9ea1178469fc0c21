// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"zoning/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new officer account.
type RegisterInput struct {
	Username   string
	Credential string
}

// LoginInput defines the data required for an officer to log in.
type LoginInput struct {
	Username   string
	Credential string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the access token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// UserUsecase defines the interface for officer account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
