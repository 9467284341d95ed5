// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"conduit/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateUserInput carries the optional fields of a profile update.
// Nil means "leave unchanged"; a non-nil empty string is an explicit clear.
type UpdateUserInput struct {
	Email    *string
	Username *string
	Password *string
	Bio      *string
	Image    *string
}

// --- Output DTOs ---

// AuthOutput returns the account together with a freshly issued token.
// Every authenticated user-facing operation re-issues the token, so the
// client always leaves with a full-validity credential.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetCurrent(ctx context.Context, userID int64) (*AuthOutput, error)
	UpdateCurrent(ctx context.Context, userID int64, input *UpdateUserInput) (*AuthOutput, error)
}
