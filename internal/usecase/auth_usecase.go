// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"getlife/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create a new account with
// its profile.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
	Phone    string
	Address  string
}

// LoginInput defines the credentials presented at login.
type LoginInput struct {
	Email    string
	Password string
}

// AuthUsecase is the contract for the authentication gate: login,
// logout, session resolution and self-registration.
type AuthUsecase interface {
	// Register creates the account and its profile. It does not log the
	// new account in.
	Register(ctx context.Context, input RegisterInput) (*entity.AccountProfile, error)

	// Login validates credentials, applies the mitra gating rules and
	// persists the session identity.
	Login(ctx context.Context, input LoginInput) (*entity.AccountProfile, error)

	// Logout clears the session identity. It succeeds even when nobody
	// is logged in.
	Logout(ctx context.Context) error

	// CurrentUser resolves the session identity to the merged
	// account/profile view. It returns (nil, nil) when nobody is logged
	// in or when either half of the pair is missing.
	CurrentUser(ctx context.Context) (*entity.AccountProfile, error)

	// EnsureAdmin seeds the configured admin account on first start.
	EnsureAdmin(ctx context.Context) error
}
