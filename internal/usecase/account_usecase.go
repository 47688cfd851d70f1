// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"shoppro/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new buyer account.
type SignupInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// AccountOutput returns a single account.
type AccountOutput struct {
	Account *entity.Account
}

// CheckOutput reports whether the given account id maps to an active account.
type CheckOutput struct {
	Authenticated bool
	Account       *entity.Account
}

// AccountUsecase defines the interface for authentication-related business
// operations. This is the contract that the delivery layer depends on.
type AccountUsecase interface {
	// Signup registers a new buyer account. Duplicate username or email is a
	// conflict.
	Signup(ctx context.Context, input SignupInput) (*AccountOutput, error)

	// Login verifies credentials. Unknown username and wrong password are
	// indistinguishable to the caller; a non-active account is rejected after
	// the password check.
	Login(ctx context.Context, input LoginInput) (*AccountOutput, error)

	// Check resolves an account id and reports whether it is active.
	Check(ctx context.Context, accountID int64) (*CheckOutput, error)
}
