package usecase

import (
	"context"

	"shoppro/internal/domain/entity"
)

// --- Input DTOs ---

// UpdateProfileInput defines a partial profile update. Nil pointers mean
// "leave unchanged".
type UpdateProfileInput struct {
	AccountID int64
	Name      *string
	Email     *string
	Phone     *string
	Address   *string
	DarkMode  *bool
}

// --- Output DTOs ---

// ProfileOutput returns a single profile.
type ProfileOutput struct {
	Profile *entity.Profile
}

// ProfileUsecase defines the interface for profile operations. Profiles are
// created lazily: reading a missing profile materializes an empty one.
type ProfileUsecase interface {
	// Get returns the account's profile, creating an empty one on first read.
	Get(ctx context.Context, accountID int64) (*ProfileOutput, error)

	// Update applies a partial update, creating the profile if missing.
	Update(ctx context.Context, input UpdateProfileInput) (*ProfileOutput, error)
}
