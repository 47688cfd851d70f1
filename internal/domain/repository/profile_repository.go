package repository

import (
	"context"
	"errors"

	"shoppro/internal/domain/entity"
)

// ErrProfileNotFound is a domain-specific error returned when no profile exists for an account.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence
// in the commerce store.
type ProfileRepository interface {
	// FindByAccount retrieves the profile of the given account.
	FindByAccount(ctx context.Context, accountID int64) (*entity.Profile, error)

	// Create persists a new profile.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update modifies an existing profile.
	Update(ctx context.Context, profile *entity.Profile) error
}
