package usecase

import (
	"context"

	"shoppro/internal/domain/entity"
)

// --- Output DTOs ---

// ExportOutput aggregates everything the platform holds about one account:
// the account itself, its listings, its orders, the ratings it has left, and
// its profile. Profile is nil when the account never created one.
type ExportOutput struct {
	Account  *entity.Account
	Listings []*entity.Listing
	Orders   []*entity.Order
	Ratings  []*entity.Rating
	Profile  *entity.Profile
}

// ExportUsecase defines the interface for account data export and import.
type ExportUsecase interface {
	// Export collects the account's full data set. The account must resolve;
	// an unknown id is a not-found error.
	Export(ctx context.Context, accountID int64) (*ExportOutput, error)

	// Import acknowledges an import request for the account. The payload is
	// accepted but not applied; imports run out of band.
	Import(ctx context.Context, accountID int64) error
}
