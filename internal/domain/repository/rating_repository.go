package repository

import (
	"context"

	"shoppro/internal/domain/entity"
)

// RatingRepository defines the standard operations for rating persistence in
// the commerce store.
type RatingRepository interface {
	// FindByListing retrieves every rating left on the given listing.
	FindByListing(ctx context.Context, listingID int64) ([]*entity.Rating, error)

	// FindByAccount retrieves every rating the given account has left.
	FindByAccount(ctx context.Context, accountID int64) ([]*entity.Rating, error)

	// AverageScoreBySeller returns the average score over all ratings of all
	// listings uploaded by the given account, or nil when no ratings exist.
	AverageScoreBySeller(ctx context.Context, sellerID int64) (*float64, error)

	// Create persists a new rating.
	Create(ctx context.Context, rating *entity.Rating) error
}
