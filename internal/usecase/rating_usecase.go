package usecase

import (
	"context"

	"shoppro/internal/domain/entity"
)

// --- Input DTOs ---

// AddRatingInput defines the data required to leave a rating on a listing.
type AddRatingInput struct {
	ListingID int64
	AccountID int64
	Score     int
	Review    string
}

// --- Output DTOs ---

// RatingOutput returns a single rating.
type RatingOutput struct {
	Rating *entity.Rating
}

// RatingsOutput returns a list of ratings.
type RatingsOutput struct {
	Ratings []*entity.Rating
}

// RatingUsecase defines the interface for rating operations.
type RatingUsecase interface {
	// ListByListing returns every rating on a listing. The listing must exist.
	ListByListing(ctx context.Context, listingID int64) (*RatingsOutput, error)

	// Create leaves a rating on an existing listing.
	Create(ctx context.Context, input AddRatingInput) (*RatingOutput, error)
}
