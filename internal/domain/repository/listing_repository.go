package repository

import (
	"context"
	"errors"

	"shoppro/internal/domain/entity"
)

// ErrListingNotFound is a domain-specific error returned when a listing is not found.
var ErrListingNotFound = errors.New("listing not found")

// ListingSort enumerates the supported orderings for listing searches.
type ListingSort string

const (
	// ListingSortNewest orders by creation time, newest first. The default.
	ListingSortNewest ListingSort = "newest"
	// ListingSortPriceLow orders by effective price ascending.
	ListingSortPriceLow ListingSort = "price-low"
	// ListingSortPriceHigh orders by effective price descending.
	ListingSortPriceHigh ListingSort = "price-high"
)

// ListingSearch carries the filters of a catalog search.
type ListingSearch struct {
	Query    string // Case-insensitive match against name and description.
	Category string // Exact category match when non-empty.
	Sort     ListingSort
}

// ListingRepository defines the standard operations for listing persistence
// in the commerce store.
type ListingRepository interface {
	// FindByID retrieves a single listing by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Listing, error)

	// FindAll retrieves every listing.
	FindAll(ctx context.Context) ([]*entity.Listing, error)

	// FindBySeller retrieves every listing uploaded by the given account.
	FindBySeller(ctx context.Context, sellerID int64) ([]*entity.Listing, error)

	// Search retrieves listings matching the given filters.
	Search(ctx context.Context, search ListingSearch) ([]*entity.Listing, error)

	// CountBySeller returns the number of listings uploaded by the given account.
	CountBySeller(ctx context.Context, sellerID int64) (int64, error)

	// Create persists a new listing.
	Create(ctx context.Context, listing *entity.Listing) error

	// Update modifies an existing listing.
	Update(ctx context.Context, listing *entity.Listing) error

	// Delete removes a listing by ID. Ratings cascade with it.
	Delete(ctx context.Context, id int64) error
}
