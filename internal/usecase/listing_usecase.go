package usecase

import (
	"context"

	"shoppro/internal/domain/entity"
	"shoppro/internal/domain/repository"

	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateListingInput defines the data required to publish a listing. Contact
// email and phone fall back to the seller account's values when empty.
type CreateListingInput struct {
	SellerID       int64
	Name           string
	Category       string
	Description    string
	PriceType      entity.PriceType
	Price          *decimal.Decimal
	PriceMin       *decimal.Decimal
	PriceMax       *decimal.Decimal
	ContactEmail   string
	ContactPhone   string
	Whatsapp       string
	ContactMethods []entity.ContactMethod
}

// UpdateListingInput defines a partial listing update. Nil pointers mean
// "leave unchanged". Price pointers are only applied when PriceType is also
// present, mirroring how clients send complete price blocks.
type UpdateListingInput struct {
	ActorID        int64
	ListingID      int64
	Name           *string
	Category       *string
	Description    *string
	PriceType      *entity.PriceType
	Price          *decimal.Decimal
	PriceMin       *decimal.Decimal
	PriceMax       *decimal.Decimal
	ContactEmail   *string
	ContactPhone   *string
	Whatsapp       *string
	ContactMethods []entity.ContactMethod // Nil means unchanged; empty slice clears.
}

// SearchListingsInput carries catalog search filters.
type SearchListingsInput struct {
	Query    string
	Category string
	Sort     repository.ListingSort
}

// --- Output DTOs ---

// ListingOutput returns a single listing.
type ListingOutput struct {
	Listing *entity.Listing
}

// ListingsOutput returns a list of listings.
type ListingsOutput struct {
	Listings []*entity.Listing
}

// SellerPageOutput returns a seller together with their catalog.
type SellerPageOutput struct {
	Seller   *entity.Account
	Listings []*entity.Listing
}

// ListingUsecase defines the interface for catalog business operations.
type ListingUsecase interface {
	// List returns all listings, or only those of sellerID when non-nil.
	List(ctx context.Context, sellerID *int64) (*ListingsOutput, error)

	// Get returns one listing by id.
	Get(ctx context.Context, listingID int64) (*ListingOutput, error)

	// Create publishes a listing for an active seller. The seller's display
	// name is frozen onto the listing.
	Create(ctx context.Context, input CreateListingInput) (*ListingOutput, error)

	// Update modifies a listing. Allowed for the owner and for admins.
	Update(ctx context.Context, input UpdateListingInput) (*ListingOutput, error)

	// Delete removes a listing. Allowed for the owner and for admins; rejected
	// with a conflict while cart lines or order lines reference it.
	Delete(ctx context.Context, actorID, listingID int64) error

	// SellerPage returns a seller account with their listings.
	SellerPage(ctx context.Context, sellerID int64) (*SellerPageOutput, error)

	// Search returns listings matching the filters.
	Search(ctx context.Context, input SearchListingsInput) (*ListingsOutput, error)
}
