package repository

import (
	"context"
	"errors"

	"shoppro/internal/domain/entity"
)

// ErrCartLineNotFound is a domain-specific error returned when a cart line is not found.
var ErrCartLineNotFound = errors.New("cart line not found")

// CartLineRepository defines the standard operations for cart persistence in
// the commerce store.
type CartLineRepository interface {
	// FindByID retrieves a single cart line by its ID.
	FindByID(ctx context.Context, id int64) (*entity.CartLine, error)

	// FindByAccount retrieves every cart line of the given account in
	// insertion order, with the referenced listings loaded.
	FindByAccount(ctx context.Context, accountID int64) ([]*entity.CartLine, error)

	// FindByAccountAndListing retrieves the single line for an
	// (account, listing) pair, if any.
	FindByAccountAndListing(ctx context.Context, accountID, listingID int64) (*entity.CartLine, error)

	// CountByListing returns the number of cart lines referencing the listing,
	// across all accounts.
	CountByListing(ctx context.Context, listingID int64) (int64, error)

	// Create persists a new cart line.
	Create(ctx context.Context, line *entity.CartLine) error

	// UpdateQuantity sets the quantity of an existing cart line.
	UpdateQuantity(ctx context.Context, id int64, quantity int) error

	// Delete removes a cart line by ID.
	Delete(ctx context.Context, id int64) error

	// DeleteByIDs removes the given cart lines in one statement.
	DeleteByIDs(ctx context.Context, ids []int64) error
}
