package usecase

import (
	"context"

	"shoppro/internal/domain/entity"
)

// --- Input DTOs ---

// AddToCartInput defines the data required to add a listing to a cart.
type AddToCartInput struct {
	AccountID int64
	ListingID int64
	Quantity  int // Must be >= 1; anything lower is invalid input.
}

// --- Output DTOs ---

// CartOutput returns the cart lines of one account, listings loaded.
type CartOutput struct {
	Lines []*entity.CartLine
}

// CartUsecase defines the interface for shopping cart operations.
//
// Note that the account id is never resolved against the identity store here:
// carts for unknown accounts are representable. Checkout is where the
// reference gets verified.
type CartUsecase interface {
	// List returns the account's cart lines in insertion order.
	List(ctx context.Context, accountID int64) (*CartOutput, error)

	// Add puts a listing into the cart. Adding a listing already in the cart
	// increments the existing line's quantity instead of creating a new line.
	// A quantity below 1 is rejected as invalid input.
	Add(ctx context.Context, input AddToCartInput) error

	// Remove deletes one cart line by its id. Removing a line that does not
	// exist is a not-found error.
	Remove(ctx context.Context, lineID int64) error
}
