package repository

import (
	"context"
	"errors"

	"shoppro/internal/domain/entity"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence in
// the commerce store.
type OrderRepository interface {
	// FindByID retrieves a single order with its lines.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// FindByAccount retrieves every order of the given account, newest first,
	// with lines loaded.
	FindByAccount(ctx context.Context, accountID int64) ([]*entity.Order, error)

	// CountLinesByListing returns the number of order lines referencing the
	// listing, across all orders.
	CountLinesByListing(ctx context.Context, listingID int64) (int64, error)

	// Create persists a new order together with all of its lines.
	Create(ctx context.Context, order *entity.Order) error
}
