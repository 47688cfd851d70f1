package usecase

import (
	"context"

	"shoppro/internal/domain/entity"
)

// --- Input DTOs ---

// CheckoutInput defines the data required to convert a cart into an order.
type CheckoutInput struct {
	AccountID  int64
	CouponCode string // Optional; unknown or inactive codes are silently ignored.
}

// --- Output DTOs ---

// OrderOutput returns a single order with its lines.
type OrderOutput struct {
	Order *entity.Order
}

// OrdersOutput returns a list of orders.
type OrdersOutput struct {
	Orders []*entity.Order
}

// OrderUsecase defines the interface for order operations.
type OrderUsecase interface {
	// Checkout atomically converts the account's cart into an order: resolve
	// the account, snapshot the cart lines, apply the optional coupon, insert
	// order plus lines and clear the cart in one commerce-store transaction.
	// Concurrent checkouts for the same account are serialized.
	Checkout(ctx context.Context, input CheckoutInput) (*OrderOutput, error)

	// List returns the account's orders, newest first.
	List(ctx context.Context, accountID int64) (*OrdersOutput, error)

	// Get returns one order by id.
	Get(ctx context.Context, orderID int64) (*OrderOutput, error)
}
