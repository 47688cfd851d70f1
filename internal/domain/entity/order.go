// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfilment state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the initial state of every order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusProcessing marks an order being prepared.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipped marks an order handed to delivery.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered marks a completed order.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled marks a cancelled order.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// Order is the immutable result of checking out a cart. Lines are frozen
// snapshots of the listings at checkout time; later listing edits do not
// affect them. Only Status may change after creation.
type Order struct {
	ID         int64
	AccountID  int64 // Weak reference to Account.ID in the identity store.
	Lines      []*OrderLine
	Total      decimal.Decimal // Sum of line price*quantity, after discount, rounded to 2 dp.
	Status     OrderStatus
	CouponCode string // Normalized coupon code in force at creation, empty when none.
	CreatedAt  time.Time
}

// OrderLine is a frozen copy of one cart line at checkout time.
type OrderLine struct {
	ID        int64
	OrderID   int64
	ListingID int64 // Best-effort link; display relies on the frozen fields.
	Name      string
	Quantity  int
	Price     decimal.Decimal
}
