package repository

import (
	"context"
	"errors"

	"shoppro/internal/domain/entity"
)

// ErrCouponNotFound is a domain-specific error returned when no matching coupon exists.
var ErrCouponNotFound = errors.New("coupon not found")

// CouponRepository defines the standard operations for coupon persistence in
// the commerce store. Callers are expected to pass codes already normalized
// to uppercase; the repository matches them verbatim.
type CouponRepository interface {
	// FindActiveByCode retrieves the active coupon with the given code.
	// Inactive coupons are invisible through this method.
	FindActiveByCode(ctx context.Context, code string) (*entity.Coupon, error)

	// FindByCode retrieves a coupon with the given code regardless of its
	// active flag.
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)

	// FindAll retrieves every coupon.
	FindAll(ctx context.Context) ([]*entity.Coupon, error)

	// Create persists a new coupon.
	Create(ctx context.Context, coupon *entity.Coupon) error
}
