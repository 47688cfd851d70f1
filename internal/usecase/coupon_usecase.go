package usecase

import (
	"context"

	"shoppro/internal/domain/entity"
)

// --- Input DTOs ---

// CreateCouponInput defines the admin-side creation of a coupon. The code is
// normalized to uppercase before storage.
type CreateCouponInput struct {
	ActorID  int64
	Code     string
	Discount int // Percentage in [0,100].
	Active   bool
}

// --- Output DTOs ---

// CouponOutput returns a single coupon.
type CouponOutput struct {
	Coupon *entity.Coupon
}

// CouponsOutput returns a list of coupons.
type CouponsOutput struct {
	Coupons []*entity.Coupon
}

// CouponUsecase defines the interface for coupon operations.
type CouponUsecase interface {
	// Validate normalizes the code and returns the matching active coupon, or
	// a not-found error. Unlike checkout, this endpoint does report failure.
	Validate(ctx context.Context, code string) (*CouponOutput, error)

	// Create stores a new coupon. Admin only.
	Create(ctx context.Context, input CreateCouponInput) (*CouponOutput, error)

	// List returns every coupon. Admin only.
	List(ctx context.Context, actorID int64) (*CouponsOutput, error)
}
