package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "shoppro/internal/delivery/context"
	"shoppro/internal/domain/entity"
	domainerrors "shoppro/internal/domain/errors"
	"shoppro/internal/domain/repository"
	"shoppro/internal/domain/service"
	"shoppro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// couponService implements the CouponUsecase interface.
type couponService struct {
	couponRepo repository.CouponRepository
	resolver   service.AccountResolver
	logger     *slog.Logger
}

// CouponServiceParams holds dependencies for couponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	CouponRepo repository.CouponRepository
	Resolver   service.AccountResolver
	Logger     *slog.Logger
}

// NewCouponService is the constructor for couponService.
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	return &couponService{
		couponRepo: params.CouponRepo,
		resolver:   params.Resolver,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *couponService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Validate returns the active coupon matching the code, case-insensitively.
// This is the explicit validation endpoint: unlike checkout it does report an
// unknown or inactive code as not-found.
func (srv *couponService) Validate(ctx context.Context, code string) (*usecase.CouponOutput, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, domainerrors.ErrCouponNotFound.WrapMessage("empty coupon code")
	}

	coupon, err := srv.couponRepo.FindActiveByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrCouponNotFound.WrapMessage("coupon validation failed")
		}

		return nil, errors.Wrap(err, "failed to validate coupon")
	}

	return &usecase.CouponOutput{Coupon: coupon}, nil
}

// Create stores a new coupon. Admin only.
func (srv *couponService) Create(ctx context.Context, input usecase.CreateCouponInput) (*usecase.CouponOutput, error) {
	if _, err := srv.resolver.ResolveAdmin(ctx, input.ActorID); err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("coupon code is required")
	}
	if input.Discount < 0 || input.Discount > 100 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("discount must be between 0 and 100")
	}

	// Pre-check the code before inserting; the unique index still backstops
	// concurrent creates.
	if _, err := srv.couponRepo.FindByCode(ctx, code); err == nil {
		return nil, domainerrors.ErrCouponExists.WrapMessage("coupon code already registered")
	} else if !errors.Is(err, repository.ErrCouponNotFound) {
		return nil, errors.Wrap(err, "failed to check coupon code")
	}

	coupon := &entity.Coupon{
		Code:     code,
		Discount: input.Discount,
		Active:   input.Active,
	}

	if err := srv.couponRepo.Create(ctx, coupon); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Coupon created", slog.String("code", coupon.Code), slog.Int("discount", coupon.Discount))

	return &usecase.CouponOutput{Coupon: coupon}, nil
}

// List returns every coupon. Admin only.
func (srv *couponService) List(ctx context.Context, actorID int64) (*usecase.CouponsOutput, error) {
	if _, err := srv.resolver.ResolveAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	coupons, err := srv.couponRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	return &usecase.CouponsOutput{Coupons: coupons}, nil
}
