package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shoppro/internal/domain/entity"
	domainerrors "shoppro/internal/domain/errors"
	"shoppro/internal/domain/repository"
	mockRepo "shoppro/internal/mocks/repository"
	mockService "shoppro/internal/mocks/service"
	"shoppro/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCouponService(t *testing.T) (usecase.CouponUsecase, *mockRepo.MockCouponRepository, *mockService.MockAccountResolver) {
	couponRepo := mockRepo.NewMockCouponRepository(t)
	resolver := mockService.NewMockAccountResolver(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCouponService(CouponServiceParams{
		CouponRepo: couponRepo,
		Resolver:   resolver,
		Logger:     logger,
	})

	return service, couponRepo, resolver
}

func TestCouponService_Validate_NormalizesCode(t *testing.T) {
	service, couponRepo, _ := newTestCouponService(t)

	ctx := context.Background()
	coupon := &entity.Coupon{ID: 1, Code: "SAVE10", Discount: 10, Active: true}

	couponRepo.EXPECT().FindActiveByCode(ctx, "SAVE10").Return(coupon, nil)

	output, err := service.Validate(ctx, "  save10 ")

	require.NoError(t, err)
	assert.Equal(t, coupon, output.Coupon)
}

// Unlike checkout, explicit validation reports unknown codes as not-found.
func TestCouponService_Validate_UnknownCode(t *testing.T) {
	service, couponRepo, _ := newTestCouponService(t)

	ctx := context.Background()
	couponRepo.EXPECT().FindActiveByCode(ctx, "BADCODE").Return(nil, repository.ErrCouponNotFound)

	output, err := service.Validate(ctx, "badcode")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCouponNotFound)
	assert.Nil(t, output)
}

func TestCouponService_Validate_EmptyCode(t *testing.T) {
	service, _, _ := newTestCouponService(t)

	_, err := service.Validate(context.Background(), "   ")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCouponNotFound)
}

func TestCouponService_Create_StoresUppercaseCode(t *testing.T) {
	service, couponRepo, resolver := newTestCouponService(t)

	ctx := context.Background()
	admin := testAdmin()

	resolver.EXPECT().ResolveAdmin(ctx, admin.ID).Return(admin, nil)
	couponRepo.EXPECT().FindByCode(ctx, "WELCOME5").Return(nil, repository.ErrCouponNotFound)
	couponRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Coupon")).
		Run(func(ctx context.Context, coupon *entity.Coupon) {
			coupon.ID = 4
		}).
		Return(nil)

	output, err := service.Create(ctx, usecase.CreateCouponInput{
		ActorID:  admin.ID,
		Code:     "welcome5",
		Discount: 5,
		Active:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, "WELCOME5", output.Coupon.Code)
	assert.Equal(t, 5, output.Coupon.Discount)
}

func TestCouponService_Create_DiscountOutOfRange(t *testing.T) {
	service, _, resolver := newTestCouponService(t)

	ctx := context.Background()
	admin := testAdmin()
	resolver.EXPECT().ResolveAdmin(ctx, admin.ID).Return(admin, nil)

	_, err := service.Create(ctx, usecase.CreateCouponInput{ActorID: admin.ID, Code: "BIG", Discount: 150})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

// A code that already exists is caught by the lookup before any insert is
// attempted.
func TestCouponService_Create_DuplicateCode(t *testing.T) {
	service, couponRepo, resolver := newTestCouponService(t)

	ctx := context.Background()
	admin := testAdmin()

	resolver.EXPECT().ResolveAdmin(ctx, admin.ID).Return(admin, nil)
	couponRepo.EXPECT().FindByCode(ctx, "SAVE10").
		Return(&entity.Coupon{ID: 1, Code: "SAVE10", Discount: 10, Active: true}, nil)

	_, err := service.Create(ctx, usecase.CreateCouponInput{ActorID: admin.ID, Code: "SAVE10", Discount: 10})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCouponExists)
}

func TestCouponService_List_GateRejectsNonAdmin(t *testing.T) {
	service, _, resolver := newTestCouponService(t)

	ctx := context.Background()
	resolver.EXPECT().ResolveAdmin(ctx, int64(7)).
		Return(nil, domainerrors.ErrUnauthorized.WrapMessage("admin gate rejected non-admin account"))

	_, err := service.List(ctx, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
