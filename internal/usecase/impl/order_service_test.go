package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"shoppro/internal/domain/entity"
	domainerrors "shoppro/internal/domain/errors"
	"shoppro/internal/domain/repository"
	mockRepo "shoppro/internal/mocks/repository"
	mockService "shoppro/internal/mocks/service"
	"shoppro/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)

	return &d
}

func newTestOrderService(t *testing.T) (usecase.OrderUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockOrderRepository, *mockService.MockAccountResolver) {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	resolver := mockService.NewMockAccountResolver(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Resolver:  resolver,
		Logger:    logger,
	})

	return service, txManager, orderRepo, resolver
}

// twoLineCart is a 25.00 cart: one listing at 10.00 and two of a 7.50 listing.
func twoLineCart(accountID int64) []*entity.CartLine {
	return []*entity.CartLine{
		{
			ID:        11,
			AccountID: accountID,
			ListingID: 101,
			Quantity:  1,
			Listing:   &entity.Listing{ID: 101, Name: "Desk Lamp", PriceType: entity.PriceTypeFixed, Price: decimalPtr("10.00")},
		},
		{
			ID:        12,
			AccountID: accountID,
			ListingID: 102,
			Quantity:  2,
			Listing:   &entity.Listing{ID: 102, Name: "Notebook", PriceType: entity.PriceTypeFixed, Price: decimalPtr("7.50")},
		},
	}
}

func TestOrderService_Checkout_WithCoupon(t *testing.T) {
	service, txManager, _, resolver := newTestOrderService(t)

	ctx := context.Background()
	account := &entity.Account{ID: 7, Role: entity.RoleBuyer, Status: entity.AccountStatusActive}
	lines := twoLineCart(account.ID)

	resolver.EXPECT().Resolve(ctx, account.ID).Return(account, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartLineRepository(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewCartLineRepository().Return(mockCartRepo)
			mockFactory.EXPECT().NewCouponRepository().Return(mockCouponRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockCartRepo.EXPECT().FindByAccount(ctx, account.ID).Return(lines, nil)
			mockCouponRepo.EXPECT().FindActiveByCode(ctx, "SAVE10").
				Return(&entity.Coupon{ID: 1, Code: "SAVE10", Discount: 10, Active: true}, nil)
			mockOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = 42
				}).
				Return(nil)
			mockCartRepo.EXPECT().DeleteByIDs(ctx, []int64{11, 12}).Return(nil)

			return fn(mockFactory)
		})

	output, err := service.Checkout(ctx, usecase.CheckoutInput{AccountID: account.ID, CouponCode: "SAVE10"})

	require.NoError(t, err)
	require.NotNil(t, output.Order)
	assert.Equal(t, int64(42), output.Order.ID)
	assert.Equal(t, "SAVE10", output.Order.CouponCode)
	assert.True(t, output.Order.Total.Equal(decimal.RequireFromString("22.50")),
		"expected 22.50, got %s", output.Order.Total)
	require.Len(t, output.Order.Lines, 2)
	assert.Equal(t, "Desk Lamp", output.Order.Lines[0].Name)
	assert.Equal(t, 2, output.Order.Lines[1].Quantity)
	assert.True(t, output.Order.Lines[1].Price.Equal(decimal.RequireFromString("7.50")))
	assert.Equal(t, entity.OrderStatusPending, output.Order.Status)
}

// A stored discount above 100 percent is clamped so the persisted total can
// never drop below zero.
func TestOrderService_Checkout_OversizedDiscountClamped(t *testing.T) {
	service, txManager, _, resolver := newTestOrderService(t)

	ctx := context.Background()
	account := &entity.Account{ID: 7, Role: entity.RoleBuyer, Status: entity.AccountStatusActive}
	lines := twoLineCart(account.ID)

	resolver.EXPECT().Resolve(ctx, account.ID).Return(account, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartLineRepository(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewCartLineRepository().Return(mockCartRepo)
			mockFactory.EXPECT().NewCouponRepository().Return(mockCouponRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockCartRepo.EXPECT().FindByAccount(ctx, account.ID).Return(lines, nil)
			mockCouponRepo.EXPECT().FindActiveByCode(ctx, "MEGA").
				Return(&entity.Coupon{ID: 9, Code: "MEGA", Discount: 150, Active: true}, nil)
			mockOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
			mockCartRepo.EXPECT().DeleteByIDs(ctx, []int64{11, 12}).Return(nil)

			return fn(mockFactory)
		})

	output, err := service.Checkout(ctx, usecase.CheckoutInput{AccountID: account.ID, CouponCode: "mega"})

	require.NoError(t, err)
	assert.True(t, output.Order.Total.Equal(decimal.Zero),
		"expected 0, got %s", output.Order.Total)
	assert.False(t, output.Order.Total.IsNegative())
	assert.Equal(t, "MEGA", output.Order.CouponCode)
}

func TestOrderService_Checkout_UnknownCouponIgnored(t *testing.T) {
	service, txManager, _, resolver := newTestOrderService(t)

	ctx := context.Background()
	account := &entity.Account{ID: 7, Role: entity.RoleBuyer, Status: entity.AccountStatusActive}
	lines := twoLineCart(account.ID)

	resolver.EXPECT().Resolve(ctx, account.ID).Return(account, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartLineRepository(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewCartLineRepository().Return(mockCartRepo)
			mockFactory.EXPECT().NewCouponRepository().Return(mockCouponRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockCartRepo.EXPECT().FindByAccount(ctx, account.ID).Return(lines, nil)
			mockCouponRepo.EXPECT().FindActiveByCode(ctx, "BADCODE").
				Return(nil, repository.ErrCouponNotFound)
			mockOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
			mockCartRepo.EXPECT().DeleteByIDs(ctx, []int64{11, 12}).Return(nil)

			return fn(mockFactory)
		})

	output, err := service.Checkout(ctx, usecase.CheckoutInput{AccountID: account.ID, CouponCode: "BADCODE"})

	require.NoError(t, err)
	assert.Empty(t, output.Order.CouponCode)
	assert.True(t, output.Order.Total.Equal(decimal.RequireFromString("25.00")),
		"expected 25.00, got %s", output.Order.Total)
}

func TestOrderService_Checkout_CouponCodeNormalized(t *testing.T) {
	service, txManager, _, resolver := newTestOrderService(t)

	ctx := context.Background()
	account := &entity.Account{ID: 7, Role: entity.RoleBuyer, Status: entity.AccountStatusActive}
	lines := twoLineCart(account.ID)

	resolver.EXPECT().Resolve(ctx, account.ID).Return(account, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartLineRepository(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewCartLineRepository().Return(mockCartRepo)
			mockFactory.EXPECT().NewCouponRepository().Return(mockCouponRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockCartRepo.EXPECT().FindByAccount(ctx, account.ID).Return(lines, nil)
			// Lookup happens on the trimmed, uppercased form.
			mockCouponRepo.EXPECT().FindActiveByCode(ctx, "SAVE10").
				Return(&entity.Coupon{ID: 1, Code: "SAVE10", Discount: 10, Active: true}, nil)
			mockOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
			mockCartRepo.EXPECT().DeleteByIDs(ctx, []int64{11, 12}).Return(nil)

			return fn(mockFactory)
		})

	output, err := service.Checkout(ctx, usecase.CheckoutInput{AccountID: account.ID, CouponCode: "  save10 "})

	require.NoError(t, err)
	assert.Equal(t, "SAVE10", output.Order.CouponCode)
	assert.True(t, output.Order.Total.Equal(decimal.RequireFromString("22.50")))
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	service, txManager, _, resolver := newTestOrderService(t)

	ctx := context.Background()
	account := &entity.Account{ID: 7, Role: entity.RoleBuyer, Status: entity.AccountStatusActive}

	resolver.EXPECT().Resolve(ctx, account.ID).Return(account, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartLineRepository(t)

			mockFactory.EXPECT().NewCartLineRepository().Return(mockCartRepo)
			mockCartRepo.EXPECT().FindByAccount(ctx, account.ID).Return([]*entity.CartLine{}, nil)

			return fn(mockFactory)
		})

	output, err := service.Checkout(ctx, usecase.CheckoutInput{AccountID: account.ID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	assert.Nil(t, output)
}

func TestOrderService_Checkout_AccountNotFound(t *testing.T) {
	service, _, _, resolver := newTestOrderService(t)

	ctx := context.Background()

	resolver.EXPECT().Resolve(ctx, int64(999)).
		Return(nil, domainerrors.ErrAccountNotFound.WrapMessage("account 999 not found"))

	output, err := service.Checkout(ctx, usecase.CheckoutInput{AccountID: 999})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	assert.Nil(t, output)
}

func TestOrderService_Checkout_UnpricedListingContributesZero(t *testing.T) {
	service, txManager, _, resolver := newTestOrderService(t)

	ctx := context.Background()
	account := &entity.Account{ID: 7, Role: entity.RoleBuyer, Status: entity.AccountStatusActive}
	lines := []*entity.CartLine{
		{
			ID:        21,
			AccountID: account.ID,
			ListingID: 201,
			Quantity:  1,
			Listing:   &entity.Listing{ID: 201, Name: "Vintage Chair", PriceType: entity.PriceTypeRange, PriceMin: decimalPtr("50"), PriceMax: decimalPtr("80")},
		},
		{
			ID:        22,
			AccountID: account.ID,
			ListingID: 202,
			Quantity:  3,
			Listing:   &entity.Listing{ID: 202, Name: "Mug", PriceType: entity.PriceTypeFixed, Price: decimalPtr("4.00")},
		},
	}

	resolver.EXPECT().Resolve(ctx, account.ID).Return(account, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartLineRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewCartLineRepository().Return(mockCartRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockCartRepo.EXPECT().FindByAccount(ctx, account.ID).Return(lines, nil)
			mockOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
			mockCartRepo.EXPECT().DeleteByIDs(ctx, []int64{21, 22}).Return(nil)

			return fn(mockFactory)
		})

	output, err := service.Checkout(ctx, usecase.CheckoutInput{AccountID: account.ID})

	require.NoError(t, err)
	assert.True(t, output.Order.Total.Equal(decimal.RequireFromString("12.00")),
		"range-priced listing must not contribute, got %s", output.Order.Total)
	assert.True(t, output.Order.Lines[0].Price.Equal(decimal.Zero))
}

// Two checkouts for the same account race: serialization guarantees exactly
// one of them consumes the cart and the other fails on the emptied cart.
func TestOrderService_Checkout_ConcurrentSameAccount(t *testing.T) {
	service, txManager, _, resolver := newTestOrderService(t)

	account := &entity.Account{ID: 7, Role: entity.RoleBuyer, Status: entity.AccountStatusActive}

	var mu sync.Mutex
	cart := []*entity.CartLine{
		{
			ID:        31,
			AccountID: account.ID,
			ListingID: 301,
			Quantity:  1,
			Listing:   &entity.Listing{ID: 301, Name: "Poster", PriceType: entity.PriceTypeFixed, Price: decimalPtr("9.99")},
		},
	}

	resolver.EXPECT().Resolve(mock.Anything, account.ID).Return(account, nil)

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mu.Lock()
			snapshot := append([]*entity.CartLine(nil), cart...)
			mu.Unlock()

			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartLineRepository(t)

			mockFactory.EXPECT().NewCartLineRepository().Return(mockCartRepo)
			mockCartRepo.EXPECT().FindByAccount(mock.Anything, account.ID).Return(snapshot, nil)

			if len(snapshot) > 0 {
				mockOrderRepo := mockRepo.NewMockOrderRepository(t)
				mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
				mockOrderRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
				mockCartRepo.EXPECT().DeleteByIDs(mock.Anything, []int64{31}).
					Run(func(ctx context.Context, ids []int64) {
						mu.Lock()
						cart = nil
						mu.Unlock()
					}).
					Return(nil)
			}

			return fn(mockFactory)
		})

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Checkout(context.Background(), usecase.CheckoutInput{AccountID: account.ID})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, emptied int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, domainerrors.ErrCartEmpty):
			emptied++
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one checkout may consume the cart")
	assert.Equal(t, 1, emptied, "the losing checkout must see an empty cart")
}

func TestOrderService_List(t *testing.T) {
	service, _, orderRepo, _ := newTestOrderService(t)

	ctx := context.Background()
	orders := []*entity.Order{
		{ID: 2, AccountID: 7, Total: decimal.RequireFromString("22.50")},
		{ID: 1, AccountID: 7, Total: decimal.RequireFromString("9.99")},
	}

	orderRepo.EXPECT().FindByAccount(ctx, int64(7)).Return(orders, nil)

	output, err := service.List(ctx, 7)

	require.NoError(t, err)
	assert.Len(t, output.Orders, 2)
	assert.Equal(t, int64(2), output.Orders[0].ID)
}

func TestOrderService_Get_NotFound(t *testing.T) {
	service, _, orderRepo, _ := newTestOrderService(t)

	ctx := context.Background()

	orderRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrOrderNotFound)

	output, err := service.Get(ctx, 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	assert.Nil(t, output)
}
