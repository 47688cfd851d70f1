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
	"github.com/stretchr/testify/require"
)

type exportServiceMocks struct {
	listingRepo *mockRepo.MockListingRepository
	orderRepo   *mockRepo.MockOrderRepository
	ratingRepo  *mockRepo.MockRatingRepository
	profileRepo *mockRepo.MockProfileRepository
	resolver    *mockService.MockAccountResolver
}

func newTestExportService(t *testing.T) (usecase.ExportUsecase, exportServiceMocks) {
	mocks := exportServiceMocks{
		listingRepo: mockRepo.NewMockListingRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		ratingRepo:  mockRepo.NewMockRatingRepository(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		resolver:    mockService.NewMockAccountResolver(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewExportService(ExportServiceParams{
		ListingRepo: mocks.listingRepo,
		OrderRepo:   mocks.orderRepo,
		RatingRepo:  mocks.ratingRepo,
		ProfileRepo: mocks.profileRepo,
		Resolver:    mocks.resolver,
		Logger:      logger,
	})

	return service, mocks
}

func TestExportService_Export_AggregatesAccountData(t *testing.T) {
	service, mocks := newTestExportService(t)

	ctx := context.Background()
	account := &entity.Account{ID: 7, Username: "carol", Role: entity.RoleSeller, Status: entity.AccountStatusActive}
	listings := []*entity.Listing{{ID: 101, SellerID: 7, Name: "Desk Lamp"}}
	orders := []*entity.Order{{ID: 31, AccountID: 7}}
	ratings := []*entity.Rating{{ID: 51, AccountID: 7, ListingID: 200, Score: 4}}
	profile := &entity.Profile{AccountID: 7, Name: "Carol"}

	mocks.resolver.EXPECT().Resolve(ctx, account.ID).Return(account, nil)
	mocks.listingRepo.EXPECT().FindBySeller(ctx, account.ID).Return(listings, nil)
	mocks.orderRepo.EXPECT().FindByAccount(ctx, account.ID).Return(orders, nil)
	mocks.ratingRepo.EXPECT().FindByAccount(ctx, account.ID).Return(ratings, nil)
	mocks.profileRepo.EXPECT().FindByAccount(ctx, account.ID).Return(profile, nil)

	output, err := service.Export(ctx, account.ID)

	require.NoError(t, err)
	assert.Equal(t, account, output.Account)
	assert.Equal(t, listings, output.Listings)
	assert.Equal(t, orders, output.Orders)
	assert.Equal(t, ratings, output.Ratings)
	assert.Equal(t, profile, output.Profile)
}

// An account without a profile still exports; the profile slot stays nil.
func TestExportService_Export_MissingProfileOmitted(t *testing.T) {
	service, mocks := newTestExportService(t)

	ctx := context.Background()
	account := &entity.Account{ID: 7, Username: "carol", Role: entity.RoleBuyer, Status: entity.AccountStatusActive}

	mocks.resolver.EXPECT().Resolve(ctx, account.ID).Return(account, nil)
	mocks.listingRepo.EXPECT().FindBySeller(ctx, account.ID).Return(nil, nil)
	mocks.orderRepo.EXPECT().FindByAccount(ctx, account.ID).Return(nil, nil)
	mocks.ratingRepo.EXPECT().FindByAccount(ctx, account.ID).Return(nil, nil)
	mocks.profileRepo.EXPECT().FindByAccount(ctx, account.ID).Return(nil, repository.ErrProfileNotFound)

	output, err := service.Export(ctx, account.ID)

	require.NoError(t, err)
	assert.Nil(t, output.Profile)
	assert.Empty(t, output.Listings)
	assert.Empty(t, output.Orders)
	assert.Empty(t, output.Ratings)
}

func TestExportService_Export_UnknownAccount(t *testing.T) {
	service, mocks := newTestExportService(t)

	ctx := context.Background()
	mocks.resolver.EXPECT().Resolve(ctx, int64(404)).
		Return(nil, domainerrors.ErrAccountNotFound.WrapMessage("account lookup failed"))

	output, err := service.Export(ctx, 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	assert.Nil(t, output)
}

// Import only verifies the account; the payload is never applied inline.
func TestExportService_Import_ResolvesAccountOnly(t *testing.T) {
	service, mocks := newTestExportService(t)

	ctx := context.Background()
	account := &entity.Account{ID: 7, Role: entity.RoleBuyer, Status: entity.AccountStatusActive}

	mocks.resolver.EXPECT().Resolve(ctx, account.ID).Return(account, nil)

	require.NoError(t, service.Import(ctx, account.ID))
}

func TestExportService_Import_UnknownAccount(t *testing.T) {
	service, mocks := newTestExportService(t)

	ctx := context.Background()
	mocks.resolver.EXPECT().Resolve(ctx, int64(404)).
		Return(nil, domainerrors.ErrAccountNotFound.WrapMessage("account lookup failed"))

	err := service.Import(ctx, 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
