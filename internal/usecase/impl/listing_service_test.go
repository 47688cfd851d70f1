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

type listingServiceFixture struct {
	service     usecase.ListingUsecase
	txManager   *mockRepo.MockTransactionManager
	listingRepo *mockRepo.MockListingRepository
	accountRepo *mockRepo.MockAccountRepository
	resolver    *mockService.MockAccountResolver
}

func newTestListingService(t *testing.T) *listingServiceFixture {
	f := &listingServiceFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		listingRepo: mockRepo.NewMockListingRepository(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		resolver:    mockService.NewMockAccountResolver(t),
	}

	f.service = NewListingService(ListingServiceParams{
		TxManager:   f.txManager,
		ListingRepo: f.listingRepo,
		AccountRepo: f.accountRepo,
		Resolver:    f.resolver,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func testSeller() *entity.Account {
	return &entity.Account{
		ID:       7,
		Username: "shopkeeper",
		Email:    "shop@example.com",
		Phone:    "0912345678",
		ShopName: "Corner Shop",
		Role:     entity.RoleSeller,
		Status:   entity.AccountStatusActive,
	}
}

func TestListingService_Create_ContactFallsBackToAccount(t *testing.T) {
	f := newTestListingService(t)

	ctx := context.Background()
	seller := testSeller()

	f.resolver.EXPECT().ResolveRole(ctx, seller.ID, entity.RoleSeller).Return(seller, nil)
	f.listingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Listing")).
		Run(func(ctx context.Context, listing *entity.Listing) {
			listing.ID = 101
		}).
		Return(nil)

	output, err := f.service.Create(ctx, usecase.CreateListingInput{
		SellerID: seller.ID,
		Name:     "Desk Lamp",
		Category: "home",
		Price:    decimalPtr("10.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(101), output.Listing.ID)
	assert.Equal(t, "shop@example.com", output.Listing.ContactEmail, "contact email falls back to the account")
	assert.Equal(t, "0912345678", output.Listing.ContactPhone, "contact phone falls back to the account")
	assert.Equal(t, "Corner Shop", output.Listing.SellerName, "seller name is frozen from the display name")
	assert.Equal(t, entity.PriceTypeFixed, output.Listing.PriceType, "price type defaults to fixed")
}

func TestListingService_Create_NonSellerRejected(t *testing.T) {
	f := newTestListingService(t)

	ctx := context.Background()
	f.resolver.EXPECT().ResolveRole(ctx, int64(5), entity.RoleSeller).
		Return(nil, domainerrors.ErrUnauthorized.WrapMessage("resolved account holds a different role"))

	_, err := f.service.Create(ctx, usecase.CreateListingInput{SellerID: 5, Name: "X", Category: "misc"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

// The listing lookup runs before the actor is resolved, so an unknown listing
// is reported as not-found regardless of who asks.
func TestListingService_Update_UnknownListingBeforeActor(t *testing.T) {
	f := newTestListingService(t)

	ctx := context.Background()
	f.listingRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrListingNotFound)

	_, err := f.service.Update(ctx, usecase.UpdateListingInput{ActorID: 999, ListingID: 404})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestListingService_Update_ForeignActorRejected(t *testing.T) {
	f := newTestListingService(t)

	ctx := context.Background()
	listing := &entity.Listing{ID: 101, Name: "Desk Lamp", SellerID: 7}
	actor := &entity.Account{ID: 5, Role: entity.RoleBuyer, Status: entity.AccountStatusActive}

	f.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	f.resolver.EXPECT().Resolve(ctx, actor.ID).Return(actor, nil)
	f.resolver.EXPECT().CanManage(actor, listing.SellerID).Return(false)

	_, err := f.service.Update(ctx, usecase.UpdateListingInput{ActorID: actor.ID, ListingID: listing.ID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestListingService_Update_PartialFields(t *testing.T) {
	f := newTestListingService(t)

	ctx := context.Background()
	listing := &entity.Listing{ID: 101, Name: "Desk Lamp", Category: "home", SellerID: 7}
	owner := testSeller()

	f.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	f.resolver.EXPECT().Resolve(ctx, owner.ID).Return(owner, nil)
	f.resolver.EXPECT().CanManage(owner, listing.SellerID).Return(true)
	f.listingRepo.EXPECT().Update(ctx, listing).Return(nil)

	name := "Brass Desk Lamp"
	output, err := f.service.Update(ctx, usecase.UpdateListingInput{
		ActorID:   owner.ID,
		ListingID: listing.ID,
		Name:      &name,
	})

	require.NoError(t, err)
	assert.Equal(t, "Brass Desk Lamp", output.Listing.Name)
	assert.Equal(t, "home", output.Listing.Category, "untouched fields stay as they were")
}

func TestListingService_Delete_ReferencedListingConflicts(t *testing.T) {
	f := newTestListingService(t)

	ctx := context.Background()
	listing := &entity.Listing{ID: 101, SellerID: 7}
	owner := testSeller()

	f.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	f.resolver.EXPECT().Resolve(ctx, owner.ID).Return(owner, nil)
	f.resolver.EXPECT().CanManage(owner, listing.SellerID).Return(true)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartLineRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewCartLineRepository().Return(mockCartRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockCartRepo.EXPECT().CountByListing(ctx, listing.ID).Return(int64(2), nil)
			mockOrderRepo.EXPECT().CountLinesByListing(ctx, listing.ID).Return(int64(0), nil)

			return fn(mockFactory)
		})

	err := f.service.Delete(ctx, owner.ID, listing.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrListingReferenced)
}

func TestListingService_Delete_Success(t *testing.T) {
	f := newTestListingService(t)

	ctx := context.Background()
	listing := &entity.Listing{ID: 101, SellerID: 7}
	owner := testSeller()

	f.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	f.resolver.EXPECT().Resolve(ctx, owner.ID).Return(owner, nil)
	f.resolver.EXPECT().CanManage(owner, listing.SellerID).Return(true)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartLineRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)

			mockFactory.EXPECT().NewCartLineRepository().Return(mockCartRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewListingRepository().Return(mockListingRepo)

			mockCartRepo.EXPECT().CountByListing(ctx, listing.ID).Return(int64(0), nil)
			mockOrderRepo.EXPECT().CountLinesByListing(ctx, listing.ID).Return(int64(0), nil)
			mockListingRepo.EXPECT().Delete(ctx, listing.ID).Return(nil)

			return fn(mockFactory)
		})

	err := f.service.Delete(ctx, owner.ID, listing.ID)

	require.NoError(t, err)
}

func TestListingService_SellerPage_BuyerIsNotASeller(t *testing.T) {
	f := newTestListingService(t)

	ctx := context.Background()
	buyer := &entity.Account{ID: 5, Role: entity.RoleBuyer, Status: entity.AccountStatusActive}

	f.accountRepo.EXPECT().FindByID(ctx, buyer.ID).Return(buyer, nil)

	_, err := f.service.SellerPage(ctx, buyer.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSellerNotFound)
}

func TestListingService_SellerPage_Success(t *testing.T) {
	f := newTestListingService(t)

	ctx := context.Background()
	seller := testSeller()
	listings := []*entity.Listing{{ID: 101, SellerID: seller.ID}}

	f.accountRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
	f.listingRepo.EXPECT().FindBySeller(ctx, seller.ID).Return(listings, nil)

	output, err := f.service.SellerPage(ctx, seller.ID)

	require.NoError(t, err)
	assert.Equal(t, seller, output.Seller)
	assert.Len(t, output.Listings, 1)
}

func TestListingService_Search_DefaultsToNewest(t *testing.T) {
	f := newTestListingService(t)

	ctx := context.Background()
	f.listingRepo.EXPECT().
		Search(ctx, repository.ListingSearch{Query: "lamp", Sort: repository.ListingSortNewest}).
		Return([]*entity.Listing{{ID: 101}}, nil)

	output, err := f.service.Search(ctx, usecase.SearchListingsInput{Query: "lamp"})

	require.NoError(t, err)
	assert.Len(t, output.Listings, 1)
}

func TestListingService_List_FiltersBySeller(t *testing.T) {
	f := newTestListingService(t)

	ctx := context.Background()
	sellerID := int64(7)
	f.listingRepo.EXPECT().FindBySeller(ctx, sellerID).Return([]*entity.Listing{{ID: 101}}, nil)

	output, err := f.service.List(ctx, &sellerID)

	require.NoError(t, err)
	assert.Len(t, output.Listings, 1)
}
