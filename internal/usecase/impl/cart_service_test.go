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
	"shoppro/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCartService(t *testing.T) (usecase.CartUsecase, *mockRepo.MockCartLineRepository, *mockRepo.MockListingRepository) {
	cartRepo := mockRepo.NewMockCartLineRepository(t)
	listingRepo := mockRepo.NewMockListingRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ListingRepo: listingRepo,
		Logger:      logger,
	})

	return service, cartRepo, listingRepo
}

func TestCartService_Add_NewLine(t *testing.T) {
	service, cartRepo, listingRepo := newTestCartService(t)

	ctx := context.Background()
	listing := &entity.Listing{ID: 101, Name: "Desk Lamp"}

	listingRepo.EXPECT().FindByID(ctx, int64(101)).Return(listing, nil)
	cartRepo.EXPECT().FindByAccountAndListing(ctx, int64(7), int64(101)).
		Return(nil, repository.ErrCartLineNotFound)
	cartRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.CartLine")).
		Run(func(ctx context.Context, line *entity.CartLine) {
			assert.Equal(t, int64(7), line.AccountID)
			assert.Equal(t, int64(101), line.ListingID)
			assert.Equal(t, 2, line.Quantity)
		}).
		Return(nil)

	err := service.Add(ctx, usecase.AddToCartInput{AccountID: 7, ListingID: 101, Quantity: 2})

	require.NoError(t, err)
}

func TestCartService_Add_MergesExistingLine(t *testing.T) {
	service, cartRepo, listingRepo := newTestCartService(t)

	ctx := context.Background()
	listing := &entity.Listing{ID: 101, Name: "Desk Lamp"}
	existing := &entity.CartLine{ID: 55, AccountID: 7, ListingID: 101, Quantity: 1}

	listingRepo.EXPECT().FindByID(ctx, int64(101)).Return(listing, nil)
	cartRepo.EXPECT().FindByAccountAndListing(ctx, int64(7), int64(101)).Return(existing, nil)
	cartRepo.EXPECT().UpdateQuantity(ctx, int64(55), 3).Return(nil)

	err := service.Add(ctx, usecase.AddToCartInput{AccountID: 7, ListingID: 101, Quantity: 2})

	require.NoError(t, err)
}

// Non-positive quantities never reach the repositories; a line with quantity
// below 1 is not representable.
func TestCartService_Add_NonPositiveQuantityRejected(t *testing.T) {
	service, _, _ := newTestCartService(t)

	ctx := context.Background()

	for _, quantity := range []int{0, -3} {
		err := service.Add(ctx, usecase.AddToCartInput{AccountID: 7, ListingID: 101, Quantity: quantity})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestCartService_Add_ListingNotFound(t *testing.T) {
	service, _, listingRepo := newTestCartService(t)

	ctx := context.Background()

	listingRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrListingNotFound)

	err := service.Add(ctx, usecase.AddToCartInput{AccountID: 7, ListingID: 404, Quantity: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestCartService_List(t *testing.T) {
	service, cartRepo, _ := newTestCartService(t)

	ctx := context.Background()
	lines := []*entity.CartLine{
		{ID: 1, AccountID: 7, ListingID: 101, Quantity: 1},
		{ID: 2, AccountID: 7, ListingID: 102, Quantity: 2},
	}

	cartRepo.EXPECT().FindByAccount(ctx, int64(7)).Return(lines, nil)

	output, err := service.List(ctx, 7)

	require.NoError(t, err)
	assert.Len(t, output.Lines, 2)
}

func TestCartService_Remove_NotFound(t *testing.T) {
	service, cartRepo, _ := newTestCartService(t)

	ctx := context.Background()

	cartRepo.EXPECT().Delete(ctx, int64(99)).Return(repository.ErrCartLineNotFound)

	err := service.Remove(ctx, 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartLineNotFound)
}
