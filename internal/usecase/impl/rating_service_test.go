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

func newTestRatingService(t *testing.T) (usecase.RatingUsecase, *mockRepo.MockRatingRepository, *mockRepo.MockListingRepository) {
	ratingRepo := mockRepo.NewMockRatingRepository(t)
	listingRepo := mockRepo.NewMockListingRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewRatingService(RatingServiceParams{
		RatingRepo:  ratingRepo,
		ListingRepo: listingRepo,
		Logger:      logger,
	})

	return service, ratingRepo, listingRepo
}

func TestRatingService_Create_Success(t *testing.T) {
	service, ratingRepo, listingRepo := newTestRatingService(t)

	ctx := context.Background()
	listing := &entity.Listing{ID: 101, Name: "Desk Lamp"}

	listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	ratingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Rating")).
		Run(func(ctx context.Context, rating *entity.Rating) {
			rating.ID = 3
		}).
		Return(nil)

	output, err := service.Create(ctx, usecase.AddRatingInput{
		ListingID: listing.ID,
		AccountID: 7,
		Score:     5,
		Review:    "works great",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), output.Rating.ID)
	assert.Equal(t, 5, output.Rating.Score)
}

func TestRatingService_Create_MissingScore(t *testing.T) {
	service, _, _ := newTestRatingService(t)

	_, err := service.Create(context.Background(), usecase.AddRatingInput{ListingID: 101, AccountID: 7})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRatingService_Create_UnknownListing(t *testing.T) {
	service, _, listingRepo := newTestRatingService(t)

	ctx := context.Background()
	listingRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrListingNotFound)

	_, err := service.Create(ctx, usecase.AddRatingInput{ListingID: 404, AccountID: 7, Score: 4})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestRatingService_ListByListing(t *testing.T) {
	service, ratingRepo, listingRepo := newTestRatingService(t)

	ctx := context.Background()
	listing := &entity.Listing{ID: 101}
	ratings := []*entity.Rating{
		{ID: 1, ListingID: 101, AccountID: 7, Score: 5},
		{ID: 2, ListingID: 101, AccountID: 8, Score: 3},
	}

	listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	ratingRepo.EXPECT().FindByListing(ctx, listing.ID).Return(ratings, nil)

	output, err := service.ListByListing(ctx, listing.ID)

	require.NoError(t, err)
	assert.Len(t, output.Ratings, 2)
}
