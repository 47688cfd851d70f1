package impl

import (
	"context"
	"log/slog"

	deliverycontext "shoppro/internal/delivery/context"
	"shoppro/internal/domain/entity"
	domainerrors "shoppro/internal/domain/errors"
	"shoppro/internal/domain/repository"
	"shoppro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	ratingRepo  repository.RatingRepository
	listingRepo repository.ListingRepository
	logger      *slog.Logger
}

// RatingServiceParams holds dependencies for ratingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	RatingRepo  repository.RatingRepository
	ListingRepo repository.ListingRepository
	Logger      *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		ratingRepo:  params.RatingRepo,
		listingRepo: params.ListingRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListByListing returns every rating on a listing.
func (srv *ratingService) ListByListing(ctx context.Context, listingID int64) (*usecase.RatingsOutput, error) {
	if err := srv.requireListing(ctx, listingID); err != nil {
		return nil, err
	}

	ratings, err := srv.ratingRepo.FindByListing(ctx, listingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	return &usecase.RatingsOutput{Ratings: ratings}, nil
}

// Create leaves a rating on an existing listing.
func (srv *ratingService) Create(ctx context.Context, input usecase.AddRatingInput) (*usecase.RatingOutput, error) {
	if input.Score == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating score is required")
	}

	if err := srv.requireListing(ctx, input.ListingID); err != nil {
		return nil, err
	}

	rating := &entity.Rating{
		ListingID: input.ListingID,
		AccountID: input.AccountID,
		Score:     input.Score,
		Review:    input.Review,
	}

	if err := srv.ratingRepo.Create(ctx, rating); err != nil {
		return nil, errors.Wrap(err, "failed to create rating")
	}

	srv.log(ctx).Debug("Rating added", slog.Int64("listingID", input.ListingID), slog.Int("score", input.Score))

	return &usecase.RatingOutput{Rating: rating}, nil
}

func (srv *ratingService) requireListing(ctx context.Context, listingID int64) error {
	if _, err := srv.listingRepo.FindByID(ctx, listingID); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return domainerrors.ErrListingNotFound.WrapMessage("rating refers to unknown listing")
		}

		return errors.Wrap(err, "failed to find listing for rating")
	}

	return nil
}
