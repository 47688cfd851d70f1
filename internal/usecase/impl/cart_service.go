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

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartLineRepository
	listingRepo repository.ListingRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartLineRepository
	ListingRepo repository.ListingRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		listingRepo: params.ListingRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the account's cart lines in insertion order.
func (srv *cartService) List(ctx context.Context, accountID int64) (*usecase.CartOutput, error) {
	lines, err := srv.cartRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart lines")
	}

	return &usecase.CartOutput{Lines: lines}, nil
}

// Add puts a listing into the cart, merging with an existing line when the
// (account, listing) pair is already present. The account id itself is not
// resolved; carts for unresolvable accounts stay representable until checkout.
func (srv *cartService) Add(ctx context.Context, input usecase.AddToCartInput) error {
	quantity := input.Quantity
	if quantity < 1 {
		return domainerrors.ErrValidationFailed.WrapMessage("cart quantity must be at least 1")
	}

	if _, err := srv.listingRepo.FindByID(ctx, input.ListingID); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return domainerrors.ErrListingNotFound.WrapMessage("cannot add unknown listing to cart")
		}

		return errors.Wrap(err, "failed to find listing for cart add")
	}

	existing, err := srv.cartRepo.FindByAccountAndListing(ctx, input.AccountID, input.ListingID)
	if err != nil && !errors.Is(err, repository.ErrCartLineNotFound) {
		return errors.Wrap(err, "failed to look up existing cart line")
	}

	if existing != nil {
		if err := srv.cartRepo.UpdateQuantity(ctx, existing.ID, existing.Quantity+quantity); err != nil {
			return errors.Wrap(err, "failed to merge cart line quantity")
		}

		return nil
	}

	line := &entity.CartLine{
		AccountID: input.AccountID,
		ListingID: input.ListingID,
		Quantity:  quantity,
	}
	if err := srv.cartRepo.Create(ctx, line); err != nil {
		return errors.Wrap(err, "failed to create cart line")
	}

	srv.log(ctx).Debug("Cart line added", slog.Int64("accountID", input.AccountID), slog.Int64("listingID", input.ListingID))

	return nil
}

// Remove deletes one cart line by its id.
func (srv *cartService) Remove(ctx context.Context, lineID int64) error {
	if err := srv.cartRepo.Delete(ctx, lineID); err != nil {
		if errors.Is(err, repository.ErrCartLineNotFound) {
			return domainerrors.ErrCartLineNotFound.WrapMessage("cart line already gone")
		}

		return errors.Wrap(err, "failed to delete cart line")
	}

	return nil
}
