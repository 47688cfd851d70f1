package impl

import (
	"context"
	"log/slog"

	deliverycontext "shoppro/internal/delivery/context"
	"shoppro/internal/domain/entity"
	domainerrors "shoppro/internal/domain/errors"
	"shoppro/internal/domain/repository"
	"shoppro/internal/domain/service"
	"shoppro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// listingService implements the ListingUsecase interface.
type listingService struct {
	txManager   repository.TransactionManager
	listingRepo repository.ListingRepository
	accountRepo repository.AccountRepository
	resolver    service.AccountResolver
	logger      *slog.Logger
}

// ListingServiceParams holds dependencies for listingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ListingRepo repository.ListingRepository
	AccountRepo repository.AccountRepository
	Resolver    service.AccountResolver
	Logger      *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		txManager:   params.TxManager,
		listingRepo: params.ListingRepo,
		accountRepo: params.AccountRepo,
		resolver:    params.Resolver,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns all listings, optionally filtered by seller.
func (srv *listingService) List(ctx context.Context, sellerID *int64) (*usecase.ListingsOutput, error) {
	var (
		listings []*entity.Listing
		err      error
	)

	if sellerID != nil {
		listings, err = srv.listingRepo.FindBySeller(ctx, *sellerID)
	} else {
		listings, err = srv.listingRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	return &usecase.ListingsOutput{Listings: listings}, nil
}

// Get returns one listing by id.
func (srv *listingService) Get(ctx context.Context, listingID int64) (*usecase.ListingOutput, error) {
	listing, err := srv.findListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	return &usecase.ListingOutput{Listing: listing}, nil
}

// Create publishes a listing for an active seller.
func (srv *listingService) Create(ctx context.Context, input usecase.CreateListingInput) (*usecase.ListingOutput, error) {
	seller, err := srv.resolver.ResolveRole(ctx, input.SellerID, entity.RoleSeller)
	if err != nil {
		return nil, err
	}

	if input.Name == "" || input.Category == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("listing name and category are required")
	}

	priceType := input.PriceType
	if priceType == "" {
		priceType = entity.PriceTypeFixed
	}

	contactEmail := input.ContactEmail
	if contactEmail == "" {
		contactEmail = seller.Email
	}
	contactPhone := input.ContactPhone
	if contactPhone == "" {
		contactPhone = seller.Phone
	}

	listing := &entity.Listing{
		Name:           input.Name,
		Category:       input.Category,
		Description:    input.Description,
		PriceType:      priceType,
		Price:          input.Price,
		PriceMin:       input.PriceMin,
		PriceMax:       input.PriceMax,
		ContactEmail:   contactEmail,
		ContactPhone:   contactPhone,
		Whatsapp:       input.Whatsapp,
		ContactMethods: input.ContactMethods,
		SellerID:       seller.ID,
		SellerName:     seller.DisplayName(),
	}

	if err := srv.listingRepo.Create(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to create listing")
	}

	srv.log(ctx).Info("Listing created", slog.Int64("listingID", listing.ID), slog.Int64("sellerID", seller.ID))

	return &usecase.ListingOutput{Listing: listing}, nil
}

// Update modifies a listing. Allowed for the owner and for admins.
func (srv *listingService) Update(ctx context.Context, input usecase.UpdateListingInput) (*usecase.ListingOutput, error) {
	// The listing is looked up before the actor, so an unknown listing reads
	// as not-found even to anonymous callers.
	listing, err := srv.findListing(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}

	actor, err := srv.resolver.Resolve(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}
	if !srv.resolver.CanManage(actor, listing.SellerID) {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("only the owner or an admin may update a listing")
	}

	if input.Name != nil {
		listing.Name = *input.Name
	}
	if input.Category != nil {
		listing.Category = *input.Category
	}
	if input.Description != nil {
		listing.Description = *input.Description
	}
	if input.PriceType != nil {
		listing.PriceType = *input.PriceType
	}
	if input.Price != nil {
		listing.Price = input.Price
	}
	if input.PriceMin != nil {
		listing.PriceMin = input.PriceMin
	}
	if input.PriceMax != nil {
		listing.PriceMax = input.PriceMax
	}
	if input.ContactEmail != nil {
		listing.ContactEmail = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		listing.ContactPhone = *input.ContactPhone
	}
	if input.Whatsapp != nil {
		listing.Whatsapp = *input.Whatsapp
	}
	if input.ContactMethods != nil {
		listing.ContactMethods = input.ContactMethods
	}

	if err := srv.listingRepo.Update(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to update listing")
	}

	return &usecase.ListingOutput{Listing: listing}, nil
}

// Delete removes a listing unless cart lines or order lines still reference
// it. The reference check and the delete share one transaction so no new
// reference can slip in between them.
func (srv *listingService) Delete(ctx context.Context, actorID, listingID int64) error {
	listing, err := srv.findListing(ctx, listingID)
	if err != nil {
		return err
	}

	actor, err := srv.resolver.Resolve(ctx, actorID)
	if err != nil {
		return err
	}
	if !srv.resolver.CanManage(actor, listing.SellerID) {
		return domainerrors.ErrUnauthorized.WrapMessage("only the owner or an admin may delete a listing")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRefs, err := repoFactory.NewCartLineRepository().CountByListing(ctx, listingID)
		if err != nil {
			return errors.Wrap(err, "failed to count cart references")
		}
		orderRefs, err := repoFactory.NewOrderRepository().CountLinesByListing(ctx, listingID)
		if err != nil {
			return errors.Wrap(err, "failed to count order references")
		}
		if cartRefs > 0 || orderRefs > 0 {
			return domainerrors.ErrListingReferenced.WrapMessage("listing is still referenced")
		}

		return repoFactory.NewListingRepository().Delete(ctx, listingID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Listing deleted", slog.Int64("listingID", listingID), slog.Int64("actorID", actorID))

	return nil
}

// SellerPage returns a seller account with their listings.
func (srv *listingService) SellerPage(ctx context.Context, sellerID int64) (*usecase.SellerPageOutput, error) {
	seller, err := srv.accountRepo.FindByID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrSellerNotFound.WrapMessage("seller page for unknown account")
		}

		return nil, errors.Wrap(err, "failed to find seller for seller page")
	}
	if seller.Role != entity.RoleSeller {
		return nil, domainerrors.ErrSellerNotFound.WrapMessage("account is not a seller")
	}

	listings, err := srv.listingRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller listings")
	}

	return &usecase.SellerPageOutput{Seller: seller, Listings: listings}, nil
}

// Search returns listings matching the filters.
func (srv *listingService) Search(ctx context.Context, input usecase.SearchListingsInput) (*usecase.ListingsOutput, error) {
	sort := input.Sort
	if sort == "" {
		sort = repository.ListingSortNewest
	}

	listings, err := srv.listingRepo.Search(ctx, repository.ListingSearch{
		Query:    input.Query,
		Category: input.Category,
		Sort:     sort,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search listings")
	}

	return &usecase.ListingsOutput{Listings: listings}, nil
}

func (srv *listingService) findListing(ctx context.Context, id int64) (*entity.Listing, error) {
	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound.WrapMessage("listing not found")
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	return listing, nil
}
