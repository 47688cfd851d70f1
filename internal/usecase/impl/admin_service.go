package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "shoppro/internal/delivery/context"
	"shoppro/internal/domain/entity"
	domainerrors "shoppro/internal/domain/errors"
	"shoppro/internal/domain/repository"
	"shoppro/internal/domain/service"
	"shoppro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tempSellerPassword is assigned when an admin creates a seller without one.
const tempSellerPassword = "temp_password_123"

// minPasswordLength applies to the admin password reset flow.
const minPasswordLength = 6

// adminService implements the AdminUsecase interface.
type adminService struct {
	resolver    service.AccountResolver
	accountRepo repository.AccountRepository
	listingRepo repository.ListingRepository
	ratingRepo  repository.RatingRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	Resolver    service.AccountResolver
	AccountRepo repository.AccountRepository
	ListingRepo repository.ListingRepository
	RatingRepo  repository.RatingRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		resolver:    params.Resolver,
		accountRepo: params.AccountRepo,
		listingRepo: params.ListingRepo,
		ratingRepo:  params.RatingRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every account.
func (srv *adminService) ListUsers(ctx context.Context, actorID int64) (*usecase.AccountsOutput, error) {
	if _, err := srv.resolver.ResolveAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	accounts, err := srv.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return &usecase.AccountsOutput{Accounts: accounts}, nil
}

// GetUser returns one account by id.
func (srv *adminService) GetUser(ctx context.Context, actorID, userID int64) (*usecase.AccountOutput, error) {
	if _, err := srv.resolver.ResolveAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	account, err := srv.findAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.AccountOutput{Account: account}, nil
}

// UpdateUser applies a partial update to an account.
func (srv *adminService) UpdateUser(ctx context.Context, input usecase.UpdateUserInput) (*usecase.AccountOutput, error) {
	if _, err := srv.resolver.ResolveAdmin(ctx, input.ActorID); err != nil {
		return nil, err
	}

	account, err := srv.findAccount(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	// Admin accounts may be edited but never demoted through this path.
	if account.Role == entity.RoleAdmin && input.Role != nil && *input.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrAdminImmutable.WrapMessage("admin role cannot be changed")
	}

	if err := srv.applyIdentityChanges(ctx, account, input.Username, input.Email); err != nil {
		return nil, err
	}

	if input.FullName != nil {
		account.FullName = *input.FullName
	}
	if input.Phone != nil {
		account.Phone = *input.Phone
	}
	if input.Status != nil {
		account.Status = *input.Status
	}

	// Role changes are restricted to buyer and seller; the upload flag tracks
	// the seller role.
	if input.Role != nil && (*input.Role == entity.RoleBuyer || *input.Role == entity.RoleSeller) {
		account.Role = *input.Role
		account.CanUploadStock = *input.Role == entity.RoleSeller
	}

	if input.Password != nil && *input.Password != "" {
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during user update")
		}
		account.PasswordHash = hashed
	}

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	srv.log(ctx).Info("Account updated by admin", slog.Int64("actorID", input.ActorID), slog.Int64("accountID", account.ID))

	return &usecase.AccountOutput{Account: account}, nil
}

// DeleteUser removes a non-admin account.
func (srv *adminService) DeleteUser(ctx context.Context, actorID, userID int64) error {
	if _, err := srv.resolver.ResolveAdmin(ctx, actorID); err != nil {
		return err
	}

	account, err := srv.findAccount(ctx, userID)
	if err != nil {
		return err
	}

	if account.Role == entity.RoleAdmin {
		return domainerrors.ErrAdminImmutable.WrapMessage("admin accounts cannot be deleted")
	}

	if err := srv.accountRepo.Delete(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted by admin", slog.Int64("actorID", actorID), slog.Int64("accountID", userID))

	return nil
}

// PromoteToSeller turns a buyer into a seller.
func (srv *adminService) PromoteToSeller(ctx context.Context, input usecase.PromoteInput) (*usecase.AccountOutput, error) {
	if _, err := srv.resolver.ResolveAdmin(ctx, input.ActorID); err != nil {
		return nil, err
	}

	account, err := srv.findAccount(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if account.Role == entity.RoleSeller {
		return nil, domainerrors.ErrAlreadySeller.WrapMessage("promotion rejected")
	}

	account.Role = entity.RoleSeller
	account.CanUploadStock = true
	if input.ShopName != "" {
		account.ShopName = input.ShopName
	}
	if input.ShopDescription != "" {
		account.ShopDescription = input.ShopDescription
	}

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to promote account to seller")
	}

	srv.log(ctx).Info("Account promoted to seller", slog.Int64("actorID", input.ActorID), slog.Int64("accountID", account.ID))

	return &usecase.AccountOutput{Account: account}, nil
}

// ResetAdminPassword lets an admin reset their own password via the full-name
// security question.
func (srv *adminService) ResetAdminPassword(ctx context.Context, input usecase.ResetAdminPasswordInput) error {
	admin, err := srv.resolver.ResolveAdmin(ctx, input.ActorID)
	if err != nil {
		return err
	}

	if input.ActorID != input.UserID {
		return domainerrors.ErrUnauthorized.WrapMessage("admins may only reset their own password through this flow")
	}

	answer := strings.TrimSpace(input.FullNameAnswer)
	if admin.FullName == "" || !strings.EqualFold(strings.TrimSpace(admin.FullName), answer) {
		return domainerrors.ErrSecurityAnswerMismatch.WrapMessage("full-name answer did not match")
	}

	if len(input.NewPassword) < minPasswordLength {
		return domainerrors.ErrPasswordTooShort.WrapMessage("new password rejected")
	}

	hashed, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during reset")
	}
	admin.PasswordHash = hashed

	if err := srv.accountRepo.Update(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to store reset password")
	}

	srv.log(ctx).Info("Admin password reset", slog.Int64("accountID", admin.ID))

	return nil
}

// ListSellers returns every seller account.
func (srv *adminService) ListSellers(ctx context.Context, actorID int64) (*usecase.AccountsOutput, error) {
	if _, err := srv.resolver.ResolveAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	sellers, err := srv.accountRepo.FindByRole(ctx, entity.RoleSeller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sellers")
	}

	return &usecase.AccountsOutput{Accounts: sellers}, nil
}

// GetSeller returns one seller account. This read carries no admin gate.
func (srv *adminService) GetSeller(ctx context.Context, sellerID int64) (*usecase.AccountOutput, error) {
	seller, err := srv.findSeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	return &usecase.AccountOutput{Account: seller}, nil
}

// CreateSeller creates a seller account directly.
func (srv *adminService) CreateSeller(ctx context.Context, input usecase.CreateSellerInput) (*usecase.AccountOutput, error) {
	if _, err := srv.resolver.ResolveAdmin(ctx, input.ActorID); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if username == "" || email == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username and email are required")
	}

	if _, err := srv.accountRepo.FindByUsername(ctx, username); err == nil {
		return nil, domainerrors.ErrUsernameTaken.WrapMessage("seller creation rejected duplicate username")
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check username during seller creation")
	}

	if _, err := srv.accountRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrEmailTaken.WrapMessage("seller creation rejected duplicate email")
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check email during seller creation")
	}

	password := input.Password
	if password == "" {
		password = tempSellerPassword
	}
	hashed, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during seller creation")
	}

	seller := &entity.Account{
		Username:        username,
		Email:           email,
		PasswordHash:    hashed,
		FullName:        input.FullName,
		Phone:           input.Phone,
		ShopName:        input.ShopName,
		ShopDescription: input.ShopDescription,
		Role:            entity.RoleSeller,
		Status:          entity.AccountStatusActive,
		CanUploadStock:  true,
	}

	if err := srv.accountRepo.Create(ctx, seller); err != nil {
		return nil, errors.Wrap(err, "failed to create seller account")
	}

	srv.log(ctx).Info("Seller created by admin", slog.Int64("actorID", input.ActorID), slog.Int64("sellerID", seller.ID))

	return &usecase.AccountOutput{Account: seller}, nil
}

// UpdateSeller applies a partial update to a seller account.
func (srv *adminService) UpdateSeller(ctx context.Context, input usecase.UpdateSellerInput) (*usecase.AccountOutput, error) {
	if _, err := srv.resolver.ResolveAdmin(ctx, input.ActorID); err != nil {
		return nil, err
	}

	seller, err := srv.findSeller(ctx, input.SellerID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		seller.FullName = *input.FullName
	}
	if input.Phone != nil {
		seller.Phone = *input.Phone
	}
	if input.ShopName != nil {
		seller.ShopName = *input.ShopName
	}
	if input.ShopDescription != nil {
		seller.ShopDescription = *input.ShopDescription
	}
	if input.Status != nil {
		seller.Status = *input.Status
	}

	if err := srv.accountRepo.Update(ctx, seller); err != nil {
		return nil, errors.Wrap(err, "failed to update seller account")
	}

	return &usecase.AccountOutput{Account: seller}, nil
}

// DeleteSeller removes a seller account.
func (srv *adminService) DeleteSeller(ctx context.Context, actorID, sellerID int64) error {
	if _, err := srv.resolver.ResolveAdmin(ctx, actorID); err != nil {
		return err
	}

	if _, err := srv.findSeller(ctx, sellerID); err != nil {
		return err
	}

	if err := srv.accountRepo.Delete(ctx, sellerID); err != nil {
		return errors.Wrap(err, "failed to delete seller account")
	}

	srv.log(ctx).Info("Seller deleted by admin", slog.Int64("actorID", actorID), slog.Int64("sellerID", sellerID))

	return nil
}

// SellerAnalytics returns metrics for every seller.
func (srv *adminService) SellerAnalytics(ctx context.Context, actorID int64) (*usecase.SellerAnalyticsOutput, error) {
	if _, err := srv.resolver.ResolveAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	sellers, err := srv.accountRepo.FindByRole(ctx, entity.RoleSeller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sellers for analytics")
	}

	analytics := make([]*usecase.SellerAnalytics, 0, len(sellers))
	for _, seller := range sellers {
		entry, err := srv.collectSellerAnalytics(ctx, seller)
		if err != nil {
			return nil, err
		}
		analytics = append(analytics, entry)
	}

	return &usecase.SellerAnalyticsOutput{Analytics: analytics}, nil
}

// SellerAnalyticsByID returns metrics for one seller. Allowed for admins and
// for the seller itself; an unknown actor is an authorization failure here,
// matching the list endpoint.
func (srv *adminService) SellerAnalyticsByID(ctx context.Context, actorID, sellerID int64) (*usecase.SellerAnalytics, error) {
	actor, err := srv.accountRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("analytics rejected unknown account")
		}

		return nil, errors.Wrap(err, "failed to resolve analytics actor")
	}

	if !srv.resolver.CanManage(actor, sellerID) {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("analytics restricted to admins and the seller itself")
	}

	seller, err := srv.findSeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	return srv.collectSellerAnalytics(ctx, seller)
}

func (srv *adminService) collectSellerAnalytics(ctx context.Context, seller *entity.Account) (*usecase.SellerAnalytics, error) {
	listingCount, err := srv.listingRepo.CountBySeller(ctx, seller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count seller listings")
	}

	avgRating, err := srv.ratingRepo.AverageScoreBySeller(ctx, seller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to average seller ratings")
	}

	return &usecase.SellerAnalytics{
		Seller:       seller,
		ListingCount: listingCount,
		AvgRating:    avgRating,
	}, nil
}

func (srv *adminService) findAccount(ctx context.Context, id int64) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("target account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

func (srv *adminService) findSeller(ctx context.Context, id int64) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrSellerNotFound.WrapMessage("seller not found")
		}

		return nil, errors.Wrap(err, "failed to find seller")
	}
	if account.Role != entity.RoleSeller {
		return nil, domainerrors.ErrSellerNotFound.WrapMessage("account is not a seller")
	}

	return account, nil
}

// applyIdentityChanges handles username/email changes with uniqueness checks.
func (srv *adminService) applyIdentityChanges(ctx context.Context, account *entity.Account, username, email *string) error {
	if username != nil {
		trimmed := strings.TrimSpace(*username)
		if trimmed != "" && trimmed != account.Username {
			if _, err := srv.accountRepo.FindByUsername(ctx, trimmed); err == nil {
				return domainerrors.ErrUsernameTaken.WrapMessage("user update rejected duplicate username")
			} else if !errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(err, "failed to check username during user update")
			}
			account.Username = trimmed
		}
	}

	if email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*email))
		if normalized != "" && normalized != account.Email {
			if _, err := srv.accountRepo.FindByEmail(ctx, normalized); err == nil {
				return domainerrors.ErrEmailTaken.WrapMessage("user update rejected duplicate email")
			} else if !errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(err, "failed to check email during user update")
			}
			account.Email = normalized
		}
	}

	return nil
}
