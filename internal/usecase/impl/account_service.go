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

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new buyer account.
func (srv *accountService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.AccountOutput, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if username == "" || email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username, email and password are required")
	}

	srv.log(ctx).Info("Starting signup", slog.String("username", username))

	if _, err := srv.accountRepo.FindByUsername(ctx, username); err == nil {
		return nil, domainerrors.ErrUsernameTaken.WrapMessage("signup rejected duplicate username")
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check username during signup")
	}

	if _, err := srv.accountRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrEmailTaken.WrapMessage("signup rejected duplicate email")
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check email during signup")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during signup")
	}

	account := &entity.Account{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		FullName:     input.FullName,
		Role:         entity.RoleBuyer,
		Status:       entity.AccountStatusActive,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create account during signup")
	}

	srv.log(ctx).Debug("Signup completed", slog.Int64("accountID", account.ID))

	return &usecase.AccountOutput{Account: account}, nil
}

// Login verifies credentials and the account status.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AccountOutput, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username and password are required")
	}

	account, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find account during login")
	}

	// bcrypt is CPU-bound; run it outside any transaction.
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// Status is only checked after the password matched, so a banned account
	// cannot be enumerated without knowing its password.
	if !account.IsActive() {
		return nil, domainerrors.ErrAccountInactive.WrapMessage("login rejected non-active account")
	}

	srv.log(ctx).Debug("Account logged in", slog.Int64("accountID", account.ID))

	return &usecase.AccountOutput{Account: account}, nil
}

// Check resolves an account id and reports whether it is active.
func (srv *accountService) Check(ctx context.Context, accountID int64) (*usecase.CheckOutput, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return &usecase.CheckOutput{Authenticated: false}, nil
		}

		return nil, errors.Wrap(err, "failed to find account during auth check")
	}

	if !account.IsActive() {
		return &usecase.CheckOutput{Authenticated: false}, nil
	}

	return &usecase.CheckOutput{Authenticated: true, Account: account}, nil
}
