// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"shoppro/internal/domain/entity"
	domainerrors "shoppro/internal/domain/errors"
	"shoppro/internal/domain/repository"
	"shoppro/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountResolver implements the service.AccountResolver interface over the
// identity store. Every commerce operation that embeds an account id goes
// through here before trusting it.
type accountResolver struct {
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// AccountResolverParams holds dependencies for accountResolver, injected by Fx.
type AccountResolverParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewAccountResolver is the constructor for accountResolver.
func NewAccountResolver(params AccountResolverParams) service.AccountResolver {
	return &accountResolver{
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

// Resolve returns the account or a not-found error.
func (r *accountResolver) Resolve(ctx context.Context, id int64) (*entity.Account, error) {
	account, err := r.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account reference did not resolve")
		}

		return nil, errors.Wrap(err, "failed to resolve account reference")
	}

	return account, nil
}

// ResolveActive returns the account if it exists and is active.
func (r *accountResolver) ResolveActive(ctx context.Context, id int64) (*entity.Account, error) {
	account, err := r.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	if !account.IsActive() {
		return nil, domainerrors.ErrAccountInactive.WrapMessage("resolved account is not active")
	}

	return account, nil
}

// ResolveRole returns the account if it exists, is active and holds the role.
func (r *accountResolver) ResolveRole(ctx context.Context, id int64, role entity.Role) (*entity.Account, error) {
	account, err := r.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	if account.Role != role {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("resolved account holds a different role")
	}
	if !account.IsActive() {
		return nil, domainerrors.ErrAccountInactive.WrapMessage("resolved account is not active")
	}

	return account, nil
}

// ResolveAdmin gates administrative operations. A missing account folds into
// the same authorization error as a non-admin one, so the gate never
// discloses whether an account id exists.
func (r *accountResolver) ResolveAdmin(ctx context.Context, id int64) (*entity.Account, error) {
	account, err := r.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("admin gate rejected unknown account")
		}

		return nil, errors.Wrap(err, "failed to resolve admin account")
	}

	if account.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("admin gate rejected non-admin account")
	}

	return account, nil
}

// CanManage reports whether the actor may manage a resource owned by ownerID.
func (r *accountResolver) CanManage(actor *entity.Account, ownerID int64) bool {
	if actor == nil {
		return false
	}

	return actor.Role == entity.RoleAdmin || actor.ID == ownerID
}
