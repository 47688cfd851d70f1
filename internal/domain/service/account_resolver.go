package service

import (
	"context"

	"shoppro/internal/domain/entity"
)

// AccountResolver turns the weak account references embedded in commerce
// records back into identity-store facts. Commerce operations must never
// assume a referenced account exists; they resolve it through this service
// and treat "not found" as a first-class outcome.
//
// The error classes are deliberately distinguishable: an account that does
// not exist resolves to a 404-class error, while one that exists but has the
// wrong role or is not active resolves to a 403-class error.
type AccountResolver interface {
	// Resolve returns the account or a not-found error. No role or status
	// requirement is applied.
	Resolve(ctx context.Context, id int64) (*entity.Account, error)

	// ResolveActive returns the account if it exists and is active.
	// Missing accounts yield a not-found error; non-active ones yield an
	// authorization error.
	ResolveActive(ctx context.Context, id int64) (*entity.Account, error)

	// ResolveRole returns the account if it exists, is active and holds the
	// given role. Role or status mismatch yields an authorization error.
	ResolveRole(ctx context.Context, id int64, role entity.Role) (*entity.Account, error)

	// ResolveAdmin gates administrative operations. Unlike ResolveRole it
	// folds "no such account" into the authorization error as well, so an
	// admin gate never discloses whether an account id exists.
	ResolveAdmin(ctx context.Context, id int64) (*entity.Account, error)

	// CanManage is the single authorization predicate for ownership-scoped
	// operations: the actor may manage a resource it owns or anything when
	// it is an admin.
	CanManage(actor *entity.Account, ownerID int64) bool
}
