// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"shoppro/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// It is backed by the identity store, which is physically separate from the
// commerce store; nothing in the commerce store may join against it.
type AccountRepository interface {
	// FindByID retrieves a single account by its numeric ID.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// FindByUsername retrieves a single account by its unique username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByEmail retrieves a single account by its unique email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindAll retrieves every account.
	FindAll(ctx context.Context) ([]*entity.Account, error)

	// FindByRole retrieves every account holding the given role.
	FindByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error)

	// Create persists a new account.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account by ID.
	Delete(ctx context.Context, id int64) error
}
