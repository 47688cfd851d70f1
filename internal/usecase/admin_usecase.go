package usecase

import (
	"context"

	"shoppro/internal/domain/entity"
)

// --- Input DTOs ---

// UpdateUserInput defines the admin-side partial update of an account.
// Nil pointers mean "leave unchanged".
type UpdateUserInput struct {
	ActorID  int64 // Acting admin.
	UserID   int64
	Username *string
	Email    *string
	FullName *string
	Phone    *string
	Status   *entity.AccountStatus
	Role     *entity.Role // Only buyer or seller are accepted.
	Password *string
}

// PromoteInput defines the promotion of a buyer to seller.
type PromoteInput struct {
	ActorID         int64
	UserID          int64
	ShopName        string
	ShopDescription string
}

// ResetAdminPasswordInput defines the admin self-service password reset. The
// security answer is the admin's own full name, compared case-insensitively.
type ResetAdminPasswordInput struct {
	ActorID        int64
	UserID         int64 // Must equal ActorID.
	FullNameAnswer string
	NewPassword    string
}

// CreateSellerInput defines the admin-side creation of a seller account.
type CreateSellerInput struct {
	ActorID         int64
	Username        string
	Email           string
	Password        string // Falls back to a temporary password when empty.
	FullName        string
	Phone           string
	ShopName        string
	ShopDescription string
}

// UpdateSellerInput defines the admin-side partial update of a seller.
type UpdateSellerInput struct {
	ActorID         int64
	SellerID        int64
	FullName        *string
	Phone           *string
	ShopName        *string
	ShopDescription *string
	Status          *entity.AccountStatus
}

// --- Output DTOs ---

// AccountsOutput returns a list of accounts.
type AccountsOutput struct {
	Accounts []*entity.Account
}

// SellerAnalytics aggregates commerce-store metrics for one seller. The
// account fields come from the identity store, the counts from the commerce
// store; nothing joins across them.
type SellerAnalytics struct {
	Seller       *entity.Account
	ListingCount int64
	AvgRating    *float64 // Nil when the seller's listings have no ratings.
}

// SellerAnalyticsOutput returns analytics for a set of sellers.
type SellerAnalyticsOutput struct {
	Analytics []*SellerAnalytics
}

// AdminUsecase defines the interface for administrative account management.
// Every operation resolves the actor through the admin gate first: a missing
// actor and a non-admin actor are both plain authorization failures.
type AdminUsecase interface {
	// ListUsers returns every account.
	ListUsers(ctx context.Context, actorID int64) (*AccountsOutput, error)

	// GetUser returns one account by id.
	GetUser(ctx context.Context, actorID, userID int64) (*AccountOutput, error)

	// UpdateUser applies a partial update. Admin accounts keep their role;
	// role changes are restricted to buyer and seller, and the
	// can-upload-stock flag tracks the seller role.
	UpdateUser(ctx context.Context, input UpdateUserInput) (*AccountOutput, error)

	// DeleteUser removes a non-admin account.
	DeleteUser(ctx context.Context, actorID, userID int64) error

	// PromoteToSeller turns a buyer into a seller and grants stock upload.
	PromoteToSeller(ctx context.Context, input PromoteInput) (*AccountOutput, error)

	// ResetAdminPassword lets an admin reset their own password by answering
	// the full-name security question.
	ResetAdminPassword(ctx context.Context, input ResetAdminPasswordInput) error

	// ListSellers returns every seller account.
	ListSellers(ctx context.Context, actorID int64) (*AccountsOutput, error)

	// GetSeller returns one seller account. No admin gate: the original
	// exposes this read to everyone.
	GetSeller(ctx context.Context, sellerID int64) (*AccountOutput, error)

	// CreateSeller creates a seller account directly.
	CreateSeller(ctx context.Context, input CreateSellerInput) (*AccountOutput, error)

	// UpdateSeller applies a partial update to a seller account.
	UpdateSeller(ctx context.Context, input UpdateSellerInput) (*AccountOutput, error)

	// DeleteSeller removes a seller account.
	DeleteSeller(ctx context.Context, actorID, sellerID int64) error

	// SellerAnalytics returns metrics for every seller.
	SellerAnalytics(ctx context.Context, actorID int64) (*SellerAnalyticsOutput, error)

	// SellerAnalyticsByID returns metrics for one seller. Allowed for admins
	// and for the seller itself.
	SellerAnalyticsByID(ctx context.Context, actorID, sellerID int64) (*SellerAnalytics, error)
}
