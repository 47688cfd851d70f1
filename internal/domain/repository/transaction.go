package repository

import "context"

// TransactionManager defines the interface for managing commerce-store
// transactions. The use case layer groups multi-step writes into one atomic
// unit through it without depending on a specific DB driver like GORM.
//
// The unit of work spans the commerce store only. The identity store is a
// separate database; operations never hold a commerce transaction open while
// waiting on identity-store work, which rules out cross-store deadlock at
// the cost of the weak-reference consistency model.
type TransactionManager interface {
	// Execute runs a function within a single commerce-store transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the
	// function use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, ensuring all operations within it share one connection.
type RepositoryFactory interface {
	// NewListingRepository returns a ListingRepository bound to the current transaction.
	NewListingRepository() ListingRepository

	// NewCartLineRepository returns a CartLineRepository bound to the current transaction.
	NewCartLineRepository() CartLineRepository

	// NewOrderRepository returns an OrderRepository bound to the current transaction.
	NewOrderRepository() OrderRepository

	// NewCouponRepository returns a CouponRepository bound to the current transaction.
	NewCouponRepository() CouponRepository
}
