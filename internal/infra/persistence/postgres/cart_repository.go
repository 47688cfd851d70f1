package postgres

import (
	"context"

	"shoppro/internal/domain/entity"
	domainerrors "shoppro/internal/domain/errors"
	"shoppro/internal/domain/repository"
	"shoppro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartLineRepository implements the repository.CartLineRepository interface
// against the commerce store.
type cartLineRepository struct {
	db *gorm.DB
}

// NewCartLineRepository is the constructor for cartLineRepository.
func NewCartLineRepository(stores *Stores) repository.CartLineRepository {
	return NewCartLineRepositoryWithDB(stores.Commerce)
}

// NewCartLineRepositoryWithDB creates a cart repository bound to the given
// connection, which may be a transaction.
func NewCartLineRepositoryWithDB(db *gorm.DB) repository.CartLineRepository {
	return &cartLineRepository{db: db}
}

// FindByID retrieves a single cart line by its ID.
func (repo *cartLineRepository) FindByID(ctx context.Context, id int64) (*entity.CartLine, error) {
	var lineM model.CartLineModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&lineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartLineNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart line by ID")
	}

	return toCartLineDomain(&lineM), nil
}

// FindByAccount retrieves every cart line of the given account in insertion
// order, with the referenced listings loaded. Insertion order is what the
// order lines inherit at checkout.
func (repo *cartLineRepository) FindByAccount(ctx context.Context, accountID int64) ([]*entity.CartLine, error) {
	var lineModels []*model.CartLineModel

	if err := repo.db.WithContext(ctx).
		Preload("Listing").
		Where("account_id = ?", accountID).
		Order("id").
		Find(&lineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart lines by account")
	}

	lines := make([]*entity.CartLine, 0, len(lineModels))
	for _, lineM := range lineModels {
		lines = append(lines, toCartLineDomain(lineM))
	}

	return lines, nil
}

// FindByAccountAndListing retrieves the single line for an (account, listing)
// pair, if any.
func (repo *cartLineRepository) FindByAccountAndListing(ctx context.Context, accountID, listingID int64) (*entity.CartLine, error) {
	var lineM model.CartLineModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ? AND listing_id = ?", accountID, listingID).
		First(&lineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartLineNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart line by account and listing")
	}

	return toCartLineDomain(&lineM), nil
}

// CountByListing returns the number of cart lines referencing the listing,
// across all accounts.
func (repo *cartLineRepository) CountByListing(ctx context.Context, listingID int64) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CartLineModel{}).
		Where("listing_id = ?", listingID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count cart lines by listing")
	}

	return count, nil
}

// Create persists a new cart line.
func (repo *cartLineRepository) Create(ctx context.Context, line *entity.CartLine) error {
	lineM := fromCartLineDomain(line)

	if err := repo.db.WithContext(ctx).Create(lineM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("cart line already exists for listing")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart line")
	}

	line.ID = lineM.ID
	line.AddedAt = lineM.AddedAt

	return nil
}

// UpdateQuantity sets the quantity of an existing cart line.
func (repo *cartLineRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartLineModel{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart line quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// Delete removes a cart line by ID.
func (repo *cartLineRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.CartLineModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart line")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// DeleteByIDs removes the given cart lines in one statement. Used by checkout
// to clear the cart inside the same transaction that creates the order.
func (repo *cartLineRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.CartLineModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart lines")
	}

	return nil
}

// --- Mapper Functions ---

// toCartLineDomain converts a GORM CartLineModel to a domain CartLine entity.
func toCartLineDomain(data *model.CartLineModel) *entity.CartLine {
	if data == nil {
		return nil
	}

	return &entity.CartLine{
		ID:        data.ID,
		AccountID: data.AccountID,
		ListingID: data.ListingID,
		Quantity:  data.Quantity,
		AddedAt:   data.AddedAt,
		Listing:   toListingDomain(data.Listing),
	}
}

// fromCartLineDomain converts a domain CartLine entity to a GORM CartLineModel for persistence.
func fromCartLineDomain(data *entity.CartLine) *model.CartLineModel {
	if data == nil {
		return nil
	}

	return &model.CartLineModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		ListingID: data.ListingID,
		Quantity:  data.Quantity,
		AddedAt:   data.AddedAt,
	}
}
