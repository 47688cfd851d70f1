package postgres

import (
	"context"
	"strings"

	"shoppro/internal/domain/entity"
	domainerrors "shoppro/internal/domain/errors"
	"shoppro/internal/domain/repository"
	"shoppro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// listingRepository implements the repository.ListingRepository interface
// against the commerce store.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(stores *Stores) repository.ListingRepository {
	return NewListingRepositoryWithDB(stores.Commerce)
}

// NewListingRepositoryWithDB creates a listing repository bound to the given
// connection, which may be a transaction.
func NewListingRepositoryWithDB(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

// FindByID retrieves a single listing by its ID.
func (repo *listingRepository) FindByID(ctx context.Context, id int64) (*entity.Listing, error) {
	var listingM model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// FindAll retrieves every listing, newest first.
func (repo *listingRepository) FindAll(ctx context.Context) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	return toListingDomains(listingModels), nil
}

// FindBySeller retrieves every listing uploaded by the given account.
func (repo *listingRepository) FindBySeller(ctx context.Context, sellerID int64) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list listings by seller")
	}

	return toListingDomains(listingModels), nil
}

// Search retrieves listings matching the given filters. Price sorts use the
// effective price, so range-priced listings sort as zero.
func (repo *listingRepository) Search(ctx context.Context, search repository.ListingSearch) ([]*entity.Listing, error) {
	query := repo.db.WithContext(ctx).Model(&model.ListingModel{})

	if search.Query != "" {
		pattern := "%" + strings.ToLower(search.Query) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if search.Category != "" {
		query = query.Where("category = ?", search.Category)
	}

	switch search.Sort {
	case repository.ListingSortPriceLow:
		query = query.Order("COALESCE(price, 0) ASC")
	case repository.ListingSortPriceHigh:
		query = query.Order("COALESCE(price, 0) DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var listingModels []*model.ListingModel
	if err := query.Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search listings")
	}

	return toListingDomains(listingModels), nil
}

// CountBySeller returns the number of listings uploaded by the given account.
func (repo *listingRepository) CountBySeller(ctx context.Context, sellerID int64) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("seller_id = ?", sellerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count listings by seller")
	}

	return count, nil
}

// Create persists a new listing.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt

	return nil
}

// Update modifies an existing listing.
func (repo *listingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Save(listingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update listing")
	}

	return nil
}

// Delete removes a listing by ID. Ratings cascade through the schema
// constraint; the caller is responsible for reference checks.
func (repo *listingRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ListingModel{}, id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrListingReferenced
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toListingDomains(data []*model.ListingModel) []*entity.Listing {
	listings := make([]*entity.Listing, 0, len(data))
	for _, listingM := range data {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings
}

// toListingDomain converts a GORM ListingModel to a domain Listing entity.
func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	return &entity.Listing{
		ID:             data.ID,
		Name:           data.Name,
		Category:       data.Category,
		Description:    data.Description,
		PriceType:      entity.PriceType(data.PriceType),
		Price:          fromNullDecimal(data.Price),
		PriceMin:       fromNullDecimal(data.PriceMin),
		PriceMax:       fromNullDecimal(data.PriceMax),
		ContactEmail:   data.ContactEmail,
		ContactPhone:   data.ContactPhone,
		Whatsapp:       data.Whatsapp,
		ContactMethods: splitContactMethods(data.ContactMethods),
		SellerID:       data.SellerID,
		SellerName:     data.SellerName,
		CreatedAt:      data.CreatedAt,
	}
}

// fromListingDomain converts a domain Listing entity to a GORM ListingModel for persistence.
func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	return &model.ListingModel{
		ID:             data.ID,
		Name:           data.Name,
		Category:       data.Category,
		Description:    data.Description,
		PriceType:      data.PriceType.String(),
		Price:          toNullDecimal(data.Price),
		PriceMin:       toNullDecimal(data.PriceMin),
		PriceMax:       toNullDecimal(data.PriceMax),
		ContactEmail:   data.ContactEmail,
		ContactPhone:   data.ContactPhone,
		Whatsapp:       data.Whatsapp,
		ContactMethods: joinContactMethods(data.ContactMethods),
		SellerID:       data.SellerID,
		SellerName:     data.SellerName,
		CreatedAt:      data.CreatedAt,
	}
}

func fromNullDecimal(value decimal.NullDecimal) *decimal.Decimal {
	if !value.Valid {
		return nil
	}

	return &value.Decimal
}

func toNullDecimal(value *decimal.Decimal) decimal.NullDecimal {
	if value == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *value, Valid: true}
}

func splitContactMethods(raw string) []entity.ContactMethod {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	methods := make([]entity.ContactMethod, 0, len(parts))
	for _, part := range parts {
		methods = append(methods, entity.ContactMethod(part))
	}

	return methods
}

func joinContactMethods(methods []entity.ContactMethod) string {
	if len(methods) == 0 {
		return ""
	}

	parts := make([]string, 0, len(methods))
	for _, method := range methods {
		parts = append(parts, string(method))
	}

	return strings.Join(parts, ",")
}
