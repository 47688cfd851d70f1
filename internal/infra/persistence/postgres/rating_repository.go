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

// ratingRepository implements the repository.RatingRepository interface
// against the commerce store.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(stores *Stores) repository.RatingRepository {
	return &ratingRepository{db: stores.Commerce}
}

// FindByListing retrieves every rating left on the given listing, newest first.
func (repo *ratingRepository) FindByListing(ctx context.Context, listingID int64) ([]*entity.Rating, error) {
	var ratingModels []*model.RatingModel

	if err := repo.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Find(&ratingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ratings by listing")
	}

	ratings := make([]*entity.Rating, 0, len(ratingModels))
	for _, ratingM := range ratingModels {
		ratings = append(ratings, toRatingDomain(ratingM))
	}

	return ratings, nil
}

// FindByAccount retrieves every rating the given account has left, newest first.
func (repo *ratingRepository) FindByAccount(ctx context.Context, accountID int64) ([]*entity.Rating, error) {
	var ratingModels []*model.RatingModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&ratingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ratings by account")
	}

	ratings := make([]*entity.Rating, 0, len(ratingModels))
	for _, ratingM := range ratingModels {
		ratings = append(ratings, toRatingDomain(ratingM))
	}

	return ratings, nil
}

// AverageScoreBySeller returns the average score over all ratings of all
// listings uploaded by the given account, or nil when no ratings exist. The
// join stays inside the commerce store.
func (repo *ratingRepository) AverageScoreBySeller(ctx context.Context, sellerID int64) (*float64, error) {
	var avg *float64

	if err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("AVG(ratings.score)").
		Joins("JOIN listings ON listings.id = ratings.listing_id").
		Where("listings.seller_id = ?", sellerID).
		Scan(&avg).Error; err != nil {
		return nil, errors.Wrap(err, "failed to average rating score by seller")
	}

	return avg, nil
}

// Create persists a new rating.
func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrListingNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toRatingDomain converts a GORM RatingModel to a domain Rating entity.
func toRatingDomain(data *model.RatingModel) *entity.Rating {
	if data == nil {
		return nil
	}

	return &entity.Rating{
		ID:        data.ID,
		ListingID: data.ListingID,
		AccountID: data.AccountID,
		Score:     data.Score,
		Review:    data.Review,
		CreatedAt: data.CreatedAt,
	}
}

// fromRatingDomain converts a domain Rating entity to a GORM RatingModel for persistence.
func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	if data == nil {
		return nil
	}

	return &model.RatingModel{
		ID:        data.ID,
		ListingID: data.ListingID,
		AccountID: data.AccountID,
		Score:     data.Score,
		Review:    data.Review,
		CreatedAt: data.CreatedAt,
	}
}
