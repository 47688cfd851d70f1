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

// couponRepository implements the repository.CouponRepository interface
// against the commerce store.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(stores *Stores) repository.CouponRepository {
	return NewCouponRepositoryWithDB(stores.Commerce)
}

// NewCouponRepositoryWithDB creates a coupon repository bound to the given
// connection, which may be a transaction.
func NewCouponRepositoryWithDB(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{db: db}
}

// FindActiveByCode retrieves the active coupon with the given code. Codes are
// stored uppercase; callers normalize before lookup.
func (repo *couponRepository) FindActiveByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("code = ? AND active = ?", code, true).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find active coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

// FindByCode retrieves a coupon with the given code regardless of its active flag.
func (repo *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

// FindAll retrieves every coupon.
func (repo *couponRepository) FindAll(ctx context.Context) ([]*entity.Coupon, error) {
	var couponModels []*model.CouponModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&couponModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	coupons := make([]*entity.Coupon, 0, len(couponModels))
	for _, couponM := range couponModels {
		coupons = append(coupons, toCouponDomain(couponM))
	}

	return coupons, nil
}

// Create persists a new coupon.
func (repo *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCouponExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	coupon.ID = couponM.ID
	coupon.CreatedAt = couponM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toCouponDomain converts a GORM CouponModel to a domain Coupon entity.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:        data.ID,
		Code:      data.Code,
		Discount:  data.Discount,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
	}
}

// fromCouponDomain converts a domain Coupon entity to a GORM CouponModel for persistence.
func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	if data == nil {
		return nil
	}

	return &model.CouponModel{
		ID:        data.ID,
		Code:      data.Code,
		Discount:  data.Discount,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
	}
}
