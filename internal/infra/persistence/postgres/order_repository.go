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

// orderRepository implements the repository.OrderRepository interface against
// the commerce store.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(stores *Stores) repository.OrderRepository {
	return NewOrderRepositoryWithDB(stores.Commerce)
}

// NewOrderRepositoryWithDB creates an order repository bound to the given
// connection, which may be a transaction.
func NewOrderRepositoryWithDB(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByID retrieves a single order with its lines.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByAccount retrieves every order of the given account, newest first,
// with lines loaded.
func (repo *orderRepository) FindByAccount(ctx context.Context, accountID int64) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by account")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// CountLinesByListing returns the number of order lines referencing the
// listing, across all orders.
func (repo *orderRepository) CountLinesByListing(ctx context.Context, listingID int64) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderLineModel{}).
		Where("listing_id = ?", listingID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count order lines by listing")
	}

	return count, nil
}

// Create persists a new order together with all of its lines. GORM inserts
// the associated lines in slice order, which preserves the cart's insertion
// order in the resulting IDs.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	for i, lineM := range orderM.Lines {
		order.Lines[i].ID = lineM.ID
		order.Lines[i].OrderID = lineM.OrderID
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	lines := make([]*entity.OrderLine, 0, len(data.Lines))
	for _, lineM := range data.Lines {
		lines = append(lines, &entity.OrderLine{
			ID:        lineM.ID,
			OrderID:   lineM.OrderID,
			ListingID: lineM.ListingID,
			Name:      lineM.Name,
			Quantity:  lineM.Quantity,
			Price:     lineM.Price,
		})
	}

	return &entity.Order{
		ID:         data.ID,
		AccountID:  data.AccountID,
		Lines:      lines,
		Total:      data.Total,
		Status:     entity.OrderStatus(data.Status),
		CouponCode: data.CouponCode,
		CreatedAt:  data.CreatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel for persistence.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	lines := make([]model.OrderLineModel, 0, len(data.Lines))
	for _, line := range data.Lines {
		lines = append(lines, model.OrderLineModel{
			ID:        line.ID,
			OrderID:   line.OrderID,
			ListingID: line.ListingID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	return &model.OrderModel{
		ID:         data.ID,
		AccountID:  data.AccountID,
		Total:      data.Total,
		Status:     data.Status.String(),
		CouponCode: data.CouponCode,
		CreatedAt:  data.CreatedAt,
		Lines:      lines,
	}
}
