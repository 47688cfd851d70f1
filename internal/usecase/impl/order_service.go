package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "shoppro/internal/delivery/context"
	"shoppro/internal/domain/entity"
	domainerrors "shoppro/internal/domain/errors"
	"shoppro/internal/domain/repository"
	"shoppro/internal/domain/service"
	"shoppro/internal/usecase"
	"shoppro/internal/util/lock"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager     repository.TransactionManager
	orderRepo     repository.OrderRepository
	resolver      service.AccountResolver
	checkoutLocks *lock.KeyedMutex
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Resolver  service.AccountResolver
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:     params.TxManager,
		orderRepo:     params.OrderRepo,
		resolver:      params.Resolver,
		checkoutLocks: lock.NewKeyedMutex(),
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout converts the account's cart into an order.
//
// The whole sequence runs under the account's checkout mutex: resolve the
// account against the identity store, then snapshot cart lines, evaluate the
// optional coupon, insert the order with its lines and clear the cart in one
// commerce-store transaction. Two concurrent checkouts for the same account
// therefore cannot both consume the same cart; the loser finds it empty.
func (srv *orderService) Checkout(ctx context.Context, input usecase.CheckoutInput) (*usecase.OrderOutput, error) {
	unlock := srv.checkoutLocks.Lock(input.AccountID)
	defer unlock()

	// Identity-store read happens before the commerce transaction opens; the
	// two stores are never held concurrently.
	account, err := srv.resolver.Resolve(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	var order *entity.Order
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartLineRepository()

		lines, err := cartRepo.FindByAccount(ctx, account.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart for checkout")
		}
		if len(lines) == 0 {
			return domainerrors.ErrCartEmpty.WrapMessage("checkout rejected empty cart")
		}

		order = buildOrderFromCart(account.ID, lines)

		couponCode, discount, err := srv.evaluateCoupon(ctx, repoFactory, input.CouponCode)
		if err != nil {
			return err
		}
		if discount > 0 {
			// The stored discount is not trusted as-is: anything above 100
			// would push the total negative, so it is clamped before use.
			if discount > 100 {
				srv.log(ctx).Warn("Clamping out-of-range coupon discount",
					slog.String("code", couponCode),
					slog.Int("discount", discount),
				)
				discount = 100
			}
			factor := decimal.NewFromInt(100 - int64(discount)).Div(decimal.NewFromInt(100))
			order.Total = order.Total.Mul(factor)
		}
		if couponCode != "" {
			order.CouponCode = couponCode
		}
		order.Total = order.Total.Round(2)

		if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		lineIDs := make([]int64, 0, len(lines))
		for _, line := range lines {
			lineIDs = append(lineIDs, line.ID)
		}

		return cartRepo.DeleteByIDs(ctx, lineIDs)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.Int64("orderID", order.ID),
		slog.Int64("accountID", account.ID),
		slog.String("total", order.Total.String()),
		slog.String("coupon", order.CouponCode),
	)

	return &usecase.OrderOutput{Order: order}, nil
}

// buildOrderFromCart freezes cart lines into order lines, preserving cart
// insertion order. Listings without a fixed price contribute zero.
func buildOrderFromCart(accountID int64, lines []*entity.CartLine) *entity.Order {
	order := &entity.Order{
		AccountID: accountID,
		Status:    entity.OrderStatusPending,
		Lines:     make([]*entity.OrderLine, 0, len(lines)),
		Total:     decimal.Zero,
	}

	for _, line := range lines {
		price := decimal.Zero
		name := ""
		if line.Listing != nil {
			price = line.Listing.EffectivePrice()
			name = line.Listing.Name
		}

		order.Lines = append(order.Lines, &entity.OrderLine{
			ListingID: line.ListingID,
			Name:      name,
			Quantity:  line.Quantity,
			Price:     price,
		})
		order.Total = order.Total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return order
}

// evaluateCoupon normalizes the code and looks up an active coupon inside the
// checkout transaction. Unknown and inactive codes are not errors: checkout
// proceeds without a discount.
func (srv *orderService) evaluateCoupon(ctx context.Context, repoFactory repository.RepositoryFactory, rawCode string) (string, int, error) {
	code := strings.ToUpper(strings.TrimSpace(rawCode))
	if code == "" {
		return "", 0, nil
	}

	coupon, err := repoFactory.NewCouponRepository().FindActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			srv.log(ctx).Debug("Checkout ignoring unknown coupon", slog.String("code", code))

			return "", 0, nil
		}

		return "", 0, errors.Wrap(err, "failed to evaluate coupon")
	}

	return coupon.Code, coupon.Discount, nil
}

// List returns the account's orders, newest first.
func (srv *orderService) List(ctx context.Context, accountID int64) (*usecase.OrdersOutput, error) {
	orders, err := srv.orderRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrdersOutput{Orders: orders}, nil
}

// Get returns one order by id.
func (srv *orderService) Get(ctx context.Context, orderID int64) (*usecase.OrderOutput, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return &usecase.OrderOutput{Order: order}, nil
}
