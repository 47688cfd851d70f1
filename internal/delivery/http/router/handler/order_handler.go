package handler

import (
	"log/slog"
	"net/http"

	"shoppro/internal/delivery/http/response"
	"shoppro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type checkoutRequest struct {
	UserID       int64  `json:"user_id"`
	DiscountCode string `json:"discountCode"`
}

// Checkout converts the account's cart into an order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if req.UserID == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "User ID required")
	}

	output, err := h.uc.Checkout(c.Request().Context(), usecase.CheckoutInput{
		AccountID:  req.UserID,
		CouponCode: req.DiscountCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"order": response.NewOrderView(output.Order),
	}, "Order placed successfully")
}

// List returns the account's orders, newest first.
func (h *OrderHandler) List(c echo.Context) error {
	accountID, err := parseID(c.QueryParam("user_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "User ID required")
	}

	output, err := h.uc.List(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"orders": response.NewOrderViews(output.Orders),
	}, "")
}

// Get returns one order.
func (h *OrderHandler) Get(c echo.Context) error {
	orderID, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	output, err := h.uc.Get(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"order": response.NewOrderView(output.Order),
	}, "")
}
