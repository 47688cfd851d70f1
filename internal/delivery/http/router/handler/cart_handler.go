package handler

import (
	"log/slog"
	"net/http"

	"shoppro/internal/delivery/http/response"
	"shoppro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for shopping cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the account's cart lines with their listings.
func (h *CartHandler) List(c echo.Context) error {
	accountID, err := parseID(c.QueryParam("user_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "User ID required")
	}

	output, err := h.uc.List(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"items": response.NewCartLineViews(output.Lines),
	}, "")
}

type addToCartRequest struct {
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	Quantity  *int  `json:"quantity"`
}

// Add puts a listing into the cart, merging with an existing line. An absent
// quantity means one; an explicit non-positive quantity is rejected below.
func (h *CartHandler) Add(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if req.UserID == 0 || req.ProductID == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "User ID and product ID required")
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	err := h.uc.Add(c.Request().Context(), usecase.AddToCartInput{
		AccountID: req.UserID,
		ListingID: req.ProductID,
		Quantity:  quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Item added to cart")
}

// Remove deletes one cart line by its id.
func (h *CartHandler) Remove(c echo.Context) error {
	lineID, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item id")
	}

	if err := h.uc.Remove(c.Request().Context(), lineID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed from cart")
}
