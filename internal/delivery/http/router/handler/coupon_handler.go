package handler

import (
	"log/slog"
	"net/http"

	"shoppro/internal/delivery/http/response"
	"shoppro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CouponHandler holds dependencies for coupon handlers.
type CouponHandler struct {
	uc     usecase.CouponUsecase
	logger *slog.Logger
}

// NewCouponHandler is the constructor for CouponHandler, injected by Fx.
func NewCouponHandler(uc usecase.CouponUsecase, logger *slog.Logger) *CouponHandler {
	return &CouponHandler{
		uc:     uc,
		logger: logger,
	}
}

type validateCouponRequest struct {
	Code string `json:"code"`
}

// Validate checks a coupon code and returns its discount. Unknown or
// inactive codes are a not-found error here, unlike checkout.
func (h *CouponHandler) Validate(c echo.Context) error {
	var req validateCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}

	output, err := h.uc.Validate(c.Request().Context(), req.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"discount": output.Coupon.Discount,
	}, "Discount applied")
}

type createCouponRequest struct {
	AdminID  int64  `json:"admin_id"`
	Code     string `json:"code"`
	Discount int    `json:"discount"`
	Active   *bool  `json:"active"`
}

// Create stores a new coupon. Admin only.
func (h *CouponHandler) Create(c echo.Context) error {
	var req createCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	output, err := h.uc.Create(c.Request().Context(), usecase.CreateCouponInput{
		ActorID:  req.AdminID,
		Code:     req.Code,
		Discount: req.Discount,
		Active:   active,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"coupon": response.NewCouponView(output.Coupon),
	}, "Coupon created successfully")
}

// List returns every coupon. Admin only.
func (h *CouponHandler) List(c echo.Context) error {
	adminID, err := parseID(c.QueryParam("admin_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid admin_id")
	}

	output, err := h.uc.List(c.Request().Context(), adminID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"coupons": response.NewCouponViews(output.Coupons),
	}, "")
}
