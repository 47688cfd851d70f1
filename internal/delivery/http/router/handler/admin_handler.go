package handler

import (
	"log/slog"
	"net/http"

	"shoppro/internal/delivery/http/response"
	"shoppro/internal/domain/entity"
	"shoppro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for administrative handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListUsers returns every account. Admin only.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	adminID, err := parseID(c.QueryParam("admin_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid admin_id")
	}

	output, err := h.uc.ListUsers(c.Request().Context(), adminID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"users": response.NewAccountViews(output.Accounts),
	}, "")
}

// GetUser returns one account. Admin only.
func (h *AdminHandler) GetUser(c echo.Context) error {
	adminID, err := parseID(c.QueryParam("admin_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid admin_id")
	}

	userID, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	output, err := h.uc.GetUser(c.Request().Context(), adminID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user": response.NewAccountView(output.Account),
	}, "")
}

type updateUserRequest struct {
	AdminID  int64   `json:"admin_id"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Status   *string `json:"status"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

// UpdateUser applies a partial update to an account. Admin only.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user update input")
	}

	adminID, err := actorID(req.AdminID, c, "admin_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid admin_id")
	}

	userID, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	output, err := h.uc.UpdateUser(c.Request().Context(), usecase.UpdateUserInput{
		ActorID:  adminID,
		UserID:   userID,
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		Status:   statusPtr(req.Status),
		Role:     rolePtr(req.Role),
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user": response.NewAccountView(output.Account),
	}, "User updated")
}

// DeleteUser removes a non-admin account. Admin only.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	adminID, err := parseID(c.QueryParam("admin_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid admin_id")
	}

	userID, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	if err := h.uc.DeleteUser(c.Request().Context(), adminID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted")
}

type promoteRequest struct {
	AdminID         int64  `json:"admin_id"`
	ShopName        string `json:"shop_name"`
	ShopDescription string `json:"shop_description"`
}

// PromoteUser turns a buyer into a seller. Admin only.
func (h *AdminHandler) PromoteUser(c echo.Context) error {
	var req promoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promote input")
	}

	adminID, err := actorID(req.AdminID, c, "admin_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid admin_id")
	}

	userID, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	output, err := h.uc.PromoteToSeller(c.Request().Context(), usecase.PromoteInput{
		ActorID:         adminID,
		UserID:          userID,
		ShopName:        req.ShopName,
		ShopDescription: req.ShopDescription,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user": response.NewAccountView(output.Account),
	}, "User promoted to seller")
}

type resetPasswordRequest struct {
	AdminID        int64  `json:"admin_id"`
	FullNameAnswer string `json:"full_name_answer"`
	NewPassword    string `json:"new_password"`
}

// ResetPassword lets an admin reset their own password by answering the
// full-name security question.
func (h *AdminHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password reset input")
	}

	adminID, err := actorID(req.AdminID, c, "admin_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid admin_id")
	}

	userID, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	err = h.uc.ResetAdminPassword(c.Request().Context(), usecase.ResetAdminPasswordInput{
		ActorID:        adminID,
		UserID:         userID,
		FullNameAnswer: req.FullNameAnswer,
		NewPassword:    req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successful")
}

// ListSellers returns every seller account. Admin only.
func (h *AdminHandler) ListSellers(c echo.Context) error {
	adminID, err := parseID(c.QueryParam("admin_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid admin_id")
	}

	output, err := h.uc.ListSellers(c.Request().Context(), adminID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"sellers": response.NewAccountViews(output.Accounts),
	}, "")
}

// GetSeller returns one seller account. This read carries no admin gate.
func (h *AdminHandler) GetSeller(c echo.Context) error {
	sellerID, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	output, err := h.uc.GetSeller(c.Request().Context(), sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"seller": response.NewAccountView(output.Account),
	}, "")
}

type createSellerRequest struct {
	AdminID         int64  `json:"admin_id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	FullName        string `json:"full_name"`
	Phone           string `json:"phone"`
	ShopName        string `json:"shop_name"`
	ShopDescription string `json:"shop_description"`
}

// CreateSeller creates a seller account directly. Admin only.
func (h *AdminHandler) CreateSeller(c echo.Context) error {
	var req createSellerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid seller input")
	}

	output, err := h.uc.CreateSeller(c.Request().Context(), usecase.CreateSellerInput{
		ActorID:         req.AdminID,
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		FullName:        req.FullName,
		Phone:           req.Phone,
		ShopName:        req.ShopName,
		ShopDescription: req.ShopDescription,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"seller": response.NewAccountView(output.Account),
	}, "Seller profile created successfully")
}

type updateSellerRequest struct {
	AdminID         int64   `json:"admin_id"`
	FullName        *string `json:"full_name"`
	Phone           *string `json:"phone"`
	ShopName        *string `json:"shop_name"`
	ShopDescription *string `json:"shop_description"`
	Status          *string `json:"status"`
}

// UpdateSeller applies a partial update to a seller account. Admin only.
func (h *AdminHandler) UpdateSeller(c echo.Context) error {
	var req updateSellerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid seller update input")
	}

	sellerID, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	output, err := h.uc.UpdateSeller(c.Request().Context(), usecase.UpdateSellerInput{
		ActorID:         req.AdminID,
		SellerID:        sellerID,
		FullName:        req.FullName,
		Phone:           req.Phone,
		ShopName:        req.ShopName,
		ShopDescription: req.ShopDescription,
		Status:          statusPtr(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"seller": response.NewAccountView(output.Account),
	}, "Seller profile updated")
}

// DeleteSeller removes a seller account. Admin only.
func (h *AdminHandler) DeleteSeller(c echo.Context) error {
	adminID, err := parseID(c.QueryParam("admin_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid admin_id")
	}

	sellerID, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	if err := h.uc.DeleteSeller(c.Request().Context(), adminID, sellerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Seller profile deleted")
}

// SellerAnalytics returns metrics for every seller. Admin only.
func (h *AdminHandler) SellerAnalytics(c echo.Context) error {
	adminID, err := parseID(c.QueryParam("admin_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid admin_id")
	}

	output, err := h.uc.SellerAnalytics(c.Request().Context(), adminID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"analytics": response.NewSellerAnalyticsViews(output.Analytics),
	}, "")
}

// SellerAnalyticsByID returns metrics for one seller. Allowed for admins and
// for the seller itself.
func (h *AdminHandler) SellerAnalyticsByID(c echo.Context) error {
	userID, err := parseID(c.QueryParam("user_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user_id")
	}

	sellerID, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	analytics, err := h.uc.SellerAnalyticsByID(c.Request().Context(), userID, sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"analytics": response.NewSellerAnalyticsView(analytics),
	}, "")
}

func rolePtr(raw *string) *entity.Role {
	if raw == nil {
		return nil
	}

	role := entity.Role(*raw)

	return &role
}

func statusPtr(raw *string) *entity.AccountStatus {
	if raw == nil {
		return nil
	}

	status := entity.AccountStatus(*raw)

	return &status
}
