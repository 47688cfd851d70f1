package handler

import (
	"log/slog"
	"net/http"

	"shoppro/internal/delivery/http/response"
	"shoppro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns the account's profile, creating an empty one on first read.
func (h *ProfileHandler) Get(c echo.Context) error {
	accountID, err := parseID(c.QueryParam("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "User ID required")
	}

	output, err := h.uc.Get(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"profile": response.NewProfileView(output.Profile),
	}, "")
}

type updateProfileRequest struct {
	UserID   int64   `json:"userId"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	DarkMode *bool   `json:"darkMode"`
}

// Update applies a partial profile update, creating the profile if missing.
func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if req.UserID == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "User ID required")
	}

	output, err := h.uc.Update(c.Request().Context(), usecase.UpdateProfileInput{
		AccountID: req.UserID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		DarkMode:  req.DarkMode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"profile": response.NewProfileView(output.Profile),
	}, "Profile updated")
}
