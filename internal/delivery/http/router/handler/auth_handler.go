package handler

import (
	"log/slog"
	"net/http"

	"shoppro/internal/delivery/http/response"
	"shoppro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication-related handlers.
type AuthHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// Signup handles the buyer registration request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	output, err := h.uc.Signup(c.Request().Context(), usecase.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"user": response.NewAccountView(output.Account),
	}, "User registered successfully")
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user": response.NewAccountView(output.Account),
	}, "Login successful")
}

type checkRequest struct {
	UserID int64 `json:"user_id"`
}

// Check reports whether the supplied account id maps to an active account.
func (h *AuthHandler) Check(c echo.Context) error {
	var req checkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check input")
	}
	if req.UserID == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "User ID required")
	}

	output, err := h.uc.Check(c.Request().Context(), req.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	data := map[string]any{"authenticated": output.Authenticated}
	if output.Account != nil {
		data["user"] = response.NewAccountView(output.Account)
	}
	if !output.Authenticated {
		return response.Error(c, http.StatusUnauthorized, "NOT_AUTHENTICATED", "User not found or inactive", "")
	}

	return response.Success(c, http.StatusOK, data, "Authenticated")
}
