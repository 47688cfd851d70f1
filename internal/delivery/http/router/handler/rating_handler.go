package handler

import (
	"log/slog"
	"net/http"

	"shoppro/internal/delivery/http/response"
	"shoppro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RatingHandler holds dependencies for rating handlers.
type RatingHandler struct {
	uc     usecase.RatingUsecase
	logger *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler, injected by Fx.
func NewRatingHandler(uc usecase.RatingUsecase, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListByListing returns every rating on a listing.
func (h *RatingHandler) ListByListing(c echo.Context) error {
	listingID, err := parseID(c.Param("product_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	output, err := h.uc.ListByListing(c.Request().Context(), listingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"ratings": response.NewRatingViews(output.Ratings),
	}, "")
}

type addRatingRequest struct {
	ProductID int64  `json:"product_id"`
	UserID    int64  `json:"user_id"`
	Rating    int    `json:"rating"`
	Review    string `json:"review"`
}

// Create leaves a rating on an existing listing.
func (h *RatingHandler) Create(c echo.Context) error {
	var req addRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if req.ProductID == 0 || req.Rating == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "Product ID and rating required")
	}

	output, err := h.uc.Create(c.Request().Context(), usecase.AddRatingInput{
		ListingID: req.ProductID,
		AccountID: req.UserID,
		Score:     req.Rating,
		Review:    req.Review,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"rating": response.NewRatingView(output.Rating),
	}, "Rating added successfully")
}
