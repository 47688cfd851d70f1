package handler

import (
	"log/slog"
	"net/http"

	"shoppro/internal/delivery/http/response"
	"shoppro/internal/domain/entity"
	"shoppro/internal/domain/repository"
	"shoppro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ListingHandler holds dependencies for catalog handlers.
type ListingHandler struct {
	uc     usecase.ListingUsecase
	logger *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler, injected by Fx.
func NewListingHandler(uc usecase.ListingUsecase, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all listings, optionally filtered by seller_id.
func (h *ListingHandler) List(c echo.Context) error {
	var sellerID *int64
	if raw := c.QueryParam("seller_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid seller_id")
		}
		sellerID = &id
	}

	output, err := h.uc.List(c.Request().Context(), sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"products": response.NewListingViews(output.Listings),
	}, "")
}

// Get returns one listing.
func (h *ListingHandler) Get(c echo.Context) error {
	listingID, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	output, err := h.uc.Get(c.Request().Context(), listingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"product": response.NewListingView(output.Listing),
	}, "")
}

type createListingRequest struct {
	SellerID       int64    `json:"seller_id"`
	UserID         int64    `json:"user_id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	PriceType      string   `json:"priceType"`
	Price          *float64 `json:"price"`
	PriceMin       *float64 `json:"priceMin"`
	PriceMax       *float64 `json:"priceMax"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Whatsapp       string   `json:"whatsapp"`
	ContactMethods []string `json:"contactMethods"`
}

// Create publishes a new listing. Sellers only. Clients send the seller id
// as either seller_id or user_id.
func (h *ListingHandler) Create(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	sellerID := req.SellerID
	if sellerID == 0 {
		sellerID = req.UserID
	}

	output, err := h.uc.Create(c.Request().Context(), usecase.CreateListingInput{
		SellerID:       sellerID,
		Name:           req.Name,
		Category:       req.Category,
		Description:    req.Description,
		PriceType:      entity.PriceType(req.PriceType),
		Price:          floatDecimal(req.Price),
		PriceMin:       floatDecimal(req.PriceMin),
		PriceMax:       floatDecimal(req.PriceMax),
		ContactEmail:   req.Email,
		ContactPhone:   req.Phone,
		Whatsapp:       req.Whatsapp,
		ContactMethods: contactMethods(req.ContactMethods),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"product": response.NewListingView(output.Listing),
	}, "Product added successfully")
}

type updateListingRequest struct {
	UserID         int64    `json:"user_id"`
	Name           *string  `json:"name"`
	Category       *string  `json:"category"`
	Description    *string  `json:"description"`
	PriceType      *string  `json:"priceType"`
	Price          *float64 `json:"price"`
	PriceMin       *float64 `json:"priceMin"`
	PriceMax       *float64 `json:"priceMax"`
	Email          *string  `json:"email"`
	Phone          *string  `json:"phone"`
	Whatsapp       *string  `json:"whatsapp"`
	ContactMethods []string `json:"contactMethods"`
}

// Update modifies a listing. Owner or admin only.
func (h *ListingHandler) Update(c echo.Context) error {
	var req updateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product update input")
	}

	listingID, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var priceType *entity.PriceType
	if req.PriceType != nil {
		pt := entity.PriceType(*req.PriceType)
		priceType = &pt
	}

	output, err := h.uc.Update(c.Request().Context(), usecase.UpdateListingInput{
		ActorID:        req.UserID,
		ListingID:      listingID,
		Name:           req.Name,
		Category:       req.Category,
		Description:    req.Description,
		PriceType:      priceType,
		Price:          floatDecimal(req.Price),
		PriceMin:       floatDecimal(req.PriceMin),
		PriceMax:       floatDecimal(req.PriceMax),
		ContactEmail:   req.Email,
		ContactPhone:   req.Phone,
		Whatsapp:       req.Whatsapp,
		ContactMethods: contactMethods(req.ContactMethods),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"product": response.NewListingView(output.Listing),
	}, "Product updated successfully")
}

type deleteListingRequest struct {
	UserID int64 `json:"user_id"`
}

// Delete removes a listing. Owner or admin only; the actor id may arrive in
// the body or the query string.
func (h *ListingHandler) Delete(c echo.Context) error {
	var req deleteListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete input")
	}

	userID, err := actorID(req.UserID, c, "user_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user_id")
	}

	listingID, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.Delete(c.Request().Context(), userID, listingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// SellerPage returns a seller account together with their catalog.
func (h *ListingHandler) SellerPage(c echo.Context) error {
	sellerID, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	output, err := h.uc.SellerPage(c.Request().Context(), sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"seller":        response.NewAccountView(output.Seller),
		"products":      response.NewListingViews(output.Listings),
		"product_count": len(output.Listings),
	}, "")
}

// Search returns listings matching the q, category and sort filters.
func (h *ListingHandler) Search(c echo.Context) error {
	sort := repository.ListingSort(c.QueryParam("sort"))
	if sort == "" {
		sort = repository.ListingSortNewest
	}

	output, err := h.uc.Search(c.Request().Context(), usecase.SearchListingsInput{
		Query:    c.QueryParam("q"),
		Category: c.QueryParam("category"),
		Sort:     sort,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"products": response.NewListingViews(output.Listings),
	}, "")
}

func floatDecimal(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}

	d := decimal.NewFromFloat(*f)

	return &d
}

func contactMethods(raw []string) []entity.ContactMethod {
	if raw == nil {
		return nil
	}

	methods := make([]entity.ContactMethod, 0, len(raw))
	for _, m := range raw {
		methods = append(methods, entity.ContactMethod(m))
	}

	return methods
}
