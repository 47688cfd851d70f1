package response

import (
	"shoppro/internal/domain/entity"
	"shoppro/internal/usecase"

	"github.com/shopspring/decimal"
)

// Field names and timestamp formats follow the JSON contract the frontend
// already speaks, so clients keep working unchanged.
const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

// AccountView is the public JSON shape of an account. The password hash
// never leaves the usecase layer through this type.
type AccountView struct {
	ID              int64  `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	FullName        string `json:"full_name"`
	Phone           string `json:"phone"`
	Role            string `json:"role"`
	ShopName        string `json:"shop_name"`
	ShopDescription string `json:"shop_description"`
	Status          string `json:"status"`
	CanUploadStock  bool   `json:"canUploadStock"`
	CreatedAt       string `json:"created_at"`
}

// NewAccountView maps an account entity to its JSON shape.
func NewAccountView(account *entity.Account) *AccountView {
	return &AccountView{
		ID:              account.ID,
		Username:        account.Username,
		Email:           account.Email,
		FullName:        account.FullName,
		Phone:           account.Phone,
		Role:            account.Role.String(),
		ShopName:        account.ShopName,
		ShopDescription: account.ShopDescription,
		Status:          account.Status.String(),
		CanUploadStock:  account.CanUploadStock,
		CreatedAt:       account.CreatedAt.Format(timestampLayout),
	}
}

// NewAccountViews maps a slice of accounts.
func NewAccountViews(accounts []*entity.Account) []*AccountView {
	views := make([]*AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, NewAccountView(account))
	}

	return views
}

// ListingView is the public JSON shape of a listing. Prices are emitted as
// JSON numbers, null when the price type leaves them unset.
type ListingView struct {
	ID             int64    `json:"id"`
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
	SellerID       int64    `json:"uploader_id"`
	SellerName     string   `json:"uploader_name"`
	CreatedAt      string   `json:"createdAt"`
}

// NewListingView maps a listing entity to its JSON shape.
func NewListingView(listing *entity.Listing) *ListingView {
	methods := make([]string, 0, len(listing.ContactMethods))
	for _, method := range listing.ContactMethods {
		methods = append(methods, string(method))
	}

	return &ListingView{
		ID:             listing.ID,
		Name:           listing.Name,
		Category:       listing.Category,
		Description:    listing.Description,
		PriceType:      listing.PriceType.String(),
		Price:          decimalFloat(listing.Price),
		PriceMin:       decimalFloat(listing.PriceMin),
		PriceMax:       decimalFloat(listing.PriceMax),
		Email:          listing.ContactEmail,
		Phone:          listing.ContactPhone,
		Whatsapp:       listing.Whatsapp,
		ContactMethods: methods,
		SellerID:       listing.SellerID,
		SellerName:     listing.SellerName,
		CreatedAt:      listing.CreatedAt.Format(timestampLayout),
	}
}

// NewListingViews maps a slice of listings.
func NewListingViews(listings []*entity.Listing) []*ListingView {
	views := make([]*ListingView, 0, len(listings))
	for _, listing := range listings {
		views = append(views, NewListingView(listing))
	}

	return views
}

// CartLineView is a listing enriched with the cart line it sits on, matching
// the flattened shape the cart page renders.
type CartLineView struct {
	ListingView

	Quantity   int   `json:"quantity"`
	CartLineID int64 `json:"cartItemId"`
}

// NewCartLineView maps a cart line with its loaded listing.
func NewCartLineView(line *entity.CartLine) *CartLineView {
	view := &CartLineView{
		Quantity:   line.Quantity,
		CartLineID: line.ID,
	}
	if line.Listing != nil {
		view.ListingView = *NewListingView(line.Listing)
	}

	return view
}

// NewCartLineViews maps a slice of cart lines.
func NewCartLineViews(lines []*entity.CartLine) []*CartLineView {
	views := make([]*CartLineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, NewCartLineView(line))
	}

	return views
}

// OrderLineView is one frozen line of an order.
type OrderLineView struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderView is the public JSON shape of an order.
type OrderView struct {
	ID              int64            `json:"id"`
	Items           []*OrderLineView `json:"items"`
	Total           float64          `json:"total"`
	Status          string           `json:"status"`
	Date            string           `json:"date"`
	DiscountApplied string           `json:"discountApplied"`
}

// NewOrderView maps an order entity to its JSON shape.
func NewOrderView(order *entity.Order) *OrderView {
	items := make([]*OrderLineView, 0, len(order.Lines))
	for _, line := range order.Lines {
		items = append(items, &OrderLineView{
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price.InexactFloat64(),
		})
	}

	return &OrderView{
		ID:              order.ID,
		Items:           items,
		Total:           order.Total.InexactFloat64(),
		Status:          order.Status.String(),
		Date:            order.CreatedAt.Format(timestampLayout),
		DiscountApplied: order.CouponCode,
	}
}

// NewOrderViews maps a slice of orders.
func NewOrderViews(orders []*entity.Order) []*OrderView {
	views := make([]*OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, NewOrderView(order))
	}

	return views
}

// RatingView is the public JSON shape of a rating.
type RatingView struct {
	ID        int64  `json:"id"`
	Rating    int    `json:"rating"`
	Review    string `json:"review"`
	CreatedAt string `json:"createdAt"`
}

// NewRatingView maps a rating entity to its JSON shape.
func NewRatingView(rating *entity.Rating) *RatingView {
	return &RatingView{
		ID:        rating.ID,
		Rating:    rating.Score,
		Review:    rating.Review,
		CreatedAt: rating.CreatedAt.Format(timestampLayout),
	}
}

// NewRatingViews maps a slice of ratings.
func NewRatingViews(ratings []*entity.Rating) []*RatingView {
	views := make([]*RatingView, 0, len(ratings))
	for _, rating := range ratings {
		views = append(views, NewRatingView(rating))
	}

	return views
}

// CouponView is the public JSON shape of a coupon.
type CouponView struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Discount int    `json:"discount"`
	Active   bool   `json:"active"`
}

// NewCouponView maps a coupon entity to its JSON shape.
func NewCouponView(coupon *entity.Coupon) *CouponView {
	return &CouponView{
		ID:       coupon.ID,
		Code:     coupon.Code,
		Discount: coupon.Discount,
		Active:   coupon.Active,
	}
}

// NewCouponViews maps a slice of coupons.
func NewCouponViews(coupons []*entity.Coupon) []*CouponView {
	views := make([]*CouponView, 0, len(coupons))
	for _, coupon := range coupons {
		views = append(views, NewCouponView(coupon))
	}

	return views
}

// ProfileView is the public JSON shape of a profile.
type ProfileView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	DarkMode bool   `json:"darkMode"`
}

// NewProfileView maps a profile entity to its JSON shape.
func NewProfileView(profile *entity.Profile) *ProfileView {
	return &ProfileView{
		ID:       profile.ID,
		Name:     profile.Name,
		Email:    profile.Email,
		Phone:    profile.Phone,
		Address:  profile.Address,
		DarkMode: profile.DarkMode,
	}
}

// SellerAnalyticsView aggregates one seller's commerce metrics with the
// identity fields the dashboard shows.
type SellerAnalyticsView struct {
	SellerID     int64    `json:"seller_id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	ShopName     string   `json:"shop_name"`
	ListingCount int64    `json:"product_count"`
	AvgRating    *float64 `json:"avg_rating"`
	DateJoined   string   `json:"date_joined"`
	Phone        string   `json:"phone"`
}

// NewSellerAnalyticsView maps one seller's analytics.
func NewSellerAnalyticsView(analytics *usecase.SellerAnalytics) *SellerAnalyticsView {
	return &SellerAnalyticsView{
		SellerID:     analytics.Seller.ID,
		Username:     analytics.Seller.Username,
		Email:        analytics.Seller.Email,
		ShopName:     analytics.Seller.ShopName,
		ListingCount: analytics.ListingCount,
		AvgRating:    analytics.AvgRating,
		DateJoined:   analytics.Seller.CreatedAt.Format(dateLayout),
		Phone:        analytics.Seller.Phone,
	}
}

// NewSellerAnalyticsViews maps a slice of seller analytics.
func NewSellerAnalyticsViews(analytics []*usecase.SellerAnalytics) []*SellerAnalyticsView {
	views := make([]*SellerAnalyticsView, 0, len(analytics))
	for _, a := range analytics {
		views = append(views, NewSellerAnalyticsView(a))
	}

	return views
}

func decimalFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}

	f := d.InexactFloat64()

	return &f
}
