// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shoppro/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AdminHandler   *handler.AdminHandler
	ListingHandler *handler.ListingHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	RatingHandler  *handler.RatingHandler
	ProfileHandler *handler.ProfileHandler
	CouponHandler  *handler.CouponHandler
	ExportHandler  *handler.ExportHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	adminHandler   *handler.AdminHandler
	listingHandler *handler.ListingHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	ratingHandler  *handler.RatingHandler
	profileHandler *handler.ProfileHandler
	couponHandler  *handler.CouponHandler
	exportHandler  *handler.ExportHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		adminHandler:   params.AdminHandler,
		listingHandler: params.ListingHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		ratingHandler:  params.RatingHandler,
		profileHandler: params.ProfileHandler,
		couponHandler:  params.CouponHandler,
		exportHandler:  params.ExportHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/check", r.authHandler.Check)
	}

	// Administrative routes. Authorization happens in the usecase layer
	// through the admin gate, keyed on the admin_id each request carries.
	adminGroup := api.Group("/admin")
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/users/:id", r.adminHandler.GetUser)
		adminGroup.PUT("/users/:id", r.adminHandler.UpdateUser)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)
		adminGroup.PUT("/users/:id/promote", r.adminHandler.PromoteUser)
		adminGroup.POST("/users/:id/promote", r.adminHandler.PromoteUser)
		adminGroup.POST("/users/:id/reset_password", r.adminHandler.ResetPassword)

		adminGroup.GET("/sellers", r.adminHandler.ListSellers)
		adminGroup.GET("/sellers/:id", r.adminHandler.GetSeller)
		adminGroup.POST("/sellers", r.adminHandler.CreateSeller)
		adminGroup.PUT("/sellers/:id", r.adminHandler.UpdateSeller)
		adminGroup.DELETE("/sellers/:id", r.adminHandler.DeleteSeller)

		adminGroup.GET("/seller_analytics", r.adminHandler.SellerAnalytics)

		adminGroup.POST("/coupons", r.couponHandler.Create)
		adminGroup.GET("/coupons", r.couponHandler.List)
	}

	// Catalog routes
	api.GET("/products", r.listingHandler.List)
	api.GET("/products/:id", r.listingHandler.Get)
	api.POST("/products", r.listingHandler.Create)
	api.PUT("/products/:id", r.listingHandler.Update)
	api.DELETE("/products/:id", r.listingHandler.Delete)
	api.GET("/search", r.listingHandler.Search)

	// Public seller pages
	api.GET("/seller/:id/products", r.listingHandler.SellerPage)
	api.GET("/seller/:id/analytics", r.adminHandler.SellerAnalyticsByID)

	// Cart routes
	api.GET("/cart", r.cartHandler.List)
	api.POST("/cart", r.cartHandler.Add)
	api.DELETE("/cart/:id", r.cartHandler.Remove)

	// Order routes
	api.POST("/orders", r.orderHandler.Checkout)
	api.GET("/orders", r.orderHandler.List)
	api.GET("/orders/:id", r.orderHandler.Get)

	// Rating routes
	api.GET("/ratings/:product_id", r.ratingHandler.ListByListing)
	api.POST("/ratings", r.ratingHandler.Create)

	// Profile routes
	api.GET("/profile", r.profileHandler.Get)
	api.POST("/profile", r.profileHandler.Update)

	// Coupon validation
	api.POST("/validate-coupon", r.couponHandler.Validate)

	// Account data portability
	api.GET("/export", r.exportHandler.Export)
	api.POST("/import", r.exportHandler.Import)
}
