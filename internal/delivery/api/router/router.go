// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/config"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	deliverymiddleware "marketplace/internal/delivery/middleware"
	"marketplace/internal/domain/entity"
	"marketplace/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	ProductHandler  *handler.ProductHandler
	CategoryHandler *handler.CategoryHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	ReviewHandler   *handler.ReviewHandler
	SellerHandler   *handler.SellerHandler
	AddressHandler  *handler.AddressHandler
	WishlistHandler *handler.WishlistHandler
	DeviceHandler   *handler.DeviceHandler
	HealthHandler   *handler.HealthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	RateLimiter     *deliverymiddleware.RateLimitMiddleware
	Metrics         *metrics.Registry
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	auth     *handler.AuthHandler
	users    *handler.UserHandler
	products *handler.ProductHandler
	catalog  *handler.CategoryHandler
	cart     *handler.CartHandler
	orders   *handler.OrderHandler
	reviews  *handler.ReviewHandler
	sellers  *handler.SellerHandler
	address  *handler.AddressHandler
	wishlist *handler.WishlistHandler
	devices  *handler.DeviceHandler
	health   *handler.HealthHandler

	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *deliverymiddleware.RateLimitMiddleware
	metrics        *metrics.Registry
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:           params.AuthHandler,
		users:          params.UserHandler,
		products:       params.ProductHandler,
		catalog:        params.CategoryHandler,
		cart:           params.CartHandler,
		orders:         params.OrderHandler,
		reviews:        params.ReviewHandler,
		sellers:        params.SellerHandler,
		address:        params.AddressHandler,
		wishlist:       params.WishlistHandler,
		devices:        params.DeviceHandler,
		health:         params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimiter:    params.RateLimiter,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.health.HealthCheck)
	if r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	authn := r.authMiddleware.Authenticate
	admin := r.authMiddleware.RequireRole(entity.RoleAdmin)
	staff := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleSupport)
	sellerOrAdmin := r.authMiddleware.RequireRole(entity.RoleSeller, entity.RoleAdmin)
	limited := r.rateLimiter.Handle

	api := e.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.auth.Register, limited)
		authGroup.POST("/login", r.auth.Login, limited)
		authGroup.POST("/forgot-password", r.auth.ForgotPassword, limited)
		authGroup.POST("/reset-password", r.auth.ResetPassword)
		authGroup.POST("/refresh-token", r.auth.RefreshToken)
		authGroup.GET("/verify-email", r.auth.VerifyEmail)
		authGroup.POST("/resend-verification", r.auth.ResendVerification, limited)
		authGroup.GET("/me", r.auth.Me, authn)
		authGroup.POST("/logout", r.auth.Logout, authn)
		authGroup.GET("/sessions", r.auth.ListSessions, authn)
		authGroup.DELETE("/sessions/:id", r.auth.RevokeSession, authn)
	}

	usersGroup := api.Group("/users", authn)
	{
		usersGroup.PUT("/profile", r.users.UpdateProfile)
		usersGroup.POST("/avatar", r.users.UploadAvatar)
		usersGroup.GET("", r.users.ListUsers, staff)
		usersGroup.GET("/:id", r.users.GetUser, staff)
		usersGroup.PUT("/:id/role", r.users.AssignRole, admin)
		usersGroup.DELETE("/:id", r.users.DeleteUser, admin)
	}

	productsGroup := api.Group("/products")
	{
		productsGroup.GET("", r.products.ListProducts)
		productsGroup.GET("/featured", r.products.FeaturedProducts)
		productsGroup.GET("/search", r.products.SearchProducts)
		productsGroup.GET("/seller/my-products", r.products.MyProducts, authn, sellerOrAdmin)
		productsGroup.GET("/:id", r.products.GetProduct)
		productsGroup.GET("/:id/related", r.products.RelatedProducts)
		productsGroup.POST("", r.products.CreateProduct, authn, sellerOrAdmin)
		productsGroup.PUT("/:id", r.products.UpdateProduct, authn, sellerOrAdmin)
		productsGroup.PATCH("/:id/status", r.products.ToggleStatus, authn, sellerOrAdmin)
		productsGroup.DELETE("/:id", r.products.DeleteProduct, authn, sellerOrAdmin)
		productsGroup.POST("/:id/variants", r.products.CreateVariant, authn, sellerOrAdmin)
		productsGroup.POST("/:id/images", r.products.UploadImages, authn, sellerOrAdmin)
		productsGroup.POST("/:id/listings", r.products.CreateListing, authn, sellerOrAdmin)
	}
	api.PUT("/listings/:id/stock", r.products.UpdateListingStock, authn, sellerOrAdmin)

	categoriesGroup := api.Group("/categories")
	{
		categoriesGroup.GET("", r.catalog.ListCategories)
		categoriesGroup.GET("/:id", r.catalog.GetCategory)
		categoriesGroup.POST("", r.catalog.CreateCategory, authn, admin)
		categoriesGroup.PUT("/:id", r.catalog.UpdateCategory, authn, admin)
		categoriesGroup.DELETE("/:id", r.catalog.DeleteCategory, authn, admin)
	}

	brandsGroup := api.Group("/brands")
	{
		brandsGroup.GET("", r.catalog.ListBrands)
		brandsGroup.GET("/:id", r.catalog.GetBrand)
		brandsGroup.POST("", r.catalog.CreateBrand, authn, admin)
		brandsGroup.PUT("/:id", r.catalog.UpdateBrand, authn, admin)
		brandsGroup.DELETE("/:id", r.catalog.DeleteBrand, authn, admin)
	}

	cartGroup := api.Group("/cart", authn)
	{
		cartGroup.GET("", r.cart.GetCart)
		cartGroup.GET("/count", r.cart.ItemCount)
		cartGroup.POST("/add", r.cart.AddItem)
		cartGroup.POST("/sync", r.cart.SyncCart)
		cartGroup.PUT("/:id", r.cart.UpdateItem)
		cartGroup.DELETE("/:id", r.cart.RemoveItem)
		cartGroup.DELETE("", r.cart.ClearCart)
	}

	ordersGroup := api.Group("/orders", authn)
	{
		ordersGroup.POST("", r.orders.CreateOrder)
		ordersGroup.GET("", r.orders.ListMyOrders)
		ordersGroup.GET("/seller/:sellerId", r.orders.ListSellerOrders, sellerOrAdmin)
		ordersGroup.GET("/:id", r.orders.GetOrder)
		ordersGroup.GET("/:id/qr", r.orders.OrderQR)
		ordersGroup.POST("/:id/cancel", r.orders.CancelOrder)
		ordersGroup.PUT("/:id/status", r.orders.UpdateStatus, sellerOrAdmin)
		ordersGroup.POST("/:id/pay", r.orders.MarkAsPaid, admin)
	}

	reviewsGroup := api.Group("/reviews")
	{
		reviewsGroup.GET("/product/:productId", r.reviews.ListProductReviews)
		reviewsGroup.GET("/pending", r.reviews.ListPendingReviews, authn, staff)
		reviewsGroup.POST("", r.reviews.CreateReview, authn)
		reviewsGroup.PUT("/:id", r.reviews.UpdateReview, authn)
		reviewsGroup.DELETE("/:id", r.reviews.DeleteReview, authn)
		reviewsGroup.PUT("/:id/approve", r.reviews.ApproveReview, authn, staff)
		reviewsGroup.POST("/:id/vote", r.reviews.VoteReview, authn)
		reviewsGroup.POST("/:id/respond", r.reviews.RespondToReview, authn, sellerOrAdmin)
		reviewsGroup.POST("/:id/images", r.reviews.AddImages, authn)
	}

	sellersGroup := api.Group("/sellers")
	{
		sellersGroup.POST("/register", r.sellers.Register, r.authMiddleware.OptionalAuthenticate, limited)
		sellersGroup.GET("/profile", r.sellers.GetProfile, authn)
		sellersGroup.PUT("/profile", r.sellers.UpdateProfile, authn)
		sellersGroup.GET("/stats", r.sellers.Stats, authn, sellerOrAdmin)
		sellersGroup.GET("", r.sellers.ListSellers, authn, staff)
		sellersGroup.PUT("/reviews/:id/approve", r.sellers.ApproveReview, authn, staff)
		sellersGroup.GET("/:id", r.sellers.GetSeller)
		sellersGroup.PUT("/:id/approve", r.sellers.Approve, authn, admin)
		sellersGroup.PUT("/:id/reject", r.sellers.Reject, authn, admin)
		sellersGroup.PUT("/:id/suspend", r.sellers.Suspend, authn, admin)
		sellersGroup.POST("/:id/reviews", r.sellers.CreateReview, authn)
	}

	addressesGroup := api.Group("/addresses", authn)
	{
		addressesGroup.GET("", r.address.ListAddresses)
		addressesGroup.GET("/default", r.address.GetDefault)
		addressesGroup.POST("", r.address.AddAddress)
		addressesGroup.PUT("/:id", r.address.UpdateAddress)
		addressesGroup.DELETE("/:id", r.address.DeleteAddress)
		addressesGroup.PUT("/:id/default", r.address.SetDefault)
	}

	wishlistGroup := api.Group("/wishlist", authn)
	{
		wishlistGroup.GET("", r.wishlist.GetWishlist)
		wishlistGroup.POST("", r.wishlist.AddItem)
		wishlistGroup.DELETE("", r.wishlist.Clear)
		wishlistGroup.DELETE("/:productId", r.wishlist.RemoveItem)
		wishlistGroup.POST("/:productId/move-to-cart", r.wishlist.MoveToCart)
	}

	devicesGroup := api.Group("/devices", authn)
	{
		devicesGroup.POST("", r.devices.RegisterDevice)
		devicesGroup.GET("", r.devices.ListDevices)
		devicesGroup.PUT("/:id/token", r.devices.RefreshToken)
		devicesGroup.DELETE("/:id", r.devices.RemoveDevice)
	}
}
