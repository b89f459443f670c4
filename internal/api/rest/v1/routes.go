package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/xaosao/xaosao-service/internal/domain/bookings"
	"github.com/xaosao/xaosao-service/internal/domain/calls"
	"github.com/xaosao/xaosao-service/internal/domain/customers"
	"github.com/xaosao/xaosao-service/internal/domain/profiles"
	"github.com/xaosao/xaosao-service/internal/domain/reviews"
	"github.com/xaosao/xaosao-service/internal/domain/wallet"
	"github.com/xaosao/xaosao-service/internal/infrastructure/metrics"
	"github.com/xaosao/xaosao-service/internal/pkg/config"
)

// RouteServices bundles the services the API surfaces.
type RouteServices struct {
	AccountService     customers.AccountService
	ProfileService     profiles.ProfileService
	DiscoverService    profiles.DiscoverService
	InteractionService profiles.InteractionService
	CatalogService     bookings.CatalogService
	BookingService     bookings.BookingService
	WalletService      wallet.WalletService
	CallService        calls.CallService
	ReviewService      reviews.ReviewService
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services *RouteServices, m *metrics.Metrics, rateLimit *config.RateLimitSettings) {
	r.Use(RequestMetrics(m))

	v1 := r.Group(BasePath) // lookup in version file

	// Auth Routes
	authHandler := NewAuthHandler(services.AccountService)
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)

	authed := v1.Group("", SessionAuth(services.AccountService))
	authed.POST("/auth/logout", authHandler.Logout)

	// Profile and Browsing Routes
	profileHandler := NewProfileHandler(services.ProfileService, services.DiscoverService, services.InteractionService)
	authed.GET("/me", profileHandler.GetMe)
	authed.PUT("/me", profileHandler.UpdateMe)
	authed.POST("/me/avatar", profileHandler.UploadAvatar)
	authed.GET("/companions", profileHandler.Discover)
	authed.GET("/companions/:id", profileHandler.GetCompanion)
	authed.POST("/companions/:id/reactions", profileHandler.React)
	authed.GET("/matches", profileHandler.Matches)
	authed.GET("/friends", profileHandler.Friends)

	// Catalog and Booking Routes
	bookingHandler := NewBookingHandler(services.CatalogService, services.BookingService)
	authed.GET("/companions/:id/services", bookingHandler.ListServices)
	authed.GET("/services/:id/variants", bookingHandler.ListVariants)
	authed.GET("/services/:id/quote", bookingHandler.Quote)
	authed.POST("/bookings", bookingHandler.Create)
	authed.GET("/bookings", bookingHandler.List)
	authed.GET("/bookings/:id", bookingHandler.GetByID)
	authed.POST("/bookings/:id/cancel", bookingHandler.Cancel)

	// Wallet Routes
	walletHandler := NewWalletHandler(services.WalletService)
	authed.GET("/wallet", walletHandler.Get)
	authed.GET("/wallet/history", walletHandler.History)
	authed.POST("/wallet/topups", walletHandler.RequestTopUp)
	authed.POST("/wallet/topups/:id/confirm", walletHandler.ConfirmTopUp)

	// Call Routes
	callHandler := NewCallHandler(services.CallService)
	authed.POST("/calls", RateLimit(rateLimit.RequestsPerSecond, rateLimit.Burst), callHandler.Initiate)
	authed.GET("/calls/:id", callHandler.Status)
	authed.POST("/calls/:id/accept", callHandler.Accept)
	authed.POST("/calls/:id/decline", callHandler.Decline)
	authed.POST("/calls/:id/missed", callHandler.Missed)
	authed.POST("/calls/:id/end", callHandler.End)

	// Review Routes
	reviewHandler := NewReviewHandler(services.ReviewService)
	authed.POST("/reviews", reviewHandler.Create)
	authed.GET("/companions/:id/reviews", reviewHandler.ListByCompanion)
}
