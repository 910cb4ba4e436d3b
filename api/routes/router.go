// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"hotelrbs/internal/auth"
	"hotelrbs/internal/bookings"
	"hotelrbs/internal/hotels"
	"hotelrbs/internal/payments"
	"hotelrbs/internal/reservations"
	"hotelrbs/internal/shared/config"
	"hotelrbs/internal/shared/database"
	"hotelrbs/internal/telr"
	"hotelrbs/internal/travzilla"
	"hotelrbs/internal/wishlist"
	"hotelrbs/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	db           *database.DB
	cacheService cache.Service
	vendor       *travzilla.Client
	gateway      *telr.Client

	// Injected by main when the notification pipeline is up
	bookingNotifier bookings.NotificationService

	// Shared across slices
	sessionRepo reservations.Repository
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB) *Router {
	r := &Router{
		config: cfg,
		db:     db,
		vendor: travzilla.NewClient(travzilla.Config{
			BaseURL:  cfg.Vendor.BaseURL,
			Username: cfg.Vendor.Username,
			Password: cfg.Vendor.Password,
			Timeout:  cfg.Vendor.Timeout,
		}),
		gateway: telr.NewClient(telr.Config{
			Endpoint: cfg.Telr.Endpoint,
			StoreID:  cfg.Telr.StoreID,
			AuthKey:  cfg.Telr.AuthKey,
			TestMode: cfg.Telr.TestMode,
			Timeout:  cfg.Telr.Timeout,
		}),
	}
	if db.Redis != nil {
		r.cacheService = cache.NewService(db.Redis)
	}
	return r
}

// SetBookingNotifier injects the notification publisher for confirmations.
func (r *Router) SetBookingNotifier(notifier bookings.NotificationService) {
	r.bookingNotifier = notifier
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Shared repository: reservations back both the payments and bookings
	// slices.
	r.sessionRepo = reservations.NewRepository(r.db.GetPostgreSQL())

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupHotelRoutes(api)
		r.setupReservationRoutes(api)
		r.setupPaymentRoutes(api)
		r.setupBookingRoutes(api, engine)
		r.setupWishlistRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "hotelrbs-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "hotelrbs-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController)

	authRouter.SetupRoutes(rg)
}

// setupHotelRoutes configures the vendor passthrough routes
func (r *Router) setupHotelRoutes(rg *gin.RouterGroup) {
	hotelService := hotels.NewService(r.vendor)
	if r.cacheService != nil {
		hotelService.SetCacheService(r.cacheService)
	}
	hotelController := hotels.NewController(hotelService)
	hotelRouter := hotels.NewRouter(hotelController)

	hotelRouter.SetupRoutes(rg)
}

// setupReservationRoutes configures booking-session routes
func (r *Router) setupReservationRoutes(rg *gin.RouterGroup) {
	resService := reservations.NewService(r.sessionRepo, r.vendor)
	resController := reservations.NewController(resService)
	resRouter := reservations.NewRouter(resController)

	resRouter.SetupRoutes(rg)
}

// setupPaymentRoutes configures the payment gateway routes
func (r *Router) setupPaymentRoutes(rg *gin.RouterGroup) {
	payService := payments.NewService(r.sessionRepo, r.gateway, r.config)
	payController := payments.NewController(payService)
	payRouter := payments.NewRouter(payController)

	payRouter.SetupRoutes(rg)
}

// setupBookingRoutes configures confirmation and history routes plus the
// unauthenticated gateway webhook
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup, engine *gin.Engine) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	bookingService := bookings.NewService(bookingRepo, r.sessionRepo, r.vendor, r.gateway, r.db.Redis, r.config)
	if r.cacheService != nil {
		bookingService.SetCacheService(r.cacheService)
	}
	if r.bookingNotifier != nil {
		bookingService.SetNotificationService(r.bookingNotifier)
	}
	bookingController := bookings.NewController(bookingService)
	bookingRouter := bookings.NewRouter(bookingController)

	bookingRouter.SetupRoutes(rg)
	bookingRouter.SetupWebhookRoutes(engine)
}

// setupWishlistRoutes configures wishlist routes
func (r *Router) setupWishlistRoutes(rg *gin.RouterGroup) {
	wishlistRepo := wishlist.NewRepository(r.db.GetPostgreSQL())
	wishlistService := wishlist.NewService(wishlistRepo)
	if r.cacheService != nil {
		wishlistService.SetCacheService(r.cacheService)
	}
	wishlistController := wishlist.NewController(wishlistService)
	wishlistRouter := wishlist.NewRouter(wishlistController)

	wishlistRouter.SetupRoutes(rg)
}
