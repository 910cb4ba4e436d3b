package bookings

import (
	"hotelrbs/internal/shared/config"
	"hotelrbs/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles booking routes
type Router struct {
	controller *Controller
	config     *config.Config
}

// NewRouter creates a new bookings router
func NewRouter(controller *Controller) *Router {
	return &Router{
		controller: controller,
		config:     config.Load(),
	}
}

// SetupRoutes registers all booking routes
func (bookingRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.JWTAuthWithConfig(bookingRouter.config))
	{
		bookings.POST("/confirm", bookingRouter.controller.Confirm)
		bookings.GET("", bookingRouter.controller.GetHistory)
		bookings.GET("/result/:reference", bookingRouter.controller.GetResult)
		bookings.POST("/:id/cancel", bookingRouter.controller.Cancel)
	}
}

// SetupWebhookRoutes registers the unauthenticated gateway callback. The
// gateway dashboard is configured with this absolute path, so it lives
// outside the versioned API group.
func (bookingRouter *Router) SetupWebhookRoutes(engine *gin.Engine) {
	engine.POST("/api/telr/webhook", bookingRouter.controller.HandleGatewayWebhook)
}
