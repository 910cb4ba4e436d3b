package reservations

import (
	"hotelrbs/internal/shared/config"
	"hotelrbs/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles reservation routes
type Router struct {
	controller *Controller
	config     *config.Config
}

// NewRouter creates a new reservations router
func NewRouter(controller *Controller) *Router {
	return &Router{
		controller: controller,
		config:     config.Load(),
	}
}

// SetupRoutes registers all reservation routes
func (resRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	reservations := rg.Group("/reservations")
	reservations.Use(middleware.JWTAuthWithConfig(resRouter.config))
	{
		reservations.POST("", resRouter.controller.Reserve)
		reservations.PUT("/:reference/guests", resRouter.controller.SaveGuestDetails)
		reservations.GET("/:reference", resRouter.controller.GetSession)
	}
}
