package payments

import (
	"hotelrbs/internal/shared/config"
	"hotelrbs/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles payment routes
type Router struct {
	controller *Controller
	config     *config.Config
}

// NewRouter creates a new payments router
func NewRouter(controller *Controller) *Router {
	return &Router{
		controller: controller,
		config:     config.Load(),
	}
}

// SetupRoutes registers all payment routes
func (payRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	payments.Use(middleware.JWTAuthWithConfig(payRouter.config))
	{
		payments.POST("/orders", payRouter.controller.CreateOrder)
	}
}
