package wishlist

import (
	"hotelrbs/internal/shared/config"
	"hotelrbs/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles wishlist routes
type Router struct {
	controller *Controller
	config     *config.Config
}

// NewRouter creates a new wishlist router
func NewRouter(controller *Controller) *Router {
	return &Router{
		controller: controller,
		config:     config.Load(),
	}
}

// SetupRoutes registers all wishlist routes
func (wishlistRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	wishlist := rg.Group("/wishlist")
	wishlist.Use(middleware.JWTAuthWithConfig(wishlistRouter.config))
	{
		wishlist.POST("", wishlistRouter.controller.Add)
		wishlist.GET("", wishlistRouter.controller.List)
		wishlist.DELETE("/:hotel_code", wishlistRouter.controller.Remove)
	}
}
