package hotels

import (
	"hotelrbs/internal/shared/config"
	"hotelrbs/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles hotel content routes
type Router struct {
	controller *Controller
	config     *config.Config
}

// NewRouter creates a new hotels router
func NewRouter(controller *Controller) *Router {
	return &Router{
		controller: controller,
		config:     config.Load(),
	}
}

// SetupRoutes registers all hotel routes
func (hotelRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	hotels := rg.Group("/hotels")
	{
		// Public routes (no authentication required)
		hotels.POST("/search", hotelRouter.controller.Search)
		hotels.POST("/details", hotelRouter.controller.GetDetails)
		hotels.POST("/rooms", hotelRouter.controller.GetRooms)
		hotels.GET("/countries", hotelRouter.controller.GetCountries)
		hotels.GET("/cities/:country", hotelRouter.controller.GetCities)
		hotels.GET("/codes/:city", hotelRouter.controller.GetHotelCodes)

		// Admin routes (vendor-side booking records)
		admin := hotels.Group("/admin")
		admin.Use(middleware.JWTAuthWithConfig(hotelRouter.config))
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/bookings/:reference", hotelRouter.controller.GetBookingDetail)
			admin.POST("/bookings/by-date", hotelRouter.controller.GetBookingDetailsByDate)
		}
	}
}
