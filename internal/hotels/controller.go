package hotels

import (
	"net/http"

	"hotelrbs/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

func (c *Controller) Search(ctx *gin.Context) {
	var req SearchHotelsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.Search(ctx.Request.Context(), &req)
	if err != nil {
		switch err {
		case ErrInvalidStayRange, ErrStayTooLong, ErrInvalidDate, ErrInvalidChildAges:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusBadGateway, "Hotel search failed", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Hotels retrieved successfully", resp, nil)
}

func (c *Controller) GetDetails(ctx *gin.Context) {
	var req HotelDetailsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.GetDetails(ctx.Request.Context(), &req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadGateway, "Failed to fetch hotel details", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Hotel details retrieved successfully", resp, nil)
}

func (c *Controller) GetRooms(ctx *gin.Context) {
	var req HotelRoomsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.GetRooms(ctx.Request.Context(), &req)
	if err != nil {
		switch err {
		case ErrInvalidStayRange, ErrStayTooLong, ErrInvalidDate, ErrInvalidChildAges:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusBadGateway, "Failed to fetch hotel rooms", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Hotel rooms retrieved successfully", resp, nil)
}

func (c *Controller) GetCountries(ctx *gin.Context) {
	resp, err := c.service.GetCountries(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadGateway, "Failed to fetch country list", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Countries retrieved successfully", resp, nil)
}

func (c *Controller) GetCities(ctx *gin.Context) {
	countryCode := ctx.Param("country")
	if countryCode == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Country code is required", nil, nil)
		return
	}

	resp, err := c.service.GetCities(ctx.Request.Context(), countryCode)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadGateway, "Failed to fetch city list", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cities retrieved successfully", resp, nil)
}

func (c *Controller) GetHotelCodes(ctx *gin.Context) {
	cityCode := ctx.Param("city")
	if cityCode == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "City code is required", nil, nil)
		return
	}

	resp, err := c.service.GetHotelCodes(ctx.Request.Context(), cityCode)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadGateway, "Failed to fetch hotel code list", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Hotel codes retrieved successfully", resp, nil)
}

func (c *Controller) GetBookingDetail(ctx *gin.Context) {
	ref := ctx.Param("reference")
	if ref == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Booking reference is required", nil, nil)
		return
	}

	resp, err := c.service.GetBookingDetail(ctx.Request.Context(), ref)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadGateway, "Failed to fetch booking detail", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking detail retrieved successfully", resp, nil)
}

func (c *Controller) GetBookingDetailsByDate(ctx *gin.Context) {
	var req BookingDetailsByDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.GetBookingDetailsByDate(ctx.Request.Context(), &req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadGateway, "Failed to fetch booking details", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking details retrieved successfully", resp, nil)
}
