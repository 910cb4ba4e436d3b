package wishlist

import (
	"net/http"

	"hotelrbs/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
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

func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	raw, exists := ctx.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (c *Controller) Add(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	item, err := c.service.Add(ctx.Request.Context(), userID, &req)
	if err != nil {
		switch err {
		case ErrAlreadySaved:
			response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to save hotel", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Hotel saved to wishlist", item, nil)
}

func (c *Controller) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	resp, err := c.service.List(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch wishlist", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Wishlist retrieved successfully", resp, nil)
}

func (c *Controller) Remove(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	hotelCode := ctx.Param("hotel_code")

	if err := c.service.Remove(ctx.Request.Context(), userID, hotelCode); err != nil {
		switch err {
		case ErrItemNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Hotel is not on the wishlist", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to remove hotel", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Hotel removed from wishlist", nil, nil)
}
