package payments

import (
	"net/http"

	"hotelrbs/internal/reservations"
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

func (c *Controller) CreateOrder(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreatePaymentOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.CreateOrder(ctx.Request.Context(), userID, &req)
	if err != nil {
		switch err {
		case reservations.ErrSessionNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking session not found", nil, nil)
		case ErrNotSessionOwner:
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Booking session belongs to another customer", nil, nil)
		case ErrPaymentNotReady, ErrGuestDetailsMissing:
			response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusBadGateway, "Failed to create payment order", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Payment order created successfully", resp, nil)
}
