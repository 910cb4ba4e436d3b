package reservations

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

func (c *Controller) Reserve(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.Reserve(ctx.Request.Context(), userID, &req)
	if err != nil {
		switch err {
		case ErrPrebookRejected:
			response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to reserve the selected rate", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Reservation created successfully", resp, nil)
}

func (c *Controller) SaveGuestDetails(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	bookingReferenceID := ctx.Param("reference")

	var req GuestDetailsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.SaveGuestDetails(ctx.Request.Context(), userID, bookingReferenceID, &req)
	if err != nil {
		switch err {
		case ErrSessionNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking session not found", nil, nil)
		case ErrNotSessionOwner:
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Booking session belongs to another customer", nil, nil)
		case ErrGuestDetailsDiscarded:
			response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
		case ErrSessionClosed:
			response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
		case ErrInvalidGuestAge, ErrNoAdultInRoom:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to save guest details", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Guest details saved successfully", resp, nil)
}

func (c *Controller) GetSession(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	bookingReferenceID := ctx.Param("reference")

	resp, err := c.service.GetSession(ctx.Request.Context(), userID, bookingReferenceID)
	if err != nil {
		switch err {
		case ErrSessionNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking session not found", nil, nil)
		case ErrNotSessionOwner:
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Booking session belongs to another customer", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch booking session", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking session retrieved successfully", resp, nil)
}
