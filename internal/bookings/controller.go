package bookings

import (
	"log"
	"net/http"

	"hotelrbs/internal/reservations"
	"hotelrbs/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
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

func (c *Controller) Confirm(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req ConfirmBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	resp, err := c.service.Confirm(ctx.Request.Context(), userID, &req)
	if err != nil {
		switch err {
		case ErrBadConfirmRequest:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		case reservations.ErrSessionNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking session not found", nil, nil)
		case ErrNotBookingOwner:
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Booking belongs to another customer", nil, nil)
		case ErrSessionClosed, ErrConfirmInProgress, ErrGuestDetailsMissing:
			response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
		case ErrPaymentNotAuthorised:
			response.RespondJSON(ctx, "error", http.StatusPaymentRequired, err.Error(), nil, nil)
		case ErrVendorBookFailed:
			response.RespondJSON(ctx, "error", http.StatusBadGateway, err.Error(), nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to confirm booking", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking confirmed successfully", resp, nil)
}

// HandleGatewayWebhook receives asynchronous payment notifications from the
// gateway. It always acknowledges with 200 so the gateway stops retrying;
// notifications that could not be applied are logged for manual
// reconciliation.
func (c *Controller) HandleGatewayWebhook(ctx *gin.Context) {
	var req GatewayWebhookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Printf("Ignoring malformed gateway webhook: %v", err)
		ctx.JSON(http.StatusOK, gin.H{"success": false, "message": "malformed payload"})
		return
	}
	if req.Order.Ref == "" {
		ctx.JSON(http.StatusOK, gin.H{"success": false, "message": "missing order ref"})
		return
	}

	if _, err := c.service.HandleGatewayWebhook(ctx.Request.Context(), req.Order.Ref, req.Order.Status.Code); err != nil {
		log.Printf("Gateway webhook for order %s not applied: %v", req.Order.Ref, err)
		ctx.JSON(http.StatusOK, gin.H{"success": false, "order_ref": req.Order.Ref})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "order_ref": req.Order.Ref})
}

func (c *Controller) GetHistory(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var query BookingListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	resp, err := c.service.GetHistory(ctx.Request.Context(), userID, query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch booking history", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking history retrieved successfully", resp, nil)
}

func (c *Controller) GetResult(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	bookingReferenceID := ctx.Param("reference")

	resp, err := c.service.GetResult(ctx.Request.Context(), userID, bookingReferenceID)
	if err != nil {
		switch err {
		case reservations.ErrSessionNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
		case ErrNotBookingOwner:
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Booking belongs to another customer", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch booking result", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking result retrieved successfully", resp, nil)
}

func (c *Controller) Cancel(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	resp, err := c.service.Cancel(ctx.Request.Context(), userID, bookingID)
	if err != nil {
		switch err {
		case ErrBookingNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
		case ErrNotBookingOwner:
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Booking belongs to another customer", nil, nil)
		case ErrAlreadyCancelled:
			response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusBadGateway, "Failed to cancel booking", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking cancelled successfully", resp, nil)
}
