package payments

// payment order creation payload
type CreatePaymentOrderRequest struct {
	BookingReferenceID string `json:"booking_reference_id" validate:"required"`
	Description        string `json:"description,omitempty"`
}
