package bookings

// ConfirmBookingRequest reconciles a payment result into a vendor booking.
// Pay-now callers supply the gateway order ref from the return-URL redirect;
// pay-later callers supply the booking reference with the pay_later flag.
type ConfirmBookingRequest struct {
	OrderRef           string `json:"order_ref,omitempty"`
	BookingReferenceID string `json:"booking_reference_id,omitempty"`
	PayLater           bool   `json:"pay_later,omitempty"`
}

// GatewayWebhookRequest is the gateway's asynchronous payment notification.
// Only the order ref and status code are acted on, and the status is
// re-verified against the gateway before anything is booked.
type GatewayWebhookRequest struct {
	Order struct {
		Ref    string `json:"ref"`
		CartID string `json:"cartid"`
		Status struct {
			Code int    `json:"code"`
			Text string `json:"text"`
		} `json:"status"`
		Transaction struct {
			Ref string `json:"ref"`
		} `json:"transaction"`
		Amount   string `json:"amount"`
		Currency string `json:"currency"`
	} `json:"order"`
}

// BookingListQuery paginates the booking history.
type BookingListQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Status string `form:"status"`
}
