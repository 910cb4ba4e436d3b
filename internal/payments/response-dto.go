package payments

// created gateway order, ready for the hosted-checkout redirect
type PaymentOrderResponse struct {
	BookingReferenceID string `json:"booking_reference_id"`
	OrderRef           string `json:"order_ref"`
	CheckoutURL        string `json:"checkout_url"`
	Amount             string `json:"amount"`
	Currency           string `json:"currency"`
	SessionStatus      string `json:"session_status"`
}
