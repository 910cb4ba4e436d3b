package reservations

// SessionStatus tracks one booking attempt through the checkout flow.
//
// RESERVED -> GUEST_DETAILS_CAPTURED -> PAYMENT_PENDING -> CONFIRMED
// or GUEST_DETAILS_CAPTURED -> CONFIRMED_PENDING_PAYMENT (pay later).
// CONFIRMED, CONFIRMED_PENDING_PAYMENT and FAILED are terminal; there are no
// automatic recovery transitions.
type SessionStatus string

const (
	StatusReserved                SessionStatus = "RESERVED"
	StatusGuestDetailsCaptured    SessionStatus = "GUEST_DETAILS_CAPTURED"
	StatusPaymentPending          SessionStatus = "PAYMENT_PENDING"
	StatusConfirmed               SessionStatus = "CONFIRMED"
	StatusConfirmedPendingPayment SessionStatus = "CONFIRMED_PENDING_PAYMENT"
	StatusFailed                  SessionStatus = "FAILED"
)

func (s SessionStatus) IsValid() bool {
	switch s {
	case StatusReserved, StatusGuestDetailsCaptured, StatusPaymentPending,
		StatusConfirmed, StatusConfirmedPendingPayment, StatusFailed:
		return true
	}
	return false
}

func (s SessionStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the session can never transition again.
func (s SessionStatus) IsTerminal() bool {
	switch s {
	case StatusConfirmed, StatusConfirmedPendingPayment, StatusFailed:
		return true
	}
	return false
}

// IsActive reports whether the session still represents an in-flight booking.
func (s SessionStatus) IsActive() bool {
	return !s.IsTerminal()
}

// CanCaptureGuests reports whether guest details may be (re)captured.
func (s SessionStatus) CanCaptureGuests() bool {
	return s == StatusReserved || s == StatusGuestDetailsCaptured
}

// CanInitiatePayment reports whether a payment order may be created.
func (s SessionStatus) CanInitiatePayment() bool {
	return s == StatusGuestDetailsCaptured
}

// CanConfirmPayNow reports whether the pay-now confirmation path applies.
func (s SessionStatus) CanConfirmPayNow() bool {
	return s == StatusPaymentPending
}

// CanConfirmPayLater reports whether the pay-later confirmation path applies.
func (s SessionStatus) CanConfirmPayLater() bool {
	return s == StatusGuestDetailsCaptured
}
