package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelrbs/pkg/logger"
)

func newBufferLogger() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := &logger.Logger{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}
	return l, &buf
}

func TestLogReservationCreated(t *testing.T) {
	l, buf := newBufferLogger()

	l.LogReservationCreated(context.Background(), "202510011200000001", "1377073", "user-1")

	out := buf.String()
	assert.Contains(t, out, "Reservation Created")
	assert.Contains(t, out, `"booking_reference_id":"202510011200000001"`)
	assert.Contains(t, out, `"hotel_code":"1377073"`)
	assert.Contains(t, out, `"user_id":"user-1"`)
}

func TestLogBookingConfirmed(t *testing.T) {
	l, buf := newBufferLogger()

	l.LogBookingConfirmed(context.Background(), "202510011200000001", "TRZ-88210045", "1377073", "user-1")

	out := buf.String()
	assert.Contains(t, out, "Booking Confirmed")
	assert.Contains(t, out, `"booking_reference_id":"202510011200000001"`)
	assert.Contains(t, out, `"confirmation_number":"TRZ-88210045"`)
	assert.Contains(t, out, `"hotel_code":"1377073"`)
}

func TestLogBookingCancelled(t *testing.T) {
	l, buf := newBufferLogger()

	l.LogBookingCancelled(context.Background(), "202510011200000001", "TRZ-88210045", "user-1")

	out := buf.String()
	assert.Contains(t, out, "Booking Cancelled")
	assert.Contains(t, out, `"booking_reference_id":"202510011200000001"`)
	assert.Contains(t, out, `"confirmation_number":"TRZ-88210045"`)
	assert.Contains(t, out, `"user_id":"user-1"`)
}

func TestWithFields(t *testing.T) {
	l, buf := newBufferLogger()

	l.WithFields(map[string]interface{}{"request_id": "req-1"}).Info("request started")

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, "request started")
}
