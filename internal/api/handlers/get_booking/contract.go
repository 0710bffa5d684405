package get_booking

import (
	"context"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
)

type BookingService interface {
	GetByBookingID(ctx context.Context, bookingID string) (*domain.BookingConfirmation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
