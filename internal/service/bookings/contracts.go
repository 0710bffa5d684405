package bookings

import (
	"context"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error
}

// PackageRepository интерфейс репозитория пакетов
type PackageRepository interface {
	GetByID(ctx context.Context, id string) (*domain.PackageOption, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
