package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ExistsByBookingID(ctx context.Context, bookingID string) (bool, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error)
}

// PackageRepository интерфейс репозитория пакетов
type PackageRepository interface {
	GetByID(ctx context.Context, id string) (*domain.PackageOption, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder метрика созданных бронирований
type MetricsRecorder interface {
	ObserveBookingCreated(packageType string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type nopMetrics struct{}

func (nopMetrics) ObserveBookingCreated(string) {}
