package wizard

import (
	"context"
	"time"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	"github.com/m04kA/RhuMuda-BookingService/internal/integrations/bookingapi"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/catalog"
)

// BookingSubmitter отправка заявки в booking API
type BookingSubmitter interface {
	SubmitBooking(ctx context.Context, payload *domain.BookingPayload) (*bookingapi.SubmitResponse, error)
}

// PackageCatalog загруженный каталог пакетов
type PackageCatalog interface {
	EnsureLoaded(ctx context.Context) error
	Lookup(id string) (*domain.PackageOption, error)
	Snapshot() catalog.Snapshot
}

// MetricsRecorder метрики визарда
type MetricsRecorder interface {
	ObserveTransition(from, outcome string)
	ObserveSubmission(result string)
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

func (nopMetrics) ObserveTransition(string, string) {}
func (nopMetrics) ObserveSubmission(string)         {}
