package catalog

import (
	"context"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
)

// PackagesSource источник каталога пакетов (booking API)
type PackagesSource interface {
	ListPackages(ctx context.Context) ([]domain.PackageOption, error)
}

// MetricsRecorder метрики каталога
type MetricsRecorder interface {
	SetCatalogPackages(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
