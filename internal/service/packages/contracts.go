package packages

import (
	"context"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
)

// PackageRepository интерфейс репозитория пакетов
type PackageRepository interface {
	List(ctx context.Context, kind *domain.PackageKind) ([]domain.PackageOption, error)
	GetByID(ctx context.Context, id string) (*domain.PackageOption, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
