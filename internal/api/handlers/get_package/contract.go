package get_package

import (
	"context"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
)

type PackageService interface {
	GetByID(ctx context.Context, id string) (*domain.PackageOption, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
