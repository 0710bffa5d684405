package create_booking

import (
	"context"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	createBooking "github.com/m04kA/RhuMuda-BookingService/internal/usecase/create_booking"
)

// BookingCreator сохраняет заявку визарда или внешнего клиента.
// Тело запроса передается как есть, сумму и номер считает use case.
type BookingCreator interface {
	Execute(ctx context.Context, payload *domain.BookingPayload) (*createBooking.Response, error)
}

// Logger логгер обработчика
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
