package create_booking

import (
	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	createBooking "github.com/m04kA/RhuMuda-BookingService/internal/usecase/create_booking"
)

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *domain.BookingConfirmation {
	createdAt := resp.CreatedAt
	return &domain.BookingConfirmation{
		BookingID:          resp.BookingID,
		CustomerInfo:       resp.CustomerInfo,
		ReservationDetails: resp.ReservationDetails,
		OtherOptions:       resp.OtherOptions,
		Package:            resp.Package,
		TotalAmount:        resp.TotalAmount,
		Status:             resp.Status,
		CreatedAt:          &createdAt,
	}
}
