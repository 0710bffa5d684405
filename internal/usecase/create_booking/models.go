package create_booking

import (
	"time"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
)

// Request заявка, отправленная визардом
type Request = domain.BookingPayload

// Response созданное бронирование
type Response struct {
	BookingID          string
	Status             domain.BookingStatus
	TotalAmount        float64
	CustomerInfo       domain.CustomerInfo
	ReservationDetails domain.ReservationDetails
	OtherOptions       domain.OtherOptions
	Package            *domain.PackageOption
	CreatedAt          time.Time
}
