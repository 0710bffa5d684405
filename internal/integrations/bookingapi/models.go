package bookingapi

import "github.com/m04kA/RhuMuda-BookingService/internal/domain"

// SubmitResponse ответ POST /api/bookings
type SubmitResponse struct {
	BookingID          string                     `json:"bookingId"`
	TotalAmount        *float64                   `json:"totalAmount,omitempty"`
	Status             domain.BookingStatus       `json:"status,omitempty"`
	CustomerInfo       *domain.CustomerInfo       `json:"customerInfo,omitempty"`
	ReservationDetails *domain.ReservationDetails `json:"reservationDetails,omitempty"`
	OtherOptions       *domain.OtherOptions       `json:"otherOptions,omitempty"`
	PackageDetails     *domain.PackageOption      `json:"packageDetails,omitempty"`
}

// ErrorResponse модель ошибки от API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
