package cancel_booking

import (
	"github.com/m04kA/RhuMuda-BookingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Email string `json:"email"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	return &models.CancelBookingRequest{Email: r.Email}
}
