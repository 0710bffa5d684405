package models

import (
	"time"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования.
// Email должен совпадать с email из заявки.
type CancelBookingRequest struct {
	Email string `json:"email"`
}

// Response модели

// BookingListResponse список бронирований клиента
type BookingListResponse struct {
	Bookings []*domain.BookingConfirmation `json:"bookings"`
	Total    int                           `json:"total"`
}

// FromDomainBooking конвертирует сохраненное бронирование в формат ответа API.
// pkg может быть nil, если пакет сняли с продажи; тогда отдаются денормализованные поля.
func FromDomainBooking(b *domain.Booking, pkg *domain.PackageOption) *domain.BookingConfirmation {
	if pkg == nil {
		pkg = &domain.PackageOption{
			ID:    b.Reservation.PackageType,
			Title: b.PackageTitle,
			Type:  b.PackageKind,
		}
	}

	var createdAt *time.Time
	if !b.CreatedAt.IsZero() {
		t := b.CreatedAt
		createdAt = &t
	}

	return &domain.BookingConfirmation{
		BookingID:          b.BookingID,
		CustomerInfo:       b.Customer,
		ReservationDetails: b.Reservation.Clone(),
		OtherOptions:       b.Options,
		Package:            pkg,
		TotalAmount:        b.TotalAmount,
		Status:             b.Status,
		CreatedAt:          createdAt,
	}
}

// FromDomainBookingList конвертирует список бронирований без деталей пакетов
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]*domain.BookingConfirmation, 0, len(bookings)),
		Total:    len(bookings),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, FromDomainBooking(b, nil))
	}
	return resp
}
