package domain

import (
	"regexp"
	"time"
)

var bookingIDPattern = regexp.MustCompile(`^` + BookingIDPrefix + `\d{9}$`)

// IsValidBookingID reports whether id has the BK + 9 digits shape.
func IsValidBookingID(id string) bool {
	return bookingIDPattern.MatchString(id)
}

// BookingStatus represents the status of a booking inquiry
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true for known statuses
func (s BookingStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// Booking represents a charter inquiry persisted by the booking API
type Booking struct {
	ID          int64
	BookingID   string // BK + 6 digits of the timestamp + 3 random digits
	Customer    CustomerInfo
	Reservation ReservationDetails
	Options     OtherOptions
	Status      BookingStatus

	// Denormalized package data for history
	PackageTitle string
	PackageKind  PackageKind
	TotalAmount  float64

	// IdempotencyKey wizard session key, empty for direct API calls
	IdempotencyKey string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking was not cancelled
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BookingConfirmation server answer to a successful submission.
// Replaces the wizard records once the flow reaches the terminal step.
type BookingConfirmation struct {
	BookingID          string             `json:"bookingId"`
	CustomerInfo       CustomerInfo       `json:"customerInfo"`
	ReservationDetails ReservationDetails `json:"reservationDetails"`
	OtherOptions       OtherOptions       `json:"otherOptions"`
	Package            *PackageOption     `json:"packageDetails,omitempty"`
	TotalAmount        float64            `json:"totalAmount"`
	Status             BookingStatus      `json:"status,omitempty"`
	CreatedAt          *time.Time         `json:"createdAt,omitempty"`
}

// BookingPayload body of POST /api/bookings.
type BookingPayload struct {
	CustomerInfo       CustomerInfo       `json:"customerInfo"`
	ReservationDetails ReservationDetails `json:"reservationDetails"`
	OtherOptions       OtherOptions       `json:"otherOptions"`
	PackageDetails     *PackageOption     `json:"packageDetails,omitempty"`
	TotalAmount        float64            `json:"totalAmount"`
	// IdempotencyKey is reused when the same inquiry is submitted again.
	IdempotencyKey string `json:"idempotencyKey,omitempty"`
}
