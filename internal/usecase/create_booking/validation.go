package create_booking

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
)

const (
	// допустимое расхождение суммы клиента и сервера
	totalTolerance = 0.005

	maxIdempotencyKeyLength = 128
)

// validateRequest проверяет заявку по тем же правилам, что и визард
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	missing := append(req.CustomerInfo.MissingFields(), req.ReservationDetails.MissingFields()...)
	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, f := range missing {
			names = append(names, string(f))
		}
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(names, ", "))
	}

	r := req.ReservationDetails
	if !r.JettyLocation.IsValid() {
		return fmt.Errorf("%w: unknown jetty location %q", ErrInvalidInput, r.JettyLocation)
	}

	if r.NumberOfPassengers < 1 || r.NumberOfPassengers > domain.MaxPassengers {
		return fmt.Errorf("%w: numberOfPassengers must be between 1 and %d", ErrInvalidInput, domain.MaxPassengers)
	}

	if _, unknown := domain.NormalizeAddOns(r.AddOns); len(unknown) > 0 {
		return fmt.Errorf("%w: unknown add-ons: %s", ErrInvalidInput, strings.Join(unknown, ", "))
	}

	if len(req.IdempotencyKey) > maxIdempotencyKeyLength {
		return fmt.Errorf("%w: idempotencyKey exceeds %d characters", ErrInvalidInput, maxIdempotencyKeyLength)
	}

	if utf8.RuneCountInString(req.OtherOptions.Remarks) > domain.MaxRemarksLength {
		return fmt.Errorf("%w: remarks exceed %d characters", ErrInvalidInput, domain.MaxRemarksLength)
	}

	return nil
}

// validateDates проверяет окно бронирования и альтернативные даты
func validateDates(req *Request, today domain.Date) error {
	date := req.ReservationDetails.BookingDate
	if !date.After(today) {
		return fmt.Errorf("%w: %s is not after %s", ErrInvalidDate, date, today)
	}
	if !domain.IsWithinBookingWindow(date, today) {
		first, last := domain.BookingWindow(today)
		return fmt.Errorf("%w: %s not in %s..%s", ErrDateOutOfRange, date, first, last)
	}

	for _, alt := range []domain.Date{req.OtherOptions.AlternativeDate1, req.OtherOptions.AlternativeDate2} {
		if !alt.IsZero() && !alt.After(today) {
			return fmt.Errorf("%w: %s is not after %s", ErrInvalidAlternativeDate, alt, today)
		}
	}
	return nil
}

func totalsDiffer(a, b float64) bool {
	return math.Abs(a-b) > totalTolerance
}
