package wizard

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
)

// Store holds the three step records, their touched flags and the step cursor.
// It is not safe for concurrent use; Service serializes access.
type Store struct {
	customer    domain.CustomerInfo
	reservation domain.ReservationDetails
	options     domain.OtherOptions

	customerTouched    domain.CustomerInfoTouched
	reservationTouched domain.ReservationTouched

	activeStep domain.Step
}

// NewStore returns an empty store positioned at the first step.
func NewStore() *Store {
	return &Store{activeStep: domain.StepCustomerInfo}
}

func (s *Store) CustomerInfo() domain.CustomerInfo { return s.customer }

func (s *Store) SetCustomerInfo(c domain.CustomerInfo) { s.customer = c }

func (s *Store) ReservationDetails() domain.ReservationDetails { return s.reservation.Clone() }

// SetReservationDetails replaces the record. Add-ons are deduplicated and ids
// missing from the add-on catalog are dropped and returned.
func (s *Store) SetReservationDetails(r domain.ReservationDetails) []string {
	known, unknown := domain.NormalizeAddOns(r.AddOns)
	r.AddOns = known
	s.reservation = r
	return unknown
}

func (s *Store) OtherOptions() domain.OtherOptions { return s.options }

func (s *Store) SetOtherOptions(o domain.OtherOptions) { s.options = o }

// SetField parses raw for the named field and replaces only that field.
// today anchors the booking window check for bookingDate.
func (s *Store) SetField(field domain.Field, raw string, today domain.Date) error {
	switch field {
	case domain.FieldFirstName:
		s.customer.FirstName = raw
	case domain.FieldLastName:
		s.customer.LastName = raw
	case domain.FieldPhoneNumber:
		s.customer.PhoneNumber = raw
	case domain.FieldEmail:
		s.customer.Email = raw
	case domain.FieldAddressLine1:
		s.customer.AddressLine1 = raw
	case domain.FieldAddressLine2:
		s.customer.AddressLine2 = raw
	case domain.FieldPostalCode:
		s.customer.PostalCode = raw
	case domain.FieldCity:
		s.customer.City = raw
	case domain.FieldCountry:
		s.customer.Country = raw

	case domain.FieldJettyLocation:
		if strings.TrimSpace(raw) == "" {
			s.reservation.JettyLocation = ""
			return nil
		}
		jetty, ok := domain.ParseJettyLocation(raw)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownJetty, raw)
		}
		s.reservation.JettyLocation = jetty

	case domain.FieldBookingDate:
		date, err := domain.ParseDate(raw)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, field, err)
		}
		if !date.IsZero() && !domain.IsWithinBookingWindow(date, today) {
			first, last := domain.BookingWindow(today)
			return fmt.Errorf("%w: %s not in %s..%s", ErrDateOutOfRange, date, first, last)
		}
		s.reservation.BookingDate = date

	case domain.FieldNumberOfPassengers:
		n := 0
		if v := strings.TrimSpace(raw); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, field, err)
			}
			n = parsed
		}
		if n < domain.MinPassengers || n > domain.MaxPassengers {
			return fmt.Errorf("%w: %d", ErrPassengersOutOfRange, n)
		}
		s.reservation.NumberOfPassengers = n

	case domain.FieldPackageType:
		s.reservation.PackageType = strings.TrimSpace(raw)

	case domain.FieldAddOns:
		var ids []string
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		known, unknown := domain.NormalizeAddOns(ids)
		if len(unknown) > 0 {
			return fmt.Errorf("%w: %s", ErrUnknownAddOn, strings.Join(unknown, ", "))
		}
		s.reservation.AddOns = known

	case domain.FieldAlternativeDate1, domain.FieldAlternativeDate2:
		date, err := domain.ParseDate(raw)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, field, err)
		}
		if !date.IsZero() && !date.After(today) {
			return fmt.Errorf("%w: %s %s is not after %s", ErrDateOutOfRange, field, date, today)
		}
		if field == domain.FieldAlternativeDate1 {
			s.options.AlternativeDate1 = date
		} else {
			s.options.AlternativeDate2 = date
		}

	case domain.FieldRemarks:
		if utf8.RuneCountInString(raw) > domain.MaxRemarksLength {
			return fmt.Errorf("%w: max %d characters", ErrRemarksTooLong, domain.MaxRemarksLength)
		}
		s.options.Remarks = raw

	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownField, string(field))
	}
	return nil
}

// ToggleAddOn adds id when absent and removes every instance when present.
// It reports whether the add-on is selected afterwards.
func (s *Store) ToggleAddOn(id string) (bool, error) {
	if _, ok := domain.LookupAddOn(id); !ok {
		return s.reservation.HasAddOn(id), fmt.Errorf("%w: %q", ErrUnknownAddOn, id)
	}

	if s.reservation.HasAddOn(id) {
		kept := make([]string, 0, len(s.reservation.AddOns))
		for _, a := range s.reservation.AddOns {
			if a != id {
				kept = append(kept, a)
			}
		}
		s.reservation.AddOns = kept
		return false, nil
	}

	s.reservation.AddOns = append(s.reservation.AddOns, id)
	return true, nil
}

// Touch marks a field as visited. Fields without touched tracking are ignored.
func (s *Store) Touch(field domain.Field) {
	s.customerTouched.Touch(field)
	s.reservationTouched.Touch(field)
}

func (s *Store) IsTouched(field domain.Field) bool {
	return s.customerTouched.IsTouched(field) || s.reservationTouched.IsTouched(field)
}

func (s *Store) Touched() (domain.CustomerInfoTouched, domain.ReservationTouched) {
	return s.customerTouched, s.reservationTouched
}

func (s *Store) ActiveStep() domain.Step { return s.activeStep }

// Advance moves the cursor forward, never past Confirmation.
func (s *Store) Advance() domain.Step {
	if s.activeStep < domain.StepConfirmation {
		s.activeStep++
	}
	return s.activeStep
}

// Retreat moves the cursor back, never before CustomerInfo.
func (s *Store) Retreat() domain.Step {
	if s.activeStep > domain.StepCustomerInfo {
		s.activeStep--
	}
	return s.activeStep
}

// Reset discards all records, touched flags and the cursor position.
func (s *Store) Reset() {
	*s = Store{activeStep: domain.StepCustomerInfo}
}

// Prefill applies hero-search values to the reservation record.
// Values that cannot be applied are skipped and returned as ignored.
func (s *Store) Prefill(params domain.SearchParams, today domain.Date) (ignored []domain.Field) {
	if params.JettyPoint != "" {
		if jetty, ok := domain.ParseJettyLocation(params.JettyPoint); ok {
			s.reservation.JettyLocation = jetty
		} else {
			ignored = append(ignored, domain.FieldJettyLocation)
		}
	}

	if params.BookingDate != "" {
		date, err := domain.ParseDate(params.BookingDate)
		if err == nil && domain.IsWithinBookingWindow(date, today) {
			s.reservation.BookingDate = date
		} else {
			ignored = append(ignored, domain.FieldBookingDate)
		}
	}

	if params.Passengers >= 1 && params.Passengers <= domain.MaxPassengers {
		s.reservation.NumberOfPassengers = params.Passengers
		return ignored
	}
	s.reservation.NumberOfPassengers = domain.DefaultPassengersCount
	if params.Passengers != 0 {
		ignored = append(ignored, domain.FieldNumberOfPassengers)
	}
	return ignored
}
