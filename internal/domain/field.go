package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownField возвращается для неизвестного имени поля формы
var ErrUnknownField = errors.New("domain: unknown form field")

// Field is the wire name of a wizard form field.
type Field string

// CustomerInfo fields
const (
	FieldFirstName    Field = "firstName"
	FieldLastName     Field = "lastName"
	FieldPhoneNumber  Field = "phoneNumber"
	FieldEmail        Field = "email"
	FieldAddressLine1 Field = "addressLine1"
	FieldAddressLine2 Field = "addressLine2"
	FieldPostalCode   Field = "postalCode"
	FieldCity         Field = "city"
	FieldCountry      Field = "country"
)

// ReservationDetails fields
const (
	FieldJettyLocation      Field = "jettyLocation"
	FieldBookingDate        Field = "bookingDate"
	FieldNumberOfPassengers Field = "numberOfPassengers"
	FieldPackageType        Field = "packageType"
	FieldAddOns             Field = "addOns"
)

// OtherOptions fields
const (
	FieldAlternativeDate1 Field = "alternativeDate1"
	FieldAlternativeDate2 Field = "alternativeDate2"
	FieldRemarks          Field = "remarks"
)

// Required fields per step, in form order.
var (
	CustomerInfoRequiredFields = []Field{
		FieldFirstName,
		FieldLastName,
		FieldPhoneNumber,
		FieldEmail,
		FieldAddressLine1,
		FieldPostalCode,
		FieldCity,
		FieldCountry,
	}

	ReservationRequiredFields = []Field{
		FieldJettyLocation,
		FieldBookingDate,
		FieldNumberOfPassengers,
		FieldPackageType,
	}
)

// Step returns the wizard step the field belongs to.
func (f Field) Step() (Step, error) {
	switch f {
	case FieldFirstName, FieldLastName, FieldPhoneNumber, FieldEmail,
		FieldAddressLine1, FieldAddressLine2, FieldPostalCode, FieldCity, FieldCountry:
		return StepCustomerInfo, nil
	case FieldJettyLocation, FieldBookingDate, FieldNumberOfPassengers, FieldPackageType, FieldAddOns:
		return StepReservationDetails, nil
	case FieldAlternativeDate1, FieldAlternativeDate2, FieldRemarks:
		return StepOtherOptions, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, string(f))
	}
}

// RequiredFields returns the fields that must be filled before leaving the step.
func RequiredFields(step Step) []Field {
	switch step {
	case StepCustomerInfo:
		return CustomerInfoRequiredFields
	case StepReservationDetails:
		return ReservationRequiredFields
	default:
		return nil
	}
}
