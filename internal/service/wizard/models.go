package wizard

import (
	"strconv"
	"strings"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/catalog"
)

// CustomerInfoPatch partial update of the customer step, nil fields are kept
type CustomerInfoPatch struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	PhoneNumber  *string `json:"phoneNumber"`
	Email        *string `json:"email"`
	AddressLine1 *string `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	PostalCode   *string `json:"postalCode"`
	City         *string `json:"city"`
	Country      *string `json:"country"`
}

// ReservationPatch partial update of the reservation step
type ReservationPatch struct {
	JettyLocation      *string   `json:"jettyLocation"`
	BookingDate        *string   `json:"bookingDate"`
	NumberOfPassengers *int      `json:"numberOfPassengers"`
	PackageType        *string   `json:"packageType"`
	AddOns             *[]string `json:"addOns"`
}

// OptionsPatch partial update of the other-options step
type OptionsPatch struct {
	AlternativeDate1 *string `json:"alternativeDate1"`
	AlternativeDate2 *string `json:"alternativeDate2"`
	Remarks          *string `json:"remarks"`
}

type fieldValue struct {
	field domain.Field
	raw   string
}

func collect(values []fieldValue, field domain.Field, v *string) []fieldValue {
	if v == nil {
		return values
	}
	return append(values, fieldValue{field: field, raw: *v})
}

func (p CustomerInfoPatch) values() []fieldValue {
	var out []fieldValue
	out = collect(out, domain.FieldFirstName, p.FirstName)
	out = collect(out, domain.FieldLastName, p.LastName)
	out = collect(out, domain.FieldPhoneNumber, p.PhoneNumber)
	out = collect(out, domain.FieldEmail, p.Email)
	out = collect(out, domain.FieldAddressLine1, p.AddressLine1)
	out = collect(out, domain.FieldAddressLine2, p.AddressLine2)
	out = collect(out, domain.FieldPostalCode, p.PostalCode)
	out = collect(out, domain.FieldCity, p.City)
	out = collect(out, domain.FieldCountry, p.Country)
	return out
}

// packageType обрабатывается отдельно, через каталог
func (p ReservationPatch) values() []fieldValue {
	var out []fieldValue
	out = collect(out, domain.FieldJettyLocation, p.JettyLocation)
	out = collect(out, domain.FieldBookingDate, p.BookingDate)
	if p.NumberOfPassengers != nil {
		out = append(out, fieldValue{field: domain.FieldNumberOfPassengers, raw: strconv.Itoa(*p.NumberOfPassengers)})
	}
	if p.AddOns != nil {
		out = append(out, fieldValue{field: domain.FieldAddOns, raw: strings.Join(*p.AddOns, ",")})
	}
	return out
}

func (p OptionsPatch) values() []fieldValue {
	var out []fieldValue
	out = collect(out, domain.FieldAlternativeDate1, p.AlternativeDate1)
	out = collect(out, domain.FieldAlternativeDate2, p.AlternativeDate2)
	out = collect(out, domain.FieldRemarks, p.Remarks)
	return out
}

// State snapshot of a wizard session for rendering
type State struct {
	ActiveStep         domain.Step                `json:"activeStep"`
	CustomerInfo       domain.CustomerInfo        `json:"customerInfo"`
	ReservationDetails domain.ReservationDetails  `json:"reservationDetails"`
	OtherOptions       domain.OtherOptions        `json:"otherOptions"`
	CustomerTouched    domain.CustomerInfoTouched `json:"customerInfoTouched"`
	ReservationTouched domain.ReservationTouched  `json:"reservationTouched"`
	FieldErrors        []domain.Field             `json:"fieldErrors"`

	Catalog         catalog.Snapshot      `json:"-"`
	SelectedPackage *domain.PackageOption `json:"selectedPackage,omitempty"`
	TotalAmount     float64               `json:"totalAmount"`

	Submitting      bool                        `json:"submitting"`
	SubmissionError string                      `json:"submissionError,omitempty"`
	Confirmation    *domain.BookingConfirmation `json:"confirmation,omitempty"`
}
