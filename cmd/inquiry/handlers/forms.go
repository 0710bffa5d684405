package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/huh"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/catalog"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/wizard"
)

type action string

const (
	actionNext    action = "next"
	actionBack    action = "back"
	actionRestart action = "restart"
)

// customerForm values of the customer information step
type customerForm struct {
	FirstName    string
	LastName     string
	PhoneNumber  string
	Email        string
	AddressLine1 string
	AddressLine2 string
	PostalCode   string
	City         string
	Country      string
}

func customerFormFrom(c domain.CustomerInfo) customerForm {
	return customerForm(c)
}

func (f customerForm) patch() wizard.CustomerInfoPatch {
	return wizard.CustomerInfoPatch{
		FirstName:    &f.FirstName,
		LastName:     &f.LastName,
		PhoneNumber:  &f.PhoneNumber,
		Email:        &f.Email,
		AddressLine1: &f.AddressLine1,
		AddressLine2: &f.AddressLine2,
		PostalCode:   &f.PostalCode,
		City:         &f.City,
		Country:      &f.Country,
	}
}

// reservationForm values of the reservation step, passengers as typed
type reservationForm struct {
	Jetty       string
	BookingDate string
	Passengers  string
	PackageID   string
	AddOns      []string
}

func reservationFormFrom(r domain.ReservationDetails) reservationForm {
	f := reservationForm{
		Jetty:      string(r.JettyLocation),
		PackageID:  r.PackageType,
		AddOns:     append([]string(nil), r.AddOns...),
		Passengers: strconv.Itoa(r.NumberOfPassengers),
	}
	if !r.BookingDate.IsZero() {
		f.BookingDate = r.BookingDate.String()
	}
	return f
}

func (f reservationForm) patch() (wizard.ReservationPatch, error) {
	passengers, err := parsePassengers(f.Passengers)
	if err != nil {
		return wizard.ReservationPatch{}, err
	}
	addOns := append([]string{}, f.AddOns...)
	return wizard.ReservationPatch{
		JettyLocation:      &f.Jetty,
		BookingDate:        &f.BookingDate,
		NumberOfPassengers: &passengers,
		PackageType:        &f.PackageID,
		AddOns:             &addOns,
	}, nil
}

// optionsForm values of the other options step
type optionsForm struct {
	AlternativeDate1 string
	AlternativeDate2 string
	Remarks          string
}

func optionsFormFrom(o domain.OtherOptions) optionsForm {
	f := optionsForm{Remarks: o.Remarks}
	if !o.AlternativeDate1.IsZero() {
		f.AlternativeDate1 = o.AlternativeDate1.String()
	}
	if !o.AlternativeDate2.IsZero() {
		f.AlternativeDate2 = o.AlternativeDate2.String()
	}
	return f
}

func (f optionsForm) patch() wizard.OptionsPatch {
	return wizard.OptionsPatch{
		AlternativeDate1: &f.AlternativeDate1,
		AlternativeDate2: &f.AlternativeDate2,
		Remarks:          &f.Remarks,
	}
}

func parsePassengers(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("number of passengers must be a number")
	}
	return n, nil
}

func validatePassengers(raw string) error {
	n, err := parsePassengers(raw)
	if err != nil {
		return err
	}
	if n < domain.MinPassengers || n > domain.MaxPassengers {
		return fmt.Errorf("number of passengers must be between %d and %d", domain.MinPassengers, domain.MaxPassengers)
	}
	return nil
}

// bookingDateValidator empty is allowed here, the step check reports it as missing
func bookingDateValidator(today domain.Date) func(string) error {
	return func(raw string) error {
		if strings.TrimSpace(raw) == "" {
			return nil
		}
		d, err := domain.ParseDate(raw)
		if err != nil {
			return fmt.Errorf("use YYYY-MM-DD")
		}
		if !domain.IsWithinBookingWindow(d, today) {
			first, last := domain.BookingWindow(today)
			return fmt.Errorf("pick a date between %s and %s", first, last)
		}
		return nil
	}
}

func alternativeDateValidator(today domain.Date) func(string) error {
	return func(raw string) error {
		d, err := domain.ParseDate(raw)
		if err != nil {
			return fmt.Errorf("use YYYY-MM-DD")
		}
		if !d.IsZero() && !d.After(today) {
			return fmt.Errorf("pick a date after %s", today)
		}
		return nil
	}
}

func validateRemarks(raw string) error {
	if utf8.RuneCountInString(raw) > domain.MaxRemarksLength {
		return fmt.Errorf("remarks are limited to %d characters", domain.MaxRemarksLength)
	}
	return nil
}

func navigationField(step domain.Step, value *action) huh.Field {
	opts := []huh.Option[action]{huh.NewOption("Next", actionNext)}
	if step == domain.StepOtherOptions {
		opts[0] = huh.NewOption("Submit booking", actionNext)
	}
	if step != domain.StepCustomerInfo {
		opts = append(opts, huh.NewOption("Back", actionBack))
	}
	opts = append(opts, huh.NewOption("Start over", actionRestart))

	*value = actionNext
	return huh.NewSelect[action]().
		Title("Continue").
		Options(opts...).
		Value(value)
}

func customerInfoForm(f *customerForm, nav *action) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("First name").Value(&f.FirstName),
			huh.NewInput().Title("Last name").Value(&f.LastName),
			huh.NewInput().Title("Phone number").Placeholder("+60 12-345 6789").Value(&f.PhoneNumber),
			huh.NewInput().Title("Email").Value(&f.Email),
		).Title("Contact"),
		huh.NewGroup(
			huh.NewInput().Title("Address line 1").Value(&f.AddressLine1),
			huh.NewInput().Title("Address line 2 (optional)").Value(&f.AddressLine2),
			huh.NewInput().Title("Postal code").Value(&f.PostalCode),
			huh.NewInput().Title("City").Value(&f.City),
			huh.NewInput().Title("Country").Value(&f.Country),
			navigationField(domain.StepCustomerInfo, nav),
		).Title("Address"),
	)
}

func reservationDetailsForm(f *reservationForm, snap catalog.Snapshot, today domain.Date, nav *action) *huh.Form {
	jetties := make([]huh.Option[string], 0, len(domain.JettyLocations))
	for _, j := range domain.JettyLocations {
		jetties = append(jetties, huh.NewOption(string(j), string(j)))
	}

	addOns := make([]huh.Option[string], 0, len(domain.AddOnCatalog))
	for _, a := range domain.AddOnCatalog {
		addOns = append(addOns, huh.NewOption(fmt.Sprintf("%s (%s)", a.Name, formatAmount(a.Price)), a.ID))
	}

	first, last := domain.BookingWindow(today)
	fields := []huh.Field{
		huh.NewSelect[string]().Title("Jetty").Options(jetties...).Value(&f.Jetty),
		huh.NewInput().
			Title("Booking date").
			Description(fmt.Sprintf("%s to %s", first, last)).
			Placeholder(first.String()).
			Value(&f.BookingDate).
			Validate(bookingDateValidator(today)),
		huh.NewInput().
			Title("Number of passengers").
			Value(&f.Passengers).
			Validate(validatePassengers),
	}

	if len(snap.Packages) > 0 {
		packages := make([]huh.Option[string], 0, len(snap.Packages))
		for _, p := range snap.Packages {
			packages = append(packages, huh.NewOption(fmt.Sprintf("%s (%s)", p.DisplayName(), priceLabel(p.Pricing)), p.ID))
		}
		fields = append(fields, huh.NewSelect[string]().Title("Package").Options(packages...).Value(&f.PackageID))
	} else {
		fields = append(fields, huh.NewNote().Title("Package").Description(snap.Message))
	}

	fields = append(fields,
		huh.NewMultiSelect[string]().Title("Add-ons").Options(addOns...).Value(&f.AddOns),
		navigationField(domain.StepReservationDetails, nav),
	)

	return huh.NewForm(huh.NewGroup(fields...).Title("Reservation"))
}

func otherOptionsForm(f *optionsForm, today domain.Date, nav *action) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Alternative date 1 (optional)").Placeholder("YYYY-MM-DD").
				Value(&f.AlternativeDate1).Validate(alternativeDateValidator(today)),
			huh.NewInput().Title("Alternative date 2 (optional)").Placeholder("YYYY-MM-DD").
				Value(&f.AlternativeDate2).Validate(alternativeDateValidator(today)),
			huh.NewText().Title("Remarks").CharLimit(domain.MaxRemarksLength).
				Value(&f.Remarks).Validate(validateRemarks),
			navigationField(domain.StepOtherOptions, nav),
		).Title("Other options"),
	)
}
