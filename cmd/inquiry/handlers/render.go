package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/wizard"
)

var (
	colorSea   = lipgloss.Color("#0ea5e9")
	colorGreen = lipgloss.Color("#22c55e")
	colorRed   = lipgloss.Color("#ef4444")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	stepStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSea)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSea).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Width(14).
			Foreground(colorDim)
)

var stepTitles = map[domain.Step]string{
	domain.StepCustomerInfo:       "Customer information",
	domain.StepReservationDetails: "Reservation details",
	domain.StepOtherOptions:       "Other options",
}

// renderStepHeader "Step 2 of 3  Reservation details"
func renderStepHeader(step domain.Step) string {
	inputSteps := domain.StepsCount - 1
	header := fmt.Sprintf("Step %d of %d", int(step)+1, inputSteps)
	return "\n" + stepStyle.Render(header) + "  " + titleStyle.Render(stepTitles[step]) + "\n"
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%s %.2f", domain.DefaultCurrency, amount)
}

// renderConfirmation booking card shown after a successful submission and by status.
func renderConfirmation(conf *domain.BookingConfirmation) string {
	var b strings.Builder

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	b.WriteString(successStyle.Render("Booking confirmed"))
	b.WriteString("\n\n")

	row("Booking ID", conf.BookingID)
	if conf.Status != "" {
		row("Status", string(conf.Status))
	}

	c := conf.CustomerInfo
	row("Name", strings.TrimSpace(c.FirstName+" "+c.LastName))
	row("Email", c.Email)
	row("Phone", c.PhoneNumber)

	r := conf.ReservationDetails
	if !r.BookingDate.IsZero() {
		row("Date", r.BookingDate.String())
	}
	row("Jetty", string(r.JettyLocation))
	if info, ok := domain.LookupJettyInfo(r.JettyLocation); ok && info.MapURL != "" {
		row("Map", info.MapURL)
	}
	if r.NumberOfPassengers > 0 {
		row("Passengers", fmt.Sprintf("%d", r.NumberOfPassengers))
	}
	if conf.Package != nil {
		row("Package", conf.Package.DisplayName())
	} else {
		row("Package", r.PackageType)
	}
	row("Add-ons", addOnNames(r.AddOns))

	o := conf.OtherOptions
	var alternatives []string
	for _, d := range []domain.Date{o.AlternativeDate1, o.AlternativeDate2} {
		if !d.IsZero() {
			alternatives = append(alternatives, d.String())
		}
	}
	row("Alternatives", strings.Join(alternatives, ", "))
	row("Remarks", o.Remarks)

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Total"))
	b.WriteString(titleStyle.Render(formatAmount(conf.TotalAmount)))

	return "\n" + cardStyle.Render(b.String()) + "\n"
}

func addOnNames(ids []string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if a, ok := domain.LookupAddOn(id); ok {
			names = append(names, a.Name)
		}
	}
	return strings.Join(names, ", ")
}

// renderPackages catalog listing grouped in display order.
func renderPackages(packages []domain.PackageOption) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  RhuMuda packages"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 40)))
	b.WriteString("\n")

	if len(packages) == 0 {
		b.WriteString(dimStyle.Render("  No packages available"))
		b.WriteString("\n")
		return b.String()
	}

	for _, p := range packages {
		b.WriteString(fmt.Sprintf("  %-10s %-36s %s\n", p.ID, p.DisplayName(), priceLabel(p.Pricing)))
		if p.Duration != "" || p.Capacity > 0 {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %-10s %s", string(p.Type), packageDetails(p))))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func packageDetails(p domain.PackageOption) string {
	var parts []string
	if p.Duration != "" {
		parts = append(parts, p.Duration)
	}
	if p.Capacity > 0 {
		parts = append(parts, fmt.Sprintf("up to %d pax", p.Capacity))
	}
	return strings.Join(parts, ", ")
}

// priceLabel human readable price of a package
func priceLabel(p domain.Pricing) string {
	switch p.Kind {
	case domain.PricingPrivateBoat:
		return formatAmount(p.PrivateBoatPrice) + " / boat"
	case domain.PricingPerPerson:
		label := formatAmount(p.AdultPrice) + " / adult"
		if p.KidPrice != nil {
			label += fmt.Sprintf(", %.2f / kid", *p.KidPrice)
		}
		return label
	case domain.PricingRange:
		return fmt.Sprintf("%s - %.2f", formatAmount(p.PriceMin), p.PriceMax)
	default:
		return "price on request"
	}
}

// renderError explains why the wizard did not move
func renderError(err error) string {
	var verr *wizard.ValidationError
	if errors.As(err, &verr) {
		names := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			names = append(names, string(f))
		}
		return errorStyle.Render("Please fill in: "+strings.Join(names, ", ")) + "\n"
	}
	return errorStyle.Render("Error: "+err.Error()) + "\n"
}
