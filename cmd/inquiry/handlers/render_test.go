package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/wizard"
)

func testConfirmation() *domain.BookingConfirmation {
	return &domain.BookingConfirmation{
		BookingID:    "BK123456789",
		CustomerInfo: domain.CustomerInfo{FirstName: "Aisyah", LastName: "Rahman", Email: "a@b.c"},
		ReservationDetails: domain.ReservationDetails{
			JettyLocation:      domain.JettyRhumuda,
			BookingDate:        domain.NewDate(2025, time.June, 11),
			NumberOfPassengers: 4,
			PackageType:        "boat1",
			AddOns:             []string{"lunch", "guide"},
		},
		OtherOptions: domain.OtherOptions{AlternativeDate1: domain.NewDate(2025, time.June, 12)},
		Package:      &domain.PackageOption{ID: "boat1", Title: "Private Boat", Pricing: domain.PrivateBoatPricing(750)},
		TotalAmount:  770,
	}
}

func TestRenderConfirmation(t *testing.T) {
	out := renderConfirmation(testConfirmation())

	for _, want := range []string{
		"BK123456789",
		"Aisyah Rahman",
		"2025-06-11",
		"Rhumuda",
		"Private Boat",
		"Lunch Set, Tourist Guide",
		"2025-06-12",
		"RM 770.00",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderConfirmation_WithoutPackageDetails(t *testing.T) {
	conf := testConfirmation()
	conf.Package = nil

	assert.Contains(t, renderConfirmation(conf), "boat1")
}

func TestPriceLabel(t *testing.T) {
	kid := 50.0
	tests := []struct {
		pricing domain.Pricing
		want    string
	}{
		{domain.PrivateBoatPricing(750), "RM 750.00 / boat"},
		{domain.PerPersonPricing(100, &kid), "RM 100.00 / adult, 50.00 / kid"},
		{domain.PerPersonPricing(100, nil), "RM 100.00 / adult"},
		{domain.RangePricing(1400, 1500), "RM 1400.00 - 1500.00"},
		{domain.Pricing{}, "price on request"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, priceLabel(tt.pricing))
	}
}

func TestRenderPackages(t *testing.T) {
	out := renderPackages([]domain.PackageOption{
		{ID: "fish1", Name: "Deep Sea Fishing", Type: domain.PackageFishing, Duration: "8 hours", Capacity: 10},
	})
	assert.Contains(t, out, "fish1")
	assert.Contains(t, out, "Deep Sea Fishing")
	assert.Contains(t, out, "up to 10 pax")

	assert.Contains(t, renderPackages(nil), "No packages available")
}

func TestFilterPackages(t *testing.T) {
	all := []domain.PackageOption{
		{ID: "fish1", Type: domain.PackageFishing},
		{ID: "boat1", Type: domain.PackageBoat},
	}

	assert.Len(t, filterPackages(all, ""), 2)
	got := filterPackages(all, domain.PackageBoat)
	require.Len(t, got, 1)
	assert.Equal(t, "boat1", got[0].ID)
}

func TestRenderError(t *testing.T) {
	err := &wizard.ValidationError{Step: domain.StepCustomerInfo, Fields: []domain.Field{domain.FieldEmail, domain.FieldCity}}

	assert.Contains(t, renderError(err), "Please fill in: email, city")
	assert.Contains(t, renderError(fmt.Errorf("%w: boom", wizard.ErrSubmissionFailed)), "boom")
}

func TestStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/bookings/BK123456789" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(testConfirmation())
	}))
	defer srv.Close()

	conn := &Connection{APIURL: srv.URL, Timeout: time.Second}

	require.NoError(t, Status(t.Context(), conn, " bk123456789 "))

	err := Status(t.Context(), conn, "BK000000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	assert.Error(t, Status(t.Context(), conn, "not-an-id"))
}

func TestPackages_RejectsUnknownType(t *testing.T) {
	err := Packages(t.Context(), &Connection{APIURL: "http://127.0.0.1:1", Timeout: time.Second}, "submarine")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown package type")
}
