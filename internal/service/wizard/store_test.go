package wizard

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
)

var testToday = domain.NewDate(2025, time.June, 10)

func TestStore_SetField(t *testing.T) {
	tests := []struct {
		name    string
		field   domain.Field
		raw     string
		wantErr error
		check   func(t *testing.T, s *Store)
	}{
		{
			name:  "customer text",
			field: domain.FieldPhoneNumber,
			raw:   "+60 12-345 6789",
			check: func(t *testing.T, s *Store) {
				assert.Equal(t, "+60 12-345 6789", s.CustomerInfo().PhoneNumber)
			},
		},
		{
			name:  "jetty case insensitive",
			field: domain.FieldJettyLocation,
			raw:   "kuala terengganu",
			check: func(t *testing.T, s *Store) {
				assert.Equal(t, domain.JettyKualaTerengganu, s.ReservationDetails().JettyLocation)
			},
		},
		{name: "unknown jetty", field: domain.FieldJettyLocation, raw: "Marang", wantErr: ErrUnknownJetty},
		{
			name:  "booking date first day",
			field: domain.FieldBookingDate,
			raw:   "2025-06-11",
			check: func(t *testing.T, s *Store) {
				assert.Equal(t, "2025-06-11", s.ReservationDetails().BookingDate.String())
			},
		},
		{name: "booking date today", field: domain.FieldBookingDate, raw: "2025-06-10", wantErr: ErrDateOutOfRange},
		{name: "booking date garbage", field: domain.FieldBookingDate, raw: "next friday", wantErr: ErrInvalidFieldValue},
		{
			name:  "passengers",
			field: domain.FieldNumberOfPassengers,
			raw:   "20",
			check: func(t *testing.T, s *Store) {
				assert.Equal(t, 20, s.ReservationDetails().NumberOfPassengers)
			},
		},
		{name: "passengers negative", field: domain.FieldNumberOfPassengers, raw: "-1", wantErr: ErrPassengersOutOfRange},
		{name: "passengers not a number", field: domain.FieldNumberOfPassengers, raw: "four", wantErr: ErrInvalidFieldValue},
		{
			name:  "add-ons deduplicated",
			field: domain.FieldAddOns,
			raw:   "lunch, guide,lunch",
			check: func(t *testing.T, s *Store) {
				assert.Equal(t, []string{"lunch", "guide"}, s.ReservationDetails().AddOns)
			},
		},
		{name: "add-ons unknown", field: domain.FieldAddOns, raw: "lunch,jetski", wantErr: ErrUnknownAddOn},
		{
			name:  "alternative date",
			field: domain.FieldAlternativeDate2,
			raw:   "2025-07-01",
			check: func(t *testing.T, s *Store) {
				assert.Equal(t, "2025-07-01", s.OtherOptions().AlternativeDate2.String())
				assert.True(t, s.OtherOptions().AlternativeDate1.IsZero())
			},
		},
		{name: "alternative date in the past", field: domain.FieldAlternativeDate1, raw: "2025-06-01", wantErr: ErrDateOutOfRange},
		{name: "alternative date today", field: domain.FieldAlternativeDate2, raw: "2025-06-10", wantErr: ErrDateOutOfRange},
		{
			name:  "alternative date cleared",
			field: domain.FieldAlternativeDate1,
			raw:   "",
			check: func(t *testing.T, s *Store) {
				assert.True(t, s.OtherOptions().AlternativeDate1.IsZero())
			},
		},
		{name: "remarks too long", field: domain.FieldRemarks, raw: strings.Repeat("a", domain.MaxRemarksLength+1), wantErr: ErrRemarksTooLong},
		{name: "unknown field", field: domain.Field("favouriteFish"), raw: "tuna", wantErr: domain.ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			err := s.SetField(tt.field, tt.raw, testToday)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestStore_SetFieldKeepsOtherFields(t *testing.T) {
	s := NewStore()
	s.SetCustomerInfo(domain.CustomerInfo{FirstName: "Aisyah", City: "Marang"})

	require.NoError(t, s.SetField(domain.FieldEmail, "a@b.c", testToday))

	assert.Equal(t, domain.CustomerInfo{FirstName: "Aisyah", City: "Marang", Email: "a@b.c"}, s.CustomerInfo())
}

func TestStore_ToggleAddOnRemovesAllInstances(t *testing.T) {
	s := NewStore()
	s.reservation.AddOns = []string{"lunch", "guide", "lunch"}

	selected, err := s.ToggleAddOn("lunch")
	require.NoError(t, err)
	assert.False(t, selected)
	assert.Equal(t, []string{"guide"}, s.ReservationDetails().AddOns)
}

func TestStore_SetReservationDetailsNormalizesAddOns(t *testing.T) {
	s := NewStore()

	unknown := s.SetReservationDetails(domain.ReservationDetails{AddOns: []string{"guide", "jetski", "guide"}})

	assert.Equal(t, []string{"jetski"}, unknown)
	assert.Equal(t, []string{"guide"}, s.ReservationDetails().AddOns)
}

func TestStore_CursorClamps(t *testing.T) {
	s := NewStore()

	assert.Equal(t, domain.StepCustomerInfo, s.Retreat())
	for i := 0; i < 10; i++ {
		s.Advance()
	}
	assert.Equal(t, domain.StepConfirmation, s.ActiveStep())
	assert.Equal(t, domain.StepOtherOptions, s.Retreat())
}

func TestStore_Validate(t *testing.T) {
	full := domain.CustomerInfo{
		FirstName:    "Aisyah",
		LastName:     "Rahman",
		PhoneNumber:  "+60123456789",
		Email:        "a@b.c",
		AddressLine1: "12 Jalan Sultan",
		PostalCode:   "20000",
		City:         "Kuala Terengganu",
		Country:      "Malaysia",
	}

	// Каждое обязательное поле по очереди пустое: ошибка ровно по нему
	for _, f := range domain.CustomerInfoRequiredFields {
		t.Run(string(f), func(t *testing.T) {
			s := NewStore()
			s.SetCustomerInfo(full)
			require.NoError(t, s.SetField(f, "", testToday))

			res := s.Validate(domain.StepCustomerInfo)

			assert.False(t, res.Valid)
			assert.Equal(t, []domain.Field{f}, res.Missing)
			assert.Equal(t, []domain.Field{f}, s.FieldErrors(domain.StepCustomerInfo))
			for _, rf := range domain.CustomerInfoRequiredFields {
				assert.True(t, s.IsTouched(rf))
			}
		})
	}

	t.Run("address line 2 is optional", func(t *testing.T) {
		s := NewStore()
		s.SetCustomerInfo(full)
		res := s.Validate(domain.StepCustomerInfo)
		assert.True(t, res.Valid)
		assert.NoError(t, res.Err())
	})

	t.Run("other options always pass", func(t *testing.T) {
		s := NewStore()
		assert.True(t, s.Validate(domain.StepOtherOptions).Valid)
	})

	t.Run("validation is idempotent", func(t *testing.T) {
		s := NewStore()
		first := s.Validate(domain.StepReservationDetails)
		second := s.Validate(domain.StepReservationDetails)
		assert.Equal(t, first, second)
		assert.Equal(t, domain.ReservationRequiredFields, first.Missing)
	})
}

func TestStore_Prefill(t *testing.T) {
	s := NewStore()

	ignored := s.Prefill(domain.SearchParams{JettyPoint: "Rhumuda", BookingDate: "2026-01-01", Passengers: 40}, testToday)

	assert.Equal(t, []domain.Field{domain.FieldBookingDate, domain.FieldNumberOfPassengers}, ignored)
	r := s.ReservationDetails()
	assert.Equal(t, domain.JettyRhumuda, r.JettyLocation)
	assert.True(t, r.BookingDate.IsZero())
	assert.Equal(t, domain.DefaultPassengersCount, r.NumberOfPassengers)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Step: domain.StepCustomerInfo, Fields: []domain.Field{domain.FieldEmail, domain.FieldCity}}

	assert.ErrorIs(t, err, ErrStepInvalid)
	assert.Contains(t, err.Error(), "customer-info: email, city")
}
