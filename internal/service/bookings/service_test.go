package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/RhuMuda-BookingService/internal/infra/storage/booking"
	packagesRepo "github.com/m04kA/RhuMuda-BookingService/internal/infra/storage/packages"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/bookings/models"
	"github.com/m04kA/RhuMuda-BookingService/pkg/logger"
)

type fakeBookingRepo struct {
	bookings      map[string]*domain.Booking
	err           error
	updatedStatus domain.BookingStatus
	listedEmail   string
}

func (f *fakeBookingRepo) GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.bookings[bookingID]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) ListByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	f.listedEmail = email
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.Customer.Email == email {
			out = append(out, b)
		}
	}
	return out, f.err
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error {
	f.updatedStatus = status
	return f.err
}

type fakePackageRepo struct {
	pkg *domain.PackageOption
}

func (f *fakePackageRepo) GetByID(ctx context.Context, id string) (*domain.PackageOption, error) {
	if f.pkg == nil || f.pkg.ID != id {
		return nil, packagesRepo.ErrPackageNotFound
	}
	return f.pkg, nil
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        1,
		BookingID: "BK123456789",
		Customer:  domain.CustomerInfo{FirstName: "Aisyah", Email: "aisyah@example.com"},
		Reservation: domain.ReservationDetails{
			JettyLocation:      domain.JettyRhumuda,
			BookingDate:        domain.NewDate(2025, time.June, 20),
			NumberOfPassengers: 4,
			PackageType:        "boat1",
			AddOns:             []string{"lunch"},
		},
		Status:       status,
		PackageTitle: "Package 1",
		PackageKind:  domain.PackageBoat,
		TotalAmount:  760,
		CreatedAt:    time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestService_GetByBookingID(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[string]*domain.Booking{"BK123456789": testBooking(domain.StatusPending)}}
	pkg := &domain.PackageOption{ID: "boat1", Title: "Package 1", Type: domain.PackageBoat, Pricing: domain.PrivateBoatPricing(750)}

	svc := NewService(repo, &fakePackageRepo{pkg: pkg}, logger.Nop())
	conf, err := svc.GetByBookingID(context.Background(), "BK123456789")
	require.NoError(t, err)
	assert.Equal(t, 760.0, conf.TotalAmount)
	assert.Equal(t, 750.0, conf.Package.Pricing.BasePrice())
	require.NotNil(t, conf.CreatedAt)

	// пакет удален из каталога: остаются денормализованные поля
	svc = NewService(repo, &fakePackageRepo{}, logger.Nop())
	conf, err = svc.GetByBookingID(context.Background(), "BK123456789")
	require.NoError(t, err)
	assert.Equal(t, "Package 1", conf.Package.Title)
	assert.Equal(t, domain.PricingNone, conf.Package.Pricing.Kind)

	_, err = svc.GetByBookingID(context.Background(), "BK000000000")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetByBookingID_RepoError(t *testing.T) {
	svc := NewService(&fakeBookingRepo{err: errors.New("conn reset")}, &fakePackageRepo{}, logger.Nop())

	_, err := svc.GetByBookingID(context.Background(), "BK123456789")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_ListByEmail(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[string]*domain.Booking{"BK123456789": testBooking(domain.StatusPending)}}
	svc := NewService(repo, &fakePackageRepo{}, logger.Nop())

	resp, err := svc.ListByEmail(context.Background(), "  Aisyah@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "aisyah@example.com", repo.listedEmail)
	assert.Equal(t, 1, resp.Total)

	_, err = svc.ListByEmail(context.Background(), "not-an-email")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Cancel(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		email   string
		wantErr error
	}{
		{name: "owner cancels", status: domain.StatusPending, email: "AISYAH@example.com"},
		{name: "foreign email", status: domain.StatusPending, email: "someone@example.com", wantErr: ErrAccessDenied},
		{name: "already cancelled", status: domain.StatusCancelled, email: "aisyah@example.com", wantErr: ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{bookings: map[string]*domain.Booking{"BK123456789": testBooking(tt.status)}}
			svc := NewService(repo, &fakePackageRepo{}, logger.Nop())

			err := svc.Cancel(context.Background(), "BK123456789", &models.CancelBookingRequest{Email: tt.email})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.updatedStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusCancelled, repo.updatedStatus)
		})
	}
}
