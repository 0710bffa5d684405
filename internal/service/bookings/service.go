package bookings

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/RhuMuda-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с сохраненными бронированиями
type Service struct {
	bookingRepo BookingRepository
	packageRepo PackageRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	packageRepo PackageRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
		logger:      logger,
	}
}

// GetByBookingID получает бронирование по номеру BK...
// Детали пакета подтягиваются из каталога, если пакет еще существует.
func (s *Service) GetByBookingID(ctx context.Context, bookingID string) (*domain.BookingConfirmation, error) {
	s.logger.Info("GetByBookingID: fetching booking %s", bookingID)

	booking, err := s.getBooking(ctx, "GetByBookingID", bookingID)
	if err != nil {
		return nil, err
	}

	pkg, err := s.packageRepo.GetByID(ctx, booking.Reservation.PackageType)
	if err != nil {
		// без каталога отдаем денормализованные данные
		s.logger.Warn("GetByBookingID: package %s for booking %s unavailable: %v",
			booking.Reservation.PackageType, bookingID, err)
		pkg = nil
	}

	return models.FromDomainBooking(booking, pkg), nil
}

// ListByEmail история бронирований клиента по email
func (s *Service) ListByEmail(ctx context.Context, email string) (*models.BookingListResponse, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		s.logger.Warn("ListByEmail: invalid email %q", email)
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListByEmail(ctx, email)
	if err != nil {
		s.logger.Error("ListByEmail: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByEmail - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByEmail: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование. Отменить может только владелец заявки (по email).
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking %s", bookingID)

	booking, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return err
	}

	if normalizeEmail(booking.Customer.Email) != normalizeEmail(req.Email) {
		s.logger.Warn("Cancel: email mismatch for booking %s", bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking %s cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking %s not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking %s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking %s cancelled", bookingID)
	return nil
}

func (s *Service) getBooking(ctx context.Context, op, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking %s not found", op, bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking %s: %v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
