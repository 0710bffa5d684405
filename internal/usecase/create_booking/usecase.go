package create_booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/RhuMuda-BookingService/internal/infra/storage/booking"
	packagesRepo "github.com/m04kA/RhuMuda-BookingService/internal/infra/storage/packages"
)

// сколько раз пробуем подобрать свободный номер бронирования
const maxBookingIDAttempts = 5

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	packageRepo  PackageRepository
	txManager    TransactionManager
	metrics      MetricsRecorder
	timeProvider TimeProvider
	generateID   func(now time.Time) string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	packageRepo PackageRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		packageRepo:  packageRepo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		generateID:   generateBookingID,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Номер бронирования подбирается в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	r := req.ReservationDetails
	uc.logger.Info("CreateBooking: email=%s, jetty=%s, date=%s, passengers=%d, package=%s",
		req.CustomerInfo.Email, r.JettyLocation, r.BookingDate, r.NumberOfPassengers, r.PackageType)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем окно бронирования
	if err := validateDates(req, domain.DateOf(now)); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем пакет из каталога
	pkg, err := uc.packageRepo.GetByID(ctx, r.PackageType)
	if err != nil {
		if errors.Is(err, packagesRepo.ErrPackageNotFound) {
			uc.logger.Warn("CreateBooking: package id=%s not found", r.PackageType)
			return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, r.PackageType)
		}
		uc.logger.Error("CreateBooking: failed to get package id=%s: %v", r.PackageType, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	// 5. Сумма всегда считается на сервере
	addOns, _ := domain.NormalizeAddOns(r.AddOns)
	total, _ := domain.TotalAmount(pkg, addOns)
	if req.TotalAmount != 0 && totalsDiffer(req.TotalAmount, total) {
		uc.logger.Warn("CreateBooking: client total %.2f differs from server total %.2f, using server value",
			req.TotalAmount, total)
	}

	booking := &domain.Booking{
		Customer: req.CustomerInfo,
		Reservation: domain.ReservationDetails{
			JettyLocation:      r.JettyLocation,
			BookingDate:        r.BookingDate,
			NumberOfPassengers: r.NumberOfPassengers,
			PackageType:        pkg.ID,
			AddOns:             addOns,
		},
		Options:      req.OtherOptions,
		Status:       domain.StatusPending,
		PackageTitle: pkg.DisplayName(),
		PackageKind:  pkg.Type,
		TotalAmount:  total,

		IdempotencyKey: strings.TrimSpace(req.IdempotencyKey),
	}

	// Переменные для хранения результата
	var (
		result   *domain.Booking
		replayed bool
	)

	// 6. Подбираем номер и сохраняем бронирование в сериализуемой транзакции.
	// Повторная заявка с тем же ключом возвращает уже созданное бронирование.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if booking.IdempotencyKey != "" {
			existing, err := uc.findByIdempotencyKey(txCtx, booking.IdempotencyKey)
			if err != nil {
				return err
			}
			if existing != nil {
				result, replayed = existing, true
				return nil
			}
		}

		bookingID, err := uc.allocateBookingID(txCtx, now)
		if err != nil {
			return err
		}
		booking.BookingID = bookingID

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateBookingID) {
				uc.logger.Warn("CreateBooking: booking id=%s taken concurrently", bookingID)
				return fmt.Errorf("%w: %s", ErrBookingIDExhausted, bookingID)
			}
			if errors.Is(err, bookingRepo.ErrDuplicateIdempotencyKey) {
				return err
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	// Параллельная заявка с тем же ключом успела закоммитить первой
	if errors.Is(err, bookingRepo.ErrDuplicateIdempotencyKey) {
		result, err = uc.findByIdempotencyKey(ctx, booking.IdempotencyKey)
		if err == nil && result == nil {
			err = fmt.Errorf("%w: booking for idempotency key %s disappeared", ErrInternal, booking.IdempotencyKey)
		}
		replayed = err == nil
	}
	if err != nil {
		if errors.Is(err, ErrBookingIDExhausted) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	if replayed {
		uc.logger.Info("CreateBooking: idempotency key %s already used, returning booking id=%s",
			booking.IdempotencyKey, result.BookingID)
		return toResponse(result, pkg), nil
	}

	uc.metrics.ObserveBookingCreated(string(pkg.Type))
	uc.logger.Info("CreateBooking: successfully created booking id=%s, total=%.2f", result.BookingID, result.TotalAmount)

	return toResponse(result, pkg), nil
}

// findByIdempotencyKey nil без ошибки, если заявка с этим ключом еще не сохранялась
func (uc *UseCase) findByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error) {
	existing, err := uc.bookingRepo.GetByIdempotencyKey(ctx, key)
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		return nil, nil
	}
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check idempotency key %s: %v", key, err)
		return nil, fmt.Errorf("%w: failed to check idempotency key: %w", ErrInternal, err)
	}
	return existing, nil
}

// allocateBookingID генерирует номер и проверяет, что он свободен
func (uc *UseCase) allocateBookingID(ctx context.Context, now time.Time) (string, error) {
	for attempt := 1; attempt <= maxBookingIDAttempts; attempt++ {
		id := uc.generateID(now)
		exists, err := uc.bookingRepo.ExistsByBookingID(ctx, id)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check booking id=%s: %v", id, err)
			return "", fmt.Errorf("%w: failed to check booking id: %w", ErrInternal, err)
		}
		if !exists {
			return id, nil
		}
		uc.logger.Warn("CreateBooking: booking id=%s already exists, attempt %d/%d", id, attempt, maxBookingIDAttempts)
	}
	return "", ErrBookingIDExhausted
}

// generateBookingID формирует номер вида BK + 6 последних цифр времени в мс + 3 случайные цифры
func generateBookingID(now time.Time) string {
	return fmt.Sprintf("%s%06d%03d", domain.BookingIDPrefix, now.UnixMilli()%1_000_000, rand.IntN(1000))
}

func toResponse(b *domain.Booking, pkg *domain.PackageOption) *Response {
	return &Response{
		BookingID:          b.BookingID,
		Status:             b.Status,
		TotalAmount:        b.TotalAmount,
		CustomerInfo:       b.Customer,
		ReservationDetails: b.Reservation,
		OtherOptions:       b.Options,
		Package:            pkg,
		CreatedAt:          b.CreatedAt,
	}
}
