package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	"github.com/m04kA/RhuMuda-BookingService/pkg/dbmetrics"
	"github.com/m04kA/RhuMuda-BookingService/pkg/psqlbuilder"
)

const (
	// код ошибки PostgreSQL unique_violation
	uniqueViolation = "23505"

	idempotencyKeyConstraint = "bookings_idempotency_key_unique"
)

var bookingColumns = []string{
	"id",
	"booking_id",
	"first_name",
	"last_name",
	"phone_number",
	"email",
	"address_line1",
	"address_line2",
	"postal_code",
	"city",
	"country",
	"jetty_location",
	"booking_date",
	"number_of_passengers",
	"package_id",
	"add_ons",
	"alternative_date1",
	"alternative_date2",
	"remarks",
	"status",
	"package_title",
	"package_kind",
	"total_amount",
	"created_at",
	"updated_at",
	"idempotency_key",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование.
// Если в контексте передана активная транзакция (через context.Value), использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	c, res, opts := booking.Customer, booking.Reservation, booking.Options

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(append(bookingColumns[1:23:23], "idempotency_key")...).
		Values(
			booking.BookingID,
			c.FirstName,
			c.LastName,
			c.PhoneNumber,
			c.Email,
			c.AddressLine1,
			c.AddressLine2,
			c.PostalCode,
			c.City,
			c.Country,
			string(res.JettyLocation),
			res.BookingDate,
			res.NumberOfPassengers,
			res.PackageType,
			pq.Array(res.AddOns),
			opts.AlternativeDate1,
			opts.AlternativeDate2,
			opts.Remarks,
			booking.Status,
			booking.PackageTitle,
			booking.PackageKind,
			booking.TotalAmount,
			sql.NullString{String: booking.IdempotencyKey, Valid: booking.IdempotencyKey != ""},
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			if pqErr.Constraint == idempotencyKeyConstraint {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateIdempotencyKey, booking.IdempotencyKey)
			}
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBookingID, booking.BookingID)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByBookingID получает бронирование по публичному номеру (BK...)
func (r *Repository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// GetByIdempotencyKey бронирование, созданное заявкой с этим ключом
func (r *Repository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"idempotency_key": key}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIdempotencyKey - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIdempotencyKey - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// ExistsByBookingID проверяет, занят ли номер бронирования
func (r *Repository) ExistsByBookingID(ctx context.Context, bookingID string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"booking_id": bookingID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByBookingID - execute select: %w", ErrExecQuery, err)
	}
	return true, nil
}

// ListByEmail бронирования клиента, новые первыми
func (r *Repository) ListByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"lower(email)": email}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmail - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmail - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByEmail - scan booking: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByEmail - iterate rows: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b                    domain.Booking
		jetty                string
		addOns               pq.StringArray
		createdAt, updatedAt sql.NullTime
		idempotencyKey       sql.NullString
	)

	err := row.Scan(
		&b.ID,
		&b.BookingID,
		&b.Customer.FirstName,
		&b.Customer.LastName,
		&b.Customer.PhoneNumber,
		&b.Customer.Email,
		&b.Customer.AddressLine1,
		&b.Customer.AddressLine2,
		&b.Customer.PostalCode,
		&b.Customer.City,
		&b.Customer.Country,
		&jetty,
		&b.Reservation.BookingDate,
		&b.Reservation.NumberOfPassengers,
		&b.Reservation.PackageType,
		&addOns,
		&b.Options.AlternativeDate1,
		&b.Options.AlternativeDate2,
		&b.Options.Remarks,
		&b.Status,
		&b.PackageTitle,
		&b.PackageKind,
		&b.TotalAmount,
		&createdAt,
		&updatedAt,
		&idempotencyKey,
	)
	if err != nil {
		return nil, err
	}

	b.Reservation.JettyLocation = domain.JettyLocation(jetty)
	b.Reservation.AddOns = []string(addOns)
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	b.IdempotencyKey = idempotencyKey.String

	return &b, nil
}
