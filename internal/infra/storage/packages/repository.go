package packages

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

var packageColumns = []string{
	"id",
	"title",
	"name",
	"type",
	"description",
	"duration",
	"capacity",
	"pricing_kind",
	"adult_price",
	"kid_price",
	"private_boat_price",
	"price_min",
	"price_max",
	"services",
	"techniques",
	"distance",
	"image",
}

// Repository репозиторий каталога пакетов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пакетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает активные пакеты в порядке отображения.
// kind = nil означает все типы.
func (r *Repository) List(ctx context.Context, kind *domain.PackageKind) ([]domain.PackageOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(packageColumns...).
		From("packages").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("type", "sort_order", "id")

	if kind != nil {
		builder = builder.Where(squirrel.Eq{"type": *kind})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.PackageOption, 0)
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan package: %v", ErrScanRow, err)
		}
		result = append(result, *pkg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetByID получает активный пакет по id
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.PackageOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(packageColumns...).
		From("packages").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	pkg, err := scanPackage(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan package: %v", ErrScanRow, err)
	}

	return pkg, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPackage(row rowScanner) (*domain.PackageOption, error) {
	var (
		p                                            domain.PackageOption
		pricingKind                                  string
		adult, kid, privateBoat, priceMin, priceMax  sql.NullFloat64
		name, description, duration, distance, image sql.NullString
		capacity                                     sql.NullInt64
		services, techniques                         pq.StringArray
	)

	err := row.Scan(
		&p.ID,
		&p.Title,
		&name,
		&p.Type,
		&description,
		&duration,
		&capacity,
		&pricingKind,
		&adult,
		&kid,
		&privateBoat,
		&priceMin,
		&priceMax,
		&services,
		&techniques,
		&distance,
		&image,
	)
	if err != nil {
		return nil, err
	}

	p.Name = name.String
	p.Description = description.String
	p.Duration = duration.String
	p.Capacity = int(capacity.Int64)
	p.Distance = distance.String
	p.Image = image.String
	p.Services = []string(services)
	p.Techniques = []string(techniques)

	switch domain.PricingKind(pricingKind) {
	case domain.PricingPrivateBoat:
		p.Pricing = domain.PrivateBoatPricing(privateBoat.Float64)
	case domain.PricingPerPerson:
		var kidPrice *float64
		if kid.Valid {
			v := kid.Float64
			kidPrice = &v
		}
		p.Pricing = domain.PerPersonPricing(adult.Float64, kidPrice)
	case domain.PricingRange:
		p.Pricing = domain.RangePricing(priceMin.Float64, priceMax.Float64)
	}

	return &p, nil
}
