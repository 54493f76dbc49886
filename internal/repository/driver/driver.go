package driver

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/driver"
	sq "github.com/Masterminds/squirrel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var driverColumns = []string{
	"id",
	"username",
	"password_hash",
	"full_name",
	"vehicle_model",
	"color",
	"license_plate",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Driver, error) {
	query, args, err := qb.
		Select(driverColumns...).
		From("drivers").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}

	drivers, err := r.queryDrivers(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}
	return drivers, nil
}

// GetByLicensePlates возвращает только найденных водителей, отсутствующие номера пропускаются.
func (r *Repository) GetByLicensePlates(ctx context.Context, licensePlates []string) ([]entities.Driver, error) {
	if len(licensePlates) == 0 {
		return []entities.Driver{}, nil
	}

	query, args, err := qb.
		Select(driverColumns...).
		From("drivers").
		Where(sq.Eq{"license_plate": licensePlates}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getbylicenseplates error: %w", err)
	}

	drivers, err := r.queryDrivers(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getbylicenseplates error: %w", err)
	}
	return drivers, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.querier.QueryRow(ctx, `SELECT COUNT(*) FROM drivers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected driver repository count error: %w", err)
	}
	return count, nil
}

func (r *Repository) InsertMany(ctx context.Context, drivers []entities.Driver) error {
	if len(drivers) == 0 {
		return nil
	}

	builder := qb.
		Insert("drivers").
		Columns("username", "password_hash", "full_name", "vehicle_model", "color", "license_plate")

	for i := range drivers {
		driverModel := FromDomain(&drivers[i])
		builder = builder.Values(
			driverModel.Username,
			driverModel.PasswordHash,
			driverModel.FullName,
			driverModel.VehicleModel,
			driverModel.Color,
			driverModel.LicensePlate,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected driver repository insertmany error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return driver.ErrConflict
		}
		return fmt.Errorf("unexpected driver repository insertmany error: %w", err)
	}
	return nil
}

func (r *Repository) queryDrivers(ctx context.Context, query string, args ...any) ([]entities.Driver, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	driverModels := make([]DriverDB, 0, 4)
	for rows.Next() {
		var d DriverDB
		err := rows.Scan(
			&d.ID,
			&d.Username,
			&d.PasswordHash,
			&d.FullName,
			&d.VehicleModel,
			&d.Color,
			&d.LicensePlate,
		)
		if err != nil {
			return nil, err
		}
		driverModels = append(driverModels, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ToDomainList(driverModels), nil
}
