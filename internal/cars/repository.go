package cars

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/taxi-service/pkg/pagination"
	"github.com/JaimeStill/taxi-service/pkg/query"
	"github.com/JaimeStill/taxi-service/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a cars System backed by db.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "car"),
		pagination: pagination,
	}
}

func (r *repo) All(ctx context.Context, filters Filters) ([]Car, error) {
	qb := filters.Apply(query.NewBuilder(projection, defaultSort))

	q, args := qb.BuildAll()
	items, err := repository.QueryMany(ctx, r.db, q, args, scanCar)
	if err != nil {
		return nil, fmt.Errorf("query cars: %w", err)
	}
	return items, nil
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Car], error) {
	page.Normalize(r.pagination)
	filters.Search = nil

	qb := filters.Apply(query.NewBuilder(projection, defaultSort)).
		WhereSearch(page.Search, "model", "manufacturer").
		OrderByFields(page.Sort)

	countQ, countArgs := qb.BuildCount()
	total, err := repository.QueryCount(ctx, r.db, countQ, countArgs)
	if err != nil {
		return nil, fmt.Errorf("count cars: %w", err)
	}

	pageQ, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageQ, pageArgs, scanCar)
	if err != nil {
		return nil, fmt.Errorf("query cars: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Car, error) {
	q, args := query.NewBuilder(projection).BuildSingle("id", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanCar)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	c.Drivers, err = r.drivers(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) Create(ctx context.Context, cmd Command) (*Car, error) {
	if errs := cmd.Validate(); errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, errs)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate id: %w", err)
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO cars (id, model, manufacturer_id) VALUES ($1, $2, $3)",
			id, cmd.Model, cmd.ManufacturerID,
		)
		if err != nil {
			return struct{}{}, mapError(err)
		}
		return struct{}{}, r.assign(ctx, tx, id, cmd.DriverIDs)
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("car created", "id", id, "model", cmd.Model)
	return r.Find(ctx, id)
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd Command) (*Car, error) {
	if errs := cmd.Validate(); errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, errs)
	}

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		err := repository.ExecExpectOne(ctx, tx, `
			UPDATE cars
			SET model = $1, manufacturer_id = $2, updated_at = NOW()
			WHERE id = $3`,
			cmd.Model, cmd.ManufacturerID, id,
		)
		if err != nil {
			return struct{}{}, mapError(err)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM car_drivers WHERE car_id = $1", id); err != nil {
			return struct{}{}, fmt.Errorf("clear drivers: %w", err)
		}
		return struct{}{}, r.assign(ctx, tx, id, cmd.DriverIDs)
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("car updated", "id", id, "model", cmd.Model)
	return r.Find(ctx, id)
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repository.ExecExpectOne(ctx, r.db, "DELETE FROM cars WHERE id = $1", id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("car deleted", "id", id)
	return nil
}

func (r *repo) Count(ctx context.Context) (int, error) {
	q, args := query.NewBuilder(projection).BuildCount()
	total, err := repository.QueryCount(ctx, r.db, q, args)
	if err != nil {
		return 0, fmt.Errorf("count cars: %w", err)
	}
	return total, nil
}

func (r *repo) ToggleAssign(ctx context.Context, carID, driverID uuid.UUID) (bool, error) {
	assigned, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (bool, error) {
		err := repository.ExecExpectOne(ctx, tx,
			"DELETE FROM car_drivers WHERE car_id = $1 AND driver_id = $2",
			carID, driverID,
		)
		if err == nil {
			return false, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("unassign driver: %w", err)
		}

		if err := r.assign(ctx, tx, carID, []uuid.UUID{driverID}); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return false, err
	}

	r.logger.Info("car assignment toggled", "car", carID, "driver", driverID, "assigned", assigned)
	return assigned, nil
}

func (r *repo) assign(ctx context.Context, tx *sql.Tx, carID uuid.UUID, driverIDs []uuid.UUID) error {
	for _, driverID := range driverIDs {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO car_drivers (car_id, driver_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			carID, driverID,
		)
		if err != nil {
			return mapError(err)
		}
	}
	return nil
}

func (r *repo) drivers(ctx context.Context, db repository.Querier, carID uuid.UUID) ([]Driver, error) {
	q := `
		SELECT d.id, d.username, d.first_name, d.last_name, d.license_number
		FROM drivers d
		JOIN car_drivers cd ON cd.driver_id = d.id
		WHERE cd.car_id = $1
		ORDER BY d.id`

	drivers, err := repository.QueryMany(ctx, db, q, []any{carID}, scanDriver)
	if err != nil {
		return nil, fmt.Errorf("query car drivers: %w", err)
	}
	return drivers, nil
}

func mapError(err error) error {
	if repository.IsForeignKeyViolation(err) {
		switch repository.ConstraintName(err) {
		case "cars_manufacturer_id_fkey":
			return ErrManufacturerNotFound
		case "car_drivers_driver_id_fkey":
			return ErrDriverNotFound
		case "car_drivers_car_id_fkey":
			return ErrNotFound
		}
	}
	return repository.MapError(err, ErrNotFound, ErrDuplicate)
}
