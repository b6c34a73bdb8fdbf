package drivers

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

// New creates a drivers System backed by db.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "driver"),
		pagination: pagination,
	}
}

func (r *repo) All(ctx context.Context, filters Filters) ([]Driver, error) {
	qb := filters.Apply(query.NewBuilder(projection, defaultSort))

	q, args := qb.BuildAll()
	items, err := repository.QueryMany(ctx, r.db, q, args, scanDriver)
	if err != nil {
		return nil, fmt.Errorf("query drivers: %w", err)
	}
	return items, nil
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Driver], error) {
	page.Normalize(r.pagination)
	filters.Search = nil

	qb := filters.Apply(query.NewBuilder(projection, defaultSort)).
		WhereSearch(page.Search, "username", "first_name", "last_name", "license_number").
		OrderByFields(page.Sort)

	countQ, countArgs := qb.BuildCount()
	total, err := repository.QueryCount(ctx, r.db, countQ, countArgs)
	if err != nil {
		return nil, fmt.Errorf("count drivers: %w", err)
	}

	pageQ, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageQ, pageArgs, scanDriver)
	if err != nil {
		return nil, fmt.Errorf("query drivers: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Driver, error) {
	q, args := query.NewBuilder(projection).BuildSingle("id", id)

	d, err := repository.QueryOne(ctx, r.db, q, args, scanDriver)
	if err != nil {
		return nil, mapError(err)
	}
	return &d, nil
}

func (r *repo) Cars(ctx context.Context, id uuid.UUID) ([]Car, error) {
	q := `
		SELECT c.id, c.model, m.name
		FROM cars c
		JOIN car_drivers cd ON cd.car_id = c.id
		JOIN manufacturers m ON m.id = c.manufacturer_id
		WHERE cd.driver_id = $1
		ORDER BY c.id`

	cars, err := repository.QueryMany(ctx, r.db, q, []any{id}, scanCar)
	if err != nil {
		return nil, fmt.Errorf("query driver cars: %w", err)
	}
	return cars, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Driver, error) {
	if errs := cmd.Validate(); errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, errs)
	}

	hash, err := HashPassword(cmd.Password)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate id: %w", err)
	}

	q := `
		INSERT INTO drivers (id, username, password, first_name, last_name, email, license_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		` + returning

	args := []any{id, cmd.Username, hash, cmd.FirstName, cmd.LastName, cmd.Email, cmd.LicenseNumber}
	d, err := repository.QueryOne(ctx, r.db, q, args, scanDriver)
	if err != nil {
		return nil, mapError(err)
	}

	r.logger.Info("driver created", "id", d.ID, "username", d.Username)
	return &d, nil
}

func (r *repo) UpdateLicense(ctx context.Context, id uuid.UUID, cmd LicenseCommand) (*Driver, error) {
	if errs := cmd.Validate(); errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLicense, errs)
	}

	q := `
		UPDATE drivers
		SET license_number = $1, updated_at = NOW()
		WHERE id = $2
		` + returning

	d, err := repository.QueryOne(ctx, r.db, q, []any{cmd.LicenseNumber, id}, scanDriver)
	if err != nil {
		return nil, mapError(err)
	}

	r.logger.Info("driver license updated", "id", d.ID)
	return &d, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repository.ExecExpectOne(ctx, r.db, "DELETE FROM drivers WHERE id = $1", id); err != nil {
		return mapError(err)
	}

	r.logger.Info("driver deleted", "id", id)
	return nil
}

func (r *repo) Count(ctx context.Context) (int, error) {
	q, args := query.NewBuilder(projection).BuildCount()
	total, err := repository.QueryCount(ctx, r.db, q, args)
	if err != nil {
		return 0, fmt.Errorf("count drivers: %w", err)
	}
	return total, nil
}

func (r *repo) Authenticate(ctx context.Context, username, password string) (*Driver, error) {
	var (
		id   uuid.UUID
		hash string
	)
	err := r.db.QueryRowContext(ctx, "SELECT id, password FROM drivers WHERE username = $1", username).
		Scan(&id, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		rejectPassword(password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("query credentials: %w", err)
	}

	ok, err := CheckPassword(hash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		r.logger.Warn("failed login", "username", username)
		return nil, ErrInvalidCredentials
	}

	q := `
		UPDATE drivers SET last_login = NOW()
		WHERE id = $1
		` + returning

	d, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanDriver)
	if err != nil {
		return nil, mapError(err)
	}
	return &d, nil
}

func mapError(err error) error {
	switch repository.ConstraintName(err) {
	case "drivers_username_key":
		return ErrDuplicateUsername
	case "drivers_license_number_key":
		return ErrDuplicateLicense
	}
	return repository.MapError(err, ErrNotFound, ErrDuplicate)
}
