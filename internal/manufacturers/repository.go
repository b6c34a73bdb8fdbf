package manufacturers

import (
	"context"
	"database/sql"
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

// New creates a manufacturers System backed by db.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "manufacturer"),
		pagination: pagination,
	}
}

func (r *repo) All(ctx context.Context, filters Filters) ([]Manufacturer, error) {
	qb := filters.Apply(query.NewBuilder(projection, defaultSort))

	q, args := qb.BuildAll()
	items, err := repository.QueryMany(ctx, r.db, q, args, scanManufacturer)
	if err != nil {
		return nil, fmt.Errorf("query manufacturers: %w", err)
	}
	return items, nil
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Manufacturer], error) {
	page.Normalize(r.pagination)
	filters.Search = nil

	qb := filters.Apply(query.NewBuilder(projection, defaultSort)).
		WhereSearch(page.Search, "name", "country").
		OrderByFields(page.Sort)

	countQ, countArgs := qb.BuildCount()
	total, err := repository.QueryCount(ctx, r.db, countQ, countArgs)
	if err != nil {
		return nil, fmt.Errorf("count manufacturers: %w", err)
	}

	pageQ, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageQ, pageArgs, scanManufacturer)
	if err != nil {
		return nil, fmt.Errorf("query manufacturers: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Manufacturer, error) {
	q, args := query.NewBuilder(projection).BuildSingle("id", id)

	m, err := repository.QueryOne(ctx, r.db, q, args, scanManufacturer)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &m, nil
}

func (r *repo) Create(ctx context.Context, cmd Command) (*Manufacturer, error) {
	if errs := cmd.Validate(); errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, errs)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate id: %w", err)
	}

	q := `
		INSERT INTO manufacturers (id, name, country)
		VALUES ($1, $2, $3)
		RETURNING id, name, country, created_at, updated_at`

	m, err := repository.QueryOne(ctx, r.db, q, []any{id, cmd.Name, cmd.Country}, scanManufacturer)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("manufacturer created", "id", m.ID, "name", m.Name)
	return &m, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd Command) (*Manufacturer, error) {
	if errs := cmd.Validate(); errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, errs)
	}

	q := `
		UPDATE manufacturers
		SET name = $1, country = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, country, created_at, updated_at`

	m, err := repository.QueryOne(ctx, r.db, q, []any{cmd.Name, cmd.Country, id}, scanManufacturer)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("manufacturer updated", "id", m.ID, "name", m.Name)
	return &m, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	err := repository.ExecExpectOne(ctx, r.db, "DELETE FROM manufacturers WHERE id = $1", id)
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("manufacturer deleted", "id", id)
	return nil
}

func (r *repo) Count(ctx context.Context) (int, error) {
	q, args := query.NewBuilder(projection).BuildCount()
	total, err := repository.QueryCount(ctx, r.db, q, args)
	if err != nil {
		return 0, fmt.Errorf("count manufacturers: %w", err)
	}
	return total, nil
}
