package manufacturers_test

import (
	"context"
	"fmt"

	"github.com/JaimeStill/taxi-service/internal/manufacturers"
	"github.com/JaimeStill/taxi-service/pkg/pagination"
	"github.com/google/uuid"
)

type fakeSystem struct {
	items   []manufacturers.Manufacturer
	filters manufacturers.Filters
	created []manufacturers.Command
	deleted []uuid.UUID
	err     error
}

func (f *fakeSystem) All(_ context.Context, filters manufacturers.Filters) ([]manufacturers.Manufacturer, error) {
	f.filters = filters
	return f.items, f.err
}

func (f *fakeSystem) List(_ context.Context, page pagination.PageRequest, _ manufacturers.Filters) (*pagination.PageResult[manufacturers.Manufacturer], error) {
	if f.err != nil {
		return nil, f.err
	}
	result := pagination.NewPageResult(f.items, len(f.items), page.Page, page.PageSize)
	return &result, nil
}

func (f *fakeSystem) Find(_ context.Context, id uuid.UUID) (*manufacturers.Manufacturer, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, manufacturers.ErrNotFound
}

func (f *fakeSystem) Create(_ context.Context, cmd manufacturers.Command) (*manufacturers.Manufacturer, error) {
	if errs := cmd.Validate(); errs != nil {
		return nil, fmt.Errorf("%w: %w", manufacturers.ErrInvalid, errs)
	}
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, cmd)
	m := manufacturers.Manufacturer{ID: uuid.New(), Name: cmd.Name, Country: cmd.Country}
	f.items = append(f.items, m)
	return &m, nil
}

func (f *fakeSystem) Update(ctx context.Context, id uuid.UUID, cmd manufacturers.Command) (*manufacturers.Manufacturer, error) {
	m, err := f.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if errs := cmd.Validate(); errs != nil {
		return nil, fmt.Errorf("%w: %w", manufacturers.ErrInvalid, errs)
	}
	m.Name, m.Country = cmd.Name, cmd.Country
	return m, nil
}

func (f *fakeSystem) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.deleted = append(f.deleted, id)
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return manufacturers.ErrNotFound
}

func (f *fakeSystem) Count(context.Context) (int, error) {
	return len(f.items), f.err
}
