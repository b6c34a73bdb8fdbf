package drivers_test

import (
	"context"
	"fmt"

	"github.com/JaimeStill/taxi-service/internal/drivers"
	"github.com/JaimeStill/taxi-service/pkg/pagination"
	"github.com/google/uuid"
)

type fakeSystem struct {
	items   []drivers.Driver
	cars    []drivers.Car
	created []drivers.CreateCommand
	deleted []uuid.UUID
	err     error
}

func (f *fakeSystem) All(context.Context, drivers.Filters) ([]drivers.Driver, error) {
	return f.items, f.err
}

func (f *fakeSystem) List(_ context.Context, page pagination.PageRequest, _ drivers.Filters) (*pagination.PageResult[drivers.Driver], error) {
	if f.err != nil {
		return nil, f.err
	}
	result := pagination.NewPageResult(f.items, len(f.items), page.Page, page.PageSize)
	return &result, nil
}

func (f *fakeSystem) Find(_ context.Context, id uuid.UUID) (*drivers.Driver, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, drivers.ErrNotFound
}

func (f *fakeSystem) Cars(context.Context, uuid.UUID) ([]drivers.Car, error) {
	return f.cars, nil
}

func (f *fakeSystem) Create(_ context.Context, cmd drivers.CreateCommand) (*drivers.Driver, error) {
	if errs := cmd.Validate(); errs != nil {
		return nil, fmt.Errorf("%w: %w", drivers.ErrInvalid, errs)
	}
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, cmd)
	d := drivers.Driver{ID: uuid.New(), Username: cmd.Username, LicenseNumber: cmd.LicenseNumber}
	f.items = append(f.items, d)
	return &d, nil
}

func (f *fakeSystem) UpdateLicense(ctx context.Context, id uuid.UUID, cmd drivers.LicenseCommand) (*drivers.Driver, error) {
	d, err := f.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if errs := cmd.Validate(); errs != nil {
		return nil, fmt.Errorf("%w: %w", drivers.ErrInvalidLicense, errs)
	}
	if f.err != nil {
		return nil, f.err
	}
	d.LicenseNumber = cmd.LicenseNumber
	return d, nil
}

func (f *fakeSystem) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.deleted = append(f.deleted, id)
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return drivers.ErrNotFound
}

func (f *fakeSystem) Count(context.Context) (int, error) {
	return len(f.items), f.err
}

func (f *fakeSystem) Authenticate(context.Context, string, string) (*drivers.Driver, error) {
	return nil, drivers.ErrInvalidCredentials
}
