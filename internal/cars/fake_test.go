package cars_test

import (
	"context"
	"fmt"

	"github.com/JaimeStill/taxi-service/internal/cars"
	"github.com/JaimeStill/taxi-service/internal/drivers"
	"github.com/JaimeStill/taxi-service/internal/manufacturers"
	"github.com/JaimeStill/taxi-service/pkg/pagination"
	"github.com/google/uuid"
)

type fakeSystem struct {
	items   []cars.Car
	toggled []uuid.UUID
	err     error
}

func (f *fakeSystem) All(context.Context, cars.Filters) ([]cars.Car, error) {
	return f.items, f.err
}

func (f *fakeSystem) List(_ context.Context, page pagination.PageRequest, _ cars.Filters) (*pagination.PageResult[cars.Car], error) {
	result := pagination.NewPageResult(f.items, len(f.items), page.Page, page.PageSize)
	return &result, f.err
}

func (f *fakeSystem) Find(_ context.Context, id uuid.UUID) (*cars.Car, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, cars.ErrNotFound
}

func (f *fakeSystem) Create(_ context.Context, cmd cars.Command) (*cars.Car, error) {
	if errs := cmd.Validate(); errs != nil {
		return nil, fmt.Errorf("%w: %w", cars.ErrInvalid, errs)
	}
	if f.err != nil {
		return nil, f.err
	}
	c := cars.Car{ID: uuid.New(), Model: cmd.Model, ManufacturerID: cmd.ManufacturerID}
	f.items = append(f.items, c)
	return &c, nil
}

func (f *fakeSystem) Update(ctx context.Context, id uuid.UUID, cmd cars.Command) (*cars.Car, error) {
	c, err := f.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if errs := cmd.Validate(); errs != nil {
		return nil, fmt.Errorf("%w: %w", cars.ErrInvalid, errs)
	}
	c.Model, c.ManufacturerID = cmd.Model, cmd.ManufacturerID
	return c, nil
}

func (f *fakeSystem) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := f.Find(ctx, id)
	return err
}

func (f *fakeSystem) Count(context.Context) (int, error) {
	return len(f.items), nil
}

func (f *fakeSystem) ToggleAssign(ctx context.Context, carID, driverID uuid.UUID) (bool, error) {
	if _, err := f.Find(ctx, carID); err != nil {
		return false, err
	}
	f.toggled = append(f.toggled, driverID)
	return true, nil
}

// Only All is used to populate form choices.
type fakeManufacturers struct {
	manufacturers.System
	items []manufacturers.Manufacturer
}

func (f *fakeManufacturers) All(context.Context, manufacturers.Filters) ([]manufacturers.Manufacturer, error) {
	return f.items, nil
}

type fakeDrivers struct {
	drivers.System
	items []drivers.Driver
}

func (f *fakeDrivers) All(context.Context, drivers.Filters) ([]drivers.Driver, error) {
	return f.items, nil
}
