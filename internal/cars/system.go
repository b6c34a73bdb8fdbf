// Package cars manages cars, their manufacturer, and the drivers assigned
// to them.
package cars

import (
	"context"

	"github.com/JaimeStill/taxi-service/pkg/pagination"
	"github.com/google/uuid"
)

// System defines car persistence and driver assignment.
type System interface {
	// All returns every car matching filters in insertion order. Drivers
	// are not loaded.
	All(ctx context.Context, filters Filters) ([]Car, error)

	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Car], error)

	// Find returns the car with its drivers, or ErrNotFound.
	Find(ctx context.Context, id uuid.UUID) (*Car, error)

	// Create returns ErrManufacturerNotFound or ErrDriverNotFound when a
	// referenced record does not exist.
	Create(ctx context.Context, cmd Command) (*Car, error)

	// Update replaces the model, manufacturer, and driver set.
	Update(ctx context.Context, id uuid.UUID, cmd Command) (*Car, error)

	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int, error)

	// ToggleAssign adds the driver to the car, or removes them if already
	// assigned, and reports whether the driver is now assigned.
	ToggleAssign(ctx context.Context, carID, driverID uuid.UUID) (bool, error)
}
