// Package manufacturers manages car manufacturers: persistence, HTML views,
// and the read-only JSON API.
package manufacturers

import (
	"context"

	"github.com/JaimeStill/taxi-service/pkg/pagination"
	"github.com/google/uuid"
)

// System defines manufacturer persistence.
type System interface {
	// All returns every manufacturer matching filters, ordered by name.
	All(ctx context.Context, filters Filters) ([]Manufacturer, error)

	// List returns a page of manufacturers.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Manufacturer], error)

	// Find returns ErrNotFound if the manufacturer does not exist.
	Find(ctx context.Context, id uuid.UUID) (*Manufacturer, error)

	// Create returns ErrInvalid for invalid input and ErrDuplicate when the
	// name is taken.
	Create(ctx context.Context, cmd Command) (*Manufacturer, error)

	Update(ctx context.Context, id uuid.UUID, cmd Command) (*Manufacturer, error)

	// Delete removes the manufacturer and, by cascade, its cars.
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int, error)
}
