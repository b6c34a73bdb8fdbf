// Package drivers manages drivers, who are also the accounts that sign in
// to the service.
package drivers

import (
	"context"

	"github.com/JaimeStill/taxi-service/pkg/pagination"
	"github.com/google/uuid"
)

// System defines driver persistence and credential checks.
type System interface {
	// All returns every driver matching filters in insertion order.
	All(ctx context.Context, filters Filters) ([]Driver, error)

	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Driver], error)

	// Find returns ErrNotFound if the driver does not exist.
	Find(ctx context.Context, id uuid.UUID) (*Driver, error)

	// Cars returns the cars assigned to the driver.
	Cars(ctx context.Context, id uuid.UUID) ([]Car, error)

	// Create hashes the password and stores the driver. It returns
	// ErrDuplicateUsername or ErrDuplicateLicense on conflicts.
	Create(ctx context.Context, cmd CreateCommand) (*Driver, error)

	// UpdateLicense changes only the license number.
	UpdateLicense(ctx context.Context, id uuid.UUID, cmd LicenseCommand) (*Driver, error)

	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int, error)

	// Authenticate returns the driver whose credentials match, recording
	// the login time. Unknown users and wrong passwords both yield
	// ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*Driver, error)
}
