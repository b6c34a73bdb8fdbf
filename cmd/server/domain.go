package main

import (
	"context"
	"errors"

	"github.com/JaimeStill/taxi-service/internal/cars"
	"github.com/JaimeStill/taxi-service/internal/drivers"
	"github.com/JaimeStill/taxi-service/internal/infrastructure"
	"github.com/JaimeStill/taxi-service/internal/manufacturers"
	"github.com/JaimeStill/taxi-service/internal/session"
	"github.com/JaimeStill/taxi-service/pkg/pagination"
	"github.com/google/uuid"
)

// Domain holds the entity systems shared by the HTML and API modules.
type Domain struct {
	Manufacturers manufacturers.System
	Drivers       drivers.System
	Cars          cars.System
}

func NewDomain(infra *infrastructure.Infrastructure, pg pagination.Config) *Domain {
	db := infra.Database.Connection()
	return &Domain{
		Manufacturers: manufacturers.New(db, infra.Logger, pg),
		Drivers:       drivers.New(db, infra.Logger, pg),
		Cars:          cars.New(db, infra.Logger, pg),
	}
}

// driverLookup checks session users against the drivers table so a deleted
// driver's cookie stops authenticating.
func driverLookup(sys drivers.System) session.Lookup {
	return func(ctx context.Context, id uuid.UUID) error {
		_, err := sys.Find(ctx, id)
		if errors.Is(err, drivers.ErrNotFound) {
			return session.ErrUnknownUser
		}
		return err
	}
}
