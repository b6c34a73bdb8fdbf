package cars

import (
	"net/url"

	"github.com/JaimeStill/taxi-service/pkg/query"
	"github.com/JaimeStill/taxi-service/pkg/repository"
	"github.com/google/uuid"
)

var projection = query.NewProjectionMap("public", "cars", "c").
	Join("JOIN public.manufacturers m ON m.id = c.manufacturer_id").
	Project("id", "id").
	Project("model", "model").
	Project("manufacturer_id", "manufacturer_id").
	ProjectExpr("m.name", "manufacturer").
	Project("created_at", "created_at").
	Project("updated_at", "updated_at")

// UUIDv7 ids sort in insertion order.
var defaultSort = query.SortField{Field: "id"}

func scanCar(s repository.Scanner) (Car, error) {
	var c Car
	err := s.Scan(&c.ID, &c.Model, &c.ManufacturerID, &c.Manufacturer, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func scanDriver(s repository.Scanner) (Driver, error) {
	var d Driver
	err := s.Scan(&d.ID, &d.Username, &d.FirstName, &d.LastName, &d.LicenseNumber)
	return d, err
}

// Filters narrows car listings.
type Filters struct {
	Search         *string
	ManufacturerID *uuid.UUID
}

func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	if s := values.Get("search"); s != "" {
		f.Search = &s
	}
	if id, err := uuid.Parse(values.Get("manufacturer")); err == nil {
		f.ManufacturerID = &id
	}
	return f
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	b = b.WhereSearch(f.Search, "model")
	if f.ManufacturerID != nil {
		b = b.WhereEquals("manufacturer_id", *f.ManufacturerID)
	}
	return b
}
