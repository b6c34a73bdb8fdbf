package drivers

import (
	"net/url"

	"github.com/JaimeStill/taxi-service/pkg/query"
	"github.com/JaimeStill/taxi-service/pkg/repository"
)

var projection = query.NewProjectionMap("public", "drivers", "d").
	Project("id", "id").
	Project("username", "username").
	Project("first_name", "first_name").
	Project("last_name", "last_name").
	Project("email", "email").
	Project("license_number", "license_number").
	Project("last_login", "last_login").
	Project("created_at", "created_at").
	Project("updated_at", "updated_at")

// UUIDv7 ids sort in insertion order.
var defaultSort = query.SortField{Field: "id"}

const returning = `RETURNING id, username, first_name, last_name, email, license_number, last_login, created_at, updated_at`

func scanDriver(s repository.Scanner) (Driver, error) {
	var d Driver
	err := s.Scan(
		&d.ID, &d.Username, &d.FirstName, &d.LastName, &d.Email,
		&d.LicenseNumber, &d.LastLogin, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

func scanCar(s repository.Scanner) (Car, error) {
	var c Car
	err := s.Scan(&c.ID, &c.Model, &c.Manufacturer)
	return c, err
}

// Filters narrows driver listings.
type Filters struct {
	Search *string
}

func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	if s := values.Get("search"); s != "" {
		f.Search = &s
	}
	return f
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereSearch(f.Search, "username")
}
