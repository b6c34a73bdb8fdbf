package manufacturers

import (
	"net/url"

	"github.com/JaimeStill/taxi-service/pkg/query"
	"github.com/JaimeStill/taxi-service/pkg/repository"
)

var projection = query.NewProjectionMap("public", "manufacturers", "m").
	Project("id", "id").
	Project("name", "name").
	Project("country", "country").
	Project("created_at", "created_at").
	Project("updated_at", "updated_at")

var defaultSort = query.SortField{Field: "name"}

func scanManufacturer(s repository.Scanner) (Manufacturer, error) {
	var m Manufacturer
	err := s.Scan(&m.ID, &m.Name, &m.Country, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// Filters narrows manufacturer listings.
type Filters struct {
	Search  *string
	Country *string
}

func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	if s := values.Get("search"); s != "" {
		f.Search = &s
	}
	if c := values.Get("country"); c != "" {
		f.Country = &c
	}
	return f
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereSearch(f.Search, "name").
		WhereContains("country", f.Country)
}
