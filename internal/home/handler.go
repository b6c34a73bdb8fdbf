// Package home serves the index page with record counts.
package home

import (
	"context"
	"fmt"
	"net/http"

	"github.com/JaimeStill/taxi-service/internal/views"
	"github.com/JaimeStill/taxi-service/pkg/web"
)

// IndexView is the home page template.
const IndexView = "index.html"

// Counter reports the number of stored records.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// Handler serves the home page.
type Handler struct {
	drivers       Counter
	cars          Counter
	manufacturers Counter
	views         *views.Views
}

func NewHandler(drivers, cars, manufacturers Counter, v *views.Views) *Handler {
	return &Handler{
		drivers:       drivers,
		cars:          cars,
		manufacturers: manufacturers,
		views:         v,
	}
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data := web.Context{}
	counts := []struct {
		key string
		c   Counter
	}{
		{"num_drivers", h.drivers},
		{"num_cars", h.cars},
		{"num_manufacturers", h.manufacturers},
	}

	for _, entry := range counts {
		n, err := entry.c.Count(r.Context())
		if err != nil {
			h.views.Error(w, r, http.StatusInternalServerError, fmt.Errorf("%s: %w", entry.key, err))
			return
		}
		data[entry.key] = n
	}

	h.views.Render(w, r, http.StatusOK, IndexView, data)
}
