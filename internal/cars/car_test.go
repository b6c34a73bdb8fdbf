package cars_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/JaimeStill/taxi-service/internal/cars"
	"github.com/JaimeStill/taxi-service/pkg/form"
	"github.com/google/uuid"
)

func TestCommandFromForm(t *testing.T) {
	m := uuid.New()
	d := uuid.New()

	cmd := cars.CommandFromForm(form.Values(url.Values{
		"model":        {" Corolla "},
		"manufacturer": {m.String()},
		"drivers":      {d.String(), d.String(), "junk"},
	}))

	if cmd.Model != "Corolla" || cmd.ManufacturerID != m {
		t.Errorf("cmd = %+v", cmd)
	}
	if len(cmd.DriverIDs) != 2 || cmd.DriverIDs[0] != d || cmd.DriverIDs[1] != uuid.Nil {
		t.Errorf("DriverIDs = %v", cmd.DriverIDs)
	}
	if errs := cmd.Validate(); errs.Get("drivers") == "" {
		t.Errorf("Validate() = %v, want drivers error", errs)
	}
}

func TestCommandValidate(t *testing.T) {
	valid := cars.Command{Model: "Corolla", ManufacturerID: uuid.New()}
	if errs := valid.Validate(); errs != nil {
		t.Errorf("Validate() = %v, want nil", errs)
	}

	errs := cars.Command{}.Validate()
	if errs.Get("model") == "" || errs.Get("manufacturer") == "" {
		t.Errorf("Validate() = %v", errs)
	}
}

func TestFiltersFromQuery(t *testing.T) {
	id := uuid.New()
	f := cars.FiltersFromQuery(url.Values{"search": {"cor"}, "manufacturer": {id.String()}})
	if f.Search == nil || *f.Search != "cor" || f.ManufacturerID == nil || *f.ManufacturerID != id {
		t.Errorf("FiltersFromQuery() = %+v", f)
	}

	f = cars.FiltersFromQuery(url.Values{"manufacturer": {"bad"}})
	if f.ManufacturerID != nil {
		t.Errorf("ManufacturerID = %v, want nil", f.ManufacturerID)
	}
}

func TestHasDriver(t *testing.T) {
	d := uuid.New()
	c := cars.Car{Drivers: []cars.Driver{{ID: d}}}
	if !c.HasDriver(d) || c.HasDriver(uuid.New()) {
		t.Error("HasDriver() mismatch")
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{cars.ErrNotFound, http.StatusNotFound},
		{cars.ErrManufacturerNotFound, http.StatusBadRequest},
		{cars.ErrDriverNotFound, http.StatusBadRequest},
		{cars.ErrInvalid, http.StatusBadRequest},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := cars.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
