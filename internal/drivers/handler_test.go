package drivers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/JaimeStill/taxi-service/internal/drivers"
	"github.com/JaimeStill/taxi-service/internal/views"
	"github.com/JaimeStill/taxi-service/internal/views/viewstest"
	"github.com/JaimeStill/taxi-service/pkg/form"
	"github.com/google/uuid"
)

var (
	driver1 = drivers.Driver{ID: uuid.MustParse("01920000-0000-7000-8000-0000000000d1"), Username: "driver1", LicenseNumber: "ABC12345"}
	driver2 = drivers.Driver{ID: uuid.MustParse("01920000-0000-7000-8000-0000000000d2"), Username: "driver2", LicenseNumber: "NBH56487"}
)

func newHandler(sys drivers.System) (http.Handler, *viewstest.Recorder) {
	v, rec := viewstest.New()
	return drivers.NewHandler(sys, v, viewstest.Logger()).Router(), rec
}

func validCreate() url.Values {
	return url.Values{
		"username":       {"driver3"},
		"password1":      {"s3cret-pass"},
		"password2":      {"s3cret-pass"},
		"first_name":     {"Jane"},
		"last_name":      {"Doe"},
		"email":          {"jane@example.com"},
		"license_number": {"XYZ98765"},
	}
}

func TestListRendersDriversInStoreOrder(t *testing.T) {
	sys := &fakeSystem{items: []drivers.Driver{driver1, driver2}}
	h, rec := newHandler(sys)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, viewstest.Get("/"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	call := rec.Last()
	if call.View != drivers.ListView {
		t.Errorf("view = %q, want %q", call.View, drivers.ListView)
	}

	list, _ := call.Data.Data[drivers.ListKey].([]drivers.Driver)
	if len(list) != 2 || list[0].ID != driver1.ID || list[1].ID != driver2.ID {
		t.Errorf("list = %+v", list)
	}
}

func TestDetail(t *testing.T) {
	sys := &fakeSystem{
		items: []drivers.Driver{driver1},
		cars:  []drivers.Car{{ID: uuid.New(), Model: "Corolla", Manufacturer: "Toyota"}},
	}
	h, rec := newHandler(sys)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, viewstest.Get("/"+driver1.ID.String()+"/"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	call := rec.Last()
	if call.View != drivers.DetailView {
		t.Errorf("view = %q", call.View)
	}
	if cars, _ := call.Data.Data["cars"].([]drivers.Car); len(cars) != 1 {
		t.Errorf("cars = %v", call.Data.Data["cars"])
	}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(url.Values)
		err        error
		wantStatus int
		wantField  string
	}{
		{"valid", func(url.Values) {}, nil, http.StatusFound, ""},
		{"bad license", func(v url.Values) { v.Set("license_number", "abc12345") }, nil, http.StatusUnprocessableEntity, "license_number"},
		{"password mismatch", func(v url.Values) { v.Set("password2", "other-pass") }, nil, http.StatusUnprocessableEntity, "password2"},
		{"missing username", func(v url.Values) { v.Del("username") }, nil, http.StatusUnprocessableEntity, "username"},
		{"duplicate username", func(url.Values) {}, drivers.ErrDuplicateUsername, http.StatusUnprocessableEntity, "username"},
		{"duplicate license", func(url.Values) {}, drivers.ErrDuplicateLicense, http.StatusUnprocessableEntity, "license_number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := &fakeSystem{err: tt.err}
			h, rec := newHandler(sys)

			values := validCreate()
			tt.mutate(values)

			w := httptest.NewRecorder()
			h.ServeHTTP(w, viewstest.Post("/create/", values))

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantField == "" {
				if loc := w.Header().Get("Location"); loc != "/drivers/" {
					t.Errorf("Location = %q", loc)
				}
				return
			}

			call := rec.Last()
			if call.View != drivers.FormView {
				t.Errorf("view = %q", call.View)
			}
			errs, _ := call.Data.Data["errors"].(form.Errors)
			if errs.Get(tt.wantField) == "" {
				t.Errorf("errors = %v, want entry for %s", errs, tt.wantField)
			}
		})
	}
}

func TestUpdateLicense(t *testing.T) {
	tests := []struct {
		name       string
		license    string
		wantStatus int
		want       string
	}{
		{"valid", "QWE11111", http.StatusFound, "QWE11111"},
		{"invalid", "QWE1111", http.StatusUnprocessableEntity, "ABC12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := &fakeSystem{items: []drivers.Driver{driver1}}
			h, rec := newHandler(sys)

			w := httptest.NewRecorder()
			h.ServeHTTP(w, viewstest.Post("/"+driver1.ID.String()+"/update/", url.Values{"license_number": {tt.license}}))

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if sys.items[0].LicenseNumber != tt.want {
				t.Errorf("LicenseNumber = %q, want %q", sys.items[0].LicenseNumber, tt.want)
			}
			if tt.wantStatus == http.StatusUnprocessableEntity && rec.Last().View != drivers.LicenseFormView {
				t.Errorf("view = %q", rec.Last().View)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	sys := &fakeSystem{items: []drivers.Driver{driver1, driver2}}
	h, _ := newHandler(sys)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, viewstest.Post("/"+driver2.ID.String()+"/delete/", nil))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if len(sys.items) != 1 || sys.items[0].ID != driver1.ID {
		t.Errorf("items = %+v", sys.items)
	}
}

func TestNotFound(t *testing.T) {
	h, rec := newHandler(&fakeSystem{})

	for _, p := range []string{"/" + uuid.NewString() + "/", "/bogus/", "/bogus/update/"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, viewstest.Get(p))

		if w.Code != http.StatusNotFound || rec.Last().View != views.NotFoundView {
			t.Errorf("GET %s: status %d view %q", p, w.Code, rec.Last().View)
		}
	}
}
