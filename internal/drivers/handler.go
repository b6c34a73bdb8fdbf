package drivers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/taxi-service/internal/views"
	"github.com/JaimeStill/taxi-service/pkg/form"
	"github.com/JaimeStill/taxi-service/pkg/web"
	"github.com/google/uuid"
)

// BasePath is the mount point of the driver pages.
const BasePath = "/drivers"

// View templates rendered by Handler.
const (
	ListView          = "driver_list.html"
	DetailView        = "driver_detail.html"
	FormView          = "driver_form.html"
	LicenseFormView   = "driver_license_form.html"
	ConfirmDeleteView = "driver_confirm_delete.html"
)

// ListKey is the context key holding the driver collection.
const ListKey = "driver_list"

// Handler serves the driver pages.
type Handler struct {
	sys    System
	views  *views.Views
	logger *slog.Logger
}

func NewHandler(sys System, v *views.Views, logger *slog.Logger) *Handler {
	return &Handler{sys: sys, views: v, logger: logger}
}

// Router returns the page routes relative to BasePath.
func (h *Handler) Router() http.Handler {
	r := web.NewRouter()
	r.HandleFunc("GET /{$}", h.List)
	r.HandleFunc("GET /create/{$}", h.CreateForm)
	r.HandleFunc("POST /create/{$}", h.Create)
	r.HandleFunc("GET /{id}/{$}", h.Detail)
	r.HandleFunc("GET /{id}/update/{$}", h.UpdateForm)
	r.HandleFunc("POST /{id}/update/{$}", h.Update)
	r.HandleFunc("GET /{id}/delete/{$}", h.ConfirmDelete)
	r.HandleFunc("POST /{id}/delete/{$}", h.Delete)
	r.SetFallback(h.views.NotFound)
	return r
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filters := FiltersFromQuery(r.URL.Query())

	items, err := h.sys.All(r.Context(), filters)
	if err != nil {
		h.views.Error(w, r, MapHTTPStatus(err), err)
		return
	}

	h.views.Render(w, r, http.StatusOK, ListView, web.Context{
		ListKey:  items,
		"search": r.URL.Query().Get("search"),
	})
}

func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	d, ok := h.find(w, r)
	if !ok {
		return
	}

	cars, err := h.sys.Cars(r.Context(), d.ID)
	if err != nil {
		h.views.Error(w, r, http.StatusInternalServerError, err)
		return
	}

	h.views.Render(w, r, http.StatusOK, DetailView, web.Context{
		"driver": d,
		"cars":   cars,
	})
}

func (h *Handler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.renderCreate(w, r, http.StatusOK, CreateCommand{}, nil)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.views.Error(w, r, http.StatusBadRequest, err)
		return
	}
	cmd := CreateCommandFromForm(form.Values(r.PostForm))

	if _, err := h.sys.Create(r.Context(), cmd); err != nil {
		if errs, ok := formErrors(err); ok {
			h.renderCreate(w, r, http.StatusUnprocessableEntity, cmd, errs)
			return
		}
		h.views.Error(w, r, MapHTTPStatus(err), err)
		return
	}
	h.views.Redirect(w, r, BasePath+"/")
}

func (h *Handler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	d, ok := h.find(w, r)
	if !ok {
		return
	}
	h.renderLicense(w, r, http.StatusOK, d, LicenseCommand{LicenseNumber: d.LicenseNumber}, nil)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	d, ok := h.find(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.views.Error(w, r, http.StatusBadRequest, err)
		return
	}
	cmd := LicenseCommandFromForm(form.Values(r.PostForm))

	if _, err := h.sys.UpdateLicense(r.Context(), d.ID, cmd); err != nil {
		if errs, ok := formErrors(err); ok {
			h.renderLicense(w, r, http.StatusUnprocessableEntity, d, cmd, errs)
			return
		}
		h.views.Error(w, r, MapHTTPStatus(err), err)
		return
	}
	h.views.Redirect(w, r, BasePath+"/"+d.ID.String()+"/")
}

func (h *Handler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	d, ok := h.find(w, r)
	if !ok {
		return
	}
	h.views.Render(w, r, http.StatusOK, ConfirmDeleteView, web.Context{"driver": d})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.views.NotFound(w, r)
		return
	}
	if err := h.sys.Delete(r.Context(), id); err != nil {
		h.views.Error(w, r, MapHTTPStatus(err), err)
		return
	}
	h.views.Redirect(w, r, BasePath+"/")
}

func (h *Handler) find(w http.ResponseWriter, r *http.Request) (*Driver, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.views.NotFound(w, r)
		return nil, false
	}
	d, err := h.sys.Find(r.Context(), id)
	if err != nil {
		h.views.Error(w, r, MapHTTPStatus(err), err)
		return nil, false
	}
	return d, true
}

func (h *Handler) renderCreate(w http.ResponseWriter, r *http.Request, status int, cmd CreateCommand, errs form.Errors) {
	h.views.Render(w, r, status, FormView, web.Context{
		"form":   cmd,
		"errors": errs,
	})
}

func (h *Handler) renderLicense(w http.ResponseWriter, r *http.Request, status int, d *Driver, cmd LicenseCommand, errs form.Errors) {
	h.views.Render(w, r, status, LicenseFormView, web.Context{
		"driver": d,
		"form":   cmd,
		"errors": errs,
	})
}

// formErrors turns validation and uniqueness failures into field errors.
func formErrors(err error) (form.Errors, bool) {
	if errs, ok := form.As(err); ok {
		return errs, true
	}
	switch {
	case errors.Is(err, ErrDuplicateUsername):
		return form.Errors{"username": "A user with that username already exists."}, true
	case errors.Is(err, ErrDuplicateLicense):
		return form.Errors{"license_number": "Driver with this license number already exists."}, true
	}
	return nil, false
}
