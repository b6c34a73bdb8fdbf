package cars

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/taxi-service/internal/drivers"
	"github.com/JaimeStill/taxi-service/internal/manufacturers"
	"github.com/JaimeStill/taxi-service/internal/session"
	"github.com/JaimeStill/taxi-service/internal/views"
	"github.com/JaimeStill/taxi-service/pkg/form"
	"github.com/JaimeStill/taxi-service/pkg/web"
	"github.com/google/uuid"
)

// BasePath is the mount point of the car pages.
const BasePath = "/cars"

// View templates rendered by Handler.
const (
	ListView          = "car_list.html"
	DetailView        = "car_detail.html"
	FormView          = "car_form.html"
	ConfirmDeleteView = "car_confirm_delete.html"
)

// ListKey is the context key holding the car collection.
const ListKey = "car_list"

// Handler serves the car pages. Manufacturers and drivers populate the
// form choices.
type Handler struct {
	sys           System
	manufacturers manufacturers.System
	drivers       drivers.System
	views         *views.Views
	logger        *slog.Logger
}

func NewHandler(sys System, mfrs manufacturers.System, drvs drivers.System, v *views.Views, logger *slog.Logger) *Handler {
	return &Handler{
		sys:           sys,
		manufacturers: mfrs,
		drivers:       drvs,
		views:         v,
		logger:        logger,
	}
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
	r.HandleFunc("POST /{id}/toggle-assign/{$}", h.ToggleAssign)
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
	c, ok := h.find(w, r)
	if !ok {
		return
	}

	assigned := false
	if u := session.Current(r); u != nil {
		assigned = c.HasDriver(u.ID)
	}

	h.views.Render(w, r, http.StatusOK, DetailView, web.Context{
		"car":      c,
		"assigned": assigned,
	})
}

func (h *Handler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, nil, Command{}, nil)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.views.Error(w, r, http.StatusBadRequest, err)
		return
	}
	cmd := CommandFromForm(form.Values(r.PostForm))

	if _, err := h.sys.Create(r.Context(), cmd); err != nil {
		h.formError(w, r, nil, cmd, err)
		return
	}
	h.views.Redirect(w, r, BasePath+"/")
}

func (h *Handler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	c, ok := h.find(w, r)
	if !ok {
		return
	}

	cmd := Command{Model: c.Model, ManufacturerID: c.ManufacturerID}
	for _, d := range c.Drivers {
		cmd.DriverIDs = append(cmd.DriverIDs, d.ID)
	}
	h.renderForm(w, r, http.StatusOK, c, cmd, nil)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	c, ok := h.find(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.views.Error(w, r, http.StatusBadRequest, err)
		return
	}
	cmd := CommandFromForm(form.Values(r.PostForm))

	if _, err := h.sys.Update(r.Context(), c.ID, cmd); err != nil {
		h.formError(w, r, c, cmd, err)
		return
	}
	h.views.Redirect(w, r, BasePath+"/"+c.ID.String()+"/")
}

func (h *Handler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	c, ok := h.find(w, r)
	if !ok {
		return
	}
	h.views.Render(w, r, http.StatusOK, ConfirmDeleteView, web.Context{"car": c})
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

// ToggleAssign assigns the signed-in driver to the car or removes them.
func (h *Handler) ToggleAssign(w http.ResponseWriter, r *http.Request) {
	u := session.Current(r)
	if u == nil {
		h.views.Error(w, r, http.StatusForbidden, session.ErrNoSession)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.views.NotFound(w, r)
		return
	}

	if _, err := h.sys.ToggleAssign(r.Context(), id, u.ID); err != nil {
		h.views.Error(w, r, MapHTTPStatus(err), err)
		return
	}
	h.views.Redirect(w, r, BasePath+"/"+id.String()+"/")
}

func (h *Handler) find(w http.ResponseWriter, r *http.Request) (*Car, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.views.NotFound(w, r)
		return nil, false
	}
	c, err := h.sys.Find(r.Context(), id)
	if err != nil {
		h.views.Error(w, r, MapHTTPStatus(err), err)
		return nil, false
	}
	return c, true
}

func (h *Handler) formError(w http.ResponseWriter, r *http.Request, c *Car, cmd Command, err error) {
	if errs, ok := form.As(err); ok {
		h.renderForm(w, r, http.StatusUnprocessableEntity, c, cmd, errs)
		return
	}
	switch {
	case errors.Is(err, ErrManufacturerNotFound):
		h.renderForm(w, r, http.StatusUnprocessableEntity, c, cmd, form.Errors{"manufacturer": "Select a valid choice."})
	case errors.Is(err, ErrDriverNotFound):
		h.renderForm(w, r, http.StatusUnprocessableEntity, c, cmd, form.Errors{"drivers": "Select a valid choice."})
	default:
		h.views.Error(w, r, MapHTTPStatus(err), err)
	}
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, status int, c *Car, cmd Command, errs form.Errors) {
	mfrs, err := h.manufacturers.All(r.Context(), manufacturers.Filters{})
	if err != nil {
		h.views.Error(w, r, http.StatusInternalServerError, fmt.Errorf("load manufacturers: %w", err))
		return
	}
	drvs, err := h.drivers.All(r.Context(), drivers.Filters{})
	if err != nil {
		h.views.Error(w, r, http.StatusInternalServerError, fmt.Errorf("load drivers: %w", err))
		return
	}

	h.views.Render(w, r, status, FormView, web.Context{
		"car":           c,
		"form":          cmd,
		"errors":        errs,
		"manufacturers": mfrs,
		"drivers":       drvs,
	})
}
