package manufacturers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/taxi-service/internal/views"
	"github.com/JaimeStill/taxi-service/pkg/form"
	"github.com/JaimeStill/taxi-service/pkg/web"
	"github.com/google/uuid"
)

// BasePath is the mount point of the manufacturer pages.
const BasePath = "/manufacturers"

// View templates rendered by Handler.
const (
	ListView          = "manufacturer_list.html"
	FormView          = "manufacturer_form.html"
	ConfirmDeleteView = "manufacturer_confirm_delete.html"
)

// ListKey is the context key holding the manufacturer collection.
const ListKey = "manufacturer_list"

// Handler serves the manufacturer pages.
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
	m, ok := h.find(w, r)
	if !ok {
		return
	}
	h.renderForm(w, r, http.StatusOK, m, Command{Name: m.Name, Country: m.Country}, nil)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	m, ok := h.find(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.views.Error(w, r, http.StatusBadRequest, err)
		return
	}
	cmd := CommandFromForm(form.Values(r.PostForm))

	if _, err := h.sys.Update(r.Context(), m.ID, cmd); err != nil {
		h.formError(w, r, m, cmd, err)
		return
	}
	h.views.Redirect(w, r, BasePath+"/")
}

func (h *Handler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	m, ok := h.find(w, r)
	if !ok {
		return
	}
	h.views.Render(w, r, http.StatusOK, ConfirmDeleteView, web.Context{"manufacturer": m})
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

func (h *Handler) find(w http.ResponseWriter, r *http.Request) (*Manufacturer, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.views.NotFound(w, r)
		return nil, false
	}
	m, err := h.sys.Find(r.Context(), id)
	if err != nil {
		h.views.Error(w, r, MapHTTPStatus(err), err)
		return nil, false
	}
	return m, true
}

func (h *Handler) formError(w http.ResponseWriter, r *http.Request, m *Manufacturer, cmd Command, err error) {
	if errs, ok := form.As(err); ok {
		h.renderForm(w, r, http.StatusUnprocessableEntity, m, cmd, errs)
		return
	}
	if errors.Is(err, ErrDuplicate) {
		h.renderForm(w, r, http.StatusUnprocessableEntity, m, cmd, form.Errors{
			"name": "Manufacturer with this name already exists.",
		})
		return
	}
	h.views.Error(w, r, MapHTTPStatus(err), err)
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, status int, m *Manufacturer, cmd Command, errs form.Errors) {
	h.views.Render(w, r, status, FormView, web.Context{
		"manufacturer": m,
		"form":         cmd,
		"errors":       errs,
	})
}
