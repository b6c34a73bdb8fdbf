package manufacturers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/taxi-service/pkg/handlers"
	"github.com/JaimeStill/taxi-service/pkg/pagination"
	"github.com/JaimeStill/taxi-service/pkg/routes"
	"github.com/google/uuid"
)

// APIHandler serves the read-only JSON API.
type APIHandler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

func NewAPIHandler(sys System, logger *slog.Logger, pagination pagination.Config) *APIHandler {
	return &APIHandler{sys: sys, logger: logger, pagination: pagination}
}

func (h *APIHandler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/manufacturers",
		Description: "Car manufacturers",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
		},
	}
}

func (h *APIHandler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *APIHandler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusNotFound, errors.New("invalid manufacturer id"))
		return
	}

	result, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
