package api

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/taxi-service/pkg/handlers"
	"github.com/JaimeStill/taxi-service/pkg/routes"
)

var errNotFound = errors.New("endpoint not found")

type endpoint struct {
	Group       string   `json:"group"`
	Description string   `json:"description"`
	Patterns    []string `json:"patterns"`
}

func registerRoutes(mux *http.ServeMux, runtime *Runtime, groups []routes.Group) {
	routes.Register(mux, groups...)

	index := make([]endpoint, len(groups))
	for i, g := range groups {
		index[i] = endpoint{
			Group:       g.Prefix,
			Description: g.Description,
			Patterns:    g.Patterns(),
		}
	}

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, index)
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondError(w, runtime.Logger, http.StatusNotFound, errNotFound)
	})
}
