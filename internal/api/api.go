// Package api assembles the read-only JSON API module served under /api.
package api

import (
	"net/http"

	"github.com/JaimeStill/taxi-service/internal/config"
	"github.com/JaimeStill/taxi-service/internal/infrastructure"
	"github.com/JaimeStill/taxi-service/pkg/middleware"
	"github.com/JaimeStill/taxi-service/pkg/module"
	"github.com/JaimeStill/taxi-service/pkg/routes"
)

// BasePath is the mount point of the API module.
const BasePath = "/api"

// Handler is a domain API handler contributing a route group.
type Handler interface {
	Routes() routes.Group
}

// NewModule creates the API module. Every route requires a session; failures
// are answered with 401 JSON rather than a redirect.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure, handlers ...Handler) *module.Module {
	runtime := NewRuntime(cfg, infra)

	groups := make([]routes.Group, len(handlers))
	for i, h := range handlers {
		groups[i] = h.Routes()
	}

	mux := http.NewServeMux()
	registerRoutes(mux, runtime, groups)

	m := module.New(BasePath, mux)
	m.Use(middleware.TrimSlash())
	m.Use(middleware.CORS(&cfg.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(runtime.Sessions.RequireAPI(runtime.Logger))

	return m
}
