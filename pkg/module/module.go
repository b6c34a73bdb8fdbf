// Package module mounts self-contained HTTP handlers under single-segment
// path prefixes. Each module owns its middleware and sees request paths
// relative to its prefix.
package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/taxi-service/pkg/middleware"
)

// Module is an HTTP handler mounted at a prefix with its own middleware.
type Module struct {
	prefix     string
	router     http.Handler
	middleware middleware.System
}

// New creates a module at prefix. It panics when prefix is empty, lacks a
// leading slash, or spans more than one path segment.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		router:     router,
		middleware: middleware.New(),
	}
}

func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware to the module's chain.
func (m *Module) Use(mw middleware.Middleware) {
	m.middleware.Use(mw)
}

// Handler returns the module router wrapped with its middleware.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.router)
}

// Serve strips the module prefix from the request path and dispatches to
// the module handler. The module root maps to "/".
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	r := req.Clone(req.Context())
	r.URL.Path = path
	if req.URL.RawPath != "" {
		raw := strings.TrimPrefix(req.URL.RawPath, m.prefix)
		if raw == "" {
			raw = "/"
		}
		r.URL.RawPath = raw
	}

	m.Handler().ServeHTTP(w, r)
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix cannot be empty")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	}
	if strings.Count(prefix, "/") != 1 || len(prefix) == 1 {
		return fmt.Errorf("module prefix must be a single segment: %s", prefix)
	}
	return nil
}
