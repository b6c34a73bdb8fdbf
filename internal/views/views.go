// Package views renders server-side pages for the domain handlers, filling in
// the session user and standard error pages.
package views

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/taxi-service/internal/session"
	"github.com/JaimeStill/taxi-service/pkg/web"
)

const (
	NotFoundView = "404.html"
	ErrorView    = "500.html"
)

// Views wraps a web.Renderer with request-aware helpers.
type Views struct {
	renderer web.Renderer
	logger   *slog.Logger
}

func New(renderer web.Renderer, logger *slog.Logger) *Views {
	return &Views{renderer: renderer, logger: logger}
}

// Render renders view with the request's session user and data.
func (v *Views) Render(w http.ResponseWriter, r *http.Request, status int, view string, data web.Context) {
	vd := web.ViewData{Data: data}
	if u := session.Current(r); u != nil {
		vd.User = u
	}
	if err := v.renderer.Render(w, status, view, vd); err != nil {
		v.logger.Error("render failed", "view", view, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// NotFound renders the 404 page.
func (v *Views) NotFound(w http.ResponseWriter, r *http.Request) {
	v.Render(w, r, http.StatusNotFound, NotFoundView, nil)
}

// Error logs err and renders the error page for status, using the 404 page
// for http.StatusNotFound.
func (v *Views) Error(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status == http.StatusNotFound {
		v.NotFound(w, r)
		return
	}
	v.logger.Error("request failed", "path", r.URL.Path, "status", status, "error", err)
	v.Render(w, r, status, ErrorView, web.Context{"status": status})
}

// Redirect sends a 302 to target.
func (v *Views) Redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusFound)
}
