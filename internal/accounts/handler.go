// Package accounts serves the login and logout pages and issues the session
// cookie for authenticated drivers.
package accounts

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/taxi-service/internal/drivers"
	"github.com/JaimeStill/taxi-service/internal/session"
	"github.com/JaimeStill/taxi-service/internal/views"
	"github.com/JaimeStill/taxi-service/pkg/form"
	"github.com/JaimeStill/taxi-service/pkg/web"
)

// BasePath is the mount point of the account pages.
const BasePath = "/accounts"

// View templates rendered by Handler.
const (
	LoginView     = "login.html"
	LoggedOutView = "logged_out.html"
)

const invalidLogin = "Please enter a correct username and password. Note that both fields may be case-sensitive."

// Authenticator checks driver credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*drivers.Driver, error)
}

// Handler serves the account pages.
type Handler struct {
	auth     Authenticator
	sessions *session.Manager
	views    *views.Views
	logger   *slog.Logger
}

func NewHandler(auth Authenticator, sessions *session.Manager, v *views.Views, logger *slog.Logger) *Handler {
	return &Handler{
		auth:     auth,
		sessions: sessions,
		views:    v,
		logger:   logger.With("system", "accounts"),
	}
}

// Router returns the page routes relative to BasePath.
func (h *Handler) Router() http.Handler {
	r := web.NewRouter()
	r.HandleFunc("GET /login/{$}", h.LoginForm)
	r.HandleFunc("POST /login/{$}", h.Login)
	r.HandleFunc("POST /logout/{$}", h.Logout)
	r.SetFallback(h.views.NotFound)
	return r
}

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	next := session.SafeNext(r.URL.Query().Get("next"), "/")
	h.renderLogin(w, r, http.StatusOK, "", next, nil)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.views.Error(w, r, http.StatusBadRequest, err)
		return
	}
	values := form.Values(r.PostForm)
	username := values.Get("username")
	password := values.Raw("password")
	next := session.SafeNext(values.Get("next"), "/")

	errs := form.Errors{}
	errs.Required("username", username)
	errs.Required("password", password)
	if errs.Any() {
		h.renderLogin(w, r, http.StatusUnprocessableEntity, username, next, errs)
		return
	}

	d, err := h.auth.Authenticate(r.Context(), username, password)
	if errors.Is(err, drivers.ErrInvalidCredentials) {
		h.renderLogin(w, r, http.StatusUnauthorized, username, next, form.Errors{form.NonField: invalidLogin})
		return
	}
	if err != nil {
		h.views.Error(w, r, http.StatusInternalServerError, err)
		return
	}

	if err := h.sessions.Login(w, session.User{ID: d.ID, Username: d.Username}); err != nil {
		h.views.Error(w, r, http.StatusInternalServerError, err)
		return
	}

	h.logger.Info("driver logged in", "id", d.ID, "username", d.Username)
	h.views.Redirect(w, r, next)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if u := session.Current(r); u != nil {
		h.logger.Info("driver logged out", "id", u.ID, "username", u.Username)
	}
	h.sessions.Logout(w)

	r = r.WithContext(session.WithUser(r.Context(), nil))
	h.views.Render(w, r, http.StatusOK, LoggedOutView, nil)
}

func (h *Handler) renderLogin(w http.ResponseWriter, r *http.Request, status int, username, next string, errs form.Errors) {
	h.views.Render(w, r, status, LoginView, web.Context{
		"username": username,
		"next":     next,
		"errors":   errs,
	})
}
