package session

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/JaimeStill/taxi-service/pkg/handlers"
	"github.com/JaimeStill/taxi-service/pkg/middleware"
)

// Load attaches the session user to the request context when a valid
// cookie is present. It never rejects a request.
func (m *Manager) Load() middleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if u, err := m.Authenticate(r); err == nil {
				r = r.WithContext(WithUser(r.Context(), u))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireLogin redirects unauthenticated requests with 302 to the login page,
// carrying the original request URI in the next parameter.
func (m *Manager) RequireLogin() middleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, err := m.Authenticate(r)
			if err != nil {
				if errors.Is(err, ErrUnknownUser) {
					m.Logout(w)
				}
				http.Redirect(w, r, m.loginRedirect(r), http.StatusFound)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

// RequireAPI rejects unauthenticated requests with 401 and a JSON error body.
func (m *Manager) RequireAPI(logger *slog.Logger) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, err := m.Authenticate(r)
			if err != nil {
				if !errors.Is(err, ErrNoSession) {
					logger.Debug("session rejected", "error", err)
				}
				handlers.RespondError(w, logger, http.StatusUnauthorized, errors.New("authentication required"))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

func (m *Manager) loginRedirect(r *http.Request) string {
	next := r.RequestURI
	if next == "" {
		next = r.URL.RequestURI()
	}
	return m.cfg.LoginURL + "?next=" + url.QueryEscape(next)
}
