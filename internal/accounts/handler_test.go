package accounts_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/taxi-service/internal/accounts"
	"github.com/JaimeStill/taxi-service/internal/drivers"
	"github.com/JaimeStill/taxi-service/internal/session"
	"github.com/JaimeStill/taxi-service/internal/views/viewstest"
	"github.com/JaimeStill/taxi-service/pkg/form"
	"github.com/google/uuid"
)

type fakeAuth struct {
	driver drivers.Driver
	err    error
}

func (f *fakeAuth) Authenticate(_ context.Context, username, password string) (*drivers.Driver, error) {
	if f.err != nil {
		return nil, f.err
	}
	if username != f.driver.Username || password != "s3cret-pass" {
		return nil, drivers.ErrInvalidCredentials
	}
	return &f.driver, nil
}

func newHandler(auth accounts.Authenticator) (http.Handler, *session.Manager, *viewstest.Recorder) {
	sessions := session.NewManager(session.Config{
		Secret:     []byte("0123456789abcdef0123456789abcdef"),
		CookieName: "taxi_session",
		TTL:        time.Hour,
		LoginURL:   "/accounts/login/",
	})
	v, rec := viewstest.New()
	return accounts.NewHandler(auth, sessions, v, viewstest.Logger()).Router(), sessions, rec
}

func postLogin(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/login/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

var driver1 = drivers.Driver{ID: uuid.MustParse("01920000-0000-7000-8000-0000000000d1"), Username: "driver1"}

func TestLoginForm(t *testing.T) {
	h, _, rec := newHandler(&fakeAuth{driver: driver1})

	tests := []struct {
		query string
		next  string
	}{
		{"", "/"},
		{"?next=%2Fmanufacturers%2F", "/manufacturers/"},
		{"?next=https%3A%2F%2Fevil.example", "/"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login/"+tt.query, nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		call := rec.Last()
		if call.View != accounts.LoginView {
			t.Errorf("view = %q", call.View)
		}
		if got := call.Data.Data["next"]; got != tt.next {
			t.Errorf("next for %q = %v, want %q", tt.query, got, tt.next)
		}
	}
}

func TestLoginSuccess(t *testing.T) {
	h, sessions, _ := newHandler(&fakeAuth{driver: driver1})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, postLogin(url.Values{
		"username": {"driver1"},
		"password": {"s3cret-pass"},
		"next":     {"/cars/?search=a"},
	}))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/cars/?search=a" {
		t.Errorf("Location = %q", loc)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %v", cookies)
	}

	u, err := sessions.Verify(cookies[0].Value)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if u.ID != driver1.ID || u.Username != "driver1" {
		t.Errorf("user = %+v", u)
	}
}

func TestLoginFailure(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		status int
		field  string
	}{
		{"wrong password", url.Values{"username": {"driver1"}, "password": {"nope"}}, http.StatusUnauthorized, form.NonField},
		{"unknown user", url.Values{"username": {"ghost"}, "password": {"s3cret-pass"}}, http.StatusUnauthorized, form.NonField},
		{"missing password", url.Values{"username": {"driver1"}}, http.StatusUnprocessableEntity, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, rec := newHandler(&fakeAuth{driver: driver1})

			w := httptest.NewRecorder()
			h.ServeHTTP(w, postLogin(tt.values))

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			if len(w.Result().Cookies()) != 0 {
				t.Error("session cookie set on failed login")
			}

			call := rec.Last()
			if call.View != accounts.LoginView {
				t.Errorf("view = %q", call.View)
			}
			errs, _ := call.Data.Data["errors"].(form.Errors)
			if errs.Get(tt.field) == "" {
				t.Errorf("errors = %v, want entry for %s", errs, tt.field)
			}
		})
	}
}

func TestLoginBackendError(t *testing.T) {
	h, _, _ := newHandler(&fakeAuth{err: errors.New("db down")})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, postLogin(url.Values{"username": {"driver1"}, "password": {"x"}}))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestLogout(t *testing.T) {
	h, _, rec := newHandler(&fakeAuth{driver: driver1})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, viewstest.Authenticated(httptest.NewRequest(http.MethodPost, "/logout/", nil)))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	call := rec.Last()
	if call.View != accounts.LoggedOutView {
		t.Errorf("view = %q", call.View)
	}
	if call.Data.User != nil {
		t.Errorf("User = %v, want nil after logout", call.Data.User)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Errorf("cookies = %v, want expired session cookie", cookies)
	}
}

func TestLogoutRequiresPost(t *testing.T) {
	h, _, _ := newHandler(&fakeAuth{driver: driver1})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logout/", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
