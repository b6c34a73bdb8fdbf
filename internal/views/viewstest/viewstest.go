// Package viewstest provides a recording renderer for handler tests.
package viewstest

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/JaimeStill/taxi-service/internal/session"
	"github.com/JaimeStill/taxi-service/internal/views"
	"github.com/JaimeStill/taxi-service/pkg/web"
	"github.com/google/uuid"
)

// Call is one recorded Render invocation.
type Call struct {
	Status int
	View   string
	Data   web.ViewData
}

// Recorder implements web.Renderer and remembers every call. The written
// body is "<view>" so tests can also inspect the response.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

func (r *Recorder) Render(w http.ResponseWriter, status int, view string, data web.ViewData) error {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Status: status, View: view, Data: data})
	r.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprint(w, view)
	return nil
}

// Last returns the most recent call. It panics when nothing was rendered.
func (r *Recorder) Last() Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		panic("viewstest: nothing rendered")
	}
	return r.calls[len(r.calls)-1]
}

// Rendered reports whether anything was rendered.
func (r *Recorder) Rendered() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls) > 0
}

// New returns Views backed by a fresh Recorder and a discarding logger.
func New() (*views.Views, *Recorder) {
	rec := &Recorder{}
	return views.New(rec, Logger()), rec
}

// Logger returns a logger that discards output.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

// User is the driver attached by Authenticated.
var User = &session.User{
	ID:       uuid.MustParse("01920000-0000-7000-8000-000000000001"),
	Username: "testuser",
}

// Authenticated returns r carrying User in its context.
func Authenticated(r *http.Request) *http.Request {
	return r.WithContext(session.WithUser(r.Context(), User))
}

// Get builds an authenticated GET request.
func Get(target string) *http.Request {
	return Authenticated(httptest.NewRequest(http.MethodGet, target, nil))
}

// Post builds an authenticated form POST request.
func Post(target string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return Authenticated(r)
}
