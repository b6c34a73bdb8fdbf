package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/taxi-service/internal/api"
	"github.com/JaimeStill/taxi-service/internal/config"
	"github.com/JaimeStill/taxi-service/internal/infrastructure"
	"github.com/JaimeStill/taxi-service/internal/session"
	"github.com/JaimeStill/taxi-service/pkg/handlers"
	"github.com/JaimeStill/taxi-service/pkg/module"
	"github.com/JaimeStill/taxi-service/pkg/routes"
	"github.com/google/uuid"
)

type pingHandler struct{}

func (pingHandler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/ping",
		Description: "Ping",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: func(w http.ResponseWriter, r *http.Request) {
				u := session.Current(r)
				handlers.RespondJSON(w, http.StatusOK, map[string]string{"user": u.Username})
			}},
		},
	}
}

func setup(t *testing.T) (http.Handler, *infrastructure.Infrastructure) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Database.Name = "taxi"
	cfg.Database.User = "taxi"
	cfg.Auth.Secret = "0123456789abcdef0123456789abcdef"
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	infra, err := infrastructure.New(cfg)
	if err != nil {
		t.Fatalf("infrastructure.New() error = %v", err)
	}

	router := module.NewRouter()
	router.Mount(api.NewModule(cfg, infra, pingHandler{}))
	return router, infra
}

func sessionCookie(t *testing.T, infra *infrastructure.Infrastructure) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	if err := infra.Sessions.Login(rec, session.User{ID: uuid.New(), Username: "driver1"}); err != nil {
		t.Fatal(err)
	}
	return rec.Result().Cookies()[0]
}

func TestUnauthenticated(t *testing.T) {
	h, _ := setup(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] == "" {
		t.Errorf("body = %v, want error field", body)
	}
}

func TestAuthenticated(t *testing.T) {
	h, infra := setup(t)
	cookie := sessionCookie(t, infra)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"route", "/api/ping", http.StatusOK},
		{"index", "/api", http.StatusOK},
		{"unknown", "/api/nope", http.StatusNotFound},
		{"trailing slash", "/api/ping/", http.StatusMovedPermanently},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			r.AddCookie(cookie)

			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}

func TestIndexListsGroups(t *testing.T) {
	h, infra := setup(t)

	r := httptest.NewRequest(http.MethodGet, "/api", nil)
	r.AddCookie(sessionCookie(t, infra))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	var index []struct {
		Group    string   `json:"group"`
		Patterns []string `json:"patterns"`
	}
	if err := json.NewDecoder(w.Body).Decode(&index); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(index) != 1 || index[0].Group != "/ping" || index[0].Patterns[0] != "GET /ping" {
		t.Errorf("index = %+v", index)
	}
}
