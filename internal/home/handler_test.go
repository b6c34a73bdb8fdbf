package home_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/taxi-service/internal/home"
	"github.com/JaimeStill/taxi-service/internal/views/viewstest"
)

type count struct {
	n   int
	err error
}

func (c count) Count(context.Context) (int, error) {
	return c.n, c.err
}

func TestIndex(t *testing.T) {
	v, rec := viewstest.New()
	h := home.NewHandler(count{n: 2}, count{n: 3}, count{n: 1}, v)

	w := httptest.NewRecorder()
	h.Index(w, viewstest.Get("/"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	call := rec.Last()
	if call.View != home.IndexView {
		t.Errorf("view = %q", call.View)
	}

	want := map[string]int{"num_drivers": 2, "num_cars": 3, "num_manufacturers": 1}
	for key, n := range want {
		if got := call.Data.Data[key]; got != n {
			t.Errorf("%s = %v, want %d", key, got, n)
		}
	}
}

func TestIndexCountError(t *testing.T) {
	v, _ := viewstest.New()
	h := home.NewHandler(count{n: 2}, count{err: errors.New("boom")}, count{n: 1}, v)

	w := httptest.NewRecorder()
	h.Index(w, viewstest.Get("/"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
