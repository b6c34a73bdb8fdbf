package web_test

import (
	"embed"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/taxi-service/pkg/web"
)

//go:embed testdata/layouts/*
var layoutFS embed.FS

//go:embed testdata/views/*
var viewFS embed.FS

var testViews = []web.ViewDef{
	{Template: "home.html", Title: "Home"},
	{Template: "list.html", Title: "Items"},
	{Template: "404.html", Title: "Not Found"},
	{Template: "broken.html", Title: "Broken"},
}

func newTemplateSet(t *testing.T) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(layoutFS, viewFS, "testdata/layouts/*.html", "testdata/views", "/app", testViews)
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}
	return ts
}

func TestNewTemplateSetErrors(t *testing.T) {
	tests := []struct {
		name       string
		layoutGlob string
		subdir     string
		views      []web.ViewDef
	}{
		{"invalid layout glob", "nonexistent/*.html", "testdata/views", testViews},
		{"missing view", "testdata/layouts/*.html", "testdata/views", []web.ViewDef{{Template: "missing.html"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := web.NewTemplateSet(layoutFS, viewFS, tt.layoutGlob, tt.subdir, "/app", tt.views)
			if err == nil {
				t.Error("NewTemplateSet() should return error")
			}
		})
	}
}

func TestRender(t *testing.T) {
	ts := newTemplateSet(t)
	w := httptest.NewRecorder()

	err := ts.Render(w, http.StatusOK, "test.html", "home.html", web.ViewData{User: "alice"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	body := w.Body.String()
	for _, want := range []string{"<!DOCTYPE html>", "<title>Home</title>", "Home Page", `data-basepath="/app"`, "alice"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestRenderContext(t *testing.T) {
	ts := newTemplateSet(t)
	w := httptest.NewRecorder()

	data := web.ViewData{Data: web.Context{"item_list": []string{"ford", "toyota"}}}
	if err := ts.Layout("test.html").Render(w, http.StatusUnprocessableEntity, "list.html", data); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
	if !strings.Contains(w.Body.String(), "<li>FORD</li><li>TOYOTA</li>") {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestRenderNotFound(t *testing.T) {
	ts := newTemplateSet(t)

	err := ts.Render(httptest.NewRecorder(), http.StatusOK, "test.html", "nonexistent.html", web.ViewData{})
	if err == nil {
		t.Error("Render() with unknown view should return error")
	}
}

func TestRenderExecutionErrorWritesNothing(t *testing.T) {
	ts := newTemplateSet(t)
	w := httptest.NewRecorder()

	if err := ts.Render(w, http.StatusOK, "test.html", "broken.html", web.ViewData{}); err == nil {
		t.Fatal("Render() should fail for broken view")
	}
	if w.Body.Len() != 0 {
		t.Errorf("body should be empty, got %q", w.Body.String())
	}
}

func TestPageHandler(t *testing.T) {
	ts := newTemplateSet(t)
	handler := ts.PageHandler("test.html", testViews[0])

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Home Page") {
		t.Error("response does not contain page content")
	}
}

func TestErrorHandler(t *testing.T) {
	ts := newTemplateSet(t)
	handler := ts.ErrorHandler("test.html", testViews[2], http.StatusNotFound)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<title>Not Found</title>") || !strings.Contains(body, "404 Not Found") {
		t.Errorf("body = %q", body)
	}
}
